package devapi

import (
	"fmt"

	"github.com/DevNathan/codemasterpiece-frontend-sub001/domain/result"
)

const (
	msgWrongPassword  = "비밀번호가 올바르지 않습니다."
	msgRequired       = "필수 입력 항목입니다."
	msgNicknameLength = "닉네임은 2자 이상 20자 이하로 입력해주세요."
	msgPasswordLength = "비밀번호는 4자 이상 입력해주세요."
)

// fieldMessage renders a rule violation the way the production API words
// its field errors.
func fieldMessage(v result.Violation) string {
	switch v.Rule {
	case "required":
		return msgRequired
	case "max":
		return fmt.Sprintf("%s자 이하로 입력해주세요.", v.Param)
	case "min":
		return fmt.Sprintf("%s자 이상 입력해주세요.", v.Param)
	case "oneof":
		return "허용되지 않는 값입니다."
	case "url":
		return "올바른 URL 형식이 아닙니다."
	case "gte":
		return fmt.Sprintf("%s 이상이어야 합니다.", v.Param)
	}
	return "입력값이 올바르지 않습니다."
}

var notFound = map[string]string{
	"category": "카테고리를 찾을 수 없습니다.",
	"post":     "게시글을 찾을 수 없습니다.",
	"comment":  "댓글을 찾을 수 없습니다.",
	"entry":    "방명록 글을 찾을 수 없습니다.",
	"file":     "파일을 찾을 수 없습니다.",
}

func notFoundMessage(resource string) string {
	if m, ok := notFound[resource]; ok {
		return m
	}
	return "찾을 수 없습니다."
}
