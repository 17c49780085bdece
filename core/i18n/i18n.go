// Package i18n localizes the messages the executor synthesizes when the
// server gave none. Server-provided messages are never rewritten.
package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/DevNathan/codemasterpiece-frontend-sub001/domain/result"
)

// keyUnknownStatus is the error.unknown variant that names the HTTP status.
const keyUnknownStatus = "error.unknown.status"

var supported = []language.Tag{language.Korean, language.English}

var matcher = language.NewMatcher(supported)

// Default is the site language.
func Default() language.Tag { return language.Korean }

// Supported returns the languages with a message catalog.
func Supported() []language.Tag {
	return append([]language.Tag(nil), supported...)
}

// Parse resolves a configured locale or Accept-Language value to a
// supported tag, falling back to Default.
func Parse(value string) language.Tag {
	if value == "" {
		return Default()
	}
	tags, _, err := language.ParseAcceptLanguage(value)
	if err != nil || len(tags) == 0 {
		return Default()
	}
	tag, _, conf := matcher.Match(tags...)
	if conf == language.No {
		return Default()
	}
	base, _ := tag.Base()
	return language.Make(base.String())
}

// Message returns the human-facing text for code in tag's language.
// A non-zero status selects the status-bearing variant of error.unknown.
func Message(tag language.Tag, code result.Code, status int) string {
	p := message.NewPrinter(tag)
	if code == result.CodeUnknown && status != 0 {
		return p.Sprintf(keyUnknownStatus, status)
	}
	if _, ok := catalogKeys[code]; !ok {
		code = result.CodeUnknown
	}
	return p.Sprintf(string(code))
}

var catalogKeys = map[result.Code]struct{}{
	result.CodeUnauthorized:   {},
	result.CodeForbidden:      {},
	result.CodeValidation:     {},
	result.CodeNetwork:        {},
	result.CodeTimeout:        {},
	result.CodeCanceled:       {},
	result.CodeUnknown:        {},
	result.CodeShapeMismatch:  {},
	result.CodeInvalidRequest: {},
}

func init() {
	ko := language.Korean
	message.SetString(ko, string(result.CodeUnauthorized), "로그인이 필요합니다.")
	message.SetString(ko, string(result.CodeForbidden), "권한이 없습니다.")
	message.SetString(ko, string(result.CodeValidation), "입력값을 확인해주세요.")
	message.SetString(ko, string(result.CodeNetwork), "네트워크 오류가 발생했습니다.")
	message.SetString(ko, string(result.CodeTimeout), "요청 시간이 초과되었습니다.")
	message.SetString(ko, string(result.CodeCanceled), "요청이 취소되었습니다.")
	message.SetString(ko, string(result.CodeUnknown), "알 수 없는 오류가 발생했습니다.")
	message.SetString(ko, keyUnknownStatus, "알 수 없는 오류가 발생했습니다. (HTTP %d)")
	message.SetString(ko, string(result.CodeShapeMismatch), "서버 응답 형식이 올바르지 않습니다.")
	message.SetString(ko, string(result.CodeInvalidRequest), "요청을 만들 수 없습니다.")

	en := language.English
	message.SetString(en, string(result.CodeUnauthorized), "Sign-in required.")
	message.SetString(en, string(result.CodeForbidden), "You do not have permission.")
	message.SetString(en, string(result.CodeValidation), "Please check your input.")
	message.SetString(en, string(result.CodeNetwork), "A network error occurred.")
	message.SetString(en, string(result.CodeTimeout), "The request timed out.")
	message.SetString(en, string(result.CodeCanceled), "The request was canceled.")
	message.SetString(en, string(result.CodeUnknown), "An unknown error occurred.")
	message.SetString(en, keyUnknownStatus, "An unknown error occurred. (HTTP %d)")
	message.SetString(en, string(result.CodeShapeMismatch), "The server response had an unexpected shape.")
	message.SetString(en, string(result.CodeInvalidRequest), "The request could not be built.")
}
