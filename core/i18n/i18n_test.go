package i18n

import (
	"testing"

	"golang.org/x/text/language"

	"github.com/DevNathan/codemasterpiece-frontend-sub001/domain/result"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want language.Tag
	}{
		{"", language.Korean},
		{"ko", language.Korean},
		{"ko-KR", language.Korean},
		{"en-US,en;q=0.9", language.English},
		{"fr-FR", language.Korean},
		{"not a tag;;", language.Korean},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := Parse(tt.in); got != tt.want {
				t.Errorf("Parse(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestMessage(t *testing.T) {
	tests := []struct {
		name   string
		tag    language.Tag
		code   result.Code
		status int
		want   string
	}{
		{"korean unauthorized", language.Korean, result.CodeUnauthorized, 401, "로그인이 필요합니다."},
		{"english timeout", language.English, result.CodeTimeout, 0, "The request timed out."},
		{"unknown with status", language.Korean, result.CodeUnknown, 502, "알 수 없는 오류가 발생했습니다. (HTTP 502)"},
		{"unknown without status", language.English, result.CodeUnknown, 0, "An unknown error occurred."},
		{"uncatalogued code", language.English, "error.post.not_found", 0, "An unknown error occurred."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Message(tt.tag, tt.code, tt.status); got != tt.want {
				t.Errorf("Message() = %q, want %q", got, tt.want)
			}
		})
	}
}
