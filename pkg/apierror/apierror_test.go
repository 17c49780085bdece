package apierror

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DevNathan/codemasterpiece-frontend-sub001/domain/result"
)

func TestBuilder(t *testing.T) {
	body := Validation("입력값을 확인해주세요.").
		Field("title", "필수입니다.").
		Field("content", "너무 짧습니다.").
		Field("title", "너무 깁니다.").
		Build()

	if body.Status != http.StatusUnprocessableEntity || body.Code != result.CodeValidation {
		t.Errorf("status/code = %d %q", body.Status, body.Code)
	}
	msgs, _ := body.FieldErrors.Get("title")
	if len(msgs) != 2 || msgs[1] != "너무 깁니다." {
		t.Errorf("title messages = %v", msgs)
	}
	if paths := body.FieldErrors.Paths(); len(paths) != 2 || paths[0] != "title" {
		t.Errorf("paths = %v", paths)
	}
}

func TestWrite(t *testing.T) {
	tests := []struct {
		name       string
		body       Body
		wantStatus int
		wantBody   string
	}{
		{
			name:       "validation keeps field order",
			body:       Validation("bad").Field("b", "x").Field("a", "y").Build(),
			wantStatus: 422,
			wantBody:   `{"code":"error.validation","message":"bad","fieldErrors":{"b":["x"],"a":["y"]}}`,
		},
		{
			name:       "not found",
			body:       NotFound("post", "없음"),
			wantStatus: 404,
			wantBody:   `{"code":"error.post.not_found","message":"없음"}`,
		},
		{
			name:       "zero status",
			body:       Body{Code: result.CodeUnknown, Message: "boom"},
			wantStatus: 500,
			wantBody:   `{"code":"error.unknown","message":"boom"}`,
		},
		{
			name:       "formatted message",
			body:       New(http.StatusConflict, "error.category.conflict", "").Messagef("%s exists", "go").Build(),
			wantStatus: 409,
			wantBody:   `{"code":"error.category.conflict","message":"go exists"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			Write(rec, tt.body)

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if got := rec.Body.String(); got != tt.wantBody {
				t.Errorf("body = %s, want %s", got, tt.wantBody)
			}
			if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
				t.Errorf("Content-Type = %q", ct)
			}
		})
	}
}

func TestShorthands(t *testing.T) {
	tests := []struct {
		body   Body
		status int
		code   result.Code
	}{
		{BadRequest("x"), 400, result.CodeValidation},
		{Unauthorized("x"), 401, result.CodeUnauthorized},
		{Forbidden("x"), 403, result.CodeForbidden},
		{Conflict("category", "x"), 409, "error.category.conflict"},
		{Internal("x"), 500, result.CodeUnknown},
	}
	for _, tt := range tests {
		if tt.body.Status != tt.status || tt.body.Code != tt.code {
			t.Errorf("got %d %q, want %d %q", tt.body.Status, tt.body.Code, tt.status, tt.code)
		}
	}
}
