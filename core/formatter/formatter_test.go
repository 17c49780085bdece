package formatter

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/DevNathan/codemasterpiece-frontend-sub001/domain/result"
)

type row struct {
	ID   string `json:"id"`
	Name string `json:"displayName"`
}

type rows []row

func (rs rows) Table() Table {
	t := Table{Headers: []string{"ID", "NAME"}, Empty: "No rows."}
	for _, r := range rs {
		t.Rows = append(t.Rows, []string{r.ID, r.Name})
	}
	return t
}

func TestRegistry(t *testing.T) {
	r := NewRegistry()

	if got := r.List(); strings.Join(got, ",") != "json,table,yaml" {
		t.Errorf("List() = %v", got)
	}
	f, err := r.Get("")
	if err != nil || f.Name() != "table" {
		t.Errorf("Get(\"\") = %v, %v, want table", f, err)
	}
	if _, err := r.Get("csv"); err == nil {
		t.Error("Get(csv) should fail")
	}
	if err := r.Register(JSONFormatter{}); err == nil {
		t.Error("duplicate Register should fail")
	}
}

func TestFormat(t *testing.T) {
	data := rows{{ID: "1", Name: "Alice"}, {ID: "2", Name: "Bob"}}

	tests := []struct {
		format string
		opts   FormatOptions
		want   []string
	}{
		{"table", FormatOptions{}, []string{"ID  NAME", "--  ----", "1   Alice", "2   Bob"}},
		{"table", FormatOptions{NoHeader: true}, []string{"1  Alice"}},
		{"json", FormatOptions{Compact: true}, []string{`[{"id":"1","displayName":"Alice"},{"id":"2","displayName":"Bob"}]`}},
		{"yaml", FormatOptions{}, []string{"- displayName: Alice\n  id: \"1\""}},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			f, err := Get(tt.format)
			if err != nil {
				t.Fatalf("Get(%q): %v", tt.format, err)
			}
			var buf bytes.Buffer
			if err := f.Format(&buf, data, tt.opts); err != nil {
				t.Fatalf("Format: %v", err)
			}
			for _, want := range tt.want {
				if !strings.Contains(buf.String(), want) {
					t.Errorf("output %q does not contain %q", buf.String(), want)
				}
			}
		})
	}
}

func TestTable_EmptyAndUntabular(t *testing.T) {
	var buf bytes.Buffer
	if err := (TableFormatter{}).Format(&buf, rows{}, FormatOptions{}); err != nil {
		t.Fatalf("Format: %v", err)
	}
	if buf.String() != "No rows.\n" {
		t.Errorf("empty table = %q", buf.String())
	}

	err := (TableFormatter{}).Format(&buf, 42, FormatOptions{})
	if !errors.Is(err, ErrNotTabular) {
		t.Errorf("err = %v, want ErrNotTabular", err)
	}
}

func TestFormatError(t *testing.T) {
	failure := &result.Error{
		Code:        result.CodeValidation,
		Message:     "입력값을 확인해주세요.",
		FieldErrors: result.FieldErrors{{Path: "guestPassword", Messages: []string{"비밀번호가 올바르지 않습니다."}}},
	}

	var buf bytes.Buffer
	(TableFormatter{}).FormatError(&buf, failure)
	if !strings.Contains(buf.String(), "guestPassword: 비밀번호가 올바르지 않습니다.") {
		t.Errorf("table error = %q", buf.String())
	}

	buf.Reset()
	if err := (JSONFormatter{}).FormatError(&buf, failure); err != nil {
		t.Fatalf("FormatError: %v", err)
	}
	if !strings.Contains(buf.String(), `"code": "error.validation"`) {
		t.Errorf("json error = %q", buf.String())
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in   string
		max  int
		want string
	}{
		{"hello", 0, "hello"},
		{"hello", 5, "hello"},
		{"hello world", 8, "hello..."},
		{"안녕하세요 여러분", 5, "안녕..."},
		{"hello", 2, "he"},
	}
	for _, tt := range tests {
		if got := truncate(tt.in, tt.max); got != tt.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tt.in, tt.max, got, tt.want)
		}
	}
}
