package memory_test

import (
	"errors"
	"testing"

	"github.com/DevNathan/codemasterpiece-frontend-sub001/adapters/memory"
	"github.com/DevNathan/codemasterpiece-frontend-sub001/domain/result"
	"github.com/DevNathan/codemasterpiece-frontend-sub001/ports"
)

func TestForm_SetFieldError(t *testing.T) {
	f := memory.NewForm("title")

	if err := f.SetFieldError("title", "a"); err != nil {
		t.Fatalf("SetFieldError: %v", err)
	}
	if err := f.SetFieldError("title", "b"); err != nil {
		t.Fatalf("SetFieldError: %v", err)
	}
	if msg, ok := f.Error("title"); !ok || msg != "b" {
		t.Errorf("Error(title) = %q, %v, want b", msg, ok)
	}
	if err := f.SetFieldError("missing", "x"); !errors.Is(err, ports.ErrUnknownField) {
		t.Errorf("unknown path: err = %v, want ErrUnknownField", err)
	}
}

func TestForm_FocusAndClear(t *testing.T) {
	f := memory.NewForm("title", "content")
	f.SetFieldError("title", "a")

	if err := f.FocusField("content"); err != nil {
		t.Fatalf("FocusField: %v", err)
	}
	if err := f.FocusField("nope"); !errors.Is(err, ports.ErrUnknownField) {
		t.Errorf("FocusField(nope) = %v", err)
	}
	f.ClearErrors()

	if len(f.Errors()) != 0 {
		t.Errorf("errors after clear = %v", f.Errors())
	}
	if f.Focused() != "content" {
		t.Errorf("focus = %q, want content", f.Focused())
	}
}

func TestNotifier(t *testing.T) {
	n := memory.NewNotifier()
	a := &result.Error{Code: result.CodeNetwork}
	b := &result.Error{Code: result.CodeUnknown}
	n.Notify(a)
	n.Notify(b)

	got := n.Toasts()
	if len(got) != 2 || got[0] != a || got[1] != b {
		t.Errorf("Toasts() = %v", got)
	}
}
