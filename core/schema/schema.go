// Package schema gates decoded response bodies on a declared shape.
//
// A Shape either returns the value narrowed to its declared type or a
// MismatchError listing every violated field. Each shape pairs a goskema
// contract for the wire form (field kinds, presence, nesting) with the Go
// type it decodes into; rule checks (oneof, min, url) run afterwards
// through go-playground/validator struct tags.
package schema

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
	goskema "github.com/reoring/goskema"

	"github.com/DevNathan/codemasterpiece-frontend-sub001/domain/result"
)

// ErrUndecodable wraps bodies that are not JSON at all.
var ErrUndecodable = errors.New("schema: undecodable body")

// MismatchError reports every field where the payload disagrees with the shape.
type MismatchError struct {
	Type       string
	Violations []result.Violation
}

func (e *MismatchError) Error() string {
	msgs := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		path := v.Path
		if path == "" {
			path = "$"
		}
		msgs = append(msgs, path+": "+v.Message)
	}
	return fmt.Sprintf("schema: %s mismatch: %s", e.Type, strings.Join(msgs, "; "))
}

// Shape parses and validates a response body into T.
type Shape[T any] interface {
	Parse(data []byte) (*T, error)
}

// Func adapts a hand-written check to Shape.
type Func[T any] func(data []byte) (*T, error)

// Parse calls f.
func (f Func[T]) Parse(data []byte) (*T, error) { return f(data) }

// Engine holds the rule validator shared by every shape built from it.
type Engine struct {
	validate *validator.Validate
}

// NewEngine returns an engine whose violation paths use JSON field names.
func NewEngine() *Engine {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(jsonName)
	return &Engine{validate: v}
}

// Validator exposes the underlying validator for custom rule registration.
func (e *Engine) Validator() *validator.Validate { return e.validate }

var defaultEngine = NewEngine()

// Default returns the process-wide engine.
func Default() *Engine { return defaultEngine }

type contract[T, W any] struct {
	engine *Engine
	wire   goskema.Schema[W]
	name   string
}

// For returns the shape of T checked against wire on the default engine.
func For[T, W any](wire goskema.Schema[W]) Shape[T] {
	return With[T](defaultEngine, wire)
}

// With returns the shape of T checked against wire on engine.
func With[T, W any](engine *Engine, wire goskema.Schema[W]) Shape[T] {
	return contract[T, W]{
		engine: engine,
		wire:   wire,
		name:   reflect.TypeOf((*T)(nil)).Elem().String(),
	}
}

func (c contract[T, W]) Parse(data []byte) (*T, error) {
	tree, err := decodeTree(data)
	if err != nil {
		return nil, err
	}

	if _, err := c.wire.Parse(context.Background(), tree); err != nil {
		return nil, &MismatchError{Type: c.name, Violations: issueViolations(err)}
	}

	out := new(T)
	if err := json.Unmarshal(data, out); err != nil {
		return nil, &MismatchError{
			Type:       c.name,
			Violations: []result.Violation{{Rule: "decode", Message: err.Error()}},
		}
	}

	if vs := c.engine.rules(out); len(vs) > 0 {
		return nil, &MismatchError{Type: c.name, Violations: vs}
	}
	return out, nil
}

// decodeTree decodes exactly one JSON value. Anything after it other than
// whitespace makes the body undecodable.
func decodeTree(data []byte) (any, error) {
	if !json.Valid(data) {
		var v any
		if err := json.Unmarshal(data, &v); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrUndecodable, err)
		}
		return nil, fmt.Errorf("%w: trailing data after the JSON value", ErrUndecodable)
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var tree any
	if err := dec.Decode(&tree); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUndecodable, err)
	}
	return tree, nil
}

// issueViolations converts goskema issues, whose paths are JSON pointers,
// into violations with dotted JSON paths.
func issueViolations(err error) []result.Violation {
	iss, ok := goskema.AsIssues(err)
	if !ok {
		return []result.Violation{{Rule: "contract", Message: err.Error()}}
	}
	out := make([]result.Violation, 0, len(iss))
	for _, it := range iss {
		out = append(out, result.Violation{
			Path:    pointerPath(it.Path),
			Rule:    issueRule(it.Code),
			Message: issueMessage(it),
		})
	}
	return out
}

func issueRule(code string) string {
	switch code {
	case goskema.CodeInvalidType:
		return "type"
	case "":
		return "contract"
	}
	return code
}

func issueMessage(it goskema.Issue) string {
	msg := it.Message
	if msg == "" {
		msg = it.Code
	}
	if it.Hint != "" && it.Hint != msg {
		msg += " (" + it.Hint + ")"
	}
	return msg
}

// pointerPath renders "/children/0/name" as "children[0].name".
func pointerPath(p string) string {
	p = strings.TrimPrefix(p, "/")
	if p == "" {
		return ""
	}
	var b strings.Builder
	for _, seg := range strings.Split(p, "/") {
		seg = strings.ReplaceAll(strings.ReplaceAll(seg, "~1", "/"), "~0", "~")
		if _, err := strconv.Atoi(seg); err == nil {
			b.WriteString("[" + seg + "]")
			continue
		}
		if b.Len() > 0 {
			b.WriteByte('.')
		}
		b.WriteString(seg)
	}
	return b.String()
}

// Check runs the validate tags of v, which must be a struct, a pointer to
// one, or a collection of structs. It reports nothing for other values.
func (e *Engine) Check(v any) []result.Violation {
	return e.rules(v)
}

func (e *Engine) rules(v any) []result.Violation {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil
		}
		rv = rv.Elem()
	}

	var err error
	isStruct := false
	switch rv.Kind() {
	case reflect.Struct:
		isStruct = true
		err = e.validate.Struct(rv.Interface())
	case reflect.Slice, reflect.Array, reflect.Map:
		if !elemHasRules(rv.Type().Elem()) {
			return nil
		}
		err = e.validate.Var(rv.Interface(), "dive")
	default:
		return nil
	}
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []result.Violation{{Rule: "validate", Message: err.Error()}}
	}

	out := make([]result.Violation, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, result.Violation{
			Path:    violationPath(fe.Namespace(), isStruct),
			Rule:    fe.Tag(),
			Param:   fe.Param(),
			Message: ruleMessage(fe),
		})
	}
	return out
}

func elemHasRules(t reflect.Type) bool {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t.Kind() == reflect.Struct
}

// violationPath drops the Go type name validator puts in front of struct
// namespaces: "Category.children[0].name" becomes "children[0].name".
// Segments of untagged embedded structs are dropped too, since their fields
// are flattened on the wire.
func violationPath(ns string, isStruct bool) string {
	if isStruct {
		if i := strings.IndexByte(ns, '.'); i >= 0 {
			ns = ns[i+1:]
		} else {
			return ""
		}
	}
	if !strings.Contains(ns, embeddedName) {
		return ns
	}
	parts := strings.Split(ns, ".")
	kept := parts[:0]
	for _, p := range parts {
		if p != embeddedName {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, ".")
}

func ruleMessage(fe validator.FieldError) string {
	if p := fe.Param(); p != "" {
		return fmt.Sprintf("failed on the '%s=%s' rule", fe.Tag(), p)
	}
	return fmt.Sprintf("failed on the '%s' rule", fe.Tag())
}

// embeddedName stands in for untagged embedded structs in validator namespaces.
const embeddedName = "~embedded"

func jsonName(f reflect.StructField) string {
	name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
	switch {
	case name == "-":
		return ""
	case name == "" && f.Anonymous:
		return embeddedName
	case name == "":
		return f.Name
	}
	return name
}
