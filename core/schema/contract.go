package schema

import (
	"context"
	"strconv"
	"strings"
	"time"

	goskema "github.com/reoring/goskema"
	"github.com/reoring/goskema/codec"
	"github.com/reoring/goskema/dsl"
	js "github.com/reoring/goskema/jsonschema"
)

// Timestamp is an RFC 3339 string field.
func Timestamp() dsl.AnyAdapter {
	return dsl.SchemaOf[time.Time](dsl.Codec(codec.TimeRFC3339()))
}

// Object embeds a nested object contract as a field.
func Object(s goskema.Schema[map[string]any]) dsl.AnyAdapter {
	return dsl.SchemaOf[map[string]any](s)
}

// ListOf is a JSON array field whose every element must satisfy elem.
func ListOf[E any](elem goskema.Schema[E]) dsl.AnyAdapter {
	return dsl.SchemaOf[[]E](List(elem))
}

// List returns an array contract that checks every element and reports the
// issues of all of them, each under its index.
func List[E any](elem goskema.Schema[E]) goskema.Schema[[]E] {
	return list[E]{elem: elem}
}

type list[E any] struct {
	elem goskema.Schema[E]
}

func (l list[E]) items(v any) ([]any, error) {
	items, ok := v.([]any)
	if !ok {
		return nil, goskema.Issues{{Path: "/", Code: goskema.CodeInvalidType, Message: "expected array", Hint: "expected array"}}
	}
	return items, nil
}

func (l list[E]) Parse(ctx context.Context, v any) ([]E, error) {
	items, err := l.items(v)
	if err != nil {
		return nil, err
	}
	out := make([]E, 0, len(items))
	var iss goskema.Issues
	for i, item := range items {
		ev, err := l.elem.Parse(ctx, item)
		if err != nil {
			iss = goskema.AppendIssues(iss, rebase(i, err)...)
			if goskema.IsFailFast(ctx) {
				break
			}
			continue
		}
		out = append(out, ev)
	}
	if len(iss) > 0 {
		return nil, iss
	}
	return out, nil
}

func (l list[E]) ParseWithMeta(ctx context.Context, v any) (goskema.Decoded[[]E], error) {
	out, err := l.Parse(ctx, v)
	return goskema.Decoded[[]E]{Value: out, Presence: goskema.PresenceMap{"/": goskema.PresenceSeen}}, err
}

func (l list[E]) TypeCheck(ctx context.Context, v any) error {
	return l.each(v, func(item any) error { return l.elem.TypeCheck(ctx, item) })
}

func (l list[E]) RuleCheck(ctx context.Context, v any) error {
	return l.each(v, func(item any) error { return l.elem.RuleCheck(ctx, item) })
}

func (l list[E]) Validate(ctx context.Context, v any) error {
	if err := l.TypeCheck(ctx, v); err != nil {
		return err
	}
	return l.RuleCheck(ctx, v)
}

func (l list[E]) ValidateValue(ctx context.Context, v []E) error {
	var iss goskema.Issues
	for i, item := range v {
		if err := l.elem.ValidateValue(ctx, item); err != nil {
			iss = goskema.AppendIssues(iss, rebase(i, err)...)
		}
	}
	if len(iss) > 0 {
		return iss
	}
	return nil
}

func (l list[E]) JSONSchema() (*js.Schema, error) {
	items, err := l.elem.JSONSchema()
	if err != nil {
		return nil, err
	}
	return &js.Schema{Type: "array", Items: items}, nil
}

func (l list[E]) each(v any, check func(any) error) error {
	items, err := l.items(v)
	if err != nil {
		return err
	}
	var iss goskema.Issues
	for i, item := range items {
		if err := check(item); err != nil {
			iss = goskema.AppendIssues(iss, rebase(i, err)...)
		}
	}
	if len(iss) > 0 {
		return iss
	}
	return nil
}

// rebase moves the issues of element i under "/i".
func rebase(i int, err error) goskema.Issues {
	base := "/" + strconv.Itoa(i)
	iss, ok := goskema.AsIssues(err)
	if !ok {
		return goskema.Issues{{Path: base, Code: goskema.CodeParseError, Message: err.Error(), Cause: err}}
	}
	out := make(goskema.Issues, 0, len(iss))
	for _, it := range iss {
		switch {
		case it.Path == "" || it.Path == "/":
			it.Path = base
		case strings.HasPrefix(it.Path, "/"):
			it.Path = base + it.Path
		default:
			it.Path = base + "/" + it.Path
		}
		out = append(out, it)
	}
	return out
}

// Ref is a contract that can be referenced before it is defined, which
// recursive shapes such as category trees need.
//
//	node := schema.NewRef[map[string]any]()
//	tree := node.Define(dsl.Object().Field("children", schema.ListOf(node))...)
type Ref[W any] struct {
	target goskema.Schema[W]
}

// NewRef returns an undefined reference.
func NewRef[W any]() *Ref[W] { return &Ref[W]{} }

// Define binds the reference and returns it.
func (r *Ref[W]) Define(s goskema.Schema[W]) goskema.Schema[W] {
	r.target = s
	return r
}

func (r *Ref[W]) Parse(ctx context.Context, v any) (W, error) { return r.target.Parse(ctx, v) }

func (r *Ref[W]) ParseWithMeta(ctx context.Context, v any) (goskema.Decoded[W], error) {
	return r.target.ParseWithMeta(ctx, v)
}

func (r *Ref[W]) TypeCheck(ctx context.Context, v any) error { return r.target.TypeCheck(ctx, v) }
func (r *Ref[W]) RuleCheck(ctx context.Context, v any) error { return r.target.RuleCheck(ctx, v) }
func (r *Ref[W]) Validate(ctx context.Context, v any) error  { return r.target.Validate(ctx, v) }

func (r *Ref[W]) ValidateValue(ctx context.Context, v W) error {
	return r.target.ValidateValue(ctx, v)
}

// JSONSchema stops at the reference; a recursive contract has no finite expansion.
func (r *Ref[W]) JSONSchema() (*js.Schema, error) { return &js.Schema{Type: "object"}, nil }
