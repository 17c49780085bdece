package schema

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"
	"time"

	goskema "github.com/reoring/goskema"
	"github.com/reoring/goskema/dsl"

	"github.com/DevNathan/codemasterpiece-frontend-sub001/domain/result"
)

type testCategory struct {
	ID       string         `json:"id" validate:"required"`
	Name     string         `json:"name" validate:"required,max=20"`
	Type     string         `json:"type" validate:"oneof=FOLDER LINK"`
	Order    int            `json:"order"`
	Children []testCategory `json:"children" validate:"dive"`
}

var (
	testNode             = NewRef[map[string]any]()
	testCategoryContract = testNode.Define(dsl.Object().UnknownStrip().
		Field("id", dsl.StringOf[string]()).Required().
		Field("name", dsl.StringOf[string]()).Required().
		Field("type", dsl.StringOf[string]()).Required().
		Field("order", dsl.IntOf[int]()).Optional().
		Field("children", dsl.Nullable(ListOf[map[string]any](testNode))).Optional().
		MustBuild())
)

type testAuthor struct {
	Nickname string `json:"nickname" validate:"required"`
}

type testPost struct {
	Slug      string      `json:"slug" validate:"required"`
	Views     int         `json:"views"`
	Tags      []string    `json:"tags"`
	Published bool        `json:"published"`
	CreatedAt time.Time   `json:"createdAt"`
	Author    *testAuthor `json:"author"`
}

var testPostContract = dsl.Object().UnknownStrip().
	Field("slug", dsl.StringOf[string]()).Required().
	Field("views", dsl.IntOf[int]()).Optional().
	Field("tags", dsl.Nullable(ListOf[string](dsl.String()))).Optional().
	Field("published", dsl.BoolOf[bool]()).Optional().
	Field("createdAt", Timestamp()).Optional().
	Field("author", dsl.Nullable(Object(dsl.Object().UnknownStrip().
		Field("nickname", dsl.StringOf[string]()).Required().
		MustBuild()))).Optional().
	MustBuild()

func TestFor_MatchingPayload(t *testing.T) {
	body := `{"id":"c1","name":"Go","type":"FOLDER","order":1,"children":[{"id":"c2","name":"Gin","type":"LINK","order":0,"children":[]}],"extra":"ignored"}`

	got, err := For[testCategory](testCategoryContract).Parse([]byte(body))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	want := &testCategory{
		ID: "c1", Name: "Go", Type: "FOLDER", Order: 1,
		Children: []testCategory{{ID: "c2", Name: "Gin", Type: "LINK", Children: []testCategory{}}},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %#v\nwant %#v", got, want)
	}
}

func TestFor_ReportsEveryContractViolation(t *testing.T) {
	body := `{"id":7,"name":true,"type":"FOLDER","order":"first","children":[{"id":"c2","name":"x","type":"LINK","order":1.5},{"name":"y","type":"LINK"}]}`

	got, err := For[testCategory](testCategoryContract).Parse([]byte(body))
	if got != nil {
		t.Fatalf("mismatch must not yield a value, got %#v", got)
	}

	var mm *MismatchError
	if !errors.As(err, &mm) {
		t.Fatalf("err = %v, want *MismatchError", err)
	}

	rules := map[string]string{}
	for _, v := range mm.Violations {
		rules[v.Path] = v.Rule
	}
	want := map[string]string{
		"id":                "type",
		"name":              "type",
		"order":             "type",
		"children[0].order": "type",
		"children[1].id":    goskema.CodeRequired,
	}
	if !reflect.DeepEqual(rules, want) {
		t.Errorf("violations = %v, want %v", rules, want)
	}
}

func TestFor_ReportsEveryRuleViolation(t *testing.T) {
	body := `{"id":"","name":"this name is far too long for a category","type":"OTHER","children":[{"id":"","name":"ok","type":"LINK"}]}`

	_, err := For[testCategory](testCategoryContract).Parse([]byte(body))

	var mm *MismatchError
	if !errors.As(err, &mm) {
		t.Fatalf("err = %v, want *MismatchError", err)
	}
	got := map[string]string{}
	for _, v := range mm.Violations {
		got[v.Path] = v.Rule
	}
	want := map[string]string{
		"id":             "required",
		"name":           "max",
		"type":           "oneof",
		"children[0].id": "required",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("violations = %v, want %v", got, want)
	}
}

func TestFor_FieldKinds(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		wantPaths []string
	}{
		{
			name:      "valid",
			body:      `{"slug":"a","views":3,"tags":["x"],"published":true,"createdAt":"2024-01-02T03:04:05Z","author":{"nickname":"n"}}`,
			wantPaths: nil,
		},
		{
			name:      "fractional integer",
			body:      `{"slug":"a","views":1.5}`,
			wantPaths: []string{"views"},
		},
		{
			name:      "every bad element is reported",
			body:      `{"slug":"a","tags":[1,"ok",false],"createdAt":"yesterday","author":"me"}`,
			wantPaths: []string{"tags[0]", "tags[2]", "createdAt", "author"},
		},
		{
			name:      "declared nullable fields accept null",
			body:      `{"slug":"a","tags":null,"author":null}`,
			wantPaths: nil,
		},
		{
			name:      "other fields reject null",
			body:      `{"slug":null,"views":null}`,
			wantPaths: []string{"slug", "views"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := For[testPost](testPostContract).Parse([]byte(tt.body))
			if tt.wantPaths == nil {
				if err != nil {
					t.Fatalf("Parse: %v", err)
				}
				return
			}
			var mm *MismatchError
			if !errors.As(err, &mm) {
				t.Fatalf("err = %v, want *MismatchError", err)
			}
			got := violationPaths(mm.Violations)
			if !sameSet(got, tt.wantPaths) {
				t.Errorf("paths = %v, want %v", got, tt.wantPaths)
			}
		})
	}
}

func TestFor_NestedRules(t *testing.T) {
	_, err := For[testPost](testPostContract).Parse([]byte(`{"slug":"a","author":{"nickname":""}}`))

	var mm *MismatchError
	if !errors.As(err, &mm) {
		t.Fatalf("err = %v, want *MismatchError", err)
	}
	if len(mm.Violations) != 1 || mm.Violations[0].Path != "author.nickname" {
		t.Errorf("violations = %#v", mm.Violations)
	}
}

func TestFor_ListRoot(t *testing.T) {
	shape := For[[]testCategory](List(testCategoryContract))

	got, err := shape.Parse([]byte(`[{"id":"a","name":"A","type":"LINK"}]`))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(*got) != 1 || (*got)[0].ID != "a" {
		t.Errorf("got %#v", got)
	}

	_, err = shape.Parse([]byte(`[{"id":"a","name":"A","type":"LINK"},{"id":"","name":"B","type":"LINK"}]`))
	var mm *MismatchError
	if !errors.As(err, &mm) {
		t.Fatalf("err = %v, want *MismatchError", err)
	}
	if mm.Violations[0].Path != "[1].id" {
		t.Errorf("path = %q, want [1].id", mm.Violations[0].Path)
	}

	_, err = shape.Parse([]byte(`{"id":"a"}`))
	if !errors.As(err, &mm) || mm.Violations[0].Path != "" || mm.Violations[0].Rule != "type" {
		t.Errorf("object for array root: err = %v", err)
	}
}

type testSummary struct {
	Slug  string `json:"slug" validate:"required"`
	Views int    `json:"views"`
}

type testDetail struct {
	testSummary
	Content string `json:"content" validate:"required"`
}

var testDetailContract = dsl.Object().UnknownStrip().
	Field("slug", dsl.StringOf[string]()).Required().
	Field("views", dsl.IntOf[int]()).Optional().
	Field("content", dsl.StringOf[string]()).Required().
	MustBuild()

func TestFor_EmbeddedFieldsFlatten(t *testing.T) {
	got, err := For[testDetail](testDetailContract).Parse([]byte(`{"slug":"s","views":2,"content":"c"}`))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got.Slug != "s" || got.Views != 2 || got.Content != "c" {
		t.Errorf("got %#v", got)
	}

	_, err = For[testDetail](testDetailContract).Parse([]byte(`{"slug":"","content":""}`))
	var mm *MismatchError
	if !errors.As(err, &mm) {
		t.Fatalf("err = %v, want *MismatchError", err)
	}
	want := []string{"slug", "content"}
	if got := violationPaths(mm.Violations); !sameSet(got, want) {
		t.Errorf("paths = %v, want %v", got, want)
	}
}

func TestFor_Undecodable(t *testing.T) {
	for name, body := range map[string]string{
		"markup":         `<html>oops</html>`,
		"trailing bytes": `{"id":"a","name":"A","type":"LINK"} trailing`,
		"two values":     `{"id":"a","name":"A","type":"LINK"}{}`,
		"empty":          ``,
	} {
		t.Run(name, func(t *testing.T) {
			_, err := For[testCategory](testCategoryContract).Parse([]byte(body))
			if !errors.Is(err, ErrUndecodable) {
				t.Fatalf("err = %v, want ErrUndecodable", err)
			}
			var mm *MismatchError
			if errors.As(err, &mm) {
				t.Error("syntax errors are not shape mismatches")
			}
		})
	}

	if _, err := For[testCategory](testCategoryContract).Parse([]byte("{\"id\":\"a\",\"name\":\"A\",\"type\":\"LINK\"}\n\t ")); err != nil {
		t.Errorf("trailing whitespace: %v", err)
	}
}

func TestPointerPath(t *testing.T) {
	tests := []struct{ in, want string }{
		{"", ""},
		{"/", ""},
		{"/id", "id"},
		{"/3/id", "[3].id"},
		{"/children/0/children/12/name", "children[0].children[12].name"},
		{"/a~1b/c~0d", "a/b.c~d"},
	}
	for _, tt := range tests {
		if got := pointerPath(tt.in); got != tt.want {
			t.Errorf("pointerPath(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestList_ValidateValue(t *testing.T) {
	l := List[string](dsl.String())
	if err := l.ValidateValue(context.Background(), []string{"a", "b"}); err != nil {
		t.Errorf("ValidateValue = %v", err)
	}
	if err := l.TypeCheck(context.Background(), []any{"a", 1}); err == nil {
		t.Error("TypeCheck accepted a number element")
	} else if iss, _ := goskema.AsIssues(err); len(iss) != 1 || iss[0].Path != "/1" {
		t.Errorf("issues = %v, want one at /1", iss)
	}
	js, err := l.JSONSchema()
	if err != nil || js.Type != "array" || js.Items == nil || js.Items.Type != "string" {
		t.Errorf("JSONSchema = %+v, %v", js, err)
	}
}

func TestMismatchError_Message(t *testing.T) {
	err := &MismatchError{Type: "T", Violations: []result.Violation{
		{Path: "", Message: "expected object, got array"},
		{Path: "a.b", Message: "failed on the 'required' rule"},
	}}
	msg := err.Error()
	if !strings.Contains(msg, "$: expected object") || !strings.Contains(msg, "a.b: failed") {
		t.Errorf("Error() = %q", msg)
	}
}

func TestFunc_Adapter(t *testing.T) {
	calls := 0
	shape := Func[string](func(data []byte) (*string, error) {
		calls++
		s := strings.ToUpper(string(data))
		return &s, nil
	})

	got, err := shape.Parse([]byte("ok"))
	if err != nil || *got != "OK" || calls != 1 {
		t.Errorf("got %v, %v after %d calls", got, err, calls)
	}
}

func violationPaths(vs []result.Violation) []string {
	out := make([]string, len(vs))
	for i, v := range vs {
		out[i] = v.Path
	}
	return out
}

func sameSet(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	seen := map[string]int{}
	for _, s := range a {
		seen[s]++
	}
	for _, s := range b {
		seen[s]--
	}
	for _, n := range seen {
		if n != 0 {
			return false
		}
	}
	return true
}

func TestEngine_Check(t *testing.T) {
	in := testCategory{ID: "c1", Name: "", Type: "FOLDER", Children: []testCategory{{ID: "c2", Name: "ok", Type: "BAD"}}}

	got := Default().Check(&in)
	want := map[string]string{"name": "required", "children[0].type": "oneof"}
	if len(got) != len(want) {
		t.Fatalf("violations = %#v", got)
	}
	for _, v := range got {
		if want[v.Path] != v.Rule {
			t.Errorf("violation %s = %s, want %s", v.Path, v.Rule, want[v.Path])
		}
	}
	if got[1].Param != "FOLDER LINK" {
		t.Errorf("param = %q, want %q", got[1].Param, "FOLDER LINK")
	}

	if vs := Default().Check(42); vs != nil {
		t.Errorf("Check(42) = %#v, want nil", vs)
	}
}
