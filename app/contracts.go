package app

import (
	goskema "github.com/reoring/goskema"
	"github.com/reoring/goskema/dsl"

	"github.com/DevNathan/codemasterpiece-frontend-sub001/core/schema"
)

// Wire contracts of the content API responses. Keys the site does not read
// are ignored; collections the API may send as null are nullable.

func str() dsl.AnyAdapter     { return dsl.StringOf[string]() }
func integer() dsl.AnyAdapter { return dsl.IntOf[int]() }
func flag() dsl.AnyAdapter    { return dsl.BoolOf[bool]() }

var (
	userContract = dsl.Object().UnknownStrip().
		Field("userId", str()).Required().
		Field("nickname", str()).Required().
		Field("role", str()).Required().
		Field("avatarUrl", dsl.Nullable(str())).Optional().
		MustBuild()

	authorContract = dsl.Object().UnknownStrip().
		Field("userId", dsl.Nullable(str())).Optional().
		Field("nickname", str()).Required().
		Field("avatarUrl", dsl.Nullable(str())).Optional().
		Field("guest", flag()).Optional().
		MustBuild()

	categoryNode     = schema.NewRef[map[string]any]()
	categoryContract = categoryNode.Define(dsl.Object().UnknownStrip().
		Field("id", str()).Required().
		Field("name", str()).Required().
		Field("type", str()).Required().
		Field("link", dsl.Nullable(str())).Optional().
		Field("sortOrder", integer()).Optional().
		Field("parentId", dsl.Nullable(str())).Optional().
		Field("children", dsl.Nullable(schema.ListOf[map[string]any](categoryNode))).Optional().
		MustBuild())

	postSummaryContract = postObject(false)
	postDetailContract  = postObject(true)

	likeContract = dsl.Object().UnknownStrip().
		Field("liked", flag()).Required().
		Field("likeCount", integer()).Required().
		MustBuild()

	commentNode     = schema.NewRef[map[string]any]()
	commentContract = commentNode.Define(dsl.Object().UnknownStrip().
		Field("id", str()).Required().
		Field("postId", str()).Required().
		Field("parentId", dsl.Nullable(str())).Optional().
		Field("author", schema.Object(authorContract)).Required().
		Field("content", str()).Optional().
		Field("deleted", flag()).Optional().
		Field("createdAt", schema.Timestamp()).Required().
		Field("replies", dsl.Nullable(schema.ListOf[map[string]any](commentNode))).Optional().
		MustBuild())

	entryContract = dsl.Object().UnknownStrip().
		Field("id", str()).Required().
		Field("author", schema.Object(authorContract)).Required().
		Field("content", str()).Required().
		Field("createdAt", schema.Timestamp()).Required().
		MustBuild()

	uploadContract = dsl.Object().UnknownStrip().
		Field("url", str()).Required().
		MustBuild()

	pathCountContract = dsl.Object().UnknownStrip().
		Field("path", str()).Required().
		Field("views", integer()).Required().
		MustBuild()

	summaryContract = dsl.Object().UnknownStrip().
		Field("range", str()).Required().
		Field("pageViews", integer()).Required().
		Field("visitors", integer()).Required().
		Field("topPaths", dsl.Nullable(schema.ListOf[map[string]any](pathCountContract))).Optional().
		MustBuild()
)

func postSummaryFields() map[string]dsl.AnyAdapter {
	return map[string]dsl.AnyAdapter{
		"excerpt":      str(),
		"thumbnailUrl": dsl.Nullable(str()),
		"categoryId":   dsl.Nullable(str()),
		"tags":         dsl.Nullable(schema.ListOf[string](dsl.String())),
		"viewCount":    integer(),
		"likeCount":    integer(),
		"commentCount": integer(),
		"published":    flag(),
	}
}

// postObject declares a post summary, plus the detail-only fields when
// detail is set.
func postObject(detail bool) goskema.Schema[map[string]any] {
	b := dsl.Object().UnknownStrip().
		Field("id", str()).Required().
		Field("slug", str()).Required().
		Field("title", str()).Required().
		Field("createdAt", schema.Timestamp()).Required()
	for name, ad := range postSummaryFields() {
		b.Field(name, ad)
	}
	if detail {
		b.Field("content", str()).Required().
			Field("updatedAt", schema.Timestamp()).Optional().
			Field("liked", flag()).Optional()
	}
	return b.MustBuild()
}

// pageOf declares a page of items that each satisfy item.
func pageOf(item goskema.Schema[map[string]any]) goskema.Schema[map[string]any] {
	return dsl.Object().UnknownStrip().
		Field("content", dsl.Nullable(schema.ListOf[map[string]any](item))).Optional().
		Field("page", integer()).Required().
		Field("size", integer()).Required().
		Field("totalElements", integer()).Required().
		Field("totalPages", integer()).Required().
		Field("last", flag()).Optional().
		MustBuild()
}
