// Package e2e runs the feature client against the development API over
// real HTTP, in both executor variants.
package e2e

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/DevNathan/codemasterpiece-frontend-sub001/adapters/clock"
	"github.com/DevNathan/codemasterpiece-frontend-sub001/adapters/devapi"
	"github.com/DevNathan/codemasterpiece-frontend-sub001/adapters/fetch"
	"github.com/DevNathan/codemasterpiece-frontend-sub001/adapters/hasher"
	"github.com/DevNathan/codemasterpiece-frontend-sub001/adapters/idgen"
	"github.com/DevNathan/codemasterpiece-frontend-sub001/adapters/memory"
	"github.com/DevNathan/codemasterpiece-frontend-sub001/app"
	"github.com/DevNathan/codemasterpiece-frontend-sub001/core/formbridge"
	"github.com/DevNathan/codemasterpiece-frontend-sub001/domain/analytics"
	"github.com/DevNathan/codemasterpiece-frontend-sub001/domain/category"
	"github.com/DevNathan/codemasterpiece-frontend-sub001/domain/comment"
	"github.com/DevNathan/codemasterpiece-frontend-sub001/domain/post"
	"github.com/DevNathan/codemasterpiece-frontend-sub001/domain/request"
	"github.com/DevNathan/codemasterpiece-frontend-sub001/domain/result"
)

const pngHeader = "\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR"

// startAPI serves a freshly seeded development API.
func startAPI(t *testing.T, latency time.Duration) (*httptest.Server, *memory.Content) {
	t.Helper()
	store := memory.NewContent(idgen.UUID{}, clock.System{}, hasher.Plain{})
	if err := devapi.Seed(store); err != nil {
		t.Fatalf("Seed: %v", err)
	}
	h := devapi.New(devapi.Deps{Store: store, Logger: zerolog.Nop(), Latency: latency})
	srv := httptest.NewServer(h.Router())
	t.Cleanup(srv.Close)
	return srv, store
}

func browserClient(t *testing.T, baseURL string, session string, timeout time.Duration) *app.Client {
	t.Helper()
	jar := newJar(t, baseURL, session)
	ex, err := fetch.NewBrowser(fetch.Config{BaseURL: baseURL, Locale: "ko", Timeout: timeout}, jar)
	if err != nil {
		t.Fatalf("NewBrowser: %v", err)
	}
	return app.NewClient(ex, zerolog.Nop())
}

func serverClient(t *testing.T, baseURL string) *app.Client {
	t.Helper()
	ex, err := fetch.NewServer(fetch.Config{BaseURL: baseURL, Locale: "ko"})
	if err != nil {
		t.Fatalf("NewServer: %v", err)
	}
	return app.NewClient(ex, zerolog.Nop())
}

func asAdmin(ctx context.Context) context.Context {
	return fetch.WithIdentity(ctx, fetch.Identity{Cookie: devapi.SessionCookie + "=" + devapi.AdminToken})
}

func TestE2E_ReadingFlow(t *testing.T) {
	api, _ := startAPI(t, 0)
	client := browserClient(t, api.URL, "", 0)
	ctx := context.Background()

	tree, err := fetch.Unwrap(client.ListCategories(ctx))
	if err != nil {
		t.Fatalf("ListCategories: %v", err)
	}
	if _, ok := category.Find(*tree, (*tree)[0].Children[0].ID); !ok {
		t.Error("nested category not found in tree")
	}

	p, err := client.ListPosts(ctx, post.Query{Sort: post.SortOldest})
	if err != nil {
		t.Fatalf("ListPosts: %v", err)
	}
	if p.TotalElements != 2 {
		t.Errorf("TotalElements = %d, want 2 published posts", p.TotalElements)
	}

	first := p.Content[0]
	d, err := client.GetPost(ctx, first.Slug)
	if err != nil {
		t.Fatalf("GetPost: %v", err)
	}
	if d.Title != "Hello World" || d.ViewCount != 1 {
		t.Errorf("GetPost() = %q with %d views", d.Title, d.ViewCount)
	}

	thread, err := client.ListComments(ctx, first.ID)
	if err != nil {
		t.Fatalf("ListComments: %v", err)
	}
	if comment.Count(thread) != 1 || !thread[0].Author.Guest {
		t.Errorf("thread = %+v, want the seeded guest comment", thread)
	}

	_, err = client.GetPost(ctx, "missing")
	if !fetch.IsCode(err, "error.post.not_found") {
		t.Errorf("GetPost(missing) = %v, want error.post.not_found", err)
	}

	if me, err := client.Me(ctx); err != nil || me != nil {
		t.Errorf("Me() = %+v, %v, want anonymous", me, err)
	}
}

func TestE2E_GuestDeleteProjectsOntoForm(t *testing.T) {
	api, _ := startAPI(t, 0)
	client := browserClient(t, api.URL, "", 0)
	ctx := context.Background()

	first, err := client.ListPosts(ctx, post.Query{Sort: post.SortOldest})
	if err != nil {
		t.Fatalf("ListPosts: %v", err)
	}
	postID := first.Content[0].ID

	created := client.CreateComment(ctx, comment.Draft{
		PostID:        postID,
		Content:       "지나가던 손님입니다.",
		Nickname:      "nathan",
		GuestPassword: "secret",
	})
	c, failure := created.Unpack()
	if failure != nil {
		t.Fatalf("CreateComment: %v", failure)
	}

	bridge := formbridge.New(zerolog.Nop())
	form := memory.NewForm("guestPassword")
	toasts := memory.NewNotifier()

	env := client.DeleteComment(ctx, c.ID, "wrong")
	if got := env.Err(); got == nil || got.Code != result.CodeValidation || got.Status != http.StatusUnprocessableEntity {
		t.Fatalf("DeleteComment(wrong) = %+v, want 422 %s", got, result.CodeValidation)
	}
	if rest := formbridge.HandleEnvelope(bridge, form, toasts, env); rest != nil {
		t.Fatalf("Handle() = %v, want the failure absorbed by the form", rest)
	}
	if msg, _ := form.Error("guestPassword"); msg != "비밀번호가 올바르지 않습니다." {
		t.Errorf("guestPassword error = %q", msg)
	}
	if form.Focused() != "guestPassword" {
		t.Errorf("focused = %q, want guestPassword", form.Focused())
	}
	if len(toasts.Toasts()) != 0 {
		t.Errorf("toasts = %v, want none", toasts.Toasts())
	}

	if env := client.DeleteComment(ctx, c.ID, "secret"); !result.IsSuccess(env) {
		t.Fatalf("DeleteComment(secret) = %v", env.Err())
	}
	thread, err := client.ListComments(ctx, postID)
	if err != nil {
		t.Fatalf("ListComments: %v", err)
	}
	if comment.Count(thread) != 1 {
		t.Errorf("comment count after delete = %d, want 1", comment.Count(thread))
	}
}

func TestE2E_AuthorizationFailuresReachTheToast(t *testing.T) {
	api, _ := startAPI(t, 0)
	ctx := context.Background()
	bridge := formbridge.New(zerolog.Nop())

	tests := []struct {
		name    string
		session string
		want    result.Code
	}{
		{"anonymous", "", result.CodeUnauthorized},
		{"member", devapi.MemberToken, result.CodeForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := browserClient(t, api.URL, tt.session, 0)
			form := memory.NewForm("name", "type")
			toasts := memory.NewNotifier()

			env := client.CreateCategory(ctx, category.Create{Type: category.TypeFolder})
			rest := formbridge.HandleEnvelope(bridge, form, toasts, env)
			if rest == nil || rest.Code != tt.want {
				t.Fatalf("Handle() = %v, want %s", rest, tt.want)
			}
			if len(form.Errors()) != 0 {
				t.Errorf("form errors = %v, want none", form.Errors())
			}
			if got := toasts.Toasts(); len(got) != 1 || got[0].Code != tt.want {
				t.Errorf("toasts = %v", got)
			}
		})
	}
}

func TestE2E_AdminServerRendering(t *testing.T) {
	api, store := startAPI(t, 0)
	client := serverClient(t, api.URL)
	ctx := asAdmin(context.Background())

	me, err := client.Me(ctx)
	if err != nil || me == nil || !me.IsAdmin() {
		t.Fatalf("Me() = %+v, %v, want the admin", me, err)
	}

	form := memory.NewForm("name", "type", "link")
	invalid := client.CreateCategory(ctx, category.Create{Type: category.TypeFolder})
	if rest := formbridge.HandleEnvelope(formbridge.New(zerolog.Nop()), form, nil, invalid); rest != nil {
		t.Fatalf("Handle() = %v, want field errors", rest)
	}
	if _, ok := form.Error("name"); !ok || form.Focused() != "name" {
		t.Errorf("form = %v focused %q, want an error on name", form.Errors(), form.Focused())
	}

	cat, failure := client.CreateCategory(ctx, category.Create{Name: "Rust", Type: category.TypeFolder}).Unpack()
	if failure != nil {
		t.Fatalf("CreateCategory: %v", failure)
	}

	created, failure := client.CreatePost(ctx, post.Draft{
		Title:      "Server Rendering",
		CategoryID: cat.ID,
		Content:    "본문",
		Tags:       []string{"ssr"},
		Published:  true,
		Thumbnail:  &request.File{Field: "thumbnail", Name: "t.png", ContentType: "image/png", Content: []byte(pngHeader)},
	}).Unpack()
	if failure != nil {
		t.Fatalf("CreatePost: %v", failure)
	}
	if created.Slug != "server-rendering" || !strings.HasPrefix(created.ThumbnailURL, api.URL) {
		t.Errorf("CreatePost() = slug %q thumbnail %q", created.Slug, created.ThumbnailURL)
	}

	resp, err := http.Get(created.ThumbnailURL)
	if err != nil {
		t.Fatalf("GET thumbnail: %v", err)
	}
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK || string(body) != pngHeader {
		t.Errorf("thumbnail = %d %q", resp.StatusCode, body)
	}

	liked, failure := client.TogglePostLike(ctx, created.ID).Unpack()
	if failure != nil || !liked.Liked || liked.LikeCount != 1 {
		t.Errorf("TogglePostLike() = %+v, %v", liked, failure)
	}

	if env := client.TrackView(ctx, analytics.View{Path: "/posts/server-rendering"}); !result.IsSuccess(env) {
		t.Fatalf("TrackView: %v", env.Err())
	}
	summary, err := client.AnalyticsSummary(ctx, analytics.RangeDay)
	if err != nil {
		t.Fatalf("AnalyticsSummary: %v", err)
	}
	if summary.PageViews != 1 {
		t.Errorf("PageViews = %d, want 1", summary.PageViews)
	}

	if env := client.DeletePost(ctx, created.ID); !result.IsSuccess(env) {
		t.Fatalf("DeletePost: %v", env.Err())
	}
	if got := store.Posts(post.Query{Category: cat.ID}); got.TotalElements != 0 {
		t.Errorf("posts in %s after delete = %d", cat.ID, got.TotalElements)
	}

	anonymous, err := client.Me(context.Background())
	if err != nil || anonymous != nil {
		t.Errorf("Me() without identity = %+v, %v, want anonymous", anonymous, err)
	}
}

func TestE2E_SiteForwardsVisitorIdentity(t *testing.T) {
	api, _ := startAPI(t, 0)
	client := serverClient(t, api.URL)

	site := httptest.NewServer(fetch.ForwardIdentity(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		me, err := client.Me(r.Context())
		switch {
		case err != nil:
			http.Error(w, err.Error(), http.StatusBadGateway)
		case me == nil:
			io.WriteString(w, "guest")
		default:
			io.WriteString(w, me.Nickname)
		}
	})))
	t.Cleanup(site.Close)

	tests := []struct {
		name   string
		cookie string
		want   string
	}{
		{"anonymous visitor", "", "guest"},
		{"member visitor", devapi.SessionCookie + "=" + devapi.MemberToken, devapi.Member.Nickname},
		{"admin visitor", devapi.SessionCookie + "=" + devapi.AdminToken, devapi.Admin.Nickname},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, _ := http.NewRequest(http.MethodGet, site.URL, nil)
			if tt.cookie != "" {
				req.Header.Set("Cookie", tt.cookie)
			}
			resp, err := http.DefaultClient.Do(req)
			if err != nil {
				t.Fatalf("request failed: %v", err)
			}
			body, _ := io.ReadAll(resp.Body)
			resp.Body.Close()
			if string(body) != tt.want {
				t.Errorf("rendered %q, want %q", body, tt.want)
			}
		})
	}
}

func TestE2E_Timeout(t *testing.T) {
	api, _ := startAPI(t, 300*time.Millisecond)
	client := browserClient(t, api.URL, "", 50*time.Millisecond)

	env := client.ListCategories(context.Background())
	if got := env.Err(); got == nil || got.Code != result.CodeTimeout {
		t.Fatalf("ListCategories() = %+v, want %s", got, result.CodeTimeout)
	}
	if env.Err().Message != "요청 시간이 초과되었습니다." {
		t.Errorf("message = %q", env.Err().Message)
	}
}
