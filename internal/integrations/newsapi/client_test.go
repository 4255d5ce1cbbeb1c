package newsapi

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"portfolio-assistant/internal/integrations/paramstore"
)

const feedBody = `{
	"status": "ok",
	"totalResults": 4,
	"articles": [
		{"source": {"name": "Wired"}, "title": "New model tops benchmarks", "description": "A short summary.", "url": "https://example.com/a", "publishedAt": "2026-10-01T10:00:00Z"},
		{"source": {"name": ""}, "title": "[Removed]", "description": "[Removed]", "url": "https://removed.com", "publishedAt": "2026-10-01T09:00:00Z"},
		{"source": {"name": "Ars"}, "title": "No description", "description": "", "url": "https://example.com/b", "publishedAt": "2026-10-01T08:00:00Z"},
		{"source": {"name": ""}, "title": "Agents in production", "description": "` + "%LONG%" + `", "url": "https://example.com/c", "publishedAt": "2026-10-01T07:00:00Z"},
		{"source": {"name": "Verge"}, "title": "Third survivor", "description": "x", "url": "https://example.com/d", "publishedAt": "2026-10-01T06:00:00Z"}
	]
}`

func newFeedServer(t *testing.T, hits *int32, check func(*http.Request)) *httptest.Server {
	t.Helper()
	body := strings.Replace(feedBody, "%LONG%", strings.Repeat("a", 401), 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(hits, 1)
		if check != nil {
			check(r)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func stubNow(t *testing.T, at *time.Time) {
	t.Helper()
	prev := now
	now = func() time.Time { return *at }
	t.Cleanup(func() { now = prev })
}

func TestParseCategory(t *testing.T) {
	c, err := ParseCategory("")
	require.NoError(t, err)
	require.Equal(t, CategoryAll, c)

	c, err = ParseCategory(" LLM ")
	require.NoError(t, err)
	require.Equal(t, CategoryLLM, c)

	_, err = ParseCategory("sports")
	require.ErrorIs(t, err, ErrUnknownCategory)
}

func TestLatest_FiltersAndShapesArticles(t *testing.T) {
	var hits int32
	srv := newFeedServer(t, &hits, func(r *http.Request) {
		require.Equal(t, "/v2/everything", r.URL.Path)
		require.Equal(t, "news-key", r.Header.Get("X-Api-Key"))
		q := r.URL.Query()
		require.Equal(t, "en", q.Get("language"))
		require.Equal(t, "publishedAt", q.Get("sortBy"))
		require.Equal(t, "20", q.Get("pageSize"))
		require.Contains(t, q.Get("q"), "ChatGPT")
	})
	c, err := NewClient(WithBaseURL(srv.URL+"/v2"), WithAPIKey("news-key"))
	require.NoError(t, err)

	feed, err := c.Latest(context.Background(), CategoryLLM)
	require.NoError(t, err)
	require.Equal(t, CategoryLLM, feed.Category)
	require.Len(t, feed.Articles, 3)

	first, second, third := feed.Articles[0], feed.Articles[1], feed.Articles[2]
	require.Equal(t, "New model tops benchmarks", first.Title)
	require.Equal(t, "Wired", first.Source)
	require.Equal(t, "llm", first.Category)
	require.Equal(t, 1, first.ReadTime)
	require.True(t, first.Trending)

	require.Equal(t, "Unknown Source", second.Source)
	require.Equal(t, 3, second.ReadTime)
	require.True(t, second.Trending)

	require.False(t, third.Trending)
	require.NotEqual(t, first.ID, second.ID)
}

func TestLatest_AllUsesAILabel(t *testing.T) {
	var hits int32
	srv := newFeedServer(t, &hits, nil)
	c, err := NewClient(WithBaseURL(srv.URL), WithAPIKey("k"))
	require.NoError(t, err)

	feed, err := c.Latest(context.Background(), CategoryAll)
	require.NoError(t, err)
	require.Equal(t, "ai", feed.Articles[0].Category)
}

func TestLatest_CachesPerCategoryUntilTTL(t *testing.T) {
	var hits int32
	srv := newFeedServer(t, &hits, nil)
	at := time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)
	stubNow(t, &at)

	c, err := NewClient(WithBaseURL(srv.URL), WithAPIKey("k"), WithCacheTTL(time.Minute))
	require.NoError(t, err)
	ctx := context.Background()

	_, err = c.Latest(ctx, CategoryML)
	require.NoError(t, err)
	_, err = c.Latest(ctx, CategoryML)
	require.NoError(t, err)
	require.EqualValues(t, 1, atomic.LoadInt32(&hits))

	_, err = c.Latest(ctx, CategoryResearch)
	require.NoError(t, err)
	require.EqualValues(t, 2, atomic.LoadInt32(&hits))

	at = at.Add(2 * time.Minute)
	_, err = c.Latest(ctx, CategoryML)
	require.NoError(t, err)
	require.EqualValues(t, 3, atomic.LoadInt32(&hits))
}

func TestLatest_ErrorResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"status":"error","code":"apiKeyInvalid","message":"Your API key is invalid."}`))
	}))
	t.Cleanup(srv.Close)

	c, err := NewClient(WithBaseURL(srv.URL), WithAPIKey("bad"))
	require.NoError(t, err)
	_, err = c.Latest(context.Background(), CategoryAll)
	var se *StatusError
	require.ErrorAs(t, err, &se)
	require.Equal(t, http.StatusUnauthorized, se.HTTPStatusCode())
	require.Equal(t, "apiKeyInvalid", se.Code)
}

type fakeGetter struct {
	val   string
	err   error
	calls int
}

func (f *fakeGetter) GetParameter(context.Context, string) (string, error) {
	f.calls++
	return f.val, f.err
}

func TestLatest_APIKeyResolution(t *testing.T) {
	ctx := context.Background()

	c, err := NewClient()
	require.NoError(t, err)
	_, err = c.Latest(ctx, CategoryAll)
	require.ErrorIs(t, err, ErrNoAPIKey)

	c, err = NewClient(WithParamStore(&fakeGetter{err: paramstore.ErrNotFound}))
	require.NoError(t, err)
	_, err = c.Latest(ctx, CategoryAll)
	require.ErrorIs(t, err, ErrNoAPIKey)

	c, err = NewClient(WithParamStore(&fakeGetter{err: errors.New("throttled")}))
	require.NoError(t, err)
	_, err = c.Latest(ctx, CategoryAll)
	require.ErrorContains(t, err, "throttled")

	var hits int32
	srv := newFeedServer(t, &hits, func(r *http.Request) {
		require.Equal(t, "from-ssm", r.Header.Get("X-Api-Key"))
	})
	g := &fakeGetter{val: `{"token":"from-ssm"}`}
	c, err = NewClient(WithBaseURL(srv.URL), WithParamStore(g), WithCacheTTL(0))
	require.NoError(t, err)
	_, err = c.Latest(ctx, CategoryAll)
	require.NoError(t, err)
	_, err = c.Latest(ctx, CategoryAll)
	require.NoError(t, err)
	require.Equal(t, 1, g.calls)
	require.EqualValues(t, 2, atomic.LoadInt32(&hits))
}

func TestLatest_UnknownCategory(t *testing.T) {
	c, err := NewClient(WithAPIKey("k"))
	require.NoError(t, err)
	_, err = c.Latest(context.Background(), Category("sports"))
	require.ErrorIs(t, err, ErrUnknownCategory)
}

func TestReadTime(t *testing.T) {
	require.Equal(t, 3, readTime(""))
	require.Equal(t, 1, readTime("short"))
	require.Equal(t, 1, readTime(strings.Repeat("a", 200)))
	require.Equal(t, 2, readTime(strings.Repeat("a", 201)))
}
