package feed

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/mmcdole/gofeed"
	ext "github.com/mmcdole/gofeed/extensions"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/pulse/pkg/cache"
	"github.com/umputun/pulse/pkg/domain"
)

const rssTemplate = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0" xmlns:media="http://search.yahoo.com/mrss/">
<channel>
<title>%s</title>
<item>
  <title>First Story</title>
  <link>https://example.com/first</link>
  <description>&lt;p&gt;Plain &lt;b&gt;text&lt;/b&gt; body&lt;/p&gt;</description>
  <pubDate>Mon, 02 Jan 2023 15:04:05 GMT</pubDate>
  <media:content url="https://example.com/first.jpg" medium="image"/>
</item>
<item>
  <title>Second Story</title>
  <link>https://example.com/second</link>
  <description>&lt;img src="https://example.com/inline.png"/&gt; inline image story</description>
  <pubDate>Tue, 03 Jan 2023 10:00:00 GMT</pubDate>
</item>
</channel>
</rss>`

func TestAdapter_Fetch(t *testing.T) {
	var hits int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		atomic.AddInt32(&hits, 1)
		fmt.Fprintf(w, rssTemplate, "Test Feed")
	}))
	defer ts.Close()

	feeds := map[string][]string{"technology": {ts.URL}}
	a := New(feeds, cache.New(5*time.Minute), 3*time.Second)

	items, err := a.Fetch(context.Background(), []string{"technology"}, 1)
	require.NoError(t, err)
	require.Len(t, items, 2)

	// newest first
	assert.Equal(t, "Second Story", items[0].Title)
	assert.Equal(t, "First Story", items[1].Title)

	assert.Equal(t, "Plain text body", items[1].Description, "html should be stripped")
	assert.Equal(t, "https://example.com/first.jpg", items[1].ImageURL, "media:content image")
	assert.Equal(t, "https://example.com/inline.png", items[0].ImageURL, "inline img image")
	assert.Equal(t, "technology", items[0].Category)
	assert.Equal(t, "Test Feed", items[0].Source)
	assert.Equal(t, domain.TypeNews, items[0].Type)

	// second fetch served from cache
	again, err := a.Fetch(context.Background(), []string{"technology"}, 1)
	require.NoError(t, err)
	assert.Equal(t, items, again)
	assert.Equal(t, int32(1), atomic.LoadInt32(&hits), "cached batch should not refetch")
}

func TestAdapter_Fetch_PagesGetDistinctIDs(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprintf(w, rssTemplate, "Test Feed")
	}))
	defer ts.Close()

	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	calls := 0
	clock := func() time.Time {
		calls++
		return base.Add(time.Duration(calls) * time.Second)
	}

	feeds := map[string][]string{"technology": {ts.URL}}
	a := New(feeds, cache.New(5*time.Minute), 3*time.Second, WithClock(clock))

	first, err := a.Fetch(context.Background(), []string{"technology"}, 1)
	require.NoError(t, err)
	second, err := a.Fetch(context.Background(), []string{"technology"}, 2)
	require.NoError(t, err)
	require.NotEmpty(t, first)
	require.NotEmpty(t, second)

	seen := map[string]bool{}
	for _, it := range first {
		seen[it.ID] = true
	}
	for _, it := range second {
		assert.False(t, seen[it.ID], "page 2 item %s reuses a page 1 id", it.ID)
	}
}

func TestAdapter_Fetch_PartialFailure(t *testing.T) {
	good := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprintf(w, rssTemplate, "Good Feed")
	}))
	defer good.Close()
	bad := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer bad.Close()

	feeds := map[string][]string{"news": {good.URL, bad.URL}}
	a := New(feeds, cache.New(5*time.Minute), 3*time.Second)

	items, err := a.Fetch(context.Background(), []string{"news"}, 1)
	require.NoError(t, err, "one live feed is enough")
	assert.Len(t, items, 2)
}

func TestAdapter_Fetch_AllFail(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer ts.Close()

	feeds := map[string][]string{"news": {ts.URL}, "sports": {ts.URL + "/other"}}
	a := New(feeds, cache.New(5*time.Minute), 3*time.Second)

	items, err := a.Fetch(context.Background(), []string{"news", "sports"}, 1)
	require.Error(t, err)
	assert.True(t, domain.IsSourceError(err), "total feed failure must be recoverable")
	assert.Nil(t, items)
}

func TestAdapter_Fetch_Dedupe(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprintf(w, rssTemplate, "Mirror Feed")
	})
	ts1 := httptest.NewServer(handler)
	defer ts1.Close()
	ts2 := httptest.NewServer(handler)
	defer ts2.Close()

	feeds := map[string][]string{"news": {ts1.URL, ts2.URL}}
	a := New(feeds, cache.New(5*time.Minute), 3*time.Second)

	items, err := a.Fetch(context.Background(), []string{"news"}, 1)
	require.NoError(t, err)
	assert.Len(t, items, 2, "syndicated duplicates collapse to one")
}

func TestAdapter_Search(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprintf(w, rssTemplate, "Test Feed")
	}))
	defer ts.Close()

	feeds := map[string][]string{"news": {ts.URL}}
	a := New(feeds, cache.New(5*time.Minute), 3*time.Second)

	items, err := a.Search(context.Background(), "inline")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Second Story", items[0].Title)

	none, err := a.Search(context.Background(), "no such text")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestAdapter_Search_AllFeeds(t *testing.T) {
	tech := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprintf(w, rssTemplate, "Tech Feed")
	}))
	defer tech.Close()
	sports := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0"><channel><title>Sports Feed</title>
<item><title>Cup Final Recap</title><link>https://example.com/final</link>
<description>unforgettable final whistle</description>
<pubDate>Wed, 04 Jan 2023 09:00:00 GMT</pubDate></item>
</channel></rss>`)
	}))
	defer sports.Close()

	feeds := map[string][]string{"technology": {tech.URL}, "sports": {sports.URL}}
	a := New(feeds, cache.New(5*time.Minute), 3*time.Second)

	// sports is not in any subscription here, search still covers it
	items, err := a.Search(context.Background(), "final")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Cup Final Recap", items[0].Title)
	assert.Equal(t, "sports", items[0].Category)
}

func TestAdapter_CleanMultibyte(t *testing.T) {
	a := New(nil, cache.New(time.Minute), time.Second)

	got := a.clean("héllo wörld", 6)
	assert.Equal(t, "héllo ...", got)
	assert.True(t, utf8.ValidString(got), "truncation must not split a rune")

	assert.Equal(t, "short", a.clean("short", 10), "under the limit stays whole")
}

func TestExtractImage(t *testing.T) {
	tests := []struct {
		name string
		item gofeed.Item
		want string
	}{
		{
			name: "media content wins",
			item: gofeed.Item{
				Extensions: ext.Extensions{"media": {"content": {{Attrs: map[string]string{"url": "https://e.com/m.jpg"}}}}},
				Enclosures: []*gofeed.Enclosure{{Type: "image/png", URL: "https://e.com/enc.png"}},
			},
			want: "https://e.com/m.jpg",
		},
		{
			name: "media thumbnail",
			item: gofeed.Item{
				Extensions: ext.Extensions{"media": {"thumbnail": {{Attrs: map[string]string{"url": "https://e.com/t.jpg"}}}}},
			},
			want: "https://e.com/t.jpg",
		},
		{
			name: "image enclosure",
			item: gofeed.Item{Enclosures: []*gofeed.Enclosure{
				{Type: "audio/mpeg", URL: "https://e.com/a.mp3"},
				{Type: "image/jpeg", URL: "https://e.com/enc.jpg"},
			}},
			want: "https://e.com/enc.jpg",
		},
		{
			name: "img tag in content",
			item: gofeed.Item{Content: `<div><img src="https://e.com/c.png" alt=""/></div>`},
			want: "https://e.com/c.png",
		},
		{
			name: "link is an image",
			item: gofeed.Item{Link: "https://e.com/photo.JPG?size=large"},
			want: "https://e.com/photo.JPG?size=large",
		},
		{
			name: "placeholder fallback",
			item: gofeed.Item{Link: "https://e.com/article"},
			want: "https://picsum.photos/400/300?random=21",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := extractImage(&tt.item, "technology", 1)
			assert.Equal(t, tt.want, got)
		})
	}
}
