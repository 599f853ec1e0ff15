package cache

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/pulse/pkg/domain"
)

func items(ids ...string) []domain.ContentItem {
	res := make([]domain.ContentItem, 0, len(ids))
	for _, id := range ids {
		res = append(res, domain.ContentItem{ID: id, Type: domain.TypeNews, Title: "item " + id})
	}
	return res
}

func TestCache_GetSet(t *testing.T) {
	c := New(time.Minute)

	_, ok := c.Get("missing")
	assert.False(t, ok)

	c.Set("k1", items("a", "b"))
	got, ok := c.Get("k1")
	require.True(t, ok)
	require.Len(t, got, 2)
	assert.Equal(t, "a", got[0].ID)

	assert.True(t, c.Has("k1"))
	assert.False(t, c.Has("k2"))
	assert.Equal(t, 1, c.Len())
}

func TestCache_Expiry(t *testing.T) {
	now := time.Now()
	current := now
	var mu sync.Mutex
	clock := func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		return current
	}

	c := New(5*time.Minute, WithClock(clock))
	c.Set("k", items("a"))

	_, ok := c.Get("k")
	assert.True(t, ok, "fresh entry served")

	mu.Lock()
	current = now.Add(5*time.Minute - time.Second)
	mu.Unlock()
	_, ok = c.Get("k")
	assert.True(t, ok, "entry just under ttl still served")

	mu.Lock()
	current = now.Add(5 * time.Minute)
	mu.Unlock()
	_, ok = c.Get("k")
	assert.False(t, ok, "entry at ttl expired")

	// overwriting refreshes the timestamp
	c.Set("k", items("b"))
	got, ok := c.Get("k")
	require.True(t, ok)
	assert.Equal(t, "b", got[0].ID)
}

func TestCache_Concurrent(t *testing.T) {
	c := New(time.Minute)
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				c.Set("shared", items("x"))
				c.Get("shared")
			}
		}()
	}
	wg.Wait()

	got, ok := c.Get("shared")
	require.True(t, ok)
	assert.Equal(t, "x", got[0].ID)
}

func TestKey(t *testing.T) {
	k1 := Key("rss", []string{"technology", "news"})
	k2 := Key("rss", []string{"technology", "news"})
	assert.Equal(t, k1, k2, "structurally equal params map to the same key")

	k3 := Key("rss", []string{"news", "technology"})
	assert.NotEqual(t, k1, k3, "order matters")

	k4 := Key("rss-search", []string{"technology", "news"})
	assert.NotEqual(t, k1, k4, "endpoint is part of the key")

	type params struct {
		Query      string
		Categories []string
	}
	k5 := Key("rss-search", params{Query: "go", Categories: []string{"technology"}})
	assert.Contains(t, k5, "rss-search-")
}
