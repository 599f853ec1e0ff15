// Package social implements the social media source. There is no live
// integration; the source serves a fixed post corpus with a small
// artificial delay so it behaves like a remote call.
package social

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/umputun/pulse/pkg/domain"
)

const trendingHashtagLimit = 10

// Source serves mock social posts
type Source struct {
	delay time.Duration
	now   func() time.Time
}

// Option configures the source
type Option func(*Source)

// WithClock overrides the time source, used in tests
func WithClock(now func() time.Time) Option {
	return func(s *Source) { s.now = now }
}

// New creates a social source with the given artificial delay
func New(delay time.Duration, opts ...Option) *Source {
	s := &Source{delay: delay, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// post is a corpus template. Category is topical (technology, sports,
// travel...) and independent of the platform the post came from.
type post struct {
	tag      string
	platform string
	category string
	author   string
	text     string
	imageURL string
	age      time.Duration
	likes    int
	retweets int
	comments int
	hashtags []string
}

var posts = []post{
	{"tw-1", "twitter", "technology", "@technews", "Breaking: major advances in quantum computing announced today. This could change everything we know about processing power.", "https://picsum.photos/400/300?random=60", 2 * time.Hour, 1250, 340, 89, []string{"quantum", "technology", "computing"}},
	{"tw-2", "twitter", "technology", "@airesearcher", "New language model shows remarkable reasoning capabilities. The pace of AI progress is incredible.", "https://picsum.photos/400/300?random=61", 5 * time.Hour, 890, 210, 156, []string{"ai", "machinelearning", "research"}},
	{"tw-3", "twitter", "sports", "@sportsfan", "What a match! That last-minute goal will be remembered for years. Absolutely incredible finish!", "https://picsum.photos/400/300?random=62", 8 * time.Hour, 2100, 560, 430, []string{"football", "sports", "goals"}},
	{"tw-4", "twitter", "business", "@startupworld", "Just closed our Series A! Grateful to everyone who believed in our vision from day one.", "https://picsum.photos/400/300?random=63", 12 * time.Hour, 450, 89, 67, []string{"startup", "funding", "entrepreneurship"}},
	{"ig-1", "instagram", "travel", "@travel.explorer", "Sunset views from the mountains. Nature never fails to amaze me.", "https://picsum.photos/400/400?random=64", 3 * time.Hour, 3400, 0, 234, []string{"travel", "nature", "sunset"}},
	{"ig-2", "instagram", "food", "@foodie.adventures", "Homemade pasta night! Recipe in bio. Who else loves Italian cuisine?", "https://picsum.photos/400/400?random=65", 6 * time.Hour, 1800, 0, 145, []string{"food", "cooking", "italian"}},
	{"ig-3", "instagram", "sports", "@fitness.daily", "Morning workout complete! Consistency is the key to progress.", "https://picsum.photos/400/400?random=66", 9 * time.Hour, 980, 0, 78, []string{"fitness", "workout", "motivation"}},
	{"li-1", "linkedin", "business", "Sarah Chen", "Thrilled to announce I'm joining the product team at a leading tech company. Excited for this new chapter!", "https://picsum.photos/400/300?random=67", 4 * time.Hour, 560, 0, 123, []string{"career", "newjob", "technology"}},
	{"li-2", "linkedin", "business", "Michael Torres", "5 lessons I learned from leading a remote team for 3 years. Thread below.", "https://picsum.photos/400/300?random=68", 10 * time.Hour, 780, 0, 201, []string{"leadership", "remotework", "management"}},
}

// Posts returns the full corpus sorted by engagement, most engaged
// first.
func (s *Source) Posts(ctx context.Context) ([]domain.ContentItem, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	return sortByEngagement(s.all()), nil
}

// Trending returns posts in a topical category, most engaged first.
// An empty category returns the full corpus.
func (s *Source) Trending(ctx context.Context, category string) ([]domain.ContentItem, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	cat := strings.ToLower(category)
	return sortByEngagement(s.filter(func(p post) bool {
		return cat == "" || p.category == cat
	})), nil
}

// ByHashtag returns posts carrying the given hashtag, optionally
// narrowed to a single platform.
func (s *Source) ByHashtag(ctx context.Context, hashtag, platform string) ([]domain.ContentItem, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	tag := strings.ToLower(strings.TrimPrefix(hashtag, "#"))
	pl := strings.ToLower(platform)
	return sortByEngagement(s.filter(func(p post) bool {
		if pl != "" && p.platform != pl {
			return false
		}
		for _, h := range p.hashtags {
			if h == tag {
				return true
			}
		}
		return false
	})), nil
}

// ByUser returns posts authored by the given user
func (s *Source) ByUser(ctx context.Context, user string) ([]domain.ContentItem, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	u := strings.ToLower(user)
	return sortByEngagement(s.filter(func(p post) bool {
		return strings.ToLower(p.author) == u
	})), nil
}

// ByPlatform returns posts from a single platform
func (s *Source) ByPlatform(ctx context.Context, platform string) ([]domain.ContentItem, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	pl := strings.ToLower(platform)
	return sortByEngagement(s.filter(func(p post) bool { return p.platform == pl })), nil
}

// Search matches query against post text, author and hashtags
func (s *Source) Search(ctx context.Context, query string) ([]domain.ContentItem, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	q := strings.ToLower(query)
	return sortByEngagement(s.filter(func(p post) bool {
		if strings.Contains(strings.ToLower(p.text), q) || strings.Contains(strings.ToLower(p.author), q) {
			return true
		}
		for _, h := range p.hashtags {
			if strings.Contains(h, q) {
				return true
			}
		}
		return false
	})), nil
}

// TrendingHashtags returns hashtags ranked by the total engagement of
// the posts using them, capped at 10.
func (s *Source) TrendingHashtags(ctx context.Context) ([]string, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}

	scores := map[string]int{}
	for _, p := range posts {
		for _, h := range p.hashtags {
			scores[h] += p.likes + p.retweets + p.comments
		}
	}

	tags := make([]string, 0, len(scores))
	for h := range scores {
		tags = append(tags, h)
	}
	sort.Slice(tags, func(i, j int) bool {
		if scores[tags[i]] != scores[tags[j]] {
			return scores[tags[i]] > scores[tags[j]]
		}
		return tags[i] < tags[j]
	})
	if len(tags) > trendingHashtagLimit {
		tags = tags[:trendingHashtagLimit]
	}
	return tags, nil
}

// UserSuggestions returns the distinct post authors, most engaged first
func (s *Source) UserSuggestions(ctx context.Context) ([]string, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}

	scores := map[string]int{}
	order := make([]string, 0, len(posts))
	for _, p := range posts {
		if _, ok := scores[p.author]; !ok {
			order = append(order, p.author)
		}
		scores[p.author] += p.likes + p.retweets + p.comments
	}
	sort.SliceStable(order, func(i, j int) bool { return scores[order[i]] > scores[order[j]] })
	return order, nil
}

// wait simulates remote latency, honoring cancellation
func (s *Source) wait(ctx context.Context) error {
	if s.delay <= 0 {
		return ctx.Err()
	}
	select {
	case <-time.After(s.delay):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *Source) all() []domain.ContentItem {
	return s.filter(func(post) bool { return true })
}

func (s *Source) filter(keep func(post) bool) []domain.ContentItem {
	batch := s.now()
	res := make([]domain.ContentItem, 0, len(posts))
	for i, p := range posts {
		if !keep(p) {
			continue
		}
		res = append(res, domain.ContentItem{
			ID:          domain.BatchID(p.tag, batch, i),
			Title:       p.author,
			Description: p.text,
			ImageURL:    p.imageURL,
			Category:    p.category,
			Source:      platformName(p.platform),
			PublishedAt: batch.Add(-p.age),
			URL:         "#",
			Type:        domain.TypeSocial,
			Social: &domain.SocialMeta{
				Author:   p.author,
				Likes:    p.likes,
				Retweets: p.retweets,
				Comments: p.comments,
				Hashtags: append([]string(nil), p.hashtags...),
			},
		})
	}
	return res
}

func platformName(platform string) string {
	switch platform {
	case "twitter":
		return "Twitter"
	case "instagram":
		return "Instagram"
	case "linkedin":
		return "LinkedIn"
	}
	return platform
}

func sortByEngagement(items []domain.ContentItem) []domain.ContentItem {
	sort.SliceStable(items, func(i, j int) bool { return items[i].Engagement() > items[j].Engagement() })
	return items
}
