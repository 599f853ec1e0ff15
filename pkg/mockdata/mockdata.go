// Package mockdata holds the deterministic fallback corpus returned when
// live sources are unavailable. Fallback is a normal, expected mode of
// operation: adapters resolve to this data instead of surfacing source
// failures.
package mockdata

import (
	"fmt"
	"strings"
	"time"

	"github.com/umputun/pulse/pkg/domain"
)

const pageSize = 8

// article is a corpus template, stamped with batch-unique IDs on use
type article struct {
	tag         string
	title       string
	description string
	imageURL    string
	category    string
	source      string
}

var corpus = []article{
	{"tech-1", "Latest Tech Trends in 2024", "Discover the most exciting technology trends that will shape the future.", "https://picsum.photos/400/300?random=100", "technology", "Tech News"},
	{"tech-2", "AI Breakthroughs This Week", "Latest developments in artificial intelligence and machine learning.", "https://picsum.photos/400/300?random=101", "technology", "AI Weekly"},
	{"tech-3", "Cybersecurity Updates", "Important security updates and cyber threat intelligence.", "https://picsum.photos/400/300?random=102", "technology", "Security Daily"},
	{"tech-4", "Blockchain Technology Revolution", "How blockchain is transforming various industries and creating new opportunities.", "https://picsum.photos/400/300?random=115", "technology", "Blockchain Weekly"},
	{"tech-5", "Cloud Computing Solutions", "Latest developments in cloud technology and infrastructure.", "https://picsum.photos/400/300?random=116", "technology", "Cloud Tech"},
	{"business-1", "Business Strategy Insights", "Learn from successful business leaders and their strategic approaches.", "https://picsum.photos/400/300?random=103", "business", "Business Weekly"},
	{"business-2", "Market Analysis Report", "Comprehensive analysis of current market trends and opportunities.", "https://picsum.photos/400/300?random=104", "business", "Market Insights"},
	{"business-3", "Startup Success Stories", "Inspiring stories of successful startups and entrepreneurs.", "https://picsum.photos/400/300?random=105", "business", "Startup Daily"},
	{"sports-1", "Sports Highlights This Week", "Catch up on the latest sports news and highlights from around the world.", "https://picsum.photos/400/300?random=106", "sports", "Sports Central"},
	{"sports-2", "Championship Finals Preview", "Everything you need to know about the upcoming championship matches.", "https://picsum.photos/400/300?random=107", "sports", "Sports Weekly"},
	{"sports-3", "Athlete of the Month", "Meet the outstanding athlete who dominated this month's competitions.", "https://picsum.photos/400/300?random=108", "sports", "Athlete Spotlight"},
	{"news-1", "Breaking News Update", "Latest breaking news from around the world.", "https://picsum.photos/400/300?random=109", "news", "World News"},
	{"news-2", "Global Events Roundup", "Comprehensive coverage of major global events and developments.", "https://picsum.photos/400/300?random=110", "news", "Global News"},
	{"news-3", "Weather and Climate News", "Latest updates on weather patterns and climate change developments.", "https://picsum.photos/400/300?random=111", "news", "Weather Central"},
	{"entertainment-1", "Entertainment Industry Updates", "Stay updated with the latest news from the entertainment world.", "https://picsum.photos/400/300?random=112", "entertainment", "Entertainment Daily"},
	{"entertainment-2", "Movie Reviews and Previews", "Latest movie reviews and upcoming film previews.", "https://picsum.photos/400/300?random=113", "entertainment", "Movie Central"},
	{"entertainment-3", "Celebrity News and Gossip", "Latest celebrity news, interviews, and behind-the-scenes stories.", "https://picsum.photos/400/300?random=114", "entertainment", "Celebrity Weekly"},
}

// rssFallback is the per-category substitute when every live feed fails
var rssFallback = map[string][]article{
	"news": {
		{"mock-news-1", "Breaking: Major Tech Breakthrough Announced", "Scientists have announced a revolutionary breakthrough in quantum computing technology.", "https://picsum.photos/400/300?random=10", "news", "Mock News"},
		{"mock-news-2", "Global Economic Summit Concludes", "World leaders have reached consensus on new economic policies.", "https://picsum.photos/400/300?random=11", "news", "Mock News"},
	},
	"technology": {
		{"mock-tech-1", "AI Revolution: New Developments", "Latest developments in artificial intelligence are reshaping industries.", "https://picsum.photos/400/300?random=20", "technology", "Mock Tech"},
		{"mock-tech-2", "Cybersecurity: New Threats Identified", "Security experts warn about emerging cyber threats.", "https://picsum.photos/400/300?random=21", "technology", "Mock Tech"},
	},
	"sports": {
		{"mock-sports-1", "Championship Finals: Epic Showdown", "The most anticipated sports event of the year is set to begin.", "https://picsum.photos/400/300?random=30", "sports", "Mock Sports"},
		{"mock-sports-2", "Olympic Preparations Underway", "Countries prepare for the upcoming Olympic games.", "https://picsum.photos/400/300?random=31", "sports", "Mock Sports"},
	},
	"entertainment": {
		{"mock-entertainment-1", "Blockbuster Movie Breaks Records", "The latest blockbuster has shattered box office records worldwide.", "https://picsum.photos/400/300?random=40", "entertainment", "Mock Entertainment"},
		{"mock-entertainment-2", "Music Industry: New Trends", "Emerging trends are reshaping the music industry landscape.", "https://picsum.photos/400/300?random=41", "entertainment", "Mock Entertainment"},
	},
	"business": {
		{"mock-business-1", "Stock Market: Record Highs", "Major indices reach new all-time highs amid economic optimism.", "https://picsum.photos/400/300?random=50", "business", "Mock Business"},
		{"mock-business-2", "Startup Ecosystem: Innovation Boom", "The startup ecosystem is experiencing unprecedented growth.", "https://picsum.photos/400/300?random=51", "business", "Mock Business"},
	},
}

func (a article) item(batch time.Time, idx int) domain.ContentItem {
	return domain.ContentItem{
		ID:          domain.BatchID(a.tag, batch, idx),
		Title:       a.title,
		Description: a.description,
		ImageURL:    a.imageURL,
		Category:    a.category,
		Source:      a.source,
		PublishedAt: batch,
		URL:         "#",
		Type:        domain.TypeNews,
	}
}

// Content returns mock items for the requested categories with a page
// window of 8. IDs are batch-unique.
func Content(categories []string, page int) []domain.ContentItem {
	batch := time.Now()
	wanted := make(map[string]bool, len(categories))
	for _, c := range categories {
		wanted[c] = true
	}

	filtered := make([]domain.ContentItem, 0, len(corpus))
	for i, a := range corpus {
		if wanted[a.category] {
			filtered = append(filtered, a.item(batch, i))
		}
	}

	if page < 1 {
		page = 1
	}
	offset := (page - 1) * pageSize
	if offset >= len(filtered) {
		return []domain.ContentItem{}
	}
	end := offset + pageSize
	if end > len(filtered) {
		end = len(filtered)
	}
	return filtered[offset:end]
}

// Search matches query against title, description, category and source
// of the full corpus, capped at 10 results. An empty match set falls
// back to a topic bucket picked by query keywords, or a generic slice.
func Search(query string) []domain.ContentItem {
	batch := time.Now()
	all := make([]domain.ContentItem, 0, len(corpus))
	for i, a := range corpus {
		all = append(all, a.item(batch, i))
	}

	q := strings.ToLower(query)
	matched := make([]domain.ContentItem, 0)
	for _, it := range all {
		if strings.Contains(strings.ToLower(it.Title), q) ||
			strings.Contains(strings.ToLower(it.Description), q) ||
			strings.Contains(strings.ToLower(it.Category), q) ||
			strings.Contains(strings.ToLower(it.Source), q) {
			matched = append(matched, it)
		}
	}
	if len(matched) > 10 {
		matched = matched[:10]
	}
	if len(matched) > 0 {
		return matched
	}

	if category := queryBucket(q); category != "" {
		return byCategory(all, category, 3)
	}
	if len(all) > 3 {
		all = all[:3]
	}
	return all
}

// queryBucket classifies a query into a topic bucket by keyword
func queryBucket(q string) string {
	switch {
	case containsAny(q, "tech", "ai", "cyber", "blockchain", "cloud", "software"):
		return "technology"
	case containsAny(q, "business", "market", "startup"):
		return "business"
	case containsAny(q, "sport", "athlete", "championship"):
		return "sports"
	case containsAny(q, "movie", "celebrity", "entertainment"):
		return "entertainment"
	}
	return ""
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

func byCategory(items []domain.ContentItem, category string, limit int) []domain.ContentItem {
	res := make([]domain.ContentItem, 0, limit)
	for _, it := range items {
		if it.Category == category {
			res = append(res, it)
			if len(res) == limit {
				break
			}
		}
	}
	return res
}

// RSSFallback returns the mock feed items for a category, batch-unique
// IDs applied. Unknown categories get an empty slice.
func RSSFallback(category string) []domain.ContentItem {
	batch := time.Now()
	base := rssFallback[category]
	res := make([]domain.ContentItem, 0, len(base))
	for i, a := range base {
		it := a.item(batch, i)
		it.PublishedAt = batch.Add(-time.Duration(i) * time.Hour)
		res = append(res, it)
	}
	return res
}

// RSSFallbackAll returns mock feed items for every known category
func RSSFallbackAll() []domain.ContentItem {
	res := make([]domain.ContentItem, 0)
	for category := range rssFallback {
		res = append(res, RSSFallback(category)...)
	}
	return res
}

// MovieRecommendations is the movie fallback used when the catalog API
// is unreachable or not configured.
func MovieRecommendations() []domain.ContentItem {
	batch := time.Now()
	return []domain.ContentItem{
		{
			ID:          domain.BatchID("mock-movie-1", batch, 0),
			Title:       "The Matrix Resurrections",
			Description: "Return to the world of The Matrix in this thrilling sequel.",
			ImageURL:    "https://picsum.photos/400/250?random=200",
			Category:    "entertainment",
			Source:      "Mock TMDB",
			PublishedAt: time.Date(2021, 12, 22, 0, 0, 0, 0, time.UTC),
			URL:         "#",
			Type:        domain.TypeRecommendation,
			Recommendation: &domain.RecommendationMeta{
				Rating:      8.5,
				ReleaseYear: 2021,
				Reason:      "Because you liked The Matrix",
			},
		},
		{
			ID:          domain.BatchID("mock-movie-2", batch, 1),
			Title:       "Dune: Part Two",
			Description: "The epic conclusion to Denis Villeneuve's adaptation of Frank Herbert's classic.",
			ImageURL:    "https://picsum.photos/400/250?random=201",
			Category:    "entertainment",
			Source:      "Mock TMDB",
			PublishedAt: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
			URL:         "#",
			Type:        domain.TypeRecommendation,
			Recommendation: &domain.RecommendationMeta{
				Rating:      9.0,
				ReleaseYear: 2024,
				Reason:      "Similar to your sci-fi preferences",
			},
		},
	}
}

// track is a curated music catalog template
type track struct {
	tag         string
	title       string
	description string
	imageURL    string
	published   time.Time
	url         string
	rating      float64
	reason      string
	author      string
	year        int
}

var musicCatalog = []track{
	{"hindi-1", "Tum Hi Ho", "Arijit Singh - Aashiqui 2 • 3:53", "https://images.unsplash.com/photo-1493225457124-a3eb161ffa5f?w=400&h=400&fit=crop&crop=center", time.Date(2013, 4, 26, 0, 0, 0, 0, time.UTC), "https://open.spotify.com/track/7qiZfU4dY1lWllzX7mPBI3", 9.5, "Based on your love for romantic songs", "Arijit Singh", 2013},
	{"hindi-2", "Kesariya", "Arijit Singh, Pritam - Brahmastra • 3:20", "https://images.unsplash.com/photo-1511379938547-c1f69419868d?w=400&h=400&fit=crop&crop=center", time.Date(2022, 7, 17, 0, 0, 0, 0, time.UTC), "https://open.spotify.com/track/0VjIjW4GlUZAMYd2vXMi3b", 9.2, "Similar to your Bollywood music taste", "Arijit Singh, Pritam", 2022},
	{"hindi-3", "Raataan Lambiyan", "Jubin Nautiyal, Asees Kaur - Shershaah • 3:29", "https://images.unsplash.com/photo-1516280440614-37939bbacd81?w=400&h=400&fit=crop&crop=center", time.Date(2021, 8, 13, 0, 0, 0, 0, time.UTC), "https://open.spotify.com/track/2XU0oxnq2qxCpomAAuJY8K", 9.0, "From your patriotic songs playlist", "Jubin Nautiyal, Asees Kaur", 2021},
	{"telugu-1", "Naatu Naatu", "M.M. Keeravani, Rahul Sipligunj - RRR • 4:35", "https://images.unsplash.com/photo-1465101046530-73398c7f28ca?w=400&h=400&fit=crop&crop=center", time.Date(2022, 3, 24, 0, 0, 0, 0, time.UTC), "https://open.spotify.com/track/3ZFTkvIE7kyPt6Nu3PEa7V", 9.8, "Trending Indian song", "M.M. Keeravani, Rahul Sipligunj - RRR", 2023},
	{"telugu-2", "Saami Saami", "Mounika Yadav - Pushpa: The Rise • 3:14", "https://images.unsplash.com/photo-1506744038136-46273834b3fb?w=400&h=400&fit=crop&crop=center", time.Date(2021, 12, 17, 0, 0, 0, 0, time.UTC), "https://open.spotify.com/track/6L89mwZXSOwYl76YXfX13s", 9.1, "Viral Telugu song", "Mounika Yadav - Pushpa: The Rise", 2021},
	{"tamil-1", "Kaavaalaa", "Shilpa Rao, Anirudh Ravichander - Jailer • 3:10", "https://images.unsplash.com/photo-1516280440614-37939bbacd81?w=400&h=400&fit=crop&crop=center", time.Date(2023, 7, 28, 0, 0, 0, 0, time.UTC), "https://open.spotify.com/track/32OlwWuMpZ6b0aN2RZOeMS", 9.4, "Viral Tamil dance number", "Shilpa Rao, Anirudh Ravichander", 2023},
	{"tamil-2", "Hukum - Thalaivar", "Anirudh Ravichander - Jailer • 3:28", "https://images.unsplash.com/photo-1516280440614-37939bbacd81?w=400&h=400&fit=crop&crop=center", time.Date(2023, 7, 28, 0, 0, 0, 0, time.UTC), "https://open.spotify.com/track/7qiZfU4dY1lWllzX7mPBI3", 9.6, "Rajinikanth tribute song", "Anirudh Ravichander", 2023},
	{"english-1", "Blinding Lights", "The Weeknd - After Hours • 3:20", "https://images.unsplash.com/photo-1493225457124-a3eb161ffa5f?w=400&h=400&fit=crop&crop=center", time.Date(2020, 3, 20, 0, 0, 0, 0, time.UTC), "https://open.spotify.com/track/0VjIjW4GlUZAMYd2vXMi3b", 9.2, "Based on your love for The Weeknd", "The Weeknd", 2020},
	{"english-2", "Shape of You", "Ed Sheeran - ÷ (Divide) • 3:53", "https://images.unsplash.com/photo-1511671782779-c97d3d27a1d4?w=400&h=400&fit=crop&crop=center", time.Date(2017, 1, 6, 0, 0, 0, 0, time.UTC), "https://open.spotify.com/track/7qiZfU4dY1lWllzX7mPBI3", 9.0, "Popular global hit", "Ed Sheeran - ÷ (Divide)", 2017},
}

// MusicRecommendations is the curated catalog served when the music
// integration is unauthenticated or failing.
func MusicRecommendations() []domain.ContentItem {
	batch := time.Now()
	res := make([]domain.ContentItem, 0, len(musicCatalog))
	for i, t := range musicCatalog {
		res = append(res, domain.ContentItem{
			ID:          domain.BatchID(t.tag, batch, i),
			Title:       t.title,
			Description: t.description,
			ImageURL:    t.imageURL,
			Category:    "music",
			Source:      "Spotify",
			PublishedAt: t.published,
			URL:         t.url,
			Type:        domain.TypeRecommendation,
			Recommendation: &domain.RecommendationMeta{
				Rating:      t.rating,
				ReleaseYear: t.year,
				Reason:      t.reason,
				Author:      t.author,
			},
		})
	}
	return res
}

// MusicSearch filters the curated catalog by query against title,
// description and author, capped at 5.
func MusicSearch(query string) []domain.ContentItem {
	q := strings.ToLower(query)
	res := make([]domain.ContentItem, 0, 5)
	for _, it := range MusicRecommendations() {
		if strings.Contains(strings.ToLower(it.Title), q) ||
			strings.Contains(strings.ToLower(it.Description), q) ||
			strings.Contains(strings.ToLower(it.Recommendation.Author), q) {
			res = append(res, it)
			if len(res) == 5 {
				break
			}
		}
	}
	return res
}

// ContentRecommendations returns the static interest-based picks
func ContentRecommendations() []domain.ContentItem {
	batch := time.Now()
	mk := func(idx int, tag, title, description, image, category, source, reason string) domain.ContentItem {
		return domain.ContentItem{
			ID:          domain.BatchID(tag, batch, idx),
			Title:       title,
			Description: description,
			ImageURL:    image,
			Category:    category,
			Source:      source,
			PublishedAt: batch,
			URL:         "#",
			Type:        domain.TypeRecommendation,
			Recommendation: &domain.RecommendationMeta{
				Reason: reason,
			},
		}
	}
	return []domain.ContentItem{
		mk(0, "content-1", "The Future of AI in 2024", "Exploring the latest developments in artificial intelligence and machine learning.",
			"https://picsum.photos/400/250?random=210", "technology", "Tech Insights", "Based on your technology interests"),
		mk(1, "content-2", "Best Travel Destinations for 2024", "Discover the most exciting travel destinations and hidden gems around the world.",
			"https://picsum.photos/400/250?random=211", "travel", "Travel Weekly", "Matches your travel interests"),
		mk(2, "content-3", "Ultimate Food Guide: Street Food Around the World", "A comprehensive guide to the best street food experiences globally.",
			"https://picsum.photos/400/250?random=212", "food", "Culinary Adventures", "Based on your food preferences"),
	}
}

// CategoryImage returns a rotating placeholder image for feed items
// without an extractable image.
func CategoryImage(category string, index int) string {
	base, ok := map[string]int{
		"news":          10,
		"technology":    20,
		"sports":        30,
		"entertainment": 40,
		"business":      50,
	}[category]
	if !ok {
		base = 10
	}
	return fmt.Sprintf("https://picsum.photos/400/300?random=%d", base+index%5)
}
