package domain

import (
	"fmt"
	"time"
)

// ItemType discriminates ContentItem variants
type ItemType string

// content item types
const (
	TypeNews           ItemType = "news"
	TypeRecommendation ItemType = "recommendation"
	TypeSocial         ItemType = "social"
)

// ContentItem is the unified shape every source adapter normalizes into.
// Type selects the active variant; only the matching variant payload may
// be non-nil.
type ContentItem struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	ImageURL    string    `json:"imageUrl"`
	Category    string    `json:"category"`
	Source      string    `json:"source"`
	PublishedAt time.Time `json:"publishedAt"`
	URL         string    `json:"url"`
	Type        ItemType  `json:"type"`

	Recommendation *RecommendationMeta `json:"recommendation,omitempty"`
	Social         *SocialMeta         `json:"social,omitempty"`
}

// RecommendationMeta carries fields specific to recommendation items
// (movies, music, curated content).
type RecommendationMeta struct {
	Rating      float64 `json:"rating,omitempty"`
	ReleaseYear int     `json:"releaseYear,omitempty"`
	Reason      string  `json:"recommendationReason,omitempty"`
	Author      string  `json:"author,omitempty"`
}

// SocialMeta carries fields specific to social posts.
type SocialMeta struct {
	Author   string   `json:"author"`
	Likes    int      `json:"likes"`
	Retweets int      `json:"retweets,omitempty"`
	Comments int      `json:"comments,omitempty"`
	Hashtags []string `json:"hashtags"`
}

// SocialFilter narrows a social posts fetch. Zero value means no
// filter; the first set field wins, in hashtag, user, category,
// platform order. Platform additionally narrows a hashtag or user
// query instead of being its own dimension.
type SocialFilter struct {
	Hashtag  string
	User     string
	Category string
	Platform string
}

// IsZero reports whether no filter field is set
func (f SocialFilter) IsZero() bool {
	return f.Hashtag == "" && f.User == "" && f.Category == "" && f.Platform == ""
}

// Engagement returns the combined engagement count for a social item,
// zero for other variants.
func (c *ContentItem) Engagement() int {
	if c.Social == nil {
		return 0
	}
	return c.Social.Likes + c.Social.Retweets + c.Social.Comments
}

// BatchID builds a batch-unique item ID from a source tag, batch
// timestamp and position. Uniqueness holds within a single fetch batch
// only; the same underlying content fetched twice gets distinct IDs.
func BatchID(tag string, batch time.Time, idx int) string {
	return fmt.Sprintf("%s-%d-%d", tag, batch.UnixMilli(), idx)
}
