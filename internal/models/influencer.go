package models

import (
	"strconv"
	"strings"
	"time"
)

// Supported platform labels for catalog entries.
const (
	PlatformInstagram = "Instagram"
	PlatformTikTok    = "TikTok"
	PlatformYouTube   = "YouTube"
	PlatformTwitter   = "Twitter"
)

// Influencer is a read-only catalog entry stored in MongoDB. Rows are
// created and refreshed by the external ingestion pipeline; this service
// never writes them.
type Influencer struct {
	ID             string                   `json:"id" bson:"_id"`
	Name           string                   `json:"name" bson:"name"`
	Username       string                   `json:"username" bson:"username"`
	Platform       string                   `json:"platform" bson:"platform"`
	Followers      int64                    `json:"followers" bson:"followers"`
	EngagementRate float64                  `json:"engagement_rate" bson:"engagement_rate"`
	Niche          string                   `json:"niche" bson:"niche"`
	Country        string                   `json:"country" bson:"country"`
	AvgLikes       int64                    `json:"avg_likes" bson:"avg_likes"`
	AvgComments    int64                    `json:"avg_comments" bson:"avg_comments"`
	Verified       bool                     `json:"verified" bson:"verified"`
	AvatarURL      string                   `json:"avatar_url" bson:"avatar_url"`
	Bio            string                   `json:"bio,omitempty" bson:"bio,omitempty"`
	SamplePosts    []map[string]interface{} `json:"sample_posts,omitempty" bson:"sample_posts,omitempty"`
	CreatedAt      time.Time                `json:"created_at" bson:"created_at"`
}

// InfluencerCompact is the public subset embedded in association responses
// (saved entries, invites, collaboration requests).
type InfluencerCompact struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Username       string  `json:"username"`
	Platform       string  `json:"platform"`
	Country        string  `json:"country"`
	Followers      int64   `json:"followers"`
	EngagementRate float64 `json:"engagement_rate"`
	AvatarURL      string  `json:"avatar_url"`
}

func (i *Influencer) ToCompact() InfluencerCompact {
	return InfluencerCompact{
		ID:             i.ID,
		Name:           i.Name,
		Username:       i.Username,
		Platform:       i.Platform,
		Country:        i.Country,
		Followers:      i.Followers,
		EngagementRate: i.EngagementRate,
		AvatarURL:      i.AvatarURL,
	}
}

// Default filter bounds. A freshly opened listing session sees every
// catalog entry.
const (
	DefaultMaxFollowers  int64   = 10_000_000
	DefaultMaxEngagement float64 = 20
)

// Filters holds the structured criteria a listing session narrows the
// catalog with. Selector fields use "all" as the wildcard; numeric ranges
// are inclusive on both ends. Filters are never persisted.
type Filters struct {
	Platform      string  `json:"platform"`
	MinFollowers  int64   `json:"min_followers"`
	MaxFollowers  int64   `json:"max_followers"`
	MinEngagement float64 `json:"min_engagement"`
	MaxEngagement float64 `json:"max_engagement"`
	Niche         string  `json:"niche"`
	Country       string  `json:"country"`
}

// DefaultFilters returns the wide-open criteria a listing session starts
// with (and resets to).
func DefaultFilters() Filters {
	return Filters{
		Platform:      "all",
		MinFollowers:  0,
		MaxFollowers:  DefaultMaxFollowers,
		MinEngagement: 0,
		MaxEngagement: DefaultMaxEngagement,
		Niche:         "all",
		Country:       "all",
	}
}

// Matches reports whether the influencer satisfies the search term and
// every criterion. The term matches case-insensitively against name,
// username or niche; an empty term matches everything. Range checks are
// inclusive, so a zero-width range still admits the exact value.
func (f Filters) Matches(inf *Influencer, term string) bool {
	if term != "" {
		t := strings.ToLower(term)
		if !strings.Contains(strings.ToLower(inf.Name), t) &&
			!strings.Contains(strings.ToLower(inf.Username), t) &&
			!strings.Contains(strings.ToLower(inf.Niche), t) {
			return false
		}
	}

	if f.Platform != "all" && inf.Platform != f.Platform {
		return false
	}
	if inf.Followers < f.MinFollowers || inf.Followers > f.MaxFollowers {
		return false
	}
	if inf.EngagementRate < f.MinEngagement || inf.EngagementRate > f.MaxEngagement {
		return false
	}
	if f.Niche != "all" && inf.Niche != f.Niche {
		return false
	}
	if f.Country != "all" && inf.Country != f.Country {
		return false
	}

	return true
}

// FormatFollowers renders large counts with M/K suffixes for display,
// e.g. 1_500_000 -> "1.5M", 12_000 -> "12K", 999 -> "999".
func FormatFollowers(n int64) string {
	switch {
	case n >= 1_000_000:
		return strconv.FormatFloat(float64(n)/1_000_000, 'f', 1, 64) + "M"
	case n >= 1_000:
		return strconv.FormatFloat(float64(n)/1_000, 'f', 0, 64) + "K"
	default:
		return strconv.FormatInt(n, 10)
	}
}
