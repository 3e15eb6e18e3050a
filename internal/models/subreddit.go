package models

import "github.com/reddit-mcp/reddit-mcp-server/internal/reddit"

// Subreddit is the detailed view of a community
type Subreddit struct {
	Name             string  `json:"name"`
	Title            string  `json:"title"`
	Description      string  `json:"description"`
	Subscribers      int64   `json:"subscribers"`
	CreatedUTC       float64 `json:"created_utc"`
	Over18           bool    `json:"over_18"`
	SubredditType    string  `json:"subreddit_type"`
	URL              string  `json:"url"`
	ActiveUserCount  *int64  `json:"active_user_count"`
	AccountsActive   *int64  `json:"accounts_active"`
	IconImg          *string `json:"icon_img"`
	BannerImg        *string `json:"banner_img"`
	HeaderImg        *string `json:"header_img"`
	AllowImages      *bool   `json:"allow_images"`
	AllowVideos      *bool   `json:"allow_videos"`
	SpoilersEnabled  *bool   `json:"spoilers_enabled"`
	SubmissionType   string  `json:"submission_type"`
	UserIsBanned     *bool   `json:"user_is_banned"`
	UserIsModerator  *bool   `json:"user_is_moderator"`
	UserIsSubscriber *bool   `json:"user_is_subscriber"`
}

// NewSubreddit maps a community to its detailed view.
func NewSubreddit(s *reddit.Subreddit) *Subreddit {
	return &Subreddit{
		Name:             s.DisplayName,
		Title:            s.Title,
		Description:      s.PublicDescription,
		Subscribers:      s.Subscribers,
		CreatedUTC:       s.CreatedUTC,
		Over18:           s.Over18,
		SubredditType:    s.SubredditType,
		URL:              permalink(s.URL),
		ActiveUserCount:  s.ActiveUserCount,
		AccountsActive:   s.AccountsActive,
		IconImg:          s.IconImg,
		BannerImg:        s.BannerImg,
		HeaderImg:        s.HeaderImg,
		AllowImages:      s.AllowImages,
		AllowVideos:      s.AllowVideos,
		SpoilersEnabled:  s.SpoilersEnabled,
		SubmissionType:   s.SubmissionType,
		UserIsBanned:     s.UserIsBanned,
		UserIsModerator:  s.UserIsModerator,
		UserIsSubscriber: s.UserIsSubscriber,
	}
}

// SubredditSummary is a community as it appears in search results.
// Over18 is omitted from subscription listings.
type SubredditSummary struct {
	Name        string `json:"name"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Subscribers int64  `json:"subscribers"`
	Over18      *bool  `json:"over_18,omitempty"`
	URL         string `json:"url"`
}

// NewSubredditSummary maps a community search result.
func NewSubredditSummary(s *reddit.Subreddit) *SubredditSummary {
	summary := NewSubscription(s)
	over18 := s.Over18
	summary.Over18 = &over18
	return summary
}

// NewSubscription maps one of the account's subscribed communities.
func NewSubscription(s *reddit.Subreddit) *SubredditSummary {
	return &SubredditSummary{
		Name:        s.DisplayName,
		Title:       s.Title,
		Description: s.PublicDescription,
		Subscribers: s.Subscribers,
		URL:         permalink(s.URL),
	}
}

// TrendingSubreddit is a popular community with its current activity.
type TrendingSubreddit struct {
	Name        string `json:"name"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Subscribers int64  `json:"subscribers"`
	ActiveUsers *int64 `json:"active_users"`
	URL         string `json:"url"`
}

// NewTrendingSubreddit maps a popular community.
func NewTrendingSubreddit(s *reddit.Subreddit) *TrendingSubreddit {
	return &TrendingSubreddit{
		Name:        s.DisplayName,
		Title:       s.Title,
		Description: s.PublicDescription,
		Subscribers: s.Subscribers,
		ActiveUsers: s.ActiveUserCount,
		URL:         permalink(s.URL),
	}
}

// Rule is one community rule. Values are taken from the raw rule object.
type Rule struct {
	ShortName       any `json:"short_name"`
	Description     any `json:"description"`
	Kind            any `json:"kind"`
	ViolationReason any `json:"violation_reason"`
	CreatedUTC      any `json:"created_utc"`
}

// NewRule maps one raw rule entry of a community.
func NewRule(raw map[string]any) *Rule {
	return &Rule{
		ShortName:       Generic(raw["short_name"]),
		Description:     Generic(raw["description"]),
		Kind:            Generic(raw["kind"]),
		ViolationReason: Generic(raw["violation_reason"]),
		CreatedUTC:      Generic(raw["created_utc"]),
	}
}

// Moderator is a member of a community's moderation team.
type Moderator struct {
	Name           string   `json:"name"`
	ModPermissions []string `json:"mod_permissions"`
	AddedDate      float64  `json:"added_date"`
}

// NewModerator maps a moderator listing entry.
func NewModerator(m *reddit.Moderator) *Moderator {
	perms := m.ModPermissions
	if perms == nil {
		perms = []string{}
	}
	return &Moderator{
		Name:           m.Name,
		ModPermissions: perms,
		AddedDate:      m.Date,
	}
}
