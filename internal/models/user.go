package models

import (
	"strings"

	"github.com/reddit-mcp/reddit-mcp-server/internal/reddit"
)

// ProfileSubreddit is the community attached to a user profile
type ProfileSubreddit struct {
	DisplayName string `json:"display_name"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Subscribers int64  `json:"subscribers"`
}

// User is a redditor profile. Subreddit is null for accounts without a
// profile community.
type User struct {
	Name             string            `json:"name"`
	ID               string            `json:"id"`
	CreatedUTC       float64           `json:"created_utc"`
	LinkKarma        int               `json:"link_karma"`
	CommentKarma     int               `json:"comment_karma"`
	TotalKarma       int               `json:"total_karma"`
	IsGold           bool              `json:"is_gold"`
	IsMod            bool              `json:"is_mod"`
	IsEmployee       bool              `json:"is_employee"`
	HasVerifiedEmail *bool             `json:"has_verified_email"`
	IconImg          string            `json:"icon_img"`
	Subreddit        *ProfileSubreddit `json:"subreddit"`
}

// NewUser maps an account to its public profile.
func NewUser(a *reddit.Account) *User {
	user := &User{
		Name:             a.Name,
		ID:               a.ID,
		CreatedUTC:       a.CreatedUTC,
		LinkKarma:        a.LinkKarma,
		CommentKarma:     a.CommentKarma,
		TotalKarma:       a.TotalKarma,
		IsGold:           a.IsGold,
		IsMod:            a.IsMod,
		IsEmployee:       a.IsEmployee,
		HasVerifiedEmail: a.HasVerifiedEmail,
		IconImg:          a.IconImg,
	}
	if a.Subreddit != nil {
		user.Subreddit = &ProfileSubreddit{
			DisplayName: a.Subreddit.DisplayName,
			Title:       a.Subreddit.Title,
			Description: a.Subreddit.PublicDescription,
			Subscribers: a.Subreddit.Subscribers,
		}
	}
	return user
}

// KarmaBreakdown is the karma earned in one community.
type KarmaBreakdown struct {
	LinkKarma    int `json:"link_karma"`
	CommentKarma int `json:"comment_karma"`
}

// Karma is a user's karma totals with a per-community breakdown.
type Karma struct {
	TotalKarma     int                       `json:"total_karma"`
	LinkKarma      int                       `json:"link_karma"`
	CommentKarma   int                       `json:"comment_karma"`
	SubredditKarma map[string]KarmaBreakdown `json:"subreddit_karma"`
}

// NewKarma combines profile totals with the per-community rows. rows may
// be nil, which yields an empty breakdown.
func NewKarma(a *reddit.Account, rows []*reddit.SubredditKarma) *Karma {
	karma := &Karma{
		TotalKarma:     a.TotalKarma,
		LinkKarma:      a.LinkKarma,
		CommentKarma:   a.CommentKarma,
		SubredditKarma: make(map[string]KarmaBreakdown, len(rows)),
	}
	for _, row := range rows {
		karma.SubredditKarma[row.Subreddit] = KarmaBreakdown{
			LinkKarma:    row.LinkKarma,
			CommentKarma: row.CommentKarma,
		}
	}
	return karma
}

// UserMatch is an account returned by user search
type UserMatch struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// NewUserMatch maps an account search result.
func NewUserMatch(a *reddit.Account) *UserMatch {
	return &UserMatch{
		Name: a.Name,
		URL:  siteURL + "/u/" + a.Name,
	}
}

// SameUser compares account names the way Reddit does, ignoring case.
func SameUser(a, b string) bool {
	return strings.EqualFold(a, b)
}
