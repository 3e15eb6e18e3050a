package reddit

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Kind prefixes used by Reddit fullnames and Thing envelopes
const (
	KindComment   = "t1"
	KindAccount   = "t2"
	KindLink      = "t3"
	KindMessage   = "t4"
	KindSubreddit = "t5"
	KindMore      = "more"
	KindListing   = "Listing"
)

// Thing is the generic kind/data envelope every Reddit object arrives in.
type Thing struct {
	Kind string          `json:"kind"`
	Data json.RawMessage `json:"data"`
}

type listingData struct {
	After    string   `json:"after"`
	Before   string   `json:"before"`
	Children []*Thing `json:"children"`
}

// Edited is either false or the unix timestamp of the last edit.
type Edited struct {
	IsEdited  bool
	Timestamp float64
}

// UnmarshalJSON accepts false, true, null or a float timestamp.
func (e *Edited) UnmarshalJSON(data []byte) error {
	s := strings.ToLower(string(data))
	switch s {
	case "false", "null":
		*e = Edited{}
		return nil
	case "true":
		*e = Edited{IsEdited: true}
		return nil
	}

	var timestamp float64
	if err := json.Unmarshal(data, &timestamp); err != nil {
		return fmt.Errorf("unrecognized type for 'edited' field: %s", s)
	}
	*e = Edited{IsEdited: true, Timestamp: timestamp}
	return nil
}

// Post is a submission (kind t3).
type Post struct {
	ID                  string  `json:"id"`
	Name                string  `json:"name"`
	Title               string  `json:"title"`
	Author              string  `json:"author"`
	AuthorFlairText     *string `json:"author_flair_text"`
	LinkFlairText       *string `json:"link_flair_text"`
	Subreddit           string  `json:"subreddit"`
	CreatedUTC          float64 `json:"created_utc"`
	Score               int     `json:"score"`
	UpvoteRatio         float64 `json:"upvote_ratio"`
	NumComments         int     `json:"num_comments"`
	NumCrossposts       int     `json:"num_crossposts"`
	ViewCount           *int    `json:"view_count"`
	URL                 string  `json:"url"`
	SelfText            string  `json:"selftext"`
	Permalink           string  `json:"permalink"`
	IsVideo             bool    `json:"is_video"`
	IsSelf              bool    `json:"is_self"`
	Stickied            bool    `json:"stickied"`
	Locked              bool    `json:"locked"`
	Over18              bool    `json:"over_18"`
	Spoiler             bool    `json:"spoiler"`
	Distinguished       *string `json:"distinguished"`
	Gilded              int     `json:"gilded"`
	TotalAwardsReceived int     `json:"total_awards_received"`
	Edited              Edited  `json:"edited"`
}

// Comment is a comment (kind t1). Replies is realized from the nested
// "replies" listing and keeps "more" placeholders as they were returned.
type Comment struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Author        string  `json:"author"`
	Body          string  `json:"body"`
	Score         int     `json:"score"`
	CreatedUTC    float64 `json:"created_utc"`
	Edited        Edited  `json:"edited"`
	IsSubmitter   bool    `json:"is_submitter"`
	Stickied      bool    `json:"stickied"`
	Distinguished *string `json:"distinguished"`
	Gilded        int     `json:"gilded"`
	Subreddit     string  `json:"subreddit"`
	Permalink     string  `json:"permalink"`
	LinkID        string  `json:"link_id"`
	LinkTitle     *string `json:"link_title"`
	ParentID      string  `json:"parent_id"`

	Replies []*CommentNode `json:"-"`
}

// MoreComments is a "load more" placeholder. An ID of "_" with no children
// marks a "continue this thread" link.
type MoreComments struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	ParentID string   `json:"parent_id"`
	Count    int      `json:"count"`
	Depth    int      `json:"depth"`
	Children []string `json:"children"`
}

// IsContinueThread reports whether the placeholder links to a deeper thread
// instead of listing child ids.
func (m *MoreComments) IsContinueThread() bool {
	return m.ID == "_" || len(m.Children) == 0
}

// CommentNode is one entry of a comment forest: exactly one of Comment or
// More is set.
type CommentNode struct {
	Comment *Comment
	More    *MoreComments
}

// Subreddit is a community (kind t5).
type Subreddit struct {
	ID                string  `json:"id"`
	Name              string  `json:"name"`
	DisplayName       string  `json:"display_name"`
	Title             string  `json:"title"`
	PublicDescription string  `json:"public_description"`
	Subscribers       int64   `json:"subscribers"`
	CreatedUTC        float64 `json:"created_utc"`
	Over18            bool    `json:"over18"`
	SubredditType     string  `json:"subreddit_type"`
	URL               string  `json:"url"`
	ActiveUserCount   *int64  `json:"active_user_count"`
	AccountsActive    *int64  `json:"accounts_active"`
	IconImg           *string `json:"icon_img"`
	BannerImg         *string `json:"banner_img"`
	HeaderImg         *string `json:"header_img"`
	AllowImages       *bool   `json:"allow_images"`
	AllowVideos       *bool   `json:"allow_videos"`
	SpoilersEnabled   *bool   `json:"spoilers_enabled"`
	SubmissionType    string  `json:"submission_type"`
	UserIsBanned      *bool   `json:"user_is_banned"`
	UserIsModerator   *bool   `json:"user_is_moderator"`
	UserIsSubscriber  *bool   `json:"user_is_subscriber"`
}

// ProfileSubreddit is the user-profile community embedded in an account.
type ProfileSubreddit struct {
	DisplayName       string `json:"display_name"`
	Title             string `json:"title"`
	PublicDescription string `json:"public_description"`
	Subscribers       int64  `json:"subscribers"`
}

// Account is a redditor (kind t2).
type Account struct {
	ID               string            `json:"id"`
	Name             string            `json:"name"`
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

// Message is an inbox item. Private messages arrive as t4, comment replies
// and mentions as t1; both decode into the same shape.
type Message struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Subject    *string `json:"subject"`
	Body       string  `json:"body"`
	Author     string  `json:"author"`
	CreatedUTC float64 `json:"created_utc"`
	WasComment bool    `json:"was_comment"`
	New        bool    `json:"new"`
	Type       string  `json:"type"`
	ParentID   *string `json:"parent_id"`
}

// Moderator is one entry of a subreddit moderator list.
type Moderator struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	ModPermissions []string `json:"mod_permissions"`
	Date           float64  `json:"date"`
}

// Multireddit is a labeled multi owned by the authenticated account.
type Multireddit struct {
	Name          string  `json:"name"`
	DisplayName   string  `json:"display_name"`
	DescriptionMD string  `json:"description_md"`
	Visibility    string  `json:"visibility"`
	Path          string  `json:"path"`
	CreatedUTC    float64 `json:"created_utc"`
	Subreddits    []struct {
		Name string `json:"name"`
	} `json:"subreddits"`
}

// SubredditNames returns the member subreddit names in listing order.
func (m *Multireddit) SubredditNames() []string {
	names := make([]string, 0, len(m.Subreddits))
	for _, sub := range m.Subreddits {
		names = append(names, sub.Name)
	}
	return names
}

// SubredditKarma is one row of the authenticated account's karma breakdown.
type SubredditKarma struct {
	Subreddit    string `json:"sr"`
	LinkKarma    int    `json:"link_karma"`
	CommentKarma int    `json:"comment_karma"`
}

// Item is an entry of a mixed post/comment listing such as saved or upvoted.
type Item struct {
	Post    *Post
	Comment *Comment
}

// SubmitRequest describes a new text or link post.
type SubmitRequest struct {
	Subreddit string
	Title     string
	Text      string
	URL       string
	FlairID   string
	NSFW      bool
	Spoiler   bool
}

// VoteDirection is the dir value of /api/vote.
type VoteDirection int

const (
	VoteDown  VoteDirection = -1
	VoteClear VoteDirection = 0
	VoteUp    VoteDirection = 1
)
