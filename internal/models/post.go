package models

import "github.com/reddit-mcp/reddit-mcp-server/internal/reddit"

// Post is a submission as it appears in a community listing
type Post struct {
	ID                  string  `json:"id"`
	Title               string  `json:"title"`
	Author              string  `json:"author"`
	CreatedUTC          float64 `json:"created_utc"`
	Score               int     `json:"score"`
	UpvoteRatio         float64 `json:"upvote_ratio"`
	NumComments         int     `json:"num_comments"`
	URL                 string  `json:"url"`
	SelfText            string  `json:"selftext"`
	Permalink           string  `json:"permalink"`
	IsVideo             bool    `json:"is_video"`
	IsSelf              bool    `json:"is_self"`
	Stickied            bool    `json:"stickied"`
	Locked              bool    `json:"locked"`
	NSFW                bool    `json:"nsfw"`
	Spoiler             bool    `json:"spoiler"`
	Distinguished       *string `json:"distinguished"`
	LinkFlairText       *string `json:"link_flair_text"`
	AuthorFlairText     *string `json:"author_flair_text"`
	Gilded              int     `json:"gilded"`
	TotalAwardsReceived int     `json:"total_awards_received"`
}

// NewPost maps a listing entry of a community.
func NewPost(p *reddit.Post) *Post {
	return &Post{
		ID:                  p.ID,
		Title:               p.Title,
		Author:              authorOrDeleted(p.Author),
		CreatedUTC:          p.CreatedUTC,
		Score:               p.Score,
		UpvoteRatio:         p.UpvoteRatio,
		NumComments:         p.NumComments,
		URL:                 p.URL,
		SelfText:            p.SelfText,
		Permalink:           permalink(p.Permalink),
		IsVideo:             p.IsVideo,
		IsSelf:              p.IsSelf,
		Stickied:            p.Stickied,
		Locked:              p.Locked,
		NSFW:                p.Over18,
		Spoiler:             p.Spoiler,
		Distinguished:       p.Distinguished,
		LinkFlairText:       p.LinkFlairText,
		AuthorFlairText:     p.AuthorFlairText,
		Gilded:              p.Gilded,
		TotalAwardsReceived: p.TotalAwardsReceived,
	}
}

// PostDetail is the full view of a single submission. Edited is false or
// the edit timestamp.
type PostDetail struct {
	ID                  string  `json:"id"`
	Title               string  `json:"title"`
	Author              string  `json:"author"`
	Subreddit           string  `json:"subreddit"`
	CreatedUTC          float64 `json:"created_utc"`
	Score               int     `json:"score"`
	UpvoteRatio         float64 `json:"upvote_ratio"`
	NumComments         int     `json:"num_comments"`
	URL                 string  `json:"url"`
	SelfText            string  `json:"selftext"`
	Permalink           string  `json:"permalink"`
	IsVideo             bool    `json:"is_video"`
	IsSelf              bool    `json:"is_self"`
	Stickied            bool    `json:"stickied"`
	Locked              bool    `json:"locked"`
	NSFW                bool    `json:"nsfw"`
	Spoiler             bool    `json:"spoiler"`
	Distinguished       *string `json:"distinguished"`
	LinkFlairText       *string `json:"link_flair_text"`
	AuthorFlairText     *string `json:"author_flair_text"`
	Gilded              int     `json:"gilded"`
	TotalAwardsReceived int     `json:"total_awards_received"`
	Edited              any     `json:"edited"`
	NumCrossposts       int     `json:"num_crossposts"`
	ViewCount           *int    `json:"view_count"`
}

// NewPostDetail maps a single post with its full metadata.
func NewPostDetail(p *reddit.Post) *PostDetail {
	return &PostDetail{
		ID:                  p.ID,
		Title:               p.Title,
		Author:              authorOrDeleted(p.Author),
		Subreddit:           p.Subreddit,
		CreatedUTC:          p.CreatedUTC,
		Score:               p.Score,
		UpvoteRatio:         p.UpvoteRatio,
		NumComments:         p.NumComments,
		URL:                 p.URL,
		SelfText:            p.SelfText,
		Permalink:           permalink(p.Permalink),
		IsVideo:             p.IsVideo,
		IsSelf:              p.IsSelf,
		Stickied:            p.Stickied,
		Locked:              p.Locked,
		NSFW:                p.Over18,
		Spoiler:             p.Spoiler,
		Distinguished:       p.Distinguished,
		LinkFlairText:       p.LinkFlairText,
		AuthorFlairText:     p.AuthorFlairText,
		Gilded:              p.Gilded,
		TotalAwardsReceived: p.TotalAwardsReceived,
		Edited:              editedValue(p.Edited),
		NumCrossposts:       p.NumCrossposts,
		ViewCount:           p.ViewCount,
	}
}

// PostSummary is a submission in search results and user listings.
// SelfText is cut to SummaryLength runes and null when empty.
type PostSummary struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Author      string  `json:"author,omitempty"`
	Subreddit   string  `json:"subreddit,omitempty"`
	CreatedUTC  float64 `json:"created_utc"`
	Score       int     `json:"score"`
	NumComments int     `json:"num_comments"`
	URL         string  `json:"url"`
	SelfText    *string `json:"selftext"`
	Permalink   string  `json:"permalink"`
}

// NewPostSummary maps a site-wide search result.
func NewPostSummary(p *reddit.Post) *PostSummary {
	return &PostSummary{
		ID:          p.ID,
		Title:       p.Title,
		Author:      authorOrDeleted(p.Author),
		Subreddit:   p.Subreddit,
		CreatedUTC:  p.CreatedUTC,
		Score:       p.Score,
		NumComments: p.NumComments,
		URL:         p.URL,
		SelfText:    summaryText(p.SelfText),
		Permalink:   permalink(p.Permalink),
	}
}

// NewSubredditSearchResult maps a search result scoped to one community.
func NewSubredditSearchResult(p *reddit.Post) *PostSummary {
	summary := NewPostSummary(p)
	summary.Subreddit = ""
	return summary
}

// NewUserPost maps an entry of a user's submissions.
func NewUserPost(p *reddit.Post) *PostSummary {
	summary := NewPostSummary(p)
	summary.Author = ""
	return summary
}

// FeedPost is a submission on the account's front page
type FeedPost struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Author      string  `json:"author"`
	Subreddit   string  `json:"subreddit"`
	CreatedUTC  float64 `json:"created_utc"`
	Score       int     `json:"score"`
	UpvoteRatio float64 `json:"upvote_ratio"`
	NumComments int     `json:"num_comments"`
	URL         string  `json:"url"`
	SelfText    *string `json:"selftext"`
	Permalink   string  `json:"permalink"`
	NSFW        bool    `json:"nsfw"`
	Spoiler     bool    `json:"spoiler"`
}

// NewFeedPost maps an entry of the front page.
func NewFeedPost(p *reddit.Post) *FeedPost {
	return &FeedPost{
		ID:          p.ID,
		Title:       p.Title,
		Author:      authorOrDeleted(p.Author),
		Subreddit:   p.Subreddit,
		CreatedUTC:  p.CreatedUTC,
		Score:       p.Score,
		UpvoteRatio: p.UpvoteRatio,
		NumComments: p.NumComments,
		URL:         p.URL,
		SelfText:    summaryText(p.SelfText),
		Permalink:   permalink(p.Permalink),
		NSFW:        p.Over18,
		Spoiler:     p.Spoiler,
	}
}

// RandomPost is the result of a random pick; the body is not truncated
type RandomPost struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Author      string  `json:"author"`
	Subreddit   string  `json:"subreddit"`
	CreatedUTC  float64 `json:"created_utc"`
	Score       int     `json:"score"`
	NumComments int     `json:"num_comments"`
	URL         string  `json:"url"`
	SelfText    string  `json:"selftext"`
	Permalink   string  `json:"permalink"`
	NSFW        bool    `json:"nsfw"`
	Spoiler     bool    `json:"spoiler"`
}

// NewRandomPost maps the post picked at random from a community.
func NewRandomPost(p *reddit.Post) *RandomPost {
	return &RandomPost{
		ID:          p.ID,
		Title:       p.Title,
		Author:      authorOrDeleted(p.Author),
		Subreddit:   p.Subreddit,
		CreatedUTC:  p.CreatedUTC,
		Score:       p.Score,
		NumComments: p.NumComments,
		URL:         p.URL,
		SelfText:    p.SelfText,
		Permalink:   permalink(p.Permalink),
		NSFW:        p.Over18,
		Spoiler:     p.Spoiler,
	}
}

// SubmittedPost describes a newly created submission. URL is the permalink.
type SubmittedPost struct {
	ID         string  `json:"id"`
	Title      string  `json:"title"`
	URL        string  `json:"url"`
	CreatedUTC float64 `json:"created_utc"`
}

// NewSubmittedPost maps a post the account just created.
func NewSubmittedPost(p *reddit.Post) *SubmittedPost {
	return &SubmittedPost{
		ID:         p.ID,
		Title:      p.Title,
		URL:        permalink(p.Permalink),
		CreatedUTC: p.CreatedUTC,
	}
}
