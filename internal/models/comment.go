package models

import "github.com/reddit-mcp/reddit-mcp-server/internal/reddit"

// Comment is one node of a flattened comment tree
type Comment struct {
	ID            string     `json:"id"`
	Author        string     `json:"author"`
	Body          string     `json:"body"`
	Score         int        `json:"score"`
	CreatedUTC    float64    `json:"created_utc"`
	Edited        any        `json:"edited"`
	IsSubmitter   bool       `json:"is_submitter"`
	Stickied      bool       `json:"stickied"`
	Distinguished *string    `json:"distinguished"`
	Gilded        int        `json:"gilded"`
	Replies       []*Comment `json:"replies"`
}

// FlattenComments maps a comment forest to records, keeping remote order.
// "Load more" placeholders are dropped at every depth and a comment without
// real replies gets an empty, non-nil reply list.
func FlattenComments(forest []*reddit.CommentNode) []*Comment {
	out := make([]*Comment, 0, len(forest))
	for _, node := range forest {
		if node == nil || node.Comment == nil {
			continue
		}
		out = append(out, newComment(node.Comment))
	}
	return out
}

func newComment(c *reddit.Comment) *Comment {
	return &Comment{
		ID:            c.ID,
		Author:        authorOrDeleted(c.Author),
		Body:          c.Body,
		Score:         c.Score,
		CreatedUTC:    c.CreatedUTC,
		Edited:        editedValue(c.Edited),
		IsSubmitter:   c.IsSubmitter,
		Stickied:      c.Stickied,
		Distinguished: c.Distinguished,
		Gilded:        c.Gilded,
		Replies:       FlattenComments(c.Replies),
	}
}

// CreatedComment describes a newly posted comment.
type CreatedComment struct {
	ID         string  `json:"id"`
	Body       string  `json:"body"`
	Permalink  string  `json:"permalink"`
	CreatedUTC float64 `json:"created_utc"`
}

// NewCreatedComment maps a comment the account just posted.
func NewCreatedComment(c *reddit.Comment) *CreatedComment {
	return &CreatedComment{
		ID:         c.ID,
		Body:       c.Body,
		Permalink:  permalink(c.Permalink),
		CreatedUTC: c.CreatedUTC,
	}
}

// UserComment is an entry of a user's comment history
type UserComment struct {
	ID              string  `json:"id"`
	Body            string  `json:"body"`
	Subreddit       string  `json:"subreddit"`
	CreatedUTC      float64 `json:"created_utc"`
	Score           int     `json:"score"`
	Permalink       string  `json:"permalink"`
	SubmissionTitle *string `json:"submission_title"`
}

// NewUserComment maps an entry of a user's comment history.
func NewUserComment(c *reddit.Comment) *UserComment {
	return &UserComment{
		ID:              c.ID,
		Body:            truncate(c.Body, SummaryLength),
		Subreddit:       c.Subreddit,
		CreatedUTC:      c.CreatedUTC,
		Score:           c.Score,
		Permalink:       permalink(c.Permalink),
		SubmissionTitle: c.LinkTitle,
	}
}

// SavedItem is an entry of the account's saved, upvoted or downvoted
// listings. Posts carry a title, comments a truncated body.
type SavedItem struct {
	Type       string  `json:"type"` // "post" or "comment"
	ID         string  `json:"id"`
	Title      *string `json:"title,omitempty"`
	Body       *string `json:"body,omitempty"`
	Subreddit  string  `json:"subreddit"`
	Score      int     `json:"score"`
	CreatedUTC float64 `json:"created_utc"`
	Permalink  string  `json:"permalink"`
}

// NewSavedItem maps a mixed listing entry, or returns nil for anything
// that is neither a post nor a comment.
func NewSavedItem(item *reddit.Item) *SavedItem {
	switch {
	case item.Post != nil:
		p := item.Post
		title := p.Title
		return &SavedItem{
			Type:       "post",
			ID:         p.ID,
			Title:      &title,
			Subreddit:  p.Subreddit,
			Score:      p.Score,
			CreatedUTC: p.CreatedUTC,
			Permalink:  permalink(p.Permalink),
		}
	case item.Comment != nil:
		c := item.Comment
		body := truncate(c.Body, SummaryLength)
		return &SavedItem{
			Type:       "comment",
			ID:         c.ID,
			Body:       &body,
			Subreddit:  c.Subreddit,
			Score:      c.Score,
			CreatedUTC: c.CreatedUTC,
			Permalink:  permalink(c.Permalink),
		}
	}
	return nil
}
