package models

import "github.com/reddit-mcp/reddit-mcp-server/internal/reddit"

// Message is an inbox item. Unlike posts and comments, a missing author is
// rendered as null.
type Message struct {
	ID         string  `json:"id"`
	Subject    *string `json:"subject"`
	Body       string  `json:"body"`
	Author     *string `json:"author"`
	CreatedUTC float64 `json:"created_utc"`
	WasComment bool    `json:"was_comment"`
	New        bool    `json:"new"`
	Type       string  `json:"type"`
	ParentID   *string `json:"parent_id"`
}

// NewMessage maps an inbox entry.
func NewMessage(m *reddit.Message) *Message {
	return &Message{
		ID:         m.ID,
		Subject:    m.Subject,
		Body:       m.Body,
		Author:     nullableString(m.Author),
		CreatedUTC: m.CreatedUTC,
		WasComment: m.WasComment,
		New:        m.New,
		Type:       m.Type,
		ParentID:   m.ParentID,
	}
}

// Multireddit is a custom feed owned by the account
type Multireddit struct {
	Name        string   `json:"name"`
	DisplayName string   `json:"display_name"`
	Description string   `json:"description"`
	Subreddits  []string `json:"subreddits"`
	Visibility  string   `json:"visibility"`
	Path        string   `json:"path"`
	CreatedUTC  float64  `json:"created_utc"`
}

// NewMultireddit maps one of the account's custom feeds.
func NewMultireddit(m *reddit.Multireddit) *Multireddit {
	return &Multireddit{
		Name:        m.Name,
		DisplayName: m.DisplayName,
		Description: m.DescriptionMD,
		Subreddits:  m.SubredditNames(),
		Visibility:  m.Visibility,
		Path:        m.Path,
		CreatedUTC:  m.CreatedUTC,
	}
}
