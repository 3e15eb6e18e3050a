package reddit

import (
	"context"
	"fmt"
)

var inboxPaths = map[string]string{
	"all":      "/message/inbox",
	"unread":   "/message/unread",
	"messages": "/message/messages",
	"comments": "/message/comments",
	"mentions": "/message/mentions",
}

// Inbox lists inbox items for one of the filters all, unread, messages,
// comments or mentions.
func (c *Client) Inbox(ctx context.Context, filter string, limit int) ([]*Message, error) {
	path, ok := inboxPaths[filter]
	if !ok {
		return nil, fmt.Errorf("unknown inbox filter %q", filter)
	}

	things, err := c.listing(ctx, path, nil, limit)
	if err != nil {
		return nil, err
	}
	return parseMessages(things), nil
}

// Compose sends a private message.
func (c *Client) Compose(ctx context.Context, to, subject, body string) error {
	_, err := c.postJSON(ctx, "/api/compose", map[string]string{
		"to":      to,
		"subject": subject,
		"text":    body,
	})
	return err
}

// MarkRead marks an inbox item as read.
func (c *Client) MarkRead(ctx context.Context, fullname string) error {
	return c.post(ctx, "/api/read_message", map[string]string{"id": fullname}, nil)
}

// MarkUnread marks an inbox item as unread.
func (c *Client) MarkUnread(ctx context.Context, fullname string) error {
	return c.post(ctx, "/api/unread_message", map[string]string{"id": fullname}, nil)
}
