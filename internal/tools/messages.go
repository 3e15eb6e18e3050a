package tools

import (
	"context"

	"github.com/reddit-mcp/reddit-mcp-server/internal/models"
	"github.com/reddit-mcp/reddit-mcp-server/internal/reddit"
)

// GetInbox lists inbox items: all, unread, messages, comments or mentions.
func (s *Service) GetInbox(ctx context.Context, filter string, limit int) Result {
	const tool = "get_inbox"
	if !oneOf(filter, InboxFilters) {
		return s.reject(tool, ShapeCollection, ErrInvalidFilterType)
	}

	return s.run(ctx, tool, ShapeCollection, func(ctx context.Context, api reddit.API) (any, error) {
		messages, err := api.Inbox(ctx, filter, limit)
		if err != nil {
			return nil, err
		}

		result := make([]*models.Message, 0, len(messages))
		for _, message := range messages {
			result = append(result, models.NewMessage(message))
		}
		return result, nil
	})
}

// SendMessage sends a private message.
func (s *Service) SendMessage(ctx context.Context, username, subject, body string) Result {
	const tool = "send_message"
	for _, arg := range []struct{ name, value string }{
		{"username", username},
		{"subject", subject},
		{"message", body},
	} {
		if err := required(arg.name, arg.value); err != nil {
			return s.reject(tool, ShapeAction, err)
		}
	}

	return s.run(ctx, tool, ShapeAction, func(ctx context.Context, api reddit.API) (any, error) {
		if err := api.Compose(ctx, username, subject, body); err != nil {
			return nil, err
		}
		return models.NewAck("Message sent to %s", username), nil
	})
}

// MarkMessageRead marks an inbox item as read.
func (s *Service) MarkMessageRead(ctx context.Context, id string) Result {
	const tool = "mark_message_read"
	if err := required("message_id", id); err != nil {
		return s.reject(tool, ShapeAction, err)
	}

	return s.run(ctx, tool, ShapeAction, func(ctx context.Context, api reddit.API) (any, error) {
		if err := api.MarkRead(ctx, messageFullname(id)); err != nil {
			return nil, err
		}
		return models.NewAck("Message %s marked as read", id), nil
	})
}

// MarkMessageUnread marks an inbox item as unread.
func (s *Service) MarkMessageUnread(ctx context.Context, id string) Result {
	const tool = "mark_message_unread"
	if err := required("message_id", id); err != nil {
		return s.reject(tool, ShapeAction, err)
	}

	return s.run(ctx, tool, ShapeAction, func(ctx context.Context, api reddit.API) (any, error) {
		if err := api.MarkUnread(ctx, messageFullname(id)); err != nil {
			return nil, err
		}
		return models.NewAck("Message %s marked as unread", id), nil
	})
}
