package tools

import (
	"context"

	"github.com/reddit-mcp/reddit-mcp-server/internal/models"
	"github.com/reddit-mcp/reddit-mcp-server/internal/reddit"
)

// ReplyToPost comments on a post.
func (s *Service) ReplyToPost(ctx context.Context, id, text string) Result {
	return s.reply(ctx, "reply_to_post", "post_id", reddit.KindLink, id, text)
}

// ReplyToComment replies to a comment.
func (s *Service) ReplyToComment(ctx context.Context, id, text string) Result {
	return s.reply(ctx, "reply_to_comment", "comment_id", reddit.KindComment, id, text)
}

func (s *Service) reply(ctx context.Context, tool, idArg, kind, id, text string) Result {
	if err := required(idArg, id); err != nil {
		return s.reject(tool, ShapeSingle, err)
	}
	if err := required("text", text); err != nil {
		return s.reject(tool, ShapeSingle, err)
	}

	return s.run(ctx, tool, ShapeSingle, func(ctx context.Context, api reddit.API) (any, error) {
		comment, err := api.Reply(ctx, reddit.Fullname(kind, id), text)
		if err != nil {
			return nil, err
		}
		return models.NewCreatedComment(comment), nil
	})
}

// EditComment replaces the body of a comment authored by the account.
func (s *Service) EditComment(ctx context.Context, id, text string) Result {
	const tool = "edit_comment"
	if err := required("comment_id", id); err != nil {
		return s.reject(tool, ShapeAction, err)
	}
	if err := required("text", text); err != nil {
		return s.reject(tool, ShapeAction, err)
	}

	return s.run(ctx, tool, ShapeAction, func(ctx context.Context, api reddit.API) (any, error) {
		if err := api.EditText(ctx, reddit.Fullname(reddit.KindComment, id), text); err != nil {
			return nil, err
		}
		return models.NewAck("Comment %s edited", id), nil
	})
}

// DeleteComment deletes a comment authored by the account.
func (s *Service) DeleteComment(ctx context.Context, id string) Result {
	const tool = "delete_comment"
	if err := required("comment_id", id); err != nil {
		return s.reject(tool, ShapeAction, err)
	}

	return s.run(ctx, tool, ShapeAction, func(ctx context.Context, api reddit.API) (any, error) {
		if err := api.Delete(ctx, reddit.Fullname(reddit.KindComment, id)); err != nil {
			return nil, err
		}
		return models.NewAck("Comment %s deleted", id), nil
	})
}
