package tools

import (
	"context"

	"github.com/reddit-mcp/reddit-mcp-server/internal/models"
	"github.com/reddit-mcp/reddit-mcp-server/internal/reddit"
)

func itemFullname(itemType, id string) string {
	if itemType == "comment" {
		return reddit.Fullname(reddit.KindComment, id)
	}
	return reddit.Fullname(reddit.KindLink, id)
}

// itemAction validates the item type and id, then performs a single
// state change and acknowledges it with message(itemType, id). act has the
// shape of a reddit.API method expression.
func (s *Service) itemAction(ctx context.Context, tool, id, itemType string,
	act func(api reddit.API, ctx context.Context, fullname string) error,
	message func(itemType, id string) *models.Ack) Result {
	if err := required("item_id", id); err != nil {
		return s.reject(tool, ShapeAction, err)
	}
	if !oneOf(itemType, ItemTypes) {
		return s.reject(tool, ShapeAction, ErrInvalidItemType)
	}

	return s.run(ctx, tool, ShapeAction, func(ctx context.Context, api reddit.API) (any, error) {
		if err := act(api, ctx, itemFullname(itemType, id)); err != nil {
			return nil, err
		}
		return message(itemType, id), nil
	})
}

func vote(dir reddit.VoteDirection) func(reddit.API, context.Context, string) error {
	return func(api reddit.API, ctx context.Context, fullname string) error {
		return api.Vote(ctx, fullname, dir)
	}
}

func ack(verb string) func(itemType, id string) *models.Ack {
	return func(itemType, id string) *models.Ack {
		return models.NewAck("%s %s %s", itemType, id, verb)
	}
}

// Upvote upvotes a post or comment.
func (s *Service) Upvote(ctx context.Context, id, itemType string) Result {
	return s.itemAction(ctx, "upvote", id, itemType, vote(reddit.VoteUp), ack("upvoted"))
}

// Downvote downvotes a post or comment.
func (s *Service) Downvote(ctx context.Context, id, itemType string) Result {
	return s.itemAction(ctx, "downvote", id, itemType, vote(reddit.VoteDown), ack("downvoted"))
}

// ClearVote removes the account's vote on a post or comment.
func (s *Service) ClearVote(ctx context.Context, id, itemType string) Result {
	return s.itemAction(ctx, "clear_vote", id, itemType, vote(reddit.VoteClear), func(itemType, id string) *models.Ack {
		return models.NewAck("Vote cleared on %s %s", itemType, id)
	})
}

// SaveItem saves a post or comment.
func (s *Service) SaveItem(ctx context.Context, id, itemType string) Result {
	return s.itemAction(ctx, "save_item", id, itemType, reddit.API.Save, ack("saved"))
}

// UnsaveItem removes a post or comment from the saved items.
func (s *Service) UnsaveItem(ctx context.Context, id, itemType string) Result {
	return s.itemAction(ctx, "unsave_item", id, itemType, reddit.API.Unsave, ack("unsaved"))
}

// HidePost hides a post from the account's listings.
func (s *Service) HidePost(ctx context.Context, id string) Result {
	const tool = "hide_post"
	if err := required("post_id", id); err != nil {
		return s.reject(tool, ShapeAction, err)
	}

	return s.run(ctx, tool, ShapeAction, func(ctx context.Context, api reddit.API) (any, error) {
		if err := api.Hide(ctx, reddit.Fullname(reddit.KindLink, id)); err != nil {
			return nil, err
		}
		return models.NewAck("Post %s hidden", id), nil
	})
}

// UnhidePost reverses HidePost.
func (s *Service) UnhidePost(ctx context.Context, id string) Result {
	const tool = "unhide_post"
	if err := required("post_id", id); err != nil {
		return s.reject(tool, ShapeAction, err)
	}

	return s.run(ctx, tool, ShapeAction, func(ctx context.Context, api reddit.API) (any, error) {
		if err := api.Unhide(ctx, reddit.Fullname(reddit.KindLink, id)); err != nil {
			return nil, err
		}
		return models.NewAck("Post %s unhidden", id), nil
	})
}
