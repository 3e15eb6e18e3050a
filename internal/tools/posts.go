package tools

import (
	"context"

	"github.com/reddit-mcp/reddit-mcp-server/internal/models"
	"github.com/reddit-mcp/reddit-mcp-server/internal/reddit"
)

// GetPost returns the full view of a post given its id or URL.
func (s *Service) GetPost(ctx context.Context, rawID string) Result {
	const tool = "get_post"
	id, err := postID(rawID)
	if err != nil {
		return s.reject(tool, ShapeSingle, err)
	}

	return s.run(ctx, tool, ShapeSingle, func(ctx context.Context, api reddit.API) (any, error) {
		post, err := api.Submission(ctx, id)
		if err != nil {
			return nil, err
		}
		return models.NewPostDetail(post), nil
	})
}

// GetPostComments returns the comment tree of a post. limit caps how many
// "load more" placeholders are expanded; nil expands all of them.
func (s *Service) GetPostComments(ctx context.Context, rawID string, limit *int) Result {
	const tool = "get_post_comments"
	id, err := postID(rawID)
	if err != nil {
		return s.reject(tool, ShapeCollection, err)
	}

	return s.run(ctx, tool, ShapeCollection, func(ctx context.Context, api reddit.API) (any, error) {
		forest, err := api.SubmissionComments(ctx, id, limit)
		if err != nil {
			return nil, err
		}
		return models.FlattenComments(forest), nil
	})
}

// SubmitOptions are the optional settings of a new post.
type SubmitOptions struct {
	FlairID string
	NSFW    bool
	Spoiler bool
}

// SubmitTextPost creates a self post.
func (s *Service) SubmitTextPost(ctx context.Context, subreddit, title, text string, opts SubmitOptions) Result {
	return s.submit(ctx, "submit_text_post", reddit.SubmitRequest{
		Subreddit: subreddit,
		Title:     title,
		Text:      text,
		FlairID:   opts.FlairID,
		NSFW:      opts.NSFW,
		Spoiler:   opts.Spoiler,
	})
}

// SubmitLinkPost creates a link post.
func (s *Service) SubmitLinkPost(ctx context.Context, subreddit, title, url string, opts SubmitOptions) Result {
	const tool = "submit_link_post"
	if err := required("url", url); err != nil {
		return s.reject(tool, ShapeSingle, err)
	}

	return s.submit(ctx, tool, reddit.SubmitRequest{
		Subreddit: subreddit,
		Title:     title,
		URL:       url,
		FlairID:   opts.FlairID,
		NSFW:      opts.NSFW,
		Spoiler:   opts.Spoiler,
	})
}

func (s *Service) submit(ctx context.Context, tool string, req reddit.SubmitRequest) Result {
	if err := required("subreddit_name", req.Subreddit); err != nil {
		return s.reject(tool, ShapeSingle, err)
	}
	if err := required("title", req.Title); err != nil {
		return s.reject(tool, ShapeSingle, err)
	}

	return s.run(ctx, tool, ShapeSingle, func(ctx context.Context, api reddit.API) (any, error) {
		post, err := api.Submit(ctx, req)
		if err != nil {
			return nil, err
		}
		return models.NewSubmittedPost(post), nil
	})
}

// DeletePost deletes a post authored by the account.
func (s *Service) DeletePost(ctx context.Context, id string) Result {
	const tool = "delete_post"
	if err := required("post_id", id); err != nil {
		return s.reject(tool, ShapeAction, err)
	}

	return s.run(ctx, tool, ShapeAction, func(ctx context.Context, api reddit.API) (any, error) {
		if err := api.Delete(ctx, reddit.Fullname(reddit.KindLink, id)); err != nil {
			return nil, err
		}
		return models.NewAck("Post %s deleted", id), nil
	})
}
