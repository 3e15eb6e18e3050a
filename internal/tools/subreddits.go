package tools

import (
	"context"

	"github.com/reddit-mcp/reddit-mcp-server/internal/models"
	"github.com/reddit-mcp/reddit-mcp-server/internal/reddit"
)

// GetSubredditInfo returns the detailed view of a community.
func (s *Service) GetSubredditInfo(ctx context.Context, subreddit string) Result {
	const tool = "get_subreddit_info"
	if err := required("subreddit_name", subreddit); err != nil {
		return s.reject(tool, ShapeSingle, err)
	}

	return s.run(ctx, tool, ShapeSingle, func(ctx context.Context, api reddit.API) (any, error) {
		sub, err := api.SubredditAbout(ctx, subreddit)
		if err != nil {
			return nil, err
		}
		return models.NewSubreddit(sub), nil
	})
}

// GetSubredditPosts lists a community's posts by sort. timeFilter applies to
// top and controversial only.
func (s *Service) GetSubredditPosts(ctx context.Context, subreddit, sort, timeFilter string, limit int) Result {
	const tool = "get_subreddit_posts"
	if err := required("subreddit_name", subreddit); err != nil {
		return s.reject(tool, ShapeCollection, err)
	}
	if !oneOf(sort, ListingSorts) {
		return s.reject(tool, ShapeCollection, ErrInvalidSort)
	}
	if !oneOf(timeFilter, TimeFilters) {
		return s.reject(tool, ShapeCollection, ErrInvalidTimeFilter)
	}

	return s.run(ctx, tool, ShapeCollection, func(ctx context.Context, api reddit.API) (any, error) {
		posts, err := api.SubredditListing(ctx, subreddit, sort, timeFilter, limit)
		if err != nil {
			return nil, err
		}

		result := make([]*models.Post, 0, len(posts))
		for _, post := range posts {
			result = append(result, models.NewPost(post))
		}
		return result, nil
	})
}

// SearchSubreddits finds communities by name and description.
func (s *Service) SearchSubreddits(ctx context.Context, query string, limit int) Result {
	const tool = "search_subreddits"
	if err := required("query", query); err != nil {
		return s.reject(tool, ShapeCollection, err)
	}

	return s.run(ctx, tool, ShapeCollection, func(ctx context.Context, api reddit.API) (any, error) {
		subs, err := api.SearchSubreddits(ctx, query, limit)
		if err != nil {
			return nil, err
		}

		result := make([]*models.SubredditSummary, 0, len(subs))
		for _, sub := range subs {
			result = append(result, models.NewSubredditSummary(sub))
		}
		return result, nil
	})
}

// GetSubredditRules lists a community's rules.
func (s *Service) GetSubredditRules(ctx context.Context, subreddit string) Result {
	const tool = "get_subreddit_rules"
	if err := required("subreddit_name", subreddit); err != nil {
		return s.reject(tool, ShapeCollection, err)
	}

	return s.run(ctx, tool, ShapeCollection, func(ctx context.Context, api reddit.API) (any, error) {
		rules, err := api.SubredditRules(ctx, subreddit)
		if err != nil {
			return nil, err
		}

		result := make([]*models.Rule, 0, len(rules))
		for _, rule := range rules {
			result = append(result, models.NewRule(rule))
		}
		return result, nil
	})
}

// GetSubredditModerators lists a community's moderators.
func (s *Service) GetSubredditModerators(ctx context.Context, subreddit string) Result {
	const tool = "get_subreddit_moderators"
	if err := required("subreddit_name", subreddit); err != nil {
		return s.reject(tool, ShapeCollection, err)
	}

	return s.run(ctx, tool, ShapeCollection, func(ctx context.Context, api reddit.API) (any, error) {
		mods, err := api.SubredditModerators(ctx, subreddit)
		if err != nil {
			return nil, err
		}

		result := make([]*models.Moderator, 0, len(mods))
		for _, mod := range mods {
			result = append(result, models.NewModerator(mod))
		}
		return result, nil
	})
}
