package tools

import (
	"context"

	"github.com/reddit-mcp/reddit-mcp-server/internal/models"
	"github.com/reddit-mcp/reddit-mcp-server/internal/reddit"
)

// GetTrendingSubreddits lists the currently popular communities.
func (s *Service) GetTrendingSubreddits(ctx context.Context) Result {
	return s.run(ctx, "get_trending_subreddits", ShapeCollection, func(ctx context.Context, api reddit.API) (any, error) {
		subs, err := api.PopularSubreddits(ctx, TrendingLimit)
		if err != nil {
			return nil, err
		}

		result := make([]*models.TrendingSubreddit, 0, len(subs))
		for _, sub := range subs {
			result = append(result, models.NewTrendingSubreddit(sub))
		}
		return result, nil
	})
}

// GetFrontPage lists the account's front page.
func (s *Service) GetFrontPage(ctx context.Context, sort string, limit int) Result {
	const tool = "get_front_page"
	if !oneOf(sort, ListingSorts) {
		return s.reject(tool, ShapeCollection, ErrInvalidSort)
	}

	return s.run(ctx, tool, ShapeCollection, func(ctx context.Context, api reddit.API) (any, error) {
		posts, err := api.FrontPage(ctx, sort, limit)
		if err != nil {
			return nil, err
		}

		result := make([]*models.FeedPost, 0, len(posts))
		for _, post := range posts {
			result = append(result, models.NewFeedPost(post))
		}
		return result, nil
	})
}

// GetMyMultireddits lists the account's custom feeds.
func (s *Service) GetMyMultireddits(ctx context.Context) Result {
	return s.run(ctx, "get_my_multireddits", ShapeCollection, func(ctx context.Context, api reddit.API) (any, error) {
		multis, err := api.MyMultireddits(ctx)
		if err != nil {
			return nil, err
		}

		result := make([]*models.Multireddit, 0, len(multis))
		for _, multi := range multis {
			result = append(result, models.NewMultireddit(multi))
		}
		return result, nil
	})
}

// GetRandomPost picks a random post of a community. Without a community it
// first picks a random community.
func (s *Service) GetRandomPost(ctx context.Context, subreddit string) Result {
	return s.run(ctx, "get_random_post", ShapeSingle, func(ctx context.Context, api reddit.API) (any, error) {
		if subreddit == "" {
			name, err := api.RandomSubreddit(ctx)
			if err != nil {
				return nil, err
			}
			subreddit = name
		}

		post, err := api.RandomSubmission(ctx, subreddit)
		if err != nil {
			return nil, err
		}
		if post == nil {
			return nil, ErrNoRandomPost
		}
		return models.NewRandomPost(post), nil
	})
}
