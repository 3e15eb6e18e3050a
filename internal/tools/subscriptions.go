package tools

import (
	"context"

	"github.com/reddit-mcp/reddit-mcp-server/internal/models"
	"github.com/reddit-mcp/reddit-mcp-server/internal/reddit"
)

// profileSubreddit is the community backing a user profile. Following a
// user is a subscription to it.
func profileSubreddit(username string) string {
	return "u_" + username
}

// SubscribeSubreddit subscribes the account to a community.
func (s *Service) SubscribeSubreddit(ctx context.Context, subreddit string) Result {
	const tool = "subscribe_subreddit"
	if err := required("subreddit_name", subreddit); err != nil {
		return s.reject(tool, ShapeAction, err)
	}

	return s.run(ctx, tool, ShapeAction, func(ctx context.Context, api reddit.API) (any, error) {
		if err := api.Subscribe(ctx, subreddit); err != nil {
			return nil, err
		}
		return models.NewAck("Subscribed to r/%s", subreddit), nil
	})
}

// UnsubscribeSubreddit removes the account's subscription to a community.
func (s *Service) UnsubscribeSubreddit(ctx context.Context, subreddit string) Result {
	const tool = "unsubscribe_subreddit"
	if err := required("subreddit_name", subreddit); err != nil {
		return s.reject(tool, ShapeAction, err)
	}

	return s.run(ctx, tool, ShapeAction, func(ctx context.Context, api reddit.API) (any, error) {
		if err := api.Unsubscribe(ctx, subreddit); err != nil {
			return nil, err
		}
		return models.NewAck("Unsubscribed from r/%s", subreddit), nil
	})
}

// GetMySubscriptions lists the communities the account is subscribed to.
func (s *Service) GetMySubscriptions(ctx context.Context, limit int) Result {
	return s.run(ctx, "get_my_subscriptions", ShapeCollection, func(ctx context.Context, api reddit.API) (any, error) {
		subs, err := api.MySubreddits(ctx, limit)
		if err != nil {
			return nil, err
		}

		result := make([]*models.SubredditSummary, 0, len(subs))
		for _, sub := range subs {
			result = append(result, models.NewSubscription(sub))
		}
		return result, nil
	})
}

// FollowUser follows a redditor.
func (s *Service) FollowUser(ctx context.Context, username string) Result {
	const tool = "follow_user"
	if err := required("username", username); err != nil {
		return s.reject(tool, ShapeAction, err)
	}

	return s.run(ctx, tool, ShapeAction, func(ctx context.Context, api reddit.API) (any, error) {
		if err := api.Subscribe(ctx, profileSubreddit(username)); err != nil {
			return nil, err
		}
		return models.NewAck("Now following u/%s", username), nil
	})
}

// UnfollowUser stops following a redditor.
func (s *Service) UnfollowUser(ctx context.Context, username string) Result {
	const tool = "unfollow_user"
	if err := required("username", username); err != nil {
		return s.reject(tool, ShapeAction, err)
	}

	return s.run(ctx, tool, ShapeAction, func(ctx context.Context, api reddit.API) (any, error) {
		if err := api.Unsubscribe(ctx, profileSubreddit(username)); err != nil {
			return nil, err
		}
		return models.NewAck("Unfollowed u/%s", username), nil
	})
}
