package tools

import (
	"context"

	"github.com/reddit-mcp/reddit-mcp-server/internal/models"
	"github.com/reddit-mcp/reddit-mcp-server/internal/reddit"
)

// GetUserInfo returns a redditor's profile.
func (s *Service) GetUserInfo(ctx context.Context, username string) Result {
	const tool = "get_user_info"
	if err := required("username", username); err != nil {
		return s.reject(tool, ShapeSingle, err)
	}

	return s.run(ctx, tool, ShapeSingle, func(ctx context.Context, api reddit.API) (any, error) {
		account, err := api.User(ctx, username)
		if err != nil {
			return nil, err
		}
		return models.NewUser(account), nil
	})
}

// GetUserPosts lists a redditor's submissions sorted by new, top or hot.
func (s *Service) GetUserPosts(ctx context.Context, username, sort string, limit int) Result {
	const tool = "get_user_posts"
	if err := required("username", username); err != nil {
		return s.reject(tool, ShapeCollection, err)
	}
	if !oneOf(sort, UserSorts) {
		return s.reject(tool, ShapeCollection, ErrInvalidSort)
	}

	return s.run(ctx, tool, ShapeCollection, func(ctx context.Context, api reddit.API) (any, error) {
		posts, err := api.UserSubmissions(ctx, username, sort, limit)
		if err != nil {
			return nil, err
		}

		result := make([]*models.PostSummary, 0, len(posts))
		for _, post := range posts {
			result = append(result, models.NewUserPost(post))
		}
		return result, nil
	})
}

// GetUserComments lists a redditor's comments sorted by new, top or hot.
func (s *Service) GetUserComments(ctx context.Context, username, sort string, limit int) Result {
	const tool = "get_user_comments"
	if err := required("username", username); err != nil {
		return s.reject(tool, ShapeCollection, err)
	}
	if !oneOf(sort, UserSorts) {
		return s.reject(tool, ShapeCollection, ErrInvalidSort)
	}

	return s.run(ctx, tool, ShapeCollection, func(ctx context.Context, api reddit.API) (any, error) {
		comments, err := api.UserComments(ctx, username, sort, limit)
		if err != nil {
			return nil, err
		}

		result := make([]*models.UserComment, 0, len(comments))
		for _, comment := range comments {
			result = append(result, models.NewUserComment(comment))
		}
		return result, nil
	})
}

// GetUserKarma returns a redditor's karma totals. Reddit only exposes the
// per-community breakdown for the authenticated account, so other users get
// an empty breakdown.
func (s *Service) GetUserKarma(ctx context.Context, username string) Result {
	const tool = "get_user_karma"
	if err := required("username", username); err != nil {
		return s.reject(tool, ShapeSingle, err)
	}

	return s.run(ctx, tool, ShapeSingle, func(ctx context.Context, api reddit.API) (any, error) {
		account, err := api.User(ctx, username)
		if err != nil {
			return nil, err
		}

		var rows []*reddit.SubredditKarma
		if models.SameUser(username, api.Username()) {
			rows, err = api.MyKarma(ctx)
			if err != nil {
				return nil, err
			}
		}
		return models.NewKarma(account, rows), nil
	})
}

// GetMySaved lists the account's saved posts and comments.
func (s *Service) GetMySaved(ctx context.Context, limit int) Result {
	return s.myItems(ctx, "get_my_saved", "saved", limit)
}

// GetMyUpvoted lists the account's upvoted posts and comments.
func (s *Service) GetMyUpvoted(ctx context.Context, limit int) Result {
	return s.myItems(ctx, "get_my_upvoted", "upvoted", limit)
}

// GetMyDownvoted lists the account's downvoted posts and comments.
func (s *Service) GetMyDownvoted(ctx context.Context, limit int) Result {
	return s.myItems(ctx, "get_my_downvoted", "downvoted", limit)
}

func (s *Service) myItems(ctx context.Context, tool, where string, limit int) Result {
	return s.run(ctx, tool, ShapeCollection, func(ctx context.Context, api reddit.API) (any, error) {
		items, err := api.MyItems(ctx, where, limit)
		if err != nil {
			return nil, err
		}

		result := make([]*models.SavedItem, 0, len(items))
		for _, item := range items {
			if saved := models.NewSavedItem(item); saved != nil {
				result = append(result, saved)
			}
		}
		return result, nil
	})
}

// SearchUsers finds redditors by name.
func (s *Service) SearchUsers(ctx context.Context, query string, limit int) Result {
	const tool = "search_users"
	if err := required("query", query); err != nil {
		return s.reject(tool, ShapeCollection, err)
	}

	return s.run(ctx, tool, ShapeCollection, func(ctx context.Context, api reddit.API) (any, error) {
		accounts, err := api.SearchUsers(ctx, query, limit)
		if err != nil {
			return nil, err
		}

		result := make([]*models.UserMatch, 0, len(accounts))
		for _, account := range accounts {
			result = append(result, models.NewUserMatch(account))
		}
		return result, nil
	})
}
