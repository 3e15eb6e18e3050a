package tools

import (
	"context"

	"github.com/reddit-mcp/reddit-mcp-server/internal/models"
	"github.com/reddit-mcp/reddit-mcp-server/internal/reddit"
)

func validateSearch(sort, timeFilter string) error {
	if !oneOf(sort, SearchSorts) {
		return ErrInvalidSearchSort
	}
	if !oneOf(timeFilter, TimeFilters) {
		return ErrInvalidTimeFilter
	}
	return nil
}

// SearchAllReddit searches posts across the whole site.
func (s *Service) SearchAllReddit(ctx context.Context, query, sort, timeFilter string, limit int) Result {
	const tool = "search_all_reddit"
	if err := required("query", query); err != nil {
		return s.reject(tool, ShapeCollection, err)
	}
	if err := validateSearch(sort, timeFilter); err != nil {
		return s.reject(tool, ShapeCollection, err)
	}

	return s.run(ctx, tool, ShapeCollection, func(ctx context.Context, api reddit.API) (any, error) {
		posts, err := api.Search(ctx, "all", query, sort, timeFilter, limit)
		if err != nil {
			return nil, err
		}

		result := make([]*models.PostSummary, 0, len(posts))
		for _, post := range posts {
			result = append(result, models.NewPostSummary(post))
		}
		return result, nil
	})
}

// SearchInSubreddit searches posts of one community.
func (s *Service) SearchInSubreddit(ctx context.Context, subreddit, query, sort, timeFilter string, limit int) Result {
	const tool = "search_in_subreddit"
	if err := required("subreddit_name", subreddit); err != nil {
		return s.reject(tool, ShapeCollection, err)
	}
	if err := required("query", query); err != nil {
		return s.reject(tool, ShapeCollection, err)
	}
	if err := validateSearch(sort, timeFilter); err != nil {
		return s.reject(tool, ShapeCollection, err)
	}

	return s.run(ctx, tool, ShapeCollection, func(ctx context.Context, api reddit.API) (any, error) {
		posts, err := api.Search(ctx, subreddit, query, sort, timeFilter, limit)
		if err != nil {
			return nil, err
		}

		result := make([]*models.PostSummary, 0, len(posts))
		for _, post := range posts {
			result = append(result, models.NewSubredditSearchResult(post))
		}
		return result, nil
	})
}
