package reddit

import (
	"context"
	"fmt"
	"net/url"
)

// User fetches /user/{name}/about.
func (c *Client) User(ctx context.Context, name string) (*Account, error) {
	var thing Thing
	if err := c.get(ctx, "/user/"+url.PathEscape(name)+"/about", nil, &thing); err != nil {
		return nil, err
	}
	return parseAccount(&thing)
}

// UserSubmissions lists a user's posts sorted by new, top or hot.
func (c *Client) UserSubmissions(ctx context.Context, name, sort string, limit int) ([]*Post, error) {
	things, err := c.listing(ctx, "/user/"+url.PathEscape(name)+"/submitted", url.Values{"sort": {sort}}, limit)
	if err != nil {
		return nil, err
	}
	return parsePosts(things), nil
}

// UserComments lists a user's comments sorted by new, top or hot.
func (c *Client) UserComments(ctx context.Context, name, sort string, limit int) ([]*Comment, error) {
	things, err := c.listing(ctx, "/user/"+url.PathEscape(name)+"/comments", url.Values{"sort": {sort}}, limit)
	if err != nil {
		return nil, err
	}
	return parseComments(things), nil
}

// SearchUsers searches accounts by name.
func (c *Client) SearchUsers(ctx context.Context, query string, limit int) ([]*Account, error) {
	things, err := c.listing(ctx, "/users/search", url.Values{"q": {query}}, limit)
	if err != nil {
		return nil, err
	}
	return parseAccounts(things), nil
}

// MyKarma returns the authenticated account's karma per subreddit.
func (c *Client) MyKarma(ctx context.Context) ([]*SubredditKarma, error) {
	var resp struct {
		Kind string            `json:"kind"`
		Data []*SubredditKarma `json:"data"`
	}
	if err := c.get(ctx, "/api/v1/me/karma", nil, &resp); err != nil {
		return nil, err
	}
	if resp.Data == nil {
		return []*SubredditKarma{}, nil
	}
	return resp.Data, nil
}

var myItemListings = map[string]bool{
	"saved":     true,
	"upvoted":   true,
	"downvoted": true,
}

// MyItems lists the account's saved, upvoted or downvoted posts and comments.
func (c *Client) MyItems(ctx context.Context, where string, limit int) ([]*Item, error) {
	if !myItemListings[where] {
		return nil, fmt.Errorf("unknown listing %q", where)
	}

	things, err := c.listing(ctx, "/user/"+url.PathEscape(c.creds.Username)+"/"+where, nil, limit)
	if err != nil {
		return nil, err
	}
	return parseItems(things), nil
}

// MyMultireddits lists the multireddits owned by the account.
func (c *Client) MyMultireddits(ctx context.Context) ([]*Multireddit, error) {
	var things []struct {
		Kind string       `json:"kind"`
		Data *Multireddit `json:"data"`
	}
	if err := c.get(ctx, "/api/multi/mine", nil, &things); err != nil {
		return nil, err
	}

	multis := make([]*Multireddit, 0, len(things))
	for _, thing := range things {
		if thing.Data != nil {
			multis = append(multis, thing.Data)
		}
	}
	return multis, nil
}
