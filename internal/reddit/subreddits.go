package reddit

import (
	"context"
	"net/url"
	"strconv"
)

// SubredditAbout fetches /r/{name}/about.
func (c *Client) SubredditAbout(ctx context.Context, name string) (*Subreddit, error) {
	var thing Thing
	if err := c.get(ctx, "/r/"+url.PathEscape(name)+"/about", nil, &thing); err != nil {
		return nil, err
	}
	return parseSubreddit(&thing)
}

// SubredditListing fetches hot/new/top/rising/controversial posts. The time
// filter only applies to top and controversial.
func (c *Client) SubredditListing(ctx context.Context, name, sort, timeFilter string, limit int) ([]*Post, error) {
	params := url.Values{}
	if (sort == "top" || sort == "controversial") && timeFilter != "" {
		params.Set("t", timeFilter)
	}

	things, err := c.listing(ctx, "/r/"+url.PathEscape(name)+"/"+sort, params, limit)
	if err != nil {
		return nil, err
	}
	return parsePosts(things), nil
}

// SearchSubreddits searches community names and descriptions.
func (c *Client) SearchSubreddits(ctx context.Context, query string, limit int) ([]*Subreddit, error) {
	things, err := c.listing(ctx, "/subreddits/search", url.Values{"q": {query}}, limit)
	if err != nil {
		return nil, err
	}
	return parseSubreddits(things), nil
}

// SubredditRules returns the raw rule objects of a community.
func (c *Client) SubredditRules(ctx context.Context, name string) ([]map[string]any, error) {
	var resp struct {
		Rules []map[string]any `json:"rules"`
	}
	if err := c.get(ctx, "/r/"+url.PathEscape(name)+"/about/rules", nil, &resp); err != nil {
		return nil, err
	}
	if resp.Rules == nil {
		return []map[string]any{}, nil
	}
	return resp.Rules, nil
}

// SubredditModerators lists the moderators of a community.
func (c *Client) SubredditModerators(ctx context.Context, name string) ([]*Moderator, error) {
	var resp struct {
		Kind string `json:"kind"`
		Data struct {
			Children []*Moderator `json:"children"`
		} `json:"data"`
	}
	if err := c.get(ctx, "/r/"+url.PathEscape(name)+"/about/moderators", nil, &resp); err != nil {
		return nil, err
	}
	if resp.Data.Children == nil {
		return []*Moderator{}, nil
	}
	return resp.Data.Children, nil
}

// MySubreddits lists the communities the account is subscribed to.
func (c *Client) MySubreddits(ctx context.Context, limit int) ([]*Subreddit, error) {
	things, err := c.listing(ctx, "/subreddits/mine/subscriber", nil, limit)
	if err != nil {
		return nil, err
	}
	return parseSubreddits(things), nil
}

// PopularSubreddits lists the currently popular communities.
func (c *Client) PopularSubreddits(ctx context.Context, limit int) ([]*Subreddit, error) {
	things, err := c.listing(ctx, "/subreddits/popular", nil, limit)
	if err != nil {
		return nil, err
	}
	return parseSubreddits(things), nil
}

// Subscribe subscribes the account to a community. Profile communities are
// addressed as "u_<username>".
func (c *Client) Subscribe(ctx context.Context, name string) error {
	return c.subscription(ctx, "sub", name)
}

// Unsubscribe removes the subscription to a community.
func (c *Client) Unsubscribe(ctx context.Context, name string) error {
	return c.subscription(ctx, "unsub", name)
}

func (c *Client) subscription(ctx context.Context, action, name string) error {
	form := map[string]string{
		"action":  action,
		"sr_name": name,
	}
	if action == "sub" {
		form["skip_initial_defaults"] = strconv.FormatBool(true)
	}
	return c.post(ctx, "/api/subscribe", form, nil)
}
