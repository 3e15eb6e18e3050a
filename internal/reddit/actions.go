package reddit

import (
	"context"
	"strconv"
)

// Vote casts, flips or clears the account's vote on a post or comment.
func (c *Client) Vote(ctx context.Context, fullname string, dir VoteDirection) error {
	return c.post(ctx, "/api/vote", map[string]string{
		"id":  fullname,
		"dir": strconv.Itoa(int(dir)),
	}, nil)
}

// Save adds a post or comment to the account's saved items.
func (c *Client) Save(ctx context.Context, fullname string) error {
	return c.post(ctx, "/api/save", map[string]string{"id": fullname}, nil)
}

// Unsave removes a post or comment from the account's saved items.
func (c *Client) Unsave(ctx context.Context, fullname string) error {
	return c.post(ctx, "/api/unsave", map[string]string{"id": fullname}, nil)
}

// Hide hides a post from the account's listings.
func (c *Client) Hide(ctx context.Context, fullname string) error {
	return c.post(ctx, "/api/hide", map[string]string{"id": fullname}, nil)
}

// Unhide reverses Hide.
func (c *Client) Unhide(ctx context.Context, fullname string) error {
	return c.post(ctx, "/api/unhide", map[string]string{"id": fullname}, nil)
}
