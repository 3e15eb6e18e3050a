package reddit

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// Submission fetches a single post by id.
func (c *Client) Submission(ctx context.Context, id string) (*Post, error) {
	post, _, err := c.submissionPage(ctx, id, url.Values{"limit": {"1"}})
	return post, err
}

// submissionPage fetches /comments/{id}, which answers with the post listing
// followed by the comment listing.
func (c *Client) submissionPage(ctx context.Context, id string, params url.Values) (*Post, []*CommentNode, error) {
	var things []*Thing
	if err := c.get(ctx, "/comments/"+url.PathEscape(id), params, &things); err != nil {
		return nil, nil, err
	}
	if len(things) < 2 {
		return nil, nil, fmt.Errorf("unexpected response for submission %s", id)
	}

	postListing, err := parseListing(things[0])
	if err != nil {
		return nil, nil, err
	}
	posts := parsePosts(postListing.Children)
	if len(posts) == 0 {
		return nil, nil, fmt.Errorf("submission %s not found", id)
	}

	forest, err := parseForest(things[1])
	if err != nil {
		return nil, nil, err
	}
	return posts[0], forest, nil
}

// Submit creates a text post (when URL is empty) or a link post and returns
// the created submission.
func (c *Client) Submit(ctx context.Context, req SubmitRequest) (*Post, error) {
	form := map[string]string{
		"sr":          req.Subreddit,
		"title":       req.Title,
		"nsfw":        strconv.FormatBool(req.NSFW),
		"spoiler":     strconv.FormatBool(req.Spoiler),
		"resubmit":    "true",
		"sendreplies": "true",
	}
	if req.URL != "" {
		form["kind"] = "link"
		form["url"] = req.URL
	} else {
		form["kind"] = "self"
		form["text"] = req.Text
	}
	if req.FlairID != "" {
		form["flair_id"] = req.FlairID
	}

	data, err := c.postJSON(ctx, "/api/submit", form)
	if err != nil {
		return nil, err
	}

	var created struct {
		ID   string `json:"id"`
		Name string `json:"name"`
		URL  string `json:"url"`
	}
	if err := json.Unmarshal(data, &created); err != nil {
		return nil, fmt.Errorf("failed to decode submit response: %w", err)
	}
	if created.ID == "" {
		return nil, fmt.Errorf("submit response did not include a post id")
	}

	name := created.Name
	if name == "" {
		name = Fullname(KindLink, created.ID)
	}
	things, err := c.listing(ctx, "/api/info", url.Values{"id": {name}}, 0)
	if err == nil {
		if posts := parsePosts(things); len(posts) > 0 {
			return posts[0], nil
		}
	}

	// The post exists even if the follow-up lookup failed.
	return &Post{
		ID:        created.ID,
		Name:      name,
		Title:     req.Title,
		URL:       created.URL,
		Permalink: strings.TrimPrefix(created.URL, "https://www.reddit.com"),
		Subreddit: req.Subreddit,
	}, nil
}

// Reply posts a comment under a submission (t3_) or comment (t1_).
func (c *Client) Reply(ctx context.Context, parentFullname, text string) (*Comment, error) {
	data, err := c.postJSON(ctx, "/api/comment", map[string]string{
		"thing_id": parentFullname,
		"text":     text,
	})
	if err != nil {
		return nil, err
	}

	var created struct {
		Things []*Thing `json:"things"`
	}
	if err := json.Unmarshal(data, &created); err != nil {
		return nil, fmt.Errorf("failed to decode comment response: %w", err)
	}
	if len(created.Things) == 0 {
		return nil, fmt.Errorf("comment response did not include the new comment")
	}
	return parseComment(created.Things[0])
}

// EditText replaces the body of a comment or self post.
func (c *Client) EditText(ctx context.Context, fullname, text string) error {
	_, err := c.postJSON(ctx, "/api/editusertext", map[string]string{
		"thing_id": fullname,
		"text":     text,
	})
	return err
}

// Delete removes a post or comment authored by the account.
func (c *Client) Delete(ctx context.Context, fullname string) error {
	return c.post(ctx, "/api/del", map[string]string{"id": fullname}, nil)
}

// FrontPage lists the account's front page.
func (c *Client) FrontPage(ctx context.Context, sort string, limit int) ([]*Post, error) {
	params := url.Values{}
	if sort == "top" || sort == "controversial" {
		params.Set("t", "all")
	}

	things, err := c.listing(ctx, "/"+sort, params, limit)
	if err != nil {
		return nil, err
	}
	return parsePosts(things), nil
}

// Search searches posts inside a community; "all" searches the whole site.
func (c *Client) Search(ctx context.Context, subreddit, query, sort, timeFilter string, limit int) ([]*Post, error) {
	params := url.Values{
		"q":           {query},
		"sort":        {sort},
		"t":           {timeFilter},
		"restrict_sr": {"on"},
	}

	things, err := c.listing(ctx, "/r/"+url.PathEscape(subreddit)+"/search", params, limit)
	if err != nil {
		return nil, err
	}
	return parsePosts(things), nil
}

// RandomSubreddit asks Reddit for a random community and returns its name.
func (c *Client) RandomSubreddit(ctx context.Context) (string, error) {
	location, err := c.redirectTarget(ctx, "/r/random")
	if err != nil {
		return "", err
	}

	name := subredditFromLocation(location)
	if name == "" {
		return "", fmt.Errorf("no random subreddit available")
	}
	return name, nil
}

// RandomSubmission returns a random post of the community, or nil when
// Reddit does not redirect to one.
func (c *Client) RandomSubmission(ctx context.Context, subreddit string) (*Post, error) {
	location, err := c.redirectTarget(ctx, "/r/"+url.PathEscape(subreddit)+"/random")
	if err != nil {
		return nil, err
	}

	id := submissionFromLocation(location)
	if id == "" {
		return nil, nil
	}
	return c.Submission(ctx, id)
}
