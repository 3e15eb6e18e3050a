package server

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/reddit-mcp/reddit-mcp-server/internal/reddit"
	"github.com/reddit-mcp/reddit-mcp-server/internal/reddit/mocks"
	"github.com/reddit-mcp/reddit-mcp-server/internal/tools"
)

func newTools(api *mocks.API) (map[string]server.ServerTool, *mocks.Provider) {
	provider := &mocks.Provider{API: api}
	registered := make(map[string]server.ServerTool)
	for _, t := range Tools(tools.NewService(provider)) {
		registered[t.Tool.Name] = t
	}
	return registered, provider
}

func call(t *testing.T, registered map[string]server.ServerTool, name string, args map[string]any) any {
	t.Helper()
	tool, ok := registered[name]
	require.True(t, ok, "tool %s not registered", name)

	req := mcp.CallToolRequest{}
	req.Params.Name = name
	req.Params.Arguments = args

	result, err := tool.Handler(context.Background(), req)
	require.NoError(t, err)
	require.Len(t, result.Content, 1)

	text, ok := result.Content[0].(mcp.TextContent)
	require.True(t, ok)

	var out any
	require.NoError(t, json.Unmarshal([]byte(text.Text), &out))
	return out
}

func TestTools_Registered(t *testing.T) {
	registered, _ := newTools(new(mocks.API))

	expected := []string{
		"get_subreddit_info", "get_subreddit_posts", "search_subreddits", "get_subreddit_rules",
		"get_subreddit_moderators", "get_post", "get_post_comments", "submit_text_post",
		"submit_link_post", "delete_post", "reply_to_post", "reply_to_comment", "edit_comment",
		"delete_comment", "get_user_info", "get_user_posts", "get_user_comments", "get_user_karma",
		"get_my_saved", "get_my_upvoted", "get_my_downvoted", "upvote", "downvote", "clear_vote",
		"save_item", "unsave_item", "hide_post", "unhide_post", "search_all_reddit",
		"search_in_subreddit", "search_users", "get_inbox", "send_message", "mark_message_read",
		"mark_message_unread", "subscribe_subreddit", "unsubscribe_subreddit",
		"get_my_subscriptions", "follow_user", "unfollow_user", "get_trending_subreddits",
		"get_front_page", "get_my_multireddits", "get_random_post",
	}

	assert.Len(t, registered, len(expected))
	for _, name := range expected {
		tool, ok := registered[name]
		if assert.True(t, ok, name) {
			assert.NotEmpty(t, tool.Tool.Description, name)
		}
	}
}

func TestTools_Schema(t *testing.T) {
	registered, _ := newTools(new(mocks.API))

	posts := registered["get_subreddit_posts"].Tool.InputSchema
	assert.Equal(t, []string{"subreddit_name"}, posts.Required)
	assert.Contains(t, posts.Properties, "sort")
	assert.Contains(t, posts.Properties, "time_filter")
	assert.Contains(t, posts.Properties, "limit")

	upvote := registered["upvote"].Tool.InputSchema
	assert.Equal(t, []string{"item_id"}, upvote.Required)
	assert.Contains(t, upvote.Properties, "item_type")

	assert.Empty(t, registered["get_trending_subreddits"].Tool.InputSchema.Required)
}

func TestHandler_AppliesDefaults(t *testing.T) {
	api := new(mocks.API)
	api.On("SubredditListing", mock.Anything, "golang", "hot", "all", 25).Return([]*reddit.Post{}, nil)
	registered, _ := newTools(api)

	out := call(t, registered, "get_subreddit_posts", map[string]any{"subreddit_name": "golang"})

	assert.Equal(t, []any{}, out)
	api.AssertExpectations(t)
}

func TestHandler_ReadsNumbers(t *testing.T) {
	api := new(mocks.API)
	api.On("FrontPage", mock.Anything, "top", 5).Return([]*reddit.Post{}, nil)
	registered, _ := newTools(api)

	call(t, registered, "get_front_page", map[string]any{"sort": "top", "limit": float64(5)})

	api.AssertExpectations(t)
}

func TestHandler_ValidationErrorIsContent(t *testing.T) {
	registered, provider := newTools(new(mocks.API))

	out := call(t, registered, "upvote", map[string]any{"item_id": "abc", "item_type": "widget"})

	assert.Equal(t, map[string]any{"error": "Invalid item_type. Use 'post' or 'comment'"}, out)
	assert.Equal(t, 0, provider.Calls)
}

func TestHandler_CommentLimit(t *testing.T) {
	t.Run("absent expands everything", func(t *testing.T) {
		api := new(mocks.API)
		api.On("SubmissionComments", mock.Anything, "abc", (*int)(nil)).Return([]*reddit.CommentNode{}, nil)
		registered, _ := newTools(api)

		call(t, registered, "get_post_comments", map[string]any{"post_id": "abc"})

		api.AssertExpectations(t)
	})

	t.Run("explicit zero", func(t *testing.T) {
		zero := 0
		api := new(mocks.API)
		api.On("SubmissionComments", mock.Anything, "abc", &zero).Return([]*reddit.CommentNode{}, nil)
		registered, _ := newTools(api)

		call(t, registered, "get_post_comments", map[string]any{"post_id": "abc", "limit": float64(0)})

		api.AssertExpectations(t)
	})
}

func TestHandler_SubmitOptions(t *testing.T) {
	api := new(mocks.API)
	api.On("Submit", mock.Anything, reddit.SubmitRequest{
		Subreddit: "golang",
		Title:     "Go 2",
		URL:       "https://go.dev",
		FlairID:   "flair-1",
		Spoiler:   true,
	}).Return(&reddit.Post{ID: "x1", Title: "Go 2", Permalink: "/r/golang/comments/x1/go_2/"}, nil)
	registered, _ := newTools(api)

	out := call(t, registered, "submit_link_post", map[string]any{
		"subreddit_name": "golang",
		"title":          "Go 2",
		"url":            "https://go.dev",
		"flair_id":       "flair-1",
		"spoiler":        true,
	})

	assert.Equal(t, "https://reddit.com/r/golang/comments/x1/go_2/", out.(map[string]any)["url"])
	api.AssertExpectations(t)
}

func TestNew(t *testing.T) {
	s := New(tools.NewService(&mocks.Provider{API: new(mocks.API)}))
	assert.NotNil(t, s)
}
