package tools

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/reddit-mcp/reddit-mcp-server/internal/models"
	"github.com/reddit-mcp/reddit-mcp-server/internal/reddit"
	"github.com/reddit-mcp/reddit-mcp-server/internal/reddit/mocks"
)

var ctx = context.Background()

func posts(n int) []*reddit.Post {
	out := make([]*reddit.Post, 0, n)
	for i := 0; i < n; i++ {
		id := fmt.Sprintf("p%d", i)
		out = append(out, &reddit.Post{
			ID:        id,
			Title:     "Post " + id,
			Author:    "gopher",
			Subreddit: "golang",
			Permalink: "/r/golang/comments/" + id + "/post/",
		})
	}
	return out
}

func TestGetSubredditPosts(t *testing.T) {
	api := new(mocks.API)
	api.On("SubredditListing", mock.Anything, "golang", "hot", "all", 5).Return(posts(5), nil)
	service, _, _ := newTestService(api)

	result := service.GetSubredditPosts(ctx, "golang", "hot", "all", 5)

	require.False(t, result.Failed())
	records := result.Value.([]*models.Post)
	require.Len(t, records, 5)
	for _, record := range records {
		assert.Contains(t, record.Permalink, "https://reddit.com/r/")
	}
	api.AssertExpectations(t)
}

func TestGetSubredditPosts_InvalidArguments(t *testing.T) {
	tests := []struct {
		name       string
		sort       string
		timeFilter string
		want       string
	}{
		{name: "sort", sort: "bogus", timeFilter: "all", want: "Invalid sort method"},
		{name: "time filter", sort: "top", timeFilter: "decade", want: "Invalid time_filter"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := new(mocks.API)
			service, provider, _ := newTestService(api)

			result := service.GetSubredditPosts(ctx, "golang", tt.sort, tt.timeFilter, 5)

			assert.Equal(t, []any{map[string]any{"error": tt.want}}, decode(t, result))
			assert.Equal(t, 0, provider.Calls)
			api.AssertNotCalled(t, "SubredditListing")
		})
	}
}

func TestGetSubredditInfo_RemoteError(t *testing.T) {
	api := new(mocks.API)
	api.On("SubredditAbout", mock.Anything, "nosuchsub").
		Return((*reddit.Subreddit)(nil), &reddit.APIError{StatusCode: 404, Message: "Not Found"})
	service, _, _ := newTestService(api)

	result := service.GetSubredditInfo(ctx, "nosuchsub")

	require.True(t, result.Failed())
	assert.Equal(t, map[string]any{"error": result.Err.Error()}, decode(t, result))
	assert.Contains(t, result.Err.Error(), "404")
}

func TestGetPost_AcceptsURL(t *testing.T) {
	api := new(mocks.API)
	api.On("Submission", mock.Anything, "abc123").Return(&reddit.Post{ID: "abc123", Title: "Hello"}, nil)
	service, _, _ := newTestService(api)

	result := service.GetPost(ctx, "https://www.reddit.com/r/golang/comments/abc123/hello/")

	require.False(t, result.Failed())
	detail := result.Value.(*models.PostDetail)
	assert.Equal(t, "abc123", detail.ID)
	assert.Equal(t, models.DeletedAuthor, detail.Author)
	assert.Equal(t, false, detail.Edited)
}

func TestGetPostComments(t *testing.T) {
	forest := []*reddit.CommentNode{
		{Comment: &reddit.Comment{ID: "c1", Author: "gopher", Body: "first"}},
		{More: &reddit.MoreComments{ID: "m1", Children: []string{"c9"}}},
	}

	api := new(mocks.API)
	api.On("SubmissionComments", mock.Anything, "abc", (*int)(nil)).Return(forest, nil)
	service, _, _ := newTestService(api)

	result := service.GetPostComments(ctx, "t3_abc", nil)

	require.False(t, result.Failed())
	comments := result.Value.([]*models.Comment)
	require.Len(t, comments, 1)
	assert.Equal(t, "c1", comments[0].ID)
	assert.NotNil(t, comments[0].Replies)
	assert.Empty(t, comments[0].Replies)
}

func TestGetPostComments_PassesLimit(t *testing.T) {
	limit := 0
	api := new(mocks.API)
	api.On("SubmissionComments", mock.Anything, "abc", &limit).Return([]*reddit.CommentNode{}, nil)
	service, _, _ := newTestService(api)

	result := service.GetPostComments(ctx, "abc", &limit)

	require.False(t, result.Failed())
	assert.Equal(t, []any{}, decode(t, result))
	api.AssertExpectations(t)
}

func TestSubmitPosts(t *testing.T) {
	created := &reddit.Post{ID: "new1", Title: "Hi", Permalink: "/r/golang/comments/new1/hi/", CreatedUTC: 1700000000}

	t.Run("text", func(t *testing.T) {
		api := new(mocks.API)
		api.On("Submit", mock.Anything, reddit.SubmitRequest{
			Subreddit: "golang", Title: "Hi", Text: "body", NSFW: true,
		}).Return(created, nil)
		service, _, _ := newTestService(api)

		result := service.SubmitTextPost(ctx, "golang", "Hi", "body", SubmitOptions{NSFW: true})

		require.False(t, result.Failed())
		assert.Equal(t, map[string]any{
			"id":          "new1",
			"title":       "Hi",
			"url":         "https://reddit.com/r/golang/comments/new1/hi/",
			"created_utc": float64(1700000000),
		}, decode(t, result))
	})

	t.Run("link requires url", func(t *testing.T) {
		api := new(mocks.API)
		service, provider, _ := newTestService(api)

		result := service.SubmitLinkPost(ctx, "golang", "Hi", "", SubmitOptions{})

		assert.Equal(t, map[string]any{"error": "missing required argument: url"}, decode(t, result))
		assert.Equal(t, 0, provider.Calls)
	})

	t.Run("remote rejection", func(t *testing.T) {
		api := new(mocks.API)
		api.On("Submit", mock.Anything, mock.Anything).
			Return((*reddit.Post)(nil), &reddit.RedditError{Code: "SUBREDDIT_NOTALLOWED", Message: "you aren't allowed to post there.", Field: "sr"})
		service, _, _ := newTestService(api)

		result := service.SubmitLinkPost(ctx, "golang", "Hi", "https://go.dev", SubmitOptions{})

		require.True(t, result.Failed())
		assert.Contains(t, result.Err.Error(), "SUBREDDIT_NOTALLOWED")
	})
}

func TestReplyAndEdit(t *testing.T) {
	api := new(mocks.API)
	api.On("Reply", mock.Anything, "t3_abc", "nice").
		Return(&reddit.Comment{ID: "c1", Body: "nice", Permalink: "/r/golang/comments/abc/x/c1/"}, nil)
	api.On("Reply", mock.Anything, "t1_c1", "thanks").
		Return(&reddit.Comment{ID: "c2", Body: "thanks"}, nil)
	api.On("EditText", mock.Anything, "t1_c1", "edited").Return(nil)
	api.On("Delete", mock.Anything, "t1_c2").Return(nil)
	api.On("Delete", mock.Anything, "t3_abc").Return(nil)
	service, _, _ := newTestService(api)

	reply := service.ReplyToPost(ctx, "abc", "nice")
	require.False(t, reply.Failed())
	assert.Equal(t, "https://reddit.com/r/golang/comments/abc/x/c1/", reply.Value.(*models.CreatedComment).Permalink)

	assert.False(t, service.ReplyToComment(ctx, "c1", "thanks").Failed())
	assert.Equal(t, models.NewAck("Comment c1 edited"), service.EditComment(ctx, "c1", "edited").Value)
	assert.Equal(t, models.NewAck("Comment c2 deleted"), service.DeleteComment(ctx, "c2").Value)
	assert.Equal(t, models.NewAck("Post abc deleted"), service.DeletePost(ctx, "abc").Value)
	api.AssertExpectations(t)
}

func TestItemActions(t *testing.T) {
	api := new(mocks.API)
	api.On("Vote", mock.Anything, "t3_abc", reddit.VoteUp).Return(nil)
	api.On("Vote", mock.Anything, "t1_def", reddit.VoteDown).Return(nil)
	api.On("Vote", mock.Anything, "t3_abc", reddit.VoteClear).Return(nil)
	api.On("Save", mock.Anything, "t1_def").Return(nil)
	api.On("Unsave", mock.Anything, "t3_abc").Return(nil)
	api.On("Hide", mock.Anything, "t3_abc").Return(nil)
	api.On("Unhide", mock.Anything, "t3_abc").Return(nil)
	service, _, _ := newTestService(api)

	tests := []struct {
		name   string
		result Result
		want   string
	}{
		{"upvote", service.Upvote(ctx, "abc", "post"), "post abc upvoted"},
		{"downvote", service.Downvote(ctx, "def", "comment"), "comment def downvoted"},
		{"clear vote", service.ClearVote(ctx, "abc", "post"), "Vote cleared on post abc"},
		{"save", service.SaveItem(ctx, "def", "comment"), "comment def saved"},
		{"unsave", service.UnsaveItem(ctx, "abc", "post"), "post abc unsaved"},
		{"hide", service.HidePost(ctx, "abc"), "Post abc hidden"},
		{"unhide", service.UnhidePost(ctx, "abc"), "Post abc unhidden"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.False(t, tt.result.Failed())
			assert.Equal(t, map[string]any{"success": true, "message": tt.want}, decode(t, tt.result))
		})
	}
	api.AssertExpectations(t)
}

func TestItemActions_InvalidItemType(t *testing.T) {
	api := new(mocks.API)
	service, provider, _ := newTestService(api)

	result := service.Upvote(ctx, "abc", "widget")

	assert.Equal(t, map[string]any{"error": "Invalid item_type. Use 'post' or 'comment'"}, decode(t, result))
	assert.Equal(t, 0, provider.Calls)
	api.AssertNotCalled(t, "Vote")
}

func TestGetUserKarma(t *testing.T) {
	account := &reddit.Account{Name: "gopher", LinkKarma: 10, CommentKarma: 20, TotalKarma: 30}

	t.Run("own account", func(t *testing.T) {
		api := new(mocks.API)
		api.On("User", mock.Anything, "Gopher").Return(account, nil)
		api.On("Username").Return("gopher")
		api.On("MyKarma", mock.Anything).Return([]*reddit.SubredditKarma{
			{Subreddit: "golang", LinkKarma: 4, CommentKarma: 6},
		}, nil)
		service, _, _ := newTestService(api)

		result := service.GetUserKarma(ctx, "Gopher")

		require.False(t, result.Failed())
		karma := result.Value.(*models.Karma)
		assert.Equal(t, 30, karma.TotalKarma)
		assert.Equal(t, models.KarmaBreakdown{LinkKarma: 4, CommentKarma: 6}, karma.SubredditKarma["golang"])
	})

	t.Run("other account", func(t *testing.T) {
		api := new(mocks.API)
		api.On("User", mock.Anything, "gopher").Return(account, nil)
		api.On("Username").Return("someone_else")
		service, _, _ := newTestService(api)

		result := service.GetUserKarma(ctx, "gopher")

		require.False(t, result.Failed())
		assert.Empty(t, result.Value.(*models.Karma).SubredditKarma)
		api.AssertNotCalled(t, "MyKarma", mock.Anything)
	})
}

func TestUserListings(t *testing.T) {
	title := "A post"
	api := new(mocks.API)
	api.On("UserSubmissions", mock.Anything, "gopher", "top", 2).Return(posts(2), nil)
	api.On("UserComments", mock.Anything, "gopher", "new", 25).
		Return([]*reddit.Comment{{ID: "c1", Body: "hi", LinkTitle: &title}}, nil)
	api.On("MyItems", mock.Anything, "saved", 10).Return([]*reddit.Item{
		{Post: &reddit.Post{ID: "p1", Title: "saved post"}},
		{Comment: &reddit.Comment{ID: "c1", Body: "saved comment"}},
		{},
	}, nil)
	api.On("SearchUsers", mock.Anything, "goph", 5).Return([]*reddit.Account{{Name: "gopher"}}, nil)
	service, _, _ := newTestService(api)

	userPosts := service.GetUserPosts(ctx, "gopher", "top", 2)
	require.False(t, userPosts.Failed())
	assert.Len(t, userPosts.Value, 2)

	comments := service.GetUserComments(ctx, "gopher", "new", 25)
	require.False(t, comments.Failed())
	assert.Equal(t, &title, comments.Value.([]*models.UserComment)[0].SubmissionTitle)

	saved := service.GetMySaved(ctx, 10)
	require.False(t, saved.Failed())
	items := saved.Value.([]*models.SavedItem)
	require.Len(t, items, 2)
	assert.Equal(t, "post", items[0].Type)
	assert.Equal(t, "comment", items[1].Type)

	users := service.SearchUsers(ctx, "goph", 5)
	require.False(t, users.Failed())
	assert.Equal(t, []any{map[string]any{"name": "gopher", "url": "https://reddit.com/u/gopher"}}, decode(t, users))

	invalid := service.GetUserPosts(ctx, "gopher", "rising", 2)
	assert.Equal(t, []any{map[string]any{"error": "Invalid sort method"}}, decode(t, invalid))
	api.AssertExpectations(t)
}

func TestSearch(t *testing.T) {
	api := new(mocks.API)
	api.On("Search", mock.Anything, "all", "golang generics", "top", "week", 3).Return(posts(3), nil)
	api.On("Search", mock.Anything, "golang", "generics", "relevance", "all", 25).Return(posts(1), nil)
	service, provider, _ := newTestService(api)

	all := service.SearchAllReddit(ctx, "golang generics", "top", "week", 3)
	require.False(t, all.Failed())
	summaries := all.Value.([]*models.PostSummary)
	require.Len(t, summaries, 3)
	assert.Equal(t, "golang", summaries[0].Subreddit)

	scoped := service.SearchInSubreddit(ctx, "golang", "generics", "relevance", "all", 25)
	require.False(t, scoped.Failed())
	assert.Empty(t, scoped.Value.([]*models.PostSummary)[0].Subreddit)
	assert.Equal(t, 2, provider.Calls)

	assert.Equal(t, []any{map[string]any{"error": "Invalid search sort"}},
		decode(t, service.SearchAllReddit(ctx, "go", "rising", "all", 3)))
	assert.Equal(t, []any{map[string]any{"error": "Invalid time_filter"}},
		decode(t, service.SearchInSubreddit(ctx, "golang", "go", "top", "decade", 3)))
	assert.Equal(t, 2, provider.Calls)
	api.AssertExpectations(t)
}

func TestMessages(t *testing.T) {
	api := new(mocks.API)
	api.On("Inbox", mock.Anything, "unread", 25).Return([]*reddit.Message{{ID: "m1", Body: "hello"}}, nil)
	api.On("Compose", mock.Anything, "gopher", "hi", "hello there").Return(nil)
	api.On("MarkRead", mock.Anything, "t4_m1").Return(nil)
	api.On("MarkUnread", mock.Anything, "t1_c1").Return(nil)
	service, _, _ := newTestService(api)

	inbox := service.GetInbox(ctx, "unread", 25)
	require.False(t, inbox.Failed())
	assert.Nil(t, inbox.Value.([]*models.Message)[0].Author)

	assert.Equal(t, models.NewAck("Message sent to gopher"), service.SendMessage(ctx, "gopher", "hi", "hello there").Value)
	assert.Equal(t, models.NewAck("Message m1 marked as read"), service.MarkMessageRead(ctx, "m1").Value)
	assert.Equal(t, models.NewAck("Message t1_c1 marked as unread"), service.MarkMessageUnread(ctx, "t1_c1").Value)

	assert.Equal(t, []any{map[string]any{"error": "Invalid filter_type"}}, decode(t, service.GetInbox(ctx, "spam", 25)))
	assert.Equal(t, map[string]any{"error": "missing required argument: subject"},
		decode(t, service.SendMessage(ctx, "gopher", "", "body")))
	api.AssertExpectations(t)
}

func TestSubscriptions(t *testing.T) {
	api := new(mocks.API)
	api.On("Subscribe", mock.Anything, "golang").Return(nil)
	api.On("Unsubscribe", mock.Anything, "golang").Return(nil)
	api.On("Subscribe", mock.Anything, "u_gopher").Return(nil)
	api.On("Unsubscribe", mock.Anything, "u_gopher").Return(nil)
	api.On("MySubreddits", mock.Anything, 100).Return([]*reddit.Subreddit{{DisplayName: "golang", Over18: true}}, nil)
	service, _, _ := newTestService(api)

	assert.Equal(t, models.NewAck("Subscribed to r/golang"), service.SubscribeSubreddit(ctx, "golang").Value)
	assert.Equal(t, models.NewAck("Unsubscribed from r/golang"), service.UnsubscribeSubreddit(ctx, "golang").Value)
	assert.Equal(t, models.NewAck("Now following u/gopher"), service.FollowUser(ctx, "gopher").Value)
	assert.Equal(t, models.NewAck("Unfollowed u/gopher"), service.UnfollowUser(ctx, "gopher").Value)

	subs := service.GetMySubscriptions(ctx, DefaultSubscriptionLimit)
	require.False(t, subs.Failed())
	records := decode(t, subs).([]any)
	require.Len(t, records, 1)
	assert.NotContains(t, records[0], "over_18")
	api.AssertExpectations(t)
}

func TestDiscovery(t *testing.T) {
	active := int64(1234)
	api := new(mocks.API)
	api.On("PopularSubreddits", mock.Anything, TrendingLimit).
		Return([]*reddit.Subreddit{{DisplayName: "golang", AccountsActive: &active}}, nil)
	api.On("FrontPage", mock.Anything, "new", 4).Return(posts(4), nil)
	api.On("MyMultireddits", mock.Anything).Return([]*reddit.Multireddit{{Name: "dev"}}, nil)
	service, _, _ := newTestService(api)

	trending := service.GetTrendingSubreddits(ctx)
	require.False(t, trending.Failed())
	assert.Len(t, trending.Value, 1)

	front := service.GetFrontPage(ctx, "new", 4)
	require.False(t, front.Failed())
	assert.Len(t, front.Value, 4)

	multis := service.GetMyMultireddits(ctx)
	require.False(t, multis.Failed())
	assert.Equal(t, "dev", multis.Value.([]*models.Multireddit)[0].Name)

	assert.Equal(t, []any{map[string]any{"error": "Invalid sort method"}},
		decode(t, service.GetFrontPage(ctx, "best", 4)))
	api.AssertExpectations(t)
}

func TestGetRandomPost(t *testing.T) {
	t.Run("named subreddit", func(t *testing.T) {
		api := new(mocks.API)
		api.On("RandomSubmission", mock.Anything, "golang").
			Return(&reddit.Post{ID: "r1", SelfText: "full text", Subreddit: "golang"}, nil)
		service, _, _ := newTestService(api)

		result := service.GetRandomPost(ctx, "golang")

		require.False(t, result.Failed())
		assert.Equal(t, "full text", result.Value.(*models.RandomPost).SelfText)
		api.AssertNotCalled(t, "RandomSubreddit", mock.Anything)
	})

	t.Run("random subreddit", func(t *testing.T) {
		api := new(mocks.API)
		api.On("RandomSubreddit", mock.Anything).Return("rust", nil)
		api.On("RandomSubmission", mock.Anything, "rust").Return(&reddit.Post{ID: "r2"}, nil)
		service, _, _ := newTestService(api)

		result := service.GetRandomPost(ctx, "")

		require.False(t, result.Failed())
		api.AssertExpectations(t)
	})

	t.Run("nothing available", func(t *testing.T) {
		api := new(mocks.API)
		api.On("RandomSubmission", mock.Anything, "empty").Return((*reddit.Post)(nil), nil)
		service, _, _ := newTestService(api)

		result := service.GetRandomPost(ctx, "empty")

		assert.Equal(t, map[string]any{"error": "No random post available"}, decode(t, result))
	})

	t.Run("remote failure", func(t *testing.T) {
		api := new(mocks.API)
		api.On("RandomSubreddit", mock.Anything).Return("", errors.New("received 503 HTTP response"))
		service, _, _ := newTestService(api)

		result := service.GetRandomPost(ctx, "")

		assert.Equal(t, map[string]any{"error": "received 503 HTTP response"}, decode(t, result))
	})
}

func TestSubredditDirectory(t *testing.T) {
	api := new(mocks.API)
	api.On("SearchSubreddits", mock.Anything, "golang", 25).
		Return([]*reddit.Subreddit{{DisplayName: "golang", Over18: false, URL: "/r/golang/"}}, nil)
	api.On("SubredditRules", mock.Anything, "golang").
		Return([]map[string]any{{"short_name": "Be nice", "kind": "all", "created_utc": 1.5e9}}, nil)
	api.On("SubredditModerators", mock.Anything, "golang").
		Return([]*reddit.Moderator{{Name: "mod1"}}, nil)
	api.On("User", mock.Anything, "gopher").
		Return(&reddit.Account{Name: "gopher", TotalKarma: 7}, nil)
	service, _, _ := newTestService(api)

	subs := service.SearchSubreddits(ctx, "golang", 25)
	require.False(t, subs.Failed())
	assert.Equal(t, "https://reddit.com/r/golang/", subs.Value.([]*models.SubredditSummary)[0].URL)

	rules := service.GetSubredditRules(ctx, "golang")
	require.False(t, rules.Failed())
	rule := rules.Value.([]*models.Rule)[0]
	assert.Equal(t, "Be nice", rule.ShortName)
	assert.Nil(t, rule.Description)

	mods := service.GetSubredditModerators(ctx, "golang")
	require.False(t, mods.Failed())
	assert.Equal(t, []any{map[string]any{
		"name":            "mod1",
		"mod_permissions": []any{},
		"added_date":      float64(0),
	}}, decode(t, mods))

	user := service.GetUserInfo(ctx, "gopher")
	require.False(t, user.Failed())
	assert.Equal(t, 7, user.Value.(*models.User).TotalKarma)
	assert.Nil(t, user.Value.(*models.User).Subreddit)

	assert.Equal(t, []any{map[string]any{"error": "missing required argument: query"}},
		decode(t, service.SearchSubreddits(ctx, "", 25)))
	api.AssertExpectations(t)
}
