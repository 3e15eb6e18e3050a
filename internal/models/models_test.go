package models

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reddit-mcp/reddit-mcp-server/internal/reddit"
)

func toMap(t *testing.T, v any) map[string]any {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	var m map[string]any
	require.NoError(t, json.Unmarshal(data, &m))
	return m
}

func comment(id, author string, replies ...*reddit.CommentNode) *reddit.CommentNode {
	if replies == nil {
		replies = []*reddit.CommentNode{}
	}
	return &reddit.CommentNode{Comment: &reddit.Comment{
		ID:      id,
		Name:    "t1_" + id,
		Author:  author,
		Body:    "body of " + id,
		Replies: replies,
	}}
}

func more(id string) *reddit.CommentNode {
	return &reddit.CommentNode{More: &reddit.MoreComments{ID: id, Children: []string{"x", "y"}}}
}

func TestNewPost(t *testing.T) {
	flair := "Discussion"
	post := NewPost(&reddit.Post{
		ID:            "abc",
		Title:         "Hello",
		Author:        "",
		Permalink:     "/r/golang/comments/abc/hello/",
		Over18:        true,
		LinkFlairText: &flair,
	})

	assert.Equal(t, DeletedAuthor, post.Author)
	assert.Equal(t, "https://reddit.com/r/golang/comments/abc/hello/", post.Permalink)
	assert.True(t, post.NSFW)

	m := toMap(t, post)
	assert.Len(t, m, 21)
	assert.Nil(t, m["distinguished"])
	assert.Equal(t, "Discussion", m["link_flair_text"])
	assert.Contains(t, m, "total_awards_received")
}

func TestNewPostDetail_Edited(t *testing.T) {
	detail := NewPostDetail(&reddit.Post{ID: "abc", Author: "spez"})
	assert.Equal(t, false, detail.Edited)
	assert.Equal(t, "spez", detail.Author)

	detail = NewPostDetail(&reddit.Post{ID: "abc", Edited: reddit.Edited{IsEdited: true, Timestamp: 1700000000}})
	assert.Equal(t, float64(1700000000), detail.Edited)

	m := toMap(t, detail)
	assert.Len(t, m, 25)
	assert.Nil(t, m["view_count"])
}

func TestPostSummaries(t *testing.T) {
	long := strings.Repeat("é", 250)
	p := &reddit.Post{ID: "abc", Author: "spez", Subreddit: "golang", SelfText: long, Permalink: "/r/golang/comments/abc/"}

	summary := NewPostSummary(p)
	require.NotNil(t, summary.SelfText)
	assert.Equal(t, 200, len([]rune(*summary.SelfText)))

	m := toMap(t, summary)
	assert.Equal(t, "spez", m["author"])
	assert.Equal(t, "golang", m["subreddit"])

	m = toMap(t, NewSubredditSearchResult(p))
	assert.NotContains(t, m, "subreddit")
	assert.Equal(t, "spez", m["author"])

	m = toMap(t, NewUserPost(&reddit.Post{ID: "abc", Author: "spez", Subreddit: "golang"}))
	assert.NotContains(t, m, "author")
	assert.Contains(t, m, "selftext")
	assert.Nil(t, m["selftext"])
}

func TestNewFeedAndRandomPost(t *testing.T) {
	p := &reddit.Post{ID: "abc", SelfText: strings.Repeat("a", 300), Over18: true, Spoiler: true}

	feed := NewFeedPost(p)
	assert.Len(t, *feed.SelfText, 200)
	assert.Equal(t, DeletedAuthor, feed.Author)

	random := NewRandomPost(p)
	assert.Len(t, random.SelfText, 300)
	assert.True(t, random.NSFW)
	assert.True(t, random.Spoiler)
}

func TestNewSubmittedPost(t *testing.T) {
	submitted := NewSubmittedPost(&reddit.Post{ID: "new1", Title: "T", Permalink: "/r/golang/comments/new1/t/", CreatedUTC: 1})
	assert.Equal(t, "https://reddit.com/r/golang/comments/new1/t/", submitted.URL)
	assert.Len(t, toMap(t, submitted), 4)
}

func TestFlattenComments_DropsPlaceholders(t *testing.T) {
	forest := []*reddit.CommentNode{
		comment("c1", "alice", comment("c2", ""), more("m2")),
		more("m1"),
	}

	comments := FlattenComments(forest)

	require.Len(t, comments, 1)
	assert.Equal(t, "c1", comments[0].ID)
	require.Len(t, comments[0].Replies, 1)

	reply := comments[0].Replies[0]
	assert.Equal(t, "c2", reply.ID)
	assert.Equal(t, DeletedAuthor, reply.Author)
	assert.NotNil(t, reply.Replies)
	assert.Empty(t, reply.Replies)

	data, err := json.Marshal(reply)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"replies":[]`)
	assert.Contains(t, string(data), `"edited":false`)
}

func TestFlattenComments_IsStable(t *testing.T) {
	forest := []*reddit.CommentNode{
		comment("a", "x", comment("a1", "y"), comment("a2", "z", more("m"))),
		comment("b", "x"),
	}

	first, err := json.Marshal(FlattenComments(forest))
	require.NoError(t, err)
	second, err := json.Marshal(FlattenComments(forest))
	require.NoError(t, err)

	assert.JSONEq(t, string(first), string(second))
	assert.NotContains(t, string(first), `"m"`)
}

func TestFlattenComments_Empty(t *testing.T) {
	assert.NotNil(t, FlattenComments(nil))
	assert.Empty(t, FlattenComments([]*reddit.CommentNode{more("m")}))
}

func TestUserComment_And_SavedItem(t *testing.T) {
	title := "Original post"
	uc := NewUserComment(&reddit.Comment{ID: "c1", Body: strings.Repeat("b", 500), LinkTitle: &title, Permalink: "/r/x/comments/p/t/c1/"})
	assert.Len(t, uc.Body, 200)
	assert.Equal(t, "Original post", *uc.SubmissionTitle)

	m := toMap(t, NewSavedItem(&reddit.Item{Post: &reddit.Post{ID: "p1", Title: "Saved post"}}))
	assert.Equal(t, "post", m["type"])
	assert.Equal(t, "Saved post", m["title"])
	assert.NotContains(t, m, "body")

	m = toMap(t, NewSavedItem(&reddit.Item{Comment: &reddit.Comment{ID: "c1", Body: "hi"}}))
	assert.Equal(t, "comment", m["type"])
	assert.Equal(t, "hi", m["body"])
	assert.NotContains(t, m, "title")

	assert.Nil(t, NewSavedItem(&reddit.Item{}))
}

func TestNewMessage_NullAuthor(t *testing.T) {
	m := toMap(t, NewMessage(&reddit.Message{ID: "m1", Body: "hello"}))

	assert.Contains(t, m, "author")
	assert.Nil(t, m["author"])
	assert.Nil(t, m["subject"])
	assert.Nil(t, m["parent_id"])

	m = toMap(t, NewMessage(&reddit.Message{ID: "m1", Author: "gopher"}))
	assert.Equal(t, "gopher", m["author"])
}

func TestNewUser_And_Karma(t *testing.T) {
	account := &reddit.Account{
		Name:       "spez",
		TotalKarma: 30,
		LinkKarma:  10,
		Subreddit:  &reddit.ProfileSubreddit{DisplayName: "u_spez", PublicDescription: "about me"},
	}

	user := NewUser(account)
	require.NotNil(t, user.Subreddit)
	assert.Equal(t, "about me", user.Subreddit.Description)

	assert.Nil(t, NewUser(&reddit.Account{Name: "bare"}).Subreddit)

	karma := NewKarma(account, []*reddit.SubredditKarma{{Subreddit: "golang", LinkKarma: 3, CommentKarma: 4}})
	assert.Equal(t, 30, karma.TotalKarma)
	assert.Equal(t, KarmaBreakdown{LinkKarma: 3, CommentKarma: 4}, karma.SubredditKarma["golang"])

	m := toMap(t, NewKarma(account, nil))
	assert.Equal(t, map[string]any{}, m["subreddit_karma"])

	assert.Equal(t, "https://reddit.com/u/spez", NewUserMatch(account).URL)
	assert.True(t, SameUser("Spez", "spez"))
}

func TestSubredditRecords(t *testing.T) {
	active := int64(42)
	sub := &reddit.Subreddit{DisplayName: "golang", URL: "/r/golang/", Over18: false, ActiveUserCount: &active}

	info := NewSubreddit(sub)
	assert.Equal(t, "https://reddit.com/r/golang/", info.URL)
	assert.Len(t, toMap(t, info), 20)

	m := toMap(t, NewSubredditSummary(sub))
	assert.Equal(t, false, m["over_18"])

	m = toMap(t, NewSubscription(sub))
	assert.NotContains(t, m, "over_18")

	assert.Equal(t, int64(42), *NewTrendingSubreddit(sub).ActiveUsers)

	mod := NewModerator(&reddit.Moderator{Name: "mod"})
	assert.NotNil(t, mod.ModPermissions)
}

func TestNewRule(t *testing.T) {
	rule := NewRule(map[string]any{
		"short_name":  "Be nice",
		"kind":        "all",
		"created_utc": 1500000000.0,
		"extra":       "ignored",
	})

	assert.Equal(t, "Be nice", rule.ShortName)
	assert.Nil(t, rule.Description)
	assert.Equal(t, 1500000000.0, rule.CreatedUTC)
}

type opaque struct {
	inner *opaque
	name  string
}

func TestGeneric(t *testing.T) {
	assert.Nil(t, Generic(nil))
	assert.Equal(t, "text", Generic("text"))
	assert.Equal(t, 3, Generic(3))
	assert.Equal(t, true, Generic(true))

	assert.Equal(t, []any{"a", 1.5}, Generic([]any{"a", 1.5}))
	assert.Equal(t, []any{"x", "y"}, Generic([]string{"x", "y"}))
	assert.Equal(t, map[string]any{"k": []any{"v"}}, Generic(map[string]any{"k": []any{"v"}}))
	assert.Equal(t, map[string]any{"1": "one"}, Generic(map[int]string{1: "one"}))

	assert.Equal(t, "1s", Generic(time.Second))
	assert.Equal(t, "boom", Generic(errors.New("boom")))

	var nilPtr *opaque
	assert.Nil(t, Generic(nilPtr))

	o := &opaque{name: "n"}
	o.inner = o
	assert.IsType(t, "", Generic(o))

	assert.NotPanics(t, func() { Generic(func() {}) })
}

func TestNewAck(t *testing.T) {
	ack := NewAck("Post %s deleted", "abc")
	assert.Equal(t, &Ack{Success: true, Message: "Post abc deleted"}, ack)
}
