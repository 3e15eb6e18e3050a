// Package mocks provides a testify mock of the Reddit session.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/reddit-mcp/reddit-mcp-server/internal/reddit"
)

// API is a mock implementation of reddit.API
type API struct {
	mock.Mock
}

var _ reddit.API = (*API)(nil)

// Provider hands out a fixed session and counts how often it was asked.
type Provider struct {
	API   reddit.API
	Err   error
	Calls int
}

func (p *Provider) Client() (reddit.API, error) {
	p.Calls++
	if p.Err != nil {
		return nil, p.Err
	}
	return p.API, nil
}

func (m *API) Username() string {
	args := m.Called()
	return args.String(0)
}

func (m *API) SubredditAbout(ctx context.Context, name string) (*reddit.Subreddit, error) {
	args := m.Called(ctx, name)
	return args.Get(0).(*reddit.Subreddit), args.Error(1)
}

func (m *API) SubredditListing(ctx context.Context, name, sort, timeFilter string, limit int) ([]*reddit.Post, error) {
	args := m.Called(ctx, name, sort, timeFilter, limit)
	return args.Get(0).([]*reddit.Post), args.Error(1)
}

func (m *API) SearchSubreddits(ctx context.Context, query string, limit int) ([]*reddit.Subreddit, error) {
	args := m.Called(ctx, query, limit)
	return args.Get(0).([]*reddit.Subreddit), args.Error(1)
}

func (m *API) SubredditRules(ctx context.Context, name string) ([]map[string]any, error) {
	args := m.Called(ctx, name)
	return args.Get(0).([]map[string]any), args.Error(1)
}

func (m *API) SubredditModerators(ctx context.Context, name string) ([]*reddit.Moderator, error) {
	args := m.Called(ctx, name)
	return args.Get(0).([]*reddit.Moderator), args.Error(1)
}

func (m *API) MySubreddits(ctx context.Context, limit int) ([]*reddit.Subreddit, error) {
	args := m.Called(ctx, limit)
	return args.Get(0).([]*reddit.Subreddit), args.Error(1)
}

func (m *API) PopularSubreddits(ctx context.Context, limit int) ([]*reddit.Subreddit, error) {
	args := m.Called(ctx, limit)
	return args.Get(0).([]*reddit.Subreddit), args.Error(1)
}

func (m *API) Subscribe(ctx context.Context, name string) error {
	args := m.Called(ctx, name)
	return args.Error(0)
}

func (m *API) Unsubscribe(ctx context.Context, name string) error {
	args := m.Called(ctx, name)
	return args.Error(0)
}

func (m *API) Submission(ctx context.Context, id string) (*reddit.Post, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(*reddit.Post), args.Error(1)
}

func (m *API) SubmissionComments(ctx context.Context, id string, expandLimit *int) ([]*reddit.CommentNode, error) {
	args := m.Called(ctx, id, expandLimit)
	return args.Get(0).([]*reddit.CommentNode), args.Error(1)
}

func (m *API) Submit(ctx context.Context, req reddit.SubmitRequest) (*reddit.Post, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(*reddit.Post), args.Error(1)
}

func (m *API) Reply(ctx context.Context, parentFullname, text string) (*reddit.Comment, error) {
	args := m.Called(ctx, parentFullname, text)
	return args.Get(0).(*reddit.Comment), args.Error(1)
}

func (m *API) EditText(ctx context.Context, fullname, text string) error {
	args := m.Called(ctx, fullname, text)
	return args.Error(0)
}

func (m *API) Delete(ctx context.Context, fullname string) error {
	args := m.Called(ctx, fullname)
	return args.Error(0)
}

func (m *API) FrontPage(ctx context.Context, sort string, limit int) ([]*reddit.Post, error) {
	args := m.Called(ctx, sort, limit)
	return args.Get(0).([]*reddit.Post), args.Error(1)
}

func (m *API) Search(ctx context.Context, subreddit, query, sort, timeFilter string, limit int) ([]*reddit.Post, error) {
	args := m.Called(ctx, subreddit, query, sort, timeFilter, limit)
	return args.Get(0).([]*reddit.Post), args.Error(1)
}

func (m *API) RandomSubreddit(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func (m *API) RandomSubmission(ctx context.Context, subreddit string) (*reddit.Post, error) {
	args := m.Called(ctx, subreddit)
	return args.Get(0).(*reddit.Post), args.Error(1)
}

func (m *API) Vote(ctx context.Context, fullname string, dir reddit.VoteDirection) error {
	args := m.Called(ctx, fullname, dir)
	return args.Error(0)
}

func (m *API) Save(ctx context.Context, fullname string) error {
	args := m.Called(ctx, fullname)
	return args.Error(0)
}

func (m *API) Unsave(ctx context.Context, fullname string) error {
	args := m.Called(ctx, fullname)
	return args.Error(0)
}

func (m *API) Hide(ctx context.Context, fullname string) error {
	args := m.Called(ctx, fullname)
	return args.Error(0)
}

func (m *API) Unhide(ctx context.Context, fullname string) error {
	args := m.Called(ctx, fullname)
	return args.Error(0)
}

func (m *API) User(ctx context.Context, name string) (*reddit.Account, error) {
	args := m.Called(ctx, name)
	return args.Get(0).(*reddit.Account), args.Error(1)
}

func (m *API) UserSubmissions(ctx context.Context, name, sort string, limit int) ([]*reddit.Post, error) {
	args := m.Called(ctx, name, sort, limit)
	return args.Get(0).([]*reddit.Post), args.Error(1)
}

func (m *API) UserComments(ctx context.Context, name, sort string, limit int) ([]*reddit.Comment, error) {
	args := m.Called(ctx, name, sort, limit)
	return args.Get(0).([]*reddit.Comment), args.Error(1)
}

func (m *API) SearchUsers(ctx context.Context, query string, limit int) ([]*reddit.Account, error) {
	args := m.Called(ctx, query, limit)
	return args.Get(0).([]*reddit.Account), args.Error(1)
}

func (m *API) MyKarma(ctx context.Context) ([]*reddit.SubredditKarma, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*reddit.SubredditKarma), args.Error(1)
}

func (m *API) MyItems(ctx context.Context, where string, limit int) ([]*reddit.Item, error) {
	args := m.Called(ctx, where, limit)
	return args.Get(0).([]*reddit.Item), args.Error(1)
}

func (m *API) MyMultireddits(ctx context.Context) ([]*reddit.Multireddit, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*reddit.Multireddit), args.Error(1)
}

func (m *API) Inbox(ctx context.Context, filter string, limit int) ([]*reddit.Message, error) {
	args := m.Called(ctx, filter, limit)
	return args.Get(0).([]*reddit.Message), args.Error(1)
}

func (m *API) Compose(ctx context.Context, to, subject, body string) error {
	args := m.Called(ctx, to, subject, body)
	return args.Error(0)
}

func (m *API) MarkRead(ctx context.Context, fullname string) error {
	args := m.Called(ctx, fullname)
	return args.Error(0)
}

func (m *API) MarkUnread(ctx context.Context, fullname string) error {
	args := m.Called(ctx, fullname)
	return args.Error(0)
}
