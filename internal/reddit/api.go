package reddit

import "context"

// API is the set of remote capabilities the operation layer consumes.
type API interface {
	Username() string

	// Subreddits
	SubredditAbout(ctx context.Context, name string) (*Subreddit, error)
	SubredditListing(ctx context.Context, name, sort, timeFilter string, limit int) ([]*Post, error)
	SearchSubreddits(ctx context.Context, query string, limit int) ([]*Subreddit, error)
	SubredditRules(ctx context.Context, name string) ([]map[string]any, error)
	SubredditModerators(ctx context.Context, name string) ([]*Moderator, error)
	MySubreddits(ctx context.Context, limit int) ([]*Subreddit, error)
	PopularSubreddits(ctx context.Context, limit int) ([]*Subreddit, error)
	Subscribe(ctx context.Context, name string) error
	Unsubscribe(ctx context.Context, name string) error

	// Submissions and comments
	Submission(ctx context.Context, id string) (*Post, error)
	SubmissionComments(ctx context.Context, id string, expandLimit *int) ([]*CommentNode, error)
	Submit(ctx context.Context, req SubmitRequest) (*Post, error)
	Reply(ctx context.Context, parentFullname, text string) (*Comment, error)
	EditText(ctx context.Context, fullname, text string) error
	Delete(ctx context.Context, fullname string) error
	FrontPage(ctx context.Context, sort string, limit int) ([]*Post, error)
	Search(ctx context.Context, subreddit, query, sort, timeFilter string, limit int) ([]*Post, error)
	RandomSubreddit(ctx context.Context) (string, error)
	RandomSubmission(ctx context.Context, subreddit string) (*Post, error)

	// Interaction
	Vote(ctx context.Context, fullname string, dir VoteDirection) error
	Save(ctx context.Context, fullname string) error
	Unsave(ctx context.Context, fullname string) error
	Hide(ctx context.Context, fullname string) error
	Unhide(ctx context.Context, fullname string) error

	// Users
	User(ctx context.Context, name string) (*Account, error)
	UserSubmissions(ctx context.Context, name, sort string, limit int) ([]*Post, error)
	UserComments(ctx context.Context, name, sort string, limit int) ([]*Comment, error)
	SearchUsers(ctx context.Context, query string, limit int) ([]*Account, error)
	MyKarma(ctx context.Context) ([]*SubredditKarma, error)
	MyItems(ctx context.Context, where string, limit int) ([]*Item, error)
	MyMultireddits(ctx context.Context) ([]*Multireddit, error)

	// Inbox
	Inbox(ctx context.Context, filter string, limit int) ([]*Message, error)
	Compose(ctx context.Context, to, subject, body string) error
	MarkRead(ctx context.Context, fullname string) error
	MarkUnread(ctx context.Context, fullname string) error
}
