package server

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/reddit-mcp/reddit-mcp-server/internal/tools"
)

func requiredString(name, description string) mcp.ToolOption {
	return mcp.WithString(name, mcp.Required(), mcp.Description(description))
}

func limitParam(def int) mcp.ToolOption {
	return mcp.WithNumber("limit",
		mcp.Description("Maximum number of results"),
		mcp.DefaultNumber(float64(def)),
	)
}

func enumParam(name, description, def string, values []string) mcp.ToolOption {
	return mcp.WithString(name,
		mcp.Description(description),
		mcp.DefaultString(def),
		mcp.Enum(values...),
	)
}

func itemParams() []mcp.ToolOption {
	return []mcp.ToolOption{
		requiredString("item_id", "ID of the post or comment"),
		enumParam("item_type", "Whether the item is a post or a comment", tools.DefaultItemType, tools.ItemTypes),
	}
}

func submitParams(content, description string) []mcp.ToolOption {
	return []mcp.ToolOption{
		requiredString("subreddit_name", "Community to post in, without the r/ prefix"),
		requiredString("title", "Post title"),
		requiredString(content, description),
		mcp.WithString("flair_id", mcp.Description("Optional flair template ID")),
		mcp.WithBoolean("nsfw", mcp.Description("Mark the post NSFW"), mcp.DefaultBool(false)),
		mcp.WithBoolean("spoiler", mcp.Description("Mark the post as a spoiler"), mcp.DefaultBool(false)),
	}
}

func submitOptions(args arguments) tools.SubmitOptions {
	return tools.SubmitOptions{
		FlairID: args.String("flair_id", ""),
		NSFW:    args.Bool("nsfw", false),
		Spoiler: args.Bool("spoiler", false),
	}
}

func tool(name, description string, op operation, opts ...mcp.ToolOption) server.ServerTool {
	opts = append([]mcp.ToolOption{mcp.WithDescription(description)}, opts...)
	return server.ServerTool{
		Tool:    mcp.NewTool(name, opts...),
		Handler: handler(op),
	}
}

// Tools returns the definition and handler of every Reddit tool.
func Tools(svc *tools.Service) []server.ServerTool {
	var all []server.ServerTool
	all = append(all, subredditTools(svc)...)
	all = append(all, postTools(svc)...)
	all = append(all, commentTools(svc)...)
	all = append(all, userTools(svc)...)
	all = append(all, interactionTools(svc)...)
	all = append(all, searchTools(svc)...)
	all = append(all, messageTools(svc)...)
	all = append(all, subscriptionTools(svc)...)
	all = append(all, discoveryTools(svc)...)
	return all
}

func subredditTools(svc *tools.Service) []server.ServerTool {
	return []server.ServerTool{
		tool("get_subreddit_info", "Get detailed information about a subreddit",
			func(ctx context.Context, args arguments) tools.Result {
				return svc.GetSubredditInfo(ctx, args.String("subreddit_name", ""))
			},
			requiredString("subreddit_name", "Name of the subreddit, without the r/ prefix"),
		),
		tool("get_subreddit_posts", "List posts from a subreddit",
			func(ctx context.Context, args arguments) tools.Result {
				return svc.GetSubredditPosts(ctx,
					args.String("subreddit_name", ""),
					args.String("sort", tools.DefaultListingSort),
					args.String("time_filter", tools.DefaultTimeFilter),
					args.Int("limit", tools.DefaultLimit),
				)
			},
			requiredString("subreddit_name", "Name of the subreddit, without the r/ prefix"),
			enumParam("sort", "Sort order", tools.DefaultListingSort, tools.ListingSorts),
			enumParam("time_filter", "Time window for top and controversial", tools.DefaultTimeFilter, tools.TimeFilters),
			limitParam(tools.DefaultLimit),
		),
		tool("search_subreddits", "Search for subreddits by name and description",
			func(ctx context.Context, args arguments) tools.Result {
				return svc.SearchSubreddits(ctx, args.String("query", ""), args.Int("limit", tools.DefaultLimit))
			},
			requiredString("query", "Search query"),
			limitParam(tools.DefaultLimit),
		),
		tool("get_subreddit_rules", "Get the rules of a subreddit",
			func(ctx context.Context, args arguments) tools.Result {
				return svc.GetSubredditRules(ctx, args.String("subreddit_name", ""))
			},
			requiredString("subreddit_name", "Name of the subreddit, without the r/ prefix"),
		),
		tool("get_subreddit_moderators", "List the moderators of a subreddit",
			func(ctx context.Context, args arguments) tools.Result {
				return svc.GetSubredditModerators(ctx, args.String("subreddit_name", ""))
			},
			requiredString("subreddit_name", "Name of the subreddit, without the r/ prefix"),
		),
	}
}

func postTools(svc *tools.Service) []server.ServerTool {
	return []server.ServerTool{
		tool("get_post", "Get a post by ID or URL",
			func(ctx context.Context, args arguments) tools.Result {
				return svc.GetPost(ctx, args.String("post_id", ""))
			},
			requiredString("post_id", "Post ID, fullname or URL"),
		),
		tool("get_post_comments", "Get the comment tree of a post",
			func(ctx context.Context, args arguments) tools.Result {
				return svc.GetPostComments(ctx, args.String("post_id", ""), args.OptionalInt("limit"))
			},
			requiredString("post_id", "Post ID, fullname or URL"),
			mcp.WithNumber("limit", mcp.Description("How many 'load more' links to expand; omit to expand all, 0 for none")),
		),
		tool("submit_text_post", "Submit a text post to a subreddit",
			func(ctx context.Context, args arguments) tools.Result {
				return svc.SubmitTextPost(ctx,
					args.String("subreddit_name", ""),
					args.String("title", ""),
					args.String("text", ""),
					submitOptions(args),
				)
			},
			submitParams("text", "Post body in markdown")...,
		),
		tool("submit_link_post", "Submit a link post to a subreddit",
			func(ctx context.Context, args arguments) tools.Result {
				return svc.SubmitLinkPost(ctx,
					args.String("subreddit_name", ""),
					args.String("title", ""),
					args.String("url", ""),
					submitOptions(args),
				)
			},
			submitParams("url", "URL to link to")...,
		),
		tool("delete_post", "Delete a post made by the account",
			func(ctx context.Context, args arguments) tools.Result {
				return svc.DeletePost(ctx, args.String("post_id", ""))
			},
			requiredString("post_id", "Post ID"),
		),
	}
}

func commentTools(svc *tools.Service) []server.ServerTool {
	return []server.ServerTool{
		tool("reply_to_post", "Comment on a post",
			func(ctx context.Context, args arguments) tools.Result {
				return svc.ReplyToPost(ctx, args.String("post_id", ""), args.String("text", ""))
			},
			requiredString("post_id", "Post ID"),
			requiredString("text", "Comment body in markdown"),
		),
		tool("reply_to_comment", "Reply to a comment",
			func(ctx context.Context, args arguments) tools.Result {
				return svc.ReplyToComment(ctx, args.String("comment_id", ""), args.String("text", ""))
			},
			requiredString("comment_id", "Comment ID"),
			requiredString("text", "Reply body in markdown"),
		),
		tool("edit_comment", "Edit a comment made by the account",
			func(ctx context.Context, args arguments) tools.Result {
				return svc.EditComment(ctx, args.String("comment_id", ""), args.String("text", ""))
			},
			requiredString("comment_id", "Comment ID"),
			requiredString("text", "New comment body in markdown"),
		),
		tool("delete_comment", "Delete a comment made by the account",
			func(ctx context.Context, args arguments) tools.Result {
				return svc.DeleteComment(ctx, args.String("comment_id", ""))
			},
			requiredString("comment_id", "Comment ID"),
		),
	}
}

func userTools(svc *tools.Service) []server.ServerTool {
	return []server.ServerTool{
		tool("get_user_info", "Get a user's profile",
			func(ctx context.Context, args arguments) tools.Result {
				return svc.GetUserInfo(ctx, args.String("username", ""))
			},
			requiredString("username", "Reddit username, without the u/ prefix"),
		),
		tool("get_user_posts", "List a user's posts",
			func(ctx context.Context, args arguments) tools.Result {
				return svc.GetUserPosts(ctx,
					args.String("username", ""),
					args.String("sort", tools.DefaultUserSort),
					args.Int("limit", tools.DefaultLimit),
				)
			},
			requiredString("username", "Reddit username, without the u/ prefix"),
			enumParam("sort", "Sort order", tools.DefaultUserSort, tools.UserSorts),
			limitParam(tools.DefaultLimit),
		),
		tool("get_user_comments", "List a user's comments",
			func(ctx context.Context, args arguments) tools.Result {
				return svc.GetUserComments(ctx,
					args.String("username", ""),
					args.String("sort", tools.DefaultUserSort),
					args.Int("limit", tools.DefaultLimit),
				)
			},
			requiredString("username", "Reddit username, without the u/ prefix"),
			enumParam("sort", "Sort order", tools.DefaultUserSort, tools.UserSorts),
			limitParam(tools.DefaultLimit),
		),
		tool("get_user_karma", "Get a user's karma, with a per-subreddit breakdown for the account itself",
			func(ctx context.Context, args arguments) tools.Result {
				return svc.GetUserKarma(ctx, args.String("username", ""))
			},
			requiredString("username", "Reddit username, without the u/ prefix"),
		),
		tool("get_my_saved", "List the account's saved posts and comments",
			func(ctx context.Context, args arguments) tools.Result {
				return svc.GetMySaved(ctx, args.Int("limit", tools.DefaultLimit))
			},
			limitParam(tools.DefaultLimit),
		),
		tool("get_my_upvoted", "List the account's upvoted posts and comments",
			func(ctx context.Context, args arguments) tools.Result {
				return svc.GetMyUpvoted(ctx, args.Int("limit", tools.DefaultLimit))
			},
			limitParam(tools.DefaultLimit),
		),
		tool("get_my_downvoted", "List the account's downvoted posts and comments",
			func(ctx context.Context, args arguments) tools.Result {
				return svc.GetMyDownvoted(ctx, args.Int("limit", tools.DefaultLimit))
			},
			limitParam(tools.DefaultLimit),
		),
	}
}

func interactionTools(svc *tools.Service) []server.ServerTool {
	item := func(act func(context.Context, string, string) tools.Result) operation {
		return func(ctx context.Context, args arguments) tools.Result {
			return act(ctx, args.String("item_id", ""), args.String("item_type", tools.DefaultItemType))
		}
	}

	return []server.ServerTool{
		tool("upvote", "Upvote a post or comment", item(svc.Upvote), itemParams()...),
		tool("downvote", "Downvote a post or comment", item(svc.Downvote), itemParams()...),
		tool("clear_vote", "Remove the account's vote on a post or comment", item(svc.ClearVote), itemParams()...),
		tool("save_item", "Save a post or comment", item(svc.SaveItem), itemParams()...),
		tool("unsave_item", "Unsave a post or comment", item(svc.UnsaveItem), itemParams()...),
		tool("hide_post", "Hide a post from the account's listings",
			func(ctx context.Context, args arguments) tools.Result {
				return svc.HidePost(ctx, args.String("post_id", ""))
			},
			requiredString("post_id", "Post ID"),
		),
		tool("unhide_post", "Unhide a previously hidden post",
			func(ctx context.Context, args arguments) tools.Result {
				return svc.UnhidePost(ctx, args.String("post_id", ""))
			},
			requiredString("post_id", "Post ID"),
		),
	}
}

func searchTools(svc *tools.Service) []server.ServerTool {
	return []server.ServerTool{
		tool("search_all_reddit", "Search posts across all of Reddit",
			func(ctx context.Context, args arguments) tools.Result {
				return svc.SearchAllReddit(ctx,
					args.String("query", ""),
					args.String("sort", tools.DefaultSearchSort),
					args.String("time_filter", tools.DefaultTimeFilter),
					args.Int("limit", tools.DefaultLimit),
				)
			},
			requiredString("query", "Search query"),
			enumParam("sort", "Sort order", tools.DefaultSearchSort, tools.SearchSorts),
			enumParam("time_filter", "Time window", tools.DefaultTimeFilter, tools.TimeFilters),
			limitParam(tools.DefaultLimit),
		),
		tool("search_in_subreddit", "Search posts within one subreddit",
			func(ctx context.Context, args arguments) tools.Result {
				return svc.SearchInSubreddit(ctx,
					args.String("subreddit_name", ""),
					args.String("query", ""),
					args.String("sort", tools.DefaultSearchSort),
					args.String("time_filter", tools.DefaultTimeFilter),
					args.Int("limit", tools.DefaultLimit),
				)
			},
			requiredString("subreddit_name", "Name of the subreddit, without the r/ prefix"),
			requiredString("query", "Search query"),
			enumParam("sort", "Sort order", tools.DefaultSearchSort, tools.SearchSorts),
			enumParam("time_filter", "Time window", tools.DefaultTimeFilter, tools.TimeFilters),
			limitParam(tools.DefaultLimit),
		),
		tool("search_users", "Search for users by name",
			func(ctx context.Context, args arguments) tools.Result {
				return svc.SearchUsers(ctx, args.String("query", ""), args.Int("limit", tools.DefaultLimit))
			},
			requiredString("query", "Search query"),
			limitParam(tools.DefaultLimit),
		),
	}
}

func messageTools(svc *tools.Service) []server.ServerTool {
	return []server.ServerTool{
		tool("get_inbox", "List inbox messages, comment replies and mentions",
			func(ctx context.Context, args arguments) tools.Result {
				return svc.GetInbox(ctx,
					args.String("filter_type", tools.DefaultInboxFilter),
					args.Int("limit", tools.DefaultLimit),
				)
			},
			enumParam("filter_type", "Which inbox items to list", tools.DefaultInboxFilter, tools.InboxFilters),
			limitParam(tools.DefaultLimit),
		),
		tool("send_message", "Send a private message to a user",
			func(ctx context.Context, args arguments) tools.Result {
				return svc.SendMessage(ctx,
					args.String("username", ""),
					args.String("subject", ""),
					args.String("message", ""),
				)
			},
			requiredString("username", "Recipient username, without the u/ prefix"),
			requiredString("subject", "Message subject"),
			requiredString("message", "Message body in markdown"),
		),
		tool("mark_message_read", "Mark an inbox item as read",
			func(ctx context.Context, args arguments) tools.Result {
				return svc.MarkMessageRead(ctx, args.String("message_id", ""))
			},
			requiredString("message_id", "Message ID; bare IDs are treated as private messages"),
		),
		tool("mark_message_unread", "Mark an inbox item as unread",
			func(ctx context.Context, args arguments) tools.Result {
				return svc.MarkMessageUnread(ctx, args.String("message_id", ""))
			},
			requiredString("message_id", "Message ID; bare IDs are treated as private messages"),
		),
	}
}

func subscriptionTools(svc *tools.Service) []server.ServerTool {
	return []server.ServerTool{
		tool("subscribe_subreddit", "Subscribe to a subreddit",
			func(ctx context.Context, args arguments) tools.Result {
				return svc.SubscribeSubreddit(ctx, args.String("subreddit_name", ""))
			},
			requiredString("subreddit_name", "Name of the subreddit, without the r/ prefix"),
		),
		tool("unsubscribe_subreddit", "Unsubscribe from a subreddit",
			func(ctx context.Context, args arguments) tools.Result {
				return svc.UnsubscribeSubreddit(ctx, args.String("subreddit_name", ""))
			},
			requiredString("subreddit_name", "Name of the subreddit, without the r/ prefix"),
		),
		tool("get_my_subscriptions", "List the subreddits the account is subscribed to",
			func(ctx context.Context, args arguments) tools.Result {
				return svc.GetMySubscriptions(ctx, args.Int("limit", tools.DefaultSubscriptionLimit))
			},
			limitParam(tools.DefaultSubscriptionLimit),
		),
		tool("follow_user", "Follow a user",
			func(ctx context.Context, args arguments) tools.Result {
				return svc.FollowUser(ctx, args.String("username", ""))
			},
			requiredString("username", "Reddit username, without the u/ prefix"),
		),
		tool("unfollow_user", "Unfollow a user",
			func(ctx context.Context, args arguments) tools.Result {
				return svc.UnfollowUser(ctx, args.String("username", ""))
			},
			requiredString("username", "Reddit username, without the u/ prefix"),
		),
	}
}

func discoveryTools(svc *tools.Service) []server.ServerTool {
	return []server.ServerTool{
		tool("get_trending_subreddits", "List currently popular subreddits",
			func(ctx context.Context, _ arguments) tools.Result {
				return svc.GetTrendingSubreddits(ctx)
			},
		),
		tool("get_front_page", "List posts from the account's front page",
			func(ctx context.Context, args arguments) tools.Result {
				return svc.GetFrontPage(ctx,
					args.String("sort", tools.DefaultListingSort),
					args.Int("limit", tools.DefaultLimit),
				)
			},
			enumParam("sort", "Sort order", tools.DefaultListingSort, tools.ListingSorts),
			limitParam(tools.DefaultLimit),
		),
		tool("get_my_multireddits", "List the account's multireddits",
			func(ctx context.Context, _ arguments) tools.Result {
				return svc.GetMyMultireddits(ctx)
			},
		),
		tool("get_random_post", "Get a random post, from a random subreddit when none is given",
			func(ctx context.Context, args arguments) tools.Result {
				return svc.GetRandomPost(ctx, args.String("subreddit_name", ""))
			},
			mcp.WithString("subreddit_name", mcp.Description("Optional subreddit to pick from")),
		),
	}
}
