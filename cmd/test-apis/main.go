package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/reddit-mcp/reddit-mcp-server/internal/config"
	"github.com/reddit-mcp/reddit-mcp-server/internal/reddit"
	"github.com/reddit-mcp/reddit-mcp-server/internal/tools"
)

func main() {
	subreddit := flag.String("subreddit", "golang", "subreddit to read from")
	flag.Parse()

	fmt.Println("🔍 Reddit MCP Server - API Connectivity Test")
	fmt.Println("============================================")

	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	svc := tools.NewService(reddit.NewProvider(cfg.RedditCredentials(), cfg.SessionOptions()...))
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	fmt.Println("\n📡 Testing read-only operations...")
	fmt.Println(strings.Repeat("-", 44))

	// Only operations that leave the account untouched
	testOperation("get_user_info", svc.GetUserInfo(ctx, cfg.RedditUsername))
	testOperation("get_subreddit_info", svc.GetSubredditInfo(ctx, *subreddit))
	testOperation("get_subreddit_posts", svc.GetSubredditPosts(ctx, *subreddit, "hot", "all", 5))
	testOperation("get_subreddit_rules", svc.GetSubredditRules(ctx, *subreddit))
	testOperation("search_in_subreddit", svc.SearchInSubreddit(ctx, *subreddit, "release", "relevance", "month", 5))
	testOperation("get_trending_subreddits", svc.GetTrendingSubreddits(ctx))
	testOperation("get_front_page", svc.GetFrontPage(ctx, "hot", 5))
	testOperation("get_inbox", svc.GetInbox(ctx, "unread", 5))
	testOperation("get_random_post", svc.GetRandomPost(ctx, *subreddit))

	fmt.Println("\n✅ API connectivity test completed!")
	fmt.Println("\n💡 Next steps:")
	fmt.Println("   • Fix any failing credentials in the .env file")
	fmt.Println("   • Register the server with your MCP client: go run ./cmd/server")
}

func testOperation(name string, result tools.Result) {
	fmt.Printf("🔸 Testing %s... ", name)

	if result.Failed() {
		fmt.Printf("❌ ERROR: %v\n", result.Err)
		return
	}

	text, err := result.JSON()
	if err != nil {
		fmt.Printf("❌ ERROR: %v\n", err)
		return
	}

	fmt.Printf("✅ SUCCESS (%d bytes)\n", len(text))
	if len(text) > 120 {
		text = text[:120] + "..."
	}
	fmt.Printf("   📝 Sample: %s\n", text)
}
