package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/mark3labs/mcp-go/client"
	"github.com/mark3labs/mcp-go/mcp"

	"github.com/reddit-mcp/reddit-mcp-server/internal/config"
	"github.com/reddit-mcp/reddit-mcp-server/internal/monitoring"
	"github.com/reddit-mcp/reddit-mcp-server/internal/reddit"
	"github.com/reddit-mcp/reddit-mcp-server/internal/server"
	"github.com/reddit-mcp/reddit-mcp-server/internal/tools"
)

func main() {
	fmt.Println("🧪 Reddit MCP Server - Local Integration Test")
	fmt.Println("=============================================")

	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	sessions := reddit.NewProvider(cfg.RedditCredentials(), cfg.SessionOptions()...)
	monitoringService := monitoring.NewService()
	svc := tools.NewService(sessions, tools.WithMetrics(monitoringService))

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	fmt.Println("🔍 Checking the Reddit session...")
	if err := monitoringService.CheckSession(ctx, sessions); err != nil {
		log.Fatalf("Session check failed: %v", err)
	}
	fmt.Println("   ✅ Authenticated as u/" + cfg.RedditUsername)

	// Talk to the server through the protocol, as an MCP client would
	c, err := client.NewInProcessClient(server.New(svc))
	if err != nil {
		log.Fatalf("Failed to create in-process client: %v", err)
	}
	defer c.Close()

	if err := c.Start(ctx); err != nil {
		log.Fatalf("Failed to start client: %v", err)
	}

	initRequest := mcp.InitializeRequest{}
	initRequest.Params.ProtocolVersion = mcp.LATEST_PROTOCOL_VERSION
	initRequest.Params.ClientInfo = mcp.Implementation{Name: "test-integration", Version: server.Version}
	if _, err := c.Initialize(ctx, initRequest); err != nil {
		log.Fatalf("Failed to initialize: %v", err)
	}

	listed, err := c.ListTools(ctx, mcp.ListToolsRequest{})
	if err != nil {
		log.Fatalf("Failed to list tools: %v", err)
	}
	fmt.Printf("\n🧰 Server exposes %d tools\n", len(listed.Tools))

	calls := []struct {
		name string
		args map[string]any
	}{
		{"get_user_karma", map[string]any{"username": cfg.RedditUsername}},
		{"get_subreddit_posts", map[string]any{"subreddit_name": "golang", "limit": 3}},
		{"search_all_reddit", map[string]any{"query": "golang", "time_filter": "week", "limit": 3}},
		{"get_my_subscriptions", map[string]any{"limit": 5}},
		{"get_subreddit_posts", map[string]any{"subreddit_name": "golang", "sort": "bogus"}},
	}

	for _, call := range calls {
		fmt.Printf("\n🔸 Calling %s...\n", call.name)

		req := mcp.CallToolRequest{}
		req.Params.Name = call.name
		req.Params.Arguments = call.args

		result, err := c.CallTool(ctx, req)
		if err != nil {
			fmt.Printf("   ❌ Protocol error: %v\n", err)
			continue
		}

		for _, content := range result.Content {
			if text, ok := content.(mcp.TextContent); ok {
				sample := text.Text
				if len(sample) > 160 {
					sample = sample[:160] + "..."
				}
				fmt.Printf("   📝 %s\n", sample)
			}
		}
	}

	fmt.Println("\n📊 Metrics:")
	fmt.Println(monitoringService.GetMetrics())

	fmt.Println("\n✅ Local integration test completed!")
}
