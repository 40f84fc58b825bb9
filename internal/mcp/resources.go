// ABOUTME: MCP resource implementations for lifedash.
// ABOUTME: Provides lifedash://today, lifedash://stats and lifedash://subscriptions resources.
package mcp

import (
	"context"
	"fmt"

	json "github.com/goccy/go-json"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/harperreed/lifedash/internal/dashboard"
	"github.com/harperreed/lifedash/internal/storage"
)

const (
	todayURI         = "lifedash://today"
	statsURI         = "lifedash://stats"
	subscriptionsURI = "lifedash://subscriptions"
)

func (s *Server) registerResources() {
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         todayURI,
		Name:        "Today",
		Description: "Pending reminders, today's food, training and journal entries, and today's summary",
		MIMEType:    "application/json",
	}, s.handleTodayResource)

	s.mcpServer.AddResource(&mcp.Resource{
		URI:         statsURI,
		Name:        "Training and Weight Stats",
		Description: "Sessions this week and month, weekly breakdown and the 30-day weight trend",
		MIMEType:    "application/json",
	}, s.handleStatsResource)

	s.mcpServer.AddResource(&mcp.Resource{
		URI:         subscriptionsURI,
		Name:        "Subscription Costs",
		Description: "Active subscriptions with monthly and yearly totals and a per-category breakdown",
		MIMEType:    "application/json",
	}, s.handleSubscriptionsResource)
}

func jsonResource(uri string, v any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}
	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

func (s *Server) handleTodayResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	today, err := dashboard.BuildToday(ctx, s.repo, s.localNow())
	if err != nil {
		return nil, fmt.Errorf("failed to build today: %w", err)
	}
	return jsonResource(todayURI, today)
}

func (s *Server) handleStatsResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	stats, err := dashboard.BuildStats(ctx, s.repo, s.localNow())
	if err != nil {
		return nil, fmt.Errorf("failed to build stats: %w", err)
	}
	return jsonResource(statsURI, stats)
}

func (s *Server) handleSubscriptionsResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	list, err := dashboard.ListSubscriptions(ctx, s.repo, storage.SubscriptionFilter{ActiveOnly: true})
	if err != nil {
		return nil, fmt.Errorf("failed to list subscriptions: %w", err)
	}
	breakdown, err := dashboard.SubscriptionStats(ctx, s.repo)
	if err != nil {
		return nil, fmt.Errorf("failed to break down subscriptions: %w", err)
	}

	return jsonResource(subscriptionsURI, map[string]any{
		"subscriptions": list.Subscriptions,
		"totals":        list.Totals,
		"by_category":   breakdown.ByCategory,
	})
}
