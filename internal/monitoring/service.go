package monitoring

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/reddit-mcp/reddit-mcp-server/internal/reddit"
)

// SessionSource hands out the shared Reddit session.
type SessionSource interface {
	Client() (reddit.API, error)
}

// Service records tool invocations and the health of the Reddit session
type Service struct {
	metrics *Metrics
	mu      sync.RWMutex
}

// Metrics holds invocation metrics
type Metrics struct {
	StartedAt        time.Time      `json:"started_at"`
	TotalCalls       int            `json:"total_calls"`
	ErrorCount       int            `json:"error_count"`
	LastCall         time.Time      `json:"last_call"`
	LastCallTool     string         `json:"last_call_tool"`
	LastCallDuration string         `json:"last_call_duration"`
	LastError        string         `json:"last_error,omitempty"`
	ToolMetrics      map[string]int `json:"tool_metrics"`
	ToolErrors       map[string]int `json:"tool_errors"`

	SessionHealthy   *bool     `json:"session_healthy,omitempty"`
	LastSessionCheck time.Time `json:"last_session_check"`
}

// NewService creates a new monitoring service
func NewService() *Service {
	return &Service{
		metrics: &Metrics{
			StartedAt:   time.Now(),
			ToolMetrics: make(map[string]int),
			ToolErrors:  make(map[string]int),
		},
	}
}

// RecordCall counts one finished tool invocation. err is the failure the
// caller received, or nil.
func (s *Service) RecordCall(tool string, duration time.Duration, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.metrics.TotalCalls++
	s.metrics.ToolMetrics[tool]++
	s.metrics.LastCall = time.Now()
	s.metrics.LastCallTool = tool
	s.metrics.LastCallDuration = duration.String()

	if err != nil {
		s.metrics.ErrorCount++
		s.metrics.ToolErrors[tool]++
		s.metrics.LastError = fmt.Sprintf("%s: %v", tool, err)
	}
}

// CheckSession verifies that the shared session can authenticate and read
// the account's own profile.
func (s *Service) CheckSession(ctx context.Context, sessions SessionSource) error {
	start := time.Now()
	logrus.Debug("Starting Reddit session check")

	err := s.probe(ctx, sessions)

	s.mu.Lock()
	healthy := err == nil
	s.metrics.SessionHealthy = &healthy
	s.metrics.LastSessionCheck = time.Now()
	s.mu.Unlock()

	if err != nil {
		logrus.Errorf("Reddit session check failed: %v", err)
		return err
	}

	logrus.Debugf("Reddit session check completed in %v", time.Since(start))
	return nil
}

func (s *Service) probe(ctx context.Context, sessions SessionSource) error {
	client, err := sessions.Client()
	if err != nil {
		return fmt.Errorf("failed to get Reddit session: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, time.Minute)
	defer cancel()

	if _, err := client.User(ctx, client.Username()); err != nil {
		return fmt.Errorf("failed to read own profile: %w", err)
	}
	return nil
}

// Healthy reports false only after a failed session check.
func (s *Service) Healthy() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.metrics.SessionHealthy == nil || *s.metrics.SessionHealthy
}

// Snapshot returns a copy of the current metrics.
func (s *Service) Snapshot() Metrics {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snapshot := *s.metrics
	snapshot.ToolMetrics = copyCounts(s.metrics.ToolMetrics)
	snapshot.ToolErrors = copyCounts(s.metrics.ToolErrors)
	if s.metrics.SessionHealthy != nil {
		healthy := *s.metrics.SessionHealthy
		snapshot.SessionHealthy = &healthy
	}
	return snapshot
}

// GetMetrics returns current metrics as JSON
func (s *Service) GetMetrics() string {
	snapshot := s.Snapshot()

	data, _ := json.MarshalIndent(&snapshot, "", "  ")
	return string(data)
}

// LogSummary writes the current counters to the log.
func (s *Service) LogSummary() {
	snapshot := s.Snapshot()

	logrus.WithFields(logrus.Fields{
		"uptime":      time.Since(snapshot.StartedAt).Round(time.Second).String(),
		"total_calls": snapshot.TotalCalls,
		"error_count": snapshot.ErrorCount,
		"top_tools":   getTopTools(snapshot.ToolMetrics, 5),
	}).Info("Tool usage summary")
}

func getTopTools(toolCount map[string]int, n int) []string {
	type toolScore struct {
		tool  string
		count int
	}

	var scores []toolScore
	for tool, count := range toolCount {
		scores = append(scores, toolScore{tool, count})
	}

	// By count descending, ties by name
	sort.Slice(scores, func(i, j int) bool {
		if scores[i].count != scores[j].count {
			return scores[i].count > scores[j].count
		}
		return scores[i].tool < scores[j].tool
	})

	topTools := []string{}
	for i, score := range scores {
		if i >= n {
			break
		}
		topTools = append(topTools, fmt.Sprintf("%s (%d)", score.tool, score.count))
	}

	return topTools
}

func copyCounts(in map[string]int) map[string]int {
	out := make(map[string]int, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
