package tools

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/reddit-mcp/reddit-mcp-server/internal/monitoring"
	"github.com/reddit-mcp/reddit-mcp-server/internal/reddit"
)

// Validation failures reported to the caller verbatim
var (
	ErrInvalidSort        = errors.New("Invalid sort method")
	ErrInvalidItemType    = errors.New("Invalid item_type. Use 'post' or 'comment'")
	ErrInvalidFilterType  = errors.New("Invalid filter_type")
	ErrInvalidTimeFilter  = errors.New("Invalid time_filter")
	ErrInvalidSearchSort  = errors.New("Invalid search sort")
	ErrNoRandomPost       = errors.New("No random post available")
	ErrMissingRequiredArg = errors.New("missing required argument")
)

// Defaults applied when a caller omits an argument
const (
	DefaultLimit             = 25
	DefaultSubscriptionLimit = 100
	TrendingLimit            = 10

	DefaultListingSort = "hot"
	DefaultUserSort    = "new"
	DefaultSearchSort  = "relevance"
	DefaultTimeFilter  = "all"
	DefaultInboxFilter = "all"
	DefaultItemType    = "post"
)

// Accepted values of the enumerated arguments
var (
	ListingSorts = []string{"hot", "new", "top", "rising", "controversial"}
	UserSorts    = []string{"new", "top", "hot"}
	SearchSorts  = []string{"relevance", "hot", "top", "new", "comments"}
	TimeFilters  = []string{"hour", "day", "week", "month", "year", "all"}
	InboxFilters = []string{"all", "unread", "messages", "comments", "mentions"}
	ItemTypes    = []string{"post", "comment"}
)

// SessionProvider hands out the shared Reddit session.
type SessionProvider interface {
	Client() (reddit.API, error)
}

// Service implements every Reddit operation. Each method is a failure
// boundary: whatever happens, it returns a Result.
type Service struct {
	sessions SessionProvider
	metrics  *monitoring.Service
}

// Option customizes a Service.
type Option func(*Service)

// WithMetrics records every invocation on m.
func WithMetrics(m *monitoring.Service) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

// NewService creates the operation set on top of a session provider.
func NewService(sessions SessionProvider, opts ...Option) *Service {
	s := &Service{sessions: sessions}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

type operation func(ctx context.Context, api reddit.API) (any, error)

// run acquires the session, executes op and converts any failure, panics
// included, into the Result the shape prescribes. Only the caller's context
// bounds op; each HTTP request carries the session's own timeout.
func (s *Service) run(ctx context.Context, tool string, shape Shape, op operation) (result Result) {
	start := time.Now()
	log := logrus.WithFields(logrus.Fields{
		"tool":    tool,
		"call_id": uuid.NewString(),
	})
	log.Debug("Invoking tool")

	defer func() {
		if r := recover(); r != nil {
			log.Errorf("Tool panicked: %v", r)
			result = failure(shape, fmt.Errorf("internal error: %v", r))
		}
		s.finish(log, tool, start, result)
	}()

	api, err := s.sessions.Client()
	if err != nil {
		return failure(shape, err)
	}

	value, err := op(ctx, api)
	if err != nil {
		return failure(shape, err)
	}
	return success(shape, value)
}

// reject reports an argument error without touching the session.
func (s *Service) reject(tool string, shape Shape, err error) Result {
	result := failure(shape, err)
	log := logrus.WithFields(logrus.Fields{
		"tool":    tool,
		"call_id": uuid.NewString(),
	})
	s.finish(log, tool, time.Now(), result)
	return result
}

func (s *Service) finish(log *logrus.Entry, tool string, start time.Time, result Result) {
	duration := time.Since(start)
	if s.metrics != nil {
		s.metrics.RecordCall(tool, duration, result.Err)
	}

	if result.Err != nil {
		log.WithField("duration", duration.String()).Warnf("Tool failed: %v", result.Err)
		return
	}
	log.WithField("duration", duration.String()).Debug("Tool completed")
}

func oneOf(value string, allowed []string) bool {
	for _, candidate := range allowed {
		if value == candidate {
			return true
		}
	}
	return false
}

func required(name, value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("%w: %s", ErrMissingRequiredArg, name)
	}
	return nil
}

// postID accepts a bare id, a fullname or a post URL.
func postID(raw string) (string, error) {
	if err := required("post_id", raw); err != nil {
		return "", err
	}
	if strings.HasPrefix(raw, "http") {
		return reddit.SubmissionIDFromURL(raw)
	}
	return strings.TrimPrefix(raw, reddit.KindLink+"_"), nil
}

// messageFullname keeps t1_/t4_ prefixes and treats bare ids as private
// messages.
func messageFullname(id string) string {
	if strings.HasPrefix(id, reddit.KindComment+"_") || strings.HasPrefix(id, reddit.KindMessage+"_") {
		return id
	}
	return reddit.Fullname(reddit.KindMessage, id)
}
