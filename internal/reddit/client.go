package reddit

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

const (
	DefaultAuthURL = "https://www.reddit.com/api/v1/access_token"
	DefaultAPIURL  = "https://oauth.reddit.com"

	defaultTimeout           = 30 * time.Second
	defaultRequestsPerMinute = 60
	defaultBurst             = 10

	// maxPageSize is the largest page Reddit serves for a listing request.
	maxPageSize = 100

	// tokenExpiryMargin renews the bearer token before Reddit rejects it.
	tokenExpiryMargin = time.Minute
)

// Credentials identify a Reddit script application and the account it acts for.
type Credentials struct {
	ClientID     string
	ClientSecret string
	Username     string
	Password     string
	UserAgent    string
}

// Client is an authenticated Reddit session. It is safe for concurrent use.
type Client struct {
	creds      Credentials
	authURL    string
	apiURL     string
	http       *resty.Client
	noRedirect *resty.Client
	limiter    *rate.Limiter

	mu          sync.Mutex
	token       string
	tokenExpiry time.Time
}

// Ensure Client implements API
var _ API = (*Client)(nil)

// Option customizes a Client.
type Option func(*Client)

// WithEndpoints overrides the token and API base URLs.
func WithEndpoints(authURL, apiURL string) Option {
	return func(c *Client) {
		c.authURL = authURL
		c.apiURL = strings.TrimSuffix(apiURL, "/")
	}
}

// WithTimeout sets the per-request timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.http.SetTimeout(timeout)
		c.noRedirect.SetTimeout(timeout)
	}
}

// WithRateLimit paces outgoing requests.
func WithRateLimit(requestsPerMinute float64, burst int) Option {
	return func(c *Client) {
		c.limiter = rate.NewLimiter(rate.Limit(requestsPerMinute/60.0), burst)
	}
}

// NewClient creates a new Reddit session. No request is made until the
// first API call, which also obtains the access token.
func NewClient(creds Credentials, opts ...Option) (*Client, error) {
	if creds.ClientID == "" || creds.ClientSecret == "" {
		return nil, fmt.Errorf("reddit client id and secret are required")
	}
	if creds.Username == "" || creds.Password == "" {
		return nil, fmt.Errorf("reddit username and password are required")
	}
	if creds.UserAgent == "" {
		creds.UserAgent = fmt.Sprintf("MCP:reddit-server:v1.0 (by /u/%s)", creds.Username)
	}

	c := &Client{
		creds:   creds,
		authURL: DefaultAuthURL,
		apiURL:  DefaultAPIURL,
		http:    resty.New().SetTimeout(defaultTimeout),
		noRedirect: resty.New().
			SetTimeout(defaultTimeout).
			SetRedirectPolicy(resty.RedirectPolicyFunc(func(*http.Request, []*http.Request) error {
				return http.ErrUseLastResponse
			})),
		limiter: rate.NewLimiter(rate.Limit(defaultRequestsPerMinute/60.0), defaultBurst),
	}

	for _, opt := range opts {
		opt(c)
	}

	if _, err := url.Parse(c.apiURL); err != nil {
		return nil, fmt.Errorf("invalid reddit API URL: %w", err)
	}

	return c, nil
}

// Username returns the account the session acts for.
func (c *Client) Username() string {
	return c.creds.Username
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
	Scope       string `json:"scope"`
	Error       string `json:"error"`
}

// accessToken returns a valid bearer token, performing the password grant
// when none is cached or the cached one is about to expire.
func (c *Client) accessToken(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.token != "" && time.Now().Before(c.tokenExpiry) {
		return c.token, nil
	}

	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("User-Agent", c.creds.UserAgent).
		SetBasicAuth(c.creds.ClientID, c.creds.ClientSecret).
		SetFormData(map[string]string{
			"grant_type": "password",
			"username":   c.creds.Username,
			"password":   c.creds.Password,
		}).
		Post(c.authURL)
	if err != nil {
		return "", &AuthError{Err: err}
	}

	if resp.StatusCode() != http.StatusOK {
		return "", &AuthError{StatusCode: resp.StatusCode(), Reason: truncateBody(resp.Body())}
	}

	var authResp tokenResponse
	if err := json.Unmarshal(resp.Body(), &authResp); err != nil {
		return "", &AuthError{StatusCode: resp.StatusCode(), Err: fmt.Errorf("failed to decode token response: %w", err)}
	}
	if authResp.Error != "" {
		return "", &AuthError{StatusCode: resp.StatusCode(), Reason: authResp.Error}
	}
	if authResp.AccessToken == "" {
		return "", &AuthError{StatusCode: resp.StatusCode(), Reason: "access token was empty in response"}
	}

	lifetime := time.Duration(authResp.ExpiresIn) * time.Second
	if lifetime > 2*tokenExpiryMargin {
		lifetime -= tokenExpiryMargin
	}

	c.token = authResp.AccessToken
	c.tokenExpiry = time.Now().Add(lifetime)
	logrus.Debugf("Obtained Reddit access token for u/%s (expires in %v)", c.creds.Username, lifetime)

	return c.token, nil
}

// request prepares an authenticated, rate-limited request on the given resty client.
func (c *Client) request(ctx context.Context, client *resty.Client) (*resty.Request, error) {
	token, err := c.accessToken(ctx)
	if err != nil {
		return nil, err
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter: %w", err)
	}

	return client.R().
		SetContext(ctx).
		SetHeader("Authorization", "Bearer "+token).
		SetHeader("User-Agent", c.creds.UserAgent).
		SetQueryParam("raw_json", "1"), nil
}

// get performs an authenticated GET and decodes the JSON body into out.
func (c *Client) get(ctx context.Context, path string, params url.Values, out any) error {
	req, err := c.request(ctx, c.http)
	if err != nil {
		return err
	}
	if params != nil {
		req.SetQueryParamsFromValues(params)
	}

	resp, err := req.Get(c.apiURL + path)
	if err != nil {
		return fmt.Errorf("GET %s: %w", path, err)
	}

	return decode(resp, out)
}

// post performs an authenticated form POST and decodes the JSON body into out.
func (c *Client) post(ctx context.Context, path string, form map[string]string, out any) error {
	req, err := c.request(ctx, c.http)
	if err != nil {
		return err
	}

	resp, err := req.SetFormData(form).Post(c.apiURL + path)
	if err != nil {
		return fmt.Errorf("POST %s: %w", path, err)
	}

	return decode(resp, out)
}

// redirectTarget issues a GET without following redirects and returns the
// Location header, or "" when Reddit answered without redirecting.
func (c *Client) redirectTarget(ctx context.Context, path string) (string, error) {
	req, err := c.request(ctx, c.noRedirect)
	if err != nil {
		return "", err
	}

	resp, err := req.Get(c.apiURL + path)
	if err != nil {
		return "", fmt.Errorf("GET %s: %w", path, err)
	}

	status := resp.StatusCode()
	if status >= 300 && status < 400 {
		return resp.Header().Get("Location"), nil
	}
	if status < 200 || status >= 300 {
		return "", newAPIError(status, resp.Body())
	}
	return "", nil
}

func decode(resp *resty.Response, out any) error {
	if resp.StatusCode() < 200 || resp.StatusCode() >= 300 {
		return newAPIError(resp.StatusCode(), resp.Body())
	}
	if out == nil || len(resp.Body()) == 0 {
		return nil
	}
	if err := json.Unmarshal(resp.Body(), out); err != nil {
		return fmt.Errorf("failed to decode reddit response: %w", err)
	}
	return nil
}

// jsonResponse is the envelope of api_type=json endpoints.
type jsonResponse struct {
	JSON struct {
		Errors [][]any         `json:"errors"`
		Data   json.RawMessage `json:"data"`
	} `json:"json"`
}

// postJSON posts with api_type=json and surfaces the embedded error list.
func (c *Client) postJSON(ctx context.Context, path string, form map[string]string) (json.RawMessage, error) {
	form["api_type"] = "json"

	var resp jsonResponse
	if err := c.post(ctx, path, form, &resp); err != nil {
		return nil, err
	}
	if err := jsonErrors(resp.JSON.Errors); err != nil {
		return nil, err
	}
	return resp.JSON.Data, nil
}

// listing collects up to limit children of a paginated listing endpoint.
// A non-positive limit fetches a single page with Reddit's default size.
func (c *Client) listing(ctx context.Context, path string, params url.Values, limit int) ([]*Thing, error) {
	if params == nil {
		params = url.Values{}
	}

	if limit <= 0 {
		page, err := c.listingPage(ctx, path, params)
		if err != nil {
			return nil, err
		}
		return page.Children, nil
	}

	things := make([]*Thing, 0, min(limit, maxPageSize))
	after := ""
	for len(things) < limit {
		pageParams := cloneValues(params)
		pageParams.Set("limit", strconv.Itoa(min(limit-len(things), maxPageSize)))
		if after != "" {
			pageParams.Set("after", after)
			pageParams.Set("count", strconv.Itoa(len(things)))
		}

		page, err := c.listingPage(ctx, path, pageParams)
		if err != nil {
			return nil, err
		}

		things = append(things, page.Children...)
		if len(page.Children) == 0 || page.After == "" {
			break
		}
		after = page.After
	}

	if len(things) > limit {
		things = things[:limit]
	}
	return things, nil
}

func (c *Client) listingPage(ctx context.Context, path string, params url.Values) (*listingData, error) {
	var thing Thing
	if err := c.get(ctx, path, params, &thing); err != nil {
		return nil, err
	}
	return parseListing(&thing)
}

func cloneValues(v url.Values) url.Values {
	out := make(url.Values, len(v))
	for key, values := range v {
		out[key] = append([]string(nil), values...)
	}
	return out
}
