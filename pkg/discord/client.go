package discord

import (
	"context"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"
	"net/http/httputil"
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

const (
	DefaultBaseURL = "https://discord.com/api/v10/"

	defaultUserAgent = "DiscordBot (https://github.com/swgillespie/cordinfo, 1.0)"
)

type Client struct {
	baseURL   string
	token     string
	userAgent string
	client    *http.Client

	Users UsersService
}

type ClientOption func(*Client)

func New(token string, options ...ClientOption) *Client {
	client := &Client{
		baseURL:   DefaultBaseURL,
		token:     token,
		userAgent: defaultUserAgent,
		client:    &http.Client{},
	}
	for _, option := range options {
		option(client)
	}

	client.Users = &usersServiceImpl{client}
	return client
}

func WithHTTPClient(httpClient *http.Client) ClientOption {
	return func(client *Client) {
		client.client = httpClient
	}
}

// WithBaseURL points the client at a different API root. The URL must end in a
// slash; endpoints are appended to it verbatim.
func WithBaseURL(url string) ClientOption {
	return func(client *Client) {
		client.baseURL = url
	}
}

func WithUserAgent(userAgent string) ClientOption {
	return func(client *Client) {
		client.userAgent = userAgent
	}
}

func (c *Client) urlFor(endpoint string) string {
	return c.baseURL + endpoint
}

func (c *Client) get(ctx context.Context, endpoint string, response interface{}) error {
	req, err := http.NewRequest(http.MethodGet, c.urlFor(endpoint), nil)
	if err != nil {
		return errors.Wrap(err, "while creating request")
	}
	if c.userAgent != "" {
		req.Header.Add("User-Agent", c.userAgent)
	}
	req.Header.Add("Authorization", "Bot "+c.token)
	req.Header.Add("Content-Type", "application/json")

	if log.IsLevelEnabled(log.DebugLevel) {
		dumped, err := httputil.DumpRequestOut(req, false)
		if err == nil {
			log.Debug(c.redact(string(dumped)))
		}
	}

	resp, err := c.client.Do(req.WithContext(ctx))
	if err != nil {
		return errors.Wrap(err, "while executing request")
	}

	if log.IsLevelEnabled(log.DebugLevel) {
		dumped, err := httputil.DumpResponse(resp, true)
		if err == nil {
			log.Debug(string(dumped))
		}
	}

	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return decodeError(resp)
	}

	if err := json.NewDecoder(resp.Body).Decode(response); err != nil {
		return errors.Wrap(err, "while decoding response")
	}
	return nil
}

// redact scrubs the bot token out of dumped requests.
func (c *Client) redact(dump string) string {
	if c.token == "" {
		return dump
	}
	return strings.ReplaceAll(dump, c.token, "<redacted>")
}

func decodeError(resp *http.Response) error {
	body, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return errors.Errorf("[%d] discord responded with failure", resp.StatusCode)
	}

	if strings.HasPrefix(resp.Header.Get("Content-Type"), "application/json") {
		var errResponse discordWireError
		if err := json.Unmarshal(body, &errResponse); err == nil && errResponse.Message != "" {
			return APIError{
				StatusCode: resp.StatusCode,
				Code:       errResponse.Code,
				Message:    errResponse.Message,
			}
		}
	}

	message := strings.TrimSpace(string(body))
	if message == "" {
		message = http.StatusText(resp.StatusCode)
	}
	return APIError{
		StatusCode: resp.StatusCode,
		Message:    message,
	}
}

type discordWireError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// APIError is a non-success response from the Discord API. Code is Discord's
// JSON error code (e.g. 10013 for an unknown user) and is zero when the body
// was not a JSON error object.
type APIError struct {
	StatusCode int
	Code       int
	Message    string
}

func (e APIError) Error() string {
	if e.Code != 0 {
		return fmt.Sprintf("[%d] %s (code %d)", e.StatusCode, e.Message, e.Code)
	}
	return fmt.Sprintf("[%d] %s", e.StatusCode, e.Message)
}
