package marketapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"campusmarket/internal/models"
)

// Path prefixes of the listings backend. Sale and rent listings live under
// the sell-list resource, ISO requests under insearchof.
const (
	sellListPrefix   = "/api/sell-list"
	insearchofPrefix = "/api/insearchof"
	profilePrefix    = "/api/profile"
	catalogPrefix    = "/catalog"
)

// Client talks to the listings backend over HTTP/JSON. It owns no data:
// every call is a thin, context-aware request against the remote API.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

func NewClient(httpClient *http.Client, baseURL string) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 15 * time.Second}
	}
	return &Client{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(baseURL, "/"),
	}
}

// APIError carries the backend's failure message so the UI can surface it
// verbatim.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("market api: status %d: %s", e.StatusCode, e.Message)
}

// prefixFor picks the resource prefix for a listing type. Requests are a
// separate resource from sale/rent listings on the backend.
func prefixFor(listingType string) string {
	if models.NormalizeListingType(listingType) == models.TypeRequest {
		return insearchofPrefix
	}
	return sellListPrefix
}

func (c *Client) url(path string) string {
	return c.baseURL + path
}

// doJSON issues a request with an optional JSON body and decodes the
// response into out when it is non-nil.
func (c *Client) doJSON(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.url(path), reader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return decodeError(resp)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// decodeError extracts the backend's message field best-effort. Older
// backend iterations used FastAPI's "detail" key, so both are accepted.
func decodeError(resp *http.Response) error {
	apiErr := &APIError{StatusCode: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}

	data, err := io.ReadAll(io.LimitReader(resp.Body, 4096))
	if err != nil {
		return apiErr
	}
	var body struct {
		Message string `json:"message"`
		Detail  string `json:"detail"`
	}
	if err := json.Unmarshal(data, &body); err != nil {
		return apiErr
	}
	if body.Message != "" {
		apiErr.Message = body.Message
	} else if body.Detail != "" {
		apiErr.Message = body.Detail
	}
	return apiErr
}
