package onionoo

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	apperrors "github.com/ling0x/tor-nodes/pkg/errors"
)

// DefaultURL is the Onionoo details endpoint restricted to running relays.
const DefaultURL = "https://onionoo.torproject.org/details?search=type:relay%20running:true"

// requestTimeout bounds the single census fetch. The details document is a
// few tens of megabytes, so this is generous rather than tight.
const requestTimeout = 2 * time.Minute

// details mirrors the top-level shape of the Onionoo details document.
type details struct {
	Relays []Relay `json:"relays"`
}

// Client fetches relay census documents from an Onionoo endpoint.
type Client struct {
	http *http.Client
	url  string
}

// NewClient creates a Client for the given details URL.
// An empty url selects [DefaultURL].
func NewClient(url string) *Client {
	if url == "" {
		url = DefaultURL
	}
	return &Client{
		http: &http.Client{Timeout: requestTimeout},
		url:  url,
	}
}

// Details performs one GET of the details document and returns the decoded
// relay list. There is no retry: a transport failure, a non-200 status, or
// a malformed document is fatal to the run that needs the census.
func (c *Client) Details(ctx context.Context) ([]Relay, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeInvalidInput, err, "build census request")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeNetwork, err, "fetch census from %s", c.url)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
	case resp.StatusCode == http.StatusNotFound:
		return nil, apperrors.New(apperrors.ErrCodeNotFound, "census endpoint %s not found", c.url)
	default:
		return nil, apperrors.New(apperrors.ErrCodeNetwork, "census fetch returned status %d", resp.StatusCode)
	}

	var doc details
	if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeInvalidInput, err, "decode census document")
	}
	return doc.Relays, nil
}
