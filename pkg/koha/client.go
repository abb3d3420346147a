// Package koha wraps the Koha library-management REST API: keyword
// search, ISBN lookup and item counts, with Basic auth and a hard
// request timeout.
package koha

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// DefaultTimeout bounds every catalog call; a slow Koha must surface
// as a timeout, never hang a request.
const DefaultTimeout = 8 * time.Second

// Client is the HTTP wrapper for the Koha REST API.
type Client struct {
	baseURL    string
	username   string
	password   string
	httpClient *http.Client
}

// NewClient creates a new Koha HTTP client.
func NewClient(baseURL, username, password string) *Client {
	return &Client{
		baseURL:    baseURL,
		username:   username,
		password:   password,
		httpClient: &http.Client{Timeout: DefaultTimeout},
	}
}

// SearchByTitle searches biblio records whose title matches the phrase.
func (c *Client) SearchByTitle(ctx context.Context, phrase string) ([]Biblio, error) {
	q := fmt.Sprintf(`{"title":{"-like":"%%%s%%"}}`, phrase)
	return c.searchBiblios(ctx, q)
}

// SearchByISBN fetches biblio records for an exact ISBN.
func (c *Client) SearchByISBN(ctx context.Context, isbn string) ([]Biblio, error) {
	q := fmt.Sprintf(`{"isbn":{"-like":"%%%s%%"}}`, isbn)
	return c.searchBiblios(ctx, q)
}

func (c *Client) searchBiblios(ctx context.Context, query string) ([]Biblio, error) {
	u := fmt.Sprintf("%s/api/v1/biblios?q=%s", c.baseURL, url.QueryEscape(query))

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build koha search request: %w", err)
	}
	c.setHeaders(httpReq)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to call koha search API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("koha API search error %d: %s", resp.StatusCode, string(raw))
	}

	var biblios []Biblio
	if err := json.NewDecoder(resp.Body).Decode(&biblios); err != nil {
		return nil, fmt.Errorf("failed to decode koha search response: %w", err)
	}
	return biblios, nil
}

// CountItems returns the number of copies held for a biblio record.
func (c *Client) CountItems(ctx context.Context, biblioID string) (int, error) {
	u := fmt.Sprintf("%s/api/v1/biblios/%s/items", c.baseURL, url.PathEscape(biblioID))

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to build koha items request: %w", err)
	}
	c.setHeaders(httpReq)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return 0, fmt.Errorf("failed to call koha items API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return 0, nil
	}
	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return 0, fmt.Errorf("koha API items error %d: %s", resp.StatusCode, string(raw))
	}

	var items []Item
	if err := json.NewDecoder(resp.Body).Decode(&items); err != nil {
		return 0, fmt.Errorf("failed to decode koha items response: %w", err)
	}
	return len(items), nil
}

func (c *Client) setHeaders(req *http.Request) {
	token := base64.StdEncoding.EncodeToString([]byte(c.username + ":" + c.password))
	req.Header.Set("Authorization", "Basic "+token)
	req.Header.Set("Accept", "application/json")
}
