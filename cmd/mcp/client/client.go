// Package client provides an HTTP client for the dream journal API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/jbeshir/dream-journal/internal/domain"
)

type dreamsResponse struct {
	Data []domain.Dream `json:"data"`
}

type similarResponse struct {
	Data []domain.SimilarDream `json:"data"`
}

// Client is an HTTP client for the dream journal API, authenticated with an
// API token.
type Client struct {
	baseURL    string
	apiToken   string
	httpClient *http.Client
}

func NewClient(baseURL, apiToken string) *Client {
	return &Client{
		baseURL:  strings.TrimSuffix(baseURL, "/"),
		apiToken: apiToken,
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

func (c *Client) doRequest(ctx context.Context, method, path string, body any) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encoding request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	if c.apiToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiToken)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("executing request: %w", err)
	}
	return resp, nil
}

func (c *Client) call(ctx context.Context, method, path string, body, result any) error {
	resp, err := c.doRequest(ctx, method, path, body)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("API error (status %d): %s", resp.StatusCode, strings.TrimSpace(string(msg)))
	}

	if result != nil {
		if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
			return fmt.Errorf("decoding response: %w", err)
		}
	}
	return nil
}

func (c *Client) ListDreams(ctx context.Context, page, pageSize int) ([]domain.Dream, error) {
	params := url.Values{}
	params.Set("page", strconv.Itoa(page))
	params.Set("page_size", strconv.Itoa(pageSize))

	var result dreamsResponse
	if err := c.call(ctx, http.MethodGet, "/v1/dreams?"+params.Encode(), nil, &result); err != nil {
		return nil, err
	}
	return result.Data, nil
}

func (c *Client) GetDream(ctx context.Context, dreamID string) (*domain.Dream, error) {
	var dream domain.Dream
	path := "/v1/dreams/" + url.PathEscape(dreamID)
	if err := c.call(ctx, http.MethodGet, path, nil, &dream); err != nil {
		return nil, err
	}
	return &dream, nil
}

func (c *Client) CreateDream(ctx context.Context, title, body string) (*domain.Dream, error) {
	req := struct {
		Title string `json:"title"`
		Body  string `json:"body"`
	}{Title: title, Body: body}

	var dream domain.Dream
	if err := c.call(ctx, http.MethodPost, "/v1/dreams", req, &dream); err != nil {
		return nil, err
	}
	return &dream, nil
}

func (c *Client) InterpretDream(ctx context.Context, dreamID string) (*domain.Dream, error) {
	var dream domain.Dream
	path := "/v1/dreams/" + url.PathEscape(dreamID) + "/interpret"
	if err := c.call(ctx, http.MethodPost, path, nil, &dream); err != nil {
		return nil, err
	}
	return &dream, nil
}

func (c *Client) GetSimilarDreams(ctx context.Context, dreamID string, limit int) ([]domain.SimilarDream, error) {
	path := "/v1/dreams/" + url.PathEscape(dreamID) + "/similar"
	if limit > 0 {
		path += "?limit=" + strconv.Itoa(limit)
	}

	var result similarResponse
	if err := c.call(ctx, http.MethodGet, path, nil, &result); err != nil {
		return nil, err
	}
	return result.Data, nil
}

func (c *Client) GetPatterns(ctx context.Context) (*domain.DreamPatterns, error) {
	var patterns domain.DreamPatterns
	if err := c.call(ctx, http.MethodGet, "/v1/patterns", nil, &patterns); err != nil {
		return nil, err
	}
	return &patterns, nil
}

func (c *Client) GetStreaks(ctx context.Context, tz string) (*domain.StreakStats, error) {
	path := "/v1/stats/streaks"
	if tz != "" {
		path += "?tz=" + url.QueryEscape(tz)
	}

	var stats domain.StreakStats
	if err := c.call(ctx, http.MethodGet, path, nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}
