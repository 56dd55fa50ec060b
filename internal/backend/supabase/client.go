package supabase

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client wraps the HTTP client for Supabase PostgREST RPC calls.
type Client struct {
	baseURL    string
	anonKey    string
	httpClient *http.Client
}

// NewClient creates a new Supabase RPC client.
func NewClient(config Config) *Client {
	return &Client{
		baseURL: config.URL,
		anonKey: config.AnonKey,
		httpClient: &http.Client{
			Timeout: time.Duration(config.Timeout) * time.Second,
		},
	}
}

// RPC function names exposed by the backend.
const (
	rpcFilterPerfumes  = "filter_perfumes"
	rpcCountPerfumes   = "count_perfumes"
	rpcSuggestPerfumes = "suggest_perfumes"
)

// rpcFilterParams is the structured parameter object for the filter RPCs.
// List fields use nil slices and scalar fields nil pointers to encode the
// explicit "no constraint" null sentinel; an empty array is never sent.
type rpcFilterParams struct {
	SearchQuery       *string  `json:"search_query"`
	BrandFilter       []string `json:"brand_filter"`
	GenderFilter      *string  `json:"gender_filter"`
	AccordsFilter     []string `json:"accords_filter"`
	TopNotesFilter    []string `json:"top_notes_filter"`
	MiddleNotesFilter []string `json:"middle_notes_filter"`
	BaseNotesFilter   []string `json:"base_notes_filter"`
	IsTradableFilter  bool     `json:"is_tradable_filter"`
	Page              int      `json:"page,omitempty"`
	ItemsPerPage      int      `json:"items_per_page,omitempty"`
	Limit             int      `json:"suggestion_limit,omitempty"`
}

// perfumeRecord is the wire shape of one perfume row.
type perfumeRecord struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Brand       string   `json:"brand"`
	Gender      string   `json:"gender"`
	Accords     []string `json:"accords"`
	TopNotes    []string `json:"top_notes"`
	MiddleNotes []string `json:"middle_notes"`
	BaseNotes   []string `json:"base_notes"`
	ImageURLs   []string `json:"image_urls"`
	IsTradable  bool     `json:"is_tradable"`
	LikeCount   int      `json:"like_count"`
}

// pageResponse is the result shape of the filter RPC.
type pageResponse struct {
	Data      []perfumeRecord `json:"data"`
	TotalPage int             `json:"totalPage"`
}

// FilterPerfumes calls the paged filter RPC.
func (c *Client) FilterPerfumes(ctx context.Context, params rpcFilterParams) (*pageResponse, error) {
	var resp pageResponse
	if err := c.rpc(ctx, rpcFilterPerfumes, params, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// CountPerfumes calls the count RPC, which returns a bare integer.
func (c *Client) CountPerfumes(ctx context.Context, params rpcFilterParams) (int, error) {
	var count int
	if err := c.rpc(ctx, rpcCountPerfumes, params, &count); err != nil {
		return 0, err
	}
	return count, nil
}

// SuggestPerfumes calls the suggestion RPC, which returns a ranked array.
func (c *Client) SuggestPerfumes(ctx context.Context, params rpcFilterParams) ([]perfumeRecord, error) {
	var records []perfumeRecord
	if err := c.rpc(ctx, rpcSuggestPerfumes, params, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// rpc posts params to /rest/v1/rpc/<fn> and decodes the response into out.
func (c *Client) rpc(ctx context.Context, fn string, params rpcFilterParams, out interface{}) error {
	if c.anonKey == "" {
		return errors.New("anon key is not configured")
	}

	reqBody, err := json.Marshal(params)
	if err != nil {
		return fmt.Errorf("failed to marshal params: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		c.baseURL+"/rest/v1/rpc/"+fn,
		bytes.NewReader(reqBody),
	)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("apikey", c.anonKey)
	httpReq.Header.Set("Authorization", "Bearer "+c.anonKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("backend returned status %d: %s", resp.StatusCode, string(body))
	}

	if decodeErr := json.NewDecoder(resp.Body).Decode(out); decodeErr != nil {
		return fmt.Errorf("failed to decode response: %w", decodeErr)
	}

	return nil
}
