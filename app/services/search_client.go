package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"regexp"
	"strings"

	"github.com/Rakhulsr/go-catalog/app/configs"
)

var whitespace = regexp.MustCompile(`\s+`)

func collapseSpaces(s string) string {
	return strings.TrimSpace(whitespace.ReplaceAllString(s, " "))
}

type SearchResult struct {
	Description string
	ImageURL    string
}

// ProductSearcher looks a product up on the web. A nil result means nothing
// usable was found.
type ProductSearcher interface {
	Search(ctx context.Context, query string) (*SearchResult, error)
}

type searchItem struct {
	Title   string `json:"title"`
	Link    string `json:"link"`
	Snippet string `json:"snippet"`
}

type searchResponse struct {
	Items []searchItem `json:"items"`
}

type googleSearchClient struct {
	api *apiClient
	cfg configs.SearchAPIConfig
}

func NewGoogleSearchClient(cfg configs.SearchAPIConfig) ProductSearcher {
	return &googleSearchClient{
		api: newAPIClient("google search", cfg.BaseURL, nil),
		cfg: cfg,
	}
}

func (c *googleSearchClient) query(ctx context.Context, q string, image bool) ([]searchItem, error) {
	params := url.Values{}
	params.Set("key", c.cfg.APIKey)
	params.Set("cx", c.cfg.EngineID)
	params.Set("q", q)
	params.Set("num", "5")
	params.Set("safe", "active")
	if image {
		params.Set("searchType", "image")
		params.Set("imgSize", "large")
	} else {
		params.Set("lr", "lang_fr")
	}

	body, err := c.api.doRequest(ctx, http.MethodGet, "?"+params.Encode(), nil, "")
	if err != nil {
		return nil, err
	}

	var resp searchResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("google search: failed to parse response: %w", err)
	}
	return resp.Items, nil
}

func (c *googleSearchClient) Search(ctx context.Context, q string) (*SearchResult, error) {
	if !c.cfg.Enabled() {
		log.Println("googleSearchClient.Search: search API not configured")
		return nil, nil
	}

	textItems, err := c.query(ctx, q, false)
	if err != nil {
		return nil, err
	}
	imageItems, err := c.query(ctx, q, true)
	if err != nil {
		return nil, err
	}

	result := &SearchResult{
		Description: snippetText(textItems),
		ImageURL:    firstProductImage(imageItems),
	}
	if result.Description == "" && result.ImageURL == "" {
		return nil, nil
	}
	return result, nil
}

// snippetText joins the substantial snippets of the top three results.
func snippetText(items []searchItem) string {
	if len(items) > 3 {
		items = items[:3]
	}
	var parts []string
	for _, item := range items {
		if len(item.Snippet) > 50 {
			parts = append(parts, item.Snippet)
		}
	}
	return collapseSpaces(strings.Join(parts, " "))
}

func firstProductImage(items []searchItem) string {
	for _, item := range items {
		if item.Link == "" || strings.Contains(item.Link, "logo") {
			continue
		}
		if strings.Contains(strings.ToLower(item.Title), "logo") {
			continue
		}
		return item.Link
	}
	return ""
}
