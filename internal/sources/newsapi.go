package sources

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/keenanbraz/merch-digest-bot/internal/models"
)

const maxPageSize = 100

type NewsAPIClient struct {
	apiKey     string
	baseURL    string
	queryTerms []string
	client     *http.Client
}

// newsAPIResponse mirrors the upstream article envelope. PublishedAt is
// decoded as a raw string because the upstream occasionally emits
// malformed or absent timestamps; parsing happens per article and a
// failure becomes the zero time rather than a decode error.
type newsAPIResponse struct {
	Status   string `json:"status"`
	Message  string `json:"message"`
	Articles []struct {
		Source struct {
			ID   string `json:"id"`
			Name string `json:"name"`
		} `json:"source"`
		Title       string `json:"title"`
		Description string `json:"description"`
		URL         string `json:"url"`
		PublishedAt string `json:"publishedAt"`
	} `json:"articles"`
}

func NewNewsAPIClient(apiKey, baseURL string, queryTerms []string) *NewsAPIClient {
	if baseURL == "" {
		baseURL = "https://newsapi.org"
	}
	return &NewsAPIClient{
		apiKey:     apiKey,
		baseURL:    strings.TrimRight(baseURL, "/"),
		queryTerms: queryTerms,
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// FetchArticles runs one bounded full-text search for league news
// published since from. The upstream sort and date filter are treated
// as advisory only; the relevance filter re-validates freshness.
func (c *NewsAPIClient) FetchArticles(ctx context.Context, league string, from time.Time) ([]models.Article, error) {
	params := url.Values{}
	params.Set("q", c.buildQuery(league))
	params.Set("language", "en")
	params.Set("sortBy", "publishedAt")
	params.Set("pageSize", strconv.Itoa(maxPageSize))
	params.Set("from", from.UTC().Format(time.RFC3339))
	params.Set("apiKey", c.apiKey)

	endpoint := c.baseURL + "/v2/everything?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("newsapi request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("newsapi read failed: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("newsapi returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var apiResp newsAPIResponse
	if err := json.Unmarshal(body, &apiResp); err != nil {
		return nil, fmt.Errorf("newsapi decode failed: %w", err)
	}

	if apiResp.Status != "ok" {
		return nil, fmt.Errorf("newsapi error: %s", apiResp.Message)
	}

	articles := make([]models.Article, 0, len(apiResp.Articles))
	for _, item := range apiResp.Articles {
		publishedAt, err := time.Parse(time.RFC3339, item.PublishedAt)
		if err != nil {
			publishedAt = time.Time{}
		}

		articles = append(articles, models.Article{
			Title:       item.Title,
			Description: item.Description,
			URL:         item.URL,
			SourceName:  item.Source.Name,
			PublishedAt: publishedAt,
		})
	}

	return articles, nil
}

func (c *NewsAPIClient) buildQuery(league string) string {
	if len(c.queryTerms) == 0 {
		return league
	}
	return fmt.Sprintf("%s AND (%s)", league, strings.Join(c.queryTerms, " OR "))
}

func (c *NewsAPIClient) GetName() string {
	return "newsapi"
}
