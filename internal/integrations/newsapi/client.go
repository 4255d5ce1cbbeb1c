// Package newsapi fetches recent AI news from NewsAPI.org and caches it per
// category.
package newsapi

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/go-resty/resty/v2"
	lru "github.com/hashicorp/golang-lru"

	"portfolio-assistant/internal/integrations/paramstore"
)

const (
	DefaultBaseURL  = "https://newsapi.org/v2"
	DefaultCacheTTL = 10 * time.Minute

	tokenParameter = "news-token"
	pageSize       = "20"
	trendingCount  = 2
	defaultRead    = 3
	removedURL     = "https://removed.com"
)

var (
	ErrNoAPIKey        = errors.New("newsapi: no api key configured")
	ErrUnknownCategory = errors.New("newsapi: unknown category")
)

type Category string

const (
	CategoryAll      Category = "all"
	CategoryML       Category = "ml"
	CategoryLLM      Category = "llm"
	CategoryResearch Category = "research"
)

var queries = map[Category]string{
	CategoryAll:      "artificial intelligence OR AI OR machine learning OR deep learning OR neural networks OR GPT OR OpenAI OR AI news OR AI blog OR AI development",
	CategoryML:       "machine learning OR neural networks OR deep learning OR computer vision OR natural language processing OR supervised learning OR unsupervised learning",
	CategoryLLM:      "GPT OR ChatGPT OR OpenAI OR large language model OR LLM OR Anthropic OR Claude OR Gemini OR transformer OR generative AI",
	CategoryResearch: "AI research OR artificial intelligence research OR machine learning paper OR AI breakthrough OR AI study OR AI innovation OR AI publication",
}

// ParseCategory maps a query value to a Category. Empty means all.
func ParseCategory(s string) (Category, error) {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	if c == "" {
		return CategoryAll, nil
	}
	if _, ok := queries[c]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownCategory, s)
	}
	return c, nil
}

type Article struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	URL         string `json:"url"`
	PublishedAt string `json:"publishedAt"`
	Source      string `json:"source"`
	Category    string `json:"category"`
	ReadTime    int    `json:"readTime"`
	Trending    bool   `json:"trending,omitempty"`
}

type Feed struct {
	Category  Category  `json:"category"`
	Articles  []Article `json:"articles"`
	FetchedAt time.Time `json:"fetchedAt"`
}

type everythingResponse struct {
	Status   string       `json:"status"`
	Code     string       `json:"code"`
	Message  string       `json:"message"`
	Articles []rawArticle `json:"articles"`
}

type rawArticle struct {
	Source struct {
		Name string `json:"name"`
	} `json:"source"`
	Title       string `json:"title"`
	Description string `json:"description"`
	URL         string `json:"url"`
	PublishedAt string `json:"publishedAt"`
}

// StatusError is a failed NewsAPI call.
type StatusError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("newsapi: status %d (%s): %s", e.StatusCode, e.Code, e.Message)
}

func (e *StatusError) HTTPStatusCode() int { return e.StatusCode }

type cached struct {
	feed Feed
}

type Client struct {
	http   *resty.Client
	getter paramstore.Getter
	ttl    time.Duration
	cache  *lru.Cache

	mu     sync.Mutex
	apiKey string
}

type Option func(*Client)

func WithBaseURL(u string) Option {
	return func(c *Client) {
		if u = strings.TrimSpace(u); u != "" {
			c.http.SetBaseURL(strings.TrimRight(u, "/"))
		}
	}
}

func WithAPIKey(key string) Option {
	return func(c *Client) { c.apiKey = strings.TrimSpace(key) }
}

func WithParamStore(g paramstore.Getter) Option {
	return func(c *Client) { c.getter = g }
}

// WithCacheTTL sets how long a category stays cached. Zero or less disables
// the cache.
func WithCacheTTL(ttl time.Duration) Option {
	return func(c *Client) { c.ttl = ttl }
}

func NewClient(opts ...Option) (*Client, error) {
	cache, err := lru.New(len(queries))
	if err != nil {
		return nil, fmt.Errorf("newsapi: new cache: %w", err)
	}
	c := &Client{
		http: resty.New().
			SetBaseURL(DefaultBaseURL).
			SetTimeout(10*time.Second).
			SetHeader("User-Agent", "portfolio-assistant/1.0"),
		ttl:   DefaultCacheTTL,
		cache: cache,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Latest returns the newest articles for category, served from cache while
// fresh.
func (c *Client) Latest(ctx context.Context, category Category) (Feed, error) {
	q, ok := queries[category]
	if !ok {
		return Feed{}, fmt.Errorf("%w: %q", ErrUnknownCategory, category)
	}
	if c.ttl > 0 {
		if v, ok := c.cache.Get(category); ok {
			entry := v.(cached)
			if now().Sub(entry.feed.FetchedAt) < c.ttl {
				return entry.feed, nil
			}
		}
	}

	key, err := c.resolveKey(ctx)
	if err != nil {
		return Feed{}, err
	}

	var body everythingResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("X-Api-Key", key).
		SetQueryParams(map[string]string{
			"q":        q,
			"language": "en",
			"sortBy":   "publishedAt",
			"pageSize": pageSize,
		}).
		SetResult(&body).
		SetError(&body).
		Get("/everything")
	if err != nil {
		return Feed{}, fmt.Errorf("newsapi: request failed: %w", err)
	}
	if resp.IsError() || body.Status != "ok" {
		return Feed{}, &StatusError{StatusCode: resp.StatusCode(), Code: body.Code, Message: body.Message}
	}

	feed := Feed{Category: category, FetchedAt: now()}
	feed.Articles = articles(body.Articles, category, feed.FetchedAt)
	if c.ttl > 0 {
		c.cache.Add(category, cached{feed: feed})
	}
	return feed, nil
}

func (c *Client) resolveKey(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.apiKey != "" {
		return c.apiKey, nil
	}
	if c.getter == nil {
		return "", ErrNoAPIKey
	}
	key, err := paramstore.Token(ctx, c.getter, tokenParameter)
	if errors.Is(err, paramstore.ErrNotFound) {
		return "", fmt.Errorf("%w: %v", ErrNoAPIKey, err)
	}
	if err != nil {
		return "", fmt.Errorf("newsapi: fetch api key: %w", err)
	}
	c.apiKey = key
	return key, nil
}

// articles drops removed or incomplete items. The first two survivors are
// marked trending.
func articles(raw []rawArticle, category Category, at time.Time) []Article {
	label := string(category)
	if category == CategoryAll {
		label = "ai"
	}
	out := make([]Article, 0, len(raw))
	for _, a := range raw {
		if a.Title == "" || a.Description == "" || a.URL == "" ||
			strings.Contains(a.Title, "[Removed]") || a.URL == removedURL {
			continue
		}
		source := a.Source.Name
		if source == "" {
			source = "Unknown Source"
		}
		i := len(out)
		out = append(out, Article{
			ID:          fmt.Sprintf("%d-%d", at.UnixMilli(), i),
			Title:       a.Title,
			Description: a.Description,
			URL:         a.URL,
			PublishedAt: a.PublishedAt,
			Source:      source,
			Category:    label,
			ReadTime:    readTime(a.Description),
			Trending:    i < trendingCount,
		})
	}
	return out
}

// readTime is minutes at roughly 200 characters a minute.
func readTime(desc string) int {
	n := utf8.RuneCountInString(desc)
	if n == 0 {
		return defaultRead
	}
	return (n + 199) / 200
}

var now = func() time.Time { return time.Now().UTC() }
