// Package naver wraps the Naver shopping search API for care product
// recommendations.
package naver

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"time"

	"github.com/hongik-triple/acnelog_backend/config"
)

const defaultBaseURL = "https://openapi.naver.com/v1/search/shop.json"

// Product is one shopping hit, flattened to what the app shows.
type Product struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	URL       string `json:"url"`
	Price     int    `json:"price"`
	ImageURL  string `json:"image_url"`
	Category  string `json:"category"`
	MallName  string `json:"mall_name"`
	Brand     string `json:"brand"`
}

type Client struct {
	clientID     string
	clientSecret string
	baseURL      string
	http         *http.Client
}

func New(cfg config.NaverConfig) *Client {
	return &Client{
		clientID:     cfg.ClientID,
		clientSecret: cfg.ClientSecret,
		baseURL:      defaultBaseURL,
		http:         &http.Client{Timeout: 10 * time.Second},
	}
}

type searchResponse struct {
	Items []struct {
		Title     string `json:"title"`
		Link      string `json:"link"`
		Image     string `json:"image"`
		LPrice    string `json:"lprice"`
		MallName  string `json:"mallName"`
		ProductID string `json:"productId"`
		Brand     string `json:"brand"`
		Category1 string `json:"category1"`
	} `json:"items"`
}

var tagPattern = regexp.MustCompile(`<[^>]+>`)

// Search queries the shopping API sorted by similarity and returns at most
// display products. Product titles arrive with <b> highlight tags which are
// stripped before display.
func (c *Client) Search(ctx context.Context, query string, display int) ([]Product, error) {
	if display <= 0 {
		display = 3
	}

	params := url.Values{}
	params.Set("query", query)
	params.Set("display", strconv.Itoa(display))
	params.Set("sort", "sim")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("naver: build request: %w", err)
	}
	req.Header.Set("X-Naver-Client-Id", c.clientID)
	req.Header.Set("X-Naver-Client-Secret", c.clientSecret)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("naver: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("naver: unexpected status %d", resp.StatusCode)
	}

	var out searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("naver: decode response: %w", err)
	}

	products := make([]Product, 0, len(out.Items))
	for _, item := range out.Items {
		price, _ := strconv.Atoi(item.LPrice)
		products = append(products, Product{
			ProductID: item.ProductID,
			Name:      stripTags(item.Title),
			URL:       item.Link,
			Price:     price,
			ImageURL:  item.Image,
			Category:  item.Category1,
			MallName:  item.MallName,
			Brand:     item.Brand,
		})
	}
	return products, nil
}

func stripTags(s string) string {
	return tagPattern.ReplaceAllString(s, "")
}
