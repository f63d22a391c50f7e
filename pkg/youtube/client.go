// Package youtube wraps the YouTube Data API v3 search endpoint for care
// video recommendations.
package youtube

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/hongik-triple/acnelog_backend/config"
)

const defaultBaseURL = "https://www.googleapis.com/youtube/v3"

// Video is one search hit, flattened to what the app shows.
type Video struct {
	VideoID      string `json:"video_id"`
	Title        string `json:"title"`
	URL          string `json:"url"`
	ChannelTitle string `json:"channel_title"`
	ThumbnailURL string `json:"thumbnail_url"`
}

type Client struct {
	apiKey  string
	baseURL string
	http    *http.Client
}

func New(cfg config.YoutubeConfig) *Client {
	base := cfg.BaseURL
	if base == "" {
		base = defaultBaseURL
	}
	return &Client{
		apiKey:  cfg.APIKey,
		baseURL: base,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

type searchResponse struct {
	Items []struct {
		ID struct {
			VideoID string `json:"videoId"`
		} `json:"id"`
		Snippet struct {
			Title        string `json:"title"`
			ChannelTitle string `json:"channelTitle"`
			Thumbnails   struct {
				High    thumbnail `json:"high"`
				Default thumbnail `json:"default"`
			} `json:"thumbnails"`
		} `json:"snippet"`
	} `json:"items"`
}

type thumbnail struct {
	URL string `json:"url"`
}

// Search runs a video-only snippet search and returns at most maxResults
// hits.
func (c *Client) Search(ctx context.Context, query string, maxResults int) ([]Video, error) {
	if maxResults <= 0 {
		maxResults = 3
	}

	params := url.Values{}
	params.Set("part", "snippet")
	params.Set("q", query)
	params.Set("type", "video")
	params.Set("maxResults", strconv.Itoa(maxResults))
	params.Set("key", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/search?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("youtube: build request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("youtube: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("youtube: unexpected status %d", resp.StatusCode)
	}

	var out searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("youtube: decode response: %w", err)
	}

	videos := make([]Video, 0, len(out.Items))
	for _, item := range out.Items {
		if item.ID.VideoID == "" {
			continue
		}
		thumb := item.Snippet.Thumbnails.High.URL
		if thumb == "" {
			thumb = item.Snippet.Thumbnails.Default.URL
		}
		videos = append(videos, Video{
			VideoID:      item.ID.VideoID,
			Title:        item.Snippet.Title,
			URL:          "https://www.youtube.com/watch?v=" + item.ID.VideoID,
			ChannelTitle: item.Snippet.ChannelTitle,
			ThumbnailURL: thumb,
		})
	}
	return videos, nil
}
