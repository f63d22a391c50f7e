package youtube

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/hongik-triple/acnelog_backend/config"
)

func TestSearch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("part") != "snippet" || q.Get("type") != "video" {
			t.Errorf("unexpected query params: %v", q)
		}
		if q.Get("q") != "화농성 여드름" {
			t.Errorf("query = %q", q.Get("q"))
		}
		if q.Get("maxResults") != "3" {
			t.Errorf("maxResults = %q, want 3", q.Get("maxResults"))
		}
		if q.Get("key") != "test-key" {
			t.Errorf("key = %q", q.Get("key"))
		}

		w.Write([]byte(`{
			"items": [
				{
					"id": {"videoId": "abc123"},
					"snippet": {
						"title": "케어 루틴",
						"channelTitle": "더마채널",
						"thumbnails": {"high": {"url": "http://img/high.jpg"}, "default": {"url": "http://img/def.jpg"}}
					}
				},
				{
					"id": {"videoId": "def456"},
					"snippet": {
						"title": "no high thumb",
						"channelTitle": "ch",
						"thumbnails": {"default": {"url": "http://img/only-default.jpg"}}
					}
				},
				{
					"id": {},
					"snippet": {"title": "channel result, no video id"}
				}
			]
		}`))
	}))
	defer srv.Close()

	c := New(config.YoutubeConfig{APIKey: "test-key", BaseURL: srv.URL})
	videos, err := c.Search(context.Background(), "화농성 여드름", 3)
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}

	if len(videos) != 2 {
		t.Fatalf("got %d videos, want 2 (items without a videoId are skipped)", len(videos))
	}
	if videos[0].URL != "https://www.youtube.com/watch?v=abc123" {
		t.Errorf("url = %q", videos[0].URL)
	}
	if videos[0].ThumbnailURL != "http://img/high.jpg" {
		t.Errorf("thumbnail = %q, want the high variant", videos[0].ThumbnailURL)
	}
	if videos[1].ThumbnailURL != "http://img/only-default.jpg" {
		t.Errorf("thumbnail = %q, want the default fallback", videos[1].ThumbnailURL)
	}
}

func TestSearch_ErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error": {"code": 403}}`, http.StatusForbidden)
	}))
	defer srv.Close()

	c := New(config.YoutubeConfig{APIKey: "bad", BaseURL: srv.URL})
	if _, err := c.Search(context.Background(), "query", 3); err == nil {
		t.Fatal("expected error on 403 response")
	}
}
