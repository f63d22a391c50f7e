package naver

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/hongik-triple/acnelog_backend/config"
)

func TestStripTags(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"<b>여드름</b> 패치", "여드름 패치"},
		{"plain title", "plain title"},
		{"<b>a</b><i>b</i>", "ab"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := stripTags(tt.in); got != tt.want {
			t.Errorf("stripTags(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestSearch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("X-Naver-Client-Id") != "cid" || r.Header.Get("X-Naver-Client-Secret") != "secret" {
			t.Error("missing Naver auth headers")
		}
		q := r.URL.Query()
		if q.Get("sort") != "sim" {
			t.Errorf("sort = %q, want sim", q.Get("sort"))
		}
		if q.Get("display") != "3" {
			t.Errorf("display = %q, want 3", q.Get("display"))
		}

		w.Write([]byte(`{
			"items": [
				{
					"title": "<b>여드름</b> 스팟 패치",
					"link": "https://shop/1",
					"image": "https://img/1.jpg",
					"lprice": "12900",
					"mallName": "몰",
					"productId": "p1",
					"brand": "브랜드",
					"category1": "화장품"
				},
				{
					"title": "free sample",
					"link": "https://shop/2",
					"lprice": "",
					"productId": "p2"
				}
			]
		}`))
	}))
	defer srv.Close()

	c := New(config.NaverConfig{ClientID: "cid", ClientSecret: "secret"})
	c.baseURL = srv.URL

	products, err := c.Search(context.Background(), "여드름", 3)
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}

	if len(products) != 2 {
		t.Fatalf("got %d products, want 2", len(products))
	}
	if products[0].Name != "여드름 스팟 패치" {
		t.Errorf("name = %q, highlight tags must be stripped", products[0].Name)
	}
	if products[0].Price != 12900 {
		t.Errorf("price = %d, want 12900", products[0].Price)
	}
	if products[1].Price != 0 {
		t.Errorf("unparseable lprice should yield 0, got %d", products[1].Price)
	}
}

func TestSearch_ErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"errorCode": "024"}`, http.StatusUnauthorized)
	}))
	defer srv.Close()

	c := New(config.NaverConfig{})
	c.baseURL = srv.URL

	if _, err := c.Search(context.Background(), "여드름", 3); err == nil {
		t.Fatal("expected error on 401 response")
	}
}
