package nasa

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"
)

func TestParseBaseURL_DefaultsAndNormalizes(t *testing.T) {
	u, err := parseBaseURL("")
	if err != nil {
		t.Fatalf("parseBaseURL returned error: %v", err)
	}
	if u.Scheme != "http" {
		t.Fatalf("scheme = %q, want http", u.Scheme)
	}
	if u.Host != defaultAPIServer {
		t.Fatalf("host = %q, want %q", u.Host, defaultAPIServer)
	}

	u, err = parseBaseURL("http://example.com:1234/path?x=1#frag")
	if err != nil {
		t.Fatalf("parseBaseURL returned error: %v", err)
	}
	if u.Path != "" || u.RawQuery != "" || u.Fragment != "" {
		t.Fatalf("url not normalized: %q", u.String())
	}
}

func TestClient_FetchesEndpointsAndEncodesQueries(t *testing.T) {
	t.Parallel()

	var gotPhotosPath string
	var gotPhotosQuery url.Values
	var gotUserAgent string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserAgent = r.Header.Get("User-Agent")
		w.Header().Set("Content-Type", "application/json")

		switch {
		case r.URL.Path == "/rovers":
			_ = json.NewEncoder(w).Encode(RoverListResponse{Rovers: []Rover{
				{Name: "Curiosity", Status: "active", MaxDate: "2024-02-19"},
			}})
		case strings.HasPrefix(r.URL.Path, "/rovers/"):
			gotPhotosPath = r.URL.Path
			gotPhotosQuery = r.URL.Query()
			_ = json.NewEncoder(w).Encode(Gallery{Photos: []Photo{
				{ImgSrc: "https://mars/img1.jpg", EarthDate: "2024-02-19"},
			}})
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	t.Cleanup(cancel)

	rovers, err := c.FetchRovers(ctx)
	if err != nil {
		t.Fatalf("FetchRovers returned error: %v", err)
	}
	if len(rovers) != 1 || rovers[0].Name != "Curiosity" {
		t.Fatalf("FetchRovers payload = %#v, want 1 rover Curiosity", rovers)
	}

	gallery, err := c.FetchPhotos(ctx, "Curiosity", "2024-02-19")
	if err != nil {
		t.Fatalf("FetchPhotos returned error: %v", err)
	}
	if len(gallery.Photos) != 1 || gallery.Photos[0].ImgSrc != "https://mars/img1.jpg" {
		t.Fatalf("FetchPhotos payload = %#v, want 1 photo", gallery.Photos)
	}
	if gotPhotosPath != "/rovers/Curiosity" {
		t.Fatalf("photos path = %q, want /rovers/Curiosity", gotPhotosPath)
	}
	if gotPhotosQuery.Get("max_date") != "2024-02-19" {
		t.Fatalf("photos query = %v, want max_date encoded", gotPhotosQuery)
	}

	if gotUserAgent == "" || !strings.HasPrefix(gotUserAgent, "roverwatch/") {
		t.Fatalf("User-Agent = %q, want roverwatch/*", gotUserAgent)
	}
}

func TestClient_FetchPhotosRequiresRoverName(t *testing.T) {
	c, err := NewClient("127.0.0.1:1")
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	_, err = c.FetchPhotos(context.Background(), "  ", "2024-02-19")
	if err == nil {
		t.Fatalf("FetchPhotos returned nil error, want error")
	}
}

func TestClient_HTTPErrorAndDecodeError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == "/rovers":
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte("{not-json"))
		case strings.HasPrefix(r.URL.Path, "/rovers/"):
			http.Error(w, "nope", http.StatusInternalServerError)
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	_, err = c.FetchRovers(context.Background())
	if err == nil || !strings.Contains(err.Error(), "decode response") {
		t.Fatalf("FetchRovers error = %v, want decode response error", err)
	}

	_, err = c.FetchPhotos(context.Background(), "Spirit", "")
	if err == nil || !strings.Contains(err.Error(), "returned status 500") {
		t.Fatalf("FetchPhotos error = %v, want status 500 error", err)
	}
}
