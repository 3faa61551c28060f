package proxy

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// Server is the pass-through proxy between dashboard clients and the
// upstream rover API. It attaches the api_key on the way out and returns
// upstream JSON verbatim.
type Server struct {
	cfg        Config
	router     chi.Router
	httpServer *http.Server
	upstream   *http.Client
}

const upstreamTimeout = 20 * time.Second

// New creates a proxy server for the given configuration.
func New(cfg Config) *Server {
	s := &Server{
		cfg: cfg,
		upstream: &http.Client{
			Timeout: upstreamTimeout,
		},
	}
	s.router = s.buildRouter()
	return s
}

// buildRouter creates and configures the chi router with all routes.
func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	r.Get("/rovers", s.handleRovers)
	r.Get("/rovers/{name}", s.handleRoverPhotos)

	if s.cfg.AssetsDir != "" {
		assets := http.StripPrefix("/assets/", http.FileServer(http.Dir(s.cfg.AssetsDir)))
		r.Handle("/assets/*", assets)
	}

	// Catch-all returns the dashboard landing page.
	r.NotFound(s.handleIndex)

	return r
}

// Router returns the chi router, mainly for tests.
func (s *Server) Router() chi.Router { return s.router }

// handleRovers proxies the rover manifest request upstream.
func (s *Server) handleRovers(w http.ResponseWriter, r *http.Request) {
	values := url.Values{}
	values.Set("api_key", s.cfg.Key)

	s.forward(w, r, "/rovers?"+values.Encode())
}

// handleRoverPhotos proxies a per-rover photo request, translating the
// client's max_date into the upstream earth_date parameter.
func (s *Server) handleRoverPhotos(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	values := url.Values{}
	if date := strings.TrimSpace(r.URL.Query().Get("max_date")); date != "" {
		values.Set("earth_date", date)
	}
	values.Set("api_key", s.cfg.Key)

	s.forward(w, r, "/rovers/"+url.PathEscape(name)+"/photos?"+values.Encode())
}

// forward performs the upstream GET and streams the response back verbatim.
// Any transport failure collapses to a generic 500 so the api_key and
// upstream details never leak into client-visible errors.
func (s *Server) forward(w http.ResponseWriter, r *http.Request, pathAndQuery string) {
	req, err := http.NewRequestWithContext(r.Context(), http.MethodGet,
		strings.TrimSuffix(s.cfg.Domain, "/")+pathAndQuery, nil)
	if err != nil {
		http.Error(w, "upstream request failed", http.StatusInternalServerError)
		return
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.upstream.Do(req)
	if err != nil {
		log.Printf("proxy: upstream fetch failed: %v", err)
		http.Error(w, "upstream request failed", http.StatusInternalServerError)
		return
	}
	defer func() { _ = resp.Body.Close() }()

	if ct := resp.Header.Get("Content-Type"); ct != "" {
		w.Header().Set("Content-Type", ct)
	}
	w.WriteHeader(resp.StatusCode)
	if _, err := io.Copy(w, resp.Body); err != nil {
		log.Printf("proxy: copy response: %v", err)
	}
}

// handleIndex serves the bundled landing page, falling back to a minimal
// inline page when no assets directory is configured.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if s.cfg.AssetsDir != "" {
		index := filepath.Join(s.cfg.AssetsDir, "index.html")
		http.ServeFile(w, r, index)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(indexFallback))
}

const indexFallback = `<!doctype html>
<html>
<head><title>roverwatch proxy</title></head>
<body>
<h1>roverwatch proxy</h1>
<p>Endpoints: <code>/rovers</code>, <code>/rovers/{name}?max_date=YYYY-MM-DD</code></p>
</body>
</html>
`

// Start begins listening on the configured port.
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.cfg.Port)
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	log.Printf("roverproxyd listening on %s", addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer != nil {
		return s.httpServer.Shutdown(ctx)
	}
	return nil
}
