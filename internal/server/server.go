// Package server exposes tokenization over HTTP: POST /api/lex accepts a
// code blob and returns the classified token list, mirroring what the CLI
// report shows. The server is a thin consumer of the scanning engine; it
// holds no state between requests.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"hybridlex/internal/driver"
	"hybridlex/internal/lexfmt"
)

// LexRequest is the body of POST /api/lex.
type LexRequest struct {
	Code string `json:"code"`
}

// Server serves the lex API on one address.
type Server struct {
	addr string
}

// New creates a server bound to addr (e.g. ":8000").
func New(addr string) *Server {
	return &Server{addr: addr}
}

// Handler builds the route table. Exposed separately so tests can drive the
// handler without a listener.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/lex", methods(handleLex, http.MethodPost))
	mux.HandleFunc("/health", methods(handleHealth, http.MethodGet, http.MethodHead))
	return withCORS(mux)
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	group, ctx := errgroup.WithContext(ctx)
	group.Go(func() error {
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	group.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	return group.Wait()
}

// methods restricts a handler to the given HTTP methods, mirroring the
// "METHOD /path" ServeMux patterns that need Go 1.22+.
func methods(h http.HandlerFunc, allowed ...string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		for _, m := range allowed {
			if r.Method == m {
				h(w, r)
				return
			}
		}
		w.Header().Set("Allow", strings.Join(allowed, ", "))
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
	}
}

func handleLex(w http.ResponseWriter, r *http.Request) {
	var req LexRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	result := driver.TokenizeSource("request", []byte(req.Code))

	// NEWLINE tokens are internal bookkeeping; clients never see them.
	filtered := lexfmt.DropNewlines(result.Tokens)
	out := make([]lexfmt.TokenOutput, 0, len(filtered))
	for _, tok := range filtered {
		out = append(out, lexfmt.ToOutput(tok))
	}
	writeJSON(w, http.StatusOK, out)
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// withCORS answers preflight requests and marks every response as
// cross-origin friendly, so browser editors can call the API directly.
func withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}
