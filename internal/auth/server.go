// Package auth runs the local HTTP server that receives the API key at
// the end of the browser login flow. The dashboard authenticates the
// user and then redirects the browser here with the key in the query
// string.
package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// CallbackAddr is the address the dashboard redirects to after a
// successful login. The port is fixed because the dashboard has no way
// to discover a dynamic one.
const CallbackAddr = "127.0.0.1:65535"

const successPage = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>Login Success</title>
<link href="https://fonts.googleapis.com/css2?family=Roboto:wght@400;500&display=swap" rel="stylesheet">
<style>body {font-family: 'Roboto', sans-serif; text-align: center; margin-top: 50px;} img {max-width: 200px;} h1, p {margin: 20px 0;}</style>
</head>
<body>
<img src="https://cdn.trieve.ai/trieve-logo.png" alt="Trieve Logo">
<h1>Login Succeeded</h1>
<p>Return to your terminal to continue setup.</p>
</body>
</html>
`

// Server waits for the dashboard to deliver an API key via a browser
// redirect to CallbackAddr.
type Server struct {
	log  *slog.Logger
	ln   net.Listener
	srv  *http.Server
	keys chan string
}

func NewServer(log *slog.Logger) (*Server, error) {
	ln, err := net.Listen("tcp", CallbackAddr)
	if err != nil {
		return nil, fmt.Errorf("couldn't listen at %s, %w", CallbackAddr, err)
	}

	s := &Server{
		log:  log,
		ln:   ln,
		keys: make(chan string, 1),
	}
	s.srv = &http.Server{
		Handler: s.routes(),
	}
	return s, nil
}

func (s *Server) routes() *chi.Mux {
	router := chi.NewRouter()
	// The dashboard may redirect to any path, the apiKey query
	// parameter is all that matters.
	router.Get("/*", s.handleCallback)
	return router
}

// Keys yields the API key extracted from the dashboard redirect.
func (s *Server) Keys() <-chan string {
	return s.keys
}

func (s *Server) Start() error {
	s.log.Debug("waiting for login callback", "bindAddr", CallbackAddr)
	if err := s.srv.Serve(s.ln); !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) {
	if s.srv != nil {
		s.srv.Shutdown(ctx)
	}
}

func (s *Server) handleCallback(w http.ResponseWriter, r *http.Request) {
	apiKey := r.URL.Query().Get("apiKey")
	if apiKey == "" {
		// Browsers also ask for favicons and the like, those requests
		// are not the callback.
		http.Error(w, "missing apiKey query parameter", http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=UTF-8")
	fmt.Fprint(w, successPage)

	select {
	case s.keys <- apiKey:
	default:
	}
}
