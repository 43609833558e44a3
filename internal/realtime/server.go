package realtime

import (
	"fmt"
	"net/http"
	"time"

	"missing-person-tracker/internal/config"
)

// NewServer builds the dedicated websocket listener. Fiber runs on
// fasthttp, which gorilla/websocket cannot upgrade, so this uses net/http.
func NewServer(cfg *config.Config, handler http.Handler) *http.Server {
	mux := http.NewServeMux()
	mux.Handle(cfg.WebSocketPath, handler)

	return &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.WebSocketPort),
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}
}
