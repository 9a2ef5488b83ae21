// Command routeworker serves edge routing over WebSocket. Each message is a
// request frame `[id, payload]`; the payload names an edge style and carries
// the terminal snapshots, and the reply holds the routed waypoints.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/coder/websocket"

	"orthoroute/config"
	"orthoroute/core"
	"orthoroute/log"
	"orthoroute/route"
	"orthoroute/worker"
)

type routeRequest struct {
	Style  core.Style      `json:"style,omitempty"`
	Source *core.CellState `json:"source,omitempty"`
	Target *core.CellState `json:"target,omitempty"`
	Points []*core.Point   `json:"points,omitempty"` // fixed terminal points, null for floating
	Hints  []core.Point    `json:"hints,omitempty"`
	Scale  float64         `json:"scale,omitempty"`
}

// routeHandler folds the configured defaults under the request style, picks
// the connector and runs it.
func routeHandler(defaults core.Style) worker.Handler {
	return func(ctx context.Context, payload json.RawMessage) (any, error) {
		var req routeRequest
		if err := json.Unmarshal(payload, &req); err != nil {
			return nil, fmt.Errorf("decode route request: %w", err)
		}

		style := core.Style{}
		for k, v := range defaults {
			style[k] = v
		}
		for k, v := range req.Style {
			style[k] = v
		}

		points := req.Points
		for len(points) < 2 {
			points = append(points, nil)
		}
		scale := req.Scale
		if scale <= 0 {
			scale = 1
		}
		e := &core.EdgeState{
			AbsolutePoints: points,
			Style:          style,
			Scale:          scale,
		}

		conn := route.For(e, req.Source, req.Target)
		if conn == nil {
			return nil, fmt.Errorf("unknown edge style %q", style.Str(core.KeyEdgeStyle, ""))
		}
		out := conn(e, req.Source, req.Target, req.Hints, nil)
		if out == nil {
			out = []core.Point{}
		}
		return out, nil
	}
}

func wsHandler(handler worker.Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := websocket.Accept(w, r, nil)
		if err != nil {
			slog.Error("websocket accept", "error", err)
			return
		}

		wc := worker.NewWebSocketConn(conn)
		defer wc.Close()

		slog.Info("peer connected", "remote", r.RemoteAddr)
		err = worker.NewServer(wc, handler).Serve(r.Context())
		slog.Info("peer disconnected", "remote", r.RemoteAddr, "reason", err)
	}
}

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "routeworker: %v\n", err)
		os.Exit(1)
	}
	log.Init(cfg.Log)

	mux := http.NewServeMux()
	mux.HandleFunc("/route", wsHandler(routeHandler(cfg.Routing.EdgeStyle())))
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	server := &http.Server{Addr: cfg.Listen, Handler: mux}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		server.Shutdown(shutdownCtx)
	}()

	slog.Info("listening", "addr", cfg.Listen)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		slog.Error("serve", "error", err)
		os.Exit(1)
	}
}
