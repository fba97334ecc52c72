package model

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"github.com/google/uuid"

	"pongsim/internal/ai"
)

// Remote is an ai.Provider backed by an inference server over a
// websocket connection. Calls are strictly single-flight: the simulation
// issues at most one inference per tick, so a mutex is enough.
type Remote struct {
	url string
	log *slog.Logger

	mu   sync.Mutex
	conn *websocket.Conn
}

// Dial connects to an inference server (ws://host:port/infer).
func Dial(ctx context.Context, url string, log *slog.Logger) (*Remote, error) {
	conn, _, err := websocket.Dial(ctx, url, nil)
	if err != nil {
		return nil, fmt.Errorf("dial inference server: %w", err)
	}
	return &Remote{url: url, log: log, conn: conn}, nil
}

// Infer sends one request and waits for its response under the caller's
// deadline. Responses for abandoned requests (a previous call that timed
// out) are discarded, never retried.
func (r *Remote) Infer(ctx context.Context, features [ai.FeatureCount]float64) ([ai.OutputCount]float64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var zero [ai.OutputCount]float64
	if r.conn == nil {
		return zero, fmt.Errorf("inference connection closed")
	}

	req := InferRequest{ID: uuid.NewString(), Features: features}
	if err := wsjson.Write(ctx, r.conn, req); err != nil {
		return zero, fmt.Errorf("write inference request: %w", err)
	}

	for {
		var resp InferResponse
		if err := wsjson.Read(ctx, r.conn, &resp); err != nil {
			return zero, fmt.Errorf("read inference response: %w", err)
		}
		if resp.ID != req.ID {
			// Stale answer to a request we gave up on.
			r.log.Debug("discarding stale inference response", "id", resp.ID)
			continue
		}
		if resp.Error != "" {
			return zero, fmt.Errorf("inference server: %s", resp.Error)
		}
		return resp.Output, nil
	}
}

// Close tears down the connection.
func (r *Remote) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.conn == nil {
		return nil
	}
	err := r.conn.Close(websocket.StatusNormalClosure, "client closing")
	r.conn = nil
	return err
}
