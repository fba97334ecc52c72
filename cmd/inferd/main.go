// inferd hosts the inference side of the model-provider boundary over
// websocket. It answers with the rule-based brain, which makes it a
// stand-in for a real model server with the exact same wire contract.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"golang.org/x/sync/errgroup"

	"pongsim/internal/ai"
	"pongsim/internal/game"
	"pongsim/internal/model"
)

func main() {
	addr := flag.String("addr", ":7777", "listen address")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, *addr); err != nil {
		slog.Error("server failed", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, addr string) error {
	provider := model.NewRuleProvider(game.DefaultConfig())

	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprintln(w, "ok")
	})
	mux.HandleFunc("/infer", func(w http.ResponseWriter, r *http.Request) {
		conn, err := websocket.Accept(w, r, nil)
		if err != nil {
			slog.Warn("websocket accept failed", "err", err)
			return
		}
		serveConn(r.Context(), conn, provider)
	})

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		slog.Info("inference server listening", "addr", addr)
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	eg.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	return eg.Wait()
}

// serveConn answers inference requests on one connection until the
// client goes away.
func serveConn(ctx context.Context, conn *websocket.Conn, provider ai.Provider) {
	defer conn.Close(websocket.StatusInternalError, "server closing")

	for {
		var req model.InferRequest
		if err := wsjson.Read(ctx, conn, &req); err != nil {
			return
		}

		resp := model.InferResponse{ID: req.ID}
		out, err := provider.Infer(ctx, req.Features)
		if err != nil {
			resp.Error = err.Error()
		} else {
			resp.Output = out
		}

		if err := wsjson.Write(ctx, conn, resp); err != nil {
			return
		}
	}
}
