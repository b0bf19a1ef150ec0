package main

import (
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/danielhkuo/live-tally/broadcast"
	"github.com/danielhkuo/live-tally/cliparse"
	"github.com/danielhkuo/live-tally/middleware"
	"github.com/danielhkuo/live-tally/router"
	"github.com/danielhkuo/live-tally/session"
	"github.com/danielhkuo/live-tally/tally"
)

// portRetries bounds how many successive ports to try when the configured
// one is taken. Retrying forever would mask a misconfigured deployment.
const portRetries = 10

func main() {
	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	// Create shared state (alive for the process lifetime)
	store, err := tally.New(cfg.Candidates)
	if err != nil {
		slog.Error("invalid candidate list", "error", err)
		os.Exit(1)
	}
	registry := session.NewRegistry()
	broadcaster := broadcast.New(store, registry)

	// Create router
	mux := router.NewRouter(store, registry, broadcaster)

	// Bind, trying successive ports if the configured one is taken
	var listener net.Listener
	port := cfg.Port
	for i := 0; i < portRetries; i++ {
		listener, err = net.Listen("tcp", ":"+strconv.Itoa(port))
		if err == nil {
			break
		}
		slog.Warn("port unavailable", "port", port, "error", err)
		port++
	}
	if listener == nil {
		slog.Error("no free port found", "first", cfg.Port, "last", port-1)
		os.Exit(1)
	}

	// Create server
	server := http.Server{
		Handler: middleware.CORS(mux),
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		server.Close()
	}()

	// Start server
	slog.Info("Listening", "port", port, "candidates", cfg.Candidates)
	err = server.Serve(listener)
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}
