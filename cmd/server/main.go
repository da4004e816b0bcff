package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/janpfeifer/MemoryMatch/internal/server"
	"k8s.io/klog/v2"
)

var (
	flagAddr    = flag.String("addr", "", "Address to listen on (default: $MEMORY_ADDR, or auto-port on localhost)")
	flagWebDir  = flag.String("web", "", "Directory with the static assets and app.wasm (default: $MEMORY_WEB_DIR, or ./web)")
	flagEnvFile = flag.String("env", ".env", "Optional .env file with MEMORY_* settings")
)

func main() {
	klog.InitFlags(nil)
	flag.Parse()
	defer klog.Flush()

	cfg, err := server.ConfigFromEnv(*flagEnvFile)
	if err != nil {
		klog.Fatalf("Failed to load configuration: %v", err)
	}
	if *flagAddr != "" {
		cfg.Addr = *flagAddr
	}
	if *flagWebDir != "" {
		cfg.WebDir = *flagWebDir
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	started := make(chan *server.ServerState, 1)
	go func() {
		state := <-started
		fmt.Printf("Memory Match server listening on http://%s\n", state.Address)
	}()

	if err := server.Run(ctx, cfg, started); err != nil {
		klog.Fatal(err)
	}
}
