package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/blogdeck/blogdeck/internal/app"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "override blogdeck config path (optional)")
	server := flag.String("server", "", "blog platform server, host:port or URL (optional)")
	tokenPath := flag.String("session", "", "override persisted session path (optional)")
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	opts := app.Options{
		ConfigPath: *configPath,
		Server:     *server,
		TokenPath:  *tokenPath,
	}

	if err := app.Run(ctx, opts); err != nil {
		fmt.Fprintf(os.Stderr, "blogdeck: %v\n", err)
		return 1
	}
	return 0
}
