package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"
	"os/signal"
	"runtime"

	options "github.com/richinsley/goopengltest/options"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	opts, err := options.Parse(os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		log.Fatalf("Invalid options: %v", err)
	}
	if *opts.Help {
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if *opts.Mode == options.ModeCheck {
		if err := checkShaders(ctx); err != nil {
			log.Fatalf("Shader check failed: %v", err)
		}
		log.Println("Shaders translated successfully")
		return
	}

	if err := run(ctx, opts, defaultPlatform()); err != nil {
		log.Fatalf("%v", err)
	}
}
