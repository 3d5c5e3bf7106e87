package main

import (
	"context"
	"fmt"
	"log"

	"github.com/richinsley/goopengltest/glfwcontext"
	"github.com/richinsley/goopengltest/graphics"
	"github.com/richinsley/goopengltest/options"
	"github.com/richinsley/goopengltest/renderer"
)

// app is the part of the renderer the startup sequence drives.
type app interface {
	InitScene(ctx context.Context) error
	Run(ctx context.Context)
	Record(ctx context.Context, options *options.DemoOptions) error
	Shutdown()
}

// platform groups the start-up steps that need a display and a GPU.
type platform struct {
	initGraphics      func() error
	terminateGraphics func()
	newContext        func(opts *options.DemoOptions, visible bool) (graphics.Context, error)
	newApp            func(ctx graphics.Context, opts *options.DemoOptions) (app, error)
}

func defaultPlatform() platform {
	return platform{
		initGraphics:      glfwcontext.InitGraphics,
		terminateGraphics: glfwcontext.TerminateGraphics,
		newContext: func(opts *options.DemoOptions, visible bool) (graphics.Context, error) {
			c, err := glfwcontext.New(opts, visible)
			if err != nil {
				return nil, err
			}
			return c, nil
		},
		newApp: func(ctx graphics.Context, opts *options.DemoOptions) (app, error) {
			r, err := renderer.NewRenderer(ctx, opts)
			if err != nil {
				return nil, err
			}
			return r, nil
		},
	}
}

// run opens the window, sets up the scene and then either runs the interactive
// loop or records frames. Any error it returns is fatal.
func run(ctx context.Context, opts *options.DemoOptions, p platform) error {
	if err := p.initGraphics(); err != nil {
		return fmt.Errorf("failed to initialize GLFW: %w", err)
	}
	defer p.terminateGraphics()

	record := *opts.Mode == options.ModeRecord
	gctx, err := p.newContext(opts, !record)
	if err != nil {
		return err
	}
	defer gctx.Shutdown()

	a, err := p.newApp(gctx, opts)
	if err != nil {
		return err
	}
	defer a.Shutdown()

	if err := a.InitScene(ctx); err != nil {
		return fmt.Errorf("failed to initialize scene: %w", err)
	}

	if record {
		return a.Record(ctx, opts)
	}

	log.Println("Starting interactive render loop...")
	a.Run(ctx)
	return nil
}
