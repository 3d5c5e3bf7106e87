package options

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/richinsley/goopengltest/geometry"
)

// Run modes.
const (
	ModeWindow = "window"
	ModeRecord = "record"
	ModeCheck  = "check"
)

type DemoOptions struct {
	Width        *int
	Height       *int
	Title        *string
	Mode         *string
	Shape        *string
	Wireframe    *bool
	SwapInterval *int
	Translate    *bool // Run shaders through the GLSL ES -> GLSL 330 translator before compiling
	Frames       *int  // Number of frames to encode in record mode
	FPS          *int
	OutputFile   *string
	FFMPEGPath   *string
	Help         *bool
}

// NewFlagSet binds a DemoOptions to a new FlagSet with the default values.
func NewFlagSet(name string, output io.Writer) (*flag.FlagSet, *DemoOptions) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(output)

	opts := &DemoOptions{
		Width:        fs.Int("width", 800, "Width of the window or recording"),
		Height:       fs.Int("height", 600, "Height of the window or recording"),
		Title:        fs.String("title", "OpenGL", "Window title"),
		Mode:         fs.String("mode", ModeWindow, "Run mode: window, record or check"),
		Shape:        fs.String("shape", geometry.LetterM.Name, "Shape to draw: m, triangle or quad"),
		Wireframe:    fs.Bool("wireframe", false, "Draw polygons as lines"),
		SwapInterval: fs.Int("swap-interval", 1, "Number of vertical syncs to wait for per frame"),
		Translate:    fs.Bool("translate", true, "Translate GLSL ES shaders to GLSL 330 before compiling"),
		Frames:       fs.Int("frames", 120, "Number of frames to record"),
		FPS:          fs.Int("fps", 60, "Frames per second for recording"),
		OutputFile:   fs.String("output", "output.mp4", "Output file name for recording"),
		FFMPEGPath:   fs.String("ffmpeg", "", "Path to ffmpeg executable"),
		Help:         fs.Bool("help", false, "Show help message"),
	}
	return fs, opts
}

// Parse parses command-line arguments (without the program name).
func Parse(args []string, output io.Writer) (*DemoOptions, error) {
	fs, opts := NewFlagSet("goopengltest", output)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if *opts.Help {
		fmt.Fprintln(output, "OpenGL shape demo")
		fs.PrintDefaults()
		return opts, nil
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return opts, nil
}

func (o *DemoOptions) Validate() error {
	var errs []error
	if *o.Width <= 0 || *o.Height <= 0 {
		errs = append(errs, fmt.Errorf("invalid size %dx%d", *o.Width, *o.Height))
	}
	switch *o.Mode {
	case ModeWindow, ModeCheck:
	case ModeRecord:
		if *o.Frames <= 0 {
			errs = append(errs, fmt.Errorf("frames must be positive, got %d", *o.Frames))
		}
		if *o.FPS <= 0 {
			errs = append(errs, fmt.Errorf("fps must be positive, got %d", *o.FPS))
		}
		if *o.OutputFile == "" {
			errs = append(errs, errors.New("record mode needs an output file"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown mode %q", *o.Mode))
	}
	if *o.SwapInterval < 0 {
		errs = append(errs, fmt.Errorf("swap interval must not be negative, got %d", *o.SwapInterval))
	}
	if _, err := geometry.Lookup(*o.Shape); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}
