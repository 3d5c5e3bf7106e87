package renderer

import (
	"context"
	"fmt"
	"io"
	"log"
	"time"

	"github.com/richinsley/goopengltest/options"
	ffmpeg "github.com/u2takey/ffmpeg-go"
)

// getArgs builds the ffmpeg arguments for raw RGBA frames read bottom-up from OpenGL.
func getArgs(options *options.DemoOptions) (inputArgs ffmpeg.KwArgs, outputArgs ffmpeg.KwArgs) {
	inputArgs = ffmpeg.KwArgs{
		"f":       "rawvideo",
		"pix_fmt": "rgba",
		"s":       fmt.Sprintf("%dx%d", *options.Width, *options.Height),
		"r":       *options.FPS,
	}
	outputArgs = ffmpeg.KwArgs{
		"vf":      "vflip",
		"c:v":     "libx264",
		"pix_fmt": "yuv420p",
	}
	return inputArgs, outputArgs
}

func newEncoderCommand(options *options.DemoOptions, input io.Reader) *ffmpeg.Stream {
	inputArgs, outputArgs := getArgs(options)
	cmd := ffmpeg.Input("pipe:", inputArgs).
		Output(*options.OutputFile, outputArgs).
		OverWriteOutput().WithInput(input).ErrorToStdOut()
	if *options.FFMPEGPath != "" {
		cmd = cmd.SetFfmpegPath(*options.FFMPEGPath)
	}
	return cmd
}

// Record renders a fixed number of frames offscreen and encodes them with ffmpeg.
func (r *Renderer) Record(ctx context.Context, options *options.DemoOptions) error {
	target, err := NewOffscreenTarget(r.width, r.height)
	if err != nil {
		return fmt.Errorf("failed to create offscreen target: %w", err)
	}
	r.offscreen = target

	pipeReader, pipeWriter := io.Pipe()
	cmd := newEncoderCommand(options, pipeReader)

	errc := make(chan error, 1)
	go func() {
		err := cmd.Run()
		// Unblock the writer if ffmpeg exits early.
		pipeReader.CloseWithError(err)
		errc <- err
	}()

	log.Printf("Recording %d frames at %d fps to %s", *options.Frames, *options.FPS, *options.OutputFile)
	start := time.Now()
	for i := 0; i < *options.Frames; i++ {
		if err := ctx.Err(); err != nil {
			pipeWriter.CloseWithError(err)
			<-errc
			return err
		}

		target.Bind()
		r.RenderFrame()
		pixels := target.ReadPixels()
		target.Unbind()
		r.frameCount++

		if _, err := pipeWriter.Write(pixels); err != nil {
			pipeWriter.CloseWithError(err)
			if ffErr := <-errc; ffErr != nil {
				return fmt.Errorf("ffmpeg exited early: %w", ffErr)
			}
			return fmt.Errorf("failed to write frame %d to ffmpeg: %w", i, err)
		}
	}

	pipeWriter.Close()
	if err := <-errc; err != nil {
		return fmt.Errorf("ffmpeg failed: %w", err)
	}
	log.Printf("Recorded %d frames in %s", *options.Frames, time.Since(start).Round(time.Millisecond))
	return nil
}
