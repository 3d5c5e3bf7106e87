package main

import (
	"context"
	"errors"
	"log"

	"github.com/richinsley/goopengltest/shader"
	"github.com/richinsley/goopengltest/translator"
)

var translateSource = translator.Translate

// checkShaders runs both fixed shaders through the translator without opening
// a window, so shader errors surface on machines without a GPU.
func checkShaders(ctx context.Context) error {
	var errs []error
	for _, stage := range []shader.Stage{shader.Vertex, shader.Fragment} {
		res, err := translateSource(ctx, shader.Source(stage), stage)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		log.Printf("%s shader: %d bytes of GLSL 330", stage, len(res.Code))
	}
	return errors.Join(errs...)
}
