package translator

import (
	"context"
	"fmt"
	"sync"

	"github.com/richinsley/goopengltest/shader"
	gst "github.com/richinsley/goshadertranslator"
)

var (
	translator     *gst.ShaderTranslator
	translatorErr  error
	translatorOnce sync.Once
)

// Result is a translated shader ready for a GLSL 3.30 core context.
type Result struct {
	Code string
	// Names maps source-level identifiers to the names used in Code.
	Names map[string]string
}

// MappedName returns the translated name of a source identifier, falling back
// to the identifier itself.
func (r *Result) MappedName(name string) string {
	if mapped, ok := r.Names[name]; ok && mapped != "" {
		return mapped
	}
	return name
}

// GetTranslator returns the shared translator, creating it on first use.
func GetTranslator(ctx context.Context) (*gst.ShaderTranslator, error) {
	translatorOnce.Do(func() {
		translator, translatorErr = gst.NewShaderTranslator(ctx)
	})
	return translator, translatorErr
}

// Translate converts a GLSL ES 3.00 (WebGL2) source into GLSL 3.30.
func Translate(ctx context.Context, source string, stage shader.Stage) (*Result, error) {
	t, err := GetTranslator(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create shader translator: %w", err)
	}
	if t == nil {
		return nil, fmt.Errorf("shader translator unavailable")
	}

	out, err := t.TranslateShader(source, stage.String(), gst.ShaderSpecWebGL2, gst.OutputFormatGLSL330)
	if err != nil {
		return nil, fmt.Errorf("%s shader translation failed: %w", stage, err)
	}

	res := &Result{
		Code:  out.Code,
		Names: make(map[string]string, len(out.Variables)),
	}
	for name, v := range out.Variables {
		res.Names[name] = v.MappedName
	}
	return res, nil
}
