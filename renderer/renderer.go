package renderer

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"

	gl "github.com/go-gl/gl/v3.3-core/gl"
	"github.com/richinsley/goopengltest/geometry"
	"github.com/richinsley/goopengltest/graphics"
	"github.com/richinsley/goopengltest/options"
	"github.com/richinsley/goopengltest/shader"
	"github.com/richinsley/goopengltest/translator"
)

// ErrGLInit is returned when the OpenGL function pointers cannot be loaded.
var ErrGLInit = errors.New("failed to initialize OpenGL")

// ClearColor is the background colour of every frame.
var ClearColor = [4]float32{0.2, 0.3, 0.3, 1.0}

var (
	glInitOnce sync.Once
	glInitErr  error
)

// translateSource and buildProgram are swapped out in tests.
var (
	translateSource = translator.Translate
	buildProgram    = newProgram
)

type Renderer struct {
	context    graphics.Context
	program    uint32
	meshes     []*gpuMesh
	active     *gpuMesh
	offscreen  *OffscreenTarget
	width      int
	height     int
	shape      string
	wireframe  bool
	translate  bool
	frameCount int64
}

func NewRenderer(ctx graphics.Context, opts *options.DemoOptions) (*Renderer, error) {
	r := &Renderer{
		context:   ctx,
		width:     *opts.Width,
		height:    *opts.Height,
		shape:     *opts.Shape,
		wireframe: *opts.Wireframe,
		translate: *opts.Translate,
	}

	// Make the context current BEFORE loading the OpenGL entry points.
	r.context.MakeCurrent()

	glInitOnce.Do(func() {
		glInitErr = gl.InitWithProcAddrFunc(r.context.ProcAddress)
	})
	if glInitErr != nil {
		return nil, fmt.Errorf("%w: %v", ErrGLInit, glInitErr)
	}

	log.Printf("OpenGL version: %s", gl.GoStr(gl.GetString(gl.VERSION)))
	log.Printf("OpenGL renderer: %s", gl.GoStr(gl.GetString(gl.RENDERER)))
	return r, nil
}

// shaderSources is the vertex/fragment pair handed to the GL compiler, plus
// the name the position attribute ends up with after translation.
type shaderSources struct {
	vertex   string
	fragment string
	position string
}

// resolveSources translates the fixed shaders to GLSL 3.30. When translation is
// disabled or fails, the ES sources are compiled with a desktop version header.
func resolveSources(ctx context.Context, translate bool) shaderSources {
	desktop := shaderSources{
		vertex:   shader.DesktopSource(shader.Vertex),
		fragment: shader.DesktopSource(shader.Fragment),
		position: shader.PositionName,
	}
	if !translate {
		return desktop
	}

	vs, err := translateSource(ctx, shader.Source(shader.Vertex), shader.Vertex)
	if err != nil {
		log.Printf("Shader translation failed, compiling desktop sources: %v", err)
		return desktop
	}
	fs, err := translateSource(ctx, shader.Source(shader.Fragment), shader.Fragment)
	if err != nil {
		log.Printf("Shader translation failed, compiling desktop sources: %v", err)
		return desktop
	}
	return shaderSources{
		vertex:   vs.Code,
		fragment: fs.Code,
		position: vs.MappedName(shader.PositionName),
	}
}

// InitScene builds the shader program and uploads the built-in meshes. Shader
// compile and link failures are logged and the resulting program is used anyway.
func (r *Renderer) InitScene(ctx context.Context) error {
	r.setupProgram(ctx)

	for _, m := range geometry.Builtin() {
		g, err := uploadMesh(m)
		if err != nil {
			return fmt.Errorf("failed to upload mesh %s: %w", m.Name, err)
		}
		r.meshes = append(r.meshes, g)
	}

	selected, err := geometry.Lookup(r.shape)
	if err != nil {
		return err
	}
	for _, g := range r.meshes {
		if g.name == selected.Name {
			r.active = g
		}
	}

	if r.wireframe {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.LINE)
	}

	fbWidth, fbHeight := r.context.GetFramebufferSize()
	gl.Viewport(0, 0, int32(fbWidth), int32(fbHeight))

	log.Printf("Scene ready: drawing %q (%d indices)", r.active.name, r.active.indexCount)
	return nil
}

// setupProgram keeps whatever handle the build produced, even a broken one;
// RenderFrame binds it regardless.
func (r *Renderer) setupProgram(ctx context.Context) {
	src := resolveSources(ctx, r.translate)

	var err error
	r.program, err = buildProgram(src.vertex, src.fragment, map[uint32]string{shader.PositionAttrib: src.position})
	if err != nil {
		log.Printf("Shader program is not usable: %v", err)
	}
}

// RenderFrame clears the bound framebuffer and draws the selected mesh.
func (r *Renderer) RenderFrame() {
	gl.ClearColor(ClearColor[0], ClearColor[1], ClearColor[2], ClearColor[3])
	gl.Clear(gl.COLOR_BUFFER_BIT)

	gl.UseProgram(r.program)
	r.active.draw()
}

// Run drives the interactive render loop until the window is asked to close
// or ctx is cancelled.
func (r *Renderer) Run(ctx context.Context) {
	startTime := r.context.Time()
	r.frameCount += renderLoop(ctx, r.context, r.RenderFrame)

	elapsed := r.context.Time() - startTime
	if elapsed > 0 {
		log.Printf("Rendered %d frames in %.2fs (%.1f fps)", r.frameCount, elapsed, float64(r.frameCount)/elapsed)
	}
}

// renderLoop polls input, draws and presents one frame per iteration and
// returns the number of frames presented.
func renderLoop(ctx context.Context, c graphics.Context, draw func()) int64 {
	var frames int64
	for !c.ShouldClose() {
		if ctx.Err() != nil {
			log.Printf("Render loop interrupted: %v", context.Cause(ctx))
			break
		}
		c.ProcessInput()
		draw()
		c.EndFrame()
		frames++
	}
	return frames
}

func (r *Renderer) Shutdown() {
	for _, g := range r.meshes {
		g.destroy()
	}
	r.meshes = nil
	r.active = nil
	if r.program != 0 {
		gl.DeleteProgram(r.program)
		r.program = 0
	}
	if r.offscreen != nil {
		r.offscreen.Destroy()
		r.offscreen = nil
	}
}
