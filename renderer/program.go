package renderer

import (
	"errors"
	"fmt"
	"strings"

	gl "github.com/go-gl/gl/v3.3-core/gl"
)

// newProgram compiles and links a vertex/fragment pair. The program handle is
// returned even when a stage fails to compile or the link fails; the error
// collects the driver info logs for every failure.
func newProgram(vertexShaderSource, fragmentShaderSource string, attribs map[uint32]string) (uint32, error) {
	var errs []error

	vertexShader, err := compileShader(vertexShaderSource, gl.VERTEX_SHADER)
	if err != nil {
		errs = append(errs, fmt.Errorf("vertex shader: %w", err))
	}
	fragmentShader, err := compileShader(fragmentShaderSource, gl.FRAGMENT_SHADER)
	if err != nil {
		errs = append(errs, fmt.Errorf("fragment shader: %w", err))
	}

	program := gl.CreateProgram()
	gl.AttachShader(program, vertexShader)
	gl.AttachShader(program, fragmentShader)
	for location, name := range attribs {
		gl.BindAttribLocation(program, location, gl.Str(name+"\x00"))
	}
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(log))
		errs = append(errs, fmt.Errorf("failed to link program: %v", trimInfoLog(log)))
	}

	gl.DeleteShader(vertexShader)
	gl.DeleteShader(fragmentShader)

	return program, errors.Join(errs...)
}

// compileShader returns the shader object even when compilation fails.
func compileShader(source string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
		logText := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(logText))
		return shader, fmt.Errorf("failed to compile shader: %v", trimInfoLog(logText))
	}
	return shader, nil
}

// trimInfoLog drops the NUL padding and trailing newlines of a driver info log.
func trimInfoLog(log string) string {
	if i := strings.IndexByte(log, 0); i >= 0 {
		log = log[:i]
	}
	return strings.TrimRight(log, "\r\n ")
}
