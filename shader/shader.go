package shader

import (
	"fmt"
	"strings"
)

// Stage identifies a programmable pipeline stage.
type Stage int

const (
	Vertex Stage = iota
	Fragment
)

// String returns the stage name understood by the shader translator.
func (s Stage) String() string {
	switch s {
	case Vertex:
		return "vertex"
	case Fragment:
		return "fragment"
	default:
		return fmt.Sprintf("Stage(%d)", int(s))
	}
}

// PositionAttrib is the attribute location the vertex shader reads positions from.
const PositionAttrib = 0

// PositionName is the source-level name of the position attribute.
const PositionName = "aPos"

// ─────────────────────────────────── GLSL ES ────────────────────────────────────

const esVersion = "#version 300 es"

const vertexShaderSourceGLES = `#version 300 es
layout (location = 0) in vec3 aPos;
void main()
{
    gl_Position = vec4(aPos.x, aPos.y, aPos.z, 1.0);
}
`

const fragmentShaderSourceGLES = `#version 300 es
precision mediump float;
out vec4 FragColor;
void main()
{
    FragColor = vec4(1.0, 0.5, 0.2, 1.0);
}
`

// ──────────────────────────────── Desktop GL ────────────────────────────────────

const desktopVersion = "#version 330 core"

// ────────────────────────────────── Public API ─────────────────────────────────

// Source returns the GLSL ES 3.00 source for a stage.
func Source(stage Stage) string {
	if stage == Fragment {
		return fragmentShaderSourceGLES
	}
	return vertexShaderSourceGLES
}

// Desktop rewrites the version directive of a GLSL ES 3.00 source so a desktop
// 3.3 core context accepts it. Precision qualifiers are legal (and ignored) in
// GLSL 3.30, so nothing else needs to change. Sources without the ES directive
// are returned untouched.
func Desktop(source string) string {
	if !strings.HasPrefix(source, esVersion) {
		return source
	}
	return desktopVersion + strings.TrimPrefix(source, esVersion)
}

// DesktopSource returns the GLSL 3.30 core source for a stage.
func DesktopSource(stage Stage) string {
	return Desktop(Source(stage))
}
