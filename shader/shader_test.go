package shader

import (
	"strings"
	"testing"
)

func TestStageString(t *testing.T) {
	if Vertex.String() != "vertex" {
		t.Errorf("expected vertex, got %s", Vertex.String())
	}
	if Fragment.String() != "fragment" {
		t.Errorf("expected fragment, got %s", Fragment.String())
	}
	if got := Stage(7).String(); got != "Stage(7)" {
		t.Errorf("unexpected string for unknown stage: %s", got)
	}
}

func TestSourcesAreES(t *testing.T) {
	for _, stage := range []Stage{Vertex, Fragment} {
		if !strings.HasPrefix(Source(stage), "#version 300 es\n") {
			t.Errorf("%s source does not start with the ES directive", stage)
		}
	}
	if !strings.Contains(Source(Vertex), "layout (location = 0) in vec3 aPos;") {
		t.Error("vertex shader does not read aPos at location 0")
	}
	if !strings.Contains(Source(Fragment), "vec4(1.0, 0.5, 0.2, 1.0)") {
		t.Error("fragment shader does not output the fixed orange colour")
	}
}

func TestDesktop(t *testing.T) {
	got := DesktopSource(Fragment)
	if !strings.HasPrefix(got, "#version 330 core\n") {
		t.Errorf("expected 330 core directive, got %q", strings.SplitN(got, "\n", 2)[0])
	}
	if strings.Contains(got, "300 es") {
		t.Error("ES directive survived the rewrite")
	}
	if !strings.HasSuffix(got, strings.TrimPrefix(Source(Fragment), "#version 300 es")) {
		t.Error("shader body changed during the rewrite")
	}
}

func TestDesktopLeavesOtherSourcesAlone(t *testing.T) {
	src := "#version 410 core\nvoid main() {}\n"
	if got := Desktop(src); got != src {
		t.Errorf("expected source to be unchanged, got %q", got)
	}
}
