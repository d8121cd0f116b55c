package scale

import (
	"testing"

	"github.com/mvolt/ascend/internal/config"
)

func TestFactorsAtBaseResolution(t *testing.T) {
	p := NewProvider(config.BaseWidth, config.BaseHeight)
	f := p.Factors()
	if f.Width != 1 || f.Height != 1 {
		t.Fatalf("factors at base resolution = %+v, want 1x1", f)
	}
}

func TestFactorsTrackResize(t *testing.T) {
	p := NewProvider(config.BaseWidth, config.BaseHeight)
	p.Resize(config.BaseWidth/2, config.BaseHeight*2)
	f := p.Factors()
	if f.Width != 0.5 || f.Height != 2 {
		t.Fatalf("factors after resize = %+v, want 0.5x2", f)
	}
}

func TestFactorsStayPositive(t *testing.T) {
	p := NewProvider(0, -100)
	f := p.Factors()
	if f.Width <= 0 || f.Height <= 0 {
		t.Fatalf("degenerate canvas produced non-positive factors: %+v", f)
	}
}

func TestFromTerminal(t *testing.T) {
	w, h := FromTerminal(100, 40)
	if w != 100*config.CellPixelWidth || h != 40*config.CellPixelHeight {
		t.Fatalf("FromTerminal(100, 40) = %fx%f", w, h)
	}
}
