package canvas

import (
	"testing"

	"github.com/go-loom/loom/pkg/geometry"
)

func TestListCanvasRecordsOps(t *testing.T) {
	c := NewListCanvas(geometry.Sz(100, 100))
	c.Fill(geometry.RectFromSize(geometry.Sz(10, 10)), Paint{Color: Black})
	c.Transform(geometry.Translate(geometry.Off(5, 5)), func(inner Canvas) {
		inner.Fill(geometry.RectFromSize(geometry.Sz(2, 2)), Paint{Color: White})
	})

	ops := c.List().Ops()
	if len(ops) != 2 {
		t.Fatalf("expected 2 ops, got %d", len(ops))
	}
	tr, ok := ops[1].(OpTransform)
	if !ok {
		t.Fatalf("expected OpTransform, got %T", ops[1])
	}
	if len(tr.Inner) != 1 {
		t.Fatalf("expected 1 inner op, got %d", len(tr.Inner))
	}
}

func TestDisplayListReplay(t *testing.T) {
	c := NewListCanvas(geometry.Sz(100, 100))
	c.Fill(geometry.RectFromSize(geometry.Sz(10, 10)), Paint{Color: Black})
	c.Clip(Clip{Rect: geometry.RectFromSize(geometry.Sz(5, 5))}, func(inner Canvas) {
		inner.Fill(geometry.RectFromSize(geometry.Sz(1, 1)), Paint{Color: White})
	})
	list := c.List()

	target := NewListCanvas(geometry.Sz(100, 100))
	list.Replay(target)

	got := target.List().Ops()
	if len(got) != 2 {
		t.Fatalf("expected 2 replayed ops, got %d", len(got))
	}
	if _, ok := got[1].(OpClip); !ok {
		t.Fatalf("expected OpClip, got %T", got[1])
	}
}

func TestRecordComputesMemory(t *testing.T) {
	c := NewListCanvas(geometry.Sz(100, 100))
	rec := c.Record(geometry.Sz(32, 16), 2, func(inner Canvas) {
		inner.Fill(geometry.RectFromSize(geometry.Sz(32, 16)), Paint{Color: Black})
	})

	if rec.Width != 64 || rec.Height != 32 {
		t.Fatalf("device size: got %dx%d", rec.Width, rec.Height)
	}
	if rec.Memory != 64*32*4 {
		t.Fatalf("memory estimate: got %d", rec.Memory)
	}
	if _, ok := rec.Payload.(*DisplayList); !ok {
		t.Fatalf("payload should be a display list, got %T", rec.Payload)
	}
}

func TestShapeTextWraps(t *testing.T) {
	painter := DefaultPainter()
	layout := painter.ShapeText("alpha beta gamma delta", TextStyle{FontSize: 13}, 60)

	if len(layout.Lines) < 2 {
		t.Fatalf("expected wrapping into multiple lines, got %d", len(layout.Lines))
	}
	for _, line := range layout.Lines {
		if line.Width > 60+7 { // one glyph of slack for the bitmap face
			t.Fatalf("line %q exceeds wrap width: %g", line.Text, line.Width)
		}
	}
}

func TestShapeTextSingleLineUnbounded(t *testing.T) {
	painter := DefaultPainter()
	layout := painter.ShapeText("hello world", TextStyle{FontSize: 13}, geometry.SizeInfinite.Width)

	if len(layout.Lines) != 1 {
		t.Fatalf("expected single line, got %d", len(layout.Lines))
	}
	if layout.Size.Height <= 0 || layout.Size.Width <= 0 {
		t.Fatalf("layout should have positive size, got %v", layout.Size)
	}
}
