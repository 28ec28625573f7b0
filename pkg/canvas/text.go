package canvas

import (
	"strings"
	"sync"

	"github.com/chewxy/math32"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"github.com/go-loom/loom/pkg/geometry"
)

const defaultFontSize = 16

// FontWeight is a numeric font weight.
type FontWeight int

const (
	FontWeightLight  FontWeight = 300
	FontWeightNormal FontWeight = 400
	FontWeightMedium FontWeight = 500
	FontWeightBold   FontWeight = 700
)

// TextStyle describes how a paragraph is shaped and painted.
type TextStyle struct {
	FontFamily string
	FontSize   float32
	FontWeight FontWeight
	Italic     bool
	LineHeight float32
	Color      Color
}

// TextLine is one measured line of a shaped paragraph.
type TextLine struct {
	Text  string
	Width float32
}

// TextLayout is a measured, pre-shaped paragraph ready to draw.
type TextLayout struct {
	Text    string
	Style   TextStyle
	Size    geometry.Size
	Ascent  float32
	Descent float32
	Lines   []TextLine
}

// facePainter shapes text with a font.Face. It is the default painter
// used when the host does not supply its own shaping backend.
type facePainter struct {
	face font.Face
}

// NewFacePainter creates a painter shaping with the given face.
func NewFacePainter(face font.Face) Painter {
	return &facePainter{face: face}
}

var (
	defaultPainter     Painter
	defaultPainterOnce sync.Once
)

// DefaultPainter returns a shared painter backed by a bundled bitmap
// face. Hosts with a real text stack should supply their own Painter.
func DefaultPainter() Painter {
	defaultPainterOnce.Do(func() {
		defaultPainter = NewFacePainter(basicfont.Face7x13)
	})
	return defaultPainter
}

func (p *facePainter) ShapeText(text string, style TextStyle, maxWidth float32) *TextLayout {
	metrics := p.face.Metrics()
	ascent := float32(metrics.Ascent.Ceil())
	descent := float32(metrics.Descent.Ceil())

	lineHeight := style.LineHeight
	if lineHeight <= 0 {
		lineHeight = ascent + descent
	}

	var lines []TextLine
	var width float32
	for _, raw := range strings.Split(text, "\n") {
		for _, line := range p.wrap(raw, maxWidth) {
			lines = append(lines, line)
			width = math32.Max(width, line.Width)
		}
	}
	if len(lines) == 0 {
		lines = []TextLine{{}}
	}

	return &TextLayout{
		Text:    text,
		Style:   style,
		Size:    geometry.Sz(width, lineHeight*float32(len(lines))),
		Ascent:  ascent,
		Descent: descent,
		Lines:   lines,
	}
}

// wrap performs greedy word wrapping against maxWidth. An infinite or
// non-positive width yields a single line.
func (p *facePainter) wrap(text string, maxWidth float32) []TextLine {
	measure := func(s string) float32 {
		return float32(font.MeasureString(p.face, s).Ceil())
	}

	if maxWidth <= 0 || math32.IsInf(maxWidth, 1) {
		return []TextLine{{Text: text, Width: measure(text)}}
	}

	words := strings.Fields(text)
	if len(words) == 0 {
		return []TextLine{{Text: text, Width: measure(text)}}
	}

	var lines []TextLine
	current := words[0]
	for _, word := range words[1:] {
		candidate := current + " " + word
		if measure(candidate) > maxWidth {
			lines = append(lines, TextLine{Text: current, Width: measure(current)})
			current = word
			continue
		}
		current = candidate
	}
	lines = append(lines, TextLine{Text: current, Width: measure(current)})
	return lines
}
