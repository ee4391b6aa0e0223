package hovergrid

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// Font is a TrueType face at a fixed size.
type Font struct {
	face *text.GoTextFace
	lh   float64 // cached line height
}

// LoadFont loads a TrueType font from raw TTF/OTF data at the given size.
func LoadFont(ttfData []byte, size float64) (*Font, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(ttfData))
	if err != nil {
		return nil, fmt.Errorf("hovergrid: failed to parse TTF data: %w", err)
	}
	face := &text.GoTextFace{Source: source, Size: size}
	m := face.Metrics()
	return &Font{face: face, lh: m.HAscent + m.HDescent + m.HLineGap}, nil
}

// DefaultFont returns Go Regular at the given size.
func DefaultFont(size float64) (*Font, error) {
	return LoadFont(goregular.TTF, size)
}

// MeasureString returns the width and height of the rendered text.
func (f *Font) MeasureString(s string) (width, height float64) {
	return text.Measure(s, f.face, f.lh)
}

// LineHeight returns the vertical distance between baselines.
func (f *Font) LineHeight() float64 {
	return f.lh
}

// NewText creates a text node. Its Width and Height are the measured size of
// content, so SetPivot(Width/2, Height/2) centers it on its position.
func NewText(name, content string, font *Font) *Node {
	n := &Node{Name: name, Type: NodeTypeText}
	nodeDefaults(n)
	n.Font = font
	n.SetText(content)
	return n
}

// SetText replaces the text content and re-measures the node.
func (n *Node) SetText(content string) {
	n.Text = content
	if n.Font == nil {
		n.Width, n.Height = 0, 0
		return
	}
	n.Width, n.Height = n.Font.MeasureString(content)
	n.transformDirty = true
}
