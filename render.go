package hovergrid

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// Draw traverses the scene tree and draws every visible sprite and text node
// onto screen in painter order (depth-first, children sorted by ZIndex).
func (s *Scene) Draw(screen *ebiten.Image) {
	var t0 time.Time
	if s.debug {
		t0 = time.Now()
	}

	if s.ClearColor.A > 0 {
		screen.Fill(s.ClearColor.RGBA())
	}

	sprites := 0
	s.drawNode(screen, s.root, identityTransform, 1.0, false, &sprites)

	if s.debug {
		s.stats.record(time.Since(t0), sprites, len(s.timelines))
	}

	s.flushScreenshots(screen)
}

// drawNode updates the node's world transform and draws it and its children.
func (s *Scene) drawNode(screen *ebiten.Image, n *Node, parentTransform [6]float64, parentAlpha float64, parentRecomputed bool, sprites *int) {
	if !n.Visible {
		return
	}

	recompute := n.transformDirty || parentRecomputed
	if recompute {
		n.worldTransform = multiplyAffine(parentTransform, computeLocalTransform(n))
		n.worldAlpha = parentAlpha * n.Alpha
		n.transformDirty = false
	}

	switch {
	case n.Type == NodeTypeSprite && n.Width > 0 && n.Height > 0:
		drawSprite(screen, n)
		*sprites++
	case n.Type == NodeTypeText && n.Font != nil && n.Text != "":
		drawText(screen, n)
	}

	if len(n.children) == 0 {
		return
	}
	for _, child := range sortedChildrenOf(n) {
		s.drawNode(screen, child, n.worldTransform, n.worldAlpha, recompute, sprites)
	}
}

// drawSprite draws the node's image stretched to Width x Height through its
// world transform, tinted by Color and faded by the accumulated alpha.
func drawSprite(screen *ebiten.Image, n *Node) {
	img := n.Image
	if img == nil {
		img = solidPixel()
	}
	b := img.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return
	}

	var op ebiten.DrawImageOptions
	op.GeoM.Scale(n.Width/float64(b.Dx()), n.Height/float64(b.Dy()))

	op.GeoM.Concat(worldGeoM(n.worldTransform))
	op.ColorScale = tint(n)
	op.Filter = ebiten.FilterLinear

	screen.DrawImage(img, &op)
}

// drawText draws the node's text with its top-left corner at the local
// origin.
func drawText(screen *ebiten.Image, n *Node) {
	op := &text.DrawOptions{}
	op.GeoM = worldGeoM(n.worldTransform)
	op.ColorScale = tint(n)
	op.Filter = ebiten.FilterLinear
	op.LineSpacing = n.Font.lh
	text.Draw(screen, n.Text, n.Font.face, op)
}

// worldGeoM converts an affine matrix to an ebiten.GeoM.
func worldGeoM(m [6]float64) ebiten.GeoM {
	var g ebiten.GeoM
	g.SetElement(0, 0, m[0])
	g.SetElement(1, 0, m[1])
	g.SetElement(0, 1, m[2])
	g.SetElement(1, 1, m[3])
	g.SetElement(0, 2, m[4])
	g.SetElement(1, 2, m[5])
	return g
}

// tint returns the premultiplied color scale for the node's Color and
// accumulated alpha.
func tint(n *Node) ebiten.ColorScale {
	var cs ebiten.ColorScale
	a := n.Color.A * n.worldAlpha
	cs.Scale(float32(n.Color.R*a), float32(n.Color.G*a), float32(n.Color.B*a), float32(a))
	return cs
}
