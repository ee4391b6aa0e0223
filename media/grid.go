package media

import (
	"fmt"

	"github.com/phanxgames/hovergrid"
)

// Layout positions the grid cells.
type Layout struct {
	Columns  int
	CellSize float64
	Gap      float64
	// ImageScale is the image edge relative to the cell edge.
	ImageScale float64
	// OriginX, OriginY place the top-left corner of the grid.
	OriginX, OriginY float64
	// AltFont draws the alt caption over placeholder images. Nil draws none.
	AltFont *hovergrid.Font
}

// Rows returns the row count needed for count cells.
func (l Layout) Rows(count int) int {
	if l.Columns <= 0 {
		return 0
	}
	return (count + l.Columns - 1) / l.Columns
}

// Size returns the grid's width and height for count cells.
func (l Layout) Size(count int) (w, h float64) {
	cols := l.Columns
	if count < cols {
		cols = count
	}
	rows := l.Rows(count)
	if cols <= 0 || rows <= 0 {
		return 0, 0
	}
	w = float64(cols)*l.CellSize + float64(cols-1)*l.Gap
	h = float64(rows)*l.CellSize + float64(rows-1)*l.Gap
	return w, h
}

// Centered returns a copy of l with its origin set so the grid for count
// cells is centered in a screenW x screenH area.
func (l Layout) Centered(count int, screenW, screenH float64) Layout {
	w, h := l.Size(count)
	l.OriginX = (screenW - w) / 2
	l.OriginY = (screenH - h) / 2
	return l
}

// Bounds returns the screen rectangle covered by the grid for count cells.
func (l Layout) Bounds(count int) hovergrid.Rect {
	w, h := l.Size(count)
	return hovergrid.Rect{X: l.OriginX, Y: l.OriginY, Width: w, Height: h}
}

// CellCenter returns the center of the i-th (0-based) cell, relative to the
// grid container. A layout without columns places every cell at (0, 0).
func (l Layout) CellCenter(i int) (x, y float64) {
	if l.Columns <= 0 {
		return 0, 0
	}
	col := i % l.Columns
	row := i / l.Columns
	pitch := l.CellSize + l.Gap
	return float64(col)*pitch + l.CellSize/2, float64(row)*pitch + l.CellSize/2
}

// CellName returns the node name of the 1-based cell index.
func CellName(index int) string {
	return fmt.Sprintf("media_%02d", index)
}

// AltText returns the caption of the 1-based media index: 1 -> "Media 1".
func AltText(index int) string {
	return fmt.Sprintf("Media %d", index)
}

// Build creates the grid container under parent with one cell per image.
//
// The container ("medias") is hit-testable over the whole grid area so moves
// in the gaps between cells are still inside it. Each cell ("media_NN") is a
// container centered on its slot with a square hit rect, holding one image
// sprite ("image_NN") pivoted at its center and resting at (0, 0).
// A nil Image entry yields a cell with no image. Placeholder images get an
// "alt_NN" caption centered on them when the layout has an AltFont.
func Build(parent *hovergrid.Node, l Layout, images []Image) *hovergrid.Node {
	bounds := l.Bounds(len(images))
	grid := hovergrid.NewContainer("medias")
	grid.X, grid.Y = bounds.X, bounds.Y
	grid.Interactable = true
	grid.HitShape = hovergrid.HitRect{Width: bounds.Width, Height: bounds.Height}

	imgSize := l.CellSize * l.ImageScale
	half := l.CellSize / 2

	for i, img := range images {
		index := img.Index
		if index == 0 {
			index = i + 1
		}

		cell := hovergrid.NewContainer(CellName(index))
		cell.X, cell.Y = l.CellCenter(i)
		cell.Interactable = true
		cell.HitShape = hovergrid.HitRect{X: -half, Y: -half, Width: l.CellSize, Height: l.CellSize}
		cell.UserData = index
		grid.AddChild(cell)

		if img.Image == nil {
			continue
		}
		sprite := hovergrid.NewSprite(fmt.Sprintf("image_%02d", index), img.Image)
		sprite.SetSize(imgSize, imgSize)
		sprite.SetPivot(imgSize/2, imgSize/2)
		cell.AddChild(sprite)

		if img.Placeholder && l.AltFont != nil {
			sprite.AddChild(altCaption(index, imgSize, l.AltFont))
		}
	}

	parent.AddChild(grid)
	return grid
}

// altCaption returns the caption node for index, centered in an image of
// edge size.
func altCaption(index int, size float64, font *hovergrid.Font) *hovergrid.Node {
	caption := hovergrid.NewText(fmt.Sprintf("alt_%02d", index), AltText(index), font)
	caption.SetPivot(caption.Width/2, caption.Height/2)
	caption.SetPosition(size/2, size/2)
	caption.Color = hovergrid.Color{R: 1, G: 1, B: 1, A: 0.85}
	return caption
}
