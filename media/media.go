// Package media builds the image grid: numbered asset addressing, image
// loading with a generated placeholder fallback, and the cell layout the
// hover effect attaches to.
package media

import (
	"fmt"
	"image"
	"io/fs"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	// Register decoders for the numbered assets.
	_ "image/jpeg"
	_ "image/png"
)

// AssetName returns the file name for the 1-based media index: 1 -> "01.png".
func AssetName(index int) string {
	return fmt.Sprintf("%02d.png", index)
}

// Loader loads numbered images from FS. A nil FS always yields placeholders.
type Loader struct {
	FS fs.FS
	// PlaceholderSize is the edge length of generated placeholders.
	PlaceholderSize int
}

// Image is one loaded media image.
type Image struct {
	Index       int
	Image       *ebiten.Image
	Placeholder bool
}

// Load returns the image for the 1-based index, or a generated placeholder
// when the asset is missing or cannot be decoded. Failures are logged, never
// returned.
func (l Loader) Load(index int) Image {
	img, err := l.open(index)
	if err != nil {
		log.Printf("[hovergrid] media %s: %v; using placeholder", AssetName(index), err)
		return Image{Index: index, Image: ebiten.NewImageFromImage(l.placeholder(index)), Placeholder: true}
	}
	return Image{Index: index, Image: img}
}

// LoadAll loads indexes 1..count.
func (l Loader) LoadAll(count int) []Image {
	out := make([]Image, 0, count)
	for i := 1; i <= count; i++ {
		out = append(out, l.Load(i))
	}
	return out
}

func (l Loader) open(index int) (*ebiten.Image, error) {
	if l.FS == nil {
		return nil, fs.ErrNotExist
	}
	img, _, err := ebitenutil.NewImageFromFileSystem(l.FS, AssetName(index))
	return img, err
}

func (l Loader) placeholder(index int) image.Image {
	size := l.PlaceholderSize
	if size <= 0 {
		size = DefaultPlaceholderSize
	}
	return Placeholder(index, size)
}
