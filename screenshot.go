package hovergrid

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
)

// capture is one queued screenshot. The hovered node is recorded when the
// capture is queued, so a scripted run names what it was looking at.
type capture struct {
	seq     int
	label   string
	hovered string
}

// fileName is "<seq>_<label>_<hovered>.png", e.g. "003_after-enter_media_02.png".
func (c capture) fileName() string {
	return fmt.Sprintf("%03d_%s_%s.png", c.seq, fileSafe(c.label, "unlabeled"), fileSafe(c.hovered, "none"))
}

// Screenshot queues a capture of the frame drawn at the end of the next Draw.
// Files land in ScreenshotDir; their sequence numbers restart with the scene.
func (s *Scene) Screenshot(label string) {
	s.shots++
	c := capture{seq: s.shots, label: label}
	if n := s.pointer.hoverNode; n != nil {
		c.hovered = n.Name
	}
	s.captures = append(s.captures, c)
}

// flushScreenshots writes every queued capture of screen. Errors are logged;
// a failed capture never stops the frame.
func (s *Scene) flushScreenshots(screen *ebiten.Image) {
	if len(s.captures) == 0 {
		return
	}
	pending := s.captures
	s.captures = nil

	if err := os.MkdirAll(s.ScreenshotDir, 0o755); err != nil {
		logf("screenshot: %v", err)
		return
	}

	// ReadPixels yields premultiplied RGBA, which is what image.RGBA holds.
	frame := image.NewRGBA(screen.Bounds())
	screen.ReadPixels(frame.Pix)

	for _, c := range pending {
		path := filepath.Join(s.ScreenshotDir, c.fileName())
		if err := savePNG(path, frame); err != nil {
			logf("screenshot: %v", err)
			continue
		}
		if s.debug {
			logf("screenshot: wrote %s", path)
		}
	}
}

func savePNG(path string, img image.Image) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("save %s: %w", path, cerr)
		}
	}()
	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}

// fileSafe keeps letters, digits, '-' and '.' and maps everything else to
// '_'. Blank input becomes fallback.
func fileSafe(s, fallback string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return fallback
	}
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '.':
			return r
		}
		return '_'
	}, s)
}
