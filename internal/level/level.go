package level

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"io/fs"
	"path"
	"strings"

	"github.com/ftrvxmtrx/tga"

	"vixel/internal/sim"
)

var (
	ErrLevelNotFound    = errors.New("level not found")
	ErrSizeMismatch     = errors.New("level size mismatch")
	ErrUnsupportedImage = errors.New("unsupported level image")
)

// Red-channel markers that place entities instead of material.
const (
	CharacterMarker = 1
	HomeMarker      = 222
)

// FallbackName is the level shown once the numbered levels run out.
const FallbackName = "ooblevel"

// Spawn places an entity; green and blue of the marker pixel give its size.
type Spawn struct {
	X, Y int
	W, H int
}

type Level struct {
	Index      int
	Grid       *sim.Grid
	Characters []Spawn
	Homes      []Spawn
}

// Decode turns a level image into a grid. Image row 0 is the top of the
// level, so it becomes grid row H-1.
func Decode(img image.Image) *Level {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	lv := &Level{Grid: sim.NewGrid(w, h)}
	for y := 0; y < h; y++ {
		iy := b.Min.Y + (h - 1 - y)
		for x := 0; x < w; x++ {
			c := color.NRGBAModel.Convert(img.At(b.Min.X+x, iy)).(color.NRGBA)
			switch c.R {
			case CharacterMarker:
				lv.Characters = append(lv.Characters, Spawn{X: x, Y: y, W: int(c.G), H: int(c.B)})
				continue
			case HomeMarker:
				lv.Homes = append(lv.Homes, Spawn{X: x, Y: y, W: int(c.G), H: int(c.B)})
				continue
			}
			m, _ := sim.MaterialForColor(sim.RGB{R: c.R, G: c.G, B: c.B})
			lv.Grid.Set(x, y, m)
		}
	}
	return lv
}

// Loader reads levelN.png / levelN.tga images from a directory of FS.
type Loader struct {
	FS  fs.FS
	Dir string

	// Width and Height, when set, reject levels of any other size.
	Width, Height int
}

func NewLoader(fsys fs.FS, dir string, w, h int) *Loader {
	return &Loader{FS: fsys, Dir: dir, Width: w, Height: h}
}

// Load decodes numbered level index.
func (l *Loader) Load(index int) (*Level, error) {
	if index < 0 {
		return nil, fmt.Errorf("level %d: %w", index, ErrLevelNotFound)
	}
	lv, err := l.loadNamed(fmt.Sprintf("level%d", index))
	if err != nil {
		return nil, fmt.Errorf("level %d: %w", index, err)
	}
	lv.Index = index
	return lv, nil
}

// Fallback decodes the end-of-content level.
func (l *Loader) Fallback() (*Level, error) {
	lv, err := l.loadNamed(FallbackName)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", FallbackName, err)
	}
	lv.Index = -1
	return lv, nil
}

func (l *Loader) loadNamed(name string) (*Level, error) {
	for _, ext := range []string{".png", ".tga"} {
		p := path.Join(l.Dir, name+ext)
		f, err := l.FS.Open(p)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("open %s: %w", p, err)
		}
		img, err := decodeImage(f, ext)
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("decode %s: %w", p, err)
		}
		lv := Decode(img)
		if err := l.checkSize(lv.Grid); err != nil {
			return nil, fmt.Errorf("%s: %w", p, err)
		}
		return lv, nil
	}
	return nil, ErrLevelNotFound
}

func (l *Loader) checkSize(g *sim.Grid) error {
	if l.Width > 0 && g.W != l.Width || l.Height > 0 && g.H != l.Height {
		return fmt.Errorf("%w: got %dx%d, want %dx%d", ErrSizeMismatch, g.W, g.H, l.Width, l.Height)
	}
	return nil
}

func decodeImage(r io.Reader, ext string) (image.Image, error) {
	switch strings.ToLower(ext) {
	case ".png":
		return png.Decode(r)
	case ".tga":
		return tga.Decode(r)
	}
	return nil, ErrUnsupportedImage
}
