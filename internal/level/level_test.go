package level

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"slices"
	"testing"
	"testing/fstest"

	"vixel/internal/sim"
)

func nrgba(c sim.RGB) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: 255}
}

// sampleImage is 3x2: top row wood, marker, unknown; bottom row dirt, water, home.
func sampleImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, 3, 2))
	img.SetNRGBA(0, 0, nrgba(sim.Wood.Color()))
	img.SetNRGBA(1, 0, color.NRGBA{R: CharacterMarker, G: 3, B: 5, A: 255})
	img.SetNRGBA(2, 0, color.NRGBA{R: 12, G: 34, B: 56, A: 255})
	img.SetNRGBA(0, 1, nrgba(sim.Dirt.Color()))
	img.SetNRGBA(1, 1, nrgba(sim.Water.Color()))
	img.SetNRGBA(2, 1, color.NRGBA{R: HomeMarker, G: 4, B: 6, A: 255})
	return img
}

func encodePNG(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return buf.Bytes()
}

func checkSample(t *testing.T, lv *Level) {
	t.Helper()
	want := map[[2]int]sim.Material{
		{0, 0}: sim.Dirt, {1, 0}: sim.Water, {2, 0}: sim.Air,
		{0, 1}: sim.Wood, {1, 1}: sim.Air, {2, 1}: sim.Air,
	}
	for p, m := range want {
		if got, _ := lv.Grid.At(p[0], p[1]); got != m {
			t.Errorf("cell %v = %v, want %v", p, got, m)
		}
	}
	if len(lv.Characters) != 1 || lv.Characters[0] != (Spawn{X: 1, Y: 1, W: 3, H: 5}) {
		t.Errorf("characters = %+v", lv.Characters)
	}
	if len(lv.Homes) != 1 || lv.Homes[0] != (Spawn{X: 2, Y: 0, W: 4, H: 6}) {
		t.Errorf("homes = %+v", lv.Homes)
	}
}

func TestDecodeFlipsRows(t *testing.T) {
	checkSample(t, Decode(sampleImage()))
}

func TestLoaderPNG(t *testing.T) {
	fsys := fstest.MapFS{
		"levels/level3.png": {Data: encodePNG(t, sampleImage())},
	}
	lv, err := NewLoader(fsys, "levels", 3, 2).Load(3)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if lv.Index != 3 {
		t.Errorf("index = %d", lv.Index)
	}
	checkSample(t, lv)
}

func TestLoaderMissing(t *testing.T) {
	_, err := NewLoader(fstest.MapFS{}, "levels", 0, 0).Load(7)
	if !errors.Is(err, ErrLevelNotFound) {
		t.Fatalf("err = %v, want ErrLevelNotFound", err)
	}
	_, err = NewLoader(fstest.MapFS{}, "levels", 0, 0).Load(-1)
	if !errors.Is(err, ErrLevelNotFound) {
		t.Fatalf("negative index err = %v", err)
	}
}

func TestLoaderSizeMismatch(t *testing.T) {
	fsys := fstest.MapFS{
		"level0.png": {Data: encodePNG(t, sampleImage())},
	}
	_, err := NewLoader(fsys, ".", 160, 90).Load(0)
	if !errors.Is(err, ErrSizeMismatch) {
		t.Fatalf("err = %v, want ErrSizeMismatch", err)
	}
}

func TestLoaderCorruptImage(t *testing.T) {
	fsys := fstest.MapFS{
		"level1.png": {Data: []byte("not a png")},
	}
	_, err := NewLoader(fsys, "", 0, 0).Load(1)
	if err == nil || errors.Is(err, ErrLevelNotFound) {
		t.Fatalf("err = %v, want decode error", err)
	}
}

func TestLoaderFallback(t *testing.T) {
	fsys := fstest.MapFS{
		"ooblevel.png": {Data: encodePNG(t, sampleImage())},
	}
	lv, err := NewLoader(fsys, ".", 3, 2).Fallback()
	if err != nil {
		t.Fatalf("Fallback: %v", err)
	}
	if lv.Index != -1 {
		t.Errorf("fallback index = %d", lv.Index)
	}
	checkSample(t, lv)
}

// Targa header fields used by the fixtures.
const (
	tgaTrueColor    = 2
	tgaTrueColorRLE = 10
	tgaTopOrigin    = 1 << 5
	tgaAlphaBits8   = 8
)

func tgaHeader(kind byte, w, h, depth, desc byte) []byte {
	hdr := make([]byte, 18)
	hdr[2] = kind
	hdr[12], hdr[14] = w, h
	hdr[16] = depth
	hdr[17] = desc
	return hdr
}

// tgaBytes writes the sample as an uncompressed 24-bit Targa.
func tgaBytes(topOrigin bool) []byte {
	img := sampleImage()
	var desc byte
	if topOrigin {
		desc = tgaTopOrigin
	}
	out := tgaHeader(tgaTrueColor, 3, 2, 24, desc)
	for row := 0; row < 2; row++ {
		y := 1 - row
		if topOrigin {
			y = row
		}
		for x := 0; x < 3; x++ {
			c := img.NRGBAAt(x, y)
			out = append(out, c.B, c.G, c.R)
		}
	}
	return out
}

func TestLoaderTGA(t *testing.T) {
	for _, top := range []bool{false, true} {
		fsys := fstest.MapFS{"level2.tga": {Data: tgaBytes(top)}}
		lv, err := NewLoader(fsys, ".", 3, 2).Load(2)
		if err != nil {
			t.Fatalf("top=%v: %v", top, err)
		}
		checkSample(t, lv)
	}
}

func TestLoaderTGARLE(t *testing.T) {
	wood, water := sim.Wood.Color(), sim.Water.Color()
	data := append(tgaHeader(tgaTrueColorRLE, 4, 1, 32, tgaTopOrigin|tgaAlphaBits8),
		0x82, wood.B, wood.G, wood.R, 255,    // run of 3
		0x00, water.B, water.G, water.R, 255, // one raw pixel
	)
	fsys := fstest.MapFS{"level3.tga": {Data: data}}
	lv, err := NewLoader(fsys, ".", 4, 1).Load(3)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := []sim.Material{sim.Wood, sim.Wood, sim.Wood, sim.Water}
	if !slices.Equal(lv.Grid.Cells, want) {
		t.Fatalf("cells = %v, want %v", lv.Grid.Cells, want)
	}
}

func TestLoaderTGATruncated(t *testing.T) {
	fsys := fstest.MapFS{"level1.tga": {Data: tgaHeader(tgaTrueColor, 3, 2, 24, 0)}}
	_, err := NewLoader(fsys, ".", 3, 2).Load(1)
	if err == nil || errors.Is(err, ErrLevelNotFound) {
		t.Fatalf("err = %v, want a decode error", err)
	}
}
