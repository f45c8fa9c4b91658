//    BERTopicBoard
//    Copyright: E Gunderson 2024
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package wcld

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"math"
	"strings"

	"golang.org/x/image/colornames"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

//
// RASTERIZING A WORD CLOUD
//

const (
	MINFONT     = 4
	FONTSTEP    = 1
	MARGIN      = 2
	RELSCALING  = 0.5 // 0: only rank matters; 1: size is proportional to frequency
	SPIRALSTEP  = 0.25
	SPIRALSPACE = 3.0
)

var ErrNoWords = errors.New("need at least 1 word to plot a word cloud, got 0")

// viridis, sampled; the words cycle through it
var palette = []color.RGBA{
	{R: 68, G: 1, B: 84, A: 255},
	{R: 72, G: 40, B: 120, A: 255},
	{R: 62, G: 74, B: 137, A: 255},
	{R: 49, G: 104, B: 142, A: 255},
	{R: 38, G: 130, B: 142, A: 255},
	{R: 31, G: 158, B: 137, A: 255},
	{R: 53, G: 183, B: 121, A: 255},
	{R: 109, G: 205, B: 89, A: 255},
	{R: 180, G: 222, B: 44, A: 255},
	{R: 253, G: 231, B: 37, A: 255},
}

type Options struct {
	Width      int
	Height     int
	MaxWords   int
	MaxFont    int    // 0 means: as tall as the canvas, shrunk until the first word fits
	Background string // an svg color name; "" is white
	Stops      map[string]struct{}
}

// Placement - where one word went; X,Y is the top-left of its box
type Placement struct {
	Word  string
	Size  int
	X, Y  int
	W, H  int
	Color color.RGBA
}

// Cloud - the laid out words plus the canvas they were laid out on
type Cloud struct {
	Width      int
	Height     int
	Background color.RGBA
	Words      []Placement
}

// BackgroundColor - "white", "black", "lightgray", ...
func BackgroundColor(name string) (color.RGBA, error) {
	if name == "" {
		return colornames.White, nil
	}
	c, ok := colornames.Map[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return color.RGBA{}, fmt.Errorf("unknown background color %q", name)
	}
	return c, nil
}

// facecache - one face per pixel size for the duration of a single layout
type facecache struct {
	font  *opentype.Font
	faces map[int]font.Face
}

func newfacecache() (*facecache, error) {
	f, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, err
	}
	return &facecache{font: f, faces: make(map[int]font.Face)}, nil
}

func (fc *facecache) face(size int) (font.Face, error) {
	if f, ok := fc.faces[size]; ok {
		return f, nil
	}
	f, err := opentype.NewFace(fc.font, &opentype.FaceOptions{Size: float64(size), DPI: 72, Hinting: font.HintingFull})
	if err != nil {
		return nil, err
	}
	fc.faces[size] = f
	return f, nil
}

func (fc *facecache) close() {
	for _, f := range fc.faces {
		_ = f.Close()
	}
}

// boxsize - pixel box for word at size, margin included
func boxsize(f font.Face, word string) (int, int) {
	m := f.Metrics()
	w := font.MeasureString(f, word).Ceil()
	h := (m.Ascent + m.Descent).Ceil()
	return w + 2*MARGIN, h + 2*MARGIN
}

// occupancy - a summed-area table over the canvas so that "is this box free" is O(1)
type occupancy struct {
	w, h int
	used []bool
	sat  []int
}

func newoccupancy(w, h int) *occupancy {
	return &occupancy{w: w, h: h, used: make([]bool, w*h), sat: make([]int, (w+1)*(h+1))}
}

func (o *occupancy) free(x, y, bw, bh int) bool {
	if x < 0 || y < 0 || x+bw > o.w || y+bh > o.h {
		return false
	}
	W := o.w + 1
	s := o.sat[(y+bh)*W+(x+bw)] - o.sat[y*W+(x+bw)] - o.sat[(y+bh)*W+x] + o.sat[y*W+x]
	return s == 0
}

func (o *occupancy) mark(x, y, bw, bh int) {
	for j := y; j < y+bh; j++ {
		for i := x; i < x+bw; i++ {
			o.used[j*o.w+i] = true
		}
	}
	W := o.w + 1
	for j := 0; j < o.h; j++ {
		row := 0
		for i := 0; i < o.w; i++ {
			if o.used[j*o.w+i] {
				row++
			}
			o.sat[(j+1)*W+(i+1)] = o.sat[j*W+(i+1)] + row
		}
	}
}

// spiral - walk an Archimedean spiral out from the center until a free spot for the box turns up
func (o *occupancy) spiral(bw, bh int) (int, int, bool) {
	if bw > o.w || bh > o.h {
		return 0, 0, false
	}

	cx := float64(o.w-bw) / 2
	cy := float64(o.h-bh) / 2
	// the canvas is wider than tall: stretch the spiral to match
	aspect := float64(o.w) / float64(o.h)
	maxr := math.Hypot(float64(o.w), float64(o.h))

	for th := 0.0; SPIRALSPACE*th/(2*math.Pi) < maxr; th += SPIRALSTEP {
		r := SPIRALSPACE * th / (2 * math.Pi)
		x := int(math.Round(cx + r*aspect*math.Cos(th)/2))
		y := int(math.Round(cy + r*math.Sin(th)/2))
		if o.free(x, y, bw, bh) {
			return x, y, true
		}
	}
	return 0, 0, false
}

// Layout - place the words biggest first; the first word that cannot be placed even at MINFONT ends the layout
func Layout(freqs []WordFreq, opt Options) (Cloud, error) {
	if len(freqs) == 0 {
		return Cloud{}, ErrNoWords
	}
	if opt.Width <= 0 || opt.Height <= 0 {
		return Cloud{}, fmt.Errorf("bad canvas size %dx%d", opt.Width, opt.Height)
	}
	bg, err := BackgroundColor(opt.Background)
	if err != nil {
		return Cloud{}, err
	}

	fc, err := newfacecache()
	if err != nil {
		return Cloud{}, err
	}
	defer fc.close()

	occ := newoccupancy(opt.Width, opt.Height)
	cloud := Cloud{Width: opt.Width, Height: opt.Height, Background: bg}

	size := opt.MaxFont
	if size <= 0 {
		size = opt.Height
	}
	last := 1.0

	for i, wf := range freqs {
		if wf.Weight <= 0 {
			continue
		}
		if i > 0 {
			size = int(math.Round((RELSCALING*(wf.Weight/last) + (1 - RELSCALING)) * float64(size)))
		}

		placed := false
		for ; size >= MINFONT; size -= FONTSTEP {
			f, e := fc.face(size)
			if e != nil {
				return Cloud{}, e
			}
			bw, bh := boxsize(f, wf.Word)
			x, y, ok := occ.spiral(bw, bh)
			if !ok {
				continue
			}
			occ.mark(x, y, bw, bh)
			cloud.Words = append(cloud.Words, Placement{
				Word:  wf.Word,
				Size:  size,
				X:     x,
				Y:     y,
				W:     bw,
				H:     bh,
				Color: palette[i%len(palette)],
			})
			placed = true
			break
		}

		if !placed {
			break
		}
		last = wf.Weight
	}

	return cloud, nil
}

// Draw - paint a laid out cloud onto its background; a zero Background is white
func Draw(c Cloud) (*image.RGBA, error) {
	bg := c.Background
	if bg == (color.RGBA{}) {
		bg = colornames.White
	}
	img := image.NewRGBA(image.Rect(0, 0, c.Width, c.Height))
	draw.Draw(img, img.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)

	fc, err := newfacecache()
	if err != nil {
		return nil, err
	}
	defer fc.close()

	for _, p := range c.Words {
		f, e := fc.face(p.Size)
		if e != nil {
			return nil, e
		}
		dr := &font.Drawer{Dst: img, Src: image.NewUniform(p.Color), Face: f}
		dr.Dot = fixed.Point26_6{X: fixed.I(p.X + MARGIN), Y: fixed.I(p.Y+MARGIN) + f.Metrics().Ascent}
		dr.DrawString(p.Word)
	}
	return img, nil
}

// RenderPNG - text in, png bytes out
func RenderPNG(text string, opt Options) ([]byte, error) {
	stops := opt.Stops
	if stops == nil {
		stops = DefaultStops()
	}

	cloud, err := Layout(Frequencies(text, stops, opt.MaxWords), opt)
	if err != nil {
		return nil, err
	}

	img, err := Draw(cloud)
	if err != nil {
		return nil, err
	}

	var b bytes.Buffer
	if err = png.Encode(&b, img); err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}
