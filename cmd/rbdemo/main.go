// Command rbdemo renders a sample scene into a renderbuf buffer and saves it.
package main

import (
	"flag"
	"log"
	"log/slog"
	"math"
	"os"

	"github.com/gogpu/renderbuf"
	"github.com/gogpu/renderbuf/text"
)

func main() {
	var (
		width    = flag.Int("width", 800, "image width")
		height   = flag.Int("height", 600, "image height")
		output   = flag.String("output", "demo.png", "output file (.png, .tif)")
		input    = flag.String("image", "", "optional image to tile into the scene")
		fontPath = flag.String("font", "", "optional TrueType/OpenType font (default Go Regular)")
		parallel = flag.Int("parallel", 1, "row bands drawn concurrently")
		verbose  = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	if *verbose {
		renderbuf.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	rb := renderbuf.New(*width, *height, renderbuf.WithParallelism(*parallel))

	drawBackground(rb)
	drawCircles(rb)
	drawRotatedSquares(rb)
	drawStar(rb)
	drawLines(rb)
	if *input != "" {
		if err := drawTiles(rb, *input); err != nil {
			log.Fatalf("Failed to load image: %v", err)
		}
	}
	if err := drawCaption(rb, *fontPath); err != nil {
		log.Fatalf("Failed to load font: %v", err)
	}

	if err := rb.Save(*output); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}

	log.Printf("Demo saved to %s (%dx%d)\n", *output, *width, *height)
}

func drawBackground(rb *renderbuf.RenderBuffer) {
	w, h := rb.Size()
	steps := 100
	for i := range steps {
		t := float64(i) / float64(steps)
		c := renderbuf.RGB(0.1+t*0.4, 0.2+t*0.3, 0.4+t*0.2)
		y := float64(h) * t
		rb.FillRect(renderbuf.Rect{Y: y, W: float64(w), H: float64(h)/float64(steps) + 1}, c, renderbuf.Identity())
	}
}

func drawCircles(rb *renderbuf.RenderBuffer) {
	id := renderbuf.Identity()
	rb.FillEllipse(renderbuf.Circle(150, 150, 60), renderbuf.RGBA2(1, 0.3, 0.3, 0.8), id)
	rb.FillEllipse(renderbuf.Circle(200, 150, 60), renderbuf.RGBA2(0.3, 1, 0.3, 0.8), id)
	rb.FillEllipse(renderbuf.Circle(175, 200, 60), renderbuf.RGBA2(0.3, 0.3, 1, 0.8), id)

	rb.FillRect(renderbuf.Rect{X: 350, Y: 100, W: 120, H: 80}, renderbuf.RGB(1, 0.8, 0), id)
	rb.StrokeRect(renderbuf.Rect{X: 350, Y: 100, W: 120, H: 80}, 4, renderbuf.White, id)
}

func drawRotatedSquares(rb *renderbuf.RenderBuffer) {
	square := renderbuf.Rectangle(renderbuf.Square(-30, -30, 60))
	for i := range 8 {
		m := renderbuf.Translate(600, 150).Rotate(float64(i) * math.Pi / 4)
		rb.DrawPolygon(square, renderbuf.HSL(float64(i)*45, 0.8, 0.6), m, renderbuf.FillRuleNonZero)
	}
}

func drawStar(rb *renderbuf.RenderBuffer) {
	const points = 5
	star := make([]renderbuf.Point, 0, points)
	for i := range points {
		a := float64(i)*4*math.Pi/points - math.Pi/2
		star = append(star, renderbuf.Pt(60*math.Cos(a), 60*math.Sin(a)))
	}
	m := renderbuf.Translate(550, 400)
	rb.DrawPolygon(star, renderbuf.Yellow, m, renderbuf.FillRuleNonZero)
	rb.DrawPolygon(star, renderbuf.Magenta, m.Translate(140, 0), renderbuf.FillRuleEvenOdd)
}

func drawLines(rb *renderbuf.RenderBuffer) {
	wave := make([]renderbuf.Point, 0, 61)
	for i := range 61 {
		x := float64(i) * 5
		wave = append(wave, renderbuf.Pt(x, 30*math.Sin(x/30)))
	}
	rb.SetLineCap(renderbuf.LineCapRound)
	rb.DrawPolyline(wave, 6, renderbuf.RGB(1, 0.5, 0), renderbuf.Translate(100, 400))

	for i, lc := range []renderbuf.LineCap{renderbuf.LineCapButt, renderbuf.LineCapRound, renderbuf.LineCapSquare} {
		rb.SetLineCap(lc)
		y := 480 + float64(i)*25
		rb.DrawLine(renderbuf.Pt(100, y), renderbuf.Pt(380, y), 12, renderbuf.Cyan.WithAlpha(0.7), renderbuf.Identity())
	}
}

func drawTiles(rb *renderbuf.RenderBuffer, path string) error {
	src, err := renderbuf.Load(path)
	if err != nil {
		return err
	}
	img := src.Image()
	for i := range 4 {
		dst := renderbuf.Rect{X: 20 + float64(i)*90, Y: 250, W: 80, H: 80}
		m := renderbuf.Identity()
		if i%2 == 1 {
			c := dst.Center()
			m = renderbuf.Translate(c.X, c.Y).Rotate(math.Pi / 12).Translate(-c.X, -c.Y)
		}
		rb.DrawImage(img, dst, m)
	}
	return nil
}

func drawCaption(rb *renderbuf.RenderBuffer, fontPath string) error {
	face := text.GoRegular()
	if fontPath != "" {
		data, err := os.ReadFile(fontPath)
		if err != nil {
			return err
		}
		if face, err = text.ParseFont(data); err != nil {
			return err
		}
	}

	d := &text.Drawer{
		Cache: text.NewGlyphCache(text.DefaultGlyphCacheConfig()),
		Face:  face,
		Size:  28,
	}
	_, h := rb.Size()
	pen := rb.DrawString(d, "renderbuf: ", renderbuf.Pt(20, float64(h)-30), renderbuf.White, renderbuf.Identity())
	rb.DrawString(d, "analytic coverage", pen, renderbuf.Yellow, renderbuf.Identity())
	return nil
}
