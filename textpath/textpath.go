// Package textpath converts strings into glyph-outline paths.
//
// A Source wraps one parsed font and implements motion.TextShaper:
// shaping (kerning, ligatures, bidi) runs through HarfBuzz via
// go-text/typesetting, and each shaped glyph's outline is extracted
// from the font's glyf table and appended to a single motion.Path in
// world units.
package textpath

import (
	"bytes"
	"fmt"
	"os"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/unicode/bidi"

	"github.com/motionkit/motion"
)

// Source is a font prepared for shaping and outline extraction. A
// Source is not safe for concurrent use; the shaper buffer and glyph
// buffer are reused across calls.
type Source struct {
	face    *font.Face
	outline *sfnt.Font
	upem    float64

	shaper shaping.HarfbuzzShaper
	buf    sfnt.Buffer
}

// New parses TTF or OTF font data.
func New(data []byte) (*Source, error) {
	face, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("textpath: parse font: %w", err)
	}
	out, err := sfnt.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("textpath: parse outlines: %w", err)
	}
	return &Source{
		face:    face,
		outline: out,
		upem:    float64(face.Upem()),
	}, nil
}

// Load reads and parses a font file.
func Load(path string) (*Source, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("textpath: read font: %w", err)
	}
	return New(data)
}

// Outline shapes the string at the given size (in world units) and
// returns the combined glyph outlines as one path. The pen starts at
// the origin; the baseline runs along y = 0 with y growing upward.
func (s *Source) Outline(text string, size float64) (*motion.Path, error) {
	if text == "" {
		return motion.NewPath(), nil
	}
	runes := []rune(text)

	// Shape at the font's design resolution, then scale glyph
	// positions down to the requested size. Shaping at tiny world-unit
	// sizes would lose advance precision to the 26.6 fixed grid.
	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: baseDirection(text),
		Face:      s.face,
		Size:      fixed.I(int(s.upem)),
		Script:    detectScript(runes),
		Language:  language.DefaultLanguage(),
	}
	output := s.shaper.Shape(input)

	scale := size / s.upem
	path := motion.NewPath()
	var penX, penY float64
	for _, g := range output.Glyphs {
		gx := penX + fixedToFloat(g.XOffset)
		gy := penY + fixedToFloat(g.YOffset)
		if err := s.appendGlyph(path, sfnt.GlyphIndex(g.GlyphID), gx, gy, scale); err != nil {
			return nil, err
		}
		penX += fixedToFloat(g.XAdvance)
		penY += fixedToFloat(g.YAdvance)
	}
	return path, nil
}

// appendGlyph extracts one glyph's outline in font units and appends
// it translated to the pen position and scaled to world units. Glyphs
// without outlines (spaces) contribute nothing.
func (s *Source) appendGlyph(path *motion.Path, gid sfnt.GlyphIndex, penX, penY, scale float64) error {
	segments, err := s.outline.LoadGlyph(&s.buf, gid, fixed.I(int(s.upem)), nil)
	if err != nil {
		return fmt.Errorf("textpath: load glyph %d: %w", gid, err)
	}
	if len(segments) == 0 {
		return nil
	}

	// sfnt emits y growing downward; world coordinates grow upward.
	px := func(p fixed.Point26_6) (float64, float64) {
		return (penX + fixedToFloat(p.X)) * scale, (penY - fixedToFloat(p.Y)) * scale
	}

	open := false
	for _, seg := range segments {
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			if open {
				path.Close()
			}
			x, y := px(seg.Args[0])
			path.MoveTo(x, y)
			open = true
		case sfnt.SegmentOpLineTo:
			x, y := px(seg.Args[0])
			path.LineTo(x, y)
		case sfnt.SegmentOpQuadTo:
			cx, cy := px(seg.Args[0])
			x, y := px(seg.Args[1])
			path.QuadraticTo(cx, cy, x, y)
		case sfnt.SegmentOpCubeTo:
			c1x, c1y := px(seg.Args[0])
			c2x, c2y := px(seg.Args[1])
			x, y := px(seg.Args[2])
			path.CubicTo(c1x, c1y, c2x, c2y, x, y)
		}
	}
	if open {
		path.Close()
	}
	return nil
}

// baseDirection resolves the paragraph's base direction from its
// content, so Arabic or Hebrew strings shape right-to-left without
// callers annotating them.
func baseDirection(text string) di.Direction {
	var p bidi.Paragraph
	if _, err := p.SetString(text); err != nil {
		return di.DirectionLTR
	}
	o, err := p.Order()
	if err != nil || o.NumRuns() == 0 {
		return di.DirectionLTR
	}
	if o.Direction() == bidi.RightToLeft {
		return di.DirectionRTL
	}
	return di.DirectionLTR
}

// detectScript returns the script of the first non-space rune.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		switch r {
		case ' ', '\t', '\n', '\r':
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64.0
}
