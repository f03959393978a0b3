package build

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/dpotapov/go-katex/parse"
)

// BaseSize is the size level of \normalsize.
const BaseSize = 6

var sizeStyleMap = [11][3]int{
	{1, 1, 1},
	{2, 1, 1},
	{3, 1, 1},
	{4, 2, 1},
	{5, 2, 1},
	{6, 3, 1},
	{7, 4, 2},
	{8, 6, 3},
	{9, 7, 6},
	{10, 8, 7},
	{11, 10, 9},
}

var sizeMultipliers = [11]float64{
	0.5, 0.6, 0.7, 0.8, 0.9, 1.0, 1.2, 1.44, 1.728, 2.074, 2.488,
}

// SizeMultiplier returns the font size of a size level (1 to 11) relative
// to \normalsize.
func SizeMultiplier(size int) float64 {
	return sizeMultipliers[size-1]
}

func sizeAtStyle(size int, style *Style) int {
	if style.size < 2 {
		return size
	}
	return sizeStyleMap[size-1][style.size-1]
}

// Options is the typesetting state of a subtree. Options values are never
// modified: every Having* and With* method returns the receiver when
// nothing changes and a modified copy otherwise.
type Options struct {
	Style      *Style
	Color      string
	Size       int
	TextSize   int
	Phantom    bool
	Font       string
	FontFamily string
	FontWeight string
	FontShape  string
	// SizeMultiplier is the font size relative to \normalsize.
	SizeMultiplier   float64
	MaxSize          float64
	MinRuleThickness float64

	metrics *FontMetrics
	logger  *slog.Logger
}

// NewOptions returns the options a render starts from.
func NewOptions(settings *parse.Settings) *Options {
	style := Text
	if settings.DisplayMode {
		style = Display
	}
	logger := settings.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Options{
		logger:           logger,
		Style:            style,
		Size:             BaseSize,
		TextSize:         BaseSize,
		SizeMultiplier:   sizeMultipliers[BaseSize-1],
		MaxSize:          settings.MaxSize,
		MinRuleThickness: settings.MinRuleThickness,
	}
}

func (o *Options) extend(f func(c *Options)) *Options {
	c := *o
	c.metrics = nil
	f(&c)
	c.SizeMultiplier = sizeMultipliers[c.Size-1]
	return &c
}

// HavingStyle returns options for style, shrinking the size when entering
// script styles.
func (o *Options) HavingStyle(style *Style) *Options {
	if o.Style == style {
		return o
	}
	return o.extend(func(c *Options) {
		c.Style = style
		c.Size = sizeAtStyle(o.TextSize, style)
	})
}

// HavingCrampedStyle returns options with the cramped version of the style.
func (o *Options) HavingCrampedStyle() *Options {
	return o.HavingStyle(o.Style.Cramp())
}

// HavingSize returns options at size level size, in text style.
func (o *Options) HavingSize(size int) *Options {
	if o.Size == size && o.TextSize == size {
		return o
	}
	return o.extend(func(c *Options) {
		c.Style = o.Style.Text()
		c.Size = size
		c.TextSize = size
	})
}

// HavingBaseStyle resets the size to the text size, then applies style.
// A nil style means the text version of the current style.
func (o *Options) HavingBaseStyle(style *Style) *Options {
	if style == nil {
		style = o.Style.Text()
	}
	want := sizeAtStyle(BaseSize, style)
	if o.Size == want && o.TextSize == BaseSize && o.Style == style {
		return o
	}
	return o.extend(func(c *Options) {
		c.Style = style
		c.Size = want
	})
}

// HavingBaseSizing resets the size to \normalsize, keeping the style class.
func (o *Options) HavingBaseSizing() *Options {
	var size int
	switch o.Style.ID() {
	case 4, 5:
		size = 3
	case 6, 7:
		size = 1
	default:
		size = 6
	}
	return o.extend(func(c *Options) {
		c.Style = o.Style.Text()
		c.Size = size
	})
}

func (o *Options) WithColor(color string) *Options {
	return o.extend(func(c *Options) { c.Color = color })
}

func (o *Options) WithPhantom() *Options {
	return o.extend(func(c *Options) { c.Phantom = true })
}

// WithFont sets the math font, e.g. "mathbf".
func (o *Options) WithFont(font string) *Options {
	return o.extend(func(c *Options) { c.Font = font })
}

func (o *Options) WithTextFontFamily(family string) *Options {
	return o.extend(func(c *Options) {
		c.FontFamily = family
		c.Font = ""
	})
}

func (o *Options) WithTextFontWeight(weight string) *Options {
	return o.extend(func(c *Options) {
		c.FontWeight = weight
		c.Font = ""
	})
}

func (o *Options) WithTextFontShape(shape string) *Options {
	return o.extend(func(c *Options) {
		c.FontShape = shape
		c.Font = ""
	})
}

// SizingClasses returns the CSS classes switching from old's size to o's.
func (o *Options) SizingClasses(old *Options) []string {
	if old.Size != o.Size {
		return []string{"sizing", fmt.Sprintf("reset-size%d", old.Size), fmt.Sprintf("size%d", o.Size)}
	}
	return nil
}

// BaseSizingClasses returns the CSS classes resetting o's size to
// \normalsize.
func (o *Options) BaseSizingClasses() []string {
	if o.Size != BaseSize {
		return []string{"sizing", fmt.Sprintf("reset-size%d", o.Size), fmt.Sprintf("size%d", BaseSize)}
	}
	return nil
}

// FontMetrics returns the font parameters at the current size.
func (o *Options) FontMetrics() *FontMetrics {
	if o.metrics == nil {
		o.metrics = GlobalMetrics(o.Size)
	}
	return o.metrics
}

// Logger returns the logger of the render.
func (o *Options) Logger() *slog.Logger {
	if o.logger == nil {
		return slog.Default()
	}
	return o.logger
}

// GetColor returns the current color. Phantoms are transparent.
func (o *Options) GetColor() string {
	if o.Phantom {
		return "transparent"
	}
	return o.Color
}

// CalculateSize converts a measurement to ems at the current size,
// capped by MaxSize.
func CalculateSize(m parse.Measurement, o *Options) (float64, error) {
	var scale float64
	if pt, ok := parse.PtPerUnit[m.Unit]; ok {
		scale = pt / o.FontMetrics().PtPerEm / o.SizeMultiplier
	} else if m.Unit == "mu" {
		scale = o.FontMetrics().CssEmPerMu
	} else {
		var unitOptions *Options
		if o.Style.IsTight() {
			unitOptions = o.HavingStyle(o.Style.Text())
		} else {
			unitOptions = o
		}
		switch m.Unit {
		case "ex":
			scale = unitOptions.FontMetrics().XHeight
		case "em":
			scale = unitOptions.FontMetrics().Quad
		default:
			return 0, parse.Errorf(nil, "Invalid unit: '%s'", m.Unit)
		}
		if unitOptions != o {
			scale *= unitOptions.SizeMultiplier / o.SizeMultiplier
		}
	}
	return math.Min(m.Number*scale, o.MaxSize), nil
}

// calcSize is CalculateSize for measurements whose unit the parser already
// validated.
func calcSize(m parse.Measurement, o *Options) float64 {
	v, err := CalculateSize(m, o)
	if err != nil {
		return 0
	}
	return v
}
