package rosetta

import (
	"fmt"
	"strconv"
	"strings"
)

// Attribute is a set of boolean text attributes
type Attribute uint16

const (
	AttrBold Attribute = 1 << iota
	AttrDimmed
	AttrItalic
	AttrUnderline
	AttrBlink
	AttrReverse
	AttrHidden
	AttrStrikethrough
)

// attributeKeywords is ordered the way the SGR codes are emitted
var attributeKeywords = []struct {
	word string
	attr Attribute
}{
	{"bold", AttrBold},
	{"dimmed", AttrDimmed},
	{"italic", AttrItalic},
	{"underline", AttrUnderline},
	{"blink", AttrBlink},
	{"reverse", AttrReverse},
	{"hidden", AttrHidden},
	{"strikethrough", AttrStrikethrough},
}

// ColorName enumerates the canonical color words
type ColorName int

const (
	Black ColorName = iota
	Red
	Green
	Yellow
	Blue
	Purple
	Magenta
	Cyan
	White
	DarkGray
	LightRed
	LightGreen
	LightYellow
	LightBlue
	LightPurple
	LightMagenta
	LightCyan
	LightGray
	DefaultColor
)

var colorNames = map[string]ColorName{
	"black":        Black,
	"red":          Red,
	"green":        Green,
	"yellow":       Yellow,
	"blue":         Blue,
	"purple":       Purple,
	"magenta":      Magenta,
	"cyan":         Cyan,
	"white":        White,
	"darkgray":     DarkGray,
	"lightred":     LightRed,
	"lightgreen":   LightGreen,
	"lightyellow":  LightYellow,
	"lightblue":    LightBlue,
	"lightpurple":  LightPurple,
	"lightmagenta": LightMagenta,
	"lightcyan":    LightCyan,
	"lightgray":    LightGray,
	"default":      DefaultColor,
}

// colorWords is indexed by ColorName and must follow the constant order
var colorWords = [...]string{
	Black:        "black",
	Red:          "red",
	Green:        "green",
	Yellow:       "yellow",
	Blue:         "blue",
	Purple:       "purple",
	Magenta:      "magenta",
	Cyan:         "cyan",
	White:        "white",
	DarkGray:     "darkgray",
	LightRed:     "lightred",
	LightGreen:   "lightgreen",
	LightYellow:  "lightyellow",
	LightBlue:    "lightblue",
	LightPurple:  "lightpurple",
	LightMagenta: "lightmagenta",
	LightCyan:    "lightcyan",
	LightGray:    "lightgray",
	DefaultColor: "default",
}

func (n ColorName) String() string {
	if n >= 0 && int(n) < len(colorWords) {
		return colorWords[n]
	}
	return fmt.Sprintf("ColorName(%d)", int(n))
}

// ColorKind tags the ColorSpec variant
type ColorKind int

const (
	ColorNamed ColorKind = iota + 1
	ColorIndexed
	ColorRGB
)

// ColorSpec is a named color, an 8-bit palette index or an RGB triple
type ColorSpec struct {
	Kind  ColorKind
	Name  ColorName
	Index uint8
	R     uint8
	G     uint8
	B     uint8
}

func Named(name ColorName) ColorSpec {
	return ColorSpec{Kind: ColorNamed, Name: name}
}

func Indexed(index uint8) ColorSpec {
	return ColorSpec{Kind: ColorIndexed, Index: index}
}

func RGB(r, g, b uint8) ColorSpec {
	return ColorSpec{Kind: ColorRGB, R: r, G: g, B: b}
}

func (c ColorSpec) String() string {
	switch c.Kind {
	case ColorNamed:
		return c.Name.String()
	case ColorIndexed:
		return fmt.Sprintf("%d", c.Index)
	case ColorRGB:
		return fmt.Sprintf("%d;%d;%d", c.R, c.G, c.B)
	default:
		return "none"
	}
}

// ColorChannel selects foreground or background
type ColorChannel int

const (
	Foreground ColorChannel = iota
	Background
)

// ColorMode decides how several color[...] directives in one command combine
type ColorMode int

const (
	// ColorAccumulate lets each directive update its own channel on the running style.
	ColorAccumulate ColorMode = iota
	// ColorLastWins applies every directive to the pre-color style, so only the
	// last directive's channel survives.
	ColorLastWins
)

// StyleCommand is the parsed body of one (ansi ...) directive
type StyleCommand struct {
	Attributes Attribute
	Foreground *ColorSpec
	Background *ColorSpec
}

func (c StyleCommand) Has(attr Attribute) bool {
	return c.Attributes&attr != 0
}

// IsPlain reports whether the command carries neither attributes nor colors
func (c StyleCommand) IsPlain() bool {
	return c.Attributes == 0 && c.Foreground == nil && c.Background == nil
}

func (c StyleCommand) with(channel ColorChannel, spec ColorSpec) StyleCommand {
	if channel == Background {
		c.Background = &spec
	} else {
		c.Foreground = &spec
	}
	return c
}

// StyleParser parses directive bodies such as "bold color[bg;10;20;30]".
type StyleParser struct {
	mode ColorMode
}

func NewStyleParser(mode ColorMode) *StyleParser {
	return &StyleParser{mode: mode}
}

// ParseCommand reads keyword attributes and color[...] directives out of
// body. Unknown tokens are ignored.
func (p *StyleParser) ParseCommand(body string) (StyleCommand, error) {
	mode := ColorAccumulate
	if p != nil {
		mode = p.mode
	}

	var cmd StyleCommand
	for _, kw := range attributeKeywords {
		if strings.Contains(body, kw.word) {
			cmd.Attributes |= kw.attr
		}
	}

	args, err := colorArguments(body)
	if err != nil {
		return StyleCommand{}, err
	}

	base := cmd
	for _, arg := range args {
		channel, spec, err := ParseColorSpec(arg)
		if err != nil {
			return StyleCommand{}, err
		}
		if mode == ColorLastWins {
			cmd = base.with(channel, spec)
			continue
		}
		cmd = cmd.with(channel, spec)
	}

	return cmd, nil
}

// colorArguments pairs the nth "color[" with the nth "]" of body.
func colorArguments(body string) ([]string, error) {
	const open = "color["

	var starts []int
	for offset := 0; ; {
		idx := strings.Index(body[offset:], open)
		if idx < 0 {
			break
		}
		starts = append(starts, offset+idx+len(open))
		offset += idx + len(open)
	}
	if len(starts) == 0 {
		return nil, nil
	}

	var closes []int
	for i := 0; i < len(body); i++ {
		if body[i] == ']' {
			closes = append(closes, i)
		}
	}

	args := make([]string, 0, len(starts))
	for n, start := range starts {
		if n >= len(closes) || closes[n] < start {
			return nil, fmt.Errorf("%w: unterminated color[ in %q", ErrInvalidColorSpec, body)
		}
		args = append(args, body[start:closes[n]])
	}
	return args, nil
}

// ParseColorSpec parses one color[...] argument: an optional "fg;" or "bg;"
// prefix, then a color name, a palette index or an r;g;b triple.
func ParseColorSpec(arg string) (ColorChannel, ColorSpec, error) {
	channel := Foreground
	rest := strings.TrimSpace(arg)
	if len(rest) >= 3 {
		switch strings.ToLower(rest[:3]) {
		case "bg;":
			channel = Background
			rest = rest[3:]
		case "fg;":
			rest = rest[3:]
		}
	}

	parts := strings.Split(rest, ";")
	switch {
	case len(parts) < 3:
		spec, err := parseColorWord(parts[0])
		if err != nil {
			return channel, ColorSpec{}, fmt.Errorf("%w: %q: %w", ErrInvalidColorSpec, arg, err)
		}
		return channel, spec, nil
	case len(parts) == 3:
		var rgb [3]uint8
		for i, part := range parts {
			value, err := parseComponent(part)
			if err != nil {
				return channel, ColorSpec{}, fmt.Errorf("%w: %q: %w", ErrInvalidColorSpec, arg, err)
			}
			rgb[i] = value
		}
		return channel, RGB(rgb[0], rgb[1], rgb[2]), nil
	default:
		return channel, ColorSpec{}, fmt.Errorf("%w: %q: expected a name, an index or r;g;b", ErrInvalidColorSpec, arg)
	}
}

func parseColorWord(word string) (ColorSpec, error) {
	word = strings.TrimSpace(word)
	if name, ok := colorNames[strings.ToLower(word)]; ok {
		return Named(name), nil
	}
	index, err := parseComponent(word)
	if err != nil {
		return ColorSpec{}, err
	}
	return Indexed(index), nil
}

func parseComponent(raw string) (uint8, error) {
	raw = strings.TrimSpace(raw)
	value, err := strconv.ParseUint(raw, 10, 8)
	if err != nil {
		return 0, fmt.Errorf("%q is not a color name or a number in 0-255", raw)
	}
	return uint8(value), nil
}
