package rosetta

import (
	"fmt"
	"strings"

	"github.com/muesli/termenv"
)

// DirectiveToken opens an inline style directive
const DirectiveToken = "(ansi "

const concealSeq = "8"

// Segment is a run of text and the style that governs it. Style is nil for
// the text before the first directive.
type Segment struct {
	Text  string
	Style *StyleCommand
}

// Renderer turns (ansi ...) directives into SGR escape sequences
type Renderer struct {
	parser   *StyleParser
	profile  termenv.Profile
	disabled bool
}

// RendererOption configures a Renderer
type RendererOption func(*Renderer)

// WithRendererProfile down-converts colors to profile. termenv.Ascii drops
// all escape codes while still consuming the directives.
func WithRendererProfile(profile termenv.Profile) RendererOption {
	return func(r *Renderer) {
		r.profile = profile
	}
}

func WithRendererColorMode(mode ColorMode) RendererOption {
	return func(r *Renderer) {
		r.parser = NewStyleParser(mode)
	}
}

// WithRendererDisabled leaves directives in the text untouched
func WithRendererDisabled() RendererOption {
	return func(r *Renderer) {
		r.disabled = true
	}
}

func NewRenderer(opts ...RendererOption) *Renderer {
	r := &Renderer{
		parser:  NewStyleParser(ColorAccumulate),
		profile: termenv.TrueColor,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(r)
		}
	}
	return r
}

// Segments splits text on directives and parses each command body.
func (r *Renderer) Segments(text string) ([]Segment, error) {
	parser := NewStyleParser(ColorAccumulate)
	if r != nil && r.parser != nil {
		parser = r.parser
	}

	parts := strings.Split(text, DirectiveToken)
	segments := make([]Segment, 1, len(parts))
	segments[0] = Segment{Text: parts[0]}

	for _, part := range parts[1:] {
		body, styled, ok := strings.Cut(part, ")")
		if !ok {
			// unterminated directive stays literal
			segments[len(segments)-1].Text += DirectiveToken + part
			continue
		}

		cmd, err := parser.ParseCommand(body)
		if err != nil {
			return nil, err
		}
		segments = append(segments, Segment{Text: styled, Style: &cmd})
	}

	return segments, nil
}

// Render replaces every directive in text with the escape-coded span of the
// text it governs.
func (r *Renderer) Render(text string) (string, error) {
	if r != nil && r.disabled {
		return text, nil
	}
	if !strings.Contains(text, DirectiveToken) {
		return text, nil
	}

	segments, err := r.Segments(text)
	if err != nil {
		return "", err
	}
	return r.Join(segments), nil
}

// Join renders segments in order
func (r *Renderer) Join(segments []Segment) string {
	var b strings.Builder
	for _, segment := range segments {
		b.WriteString(r.Span(segment))
	}
	return b.String()
}

// Span renders a single segment
func (r *Renderer) Span(segment Segment) string {
	if segment.Style == nil || segment.Text == "" {
		return segment.Text
	}

	codes := r.sequence(*segment.Style)
	if codes == "" {
		return segment.Text
	}
	return termenv.CSI + codes + "m" + segment.Text + termenv.CSI + termenv.ResetSeq + "m"
}

func (r *Renderer) sequence(cmd StyleCommand) string {
	profile := termenv.TrueColor
	if r != nil {
		profile = r.profile
	}
	if profile == termenv.Ascii {
		return ""
	}

	var codes []string
	for _, attr := range []struct {
		flag Attribute
		seq  string
	}{
		{AttrBold, termenv.BoldSeq},
		{AttrDimmed, termenv.FaintSeq},
		{AttrItalic, termenv.ItalicSeq},
		{AttrUnderline, termenv.UnderlineSeq},
		{AttrBlink, termenv.BlinkSeq},
		{AttrReverse, termenv.ReverseSeq},
		{AttrHidden, concealSeq},
		{AttrStrikethrough, termenv.CrossOutSeq},
	} {
		if cmd.Has(attr.flag) {
			codes = append(codes, attr.seq)
		}
	}

	if seq := colorSequence(profile, cmd.Foreground, false); seq != "" {
		codes = append(codes, seq)
	}
	if seq := colorSequence(profile, cmd.Background, true); seq != "" {
		codes = append(codes, seq)
	}

	return strings.Join(codes, ";")
}

func colorSequence(profile termenv.Profile, spec *ColorSpec, bg bool) string {
	if spec == nil {
		return ""
	}
	color := profile.Convert(termColor(*spec, profile))
	if color == nil {
		return ""
	}
	return color.Sequence(bg)
}

func termColor(spec ColorSpec, profile termenv.Profile) termenv.Color {
	switch spec.Kind {
	case ColorNamed:
		if spec.Name == DefaultColor {
			return defaultColor{}
		}
		return namedColors[spec.Name]
	case ColorIndexed:
		return termenv.ANSI256Color(spec.Index)
	case ColorRGB:
		if profile == termenv.TrueColor {
			return rgbColor{r: spec.R, g: spec.G, b: spec.B}
		}
		return termenv.RGBColor(fmt.Sprintf("#%02x%02x%02x", spec.R, spec.G, spec.B))
	default:
		return termenv.NoColor{}
	}
}

var namedColors = map[ColorName]termenv.ANSIColor{
	Black:        termenv.ANSIBlack,
	Red:          termenv.ANSIRed,
	Green:        termenv.ANSIGreen,
	Yellow:       termenv.ANSIYellow,
	Blue:         termenv.ANSIBlue,
	Purple:       termenv.ANSIMagenta,
	Magenta:      termenv.ANSIMagenta,
	Cyan:         termenv.ANSICyan,
	White:        termenv.ANSIWhite,
	DarkGray:     termenv.ANSIBrightBlack,
	LightRed:     termenv.ANSIBrightRed,
	LightGreen:   termenv.ANSIBrightGreen,
	LightYellow:  termenv.ANSIBrightYellow,
	LightBlue:    termenv.ANSIBrightBlue,
	LightPurple:  termenv.ANSIBrightMagenta,
	LightMagenta: termenv.ANSIBrightMagenta,
	LightCyan:    termenv.ANSIBrightCyan,
	LightGray:    termenv.ANSIBrightWhite,
}

// defaultColor resets a channel to the terminal default (39/49)
type defaultColor struct{}

func (defaultColor) Sequence(bg bool) string {
	if bg {
		return "49"
	}
	return "39"
}

// rgbColor keeps exact components; termenv.RGBColor round-trips through floats
type rgbColor struct {
	r, g, b uint8
}

func (c rgbColor) Sequence(bg bool) string {
	prefix := termenv.Foreground
	if bg {
		prefix = termenv.Background
	}
	return fmt.Sprintf("%s;2;%d;%d;%d", prefix, c.r, c.g, c.b)
}
