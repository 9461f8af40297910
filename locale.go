package rosetta

import (
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/text/language"
)

const (
	// DefaultTerritory is used when the tag carries no _TERRITORY part.
	DefaultTerritory = "xx"
	// DefaultEncoding is used when the tag carries no .encoding part.
	DefaultEncoding = "blank"
	// DefaultModifier is used when the tag carries no @modifier part.
	DefaultModifier = "blank"
)

// LocaleSpec is a decomposed POSIX locale tag such as en_US.UTF-8@euro.
//
// Territory, Encoding and Modifier are lower-cased so file name matching is
// case-insensitive. Language keeps the case found in the tag.
type LocaleSpec struct {
	Language  string
	Territory string
	Encoding  string
	Modifier  string
}

// LocaleParser decomposes locale tags. It is immutable once built and may be
// shared between goroutines.
type LocaleParser struct {
	pattern *regexp.Regexp

	language  int
	territory int
	encoding  int
	modifier  int
}

// NewLocaleParser compiles the locale tag grammar.
func NewLocaleParser() *LocaleParser {
	// Encoding stops at "@". A greedy encoding group would read
	// en_US.UTF-8@euro as encoding "utf-8@euro" with modifier "blank".
	pattern := regexp.MustCompile(`^(?P<language>[a-zA-Z]*)(?P<territory>_..)?(?P<encoding>\.[^@]*)?(?P<modifier>@[a-zA-Z0-9]*)?`)
	return &LocaleParser{
		pattern:   pattern,
		language:  pattern.SubexpIndex("language"),
		territory: pattern.SubexpIndex("territory"),
		encoding:  pattern.SubexpIndex("encoding"),
		modifier:  pattern.SubexpIndex("modifier"),
	}
}

// Parse splits tag into its four fields, substituting defaults for the
// missing ones. An empty language is accepted.
func (p *LocaleParser) Parse(tag string) (LocaleSpec, error) {
	if p == nil || p.pattern == nil {
		return LocaleSpec{}, fmt.Errorf("%w: parser not initialized", ErrLocaleParse)
	}

	match := p.pattern.FindStringSubmatch(strings.TrimSpace(tag))
	if match == nil {
		return LocaleSpec{}, fmt.Errorf("%w: %q", ErrLocaleParse, tag)
	}

	return LocaleSpec{
		Language:  match[p.language],
		Territory: groupOrDefault(match[p.territory], "_", DefaultTerritory),
		Encoding:  groupOrDefault(match[p.encoding], ".", DefaultEncoding),
		Modifier:  groupOrDefault(match[p.modifier], "@", DefaultModifier),
	}, nil
}

func groupOrDefault(group, prefix, fallback string) string {
	if group == "" {
		return fallback
	}
	return strings.ToLower(strings.TrimPrefix(group, prefix))
}

// HasTerritory reports whether the tag named a territory.
func (s LocaleSpec) HasTerritory() bool {
	return s.Territory != "" && s.Territory != DefaultTerritory
}

// HasModifier reports whether the tag named a modifier.
func (s LocaleSpec) HasModifier() bool {
	return s.Modifier != "" && s.Modifier != DefaultModifier
}

// CandidateFileNames returns the four pack file names to try, most specific
// first. Segments equal to their default are omitted, so the list may hold
// duplicates.
func (s LocaleSpec) CandidateFileNames(ext string) []string {
	territory := ""
	if s.HasTerritory() {
		territory = "_" + s.Territory
	}
	modifier := ""
	if s.HasModifier() {
		modifier = "@" + s.Modifier
	}

	return []string{
		s.Language + territory + modifier + ext,
		s.Language + territory + ext,
		s.Language + modifier + ext,
		s.Language + ext,
	}
}

// Tag returns the closest BCP 47 tag, language.Und when none can be formed.
func (s LocaleSpec) Tag() language.Tag {
	if s.Language == "" {
		return language.Und
	}

	if s.HasTerritory() {
		if tag, err := language.Parse(s.Language + "-" + s.Territory); err == nil {
			return tag
		}
	}

	tag, err := language.Parse(s.Language)
	if err != nil {
		return language.Und
	}
	return tag
}

func (s LocaleSpec) String() string {
	return fmt.Sprintf("lang: %s, terr: %s, encd: %s, mod: %s", s.Language, s.Territory, s.Encoding, s.Modifier)
}
