package rosetta

import (
	"fmt"
	"strings"
)

const (
	// DefaultExtension is the message pack file extension used when none is configured.
	DefaultExtension = ".toml"
	// DefaultFallbackLanguage is the language prefix tried when nothing else matched.
	DefaultFallbackLanguage = "en"
)

// FallbackResolver picks the message pack file for a locale out of a directory listing
type FallbackResolver interface {
	Resolve(spec LocaleSpec, entries []Entry) (string, error)
}

// PackResolver walks the file name cascade: the four candidate names, then
// any file prefixed by the language, then any file prefixed by the fallback
// language.
type PackResolver struct {
	extension string
	fallback  string
}

var _ FallbackResolver = &PackResolver{}

// ResolverOption configures a PackResolver
type ResolverOption func(*PackResolver)

func WithResolverExtension(ext string) ResolverOption {
	return func(r *PackResolver) {
		if ext == "" {
			return
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		r.extension = ext
	}
}

func WithResolverFallbackLanguage(lang string) ResolverOption {
	return func(r *PackResolver) {
		r.fallback = strings.TrimSpace(lang)
	}
}

func NewPackResolver(opts ...ResolverOption) *PackResolver {
	r := &PackResolver{
		extension: DefaultExtension,
		fallback:  DefaultFallbackLanguage,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(r)
		}
	}
	return r
}

// Extension returns the configured pack extension
func (r *PackResolver) Extension() string {
	if r == nil {
		return DefaultExtension
	}
	return r.extension
}

// Resolve returns the name of the chosen entry or ErrFileNotFound.
func (r *PackResolver) Resolve(spec LocaleSpec, entries []Entry) (string, error) {
	if r == nil {
		r = NewPackResolver()
	}

	for _, candidate := range spec.CandidateFileNames(r.extension) {
		for _, entry := range entries {
			if entry.IsFile && matchesCandidate(entry.Name, spec.Language, candidate) {
				return entry.Name, nil
			}
		}
	}

	// an empty language would prefix every file
	if spec.Language != "" {
		if name, ok := firstWithPrefix(entries, spec.Language); ok {
			return name, nil
		}
	}

	if r.fallback != "" {
		if name, ok := firstWithPrefix(entries, r.fallback); ok {
			return name, nil
		}
	}

	return "", fmt.Errorf("%w: locale %q", ErrFileNotFound, spec.Language)
}

// matchesCandidate compares the language exactly and the remaining
// territory, modifier and extension segments case-insensitively.
func matchesCandidate(name, lang, candidate string) bool {
	if !strings.HasPrefix(name, lang) {
		return false
	}
	return strings.EqualFold(name[len(lang):], candidate[len(lang):])
}

func firstWithPrefix(entries []Entry, prefix string) (string, bool) {
	for _, entry := range entries {
		if entry.IsFile && strings.HasPrefix(entry.Name, prefix) {
			return entry.Name, true
		}
	}
	return "", false
}
