package rosetta

import (
	"errors"
	"testing"
)

func TestPackResolverCascade(t *testing.T) {
	resolver := NewPackResolver()

	tests := []struct {
		name    string
		spec    LocaleSpec
		entries []Entry
		want    string
		wantErr error
	}{
		{
			name:    "territory beats language",
			spec:    LocaleSpec{Language: "en", Territory: "us", Modifier: "blank"},
			entries: fileEntries("en.toml", "en_US.toml"),
			want:    "en_US.toml",
		},
		{
			name:    "territory and modifier beat territory",
			spec:    LocaleSpec{Language: "sr", Territory: "rs", Modifier: "latin"},
			entries: fileEntries("sr.toml", "sr_RS.toml", "sr_RS@latin.toml"),
			want:    "sr_RS@latin.toml",
		},
		{
			name:    "modifier without territory",
			spec:    LocaleSpec{Language: "sr", Territory: "rs", Modifier: "latin"},
			entries: fileEntries("sr.toml", "sr@latin.toml"),
			want:    "sr@latin.toml",
		},
		{
			name:    "language only file",
			spec:    LocaleSpec{Language: "en", Territory: "us", Modifier: "blank"},
			entries: fileEntries("de.toml", "en.toml"),
			want:    "en.toml",
		},
		{
			name:    "duplicate candidates",
			spec:    LocaleSpec{Language: "fr", Territory: "xx", Modifier: "blank"},
			entries: fileEntries("en.toml", "fr.toml"),
			want:    "fr.toml",
		},
		{
			name:    "language prefix pass",
			spec:    LocaleSpec{Language: "pt", Territory: "br", Modifier: "blank"},
			entries: fileEntries("en.toml", "pt_PT.toml"),
			want:    "pt_PT.toml",
		},
		{
			name:    "fallback language pass",
			spec:    LocaleSpec{Language: "ja", Territory: "jp", Modifier: "blank"},
			entries: fileEntries("de.toml", "en_GB.toml"),
			want:    "en_GB.toml",
		},
		{
			name:    "nothing matches",
			spec:    LocaleSpec{Language: "en", Territory: "xx", Modifier: "blank"},
			entries: fileEntries("de.toml"),
			wantErr: ErrFileNotFound,
		},
		{
			name:    "empty language skips prefix pass",
			spec:    LocaleSpec{Language: "", Territory: "xx", Modifier: "blank"},
			entries: fileEntries("de.toml", "en.toml"),
			want:    "en.toml",
		},
		{
			name:    "empty language with no fallback",
			spec:    LocaleSpec{Language: "", Territory: "xx", Modifier: "blank"},
			entries: fileEntries("de.toml"),
			wantErr: ErrFileNotFound,
		},
		{
			name: "directories never match",
			spec: LocaleSpec{Language: "en", Territory: "us", Modifier: "blank"},
			entries: []Entry{
				{Name: "en_US.toml", IsFile: false},
				{Name: "en.toml", IsFile: true},
			},
			want: "en.toml",
		},
		{
			name:    "uppercase language reaches fallback pass",
			spec:    LocaleSpec{Language: "EN", Territory: "xx", Modifier: "blank"},
			entries: fileEntries("en.toml"),
			want:    "en.toml",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := resolver.Resolve(tc.spec, tc.entries)
			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("expected err %v, got %q, %v", tc.wantErr, got, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected err: %v", err)
			}
			if got != tc.want {
				t.Fatalf("Resolve() = %q want %q", got, tc.want)
			}
		})
	}
}

func TestPackResolverOptions(t *testing.T) {
	resolver := NewPackResolver(
		WithResolverExtension("yaml"),
		WithResolverFallbackLanguage(""),
	)

	if resolver.Extension() != ".yaml" {
		t.Fatalf("Extension() = %q", resolver.Extension())
	}

	spec := LocaleSpec{Language: "de", Territory: "at", Modifier: "blank"}
	got, err := resolver.Resolve(spec, fileEntries("de.toml", "de_AT.yaml"))
	if err != nil || got != "de_AT.yaml" {
		t.Fatalf("Resolve() = %q,%v", got, err)
	}

	spec = LocaleSpec{Language: "ja", Territory: "xx", Modifier: "blank"}
	if _, err := resolver.Resolve(spec, fileEntries("en.yaml")); !errors.Is(err, ErrFileNotFound) {
		t.Fatalf("expected ErrFileNotFound with fallback disabled, got %v", err)
	}
}

func TestMatchesCandidate(t *testing.T) {
	tests := []struct {
		name      string
		lang      string
		candidate string
		want      bool
	}{
		{"en_US.toml", "en", "en_us.toml", true},
		{"en_us.TOML", "en", "en_us.toml", true},
		{"EN_us.toml", "en", "en_us.toml", false},
		{"en_USA.toml", "en", "en_us.toml", false},
	}

	for _, tc := range tests {
		if got := matchesCandidate(tc.name, tc.lang, tc.candidate); got != tc.want {
			t.Fatalf("matchesCandidate(%q, %q) = %v", tc.name, tc.candidate, got)
		}
	}
}
