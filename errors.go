package rosetta

import "errors"

var (
	// ErrLocaleParse indicates the locale tag could not be decomposed.
	ErrLocaleParse = errors.New("rosetta: locale tag could not be parsed")
	// ErrDirectoryUnavailable indicates the message pack directory cannot be listed.
	ErrDirectoryUnavailable = errors.New("rosetta: message pack directory unavailable")
	// ErrFileNotFound indicates no pack file matched any fallback pass.
	ErrFileNotFound = errors.New("rosetta: no message pack file found")
	// ErrFileUnreadable indicates the selected pack could not be read.
	ErrFileUnreadable = errors.New("rosetta: message pack unreadable")
	// ErrPackMalformed indicates the pack content is not a valid message tree.
	ErrPackMalformed = errors.New("rosetta: message pack malformed")
	// ErrKeyNotFound indicates the key path does not resolve to a leaf string.
	ErrKeyNotFound = errors.New("rosetta: message key not found")
	// ErrInvalidKey indicates an empty key or a key with empty segments.
	ErrInvalidKey = errors.New("rosetta: invalid message key")
	// ErrInvalidColorSpec indicates a color[...] argument is neither a name, an index nor an rgb triple.
	ErrInvalidColorSpec = errors.New("rosetta: invalid color spec")
	// ErrNotConfigured marks a translator built without a message pack directory.
	ErrNotConfigured = errors.New("rosetta: message pack directory not configured")
)

var errorKinds = []struct {
	err  error
	kind string
}{
	{ErrLocaleParse, "locale_parse"},
	{ErrDirectoryUnavailable, "directory_unavailable"},
	{ErrFileNotFound, "file_not_found"},
	{ErrFileUnreadable, "file_unreadable"},
	{ErrPackMalformed, "pack_malformed"},
	{ErrKeyNotFound, "key_not_found"},
	{ErrInvalidKey, "invalid_key"},
	{ErrInvalidColorSpec, "invalid_color_spec"},
	{ErrNotConfigured, "not_configured"},
}

// ErrorKind returns the kind tag for err, "" for nil and "unknown" for foreign errors.
func ErrorKind(err error) string {
	if err == nil {
		return ""
	}
	for _, entry := range errorKinds {
		if errors.Is(err, entry.err) {
			return entry.kind
		}
	}
	return "unknown"
}
