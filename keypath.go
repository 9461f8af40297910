package rosetta

import (
	"fmt"
	"regexp"
	"strings"
)

// MessageKey is a dotted key split into its path segments
type MessageKey struct {
	raw  string
	path []string
}

// Path returns a copy of the key segments
func (k MessageKey) Path() []string {
	return append([]string(nil), k.path...)
}

func (k MessageKey) String() string {
	return k.raw
}

// KeyParser splits dotted keys. It is immutable once built.
type KeyParser struct {
	separator *regexp.Regexp
}

func NewKeyParser() *KeyParser {
	return &KeyParser{separator: regexp.MustCompile(`\.`)}
}

// Parse splits key on dots. Empty keys and empty segments are rejected.
func (p *KeyParser) Parse(key string) (MessageKey, error) {
	if p == nil || p.separator == nil {
		p = NewKeyParser()
	}

	key = strings.TrimSpace(key)
	if key == "" {
		return MessageKey{}, fmt.Errorf("%w: empty key", ErrInvalidKey)
	}

	path := p.separator.Split(key, -1)
	for i, segment := range path {
		if segment == "" {
			return MessageKey{}, fmt.Errorf("%w: %q has an empty segment at position %d", ErrInvalidKey, key, i)
		}
	}

	return MessageKey{raw: key, path: path}, nil
}

// Lookup walks key from n down to a leaf string.
func (n *Node) Lookup(key MessageKey) (string, error) {
	if len(key.path) == 0 {
		return "", fmt.Errorf("%w: empty key", ErrInvalidKey)
	}

	current := n
	for i, segment := range key.path {
		if !current.IsTable() {
			return "", fmt.Errorf("%w: %q: %q is not a table", ErrKeyNotFound, key.raw, strings.Join(key.path[:i], "."))
		}
		child, ok := current.Child(segment)
		if !ok {
			return "", fmt.Errorf("%w: %q: no segment %q", ErrKeyNotFound, key.raw, segment)
		}
		current = child
	}

	value, ok := current.Value()
	if !ok {
		return "", fmt.Errorf("%w: %q names a table, not a message", ErrKeyNotFound, key.raw)
	}
	return value, nil
}
