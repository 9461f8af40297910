package rosetta

import (
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// DecodeFunc turns raw file content into a generic document
type DecodeFunc func(data []byte) (map[string]any, error)

// Loader reads and decodes the named pack out of dir
type Loader interface {
	Load(dir Directory, name string) (*MessagePack, error)
}

// LoaderFunc adapters allow bare functions to implement Loader interface
type LoaderFunc func(dir Directory, name string) (*MessagePack, error)

// Load implements Loader for LoaderFunc
func (fn LoaderFunc) Load(dir Directory, name string) (*MessagePack, error) {
	return fn(dir, name)
}

// PackLoader decodes packs by file extension
type PackLoader struct {
	decoders map[string]DecodeFunc
}

var _ Loader = &PackLoader{}

// NewPackLoader registers the TOML, YAML and JSON decoders
func NewPackLoader() *PackLoader {
	return &PackLoader{
		decoders: map[string]DecodeFunc{
			".toml": decodeTOML,
			".yaml": decodeYAML,
			".yml":  decodeYAML,
			".json": decodeJSON,
		},
	}
}

// WithDecoder registers fn for ext, replacing any previous decoder
func (l *PackLoader) WithDecoder(ext string, fn DecodeFunc) *PackLoader {
	if l == nil || ext == "" || fn == nil {
		return l
	}
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	l.decoders[strings.ToLower(ext)] = fn
	return l
}

// Extensions lists the registered extensions
func (l *PackLoader) Extensions() []string {
	if l == nil {
		return nil
	}
	out := make([]string, 0, len(l.decoders))
	for ext := range l.decoders {
		out = append(out, ext)
	}
	sort.Strings(out)
	return out
}

func (l *PackLoader) Load(dir Directory, name string) (*MessagePack, error) {
	if dir == nil {
		return nil, ErrNotConfigured
	}

	data, err := dir.ReadFile(name)
	if err != nil {
		return nil, err
	}

	pack, err := l.Decode(dir.Path(name), data)
	if err != nil {
		return nil, err
	}
	return pack, nil
}

// Decode parses data, choosing the decoder from the extension of source.
func (l *PackLoader) Decode(source string, data []byte) (*MessagePack, error) {
	ext := strings.ToLower(filepath.Ext(source))

	decode, ok := l.decoders[ext]
	if !ok {
		return nil, fmt.Errorf("%w: %s: unsupported extension %q", ErrPackMalformed, source, ext)
	}

	raw, err := decode(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrPackMalformed, source, err)
	}

	pack, err := buildPack(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrPackMalformed, source, err)
	}
	pack.Source = source
	return pack, nil
}

func decodeTOML(data []byte) (map[string]any, error) {
	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			row, col := derr.Position()
			return nil, fmt.Errorf("toml parse error at %d:%d: %w", row, col, err)
		}
		return nil, fmt.Errorf("toml parse error: %w", err)
	}
	return raw, nil
}

func decodeYAML(data []byte) (map[string]any, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("yaml parse error: %w", err)
	}
	return raw, nil
}

func decodeJSON(data []byte) (map[string]any, error) {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("json parse error: %w", err)
	}
	return raw, nil
}

func buildPack(raw map[string]any) (*MessagePack, error) {
	if len(raw) == 0 {
		return nil, errors.New("empty document")
	}

	pack := &MessagePack{}
	for field, dst := range map[string]*string{
		"language":  &pack.Language,
		"territory": &pack.Territory,
		"modifier":  &pack.Modifier,
	} {
		value, ok := raw[field]
		if !ok {
			continue
		}
		str, ok := value.(string)
		if !ok {
			return nil, fmt.Errorf("field %q must be a string, got %T", field, value)
		}
		*dst = str
	}

	messages, ok := raw["messages"]
	if !ok {
		return nil, errors.New("missing messages table")
	}
	if _, isTable := asTable(messages); !isTable {
		return nil, fmt.Errorf("messages must be a table, got %T", messages)
	}

	root, err := buildNode("messages", messages)
	if err != nil {
		return nil, err
	}
	pack.Messages = root
	return pack, nil
}

func buildNode(path string, value any) (*Node, error) {
	if table, ok := asTable(value); ok {
		children := make(map[string]*Node, len(table))
		for key, child := range table {
			if key == "" {
				return nil, fmt.Errorf("empty key in %s", path)
			}
			node, err := buildNode(path+"."+key, child)
			if err != nil {
				return nil, err
			}
			children[key] = node
		}
		return NewTable(children), nil
	}

	switch v := value.(type) {
	case string:
		return NewLeaf(v), nil
	case nil:
		return nil, fmt.Errorf("%s has no value", path)
	case []any:
		return nil, fmt.Errorf("%s: arrays are not supported", path)
	default:
		// numbers, booleans and dates keep their natural text form
		return NewLeaf(fmt.Sprint(v)), nil
	}
}

func asTable(value any) (map[string]any, bool) {
	switch v := value.(type) {
	case map[string]any:
		return v, true
	case map[any]any:
		table := make(map[string]any, len(v))
		for key, child := range v {
			table[fmt.Sprint(key)] = child
		}
		return table, true
	default:
		return nil, false
	}
}
