package rosetta

import (
	"errors"
	"testing"
)

func TestKeyParserParse(t *testing.T) {
	parser := NewKeyParser()

	key, err := parser.Parse("a.b.c")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	path := key.Path()
	if len(path) != 3 || path[0] != "a" || path[1] != "b" || path[2] != "c" {
		t.Fatalf("Path() = %v", path)
	}

	key, err = parser.Parse("greeting")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if path := key.Path(); len(path) != 1 || path[0] != "greeting" {
		t.Fatalf("Path() = %v", path)
	}

	for _, bad := range []string{"", "  ", "a..b", ".a", "a."} {
		if _, err := parser.Parse(bad); !errors.Is(err, ErrInvalidKey) {
			t.Fatalf("Parse(%q) expected ErrInvalidKey, got %v", bad, err)
		}
	}
}

func TestNodeLookup(t *testing.T) {
	parser := NewKeyParser()

	tree := NewTable(map[string]*Node{
		"a": NewTable(map[string]*Node{
			"b": NewTable(map[string]*Node{
				"c": NewLeaf("hi"),
			}),
			"leaf": NewLeaf("value"),
		}),
	})

	empty := NewTable(map[string]*Node{
		"a": NewTable(map[string]*Node{
			"b": NewTable(nil),
		}),
	})

	tests := []struct {
		name    string
		tree    *Node
		key     string
		want    string
		wantErr error
	}{
		{name: "nested leaf", tree: tree, key: "a.b.c", want: "hi"},
		{name: "shallow leaf", tree: tree, key: "a.leaf", want: "value"},
		{name: "missing last segment", tree: empty, key: "a.b.c", wantErr: ErrKeyNotFound},
		{name: "missing first segment", tree: tree, key: "z", wantErr: ErrKeyNotFound},
		{name: "leaf in the middle", tree: tree, key: "a.leaf.more", wantErr: ErrKeyNotFound},
		{name: "path ends on a table", tree: tree, key: "a.b", wantErr: ErrKeyNotFound},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			key, err := parser.Parse(tc.key)
			if err != nil {
				t.Fatalf("Parse: %v", err)
			}
			got, err := tc.tree.Lookup(key)
			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("expected err %v, got %q,%v", tc.wantErr, got, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected err: %v", err)
			}
			if got != tc.want {
				t.Fatalf("Lookup() = %q want %q", got, tc.want)
			}
		})
	}
}

func TestNodeKeys(t *testing.T) {
	tree := NewTable(map[string]*Node{"b": NewLeaf("1"), "a": NewLeaf("2")})
	keys := tree.Keys()
	if len(keys) != 2 || keys[0] != "a" || keys[1] != "b" {
		t.Fatalf("Keys() = %v", keys)
	}
	if NewLeaf("x").Keys() != nil {
		t.Fatal("leaf should have no keys")
	}
}
