package rosetta

import "sort"

// MessagePack is the decoded content of one locale file
type MessagePack struct {
	// Language, Territory and Modifier are self-declared metadata. They need
	// not match the locale that selected the file.
	Language  string
	Territory string
	Modifier  string
	Messages  *Node
	Source    string
}

// Node is either a leaf string or a table of named child nodes
type Node struct {
	value    string
	children map[string]*Node
}

// NewLeaf builds a leaf node
func NewLeaf(value string) *Node {
	return &Node{value: value}
}

// NewTable builds a table node, an empty one when children is nil
func NewTable(children map[string]*Node) *Node {
	if children == nil {
		children = make(map[string]*Node)
	}
	return &Node{children: children}
}

func (n *Node) IsTable() bool {
	return n != nil && n.children != nil
}

// Value returns the leaf string, ok=false for tables
func (n *Node) Value() (string, bool) {
	if n == nil || n.IsTable() {
		return "", false
	}
	return n.value, true
}

// Child returns the named child of a table node
func (n *Node) Child(name string) (*Node, bool) {
	if !n.IsTable() {
		return nil, false
	}
	child, ok := n.children[name]
	return child, ok && child != nil
}

// Keys returns the child names of a table node in sorted order
func (n *Node) Keys() []string {
	if !n.IsTable() || len(n.children) == 0 {
		return nil
	}
	keys := make([]string, 0, len(n.children))
	for key := range n.children {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
