package linkedlist

import "errors"

// ErrNodeCleared is returned by GetReference on a node whose Clear has
// already run. The ring never calls GetReference on a node it is about
// to discard, so seeing this error means a caller kept using a handle
// past the node's lifetime.
var ErrNodeCleared = errors.New("linkedlist: node has been cleared")

// LinkName identifies a directional link slot inside a Node. The ring
// uses only Left and Right; the remaining names (and any custom string)
// exist so the node type can serve richer link graphs.
type LinkName string

const (
	Left     LinkName = "left"
	Right    LinkName = "right"
	Previous LinkName = "previous"
	Next     LinkName = "next"
	First    LinkName = "first"
	Last     LinkName = "last"
	To       LinkName = "to"
	From     LinkName = "from"
)

// Node is a unit of storage holding one value and a set of named
// directional links to peer nodes. A node also keeps a handle to its
// own allocation so a live node can hand out additional references to
// itself without the caller already holding one.
//
// Optional values are represented as *T throughout: nil means absent.
type Node[T any] struct {
	data  *T
	self  *Node[T]
	links map[LinkName]*Node[T]
}

// NewNode allocates a node holding value, with no links and the
// self-reference installed.
func NewNode[T any](value T) *Node[T] {
	n := &Node[T]{links: make(map[LinkName]*Node[T])}
	n.self = n
	n.data = &value
	return n
}

// GetReference returns a fresh handle to the node itself via the
// stored self-reference. It fails only after Clear.
func (n *Node[T]) GetReference() (*Node[T], error) {
	if n.self == nil {
		return nil, ErrNodeCleared
	}
	return n.self, nil
}

// ReadData returns the stored value, or nil once the node is cleared.
func (n *Node[T]) ReadData() *T {
	return n.data
}

// SetData replaces the stored value and returns the previous one
// (nil if there was none).
func (n *Node[T]) SetData(value T) *T {
	old := n.data
	n.data = &value
	return old
}

// Clear drops every link and the self-reference, then takes and
// returns the stored value. The node is terminal afterwards: ReadData
// returns nil and GetReference fails.
func (n *Node[T]) Clear() *T {
	n.links = make(map[LinkName]*Node[T])
	n.self = nil
	old := n.data
	n.data = nil
	return old
}

// SetLink inserts, replaces, or removes (nil peer) the named link and
// returns whatever was stored under that name before. A removed link
// and a never-set link are indistinguishable afterwards.
func (n *Node[T]) SetLink(name LinkName, peer *Node[T]) *Node[T] {
	old := n.links[name]
	if peer == nil {
		delete(n.links, name)
		return old
	}
	n.links[name] = peer
	return old
}

// GetLink returns the named neighbor, or nil if there is none.
func (n *Node[T]) GetLink(name LinkName) *Node[T] {
	return n.links[name]
}
