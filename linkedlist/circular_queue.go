package linkedlist

import "errors"

var (
	// ErrQueueFull is returned by Enqueue when the queue already holds
	// MaxSize elements. The queue is left untouched.
	ErrQueueFull = errors.New("linkedlist: queue is full")

	// ErrMaxSizeTooSmall is returned by SetMaxSize when the requested
	// bound is below the current element count. The bound is left
	// untouched.
	ErrMaxSizeTooSmall = errors.New("linkedlist: new max size is less than current size")
)

// Side selects which end of the queue an operation works on.
type Side int

const (
	SideLeft Side = iota
	SideRight
)

// link maps a side to the node link slot on that side.
func (s Side) link() LinkName {
	if s == SideLeft {
		return Left
	}
	return Right
}

// opposite returns the mirror link slot.
func (s Side) opposite() LinkName {
	if s == SideLeft {
		return Right
	}
	return Left
}

// CircularQueue is a bounded double-ended queue over a cyclic
// doubly-linked ring of nodes. A single cursor node anchors the ring:
// it is nil exactly when the queue is empty. A queue with one element
// has a lone node with no links, a queue with two holds a mutual
// 2-cycle, and from three elements up the nodes form a single cycle
// under Right with Left as its exact inverse.
//
// Elements can only be added and removed, never read in place.
type CircularQueue[T any] struct {
	cursor  *Node[T]
	size    int
	maxSize int
}

// NewCircularQueue creates an empty queue holding at most maxSize
// elements. A maxSize of zero (or below) means no bound.
func NewCircularQueue[T any](maxSize int) *CircularQueue[T] {
	if maxSize < 0 {
		maxSize = 0
	}
	return &CircularQueue[T]{maxSize: maxSize}
}

// Len returns the number of elements currently stored.
func (q *CircularQueue[T]) Len() int {
	return q.size
}

// IsEmpty reports whether the queue holds no elements.
func (q *CircularQueue[T]) IsEmpty() bool {
	return q.size == 0
}

// IsFull reports whether the queue is at its bound. An unbounded
// queue is never full.
func (q *CircularQueue[T]) IsFull() bool {
	if q.maxSize == 0 {
		return false
	}
	return q.size == q.maxSize
}

// MaxSize returns the current bound, zero meaning unbounded.
func (q *CircularQueue[T]) MaxSize() int {
	return q.maxSize
}

// SetMaxSize replaces the bound. Shrinking below the current element
// count fails with ErrMaxSizeTooSmall; relaxing to unbounded via zero
// is always allowed.
func (q *CircularQueue[T]) SetMaxSize(maxSize int) error {
	if maxSize != 0 && maxSize < q.size {
		return ErrMaxSizeTooSmall
	}
	if maxSize < 0 {
		maxSize = 0
	}
	q.maxSize = maxSize
	return nil
}

// Enqueue adds value on the given side of the cursor. It fails with
// ErrQueueFull when the queue is at its bound, leaving it unmodified.
//
// The cursor never moves on insertion: going from one element to two,
// it stays on the pre-existing node, and from two up it keeps its
// position while the new node is spliced in beside it. Which element
// a later Dequeue reaches first depends on this.
func (q *CircularQueue[T]) Enqueue(value T, side Side) error {
	if q.IsFull() {
		return ErrQueueFull
	}

	newNode := NewNode(value)

	switch {
	case q.size == 0:
		// A true singleton carries no links, not a self-loop.
		q.cursor = newNode

	case q.size == 1:
		// Wire the lone node and the new one into a mutual 2-cycle.
		// Both sides collapse to the same structure here.
		q.cursor.SetLink(Left, newNode)
		q.cursor.SetLink(Right, newNode)
		newNode.SetLink(Left, q.cursor)
		newNode.SetLink(Right, q.cursor)

	default:
		// Splice the new node between the cursor and its neighbor on
		// the insertion side.
		near := side.link()
		far := side.opposite()

		neighbor := q.cursor.GetLink(near)
		if neighbor == nil {
			panic("linkedlist: ring node missing " + string(near) + " link")
		}

		newNode.SetLink(far, q.cursor)
		newNode.SetLink(near, neighbor)
		neighbor.SetLink(far, newNode)
		q.cursor.SetLink(near, newNode)
	}

	q.size++
	return nil
}

// Dequeue removes the cursor node, moves the cursor one step in the
// given direction, and returns the removed value. On an empty queue it
// returns the zero value and false; that is not an error.
//
// When exactly one node remains after removal, sideToMove picks which
// of the two structurally identical neighbors survives as the cursor.
func (q *CircularQueue[T]) Dequeue(sideToMove Side) (T, bool) {
	if q.size == 0 {
		var zero T
		return zero, false
	}

	detached := q.cursor
	q.cursor = nil

	switch {
	case q.size == 2:
		// The survivor collapses back into a true singleton.
		survivor := detached.GetLink(sideToMove.link())
		if survivor == nil {
			panic("linkedlist: pair node missing " + string(sideToMove.link()) + " link")
		}
		survivor.SetLink(Left, nil)
		survivor.SetLink(Right, nil)
		q.cursor = survivor

	case q.size > 2:
		// Cross-link the two neighbors to close the gap, then move
		// the cursor onto the neighbor on the requested side.
		left := detached.GetLink(Left)
		right := detached.GetLink(Right)
		if left == nil || right == nil {
			panic("linkedlist: ring node missing neighbor link")
		}
		left.SetLink(Right, right)
		right.SetLink(Left, left)
		if sideToMove == SideLeft {
			q.cursor = left
		} else {
			q.cursor = right
		}
	}

	q.size--

	value := detached.Clear()
	if value == nil {
		panic("linkedlist: ring node cleared twice")
	}
	return *value, true
}
