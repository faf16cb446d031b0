package linkedlist

// FIFO is a first-in-first-out queue over a CircularQueue: Push
// inserts on the left, Pop removes from the right, so elements come
// out in insertion order. Everything else is delegation.
type FIFO[T any] struct {
	queue *CircularQueue[T]
}

// NewFIFO creates an empty FIFO holding at most maxSize elements.
// A maxSize of zero means no bound.
func NewFIFO[T any](maxSize int) *FIFO[T] {
	return &FIFO[T]{queue: NewCircularQueue[T](maxSize)}
}

// Len returns the number of elements currently stored.
func (f *FIFO[T]) Len() int {
	return f.queue.Len()
}

// IsEmpty reports whether the FIFO holds no elements.
func (f *FIFO[T]) IsEmpty() bool {
	return f.queue.IsEmpty()
}

// IsFull reports whether the FIFO is at its bound.
func (f *FIFO[T]) IsFull() bool {
	return f.queue.IsFull()
}

// MaxSize returns the current bound, zero meaning unbounded.
func (f *FIFO[T]) MaxSize() int {
	return f.queue.MaxSize()
}

// SetMaxSize replaces the bound; shrinking below the current element
// count fails with ErrMaxSizeTooSmall.
func (f *FIFO[T]) SetMaxSize(maxSize int) error {
	return f.queue.SetMaxSize(maxSize)
}

// Push adds value at the back of the FIFO. It fails with ErrQueueFull
// when the FIFO is at its bound.
func (f *FIFO[T]) Push(value T) error {
	return f.queue.Enqueue(value, SideLeft)
}

// Pop removes and returns the oldest element. On an empty FIFO it
// returns the zero value and false.
func (f *FIFO[T]) Pop() (T, bool) {
	return f.queue.Dequeue(SideRight)
}
