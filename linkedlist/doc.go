// Package linkedlist implements a bounded double-ended circular queue
// built on a cyclic doubly-linked ring of nodes, plus a FIFO wrapper
// over it. The ring is anchored by a single roaming cursor; insertion
// and removal at either end are O(1) pointer surgery and the ring is
// back in a consistent state by the time each call returns.
//
// The package is a single-writer structure: no locking is done and no
// concurrent mutation is supported. Wrap a queue in one external mutex
// if it must be shared between goroutines.
package linkedlist
