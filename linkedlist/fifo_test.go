package linkedlist

import (
	"errors"
	"testing"
)

func TestFIFOOrder(t *testing.T) {
	f := NewFIFO[int](3)

	if !f.IsEmpty() {
		t.Fatal("new FIFO should be empty")
	}
	for i := 1; i <= 3; i++ {
		if err := f.Push(i); err != nil {
			t.Fatalf("push %d failed: %v", i, err)
		}
	}
	if !f.IsFull() {
		t.Error("FIFO at max size should be full")
	}
	if err := f.Push(4); !errors.Is(err, ErrQueueFull) {
		t.Errorf("expected ErrQueueFull, got %v", err)
	}

	for i := 1; i <= 3; i++ {
		v, ok := f.Pop()
		if !ok || v != i {
			t.Fatalf("expected pop %d, got %d (ok=%v)", i, v, ok)
		}
	}
	if _, ok := f.Pop(); ok {
		t.Error("pop on empty FIFO should report no value")
	}
}

func TestFIFOInterleaved(t *testing.T) {
	f := NewFIFO[string](0)

	f.Push("a")
	f.Push("b")
	if v, _ := f.Pop(); v != "a" {
		t.Errorf("expected a, got %s", v)
	}
	f.Push("c")
	if v, _ := f.Pop(); v != "b" {
		t.Errorf("expected b, got %s", v)
	}
	if v, _ := f.Pop(); v != "c" {
		t.Errorf("expected c, got %s", v)
	}
}

func TestFIFOSetMaxSize(t *testing.T) {
	f := NewFIFO[int](0)

	f.Push(1)
	f.Push(2)
	f.Push(3)

	if err := f.SetMaxSize(2); !errors.Is(err, ErrMaxSizeTooSmall) {
		t.Errorf("expected ErrMaxSizeTooSmall, got %v", err)
	}
	if err := f.SetMaxSize(3); err != nil {
		t.Fatalf("SetMaxSize to exact size failed: %v", err)
	}
	if f.MaxSize() != 3 {
		t.Errorf("expected max size 3, got %d", f.MaxSize())
	}
	if err := f.Push(4); !errors.Is(err, ErrQueueFull) {
		t.Errorf("expected ErrQueueFull, got %v", err)
	}
}

func TestFIFOLen(t *testing.T) {
	f := NewFIFO[int](5)

	for i := 0; i < 5; i++ {
		if f.Len() != i {
			t.Fatalf("expected len %d, got %d", i, f.Len())
		}
		f.Push(i)
	}
	for i := 5; i > 0; i-- {
		if f.Len() != i {
			t.Fatalf("expected len %d, got %d", i, f.Len())
		}
		f.Pop()
	}
}
