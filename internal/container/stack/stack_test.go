package stack

import (
	"testing"
)

func TestStack_IsEmpty(t *testing.T) {
	stack := NewStack[int]()
	stack.Push(10)
	stack.Push(20)
	stack.Push(30)
	stack.Push(10)
	stack.Push(10)
	got := stack.IsEmpty()
	if got {
		t.Errorf("got = %v, want %v", got, false)
	}
}

func TestStack_IsFull(t *testing.T) {
	stack := NewStack[int]()
	stack.Push(10)
	stack.Push(20)
	stack.Push(30)
	stack.Push(10)
	stack.Push(10)
	for i := 5; i < 16; i++ {
		stack.Push(i)
	}
	got := stack.IsFull()
	if !got {
		t.Errorf("got = %v, want %v", got, true)
	}
}

func TestStack_Peek(t *testing.T) {
	stack := NewStack[int]()
	stack.Push(10)
	stack.Push(20)
	stack.Push(30)
	stack.Push(100)
	got, err := stack.Peek()
	if err != nil {
		return
	}
	if got != 100 {
		t.Errorf("got = %v, want = %v", got, 100)
	}
}

func TestStack_Pop(t *testing.T) {
	stack := NewStack[int]()
	stack.Push(10)
	stack.Push(20)
	stack.Push(30)
	stack.Push(100)
	got, err := stack.Pop()
	if err != nil {
		return
	}
	if got != 100 {
		t.Errorf("got = %v, want = %v", got, 100)
	}
}

func TestStack_Push(t *testing.T) {
	stack := NewStack[int]()
	stack.Push(10)
	stack.Push(20)
	stack.Push(30)
	stack.Push(100)
	got, err := stack.Peek()
	if err != nil {
		return
	}
	if got != 100 {
		t.Errorf("got = %v, want = %v", got, 100)
	}
}

func TestStack_Size(t *testing.T) {
	stack := NewStack[int]()
	stack.Push(10)
	stack.Push(20)
	stack.Push(30)
	stack.Push(100)
	got := stack.Size()
	if got != 4 {
		t.Errorf("got = %v, want = %v", got, 4)
	}
}
