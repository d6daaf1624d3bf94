package registry

import (
	"fmt"
	"sync"
	"testing"

	"github.com/bjk2k/red-panda/pkg/errors"
)

// TestItem is a simple type for testing
type TestItem struct {
	ID   int
	Name string
}

func TestNew(t *testing.T) {
	reg := New[TestItem]()

	if reg == nil {
		t.Fatal("New() returned nil")
	}

	if n := len(reg.List()); n != 0 {
		t.Errorf("New registry should be empty, got %d items", n)
	}
}

func TestRegister(t *testing.T) {
	reg := New[TestItem]()

	t.Run("register valid item", func(t *testing.T) {
		if err := reg.Register("neovim", TestItem{ID: 1}); err != nil {
			t.Fatalf("Register() error = %v, want nil", err)
		}

		if n := len(reg.List()); n != 1 {
			t.Errorf("List() has %d items, want 1", n)
		}
	})

	t.Run("register with empty name", func(t *testing.T) {
		err := reg.Register("", TestItem{ID: 2})

		if !errors.IsErrorCode(err, errors.ErrInvalidInput) {
			t.Errorf("Register() with empty name should return ErrInvalidInput, got %v", err)
		}
	})

	t.Run("register duplicate", func(t *testing.T) {
		err := reg.Register("neovim", TestItem{ID: 3})

		if !errors.IsErrorCode(err, errors.ErrAlreadyExists) {
			t.Errorf("Register() duplicate should return ErrAlreadyExists, got %v", err)
		}
		if got := reg.List(); len(got) != 1 {
			t.Errorf("duplicate registration must not change the order, got %v", got)
		}
	})
}

func TestGet(t *testing.T) {
	reg := New[TestItem]()
	item := TestItem{ID: 1, Name: "tmux"}
	_ = reg.Register("tmux", item)

	got, err := reg.Get("tmux")
	if err != nil {
		t.Fatalf("Get() error = %v, want nil", err)
	}
	if got != item {
		t.Errorf("Get() = %+v, want %+v", got, item)
	}

	if _, err := reg.Get("emacs"); !errors.IsErrorCode(err, errors.ErrNotFound) {
		t.Errorf("Get() non-existing should return ErrNotFound, got %v", err)
	}
}

func TestList_PreservesRegistrationOrder(t *testing.T) {
	reg := New[TestItem]()

	names := []string{"zsh", "neovim", "pubkeys", "tmux", "secretkeys"}
	for i, name := range names {
		_ = reg.Register(name, TestItem{ID: i})
	}

	for round := 0; round < 3; round++ {
		list := reg.List()
		if len(list) != len(names) {
			t.Fatalf("List() returned %d items, want %d", len(list), len(names))
		}
		for i, name := range list {
			if name != names[i] {
				t.Errorf("round %d: List()[%d] = %s, want %s", round, i, name, names[i])
			}
		}
	}
}

func TestList_ReturnsCopy(t *testing.T) {
	reg := New[TestItem]()
	_ = reg.Register("a", TestItem{})
	_ = reg.Register("b", TestItem{})

	list := reg.List()
	list[0] = "mutated"

	if reg.List()[0] != "a" {
		t.Error("List() must not expose internal state")
	}
}

func TestConcurrency(t *testing.T) {
	reg := New[TestItem]()
	const goroutines = 10
	const itemsPerGoroutine = 100

	var wg sync.WaitGroup
	wg.Add(goroutines)

	for g := 0; g < goroutines; g++ {
		go func(goroutineID int) {
			defer wg.Done()
			for i := 0; i < itemsPerGoroutine; i++ {
				name := fmt.Sprintf("g%d_item%d", goroutineID, i)
				if err := reg.Register(name, TestItem{ID: goroutineID*1000 + i}); err != nil {
					t.Errorf("Concurrent Register() failed: %v", err)
				}
			}
		}(g)
	}

	wg.Wait()

	list := reg.List()
	if len(list) != goroutines*itemsPerGoroutine {
		t.Errorf("List() after concurrent writes has %d items, want %d", len(list), goroutines*itemsPerGoroutine)
	}
	for i, name := range list {
		if _, err := reg.Get(name); err != nil {
			t.Errorf("List()[%d] = %s is not retrievable: %v", i, name, err)
		}
	}
}
