package sorting_test

import (
	"errors"
	"testing"

	"github.com/hasbyte1/go-fixed-array/sequence"
	"github.com/hasbyte1/go-fixed-array/sorting"
)

func TestNewDefaultManager(t *testing.T) {
	m := sorting.NewDefaultManager[int]()
	if m.DefaultDriver() != sorting.DriverMerge {
		t.Fatalf("DefaultDriver = %q; want merge", m.DefaultDriver())
	}
	for _, name := range []sorting.DriverName{sorting.DriverMerge, sorting.DriverQuick, sorting.DriverHeap} {
		if !m.HasDriver(name) {
			t.Fatalf("driver %q not registered", name)
		}
	}
	st, err := m.Sort(sequence.StoreOf(5, 3, 4, 1, 2), numeric)
	if err != nil {
		t.Fatal(err)
	}
	assertSlice(t, st.Values(), []int{1, 2, 3, 4, 5})
}

func TestManagerRegisterDriver(t *testing.T) {
	m := sorting.NewManager[int]("custom")
	if _, err := m.Sort(sequence.StoreOf(1), numeric); !errors.Is(err, sorting.ErrDriverNotFound) {
		t.Fatalf("err = %v; want ErrDriverNotFound", err)
	}

	if err := m.RegisterDriver("", sorting.Merge[int]); !errors.Is(err, sorting.ErrEmptyDriverName) {
		t.Fatalf("err = %v; want ErrEmptyDriverName", err)
	}
	if err := m.RegisterDriver("custom", nil); !errors.Is(err, sorting.ErrNilDriver) {
		t.Fatalf("err = %v; want ErrNilDriver", err)
	}

	called := false
	err := m.RegisterDriver("custom", func(src sequence.Sequence[int], c sorting.Comparator[int]) (*sequence.Store[int], error) {
		called = true
		return sorting.Quick(src, c)
	})
	if err != nil {
		t.Fatal(err)
	}
	st, err := m.Sort(sequence.StoreOf(2, 1), numeric)
	if err != nil {
		t.Fatal(err)
	}
	if !called {
		t.Fatal("custom driver was not used")
	}
	assertSlice(t, st.Values(), []int{1, 2})
}

func TestManagerSetDefaultDriver(t *testing.T) {
	m := sorting.NewDefaultManager[int]()
	if err := m.SetDefaultDriver("missing"); !errors.Is(err, sorting.ErrDriverNotFound) {
		t.Fatalf("err = %v; want ErrDriverNotFound", err)
	}
	if err := m.SetDefaultDriver(sorting.DriverHeap); err != nil {
		t.Fatal(err)
	}
	if m.DefaultDriver() != sorting.DriverHeap {
		t.Fatalf("DefaultDriver = %q; want heap", m.DefaultDriver())
	}
	if _, err := m.Driver("missing"); !errors.Is(err, sorting.ErrDriverNotFound) {
		t.Fatalf("err = %v; want ErrDriverNotFound", err)
	}
}
