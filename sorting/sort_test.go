package sorting_test

import (
	"errors"
	"math"
	"math/rand"
	"slices"
	"strings"
	"testing"

	"github.com/hasbyte1/go-fixed-array/sequence"
	"github.com/hasbyte1/go-fixed-array/sorting"
)

// ─────────────────────────────────────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────────────────────────────────────

func assertSlice[T comparable](t *testing.T, got, want []T) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("slice length: got %d want %d  (got=%v want=%v)", len(got), len(want), got, want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("index %d: got %v want %v", i, got[i], want[i])
		}
	}
}

func numeric(a, b int) int { return a - b }

type strategy struct {
	name string
	sort func(sequence.Sequence[int], sorting.Comparator[int]) (*sequence.Store[int], error)
}

var strategies = []strategy{
	{"merge", sorting.Merge[int]},
	{"quick", sorting.Quick[int]},
	{"heap", func(src sequence.Sequence[int], c sorting.Comparator[int]) (*sequence.Store[int], error) {
		return sorting.HeapSort[int](src, c)
	}},
}

func randomInts(n int, seed int64) []int {
	r := rand.New(rand.NewSource(seed))
	out := make([]int, n)
	for i := range out {
		out[i] = r.Intn(n/2 + 1)
	}
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// All strategies
// ─────────────────────────────────────────────────────────────────────────────

func TestStrategiesSortAscending(t *testing.T) {
	inputs := map[string][]int{
		"empty":      {},
		"single":     {1},
		"pair":       {2, 1},
		"scenario":   {5, 3, 4, 1, 2},
		"sorted":     {1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15},
		"reversed":   {15, 14, 13, 12, 11, 10, 9, 8, 7, 6, 5, 4, 3, 2, 1},
		"duplicates": {3, 3, 3, 1, 1, 2, 2, 2, 2, 3, 1, 1, 3, 2, 2, 1, 3},
		"all equal":  {7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7},
		"odd length": randomInts(101, 1),
		"large":      randomInts(1000, 2),
	}

	for _, s := range strategies {
		for name, in := range inputs {
			t.Run(s.name+"/"+name, func(t *testing.T) {
				src := sequence.StoreOf(in...)
				st, err := s.sort(src, numeric)
				if err != nil {
					t.Fatal(err)
				}
				want := slices.Clone(in)
				slices.Sort(want)
				assertSlice(t, st.Values(), want)
				// the source is never touched
				assertSlice(t, src.Values(), in)
			})
		}
	}
}

func TestStrategiesLexicographic(t *testing.T) {
	for _, name := range []sorting.DriverName{sorting.DriverMerge, sorting.DriverQuick, sorting.DriverHeap} {
		m := sorting.NewDefaultManager[string]()
		st, err := m.SortWith(name, sequence.StoreOf("f", "c", "a", "b", "e", "d"), strings.Compare)
		if err != nil {
			t.Fatal(err)
		}
		assertSlice(t, st.Values(), []string{"a", "b", "c", "d", "e", "f"})
	}
}

func TestStrategiesOverViews(t *testing.T) {
	st := sequence.StoreOf(9, 8, 7, 6, 5, 4)
	r, _ := sequence.Slice[int](st, 1, -1) // 8 7 6 5
	c, _ := sequence.Join[int](r, sequence.StoreOf(1, 10))
	for _, s := range strategies {
		out, err := s.sort(c, numeric)
		if err != nil {
			t.Fatal(err)
		}
		assertSlice(t, out.Values(), []int{1, 5, 6, 7, 8, 10})
	}
}

func TestNilComparatorUsesNaturalOrder(t *testing.T) {
	for _, s := range strategies {
		out, err := s.sort(sequence.StoreOf(3, 1, 2), nil)
		if err != nil {
			t.Fatal(err)
		}
		assertSlice(t, out.Values(), []int{1, 2, 3})
	}
}

func TestNilSource(t *testing.T) {
	for _, s := range strategies {
		if _, err := s.sort(nil, numeric); !errors.Is(err, sequence.ErrAllocation) {
			t.Fatalf("%s: err = %v; want ErrAllocation", s.name, err)
		}
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Merge
// ─────────────────────────────────────────────────────────────────────────────

type record struct {
	key int
	seq int
}

func TestMergeIsStable(t *testing.T) {
	keys := randomInts(257, 3)
	in := make([]record, len(keys))
	for i, k := range keys {
		in[i] = record{key: k % 5, seq: i}
	}

	st, err := sorting.Merge[record](sequence.StoreOf(in...), func(a, b record) int { return a.key - b.key })
	if err != nil {
		t.Fatal(err)
	}
	out := st.Values()
	for i := 1; i < len(out); i++ {
		prev, cur := out[i-1], out[i]
		if prev.key > cur.key {
			t.Fatalf("index %d: keys out of order %v > %v", i, prev, cur)
		}
		if prev.key == cur.key && prev.seq > cur.seq {
			t.Fatalf("index %d: equal keys reordered %v before %v", i, prev, cur)
		}
	}
}

func TestMergeTiesPreferLeftRun(t *testing.T) {
	in := []record{{1, 0}, {0, 1}, {1, 2}, {0, 3}}
	st, _ := sorting.Merge[record](sequence.StoreOf(in...), func(a, b record) int { return a.key - b.key })
	assertSlice(t, st.Values(), []record{{0, 1}, {0, 3}, {1, 0}, {1, 2}})
}

// ─────────────────────────────────────────────────────────────────────────────
// Natural ordering
// ─────────────────────────────────────────────────────────────────────────────

func TestNatural(t *testing.T) {
	type celsius float32
	tests := []struct {
		name string
		a, b any
		want int
	}{
		{"int less", 1, 2, -1},
		{"int equal", 4, 4, 0},
		{"string", "b", "a", 1},
		{"float", 1.5, 2.5, -1},
		{"nan first", math.NaN(), -1.0, -1},
		{"int8", int8(-3), int8(2), -1},
		{"uint", uint(9), uint(3), 1},
		{"named float", celsius(1), celsius(-1), 1},
		{"bool", false, true, -1},
		{"nil first", nil, 0, -1},
		{"mixed kinds by text", 10, "9", -1},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := sorting.Natural[any](tc.a, tc.b); got != tc.want {
				t.Fatalf("Natural(%v, %v) = %d; want %d", tc.a, tc.b, got, tc.want)
			}
		})
	}
}

func TestSortNatural(t *testing.T) {
	st, err := sorting.SortNatural[string](sequence.StoreOf("pear", "apple", "fig"))
	if err != nil {
		t.Fatal(err)
	}
	assertSlice(t, st.Values(), []string{"apple", "fig", "pear"})

	ost, err := sorting.SortOrdered[float64](sequence.StoreOf(2.5, -1, 0))
	if err != nil {
		t.Fatal(err)
	}
	assertSlice(t, ost.Values(), []float64{-1, 0, 2.5})
}

func TestReverse(t *testing.T) {
	st, _ := sorting.Merge[int](sequence.StoreOf(1, 3, 2), sorting.Reverse(sorting.Ordered[int]()))
	assertSlice(t, st.Values(), []int{3, 2, 1})
}
