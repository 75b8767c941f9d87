package immutable_test

import (
	"strconv"
	"testing"

	"github.com/hasbyte1/go-fixed-array/immutable"
)

func TestMapFunc(t *testing.T) {
	got := immutable.Map(ints(1, 2, 3), func(n, i int, _ *immutable.Array[int]) string {
		return strconv.Itoa(n*n) + "@" + strconv.Itoa(i)
	})
	assertSlice(t, got.Values(), []string{"1@0", "4@1", "9@2"})
}

func TestReduceFunc(t *testing.T) {
	got := immutable.Reduce(immutable.New("a", "bb", "ccc"),
		func(acc int, s string, _ int, _ *immutable.Array[string]) int { return acc + len(s) }, 0)
	if got != 6 {
		t.Fatalf("Reduce = %d; want 6", got)
	}
}

func TestSortOrdered(t *testing.T) {
	assertSlice(t, immutable.SortOrdered(ints(3, -1, 2)).Values(), []int{-1, 2, 3})
}
