package immutable_test

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/hasbyte1/go-fixed-array/immutable"
)

func ExampleNew() {
	a := immutable.New(1, 2, 3, 4, 5)
	sum := a.Reduce(func(acc, n, _ int, _ *immutable.Array[int]) int { return acc + n }, 0)
	fmt.Println(a.Len(), sum)
	// Output: 5 15
}

func ExampleArray_Sort() {
	a := immutable.New(5, 3, 4, 1, 2)
	fmt.Println(a.Sort(func(x, y int) int { return x - y }).Values(), a.Values())
	// Output: [1 2 3 4 5] [5 3 4 1 2]
}

func ExampleArray_Slice() {
	a := immutable.New(1, 2, 3, 4, 5, 6, 7, 8, 9)
	fmt.Println(a.Slice(0, 3).Values(), a.Slice(-2).Values())
	// Output: [1 2 3] [8 9]
}

func ExampleArray_Concat() {
	c, _ := immutable.New(1, 2, 3).Concat(immutable.New(4, 5, 6))
	fmt.Println(c)
	// Output: [1,2,3,4,5,6]
}

func ExampleArray_Set() {
	a := immutable.New("a", "b")
	err := a.Set(0, "z")
	fmt.Println(err)
	fmt.Println(a.Values())
	// Output:
	// immutable: array cannot be modified: cannot set index 0
	// [a b]
}

func ExampleArray_Join() {
	a := immutable.New("f", "c", "a").Sort(strings.Compare)
	fmt.Println(a.Join(", "))
	fmt.Println(a.Join("[", "]"))
	// Output:
	// a, c, f
	// [a][c][f]
}

func ExampleMap() {
	labels := immutable.Map(immutable.New(1, 2, 3), func(n, _ int, _ *immutable.Array[int]) string {
		return strconv.Itoa(n * n)
	})
	fmt.Println(labels.Join("|"))
	// Output: 1|4|9
}
