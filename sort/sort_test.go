package sort

import (
	"bytes"
	"cmp"
	"math/rand"
	"slices"
	"testing"

	"github.com/cockroachdb/errors"
	gocmp "github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var algorithms = map[string]func([]int){
	"quicksort":       QuickSort,
	"quicksort_stack": QuickSortStack,
	"mergesort":       MergeSort,
}

var rangeAlgorithms = map[string]func([]int, int, int) error{
	"quicksort":       QuickSortRange,
	"quicksort_stack": QuickSortStackRange,
	"mergesort":       MergeSortRange,
}

func randomInts(rng *rand.Rand, n, maxVal int) []int {
	data := make([]int, n)
	for i := range data {
		data[i] = rng.Intn(maxVal) - maxVal/2
	}
	return data
}

func TestConcreteCases(t *testing.T) {
	cases := []struct {
		name string
		in   []int
		want []int
	}{
		{"sample", []int{10, 7, 8, 9, 1, 5}, []int{1, 5, 7, 8, 9, 10}},
		{"reversed", []int{5, 4, 3, 2, 1}, []int{1, 2, 3, 4, 5}},
		{"sorted", []int{1, 2, 3, 4, 5, 6, 7, 8}, []int{1, 2, 3, 4, 5, 6, 7, 8}},
		{"duplicates", []int{3, 1, 4, 1, 5, 9, 2, 6, 5, 3, 5}, []int{1, 1, 2, 3, 3, 4, 5, 5, 5, 6, 9}},
		{"negatives", []int{0, -3, 7, -3, 2}, []int{-3, -3, 0, 2, 7}},
		{"pair", []int{2, 1}, []int{1, 2}},
	}

	for algo, sortFn := range algorithms {
		for _, tc := range cases {
			t.Run(algo+"/"+tc.name, func(t *testing.T) {
				data := slices.Clone(tc.in)
				sortFn(data)
				if diff := gocmp.Diff(tc.want, data); diff != "" {
					t.Errorf("%s(%v) mismatch (-want +got):\n%s", algo, tc.in, diff)
				}
			})
		}
	}
}

func TestEmptyAndSingle(t *testing.T) {
	for algo, sortFn := range algorithms {
		t.Run(algo, func(t *testing.T) {
			var empty []int
			sortFn(empty)
			assert.Empty(t, empty)

			single := []int{42}
			sortFn(single)
			assert.Equal(t, []int{42}, single)
		})
	}
}

func TestAllEqual(t *testing.T) {
	for algo, sortFn := range algorithms {
		t.Run(algo, func(t *testing.T) {
			data := make([]int, 1000)
			for i := range data {
				data[i] = 7
			}
			sortFn(data)
			for i, v := range data {
				require.Equal(t, 7, v, "index %d", i)
			}
		})
	}
}

// 정렬 결과는 비감소 순열이고, 다시 정렬해도 변하지 않으며, 알고리즘끼리 일치해야 함
func TestRandomProperties(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for _, size := range []int{0, 1, 2, 3, 10, 17, 100, 1000, 5000} {
		for _, maxVal := range []int{4, 1000, 1 << 30} {
			input := randomInts(rng, size, maxVal)
			want := slices.Clone(input)
			slices.Sort(want)

			for algo, sortFn := range algorithms {
				data := slices.Clone(input)
				sortFn(data)
				require.True(t, IsSorted(data), "%s size=%d", algo, size)
				require.Equal(t, want, data, "%s size=%d is not a permutation of the input", algo, size)

				again := slices.Clone(data)
				sortFn(again)
				require.Equal(t, data, again, "%s is not idempotent", algo)
			}
		}
	}
}

func TestAdversarialPatterns(t *testing.T) {
	const n = 4096
	patterns := map[string]func(i int) int{
		"ascending":  func(i int) int { return i },
		"descending": func(i int) int { return n - i },
		"organ":      func(i int) int { return min(i, n-i) },
		"sawtooth":   func(i int) int { return i % 17 },
	}

	for name, gen := range patterns {
		input := make([]int, n)
		for i := range input {
			input[i] = gen(i)
		}
		for algo, sortFn := range algorithms {
			data := slices.Clone(input)
			sortFn(data)
			assert.True(t, IsSorted(data), "%s/%s", algo, name)
		}
	}
}

func TestRangeLeavesOutsideUntouched(t *testing.T) {
	input := []int{9, 8, 7, 6, 5, 4, 3, 2, 1, 0}
	want := []int{9, 8, 3, 4, 5, 6, 7, 2, 1, 0}

	for algo, sortFn := range rangeAlgorithms {
		t.Run(algo, func(t *testing.T) {
			data := slices.Clone(input)
			require.NoError(t, sortFn(data, 2, 6))
			assert.Equal(t, want, data)
		})
	}
}

func TestRangeValidation(t *testing.T) {
	cases := []struct {
		name      string
		low, high int
		wantErr   bool
	}{
		{"whole", 0, 4, false},
		{"single", 2, 2, false},
		{"empty", 3, 2, false},
		{"empty past end", 5, 4, false},
		{"negative low", -1, 3, true},
		{"high past end", 0, 5, true},
		{"both past end", 7, 9, true},
	}

	for algo, sortFn := range rangeAlgorithms {
		for _, tc := range cases {
			t.Run(algo+"/"+tc.name, func(t *testing.T) {
				data := []int{5, 4, 3, 2, 1}
				err := sortFn(data, tc.low, tc.high)
				if tc.wantErr {
					require.Error(t, err)
					assert.True(t, errors.Is(err, ErrInvalidRange))
					assert.Equal(t, []int{5, 4, 3, 2, 1}, data, "failed call must not mutate")
					return
				}
				require.NoError(t, err)
			})
		}
	}
}

type tagged struct {
	key int
	tag int
}

func compareKey(a, b tagged) int {
	return cmp.Compare(a.key, b.key)
}

func TestMergeSortStable(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	data := make([]tagged, 2000)
	for i := range data {
		data[i] = tagged{key: rng.Intn(10), tag: i}
	}

	mergeSortFunc(data, 0, len(data)-1, compareKey)

	for i := 1; i < len(data); i++ {
		prev, cur := data[i-1], data[i]
		require.LessOrEqual(t, prev.key, cur.key)
		if prev.key == cur.key {
			require.Less(t, prev.tag, cur.tag, "equal keys reordered at %d", i)
		}
	}
}

func TestMerge(t *testing.T) {
	a := []int{1, 3, 5, 2, 4, 6}
	merge(a, 0, 2, 5, cmp.Compare[int])
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6}, a)
}

func TestHoarePartition(t *testing.T) {
	arr := []int{10, 7, 8, 9, 1, 5}
	i, j := hoarePartition(arr, 0, len(arr)-1, cmp.Compare[int])
	require.Greater(t, i, j)

	pivot := 8
	for k := 0; k <= j; k++ {
		assert.LessOrEqual(t, arr[k], pivot)
	}
	for k := i; k < len(arr); k++ {
		assert.GreaterOrEqual(t, arr[k], pivot)
	}
}

func TestQuickSortStackMatchesRecursive(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	for range 50 {
		input := randomInts(rng, rng.Intn(300), 50)
		a, b := slices.Clone(input), slices.Clone(input)
		QuickSort(a)
		QuickSortStack(b)
		require.Equal(t, a, b)
	}
}

func TestIsSorted(t *testing.T) {
	assert.True(t, IsSorted(nil))
	assert.True(t, IsSorted([]int{1}))
	assert.True(t, IsSorted([]int{1, 1, 2}))
	assert.False(t, IsSorted([]int{2, 1}))
}

func TestFprint(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Fprint(&buf, []int{1, 5, 7, 8, 9, 10}))
	assert.Equal(t, "Sorted array: \n1 5 7 8 9 10 \n", buf.String())

	buf.Reset()
	require.NoError(t, Fprint(&buf, nil))
	assert.Equal(t, "Sorted array: \n\n", buf.String())
}
