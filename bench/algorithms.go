package bench

import (
	"slices"

	"github.com/cockroachdb/errors"

	"github.com/rlaau/sortbench/sort"
)

// ErrUnknownAlgorithm 등록되지 않은 알고리즘 이름
var ErrUnknownAlgorithm = errors.New("bench: unknown algorithm")

// SortFunc 슬라이스를 제자리 정렬
type SortFunc func([]int)

var sorters = map[string]SortFunc{
	"quicksort":       sort.QuickSort,
	"quicksort_stack": sort.QuickSortStack,
	"mergesort":       sort.MergeSort,
	"stdlib":          slices.Sort[[]int],
}

// Algorithms 지원하는 알고리즘 이름 (보고서 순서)
func Algorithms() []string {
	return []string{"quicksort", "quicksort_stack", "mergesort", "stdlib"}
}

// Lookup 이름으로 정렬 함수 찾기
func Lookup(name string) (SortFunc, error) {
	fn, ok := sorters[name]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownAlgorithm, "%q", name)
	}
	return fn, nil
}
