package sort

import (
	"cmp"
	"slices"
)

// MergeSort 전체 슬라이스를 안정적인 머지소트로 정렬
func MergeSort(arr []int) {
	if len(arr) < 2 {
		return
	}
	mergeSortFunc(arr, 0, len(arr)-1, cmp.Compare[int])
}

// MergeSortRange arr[left..right] (양끝 포함) 만 정렬
func MergeSortRange(arr []int, left, right int) error {
	if err := checkRange(len(arr), left, right); err != nil {
		return err
	}
	mergeSortFunc(arr, left, right, cmp.Compare[int])
	return nil
}

func mergeSortFunc[E any](arr []E, left, right int, compare func(a, b E) int) {
	if left >= right {
		return
	}

	mid := left + (right-left)/2
	mergeSortFunc(arr, left, mid, compare)
	mergeSortFunc(arr, mid+1, right, compare)

	merge(arr, left, mid, right, compare)
}

// merge 정렬된 arr[left..mid] 와 arr[mid+1..right] 를 병합.
// 임시 버퍼는 이 호출 안에서만 쓰인다.
func merge[E any](arr []E, left, mid, right int, compare func(a, b E) int) {
	lbuf := slices.Clone(arr[left : mid+1])
	rbuf := slices.Clone(arr[mid+1 : right+1])

	i, j, k := 0, 0, left
	for i < len(lbuf) && j < len(rbuf) {
		// 같으면 왼쪽 우선 (안정성)
		if compare(lbuf[i], rbuf[j]) <= 0 {
			arr[k] = lbuf[i]
			i++
		} else {
			arr[k] = rbuf[j]
			j++
		}
		k++
	}

	// 남은 요소들 한 번에 복사
	k += copy(arr[k:], lbuf[i:])
	copy(arr[k:], rbuf[j:])
}
