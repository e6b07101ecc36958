package sort

import "cmp"

// QuickSort 전체 슬라이스를 퀵소트로 정렬
func QuickSort(arr []int) {
	if len(arr) < 2 {
		return
	}
	quickSortFunc(arr, 0, len(arr)-1, cmp.Compare[int])
}

// QuickSortRange arr[low..high] (양끝 포함) 만 정렬
func QuickSortRange(arr []int, low, high int) error {
	if err := checkRange(len(arr), low, high); err != nil {
		return err
	}
	quickSortFunc(arr, low, high, cmp.Compare[int])
	return nil
}

func quickSortFunc[E any](arr []E, low, high int, compare func(a, b E) int) {
	if low >= high {
		return
	}

	i, j := hoarePartition(arr, low, high, compare)

	if low < j {
		quickSortFunc(arr, low, j, compare)
	}
	if i < high {
		quickSortFunc(arr, i, high, compare)
	}
}

// hoarePartition 중앙값(인덱스 기준)을 피벗으로 두 포인터를 좁혀가며 교환.
// 반환 후 arr[low..j] <= pivot <= arr[i..high] 이고 i > j 이다.
func hoarePartition[E any](arr []E, low, high int, compare func(a, b E) int) (int, int) {
	pivot := arr[low+(high-low)/2]

	i, j := low, high
	for i <= j {
		for compare(arr[i], pivot) < 0 {
			i++
		}
		for compare(arr[j], pivot) > 0 {
			j--
		}

		// 포인터가 교차하지 않았으면 교환 후 양쪽 전진
		if i <= j {
			arr[i], arr[j] = arr[j], arr[i]
			i++
			j--
		}
	}
	return i, j
}
