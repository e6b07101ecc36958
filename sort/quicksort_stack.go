package sort

import "cmp"

// span 대기 중인 정렬 구간 (양끝 포함)
type span struct {
	low, high int
}

// QuickSortStack 재귀 대신 명시적 스택을 쓰는 퀵소트.
// 파티셔닝과 피벗 선택은 QuickSort 와 같다.
func QuickSortStack(arr []int) {
	if len(arr) < 2 {
		return
	}
	quickSortStackFunc(arr, 0, len(arr)-1, cmp.Compare[int])
}

// QuickSortStackRange arr[low..high] (양끝 포함) 만 정렬
func QuickSortStackRange(arr []int, low, high int) error {
	if err := checkRange(len(arr), low, high); err != nil {
		return err
	}
	quickSortStackFunc(arr, low, high, cmp.Compare[int])
	return nil
}

func quickSortStackFunc[E any](arr []E, low, high int, compare func(a, b E) int) {
	if low >= high {
		return
	}

	stack := []span{{low, high}}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if top.low >= top.high {
			continue
		}

		i, j := hoarePartition(arr, top.low, top.high, compare)
		left := span{top.low, j}
		right := span{i, top.high}

		// 큰 쪽을 먼저 넣어 작은 쪽이 먼저 처리되게 함 (스택 깊이 O(log n))
		if j-top.low > top.high-i {
			left, right = right, left
		}
		if right.low < right.high {
			stack = append(stack, right)
		}
		if left.low < left.high {
			stack = append(stack, left)
		}
	}
}
