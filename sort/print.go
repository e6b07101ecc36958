package sort

import (
	"bufio"
	"io"
	"strconv"
)

// IsSorted 오름차순(비감소) 여부
func IsSorted(arr []int) bool {
	for i := 1; i < len(arr); i++ {
		if arr[i] < arr[i-1] {
			return false
		}
	}
	return true
}

// Fprint "Sorted array: " 줄 다음에 값마다 공백을 붙여 한 줄로 출력
func Fprint(w io.Writer, arr []int) error {
	bw := bufio.NewWriter(w)
	bw.WriteString("Sorted array: \n")
	for _, v := range arr {
		bw.WriteString(strconv.Itoa(v))
		bw.WriteByte(' ')
	}
	bw.WriteByte('\n')
	return bw.Flush()
}
