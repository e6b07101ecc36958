// Command sortdemo 는 고정된 6개 원소 배열을 퀵소트로 정렬해 출력한다.
package main

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/rlaau/sortbench/sort"
)

func run(w io.Writer) error {
	arr := []int{10, 7, 8, 9, 1, 5}
	sort.QuickSort(arr)
	return sort.Fprint(w, arr)
}

func main() {
	if err := run(os.Stdout); err != nil {
		logrus.WithError(err).Fatal("print failed")
	}
}
