// Command sortbench 는 정렬 알고리즘 벤치마크와 데이터셋 관리 도구이다.
//
// Usage:
//
//	sortbench run --sizes 1000,10000 --storage pebble --path ./data --markdown results.md
//	sortbench gen random-1m --pattern random --size 1000000 --storage bbolt --path ./data/sets.db
//	sortbench sort random-1m --algorithm mergesort --storage bbolt --path ./data/sets.db
package main

import (
	"os"

	"github.com/sirupsen/logrus"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		logrus.WithError(err).Error("sortbench failed")
		os.Exit(1)
	}
}
