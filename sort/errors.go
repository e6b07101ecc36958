package sort

import "github.com/cockroachdb/errors"

// ErrInvalidRange 정렬 구간이 슬라이스 범위를 벗어남
var ErrInvalidRange = errors.New("sort: range out of bounds")

// checkRange 구간 검증. low > high 인 빈 구간은 아무 인덱스도 건드리지 않으므로 허용한다.
func checkRange(n, low, high int) error {
	if low > high {
		return nil
	}
	if low < 0 || high >= n {
		return errors.Wrapf(ErrInvalidRange, "[%d, %d] in sequence of length %d", low, high, n)
	}
	return nil
}
