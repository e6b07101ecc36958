package dataset

import (
	"bufio"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
)

const fileExt = ".txt"

// FileStore 데이터셋마다 한 줄에 하나씩 정수를 적은 텍스트 파일
type FileStore struct {
	dir string
}

// OpenFileStore dir 이 없으면 만든다.
func OpenFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrapf(err, "create dataset dir %s", dir)
	}
	return &FileStore{dir: dir}, nil
}

func (s *FileStore) path(name string) string {
	return filepath.Join(s.dir, name+fileExt)
}

// Save 임시 파일에 쓴 뒤 rename 으로 교체
func (s *FileStore) Save(name string, data []int) error {
	if err := validateName(name); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(s.dir, name+".*.tmp")
	if err != nil {
		return errors.Wrap(err, "create temp file")
	}
	defer os.Remove(tmp.Name())

	if err := writeInts(tmp, data); err != nil {
		tmp.Close()
		return errors.Wrapf(err, "write dataset %s", name)
	}
	if err := tmp.Close(); err != nil {
		return errors.Wrapf(err, "close dataset %s", name)
	}
	return errors.Wrapf(os.Rename(tmp.Name(), s.path(name)), "rename dataset %s", name)
}

func writeInts(f *os.File, data []int) error {
	// 큰 버퍼 사용으로 I/O 횟수 감소
	w := bufio.NewWriterSize(f, 64*1024)
	var buf []byte
	for _, v := range data {
		buf = strconv.AppendInt(buf[:0], int64(v), 10)
		buf = append(buf, '\n')
		if _, err := w.Write(buf); err != nil {
			return err
		}
	}
	return w.Flush()
}

func (s *FileStore) Load(name string) ([]int, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}

	f, err := os.Open(s.path(name))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, errors.Wrapf(ErrNotFound, "%s", name)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "open dataset %s", name)
	}
	defer f.Close()

	// 파일 크기 기반으로 슬라이스 미리 할당 (평균 6자리 + 개행)
	capHint := 0
	if fi, err := f.Stat(); err == nil {
		capHint = int(fi.Size() / 7)
	}
	data := make([]int, 0, capHint)

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 64*1024), bufio.MaxScanTokenSize)

	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		v, err := strconv.Atoi(text)
		if err != nil {
			return nil, errors.Mark(errors.Wrapf(err, "%s line %d", name, line), ErrCorrupt)
		}
		data = append(data, v)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrapf(err, "read dataset %s", name)
	}
	return data, nil
}

func (s *FileStore) Delete(name string) error {
	if err := validateName(name); err != nil {
		return err
	}
	err := os.Remove(s.path(name))
	if errors.Is(err, fs.ErrNotExist) {
		return errors.Wrapf(ErrNotFound, "%s", name)
	}
	return errors.Wrapf(err, "delete dataset %s", name)
}

func (s *FileStore) Close() error { return nil }
