package pkg

import (
	"fmt"
	"io"
	"os"
)

// CheckFileExist 检查文件是否存在，目录不算
func CheckFileExist(filePath string) (bool, error) {
	info, err := os.Stat(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	if info.IsDir() {
		return false, fmt.Errorf("%s is a directory", filePath)
	}
	return true, nil
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

// OpenOutput 打开输出文件；路径为空时写到 fallback，关闭时不关闭 fallback
func OpenOutput(filePath string, fallback io.Writer) (io.WriteCloser, error) {
	if filePath == "" {
		return nopCloser{fallback}, nil
	}
	f, err := os.Create(filePath)
	if err != nil {
		return nil, fmt.Errorf("create output: %w", err)
	}
	return f, nil
}
