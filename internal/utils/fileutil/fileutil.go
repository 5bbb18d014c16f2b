// Package fileutil holds small file helpers shared by the config layer.
package fileutil

import (
	"os"
	"path/filepath"
)

// AtomicWriteFile writes data next to filename and renames it into place,
// creating the parent directory when missing. Readers never see a partial file.
// AtomicWriteFile 先写入同目录临时文件再重命名，必要时创建父目录。
func AtomicWriteFile(filename string, data []byte, perm os.FileMode) (err error) {
	dir := filepath.Dir(filepath.Clean(filename))
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, ".advent-*.tmp")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		return err
	}
	if err = tmp.Chmod(perm); err != nil {
		return err
	}
	if err = tmp.Sync(); err != nil {
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), filename)
}
