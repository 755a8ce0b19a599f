package utils

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// SplitFile divide um arquivo em partes de no máximo chunkSize bytes dentro de dir.
// As partes são retornadas na ordem do arquivo original.
func SplitFile(path, dir string, chunkSize int64) ([]string, error) {
	if chunkSize <= 0 {
		return nil, fmt.Errorf("chunk size must be positive, got %d", chunkSize)
	}

	src, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer src.Close()

	prefix, err := GenerateID()
	if err != nil {
		return nil, err
	}

	chunks := make([]string, 0)
	for part := 1; ; part++ {
		name := filepath.Join(dir, fmt.Sprintf("%s.part%03d", prefix, part))

		written, err := copyChunk(src, name, chunkSize)
		if err != nil {
			return chunks, err
		}
		if written == 0 {
			os.Remove(name)
			break
		}

		chunks = append(chunks, name)
		if written < chunkSize {
			break
		}
	}

	return chunks, nil
}

func copyChunk(src io.Reader, name string, size int64) (int64, error) {
	dst, err := os.Create(name)
	if err != nil {
		return 0, err
	}
	defer dst.Close()

	written, err := io.CopyN(dst, src, size)
	if err != nil && err != io.EOF {
		return written, err
	}

	return written, nil
}
