package platform

import (
	"fmt"
	"io"
	"io/fs"
	"os"
)

// CreateOutputFile opens filePath for writing, creating it or truncating an
// existing file
func CreateOutputFile(filePath string, perm fs.FileMode) (*os.File, error) {
	f, err := os.OpenFile(filePath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, perm)
	if err != nil {
		return nil, fmt.Errorf("failed to open output file: %w", err)
	}
	return f, nil
}

// CopyInChunks copies src to dst, reading at most chunkSize bytes per write.
// onChunk, if set, is called with the running total after every write.
func CopyInChunks(dst io.Writer, src io.Reader, chunkSize int, onChunk func(total int64)) (int64, error) {
	if chunkSize <= 0 {
		return 0, fmt.Errorf("invalid chunk size: %d", chunkSize)
	}

	buf := make([]byte, chunkSize)
	var total int64
	for {
		n, readErr := src.Read(buf)
		if n > 0 {
			written, err := dst.Write(buf[:n])
			total += int64(written)
			if err != nil {
				return total, fmt.Errorf("failed to write chunk: %w", err)
			}
			if written != n {
				return total, fmt.Errorf("failed to write chunk: %w", io.ErrShortWrite)
			}
			if onChunk != nil {
				onChunk(total)
			}
		}
		if readErr == io.EOF {
			return total, nil
		}
		if readErr != nil {
			return total, fmt.Errorf("failed to read body: %w", readErr)
		}
	}
}

// WriteFileInChunks streams src into filePath, overwriting any existing file
func WriteFileInChunks(filePath string, src io.Reader, chunkSize int, perm fs.FileMode, onChunk func(total int64)) (int64, error) {
	f, err := CreateOutputFile(filePath, perm)
	if err != nil {
		return 0, err
	}

	n, copyErr := CopyInChunks(f, src, chunkSize, onChunk)
	closeErr := f.Close()
	if copyErr != nil {
		return n, copyErr
	}
	if closeErr != nil {
		return n, fmt.Errorf("failed to close output file: %w", closeErr)
	}
	return n, nil
}
