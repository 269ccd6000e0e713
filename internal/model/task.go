package model

import (
	"fmt"
	"strings"
	"time"
)

// Byte size units
const (
	_ = 1 << (iota * 10)
	KB
	MB
	GB
)

// DownloadTask represents a single download task
type DownloadTask struct {
	ID           string
	Name         string // local filename the body is written to
	URL          string // remote URL
	Status       TaskStatus
	BytesWritten int64     // bytes written to Name so far
	LastError    string    // last error message if any
	StartedAt    time.Time // when the request was sent
	FinishedAt   time.Time // when the task completed or failed
}

// GetDisplayTitle returns the local filename, or the last URL path segment
// when no name was given
func (dt *DownloadTask) GetDisplayTitle() string {
	if dt.Name != "" {
		return dt.Name
	}

	parts := strings.FieldsFunc(dt.URL, func(r rune) bool {
		return r == '/'
	})
	if len(parts) > 0 {
		return parts[len(parts)-1]
	}
	return dt.URL
}

// GetSizeString returns BytesWritten in a human readable form
func (dt *DownloadTask) GetSizeString() string {
	size := dt.BytesWritten
	switch {
	case size >= GB:
		return fmt.Sprintf("%.2fGB", float64(size)/GB)
	case size >= MB:
		return fmt.Sprintf("%.2fMB", float64(size)/MB)
	case size >= KB:
		return fmt.Sprintf("%.2fKB", float64(size)/KB)
	default:
		return fmt.Sprintf("%dB", size)
	}
}

// Elapsed returns how long the task ran, or zero if it has not finished
func (dt *DownloadTask) Elapsed() time.Duration {
	if dt.StartedAt.IsZero() || dt.FinishedAt.IsZero() {
		return 0
	}
	return dt.FinishedAt.Sub(dt.StartedAt)
}
