package download

import (
	"context"

	"github.com/ytget/file-handler/internal/model"
)

// Downloader defines the interface for the download service.
type Downloader interface {
	SetUpdateCallback(func(*model.DownloadTask))
	AddTask(name, url string) *model.DownloadTask
	GetTask(id string) (*model.DownloadTask, bool)
	GetAllTasks() []*model.DownloadTask

	// Run downloads every pending task in insertion order and returns the
	// number of tasks that failed
	Run(ctx context.Context) int
}

// Printer receives the one-line report of every failed task
type Printer interface {
	Println(a ...any) (n int, err error)
}

var _ Downloader = (*Service)(nil)
