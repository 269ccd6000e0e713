package download

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ytget/file-handler/internal/config"
	"github.com/ytget/file-handler/internal/model"
	"github.com/ytget/file-handler/internal/platform"
)

// writerPrinter writes failure reports to an io.Writer
type writerPrinter struct {
	w io.Writer
}

// NewWriterPrinter returns a Printer that writes one line per report to w
func NewWriterPrinter(w io.Writer) Printer {
	return writerPrinter{w: w}
}

func (p writerPrinter) Println(a ...any) (int, error) {
	return fmt.Fprintln(p.w, a...)
}

// Service handles download operations
type Service struct {
	tasks      []*model.DownloadTask
	tasksMutex sync.RWMutex
	settings   *config.Settings
	printer    Printer
	onUpdate   func(*model.DownloadTask) // callback for status changes
}

// NewService creates a new download service
func NewService(settings *config.Settings) *Service {
	if settings == nil {
		settings = config.NewSettings()
	}
	return &Service{
		settings: settings,
		printer:  NewWriterPrinter(os.Stdout),
	}
}

// SetPrinter replaces the destination of failure reports
func (s *Service) SetPrinter(p Printer) {
	s.printer = p
}

// SetUpdateCallback sets the callback function for task updates
func (s *Service) SetUpdateCallback(callback func(*model.DownloadTask)) {
	s.onUpdate = callback
}

// AddTask adds a new pending download task. Duplicate names or URLs are
// accepted; a later task for the same name overwrites the earlier file.
func (s *Service) AddTask(name, url string) *model.DownloadTask {
	s.tasksMutex.Lock()
	defer s.tasksMutex.Unlock()

	task := &model.DownloadTask{
		ID:     generateTaskID(),
		Name:   name,
		URL:    url,
		Status: model.TaskStatusPending,
	}
	s.tasks = append(s.tasks, task)
	return task
}

// AddTasks adds one task per index of the parallel names/urls slices. Entries
// past the shorter slice are ignored.
func (s *Service) AddTasks(names, urls []string) []*model.DownloadTask {
	count := len(urls)
	if len(names) < count {
		count = len(names)
	}

	added := make([]*model.DownloadTask, 0, count)
	for i := 0; i < count; i++ {
		added = append(added, s.AddTask(names[i], urls[i]))
	}
	return added
}

// GetTask returns a task by ID
func (s *Service) GetTask(id string) (*model.DownloadTask, bool) {
	s.tasksMutex.RLock()
	defer s.tasksMutex.RUnlock()

	for _, task := range s.tasks {
		if task.ID == id {
			return task, true
		}
	}
	return nil, false
}

// GetAllTasks returns all tasks in insertion order
func (s *Service) GetAllTasks() []*model.DownloadTask {
	s.tasksMutex.RLock()
	defer s.tasksMutex.RUnlock()

	tasks := make([]*model.DownloadTask, len(s.tasks))
	copy(tasks, s.tasks)
	return tasks
}

// Run downloads every pending task one after another
func (s *Service) Run(ctx context.Context) int {
	failed := 0
	for _, task := range s.GetAllTasks() {
		if task.Status != model.TaskStatusPending {
			continue
		}
		if err := s.runTask(ctx, task); err != nil {
			failed++
			s.printer.Println(err)
		}
	}
	return failed
}

// runTask downloads a single task and records its final status
func (s *Service) runTask(ctx context.Context, task *model.DownloadTask) error {
	s.tasksMutex.Lock()
	task.Status = model.TaskStatusDownloading
	task.StartedAt = time.Now()
	s.tasksMutex.Unlock()
	s.notifyUpdate(task)

	written, err := s.download(ctx, task)

	s.tasksMutex.Lock()
	task.BytesWritten = written
	task.FinishedAt = time.Now()
	if err != nil {
		task.Status = model.TaskStatusError
		task.LastError = err.Error()
	} else {
		task.Status = model.TaskStatusCompleted
	}
	s.tasksMutex.Unlock()

	if err != nil {
		log.Printf("Download failed for task %s (%s): %v", task.ID, task.GetDisplayTitle(), err)
	}
	s.notifyUpdate(task)
	return err
}

// download performs the GET and streams the body into task.Name. The local
// file is opened only after the status check passes.
func (s *Service) download(ctx context.Context, task *model.DownloadTask) (int64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, task.URL, nil)
	if err != nil {
		return 0, err
	}
	req.Header.Set("User-Agent", s.settings.GetUserAgent())

	resp, err := s.settings.GetHTTPClient().Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if err := checkStatus(resp, task.URL); err != nil {
		return 0, err
	}

	return platform.WriteFileInChunks(
		task.Name,
		resp.Body,
		s.settings.GetChunkSize(),
		s.settings.GetFilePermissions(),
		func(total int64) { s.updateTaskProgress(task, total) },
	)
}

// updateTaskProgress records the bytes written so far
func (s *Service) updateTaskProgress(task *model.DownloadTask, total int64) {
	s.tasksMutex.Lock()
	defer s.tasksMutex.Unlock()
	task.BytesWritten = total
}

// notifyUpdate calls the update callback if set
func (s *Service) notifyUpdate(task *model.DownloadTask) {
	if s.onUpdate != nil {
		s.onUpdate(task)
	}
}

// generateTaskID generates a unique task ID
func generateTaskID() string {
	return "task-" + uuid.NewString()
}
