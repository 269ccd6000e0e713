package main

import (
	"context"
	"io"
	"log"
	"os"
	"unicode/utf8"

	"github.com/ytget/file-handler/internal/config"
	"github.com/ytget/file-handler/internal/download"
	"github.com/ytget/file-handler/internal/model"
	"github.com/ytget/file-handler/internal/platform"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppName = "file-handler"

	// Exit codes
	ExitOK                = 0
	ExitMalformedArgument = 1
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, config.NewSettings()))
}

// run parses the single "name#url@name#url" argument and downloads every
// pair. Per-file failures are printed to stdout and do not change the exit
// code; only a malformed argument does.
func run(args []string, stdout io.Writer, settings *config.Settings) int {
	if len(args) < 1 || utf8.RuneCountInString(args[0]) < settings.GetMinArgumentLength() {
		return ExitOK
	}

	names, urls, err := platform.ParseArgument(args[0])
	if err != nil {
		log.Printf("%s v%s: %v", AppName, version, err)
		return ExitMalformedArgument
	}

	downloadSvc := download.NewService(settings)
	downloadSvc.SetPrinter(download.NewWriterPrinter(stdout))
	downloadSvc.SetUpdateCallback(func(task *model.DownloadTask) {
		if task.Status == model.TaskStatusCompleted {
			log.Printf("Downloaded %s (%s) in %v", task.GetDisplayTitle(), task.GetSizeString(), task.Elapsed())
		}
	})
	downloadSvc.AddTasks(names, urls)

	failed := downloadSvc.Run(context.Background())
	if failed > 0 {
		log.Printf("%d of %d downloads failed", failed, len(urls))
	}
	return ExitOK
}
