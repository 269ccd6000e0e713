package download

// Package download implements the sequential download pipeline: one streaming
// GET per task, a status check, and a chunked write to the task's local file.
// Failures are reported per task and never stop the remaining tasks.
