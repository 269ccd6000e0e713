package model

// Package model defines the download task entity and its status enum. A task
// pairs one local filename with one remote URL and moves through explicit
// state transitions while the downloader processes it.
