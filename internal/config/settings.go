package config

import (
	"io/fs"
	"net/http"
)

// Default values
const (
	DefaultChunkSize         = 8192
	DefaultMinArgumentLength = 2
	DefaultFilePermissions   = fs.FileMode(0644)
	DefaultUserAgent         = "file-handler"
	MinChunkSize             = 512
	MaxChunkSize             = 1 << 20
)

// Settings holds the downloader configuration. There is no external source:
// every value comes from the defaults above unless a caller overrides it.
type Settings struct {
	chunkSize         int
	minArgumentLength int
	filePermissions   fs.FileMode
	userAgent         string
	httpClient        *http.Client
}

// NewSettings creates settings populated with defaults
func NewSettings() *Settings {
	return &Settings{
		chunkSize:         DefaultChunkSize,
		minArgumentLength: DefaultMinArgumentLength,
		filePermissions:   DefaultFilePermissions,
		userAgent:         DefaultUserAgent,
		httpClient:        http.DefaultClient,
	}
}

// GetChunkSize returns the size of each write to the local file
func (s *Settings) GetChunkSize() int {
	return s.chunkSize
}

// SetChunkSize sets the chunk size, clamped to [MinChunkSize, MaxChunkSize]
func (s *Settings) SetChunkSize(size int) {
	if size < MinChunkSize {
		size = MinChunkSize
	}
	if size > MaxChunkSize {
		size = MaxChunkSize
	}
	s.chunkSize = size
}

// GetMinArgumentLength returns the shortest argument that is not a silent no-op
func (s *Settings) GetMinArgumentLength() int {
	return s.minArgumentLength
}

// GetFilePermissions returns the mode used when creating output files
func (s *Settings) GetFilePermissions() fs.FileMode {
	return s.filePermissions
}

// SetFilePermissions sets the mode used when creating output files
func (s *Settings) SetFilePermissions(mode fs.FileMode) {
	s.filePermissions = mode.Perm()
}

// GetUserAgent returns the User-Agent header sent with each request
func (s *Settings) GetUserAgent() string {
	return s.userAgent
}

// SetUserAgent sets the User-Agent header; empty restores the default
func (s *Settings) SetUserAgent(ua string) {
	if ua == "" {
		ua = DefaultUserAgent
	}
	s.userAgent = ua
}

// GetHTTPClient returns the client used for downloads
func (s *Settings) GetHTTPClient() *http.Client {
	return s.httpClient
}

// SetHTTPClient sets the client used for downloads; nil restores http.DefaultClient
func (s *Settings) SetHTTPClient(client *http.Client) {
	if client == nil {
		client = http.DefaultClient
	}
	s.httpClient = client
}
