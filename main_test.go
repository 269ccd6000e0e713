package main

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/file-handler/internal/config"
)

// countingServer serves /a and /b and returns 404 for anything else
func countingServer(t *testing.T, hits *atomic.Int32) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		switch r.URL.Path {
		case "/a":
			w.Write([]byte("content of a"))
		case "/b":
			w.Write([]byte("content of b"))
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestRun_NoArgumentIsSilentNoOp(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"absent", nil},
		{"empty", []string{""}},
		{"single character", []string{"x"}},
		{"single rune", []string{"é"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout bytes.Buffer
			code := run(tt.args, &stdout, config.NewSettings())

			assert.Equal(t, ExitOK, code)
			assert.Empty(t, stdout.String())
		})
	}
}

func TestRun_DownloadsEveryPair(t *testing.T) {
	chdir(t, t.TempDir())

	var hits atomic.Int32
	srv := countingServer(t, &hits)
	settings := config.NewSettings()
	settings.SetHTTPClient(srv.Client())

	var stdout bytes.Buffer
	arg := "a.txt#" + srv.URL + "/a@b.txt#" + srv.URL + "/b"
	code := run([]string{arg}, &stdout, settings)

	assert.Equal(t, ExitOK, code)
	assert.Empty(t, stdout.String())
	assert.Equal(t, int32(2), hits.Load())

	a, err := os.ReadFile("a.txt")
	require.NoError(t, err)
	assert.Equal(t, "content of a", string(a))

	b, err := os.ReadFile("b.txt")
	require.NoError(t, err)
	assert.Equal(t, "content of b", string(b))
}

func TestRun_FailedEntryIsPrintedAndLoopContinues(t *testing.T) {
	chdir(t, t.TempDir())

	var hits atomic.Int32
	srv := countingServer(t, &hits)
	settings := config.NewSettings()
	settings.SetHTTPClient(srv.Client())

	var stdout bytes.Buffer
	arg := "gone.txt#" + srv.URL + "/gone@b.txt#" + srv.URL + "/b"
	code := run([]string{arg}, &stdout, settings)

	assert.Equal(t, ExitOK, code)
	assert.Equal(t, "404 Client Error: Not Found for url: "+srv.URL+"/gone\n", stdout.String())

	_, err := os.Stat("gone.txt")
	assert.True(t, os.IsNotExist(err))

	b, err := os.ReadFile("b.txt")
	require.NoError(t, err)
	assert.Equal(t, "content of b", string(b))
}

func TestRun_MalformedArgumentDownloadsNothing(t *testing.T) {
	chdir(t, t.TempDir())

	var hits atomic.Int32
	srv := countingServer(t, &hits)
	settings := config.NewSettings()
	settings.SetHTTPClient(srv.Client())

	var stdout bytes.Buffer
	arg := "a.txt#" + srv.URL + "/a@broken"
	code := run([]string{arg}, &stdout, settings)

	assert.Equal(t, ExitMalformedArgument, code)
	assert.Zero(t, hits.Load())
	assert.False(t, strings.Contains(stdout.String(), "a.txt"))
	assert.NoFileExists(t, "a.txt")
}

// chdir changes the working directory for the duration of the test,
// equivalent to testing.T.Chdir (Go 1.24+) on older toolchains.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })
}
