package scraper

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/andybalholm/brotli"
)

// The cache holds raw feed text, compressed; callers reparse it on every hit.

func getCachePath(name string) (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not find user home directory: %w", err)
	}

	cacheDir := filepath.Join(homeDir, ".socctl_cache")
	if err := os.MkdirAll(cacheDir, 0755); err != nil {
		return "", fmt.Errorf("could not create cache directory: %w", err)
	}

	return filepath.Join(cacheDir, filepath.Base(name)+".dat.br"), nil
}

// readCache returns the cached feed for name if it is younger than ttl.
func readCache(name string, ttl time.Duration) ([]byte, bool) {
	if ttl <= 0 {
		return nil, false
	}

	path, err := getCachePath(name)
	if err != nil {
		return nil, false
	}

	info, err := os.Stat(path)
	if err != nil || time.Since(info.ModTime()) > ttl {
		return nil, false
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, false
	}
	defer f.Close()

	data, err := io.ReadAll(brotli.NewReader(f))
	if err != nil {
		return nil, false
	}
	return data, true
}

// writeCache stores a brotli compressed copy of the feed. Failures only cost a refetch.
func writeCache(name string, data []byte) {
	path, err := getCachePath(name)
	if err != nil {
		return
	}

	var buf bytes.Buffer
	w := brotli.NewWriterLevel(&buf, brotli.DefaultCompression)
	if _, err := w.Write(data); err != nil {
		return
	}
	if err := w.Close(); err != nil {
		return
	}

	_ = os.WriteFile(path, buf.Bytes(), 0644)
}
