// Package data loads marker records from the external data source: a JSON
// document on disk or behind an HTTP URL, fetched once at startup.
package data

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/ODBDEVOPS/azeroth-map-app/internal/marker"
)

const fetchTimeout = 10 * time.Second

// Fetch reads marker records from a file path or an http(s) URL. The caller
// recovers from errors by leaving the marker set empty; the viewer stays
// usable without markers.
func Fetch(ref string) ([]marker.Record, error) {
	raw, err := read(ref)
	if err != nil {
		return nil, err
	}

	var records []marker.Record
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("malformed marker data in %s: %w", ref, err)
	}
	return records, nil
}

func read(ref string) ([]byte, error) {
	if strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") {
		client := &http.Client{Timeout: fetchTimeout}
		resp, err := client.Get(ref)
		if err != nil {
			return nil, fmt.Errorf("fetching marker data: %w", err)
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("fetching marker data: %s returned %s", ref, resp.Status)
		}
		return io.ReadAll(resp.Body)
	}

	raw, err := os.ReadFile(ref)
	if err != nil {
		return nil, fmt.Errorf("reading marker data: %w", err)
	}
	return raw, nil
}

// IsWatchable reports whether the reference points at a local file that a
// Watcher can observe for changes.
func IsWatchable(ref string) bool {
	return !strings.HasPrefix(ref, "http://") && !strings.HasPrefix(ref, "https://")
}
