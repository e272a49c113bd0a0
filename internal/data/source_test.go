package data

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ODBDEVOPS/azeroth-map-app/internal/marker"
)

const sampleJSON = `[
	{"name":"Ironforge","category":"Capitals","top":37.5,"left":49.2,
	 "position":"Dun Morogh","description":"Dwarven capital.","image":"ironforge.jpg"},
	{"name":"Thelsamar","category":"Towns","top":42.1,"left":52.8,
	 "position":"near the Ironband Excavation","description":"","image":""}
]`

func wantRecords() []marker.Record {
	return []marker.Record{
		{Name: "Ironforge", Category: "Capitals", Top: 37.5, Left: 49.2,
			PositionLabel: "Dun Morogh", Description: "Dwarven capital.", ImageRef: "ironforge.jpg"},
		{Name: "Thelsamar", Category: "Towns", Top: 42.1, Left: 52.8,
			PositionLabel: "near the Ironband Excavation"},
	}
}

func TestFetchFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "markers.json")
	if err := os.WriteFile(path, []byte(sampleJSON), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := Fetch(path)
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if diff := cmp.Diff(wantRecords(), got); diff != "" {
		t.Errorf("records mismatch (-want +got):\n%s", diff)
	}
}

func TestFetchFromURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(sampleJSON))
	}))
	defer srv.Close()

	got, err := Fetch(srv.URL)
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("fetched %d records, want 2", len(got))
	}
}

func TestFetchMissingFile(t *testing.T) {
	if _, err := Fetch(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Error("Fetch of a missing file succeeded")
	}
}

func TestFetchMalformedData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "markers.json")
	if err := os.WriteFile(path, []byte(`{"not":"a list"`), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Fetch(path); err == nil {
		t.Error("Fetch of malformed data succeeded")
	}
}

func TestFetchHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer srv.Close()

	if _, err := Fetch(srv.URL); err == nil {
		t.Error("Fetch of a 404 URL succeeded")
	}
}

func TestIsWatchable(t *testing.T) {
	if IsWatchable("https://example.com/markers.json") {
		t.Error("URL reported as watchable")
	}
	if !IsWatchable("assets/markers.json") {
		t.Error("file path reported as not watchable")
	}
}
