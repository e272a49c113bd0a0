// Package marker holds the point-of-interest records and answers category and
// text queries over them.
package marker

import (
	"iter"
	"sort"
	"strings"
)

// CategoryAll is the pseudo-category that matches every record.
const CategoryAll = "all"

// minQueryLen is the shortest query Search will answer; shorter queries are
// defined to produce zero results rather than noisy single-character matches.
const minQueryLen = 2

// Record is a single point of interest. Name is the identity key and is
// unique across a loaded set. Top and Left are percent coordinates (0-100)
// within the map. Records are immutable after load.
type Record struct {
	Name          string  `json:"name"`
	Category      string  `json:"category"`
	Top           float64 `json:"top"`
	Left          float64 `json:"left"`
	PositionLabel string  `json:"position"`
	Description   string  `json:"description"`
	ImageRef      string  `json:"image"`
}

// Index owns the loaded record set. It is not safe for concurrent mutation;
// all access happens on the UI thread.
type Index struct {
	records []Record
}

// NewIndex returns an empty index.
func NewIndex() *Index {
	return &Index{}
}

// Load replaces the stored set. The application must remain usable with zero
// markers, so callers recover from data-source failures by loading nil.
func (ix *Index) Load(records []Record) {
	ix.records = records
}

// Len returns the number of loaded records.
func (ix *Index) Len() int {
	return len(ix.records)
}

// All returns the loaded records in load order.
func (ix *Index) All() []Record {
	return ix.records
}

// ByName returns the record with the given name, if present.
func (ix *Index) ByName(name string) (Record, bool) {
	for _, r := range ix.records {
		if r.Name == name {
			return r, true
		}
	}
	return Record{}, false
}

// Categories returns the sorted set of distinct category values present.
func (ix *Index) Categories() []string {
	seen := make(map[string]bool)
	var cats []string
	for _, r := range ix.records {
		if !seen[r.Category] {
			seen[r.Category] = true
			cats = append(cats, r.Category)
		}
	}
	sort.Strings(cats)
	return cats
}

// FilterByCategory yields the records whose category matches, or all records
// when CategoryAll is requested, in load order.
func (ix *Index) FilterByCategory(category string) iter.Seq[Record] {
	return func(yield func(Record) bool) {
		for _, r := range ix.records {
			if category != CategoryAll && r.Category != category {
				continue
			}
			if !yield(r) {
				return
			}
		}
	}
}

// Search yields records whose name or position label contains the query,
// case-insensitively, in load order. Queries shorter than two characters
// yield nothing.
func (ix *Index) Search(query string) iter.Seq[Record] {
	return func(yield func(Record) bool) {
		if len(query) < minQueryLen {
			return
		}
		q := strings.ToLower(query)
		for _, r := range ix.records {
			if !strings.Contains(strings.ToLower(r.Name), q) &&
				!strings.Contains(strings.ToLower(r.PositionLabel), q) {
				continue
			}
			if !yield(r) {
				return
			}
		}
	}
}
