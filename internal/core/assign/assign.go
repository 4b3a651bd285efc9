// Package assign pairs anchors with link targets and shapes the CSV export.
// Round-robin cycling guarantees every anchor and every target shows up at
// least once even when the lists differ in length
package assign

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
)

// Row is one planned internal link
type Row struct {
	FromURL    string `json:"from_url"`
	AnchorText string `json:"anchor_text"`
	ToURL      string `json:"to_url"`
}

// URLResolver maps a document id to its canonical URL. ok is false when the
// document cannot be resolved, in which case the pair is skipped
type URLResolver func(id int64) (url string, ok bool)

// ErrExportUnavailable signals that the workflow holds nothing exportable
var ErrExportUnavailable = errors.New("nothing to export: select a mother document and at least one link target first")

// RoundRobin pairs anchors with targets, cycling the shorter list. An empty
// anchor list degrades to a single pseudo-anchor carrying the canonical
// phrase (or the source URL when the canonical is empty too)
func RoundRobin(anchors []string, targets []int64, fromURL, canonical string, resolve URLResolver) []Row {
	targets = compactIDs(targets)
	if len(targets) == 0 || fromURL == "" {
		return nil
	}

	fallback := canonical
	if fallback == "" {
		fallback = fromURL
	}
	if len(anchors) == 0 {
		anchors = []string{fallback}
	}

	n := len(anchors)
	if len(targets) > n {
		n = len(targets)
	}

	rows := make([]Row, 0, n)
	for i := 0; i < n; i++ {
		text := anchors[i%len(anchors)]
		if text == "" {
			text = fallback
		}
		toURL, ok := resolve(targets[i%len(targets)])
		if !ok {
			continue
		}
		rows = append(rows, Row{FromURL: fromURL, AnchorText: text, ToURL: toURL})
	}
	return rows
}

// CSV renders rows with the fixed header from_url, anchor_text, to_url.
// Returns ErrExportUnavailable on an empty row set
func CSV(rows []Row) (string, error) {
	if len(rows) == 0 {
		return "", ErrExportUnavailable
	}
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write([]string{"from_url", "anchor_text", "to_url"}); err != nil {
		return "", fmt.Errorf("assign: write csv header: %w", err)
	}
	for _, row := range rows {
		if err := w.Write([]string{row.FromURL, row.AnchorText, row.ToURL}); err != nil {
			return "", fmt.Errorf("assign: write csv row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("assign: flush csv: %w", err)
	}
	return buf.String(), nil
}

func compactIDs(ids []int64) []int64 {
	out := ids[:0:0]
	for _, id := range ids {
		if id > 0 {
			out = append(out, id)
		}
	}
	return out
}
