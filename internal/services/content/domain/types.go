// Package domain holds content types and ports shared across modules
package domain

import "anchors/internal/core/cannibal"

// Document is a published site document (post or page)
type Document struct {
	ID         int64  `json:"id"`
	Title      string `json:"title"`
	Slug       string `json:"slug"`
	Type       string `json:"type"`
	Status     string `json:"status"`
	RawContent string `json:"-"`
	URL        string `json:"url"`
}

// DocumentDetail is a document with its cleaned body, ready for extraction
type DocumentDetail struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	BodyText  string `json:"body_text"`
	WordCount int    `json:"word_count"`
}

// SearchInput filters the document search
type SearchInput struct {
	Keyword   string
	InBody    bool
	Page      int
	Exclude   []int64
	ContextID int64
	Canonical string
}

// SearchItem is one search result, optionally annotated with a
// cannibalization score when a context document and canonical were given
type SearchItem struct {
	ID              int64           `json:"id"`
	Title           string          `json:"title"`
	Type            string          `json:"type"`
	URL             string          `json:"url"`
	Cannibalization *cannibal.Score `json:"cannibalization,omitempty"`
}

// SearchPage is a page of search results
type SearchPage struct {
	Items      []SearchItem `json:"items"`
	Total      int          `json:"total"`
	TotalPages int          `json:"total_pages"`
}
