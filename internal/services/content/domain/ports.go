package domain

import (
	"context"

	"anchors/internal/core/cannibal"
)

// AnnotatorModule is the registry name the cannibalization annotator is
// published under. Search looks it up lazily so content does not depend on
// the workflow module being present
const AnnotatorModule = "cannibal"

// ReaderPort reads single documents
type ReaderPort interface {
	// Get returns a published post or page by id
	Get(ctx context.Context, id int64) (Document, error)
	// Detail returns the document with cleaned body text and word count
	Detail(ctx context.Context, id int64) (DocumentDetail, error)
	// PlainText returns just the cleaned body text
	PlainText(ctx context.Context, id int64) (string, error)
	// ResolveURL maps an id to its canonical URL, ok=false when unknown
	ResolveURL(ctx context.Context, id int64) (string, bool)
}

// SearcherPort searches documents
type SearcherPort interface {
	Search(ctx context.Context, in SearchInput) (SearchPage, error)
}

// AnnotatorPort scores a search result against a reference document.
// Implemented by the link building workflow; optional at mount time
type AnnotatorPort interface {
	Annotate(ctx context.Context, candidateID, referenceID int64, canonical string) (cannibal.Score, error)
}
