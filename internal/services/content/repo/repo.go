// Package repo provides postgres access for documents
package repo

import (
	"context"
	"strings"

	perr "anchors/internal/platform/errors"
	"anchors/internal/platform/store/pg"
	"anchors/internal/services/content/domain"
)

// PageSize is the fixed search page size
const PageSize = 50

// Repo is the minimal persistence surface for documents
type Repo interface {
	Get(ctx context.Context, id int64) (domain.Document, error)
	Search(ctx context.Context, in domain.SearchInput) (domain.SearchPage, error)
	URL(ctx context.Context, id int64) (string, error)
}

type queries struct{ q pg.Querier }

// NewPG wires a Querier to the repo
func NewPG(q pg.Querier) Repo {
	if q == nil {
		panic("content repo requires a non nil Querier")
	}
	return &queries{q: q}
}

func (r *queries) Get(ctx context.Context, id int64) (domain.Document, error) {
	const sql = `
select id, title, slug, type, status, content, url
from documents
where id = $1
and status = 'published'
and type in ('post', 'page')`

	var d domain.Document
	err := r.q.QueryRow(ctx, sql, id).
		Scan(&d.ID, &d.Title, &d.Slug, &d.Type, &d.Status, &d.RawContent, &d.URL)
	if err != nil {
		if perr.IsNoRows(err) {
			return domain.Document{}, perr.NotFoundf("document %d not found", id)
		}
		return domain.Document{}, perr.FromPG(err, "get document")
	}
	return d, nil
}

func (r *queries) URL(ctx context.Context, id int64) (string, error) {
	const sql = `
select url
from documents
where id = $1
and status = 'published'
and type in ('post', 'page')`

	var url string
	if err := r.q.QueryRow(ctx, sql, id).Scan(&url); err != nil {
		if perr.IsNoRows(err) {
			return "", perr.NotFoundf("document %d not found", id)
		}
		return "", perr.FromPG(err, "resolve document url")
	}
	return url, nil
}

func (r *queries) Search(ctx context.Context, in domain.SearchInput) (domain.SearchPage, error) {
	page := in.Page
	if page < 1 {
		page = 1
	}
	pattern := "%" + escapeLike(in.Keyword) + "%"
	exclude := in.Exclude
	if exclude == nil {
		exclude = []int64{}
	}

	const sql = `
select id, title, type, url, count(*) over() as total
from documents
where status = 'published'
and type in ('post', 'page')
and (title ilike $1 or ($2 and content ilike $1))
and id <> all($3)
order by title asc, id asc
limit $4 offset $5`

	rows, err := r.q.Query(ctx, sql, pattern, in.InBody, exclude, PageSize, (page-1)*PageSize)
	if err != nil {
		return domain.SearchPage{}, perr.FromPG(err, "search documents")
	}
	defer rows.Close()

	out := domain.SearchPage{Items: []domain.SearchItem{}}
	for rows.Next() {
		var item domain.SearchItem
		var total int
		if err := rows.Scan(&item.ID, &item.Title, &item.Type, &item.URL, &total); err != nil {
			return domain.SearchPage{}, perr.FromPG(err, "search documents")
		}
		out.Total = total
		out.Items = append(out.Items, item)
	}
	if err := rows.Err(); err != nil {
		return domain.SearchPage{}, perr.FromPG(err, "search documents")
	}
	out.TotalPages = (out.Total + PageSize - 1) / PageSize
	return out, nil
}

// escapeLike neutralizes LIKE wildcards in user keywords
func escapeLike(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, "%", `\%`)
	return strings.ReplaceAll(s, "_", `\_`)
}
