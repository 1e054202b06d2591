package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/fwojciec/ogmeta"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ ogmeta.PageService = (*PageService)(nil)

// PageService implements ogmeta.PageService using SQLite.
type PageService struct {
	db  *DB
	now func() time.Time
}

// NewPageService creates a new PageService.
func NewPageService(db *DB) *PageService {
	return &PageService{db: db, now: time.Now}
}

const pageColumns = "id, url, kind, type, title, content_hash, metadata, extracted_at"

// SavePage inserts the page or replaces the stored page with the same URL.
// On return page.ID and page.ExtractedAt reflect the stored row.
func (s *PageService) SavePage(ctx context.Context, page *ogmeta.Page) error {
	if err := page.Validate(); err != nil {
		return err
	}

	metadata, err := ogmeta.MarshalMetadata(page.Metadata)
	if err != nil {
		return err
	}

	fresh := *page
	fresh.Kind = page.Metadata.Kind()
	fresh.Type = page.Metadata.Base().Type
	fresh.Title = ""
	if t := page.Metadata.Base().Title; t != nil {
		fresh.Title = *t
	}
	fresh.ExtractedAt = s.now().UTC()

	var id string
	err = s.db.QueryRowContext(ctx, `
		INSERT INTO pages (`+pageColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(url) DO UPDATE SET
			kind = excluded.kind,
			type = excluded.type,
			title = excluded.title,
			content_hash = excluded.content_hash,
			metadata = excluded.metadata,
			extracted_at = excluded.extracted_at
		RETURNING id
	`, uuid.New().String(), fresh.URL, string(fresh.Kind), fresh.Type, fresh.Title,
		fresh.ContentHash, string(metadata), formatTime(fresh.ExtractedAt)).Scan(&id)
	if err != nil {
		return fmt.Errorf("save page %s: %w", page.URL, err)
	}

	fresh.ID = id
	*page = fresh
	return nil
}

// FindPageByURL retrieves a page by its URL.
func (s *PageService) FindPageByURL(ctx context.Context, url string) (*ogmeta.Page, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+pageColumns+` FROM pages WHERE url = ?`, url)
	page, err := scanPage(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ogmeta.Errorf(ogmeta.ENOTFOUND, "page not found: %s", url)
	}
	if err != nil {
		return nil, err
	}
	return page, nil
}

// FindPages retrieves pages matching the filter, most recent first.
func (s *PageService) FindPages(ctx context.Context, filter ogmeta.PageFilter) ([]*ogmeta.Page, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT " + pageColumns + " FROM pages WHERE 1=1")
	if filter.Kind != nil {
		query.WriteString(" AND kind = ?")
		args = append(args, string(*filter.Kind))
	}
	query.WriteString(" ORDER BY extracted_at DESC, url ASC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	pages := []*ogmeta.Page{}
	for rows.Next() {
		page, err := scanPage(rows)
		if err != nil {
			return nil, err
		}
		pages = append(pages, page)
	}

	return pages, rows.Err()
}

// DeletePage permanently removes a page.
func (s *PageService) DeletePage(ctx context.Context, url string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM pages WHERE url = ?", url)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ogmeta.Errorf(ogmeta.ENOTFOUND, "page not found: %s", url)
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanPage(row scanner) (*ogmeta.Page, error) {
	var (
		page        ogmeta.Page
		kind        string
		metadata    string
		extractedAt string
	)
	if err := row.Scan(&page.ID, &page.URL, &kind, &page.Type, &page.Title,
		&page.ContentHash, &metadata, &extractedAt); err != nil {
		return nil, err
	}
	page.Kind = ogmeta.Kind(kind)

	m, err := ogmeta.UnmarshalMetadata([]byte(metadata))
	if err != nil {
		return nil, fmt.Errorf("page %s: %w", page.URL, err)
	}
	page.Metadata = m

	if page.ExtractedAt, err = parseTime(extractedAt, "extracted_at"); err != nil {
		return nil, err
	}
	return &page, nil
}
