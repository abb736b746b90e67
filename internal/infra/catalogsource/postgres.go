package catalogsource

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/yanqian/faq-assistant/internal/domain/faq"
)

const selectEntries = `
	SELECT id, question_phrases, answer
	FROM faq_entries
	ORDER BY position, id
`

// PostgresSource reads catalog entries from the faq_entries table.
type PostgresSource struct {
	pool *pgxpool.Pool
}

// NewPostgresSource constructs the source.
func NewPostgresSource(pool *pgxpool.Pool) *PostgresSource {
	return &PostgresSource{pool: pool}
}

// LoadEntries implements faq.EntrySource.
func (s *PostgresSource) LoadEntries(ctx context.Context) ([]faq.Entry, error) {
	rows, err := s.pool.Query(ctx, selectEntries)
	if err != nil {
		return nil, fmt.Errorf("query faq entries: %w", err)
	}
	entries, err := pgx.CollectRows(rows, scanEntry)
	if err != nil {
		return nil, fmt.Errorf("scan faq entries: %w", err)
	}
	return entries, nil
}

// Close releases the pool; the catalog is read once at startup.
func (s *PostgresSource) Close() {
	s.pool.Close()
}

func scanEntry(row pgx.CollectableRow) (faq.Entry, error) {
	var (
		entry   faq.Entry
		phrases []string
	)
	if err := row.Scan(&entry.ID, &phrases, &entry.Answer); err != nil {
		return faq.Entry{}, err
	}
	entry.QuestionPhrases = phrases
	return entry, nil
}

var _ faq.EntrySource = (*PostgresSource)(nil)
