package faq

import "context"

// EntrySource loads catalog entries once at startup.
type EntrySource interface {
	LoadEntries(ctx context.Context) ([]Entry, error)
}

// StaticSource serves a fixed entry list.
type StaticSource []Entry

// LoadEntries implements EntrySource.
func (s StaticSource) LoadEntries(context.Context) ([]Entry, error) {
	out := make([]Entry, len(s))
	copy(out, s)
	return out, nil
}

// LoadCatalog reads entries from src and builds the catalog.
func LoadCatalog(ctx context.Context, src EntrySource) (*Catalog, error) {
	entries, err := src.LoadEntries(ctx)
	if err != nil {
		return nil, err
	}
	return NewCatalog(entries)
}
