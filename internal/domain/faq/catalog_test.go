package faq

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewCatalogBuildsLookup(t *testing.T) {
	catalog, err := NewCatalog(DefaultEntries())
	require.NoError(t, err)
	require.Equal(t, []string{"services", "working_hours", "contact_support"}, catalog.IDs())
	require.Equal(t, 3, catalog.Len())

	for _, entry := range DefaultEntries() {
		answer, ok := catalog.Lookup(entry.ID)
		require.True(t, ok)
		require.Equal(t, entry.Answer, answer)
	}
	_, ok := catalog.Lookup(NoneLabel)
	require.False(t, ok)
	_, ok = catalog.Lookup("")
	require.False(t, ok)
}

func TestNewCatalogRejectsInvalidEntries(t *testing.T) {
	cases := []struct {
		name    string
		entries []Entry
	}{
		{name: "empty id", entries: []Entry{{ID: "", Answer: "a"}}},
		{name: "padded id", entries: []Entry{{ID: " hours ", Answer: "a"}}},
		{name: "sentinel id", entries: []Entry{{ID: "None", Answer: "a"}}},
		{name: "duplicate id", entries: []Entry{{ID: "x", Answer: "a"}, {ID: "x", Answer: "b"}}},
		{name: "empty answer", entries: []Entry{{ID: "x", Answer: "  "}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewCatalog(tc.entries)
			require.Error(t, err)
		})
	}
}

func TestCatalogIsIsolatedFromCallerMutation(t *testing.T) {
	entries := []Entry{{ID: "x", QuestionPhrases: []string{"p1"}, Answer: "a"}}
	catalog := MustCatalog(entries)

	entries[0].QuestionPhrases[0] = "changed"
	got := catalog.Entries()
	require.Equal(t, "p1", got[0].QuestionPhrases[0])

	got[0].QuestionPhrases[0] = "changed again"
	require.Equal(t, "p1", catalog.Entries()[0].QuestionPhrases[0])
}

func TestLoadCatalog(t *testing.T) {
	catalog, err := LoadCatalog(context.Background(), StaticSource(DefaultEntries()))
	require.NoError(t, err)
	require.Equal(t, 3, catalog.Len())

	_, err = LoadCatalog(context.Background(), failingSource{})
	require.Error(t, err)
}

type failingSource struct{}

func (failingSource) LoadEntries(context.Context) ([]Entry, error) {
	return nil, errors.New("db down")
}
