package faq

import (
	"fmt"
	"strings"
)

// Catalog is the immutable set of FAQ entries and the answer lookup derived from it.
type Catalog struct {
	entries []Entry
	answers map[string]string
}

// NewCatalog validates entries and builds the lookup table.
func NewCatalog(entries []Entry) (*Catalog, error) {
	cat := &Catalog{
		entries: make([]Entry, 0, len(entries)),
		answers: make(map[string]string, len(entries)),
	}
	for i, entry := range entries {
		id := strings.TrimSpace(entry.ID)
		if id == "" {
			return nil, fmt.Errorf("faq entry %d: id cannot be empty", i)
		}
		if id != entry.ID {
			return nil, fmt.Errorf("faq entry %q: id has surrounding whitespace", entry.ID)
		}
		if strings.EqualFold(id, NoneLabel) {
			return nil, fmt.Errorf("faq entry %d: id %q is reserved", i, NoneLabel)
		}
		if _, dup := cat.answers[id]; dup {
			return nil, fmt.Errorf("faq entry %q: duplicate id", id)
		}
		if strings.TrimSpace(entry.Answer) == "" {
			return nil, fmt.Errorf("faq entry %q: answer cannot be empty", id)
		}
		phrases := make([]string, len(entry.QuestionPhrases))
		copy(phrases, entry.QuestionPhrases)
		cat.entries = append(cat.entries, Entry{ID: id, QuestionPhrases: phrases, Answer: entry.Answer})
		cat.answers[id] = entry.Answer
	}
	return cat, nil
}

// MustCatalog is NewCatalog for static entry lists; it panics on invalid input.
func MustCatalog(entries []Entry) *Catalog {
	cat, err := NewCatalog(entries)
	if err != nil {
		panic(err)
	}
	return cat
}

// Entries returns a copy of the entries in catalog order.
func (c *Catalog) Entries() []Entry {
	out := make([]Entry, len(c.entries))
	for i, entry := range c.entries {
		out[i] = entry
		out[i].QuestionPhrases = append([]string(nil), entry.QuestionPhrases...)
	}
	return out
}

// IDs returns the entry ids in catalog order.
func (c *Catalog) IDs() []string {
	ids := make([]string, len(c.entries))
	for i, entry := range c.entries {
		ids[i] = entry.ID
	}
	return ids
}

// Lookup returns the canned answer for a label.
func (c *Catalog) Lookup(label string) (string, bool) {
	answer, ok := c.answers[label]
	return answer, ok
}

// Len reports the number of entries.
func (c *Catalog) Len() int {
	return len(c.entries)
}

// DefaultEntries is the built-in catalog used when no other source is configured.
func DefaultEntries() []Entry {
	return []Entry{
		{
			ID:              "services",
			QuestionPhrases: []string{"what service do you provide?", "what services do you offer?", "tell me about your services", "list your offerings"},
			Answer:          "We have several services such as AI-powered chat assistants, content generation for marketing, data analysis insights, and personalized learning modules. How can I assist you with these services?",
		},
		{
			ID:              "working_hours",
			QuestionPhrases: []string{"what are your working hours?", "when are you open?", "what hours do you operate?", "your open hours"},
			Answer:          "Our support team is available Monday to Friday, from 9 AM to 5 PM Eastern Time.",
		},
		{
			ID:              "contact_support",
			QuestionPhrases: []string{"how can I contact support?", "get in touch with support", "support contact", "call support", "email support"},
			Answer:          "You can contact our support team by emailing support@example.com or calling us at 1-800-123-4567.",
		},
	}
}
