package catalogsource

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/yanqian/faq-assistant/internal/domain/faq"
)

type catalogFile struct {
	Entries []faq.Entry `yaml:"entries"`
}

// FileSource reads catalog entries from a YAML document of the form
//
//	entries:
//	  - id: services
//	    questionPhrases: ["what services do you offer?"]
//	    answer: "..."
type FileSource struct {
	path string
}

// NewFileSource constructs a source for the file at path.
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

// LoadEntries implements faq.EntrySource.
func (s *FileSource) LoadEntries(_ context.Context) ([]faq.Entry, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("read faq catalog: %w", err)
	}
	return parseEntries(data)
}

func parseEntries(data []byte) ([]faq.Entry, error) {
	var doc catalogFile
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse faq catalog: %w", err)
	}
	return doc.Entries, nil
}

var _ faq.EntrySource = (*FileSource)(nil)
