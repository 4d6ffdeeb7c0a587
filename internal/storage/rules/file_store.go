package rules

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/carson-networks/budget-flow/internal/categorizer"
)

var _ IRulesStore = (*FileStore)(nil)

var ErrInvalidRulesFile = errors.New("invalid rules file")

// FileStore keeps rules in a YAML file. Two layouts are read:
//
//	- name: Food
//	  keywords: [kfc, carrefour]
//
// and the shorter mapping form, whose key order is the priority order:
//
//	Food: [kfc, carrefour]
//
// Save always writes the sequence form.
type FileStore struct {
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) Path() string {
	return s.path
}

// Load returns an empty rule set when the file does not exist yet.
func (s *FileStore) Load(_ context.Context) (categorizer.CategoryRules, error) {
	raw, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return categorizer.CategoryRules{}, nil
	}
	if err != nil {
		return nil, err
	}
	return Parse(raw)
}

// Save writes the rules to a temporary file and renames it over the target.
func (s *FileStore) Save(_ context.Context, rules categorizer.CategoryRules) error {
	if rules == nil {
		rules = categorizer.CategoryRules{}
	}
	raw, err := yaml.Marshal(rules)
	if err != nil {
		return err
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(raw); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), s.path)
}

// Parse decodes either supported layout.
func Parse(raw []byte) (categorizer.CategoryRules, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRulesFile, err)
	}
	if len(doc.Content) == 0 {
		return categorizer.CategoryRules{}, nil
	}

	root := doc.Content[0]
	switch root.Kind {
	case yaml.SequenceNode:
		var rules categorizer.CategoryRules
		if err := root.Decode(&rules); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidRulesFile, err)
		}
		return rules, nil
	case yaml.MappingNode:
		rules := make(categorizer.CategoryRules, 0, len(root.Content)/2)
		for i := 0; i+1 < len(root.Content); i += 2 {
			var keywords []string
			if err := root.Content[i+1].Decode(&keywords); err != nil {
				return nil, fmt.Errorf("%w: category %q: %v", ErrInvalidRulesFile, root.Content[i].Value, err)
			}
			rules = append(rules, categorizer.CategoryRule{
				Name:     root.Content[i].Value,
				Keywords: keywords,
			})
		}
		return rules, nil
	}
	return nil, fmt.Errorf("%w: expected a list or a mapping at line %d", ErrInvalidRulesFile, root.Line)
}
