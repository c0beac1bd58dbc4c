package question

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type bankFile struct {
	Questions []Question `yaml:"questions"`
}

// LoadFile reads a YAML question bank:
//
//	questions:
//	  - id: 1
//	    text: What is JSX in React?
//	    difficulty: easy
//	    time_limit_seconds: 20
func LoadFile(filename string) (Bank, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("read question bank %s: %w", filename, err)
	}
	var f bankFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse question bank: %w", err)
	}
	if err := validate(f.Questions); err != nil {
		return nil, fmt.Errorf("validate question bank: %w", err)
	}
	return &staticBank{questions: f.Questions}, nil
}

func validate(qs []Question) error {
	if len(qs) == 0 {
		return fmt.Errorf("at least one question is required")
	}
	seen := make(map[int]struct{}, len(qs))
	for i, q := range qs {
		if _, dup := seen[q.ID]; dup {
			return fmt.Errorf("question %d: duplicate id %d", i, q.ID)
		}
		seen[q.ID] = struct{}{}
		if q.Text == "" {
			return fmt.Errorf("question %d: text is required", q.ID)
		}
		if !q.Difficulty.Valid() {
			return fmt.Errorf("question %d: unknown difficulty %q", q.ID, q.Difficulty)
		}
		if q.TimeLimitSeconds <= 0 {
			return fmt.Errorf("question %d: time_limit_seconds must be positive", q.ID)
		}
	}
	return nil
}
