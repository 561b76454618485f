package classifier

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// LoadVectorizer reads a vectorizer artifact.
func LoadVectorizer(path string) (*Vectorizer, error) {
	var v Vectorizer
	if err := readJSON(path, &v); err != nil {
		return nil, err
	}
	if len(v.Vocabulary) != len(v.IDF) {
		return nil, fmt.Errorf("vectorizer %s: %d vocabulary terms but %d idf weights", path, len(v.Vocabulary), len(v.IDF))
	}
	for term, idx := range v.Vocabulary {
		if idx < 0 || idx >= len(v.IDF) {
			return nil, fmt.Errorf("vectorizer %s: term %q has out of range index %d", path, term, idx)
		}
	}
	return &v, nil
}

// LoadModel reads a logistic-regression artifact.
func LoadModel(path string) (*Model, error) {
	var m Model
	if err := readJSON(path, &m); err != nil {
		return nil, err
	}
	if err := m.validate(); err != nil {
		return nil, fmt.Errorf("model %s: %w", path, err)
	}
	return &m, nil
}

// SaveVectorizer writes v to path.
func SaveVectorizer(path string, v *Vectorizer) error {
	return writeJSON(path, v)
}

// SaveModel writes m to path.
func SaveModel(path string, m *Model) error {
	return writeJSON(path, m)
}

func readJSON(path string, v any) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening artifact: %w", err)
	}
	defer f.Close()

	if err := json.NewDecoder(f).Decode(v); err != nil {
		return fmt.Errorf("decoding artifact %s: %w", path, err)
	}
	return nil
}

// writeJSON writes through a temp file so a reader never sees a partial artifact.
func writeJSON(path string, v any) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("creating artifact: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := json.NewEncoder(tmp).Encode(v); err != nil {
		tmp.Close()
		return fmt.Errorf("encoding artifact %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing artifact %s: %w", path, err)
	}
	return os.Rename(tmp.Name(), path)
}
