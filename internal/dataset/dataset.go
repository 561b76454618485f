// Package dataset loads labelled text for training and splits it
// reproducibly into train and test partitions.
package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"math/rand/v2"
	"strings"
)

// Example is one labelled document.
type Example struct {
	Text  string
	Label string
}

// ReadCSV reads examples from a CSV stream with a header row. Rows whose
// text or label is blank are skipped.
func ReadCSV(r io.Reader, textCol, labelCol string) ([]Example, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}

	textIdx, labelIdx := -1, -1
	for i, name := range header {
		name = strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))
		switch name {
		case textCol:
			textIdx = i
		case labelCol:
			labelIdx = i
		}
	}
	if textIdx < 0 {
		return nil, fmt.Errorf("column %q not found", textCol)
	}
	if labelIdx < 0 {
		return nil, fmt.Errorf("column %q not found", labelCol)
	}

	var examples []Example
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading row %d: %w", len(examples)+2, err)
		}
		if textIdx >= len(rec) || labelIdx >= len(rec) {
			continue
		}

		text := strings.TrimSpace(rec[textIdx])
		label := strings.TrimSpace(rec[labelIdx])
		if text == "" || label == "" {
			continue
		}
		examples = append(examples, Example{Text: text, Label: label})
	}

	return examples, nil
}

// Split shuffles examples with a seeded generator and returns the train and
// test partitions. The test partition holds ceil(testSize*n) examples.
func Split(examples []Example, testSize float64, seed uint64) (train, test []Example, err error) {
	if testSize <= 0 || testSize >= 1 {
		return nil, nil, fmt.Errorf("test size %v must be in (0, 1)", testSize)
	}
	n := len(examples)
	nTest := int(math.Ceil(testSize * float64(n)))
	if n < 2 || nTest >= n {
		return nil, nil, fmt.Errorf("cannot split %d examples with test size %v", n, testSize)
	}

	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	perm := rng.Perm(n)

	test = make([]Example, 0, nTest)
	train = make([]Example, 0, n-nTest)
	for i, idx := range perm {
		if i < nTest {
			test = append(test, examples[idx])
		} else {
			train = append(train, examples[idx])
		}
	}
	return train, test, nil
}
