package dataset

import (
	"fmt"
	"strings"
	"testing"
)

func TestReadCSV(t *testing.T) {
	input := "\ufefftext,Emotion,extra\n" +
		"I am happy,happy,x\n" +
		"\"Sad, very sad\",sad,y\n" +
		",angry,z\n" +
		"no label,,z\n" +
		"short\n" +
		"  spaced  , neutral ,w\n"

	got, err := ReadCSV(strings.NewReader(input), "text", "Emotion")
	if err != nil {
		t.Fatalf("ReadCSV() unexpected error: %v", err)
	}

	want := []Example{
		{Text: "I am happy", Label: "happy"},
		{Text: "Sad, very sad", Label: "sad"},
		{Text: "spaced", Label: "neutral"},
	}
	if len(got) != len(want) {
		t.Fatalf("ReadCSV() returned %d examples, want %d: %+v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("example %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestReadCSVMissingColumn(t *testing.T) {
	_, err := ReadCSV(strings.NewReader("body,label\nx,y\n"), "text", "label")
	if err == nil {
		t.Fatal("ReadCSV() expected error for missing text column")
	}
	_, err = ReadCSV(strings.NewReader("text,label\nx,y\n"), "text", "Emotion")
	if err == nil {
		t.Fatal("ReadCSV() expected error for missing label column")
	}
}

func makeExamples(n int) []Example {
	out := make([]Example, n)
	for i := range out {
		out[i] = Example{Text: fmt.Sprintf("doc %d", i), Label: "l"}
	}
	return out
}

func TestSplitSizesAndCoverage(t *testing.T) {
	examples := makeExamples(101)

	train, test, err := Split(examples, 0.2, 42)
	if err != nil {
		t.Fatalf("Split() unexpected error: %v", err)
	}
	if len(test) != 21 {
		t.Errorf("len(test) = %d, want 21", len(test))
	}
	if len(train) != 80 {
		t.Errorf("len(train) = %d, want 80", len(train))
	}

	seen := make(map[string]int)
	for _, e := range append(append([]Example{}, train...), test...) {
		seen[e.Text]++
	}
	if len(seen) != len(examples) {
		t.Errorf("split covers %d distinct examples, want %d", len(seen), len(examples))
	}
	for text, n := range seen {
		if n != 1 {
			t.Errorf("%q appears %d times", text, n)
		}
	}
}

func TestSplitReproducible(t *testing.T) {
	examples := makeExamples(50)

	train1, test1, err := Split(examples, 0.2, 42)
	if err != nil {
		t.Fatalf("Split() unexpected error: %v", err)
	}
	train2, test2, err := Split(examples, 0.2, 42)
	if err != nil {
		t.Fatalf("Split() unexpected error: %v", err)
	}

	for i := range test1 {
		if test1[i] != test2[i] {
			t.Fatalf("test partitions differ at %d", i)
		}
	}
	for i := range train1 {
		if train1[i] != train2[i] {
			t.Fatalf("train partitions differ at %d", i)
		}
	}
}

func TestSplitInvalid(t *testing.T) {
	tests := []struct {
		name     string
		n        int
		testSize float64
	}{
		{name: "zero test size", n: 10, testSize: 0},
		{name: "whole set", n: 10, testSize: 1},
		{name: "single example", n: 1, testSize: 0.2},
		{name: "no room for training", n: 2, testSize: 0.9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, _, err := Split(makeExamples(tt.n), tt.testSize, 1); err == nil {
				t.Error("Split() expected error")
			}
		})
	}
}
