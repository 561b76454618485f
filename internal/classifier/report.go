package classifier

import (
	"fmt"
	"sort"
	"strings"
)

// LabelScore holds precision, recall and F1 for one label.
type LabelScore struct {
	Label     string
	Precision float64
	Recall    float64
	F1        float64
	Support   int
}

// Report summarises predictions against ground truth.
type Report struct {
	Labels      []LabelScore
	Accuracy    float64
	MacroAvg    LabelScore
	WeightedAvg LabelScore
	Total       int
}

// Evaluate builds a per-label classification report. Labels that never
// occur in either slice are not reported; undefined ratios count as zero.
func Evaluate(yTrue, yPred []string) (Report, error) {
	if len(yTrue) != len(yPred) {
		return Report{}, fmt.Errorf("got %d true labels and %d predictions", len(yTrue), len(yPred))
	}

	tp := make(map[string]int)
	predicted := make(map[string]int)
	actual := make(map[string]int)
	var correct int

	for i := range yTrue {
		actual[yTrue[i]]++
		predicted[yPred[i]]++
		if yTrue[i] == yPred[i] {
			tp[yTrue[i]]++
			correct++
		}
	}

	labelSet := make(map[string]bool)
	for l := range actual {
		labelSet[l] = true
	}
	for l := range predicted {
		labelSet[l] = true
	}
	labels := make([]string, 0, len(labelSet))
	for l := range labelSet {
		labels = append(labels, l)
	}
	sort.Strings(labels)

	r := Report{Total: len(yTrue)}
	if r.Total > 0 {
		r.Accuracy = float64(correct) / float64(r.Total)
	}

	for _, l := range labels {
		s := LabelScore{
			Label:     l,
			Precision: ratio(tp[l], predicted[l]),
			Recall:    ratio(tp[l], actual[l]),
			Support:   actual[l],
		}
		if s.Precision+s.Recall > 0 {
			s.F1 = 2 * s.Precision * s.Recall / (s.Precision + s.Recall)
		}
		r.Labels = append(r.Labels, s)

		r.MacroAvg.Precision += s.Precision
		r.MacroAvg.Recall += s.Recall
		r.MacroAvg.F1 += s.F1

		w := float64(s.Support)
		r.WeightedAvg.Precision += w * s.Precision
		r.WeightedAvg.Recall += w * s.Recall
		r.WeightedAvg.F1 += w * s.F1
	}

	if n := float64(len(labels)); n > 0 {
		r.MacroAvg.Precision /= n
		r.MacroAvg.Recall /= n
		r.MacroAvg.F1 /= n
	}
	if r.Total > 0 {
		t := float64(r.Total)
		r.WeightedAvg.Precision /= t
		r.WeightedAvg.Recall /= t
		r.WeightedAvg.F1 /= t
	}
	r.MacroAvg.Label, r.MacroAvg.Support = "macro avg", r.Total
	r.WeightedAvg.Label, r.WeightedAvg.Support = "weighted avg", r.Total

	return r, nil
}

// String renders the report as a fixed-width table.
func (r Report) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%14s %10s %10s %10s %10s\n\n", "", "precision", "recall", "f1-score", "support")
	for _, s := range r.Labels {
		writeRow(&b, s)
	}
	b.WriteString("\n")
	fmt.Fprintf(&b, "%14s %10s %10s %10.2f %10d\n", "accuracy", "", "", r.Accuracy, r.Total)
	writeRow(&b, r.MacroAvg)
	writeRow(&b, r.WeightedAvg)
	return b.String()
}

func writeRow(b *strings.Builder, s LabelScore) {
	fmt.Fprintf(b, "%14s %10.2f %10.2f %10.2f %10d\n", s.Label, s.Precision, s.Recall, s.F1, s.Support)
}

func ratio(num, den int) float64 {
	if den == 0 {
		return 0
	}
	return float64(num) / float64(den)
}
