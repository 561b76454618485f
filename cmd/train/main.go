// Command train fits the TF-IDF vectorizer and logistic-regression model the
// API serves, and writes both as JSON artifacts.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/feedbacklens/feedbacklens-go/internal/classifier"
	"github.com/feedbacklens/feedbacklens-go/internal/dataset"
	"github.com/feedbacklens/feedbacklens-go/internal/logging"
	"github.com/feedbacklens/feedbacklens-go/internal/nlp"
)

type options struct {
	data          string
	textCol       string
	labelCol      string
	maxFeatures   int
	testSize      float64
	seed          uint64
	maxIter       int
	c             float64
	modelOut      string
	vectorizerOut string
}

func parseFlags(args []string) (options, error) {
	var o options
	fs := flag.NewFlagSet("train", flag.ContinueOnError)
	fs.StringVar(&o.data, "data", "EmotionDetection.csv", "labelled CSV dataset")
	fs.StringVar(&o.textCol, "text-col", "text", "name of the text column")
	fs.StringVar(&o.labelCol, "label-col", "Emotion", "name of the label column")
	fs.IntVar(&o.maxFeatures, "max-features", 5000, "vocabulary size cap (0 = unlimited)")
	fs.Float64Var(&o.testSize, "test-size", 0.2, "held-out fraction")
	fs.Uint64Var(&o.seed, "seed", 42, "shuffle seed")
	fs.IntVar(&o.maxIter, "max-iter", 2000, "optimizer iteration cap")
	fs.Float64Var(&o.c, "C", 1.0, "inverse regularization strength")
	fs.StringVar(&o.modelOut, "model-out", "sentiment_model.json", "model artifact path")
	fs.StringVar(&o.vectorizerOut, "vectorizer-out", "vectorizer.json", "vectorizer artifact path")

	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	return o, nil
}

func main() {
	logger := logging.New(os.Getenv("ENV"), os.Getenv("LOG_LEVEL"))

	opts, err := parseFlags(os.Args[1:])
	if err != nil {
		os.Exit(2)
	}

	if err := run(opts, os.Stdout, logger); err != nil {
		logger.Fatal().Err(err).Msg("training failed")
	}
}

func run(o options, out io.Writer, logger zerolog.Logger) error {
	f, err := os.Open(o.data)
	if err != nil {
		return fmt.Errorf("opening dataset: %w", err)
	}
	defer f.Close()

	examples, err := dataset.ReadCSV(f, o.textCol, o.labelCol)
	if err != nil {
		return fmt.Errorf("reading dataset: %w", err)
	}
	logger.Info().Int("examples", len(examples)).Str("path", o.data).Msg("dataset loaded")

	normalizer, err := nlp.NewEnglishNormalizer()
	if err != nil {
		return err
	}
	for i := range examples {
		examples[i].Text = normalizer.Normalize(examples[i].Text)
	}

	train, test, err := dataset.Split(examples, o.testSize, o.seed)
	if err != nil {
		return fmt.Errorf("splitting dataset: %w", err)
	}

	trainDocs, trainLabels := columns(train)
	vectorizer := classifier.FitVectorizer(trainDocs, o.maxFeatures)
	logger.Info().Int("features", vectorizer.Dim()).Int("train", len(train)).Int("test", len(test)).Msg("vectorizer fitted")

	x := make([]classifier.SparseVector, len(trainDocs))
	for i, doc := range trainDocs {
		x[i] = vectorizer.Transform(doc)
	}

	fitOpts := classifier.DefaultFitOptions()
	fitOpts.C = o.c
	fitOpts.MaxIter = o.maxIter

	start := time.Now()
	res, err := classifier.FitModel(x, trainLabels, vectorizer.Dim(), fitOpts)
	if err != nil {
		return fmt.Errorf("fitting model: %w", err)
	}
	event := logger.Info()
	if res.Warning != nil {
		event = logger.Warn().AnErr("warning", res.Warning)
	}
	event.
		Float64("loss", res.Loss).
		Int("iterations", res.Iterations).
		Str("status", res.Status).
		Dur("took", time.Since(start)).
		Msg("model fitted")

	testDocs, testLabels := columns(test)
	predicted := make([]string, len(testDocs))
	for i, doc := range testDocs {
		predicted[i] = res.Model.Predict(vectorizer.Transform(doc)).Label
	}

	report, err := classifier.Evaluate(testLabels, predicted)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, report.String())

	if err := classifier.SaveVectorizer(o.vectorizerOut, vectorizer); err != nil {
		return fmt.Errorf("saving vectorizer: %w", err)
	}
	if err := classifier.SaveModel(o.modelOut, res.Model); err != nil {
		return fmt.Errorf("saving model: %w", err)
	}
	logger.Info().Str("model", o.modelOut).Str("vectorizer", o.vectorizerOut).Msg("model and vectorizer saved")

	return nil
}

func columns(examples []dataset.Example) ([]string, []string) {
	docs := make([]string, len(examples))
	labels := make([]string, len(examples))
	for i, ex := range examples {
		docs[i] = ex.Text
		labels[i] = ex.Label
	}
	return docs, labels
}
