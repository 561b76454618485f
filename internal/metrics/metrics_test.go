package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMustRegister(t *testing.T) {
	reg := prometheus.NewRegistry()
	MustRegister(reg)

	SetModelLoaded(true)
	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("Gather() error: %v", err)
	}
	if len(families) == 0 {
		t.Fatal("expected registered metric families")
	}
}

func TestObserveClassification(t *testing.T) {
	before := testutil.ToFloat64(ClassificationsTotal.WithLabelValues("feedback", "joy"))
	ObserveClassification("feedback", "joy", time.Now(), nil)
	if got := testutil.ToFloat64(ClassificationsTotal.WithLabelValues("feedback", "joy")); got != before+1 {
		t.Errorf("classifications_total = %v, want %v", got, before+1)
	}

	errBefore := testutil.ToFloat64(ClassificationErrors.WithLabelValues("predict"))
	ObserveClassification("predict", "", time.Now(), errors.New("boom"))
	if got := testutil.ToFloat64(ClassificationErrors.WithLabelValues("predict")); got != errBefore+1 {
		t.Errorf("classification_errors_total = %v, want %v", got, errBefore+1)
	}
}

func TestObserveLogin(t *testing.T) {
	before := testutil.ToFloat64(LoginAttempts.WithLabelValues("admin", "failure"))
	ObserveLogin("admin", errors.New("denied"))
	if got := testutil.ToFloat64(LoginAttempts.WithLabelValues("admin", "failure")); got != before+1 {
		t.Errorf("login_attempts_total = %v, want %v", got, before+1)
	}
}

func TestSetModelLoaded(t *testing.T) {
	SetModelLoaded(false)
	if got := testutil.ToFloat64(ModelLoaded); got != 0 {
		t.Errorf("model_loaded = %v, want 0", got)
	}
	SetModelLoaded(true)
	if got := testutil.ToFloat64(ModelLoaded); got != 1 {
		t.Errorf("model_loaded = %v, want 1", got)
	}
}
