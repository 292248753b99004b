package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/vsinha/pricesim/pkg/infrastructure/events"
)

func TestRecorder_CountsEvents(t *testing.T) {
	store := events.NewInMemoryEventStore()
	recorder := NewRecorder()
	if err := recorder.Attach(store); err != nil {
		t.Fatalf("Attach failed: %v", err)
	}

	_ = store.AppendEvent("s", events.NewEvent(events.SimulationStartedEvent, events.SimulationStarted{}))
	_ = store.AppendEvent("s", events.NewEvent(events.ValueItemUpdatedEvent, nil))
	_ = store.AppendEvent("s", events.NewEvent(events.ValueItemUpdatedEvent, nil))

	if got := testutil.ToFloat64(recorder.events.WithLabelValues(events.ValueItemUpdatedEvent)); got != 2 {
		t.Errorf("Expected 2 value updates, got %v", got)
	}
	if got := testutil.ToFloat64(recorder.simulations); got != 1 {
		t.Errorf("Expected 1 simulation started, got %v", got)
	}
	if got := testutil.ToFloat64(recorder.simulationMode); got != 1 {
		t.Errorf("Expected simulation mode gauge 1, got %v", got)
	}

	_ = store.AppendEvent("s", events.NewEvent(events.SimulationExitedEvent, events.SimulationExited{}))
	if got := testutil.ToFloat64(recorder.simulationMode); got != 0 {
		t.Errorf("Expected simulation mode gauge 0 after exit, got %v", got)
	}

	counts, err := recorder.Counts()
	if err != nil {
		t.Fatalf("Counts failed: %v", err)
	}
	if counts[events.ValueItemUpdatedEvent] != 2 || counts[events.SimulationExitedEvent] != 1 {
		t.Errorf("Unexpected counts: %v", counts)
	}
}

func TestRecorder_CanHandle(t *testing.T) {
	recorder := NewRecorder()
	if !recorder.CanHandle(events.ReferenceUpdatedEvent) {
		t.Error("Expected recorder to handle reference updates")
	}
	if recorder.CanHandle("demand.created") {
		t.Error("Expected recorder to ignore foreign events")
	}
}

func TestRecorder_CountsDiscardedDrafts(t *testing.T) {
	store := events.NewInMemoryEventStore()
	recorder := NewRecorder()
	if err := recorder.Attach(store); err != nil {
		t.Fatalf("Attach failed: %v", err)
	}

	_ = store.AppendEvent("s", events.NewEvent(events.ScenarioResetEvent, events.ScenarioReset{DiscardedChanges: true}))
	_ = store.AppendEvent("s", events.NewEvent(events.ScenarioResetEvent, events.ScenarioReset{}))
	_ = store.AppendEvent("s", events.NewEvent(events.SimulationExitedEvent, events.SimulationExited{DiscardedChanges: true}))
	_ = store.AppendEvent("s", events.NewEvent(events.SimulationExitedEvent, nil))

	if got := testutil.ToFloat64(recorder.discarded); got != 2 {
		t.Errorf("Expected 2 discarded drafts, got %v", got)
	}
}
