package testutil

import (
	"sync"

	"github.com/AntonioJCosta/stepshell/internal/core/domain/event"
)

// RecordingEventSink is a ports.EventSink that keeps every posted event.
type RecordingEventSink struct {
	mu     sync.Mutex
	Events []event.Event
}

func (r *RecordingEventSink) Post(ev event.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Events = append(r.Events, ev)
}
