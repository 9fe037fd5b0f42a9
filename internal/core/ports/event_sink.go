package ports

import "github.com/AntonioJCosta/stepshell/internal/core/domain/event"

// EventSink receives console events posted by steps.
type EventSink interface {
	Post(ev event.Event)
}
