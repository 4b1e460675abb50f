package components

import (
	"github.com/yohamta/donburi/features/events"
)

// NavigateEventData asks the host to open an external resource.
type NavigateEventData struct {
	Target string
	Source string // name of the object that was clicked
}

var NavigateEvent = events.NewEventType[NavigateEventData]()
