package main

import (
	"fmt"
	"io"
	"sort"
)

// EventHandlerContext routes runtime events to every handler registered for the event type.
// It is built once and never modified, so Handle is safe for concurrent use.
type EventHandlerContext struct {
	out         io.Writer
	debugLogger *DebugLogger
	handlers    map[string][]EventHandlerInterface
}

func NewEventHandlerContext(out io.Writer, debugLogger *DebugLogger, handlers []EventHandlerInterface) *EventHandlerContext {
	handlersByEvent := make(map[string][]EventHandlerInterface)
	for _, handler := range handlers {
		eventType := handler.GetHandledEvent()
		handlersByEvent[eventType] = append(handlersByEvent[eventType], handler)
	}

	return &EventHandlerContext{
		out:         out,
		debugLogger: debugLogger,
		handlers:    handlersByEvent,
	}
}

// Handle invokes the handlers of event.EventType in registration order.
// The first handler error is returned as is and the remaining handlers are skipped.
func (handlerContext *EventHandlerContext) Handle(event *RuntimeEvent) error {
	handlers, found := handlerContext.handlers[event.EventType]
	if !found {
		UnroutableEventsTotal.Inc()
		_, _ = fmt.Fprintf(handlerContext.out, "No handler found for event type %s (event id: %s)\n", event.EventType, event.Id)
		return nil
	}

	dispatchedEventsCounter(event.EventType).Inc()

	for _, handler := range handlers {
		handlerContext.debugLogger.Log(
			"dispatch event",
			"type", event.EventType, "id", event.Id, "handler", fmt.Sprintf("%T", handler),
		)

		err := handler.Handle(event)
		if err != nil {
			EventHandlerErrorsTotal.Inc()
			return err
		}
	}

	return nil
}

func (handlerContext *EventHandlerContext) HandledEvents() []string {
	eventTypes := make([]string, 0, len(handlerContext.handlers))
	for eventType := range handlerContext.handlers {
		eventTypes = append(eventTypes, eventType)
	}
	sort.Strings(eventTypes)

	return eventTypes
}
