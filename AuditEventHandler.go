package main

import (
	"fmt"
	"io"
)

// AuditEventHandler records every runtime event of its type in the audit stream.
type AuditEventHandler struct {
	out        io.Writer
	eventType  string
	repository AuditEventRepositoryInterface
}

func NewAuditEventHandlers(out io.Writer, repository AuditEventRepositoryInterface) []EventHandlerInterface {
	handlers := make([]EventHandlerInterface, len(AllRuntimeEventTypes))
	for i, eventType := range AllRuntimeEventTypes {
		handlers[i] = &AuditEventHandler{
			out:        out,
			eventType:  eventType,
			repository: repository,
		}
	}

	return handlers
}

func (handler *AuditEventHandler) GetHandledEvent() string {
	return handler.eventType
}

func (handler *AuditEventHandler) Handle(event *RuntimeEvent) error {
	stored, err := handler.repository.Append(event)
	if err == nil && !stored {
		_, _ = fmt.Fprintf(handler.out, "Audit event %s (%s) already stored\n", event.Id, event.EventType)
	}

	return err
}
