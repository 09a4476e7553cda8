package main

import (
	"bytes"
	"context"
	"fmt"
	"github.com/bytedance/sonic"
	"github.com/segmentio/kafka-go"
	"io"
)

// RuntimeEventMessageHandler unpacks a batch of runtime events from one Kafka message
// and dispatches them in life-cycle order.
type RuntimeEventMessageHandler struct {
	out        io.Writer
	dispatcher EventDispatcherInterface
	optimizer  EventOrderOptimizer
	committers []CommitterInterface
}

func (handler *RuntimeEventMessageHandler) Handle(_ context.Context, message kafka.Message) error {
	events, err := decodeRuntimeEvents(message.Value)
	if err != nil {
		return err
	}

	events = handler.skipNullEvents(message, events)

	for _, event := range handler.optimizer.Optimize(events) {
		err = handler.dispatcher.Handle(event)
		if err != nil {
			return err
		}
	}

	return nil
}

// skipNullEvents drops null elements of a batch as unroutable.
func (handler *RuntimeEventMessageHandler) skipNullEvents(message kafka.Message, events []*RuntimeEvent) []*RuntimeEvent {
	filtered := events[:0]
	for index, event := range events {
		if event != nil {
			filtered = append(filtered, event)
			continue
		}

		UnroutableEventsTotal.Inc()
		if handler.out != nil {
			_, _ = fmt.Fprintf(handler.out, "Skip null event #%d of message at offset %d\n", index, message.Offset)
		}
	}

	return filtered
}

func (handler *RuntimeEventMessageHandler) Commit() (err error) {
	for _, committer := range handler.committers {
		err = committer.Commit()
		if err != nil {
			return err
		}
	}

	return nil
}

// decodeRuntimeEvents accepts either a JSON array of events or a single event object.
func decodeRuntimeEvents(payload []byte) ([]*RuntimeEvent, error) {
	var events []*RuntimeEvent

	trimmed := bytes.TrimSpace(payload)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		err := sonic.Unmarshal(trimmed, &events)
		return events, err
	}

	event := &RuntimeEvent{}
	err := sonic.Unmarshal(trimmed, event)
	if err != nil {
		return nil, err
	}

	return append(events, event), nil
}
