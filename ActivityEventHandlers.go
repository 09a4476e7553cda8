package main

import (
	"errors"
	"fmt"
)

var ErrEmptyActivityElementId = errors.New("activity event without element id")

func NewActivityEventHandlers(repository QueryRepositoryInterface) []EventHandlerInterface {
	return []EventHandlerInterface{
		&ActivityEventHandler{repository: repository, eventType: ActivityStartedEvent, status: ActivityStatusStarted},
		&ActivityEventHandler{repository: repository, eventType: ActivityCompletedEvent, status: ActivityStatusCompleted},
		&ActivityEventHandler{repository: repository, eventType: ActivityCancelledEvent, status: ActivityStatusCancelled},
	}
}

// ActivityEventHandler tracks BPMN activity executions of a known process instance.
// A completion may arrive in a batch after the start was already lost, so a missing activity
// is stored with its final status.
type ActivityEventHandler struct {
	repository QueryRepositoryInterface
	eventType  string
	status     string
}

func (handler *ActivityEventHandler) GetHandledEvent() string {
	return handler.eventType
}

func (handler *ActivityEventHandler) Handle(event *RuntimeEvent) error {
	eventActivity, err := event.GetActivity()
	if err != nil {
		return err
	}
	if eventActivity.ElementId == "" {
		return fmt.Errorf("%w: %s", ErrEmptyActivityElementId, event.Id)
	}

	_, err = findProcessInstance(handler.repository, eventActivity.ProcessInstanceId)
	if err != nil {
		return err
	}

	activity, err := handler.repository.GetActivity(
		eventActivity.ProcessInstanceId, eventActivity.ElementId, eventActivity.ExecutionId,
	)
	if err != nil {
		return err
	}
	if activity == nil {
		activity = eventActivity
	}

	activity.Status = handler.status
	switch handler.eventType {
	case ActivityStartedEvent:
		activity.StartedDate = firstNonZero(eventActivity.StartedDate, event.Timestamp)
	case ActivityCompletedEvent:
		activity.CompletedDate = firstNonZero(eventActivity.CompletedDate, event.Timestamp)
	case ActivityCancelledEvent:
		activity.CancelledDate = firstNonZero(eventActivity.CancelledDate, event.Timestamp)
	}

	return handler.repository.SaveActivity(activity)
}
