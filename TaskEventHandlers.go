package main

import (
	"errors"
	"fmt"
)

var ErrTaskNotFound = errors.New("unable to find task with the given id")

func NewTaskEventHandlers(repository QueryRepositoryInterface) []EventHandlerInterface {
	return []EventHandlerInterface{
		&TaskCreatedEventHandler{repository: repository},
		&TaskChangedEventHandler{repository: repository, eventType: TaskAssignedEvent, status: TaskStatusAssigned},
		&TaskChangedEventHandler{repository: repository, eventType: TaskUpdatedEvent},
		&TaskChangedEventHandler{repository: repository, eventType: TaskCompletedEvent, status: TaskStatusCompleted},
		&TaskChangedEventHandler{repository: repository, eventType: TaskCancelledEvent, status: TaskStatusCancelled},
		&TaskChangedEventHandler{repository: repository, eventType: TaskSuspendedEvent, status: TaskStatusSuspended},
		&TaskChangedEventHandler{repository: repository, eventType: TaskActivatedEvent},
	}
}

type TaskCreatedEventHandler struct {
	repository QueryRepositoryInterface
}

func (handler *TaskCreatedEventHandler) GetHandledEvent() string {
	return TaskCreatedEvent
}

func (handler *TaskCreatedEventHandler) Handle(event *RuntimeEvent) error {
	task, err := event.GetTask()
	if err != nil {
		return err
	}

	if task.ProcessInstanceId != "" {
		_, err = findProcessInstance(handler.repository, task.ProcessInstanceId)
		if err != nil {
			return err
		}
	}

	task.Status = TaskStatusCreated
	if task.Assignee != "" {
		task.Status = TaskStatusAssigned
	}
	task.CreatedDate = firstNonZero(task.CreatedDate, event.Timestamp)
	task.LastModified = event.Timestamp

	return handler.repository.SaveTask(task)
}

// TaskChangedEventHandler applies task fields from the event to the stored task.
// An empty status keeps the stored one.
type TaskChangedEventHandler struct {
	repository QueryRepositoryInterface
	eventType  string
	status     string
}

func (handler *TaskChangedEventHandler) GetHandledEvent() string {
	return handler.eventType
}

func (handler *TaskChangedEventHandler) Handle(event *RuntimeEvent) error {
	eventTask, err := event.GetTask()
	if err != nil {
		return err
	}

	task, err := handler.repository.GetTask(eventTask.Id)
	if err == nil && task == nil {
		err = fmt.Errorf("%w: %s", ErrTaskNotFound, eventTask.Id)
	}
	if err != nil {
		return err
	}

	switch handler.eventType {
	case TaskAssignedEvent:
		task.Assignee = eventTask.Assignee
		task.ClaimedDate = firstNonZero(eventTask.ClaimedDate, event.Timestamp)
	case TaskUpdatedEvent:
		task.Name = eventTask.Name
		task.Description = eventTask.Description
		task.Priority = eventTask.Priority
		task.FormKey = eventTask.FormKey
		task.Owner = eventTask.Owner
	case TaskCompletedEvent, TaskCancelledEvent:
		task.CompletedDate = firstNonZero(eventTask.CompletedDate, event.Timestamp)
	case TaskActivatedEvent:
		task.Status = TaskStatusCreated
		if task.Assignee != "" {
			task.Status = TaskStatusAssigned
		}
	}

	if handler.status != "" {
		task.Status = handler.status
	}
	task.LastModified = event.Timestamp

	return handler.repository.SaveTask(task)
}
