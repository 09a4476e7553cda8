package main

import (
	"errors"
	"fmt"
)

var ErrProcessInstanceNotFound = errors.New("unable to find process instance with the given id")

var ErrInvalidProcessInstanceState = errors.New("invalid process instance state")

func NewProcessEventHandlers(repository QueryRepositoryInterface) []EventHandlerInterface {
	return []EventHandlerInterface{
		&ProcessCreatedEventHandler{repository: repository},
		&ProcessUpdatedEventHandler{repository: repository},
		&ProcessStatusEventHandler{repository: repository, eventType: ProcessStartedEvent, status: ProcessStatusRunning},
		&ProcessStatusEventHandler{repository: repository, eventType: ProcessSuspendedEvent, status: ProcessStatusSuspended},
		&ProcessStatusEventHandler{repository: repository, eventType: ProcessResumedEvent, status: ProcessStatusRunning},
		&ProcessStatusEventHandler{repository: repository, eventType: ProcessCompletedEvent, status: ProcessStatusCompleted},
		&ProcessStatusEventHandler{repository: repository, eventType: ProcessCancelledEvent, status: ProcessStatusCancelled},
		&ProcessDeletedEventHandler{repository: repository},
	}
}

type ProcessCreatedEventHandler struct {
	repository QueryRepositoryInterface
}

func (handler *ProcessCreatedEventHandler) GetHandledEvent() string {
	return ProcessCreatedEvent
}

func (handler *ProcessCreatedEventHandler) Handle(event *RuntimeEvent) error {
	processInstance, err := event.GetProcessInstance()
	if err != nil {
		return err
	}

	processInstance.Status = ProcessStatusCreated
	processInstance.LastModified = event.Timestamp
	if processInstance.ProcessDefinitionId == "" {
		processInstance.ProcessDefinitionId = event.ProcessDefinitionId
	}
	if processInstance.ProcessDefinitionKey == "" {
		processInstance.ProcessDefinitionKey = event.ProcessDefinitionKey
	}
	if processInstance.BusinessKey == "" {
		processInstance.BusinessKey = event.BusinessKey
	}
	if processInstance.ParentId == "" {
		processInstance.ParentId = event.ParentProcessInstanceId
	}
	processInstance.AppName = event.AppName
	processInstance.ServiceName = event.ServiceName

	return handler.repository.SaveProcessInstance(processInstance)
}

type ProcessUpdatedEventHandler struct {
	repository QueryRepositoryInterface
}

func (handler *ProcessUpdatedEventHandler) GetHandledEvent() string {
	return ProcessUpdatedEvent
}

func (handler *ProcessUpdatedEventHandler) Handle(event *RuntimeEvent) error {
	updated, err := event.GetProcessInstance()
	if err != nil {
		return err
	}

	processInstance, err := findProcessInstance(handler.repository, updated.Id)
	if err != nil {
		return err
	}

	processInstance.Name = updated.Name
	processInstance.BusinessKey = updated.BusinessKey
	processInstance.LastModified = event.Timestamp

	return handler.repository.SaveProcessInstance(processInstance)
}

// ProcessStatusEventHandler moves the stored process instance into status when eventType arrives.
type ProcessStatusEventHandler struct {
	repository QueryRepositoryInterface
	eventType  string
	status     string
}

func (handler *ProcessStatusEventHandler) GetHandledEvent() string {
	return handler.eventType
}

func (handler *ProcessStatusEventHandler) Handle(event *RuntimeEvent) error {
	eventProcessInstance, err := event.GetProcessInstance()
	if err != nil {
		return err
	}

	processInstance, err := findProcessInstance(handler.repository, eventProcessInstance.Id)
	if err != nil {
		return err
	}

	processInstance.Status = handler.status
	processInstance.LastModified = event.Timestamp

	switch handler.eventType {
	case ProcessStartedEvent:
		processInstance.StartDate = firstNonZero(eventProcessInstance.StartDate, event.Timestamp)
	case ProcessCompletedEvent, ProcessCancelledEvent:
		processInstance.CompletedDate = firstNonZero(eventProcessInstance.CompletedDate, event.Timestamp)
	}

	return handler.repository.SaveProcessInstance(processInstance)
}

// ProcessDeletedEventHandler removes a finished process instance together with its tasks and variables.
type ProcessDeletedEventHandler struct {
	repository QueryRepositoryInterface
}

func (handler *ProcessDeletedEventHandler) GetHandledEvent() string {
	return ProcessDeletedEvent
}

func (handler *ProcessDeletedEventHandler) Handle(event *RuntimeEvent) error {
	eventProcessInstance, err := event.GetProcessInstance()
	if err != nil {
		return err
	}

	processInstance, err := findProcessInstance(handler.repository, eventProcessInstance.Id)
	if err != nil {
		return err
	}

	if processInstance.Status != ProcessStatusCompleted && processInstance.Status != ProcessStatusCancelled {
		return fmt.Errorf(
			"%w: process instance %s is %s, only completed or cancelled can be deleted",
			ErrInvalidProcessInstanceState, processInstance.Id, processInstance.Status,
		)
	}

	return handler.repository.DeleteProcessInstance(processInstance.Id)
}

func findProcessInstance(repository QueryRepositoryInterface, processInstanceId string) (*ProcessInstance, error) {
	processInstance, err := repository.GetProcessInstance(processInstanceId)
	if err == nil && processInstance == nil {
		err = fmt.Errorf("%w: %s", ErrProcessInstanceNotFound, processInstanceId)
	}

	return processInstance, err
}

func firstNonZero(values ...int64) int64 {
	for _, value := range values {
		if value != 0 {
			return value
		}
	}

	return 0
}
