package main

import (
	"errors"
	"fmt"
	"io"
)

var ErrEmptyVariableName = errors.New("empty variable name")

var ErrVariableNotFound = errors.New("unable to find variable")

func NewVariableEventHandlers(out io.Writer, repository QueryRepositoryInterface) []EventHandlerInterface {
	return []EventHandlerInterface{
		&VariableCreatedEventHandler{out: out, repository: repository},
		&VariableUpdatedEventHandler{repository: repository},
		&VariableDeletedEventHandler{repository: repository},
	}
}

type VariableCreatedEventHandler struct {
	out        io.Writer
	repository QueryRepositoryInterface
}

func (handler *VariableCreatedEventHandler) GetHandledEvent() string {
	return VariableCreatedEvent
}

// Handle keeps the first value of a variable: a redelivered create never overwrites an update.
func (handler *VariableCreatedEventHandler) Handle(event *RuntimeEvent) error {
	variable, err := decodeVariableEvent(event)
	if err != nil {
		return err
	}

	exists, err := handler.repository.VariableExists(variable)
	if err != nil {
		return err
	}
	if exists {
		_, _ = fmt.Fprintf(handler.out, "Variable %s already exists in %s\n", variable.Name, variableScope(variable))
		return nil
	}

	return handler.repository.SaveVariable(variable)
}

type VariableUpdatedEventHandler struct {
	repository QueryRepositoryInterface
}

func (handler *VariableUpdatedEventHandler) GetHandledEvent() string {
	return VariableUpdatedEvent
}

func (handler *VariableUpdatedEventHandler) Handle(event *RuntimeEvent) error {
	variable, err := decodeVariableEvent(event)
	if err != nil {
		return err
	}

	exists, err := handler.repository.VariableExists(variable)
	if err == nil && !exists {
		err = fmt.Errorf("%w: %s in %s", ErrVariableNotFound, variable.Name, variableScope(variable))
	}
	if err != nil {
		return err
	}

	return handler.repository.SaveVariable(variable)
}

type VariableDeletedEventHandler struct {
	repository QueryRepositoryInterface
}

func (handler *VariableDeletedEventHandler) GetHandledEvent() string {
	return VariableDeletedEvent
}

func (handler *VariableDeletedEventHandler) Handle(event *RuntimeEvent) error {
	variable, err := decodeVariableEvent(event)
	if err != nil {
		return err
	}

	return handler.repository.DeleteVariable(variable)
}

func decodeVariableEvent(event *RuntimeEvent) (*VariableInstance, error) {
	variable, err := event.GetVariable()
	if err == nil && variable.Name == "" {
		err = ErrEmptyVariableName
	}

	return variable, err
}

func variableScope(variable *VariableInstance) string {
	if variable.IsTaskVariable() {
		return "task " + variable.TaskId
	}

	return "process instance " + variable.ProcessInstanceId
}
