package main

import (
	"context"
	"errors"
)

var ErrEmptyProcessInstanceId = errors.New("empty processInstanceId")

var ErrEmptyTaskId = errors.New("empty taskId")

func NewCommandExecutors(runtime ProcessRuntimeInterface) []CommandExecutorInterface {
	return []CommandExecutorInterface{
		&StartProcessCommandExecutor{runtime: runtime},
		&SuspendProcessCommandExecutor{runtime: runtime},
		&ResumeProcessCommandExecutor{runtime: runtime},
		&DeleteProcessCommandExecutor{runtime: runtime},
		&SignalCommandExecutor{runtime: runtime},
		&SetProcessVariablesCommandExecutor{runtime: runtime},
		&RemoveProcessVariablesCommandExecutor{runtime: runtime},
		&ClaimTaskCommandExecutor{runtime: runtime},
		&ReleaseTaskCommandExecutor{runtime: runtime},
		&CompleteTaskCommandExecutor{runtime: runtime},
	}
}

type StartProcessCommandExecutor struct {
	runtime ProcessRuntimeInterface
}

func (executor *StartProcessCommandExecutor) GetHandledCommand() string {
	return StartProcessCommand
}

func (executor *StartProcessCommandExecutor) Execute(ctx context.Context, command *Command) (any, error) {
	payload := &StartProcessPayload{}
	err := command.DecodePayload(payload)
	if err == nil && payload.ProcessDefinitionId == "" && payload.ProcessDefinitionKey == "" {
		err = errors.New("empty processDefinitionId and processDefinitionKey")
	}
	if err != nil {
		return nil, err
	}

	return executor.runtime.StartProcess(ctx, payload)
}

type SuspendProcessCommandExecutor struct {
	runtime ProcessRuntimeInterface
}

func (executor *SuspendProcessCommandExecutor) GetHandledCommand() string {
	return SuspendProcessCommand
}

func (executor *SuspendProcessCommandExecutor) Execute(ctx context.Context, command *Command) (any, error) {
	payload, err := decodeProcessInstancePayload(command)
	if err != nil {
		return nil, err
	}

	return executor.runtime.SuspendProcess(ctx, payload.ProcessInstanceId)
}

type ResumeProcessCommandExecutor struct {
	runtime ProcessRuntimeInterface
}

func (executor *ResumeProcessCommandExecutor) GetHandledCommand() string {
	return ResumeProcessCommand
}

func (executor *ResumeProcessCommandExecutor) Execute(ctx context.Context, command *Command) (any, error) {
	payload, err := decodeProcessInstancePayload(command)
	if err != nil {
		return nil, err
	}

	return executor.runtime.ResumeProcess(ctx, payload.ProcessInstanceId)
}

type DeleteProcessCommandExecutor struct {
	runtime ProcessRuntimeInterface
}

func (executor *DeleteProcessCommandExecutor) GetHandledCommand() string {
	return DeleteProcessCommand
}

func (executor *DeleteProcessCommandExecutor) Execute(ctx context.Context, command *Command) (any, error) {
	payload, err := decodeProcessInstancePayload(command)
	if err != nil {
		return nil, err
	}

	return executor.runtime.DeleteProcess(ctx, payload.ProcessInstanceId, payload.Reason)
}

type SignalCommandExecutor struct {
	runtime ProcessRuntimeInterface
}

func (executor *SignalCommandExecutor) GetHandledCommand() string {
	return SignalCommand
}

func (executor *SignalCommandExecutor) Execute(ctx context.Context, command *Command) (any, error) {
	payload := &SignalPayload{}
	err := command.DecodePayload(payload)
	if err == nil && payload.Name == "" {
		err = errors.New("empty signal name")
	}
	if err == nil {
		err = executor.runtime.Signal(ctx, payload)
	}

	return nil, err
}

type SetProcessVariablesCommandExecutor struct {
	runtime ProcessRuntimeInterface
}

func (executor *SetProcessVariablesCommandExecutor) GetHandledCommand() string {
	return SetProcessVariablesCommand
}

func (executor *SetProcessVariablesCommandExecutor) Execute(ctx context.Context, command *Command) (any, error) {
	payload := &SetProcessVariablesPayload{}
	err := command.DecodePayload(payload)
	if err == nil && payload.ProcessInstanceId == "" {
		err = ErrEmptyProcessInstanceId
	}
	if err == nil {
		err = executor.runtime.SetProcessVariables(ctx, payload.ProcessInstanceId, payload.Variables)
	}

	return nil, err
}

type RemoveProcessVariablesCommandExecutor struct {
	runtime ProcessRuntimeInterface
}

func (executor *RemoveProcessVariablesCommandExecutor) GetHandledCommand() string {
	return RemoveProcessVariablesCommand
}

func (executor *RemoveProcessVariablesCommandExecutor) Execute(ctx context.Context, command *Command) (any, error) {
	payload := &RemoveProcessVariablesPayload{}
	err := command.DecodePayload(payload)
	if err == nil && payload.ProcessInstanceId == "" {
		err = ErrEmptyProcessInstanceId
	}
	if err == nil {
		err = executor.runtime.RemoveProcessVariables(ctx, payload.ProcessInstanceId, payload.VariableNames)
	}

	return nil, err
}

type ClaimTaskCommandExecutor struct {
	runtime ProcessRuntimeInterface
}

func (executor *ClaimTaskCommandExecutor) GetHandledCommand() string {
	return ClaimTaskCommand
}

func (executor *ClaimTaskCommandExecutor) Execute(ctx context.Context, command *Command) (any, error) {
	payload := &ClaimTaskPayload{}
	err := command.DecodePayload(payload)
	if err == nil && payload.TaskId == "" {
		err = ErrEmptyTaskId
	}
	if err != nil {
		return nil, err
	}

	return executor.runtime.ClaimTask(ctx, payload.TaskId, payload.Assignee)
}

type ReleaseTaskCommandExecutor struct {
	runtime ProcessRuntimeInterface
}

func (executor *ReleaseTaskCommandExecutor) GetHandledCommand() string {
	return ReleaseTaskCommand
}

func (executor *ReleaseTaskCommandExecutor) Execute(ctx context.Context, command *Command) (any, error) {
	payload := &TaskPayload{}
	err := command.DecodePayload(payload)
	if err == nil && payload.TaskId == "" {
		err = ErrEmptyTaskId
	}
	if err != nil {
		return nil, err
	}

	return executor.runtime.ReleaseTask(ctx, payload.TaskId)
}

type CompleteTaskCommandExecutor struct {
	runtime ProcessRuntimeInterface
}

func (executor *CompleteTaskCommandExecutor) GetHandledCommand() string {
	return CompleteTaskCommand
}

func (executor *CompleteTaskCommandExecutor) Execute(ctx context.Context, command *Command) (any, error) {
	payload := &CompleteTaskPayload{}
	err := command.DecodePayload(payload)
	if err == nil && payload.TaskId == "" {
		err = ErrEmptyTaskId
	}
	if err != nil {
		return nil, err
	}

	return executor.runtime.CompleteTask(ctx, payload.TaskId, payload.Variables)
}

func decodeProcessInstancePayload(command *Command) (*ProcessInstancePayload, error) {
	payload := &ProcessInstancePayload{}
	err := command.DecodePayload(payload)
	if err == nil && payload.ProcessInstanceId == "" {
		err = ErrEmptyProcessInstanceId
	}

	return payload, err
}
