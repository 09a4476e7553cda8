package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
)

var ErrDuplicateCommandExecutor = errors.New("duplicate command executor")

// CommandEndpoint runs the single executor registered for a command type and
// publishes the outcome as a Result. The executor map is fixed at construction.
type CommandEndpoint struct {
	out          io.Writer
	debugLogger  *DebugLogger
	executors    map[string]CommandExecutorInterface
	resultSender ResultSenderInterface
}

func NewCommandEndpoint(
	out io.Writer, debugLogger *DebugLogger,
	executors []CommandExecutorInterface, resultSender ResultSenderInterface,
) (*CommandEndpoint, error) {
	executorsByCommand := make(map[string]CommandExecutorInterface, len(executors))
	for _, executor := range executors {
		commandType := executor.GetHandledCommand()
		if previous, exists := executorsByCommand[commandType]; exists {
			return nil, fmt.Errorf(
				"%w: %s is handled by both %T and %T",
				ErrDuplicateCommandExecutor, commandType, previous, executor,
			)
		}

		executorsByCommand[commandType] = executor
	}

	return &CommandEndpoint{
		out:          out,
		debugLogger:  debugLogger,
		executors:    executorsByCommand,
		resultSender: resultSender,
	}, nil
}

// Execute returns the executor error unchanged and publishes nothing in that case.
// Commands without executor are reported and dropped.
func (endpoint *CommandEndpoint) Execute(ctx context.Context, command *Command) error {
	executor, found := endpoint.executors[command.CommandType]
	if !found {
		UnroutableCommandsTotal.Inc()
		_, _ = fmt.Fprintf(endpoint.out, "No executor found for command type %s (command id: %s)\n", command.CommandType, command.Id)
		return nil
	}

	endpoint.debugLogger.Log(
		"execute command",
		"type", command.CommandType, "id", command.Id, "executor", fmt.Sprintf("%T", executor),
	)

	entity, err := executor.Execute(ctx, command)
	if err != nil {
		CommandExecuteErrorsTotal.Inc()
		return err
	}
	executedCommandsCounter(command.CommandType).Inc()

	err = endpoint.resultSender.Send(ctx, NewResult(command, entity))
	if err != nil {
		ResultSendErrorsTotal.Inc()
		return err
	}
	PublishedResultsTotal.Inc()

	return nil
}

func (endpoint *CommandEndpoint) HandledCommands() []string {
	commandTypes := make([]string, 0, len(endpoint.executors))
	for commandType := range endpoint.executors {
		commandTypes = append(commandTypes, commandType)
	}
	sort.Strings(commandTypes)

	return commandTypes
}
