package main

import "context"

type CommandExecutorInterface interface {
	GetHandledCommand() string
	Execute(ctx context.Context, command *Command) (any, error)
}
