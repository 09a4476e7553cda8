package main

import (
	"context"
	"github.com/segmentio/kafka-go"
)

type MessageHandlerInterface interface {
	Handle(ctx context.Context, message kafka.Message) error
	Commit() error
}

type EventDispatcherInterface interface {
	Handle(event *RuntimeEvent) error
}

type CommandDispatcherInterface interface {
	Execute(ctx context.Context, command *Command) error
}

type CommitterInterface interface {
	Commit() error
}
