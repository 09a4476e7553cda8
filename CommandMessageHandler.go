package main

import (
	"context"
	"github.com/bytedance/sonic"
	"github.com/segmentio/kafka-go"
)

type CommandMessageHandler struct {
	dispatcher CommandDispatcherInterface
}

func (handler *CommandMessageHandler) Handle(ctx context.Context, message kafka.Message) error {
	command := &Command{}
	err := sonic.Unmarshal(message.Value, command)
	if err != nil {
		return err
	}

	// key-only producers put the correlation id into the message key
	if command.Id == "" {
		command.Id = string(message.Key)
	}

	return handler.dispatcher.Execute(ctx, command)
}

func (handler *CommandMessageHandler) Commit() error {
	return nil
}
