package main

import (
	"context"
	"github.com/bytedance/sonic"
	"github.com/kneu-messenger-pigeon/events"
	"github.com/segmentio/kafka-go"
)

type ResultSenderInterface interface {
	Send(ctx context.Context, result *Result) error
}

// KafkaResultSender publishes command results keyed by correlation id,
// so all results of one caller land in the same partition.
type KafkaResultSender struct {
	writer events.WriterInterface
}

func (sender *KafkaResultSender) Send(ctx context.Context, result *Result) error {
	payload, err := sonic.Marshal(result)
	if err == nil {
		err = sender.writer.WriteMessages(
			ctx,
			kafka.Message{
				Key:   []byte(result.CorrelationId),
				Value: payload,
			},
		)
	}

	return err
}
