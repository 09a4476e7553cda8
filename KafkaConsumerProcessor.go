package main

import (
	"context"
	"errors"
	"fmt"
	"github.com/kneu-messenger-pigeon/events"
	"github.com/segmentio/kafka-go"
	"io"
	"sync"
	"time"
)

type KafkaConsumerProcessor struct {
	out                io.Writer
	name               string
	reader             events.ReaderInterface
	handler            MessageHandlerInterface
	commitThreshold    int
	redeliveryAttempts int
	redeliveryDelay    time.Duration
	disabled           bool
}

const defaultCommitThreshold = 10

const defaultRedeliveryAttempts = 3

const defaultRedeliveryDelay = time.Second

const commitInterval = time.Second * 60

func (processor *KafkaConsumerProcessor) Execute(ctx context.Context, wg *sync.WaitGroup) {
	defer wg.Done()

	var err error
	var message kafka.Message
	var messagesToCommit []kafka.Message
	var fetchContext = ctx
	var fetchContextCancel func()

	if processor.commitThreshold == 0 {
		processor.commitThreshold = defaultCommitThreshold
	}
	if processor.redeliveryAttempts == 0 {
		processor.redeliveryAttempts = defaultRedeliveryAttempts
	}
	if processor.redeliveryDelay == 0 {
		processor.redeliveryDelay = defaultRedeliveryDelay
	}

	if processor.handler == nil || processor.disabled {
		return
	}

	_, _ = fmt.Fprintf(processor.out, "Started consuming %s\n", processor.name)

	for ctx.Err() == nil {
		message, err = processor.reader.FetchMessage(fetchContext)
		if err == nil {
			err = processor.handle(ctx, message)
			processor.reportError(err)
			// a message interrupted by shutdown stays uncommitted and is consumed again on restart
			if err == nil || ctx.Err() == nil {
				if len(messagesToCommit) == 0 {
					// set context with timeout to make sure that every 60 seconds we Execute Commit
					fetchContext, fetchContextCancel = context.WithTimeout(ctx, commitInterval)
				}
				messagesToCommit = append(messagesToCommit, message)
			}
			err = nil
		}

		if len(messagesToCommit) != 0 && (len(messagesToCommit) >= processor.commitThreshold || fetchContext.Err() != nil) {
			// revert context with time to usual
			fetchContext = ctx
			err = processor.handler.Commit()
			if err == nil {
				err = processor.reader.CommitMessages(context.Background(), messagesToCommit...)
			}
			_, _ = fmt.Fprintf(processor.out, "%s commit %d messages (err: %v)\n", processor.name, len(messagesToCommit), err)
			if err == nil {
				messagesToCommit = []kafka.Message{}
			}
		}

		processor.reportError(err)
	}
	if fetchContextCancel != nil {
		fetchContextCancel()
	}

	_, _ = fmt.Fprintf(processor.out, "Consuming %s done\n", processor.name)
}

// handle gives the message to the handler again after a failure, up to redeliveryAttempts
// times in total. The last error is returned when every attempt failed.
func (processor *KafkaConsumerProcessor) handle(ctx context.Context, message kafka.Message) (err error) {
	for attempt := 1; ; attempt++ {
		err = processor.handler.Handle(ctx, message)
		if err == nil || attempt >= processor.redeliveryAttempts {
			return err
		}

		_, _ = fmt.Fprintf(
			processor.out, "%s redeliver message at offset %d (attempt %d): %v\n",
			processor.name, message.Offset, attempt, err,
		)

		select {
		case <-ctx.Done():
			return err
		case <-time.After(processor.redeliveryDelay * time.Duration(attempt)):
		}
	}
}

func (processor *KafkaConsumerProcessor) reportError(err error) {
	if err != nil && !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded) {
		ConsumerErrorsTotal.Inc()
		_, _ = fmt.Fprintf(processor.out, "%s error: %v\n", processor.name, err)
	}
}

func (processor *KafkaConsumerProcessor) Disable() {
	processor.disabled = true
}
