package main

import (
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
	"io"
	"time"
)

type ServiceContainer struct {
	DebugLogger           *DebugLogger
	Redis                 redis.UniversalClient
	QueryRepository       *QueryRepository
	AuditEventRepository  *AuditEventRepository
	EventHandlerContext   *EventHandlerContext
	ProcessRuntimeClient  *ProcessRuntimeClient
	CommandEndpoint       *CommandEndpoint
	RuntimeEventProcessor *KafkaConsumerProcessor
	CommandProcessor      *KafkaConsumerProcessor
	MetricsServer         *MetricsServer
	Executor              *Executor
}

func NewServiceContainer(config Config, out io.Writer) (*ServiceContainer, error) {
	redisClient := redis.NewClient(config.redisOptions)

	kafkaDialer := &kafka.Dialer{
		Timeout:   config.kafkaTimeout,
		DualStack: kafka.DefaultDialer.DualStack,
	}

	container := &ServiceContainer{
		DebugLogger: NewDebugLogger(out, config.debug),
		Redis:       redisClient,
	}

	container.QueryRepository = &QueryRepository{
		redis: redisClient,
	}

	container.AuditEventRepository = &AuditEventRepository{
		redis: redisClient,
	}

	// audit handlers go last, so an event is recorded only once every projection accepted it
	var eventHandlers []EventHandlerInterface
	eventHandlers = append(eventHandlers, NewProcessEventHandlers(container.QueryRepository)...)
	eventHandlers = append(eventHandlers, NewTaskEventHandlers(container.QueryRepository)...)
	eventHandlers = append(eventHandlers, NewVariableEventHandlers(out, container.QueryRepository)...)
	eventHandlers = append(eventHandlers, NewActivityEventHandlers(container.QueryRepository)...)
	eventHandlers = append(eventHandlers, NewCandidateEventHandlers(container.QueryRepository)...)
	eventHandlers = append(eventHandlers, NewAuditEventHandlers(out, container.AuditEventRepository)...)

	container.EventHandlerContext = NewEventHandlerContext(out, container.DebugLogger, eventHandlers)

	container.ProcessRuntimeClient = NewProcessRuntimeClient(config.runtimeApiHost, config.runtimeApiRateLimit)

	var err error
	container.CommandEndpoint, err = NewCommandEndpoint(
		out, container.DebugLogger,
		NewCommandExecutors(container.ProcessRuntimeClient),
		&KafkaResultSender{
			writer: &kafka.Writer{
				Addr:     kafka.TCP(config.kafkaHost),
				Topic:    config.commandResultsTopic,
				Balancer: &kafka.Hash{},
			},
		},
	)
	if err != nil {
		return nil, err
	}

	container.RuntimeEventProcessor = &KafkaConsumerProcessor{
		out:  out,
		name: config.eventsTopic,
		handler: &RuntimeEventMessageHandler{
			out:        out,
			dispatcher: container.EventHandlerContext,
			committers: []CommitterInterface{
				container.QueryRepository,
				container.AuditEventRepository,
			},
		},
		reader: kafka.NewReader(
			kafka.ReaderConfig{
				Brokers:     []string{config.kafkaHost},
				GroupID:     config.appName,
				Topic:       config.eventsTopic,
				MinBytes:    10,
				MaxBytes:    10e3,
				MaxWait:     time.Second,
				MaxAttempts: config.kafkaAttempts,
				Dialer:      kafkaDialer,
			},
		),
	}

	container.CommandProcessor = &KafkaConsumerProcessor{
		out:  out,
		name: config.commandsTopic,
		handler: &CommandMessageHandler{
			dispatcher: container.CommandEndpoint,
		},
		reader: kafka.NewReader(
			kafka.ReaderConfig{
				Brokers:     []string{config.kafkaHost},
				GroupID:     config.appName,
				Topic:       config.commandsTopic,
				MinBytes:    10,
				MaxBytes:    10e3,
				MaxWait:     time.Second,
				MaxAttempts: config.kafkaAttempts,
				Dialer:      kafkaDialer,
			},
		),
		// commands are not idempotent on the engine side
		redeliveryAttempts: 1,
	}

	container.MetricsServer = &MetricsServer{
		out:    out,
		listen: config.metricsListen,
	}

	container.Executor = &Executor{
		out:   out,
		redis: redisClient,
		executorPool: []ExecutorInterface{
			container.RuntimeEventProcessor,
			container.CommandProcessor,
			container.MetricsServer,
		},
	}

	return container, nil
}
