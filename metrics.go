package main

import (
	"fmt"
	"github.com/VictoriaMetrics/metrics"
)

var (
	UnroutableEventsTotal   = metrics.NewCounter(`unroutable_total{kind="event"}`)
	UnroutableCommandsTotal = metrics.NewCounter(`unroutable_total{kind="command"}`)

	EventHandlerErrorsTotal   = metrics.NewCounter(`error_count{type="eventHandler"}`)
	CommandExecuteErrorsTotal = metrics.NewCounter(`error_count{type="commandExecutor"}`)
	ResultSendErrorsTotal     = metrics.NewCounter(`error_count{type="resultSend"}`)
	ConsumerErrorsTotal       = metrics.NewCounter(`error_count{type="consumer"}`)

	PublishedResultsTotal = metrics.NewCounter(`published_results_total`)
)

func dispatchedEventsCounter(eventType string) *metrics.Counter {
	return metrics.GetOrCreateCounter(fmt.Sprintf(`dispatched_events_total{type=%q}`, eventType))
}

func executedCommandsCounter(commandType string) *metrics.Counter {
	return metrics.GetOrCreateCounter(fmt.Sprintf(`executed_commands_total{type=%q}`, commandType))
}
