package main

type EventHandlerInterface interface {
	GetHandledEvent() string
	Handle(event *RuntimeEvent) error
}
