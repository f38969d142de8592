package domain

import "time"

// EventName tags every kind of domain event the system can raise.
type EventName string

type BaseDomainEvent interface {
	EventName() EventName
	OccurredAt() time.Time
}

type EventHandler interface {
	Handle(event BaseDomainEvent) error
}

type EventHandlerFunc func(event BaseDomainEvent) error

func (f EventHandlerFunc) Handle(event BaseDomainEvent) error {
	return f(event)
}

type EventDispatcher interface {
	Register(eventName EventName, handler EventHandler)
	Unregister(eventName EventName, handler EventHandler)
	UnregisterAll()
	Notify(event BaseDomainEvent) error
}

// NotifyAll hands events to the dispatcher in order and stops at the first
// failure.
func NotifyAll(dispatcher EventDispatcher, events []BaseDomainEvent) error {
	for _, event := range events {
		if err := dispatcher.Notify(event); err != nil {
			return err
		}
	}

	return nil
}
