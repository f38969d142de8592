package customer

import (
	"time"

	"github.com/SeaCloudHub/customers/domain"
)

const CustomerCreatedEventName domain.EventName = "CustomerCreatedEvent"

type CustomerCreatedEvent struct {
	CustomerID       string
	EventData        string
	DateTimeOccurred time.Time
}

func NewCustomerCreatedEvent(customerID string, eventData string) CustomerCreatedEvent {
	return CustomerCreatedEvent{
		CustomerID:       customerID,
		EventData:        eventData,
		DateTimeOccurred: time.Now(),
	}
}

func (e CustomerCreatedEvent) EventName() domain.EventName {
	return CustomerCreatedEventName
}

func (e CustomerCreatedEvent) OccurredAt() time.Time {
	return e.DateTimeOccurred
}
