package customer

import (
	"time"

	"github.com/SeaCloudHub/customers/domain"
)

const AddressChangedEventName domain.EventName = "AddressChangedEvent"

type AddressChangedEvent struct {
	CustomerID       string
	EventData        string
	DateTimeOccurred time.Time
}

func NewAddressChangedEvent(customerID string, eventData string) AddressChangedEvent {
	return AddressChangedEvent{
		CustomerID:       customerID,
		EventData:        eventData,
		DateTimeOccurred: time.Now(),
	}
}

func (e AddressChangedEvent) EventName() domain.EventName {
	return AddressChangedEventName
}

func (e AddressChangedEvent) OccurredAt() time.Time {
	return e.DateTimeOccurred
}
