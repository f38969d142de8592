package listeners

import (
	"context"

	"github.com/SeaCloudHub/customers/domain"
	"github.com/SeaCloudHub/customers/domain/customer"
	"github.com/SeaCloudHub/customers/domain/notification"
)

// NotifyCustomerListener sends a notification hub message for customer
// events that carry a customer-facing message.
type NotifyCustomerListener struct {
	notificationService notification.Service
}

func NewNotifyCustomerListener(notificationService notification.Service) *NotifyCustomerListener {
	return &NotifyCustomerListener{notificationService: notificationService}
}

func (l *NotifyCustomerListener) Handle(event domain.BaseDomainEvent) error {
	var n notification.Notification

	switch e := event.(type) {
	case customer.AddressChangedEvent:
		n = notification.Notification{CustomerID: e.CustomerID, Content: e.EventData}
	case customer.CustomerCreatedEvent:
		n = notification.Notification{CustomerID: e.CustomerID, Content: e.EventData}
	default:
		return nil
	}
	n.Event = string(event.EventName())

	return l.notificationService.SendNotification(context.Background(), []notification.Notification{n})
}
