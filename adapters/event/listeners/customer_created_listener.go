package listeners

import (
	"fmt"

	"github.com/SeaCloudHub/customers/domain"
	"github.com/SeaCloudHub/customers/domain/customer"
	"go.uber.org/zap"
)

type SendMessageWhenCustomerIsCreatedListener struct {
	logger  *zap.SugaredLogger
	ordinal string
}

func NewSendMessageWhenCustomerIsCreatedListener(logger *zap.SugaredLogger, ordinal string) *SendMessageWhenCustomerIsCreatedListener {
	return &SendMessageWhenCustomerIsCreatedListener{logger: logger, ordinal: ordinal}
}

func (l *SendMessageWhenCustomerIsCreatedListener) Handle(event domain.BaseDomainEvent) error {
	customerCreatedEvent, ok := event.(customer.CustomerCreatedEvent)
	if !ok {
		return nil
	}

	l.logger.Infow(fmt.Sprintf("This is the %s log of event: CustomerCreated", l.ordinal),
		zap.String("event_data", customerCreatedEvent.EventData),
	)

	return nil
}
