package listeners

import (
	"github.com/SeaCloudHub/customers/domain"
	"github.com/SeaCloudHub/customers/domain/customer"
	"go.uber.org/zap"
)

type SendMessageWhenAddressIsChangedListener struct {
	logger *zap.SugaredLogger
}

func NewSendMessageWhenAddressIsChangedListener(logger *zap.SugaredLogger) *SendMessageWhenAddressIsChangedListener {
	return &SendMessageWhenAddressIsChangedListener{logger: logger}
}

func (l *SendMessageWhenAddressIsChangedListener) Handle(event domain.BaseDomainEvent) error {
	addressChangedEvent, ok := event.(customer.AddressChangedEvent)
	if !ok {
		return nil
	}

	l.logger.Info(addressChangedEvent.EventData)

	return nil
}
