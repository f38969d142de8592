package listeners

import (
	"github.com/SeaCloudHub/customers/domain"
	"github.com/SeaCloudHub/customers/domain/customer"
	"go.uber.org/zap"
)

// RegisterDefaults wires the listeners every deployment runs. It is called
// once at start-up; constructing a customer registers nothing.
func RegisterDefaults(dispatcher domain.EventDispatcher, logger *zap.SugaredLogger) {
	dispatcher.Register(customer.AddressChangedEventName, NewSendMessageWhenAddressIsChangedListener(logger))
	dispatcher.Register(customer.CustomerCreatedEventName, NewSendMessageWhenCustomerIsCreatedListener(logger, "first"))
	dispatcher.Register(customer.CustomerCreatedEventName, NewSendMessageWhenCustomerIsCreatedListener(logger, "second"))
}
