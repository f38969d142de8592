package event

import (
	"reflect"
	"sync"

	"github.com/SeaCloudHub/customers/domain"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

type Option func(ed *eventDispatcher)

// WithFailureIsolation makes Notify run every handler and return their
// combined errors, instead of stopping at the first failure.
func WithFailureIsolation() Option {
	return func(ed *eventDispatcher) {
		ed.isolate = true
	}
}

func WithLogger(logger *zap.SugaredLogger) Option {
	return func(ed *eventDispatcher) {
		ed.logger = logger
	}
}

type eventDispatcher struct {
	handlers map[domain.EventName][]domain.EventHandler
	mutex    sync.RWMutex
	isolate  bool
	logger   *zap.SugaredLogger
}

func NewEventDispatcher(options ...Option) *eventDispatcher {
	ed := &eventDispatcher{
		handlers: make(map[domain.EventName][]domain.EventHandler),
		logger:   zap.NewNop().Sugar(),
	}

	for _, fn := range options {
		fn(ed)
	}

	return ed
}

func (ed *eventDispatcher) Register(eventName domain.EventName, handler domain.EventHandler) {
	ed.mutex.Lock()
	defer ed.mutex.Unlock()

	ed.handlers[eventName] = append(ed.handlers[eventName], handler)
}

// Unregister removes the first registration of handler. Handlers whose
// dynamic type is not comparable (plain funcs) can only be dropped with
// UnregisterAll.
func (ed *eventDispatcher) Unregister(eventName domain.EventName, handler domain.EventHandler) {
	ed.mutex.Lock()
	defer ed.mutex.Unlock()

	handlers := ed.handlers[eventName]
	for i, h := range handlers {
		if !sameHandler(h, handler) {
			continue
		}

		ed.handlers[eventName] = append(handlers[:i:i], handlers[i+1:]...)
		if len(ed.handlers[eventName]) == 0 {
			delete(ed.handlers, eventName)
		}

		return
	}
}

func (ed *eventDispatcher) UnregisterAll() {
	ed.mutex.Lock()
	defer ed.mutex.Unlock()

	ed.handlers = make(map[domain.EventName][]domain.EventHandler)
}

func (ed *eventDispatcher) Notify(event domain.BaseDomainEvent) error {
	ed.mutex.RLock()
	handlers := append([]domain.EventHandler(nil), ed.handlers[event.EventName()]...)
	ed.mutex.RUnlock()

	if len(handlers) == 0 {
		return nil
	}

	ed.logger.Debugw("dispatching event",
		zap.String("event", string(event.EventName())),
		zap.Int("handlers", len(handlers)),
	)

	var errs error
	for _, handler := range handlers {
		if err := handler.Handle(event); err != nil {
			if !ed.isolate {
				return err
			}

			errs = multierr.Append(errs, err)
		}
	}

	return errs
}

// Handlers returns the handlers registered for eventName in call order.
func (ed *eventDispatcher) Handlers(eventName domain.EventName) []domain.EventHandler {
	ed.mutex.RLock()
	defer ed.mutex.RUnlock()

	return append([]domain.EventHandler(nil), ed.handlers[eventName]...)
}

func sameHandler(a, b domain.EventHandler) bool {
	if a == nil || b == nil {
		return a == b
	}

	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb || !ta.Comparable() {
		return false
	}

	return a == b
}
