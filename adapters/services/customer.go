package services

import (
	"context"

	"github.com/SeaCloudHub/customers/domain"
	"github.com/SeaCloudHub/customers/domain/customer"
	"go.uber.org/zap"
)

// CustomerService runs each use case as load, mutate, persist, then hands
// the aggregate's pending events to the dispatcher. A handler failure is
// returned to the caller as is.
type CustomerService struct {
	store      customer.Store
	summaries  customer.SummaryStore
	dispatcher domain.EventDispatcher
	logger     *zap.SugaredLogger
}

func NewCustomerService(store customer.Store, summaries customer.SummaryStore,
	dispatcher domain.EventDispatcher, logger *zap.SugaredLogger) *CustomerService {
	return &CustomerService{
		store:      store,
		summaries:  summaries,
		dispatcher: dispatcher,
		logger:     logger,
	}
}

func (s *CustomerService) Create(ctx context.Context, id string, name string, address *customer.Address) (*customer.Customer, error) {
	c, err := customer.New(id, name)
	if err != nil {
		return nil, err
	}

	if address != nil {
		c.SetAddress(*address)
	}

	if err := s.store.Create(ctx, c); err != nil {
		return nil, err
	}

	s.logger.Infow("customer created", zap.String("customer_id", c.ID()))

	if err := domain.NotifyAll(s.dispatcher, c.PullEvents()); err != nil {
		return nil, err
	}

	return c, nil
}

func (s *CustomerService) Get(ctx context.Context, id string) (*customer.Customer, error) {
	return s.store.Find(ctx, id)
}

func (s *CustomerService) List(ctx context.Context) ([]*customer.Customer, error) {
	return s.store.FindAll(ctx)
}

func (s *CustomerService) Rename(ctx context.Context, id string, name string) (*customer.Customer, error) {
	return s.mutate(ctx, id, func(c *customer.Customer) error {
		return c.ChangeName(name)
	})
}

func (s *CustomerService) ChangeAddress(ctx context.Context, id string, address customer.Address) (*customer.Customer, error) {
	return s.mutate(ctx, id, func(c *customer.Customer) error {
		c.ChangeAddress(address)
		return nil
	})
}

func (s *CustomerService) Activate(ctx context.Context, id string) (*customer.Customer, error) {
	return s.mutate(ctx, id, func(c *customer.Customer) error {
		return c.Activate()
	})
}

func (s *CustomerService) Deactivate(ctx context.Context, id string) (*customer.Customer, error) {
	return s.mutate(ctx, id, func(c *customer.Customer) error {
		c.Deactivate()
		return nil
	})
}

func (s *CustomerService) AddRewardPoints(ctx context.Context, id string, points int) (*customer.Customer, error) {
	return s.mutate(ctx, id, func(c *customer.Customer) error {
		c.AddRewardPoints(points)
		return nil
	})
}

func (s *CustomerService) Summary(ctx context.Context) (customer.Summary, error) {
	return s.summaries.Summary(ctx)
}

func (s *CustomerService) mutate(ctx context.Context, id string, fn func(c *customer.Customer) error) (*customer.Customer, error) {
	c, err := s.store.Find(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := fn(c); err != nil {
		return nil, err
	}

	if err := s.store.Update(ctx, c); err != nil {
		return nil, err
	}

	if err := domain.NotifyAll(s.dispatcher, c.PullEvents()); err != nil {
		return nil, err
	}

	return c, nil
}
