package features

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/SeaCloudHub/customers/domain"
	"github.com/SeaCloudHub/customers/domain/customer"

	"github.com/cucumber/godog"
)

type customerTestContext struct {
	customer *customer.Customer
	events   []domain.BaseDomainEvent
	err      error
}

func (c *customerTestContext) reset() {
	c.customer = nil
	c.events = nil
	c.err = nil
}

func (c *customerTestContext) iRegisterACustomer(id, name string) error {
	c.customer, c.err = customer.New(id, name)
	return nil
}

func (c *customerTestContext) aCustomer(id, name string) error {
	cust, err := customer.New(id, name)
	if err != nil {
		return err
	}
	cust.PullEvents()
	c.customer = cust
	return nil
}

func (c *customerTestContext) iChangeTheAddressTo(street string, number int, zip, city string) error {
	c.customer.ChangeAddress(customer.NewAddress(street, number, zip, city))
	return nil
}

func (c *customerTestContext) iActivateTheCustomer() error {
	c.err = c.customer.Activate()
	return nil
}

func (c *customerTestContext) iAddRewardPoints(points int) error {
	c.customer.AddRewardPoints(points)
	return nil
}

func (c *customerTestContext) theOperationFailsWithAValidationError() error {
	if !errors.Is(c.err, customer.ErrValidation) {
		return fmt.Errorf("expected validation error, got %v", c.err)
	}
	return nil
}

func (c *customerTestContext) theOperationFailsWithAnInvariantViolation() error {
	if !errors.Is(c.err, customer.ErrInvariantViolation) {
		return fmt.Errorf("expected invariant violation, got %v", c.err)
	}
	return nil
}

func (c *customerTestContext) theCustomerIsActive() error {
	if c.err != nil {
		return fmt.Errorf("unexpected error: %v", c.err)
	}
	if !c.customer.IsActive() {
		return errors.New("expected customer to be active")
	}
	return nil
}

func (c *customerTestContext) theCustomerIsNotActive() error {
	if c.customer.IsActive() {
		return errors.New("expected customer to be inactive")
	}
	return nil
}

func (c *customerTestContext) theCustomerRaisedEvents(count int, name string) error {
	c.events = append(c.events, c.customer.PullEvents()...)

	var got int
	for _, event := range c.events {
		if event.EventName() == domain.EventName(name) {
			got++
		}
	}
	if got != count {
		return fmt.Errorf("expected %d %s events, got %d", count, name, got)
	}
	return nil
}

func (c *customerTestContext) theLastEventDataIs(data string) error {
	if len(c.events) == 0 {
		return errors.New("no events raised")
	}

	var got string
	switch event := c.events[len(c.events)-1].(type) {
	case customer.AddressChangedEvent:
		got = event.EventData
	case customer.CustomerCreatedEvent:
		got = event.EventData
	}
	if got != data {
		return fmt.Errorf("expected event data %q, got %q", data, got)
	}
	return nil
}

func (c *customerTestContext) theCustomerHasRewardPoints(points int) error {
	if c.customer.RewardPoints() != points {
		return fmt.Errorf("expected %d reward points, got %d", points, c.customer.RewardPoints())
	}
	return nil
}

func InitializeScenario(ctx *godog.ScenarioContext) {
	tc := &customerTestContext{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		tc.reset()
		return ctx, nil
	})

	// Given steps
	ctx.Step(`^a customer with id "([^"]*)" and name "([^"]*)"$`, tc.aCustomer)

	// When steps
	ctx.Step(`^I register a customer with id "([^"]*)" and name "([^"]*)"$`, tc.iRegisterACustomer)
	ctx.Step(`^I change the address to "([^"]*)", (\d+), "([^"]*)", "([^"]*)"$`, tc.iChangeTheAddressTo)
	ctx.Step(`^I activate the customer$`, tc.iActivateTheCustomer)
	ctx.Step(`^I add (-?\d+) reward points$`, tc.iAddRewardPoints)

	// Then steps
	ctx.Step(`^the operation fails with a validation error$`, tc.theOperationFailsWithAValidationError)
	ctx.Step(`^the operation fails with an invariant violation$`, tc.theOperationFailsWithAnInvariantViolation)
	ctx.Step(`^the customer is active$`, tc.theCustomerIsActive)
	ctx.Step(`^the customer is not active$`, tc.theCustomerIsNotActive)
	ctx.Step(`^the customer raised (\d+) "([^"]*)" events?$`, tc.theCustomerRaisedEvents)
	ctx.Step(`^the last event data is "([^"]*)"$`, tc.theLastEventDataIs)
	ctx.Step(`^the customer has (\d+) reward points$`, tc.theCustomerHasRewardPoints)
}

func TestFeatures(t *testing.T) {
	suite := godog.TestSuite{
		ScenarioInitializer: InitializeScenario,
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"customer.feature"},
			TestingT: t,
			Strict:   true,
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}
