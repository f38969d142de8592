package customer

import (
	"fmt"

	"github.com/SeaCloudHub/customers/domain"
)

type Customer struct {
	id           string
	name         string
	address      *Address
	active       bool
	rewardPoints int

	events []domain.BaseDomainEvent
}

// Snapshot is the persisted shape of a customer.
type Snapshot struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Active       bool     `json:"active"`
	RewardPoints int      `json:"reward_points"`
	Address      *Address `json:"address"`
}

func New(id string, name string) (*Customer, error) {
	c := &Customer{id: id, name: name}
	if err := c.Validate(); err != nil {
		return nil, err
	}

	c.record(NewCustomerCreatedEvent(c.id, fmt.Sprintf("Customer created: %s, %s.", c.id, c.name)))

	return c, nil
}

// Restore rebuilds a customer from stored state. No events are raised.
func Restore(s Snapshot) (*Customer, error) {
	c := &Customer{
		id:           s.ID,
		name:         s.Name,
		active:       s.Active,
		rewardPoints: s.RewardPoints,
	}
	if s.Address != nil {
		addr := *s.Address
		c.address = &addr
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}

	if c.active && c.address == nil {
		return nil, fmt.Errorf("%w: active customer %s has no address", ErrInvariantViolation, c.id)
	}

	return c, nil
}

func (c *Customer) ID() string        { return c.id }
func (c *Customer) Name() string      { return c.name }
func (c *Customer) RewardPoints() int { return c.rewardPoints }
func (c *Customer) IsActive() bool    { return c.active }

// Address reports the current address and whether one has been set.
func (c *Customer) Address() (Address, bool) {
	if c.address == nil {
		return Address{}, false
	}

	return *c.address, true
}

func (c *Customer) Validate() error {
	if len(c.id) == 0 {
		return fmt.Errorf("%w: id is required", ErrValidation)
	}
	if len(c.name) == 0 {
		return fmt.Errorf("%w: name is required", ErrValidation)
	}

	return nil
}

func (c *Customer) ChangeName(name string) error {
	c.name = name

	return c.Validate()
}

// SetAddress assigns an address without raising AddressChangedEvent.
func (c *Customer) SetAddress(address Address) {
	c.address = &address
}

func (c *Customer) ChangeAddress(address Address) {
	c.address = &address

	c.record(NewAddressChangedEvent(c.id, fmt.Sprintf("Address of customer: %s, %s changed to: %s.",
		c.id, c.name, address.String())))
}

func (c *Customer) Activate() error {
	if c.address == nil {
		return fmt.Errorf("%w: address is mandatory to activate a customer", ErrInvariantViolation)
	}

	c.active = true

	return nil
}

func (c *Customer) Deactivate() {
	c.active = false
}

// AddRewardPoints does not check the sign of points; negative values lower
// the total.
func (c *Customer) AddRewardPoints(points int) {
	c.rewardPoints += points
}

// PullEvents returns the events raised since the last call, oldest first.
func (c *Customer) PullEvents() []domain.BaseDomainEvent {
	events := c.events
	c.events = nil

	return events
}

func (c *Customer) Snapshot() Snapshot {
	s := Snapshot{
		ID:           c.id,
		Name:         c.name,
		Active:       c.active,
		RewardPoints: c.rewardPoints,
	}
	if c.address != nil {
		addr := *c.address
		s.Address = &addr
	}

	return s
}

func (c *Customer) record(event domain.BaseDomainEvent) {
	c.events = append(c.events, event)
}
