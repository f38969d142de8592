package postgrestore_test

import (
	"context"
	"testing"

	"github.com/SeaCloudHub/customers/adapters/inmemstore"
	"github.com/SeaCloudHub/customers/adapters/postgrestore"
	"github.com/SeaCloudHub/customers/domain/customer"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConnection(t *testing.T) *inmemstore.Connection {
	t.Helper()

	db, err := inmemstore.NewConnection()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return db
}

func newCustomer(t *testing.T, id, name string, address customer.Address) *customer.Customer {
	t.Helper()

	c, err := customer.New(id, name)
	require.NoError(t, err)
	c.SetAddress(address)

	return c
}

func TestCustomerStore(t *testing.T) {
	ctx := context.Background()

	t.Run("it should persist a customer", func(t *testing.T) {
		db := newTestConnection(t)
		store := postgrestore.NewCustomerStore(db.Gorm)
		c := newCustomer(t, "123", "Customer 1", customer.NewAddress("Street 1", 1, "Zipcode 1", "City 1"))

		require.NoError(t, store.Create(ctx, c))

		var row postgrestore.CustomerSchema
		require.NoError(t, db.Gorm.Where("id = ?", "123").First(&row).Error)
		assert.Equal(t, postgrestore.CustomerSchema{
			ID:           "123",
			Name:         "Customer 1",
			Active:       false,
			RewardPoints: 0,
			HasAddress:   true,
			Street:       "Street 1",
			Number:       1,
			Zipcode:      "Zipcode 1",
			City:         "City 1",
		}, row)
	})

	t.Run("it should update a customer", func(t *testing.T) {
		db := newTestConnection(t)
		store := postgrestore.NewCustomerStore(db.Gorm)
		c := newCustomer(t, "123", "Customer 1", customer.NewAddress("Street 1", 1, "Zipcode 1", "City 1"))
		require.NoError(t, store.Create(ctx, c))

		require.NoError(t, c.ChangeName("Customer 2"))
		require.NoError(t, c.Activate())
		c.AddRewardPoints(5)
		require.NoError(t, store.Update(ctx, c))

		var row postgrestore.CustomerSchema
		require.NoError(t, db.Gorm.Where("id = ?", "123").First(&row).Error)
		assert.Equal(t, "Customer 2", row.Name)
		assert.True(t, row.Active)
		assert.Equal(t, 5, row.RewardPoints)
		assert.Equal(t, "Street 1", row.Street)
	})

	t.Run("it should persist deactivation", func(t *testing.T) {
		db := newTestConnection(t)
		store := postgrestore.NewCustomerStore(db.Gorm)
		c := newCustomer(t, "123", "Customer 1", customer.NewAddress("Street 1", 1, "Zipcode 1", "City 1"))
		require.NoError(t, c.Activate())
		require.NoError(t, store.Create(ctx, c))

		c.Deactivate()
		require.NoError(t, store.Update(ctx, c))

		found, err := store.Find(ctx, "123")
		require.NoError(t, err)
		assert.False(t, found.IsActive())
	})

	t.Run("it should fail to update a missing customer", func(t *testing.T) {
		db := newTestConnection(t)
		store := postgrestore.NewCustomerStore(db.Gorm)
		c := newCustomer(t, "999", "Ghost", customer.NewAddress("Street 1", 1, "Zipcode 1", "City 1"))

		assert.ErrorIs(t, store.Update(ctx, c), customer.ErrCustomerNotFound)
	})

	t.Run("it should find a customer", func(t *testing.T) {
		db := newTestConnection(t)
		store := postgrestore.NewCustomerStore(db.Gorm)
		c := newCustomer(t, "123", "Customer 1", customer.NewAddress("Street 1", 1, "Zipcode 1", "City 1"))
		require.NoError(t, store.Create(ctx, c))

		found, err := store.Find(ctx, c.ID())

		require.NoError(t, err)
		assert.Equal(t, c.Snapshot(), found.Snapshot())
		assert.Empty(t, found.PullEvents())
	})

	t.Run("it should find a customer without an address", func(t *testing.T) {
		db := newTestConnection(t)
		store := postgrestore.NewCustomerStore(db.Gorm)
		c, err := customer.New("123", "Customer 1")
		require.NoError(t, err)
		require.NoError(t, store.Create(ctx, c))

		found, err := store.Find(ctx, "123")

		require.NoError(t, err)
		_, ok := found.Address()
		assert.False(t, ok)
	})

	t.Run("it should keep an empty address of an active customer", func(t *testing.T) {
		db := newTestConnection(t)
		store := postgrestore.NewCustomerStore(db.Gorm)
		c := newCustomer(t, "123", "Customer 1", customer.NewAddress("", 0, "", ""))
		require.NoError(t, c.Activate())
		require.NoError(t, store.Create(ctx, c))

		found, err := store.Find(ctx, "123")

		require.NoError(t, err)
		assert.True(t, found.IsActive())
		address, ok := found.Address()
		assert.True(t, ok)
		assert.Equal(t, customer.NewAddress("", 0, "", ""), address)
	})

	t.Run("it should reject a duplicated id", func(t *testing.T) {
		db := newTestConnection(t)
		store := postgrestore.NewCustomerStore(db.Gorm)
		require.NoError(t, store.Create(ctx, newCustomer(t, "123", "Customer 1", customer.NewAddress("Street 1", 1, "Zipcode 1", "City 1"))))

		err := store.Create(ctx, newCustomer(t, "123", "Customer 2", customer.NewAddress("Street 2", 2, "Zipcode 2", "City 2")))

		assert.ErrorIs(t, err, customer.ErrCustomerAlreadyExists)
	})

	t.Run("it should return not found when customer is missing", func(t *testing.T) {
		db := newTestConnection(t)
		store := postgrestore.NewCustomerStore(db.Gorm)

		_, err := store.Find(ctx, "456ABC")

		assert.ErrorIs(t, err, customer.ErrCustomerNotFound)
		assert.EqualError(t, err, "Customer not found")
	})

	t.Run("it should find all customers", func(t *testing.T) {
		db := newTestConnection(t)
		store := postgrestore.NewCustomerStore(db.Gorm)

		customer1 := newCustomer(t, "123", "Customer 1", customer.NewAddress("Street 1", 1, "Zipcode 1", "City 1"))
		customer1.AddRewardPoints(10)
		require.NoError(t, customer1.Activate())

		customer2 := newCustomer(t, "456", "Customer 2", customer.NewAddress("Street 2", 2, "Zipcode 2", "City 2"))
		customer2.AddRewardPoints(20)

		require.NoError(t, store.Create(ctx, customer1))
		require.NoError(t, store.Create(ctx, customer2))

		customers, err := store.FindAll(ctx)

		require.NoError(t, err)
		require.Len(t, customers, 2)
		assert.Equal(t, customer1.Snapshot(), customers[0].Snapshot())
		assert.Equal(t, customer2.Snapshot(), customers[1].Snapshot())
	})
}

func TestSummaryStore(t *testing.T) {
	ctx := context.Background()

	t.Run("it should summarize an empty table", func(t *testing.T) {
		db := newTestConnection(t)

		summary, err := postgrestore.NewSummaryStore(db.SQLX).Summary(ctx)

		require.NoError(t, err)
		assert.Equal(t, customer.Summary{}, summary)
	})

	t.Run("it should count active customers and points", func(t *testing.T) {
		db := newTestConnection(t)
		store := postgrestore.NewCustomerStore(db.Gorm)

		customer1 := newCustomer(t, "123", "Customer 1", customer.NewAddress("Street 1", 1, "Zipcode 1", "City 1"))
		customer1.AddRewardPoints(10)
		require.NoError(t, customer1.Activate())
		customer2 := newCustomer(t, "456", "Customer 2", customer.NewAddress("Street 2", 2, "Zipcode 2", "City 2"))
		customer2.AddRewardPoints(20)
		require.NoError(t, store.Create(ctx, customer1))
		require.NoError(t, store.Create(ctx, customer2))

		summary, err := postgrestore.NewSummaryStore(db.SQLX).Summary(ctx)

		require.NoError(t, err)
		assert.Equal(t, customer.Summary{Total: 2, Active: 1, RewardPoints: 30}, summary)
	})
}
