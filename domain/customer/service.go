package customer

import "context"

type Service interface {
	Create(ctx context.Context, id string, name string, address *Address) (*Customer, error)
	Get(ctx context.Context, id string) (*Customer, error)
	List(ctx context.Context) ([]*Customer, error)
	Rename(ctx context.Context, id string, name string) (*Customer, error)
	ChangeAddress(ctx context.Context, id string, address Address) (*Customer, error)
	Activate(ctx context.Context, id string) (*Customer, error)
	Deactivate(ctx context.Context, id string) (*Customer, error)
	AddRewardPoints(ctx context.Context, id string, points int) (*Customer, error)
	Summary(ctx context.Context) (Summary, error)
}
