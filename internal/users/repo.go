package users

import "context"

// UsersRepo defines persistence operations for users.
type UsersRepo interface {
	Create(ctx context.Context, u User) error
	GetByID(ctx context.Context, id string) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
	Update(ctx context.Context, u User) error
	List(ctx context.Context, limit, offset int) ([]User, error)
}
