package domain

import "context"

// ServicePort is the auth service contract
type ServicePort interface {
	Signup(ctx context.Context, in Credentials) (TokenPair, error)
	Signin(ctx context.Context, in Credentials) (TokenPair, error)
	Refresh(ctx context.Context, in RefreshInput) (TokenPair, error)
	Me(ctx context.Context, userID int64) (User, error)
}
