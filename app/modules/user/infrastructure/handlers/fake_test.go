package userhandlers

import (
	"context"

	userservice "github.com/Black-And-White-Club/anleague/app/modules/user/application"
	userdomain "github.com/Black-And-White-Club/anleague/app/modules/user/domain"
)

type FakeService struct {
	LoginFunc        func(ctx context.Context, username, password string, role userdomain.Role) (*userservice.LoginResponse, error)
	EnsureAdminFunc  func(ctx context.Context, username, password string) (bool, error)
	AuthenticateFunc func(ctx context.Context, token string) (*userdomain.Claims, error)
}

func (f *FakeService) Login(ctx context.Context, username, password string, role userdomain.Role) (*userservice.LoginResponse, error) {
	if f.LoginFunc != nil {
		return f.LoginFunc(ctx, username, password, role)
	}
	return nil, userservice.ErrInvalidCredentials
}

func (f *FakeService) EnsureAdmin(ctx context.Context, username, password string) (bool, error) {
	if f.EnsureAdminFunc != nil {
		return f.EnsureAdminFunc(ctx, username, password)
	}
	return false, nil
}

func (f *FakeService) Authenticate(ctx context.Context, token string) (*userdomain.Claims, error) {
	if f.AuthenticateFunc != nil {
		return f.AuthenticateFunc(ctx, token)
	}
	return nil, userservice.ErrInvalidCredentials
}

var _ userservice.Service = (*FakeService)(nil)
