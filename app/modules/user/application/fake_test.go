package userservice

import (
	"context"

	userdb "github.com/Black-And-White-Club/anleague/app/modules/user/infrastructure/repositories"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// ------------------------
// Fake User Repo
// ------------------------

type FakeUserRepo struct {
	trace []string

	InsertFunc           func(ctx context.Context, db bun.IDB, user *userdb.User) error
	GetByUsernameFunc    func(ctx context.Context, db bun.IDB, username string) (*userdb.User, error)
	ExistsByUsernameFunc func(ctx context.Context, db bun.IDB, username string) (bool, error)
	DeleteByTeamIDFunc   func(ctx context.Context, db bun.IDB, teamID uuid.UUID) error
}

func NewFakeUserRepo() *FakeUserRepo {
	return &FakeUserRepo{trace: []string{}}
}

func (f *FakeUserRepo) record(step string) {
	f.trace = append(f.trace, step)
}

func (f *FakeUserRepo) Insert(ctx context.Context, db bun.IDB, user *userdb.User) error {
	f.record("Insert")
	if f.InsertFunc != nil {
		return f.InsertFunc(ctx, db, user)
	}
	return nil
}

func (f *FakeUserRepo) GetByUsername(ctx context.Context, db bun.IDB, username string) (*userdb.User, error) {
	f.record("GetByUsername")
	if f.GetByUsernameFunc != nil {
		return f.GetByUsernameFunc(ctx, db, username)
	}
	return nil, userdb.ErrNotFound
}

func (f *FakeUserRepo) ExistsByUsername(ctx context.Context, db bun.IDB, username string) (bool, error) {
	f.record("ExistsByUsername")
	if f.ExistsByUsernameFunc != nil {
		return f.ExistsByUsernameFunc(ctx, db, username)
	}
	return false, nil
}

func (f *FakeUserRepo) DeleteByTeamID(ctx context.Context, db bun.IDB, teamID uuid.UUID) error {
	f.record("DeleteByTeamID")
	if f.DeleteByTeamIDFunc != nil {
		return f.DeleteByTeamIDFunc(ctx, db, teamID)
	}
	return nil
}

func (f *FakeUserRepo) Trace() []string {
	out := make([]string, len(f.trace))
	copy(out, f.trace)
	return out
}

var _ userdb.Repository = (*FakeUserRepo)(nil)
