package teamservice

import (
	"context"

	teamdb "github.com/Black-And-White-Club/anleague/app/modules/team/infrastructure/repositories"
	userdb "github.com/Black-And-White-Club/anleague/app/modules/user/infrastructure/repositories"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// ------------------------
// Fake Team Repo
// ------------------------

type FakeTeamRepo struct {
	trace []string

	InsertFunc           func(ctx context.Context, db bun.IDB, team *teamdb.Team) error
	GetByIDFunc          func(ctx context.Context, db bun.IDB, id uuid.UUID) (*teamdb.Team, error)
	GetByIDsFunc         func(ctx context.Context, db bun.IDB, ids []uuid.UUID) (map[uuid.UUID]*teamdb.Team, error)
	ListByCreationFunc   func(ctx context.Context, db bun.IDB, limit int) ([]*teamdb.Team, error)
	ListByRatingFunc     func(ctx context.Context, db bun.IDB) ([]*teamdb.Team, error)
	CountFunc            func(ctx context.Context, db bun.IDB) (int, error)
	UpdateFunc           func(ctx context.Context, db bun.IDB, team *teamdb.Team) error
	DeleteFunc           func(ctx context.Context, db bun.IDB, id uuid.UUID) error
	ExistsByRepEmailFunc func(ctx context.Context, db bun.IDB, email string) (bool, error)
}

func NewFakeTeamRepo() *FakeTeamRepo {
	return &FakeTeamRepo{trace: []string{}}
}

func (f *FakeTeamRepo) record(step string) {
	f.trace = append(f.trace, step)
}

func (f *FakeTeamRepo) Insert(ctx context.Context, db bun.IDB, team *teamdb.Team) error {
	f.record("Insert")
	if f.InsertFunc != nil {
		return f.InsertFunc(ctx, db, team)
	}
	return nil
}

func (f *FakeTeamRepo) GetByID(ctx context.Context, db bun.IDB, id uuid.UUID) (*teamdb.Team, error) {
	f.record("GetByID")
	if f.GetByIDFunc != nil {
		return f.GetByIDFunc(ctx, db, id)
	}
	return nil, teamdb.ErrNotFound
}

func (f *FakeTeamRepo) GetByIDs(ctx context.Context, db bun.IDB, ids []uuid.UUID) (map[uuid.UUID]*teamdb.Team, error) {
	f.record("GetByIDs")
	if f.GetByIDsFunc != nil {
		return f.GetByIDsFunc(ctx, db, ids)
	}
	return map[uuid.UUID]*teamdb.Team{}, nil
}

func (f *FakeTeamRepo) ListByCreation(ctx context.Context, db bun.IDB, limit int) ([]*teamdb.Team, error) {
	f.record("ListByCreation")
	if f.ListByCreationFunc != nil {
		return f.ListByCreationFunc(ctx, db, limit)
	}
	return nil, nil
}

func (f *FakeTeamRepo) ListByRating(ctx context.Context, db bun.IDB) ([]*teamdb.Team, error) {
	f.record("ListByRating")
	if f.ListByRatingFunc != nil {
		return f.ListByRatingFunc(ctx, db)
	}
	return nil, nil
}

func (f *FakeTeamRepo) Count(ctx context.Context, db bun.IDB) (int, error) {
	f.record("Count")
	if f.CountFunc != nil {
		return f.CountFunc(ctx, db)
	}
	return 0, nil
}

func (f *FakeTeamRepo) Update(ctx context.Context, db bun.IDB, team *teamdb.Team) error {
	f.record("Update")
	if f.UpdateFunc != nil {
		return f.UpdateFunc(ctx, db, team)
	}
	return nil
}

func (f *FakeTeamRepo) Delete(ctx context.Context, db bun.IDB, id uuid.UUID) error {
	f.record("Delete")
	if f.DeleteFunc != nil {
		return f.DeleteFunc(ctx, db, id)
	}
	return nil
}

func (f *FakeTeamRepo) ExistsByRepEmail(ctx context.Context, db bun.IDB, email string) (bool, error) {
	f.record("ExistsByRepEmail")
	if f.ExistsByRepEmailFunc != nil {
		return f.ExistsByRepEmailFunc(ctx, db, email)
	}
	return false, nil
}

func (f *FakeTeamRepo) Trace() []string {
	out := make([]string, len(f.trace))
	copy(out, f.trace)
	return out
}

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

var (
	_ teamdb.Repository = (*FakeTeamRepo)(nil)
	_ userdb.Repository = (*FakeUserRepo)(nil)
)
