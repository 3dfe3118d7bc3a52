package tournamentservice

import (
	"context"
	"sync"
	"time"

	teamdb "github.com/Black-And-White-Club/anleague/app/modules/team/infrastructure/repositories"
	tournamentdb "github.com/Black-And-White-Club/anleague/app/modules/tournament/infrastructure/repositories"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// ------------------------
// Fake Match Repo
// ------------------------

// FakeMatchRepo keeps matches and tournaments in memory. Func fields
// override the in-memory behavior.
type FakeMatchRepo struct {
	mu          sync.Mutex
	trace       []string
	Matches     []*tournamentdb.Match
	Tournaments []*tournamentdb.Tournament

	GetMatchFunc      func(ctx context.Context, db bun.IDB, id uuid.UUID) (*tournamentdb.Match, error)
	RecordResultFunc  func(ctx context.Context, db bun.IDB, match *tournamentdb.Match) error
	InsertMatchesFunc func(ctx context.Context, db bun.IDB, matches []*tournamentdb.Match) error
}

func NewFakeMatchRepo(matches ...*tournamentdb.Match) *FakeMatchRepo {
	return &FakeMatchRepo{trace: []string{}, Matches: matches}
}

func (f *FakeMatchRepo) record(step string) {
	f.trace = append(f.trace, step)
}

func (f *FakeMatchRepo) InsertMatches(ctx context.Context, db bun.IDB, matches []*tournamentdb.Match) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("InsertMatches")
	if f.InsertMatchesFunc != nil {
		return f.InsertMatchesFunc(ctx, db, matches)
	}
	f.Matches = append(f.Matches, matches...)
	return nil
}

func (f *FakeMatchRepo) GetMatch(ctx context.Context, db bun.IDB, id uuid.UUID) (*tournamentdb.Match, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("GetMatch")
	if f.GetMatchFunc != nil {
		return f.GetMatchFunc(ctx, db, id)
	}
	for _, m := range f.Matches {
		if m.ID == id {
			cp := *m
			return &cp, nil
		}
	}
	return nil, tournamentdb.ErrNotFound
}

func (f *FakeMatchRepo) ListMatches(ctx context.Context, db bun.IDB) ([]*tournamentdb.Match, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("ListMatches")
	return f.copies(func(*tournamentdb.Match) bool { return true }), nil
}

func (f *FakeMatchRepo) ListUnplayed(ctx context.Context, db bun.IDB) ([]*tournamentdb.Match, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("ListUnplayed")
	return f.copies(func(m *tournamentdb.Match) bool { return !m.Played }), nil
}

func (f *FakeMatchRepo) ListPlayed(ctx context.Context, db bun.IDB, since *time.Time) ([]*tournamentdb.Match, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("ListPlayed")
	return f.copies(func(m *tournamentdb.Match) bool {
		return m.Played && (since == nil || (m.PlayedAt != nil && !m.PlayedAt.Before(*since)))
	}), nil
}

func (f *FakeMatchRepo) ListPlayedByTeam(ctx context.Context, db bun.IDB, teamID uuid.UUID) ([]*tournamentdb.Match, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("ListPlayedByTeam")
	return f.copies(func(m *tournamentdb.Match) bool {
		return m.Played && (m.Team1ID == teamID || m.Team2ID == teamID)
	}), nil
}

func (f *FakeMatchRepo) CountMatches(ctx context.Context, db bun.IDB) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("CountMatches")
	return len(f.Matches), nil
}

func (f *FakeMatchRepo) RecordResult(ctx context.Context, db bun.IDB, match *tournamentdb.Match) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("RecordResult")
	if f.RecordResultFunc != nil {
		return f.RecordResultFunc(ctx, db, match)
	}
	for i, m := range f.Matches {
		if m.ID == match.ID {
			if m.Played {
				return tournamentdb.ErrAlreadyPlayed
			}
			cp := *match
			f.Matches[i] = &cp
			return nil
		}
	}
	return tournamentdb.ErrAlreadyPlayed
}

func (f *FakeMatchRepo) DeleteAllMatches(ctx context.Context, db bun.IDB) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("DeleteAllMatches")
	n := len(f.Matches)
	f.Matches = nil
	return n, nil
}

func (f *FakeMatchRepo) InsertTournament(ctx context.Context, db bun.IDB, t *tournamentdb.Tournament) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("InsertTournament")
	f.Tournaments = append(f.Tournaments, t)
	return nil
}

func (f *FakeMatchRepo) LatestTournament(ctx context.Context, db bun.IDB) (*tournamentdb.Tournament, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("LatestTournament")
	if len(f.Tournaments) == 0 {
		return nil, tournamentdb.ErrNotFound
	}
	return f.Tournaments[len(f.Tournaments)-1], nil
}

func (f *FakeMatchRepo) ListTournaments(ctx context.Context, db bun.IDB) ([]*tournamentdb.Tournament, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("ListTournaments")
	out := make([]*tournamentdb.Tournament, 0, len(f.Tournaments))
	for i := len(f.Tournaments) - 1; i >= 0; i-- {
		out = append(out, f.Tournaments[i])
	}
	return out, nil
}

func (f *FakeMatchRepo) copies(keep func(*tournamentdb.Match) bool) []*tournamentdb.Match {
	out := []*tournamentdb.Match{}
	for _, m := range f.Matches {
		if keep(m) {
			cp := *m
			out = append(out, &cp)
		}
	}
	return out
}

func (f *FakeMatchRepo) Trace() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, len(f.trace))
	copy(out, f.trace)
	return out
}

// ------------------------
// Fake Team Repo
// ------------------------

// FakeTeamRepo serves a fixed set of teams.
type FakeTeamRepo struct {
	Teams []*teamdb.Team
}

func (f *FakeTeamRepo) Insert(ctx context.Context, db bun.IDB, team *teamdb.Team) error {
	f.Teams = append(f.Teams, team)
	return nil
}

func (f *FakeTeamRepo) GetByID(ctx context.Context, db bun.IDB, id uuid.UUID) (*teamdb.Team, error) {
	for _, t := range f.Teams {
		if t.ID == id {
			return t, nil
		}
	}
	return nil, teamdb.ErrNotFound
}

func (f *FakeTeamRepo) GetByIDs(ctx context.Context, db bun.IDB, ids []uuid.UUID) (map[uuid.UUID]*teamdb.Team, error) {
	out := make(map[uuid.UUID]*teamdb.Team, len(ids))
	for _, id := range ids {
		if t, err := f.GetByID(ctx, db, id); err == nil {
			out[id] = t
		}
	}
	return out, nil
}

func (f *FakeTeamRepo) ListByCreation(ctx context.Context, db bun.IDB, limit int) ([]*teamdb.Team, error) {
	if limit > 0 && limit < len(f.Teams) {
		return f.Teams[:limit], nil
	}
	return f.Teams, nil
}

func (f *FakeTeamRepo) ListByRating(ctx context.Context, db bun.IDB) ([]*teamdb.Team, error) {
	return f.Teams, nil
}

func (f *FakeTeamRepo) Count(ctx context.Context, db bun.IDB) (int, error) {
	return len(f.Teams), nil
}

func (f *FakeTeamRepo) Update(ctx context.Context, db bun.IDB, team *teamdb.Team) error {
	return nil
}

func (f *FakeTeamRepo) Delete(ctx context.Context, db bun.IDB, id uuid.UUID) error {
	for i, t := range f.Teams {
		if t.ID == id {
			f.Teams = append(f.Teams[:i], f.Teams[i+1:]...)
			return nil
		}
	}
	return teamdb.ErrNotFound
}

func (f *FakeTeamRepo) ExistsByRepEmail(ctx context.Context, db bun.IDB, email string) (bool, error) {
	return false, nil
}

// ------------------------
// Fake Publisher
// ------------------------

type published struct {
	Topic   string
	Message *message.Message
}

type FakePublisher struct {
	mu        sync.Mutex
	Published []published
	Err       error
}

func (p *FakePublisher) Publish(topic string, messages ...*message.Message) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.Err != nil {
		return p.Err
	}
	for _, m := range messages {
		p.Published = append(p.Published, published{Topic: topic, Message: m})
	}
	return nil
}

func (p *FakePublisher) Close() error { return nil }

func (p *FakePublisher) Topics() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, len(p.Published))
	for i, m := range p.Published {
		out[i] = m.Topic
	}
	return out
}

var (
	_ tournamentdb.Repository = (*FakeMatchRepo)(nil)
	_ teamdb.Repository       = (*FakeTeamRepo)(nil)
	_ message.Publisher       = (*FakePublisher)(nil)
)
