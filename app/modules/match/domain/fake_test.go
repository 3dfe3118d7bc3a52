package matchdomain

import (
	"context"
	"sync"

	teamdomain "github.com/Black-And-White-Club/anleague/app/modules/team/domain"
	"github.com/google/uuid"
)

// FakeCommentator is a programmable Commentator that records its calls.
type FakeCommentator struct {
	mu    sync.Mutex
	trace []string

	CommentateFunc func(ctx context.Context, req CommentaryRequest) (string, error)
}

func (f *FakeCommentator) record(step string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.trace = append(f.trace, step)
}

func (f *FakeCommentator) Trace() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, len(f.trace))
	copy(out, f.trace)
	return out
}

func (f *FakeCommentator) Commentate(ctx context.Context, req CommentaryRequest) (string, error) {
	f.record("Commentate")
	if f.CommentateFunc != nil {
		return f.CommentateFunc(ctx, req)
	}
	return "", nil
}

var _ Commentator = (*FakeCommentator)(nil)

// FakeAssets resolves every path to a fixed prefix.
type FakeAssets struct {
	Prefix string
}

func (f FakeAssets) ResolveMedia(localPath string) string {
	return f.Prefix + localPath
}

// constSource returns the same float draw forever.
type constSource struct{ f float64 }

func (c constSource) Float64() float64             { return c.f }
func (c constSource) IntN(int) int                 { return 0 }
func (c constSource) Shuffle(int, func(i, j int)) {}

func rosterOf(positions ...teamdomain.Position) []teamdomain.Player {
	roster := make([]teamdomain.Player, len(positions))
	for i, pos := range positions {
		roster[i] = teamdomain.Player{Name: string(pos) + "-" + string(rune('A'+i)), Natural: pos}
	}
	return roster
}

func fullRoster() []teamdomain.Player {
	positions := make([]teamdomain.Position, 0, teamdomain.RosterSize)
	positions = append(positions, teamdomain.Goalkeeper, teamdomain.Goalkeeper)
	for i := 0; i < 8; i++ {
		positions = append(positions, teamdomain.Defender)
	}
	for i := 0; i < 8; i++ {
		positions = append(positions, teamdomain.Midfielder)
	}
	for i := 0; i < 5; i++ {
		positions = append(positions, teamdomain.Attacker)
	}
	return rosterOf(positions...)
}

func side(country string, rating float64) Side {
	return Side{ID: uuid.New(), Country: country, Rating: rating, Roster: fullRoster()}
}
