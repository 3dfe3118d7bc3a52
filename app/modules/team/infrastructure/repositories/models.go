package teamdb

import (
	"time"

	teamdomain "github.com/Black-And-White-Club/anleague/app/modules/team/domain"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Team is the persisted registration of a national team. The roster is
// stored as a JSONB document since it is always read and written whole.
type Team struct {
	bun.BaseModel `bun:"table:teams,alias:t"`
	ID            uuid.UUID           `bun:"id,pk,type:uuid,default:gen_random_uuid()" json:"id"`
	Country       string              `bun:"country,notnull" json:"country"`
	RepName       string              `bun:"rep_name,notnull" json:"rep_name"`
	RepEmail      string              `bun:"rep_email,notnull" json:"rep_email"`
	Manager       string              `bun:"manager,notnull" json:"manager"`
	Players       []teamdomain.Player `bun:"players,type:jsonb,notnull" json:"players"`
	Rating        float64             `bun:"rating,notnull" json:"rating"`
	CreatedAt     time.Time           `bun:"created_at,notnull,default:current_timestamp" json:"created_at"`
}

// ToDomain converts the row into the domain type.
func (t *Team) ToDomain() teamdomain.Team {
	return teamdomain.Team{
		ID:        t.ID,
		Country:   t.Country,
		RepName:   t.RepName,
		RepEmail:  t.RepEmail,
		Manager:   t.Manager,
		Players:   t.Players,
		Rating:    t.Rating,
		CreatedAt: t.CreatedAt,
	}
}

// FromDomain builds a row from the domain type.
func FromDomain(t teamdomain.Team) *Team {
	return &Team{
		ID:        t.ID,
		Country:   t.Country,
		RepName:   t.RepName,
		RepEmail:  t.RepEmail,
		Manager:   t.Manager,
		Players:   t.Players,
		Rating:    t.Rating,
		CreatedAt: t.CreatedAt,
	}
}
