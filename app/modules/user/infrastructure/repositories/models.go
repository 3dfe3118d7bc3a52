package userdb

import (
	"time"

	userdomain "github.com/Black-And-White-Club/anleague/app/modules/user/domain"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// User is an account able to sign in. Representatives carry the team they
// registered; TeamID is a logical link (no constraint) to teams.
type User struct {
	bun.BaseModel `bun:"table:users,alias:u"`
	ID            uuid.UUID       `bun:"id,pk,type:uuid,default:gen_random_uuid()" json:"id"`
	Username      string          `bun:"username,unique,notnull" json:"username"`
	PasswordHash  string          `bun:"password_hash,notnull" json:"-"`
	Role          userdomain.Role `bun:"role,notnull" json:"role"`
	TeamID        *uuid.UUID      `bun:"team_id,type:uuid" json:"team_id,omitempty"`
	CreatedAt     time.Time       `bun:"created_at,notnull,default:current_timestamp" json:"created_at"`
}
