package guests

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Guest is one RSVP submission for a wedding site.
type Guest struct {
	bun.BaseModel `bun:"table:guests,alias:g"`

	ID        uuid.UUID `bun:",pk,type:uuid"        json:"id"`
	WeddingID uuid.UUID `bun:"wedding_id,notnull,type:uuid" json:"wedding_id"`
	Name      string    `bun:"name,notnull"         json:"name"`
	Email     *string   `bun:"email"                json:"email,omitempty"`
	Attending bool      `bun:"attending,notnull"    json:"attending"`
	PlusOnes  int       `bun:"plus_ones,notnull,default:0" json:"plus_ones"`
	Message   *string   `bun:"message"              json:"message,omitempty"`
	CreatedAt time.Time `bun:"created_at,nullzero,default:current_timestamp" json:"created_at"`
}

func cloneGuest(src *Guest) *Guest {
	if src == nil {
		return nil
	}
	copied := *src
	if src.Email != nil {
		email := *src.Email
		copied.Email = &email
	}
	if src.Message != nil {
		message := *src.Message
		copied.Message = &message
	}
	return &copied
}
