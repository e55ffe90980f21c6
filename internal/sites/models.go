package sites

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"github.com/vowcraft/vowcraft/content"
)

// Site record statuses. Demo sites are free trials; production is terminal.
const (
	StatusDemo       = content.StatusDemo
	StatusProduction = content.StatusProduction
)

// Website is one couple's invitation microsite, addressable by its public
// slug. Content holds the full merged document the editor works against.
type Website struct {
	bun.BaseModel `bun:"table:websites,alias:w"`

	ID         uuid.UUID        `bun:",pk,type:uuid"                 json:"site_id"`
	Slug       string           `bun:"slug,notnull,unique"           json:"slug"`
	ThemeID    string           `bun:"theme_id,notnull"              json:"theme_id"`
	NicheSlug  *string          `bun:"niche_slug"                    json:"niche_slug,omitempty"`
	OwnerID    string           `bun:"owner_id,notnull"              json:"owner_id"`
	Content    content.Document `bun:"content,type:jsonb,notnull"    json:"content"`
	Status     string           `bun:"status,notnull,default:'demo'" json:"status"`
	PaymentRef *string          `bun:"payment_ref,nullzero,unique"   json:"payment_ref,omitempty"`

	PublishedAt *time.Time `bun:"published_at,nullzero" json:"published_at,omitempty"`
	CreatedAt   time.Time  `bun:"created_at,nullzero,default:current_timestamp" json:"created_at"`
	UpdatedAt   time.Time  `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at"`
}

// RedemptionCode gates the pre-paid creation flow. MaxUses nil means
// unlimited redemptions.
type RedemptionCode struct {
	bun.BaseModel `bun:"table:redemption_codes,alias:rc"`

	ID        uuid.UUID `bun:",pk,type:uuid"                json:"id"`
	Code      string    `bun:"code,notnull,unique"          json:"code"`
	ThemeID   string    `bun:"theme_id,notnull"             json:"theme_id"`
	NicheSlug *string   `bun:"niche_slug"                   json:"niche_slug,omitempty"`
	Active    bool      `bun:"active,notnull,default:true"  json:"active"`
	UseCount  int       `bun:"use_count,notnull,default:0"  json:"use_count"`
	MaxUses   *int      `bun:"max_uses"                     json:"max_uses,omitempty"`

	CreatedAt time.Time `bun:"created_at,nullzero,default:current_timestamp" json:"created_at"`
	UpdatedAt time.Time `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at"`
}

// Exhausted reports whether the code has no redemptions left.
func (c *RedemptionCode) Exhausted() bool {
	return c.MaxUses != nil && c.UseCount >= *c.MaxUses
}

func cloneWebsite(src *Website) *Website {
	if src == nil {
		return nil
	}
	copied := *src
	copied.Content = content.Clone(src.Content)
	if src.NicheSlug != nil {
		niche := *src.NicheSlug
		copied.NicheSlug = &niche
	}
	if src.PaymentRef != nil {
		ref := *src.PaymentRef
		copied.PaymentRef = &ref
	}
	if src.PublishedAt != nil {
		at := *src.PublishedAt
		copied.PublishedAt = &at
	}
	return &copied
}

func cloneRedemptionCode(src *RedemptionCode) *RedemptionCode {
	if src == nil {
		return nil
	}
	copied := *src
	if src.NicheSlug != nil {
		niche := *src.NicheSlug
		copied.NicheSlug = &niche
	}
	if src.MaxUses != nil {
		max := *src.MaxUses
		copied.MaxUses = &max
	}
	return &copied
}
