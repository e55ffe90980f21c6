package identity

import (
	"strings"

	hashid "github.com/goliatone/hashid/pkg/hashid"
	"github.com/google/uuid"
)

// UUID derives a deterministic UUID from a stable key using go-hashid.
//
// Callers must ensure key construction prevents cross-entity collisions (prefix by domain/type).
func UUID(key string) uuid.UUID {
	trimmed := strings.TrimSpace(key)
	if trimmed == "" {
		return uuid.Nil
	}
	uid, err := hashid.NewUUID(trimmed, hashid.WithHashAlgorithm(hashid.SHA256), hashid.WithNormalization(true))
	if err != nil || uid == uuid.Nil {
		return uuid.NewSHA1(uuid.NameSpaceOID, []byte(trimmed))
	}
	return uid
}

func WebsiteUUID(slug string) uuid.UUID {
	return UUID("vowcraft:website:" + strings.ToLower(strings.TrimSpace(slug)))
}

func RedemptionCodeUUID(code string) uuid.UUID {
	return UUID("vowcraft:redemption_code:" + strings.TrimSpace(code))
}

func GuestUUID(websiteID uuid.UUID, name string) uuid.UUID {
	return UUID("vowcraft:guest:" + websiteID.String() + ":" + strings.ToLower(strings.TrimSpace(name)))
}

func ThemeUUID(themeID string) uuid.UUID {
	return UUID("vowcraft:theme:" + strings.TrimSpace(themeID))
}
