// Package identity derives stable UUIDs from external keys so repeated
// transcript imports upsert instead of duplicating rows.
package identity

import (
	"strings"

	hashid "github.com/goliatone/hashid/pkg/hashid"
	"github.com/google/uuid"
)

// UUID derives a deterministic UUID from a stable key using go-hashid.
//
// Callers must ensure key construction prevents cross-entity collisions
// (prefix by domain/type).
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

// SessionUUID derives the identifier for a session from its external key
// (the platform-side conversation identifier).
func SessionUUID(externalKey string) uuid.UUID {
	return UUID("go-conversations:session:" + strings.TrimSpace(externalKey))
}

// MessageUUID derives the identifier for a message from its session and
// position within the transcript.
func MessageUUID(sessionID uuid.UUID, sequenceKey string) uuid.UUID {
	return UUID("go-conversations:message:" + sessionID.String() + ":" + strings.TrimSpace(sequenceKey))
}
