package conversation

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"
)

// EnsureSchema creates the session and message tables when they do not exist.
// Intended for sqlite-backed embedding and tests; hosts with their own
// migration tooling can skip it.
func EnsureSchema(ctx context.Context, db *bun.DB) error {
	models := []any{
		(*Session)(nil),
		(*Message)(nil),
	}
	for _, model := range models {
		if _, err := db.NewCreateTable().Model(model).IfNotExists().Exec(ctx); err != nil {
			return fmt.Errorf("conversation: create table for %T: %w", model, err)
		}
	}
	if _, err := db.NewCreateIndex().
		Model((*Message)(nil)).
		Index("idx_messages_session_created").
		Column("session_id", "created_at").
		IfNotExists().
		Exec(ctx); err != nil {
		return fmt.Errorf("conversation: create message index: %w", err)
	}
	return nil
}
