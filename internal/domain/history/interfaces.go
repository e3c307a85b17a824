package history

import "context"

// Repository provides persistence for ledger entries. List and Latest exclude
// archived entries and order newest first.
type Repository interface {
	Append(ctx context.Context, entry *Entry) error
	List(ctx context.Context, scope Scope) ([]Entry, error)
	Latest(ctx context.Context, scope Scope) (*Entry, error)
	Archive(ctx context.Context, scope Scope, entryID string) (bool, error)
}
