package standard

import "context"

// Repository provides read access to standard and profession definitions.
type Repository interface {
	ListStandards(ctx context.Context) ([]Standard, error)
	GetStandard(ctx context.Context, number int) (*Standard, error)
	ListProfessions(ctx context.Context) ([]Profession, error)
	GetProfession(ctx context.Context, id string) (*Profession, error)
}
