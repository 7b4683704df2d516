package ticket

import "context"

type Repository interface {
	Save(ctx context.Context, ticket *Ticket) error
	Update(ctx context.Context, ticket *Ticket) error
	Delete(ctx context.Context, ticketID uint) error
	GetByID(ctx context.Context, ticketID uint) (*Ticket, error)

	// GetByIDs retrieves multiple tickets by id.
	GetByIDs(ctx context.Context, ticketIDs []uint) ([]*Ticket, error)

	// GetByOwnerIDs retrieves all tickets owned by any of the given users,
	// newest first. An empty id list yields an empty result.
	GetByOwnerIDs(ctx context.Context, ownerIDs []uint) ([]*Ticket, error)
}
