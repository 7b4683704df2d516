package review

import "context"

type Repository interface {
	Save(ctx context.Context, review *Review) error
	Update(ctx context.Context, review *Review) error
	Delete(ctx context.Context, reviewID uint) error
	GetByID(ctx context.Context, reviewID uint) (*Review, error)

	// GetByTicketID returns the review attached to a ticket, or (nil, nil)
	// when the ticket has none.
	GetByTicketID(ctx context.Context, ticketID uint) (*Review, error)

	// ExistsByTicketID checks whether a ticket already has a review.
	ExistsByTicketID(ctx context.Context, ticketID uint) (bool, error)

	// GetByOwnerIDs retrieves all reviews owned by any of the given users,
	// newest first.
	GetByOwnerIDs(ctx context.Context, ownerIDs []uint) ([]*Review, error)

	// GetByTicketOwnerID retrieves reviews attached to tickets owned by the
	// given user, regardless of the review author.
	GetByTicketOwnerID(ctx context.Context, ticketOwnerID uint) ([]*Review, error)

	// DeleteByTicketID removes the review attached to a ticket, if any.
	DeleteByTicketID(ctx context.Context, ticketID uint) error
}
