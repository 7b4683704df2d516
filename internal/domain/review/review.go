package review

import (
	"fmt"
	"time"

	vo "litrevu/internal/domain/review/valueobjects"
)

const (
	maxHeadlineLength = 128
	maxBodyLength     = 8192
)

// Review is a rated response to exactly one ticket. The one-review-per-ticket
// invariant is enforced both by the creation use case and by a unique index on
// the parent ticket column.
type Review struct {
	id        uint
	headline  string
	rating    vo.Rating
	body      string
	ownerID   uint
	ticketID  uint
	createdAt time.Time
	updatedAt time.Time
}

func NewReview(headline string, rating vo.Rating, body string, ownerID, ticketID uint) (*Review, error) {
	if err := validateContent(headline, rating, body); err != nil {
		return nil, err
	}
	if ownerID == 0 {
		return nil, fmt.Errorf("owner ID is required")
	}
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}

	now := time.Now()
	return &Review{
		headline:  headline,
		rating:    rating,
		body:      body,
		ownerID:   ownerID,
		ticketID:  ticketID,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructReview(
	id uint,
	headline string,
	rating vo.Rating,
	body string,
	ownerID uint,
	ticketID uint,
	createdAt, updatedAt time.Time,
) (*Review, error) {
	if id == 0 {
		return nil, fmt.Errorf("review ID cannot be zero")
	}
	if len(headline) == 0 {
		return nil, fmt.Errorf("headline is required")
	}
	if !rating.IsValid() {
		return nil, fmt.Errorf("invalid rating")
	}
	if ownerID == 0 {
		return nil, fmt.Errorf("owner ID is required")
	}
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}

	return &Review{
		id:        id,
		headline:  headline,
		rating:    rating,
		body:      body,
		ownerID:   ownerID,
		ticketID:  ticketID,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}, nil
}

func (r *Review) ID() uint {
	return r.id
}

func (r *Review) Headline() string {
	return r.headline
}

func (r *Review) Rating() vo.Rating {
	return r.rating
}

func (r *Review) Body() string {
	return r.body
}

func (r *Review) OwnerID() uint {
	return r.ownerID
}

func (r *Review) TicketID() uint {
	return r.ticketID
}

func (r *Review) CreatedAt() time.Time {
	return r.createdAt
}

func (r *Review) UpdatedAt() time.Time {
	return r.updatedAt
}

func (r *Review) SetID(id uint) error {
	if r.id != 0 {
		return fmt.Errorf("review ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("review ID cannot be zero")
	}
	r.id = id
	return nil
}

// IsOwnedBy reports whether userID owns this review.
func (r *Review) IsOwnedBy(userID uint) bool {
	return r.ownerID == userID
}

// UpdateContent replaces headline, rating, and body in one step, matching the
// full-field edit form of the original flow.
func (r *Review) UpdateContent(headline string, rating vo.Rating, body string) error {
	if err := validateContent(headline, rating, body); err != nil {
		return err
	}
	r.headline = headline
	r.rating = rating
	r.body = body
	r.updatedAt = time.Now()
	return nil
}

func validateContent(headline string, rating vo.Rating, body string) error {
	if len(headline) == 0 {
		return fmt.Errorf("headline is required")
	}
	if len(headline) > maxHeadlineLength {
		return fmt.Errorf("headline exceeds maximum length of %d characters", maxHeadlineLength)
	}
	if !rating.IsValid() {
		return fmt.Errorf("rating must be between %d and %d", vo.RatingMin, vo.RatingMax)
	}
	if len(body) > maxBodyLength {
		return fmt.Errorf("body exceeds maximum length of %d characters", maxBodyLength)
	}
	return nil
}
