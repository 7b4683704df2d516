// Package feed models the merged timeline of tickets and reviews as a tagged
// variant type rather than duck-typed access to a shared attribute.
package feed

import (
	"sort"
	"time"

	"litrevu/internal/domain/review"
	"litrevu/internal/domain/ticket"
)

// Kind discriminates the two post variants.
type Kind string

const (
	KindTicket Kind = "TICKET"
	KindReview Kind = "REVIEW"
)

// Post is one feed entry: exactly one of Ticket or Review is set, matching
// the Kind tag. CreatedAt is the common sort key.
type Post struct {
	Kind      Kind
	CreatedAt time.Time
	Ticket    *ticket.Ticket
	Review    *review.Review
}

// NewTicketPost wraps a ticket as a feed entry.
func NewTicketPost(t *ticket.Ticket) Post {
	return Post{
		Kind:      KindTicket,
		CreatedAt: t.CreatedAt(),
		Ticket:    t,
	}
}

// NewReviewPost wraps a review as a feed entry.
func NewReviewPost(r *review.Review) Post {
	return Post{
		Kind:      KindReview,
		CreatedAt: r.CreatedAt(),
		Review:    r,
	}
}

// ID returns the id of the underlying entity.
func (p Post) ID() uint {
	if p.Kind == KindTicket {
		return p.Ticket.ID()
	}
	return p.Review.ID()
}

// key identifies a post across inclusion paths for deduplication.
type key struct {
	kind Kind
	id   uint
}

// Merge combines posts from multiple inclusion rules into one timeline:
// duplicates (reachable via more than one rule) are dropped, and the result
// is sorted by creation time descending. The sort is stable so equal
// timestamps keep their relative order.
func Merge(groups ...[]Post) []Post {
	seen := make(map[key]bool)
	merged := make([]Post, 0)

	for _, group := range groups {
		for _, p := range group {
			k := key{kind: p.Kind, id: p.ID()}
			if seen[k] {
				continue
			}
			seen[k] = true
			merged = append(merged, p)
		}
	}

	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].CreatedAt.After(merged[j].CreatedAt)
	})

	return merged
}
