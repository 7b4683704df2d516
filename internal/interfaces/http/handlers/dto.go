package handlers

import (
	"time"

	"litrevu/internal/domain/feed"
	"litrevu/internal/domain/review"
	"litrevu/internal/domain/ticket"
	"litrevu/internal/domain/user"
	"litrevu/internal/shared/services/markdown"
)

type UserResponse struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
}

type TicketResponse struct {
	ID              uint          `json:"id"`
	Title           string        `json:"title"`
	Description     string        `json:"description"`
	DescriptionHTML string        `json:"description_html,omitempty"`
	ImageURL        string        `json:"image_url,omitempty"`
	Owner           *UserResponse `json:"owner,omitempty"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`
}

type ReviewResponse struct {
	ID        uint            `json:"id"`
	Headline  string          `json:"headline"`
	Rating    int             `json:"rating"`
	Stars     string          `json:"stars"`
	Body      string          `json:"body"`
	BodyHTML  string          `json:"body_html,omitempty"`
	Owner     *UserResponse   `json:"owner,omitempty"`
	Ticket    *TicketResponse `json:"ticket,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// PostResponse is one feed entry, either a ticket or a review.
type PostResponse struct {
	Kind      string          `json:"kind"`
	CreatedAt time.Time       `json:"created_at"`
	Ticket    *TicketResponse `json:"ticket,omitempty"`
	Review    *ReviewResponse `json:"review,omitempty"`
}

// DTOBuilder renders domain entities into response payloads. Markdown in
// descriptions and review bodies is converted to sanitized HTML here, at
// the edge, so stored content stays raw.
type DTOBuilder struct {
	markdown       markdown.Service
	mediaURLPrefix string
}

func NewDTOBuilder(md markdown.Service, mediaURLPrefix string) *DTOBuilder {
	return &DTOBuilder{
		markdown:       md,
		mediaURLPrefix: mediaURLPrefix,
	}
}

func (b *DTOBuilder) User(u *user.User) *UserResponse {
	if u == nil {
		return nil
	}
	return &UserResponse{
		ID:       u.ID(),
		Username: u.Username().String(),
	}
}

func (b *DTOBuilder) Ticket(t *ticket.Ticket, owner *user.User) *TicketResponse {
	if t == nil {
		return nil
	}

	resp := &TicketResponse{
		ID:          t.ID(),
		Title:       t.Title(),
		Description: t.Description(),
		Owner:       b.User(owner),
		CreatedAt:   t.CreatedAt(),
		UpdatedAt:   t.UpdatedAt(),
	}

	if t.Description() != "" {
		// A rendering failure falls back to the raw text already present.
		if html, err := b.markdown.ToHTMLSanitized(t.Description()); err == nil {
			resp.DescriptionHTML = html
		}
	}

	if t.HasImage() {
		resp.ImageURL = b.mediaURLPrefix + "/" + t.Image()
	}

	return resp
}

func (b *DTOBuilder) Review(r *review.Review, owner *user.User, parent *TicketResponse) *ReviewResponse {
	if r == nil {
		return nil
	}

	resp := &ReviewResponse{
		ID:        r.ID(),
		Headline:  r.Headline(),
		Rating:    r.Rating().Int(),
		Stars:     r.Rating().Stars(),
		Body:      r.Body(),
		Owner:     b.User(owner),
		Ticket:    parent,
		CreatedAt: r.CreatedAt(),
		UpdatedAt: r.UpdatedAt(),
	}

	if r.Body() != "" {
		if html, err := b.markdown.ToHTMLSanitized(r.Body()); err == nil {
			resp.BodyHTML = html
		}
	}

	return resp
}

// Posts renders a merged feed, resolving authors and parent tickets from
// the lookup tables the feed use cases return.
func (b *DTOBuilder) Posts(posts []feed.Post, users map[uint]*user.User, tickets map[uint]*ticket.Ticket) []PostResponse {
	result := make([]PostResponse, 0, len(posts))

	for _, p := range posts {
		entry := PostResponse{
			Kind:      string(p.Kind),
			CreatedAt: p.CreatedAt,
		}

		switch p.Kind {
		case feed.KindTicket:
			entry.Ticket = b.Ticket(p.Ticket, users[p.Ticket.OwnerID()])
		case feed.KindReview:
			var parent *TicketResponse
			if t, ok := tickets[p.Review.TicketID()]; ok {
				parent = b.Ticket(t, users[t.OwnerID()])
			}
			entry.Review = b.Review(p.Review, users[p.Review.OwnerID()], parent)
		}

		result = append(result, entry)
	}

	return result
}
