package ticket

import (
	"fmt"
	"time"
)

const (
	maxTitleLength       = 128
	maxDescriptionLength = 2048
)

// Ticket is a request for a review: a titled post with an optional
// description and an optional uploaded image, owned by exactly one user.
type Ticket struct {
	id          uint
	title       string
	description string
	image       string // path relative to the media root, "" when absent
	ownerID     uint
	createdAt   time.Time
	updatedAt   time.Time
}

func NewTicket(title, description string, ownerID uint) (*Ticket, error) {
	if err := validateDetails(title, description); err != nil {
		return nil, err
	}
	if ownerID == 0 {
		return nil, fmt.Errorf("owner ID is required")
	}

	now := time.Now()
	return &Ticket{
		title:       title,
		description: description,
		ownerID:     ownerID,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructTicket(
	id uint,
	title string,
	description string,
	image string,
	ownerID uint,
	createdAt, updatedAt time.Time,
) (*Ticket, error) {
	if id == 0 {
		return nil, fmt.Errorf("ticket ID cannot be zero")
	}
	if len(title) == 0 {
		return nil, fmt.Errorf("title is required")
	}
	if ownerID == 0 {
		return nil, fmt.Errorf("owner ID is required")
	}

	return &Ticket{
		id:          id,
		title:       title,
		description: description,
		image:       image,
		ownerID:     ownerID,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}, nil
}

func (t *Ticket) ID() uint {
	return t.id
}

func (t *Ticket) Title() string {
	return t.title
}

func (t *Ticket) Description() string {
	return t.description
}

func (t *Ticket) Image() string {
	return t.image
}

func (t *Ticket) HasImage() bool {
	return t.image != ""
}

func (t *Ticket) OwnerID() uint {
	return t.ownerID
}

func (t *Ticket) CreatedAt() time.Time {
	return t.createdAt
}

func (t *Ticket) UpdatedAt() time.Time {
	return t.updatedAt
}

func (t *Ticket) SetID(id uint) error {
	if t.id != 0 {
		return fmt.Errorf("ticket ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("ticket ID cannot be zero")
	}
	t.id = id
	return nil
}

// IsOwnedBy reports whether userID owns this ticket. Ownership is fixed at
// creation and checked before every mutation.
func (t *Ticket) IsOwnedBy(userID uint) bool {
	return t.ownerID == userID
}

// UpdateDetails replaces the title and description.
func (t *Ticket) UpdateDetails(title, description string) error {
	if err := validateDetails(title, description); err != nil {
		return err
	}
	t.title = title
	t.description = description
	t.updatedAt = time.Now()
	return nil
}

// AttachImage records the stored image path. The caller is responsible for
// having placed the file under the media root.
func (t *Ticket) AttachImage(path string) error {
	if len(path) == 0 {
		return fmt.Errorf("image path cannot be empty")
	}
	t.image = path
	t.updatedAt = time.Now()
	return nil
}

// ClearImage nulls the image reference. The stored file is removed by the
// caller after the database write succeeds.
func (t *Ticket) ClearImage() {
	if t.image == "" {
		return
	}
	t.image = ""
	t.updatedAt = time.Now()
}

func validateDetails(title, description string) error {
	if len(title) == 0 {
		return fmt.Errorf("title is required")
	}
	if len(title) > maxTitleLength {
		return fmt.Errorf("title exceeds maximum length of %d characters", maxTitleLength)
	}
	if len(description) > maxDescriptionLength {
		return fmt.Errorf("description exceeds maximum length of %d characters", maxDescriptionLength)
	}
	return nil
}
