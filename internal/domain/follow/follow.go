package follow

import (
	"fmt"
	"time"
)

// Edge is a directed follow relationship: the follower's feed includes the
// followed user's posts. Uniqueness per (follower, followed) pair is enforced
// by a composite unique index; self-follow is rejected here.
type Edge struct {
	id         uint
	followerID uint
	followedID uint
	createdAt  time.Time
}

func NewEdge(followerID, followedID uint) (*Edge, error) {
	if followerID == 0 {
		return nil, fmt.Errorf("follower ID is required")
	}
	if followedID == 0 {
		return nil, fmt.Errorf("followed ID is required")
	}
	if followerID == followedID {
		return nil, fmt.Errorf("users cannot follow themselves")
	}

	return &Edge{
		followerID: followerID,
		followedID: followedID,
		createdAt:  time.Now(),
	}, nil
}

func ReconstructEdge(id, followerID, followedID uint, createdAt time.Time) (*Edge, error) {
	if id == 0 {
		return nil, fmt.Errorf("edge ID cannot be zero")
	}
	if followerID == 0 || followedID == 0 {
		return nil, fmt.Errorf("follower and followed IDs are required")
	}
	if followerID == followedID {
		return nil, fmt.Errorf("users cannot follow themselves")
	}

	return &Edge{
		id:         id,
		followerID: followerID,
		followedID: followedID,
		createdAt:  createdAt,
	}, nil
}

func (e *Edge) ID() uint {
	return e.id
}

func (e *Edge) FollowerID() uint {
	return e.followerID
}

func (e *Edge) FollowedID() uint {
	return e.followedID
}

func (e *Edge) CreatedAt() time.Time {
	return e.createdAt
}

func (e *Edge) SetID(id uint) error {
	if e.id != 0 {
		return fmt.Errorf("edge ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("edge ID cannot be zero")
	}
	e.id = id
	return nil
}
