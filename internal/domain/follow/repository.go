package follow

import "context"

type Repository interface {
	Save(ctx context.Context, edge *Edge) error

	// Delete removes the edge between two users; reports whether an edge
	// existed.
	Delete(ctx context.Context, followerID, followedID uint) (bool, error)

	// Exists checks whether followerID already follows followedID.
	Exists(ctx context.Context, followerID, followedID uint) (bool, error)

	// GetFollowedIDs returns the ids of every user followerID follows.
	GetFollowedIDs(ctx context.Context, followerID uint) ([]uint, error)

	// GetFollowerIDs returns the ids of every user following followedID.
	GetFollowerIDs(ctx context.Context, followedID uint) ([]uint, error)
}
