package domain

import (
	"context"
	"time"
)

// Follow is a directed edge in the social graph. The follower receives a
// notification whenever the followed user publishes an article. An edge
// is unique per (follower, followed) pair.
type Follow struct {
	ID         int64
	FollowerID int64
	FollowedID int64
	CreatedAt  time.Time
}

// FollowRepository defines the contract for follow-edge persistence and
// the read-only follower/following projections.
type FollowRepository interface {
	// Create inserts a follow edge.
	// Returns ErrConflict if the edge already exists.
	Create(ctx context.Context, followerID, followedID int64) error

	// Delete removes a follow edge.
	// Returns ErrNotFound if the edge doesn't exist.
	Delete(ctx context.Context, followerID, followedID int64) error

	// Exists reports whether the edge is present.
	Exists(ctx context.Context, followerID, followedID int64) (bool, error)

	// GetFollowers returns the users following userID.
	// An empty slice, not an error, when there are none.
	GetFollowers(ctx context.Context, userID int64) ([]User, error)

	// GetFollowings returns the users userID follows.
	GetFollowings(ctx context.Context, userID int64) ([]User, error)
}
