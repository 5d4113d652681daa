package domain

import (
	"context"
	"time"
)

// User represents a registered account. A user authors articles and
// comments, likes articles, and follows other users.
type User struct {
	ID          int64     // Unique identifier
	Username    string    // Login username (unique)
	Password    string    // Bcrypt hashed password
	Realname    string    // Display name
	Description string    // Profile blurb
	DOB         string    // Date of birth, YYYY-MM-DD
	AvatarURL   string    // Avatar image reference
	Role        string    // "user" or "admin"
	CreatedAt   time.Time // Account creation timestamp
}

// UserRepository defines the contract for user data persistence.
type UserRepository interface {
	// GetByID retrieves a user by their ID.
	// Returns ErrNotFound if the user doesn't exist.
	GetByID(ctx context.Context, id int64) (User, error)

	// GetByUsername retrieves a user by their username.
	// Used during login and follow-by-username lookups.
	GetByUsername(ctx context.Context, username string) (User, error)

	// Insert creates a new user account.
	// Backfills the ID in the provided User object upon success.
	// Returns ErrConflict if the username is already taken.
	Insert(ctx context.Context, u *User) error

	// Update rewrites an existing user's profile columns.
	// Returns ErrConflict if the new username is already taken.
	Update(ctx context.Context, u *User) error
}

// UserUsecase defines the business logic contract for accounts and the
// social graph.
type UserUsecase interface {
	// Register creates a new user account.
	// Returns ErrConflict if the username already exists.
	Register(ctx context.Context, u *User, password string) error

	// Login verifies user credentials and returns a signed JWT.
	// Returns ErrUnauthorized if the credentials don't match.
	Login(ctx context.Context, username, password string) (string, error)

	GetByID(ctx context.Context, id int64) (User, error)

	// UpdateProfile applies the non-empty fields of updates to the
	// account. When the username or password changed the token the
	// caller authenticated with no longer matches the stored claims, so
	// a freshly signed one is returned alongside the updated profile;
	// otherwise the token is empty.
	// Returns ErrConflict when the new username is taken.
	UpdateProfile(ctx context.Context, userID int64, updates User, newPassword string) (User, string, error)

	// Follow creates a follow edge towards the named user.
	// Following a user twice succeeds without creating a second edge.
	// Returns ErrNotFound if the target is unknown and ErrBadParamInput
	// on a self-follow.
	Follow(ctx context.Context, followerID int64, username string) error

	// Unfollow removes the follow edge towards the named user.
	// Returns ErrNotFound if the target or the edge doesn't exist.
	Unfollow(ctx context.Context, followerID int64, username string) error

	// IsFollowing reports whether the caller follows the named user.
	// Returns ErrNotFound if the target is unknown.
	IsFollowing(ctx context.Context, followerID int64, username string) (bool, error)

	Followers(ctx context.Context, userID int64) ([]User, error)
	Followings(ctx context.Context, userID int64) ([]User, error)
}
