package user

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"

	"github.com/Zhi-Yan1103/NZ-Discovery/domain"
)

// Claims are the JWT claims carried by authenticated requests.
type Claims struct {
	UserID   int64  `json:"user_id"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

type service struct {
	userRepo   domain.UserRepository
	followRepo domain.FollowRepository
	jwtSecret  []byte
	jwtTTL     time.Duration
}

var _ domain.UserUsecase = (*service)(nil)

func NewService(userRepo domain.UserRepository, followRepo domain.FollowRepository, jwtSecret []byte, jwtTTL time.Duration) *service {
	return &service{
		userRepo:   userRepo,
		followRepo: followRepo,
		jwtSecret:  jwtSecret,
		jwtTTL:     jwtTTL,
	}
}

func (s *service) Register(ctx context.Context, u *domain.User, password string) error {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.Password = string(hashed)
	if u.Role == "" {
		u.Role = "user"
	}
	return s.userRepo.Insert(ctx, u)
}

// Login verifies credentials and signs a JWT. A wrong username and a
// wrong password are indistinguishable to the caller.
func (s *service) Login(ctx context.Context, username, password string) (string, error) {
	u, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", domain.ErrUnauthorized
		}
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)); err != nil {
		return "", domain.ErrUnauthorized
	}

	return s.signToken(u)
}

func (s *service) signToken(u domain.User) (string, error) {
	claims := Claims{
		UserID:   u.ID,
		Username: u.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.jwtTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtSecret)
}

func (s *service) GetByID(ctx context.Context, id int64) (domain.User, error) {
	u, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return domain.User{}, err
	}
	u.Password = ""
	return u, nil
}

// UpdateProfile merges the non-empty fields of updates onto the stored
// account. A username or password change invalidates the claims the
// caller authenticated with, so a fresh token is signed and returned in
// that case; otherwise the token is empty.
func (s *service) UpdateProfile(ctx context.Context, userID int64, updates domain.User, newPassword string) (domain.User, string, error) {
	u, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return domain.User{}, "", err
	}

	reissue := false
	if updates.Username != "" && updates.Username != u.Username {
		u.Username = updates.Username
		reissue = true
	}
	if updates.Realname != "" {
		u.Realname = updates.Realname
	}
	if updates.Description != "" {
		u.Description = updates.Description
	}
	if updates.DOB != "" {
		u.DOB = updates.DOB
	}
	if updates.AvatarURL != "" {
		u.AvatarURL = updates.AvatarURL
	}
	if newPassword != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
		if err != nil {
			return domain.User{}, "", err
		}
		u.Password = string(hashed)
		reissue = true
	}

	if err := s.userRepo.Update(ctx, &u); err != nil {
		return domain.User{}, "", err
	}

	token := ""
	if reissue {
		if token, err = s.signToken(u); err != nil {
			return domain.User{}, "", err
		}
	}
	u.Password = ""
	return u, token, nil
}

// Follow resolves the target by username. Self-follows are rejected:
// such an edge could never notify (fan-out strips the author), so it
// would only pollute the graph. A duplicate follow succeeds silently.
func (s *service) Follow(ctx context.Context, followerID int64, username string) error {
	target, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return err
	}
	if target.ID == followerID {
		return domain.ErrBadParamInput
	}

	err = s.followRepo.Create(ctx, followerID, target.ID)
	if errors.Is(err, domain.ErrConflict) {
		return nil
	}
	return err
}

func (s *service) Unfollow(ctx context.Context, followerID int64, username string) error {
	target, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return err
	}
	return s.followRepo.Delete(ctx, followerID, target.ID)
}

func (s *service) IsFollowing(ctx context.Context, followerID int64, username string) (bool, error) {
	target, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return false, err
	}
	return s.followRepo.Exists(ctx, followerID, target.ID)
}

func (s *service) Followers(ctx context.Context, userID int64) ([]domain.User, error) {
	return stripPasswords(s.followRepo.GetFollowers(ctx, userID))
}

func (s *service) Followings(ctx context.Context, userID int64) ([]domain.User, error) {
	return stripPasswords(s.followRepo.GetFollowings(ctx, userID))
}

func stripPasswords(users []domain.User, err error) ([]domain.User, error) {
	if err != nil {
		return nil, err
	}
	for i := range users {
		users[i].Password = ""
	}
	return users, nil
}
