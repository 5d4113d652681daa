package user_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/Zhi-Yan1103/NZ-Discovery/domain"
	"github.com/Zhi-Yan1103/NZ-Discovery/domain/mocks"
	ucase "github.com/Zhi-Yan1103/NZ-Discovery/internal/usecase/user"
)

var testSecret = []byte("test-secret")

func TestRegister(t *testing.T) {
	mockUserRepo := new(mocks.UserRepository)
	mockFollowRepo := new(mocks.FollowRepository)

	var inserted *domain.User
	mockUserRepo.On("Insert", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		inserted = args.Get(1).(*domain.User)
	}).Return(nil).Once()

	u := ucase.NewService(mockUserRepo, mockFollowRepo, testSecret, time.Hour)
	account := domain.User{Username: "kiwi"}
	err := u.Register(context.TODO(), &account, "hunter22")

	assert.NoError(t, err)
	require.NotNil(t, inserted)
	assert.Equal(t, "user", inserted.Role)
	assert.NotEqual(t, "hunter22", inserted.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(inserted.Password), []byte("hunter22")))
}

func TestLogin(t *testing.T) {
	hashed, err := bcrypt.GenerateFromPassword([]byte("hunter22"), bcrypt.MinCost)
	require.NoError(t, err)
	account := domain.User{ID: 7, Username: "kiwi", Password: string(hashed)}

	t.Run("success-signs-claims", func(t *testing.T) {
		mockUserRepo := new(mocks.UserRepository)
		mockFollowRepo := new(mocks.FollowRepository)
		mockUserRepo.On("GetByUsername", mock.Anything, "kiwi").Return(account, nil).Once()

		u := ucase.NewService(mockUserRepo, mockFollowRepo, testSecret, time.Hour)
		token, err := u.Login(context.TODO(), "kiwi", "hunter22")

		require.NoError(t, err)

		claims := &ucase.Claims{}
		parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
			return testSecret, nil
		})
		require.NoError(t, err)
		assert.True(t, parsed.Valid)
		assert.Equal(t, int64(7), claims.UserID)
		assert.Equal(t, "kiwi", claims.Username)
	})

	t.Run("wrong-password-is-unauthorized", func(t *testing.T) {
		mockUserRepo := new(mocks.UserRepository)
		mockFollowRepo := new(mocks.FollowRepository)
		mockUserRepo.On("GetByUsername", mock.Anything, "kiwi").Return(account, nil).Once()

		u := ucase.NewService(mockUserRepo, mockFollowRepo, testSecret, time.Hour)
		_, err := u.Login(context.TODO(), "kiwi", "wrong")

		assert.ErrorIs(t, err, domain.ErrUnauthorized)
	})

	t.Run("unknown-user-is-indistinguishable", func(t *testing.T) {
		mockUserRepo := new(mocks.UserRepository)
		mockFollowRepo := new(mocks.FollowRepository)
		mockUserRepo.On("GetByUsername", mock.Anything, "ghost").
			Return(domain.User{}, domain.ErrNotFound).Once()

		u := ucase.NewService(mockUserRepo, mockFollowRepo, testSecret, time.Hour)
		_, err := u.Login(context.TODO(), "ghost", "whatever")

		assert.ErrorIs(t, err, domain.ErrUnauthorized)
	})
}

func TestFollow(t *testing.T) {
	target := domain.User{ID: 9, Username: "tui"}

	t.Run("success", func(t *testing.T) {
		mockUserRepo := new(mocks.UserRepository)
		mockFollowRepo := new(mocks.FollowRepository)
		mockUserRepo.On("GetByUsername", mock.Anything, "tui").Return(target, nil).Once()
		mockFollowRepo.On("Create", mock.Anything, int64(2), int64(9)).Return(nil).Once()

		u := ucase.NewService(mockUserRepo, mockFollowRepo, testSecret, time.Hour)
		err := u.Follow(context.TODO(), 2, "tui")

		assert.NoError(t, err)
		mockFollowRepo.AssertExpectations(t)
	})

	t.Run("duplicate-follow-is-idempotent", func(t *testing.T) {
		mockUserRepo := new(mocks.UserRepository)
		mockFollowRepo := new(mocks.FollowRepository)
		mockUserRepo.On("GetByUsername", mock.Anything, "tui").Return(target, nil).Once()
		mockFollowRepo.On("Create", mock.Anything, int64(2), int64(9)).Return(domain.ErrConflict).Once()

		u := ucase.NewService(mockUserRepo, mockFollowRepo, testSecret, time.Hour)
		err := u.Follow(context.TODO(), 2, "tui")

		assert.NoError(t, err)
	})

	t.Run("self-follow-rejected", func(t *testing.T) {
		mockUserRepo := new(mocks.UserRepository)
		mockFollowRepo := new(mocks.FollowRepository)
		mockUserRepo.On("GetByUsername", mock.Anything, "tui").Return(target, nil).Once()

		u := ucase.NewService(mockUserRepo, mockFollowRepo, testSecret, time.Hour)
		err := u.Follow(context.TODO(), 9, "tui")

		assert.ErrorIs(t, err, domain.ErrBadParamInput)
		mockFollowRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("unknown-target-is-not-found", func(t *testing.T) {
		mockUserRepo := new(mocks.UserRepository)
		mockFollowRepo := new(mocks.FollowRepository)
		mockUserRepo.On("GetByUsername", mock.Anything, "ghost").
			Return(domain.User{}, domain.ErrNotFound).Once()

		u := ucase.NewService(mockUserRepo, mockFollowRepo, testSecret, time.Hour)
		err := u.Follow(context.TODO(), 2, "ghost")

		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestUnfollow(t *testing.T) {
	target := domain.User{ID: 9, Username: "tui"}

	t.Run("success", func(t *testing.T) {
		mockUserRepo := new(mocks.UserRepository)
		mockFollowRepo := new(mocks.FollowRepository)
		mockUserRepo.On("GetByUsername", mock.Anything, "tui").Return(target, nil).Once()
		mockFollowRepo.On("Delete", mock.Anything, int64(2), int64(9)).Return(nil).Once()

		u := ucase.NewService(mockUserRepo, mockFollowRepo, testSecret, time.Hour)
		err := u.Unfollow(context.TODO(), 2, "tui")

		assert.NoError(t, err)
	})

	t.Run("missing-edge-is-not-found", func(t *testing.T) {
		mockUserRepo := new(mocks.UserRepository)
		mockFollowRepo := new(mocks.FollowRepository)
		mockUserRepo.On("GetByUsername", mock.Anything, "tui").Return(target, nil).Once()
		mockFollowRepo.On("Delete", mock.Anything, int64(2), int64(9)).Return(domain.ErrNotFound).Once()

		u := ucase.NewService(mockUserRepo, mockFollowRepo, testSecret, time.Hour)
		err := u.Unfollow(context.TODO(), 2, "tui")

		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestFollowers(t *testing.T) {
	mockUserRepo := new(mocks.UserRepository)
	mockFollowRepo := new(mocks.FollowRepository)
	mockFollowRepo.On("GetFollowers", mock.Anything, int64(2)).Return([]domain.User{
		{ID: 3, Username: "alice", Password: "secret-hash"},
	}, nil).Once()

	u := ucase.NewService(mockUserRepo, mockFollowRepo, testSecret, time.Hour)
	users, err := u.Followers(context.TODO(), 2)

	assert.NoError(t, err)
	require.Len(t, users, 1)
	assert.Empty(t, users[0].Password)
}

func TestUpdateProfile(t *testing.T) {
	hashed, err := bcrypt.GenerateFromPassword([]byte("hunter22"), bcrypt.MinCost)
	require.NoError(t, err)
	stored := domain.User{ID: 7, Username: "kiwi", Password: string(hashed), Realname: "Kea"}

	t.Run("profile-fields-keep-token", func(t *testing.T) {
		mockUserRepo := new(mocks.UserRepository)
		mockFollowRepo := new(mocks.FollowRepository)
		mockUserRepo.On("GetByID", mock.Anything, int64(7)).Return(stored, nil).Once()

		var updated *domain.User
		mockUserRepo.On("Update", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
			snapshot := *args.Get(1).(*domain.User)
			updated = &snapshot
		}).Return(nil).Once()

		u := ucase.NewService(mockUserRepo, mockFollowRepo, testSecret, time.Hour)
		res, token, err := u.UpdateProfile(context.TODO(), 7, domain.User{Realname: "Tui", Description: "birder"}, "")

		require.NoError(t, err)
		assert.Empty(t, token)
		require.NotNil(t, updated)
		assert.Equal(t, "Tui", updated.Realname)
		assert.Equal(t, "birder", updated.Description)
		assert.Equal(t, "kiwi", updated.Username)
		assert.Equal(t, string(hashed), updated.Password)
		assert.Empty(t, res.Password)
	})

	t.Run("username-change-reissues-token", func(t *testing.T) {
		mockUserRepo := new(mocks.UserRepository)
		mockFollowRepo := new(mocks.FollowRepository)
		mockUserRepo.On("GetByID", mock.Anything, int64(7)).Return(stored, nil).Once()
		mockUserRepo.On("Update", mock.Anything, mock.Anything).Return(nil).Once()

		u := ucase.NewService(mockUserRepo, mockFollowRepo, testSecret, time.Hour)
		res, token, err := u.UpdateProfile(context.TODO(), 7, domain.User{Username: "falcon"}, "")

		require.NoError(t, err)
		require.NotEmpty(t, token)
		assert.Equal(t, "falcon", res.Username)

		claims := &ucase.Claims{}
		_, err = jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
			return testSecret, nil
		})
		require.NoError(t, err)
		assert.Equal(t, int64(7), claims.UserID)
		assert.Equal(t, "falcon", claims.Username)
	})

	t.Run("password-change-rehashes-and-reissues", func(t *testing.T) {
		mockUserRepo := new(mocks.UserRepository)
		mockFollowRepo := new(mocks.FollowRepository)
		mockUserRepo.On("GetByID", mock.Anything, int64(7)).Return(stored, nil).Once()

		var updated *domain.User
		mockUserRepo.On("Update", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
			snapshot := *args.Get(1).(*domain.User)
			updated = &snapshot
		}).Return(nil).Once()

		u := ucase.NewService(mockUserRepo, mockFollowRepo, testSecret, time.Hour)
		_, token, err := u.UpdateProfile(context.TODO(), 7, domain.User{}, "newsecret")

		require.NoError(t, err)
		assert.NotEmpty(t, token)
		require.NotNil(t, updated)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(updated.Password), []byte("newsecret")))
	})

	t.Run("taken-username-conflicts", func(t *testing.T) {
		mockUserRepo := new(mocks.UserRepository)
		mockFollowRepo := new(mocks.FollowRepository)
		mockUserRepo.On("GetByID", mock.Anything, int64(7)).Return(stored, nil).Once()
		mockUserRepo.On("Update", mock.Anything, mock.Anything).Return(domain.ErrConflict).Once()

		u := ucase.NewService(mockUserRepo, mockFollowRepo, testSecret, time.Hour)
		_, _, err := u.UpdateProfile(context.TODO(), 7, domain.User{Username: "taken"}, "")

		assert.ErrorIs(t, err, domain.ErrConflict)
	})

	t.Run("unknown-user", func(t *testing.T) {
		mockUserRepo := new(mocks.UserRepository)
		mockFollowRepo := new(mocks.FollowRepository)
		mockUserRepo.On("GetByID", mock.Anything, int64(99)).Return(domain.User{}, domain.ErrNotFound).Once()

		u := ucase.NewService(mockUserRepo, mockFollowRepo, testSecret, time.Hour)
		_, _, err := u.UpdateProfile(context.TODO(), 99, domain.User{Realname: "x"}, "")

		assert.ErrorIs(t, err, domain.ErrNotFound)
		mockUserRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})
}

func TestIsFollowing(t *testing.T) {
	target := domain.User{ID: 9, Username: "tui"}

	t.Run("edge-present", func(t *testing.T) {
		mockUserRepo := new(mocks.UserRepository)
		mockFollowRepo := new(mocks.FollowRepository)
		mockUserRepo.On("GetByUsername", mock.Anything, "tui").Return(target, nil).Once()
		mockFollowRepo.On("Exists", mock.Anything, int64(2), int64(9)).Return(true, nil).Once()

		u := ucase.NewService(mockUserRepo, mockFollowRepo, testSecret, time.Hour)
		following, err := u.IsFollowing(context.TODO(), 2, "tui")

		assert.NoError(t, err)
		assert.True(t, following)
	})

	t.Run("edge-absent", func(t *testing.T) {
		mockUserRepo := new(mocks.UserRepository)
		mockFollowRepo := new(mocks.FollowRepository)
		mockUserRepo.On("GetByUsername", mock.Anything, "tui").Return(target, nil).Once()
		mockFollowRepo.On("Exists", mock.Anything, int64(2), int64(9)).Return(false, nil).Once()

		u := ucase.NewService(mockUserRepo, mockFollowRepo, testSecret, time.Hour)
		following, err := u.IsFollowing(context.TODO(), 2, "tui")

		assert.NoError(t, err)
		assert.False(t, following)
	})

	t.Run("unknown-target", func(t *testing.T) {
		mockUserRepo := new(mocks.UserRepository)
		mockFollowRepo := new(mocks.FollowRepository)
		mockUserRepo.On("GetByUsername", mock.Anything, "ghost").Return(domain.User{}, domain.ErrNotFound).Once()

		u := ucase.NewService(mockUserRepo, mockFollowRepo, testSecret, time.Hour)
		_, err := u.IsFollowing(context.TODO(), 2, "ghost")

		assert.ErrorIs(t, err, domain.ErrNotFound)
		mockFollowRepo.AssertNotCalled(t, "Exists", mock.Anything, mock.Anything, mock.Anything)
	})
}
