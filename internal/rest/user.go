package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Zhi-Yan1103/NZ-Discovery/domain"
	"github.com/Zhi-Yan1103/NZ-Discovery/internal/rest/request"
	"github.com/Zhi-Yan1103/NZ-Discovery/internal/rest/response"
)

// UserHandler represent the httphandler for user
type UserHandler struct {
	Service domain.UserUsecase
}

func NewUserHandler(svc domain.UserUsecase) *UserHandler {
	return &UserHandler{
		Service: svc,
	}
}

// Register creates an account.
func (h *UserHandler) Register(c *gin.Context) {
	var req request.Register
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	user := req.ToDomain()
	if err := h.Service.Register(c.Request.Context(), &user, req.Password); err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, response.NewUserFromDomain(&user))
}

// Login checks credentials and answers a signed token.
func (h *UserHandler) Login(c *gin.Context) {
	var req request.Login
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	token, err := h.Service.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}

// Me answers the authenticated user's own profile.
func (h *UserHandler) Me(c *gin.Context) {
	uid, ok := authenticatedUserID(c)
	if !ok {
		return
	}

	user, err := h.Service.GetByID(c.Request.Context(), uid)
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, response.NewUserFromDomain(&user))
}

// UpdateMe applies a partial profile update. When the username or
// password changed the response carries a freshly signed token, since
// the one the caller holds no longer matches the stored claims.
func (h *UserHandler) UpdateMe(c *gin.Context) {
	uid, ok := authenticatedUserID(c)
	if !ok {
		return
	}

	var req request.UpdateProfile
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	user, token, err := h.Service.UpdateProfile(c.Request.Context(), uid, req.ToDomain(), req.Password)
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	if token != "" {
		c.JSON(http.StatusOK, gin.H{"user": response.NewUserFromDomain(&user), "token": token})
		return
	}
	c.JSON(http.StatusOK, response.NewUserFromDomain(&user))
}

// Follow subscribes the caller to the named user's new articles.
func (h *UserHandler) Follow(c *gin.Context) {
	uid, ok := authenticatedUserID(c)
	if !ok {
		return
	}

	username := c.Param("username")
	if err := h.Service.Follow(c.Request.Context(), uid, username); err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Followed successfully"})
}

// Unfollow removes the caller's subscription to the named user.
func (h *UserHandler) Unfollow(c *gin.Context) {
	uid, ok := authenticatedUserID(c)
	if !ok {
		return
	}

	username := c.Param("username")
	if err := h.Service.Unfollow(c.Request.Context(), uid, username); err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Unfollowed successfully"})
}

// FollowStatus reports whether the caller follows the named user.
func (h *UserHandler) FollowStatus(c *gin.Context) {
	uid, ok := authenticatedUserID(c)
	if !ok {
		return
	}

	following, err := h.Service.IsFollowing(c.Request.Context(), uid, c.Param("username"))
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"isFollowing": following})
}

// Followers lists the users following the caller.
func (h *UserHandler) Followers(c *gin.Context) {
	uid, ok := authenticatedUserID(c)
	if !ok {
		return
	}

	users, err := h.Service.Followers(c.Request.Context(), uid)
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, response.NewUsersFromDomain(users))
}

// Followings lists the users the caller follows.
func (h *UserHandler) Followings(c *gin.Context) {
	uid, ok := authenticatedUserID(c)
	if !ok {
		return
	}

	users, err := h.Service.Followings(c.Request.Context(), uid)
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, response.NewUsersFromDomain(users))
}
