package rest

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/Zhi-Yan1103/NZ-Discovery/domain"
	"github.com/Zhi-Yan1103/NZ-Discovery/internal/rest/request"
	"github.com/Zhi-Yan1103/NZ-Discovery/internal/rest/response"
)

// ResponseError represent the response error struct
type ResponseError struct {
	Message string `json:"message"`
}

// ArticleHandler represent the httphandler for article
type ArticleHandler struct {
	Service domain.ArticleUsecase
}

func NewArticleHandler(svc domain.ArticleUsecase) *ArticleHandler {
	return &ArticleHandler{
		Service: svc,
	}
}

// FetchAll will fetch articles sorted by the given params
func (a *ArticleHandler) FetchAll(c *gin.Context) {
	sortBy := c.DefaultQuery("sortBy", "date")
	sortOrder := c.DefaultQuery("sortOrder", "desc")

	listAr, err := a.Service.FetchAll(c.Request.Context(), sortBy, sortOrder)
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	res := make([]response.Article, len(listAr))
	for i := range listAr {
		res[i] = response.NewArticleFromDomain(&listAr[i])
	}
	c.JSON(http.StatusOK, res)
}

// Search filters articles by a case-insensitive term over title,
// content and author username. A blank term answers an empty list.
func (a *ArticleHandler) Search(c *gin.Context) {
	query := c.Query("q")
	sortBy := c.DefaultQuery("sortBy", "date")
	sortOrder := c.DefaultQuery("sortOrder", "desc")

	listAr, err := a.Service.Search(c.Request.Context(), query, sortBy, sortOrder)
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	res := make([]response.Article, len(listAr))
	for i := range listAr {
		res[i] = response.NewArticleFromDomain(&listAr[i])
	}
	c.JSON(http.StatusOK, res)
}

// GetByID will get article by given id
func (a *ArticleHandler) GetByID(c *gin.Context) {
	id, err := paramID(c, "id")
	if err != nil {
		c.JSON(http.StatusNotFound, ResponseError{Message: domain.ErrNotFound.Error()})
		return
	}

	art, err := a.Service.GetByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, response.NewArticleFromDomain(&art))
}

// GetMyArticles lists the authenticated user's own articles
func (a *ArticleHandler) GetMyArticles(c *gin.Context) {
	uid, ok := authenticatedUserID(c)
	if !ok {
		return
	}

	listAr, err := a.Service.GetByUser(c.Request.Context(), uid)
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	res := make([]response.Article, len(listAr))
	for i := range listAr {
		res[i] = response.NewArticleFromDomain(&listAr[i])
	}
	c.JSON(http.StatusOK, res)
}

// Store creates the article and fans out notifications to the author's
// followers before answering.
func (a *ArticleHandler) Store(c *gin.Context) {
	uid, ok := authenticatedUserID(c)
	if !ok {
		return
	}

	var req request.Article
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	if err := req.Validate(); err != nil {
		var fieldErrs domain.ValidationErrors
		if errors.As(err, &fieldErrs) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Validation failed", "errors": fieldErrs})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	article := req.ToDomain()
	article.User.ID = uid

	if err := a.Service.Store(c.Request.Context(), &article); err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":   "Article added successfully",
		"articleId": article.ID,
	})
}

// Update modifies an article; only the owner is allowed.
func (a *ArticleHandler) Update(c *gin.Context) {
	uid, ok := authenticatedUserID(c)
	if !ok {
		return
	}

	id, err := paramID(c, "id")
	if err != nil {
		c.JSON(http.StatusNotFound, ResponseError{Message: domain.ErrNotFound.Error()})
		return
	}

	var req request.Article
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	if err := req.Validate(); err != nil {
		var fieldErrs domain.ValidationErrors
		if errors.As(err, &fieldErrs) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Validation failed", "errors": fieldErrs})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	article := req.ToDomain()
	article.ID = id

	if err := a.Service.Update(c.Request.Context(), &article, uid); err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	updated, err := a.Service.GetByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}
	c.JSON(http.StatusOK, response.NewArticleFromDomain(&updated))
}

// Delete removes an article and everything hanging off it; only the
// owner is allowed.
func (a *ArticleHandler) Delete(c *gin.Context) {
	uid, ok := authenticatedUserID(c)
	if !ok {
		return
	}

	id, err := paramID(c, "id")
	if err != nil {
		c.JSON(http.StatusNotFound, ResponseError{Message: domain.ErrNotFound.Error()})
		return
	}

	if err := a.Service.Delete(c.Request.Context(), id, uid); err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Article deleted successfully"})
}

// GetLikes returns the article's like counter, no auth required.
func (a *ArticleHandler) GetLikes(c *gin.Context) {
	id, err := paramID(c, "id")
	if err != nil {
		c.JSON(http.StatusNotFound, ResponseError{Message: domain.ErrNotFound.Error()})
		return
	}

	likes, err := a.Service.GetLikes(c.Request.Context(), id)
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"likes": likes})
}

// LikeStatus reports whether the caller has liked the article.
func (a *ArticleHandler) LikeStatus(c *gin.Context) {
	uid, ok := authenticatedUserID(c)
	if !ok {
		return
	}

	id, err := paramID(c, "id")
	if err != nil {
		c.JSON(http.StatusNotFound, ResponseError{Message: domain.ErrNotFound.Error()})
		return
	}

	likes, hasLiked, err := a.Service.LikeStatus(c.Request.Context(), uid, id)
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"hasLiked": hasLiked, "likes": likes})
}

// ToggleLike flips the caller's like on the article and answers the new
// state.
func (a *ArticleHandler) ToggleLike(c *gin.Context) {
	uid, ok := authenticatedUserID(c)
	if !ok {
		return
	}

	id, err := paramID(c, "id")
	if err != nil {
		c.JSON(http.StatusNotFound, ResponseError{Message: domain.ErrNotFound.Error()})
		return
	}

	likes, hasLiked, err := a.Service.ToggleLike(c.Request.Context(), uid, id)
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"likes": likes, "hasLiked": hasLiked})
}

func paramID(c *gin.Context, name string) (int64, error) {
	return strconv.ParseInt(c.Param(name), 10, 64)
}

// authenticatedUserID pulls the principal set by the auth middleware;
// answers 401 itself when missing.
func authenticatedUserID(c *gin.Context) (int64, bool) {
	uid, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, ResponseError{Message: domain.ErrUnauthorized.Error()})
		return 0, false
	}
	return uid.(int64), true
}

// getStatusCode will map a domain error to its HTTP status
func getStatusCode(err error) int {
	if err == nil {
		return http.StatusOK
	}

	logrus.Error(err)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, domain.ErrBadParamInput):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
