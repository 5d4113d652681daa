package rest

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Zhi-Yan1103/NZ-Discovery/domain"
	"github.com/Zhi-Yan1103/NZ-Discovery/internal/rest/request"
	"github.com/Zhi-Yan1103/NZ-Discovery/internal/rest/response"
)

// CommentHandler represent the httphandler for comment
type CommentHandler struct {
	Service domain.CommentUsecase
}

func NewCommentHandler(svc domain.CommentUsecase) *CommentHandler {
	return &CommentHandler{
		Service: svc,
	}
}

// Create posts a comment or a reply on an article.
func (h *CommentHandler) Create(c *gin.Context) {
	uid, ok := authenticatedUserID(c)
	if !ok {
		return
	}

	var req request.Comment
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	comment := req.ToDomain()
	comment.UserID = uid

	if err := h.Service.Create(c.Request.Context(), &comment); err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, response.NewSingleCommentFromDomain(&comment))
}

// Delete removes a comment; the comment author and the article owner may
// do so.
func (h *CommentHandler) Delete(c *gin.Context) {
	uid, ok := authenticatedUserID(c)
	if !ok {
		return
	}

	id, err := paramID(c, "id")
	if err != nil {
		c.JSON(http.StatusNotFound, ResponseError{Message: domain.ErrNotFound.Error()})
		return
	}

	if err := h.Service.Delete(c.Request.Context(), id, uid); err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Comment deleted successfully"})
}

// FetchByArticle lists an article's comment tree with cursor paging.
func (h *CommentHandler) FetchByArticle(c *gin.Context) {
	articleID, err := paramID(c, "articleId")
	if err != nil {
		c.JSON(http.StatusNotFound, ResponseError{Message: domain.ErrNotFound.Error()})
		return
	}

	num, _ := strconv.ParseInt(c.Query("num"), 10, 64)
	cursor := c.Query("cursor")

	comments, nextCursor, err := h.Service.FetchByArticle(c.Request.Context(), articleID, cursor, num)
	if err != nil {
		c.JSON(getStatusCode(err), ResponseError{Message: err.Error()})
		return
	}

	res := make([]*response.Comment, 0, len(comments))
	for _, comment := range comments {
		res = append(res, response.NewCommentFromDomain(comment))
	}
	c.Header("X-Cursor", nextCursor)
	c.JSON(http.StatusOK, res)
}
