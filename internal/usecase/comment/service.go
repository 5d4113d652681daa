package comment

import (
	"context"
	"unicode/utf8"

	"golang.org/x/sync/errgroup"

	"github.com/Zhi-Yan1103/NZ-Discovery/domain"
	"github.com/Zhi-Yan1103/NZ-Discovery/internal/repository"
)

type service struct {
	commentRepo domain.CommentRepository
	articleRepo domain.ArticleRepository
	userRepo    domain.UserRepository
	bloomRepo   domain.BloomRepository
}

var _ domain.CommentUsecase = (*service)(nil)

func NewService(commentRepo domain.CommentRepository, articleRepo domain.ArticleRepository, userRepo domain.UserRepository, bloomRepo domain.BloomRepository) *service {
	return &service{
		commentRepo: commentRepo,
		articleRepo: articleRepo,
		userRepo:    userRepo,
		bloomRepo:   bloomRepo,
	}
}

func (s *service) Create(ctx context.Context, c *domain.Comment) error {
	if c.Content == "" || utf8.RuneCountInString(c.Content) > domain.MaxCommentLength {
		return domain.ErrBadParamInput
	}

	exists, err := s.bloomRepo.Exists(ctx, c.ArticleID)
	if err == nil && !exists {
		return domain.ErrNotFound
	}
	if _, err := s.articleRepo.GetByID(ctx, c.ArticleID); err != nil {
		return err
	}

	if c.ParentID != 0 {
		parent, err := s.commentRepo.GetByID(ctx, c.ParentID)
		if err != nil {
			return err
		}
		// Replies to replies collapse onto the thread root.
		c.RootID = parent.RootID
		if c.RootID == 0 {
			c.RootID = parent.ID
		}
	}

	return s.commentRepo.Store(ctx, c)
}

// Delete allows the comment's author and the hosting article's author,
// nobody else. Missing comment or article answers not-found before any
// permission check.
func (s *service) Delete(ctx context.Context, commentID, requesterID int64) error {
	comment, err := s.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		return err
	}

	article, err := s.articleRepo.GetByID(ctx, comment.ArticleID)
	if err != nil {
		return err
	}

	if comment.UserID != requesterID && article.User.ID != requesterID {
		return domain.ErrForbidden
	}

	return s.commentRepo.Delete(ctx, commentID)
}

func (s *service) FetchByArticle(ctx context.Context, articleID int64, cursor string, limit int64) ([]*domain.Comment, string, error) {
	exists, err := s.bloomRepo.Exists(ctx, articleID)
	if err == nil && !exists {
		return nil, "", domain.ErrNotFound
	}

	res, err := s.commentRepo.FetchRoots(ctx, articleID, cursor, limit)
	if err != nil {
		return nil, "", err
	}
	if len(res) == 0 {
		return []*domain.Comment{}, "", nil
	}

	rootIDs := make([]int64, len(res))
	for i, comment := range res {
		rootIDs[i] = comment.ID
	}

	replies, err := s.commentRepo.FetchReplies(ctx, rootIDs)
	if err != nil {
		return res, "", nil
	}

	replyMap := make(map[int64][]*domain.Comment)
	for _, r := range replies {
		replyMap[r.RootID] = append(replyMap[r.RootID], r)
	}

	for _, r := range res {
		if list, ok := replyMap[r.ID]; ok {
			r.Replies = list
		} else {
			r.Replies = []*domain.Comment{}
		}
	}

	if err := s.fillUserDetails(ctx, res); err != nil {
		return res, "", nil
	}

	return res, repository.EncodeCursor(res[len(res)-1].CreatedAt), nil
}

// fillUserDetails hydrates comment authors, fetching each distinct
// author concurrently and failing on the first error.
func (s *service) fillUserDetails(ctx context.Context, comments []*domain.Comment) error {
	idSet := make(map[int64]bool)
	var collect func(list []*domain.Comment)
	collect = func(list []*domain.Comment) {
		for _, c := range list {
			idSet[c.UserID] = true
			collect(c.Replies)
		}
	}
	collect(comments)

	ids := make([]int64, 0, len(idSet))
	for id := range idSet {
		ids = append(ids, id)
	}

	g, gctx := errgroup.WithContext(ctx)
	users := make([]domain.User, len(ids))
	for i, id := range ids {
		g.Go(func() error {
			u, err := s.userRepo.GetByID(gctx, id)
			if err != nil {
				return err
			}
			users[i] = u
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	byID := make(map[int64]domain.User, len(users))
	for _, u := range users {
		byID[u.ID] = u
	}

	var apply func(list []*domain.Comment)
	apply = func(list []*domain.Comment) {
		for _, c := range list {
			if u, ok := byID[c.UserID]; ok {
				u.Password = ""
				c.User = &u
			}
			apply(c.Replies)
		}
	}
	apply(comments)

	return nil
}
