package mysql_test

import (
	"context"
	"testing"

	driver "github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	sqlmock "gopkg.in/DATA-DOG/go-sqlmock.v1"

	"github.com/Zhi-Yan1103/NZ-Discovery/domain"
	"github.com/Zhi-Yan1103/NZ-Discovery/internal/repository/mysql"
)

func TestToggleLike(t *testing.T) {
	t.Run("first-toggle-likes", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := mysql.NewArticleRepository(db)

		mock.ExpectBegin()
		mock.ExpectQuery("SELECT (.+) FROM `articles` WHERE id = (.+) FOR UPDATE").
			WillReturnRows(sqlmock.NewRows([]string{"id", "likes"}).AddRow(5, 0))
		mock.ExpectQuery("SELECT count(.+) FROM `likes`").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
		mock.ExpectExec("INSERT INTO `likes`").WillReturnResult(sqlmock.NewResult(1, 1))
		mock.ExpectExec("UPDATE `articles` SET `likes`=likes").WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectQuery("SELECT `likes` FROM `articles`").
			WillReturnRows(sqlmock.NewRows([]string{"likes"}).AddRow(1))
		mock.ExpectCommit()

		likes, hasLiked, err := repo.ToggleLike(context.TODO(), 2, 5)

		assert.NoError(t, err)
		assert.Equal(t, int64(1), likes)
		assert.True(t, hasLiked)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("second-toggle-unlikes", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := mysql.NewArticleRepository(db)

		mock.ExpectBegin()
		mock.ExpectQuery("SELECT (.+) FROM `articles` WHERE id = (.+) FOR UPDATE").
			WillReturnRows(sqlmock.NewRows([]string{"id", "likes"}).AddRow(5, 1))
		mock.ExpectQuery("SELECT count(.+) FROM `likes`").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
		mock.ExpectExec("DELETE FROM `likes`").WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec("UPDATE `articles` SET `likes`=likes").WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectQuery("SELECT `likes` FROM `articles`").
			WillReturnRows(sqlmock.NewRows([]string{"likes"}).AddRow(0))
		mock.ExpectCommit()

		likes, hasLiked, err := repo.ToggleLike(context.TODO(), 2, 5)

		assert.NoError(t, err)
		assert.Equal(t, int64(0), likes)
		assert.False(t, hasLiked)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("racing-duplicate-insert-is-a-conflict", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := mysql.NewArticleRepository(db)

		mock.ExpectBegin()
		mock.ExpectQuery("SELECT (.+) FROM `articles` WHERE id = (.+) FOR UPDATE").
			WillReturnRows(sqlmock.NewRows([]string{"id", "likes"}).AddRow(5, 0))
		mock.ExpectQuery("SELECT count(.+) FROM `likes`").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
		mock.ExpectExec("INSERT INTO `likes`").
			WillReturnError(&driver.MySQLError{Number: 1062, Message: "Duplicate entry"})
		mock.ExpectRollback()

		_, _, err := repo.ToggleLike(context.TODO(), 2, 5)

		assert.ErrorIs(t, err, domain.ErrConflict)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing-article-is-not-found", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := mysql.NewArticleRepository(db)

		mock.ExpectBegin()
		mock.ExpectQuery("SELECT (.+) FROM `articles` WHERE id = (.+) FOR UPDATE").
			WillReturnRows(sqlmock.NewRows([]string{"id", "likes"}))
		mock.ExpectRollback()

		_, _, err := repo.ToggleLike(context.TODO(), 2, 404)

		assert.ErrorIs(t, err, domain.ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestDeleteCascades(t *testing.T) {
	t.Run("removes-dependents-in-one-tx", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := mysql.NewArticleRepository(db)

		mock.ExpectBegin()
		mock.ExpectExec("DELETE FROM `articles`").WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec("DELETE FROM `notify`").WillReturnResult(sqlmock.NewResult(0, 3))
		mock.ExpectExec("DELETE FROM `likes`").WillReturnResult(sqlmock.NewResult(0, 2))
		mock.ExpectExec("DELETE FROM `comments`").WillReturnResult(sqlmock.NewResult(0, 4))
		mock.ExpectCommit()

		err := repo.Delete(context.TODO(), 5)

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing-article-rolls-back", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := mysql.NewArticleRepository(db)

		mock.ExpectBegin()
		mock.ExpectExec("DELETE FROM `articles`").WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectRollback()

		err := repo.Delete(context.TODO(), 404)

		assert.ErrorIs(t, err, domain.ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRecountLikes(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := mysql.NewArticleRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE articles SET likes =").WillReturnResult(sqlmock.NewResult(0, 7))
	mock.ExpectCommit()

	err := repo.RecountLikes(context.TODO())

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestArticleGetByID(t *testing.T) {
	t.Run("missing-is-not-found", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := mysql.NewArticleRepository(db)

		mock.ExpectQuery("JOIN users ON users.id = articles.userid WHERE articles.id").
			WillReturnRows(sqlmock.NewRows([]string{"id", "title", "username"}))

		_, err := repo.GetByID(context.TODO(), 5)

		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("db-failure-is-not-a-missing-article", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := mysql.NewArticleRepository(db)

		mock.ExpectQuery("JOIN users ON users.id = articles.userid WHERE articles.id").
			WillReturnError(assert.AnError)

		_, err := repo.GetByID(context.TODO(), 5)

		assert.NotErrorIs(t, err, domain.ErrNotFound)
		assert.ErrorIs(t, err, assert.AnError)
	})
}

func TestSearchArticles(t *testing.T) {
	t.Run("lowercases-the-term", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := mysql.NewArticleRepository(db)

		rows := sqlmock.NewRows([]string{"id", "title", "username"}).
			AddRow(3, "Milford Track", "alice")
		mock.ExpectQuery("JOIN users ON users.id = articles.userid WHERE LOWER").
			WithArgs("%milford%", "%milford%", "%milford%").
			WillReturnRows(rows)

		res, err := repo.Search(context.TODO(), "Milford", "title", "asc")

		assert.NoError(t, err)
		assert.Len(t, res, 1)
		assert.Equal(t, "Milford Track", res[0].Title)
		assert.Equal(t, "alice", res[0].User.Username)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("invalid-sort-falls-back-to-date-desc", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := mysql.NewArticleRepository(db)

		mock.ExpectQuery("ORDER BY articles.create_date desc").
			WillReturnRows(sqlmock.NewRows([]string{"id", "title", "username"}))

		res, err := repo.Search(context.TODO(), "kea", "bogus", "sideways")

		assert.NoError(t, err)
		assert.Empty(t, res)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
