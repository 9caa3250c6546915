package mysql

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/DATA-DOG/go-sqlmock.v1"

	"github.com/Guyuepp/blog-article-api/domain"
)

func TestUserGetByID(t *testing.T) {
	dbc, mock := newMockDB(t)
	repo := NewUserRepository(dbc)

	mock.ExpectQuery("SELECT \\* FROM `users` WHERE id = \\?").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email", "user_type"}).
			AddRow(1, "admin", "admin@blog.local", 2))

	u, err := repo.GetByID(context.TODO(), 1)
	require.NoError(t, err)
	assert.Equal(t, "admin", u.Name)
	assert.Equal(t, domain.UserTypePublisher, u.UserType)

	mock.ExpectQuery("SELECT \\* FROM `users` WHERE id = \\?").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email", "user_type"}))
	_, err = repo.GetByID(context.TODO(), 99)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.EqualError(t, err, "User with id 99 was not found")

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserIsValidID(t *testing.T) {
	dbc, mock := newMockDB(t)
	repo := NewUserRepository(dbc)

	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `users` WHERE id = \\?").
		WillReturnRows(sqlmock.NewRows([]string{"count(*)"}).AddRow(0))

	ok, err := repo.IsValidID(context.TODO(), 5)
	assert.NoError(t, err)
	assert.False(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}
