package mysql

import (
	"context"

	"github.com/Guyuepp/blog-article-api/domain"
	"github.com/Guyuepp/blog-article-api/internal/repository/mysql/model"
)

type userRepository struct {
	users *Store[model.User]
}

var _ domain.UserRepository = (*userRepository)(nil)

// NewUserRepository will create an implementation of domain.UserRepository
func NewUserRepository(dbc *DBContext) *userRepository {
	return &userRepository{users: NewStore[model.User](dbc)}
}

func (m *userRepository) GetByID(ctx context.Context, id int64) (domain.User, error) {
	user, err := m.users.GetByID(ctx, id, true, true)
	if err != nil {
		return domain.User{}, err
	}
	return user.ToDomain(), nil
}

func (m *userRepository) IsValidID(ctx context.Context, id int64) (bool, error) {
	return m.users.IsValidID(ctx, id, false)
}
