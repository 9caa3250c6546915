package model

import "github.com/Guyuepp/blog-article-api/domain"

type User struct {
	ID       int64  `gorm:"primaryKey;autoIncrement"`
	Name     string `gorm:"type:varchar(256);not null"`
	Email    string `gorm:"type:varchar(256);not null"`
	UserType int8   `gorm:"type:tinyint;not null"`
}

func (User) TableName() string {
	return "users"
}

func (User) EntityName() string {
	return "User"
}

func (u User) PrimaryKey() int64 {
	return u.ID
}

func (u *User) ToDomain() domain.User {
	return domain.User{
		ID:       u.ID,
		Name:     u.Name,
		Email:    u.Email,
		UserType: domain.UserType(u.UserType),
	}
}

func NewUserFromDomain(u *domain.User) *User {
	return &User{
		ID:       u.ID,
		Name:     u.Name,
		Email:    u.Email,
		UserType: int8(u.UserType),
	}
}

// All lists every persisted model, in dependency order, for the migrator.
func All() []any {
	return []any{&User{}, &Article{}, &ArticleFeedback{}}
}
