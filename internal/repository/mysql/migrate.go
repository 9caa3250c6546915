package mysql

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/Guyuepp/blog-article-api/domain"
	"github.com/Guyuepp/blog-article-api/internal/repository/mysql/model"
)

// AutoMigrate creates or alters the tables of every model
func AutoMigrate(ctx context.Context, db *gorm.DB) error {
	return db.WithContext(ctx).AutoMigrate(model.All()...)
}

// Seed makes sure user 1 and article 1 exist. It is safe to run on every start.
func Seed(ctx context.Context, db *gorm.DB) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		admin := model.User{
			ID:       1,
			Name:     "admin",
			Email:    "admin@blog.local",
			UserType: int8(domain.UserTypePublisher),
		}
		if err := tx.Where(model.User{ID: admin.ID}).FirstOrCreate(&admin).Error; err != nil {
			return err
		}

		now := time.Now().UTC()
		welcome := model.Article{
			ID:            1,
			Title:         "Welcome to the blog",
			Body:          "This article is created by the seeder.",
			Author:        admin.Name,
			PublishDate:   &now,
			IsPublished:   true,
			AddedByUserID: admin.ID,
			CreatedDate:   now,
		}
		return tx.Where(model.Article{ID: welcome.ID}).FirstOrCreate(&welcome).Error
	})
}
