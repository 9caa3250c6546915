package mysql

import (
	"context"

	"gorm.io/gorm"

	"github.com/Guyuepp/blog-article-api/domain"
	"github.com/Guyuepp/blog-article-api/internal/repository/mysql/model"
)

type feedbackRepository struct {
	feedbacks *Store[model.ArticleFeedback]
}

var _ domain.ArticleFeedbackRepository = (*feedbackRepository)(nil)

func NewFeedbackRepository(dbc *DBContext) *feedbackRepository {
	return &feedbackRepository{feedbacks: NewStore[model.ArticleFeedback](dbc)}
}

func (r *feedbackRepository) GetByArticleAndUser(ctx context.Context, articleID, userID int64) (*domain.ArticleFeedback, error) {
	rows, err := r.feedbacks.Find(ctx, Query{
		Scopes: []func(*gorm.DB) *gorm.DB{func(db *gorm.DB) *gorm.DB {
			return db.Where("article_id = ? AND user_id = ?", articleID, userID)
		}},
		Limit: 1,
	})
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	res := rows[0].ToDomain()
	return &res, nil
}

// Save inserts or updates f. A staged insert fills f.ID only once the unit
// of work is flushed, so callers must not rely on it before commit.
func (r *feedbackRepository) Save(ctx context.Context, f *domain.ArticleFeedback, saveNow bool) error {
	feedbackModel := model.NewArticleFeedbackFromDomain(f)
	if f.ID != 0 {
		return r.feedbacks.Update(ctx, saveNow, feedbackModel)
	}
	if err := r.feedbacks.Create(ctx, saveNow, feedbackModel); err != nil {
		return err
	}
	f.ID = feedbackModel.ID
	return nil
}
