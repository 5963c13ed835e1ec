package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"
	"gorm.io/gorm"

	"github.com/postline/postline/domain"
	"github.com/postline/postline/internal/repository"
	"github.com/postline/postline/internal/repository/postgres/model"
)

type postRepository struct {
	DB *gorm.DB
}

var _ domain.PostRepository = (*postRepository)(nil)

func NewPostRepository(db *gorm.DB) *postRepository {
	return &postRepository{
		DB: db,
	}
}

func (p *postRepository) Store(ctx context.Context, post *domain.Post) error {
	row := model.NewPostFromDomain(post)
	if err := p.DB.WithContext(ctx).Create(row).Error; err != nil {
		return err
	}
	post.ID = row.ID
	post.CreatedAt = row.CreatedAt
	if post.Likes == nil {
		post.Likes = []string{}
	}
	return nil
}

func (p *postRepository) GetByID(ctx context.Context, id int64) (*domain.Post, error) {
	var row model.Post
	err := p.DB.WithContext(ctx).First(&row, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	res := row.ToDomain()
	return &res, nil
}

func (p *postRepository) GetByIDs(ctx context.Context, ids []int64) ([]domain.Post, error) {
	if len(ids) == 0 {
		return []domain.Post{}, nil
	}
	var rows []model.Post
	err := p.DB.WithContext(ctx).Where("id IN ?", ids).Find(&rows).Error
	if err != nil {
		return nil, err
	}
	res := make([]domain.Post, len(rows))
	for i := range rows {
		res[i] = rows[i].ToDomain()
	}
	return res, nil
}

func (p *postRepository) Fetch(ctx context.Context, limit, offset int) ([]domain.Post, error) {
	limit, offset = repository.CoercePage(limit, offset)

	var rows []model.Post
	err := p.DB.WithContext(ctx).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Offset(offset).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	res := make([]domain.Post, len(rows))
	for i := range rows {
		res[i] = rows[i].ToDomain()
	}
	return res, nil
}

func (p *postRepository) Search(ctx context.Context, query string, limit, offset int) ([]domain.Post, error) {
	limit, offset = repository.CoercePage(limit, offset)

	var rows []model.Post
	err := p.DB.WithContext(ctx).
		Where("title ILIKE ?", "%"+query+"%").
		Order("created_at DESC, id DESC").
		Limit(limit).
		Offset(offset).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	res := make([]domain.Post, len(rows))
	for i := range rows {
		res[i] = rows[i].ToDomain()
	}
	return res, nil
}

func (p *postRepository) Delete(ctx context.Context, id int64) error {
	res := p.DB.WithContext(ctx).Delete(&model.Post{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ToggleLike flips the membership inside the likes array in a single
// statement. The whole read-decide-write cycle happens store-side, so two
// concurrent toggles on the same post cannot overwrite each other.
func (p *postRepository) ToggleLike(ctx context.Context, postID int64, userID string) ([]string, error) {
	var likes pq.StringArray
	row := p.DB.WithContext(ctx).Raw(`
		UPDATE posts
		SET likes = CASE
			WHEN ? = ANY(likes) THEN array_remove(likes, ?)
			ELSE array_append(likes, ?)
		END
		WHERE id = ?
		RETURNING likes`, userID, userID, userID, postID).Row()
	if err := row.Scan(&likes); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	if likes == nil {
		likes = pq.StringArray{}
	}
	return []string(likes), nil
}
