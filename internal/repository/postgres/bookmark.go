package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/postline/postline/domain"
	"github.com/postline/postline/internal/repository"
)

type bookmarkRepository struct {
	DB *gorm.DB
}

var _ domain.BookmarkRepository = (*bookmarkRepository)(nil)

func NewBookmarkRepository(db *gorm.DB) *bookmarkRepository {
	return &bookmarkRepository{
		DB: db,
	}
}

// Toggle uses the same constraint-guarded insert-or-delete shape as the
// comment like toggle.
func (b *bookmarkRepository) Toggle(ctx context.Context, postID int64, userID string) (bool, error) {
	res := b.DB.WithContext(ctx).Exec(`
		INSERT INTO bookmarks (post_id, user_id, created_at)
		VALUES (?, ?, NOW())
		ON CONFLICT (post_id, user_id) DO NOTHING`, postID, userID)
	if res.Error != nil {
		return false, res.Error
	}
	if res.RowsAffected > 0 {
		return true, nil
	}

	err := b.DB.WithContext(ctx).
		Exec(`DELETE FROM bookmarks WHERE post_id = ? AND user_id = ?`, postID, userID).Error
	return false, err
}

func (b *bookmarkRepository) FetchPostIDsByUser(ctx context.Context, userID string, limit, offset int) ([]int64, error) {
	limit, offset = repository.CoercePage(limit, offset)

	var ids []int64
	err := b.DB.WithContext(ctx).
		Table("bookmarks").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Pluck("post_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}
