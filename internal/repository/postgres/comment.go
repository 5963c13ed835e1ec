package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/postline/postline/domain"
	"github.com/postline/postline/internal/repository"
	"github.com/postline/postline/internal/repository/postgres/model"
)

type commentRepository struct {
	DB *gorm.DB
}

var _ domain.CommentRepository = (*commentRepository)(nil)

func NewCommentRepository(db *gorm.DB) *commentRepository {
	return &commentRepository{
		DB: db,
	}
}

func (c *commentRepository) Store(ctx context.Context, comment *domain.Comment) error {
	if comment.Content == "" {
		return domain.ErrBadParamInput
	}
	row := model.NewCommentFromDomain(comment)
	if err := c.DB.WithContext(ctx).Create(row).Error; err != nil {
		return err
	}
	comment.ID = row.ID
	comment.CreatedAt = row.CreatedAt
	if comment.Likes == nil {
		comment.Likes = []string{}
	}
	return nil
}

func (c *commentRepository) GetByID(ctx context.Context, id int64) (*domain.Comment, error) {
	var row model.Comment
	err := c.DB.WithContext(ctx).First(&row, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	res := row.ToDomain()
	if err := c.attachLikes(ctx, []*domain.Comment{&res}); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *commentRepository) FetchTopLevel(ctx context.Context, postID int64, limit, offset int) ([]*domain.Comment, error) {
	limit, offset = repository.CoercePage(limit, offset)

	var rows []model.Comment
	err := c.DB.WithContext(ctx).
		Where("post_id = ? AND parent_id IS NULL", postID).
		Order("created_at ASC, id ASC").
		Limit(limit).
		Offset(offset).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return c.toDomainWithLikes(ctx, rows)
}

func (c *commentRepository) FetchChildrenOf(ctx context.Context, parentIDs []int64) ([]*domain.Comment, error) {
	if len(parentIDs) == 0 {
		return []*domain.Comment{}, nil
	}

	var rows []model.Comment
	err := c.DB.WithContext(ctx).
		Where("parent_id IN ?", parentIDs).
		Order("created_at ASC, id ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return c.toDomainWithLikes(ctx, rows)
}

func (c *commentRepository) FetchAllByPost(ctx context.Context, postID int64) ([]*domain.Comment, error) {
	var rows []model.Comment
	err := c.DB.WithContext(ctx).
		Where("post_id = ?", postID).
		Order("created_at ASC, id ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return c.toDomainWithLikes(ctx, rows)
}

// DeleteSubtree removes the comment and every descendant reachable through
// parent_id chains in one statement, so a partial failure can never leave
// an orphaned partial subtree. Likes go with the rows via the FK cascade.
func (c *commentRepository) DeleteSubtree(ctx context.Context, id int64) error {
	return c.DB.WithContext(ctx).Exec(`
		WITH RECURSIVE subtree AS (
			SELECT id FROM comments WHERE id = ?
			UNION ALL
			SELECT ch.id FROM comments ch JOIN subtree s ON ch.parent_id = s.id
		)
		DELETE FROM comments WHERE id IN (SELECT id FROM subtree)`, id).Error
}

// ToggleLike tries the insert first; zero affected rows means the pair
// already existed and the toggle turns into a delete. Both statements are
// constraint-guarded, there is no read-modify-write window.
func (c *commentRepository) ToggleLike(ctx context.Context, commentID int64, userID string) (bool, error) {
	res := c.DB.WithContext(ctx).Exec(`
		INSERT INTO comment_likes (comment_id, user_id, created_at)
		VALUES (?, ?, NOW())
		ON CONFLICT (comment_id, user_id) DO NOTHING`, commentID, userID)
	if res.Error != nil {
		return false, res.Error
	}
	if res.RowsAffected > 0 {
		return true, nil
	}

	err := c.DB.WithContext(ctx).
		Exec(`DELETE FROM comment_likes WHERE comment_id = ? AND user_id = ?`, commentID, userID).Error
	return false, err
}

func (c *commentRepository) toDomainWithLikes(ctx context.Context, rows []model.Comment) ([]*domain.Comment, error) {
	res := make([]*domain.Comment, 0, len(rows))
	for i := range rows {
		dc := rows[i].ToDomain()
		res = append(res, &dc)
	}
	if err := c.attachLikes(ctx, res); err != nil {
		return nil, err
	}
	return res, nil
}

// attachLikes annotates each comment with its like set in a single
// batched query over the join relation.
func (c *commentRepository) attachLikes(ctx context.Context, comments []*domain.Comment) error {
	if len(comments) == 0 {
		return nil
	}
	ids := make([]int64, len(comments))
	for i, cm := range comments {
		ids[i] = cm.ID
	}

	var likes []model.CommentLike
	err := c.DB.WithContext(ctx).
		Where("comment_id IN ?", ids).
		Order("created_at ASC").
		Find(&likes).Error
	if err != nil {
		return err
	}

	likeMap := make(map[int64][]string, len(comments))
	for _, l := range likes {
		likeMap[l.CommentID] = append(likeMap[l.CommentID], l.UserID)
	}
	for _, cm := range comments {
		if set, ok := likeMap[cm.ID]; ok {
			cm.Likes = set
		} else {
			cm.Likes = []string{}
		}
	}
	return nil
}
