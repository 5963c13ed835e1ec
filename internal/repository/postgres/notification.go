package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/postline/postline/domain"
	"github.com/postline/postline/internal/repository"
	"github.com/postline/postline/internal/repository/postgres/model"
)

type notificationRepository struct {
	DB *gorm.DB
}

var _ domain.NotificationRepository = (*notificationRepository)(nil)

func NewNotificationRepository(db *gorm.DB) *notificationRepository {
	return &notificationRepository{
		DB: db,
	}
}

func (n *notificationRepository) StoreBatch(ctx context.Context, ns []domain.Notification) error {
	if len(ns) == 0 {
		return nil
	}
	rows := make([]model.Notification, len(ns))
	for i := range ns {
		rows[i] = model.NewNotificationFromDomain(ns[i])
	}
	return n.DB.WithContext(ctx).Create(&rows).Error
}

func (n *notificationRepository) FetchByUser(ctx context.Context, userID string, limit, offset int) ([]domain.Notification, error) {
	limit, offset = repository.CoercePage(limit, offset)

	var rows []model.Notification
	err := n.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Offset(offset).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	res := make([]domain.Notification, len(rows))
	for i := range rows {
		res[i] = rows[i].ToDomain()
	}
	return res, nil
}
