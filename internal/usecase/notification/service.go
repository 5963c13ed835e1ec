package notification

import (
	"context"

	"github.com/postline/postline/domain"
)

type Service struct {
	notificationRepo domain.NotificationRepository
}

var _ domain.NotificationUsecase = (*Service)(nil)

func NewService(notificationRepo domain.NotificationRepository) *Service {
	return &Service{
		notificationRepo: notificationRepo,
	}
}

func (s *Service) FetchByUser(ctx context.Context, userID string, limit, offset int) ([]domain.Notification, error) {
	return s.notificationRepo.FetchByUser(ctx, userID, limit, offset)
}
