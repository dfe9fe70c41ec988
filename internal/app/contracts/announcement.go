package contracts

import (
	"context"
	"embrew-service/internal/app/models"
)

type AnnouncementPublisher interface {
	PublishAnnouncement(ctx context.Context, announcement *models.Announcement) error
}
