package service

import (
	"github.com/minio/minio-go/v7"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"missing-person-tracker/internal/config"
	"missing-person-tracker/internal/repository"
	"missing-person-tracker/internal/service/alert"
	"missing-person-tracker/internal/service/analytics"
	"missing-person-tracker/internal/service/auth"
	"missing-person-tracker/internal/service/comment"
	"missing-person-tracker/internal/service/email"
	"missing-person-tracker/internal/service/geocode"
	"missing-person-tracker/internal/service/location"
	"missing-person-tracker/internal/service/media"
	"missing-person-tracker/internal/service/missingperson"
	"missing-person-tracker/internal/service/notification"
	"missing-person-tracker/internal/service/sms"
)

type Services struct {
	Auth          auth.Service
	MissingPerson missingperson.Service
	Comment       comment.Service
	Notification  notification.Service
	Location      location.Service
	Analytics     analytics.Service
	Email         email.Service
	Media         media.Service
}

func NewServices(repos *repository.Repositories, redis *redis.Client, minioClient *minio.Client, cfg *config.Config) *Services {
	emailService := email.NewService(cfg)
	authService := auth.NewService(repos.User, emailService, cfg)
	notificationService := notification.NewService(repos.Notification, repos.User)
	analyticsService := analytics.NewService(repos.Analytics, redis)
	mediaService := media.NewService(minioClient, cfg)

	geocoder, err := geocode.NewService(cfg)
	if err != nil {
		logrus.WithError(err).Warn("geocoding disabled")
	}

	missingPersonService := missingperson.NewService(repos.MissingPerson, repos.StatusUpdate, missingperson.Deps{
		Notifications: notificationService,
		Analytics:     analyticsService,
		Email:         emailService,
		SMS:           sms.NewService(cfg),
		Alerts:        alert.NewService(cfg),
		Geocoder:      geocoder,
		Media:         mediaService,
	})

	commentService := comment.NewService(repos.Comment, repos.MissingPerson)
	commentService.SetNotificationService(notificationService)

	locationService := location.NewService(repos.Location, redis)

	return &Services{
		Auth:          authService,
		MissingPerson: missingPersonService,
		Comment:       commentService,
		Notification:  notificationService,
		Location:      locationService,
		Analytics:     analyticsService,
		Email:         emailService,
		Media:         mediaService,
	}
}
