package handler

import "missing-person-tracker/internal/service"

type Handlers struct {
	Health        *HealthHandler
	Auth          *AuthHandler
	MissingPerson *MissingPersonHandler
	Comment       *CommentHandler
	Notification  *NotificationHandler
	Location      *LocationHandler
	Analytics     *AnalyticsHandler
}

func NewHandlers(services *service.Services, db Pinger) *Handlers {
	return &Handlers{
		Health:        NewHealthHandler(db),
		Auth:          NewAuthHandler(services.Auth),
		MissingPerson: NewMissingPersonHandler(services.MissingPerson),
		Comment:       NewCommentHandler(services.Comment),
		Notification:  NewNotificationHandler(services.Notification),
		Location:      NewLocationHandler(services.Location),
		Analytics:     NewAnalyticsHandler(services.Analytics),
	}
}
