package service

import (
	"context"
	"fmt"
	"strings"

	"interview-platform-be/internal/apperr"
	"interview-platform-be/internal/auth"
	"interview-platform-be/internal/constant"
	"interview-platform-be/internal/pkg/logger"
	"interview-platform-be/internal/pkg/mailer"
	"interview-platform-be/internal/repository/specification"
	"interview-platform-be/internal/repository/unitofwork"
	"interview-platform-be/pkg/events"
	pktNats "interview-platform-be/pkg/nats"
)

// NotificationService is the durable event-bus worker. It survives restarts
// via a JetStream durable consumer, so a finalization committed while the
// worker was down is still delivered to administrators.
type NotificationService struct {
	uowFactory   unitofwork.RepositoryFactory
	subscriber   *pktNats.Subscriber
	emailService mailer.IEmailService
	logger       logger.ILogger
}

func NewNotificationService(
	uowFactory unitofwork.RepositoryFactory,
	subscriber *pktNats.Subscriber,
	emailService mailer.IEmailService,
	log logger.ILogger,
) *NotificationService {
	return &NotificationService{
		uowFactory:   uowFactory,
		subscriber:   subscriber,
		emailService: emailService,
		logger:       log,
	}
}

// Start begins listening to the event bus with a durable consumer.
func (s *NotificationService) Start() error {
	if s.subscriber == nil {
		return apperr.ErrTransportUnavailable
	}
	if err := s.subscriber.Subscribe("events.>", "notification-worker", s.handleEvent); err != nil {
		s.logger.Error("NotificationService", "Failed to start notification worker", map[string]interface{}{
			"error": err.Error(),
		})
		return fmt.Errorf("%w: %v", apperr.ErrTransportUnavailable, err)
	}
	s.logger.Info("NotificationService", "Notification worker started, listening to events.>", nil)
	return nil
}

func (s *NotificationService) handleEvent(ctx context.Context, event events.Event) error {
	// NATS subjects carry the stream prefix.
	typeCode := strings.TrimPrefix(event.EventType(), "events.")

	switch typeCode {
	case constant.EventTypeDeliberationFinalized:
		return s.notifyAdministrators(ctx, event)
	case constant.EventTypeInterviewClosed, constant.EventTypeApplicantNotified:
		s.logger.Info("NotificationService", "Domain event recorded", map[string]interface{}{
			"type":    typeCode,
			"payload": event.Payload(),
		})
		return nil
	default:
		s.logger.Warn("NotificationService", "Unhandled event type", map[string]interface{}{"type": typeCode})
		return nil
	}
}

// notifyAdministrators mails every administrator a digest of the committed
// round. Returning an error leaves the message unacked so the bus retries.
func (s *NotificationService) notifyAdministrators(ctx context.Context, event events.Event) error {
	payload := event.Payload()
	accepted := countList(payload["accepted"])
	denied := countList(payload["denied"])

	uow := s.uowFactory.NewUnitOfWork(ctx)
	userRepo := uow.UserRepository()

	notified := make(map[string]bool)
	for _, role := range auth.AdministratorRoles() {
		admins, err := userRepo.FindAll(ctx, specification.HasRole{Role: role})
		if err != nil {
			s.logger.Error("NotificationService", "Failed to resolve administrators", map[string]interface{}{
				"role":  role,
				"error": err.Error(),
			})
			return err
		}
		for _, admin := range admins {
			if admin.Email == "" || notified[admin.Email] {
				continue
			}
			notified[admin.Email] = true
			if err := s.emailService.SendFinalizationDigest(admin.Email, admin.FullName, accepted, denied); err != nil {
				s.logger.Error("NotificationService", "Failed to send digest", map[string]interface{}{
					"email": admin.Email,
					"error": err.Error(),
				})
				// Continue: a partial digest round should not requeue the event
				// and double-mail the administrators already served.
			}
		}
	}

	s.logger.Info("NotificationService", "Finalization digest sent", map[string]interface{}{
		"recipients": len(notified),
		"accepted":   accepted,
		"denied":     denied,
	})
	return nil
}

// countList sizes a payload array that may arrive as the published []string
// or, after a bus round-trip, as a decoded []interface{}.
func countList(v interface{}) int {
	switch list := v.(type) {
	case []string:
		return len(list)
	case []interface{}:
		return len(list)
	default:
		return 0
	}
}
