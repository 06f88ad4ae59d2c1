package service

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"interview-platform-be/internal/constant"
	"interview-platform-be/internal/dto"
	"interview-platform-be/internal/pkg/mailer"
	"interview-platform-be/internal/repository/specification"
	"interview-platform-be/internal/repository/unitofwork"
	"interview-platform-be/pkg/events"
	pktNats "interview-platform-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService drains finalization reports off the in-process bus and
// notifies applicants of their committed outcome by email.
type consumerService struct {
	pubSub         *gochannel.GoChannel
	topicName      string
	uowFactory     unitofwork.RepositoryFactory
	emailService   mailer.IEmailService
	eventPublisher *pktNats.Publisher
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	uowFactory unitofwork.RepositoryFactory,
	emailService mailer.IEmailService,
	eventPublisher *pktNats.Publisher,
) IConsumerService {
	return &consumerService{
		pubSub:         pubSub,
		topicName:      topicName,
		uowFactory:     uowFactory,
		emailService:   emailService,
		eventPublisher: eventPublisher,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var report dto.FinalizationReport
	if err := json.Unmarshal(msg.Payload, &report); err != nil {
		log.Printf("[ERROR] Failed to unmarshal finalization report: %v", err)
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	log.Printf("[INFO] Processing finalization report: %d accepted, %d denied",
		len(report.Accepted), len(report.Denied))

	for _, id := range report.Accepted {
		cs.notifyApplicant(ctx, id, true)
	}
	for _, id := range report.Denied {
		cs.notifyApplicant(ctx, id, false)
	}

	msg.Ack()
}

func (cs *consumerService) notifyApplicant(ctx context.Context, id string, accepted bool) {
	appId, err := uuid.Parse(id)
	if err != nil {
		log.Printf("[ERROR] Invalid candidate id in report: %s", id)
		return
	}

	uow := cs.uowFactory.NewUnitOfWork(ctx)
	app, err := uow.ApplicationRepository().FindOne(ctx, specification.ByID{ID: appId})
	if err != nil || app == nil {
		log.Printf("[ERROR] Failed to load candidate %s: %v", id, err)
		return
	}
	if app.Email == "" {
		log.Printf("[WARN] Candidate %s has no email on file, skipping", id)
		return
	}

	if err := cs.emailService.SendResult(app.Email, app.Name(), accepted); err != nil {
		log.Printf("[ERROR] Failed to send result email to %s: %v", app.Email, err)
		return
	}

	if cs.eventPublisher != nil {
		evt := events.BaseEvent{
			Type: constant.EventTypeApplicantNotified,
			Data: map[string]interface{}{
				"candidate_id": id,
				"accepted":     accepted,
			},
			OccurredAt: time.Now(),
		}
		if err := cs.eventPublisher.Publish(ctx, evt); err != nil {
			log.Printf("[WARN] Failed to publish applicant notified event: %v", err)
		}
	}
}
