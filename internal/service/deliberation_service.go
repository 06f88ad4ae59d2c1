package service

import (
	"context"
	"encoding/json"
	"time"

	"interview-platform-be/internal/apperr"
	"interview-platform-be/internal/auth"
	"interview-platform-be/internal/constant"
	"interview-platform-be/internal/dto"
	"interview-platform-be/internal/entity"
	"interview-platform-be/internal/pkg/logger"
	"interview-platform-be/internal/repository/specification"
	"interview-platform-be/internal/repository/unitofwork"
	"interview-platform-be/pkg/consensus"
	"interview-platform-be/pkg/events"
	pktNats "interview-platform-be/pkg/nats"

	"github.com/google/uuid"
)

type IDeliberationService interface {
	ListCandidates(ctx context.Context, principal *auth.Principal) ([]*dto.CandidateResponse, error)
	GetCandidate(ctx context.Context, id uuid.UUID, principal *auth.Principal) (*dto.CandidateResponse, error)
	CastVote(ctx context.Context, id uuid.UUID, req *dto.CastVoteRequest, principal *auth.Principal) error
	SaveFeedback(ctx context.Context, id uuid.UUID, req *dto.FeedbackRequest, principal *auth.Principal) error
	GetSettings(ctx context.Context, principal *auth.Principal) (*dto.SettingsResponse, error)
	UpdateSettings(ctx context.Context, req *dto.UpdateSettingsRequest, principal *auth.Principal) (*dto.SettingsResponse, error)
	Finalize(ctx context.Context, principal *auth.Principal) (*dto.FinalizationReport, error)
}

type deliberationService struct {
	uowFactory       unitofwork.RepositoryFactory
	locker           FinalizeLocker
	publisherService IPublisherService
	eventPublisher   *pktNats.Publisher
	logger           logger.ILogger
}

func NewDeliberationService(
	uowFactory unitofwork.RepositoryFactory,
	locker FinalizeLocker,
	publisherService IPublisherService,
	eventPublisher *pktNats.Publisher,
	log logger.ILogger,
) IDeliberationService {
	return &deliberationService{
		uowFactory:       uowFactory,
		locker:           locker,
		publisherService: publisherService,
		eventPublisher:   eventPublisher,
		logger:           log,
	}
}

// requireOpen enforces the deliberation gate: non-privileged voters may only
// view and vote while the cycle is open. Administrators pass regardless.
func (s *deliberationService) requireOpen(ctx context.Context, uow unitofwork.UnitOfWork, principal *auth.Principal) error {
	if principal.CanAdministrate() {
		return nil
	}
	settings, err := uow.SettingsRepository().Get(ctx)
	if err != nil {
		return err
	}
	if !settings.Open {
		return apperr.ErrDeliberationClosed
	}
	return nil
}

func (s *deliberationService) ListCandidates(ctx context.Context, principal *auth.Principal) ([]*dto.CandidateResponse, error) {
	if !principal.CanVote() {
		return nil, apperr.ErrForbidden
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := s.requireOpen(ctx, uow, principal); err != nil {
		return nil, err
	}

	apps, err := uow.ApplicationRepository().FindAll(ctx,
		specification.Interviewed{},
		specification.OrderBy{Field: "created_at"},
	)
	if err != nil {
		return nil, err
	}

	out := make([]*dto.CandidateResponse, 0, len(apps))
	for _, app := range apps {
		out = append(out, s.toCandidateResponse(app, principal))
	}
	return out, nil
}

func (s *deliberationService) GetCandidate(ctx context.Context, id uuid.UUID, principal *auth.Principal) (*dto.CandidateResponse, error) {
	if !principal.CanVote() {
		return nil, apperr.ErrForbidden
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := s.requireOpen(ctx, uow, principal); err != nil {
		return nil, err
	}

	app, err := uow.ApplicationRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil || app == nil {
		return nil, apperr.ErrCandidateNotFound
	}
	return s.toCandidateResponse(app, principal), nil
}

// CastVote records one voter's decision as an independent-field write on the
// ledger. Two voters voting at once never clobber each other; re-voting
// before finalization overwrites the voter's own key only.
func (s *deliberationService) CastVote(ctx context.Context, id uuid.UUID, req *dto.CastVoteRequest, principal *auth.Principal) error {
	if !principal.CanVote() {
		return apperr.ErrForbidden
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := s.requireOpen(ctx, uow, principal); err != nil {
		return err
	}

	return uow.ApplicationRepository().UpsertVote(ctx, id, principal.UserID, *req.Decision)
}

func (s *deliberationService) SaveFeedback(ctx context.Context, id uuid.UUID, req *dto.FeedbackRequest, principal *auth.Principal) error {
	if !principal.CanAdministrate() {
		return apperr.ErrForbidden
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.ApplicationRepository().SetFeedback(ctx, id, req.Feedback)
}

func (s *deliberationService) GetSettings(ctx context.Context, principal *auth.Principal) (*dto.SettingsResponse, error) {
	if !principal.CanVote() {
		return nil, apperr.ErrForbidden
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	settings, err := uow.SettingsRepository().Get(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.SettingsResponse{Open: settings.Open}, nil
}

// UpdateSettings writes the whole settings record under a version check. On a
// conflicting concurrent write it re-reads and retries a bounded number of
// times before surfacing the conflict.
func (s *deliberationService) UpdateSettings(ctx context.Context, req *dto.UpdateSettingsRequest, principal *auth.Principal) (*dto.SettingsResponse, error) {
	if !principal.CanAdministrate() {
		return nil, apperr.ErrForbidden
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	for attempt := 0; attempt < constant.CommitRetryLimit; attempt++ {
		settings, err := uow.SettingsRepository().Get(ctx)
		if err != nil {
			return nil, err
		}

		settings.Open = *req.Open
		err = uow.SettingsRepository().SaveWithVersion(ctx, settings)
		if err == nil {
			s.logger.Info("DeliberationService", "Deliberation settings updated", map[string]interface{}{
				"open":    settings.Open,
				"attempt": attempt + 1,
			})
			return &dto.SettingsResponse{Open: settings.Open}, nil
		}
		if err != apperr.ErrCommitConflict {
			return nil, err
		}
	}

	return nil, apperr.ErrCommitConflict
}

// Finalize commits outcomes for every interviewed candidate in one
// transaction, or for none of them. The pass is gated: if any candidate's
// ledger cannot satisfy the feedback rule, nothing is written and the caller
// gets the exact failing ids. A second pass after a committed one fails with
// ErrAlreadyFinalized.
func (s *deliberationService) Finalize(ctx context.Context, principal *auth.Principal) (*dto.FinalizationReport, error) {
	if !principal.CanAdministrate() {
		return nil, apperr.ErrForbidden
	}

	acquired, err := s.locker.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	if !acquired {
		return nil, apperr.ErrFinalizeInProgress
	}
	defer func() {
		if err := s.locker.Release(context.Background()); err != nil {
			s.logger.Warn("DeliberationService", "Failed to release finalize marker", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}()

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	apps, err := uow.ApplicationRepository().FindAllForUpdate(ctx, specification.Interviewed{})
	if err != nil {
		return nil, err
	}

	var failing []string
	for _, app := range apps {
		if app.Finalized {
			return nil, apperr.ErrAlreadyFinalized
		}
		if !consensus.FeedbackSatisfied(app.Votes, app.Feedback) {
			failing = append(failing, app.Id.String())
		}
	}
	if len(failing) > 0 {
		return nil, &apperr.GateFailure{CandidateIDs: failing}
	}

	report := &dto.FinalizationReport{Accepted: []string{}, Denied: []string{}}
	for _, app := range apps {
		outcome := consensus.ComputeOutcome(app.Votes)
		if err := uow.ApplicationRepository().StageOutcome(ctx, app.Id, outcome.Accepted); err != nil {
			return nil, err
		}
		if outcome.Accepted {
			report.Accepted = append(report.Accepted, app.Id.String())
		} else {
			report.Denied = append(report.Denied, app.Id.String())
		}
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	s.logger.Info("DeliberationService", "Deliberation finalized", map[string]interface{}{
		"accepted": len(report.Accepted),
		"denied":   len(report.Denied),
	})

	s.publishReport(ctx, report)
	return report, nil
}

// publishReport hands the committed report to the notification pipeline.
// Delivery is best effort: the outcomes are already durable.
func (s *deliberationService) publishReport(ctx context.Context, report *dto.FinalizationReport) {
	payload, err := json.Marshal(report)
	if err != nil {
		s.logger.Error("DeliberationService", "Failed to marshal finalization report", map[string]interface{}{
			"error": err.Error(),
		})
		return
	}
	if s.publisherService != nil {
		if err := s.publisherService.Publish(ctx, payload); err != nil {
			s.logger.Warn("DeliberationService", "Failed to publish finalization report", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}

	if s.eventPublisher != nil {
		evt := events.BaseEvent{
			Type: constant.EventTypeDeliberationFinalized,
			Data: map[string]interface{}{
				"accepted": report.Accepted,
				"denied":   report.Denied,
			},
			OccurredAt: time.Now(),
		}
		if err := s.eventPublisher.Publish(ctx, evt); err != nil {
			s.logger.Warn("DeliberationService", "Failed to publish finalized event", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}
}

func (s *deliberationService) toCandidateResponse(app *entity.Application, principal *auth.Principal) *dto.CandidateResponse {
	resp := &dto.CandidateResponse{
		Id:          app.Id.String(),
		Name:        app.Name(),
		Responses:   app.Responses,
		Interviewed: app.Interviewed,
		Finalized:   app.Finalized,
	}

	// Pre-finalization, a voter only ever sees their own ballot.
	if decision, ok := app.Votes[principal.UserID]; ok {
		d := decision
		resp.OwnVote = &d
	}

	if principal.CanAdministrate() {
		resp.Feedback = app.Feedback
		resp.VoteCount = len(app.Votes)
	}

	if app.Finalized {
		resp.Accepted = app.Accepted
	}

	return resp
}
