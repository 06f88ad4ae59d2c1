package service

import (
	"context"
	"fmt"
	"time"

	"interview-platform-be/internal/apperr"
	"interview-platform-be/internal/auth"
	"interview-platform-be/internal/constant"
	"interview-platform-be/internal/dto"
	"interview-platform-be/internal/entity"
	"interview-platform-be/internal/pkg/logger"
	"interview-platform-be/internal/repository/memory"
	"interview-platform-be/internal/repository/specification"
	"interview-platform-be/internal/repository/unitofwork"
	"interview-platform-be/internal/websocket"
	"interview-platform-be/pkg/events"
	pktNats "interview-platform-be/pkg/nats"
)

// RoomTransport is the slice of the hub the room service drives. Implemented
// by websocket.Hub; faked in tests.
type RoomTransport interface {
	BroadcastNavigate(roomId, key string, sender *websocket.Client)
	CloseRoom(roomId string)
}

type IRoomService interface {
	CreateInterview(ctx context.Context, req *dto.CreateInterviewRequest, principal *auth.Principal) (*dto.RoomResponse, error)
	GetRoom(ctx context.Context, roomId string, principal *auth.Principal) (*dto.RoomResponse, error)

	// CheckJoinable is the pre-upgrade handshake gate: a room must exist and
	// must not be closed before a socket is accepted.
	CheckJoinable(ctx context.Context, roomId string) error

	SaveNotes(ctx context.Context, roomId string, req *dto.SaveNotesRequest, principal *auth.Principal) error
	CloseRoom(ctx context.Context, roomId string, req *dto.CloseRoomRequest, principal *auth.Principal) error

	Resume(ctx context.Context, clientId string) (*dto.ResumeResponse, error)
	SaveResume(ctx context.Context, clientId string, req *dto.SaveResumeRequest) error

	websocket.PresenceListener
	websocket.InboundListener
}

type roomService struct {
	uowFactory     unitofwork.RepositoryFactory
	transport      RoomTransport
	resumeRepo     *memory.ResumeRepository
	eventPublisher *pktNats.Publisher
	logger         logger.ILogger
}

func NewRoomService(
	uowFactory unitofwork.RepositoryFactory,
	transport RoomTransport,
	resumeRepo *memory.ResumeRepository,
	eventPublisher *pktNats.Publisher,
	log logger.ILogger,
) IRoomService {
	return &roomService{
		uowFactory:     uowFactory,
		transport:      transport,
		resumeRepo:     resumeRepo,
		eventPublisher: eventPublisher,
		logger:         log,
	}
}

func (s *roomService) CreateInterview(ctx context.Context, req *dto.CreateInterviewRequest, principal *auth.Principal) (*dto.RoomResponse, error) {
	if !principal.CanInterview() {
		return nil, apperr.ErrForbidden
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	if _, err := uow.LevelRepository().FindByName(ctx, req.Level); err != nil {
		return nil, apperr.ErrLevelNotFound
	}

	interview := &entity.Interview{
		Id:               req.Id,
		IntervieweeName:  req.IntervieweeName,
		IntervieweeEmail: req.IntervieweeEmail,
		Level:            req.Level,
		Phase:            constant.PhaseUnopened,
		NavigationKey:    constant.NavKeyOverview,
		Notes:            map[string]string{},
		CreatedAt:        time.Now(),
	}

	if err := uow.InterviewRepository().Create(ctx, interview); err != nil {
		return nil, err
	}

	s.logger.Info("RoomService", "Interview room created", map[string]interface{}{
		"room_id": req.Id,
		"level":   req.Level,
	})

	return s.buildRoomResponse(ctx, uow, interview, principal), nil
}

func (s *roomService) GetRoom(ctx context.Context, roomId string, principal *auth.Principal) (*dto.RoomResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	interview, err := uow.InterviewRepository().FindOne(ctx, specification.ByKey{Key: roomId})
	if err != nil || interview == nil {
		return nil, apperr.ErrRoomNotFound
	}
	if interview.Closed() {
		return nil, apperr.ErrRoomClosed
	}

	return s.buildRoomResponse(ctx, uow, interview, principal), nil
}

func (s *roomService) CheckJoinable(ctx context.Context, roomId string) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	interview, err := uow.InterviewRepository().FindOne(ctx, specification.ByKey{Key: roomId})
	if err != nil || interview == nil {
		return apperr.ErrRoomNotFound
	}
	if interview.Closed() {
		return apperr.ErrRoomClosed
	}
	return nil
}

// OnIntervieweeJoined moves a fresh room to the open phase the first time the
// interviewee's socket attaches. The transition is one-way; a reconnect into
// an already-open room changes nothing.
func (s *roomService) OnIntervieweeJoined(roomId string) {
	ctx := context.Background()
	uow := s.uowFactory.NewUnitOfWork(ctx)

	affected, err := uow.InterviewRepository().SetPhase(ctx, roomId, constant.PhaseUnopened, constant.PhaseOpen)
	if err != nil {
		s.logger.Error("RoomService", "Failed to open room on interviewee join", map[string]interface{}{
			"room_id": roomId,
			"error":   err.Error(),
		})
		return
	}
	if affected > 0 {
		s.logger.Info("RoomService", "Room opened", map[string]interface{}{"room_id": roomId})
	}
}

// OnNavigate handles a navigate frame from either participant. Interviewer
// moves steer the shared room: the focused key is persisted (last write wins)
// and fanned out to everyone else in the room. Interviewee moves are private
// browsing and only update that client's resume state.
func (s *roomService) OnNavigate(client *websocket.Client, key string) {
	ctx := context.Background()

	if client.ClientID != "" {
		s.resumeRepo.SaveRoom(client.ClientID, memory.RoomResume{
			RoomId:        client.RoomID,
			NavigationKey: key,
		})
	}

	if client.Role != constant.RoleInterviewer {
		return
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.InterviewRepository().SetNavigationKey(ctx, client.RoomID, key); err != nil {
		s.logger.Warn("RoomService", "Failed to persist navigation key", map[string]interface{}{
			"room_id": client.RoomID,
			"key":     key,
			"error":   err.Error(),
		})
	}

	s.transport.BroadcastNavigate(client.RoomID, key, client)
}

func (s *roomService) SaveNotes(ctx context.Context, roomId string, req *dto.SaveNotesRequest, principal *auth.Principal) error {
	if !principal.CanInterview() {
		return apperr.ErrForbidden
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	interview, err := uow.InterviewRepository().FindOne(ctx, specification.ByKey{Key: roomId})
	if err != nil || interview == nil {
		return apperr.ErrRoomNotFound
	}
	if interview.Closed() {
		return apperr.ErrRoomClosed
	}

	return uow.InterviewRepository().SaveSectionNotes(ctx, roomId, req.SectionKey, req.Notes)
}

// CloseRoom drives the terminal transition. The compare-and-set in the
// repository decides exactly one winner; everyone else gets an idempotent
// success with no second closed broadcast and no duplicate event.
func (s *roomService) CloseRoom(ctx context.Context, roomId string, req *dto.CloseRoomRequest, principal *auth.Principal) error {
	if !principal.CanInterview() {
		return apperr.ErrForbidden
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	interview, err := uow.InterviewRepository().FindOne(ctx, specification.ByKey{Key: roomId})
	if err != nil || interview == nil {
		return apperr.ErrRoomNotFound
	}

	affected, err := uow.InterviewRepository().Close(ctx, roomId, req.GeneralComments)
	if err != nil {
		return err
	}
	if affected == 0 {
		// Already closed; nothing more to announce.
		return nil
	}

	s.transport.CloseRoom(roomId)

	if s.eventPublisher != nil {
		evt := events.BaseEvent{
			Type: constant.EventTypeInterviewClosed,
			Data: map[string]interface{}{
				"room_id":          roomId,
				"interviewee_name": interview.IntervieweeName,
				"level":            interview.Level,
				"closed_by":        principal.UserID,
			},
			OccurredAt: time.Now(),
		}
		if err := s.eventPublisher.Publish(ctx, evt); err != nil {
			s.logger.Warn("RoomService", "Failed to publish interview closed event", map[string]interface{}{
				"room_id": roomId,
				"error":   err.Error(),
			})
		}
	}

	s.logger.Info("RoomService", "Room closed", map[string]interface{}{"room_id": roomId})
	return nil
}

// Resume returns identifier-only state; room phase is re-read from the live
// record so a client never rejoins a room that closed while it was away.
func (s *roomService) Resume(ctx context.Context, clientId string) (*dto.ResumeResponse, error) {
	resp := &dto.ResumeResponse{}
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if state, ok := s.resumeRepo.GetRoom(clientId); ok {
		interview, err := uow.InterviewRepository().FindOne(ctx, specification.ByKey{Key: state.RoomId})
		if err != nil || interview == nil || interview.Closed() {
			s.resumeRepo.DeleteRoom(clientId)
		} else {
			resp.Room = &dto.RoomResumeState{
				RoomId:        state.RoomId,
				NavigationKey: state.NavigationKey,
				Phase:         interview.Phase,
			}
		}
	}

	if state, ok := s.resumeRepo.GetDeliberation(clientId); ok {
		resp.Deliberation = &dto.DeliberationResumeState{CandidateId: state.CandidateId}
	}

	return resp, nil
}

func (s *roomService) SaveResume(ctx context.Context, clientId string, req *dto.SaveResumeRequest) error {
	if req.RoomId != "" {
		s.resumeRepo.SaveRoom(clientId, memory.RoomResume{
			RoomId:        req.RoomId,
			NavigationKey: req.NavigationKey,
		})
	}
	if req.CandidateId != "" {
		s.resumeRepo.SaveDeliberation(clientId, memory.DeliberationResume{CandidateId: req.CandidateId})
	}
	return nil
}

func (s *roomService) buildRoomResponse(ctx context.Context, uow unitofwork.UnitOfWork, interview *entity.Interview, principal *auth.Principal) *dto.RoomResponse {
	resp := &dto.RoomResponse{
		Id:              interview.Id,
		Phase:           interview.Phase,
		IntervieweeName: interview.IntervieweeName,
		Level:           interview.Level,
		NavigationKey:   interview.NavigationKey,
	}

	level, err := uow.LevelRepository().FindByName(ctx, interview.Level)
	if err == nil && level != nil {
		resp.Overview = level.Overview
		for i, q := range level.Questions {
			question := dto.RoomQuestion{
				Key:         fmt.Sprintf("problem-%d", i+1),
				Title:       q.Title,
				Description: q.Description,
				ImageURL:    q.ImageURL,
			}
			if principal.CanInterview() {
				question.Answer = q.Answer
			}
			resp.Questions = append(resp.Questions, question)
		}
	}

	if principal.CanInterview() {
		resp.Notes = interview.Notes
	}

	return resp
}
