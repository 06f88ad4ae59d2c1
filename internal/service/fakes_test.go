package service

import (
	"context"
	"sync"

	"interview-platform-be/internal/apperr"
	"interview-platform-be/internal/constant"
	"interview-platform-be/internal/entity"
	"interview-platform-be/internal/repository/contract"
	"interview-platform-be/internal/repository/specification"
	"interview-platform-be/internal/repository/unitofwork"
	"interview-platform-be/internal/websocket"

	"github.com/google/uuid"
)

type noopLogger struct{}

func (noopLogger) Debug(string, string, map[string]interface{}) {}
func (noopLogger) Info(string, string, map[string]interface{})  {}
func (noopLogger) Warn(string, string, map[string]interface{})  {}
func (noopLogger) Error(string, string, map[string]interface{}) {}
func (noopLogger) Sync() error                                  { return nil }

// fakeState is the shared in-memory store behind every unit of work a test
// factory hands out, standing in for the database.
type fakeState struct {
	mu sync.Mutex

	interviews   map[string]*entity.Interview
	applications map[uuid.UUID]*entity.Application
	settings     *entity.DeliberationSettings
	levels       map[uuid.UUID]*entity.Level
	users        map[string]*entity.User

	// settingsConflicts forces that many version conflicts before a
	// settings save succeeds.
	settingsConflicts int
}

func newFakeState() *fakeState {
	return &fakeState{
		interviews:   map[string]*entity.Interview{},
		applications: map[uuid.UUID]*entity.Application{},
		settings:     &entity.DeliberationSettings{Open: true, Version: 1},
		levels:       map[uuid.UUID]*entity.Level{},
		users:        map[string]*entity.User{},
	}
}

type fakeFactory struct {
	state *fakeState
	last  *fakeUow
}

func newFakeFactory(state *fakeState) *fakeFactory {
	return &fakeFactory{state: state}
}

func (f *fakeFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	f.last = &fakeUow{state: f.state}
	return f.last
}

type fakeUow struct {
	state      *fakeState
	begun      bool
	committed  bool
	rolledBack bool
}

func (u *fakeUow) Begin(ctx context.Context) error {
	u.begun = true
	return nil
}

func (u *fakeUow) Commit() error {
	u.committed = true
	return nil
}

func (u *fakeUow) Rollback() error {
	if !u.committed {
		u.rolledBack = true
	}
	return nil
}

func (u *fakeUow) InterviewRepository() contract.InterviewRepository {
	return &fakeInterviewRepo{state: u.state}
}

func (u *fakeUow) ApplicationRepository() contract.ApplicationRepository {
	return &fakeApplicationRepo{state: u.state}
}

func (u *fakeUow) SettingsRepository() contract.SettingsRepository {
	return &fakeSettingsRepo{state: u.state}
}

func (u *fakeUow) UserRepository() contract.UserRepository {
	return &fakeUserRepo{state: u.state}
}

func (u *fakeUow) LevelRepository() contract.LevelRepository {
	return &fakeLevelRepo{state: u.state}
}

type fakeInterviewRepo struct {
	state *fakeState
}

func (r *fakeInterviewRepo) Create(ctx context.Context, interview *entity.Interview) error {
	r.state.mu.Lock()
	defer r.state.mu.Unlock()
	r.state.interviews[interview.Id] = interview
	return nil
}

func (r *fakeInterviewRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Interview, error) {
	r.state.mu.Lock()
	defer r.state.mu.Unlock()
	for _, spec := range specs {
		if byKey, ok := spec.(specification.ByKey); ok {
			if iv, ok := r.state.interviews[byKey.Key]; ok {
				copied := *iv
				return &copied, nil
			}
		}
	}
	return nil, apperr.ErrRoomNotFound
}

func (r *fakeInterviewRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Interview, error) {
	r.state.mu.Lock()
	defer r.state.mu.Unlock()
	out := make([]*entity.Interview, 0, len(r.state.interviews))
	for _, iv := range r.state.interviews {
		copied := *iv
		out = append(out, &copied)
	}
	return out, nil
}

func (r *fakeInterviewRepo) SetPhase(ctx context.Context, id, fromPhase, toPhase string) (int64, error) {
	r.state.mu.Lock()
	defer r.state.mu.Unlock()
	iv, ok := r.state.interviews[id]
	if !ok || iv.Phase != fromPhase {
		return 0, nil
	}
	iv.Phase = toPhase
	return 1, nil
}

func (r *fakeInterviewRepo) SetNavigationKey(ctx context.Context, id, key string) error {
	r.state.mu.Lock()
	defer r.state.mu.Unlock()
	if iv, ok := r.state.interviews[id]; ok {
		iv.NavigationKey = key
	}
	return nil
}

func (r *fakeInterviewRepo) SaveSectionNotes(ctx context.Context, id, sectionKey, notes string) error {
	r.state.mu.Lock()
	defer r.state.mu.Unlock()
	iv, ok := r.state.interviews[id]
	if !ok {
		return apperr.ErrRoomNotFound
	}
	if iv.Notes == nil {
		iv.Notes = map[string]string{}
	}
	iv.Notes[sectionKey] = notes
	return nil
}

func (r *fakeInterviewRepo) Close(ctx context.Context, id, generalComments string) (int64, error) {
	r.state.mu.Lock()
	defer r.state.mu.Unlock()
	iv, ok := r.state.interviews[id]
	if !ok || iv.Phase == constant.PhaseClosed {
		return 0, nil
	}
	iv.Phase = constant.PhaseClosed
	iv.GeneralComments = generalComments
	return 1, nil
}

type fakeApplicationRepo struct {
	state *fakeState
}

func (r *fakeApplicationRepo) Create(ctx context.Context, app *entity.Application) error {
	r.state.mu.Lock()
	defer r.state.mu.Unlock()
	r.state.applications[app.Id] = app
	return nil
}

func (r *fakeApplicationRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Application, error) {
	r.state.mu.Lock()
	defer r.state.mu.Unlock()
	for _, spec := range specs {
		if byID, ok := spec.(specification.ByID); ok {
			if app, ok := r.state.applications[byID.ID]; ok {
				return cloneApplication(app), nil
			}
		}
	}
	return nil, apperr.ErrCandidateNotFound
}

func (r *fakeApplicationRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Application, error) {
	r.state.mu.Lock()
	defer r.state.mu.Unlock()
	out := make([]*entity.Application, 0, len(r.state.applications))
	for _, app := range r.state.applications {
		out = append(out, cloneApplication(app))
	}
	return out, nil
}

func (r *fakeApplicationRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	r.state.mu.Lock()
	defer r.state.mu.Unlock()
	return int64(len(r.state.applications)), nil
}

func (r *fakeApplicationRepo) UpsertVote(ctx context.Context, id uuid.UUID, voterId string, decision bool) error {
	r.state.mu.Lock()
	defer r.state.mu.Unlock()
	app, ok := r.state.applications[id]
	if !ok || app.Finalized {
		return apperr.ErrCandidateNotFound
	}
	if app.Votes == nil {
		app.Votes = map[string]bool{}
	}
	app.Votes[voterId] = decision
	return nil
}

func (r *fakeApplicationRepo) SetFeedback(ctx context.Context, id uuid.UUID, feedback string) error {
	r.state.mu.Lock()
	defer r.state.mu.Unlock()
	app, ok := r.state.applications[id]
	if !ok {
		return apperr.ErrCandidateNotFound
	}
	app.Feedback = feedback
	return nil
}

func (r *fakeApplicationRepo) FindAllForUpdate(ctx context.Context, specs ...specification.Specification) ([]*entity.Application, error) {
	return r.FindAll(ctx, specs...)
}

func (r *fakeApplicationRepo) StageOutcome(ctx context.Context, id uuid.UUID, accepted bool) error {
	r.state.mu.Lock()
	defer r.state.mu.Unlock()
	app, ok := r.state.applications[id]
	if !ok {
		return apperr.ErrCandidateNotFound
	}
	decision := accepted
	app.Accepted = &decision
	app.Finalized = true
	app.Version++
	return nil
}

func (r *fakeApplicationRepo) SaveWithVersion(ctx context.Context, in *entity.Application) error {
	r.state.mu.Lock()
	defer r.state.mu.Unlock()
	stored, ok := r.state.applications[in.Id]
	if !ok || stored.Version != in.Version {
		return apperr.ErrCommitConflict
	}
	copied := *in
	copied.Version++
	r.state.applications[in.Id] = &copied
	return nil
}

func cloneApplication(app *entity.Application) *entity.Application {
	copied := *app
	copied.Votes = make(map[string]bool, len(app.Votes))
	for k, v := range app.Votes {
		copied.Votes[k] = v
	}
	return &copied
}

type fakeSettingsRepo struct {
	state *fakeState
}

func (r *fakeSettingsRepo) Get(ctx context.Context) (*entity.DeliberationSettings, error) {
	r.state.mu.Lock()
	defer r.state.mu.Unlock()
	copied := *r.state.settings
	return &copied, nil
}

func (r *fakeSettingsRepo) SaveWithVersion(ctx context.Context, settings *entity.DeliberationSettings) error {
	r.state.mu.Lock()
	defer r.state.mu.Unlock()
	if r.state.settingsConflicts > 0 {
		r.state.settingsConflicts--
		r.state.settings.Version++
		return apperr.ErrCommitConflict
	}
	if settings.Version != r.state.settings.Version {
		return apperr.ErrCommitConflict
	}
	r.state.settings.Open = settings.Open
	r.state.settings.Version++
	return nil
}

func (r *fakeSettingsRepo) EnsureDefault(ctx context.Context) error {
	return nil
}

type fakeUserRepo struct {
	state *fakeState
}

func (r *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	r.state.mu.Lock()
	defer r.state.mu.Unlock()
	r.state.users[user.Email] = user
	return nil
}

func (r *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	r.state.mu.Lock()
	defer r.state.mu.Unlock()
	if u, ok := r.state.users[email]; ok {
		copied := *u
		return &copied, nil
	}
	return nil, apperr.ErrUnauthorized
}

func (r *fakeUserRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.User, error) {
	return nil, apperr.ErrUnauthorized
}

func (r *fakeUserRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.User, error) {
	r.state.mu.Lock()
	defer r.state.mu.Unlock()
	out := make([]*entity.User, 0, len(r.state.users))
	for _, u := range r.state.users {
		match := true
		for _, spec := range specs {
			if hasRole, ok := spec.(specification.HasRole); ok && !u.Roles[hasRole.Role] {
				match = false
			}
		}
		if match {
			copied := *u
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (r *fakeUserRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	r.state.mu.Lock()
	defer r.state.mu.Unlock()
	return int64(len(r.state.users)), nil
}

type fakeLevelRepo struct {
	state *fakeState
}

func (r *fakeLevelRepo) Create(ctx context.Context, level *entity.Level) error {
	r.state.mu.Lock()
	defer r.state.mu.Unlock()
	r.state.levels[level.Id] = level
	return nil
}

func (r *fakeLevelRepo) Update(ctx context.Context, level *entity.Level) error {
	r.state.mu.Lock()
	defer r.state.mu.Unlock()
	r.state.levels[level.Id] = level
	return nil
}

func (r *fakeLevelRepo) Delete(ctx context.Context, id uuid.UUID) error {
	r.state.mu.Lock()
	defer r.state.mu.Unlock()
	delete(r.state.levels, id)
	return nil
}

func (r *fakeLevelRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Level, error) {
	r.state.mu.Lock()
	defer r.state.mu.Unlock()
	for _, spec := range specs {
		if byID, ok := spec.(specification.ByID); ok {
			if level, ok := r.state.levels[byID.ID]; ok {
				copied := *level
				return &copied, nil
			}
		}
	}
	return nil, apperr.ErrLevelNotFound
}

func (r *fakeLevelRepo) FindByName(ctx context.Context, name string) (*entity.Level, error) {
	r.state.mu.Lock()
	defer r.state.mu.Unlock()
	for _, level := range r.state.levels {
		if level.Name == name {
			copied := *level
			return &copied, nil
		}
	}
	return nil, apperr.ErrLevelNotFound
}

func (r *fakeLevelRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Level, error) {
	r.state.mu.Lock()
	defer r.state.mu.Unlock()
	out := make([]*entity.Level, 0, len(r.state.levels))
	for _, level := range r.state.levels {
		copied := *level
		out = append(out, &copied)
	}
	return out, nil
}

func (r *fakeLevelRepo) AddQuestion(ctx context.Context, question *entity.Question) error {
	r.state.mu.Lock()
	defer r.state.mu.Unlock()
	if level, ok := r.state.levels[question.LevelId]; ok {
		level.Questions = append(level.Questions, *question)
	}
	return nil
}

func (r *fakeLevelRepo) UpdateQuestion(ctx context.Context, question *entity.Question) error {
	return nil
}

func (r *fakeLevelRepo) DeleteQuestion(ctx context.Context, id uuid.UUID) error {
	return nil
}

// fakeTransport records hub interactions.
type fakeTransport struct {
	mu          sync.Mutex
	navigations []string
	closedRooms []string
}

func (t *fakeTransport) BroadcastNavigate(roomId, key string, sender *websocket.Client) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.navigations = append(t.navigations, roomId+":"+key)
}

func (t *fakeTransport) CloseRoom(roomId string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.closedRooms = append(t.closedRooms, roomId)
}

type fakeLocker struct {
	mu       sync.Mutex
	held     bool
	acquires int
	releases int
}

func (l *fakeLocker) Acquire(ctx context.Context) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.acquires++
	if l.held {
		return false, nil
	}
	l.held = true
	return true, nil
}

func (l *fakeLocker) Release(ctx context.Context) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.releases++
	l.held = false
	return nil
}

type fakePublisher struct {
	mu       sync.Mutex
	payloads [][]byte
}

func (p *fakePublisher) Publish(ctx context.Context, payload []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.payloads = append(p.payloads, payload)
	return nil
}
