package memory

import (
	"time"

	"interview-platform-be/internal/constant"

	"github.com/patrickmn/go-cache"
)

// RoomResume is the identifier-only resume state for a client's last room
// session. Live room state is always re-fetched on resume; nothing
// denormalized is cached here.
type RoomResume struct {
	RoomId        string `json:"room_id"`
	NavigationKey string `json:"navigation_key"`
}

// DeliberationResume remembers which candidate a voter last had selected.
type DeliberationResume struct {
	CandidateId string `json:"candidate_id"`
}

// ResumeRepository is the session resume store: a small expiring key-value
// cache keyed by client id, consulted at session start after a reload.
type ResumeRepository struct {
	cache *cache.Cache
}

func NewResumeRepository() *ResumeRepository {
	// Resume entries outlive a page reload but not a workday.
	c := cache.New(12*time.Hour, 30*time.Minute)
	return &ResumeRepository{cache: c}
}

func roomKey(clientId string) string { return constant.ResumeRoomNavigation + ":" + clientId }

func deliberationKey(clientId string) string {
	return constant.ResumeDeliberationSelection + ":" + clientId
}

func (r *ResumeRepository) SaveRoom(clientId string, state RoomResume) {
	r.cache.Set(roomKey(clientId), state, cache.DefaultExpiration)
}

func (r *ResumeRepository) GetRoom(clientId string) (RoomResume, bool) {
	if x, found := r.cache.Get(roomKey(clientId)); found {
		return x.(RoomResume), true
	}
	return RoomResume{}, false
}

func (r *ResumeRepository) DeleteRoom(clientId string) {
	r.cache.Delete(roomKey(clientId))
}

func (r *ResumeRepository) SaveDeliberation(clientId string, state DeliberationResume) {
	r.cache.Set(deliberationKey(clientId), state, cache.DefaultExpiration)
}

func (r *ResumeRepository) GetDeliberation(clientId string) (DeliberationResume, bool) {
	if x, found := r.cache.Get(deliberationKey(clientId)); found {
		return x.(DeliberationResume), true
	}
	return DeliberationResume{}, false
}
