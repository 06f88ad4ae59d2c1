package websocket

import (
	"encoding/json"
	"testing"
	"time"

	"interview-platform-be/internal/constant"
	"interview-platform-be/internal/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHub() *Hub {
	return NewHub(nil, logger.NewIsolatedLogger("/tmp/hub_test.log"))
}

func newTestClient(h *Hub, roomId, role string) *Client {
	return &Client{
		Hub:    h,
		RoomID: roomId,
		Role:   role,
		Send:   make(chan []byte, 16),
	}
}

func recvEvent(t *testing.T, c *Client) RoomEvent {
	t.Helper()
	select {
	case raw := <-c.Send:
		var ev RoomEvent
		require.NoError(t, json.Unmarshal(raw, &ev))
		return ev
	case <-time.After(100 * time.Millisecond):
		t.Fatal("expected an event, got none")
		return RoomEvent{}
	}
}

func assertNoEvent(t *testing.T, c *Client) {
	t.Helper()
	select {
	case raw, ok := <-c.Send:
		if ok {
			t.Fatalf("expected no event, got %s", raw)
		}
	case <-time.After(50 * time.Millisecond):
	}
}

func TestNavigateExcludesSender(t *testing.T) {
	h := newTestHub()
	interviewer := newTestClient(h, "room-1", constant.RoleInterviewer)
	interviewee := newTestClient(h, "room-1", constant.RoleInterviewee)
	h.attach(interviewer)
	h.attach(interviewee)

	h.BroadcastNavigate("room-1", "problem-2", interviewer)

	ev := recvEvent(t, interviewee)
	assert.Equal(t, constant.EventNavigate, ev.Type)
	assert.Equal(t, "problem-2", ev.Key)

	assertNoEvent(t, interviewer)
}

func TestNavigateIsNotReplayedToLateSubscriber(t *testing.T) {
	h := newTestHub()
	interviewer := newTestClient(h, "room-1", constant.RoleInterviewer)
	h.attach(interviewer)

	// Published while nobody else is attached: delivered to no one.
	h.BroadcastNavigate("room-1", "problem-3", interviewer)

	// A subscriber arriving afterwards must not receive the earlier event.
	interviewee := newTestClient(h, "room-1", constant.RoleInterviewee)
	h.attach(interviewee)
	assertNoEvent(t, interviewee)
}

func TestNavigateStaysWithinRoom(t *testing.T) {
	h := newTestHub()
	interviewer := newTestClient(h, "room-1", constant.RoleInterviewer)
	other := newTestClient(h, "room-2", constant.RoleInterviewee)
	h.attach(interviewer)
	h.attach(other)

	h.BroadcastNavigate("room-1", "resume", interviewer)
	assertNoEvent(t, other)
}

func TestCloseRoomDeliversClosedAndIsIdempotent(t *testing.T) {
	h := newTestHub()
	interviewer := newTestClient(h, "room-1", constant.RoleInterviewer)
	interviewee := newTestClient(h, "room-1", constant.RoleInterviewee)
	h.attach(interviewer)
	h.attach(interviewee)

	h.CloseRoom("room-1")

	assert.Equal(t, constant.EventClosed, recvEvent(t, interviewee).Type)
	assert.Equal(t, constant.EventClosed, recvEvent(t, interviewer).Type)

	// Channels are closed; the seats are gone.
	_, ok := <-interviewee.Send
	assert.False(t, ok)

	// Second close is a no-op: nothing blows up, no duplicate delivery.
	h.CloseRoom("room-1")
}

func TestReconnectReplacesSeat(t *testing.T) {
	h := newTestHub()
	stale := newTestClient(h, "room-1", constant.RoleInterviewee)
	h.attach(stale)

	fresh := newTestClient(h, "room-1", constant.RoleInterviewee)
	h.attach(fresh)

	// The stale connection's channel was closed by the replacement.
	_, ok := <-stale.Send
	assert.False(t, ok)

	interviewer := newTestClient(h, "room-1", constant.RoleInterviewer)
	h.attach(interviewer)
	h.BroadcastNavigate("room-1", "overview", interviewer)
	assert.Equal(t, "overview", recvEvent(t, fresh).Key)
}

type presenceRecorder struct {
	joined chan string
}

func (p *presenceRecorder) OnIntervieweeJoined(roomId string) {
	p.joined <- roomId
}

func TestIntervieweeAttachNotifiesPresence(t *testing.T) {
	h := newTestHub()
	rec := &presenceRecorder{joined: make(chan string, 1)}
	h.SetPresenceListener(rec)

	h.attach(newTestClient(h, "room-9", constant.RoleInterviewee))

	select {
	case roomId := <-rec.joined:
		assert.Equal(t, "room-9", roomId)
	case <-time.After(200 * time.Millisecond):
		t.Fatal("presence listener was not notified")
	}

	// An interviewer attach does not fire the interviewee callback.
	h.attach(newTestClient(h, "room-9", constant.RoleInterviewer))
	select {
	case <-rec.joined:
		t.Fatal("unexpected presence notification for interviewer")
	case <-time.After(50 * time.Millisecond):
	}
}
