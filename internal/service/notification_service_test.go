package service

import (
	"context"
	"testing"
	"time"

	"interview-platform-be/internal/apperr"
	"interview-platform-be/internal/constant"
	"interview-platform-be/internal/entity"
	"interview-platform-be/pkg/events"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func addUser(state *fakeState, email, fullName string, roles map[string]bool) {
	state.mu.Lock()
	defer state.mu.Unlock()
	state.users[email] = &entity.User{
		Id:       uuid.New(),
		Email:    email,
		FullName: fullName,
		Roles:    roles,
	}
}

func finalizedEvent(accepted, denied []interface{}) events.BaseEvent {
	return events.BaseEvent{
		// Subjects arrive with the stream prefix attached.
		Type: "events." + constant.EventTypeDeliberationFinalized,
		Data: map[string]interface{}{
			"accepted": accepted,
			"denied":   denied,
		},
		OccurredAt: time.Now(),
	}
}

func TestNotificationWorkerRequiresTransport(t *testing.T) {
	svc := NewNotificationService(newFakeFactory(newFakeState()), nil, &recordingMailer{}, noopLogger{})

	err := svc.Start()
	require.ErrorIs(t, err, apperr.ErrTransportUnavailable)
}

func TestFinalizedEventMailsAdministratorDigest(t *testing.T) {
	state := newFakeState()
	addUser(state, "chair@example.com", "Board Chair", map[string]bool{"eboard": true})
	addUser(state, "root@example.com", "Root Admin", map[string]bool{"admin": true})
	addUser(state, "both@example.com", "Double Hat", map[string]bool{"eboard": true, "admin": true})
	addUser(state, "voter@example.com", "Plain Member", map[string]bool{"member": true})

	emails := &recordingMailer{}
	svc := NewNotificationService(newFakeFactory(state), nil, emails, noopLogger{})

	evt := finalizedEvent([]interface{}{"a", "b"}, []interface{}{"c"})
	require.NoError(t, svc.handleEvent(context.Background(), evt))

	require.Len(t, emails.digests, 3)
	recipients := make(map[string]sentDigest)
	for _, d := range emails.digests {
		recipients[d.email] = d
	}
	assert.Contains(t, recipients, "chair@example.com")
	assert.Contains(t, recipients, "root@example.com")
	assert.Contains(t, recipients, "both@example.com")
	assert.NotContains(t, recipients, "voter@example.com")
	for _, d := range recipients {
		assert.Equal(t, 2, d.accepted)
		assert.Equal(t, 1, d.denied)
	}
}

func TestNonDigestEventsAreAcknowledged(t *testing.T) {
	emails := &recordingMailer{}
	svc := NewNotificationService(newFakeFactory(newFakeState()), nil, emails, noopLogger{})

	closed := events.BaseEvent{
		Type:       "events." + constant.EventTypeInterviewClosed,
		Data:       map[string]interface{}{"room_id": "room-1"},
		OccurredAt: time.Now(),
	}
	require.NoError(t, svc.handleEvent(context.Background(), closed))

	unknown := events.BaseEvent{Type: "events.SOMETHING_ELSE", OccurredAt: time.Now()}
	require.NoError(t, svc.handleEvent(context.Background(), unknown))

	assert.Empty(t, emails.digests)
	assert.Empty(t, emails.sent)
}
