package service

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"interview-platform-be/internal/constant"
	"interview-platform-be/internal/dto"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingMailer struct {
	mu      sync.Mutex
	sent    []sentResult
	digests []sentDigest
	done    chan struct{}
	want    int
}

type sentResult struct {
	email    string
	accepted bool
}

type sentDigest struct {
	email    string
	accepted int
	denied   int
}

func (m *recordingMailer) SendResult(toEmail, fullName string, accepted bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, sentResult{email: toEmail, accepted: accepted})
	if len(m.sent) == m.want {
		close(m.done)
	}
	return nil
}

func (m *recordingMailer) SendFinalizationDigest(toEmail, fullName string, accepted, denied int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.digests = append(m.digests, sentDigest{email: toEmail, accepted: accepted, denied: denied})
	return nil
}

func TestConsumerDeliversResultEmails(t *testing.T) {
	state := newFakeState()
	accepted := addCandidate(state, map[string]bool{"v1": true, "v2": true, "v3": true}, "")
	denied := addCandidate(state, map[string]bool{"v1": false, "v2": false}, "not this cycle")

	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NopLogger{})
	mailer := &recordingMailer{done: make(chan struct{}), want: 2}

	consumer := NewConsumerService(pubSub, constant.FinalizationReportTopic, newFakeFactory(state), mailer, nil)
	require.NoError(t, consumer.Consume(context.Background()))

	report := dto.FinalizationReport{
		Accepted: []string{accepted.String()},
		Denied:   []string{denied.String()},
	}
	payload, err := json.Marshal(report)
	require.NoError(t, err)

	publisher := NewPublisherService(constant.FinalizationReportTopic, pubSub)
	require.NoError(t, publisher.Publish(context.Background(), payload))

	select {
	case <-mailer.done:
	case <-time.After(2 * time.Second):
		t.Fatal("report was not consumed in time")
	}

	mailer.mu.Lock()
	defer mailer.mu.Unlock()
	byEmail := map[string]bool{}
	for _, s := range mailer.sent {
		byEmail[s.email] = s.accepted
	}
	assert.Equal(t, true, byEmail[state.applications[accepted].Email])
	assert.Equal(t, false, byEmail[state.applications[denied].Email])
}

func TestConsumerAcksMalformedReport(t *testing.T) {
	state := newFakeState()
	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NopLogger{})
	mailer := &recordingMailer{done: make(chan struct{}), want: 1}

	consumer := NewConsumerService(pubSub, constant.FinalizationReportTopic, newFakeFactory(state), mailer, nil)
	require.NoError(t, consumer.Consume(context.Background()))

	publisher := NewPublisherService(constant.FinalizationReportTopic, pubSub)
	require.NoError(t, publisher.Publish(context.Background(), []byte("not json")))

	// A malformed message is dropped, never retried into the mailer.
	time.Sleep(100 * time.Millisecond)
	mailer.mu.Lock()
	defer mailer.mu.Unlock()
	assert.Empty(t, mailer.sent)
}
