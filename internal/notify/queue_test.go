package notify

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/splitledger/internal/metrics"
)

type collectingSender struct {
	mu   sync.Mutex
	got  []Notification
	fail bool
}

func (s *collectingSender) Send(_ context.Context, n Notification) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.got = append(s.got, n)
	if s.fail {
		return errors.New("delivery failed")
	}
	return nil
}

func (s *collectingSender) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.got)
}

func TestQueue_DeliversNotifications(t *testing.T) {
	sender := &collectingSender{}
	q := NewQueue(sender, 16, 2, nil)
	require.NoError(t, q.Start())

	for i := 0; i < 5; i++ {
		q.Notify(context.Background(), Notification{PartyID: "bob", Kind: DebtProposed})
	}

	assert.Eventually(t, func() bool { return sender.count() == 5 }, time.Second, 10*time.Millisecond)
	require.NoError(t, q.Stop(context.Background()))

	for _, n := range sender.got {
		assert.False(t, n.CreatedAt.IsZero())
	}
}

func TestQueue_DropsWhenFull(t *testing.T) {
	sender := &collectingSender{}
	q := NewQueue(sender, 1, 1, nil)

	before := testutil.ToFloat64(metrics.NotificationsDropped)

	// Not started: the first fills the buffer, the second is dropped.
	q.Notify(context.Background(), Notification{PartyID: "bob", Kind: DebtAccepted})
	q.Notify(context.Background(), Notification{PartyID: "bob", Kind: DebtRejected})

	assert.Equal(t, before+1, testutil.ToFloat64(metrics.NotificationsDropped))

	require.NoError(t, q.Start())
	require.NoError(t, q.Stop(context.Background()))
	require.Equal(t, 1, sender.count())
	assert.Equal(t, DebtAccepted, sender.got[0].Kind)
}

func TestQueue_StopDrainsAndRefuses(t *testing.T) {
	sender := &collectingSender{fail: true}
	q := NewQueue(sender, 8, 1, nil)

	for i := 0; i < 3; i++ {
		q.Notify(context.Background(), Notification{PartyID: "bob", Kind: InstallmentPaid})
	}
	require.NoError(t, q.Start())
	require.NoError(t, q.Stop(context.Background()))
	assert.Equal(t, 3, sender.count(), "send failures are logged, not retried")

	before := testutil.ToFloat64(metrics.NotificationsDropped)
	q.Notify(context.Background(), Notification{PartyID: "bob", Kind: InstallmentPaid})
	assert.Equal(t, before+1, testutil.ToFloat64(metrics.NotificationsDropped))
	assert.Error(t, q.Start())
}

func TestRecorder(t *testing.T) {
	var r Recorder
	r.Notify(context.Background(), Notification{PartyID: "alice", Kind: DebtProposed})
	r.Notify(context.Background(), Notification{PartyID: "bob", Kind: DebtAccepted})
	r.Notify(context.Background(), Notification{PartyID: "alice", Kind: InstallmentPaid})

	assert.Len(t, r.All(), 3)
	assert.Equal(t, []Kind{DebtProposed, InstallmentPaid}, r.Kinds("alice"))

	r.Reset()
	assert.Empty(t, r.All())
}
