package panelsync

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/marga120/mds-application-sub000/internal/config"
	"github.com/marga120/mds-application-sub000/internal/logger"
	pubsubMemory "github.com/marga120/mds-application-sub000/internal/pubsub/memory"
	"github.com/marga120/mds-application-sub000/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	mu      sync.Mutex
	updates []StatusUpdate
}

func (r *recorder) apply(update StatusUpdate) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.updates = append(r.updates, update)
}

func (r *recorder) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.updates)
}

func (r *recorder) last() StatusUpdate {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.updates[len(r.updates)-1]
}

func newTestSynchronizer(t *testing.T) *Synchronizer {
	log, err := logger.NewLogger(&config.Configuration{
		Logging: config.LoggingConfig{Level: types.LogLevelInfo},
	})
	require.NoError(t, err)

	syncer := NewSynchronizer(pubsubMemory.NewPubSub(log), log)
	require.NoError(t, syncer.Start(context.Background()))
	return syncer
}

func TestSynchronizer_BroadcastReachesEverySurface(t *testing.T) {
	syncer := newTestSynchronizer(t)

	tab := &recorder{}
	badge := &recorder{}
	selector := &recorder{}
	syncer.Register("tab-label", tab.apply)
	syncer.Register("color-badge", badge.apply)
	syncer.Register("status-selector", selector.apply)

	err := syncer.Broadcast(context.Background(), StatusUpdate{
		ApplicantID: "app-001",
		Status:      types.StatusWaitlist,
		ActorName:   "Test Reviewer",
	})
	require.NoError(t, err)

	for _, r := range []*recorder{tab, badge, selector} {
		assert.Eventually(t, func() bool { return r.count() == 1 }, 2*time.Second, 10*time.Millisecond)
		assert.Equal(t, "app-001", r.last().ApplicantID)
		assert.Equal(t, types.StatusWaitlist, r.last().Status)
	}
}

func TestSynchronizer_DeregisteredSurfaceSkipped(t *testing.T) {
	syncer := newTestSynchronizer(t)

	kept := &recorder{}
	dropped := &recorder{}
	syncer.Register("kept", kept.apply)
	syncer.Register("dropped", dropped.apply)
	syncer.Deregister("dropped")

	err := syncer.Broadcast(context.Background(), StatusUpdate{
		ApplicantID: "app-001",
		Status:      types.StatusDeclined,
	})
	require.NoError(t, err)

	assert.Eventually(t, func() bool { return kept.count() == 1 }, 2*time.Second, 10*time.Millisecond)
	assert.Equal(t, 0, dropped.count())
}

func TestSynchronizer_ReRegisterReplacesApply(t *testing.T) {
	syncer := newTestSynchronizer(t)

	stale := &recorder{}
	fresh := &recorder{}
	syncer.Register("tab-label", stale.apply)
	syncer.Register("tab-label", fresh.apply)

	err := syncer.Broadcast(context.Background(), StatusUpdate{
		ApplicantID: "app-001",
		Status:      types.StatusOfferAccepted,
	})
	require.NoError(t, err)

	assert.Eventually(t, func() bool { return fresh.count() == 1 }, 2*time.Second, 10*time.Millisecond)
	assert.Equal(t, 0, stale.count())
}

func TestSynchronizer_MalformedPayloadDropped(t *testing.T) {
	log, err := logger.NewLogger(&config.Configuration{
		Logging: config.LoggingConfig{Level: types.LogLevelInfo},
	})
	require.NoError(t, err)

	pubSub := pubsubMemory.NewPubSub(log)
	syncer := NewSynchronizer(pubSub, log)
	require.NoError(t, syncer.Start(context.Background()))

	r := &recorder{}
	syncer.Register("tab-label", r.apply)

	// A malformed message is dropped without stalling the subscription.
	malformed := message.NewMessage(types.GenerateUUID(), []byte("not json"))
	require.NoError(t, pubSub.Publish(context.Background(), TopicStatusChanged, malformed))

	require.NoError(t, syncer.Broadcast(context.Background(), StatusUpdate{
		ApplicantID: "app-001",
		Status:      types.StatusWaitlist,
	}))

	assert.Eventually(t, func() bool { return r.count() == 1 }, 2*time.Second, 10*time.Millisecond)
	assert.Equal(t, "app-001", r.last().ApplicantID)
}
