package panelsync

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/ThreeDotsLabs/watermill/message"
	ierr "github.com/marga120/mds-application-sub000/internal/errors"
	"github.com/marga120/mds-application-sub000/internal/logger"
	"github.com/marga120/mds-application-sub000/internal/pubsub"
	"github.com/marga120/mds-application-sub000/internal/types"
)

// TopicStatusChanged carries committed status changes to display surfaces.
const TopicStatusChanged = "review.status.changed"

// StatusUpdate is the payload delivered to every registered surface after a
// successful commit.
type StatusUpdate struct {
	ApplicantID string             `json:"applicant_id"`
	Status      types.ReviewStatus `json:"status"`
	ActorName   string             `json:"actor_name,omitempty"`
}

// ApplyFunc rewrites one surface's copy of the status.
type ApplyFunc func(update StatusUpdate)

// Synchronizer keeps every display surface that holds its own copy of the
// current status (tab label, color badge, the duplicated status selectors)
// consistent after a commit, without any surface re-fetching. Surfaces
// register by identifier; a surface not currently mounted is simply skipped.
type Synchronizer struct {
	mu       sync.RWMutex
	surfaces map[string]ApplyFunc

	pubSub pubsub.PubSub
	logger *logger.Logger
}

func NewSynchronizer(pubSub pubsub.PubSub, logger *logger.Logger) *Synchronizer {
	return &Synchronizer{
		surfaces: make(map[string]ApplyFunc),
		pubSub:   pubSub,
		logger:   logger,
	}
}

// Start subscribes to the status topic and dispatches updates until ctx is
// cancelled.
func (s *Synchronizer) Start(ctx context.Context) error {
	messages, err := s.pubSub.Subscribe(ctx, TopicStatusChanged)
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to subscribe to status broadcasts").
			Mark(ierr.ErrSystem)
	}

	go s.dispatch(messages)
	return nil
}

// Register mounts a surface. Registering an id again replaces the previous
// apply function, matching a surface that re-mounts.
func (s *Synchronizer) Register(surfaceID string, apply ApplyFunc) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.surfaces[surfaceID] = apply
}

// Deregister unmounts a surface. Unknown ids are ignored.
func (s *Synchronizer) Deregister(surfaceID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.surfaces, surfaceID)
}

// Broadcast publishes a committed status to every registered surface.
func (s *Synchronizer) Broadcast(ctx context.Context, update StatusUpdate) error {
	payload, err := json.Marshal(update)
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to encode status broadcast").
			Mark(ierr.ErrSystem)
	}

	msg := message.NewMessage(types.GenerateUUIDWithPrefix(types.UUID_PREFIX_BROADCAST), payload)
	msg.Metadata.Set("applicant_id", update.ApplicantID)

	return s.pubSub.Publish(ctx, TopicStatusChanged, msg)
}

func (s *Synchronizer) dispatch(messages <-chan *message.Message) {
	for msg := range messages {
		var update StatusUpdate
		if err := json.Unmarshal(msg.Payload, &update); err != nil {
			s.logger.Errorw("dropping malformed status broadcast",
				"message_id", msg.UUID,
				"error", err,
			)
			msg.Ack()
			continue
		}

		for id, apply := range s.snapshot() {
			apply(update)
			s.logger.Debugw("surface updated",
				"surface_id", id,
				"applicant_id", update.ApplicantID,
				"status", update.Status,
			)
		}
		msg.Ack()
	}
}

func (s *Synchronizer) snapshot() map[string]ApplyFunc {
	s.mu.RLock()
	defer s.mu.RUnlock()

	surfaces := make(map[string]ApplyFunc, len(s.surfaces))
	for id, apply := range s.surfaces {
		surfaces[id] = apply
	}
	return surfaces
}
