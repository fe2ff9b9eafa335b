package testutil

import (
	"context"
	"time"

	"github.com/marga120/mds-application-sub000/internal/cache"
	"github.com/marga120/mds-application-sub000/internal/config"
	"github.com/marga120/mds-application-sub000/internal/domain/academic"
	"github.com/marga120/mds-application-sub000/internal/domain/audit"
	"github.com/marga120/mds-application-sub000/internal/domain/review"
	"github.com/marga120/mds-application-sub000/internal/domain/session"
	"github.com/marga120/mds-application-sub000/internal/logger"
	"github.com/marga120/mds-application-sub000/internal/panelsync"
	pubsubMemory "github.com/marga120/mds-application-sub000/internal/pubsub/memory"
	"github.com/marga120/mds-application-sub000/internal/rbac"
	"github.com/marga120/mds-application-sub000/internal/types"
	"github.com/marga120/mds-application-sub000/internal/validator"
	"github.com/stretchr/testify/suite"
)

// Stores holds all the repository interfaces for testing
type Stores struct {
	ReviewRepo   review.Repository
	AuditRepo    audit.Repository
	AcademicRepo academic.Repository
	SessionRepo  session.Repository
}

// BaseServiceTestSuite provides common functionality for all service test suites
type BaseServiceTestSuite struct {
	suite.Suite
	ctx    context.Context
	stores Stores
	store  *review.Store
	gate   *rbac.Gate
	sync   *panelsync.Synchronizer
	cache  cache.Cache
	logger *logger.Logger
	config *config.Configuration
	now    time.Time
}

// SetupSuite is called once before running the tests in the suite
func (s *BaseServiceTestSuite) SetupSuite() {
	// Initialize validator
	validator.NewValidator()

	cfg := &config.Configuration{
		Logging: config.LoggingConfig{
			Level: types.LogLevelInfo,
		},
		Cache: config.CacheConfig{
			Enabled: true,
		},
	}
	var err error
	s.config = cfg
	s.logger, err = logger.NewLogger(cfg)
	if err != nil {
		s.T().Fatalf("failed to create logger: %v", err)
	}
}

// SetupTest is called before each test
func (s *BaseServiceTestSuite) SetupTest() {
	s.setupContext(types.RoleFullControl)
	s.setupStores()
	s.now = time.Now().UTC()
}

// TearDownTest is called after each test
func (s *BaseServiceTestSuite) TearDownTest() {
	s.clearStores()
}

func (s *BaseServiceTestSuite) setupContext(role types.Role) {
	s.ctx = context.Background()
	s.ctx = context.WithValue(s.ctx, types.CtxUserName, "Test Reviewer")
	s.ctx = context.WithValue(s.ctx, types.CtxRole, role)
	s.ctx = context.WithValue(s.ctx, types.CtxRequestID, types.GenerateUUID())
}

// SetRole rebuilds the test context with the given role.
func (s *BaseServiceTestSuite) SetRole(role types.Role) {
	s.setupContext(role)
}

func (s *BaseServiceTestSuite) setupStores() {
	auditStore := NewInMemoryAuditStore()
	s.stores = Stores{
		ReviewRepo:   NewInMemoryReviewStore(auditStore),
		AuditRepo:    auditStore,
		AcademicRepo: NewInMemoryAcademicStore(),
		SessionRepo:  NewInMemorySessionStore(),
	}

	s.store = review.NewStore()
	s.gate = rbac.NewGate()
	s.cache = cache.NewInMemoryCache(s.config)

	pubSub := pubsubMemory.NewPubSub(s.logger)
	s.sync = panelsync.NewSynchronizer(pubSub, s.logger)
	if err := s.sync.Start(s.ctx); err != nil {
		s.T().Fatalf("failed to start panel synchronizer: %v", err)
	}
}

func (s *BaseServiceTestSuite) clearStores() {
	s.stores.ReviewRepo.(*InMemoryReviewStore).Clear()
	s.stores.AuditRepo.(*InMemoryAuditStore).Clear()
	s.stores.AcademicRepo.(*InMemoryAcademicStore).Clear()
	s.cache.Flush(s.ctx)
}

func (s *BaseServiceTestSuite) ClearStores() {
	s.clearStores()
}

// GetContext returns the test context
func (s *BaseServiceTestSuite) GetContext() context.Context {
	return s.ctx
}

// GetConfig returns the test configuration
func (s *BaseServiceTestSuite) GetConfig() *config.Configuration {
	return s.config
}

// GetStores returns all test repositories
func (s *BaseServiceTestSuite) GetStores() Stores {
	return s.stores
}

// GetStore returns the review state store
func (s *BaseServiceTestSuite) GetStore() *review.Store {
	return s.store
}

// GetGate returns the permission gate
func (s *BaseServiceTestSuite) GetGate() *rbac.Gate {
	return s.gate
}

// GetSync returns the panel synchronizer
func (s *BaseServiceTestSuite) GetSync() *panelsync.Synchronizer {
	return s.sync
}

// GetCache returns the test cache
func (s *BaseServiceTestSuite) GetCache() cache.Cache {
	return s.cache
}

// GetLogger returns the test logger
func (s *BaseServiceTestSuite) GetLogger() *logger.Logger {
	return s.logger
}

// GetNow returns the current test time (UTC)
func (s *BaseServiceTestSuite) GetNow() time.Time {
	return s.now
}
