package integration

import (
	"context"
	"log"
	"os"
	"testing"

	"interview-platform-be/internal/apperr"
	"interview-platform-be/internal/constant"
	"interview-platform-be/internal/entity"
	"interview-platform-be/internal/repository/specification"
	"interview-platform-be/internal/repository/unitofwork"
	"interview-platform-be/pkg/database"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGormConnection(t *testing.T) {
	// Load .env from root
	err := godotenv.Load("../../.env")
	if err != nil {
		log.Println("No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	gormDB, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		t.Fatalf("Failed to connect to DB: %v", err)
	}

	// Verify Wiring
	uowFactory := unitofwork.NewRepositoryFactory(gormDB)
	uow := uowFactory.NewUnitOfWork(context.Background())

	assert.NotNil(t, uow.UserRepository())
	assert.NotNil(t, uow.InterviewRepository())
	assert.NotNil(t, uow.ApplicationRepository())

	// Basic Ping
	sqlDB, _ := gormDB.DB()
	err = sqlDB.Ping()
	assert.NoError(t, err)
	t.Log("Successfully connected to DB and initialized UnitOfWork Factory")

	t.Run("Check User Repository", func(t *testing.T) {
		count, err := uow.UserRepository().Count(context.Background())
		assert.NoError(t, err)
		t.Logf("User count: %d", count)
	})

	t.Run("Check Settings Singleton", func(t *testing.T) {
		ctx := context.Background()
		err := uow.SettingsRepository().EnsureDefault(ctx)
		assert.NoError(t, err)

		settings, err := uow.SettingsRepository().Get(ctx)
		assert.NoError(t, err)
		assert.NotNil(t, settings)
	})

	t.Run("Check Partial Vote Update", func(t *testing.T) {
		ctx := context.Background()

		app := &entity.Application{
			Id:          uuid.New(),
			Email:       "integration-" + uuid.NewString() + "@example.com",
			Responses:   []entity.Response{{Id: 1, Question: "Full name", Value: "Integration Candidate"}},
			Interviewed: true,
			Version:     1,
		}
		require.NoError(t, uow.ApplicationRepository().Create(ctx, app))

		// Two independent-field writes to the same ledger.
		require.NoError(t, uow.ApplicationRepository().UpsertVote(ctx, app.Id, "voter-a", true))
		require.NoError(t, uow.ApplicationRepository().UpsertVote(ctx, app.Id, "voter-b", false))

		stored, err := uow.ApplicationRepository().FindOne(ctx, specification.ByID{ID: app.Id})
		require.NoError(t, err)
		assert.Equal(t, true, stored.Votes["voter-a"])
		assert.Equal(t, false, stored.Votes["voter-b"])

		// Once the outcome is committed the ledger is immutable.
		require.NoError(t, uow.ApplicationRepository().StageOutcome(ctx, app.Id, true))
		err = uow.ApplicationRepository().UpsertVote(ctx, app.Id, "voter-c", true)
		assert.ErrorIs(t, err, apperr.ErrCandidateNotFound)

		stored, err = uow.ApplicationRepository().FindOne(ctx, specification.ByID{ID: app.Id})
		require.NoError(t, err)
		assert.NotContains(t, stored.Votes, "voter-c")
	})

	t.Run("Check Transactional Room Close", func(t *testing.T) {
		ctx := context.Background()

		roomId := "it-room-" + uuid.NewString()[:8]
		interview := &entity.Interview{
			Id:              roomId,
			IntervieweeName: "Integration Test",
			Level:           "intermediate",
			Phase:           constant.PhaseOpen,
			NavigationKey:   constant.NavKeyOverview,
		}

		err := uow.Begin(ctx)
		require.NoError(t, err)
		defer uow.Rollback()

		require.NoError(t, uow.InterviewRepository().Create(ctx, interview))

		affected, err := uow.InterviewRepository().Close(ctx, roomId, "integration pass")
		require.NoError(t, err)
		assert.EqualValues(t, 1, affected)

		// Second close inside the same tx is a no-op.
		affected, err = uow.InterviewRepository().Close(ctx, roomId, "again")
		require.NoError(t, err)
		assert.EqualValues(t, 0, affected)
	})
}
