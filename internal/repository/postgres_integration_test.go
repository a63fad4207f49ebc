package repository_test

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	"ai_linguo/internal/config"
	"ai_linguo/internal/model"
	"ai_linguo/internal/repository"
	"ai_linguo/internal/srs"

	"github.com/google/uuid"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// PostgresSuite runs the repositories against a throwaway PostgreSQL
// container. It is skipped with -short or when Docker is unavailable.
type PostgresSuite struct {
	suite.Suite
	pool     *dockertest.Pool
	resource *dockertest.Resource
	db       *gorm.DB
}

func TestPostgresSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping PostgreSQL integration tests in short mode")
	}
	suite.Run(t, new(PostgresSuite))
}

func (s *PostgresSuite) SetupSuite() {
	pool, err := dockertest.NewPool("")
	if err != nil {
		s.T().Skipf("docker not available: %v", err)
	}
	if err := pool.Client.Ping(); err != nil {
		s.T().Skipf("docker not reachable: %v", err)
	}
	pool.MaxWait = 120 * time.Second
	s.pool = pool

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "15-alpine",
		Env: []string{
			"POSTGRES_USER=user",
			"POSTGRES_PASSWORD=secret",
			"POSTGRES_DB=ai_linguo",
		},
	}, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
		hc.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	require.NoError(s.T(), err)
	s.resource = resource
	_ = resource.Expire(300)

	dsn := fmt.Sprintf("postgres://user:secret@%s/ai_linguo?sslmode=disable", resource.GetHostPort("5432/tcp"))
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	err = pool.Retry(func() error {
		db, err := repository.NewDB(config.DatabaseConfig{Driver: "postgres", URL: dsn}, logger)
		if err != nil {
			return err
		}
		s.db = db
		return nil
	})
	require.NoError(s.T(), err)
	require.NoError(s.T(), repository.AutoMigrate(s.db))
}

func (s *PostgresSuite) TearDownSuite() {
	if s.db != nil {
		if sqlDB, err := s.db.DB(); err == nil {
			sqlDB.Close()
		}
	}
	if s.pool != nil && s.resource != nil {
		_ = s.pool.Purge(s.resource)
	}
}

func (s *PostgresSuite) SetupTest() {
	for _, table := range []string{"srs_reviews", "vocab_cards", "users"} {
		require.NoError(s.T(), s.db.Exec("TRUNCATE TABLE "+table+" CASCADE").Error)
	}
}

func (s *PostgresSuite) TestDueQueryAndUpsert() {
	ctx := context.Background()
	t := s.T()
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	cards := repository.NewGormCardRepository()
	reviews := repository.NewGormReviewRepository()

	var seeded []*model.VocabCard
	for _, term := range []string{"apple", "house", "water"} {
		c := &model.VocabCard{Term: term, Meaning: term, CEFRLevel: model.LevelA1}
		created, err := cards.CreateIfAbsent(ctx, s.db, c)
		require.NoError(t, err)
		require.True(t, created)
		seeded = append(seeded, c)
	}

	userID := uuid.New()
	scheduler := srs.NewScheduler(srs.WithClock(func() time.Time { return now.Add(-2 * srs.Day) }))
	for i := 0; i < 2; i++ {
		state := scheduler.GradeReview(nil, srs.Hard)
		require.NoError(t, reviews.Upsert(ctx, s.db, model.NewReviewState(userID, seeded[0].CardID, state)))
	}
	state := scheduler.GradeReview(nil, srs.Easy)
	require.NoError(t, reviews.Upsert(ctx, s.db, model.NewReviewState(userID, seeded[1].CardID, state)))

	due, err := cards.FindDue(ctx, s.db, userID, now, "", 10)
	require.NoError(t, err)
	assert.Equal(t, []string{"water", "apple"}, terms(due))

	var rows int64
	require.NoError(t, s.db.Model(&model.ReviewState{}).Where("user_id = ?", userID).Count(&rows).Error)
	assert.Equal(t, int64(2), rows)
}

func (s *PostgresSuite) TestDuplicateEmailIsConflict() {
	ctx := context.Background()
	users := repository.NewGormUserRepository()
	u := &model.User{UserID: uuid.New(), Email: "pg@example.com", Name: "pg", PasswordHash: "x", CEFRLevel: model.LevelA2}
	require.NoError(s.T(), users.Create(ctx, s.db, u))

	dup := &model.User{UserID: uuid.New(), Email: "pg@example.com", Name: "pg", PasswordHash: "x", CEFRLevel: model.LevelA2}
	assert.ErrorIs(s.T(), users.Create(ctx, s.db, dup), model.ErrConflict)
}
