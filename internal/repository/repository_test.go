package repository_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"ai_linguo/internal/config"
	"ai_linguo/internal/model"
	"ai_linguo/internal/repository"
	"ai_linguo/internal/srs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// setupTestDB opens a private in-memory SQLite database with the full schema.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := repository.NewDB(config.DatabaseConfig{Driver: "sqlite", URL: dsn}, nil)
	require.NoError(t, err)
	require.NoError(t, repository.AutoMigrate(db))
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

func seedCards(t *testing.T, db *gorm.DB, cards ...*model.VocabCard) []*model.VocabCard {
	t.Helper()
	repo := repository.NewGormCardRepository()
	for _, c := range cards {
		created, err := repo.CreateIfAbsent(context.Background(), db, c)
		require.NoError(t, err)
		require.True(t, created, c.Term)
	}
	return cards
}

func card(term string, level model.Level) *model.VocabCard {
	return &model.VocabCard{Term: term, Meaning: term + "-meaning", Example: "An example with " + term, CEFRLevel: level}
}

func review(t *testing.T, db *gorm.DB, userID, cardID uuid.UUID, dueAt time.Time) {
	t.Helper()
	state := srs.State{DueAt: dueAt, IntervalDays: 1, Ease: 1.3, LastResult: srs.Again, ReviewedAt: dueAt.Add(-srs.Day)}
	require.NoError(t, repository.NewGormReviewRepository().Upsert(context.Background(), db, model.NewReviewState(userID, cardID, state)))
}

func terms(cards []*model.VocabCard) []string {
	out := make([]string, 0, len(cards))
	for _, c := range cards {
		out = append(out, c.Term)
	}
	return out
}

func TestDialector(t *testing.T) {
	d, err := repository.Dialector(config.DatabaseConfig{Driver: "", URL: "postgres://localhost/x"})
	require.NoError(t, err)
	assert.Equal(t, "postgres", d.Name())

	d, err = repository.Dialector(config.DatabaseConfig{Driver: "SQLite", URL: "file::memory:"})
	require.NoError(t, err)
	assert.Equal(t, "sqlite", d.Name())

	_, err = repository.Dialector(config.DatabaseConfig{Driver: "oracle"})
	assert.Error(t, err)
}

func TestCardRepository_FindDue(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	repo := repository.NewGormCardRepository()

	t.Run("new learner gets cards in seed order", func(t *testing.T) {
		db := setupTestDB(t)
		seedCards(t, db, card("apple", model.LevelA1), card("house", model.LevelA1), card("water", model.LevelA1))

		due, err := repo.FindDue(ctx, db, uuid.New(), now, "", 10)
		require.NoError(t, err)
		assert.Equal(t, []string{"apple", "house", "water"}, terms(due))
	})

	t.Run("limit caps the result", func(t *testing.T) {
		db := setupTestDB(t)
		seedCards(t, db, card("apple", model.LevelA1), card("house", model.LevelA1), card("water", model.LevelA1))

		due, err := repo.FindDue(ctx, db, uuid.New(), now, "", 2)
		require.NoError(t, err)
		assert.Equal(t, []string{"apple", "house"}, terms(due))
	})

	t.Run("future due cards are excluded and past due ones sorted by due date", func(t *testing.T) {
		db := setupTestDB(t)
		cards := seedCards(t, db, card("apple", model.LevelA1), card("house", model.LevelA1), card("water", model.LevelA1), card("book", model.LevelA1))
		userID := uuid.New()
		review(t, db, userID, cards[0].CardID, now.Add(-time.Hour))
		review(t, db, userID, cards[1].CardID, now.Add(4*srs.Day))
		review(t, db, userID, cards[2].CardID, now.Add(-2*srs.Day))

		due, err := repo.FindDue(ctx, db, userID, now, "", 10)
		require.NoError(t, err)
		assert.Equal(t, []string{"book", "water", "apple"}, terms(due))
	})

	t.Run("equal due dates fall back to seed order", func(t *testing.T) {
		db := setupTestDB(t)
		cards := seedCards(t, db, card("apple", model.LevelA1), card("house", model.LevelA1), card("water", model.LevelA1))
		userID := uuid.New()
		tie := now.Add(-srs.Day)
		review(t, db, userID, cards[2].CardID, tie)
		review(t, db, userID, cards[0].CardID, tie)
		review(t, db, userID, cards[1].CardID, tie)

		due, err := repo.FindDue(ctx, db, userID, now, "", 10)
		require.NoError(t, err)
		assert.Equal(t, []string{"apple", "house", "water"}, terms(due))
	})

	t.Run("card due exactly now is included", func(t *testing.T) {
		db := setupTestDB(t)
		cards := seedCards(t, db, card("apple", model.LevelA1))
		userID := uuid.New()
		review(t, db, userID, cards[0].CardID, now)

		due, err := repo.FindDue(ctx, db, userID, now, "", 10)
		require.NoError(t, err)
		assert.Equal(t, []string{"apple"}, terms(due))
	})

	t.Run("another learner's reviews do not hide cards", func(t *testing.T) {
		db := setupTestDB(t)
		cards := seedCards(t, db, card("apple", model.LevelA1))
		review(t, db, uuid.New(), cards[0].CardID, now.Add(7*srs.Day))

		due, err := repo.FindDue(ctx, db, uuid.New(), now, "", 10)
		require.NoError(t, err)
		assert.Equal(t, []string{"apple"}, terms(due))
	})

	t.Run("level filter", func(t *testing.T) {
		db := setupTestDB(t)
		seedCards(t, db, card("apple", model.LevelA1), card("beautiful", model.LevelA2), card("house", model.LevelA1))

		due, err := repo.FindDue(ctx, db, uuid.New(), now, model.LevelA2, 10)
		require.NoError(t, err)
		assert.Equal(t, []string{"beautiful"}, terms(due))
	})

	t.Run("nothing due returns an empty slice", func(t *testing.T) {
		db := setupTestDB(t)
		cards := seedCards(t, db, card("apple", model.LevelA1))
		userID := uuid.New()
		review(t, db, userID, cards[0].CardID, now.Add(srs.Day))

		due, err := repo.FindDue(ctx, db, userID, now, "", 10)
		require.NoError(t, err)
		assert.NotNil(t, due)
		assert.Empty(t, due)

		count, err := repo.CountDue(ctx, db, userID, now)
		require.NoError(t, err)
		assert.Zero(t, count)
	})
}

func TestCardRepository_CountDue(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	cards := seedCards(t, db, card("apple", model.LevelA1), card("house", model.LevelA1), card("water", model.LevelA1))
	userID := uuid.New()
	review(t, db, userID, cards[1].CardID, now.Add(srs.Day))

	count, err := repository.NewGormCardRepository().CountDue(ctx, db, userID, now)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestCardRepository_CreateIfAbsent(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	repo := repository.NewGormCardRepository()

	first := card("apple", model.LevelA1)
	created, err := repo.CreateIfAbsent(ctx, db, first)
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, int64(1), first.Seq)

	created, err = repo.CreateIfAbsent(ctx, db, card("apple", model.LevelB1))
	require.NoError(t, err)
	assert.False(t, created)

	second := card("house", model.LevelA1)
	created, err = repo.CreateIfAbsent(ctx, db, second)
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, int64(2), second.Seq)

	all, err := repo.ListByLevel(ctx, db, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"apple", "house"}, terms(all))
	assert.Equal(t, model.LevelA1, all[0].CEFRLevel)

	found, err := repo.FindByID(ctx, db, first.CardID)
	require.NoError(t, err)
	assert.Equal(t, "apple", found.Term)

	_, err = repo.FindByID(ctx, db, uuid.New())
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestReviewRepository_Upsert(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	cards := seedCards(t, db, card("apple", model.LevelA1))
	repo := repository.NewGormReviewRepository()
	userID := uuid.New()
	reviewedAt := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	scheduler := srs.NewScheduler(srs.WithClock(func() time.Time { return reviewedAt }))
	easy := scheduler.GradeReview(nil, srs.Easy)
	require.NoError(t, repo.Upsert(ctx, db, model.NewReviewState(userID, cards[0].CardID, easy)))

	again := scheduler.GradeReview(&easy, srs.Again)
	require.NoError(t, repo.Upsert(ctx, db, model.NewReviewState(userID, cards[0].CardID, again)))

	var count int64
	require.NoError(t, db.Model(&model.ReviewState{}).Where("user_id = ? AND card_id = ?", userID, cards[0].CardID).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	stored, err := repo.FindByUserAndCard(ctx, db, userID, cards[0].CardID)
	require.NoError(t, err)
	assert.Equal(t, 1, stored.IntervalDays)
	assert.Equal(t, 1.3, stored.Ease)
	assert.Equal(t, srs.Again, stored.LastResult)
	assert.True(t, stored.DueAt.Equal(reviewedAt.Add(srs.Day)), stored.DueAt)
	assert.True(t, stored.DueAt.Equal(stored.ReviewedAt.Add(time.Duration(stored.IntervalDays)*srs.Day)))

	_, err = repo.FindByUserAndCard(ctx, db, uuid.New(), cards[0].CardID)
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestUserRepository(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	repo := repository.NewGormUserRepository()

	user := &model.User{UserID: uuid.New(), Email: "ana@example.com", Name: "Ana", PasswordHash: "x", CEFRLevel: model.LevelA2, DailyGoalMinutes: 15}
	require.NoError(t, repo.Create(ctx, db, user))

	dup := &model.User{UserID: uuid.New(), Email: "ana@example.com", Name: "Ana 2", PasswordHash: "y", CEFRLevel: model.LevelA2}
	assert.ErrorIs(t, repo.Create(ctx, db, dup), model.ErrConflict)

	found, err := repo.FindByEmail(ctx, db, "ana@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.UserID, found.UserID)

	studied := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	found.TotalMinutes = 30
	found.StreakDays = 2
	found.LastStudyDate = &studied
	require.NoError(t, repo.UpdateStudyProgress(ctx, db, found))

	reloaded, err := repo.FindByID(ctx, db, user.UserID)
	require.NoError(t, err)
	assert.Equal(t, 30, reloaded.TotalMinutes)
	assert.Equal(t, 2, reloaded.StreakDays)
	require.NotNil(t, reloaded.LastStudyDate)
	assert.True(t, reloaded.LastStudyDate.Equal(studied))

	assert.ErrorIs(t, repo.UpdateStudyProgress(ctx, db, &model.User{UserID: uuid.New()}), model.ErrNotFound)

	_, err = repo.FindByID(ctx, db, uuid.New())
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestUserRepository_ListAfter(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	repo := repository.NewGormUserRepository()
	for i := 0; i < 5; i++ {
		require.NoError(t, repo.Create(ctx, db, &model.User{
			UserID: uuid.New(), Email: fmt.Sprintf("u%d@example.com", i), Name: "u", PasswordHash: "x", CEFRLevel: model.LevelA1,
		}))
	}

	seen := map[uuid.UUID]bool{}
	after := uuid.Nil
	for {
		page, err := repo.ListAfter(ctx, db, after, 2)
		require.NoError(t, err)
		if len(page) == 0 {
			break
		}
		for _, u := range page {
			assert.False(t, seen[u.UserID])
			seen[u.UserID] = true
		}
		after = page[len(page)-1].UserID
	}
	assert.Len(t, seen, 5)
}

func TestLessonRepository(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	repo := repository.NewGormLessonRepository()

	greetings := &model.Lesson{CEFRLevel: model.LevelA1, Title: "Greetings", ContentMarkdown: "# Hi", EstimatedMinutes: 10}
	numbers := &model.Lesson{CEFRLevel: model.LevelA1, Title: "Numbers", ContentMarkdown: "# 1", EstimatedMinutes: 15}
	past := &model.Lesson{CEFRLevel: model.LevelA2, Title: "Past Simple", ContentMarkdown: "# went", EstimatedMinutes: 20}
	for _, l := range []*model.Lesson{greetings, numbers, past} {
		created, err := repo.CreateIfAbsent(ctx, db, l)
		require.NoError(t, err)
		assert.True(t, created)
	}
	created, err := repo.CreateIfAbsent(ctx, db, &model.Lesson{CEFRLevel: model.LevelC1, Title: "Greetings"})
	require.NoError(t, err)
	assert.False(t, created)

	a1, err := repo.ListByLevel(ctx, db, model.LevelA1)
	require.NoError(t, err)
	require.Len(t, a1, 2)
	assert.Equal(t, "Greetings", a1[0].Title)
	assert.Equal(t, "Numbers", a1[1].Title)

	userID := uuid.New()
	at := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	require.NoError(t, repo.SaveProgress(ctx, db, &model.LessonProgress{UserID: userID, LessonID: greetings.LessonID, Completed: true, CompletedAt: at}))
	require.NoError(t, repo.SaveProgress(ctx, db, &model.LessonProgress{UserID: userID, LessonID: numbers.LessonID, Completed: true, CompletedAt: at}))
	require.NoError(t, repo.SaveProgress(ctx, db, &model.LessonProgress{UserID: userID, LessonID: numbers.LessonID, Completed: false, CompletedAt: at.Add(time.Hour)}))

	completed, err := repo.CompletedLessonIDs(ctx, db, userID)
	require.NoError(t, err)
	assert.Equal(t, map[uuid.UUID]bool{greetings.LessonID: true}, completed)

	var rows int64
	require.NoError(t, db.Model(&model.LessonProgress{}).Where("user_id = ?", userID).Count(&rows).Error)
	assert.Equal(t, int64(2), rows)

	_, err = repo.FindByID(ctx, db, uuid.New())
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestChatRepository(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	repo := repository.NewGormChatRepository()

	session := &model.ChatSession{SessionID: uuid.New(), UserID: uuid.New(), Level: model.LevelB1, Topic: model.DefaultChatTopic}
	require.NoError(t, repo.CreateSession(ctx, db, session))

	base := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	var turns []*model.ChatTurn
	for i := 0; i < 4; i++ {
		role := model.ChatRoleUser
		if i%2 == 1 {
			role = model.ChatRoleTutor
		}
		turns = append(turns, &model.ChatTurn{
			TurnID: uuid.New(), SessionID: session.SessionID, Role: role,
			Content: fmt.Sprintf("turn %d", i), CreatedAt: base.Add(time.Duration(i) * time.Second),
		})
	}
	// Inserted out of order on purpose.
	require.NoError(t, repo.AppendTurns(ctx, db, turns[2], turns[3]))
	require.NoError(t, repo.AppendTurns(ctx, db, turns[0], turns[1]))

	listed, err := repo.ListTurns(ctx, db, session.SessionID, 3)
	require.NoError(t, err)
	require.Len(t, listed, 3)
	assert.Equal(t, "turn 0", listed[0].Content)
	assert.Equal(t, "turn 1", listed[1].Content)
	assert.Equal(t, "turn 2", listed[2].Content)

	found, err := repo.FindSession(ctx, db, session.SessionID)
	require.NoError(t, err)
	assert.Equal(t, model.LevelB1, found.Level)

	_, err = repo.FindSession(ctx, db, uuid.New())
	assert.ErrorIs(t, err, model.ErrNotFound)

	empty, err := repo.ListTurns(ctx, db, uuid.New(), 20)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestPronunciationRepository(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	repo := repository.NewGormPronunciationRepository()
	userID := uuid.New()

	first := &model.PronunciationAttempt{AttemptID: uuid.New(), UserID: userID, Phrase: "The Cat", Transcript: "the cat", Score: 0.85,
		Tips: []string{"tip one", "tip two"}, CreatedAt: time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)}
	second := &model.PronunciationAttempt{AttemptID: uuid.New(), UserID: userID, Phrase: "Hello", Transcript: "hello", Score: 0.85,
		Tips: []string{}, CreatedAt: time.Date(2025, 3, 10, 10, 0, 0, 0, time.UTC)}
	require.NoError(t, repo.Create(ctx, db, first))
	require.NoError(t, repo.Create(ctx, db, second))

	recent, err := repo.ListRecent(ctx, db, userID, 10)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, "Hello", recent[0].Phrase)
	assert.Equal(t, []string{"tip one", "tip two"}, recent[1].Tips)
}

func TestIsUniqueViolation(t *testing.T) {
	assert.False(t, repository.IsUniqueViolation(nil))
	assert.True(t, repository.IsUniqueViolation(gorm.ErrDuplicatedKey))
	assert.True(t, repository.IsUniqueViolation(fmt.Errorf("insert: %w", gorm.ErrDuplicatedKey)))
	assert.False(t, repository.IsUniqueViolation(gorm.ErrRecordNotFound))
}
