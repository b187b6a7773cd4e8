package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"wordlab/internal/db"

	"github.com/google/uuid"
)

// WordRepository is the persistent counterpart of MemoryRepository. Recency
// order is not kept positionally; reads order by timestamp descending, which
// yields the same most-recently-touched-first listing.
type WordRepository struct {
	db Database
}

func NewWordRepository(db Database) *WordRepository {
	return &WordRepository{
		db: db,
	}
}

func (r *WordRepository) MigrateTables() error {
	err := r.db.MigrateTable(&User{}, &AnalysisRecord{})
	if err != nil {
		return fmt.Errorf("migrate table(s): %w", err)
	}
	return nil
}

func (r *WordRepository) CreateUser(ctx context.Context, user User) error {
	var existing User
	err := r.db.GetOneBy(ctx, "username", user.Username, &existing)
	if err == nil {
		return ErrDuplicateUser
	}
	if !errors.Is(err, db.ErrNotFound) {
		return fmt.Errorf("check user exists: %w", err)
	}

	if err := r.db.Create(ctx, &user); err != nil {
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

func (r *WordRepository) GetUser(ctx context.Context, username string) (User, error) {
	var user User
	err := r.db.GetOneBy(ctx, "username", username, &user)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return User{}, ErrUserNotFound
		}
		return User{}, fmt.Errorf("get user by username: %w", err)
	}
	return user, nil
}

func (r *WordRepository) UpsertAnalysis(ctx context.Context, username, word string, kind AnalysisKind, text string) (AnalysisRecord, error) {
	word = strings.ToLower(word)

	var rec AnalysisRecord
	err := r.db.GetOneWhere(ctx, "username = ? AND word = ?", &rec, username, word)
	if err == nil {
		rec.setAnalysis(kind, text)
		rec.Timestamp = time.Now()
		if err := r.db.Save(ctx, &rec); err != nil {
			return AnalysisRecord{}, fmt.Errorf("update analysis record: %w", err)
		}
		return rec, nil
	}
	if !errors.Is(err, db.ErrNotFound) {
		return AnalysisRecord{}, fmt.Errorf("find analysis record: %w", err)
	}

	rec = AnalysisRecord{
		ID:        uuid.NewString(),
		Username:  username,
		Word:      word,
		Timestamp: time.Now(),
	}
	rec.setAnalysis(kind, text)
	if err := r.db.Create(ctx, &rec); err != nil {
		return AnalysisRecord{}, fmt.Errorf("create analysis record: %w", err)
	}
	return rec, nil
}

func (r *WordRepository) GetHistory(ctx context.Context, username string) ([]AnalysisRecord, error) {
	records := []AnalysisRecord{}
	err := r.db.GetAllByOrdered(ctx, "username", username, "timestamp DESC", &records)
	if err != nil {
		return nil, fmt.Errorf("get user history: %w", err)
	}
	return records, nil
}

func (r *WordRepository) CountUsers(ctx context.Context) (int64, error) {
	count, err := r.db.CountModel(ctx, &User{})
	if err != nil {
		return 0, fmt.Errorf("count users: %w", err)
	}
	return count, nil
}
