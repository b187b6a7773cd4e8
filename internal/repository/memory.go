package repository

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

var ErrUserNotFound error = errors.New("user not found")
var ErrDuplicateUser error = errors.New("user already exists")

// MemoryRepository keeps all state in process memory. Everything is lost on
// restart. Per-user ledgers are kept in most-recently-touched-first order.
type MemoryRepository struct {
	mu      sync.RWMutex
	users   map[string]User
	history map[string][]*AnalysisRecord
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		users:   make(map[string]User),
		history: make(map[string][]*AnalysisRecord),
	}
}

func (m *MemoryRepository) CreateUser(ctx context.Context, user User) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.users[user.Username]; ok {
		return ErrDuplicateUser
	}

	m.users[user.Username] = user
	m.history[user.Username] = []*AnalysisRecord{}
	return nil
}

func (m *MemoryRepository) GetUser(ctx context.Context, username string) (User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	user, ok := m.users[username]
	if !ok {
		return User{}, ErrUserNotFound
	}
	return user, nil
}

// UpsertAnalysis updates the given analysis field of the user's record for
// word if one exists, leaving the other field untouched, and moves the record
// to the front of the ledger. Otherwise it creates a fresh record at the
// front. Word is expected lowercased; the scan is case-insensitive anyway.
func (m *MemoryRepository) UpsertAnalysis(ctx context.Context, username, word string, kind AnalysisKind, text string) (AnalysisRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	ledger := m.history[username]
	for i, rec := range ledger {
		if !strings.EqualFold(rec.Word, word) {
			continue
		}
		rec.setAnalysis(kind, text)
		rec.Timestamp = time.Now()
		copy(ledger[1:i+1], ledger[:i])
		ledger[0] = rec
		return *rec, nil
	}

	rec := &AnalysisRecord{
		ID:        uuid.NewString(),
		Username:  username,
		Word:      word,
		Timestamp: time.Now(),
	}
	rec.setAnalysis(kind, text)
	m.history[username] = append([]*AnalysisRecord{rec}, ledger...)
	return *rec, nil
}

func (m *MemoryRepository) GetHistory(ctx context.Context, username string) ([]AnalysisRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	ledger := m.history[username]
	records := make([]AnalysisRecord, len(ledger))
	for i, rec := range ledger {
		records[i] = *rec
	}
	return records, nil
}

func (m *MemoryRepository) CountUsers(ctx context.Context) (int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return int64(len(m.users)), nil
}
