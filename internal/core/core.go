package core

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"
	"unicode"
	"wordlab/internal/completion"
	"wordlab/internal/repository"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

var ErrUserNotFound error = errors.New("user not found")
var ErrIncorrectPassword error = errors.New("incorrect password")
var ErrDuplicateUser error = errors.New("username is already taken")
var ErrUnauthorized error = errors.New("authentication required")
var ErrEmptyWord error = errors.New("word must not be empty")
var ErrWordNotAlphabetic error = errors.New("word must contain letters only")

const timestampLayout = "2006-01-02 15:04:05"

// fixed label describing the kind of generation backend in the health report
const apiTypeLabel = "completion proxy"

// WordLab is the application service: registration, sessions and the per-user
// word analysis ledger.
type WordLab struct {
	logs      *zap.SugaredLogger
	repo      Repository
	sessions  Sessions
	completer Completer
}

func NewWordLab(logger *zap.SugaredLogger, repo Repository, sessions Sessions, completer Completer) *WordLab {
	return &WordLab{
		logs:      logger,
		repo:      repo,
		sessions:  sessions,
		completer: completer,
	}
}

// Register creates a user with a bcrypt password hash and an empty history.
// Field shape validation happens at the payload layer.
func (w *WordLab) Register(ctx context.Context, msg RegisterMessage) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(msg.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	user := repository.User{
		Username:     msg.Username,
		PasswordHash: string(hash),
		Name:         msg.Name,
		Email:        msg.Email,
		CreatedAt:    time.Now(),
	}

	if err := w.repo.CreateUser(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateUser) {
			return ErrDuplicateUser
		}
		return fmt.Errorf("create user: %w", err)
	}

	w.logs.Infow("new user registered", "username", msg.Username)
	return nil
}

// Login verifies the credentials and issues an opaque session token.
func (w *WordLab) Login(ctx context.Context, msg AuthMessage) (string, error) {
	user, err := w.repo.GetUser(ctx, msg.Username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return "", ErrUserNotFound
		}
		return "", fmt.Errorf("get user: %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(msg.Password)); err != nil {
		return "", ErrIncorrectPassword
	}

	token := w.sessions.Create(user.Username)
	w.logs.Infow("user logged in", "username", user.Username)
	return token, nil
}

// Logout destroys the session; unknown tokens are a no-op.
func (w *WordLab) Logout(token string) {
	username, _ := w.sessions.Resolve(token)
	w.sessions.Destroy(token)
	w.logs.Infow("user logged out", "username", username)
}

func (w *WordLab) UserInfo(ctx context.Context, token string) (UserInfo, error) {
	username, err := w.resolve(token)
	if err != nil {
		return UserInfo{}, err
	}

	user, err := w.repo.GetUser(ctx, username)
	if err != nil {
		return UserInfo{}, fmt.Errorf("get user: %w", err)
	}

	// the original frontend shows the username as the display name
	return UserInfo{
		Username: username,
		Name:     username,
		Email:    user.Email,
	}, nil
}

// AnalyzeBasic runs the basic prompt for word and upserts the result into the
// user's ledger. Only letters are accepted after trimming and lowercasing.
func (w *WordLab) AnalyzeBasic(ctx context.Context, token, word string) (AnalysisResult, error) {
	username, err := w.resolve(token)
	if err != nil {
		return AnalysisResult{}, err
	}

	normalized, err := normalizeWord(word, true)
	if err != nil {
		return AnalysisResult{}, err
	}

	w.logs.Infow("basic analysis requested", "word", normalized, "username", username)

	text := w.completionText(ctx, basicPrompt(normalized))

	rec, err := w.repo.UpsertAnalysis(ctx, username, normalized, repository.AnalysisBasic, text)
	if err != nil {
		return AnalysisResult{}, fmt.Errorf("upsert analysis: %w", err)
	}

	return AnalysisResult{
		Word:     normalized,
		Analysis: text,
		RecordID: rec.ID,
	}, nil
}

// AnalyzeAdvanced runs the enrichment prompt. Unlike the basic pass it skips
// the alphabetic check and reports no record id.
func (w *WordLab) AnalyzeAdvanced(ctx context.Context, token, word string) (AnalysisResult, error) {
	username, err := w.resolve(token)
	if err != nil {
		return AnalysisResult{}, err
	}

	normalized, err := normalizeWord(word, false)
	if err != nil {
		return AnalysisResult{}, err
	}

	w.logs.Infow("advanced analysis requested", "word", normalized, "username", username)

	text := w.completionText(ctx, advancedPrompt(normalized))

	if _, err := w.repo.UpsertAnalysis(ctx, username, normalized, repository.AnalysisAdvanced, text); err != nil {
		return AnalysisResult{}, fmt.Errorf("upsert analysis: %w", err)
	}

	return AnalysisResult{
		Word:     normalized,
		Analysis: text,
	}, nil
}

// History returns the user's cleaned ledger, newest first. Malformed stored
// records are dropped, not surfaced as errors.
func (w *WordLab) History(ctx context.Context, token string) ([]HistoryEntry, error) {
	username, err := w.resolve(token)
	if err != nil {
		return nil, err
	}

	records, err := w.repo.GetHistory(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("get history: %w", err)
	}

	entries := w.sanitizeHistory(username, records)
	w.logs.Infow("history listed", "username", username, "records", len(entries))
	return entries, nil
}

func (w *WordLab) sanitizeHistory(username string, records []repository.AnalysisRecord) []HistoryEntry {
	entries := make([]HistoryEntry, 0, len(records))
	for i, rec := range records {
		if rec.Word == "" {
			w.logs.Warnw("dropping malformed history record", "username", username, "index", i)
			continue
		}

		ts := rec.Timestamp
		if ts.IsZero() {
			// lossy: the stored time is gone, flag it instead of hiding it
			w.logs.Warnw("history record has no timestamp, substituting current time",
				"username", username, "word", rec.Word)
			ts = time.Now()
		}

		id := rec.ID
		if id == "" {
			id = fmt.Sprintf("auto_%d", i)
		}

		entries = append(entries, HistoryEntry{
			ID:               id,
			Word:             rec.Word,
			BasicAnalysis:    rec.BasicAnalysis,
			AdvancedAnalysis: rec.AdvancedAnalysis,
			Timestamp:        ts.Format(timestampLayout),
		})
	}

	// the ledger is already near-recency ordered, this settles exact order
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Timestamp > entries[j].Timestamp
	})
	return entries
}

// DebugHistory exposes the raw ledger shape for troubleshooting.
func (w *WordLab) DebugHistory(ctx context.Context, token string) (DebugReport, error) {
	username, err := w.resolve(token)
	if err != nil {
		return DebugReport{}, err
	}

	records, err := w.repo.GetHistory(ctx, username)
	if err != nil {
		return DebugReport{}, fmt.Errorf("get history: %w", err)
	}

	report := DebugReport{
		Username:     username,
		TotalRecords: len(records),
		Records:      make([]DebugRecord, 0, len(records)),
	}
	for i, rec := range records {
		report.Records = append(report.Records, DebugRecord{
			Index:       i,
			ID:          rec.ID,
			Word:        rec.Word,
			HasBasic:    rec.BasicAnalysis != nil,
			HasAdvanced: rec.AdvancedAnalysis != nil,
			Timestamp:   rec.Timestamp.Format(timestampLayout),
		})
	}
	return report, nil
}

// TestCompletion probes the generation service with a fixed prompt.
func (w *WordLab) TestCompletion(ctx context.Context) (string, error) {
	return w.completer.Complete(ctx, "Hello! This is a connectivity test.")
}

// Status reports store counters for the health endpoint.
func (w *WordLab) Status(ctx context.Context) Status {
	users, err := w.repo.CountUsers(ctx)
	if err != nil {
		w.logs.Errorw("failed to count users", "error", err)
	}

	return Status{
		Status:         "healthy",
		Timestamp:      time.Now().Format(timestampLayout),
		UsersCount:     users,
		ActiveSessions: w.sessions.Count(),
		APIURL:         w.completer.URL(),
		APIType:        apiTypeLabel,
	}
}

func (w *WordLab) resolve(token string) (string, error) {
	username, ok := w.sessions.Resolve(token)
	if !ok {
		return "", ErrUnauthorized
	}
	return username, nil
}

// completionText degrades completion failures into the analysis text itself,
// so the ledger write path always succeeds.
func (w *WordLab) completionText(ctx context.Context, prompt string) string {
	text, err := w.completer.Complete(ctx, prompt)
	if err == nil {
		return text
	}

	w.logs.Errorw("completion call failed", "error", err)
	switch {
	case errors.Is(err, completion.ErrTimeout):
		return "Analysis failed: the generation request timed out"
	case errors.Is(err, completion.ErrBadStatus):
		return fmt.Sprintf("Analysis failed: %s", err)
	default:
		return fmt.Sprintf("Analysis failed: server error: %s", err)
	}
}

func normalizeWord(word string, alphaOnly bool) (string, error) {
	normalized := strings.ToLower(strings.TrimSpace(word))
	if normalized == "" {
		return "", ErrEmptyWord
	}
	if alphaOnly {
		for _, r := range normalized {
			if !unicode.IsLetter(r) {
				return "", ErrWordNotAlphabetic
			}
		}
	}
	return normalized, nil
}
