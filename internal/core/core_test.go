package core_test

import (
	"context"
	"errors"
	"time"
	"wordlab/internal/completion"
	"wordlab/internal/core"
	"wordlab/internal/core/fake"
	"wordlab/internal/repository"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

var _ = Describe("WordLab", func() {
	var (
		fakeRepo      *fake.Repository
		fakeSessions  *fake.Sessions
		fakeCompleter *fake.Completer
		fakeLogger    *zap.SugaredLogger
		ctx           context.Context

		wordlab *core.WordLab

		fakeErr error
	)

	BeforeEach(func() {
		fakeRepo = new(fake.Repository)
		fakeSessions = new(fake.Sessions)
		fakeCompleter = new(fake.Completer)
		fakeLogger = zap.NewNop().Sugar()
		ctx = context.Background()

		wordlab = core.NewWordLab(fakeLogger, fakeRepo, fakeSessions, fakeCompleter)

		fakeErr = errors.New("fake error")
	})

	Describe("Register", func() {
		var (
			msg core.RegisterMessage
			err error
		)

		BeforeEach(func() {
			msg = core.RegisterMessage{
				Username: "alice",
				Password: "testpass",
				Name:     "Alice",
				Email:    "alice@example.com",
			}
		})

		JustBeforeEach(func() {
			err = wordlab.Register(ctx, msg)
		})

		When("registration succeeds", func() {
			BeforeEach(func() {
				fakeRepo.CreateUserReturns(nil)
			})

			It("should store the user with a bcrypt hash", func() {
				Expect(err).NotTo(HaveOccurred())

				Expect(fakeRepo.CreateUserCallCount()).To(Equal(1))
				_, user := fakeRepo.CreateUserArgsForCall(0)
				Expect(user.Username).To(Equal(msg.Username))
				Expect(user.Name).To(Equal(msg.Name))
				Expect(user.Email).To(Equal(msg.Email))
				Expect(user.PasswordHash).NotTo(Equal(msg.Password))

				cmpErr := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(msg.Password))
				Expect(cmpErr).NotTo(HaveOccurred())
			})
		})

		When("username is already taken", func() {
			BeforeEach(func() {
				fakeRepo.CreateUserReturns(repository.ErrDuplicateUser)
			})

			It("should return duplicate user error", func() {
				Expect(err).To(MatchError(core.ErrDuplicateUser))
			})
		})

		When("the repository fails", func() {
			BeforeEach(func() {
				fakeRepo.CreateUserReturns(fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("Login", func() {
		var (
			authMsg        core.AuthMessage
			token          string
			err            error
			hashedPassword string
		)

		BeforeEach(func() {
			hashedPassword = "$2a$10$1MZHKX./8Dxi9t.F1/gnx.njCcEty299Hx01GLEms2moa3brpT0ky" // bcrypt hash of "testpass"

			authMsg = core.AuthMessage{
				Username: "alice",
				Password: "testpass",
			}
		})

		JustBeforeEach(func() {
			token, err = wordlab.Login(ctx, authMsg)
		})

		When("user exists and password matches", func() {
			BeforeEach(func() {
				fakeRepo.GetUserReturns(repository.User{
					Username:     authMsg.Username,
					PasswordHash: hashedPassword,
				}, nil)
				fakeSessions.CreateReturns("session-token")
			})

			It("should issue a session token", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(token).To(Equal("session-token"))

				Expect(fakeRepo.GetUserCallCount()).To(Equal(1))
				_, username := fakeRepo.GetUserArgsForCall(0)
				Expect(username).To(Equal(authMsg.Username))

				Expect(fakeSessions.CreateCallCount()).To(Equal(1))
				Expect(fakeSessions.CreateArgsForCall(0)).To(Equal(authMsg.Username))
			})
		})

		When("user does not exist", func() {
			BeforeEach(func() {
				fakeRepo.GetUserReturns(repository.User{}, repository.ErrUserNotFound)
			})

			It("should return user not found error", func() {
				Expect(err).To(MatchError(core.ErrUserNotFound))
				Expect(fakeSessions.CreateCallCount()).To(Equal(0))
			})
		})

		When("password does not match", func() {
			BeforeEach(func() {
				fakeRepo.GetUserReturns(repository.User{
					Username:     authMsg.Username,
					PasswordHash: hashedPassword,
				}, nil)
				authMsg.Password = "wrongpass"
			})

			It("should return incorrect password error", func() {
				Expect(err).To(MatchError(core.ErrIncorrectPassword))
				Expect(fakeSessions.CreateCallCount()).To(Equal(0))
			})
		})

		When("the repository fails", func() {
			BeforeEach(func() {
				fakeRepo.GetUserReturns(repository.User{}, fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("Logout", func() {
		It("should destroy the session", func() {
			fakeSessions.ResolveReturns("alice", true)

			wordlab.Logout("session-token")

			Expect(fakeSessions.DestroyCallCount()).To(Equal(1))
			Expect(fakeSessions.DestroyArgsForCall(0)).To(Equal("session-token"))
		})

		It("should tolerate unknown tokens", func() {
			fakeSessions.ResolveReturns("", false)

			wordlab.Logout("no-such-token")

			Expect(fakeSessions.DestroyCallCount()).To(Equal(1))
		})
	})

	Describe("UserInfo", func() {
		var (
			info core.UserInfo
			err  error
		)

		JustBeforeEach(func() {
			info, err = wordlab.UserInfo(ctx, "session-token")
		})

		When("the session is valid", func() {
			BeforeEach(func() {
				fakeSessions.ResolveReturns("alice", true)
				fakeRepo.GetUserReturns(repository.User{
					Username: "alice",
					Name:     "Alice",
					Email:    "alice@example.com",
				}, nil)
			})

			It("should echo the username as display name", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(info.Username).To(Equal("alice"))
				Expect(info.Name).To(Equal("alice"))
				Expect(info.Email).To(Equal("alice@example.com"))
			})
		})

		When("the session is invalid", func() {
			BeforeEach(func() {
				fakeSessions.ResolveReturns("", false)
			})

			It("should return unauthorized error", func() {
				Expect(err).To(MatchError(core.ErrUnauthorized))
				Expect(fakeRepo.GetUserCallCount()).To(Equal(0))
			})
		})
	})

	Describe("AnalyzeBasic", func() {
		var (
			word   string
			result core.AnalysisResult
			err    error
		)

		BeforeEach(func() {
			word = "  Run  "
			fakeSessions.ResolveReturns("alice", true)
			fakeCompleter.CompleteReturns("run: to move fast", nil)
			fakeRepo.UpsertAnalysisReturns(repository.AnalysisRecord{ID: "rec-1"}, nil)
		})

		JustBeforeEach(func() {
			result, err = wordlab.AnalyzeBasic(ctx, "session-token", word)
		})

		When("analysis succeeds", func() {
			It("should upsert the normalized word and return the record id", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(result.Word).To(Equal("run"))
				Expect(result.Analysis).To(Equal("run: to move fast"))
				Expect(result.RecordID).To(Equal("rec-1"))

				Expect(fakeCompleter.CompleteCallCount()).To(Equal(1))
				_, prompt := fakeCompleter.CompleteArgsForCall(0)
				Expect(prompt).To(ContainSubstring(`"run"`))

				Expect(fakeRepo.UpsertAnalysisCallCount()).To(Equal(1))
				_, username, argWord, kind, text := fakeRepo.UpsertAnalysisArgsForCall(0)
				Expect(username).To(Equal("alice"))
				Expect(argWord).To(Equal("run"))
				Expect(kind).To(Equal(repository.AnalysisBasic))
				Expect(text).To(Equal("run: to move fast"))
			})
		})

		When("the session is invalid", func() {
			BeforeEach(func() {
				fakeSessions.ResolveReturns("", false)
			})

			It("should return unauthorized error", func() {
				Expect(err).To(MatchError(core.ErrUnauthorized))
				Expect(fakeCompleter.CompleteCallCount()).To(Equal(0))
			})
		})

		When("the word is blank", func() {
			BeforeEach(func() {
				word = "   "
			})

			It("should return empty word error", func() {
				Expect(err).To(MatchError(core.ErrEmptyWord))
				Expect(fakeRepo.UpsertAnalysisCallCount()).To(Equal(0))
			})
		})

		When("the word contains non-letters", func() {
			BeforeEach(func() {
				word = "run123"
			})

			It("should return non-alphabetic error", func() {
				Expect(err).To(MatchError(core.ErrWordNotAlphabetic))
				Expect(fakeCompleter.CompleteCallCount()).To(Equal(0))
			})
		})

		When("the completion times out", func() {
			BeforeEach(func() {
				fakeCompleter.CompleteReturns("", completion.ErrTimeout)
			})

			It("should record the failure text instead of failing", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(result.Analysis).To(Equal("Analysis failed: the generation request timed out"))

				Expect(fakeRepo.UpsertAnalysisCallCount()).To(Equal(1))
				_, _, _, _, text := fakeRepo.UpsertAnalysisArgsForCall(0)
				Expect(text).To(Equal("Analysis failed: the generation request timed out"))
			})
		})

		When("the completion service answers with an error status", func() {
			BeforeEach(func() {
				fakeCompleter.CompleteReturns("", completion.ErrBadStatus)
			})

			It("should record the failure text instead of failing", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(result.Analysis).To(HavePrefix("Analysis failed:"))
			})
		})

		When("the ledger write fails", func() {
			BeforeEach(func() {
				fakeRepo.UpsertAnalysisReturns(repository.AnalysisRecord{}, fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("AnalyzeAdvanced", func() {
		var (
			word   string
			result core.AnalysisResult
			err    error
		)

		BeforeEach(func() {
			word = "Break"
			fakeSessions.ResolveReturns("alice", true)
			fakeCompleter.CompleteReturns("break: idioms and roots", nil)
			fakeRepo.UpsertAnalysisReturns(repository.AnalysisRecord{ID: "rec-2"}, nil)
		})

		JustBeforeEach(func() {
			result, err = wordlab.AnalyzeAdvanced(ctx, "session-token", word)
		})

		When("analysis succeeds", func() {
			It("should upsert the advanced field and omit the record id", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(result.Word).To(Equal("break"))
				Expect(result.Analysis).To(Equal("break: idioms and roots"))
				Expect(result.RecordID).To(BeEmpty())

				Expect(fakeRepo.UpsertAnalysisCallCount()).To(Equal(1))
				_, _, argWord, kind, _ := fakeRepo.UpsertAnalysisArgsForCall(0)
				Expect(argWord).To(Equal("break"))
				Expect(kind).To(Equal(repository.AnalysisAdvanced))
			})
		})

		When("the word contains non-letters", func() {
			BeforeEach(func() {
				word = "mother-in-law"
			})

			It("should accept it", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(result.Word).To(Equal("mother-in-law"))
			})
		})

		When("the word is blank", func() {
			BeforeEach(func() {
				word = ""
			})

			It("should return empty word error", func() {
				Expect(err).To(MatchError(core.ErrEmptyWord))
			})
		})
	})

	Describe("History", func() {
		var (
			entries []core.HistoryEntry
			err     error
		)

		BeforeEach(func() {
			fakeSessions.ResolveReturns("alice", true)
		})

		JustBeforeEach(func() {
			entries, err = wordlab.History(ctx, "session-token")
		})

		When("the ledger is well formed", func() {
			BeforeEach(func() {
				basic := "b"
				fakeRepo.GetHistoryReturns([]repository.AnalysisRecord{
					{ID: "r1", Word: "run", BasicAnalysis: &basic, Timestamp: time.Date(2026, 8, 2, 10, 0, 0, 0, time.UTC)},
					{ID: "r2", Word: "walk", Timestamp: time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)},
				}, nil)
			})

			It("should list entries newest first", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(entries).To(HaveLen(2))
				Expect(entries[0].Word).To(Equal("run"))
				Expect(entries[0].Timestamp).To(Equal("2026-08-02 10:00:00"))
				Expect(entries[1].Word).To(Equal("walk"))
			})
		})

		When("records arrive out of order", func() {
			BeforeEach(func() {
				fakeRepo.GetHistoryReturns([]repository.AnalysisRecord{
					{ID: "r1", Word: "walk", Timestamp: time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)},
					{ID: "r2", Word: "run", Timestamp: time.Date(2026, 8, 2, 10, 0, 0, 0, time.UTC)},
				}, nil)
			})

			It("should sort them newest first", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(entries[0].Word).To(Equal("run"))
				Expect(entries[1].Word).To(Equal("walk"))
			})
		})

		When("a record has no word", func() {
			BeforeEach(func() {
				fakeRepo.GetHistoryReturns([]repository.AnalysisRecord{
					{ID: "r1", Word: "", Timestamp: time.Date(2026, 8, 2, 10, 0, 0, 0, time.UTC)},
					{ID: "r2", Word: "run", Timestamp: time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)},
				}, nil)
			})

			It("should drop it", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(entries).To(HaveLen(1))
				Expect(entries[0].Word).To(Equal("run"))
			})
		})

		When("a record has no id", func() {
			BeforeEach(func() {
				fakeRepo.GetHistoryReturns([]repository.AnalysisRecord{
					{ID: "r1", Word: "run", Timestamp: time.Date(2026, 8, 2, 10, 0, 0, 0, time.UTC)},
					{ID: "", Word: "walk", Timestamp: time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)},
				}, nil)
			})

			It("should assign a positional fallback id", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(entries).To(HaveLen(2))
				Expect(entries[1].ID).To(Equal("auto_1"))
			})
		})

		When("a record has no timestamp", func() {
			BeforeEach(func() {
				fakeRepo.GetHistoryReturns([]repository.AnalysisRecord{
					{ID: "r1", Word: "run"},
				}, nil)
			})

			It("should substitute the current time", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(entries).To(HaveLen(1))

				ts, parseErr := time.Parse("2006-01-02 15:04:05", entries[0].Timestamp)
				Expect(parseErr).NotTo(HaveOccurred())
				Expect(ts).To(BeTemporally("~", time.Now(), time.Minute))
			})
		})

		When("the session is invalid", func() {
			BeforeEach(func() {
				fakeSessions.ResolveReturns("", false)
			})

			It("should return unauthorized error", func() {
				Expect(err).To(MatchError(core.ErrUnauthorized))
			})
		})

		When("the repository fails", func() {
			BeforeEach(func() {
				fakeRepo.GetHistoryReturns(nil, fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("DebugHistory", func() {
		var (
			report core.DebugReport
			err    error
		)

		BeforeEach(func() {
			fakeSessions.ResolveReturns("alice", true)
		})

		JustBeforeEach(func() {
			report, err = wordlab.DebugHistory(ctx, "session-token")
		})

		When("the ledger has records", func() {
			BeforeEach(func() {
				basic := "b"
				fakeRepo.GetHistoryReturns([]repository.AnalysisRecord{
					{ID: "r1", Word: "run", BasicAnalysis: &basic, Timestamp: time.Date(2026, 8, 2, 10, 0, 0, 0, time.UTC)},
					{ID: "", Word: "", Timestamp: time.Time{}},
				}, nil)
			})

			It("should report the raw ledger shape without cleanup", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(report.Username).To(Equal("alice"))
				Expect(report.TotalRecords).To(Equal(2))
				Expect(report.Records).To(HaveLen(2))

				Expect(report.Records[0].Index).To(Equal(0))
				Expect(report.Records[0].HasBasic).To(BeTrue())
				Expect(report.Records[0].HasAdvanced).To(BeFalse())
				Expect(report.Records[1].Word).To(BeEmpty())
			})
		})

		When("the session is invalid", func() {
			BeforeEach(func() {
				fakeSessions.ResolveReturns("", false)
			})

			It("should return unauthorized error", func() {
				Expect(err).To(MatchError(core.ErrUnauthorized))
			})
		})
	})

	Describe("TestCompletion", func() {
		It("should forward the probe to the completer", func() {
			fakeCompleter.CompleteReturns("pong", nil)

			text, err := wordlab.TestCompletion(ctx)

			Expect(err).NotTo(HaveOccurred())
			Expect(text).To(Equal("pong"))
			Expect(fakeCompleter.CompleteCallCount()).To(Equal(1))
		})

		It("should surface completer errors", func() {
			fakeCompleter.CompleteReturns("", fakeErr)

			_, err := wordlab.TestCompletion(ctx)

			Expect(err).To(MatchError(fakeErr))
		})
	})

	Describe("Status", func() {
		It("should report store counters", func() {
			fakeRepo.CountUsersReturns(3, nil)
			fakeSessions.CountReturns(2)
			fakeCompleter.URLReturns("https://generation.example")

			status := wordlab.Status(ctx)

			Expect(status.Status).To(Equal("healthy"))
			Expect(status.UsersCount).To(Equal(int64(3)))
			Expect(status.ActiveSessions).To(Equal(2))
			Expect(status.APIURL).To(Equal("https://generation.example"))
			Expect(status.APIType).To(Equal("completion proxy"))
			Expect(status.Timestamp).NotTo(BeEmpty())
		})

		It("should stay healthy when counting fails", func() {
			fakeRepo.CountUsersReturns(0, fakeErr)

			status := wordlab.Status(ctx)

			Expect(status.Status).To(Equal("healthy"))
			Expect(status.UsersCount).To(Equal(int64(0)))
		})
	})
})
