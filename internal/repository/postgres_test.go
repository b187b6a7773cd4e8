package repository_test

import (
	"context"
	"errors"
	"time"
	"wordlab/internal/db"
	"wordlab/internal/repository"
	"wordlab/internal/repository/fake"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("WordRepository", func() {
	var (
		repo        *repository.WordRepository
		fakeStorage *fake.Database
		ctx         context.Context
		fakeErr     error
	)

	BeforeEach(func() {
		fakeStorage = new(fake.Database)
		repo = repository.NewWordRepository(fakeStorage)
		ctx = context.Background()
		fakeErr = errors.New("fake error")
	})

	Describe("MigrateTables", func() {
		When("migration succeeds", func() {
			BeforeEach(func() {
				fakeStorage.MigrateTableReturns(nil)
			})

			It("should migrate the user and record tables", func() {
				Expect(repo.MigrateTables()).To(Succeed())

				Expect(fakeStorage.MigrateTableCallCount()).To(Equal(1))
				tables := fakeStorage.MigrateTableArgsForCall(0)
				Expect(tables).To(HaveLen(2))
				Expect(tables[0]).To(BeAssignableToTypeOf(&repository.User{}))
				Expect(tables[1]).To(BeAssignableToTypeOf(&repository.AnalysisRecord{}))
			})
		})

		When("migration fails", func() {
			BeforeEach(func() {
				fakeStorage.MigrateTableReturns(errors.New("migration error"))
			})

			It("should return an error", func() {
				Expect(repo.MigrateTables()).To(MatchError("migrate table(s): migration error"))
			})
		})
	})

	Describe("CreateUser", func() {
		var (
			user repository.User
			err  error
		)

		BeforeEach(func() {
			user = repository.User{Username: "alice"}
		})

		JustBeforeEach(func() {
			err = repo.CreateUser(ctx, user)
		})

		When("the username is free", func() {
			BeforeEach(func() {
				fakeStorage.GetOneByReturns(db.ErrNotFound)
				fakeStorage.CreateReturns(nil)
			})

			It("should create the user", func() {
				Expect(err).NotTo(HaveOccurred())

				Expect(fakeStorage.GetOneByCallCount()).To(Equal(1))
				_, col, val, _ := fakeStorage.GetOneByArgsForCall(0)
				Expect(col).To(Equal("username"))
				Expect(val).To(Equal("alice"))

				Expect(fakeStorage.CreateCallCount()).To(Equal(1))
				_, record := fakeStorage.CreateArgsForCall(0)
				Expect(record).To(BeAssignableToTypeOf(&repository.User{}))
			})
		})

		When("the username is taken", func() {
			BeforeEach(func() {
				fakeStorage.GetOneByReturns(nil)
			})

			It("should return duplicate user error", func() {
				Expect(err).To(MatchError(repository.ErrDuplicateUser))
				Expect(fakeStorage.CreateCallCount()).To(Equal(0))
			})
		})

		When("the existence check fails", func() {
			BeforeEach(func() {
				fakeStorage.GetOneByReturns(fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("GetUser", func() {
		var (
			user repository.User
			err  error
		)

		JustBeforeEach(func() {
			user, err = repo.GetUser(ctx, "alice")
		})

		When("the user exists", func() {
			BeforeEach(func() {
				fakeStorage.GetOneByStub = func(ctx context.Context, column string, value any, entity any) error {
					dest := entity.(*repository.User)
					*dest = repository.User{Username: "alice", Email: "alice@example.com"}
					return nil
				}
			})

			It("should return the user", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(user.Username).To(Equal("alice"))
				Expect(user.Email).To(Equal("alice@example.com"))
			})
		})

		When("the user does not exist", func() {
			BeforeEach(func() {
				fakeStorage.GetOneByReturns(db.ErrNotFound)
			})

			It("should return user not found error", func() {
				Expect(err).To(MatchError(repository.ErrUserNotFound))
			})
		})
	})

	Describe("UpsertAnalysis", func() {
		var (
			rec repository.AnalysisRecord
			err error
		)

		JustBeforeEach(func() {
			rec, err = repo.UpsertAnalysis(ctx, "alice", "Run", repository.AnalysisAdvanced, "advanced text")
		})

		When("a record for the word exists", func() {
			BeforeEach(func() {
				basic := "basic text"
				fakeStorage.GetOneWhereStub = func(ctx context.Context, query string, entity any, args ...any) error {
					dest := entity.(*repository.AnalysisRecord)
					*dest = repository.AnalysisRecord{
						ID:            "rec-1",
						Username:      "alice",
						Word:          "run",
						BasicAnalysis: &basic,
						Timestamp:     time.Date(2020, 8, 1, 10, 0, 0, 0, time.UTC),
					}
					return nil
				}
				fakeStorage.SaveReturns(nil)
			})

			It("should update the record in place", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(rec.ID).To(Equal("rec-1"))
				Expect(*rec.BasicAnalysis).To(Equal("basic text"))
				Expect(*rec.AdvancedAnalysis).To(Equal("advanced text"))
				Expect(rec.Timestamp).To(BeTemporally(">", time.Date(2020, 8, 1, 10, 0, 0, 0, time.UTC)))

				Expect(fakeStorage.GetOneWhereCallCount()).To(Equal(1))
				_, query, _, args := fakeStorage.GetOneWhereArgsForCall(0)
				Expect(query).To(Equal("username = ? AND word = ?"))
				Expect(args).To(Equal([]any{"alice", "run"}))

				Expect(fakeStorage.SaveCallCount()).To(Equal(1))
				Expect(fakeStorage.CreateCallCount()).To(Equal(0))
			})
		})

		When("no record for the word exists", func() {
			BeforeEach(func() {
				fakeStorage.GetOneWhereReturns(db.ErrNotFound)
				fakeStorage.CreateReturns(nil)
			})

			It("should create a fresh record with the lowercased word", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(rec.ID).NotTo(BeEmpty())
				Expect(rec.Word).To(Equal("run"))
				Expect(rec.BasicAnalysis).To(BeNil())
				Expect(*rec.AdvancedAnalysis).To(Equal("advanced text"))

				Expect(fakeStorage.CreateCallCount()).To(Equal(1))
				Expect(fakeStorage.SaveCallCount()).To(Equal(0))
			})
		})

		When("the lookup fails", func() {
			BeforeEach(func() {
				fakeStorage.GetOneWhereReturns(fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})

		When("the write fails", func() {
			BeforeEach(func() {
				fakeStorage.GetOneWhereReturns(db.ErrNotFound)
				fakeStorage.CreateReturns(fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("GetHistory", func() {
		var (
			records []repository.AnalysisRecord
			err     error
		)

		JustBeforeEach(func() {
			records, err = repo.GetHistory(ctx, "alice")
		})

		When("the user has records", func() {
			BeforeEach(func() {
				fakeStorage.GetAllByOrderedStub = func(ctx context.Context, column string, value any, order string, entity any) error {
					dest := entity.(*[]repository.AnalysisRecord)
					*dest = []repository.AnalysisRecord{
						{ID: "r1", Word: "run"},
						{ID: "r2", Word: "walk"},
					}
					return nil
				}
			})

			It("should list them ordered by recency", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(records).To(HaveLen(2))

				Expect(fakeStorage.GetAllByOrderedCallCount()).To(Equal(1))
				_, col, val, order, _ := fakeStorage.GetAllByOrderedArgsForCall(0)
				Expect(col).To(Equal("username"))
				Expect(val).To(Equal("alice"))
				Expect(order).To(Equal("timestamp DESC"))
			})
		})

		When("the query fails", func() {
			BeforeEach(func() {
				fakeStorage.GetAllByOrderedReturns(fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("CountUsers", func() {
		When("counting succeeds", func() {
			BeforeEach(func() {
				fakeStorage.CountModelReturns(5, nil)
			})

			It("should return the user count", func() {
				count, err := repo.CountUsers(ctx)
				Expect(err).NotTo(HaveOccurred())
				Expect(count).To(Equal(int64(5)))

				_, model := fakeStorage.CountModelArgsForCall(0)
				Expect(model).To(BeAssignableToTypeOf(&repository.User{}))
			})
		})

		When("counting fails", func() {
			BeforeEach(func() {
				fakeStorage.CountModelReturns(0, fakeErr)
			})

			It("should return the error", func() {
				count, err := repo.CountUsers(ctx)
				Expect(err).To(MatchError(fakeErr))
				Expect(count).To(Equal(int64(0)))
			})
		})
	})
})
