package completion_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"time"
	"wordlab/internal/completion"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("Client", func() {
	var (
		server     *httptest.Server
		handleFunc http.HandlerFunc
		client     *completion.Client
		ctx        context.Context
	)

	BeforeEach(func() {
		ctx = context.Background()
		handleFunc = func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"choices":[{"message":{"content":"generated text"}}]}`))
		}
	})

	JustBeforeEach(func() {
		server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			handleFunc(w, r)
		}))
		client = completion.NewClient(zap.NewNop().Sugar(), server.URL)
	})

	AfterEach(func() {
		server.Close()
	})

	Describe("URL", func() {
		It("should expose the configured endpoint", func() {
			Expect(client.URL()).To(Equal(server.URL))
		})
	})

	Describe("Complete", func() {
		When("the service answers", func() {
			var (
				requestBody   []completion.Message
				requestMethod string
				contentType   string
			)

			BeforeEach(func() {
				handleFunc = func(w http.ResponseWriter, r *http.Request) {
					requestMethod = r.Method
					contentType = r.Header.Get("Content-Type")
					_ = json.NewDecoder(r.Body).Decode(&requestBody)

					w.Write([]byte(`{"choices":[{"message":{"content":"generated text"}}]}`))
				}
			})

			It("should send the chat messages and return the first choice", func() {
				text, err := client.Complete(ctx, "analyze the word run")

				Expect(err).NotTo(HaveOccurred())
				Expect(text).To(Equal("generated text"))

				Expect(requestMethod).To(Equal(http.MethodPost))
				Expect(contentType).To(Equal("application/json"))
				Expect(requestBody).To(HaveLen(2))
				Expect(requestBody[0].Role).To(Equal("system"))
				Expect(requestBody[1].Role).To(Equal("user"))
				Expect(requestBody[1].Content).To(Equal("analyze the word run"))
			})
		})

		When("the service answers with an error status", func() {
			BeforeEach(func() {
				handleFunc = func(w http.ResponseWriter, r *http.Request) {
					w.WriteHeader(http.StatusBadGateway)
				}
			})

			It("should return a bad status error carrying the code", func() {
				_, err := client.Complete(ctx, "prompt")

				Expect(err).To(MatchError(completion.ErrBadStatus))
				Expect(err.Error()).To(ContainSubstring("502"))
			})
		})

		When("the response body is not valid JSON", func() {
			BeforeEach(func() {
				handleFunc = func(w http.ResponseWriter, r *http.Request) {
					w.Write([]byte("not json"))
				}
			})

			It("should return a decode error", func() {
				_, err := client.Complete(ctx, "prompt")

				Expect(err).To(HaveOccurred())
				Expect(err.Error()).To(ContainSubstring("decode completion response"))
			})
		})

		When("the response carries no choices", func() {
			BeforeEach(func() {
				handleFunc = func(w http.ResponseWriter, r *http.Request) {
					w.Write([]byte(`{"choices":[]}`))
				}
			})

			It("should return an error", func() {
				_, err := client.Complete(ctx, "prompt")

				Expect(err).To(MatchError("completion response contains no choices"))
			})
		})

		When("the request deadline passes", func() {
			var release chan struct{}

			BeforeEach(func() {
				release = make(chan struct{})
				handleFunc = func(w http.ResponseWriter, r *http.Request) {
					<-release
				}
			})

			AfterEach(func() {
				close(release)
			})

			It("should return a timeout error", func() {
				deadlineCtx, cancel := context.WithTimeout(ctx, 20*time.Millisecond)
				defer cancel()

				_, err := client.Complete(deadlineCtx, "prompt")

				Expect(err).To(MatchError(completion.ErrTimeout))
			})
		})
	})
})
