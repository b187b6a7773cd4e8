package cmd

import (
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	"wordlab/internal/completion"
	"wordlab/internal/config"
	"wordlab/internal/core"
	"wordlab/internal/db"
	"wordlab/internal/http/handler"
	"wordlab/internal/http/handler/middleware"
	"wordlab/internal/http/payload"
	"wordlab/internal/http/server"
	"wordlab/internal/repository"
	"wordlab/internal/session"
	"wordlab/pkg/log"

	"go.uber.org/zap/zapcore"
)

func Start() error {
	logger := log.NewZapLogger("wordlab", zapcore.InfoLevel)

	config, err := config.NewApp()
	if err != nil {
		logger.Errorw("failed to create config", "error", err)
		return err
	}

	// credential + history store
	var repo core.Repository
	if config.DBConnectionURL != "" {
		dbConn, err := db.NewPostgresDB(config.DBConnectionURL)
		if err != nil {
			logger.Errorw("failed to connect to database", "error", err)
			return err
		}

		wordRepo := repository.NewWordRepository(dbConn)
		if err := wordRepo.MigrateTables(); err != nil {
			logger.Errorw("failed to migrate tables to database", "error", err)
			return err
		}
		repo = wordRepo
		logger.Infow("using postgres store")
	} else {
		repo = repository.NewMemoryRepository()
		logger.Infow("using in-memory store")
	}

	// sessions are always volatile
	sessions := session.NewStore(time.Duration(config.SessionTTLHours) * time.Hour)

	completer := completion.NewClient(logger, config.CompletionURL)

	// wordlab service
	wordlab := core.NewWordLab(
		logger,
		repo,
		sessions,
		completer)

	// handler
	wordHlr := handler.NewWordHandler(
		logger,
		payload.Decoder{},
		wordlab)

	// register routes
	mux := http.NewServeMux()
	mux.HandleFunc(handler.Register, wordHlr.HandleRegister)
	mux.HandleFunc(handler.Login, wordHlr.HandleLogin)
	mux.HandleFunc(handler.Logout, wordHlr.HandleLogout)
	mux.HandleFunc(handler.UserInfo, wordHlr.HandleUserInfo)
	mux.HandleFunc(handler.AnalyzeBasic, wordHlr.HandleAnalyzeBasic)
	mux.HandleFunc(handler.AnalyzeAdvanced, wordHlr.HandleAnalyzeAdvanced)
	mux.HandleFunc(handler.ChatHistory, wordHlr.HandleChatHistory)
	mux.HandleFunc(handler.DebugHistory, wordHlr.HandleDebugHistory)
	mux.HandleFunc(handler.CompletionTest, wordHlr.HandleCompletionTest)
	mux.HandleFunc(handler.Health, wordHlr.HandleHealth)

	// middleware
	hdlr := middleware.NewCORSMiddleware().CORS(mux)
	hdlr = middleware.NewLoggingMiddleware(logger).Logging(hdlr)
	hdlr = middleware.NewRequestIDMiddleware().RequestID(hdlr)

	srv := server.NewHTTP(logger, hdlr, config.Port)
	return run(srv)
}

func run(server *server.HTTPServer) error {
	// expect a signal to gracefully shutdown the server
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	errChan := server.Run()

	var err error
	select {
	case <-sig:
	case err = <-errChan:
	}

	sdErr := server.Shutdown()
	if err == http.ErrServerClosed && sdErr != nil {
		return fmt.Errorf("server shutdown: %w", sdErr)
	}

	return err
}
