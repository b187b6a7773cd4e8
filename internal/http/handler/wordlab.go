package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"wordlab/internal/core"
	"wordlab/internal/http/handler/middleware"
	"wordlab/internal/http/payload"

	"go.uber.org/zap"
)

var (
	Register        = "POST /api/register"
	Login           = "POST /api/login"
	Logout          = "POST /api/logout"
	UserInfo        = "GET /api/user-info"
	AnalyzeBasic    = "POST /api/analyze-basic"
	AnalyzeAdvanced = "POST /api/analyze-advanced"
	ChatHistory     = "GET /api/chat-history"
	DebugHistory    = "GET /api/debug-history"
	CompletionTest  = "GET /api/completion-test"
	Health          = "GET /health"
)

type WordHandler struct {
	logs             *zap.SugaredLogger
	requestValidator RequestValidator
	service          WordService
}

func NewWordHandler(logger *zap.SugaredLogger, requestValidator RequestValidator, service WordService) *WordHandler {
	return &WordHandler{
		logs:             logger,
		requestValidator: requestValidator,
		service:          service,
	}
}

func (h *WordHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	var req payload.RegisterRequest
	err := h.requestValidator.DecodeJSONPayload(r, &req)
	if err == nil {
		err = req.Validate()
	}
	if err != nil {
		h.respond(w, Response{
			Message: "Could not register",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", Register,
			"request_id", requestId)
		return
	}

	if err := h.service.Register(r.Context(), req.ToMessage()); err != nil {
		resp := Response{
			Message: "Could not register",
		}
		httpCode := http.StatusInternalServerError
		if errors.Is(err, core.ErrDuplicateUser) {
			httpCode = http.StatusBadRequest
			resp.Error = err.Error()
		} else {
			resp.Error = "unexpected error occurred"
		}

		h.respond(w, resp, httpCode, requestId)
		h.logs.Errorw("registration failed",
			"error", err,
			"handler", Register,
			"request_id", requestId)
		return
	}

	h.respond(w, map[string]string{
		"message": "registration complete",
	}, http.StatusOK, requestId)
}

func (h *WordHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	var req payload.LoginRequest
	err := h.requestValidator.DecodeJSONPayload(r, &req)
	if err == nil {
		err = req.Validate()
	}
	if err != nil {
		h.respond(w, Response{
			Message: "Could not log in",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", Login,
			"request_id", requestId)
		return
	}

	token, err := h.service.Login(r.Context(), req.ToMessage())
	if err != nil {
		resp := Response{
			Message: "Login failed",
		}
		httpCode := http.StatusInternalServerError
		if errors.Is(err, core.ErrUserNotFound) || errors.Is(err, core.ErrIncorrectPassword) {
			httpCode = http.StatusUnauthorized
			resp.Error = err.Error()
		} else {
			resp.Error = "unexpected error occurred"
		}

		h.respond(w, resp, httpCode, requestId)
		h.logs.Errorw("login failed",
			"error", err,
			"handler", Login,
			"request_id", requestId)
		return
	}

	h.respond(w, map[string]string{
		"session_id": token,
		"message":    "login successful",
	}, http.StatusOK, requestId)
}

func (h *WordHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	var req payload.LogoutRequest
	err := h.requestValidator.DecodeJSONPayload(r, &req)
	if err == nil {
		err = req.Validate()
	}
	if err != nil {
		h.respond(w, Response{
			Message: "Could not log out",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", Logout,
			"request_id", requestId)
		return
	}

	h.service.Logout(req.SessionID)

	h.respond(w, map[string]string{
		"message": "logged out",
	}, http.StatusOK, requestId)
}

func (h *WordHandler) HandleUserInfo(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	info, err := h.service.UserInfo(r.Context(), r.URL.Query().Get("session_id"))
	if err != nil {
		h.respondServiceError(w, "Could not load user info", UserInfo, err, requestId)
		return
	}

	h.respond(w, info, http.StatusOK, requestId)
}

func (h *WordHandler) HandleAnalyzeBasic(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	req, ok := h.decodeAnalyzeRequest(w, r, AnalyzeBasic, requestId)
	if !ok {
		return
	}

	result, err := h.service.AnalyzeBasic(r.Context(), req.SessionID, req.Word)
	if err != nil {
		h.respondServiceError(w, "Could not analyze word", AnalyzeBasic, err, requestId)
		return
	}

	h.respond(w, map[string]string{
		"word":      result.Word,
		"analysis":  result.Analysis,
		"record_id": result.RecordID,
	}, http.StatusOK, requestId)
}

func (h *WordHandler) HandleAnalyzeAdvanced(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	req, ok := h.decodeAnalyzeRequest(w, r, AnalyzeAdvanced, requestId)
	if !ok {
		return
	}

	result, err := h.service.AnalyzeAdvanced(r.Context(), req.SessionID, req.Word)
	if err != nil {
		h.respondServiceError(w, "Could not analyze word", AnalyzeAdvanced, err, requestId)
		return
	}

	h.respond(w, map[string]string{
		"word":     result.Word,
		"analysis": result.Analysis,
	}, http.StatusOK, requestId)
}

func (h *WordHandler) HandleChatHistory(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	history, err := h.service.History(r.Context(), r.URL.Query().Get("session_id"))
	if err != nil {
		h.respondServiceError(w, "Could not load history", ChatHistory, err, requestId)
		return
	}

	h.respond(w, map[string][]core.HistoryEntry{
		"history": history,
	}, http.StatusOK, requestId)
}

func (h *WordHandler) HandleDebugHistory(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	report, err := h.service.DebugHistory(r.Context(), r.URL.Query().Get("session_id"))
	if err != nil {
		h.respondServiceError(w, "Could not load history", DebugHistory, err, requestId)
		return
	}

	h.respond(w, report, http.StatusOK, requestId)
}

func (h *WordHandler) HandleCompletionTest(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	text, err := h.service.TestCompletion(r.Context())
	if err != nil {
		h.respond(w, map[string]string{
			"status":  "error",
			"message": fmt.Sprintf("completion service unreachable: %s", err),
		}, http.StatusOK, requestId)
		h.logs.Errorw("completion test failed",
			"error", err,
			"handler", CompletionTest,
			"request_id", requestId)
		return
	}

	if runes := []rune(text); len(runes) > 100 {
		text = string(runes[:100]) + "..."
	}
	h.respond(w, map[string]string{
		"status":   "success",
		"message":  "completion service reachable",
		"response": text,
	}, http.StatusOK, requestId)
}

func (h *WordHandler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)
	h.respond(w, h.service.Status(r.Context()), http.StatusOK, requestId)
}

func (h *WordHandler) decodeAnalyzeRequest(w http.ResponseWriter, r *http.Request, route, requestId string) (payload.AnalyzeRequest, bool) {
	var req payload.AnalyzeRequest
	err := h.requestValidator.DecodeJSONPayload(r, &req)
	if err == nil {
		err = req.Validate()
	}
	if err != nil {
		h.respond(w, Response{
			Message: "Could not analyze word",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", route,
			"request_id", requestId)
		return payload.AnalyzeRequest{}, false
	}
	return req, true
}

func (h *WordHandler) respondServiceError(w http.ResponseWriter, message, route string, err error, requestId string) {
	resp := Response{
		Message: message,
	}
	httpCode := http.StatusInternalServerError
	switch {
	case errors.Is(err, core.ErrUnauthorized):
		httpCode = http.StatusUnauthorized
		resp.Error = err.Error()
	case errors.Is(err, core.ErrEmptyWord), errors.Is(err, core.ErrWordNotAlphabetic):
		httpCode = http.StatusBadRequest
		resp.Error = err.Error()
	default:
		resp.Error = err.Error()
	}

	h.respond(w, resp, httpCode, requestId)
	h.logs.Errorw("request failed",
		"error", err,
		"handler", route,
		"request_id", requestId)
}

func (h *WordHandler) respond(w http.ResponseWriter, resp any, code int, requestId string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		http.Error(w, oopsErr, http.StatusInternalServerError)
		h.logs.Errorw("failed to encode response",
			"error", err,
			"request_id", requestId)
	}
}

func requestID(r *http.Request) string {
	if reqIdCtx := r.Context().Value(middleware.RequestIDKey); reqIdCtx != nil {
		return reqIdCtx.(string)
	}
	return ""
}
