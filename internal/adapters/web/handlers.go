package web

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/Mariakhan-AI/email-classifier-ML/internal/core"
)

// Page states
const (
	stateIdle    = ""
	stateWarning = "warning"
	stateSpam    = "spam"
	stateNotSpam = "not-spam"
	stateError   = "error"
)

const (
	messageField  = "message"
	internalError = "Something went wrong while analyzing the message."
)

type pageData struct {
	Message string
	State   string
	Error   string
	Model   string
}

type classifyRequest struct {
	Message string `json:"message" validate:"notblank"`
}

type classifyResponse struct {
	ProcessingID string `json:"processing_id"`
	Label        string `json:"label"`
	IsSpam       bool   `json:"is_spam"`
	Normalized   string `json:"normalized"`
	Model        string `json:"model"`
	DurationUS   int64  `json:"duration_us"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (f *WebFilter) handleIndex(w http.ResponseWriter, r *http.Request) {
	f.render(w, http.StatusOK, pageData{State: stateIdle})
}

func (f *WebFilter) handleAnalyzeForm(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, f.cfg.MaxMessageSize)
	if err := r.ParseForm(); err != nil {
		status := http.StatusBadRequest
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			status = http.StatusRequestEntityTooLarge
		}
		f.render(w, status, pageData{State: stateError, Error: http.StatusText(status)})
		return
	}

	message := r.PostFormValue(messageField)
	data := pageData{Message: message}

	result, err := f.service.Analyze(r.Context(), message)
	switch {
	case errors.Is(err, core.ErrEmptyMessage):
		data.State = stateWarning
	case err != nil:
		f.logger.Error("Failed to analyze message",
			zap.Error(err),
			zap.String("request_id", middleware.GetReqID(r.Context())))
		data.State = stateError
		data.Error = internalError
		f.render(w, http.StatusInternalServerError, data)
		return
	case result.IsSpam:
		data.State = stateSpam
	default:
		data.State = stateNotSpam
	}

	f.render(w, http.StatusOK, data)
}

func (f *WebFilter) handleClassify(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, f.cfg.MaxMessageSize)

	var req classifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeJSON(w, http.StatusRequestEntityTooLarge, errorResponse{Error: "message too large"})
			return
		}
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON body"})
		return
	}

	if err := f.validate.Struct(req); err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: "message must not be empty"})
		return
	}

	result, err := f.service.Analyze(r.Context(), req.Message)
	if err != nil {
		if errors.Is(err, core.ErrEmptyMessage) {
			writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: "message must not be empty"})
			return
		}
		f.logger.Error("Failed to analyze message",
			zap.Error(err),
			zap.String("request_id", middleware.GetReqID(r.Context())))
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "classification failed"})
		return
	}

	writeJSON(w, http.StatusOK, classifyResponse{
		ProcessingID: result.ProcessingID,
		Label:        result.Label.String(),
		IsSpam:       result.IsSpam,
		Normalized:   result.Normalized,
		Model:        result.ModelUsed,
		DurationUS:   result.Duration.Microseconds(),
	})
}

func (f *WebFilter) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("ok")); err != nil {
		f.logger.Warn("Health check write failed", zap.Error(err))
	}
}

func (f *WebFilter) render(w http.ResponseWriter, status int, data pageData) {
	data.Model = f.modelName
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := f.page.Execute(w, data); err != nil {
		f.logger.Error("Failed to render page", zap.Error(err))
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
