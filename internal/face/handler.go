package face

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/growthwpmaxx/face-ai-relay/internal/gemini"
	"github.com/growthwpmaxx/face-ai-relay/internal/httpx"
)

const (
	msgNoAPIKey        = "API Key is not configured on the AI service."
	msgAnalyzeTimeout  = "การวิเคราะห์ใช้เวลานานเกินไป (Timeout) โปรดลองอีกครั้ง"
	msgChatTimeout     = "การเชื่อมต่อ AI Chat ใช้เวลานานเกินไป (Timeout) โปรดลองอีกครั้ง"
	msgInvalidJSONBody = "invalid json"
	msgBodyTooLarge    = "request body is too large"
)

type Handler struct {
	svc Service
}

func NewHandler(svc Service) *Handler {
	return &Handler{svc: svc}
}

// Analyze — POST /analyze
func (h *Handler) Analyze(w http.ResponseWriter, r *http.Request) {
	var req AnalysisRequest
	if !decodeBody(w, r, &req) {
		return
	}

	result, err := h.svc.Analyze(r.Context(), req)
	if err != nil {
		writeServiceError(w, err, msgAnalyzeTimeout)
		return
	}

	httpx.WriteRaw(w, http.StatusOK, result)
}

// Chat — POST /chat
func (h *Handler) Chat(w http.ResponseWriter, r *http.Request) {
	var req ChatRequest
	if !decodeBody(w, r, &req) {
		return
	}

	text, err := h.svc.Chat(r.Context(), req)
	if err != nil {
		writeServiceError(w, err, msgChatTimeout)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, ChatResponse{Response: text})
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	err := json.NewDecoder(r.Body).Decode(v)
	if err == nil {
		return true
	}

	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		httpx.WriteError(w, http.StatusRequestEntityTooLarge, msgBodyTooLarge)
		return false
	}
	httpx.WriteError(w, http.StatusBadRequest, msgInvalidJSONBody)
	return false
}

func writeServiceError(w http.ResponseWriter, err error, timeoutMsg string) {
	switch {
	case errors.Is(err, ErrMissingFrontImage):
		httpx.WriteError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, gemini.ErrMissingAPIKey):
		httpx.WriteError(w, http.StatusInternalServerError, msgNoAPIKey)
	case errors.Is(err, gemini.ErrTimeout):
		httpx.WriteError(w, http.StatusGatewayTimeout, timeoutMsg)
	default:
		// upstream and malformed-response errors carry their own description
		httpx.WriteError(w, http.StatusInternalServerError, err.Error())
	}
}
