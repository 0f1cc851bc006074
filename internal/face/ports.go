package face

import (
	"context"
	"encoding/json"

	"github.com/growthwpmaxx/face-ai-relay/internal/gemini"
)

// AnalysisRequest carries base64 images, optionally as data URLs.
type AnalysisRequest struct {
	FrontImage string `json:"frontImage"`
	SideImage  string `json:"sideImage,omitempty"`
}

// ChatRequest is relayed as-is: both fields are opaque JSON.
type ChatRequest struct {
	ChatHistory     json.RawMessage `json:"chatHistory"`
	InitialAnalysis json.RawMessage `json:"initialAnalysis"`
}

type ChatResponse struct {
	Response string `json:"response"`
}

// Upstream — the generative model endpoint.
type Upstream interface {
	Configured() error
	GenerateContent(ctx context.Context, model string, req *gemini.GenerateContentRequest) ([]byte, error)
}

// Service — analyze and chat, one upstream call each.
type Service interface {
	Analyze(ctx context.Context, req AnalysisRequest) (json.RawMessage, error)
	Chat(ctx context.Context, req ChatRequest) (string, error)
}
