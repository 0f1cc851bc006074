package face

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/growthwpmaxx/face-ai-relay/internal/gemini"
	"github.com/growthwpmaxx/face-ai-relay/internal/metrics"
)

var ErrMissingFrontImage = errors.New("frontImage is required")

const (
	opAnalyze = "analyze"
	opChat    = "chat"
)

type service struct {
	upstream    Upstream
	visionModel string
	chatModel   string
}

func NewService(upstream Upstream, visionModel, chatModel string) Service {
	return &service{
		upstream:    upstream,
		visionModel: visionModel,
		chatModel:   chatModel,
	}
}

func (s *service) Analyze(ctx context.Context, req AnalysisRequest) (json.RawMessage, error) {
	if err := s.ready(opAnalyze); err != nil {
		return nil, err
	}
	if strings.TrimSpace(req.FrontImage) == "" {
		return nil, ErrMissingFrontImage
	}

	withSide := strings.TrimSpace(req.SideImage) != ""
	logrus.WithField("side_image", withSide).Info("[svc] analyze")

	body, took, err := s.call(ctx, opAnalyze, s.visionModel, buildAnalysisRequest(req))
	if err != nil {
		return nil, err
	}

	text, err := gemini.FirstCandidateText(body)
	if err != nil {
		return nil, s.malformed(opAnalyze, took, err)
	}

	var out bytes.Buffer
	if err := json.Compact(&out, []byte(text)); err != nil {
		logrus.WithField("text", gemini.Snippet(text)).Error("[svc] analysis text is not JSON")
		return nil, s.malformed(opAnalyze, took, &gemini.MalformedResponseError{
			Reason: "analysis text is not valid JSON",
			Err:    err,
		})
	}

	metrics.ObserveUpstream(opAnalyze, "ok", took)
	return json.RawMessage(out.Bytes()), nil
}

func (s *service) Chat(ctx context.Context, req ChatRequest) (string, error) {
	if err := s.ready(opChat); err != nil {
		return "", err
	}
	logrus.WithField("history_bytes", len(req.ChatHistory)).Info("[svc] chat")

	body, took, err := s.call(ctx, opChat, s.chatModel, buildChatRequest(req))
	if err != nil {
		return "", err
	}

	text, err := gemini.FirstCandidateText(body)
	if err != nil {
		return "", s.malformed(opChat, took, err)
	}

	metrics.ObserveUpstream(opChat, "ok", took)
	return text, nil
}

// ready runs before any input validation: a missing key wins over a bad request.
func (s *service) ready(op string) error {
	if err := s.upstream.Configured(); err != nil {
		metrics.ObserveUpstream(op, outcomeOf(err), 0)
		logrus.WithField("op", op).WithError(err).Error("[svc] relay is not configured")
		return err
	}
	return nil
}

// call performs the single upstream request of an operation.
// Successful calls are recorded by the caller once the body is parsed.
func (s *service) call(ctx context.Context, op, model string, req *gemini.GenerateContentRequest) ([]byte, time.Duration, error) {
	start := time.Now()
	body, err := s.upstream.GenerateContent(ctx, model, req)
	took := time.Since(start)

	if err != nil {
		outcome := outcomeOf(err)
		metrics.ObserveUpstream(op, outcome, took)
		logrus.WithFields(logrus.Fields{
			"op":      op,
			"model":   model,
			"outcome": outcome,
			"took":    took,
		}).WithError(err).Error("[svc] upstream call failed")
		return nil, took, err
	}

	logrus.WithFields(logrus.Fields{"op": op, "model": model, "took": took}).Debug("[svc] upstream ok")
	return body, took, nil
}

func (s *service) malformed(op string, took time.Duration, err error) error {
	metrics.ObserveUpstream(op, "malformed", took)
	logrus.WithField("op", op).WithError(err).Error("[svc] malformed upstream response")
	return err
}

func buildAnalysisRequest(req AnalysisRequest) *gemini.GenerateContentRequest {
	withSide := strings.TrimSpace(req.SideImage) != ""

	parts := []gemini.Part{
		gemini.TextPart(analysisPrompt(withSide)),
		imagePart(req.FrontImage),
	}
	if withSide {
		parts = append(parts, imagePart(req.SideImage))
	}

	return &gemini.GenerateContentRequest{
		Contents:         []gemini.Content{{Parts: parts}},
		GenerationConfig: &gemini.GenerationConfig{ResponseMimeType: gemini.MimeJSON},
	}
}

func buildChatRequest(req ChatRequest) *gemini.GenerateContentRequest {
	analysis := bytes.TrimSpace(req.InitialAnalysis)
	if len(analysis) == 0 {
		analysis = []byte("null")
	}

	return &gemini.GenerateContentRequest{
		Contents: gemini.RawContents(bytes.TrimSpace(req.ChatHistory)),
		SystemInstruction: &gemini.Content{
			Parts: []gemini.Part{gemini.TextPart(chatInstruction(analysis))},
		},
	}
}

func outcomeOf(err error) string {
	var ue *gemini.UpstreamError
	switch {
	case errors.Is(err, gemini.ErrMissingAPIKey):
		return "config_error"
	case errors.Is(err, gemini.ErrTimeout):
		return "timeout"
	case errors.As(err, &ue):
		return "upstream_error"
	default:
		return "error"
	}
}
