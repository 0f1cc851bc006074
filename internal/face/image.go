package face

import (
	"strings"

	"github.com/growthwpmaxx/face-ai-relay/internal/gemini"
)

const defaultImageMime = "image/jpeg"

// imagePart accepts raw base64 or a data URL like data:image/png;base64,....
func imagePart(payload string) gemini.Part {
	payload = strings.TrimSpace(payload)
	mime := defaultImageMime

	if rest, ok := strings.CutPrefix(payload, "data:"); ok {
		if head, data, found := strings.Cut(rest, ","); found && strings.HasSuffix(head, ";base64") {
			if m := strings.TrimSuffix(head, ";base64"); m != "" {
				mime = m
			}
			payload = data
		}
	}

	return gemini.ImagePart(mime, payload)
}
