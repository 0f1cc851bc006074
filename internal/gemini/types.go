package gemini

import "encoding/json"

const MimeJSON = "application/json"

type InlineData struct {
	MimeType string `json:"mimeType"`
	Data     string `json:"data"`
}

// Part is either a text segment or an inline image.
type Part struct {
	Text       string      `json:"text,omitempty"`
	InlineData *InlineData `json:"inlineData,omitempty"`
}

type Content struct {
	Role  string `json:"role,omitempty"`
	Parts []Part `json:"parts"`
}

type GenerationConfig struct {
	ResponseMimeType string `json:"responseMimeType,omitempty"`
}

// GenerateContentRequest is the body of :generateContent.
// Contents is []Content for built requests or json.RawMessage when the
// caller's turns are relayed as-is.
type GenerateContentRequest struct {
	Contents          any               `json:"contents"`
	SystemInstruction *Content          `json:"systemInstruction,omitempty"`
	GenerationConfig  *GenerationConfig `json:"generationConfig,omitempty"`
}

func TextPart(text string) Part {
	return Part{Text: text}
}

func ImagePart(mimeType, data string) Part {
	return Part{InlineData: &InlineData{MimeType: mimeType, Data: data}}
}

// RawContents wraps an already-encoded contents array.
func RawContents(b []byte) json.RawMessage {
	if len(b) == 0 {
		return json.RawMessage("null")
	}
	return json.RawMessage(b)
}
