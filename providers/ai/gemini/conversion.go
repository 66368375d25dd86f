package gemini

import (
	"fmt"
	"strings"
	"time"

	"github.com/parm9695/DocuGenius/providers/ai"
)

// requestToGemini converts an ai.ChatRequest to a Gemini generateContentRequest.
func requestToGemini(request ai.ChatRequest) generateContentRequest {
	req := generateContentRequest{}

	if request.SystemPrompt != "" {
		req.SystemInstruction = &systemInstruction{
			Parts: []part{{Text: request.SystemPrompt}},
		}
	}

	req.Contents = buildContents(request.Messages)
	req.GenerationConfig = buildGenerationConfig(request.GenerationConfig, request.ResponseMIMEType)

	return req
}

// buildContents converts ai.Message slice to Gemini content slice.
// Role mapping: user -> user, assistant -> model, system -> user (system
// messages belong in SystemInstruction; a stray one degrades to a user turn).
func buildContents(messages []ai.Message) []content {
	var contents []content

	for _, msg := range messages {
		role := "user"
		if msg.Role == ai.RoleAssistant {
			role = "model"
		}
		contents = append(contents, content{
			Role:  role,
			Parts: []part{{Text: msg.Content}},
		})
	}

	return contents
}

// buildGenerationConfig maps the generic generation settings and response
// MIME type hint onto Gemini's generationConfig. Returns nil when there is
// nothing to send.
func buildGenerationConfig(gc *ai.GenerationConfig, mimeType string) *generationConfig {
	if gc == nil && mimeType == "" {
		return nil
	}

	out := &generationConfig{ResponseMimeType: mimeType}
	if gc != nil {
		if gc.Temperature != 0 {
			t := float64(gc.Temperature)
			out.Temperature = &t
		}
		if gc.TopP != 0 {
			p := float64(gc.TopP)
			out.TopP = &p
		}
		if gc.MaxOutputTokens != 0 {
			m := gc.MaxOutputTokens
			out.MaxOutputTokens = &m
		}
	}
	return out
}

// geminiToGeneric converts a Gemini response to the generic format.
func geminiToGeneric(resp generateContentResponse) *ai.ChatResponse {
	result := &ai.ChatResponse{
		Id:      fmt.Sprintf("gemini-%d", time.Now().UnixNano()),
		Model:   resp.ModelVersion,
		Created: time.Now().Unix(),
	}

	// Handle empty response
	if len(resp.Candidates) == 0 {
		result.FinishReason = "error"
		if resp.PromptFeedback != nil && resp.PromptFeedback.BlockReason != "" {
			result.FinishReason = "content_filter"
			result.Refusal = resp.PromptFeedback.BlockReason
		}
		return result
	}

	candidate := resp.Candidates[0]
	result.FinishReason = mapFinishReason(candidate.FinishReason)

	if candidate.Content != nil {
		var textParts []string
		for _, p := range candidate.Content.Parts {
			if p.Text != "" {
				textParts = append(textParts, p.Text)
			}
		}
		result.Content = strings.Join(textParts, "")
	}

	if resp.UsageMetadata != nil {
		result.Usage = &ai.Usage{
			PromptTokens:     resp.UsageMetadata.PromptTokenCount,
			CompletionTokens: resp.UsageMetadata.CandidatesTokenCount,
			TotalTokens:      resp.UsageMetadata.TotalTokenCount,
		}
	}

	return result
}

// mapFinishReason converts Gemini finish reasons to the generic vocabulary.
func mapFinishReason(geminiReason string) string {
	switch geminiReason {
	case "STOP":
		return "stop"
	case "MAX_TOKENS":
		return "length"
	case "SAFETY", "RECITATION":
		return "content_filter"
	default:
		return "stop"
	}
}
