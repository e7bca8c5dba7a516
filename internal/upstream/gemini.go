package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"krishisanjivni-backend/internal/domain"
	"krishisanjivni-backend/internal/logger"
)

// GeminiClient calls the generateContent endpoint of the Gemini API with a
// fixed system instruction and the Google Search grounding tool enabled.
type GeminiClient struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
}

func NewGeminiClient(apiKey, model, baseURL string) *GeminiClient {
	return &GeminiClient{
		apiKey:     apiKey,
		model:      model,
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 45 * time.Second},
	}
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []geminiPart `json:"parts"`
}

type geminiRequest struct {
	SystemInstruction *geminiContent           `json:"systemInstruction,omitempty"`
	Contents          []geminiContent          `json:"contents"`
	Tools             []map[string]interface{} `json:"tools,omitempty"`
	GenerationConfig  struct {
		Temperature float64 `json:"temperature"`
	} `json:"generationConfig"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
}

// Generate sends the conversation history to the model and returns the reply
// text. Assistant turns map to the API's "model" role.
func (c *GeminiClient) Generate(ctx context.Context, systemInstruction string, history []domain.ChatMessage) (string, error) {
	reqBody := geminiRequest{
		Contents: make([]geminiContent, 0, len(history)),
		Tools:    []map[string]interface{}{{"googleSearch": map[string]interface{}{}}},
	}
	reqBody.GenerationConfig.Temperature = 0.7
	if systemInstruction != "" {
		reqBody.SystemInstruction = &geminiContent{Parts: []geminiPart{{Text: systemInstruction}}}
	}
	for _, msg := range history {
		role := "user"
		if msg.Role == domain.ChatRoleAssistant {
			role = "model"
		}
		reqBody.Contents = append(reqBody.Contents, geminiContent{
			Role:  role,
			Parts: []geminiPart{{Text: msg.Content}},
		})
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	endpoint := fmt.Sprintf("%s/models/%s:generateContent", c.baseURL, c.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.apiKey)

	logger.ExternalServiceCall("gemini", "generateContent", "turns", len(history))
	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.ExternalServiceResult("gemini", "generateContent", err)
		return "", fmt.Errorf("gemini request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		err := fmt.Errorf("gemini API returned status %d", resp.StatusCode)
		logger.ExternalServiceResult("gemini", "generateContent", err)
		return "", err
	}

	var body geminiResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("decode gemini response: %w", err)
	}
	logger.ExternalServiceResult("gemini", "generateContent", nil)

	if len(body.Candidates) == 0 || len(body.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("gemini returned no candidates")
	}
	return body.Candidates[0].Content.Parts[0].Text, nil
}
