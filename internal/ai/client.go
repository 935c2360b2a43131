package ai

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/Arihant25/janya-backend/internal/config"
)

// Client talks to an OpenAI-compatible chat-completions endpoint. With
// no API key configured every method falls back to a deterministic
// local heuristic, so the app stays usable in development.
type Client struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
}

func NewClient(cfg *config.Config) *Client {
	return &Client{
		apiKey:     cfg.OpenAIAPIKey,
		model:      cfg.OpenAIModel,
		baseURL:    cfg.OpenAIAPIURL,
		httpClient: &http.Client{Timeout: cfg.AITimeout},
	}
}

// HasKey reports whether a provider API key is configured.
func (c *Client) HasKey() bool {
	return c.apiKey != ""
}

// NewClientWithBaseURL is used by tests to point the client at a fake server.
func NewClientWithBaseURL(apiKey, model, baseURL string) *Client {
	return &Client{
		apiKey:     apiKey,
		model:      model,
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// --- OpenAI types ---

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// MoodAnalysis is the structured result of analyzing one entry's text.
type MoodAnalysis struct {
	Mood     string   `json:"mood"`
	Score    int      `json:"score"`
	Keywords []string `json:"keywords"`
	Insight  string   `json:"insight"`
}

// ChatTurn is one message of a companion conversation.
type ChatTurn struct {
	Role    string
	Content string
}

// Suggestion is one content recommendation.
type Suggestion struct {
	Title  string `json:"title"`
	Kind   string `json:"kind"`
	Reason string `json:"reason"`
}

// AnalyzeEntry classifies the mood of a journal entry. Provider errors
// degrade to the keyword fallback rather than failing entry creation.
func (c *Client) AnalyzeEntry(content string) (*MoodAnalysis, error) {
	if c.apiKey == "" {
		return fallbackAnalyze(content), nil
	}

	prompt := fmt.Sprintf(`You are a journaling assistant. Analyze the mood of this journal entry.

Entry:
%s

Return a JSON object with:
- mood: one of [happy, sad, excited, calm, anxious, angry, thoughtful, inspired, neutral]
- score: an integer 1-100 where 100 is the most positive
- keywords: up to 5 short lowercase theme words found in the entry
- insight: one supportive sentence reflecting the entry back to the writer

Return ONLY valid JSON.`, content)

	raw, err := c.complete([]chatMessage{
		{Role: "system", Content: "You are a mood analysis assistant that returns only valid JSON objects."},
		{Role: "user", Content: prompt},
	}, 0.3, 300)
	if err != nil {
		return fallbackAnalyze(content), nil
	}

	var analysis MoodAnalysis
	if err := json.Unmarshal([]byte(stripCodeFence(raw)), &analysis); err != nil {
		return fallbackAnalyze(content), nil
	}
	if analysis.Score < 1 || analysis.Score > 100 {
		analysis.Score = 50
	}
	return &analysis, nil
}

// CompanionReply produces the assistant's next message in a companion
// conversation. History is oldest-first.
func (c *Client) CompanionReply(history []ChatTurn) (string, error) {
	if c.apiKey == "" {
		return fallbackReply(history), nil
	}

	messages := make([]chatMessage, 0, len(history)+1)
	messages = append(messages, chatMessage{
		Role: "system",
		Content: "You are a warm, supportive journaling companion. Respond in 2-4 sentences. " +
			"Validate feelings, ask gentle follow-up questions, never give medical advice.",
	})
	for _, turn := range history {
		messages = append(messages, chatMessage{Role: turn.Role, Content: turn.Content})
	}

	reply, err := c.complete(messages, 0.8, 400)
	if err != nil {
		return fallbackReply(history), nil
	}
	return strings.TrimSpace(reply), nil
}

// Recommend generates content suggestions from a mood/theme summary.
func (c *Client) Recommend(topMoods, themes []string) ([]Suggestion, error) {
	if c.apiKey == "" {
		return fallbackSuggestions(topMoods), nil
	}

	prompt := fmt.Sprintf(`You are a wellbeing assistant. The user's recent journal moods are [%s] and their recurring themes are [%s].

Suggest 3 to 5 pieces of content or activities that fit this emotional state.

Return a JSON array of objects with:
- title: short name of the suggestion
- kind: one of [article, activity, exercise, music, book]
- reason: one sentence tying it to the user's moods

Return ONLY valid JSON.`, strings.Join(topMoods, ", "), strings.Join(themes, ", "))

	raw, err := c.complete([]chatMessage{
		{Role: "system", Content: "You are a recommendation assistant that returns only valid JSON arrays."},
		{Role: "user", Content: prompt},
	}, 0.7, 600)
	if err != nil {
		return fallbackSuggestions(topMoods), nil
	}

	var suggestions []Suggestion
	if err := json.Unmarshal([]byte(stripCodeFence(raw)), &suggestions); err != nil {
		return fallbackSuggestions(topMoods), nil
	}
	if len(suggestions) == 0 {
		return fallbackSuggestions(topMoods), nil
	}
	return suggestions, nil
}

func (c *Client) complete(messages []chatMessage, temperature float64, maxTokens int) (string, error) {
	reqBody, err := json.Marshal(chatRequest{
		Model:       c.model,
		Messages:    messages,
		Temperature: temperature,
		MaxTokens:   maxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequest("POST", c.baseURL, bytes.NewBuffer(reqBody))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("failed to call AI provider: %w", err)
	}
	defer httpResp.Body.Close()

	if httpResp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(httpResp.Body)
		return "", fmt.Errorf("AI provider error (status %d): %s", httpResp.StatusCode, string(bodyBytes))
	}

	var resp chatResponse
	if err := json.NewDecoder(httpResp.Body).Decode(&resp); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("no response from AI provider")
	}
	return resp.Choices[0].Message.Content, nil
}

// stripCodeFence removes a markdown ```json fence some models wrap
// around JSON output.
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimPrefix(s, "```")
		s = strings.TrimSuffix(s, "```")
	}
	return strings.TrimSpace(s)
}
