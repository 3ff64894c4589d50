package openai

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/avast/retry-go"
	"resty.dev/v3"

	"github.com/at-ishikawa/wordquiz/internal/inference"
)

const (
	defaultBaseURL = "https://api.openai.com/v1"

	generateWordTemperature = 0.7
	generateWordMaxTokens   = 500
	exampleSentenceCount    = 3
)

type Client struct {
	httpClient       *resty.Client
	model            string
	maxRetryAttempts uint
}

func NewClient(apiKey, model string, retryAttempts uint) *Client {
	client := resty.New()
	client.SetBaseURL(defaultBaseURL)
	client.SetHeader("Authorization", "Bearer "+apiKey)
	client.SetHeader("Content-Type", "application/json")

	return &Client{
		httpClient:       client,
		model:            model,
		maxRetryAttempts: retryAttempts,
	}
}

func (client Client) Close() error {
	return client.httpClient.Close()
}

// GetModel returns the model name configured for this client
func (client Client) GetModel() string {
	return client.model
}

type ChatCompletionRequest struct {
	Model          string          `json:"model"`
	Messages       []Message       `json:"messages"`
	Temperature    float32         `json:"temperature,omitempty"`
	MaxTokens      int             `json:"max_tokens,omitempty"`
	ResponseFormat *ResponseFormat `json:"response_format,omitempty"`
}

type ResponseFormat struct {
	Type string `json:"type"`
}

type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

type ChatCompletionResponse struct {
	ID      string   `json:"id"`
	Object  string   `json:"object"`
	Created int64    `json:"created"`
	Model   string   `json:"model"`
	Choices []Choice `json:"choices"`
	Usage   Usage    `json:"usage"`
}

type Choice struct {
	Index        int           `json:"index"`
	Message      ChoiceMessage `json:"message"`
	FinishReason string        `json:"finish_reason"`
}

type ChoiceMessage struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

type Usage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// isRetryableError determines if an error should trigger a retry
func isRetryableError(err error) bool {
	if err == nil {
		return false
	}

	// Retry on JSON parsing errors as they might be due to incomplete responses
	errStr := err.Error()
	if strings.Contains(errStr, "json.Unmarshal") || strings.Contains(errStr, "unexpected end of JSON input") {
		return true
	}

	if strings.Contains(errStr, "connection refused") || strings.Contains(errStr, "i/o timeout") {
		return true
	}

	// 5xx and rate limiting
	if strings.Contains(errStr, "response error 5") || strings.Contains(errStr, "response error 429") {
		return true
	}

	return false
}

// GenerateWord implements the inference.Client interface
func (client *Client) GenerateWord(
	ctx context.Context,
	params inference.GenerateWordRequest,
) (inference.GenerateWordResponse, error) {
	var result inference.GenerateWordResponse
	if err := retry.Do(
		func() error {
			response, err := client.generateWord(ctx, params)
			if err != nil {
				if !isRetryableError(err) {
					return retry.Unrecoverable(err)
				}
				slog.Default().Info("retrying OpenAI API call",
					"word", params.Word,
					"error", err)
				return err
			}
			result = response
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(client.maxRetryAttempts+1),
		retry.LastErrorOnly(true),
		retry.DelayType(func(n uint, err error, config *retry.Config) time.Duration {
			return retry.BackOffDelay(n, err, config)
		}),
	); err != nil {
		return inference.GenerateWordResponse{}, err
	}
	return result, nil
}

func (client *Client) getRequestBody(word string) ChatCompletionRequest {
	prompt := fmt.Sprintf(`Generate information for the word "%s" with the following requirements:
- Part of speech (noun, verb, adjective, etc.)
- Clear and concise definition without using the word in the definition.
- Exactly %d example sentences using the word. Use "____" to indicate the word in each sentence.
- Difficulty level (A1, A2, B1, B2, C1, C2)

Respond ONLY with a JSON object in this exact format, with no additional text or markdown:
{
  "part_of_speech": "your_response",
  "meaning": "your_response",
  "example_sentences": ["First sentence.", "Second sentence.", "Third sentence."],
  "level": "your_response"
}`, word, exampleSentenceCount)

	return ChatCompletionRequest{
		Model:       client.model,
		Temperature: generateWordTemperature,
		MaxTokens:   generateWordMaxTokens,
		ResponseFormat: &ResponseFormat{
			Type: "json_object",
		},
		Messages: []Message{
			{Role: RoleUser, Content: prompt},
		},
	}
}

func (client *Client) generateWord(
	ctx context.Context,
	params inference.GenerateWordRequest,
) (inference.GenerateWordResponse, error) {
	word := strings.TrimSpace(params.Word)
	if word == "" {
		return inference.GenerateWordResponse{}, fmt.Errorf("word is required")
	}

	requestBody := client.getRequestBody(word)
	response, err := client.httpClient.R().
		SetContext(ctx).
		SetBody(requestBody).
		SetResult(&ChatCompletionResponse{}).
		Post("/chat/completions")
	if err != nil {
		return inference.GenerateWordResponse{}, fmt.Errorf("httpClient.Post > %w", err)
	}
	if response.IsError() {
		return inference.GenerateWordResponse{}, fmt.Errorf("response error %d: %s", response.StatusCode(), response.String())
	}

	responseBody := response.Result().(*ChatCompletionResponse)
	if responseBody == nil || len(responseBody.Choices) == 0 {
		return inference.GenerateWordResponse{}, fmt.Errorf("empty response body or choices: %s", response.String())
	}

	content := strings.TrimSpace(responseBody.Choices[0].Message.Content)
	if content == "" {
		return inference.GenerateWordResponse{}, fmt.Errorf("empty response content: %s", response.String())
	}
	slog.Default().Debug("openai response content",
		"word", word,
		"response", content,
	)

	var decoded inference.GenerateWordResponse
	if err := json.NewDecoder(strings.NewReader(content)).Decode(&decoded); err != nil {
		return inference.GenerateWordResponse{}, fmt.Errorf("json.Unmarshal(%s) > %w", content, err)
	}
	if err := validateGeneratedWord(decoded); err != nil {
		return inference.GenerateWordResponse{}, fmt.Errorf("invalid response format for %s: %w", word, err)
	}
	return decoded, nil
}

func validateGeneratedWord(generated inference.GenerateWordResponse) error {
	var missing []string
	if strings.TrimSpace(generated.PartOfSpeech) == "" {
		missing = append(missing, "part_of_speech")
	}
	if strings.TrimSpace(generated.Meaning) == "" {
		missing = append(missing, "meaning")
	}
	if len(generated.ExampleSentences) == 0 {
		missing = append(missing, "example_sentences")
	}
	if strings.TrimSpace(generated.Level) == "" {
		missing = append(missing, "level")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing fields %v", missing)
	}
	return nil
}
