package analyze

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"

	"paperdeck/internal/paper"
)

// Client calls an OpenRouter-compatible chat completions API to turn
// paper text into a structured analysis.
type Client struct {
	apiKey     string
	baseURL    string
	model      string
	appName    string
	referer    string
	httpClient *http.Client
	stats      *LLMStats
}

// Options configures a Client. Zero fields fall back to defaults.
type Options struct {
	APIKey  string
	BaseURL string
	Model   string
	AppName string
	Referer string
	Timeout time.Duration
}

func NewClient(opts Options) *Client {
	if opts.BaseURL == "" {
		opts.BaseURL = "https://openrouter.ai/api/v1"
	}
	if opts.Model == "" {
		opts.Model = "anthropic/claude-3.5-sonnet"
	}
	if opts.AppName == "" {
		opts.AppName = "Paperdeck"
	}
	if opts.Referer == "" {
		opts.Referer = "http://localhost:8080"
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 120 * time.Second
	}
	return &Client{
		apiKey:  opts.APIKey,
		baseURL: strings.TrimSuffix(opts.BaseURL, "/"),
		model:   opts.Model,
		appName: opts.AppName,
		referer: opts.Referer,
		httpClient: &http.Client{
			Timeout: opts.Timeout,
		},
		stats: NewLLMStats(time.Hour),
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

const systemPrompt = "You are an expert research analyst specializing in academic paper analysis. You must respond ONLY with valid JSON, no additional text or explanation."

// Analyze sends the paper text to the LLM and decodes the structured
// summary. Transient API failures are retried with backoff.
func (c *Client) Analyze(ctx context.Context, paperText string) (paper.Document, error) {
	prompt := BuildPrompt(paperText)

	var lastErr error
	for attempt := 0; attempt <= MaxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return paper.Document{}, ctx.Err()
			case <-time.After(Backoff(attempt - 1)):
			}
		}

		start := time.Now()
		doc, err := c.complete(ctx, prompt)
		c.stats.Record(time.Since(start))
		if err == nil {
			return doc, nil
		}
		lastErr = err
		if !IsRetryable(err) {
			return paper.Document{}, err
		}
	}
	return paper.Document{}, fmt.Errorf("llm call failed after %d attempts: %w", MaxRetries+1, lastErr)
}

func (c *Client) complete(ctx context.Context, prompt string) (paper.Document, error) {
	reqBody := chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: prompt},
		},
		Temperature: 0.3,
	}
	body, err := json.Marshal(reqBody)
	if err != nil {
		return paper.Document{}, fmt.Errorf("marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return paper.Document{}, fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	httpReq.Header.Set("HTTP-Referer", c.referer)
	httpReq.Header.Set("X-Title", c.appName)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return paper.Document{}, fmt.Errorf("openrouter api: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return paper.Document{}, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500 {
		return paper.Document{}, &RetryableError{
			StatusCode: resp.StatusCode,
			Message:    string(respBody),
		}
	}
	if resp.StatusCode != http.StatusOK {
		return paper.Document{}, fmt.Errorf("openrouter api status %d: %s", resp.StatusCode, truncate(string(respBody), 200))
	}

	var apiResp chatResponse
	if err := json.Unmarshal(respBody, &apiResp); err != nil {
		return paper.Document{}, fmt.Errorf("decode response: %w", err)
	}
	if apiResp.Error != nil {
		return paper.Document{}, fmt.Errorf("openrouter error %d: %s", apiResp.Error.Code, apiResp.Error.Message)
	}
	if len(apiResp.Choices) == 0 {
		return paper.Document{}, fmt.Errorf("empty response from llm")
	}

	return DecodeAnalysis(apiResp.Choices[0].Message.Content)
}

// analysisPayload accepts both our canonical keys and the legacy
// section names some models echo back from older prompt versions.
type analysisPayload struct {
	paper.Document
	WhatDoesPaperDo       string `json:"what_does_paper_do"`
	HowDoesPaperDo        string `json:"how_does_paper_do"`
	LimitationsChallenges string `json:"limitations_challenges"`
}

// DecodeAnalysis parses the LLM's JSON answer into a Document. Code
// fences and surrounding prose around the JSON object are tolerated.
func DecodeAnalysis(content string) (paper.Document, error) {
	text := stripCodeBlock(content)
	if !strings.HasPrefix(text, "{") {
		if m := jsonObjectRe.FindString(text); m != "" {
			text = m
		}
	}

	var payload analysisPayload
	if err := json.Unmarshal([]byte(text), &payload); err != nil {
		return paper.Document{}, fmt.Errorf("parse analysis json: %w (raw: %s)", err, truncate(text, 200))
	}

	doc := payload.Document
	if doc.Experiments == "" {
		doc.Experiments = payload.WhatDoesPaperDo
	}
	if doc.Methodology == "" {
		doc.Methodology = payload.HowDoesPaperDo
	}
	if doc.Limitations == "" {
		doc.Limitations = payload.LimitationsChallenges
	}
	return doc, nil
}

var (
	codeBlockRe  = regexp.MustCompile("(?s)^```(?:json)?\\s*(.*?)\\s*```$")
	jsonObjectRe = regexp.MustCompile(`\{[\s\S]*\}`)
)

func stripCodeBlock(s string) string {
	s = strings.TrimSpace(s)
	if m := codeBlockRe.FindStringSubmatch(s); len(m) > 1 {
		return m[1]
	}
	return s
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}

// Stats returns a snapshot of recent call latencies.
func (c *Client) Stats() StatsSnapshot {
	return c.stats.Snapshot()
}

// Close releases resources.
func (c *Client) Close() {
	c.httpClient.CloseIdleConnections()
}
