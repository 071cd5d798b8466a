package providers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	openAIBaseURL    = "https://api.openai.com/v1"
	openAIEmbedModel = "text-embedding-3-small"
	openAIChatModel  = "gpt-4o-mini"
	openAIEmbedDim   = 1536
)

const answerSystemPrompt = `You are a financial analyst answering STRICTLY and EXCLUSIVELY from the provided context from shareholder letters.

CRITICAL RULES:
1. You MUST ONLY use information from the provided context below
2. DO NOT use any knowledge from your training data
3. If the context doesn't contain enough information to answer the question, say "The provided context does not contain sufficient information to answer this question."
4. Always cite which chunk(s) you used by referencing the chunk numbers [Chunk 1], [Chunk 2], etc.
5. If you cannot answer from the context, explicitly state that the information is not available in the provided letters.`

// OpenAIClient speaks to the standard OpenAI REST APIs. It backs both the
// semantic embedder (1536-dim text-embedding-3-small) and the answer
// generator (gpt-4o-mini).
type OpenAIClient struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

func NewOpenAIClient(apiKey string) *OpenAIClient {
	return &OpenAIClient{
		apiKey:  apiKey,
		baseURL: openAIBaseURL,
		client:  &http.Client{Timeout: 60 * time.Second},
	}
}

func (o *OpenAIClient) Name() string { return "openai" }

func (o *OpenAIClient) Dimension() int { return openAIEmbedDim }

func (o *OpenAIClient) Embed(ctx context.Context, texts []string) ([][]float32, error) {
	if o.apiKey == "" {
		return nil, fmt.Errorf("openai api key missing")
	}
	payload, _ := json.Marshal(map[string]any{"model": openAIEmbedModel, "input": texts})
	body, err := o.post(ctx, "/embeddings", payload)
	if err != nil {
		return nil, fmt.Errorf("openai embedding request failed: %w", err)
	}
	var parsed struct {
		Data []struct {
			Embedding []float32 `json:"embedding"`
		} `json:"data"`
	}
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("decode embedding response: %w", err)
	}
	if len(parsed.Data) != len(texts) {
		return nil, fmt.Errorf("openai returned %d embeddings for %d inputs", len(parsed.Data), len(texts))
	}
	out := make([][]float32, 0, len(parsed.Data))
	for _, d := range parsed.Data {
		out = append(out, d.Embedding)
	}
	return out, nil
}

func (o *OpenAIClient) Generate(ctx context.Context, question, contextText string) (string, error) {
	if o.apiKey == "" {
		return "", fmt.Errorf("openai api key missing")
	}
	userPrompt := fmt.Sprintf(`IMPORTANT: Answer the question ONLY using the context provided below. Do not use any external knowledge.

Context from shareholder letters:
%s

Question:
%s

Remember: Only use information from the context above. If the context doesn't contain the answer, explicitly state that.`, contextText, question)

	payload, _ := json.Marshal(map[string]any{
		"model":       openAIChatModel,
		"temperature": 0.2,
		"messages": []map[string]string{
			{"role": "system", "content": answerSystemPrompt},
			{"role": "user", "content": userPrompt},
		},
	})
	body, err := o.post(ctx, "/chat/completions", payload)
	if err != nil {
		return "", fmt.Errorf("openai generate request failed: %w", err)
	}
	var parsed struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", fmt.Errorf("decode generate response: %w", err)
	}
	if len(parsed.Choices) == 0 {
		return "", fmt.Errorf("openai returned empty choices")
	}
	return parsed.Choices[0].Message.Content, nil
}

func (o *OpenAIClient) post(ctx context.Context, path string, payload []byte) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, o.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+o.apiKey)
	req.Header.Set("Content-Type", "application/json")
	resp, err := o.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("status %d: %s", resp.StatusCode, string(body))
	}
	return body, nil
}
