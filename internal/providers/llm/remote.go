package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// RemoteBackend talks to an external generation service over HTTP. The wire
// contract: POST {"prompt": ..., "resume_url": ...}, success body
// {"body": "..."}, failure {"error": "..."}.
type RemoteBackend struct {
	endpoint   string
	token      string
	httpClient *http.Client
}

func NewRemoteBackend(endpoint, token string) *RemoteBackend {
	return &RemoteBackend{
		endpoint:   strings.TrimRight(endpoint, "/"),
		token:      token,
		httpClient: &http.Client{}, // per-call deadline comes from ctx
	}
}

func (b *RemoteBackend) Close() error { return nil }

type generateRequest struct {
	Prompt    string `json:"prompt"`
	ResumeURL string `json:"resume_url"`
}

type generateResponse struct {
	Body  string `json:"body"`
	Error string `json:"error"`
}

func (b *RemoteBackend) Generate(ctx context.Context, prompt, resumeURL string) (string, error) {
	payload, err := json.Marshal(generateRequest{Prompt: prompt, ResumeURL: resumeURL})
	if err != nil {
		return "", fmt.Errorf("generation request encode: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, b.endpoint, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("generation request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if b.token != "" {
		req.Header.Set("Authorization", "Bearer "+b.token)
	}

	resp, err := b.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("generation backend: %w", err)
	}
	defer resp.Body.Close()

	var out generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("generation backend: malformed response: %w", err)
	}
	if resp.StatusCode >= 400 || out.Error != "" || out.Body == "" {
		// backend failures surface uniformly; detail is for logs only
		return "", fmt.Errorf("generation backend: status %d: %s", resp.StatusCode, out.Error)
	}

	return strings.TrimSpace(out.Body), nil
}
