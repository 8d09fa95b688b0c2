package llm

import (
	"context"
	"fmt"
	"strings"

	vertexgenai "cloud.google.com/go/vertexai/genai"
)

// VertexGemini generates pages through Vertex AI. Unlike the remote backend,
// which resolves the resume reference server-side, this provider resolves the
// resume text itself and appends it to the prompt.
type VertexGemini struct {
	client  *vertexgenai.Client
	model   *vertexgenai.GenerativeModel
	resumes *ResumeResolver
}

func NewVertexGemini(ctx context.Context, projectID, location, modelName string, resumes *ResumeResolver) (*VertexGemini, error) {
	c, err := vertexgenai.NewClient(ctx, projectID, location)
	if err != nil {
		return nil, err
	}

	if modelName == "" {
		modelName = "gemini-1.5-flash"
	}

	m := c.GenerativeModel(modelName)
	return &VertexGemini{client: c, model: m, resumes: resumes}, nil
}

func (v *VertexGemini) Close() error { return v.client.Close() }

func (v *VertexGemini) Generate(ctx context.Context, prompt, resumeURL string) (string, error) {
	full := prompt
	if v.resumes != nil {
		if text := v.resumes.Resolve(ctx, resumeURL); text != "" {
			full = fmt.Sprintf("%s\n\nResume Text:\n---------------------\n%s", prompt, text)
		}
	}

	resp, err := v.model.GenerateContent(ctx, vertexgenai.Text(full))
	if err != nil {
		return "", fmt.Errorf("generation backend: %w", err)
	}

	var sb strings.Builder
	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if t, ok := part.(vertexgenai.Text); ok {
				sb.WriteString(string(t))
			}
		}
	}

	out := strings.TrimSpace(sb.String())
	if out == "" {
		return "", fmt.Errorf("generation backend: empty response")
	}
	return out, nil
}
