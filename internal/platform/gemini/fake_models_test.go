package gemini

import (
	"context"
	"sync"

	"google.golang.org/genai"
)

// modelCall records one GenerateContent invocation.
type modelCall struct {
	Model  string
	Prompt string
	Config *genai.GenerateContentConfig
}

// fakeModels is a scripted ContentGenerator. Responses are keyed by model name.
type fakeModels struct {
	mu        sync.Mutex
	calls     []modelCall
	responses map[string]*genai.GenerateContentResponse
	errs      map[string]error
}

func newFakeModels() *fakeModels {
	return &fakeModels{
		responses: map[string]*genai.GenerateContentResponse{},
		errs:      map[string]error{},
	}
}

func (f *fakeModels) GenerateContent(
	ctx context.Context,
	model string,
	contents []*genai.Content,
	config *genai.GenerateContentConfig,
) (*genai.GenerateContentResponse, error) {
	prompt := ""
	for _, c := range contents {
		for _, p := range c.Parts {
			prompt += p.Text
		}
	}

	f.mu.Lock()
	f.calls = append(f.calls, modelCall{Model: model, Prompt: prompt, Config: config})
	f.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := f.errs[model]; err != nil {
		return nil, err
	}
	return f.responses[model], nil
}

func (f *fakeModels) Calls() []modelCall {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]modelCall(nil), f.calls...)
}

// textResponse builds a single-candidate response with one text part.
func textResponse(text string) *genai.GenerateContentResponse {
	return partsResponse(&genai.Part{Text: text})
}

// blobResponse builds a single-candidate response with one inline data part.
func blobResponse(mimeType string, data []byte) *genai.GenerateContentResponse {
	return partsResponse(&genai.Part{InlineData: &genai.Blob{MIMEType: mimeType, Data: data}})
}

func partsResponse(parts ...*genai.Part) *genai.GenerateContentResponse {
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{Content: &genai.Content{Role: "model", Parts: parts}},
		},
	}
}
