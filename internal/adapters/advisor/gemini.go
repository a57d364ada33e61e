package advisor

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/propguard/tenant-portal/internal/core/domain"
	"github.com/propguard/tenant-portal/internal/core/ports"
)

const (
	defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"
	modelID        = "gemini-2.5-flash"
	callTimeout    = 30 * time.Second
)

// GeminiAdvisor implements ports.TriageAdvisor against the Gemini REST API.
// Callers treat every failure as non-fatal and fall back to static defaults;
// this adapter only reports errors, it never retries.
type GeminiAdvisor struct {
	apiKey  string
	baseURL string
	http    *http.Client
}

var _ ports.TriageAdvisor = (*GeminiAdvisor)(nil)

func NewGeminiAdvisor(apiKey string) *GeminiAdvisor {
	return &GeminiAdvisor{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		http:    &http.Client{Timeout: callTimeout},
	}
}

func (g *GeminiAdvisor) AnalyzeMaintenanceRequest(ctx context.Context, description string) (*ports.TriageResult, error) {
	prompt := fmt.Sprintf(`Analyze the following property maintenance request.
Description: %q

Return a JSON object with:
1. "priority": One of ["Low", "Medium", "High", "Emergency"] based on potential property damage or habitability.
2. "vendorType": Best tradesperson for the job (e.g., Plumber, Electrician, HVAC, Handyman).
3. "summary": A 1-sentence technical summary for the vendor.

Ensure valid JSON output.`, description)

	text, err := g.generate(ctx, prompt, true)
	if err != nil {
		return nil, err
	}

	var result ports.TriageResult
	if err := json.Unmarshal([]byte(stripFences(text)), &result); err != nil {
		return nil, fmt.Errorf("decode triage response: %w", err)
	}
	return &result, nil
}

func (g *GeminiAdvisor) DraftLeaseAgreement(ctx context.Context, t domain.Tenant, templateType string) (string, error) {
	prompt := fmt.Sprintf(`Create a Residential Lease Agreement.

Role: Property Manager & Legal Assistant
Template Type: %s

Tenant: %s
Property: %s
Rent: $%.2f/month
Start Date: %s
End Date: %s
Deposit: $%.2f

Requirements:
- Include standard clauses for late fees, maintenance, right of entry, and security deposit.
- If "Month-to-Month", ensure 30-day notice clauses are prominent.
- Format as clean, structured Markdown with clear section headers.`,
		templateType, t.Name, t.PropertyUnit, t.RentAmount, t.LeaseStart, t.LeaseEnd, t.Deposit)

	return g.generate(ctx, prompt, false)
}

type generateRequest struct {
	Contents         []content         `json:"contents"`
	GenerationConfig *generationConfig `json:"generationConfig,omitempty"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generationConfig struct {
	ResponseMIMEType string `json:"responseMimeType,omitempty"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

func (g *GeminiAdvisor) generate(ctx context.Context, prompt string, jsonOutput bool) (string, error) {
	if g.apiKey == "" {
		return "", errors.New("advisor API key not configured")
	}

	reqBody := generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
	}
	if jsonOutput {
		reqBody.GenerationConfig = &generationConfig{ResponseMIMEType: "application/json"}
	}
	payload, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	url := fmt.Sprintf("%s/models/%s:generateContent", g.baseURL, modelID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", g.apiKey)

	resp, err := g.http.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("advisor returned %d", resp.StatusCode)
	}

	var parsed generateResponse
	if err := json.Unmarshal(data, &parsed); err != nil {
		return "", err
	}
	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return "", errors.New("advisor returned no content")
	}
	return parsed.Candidates[0].Content.Parts[0].Text, nil
}

// stripFences removes a markdown code fence the model sometimes wraps around
// JSON output despite the response MIME type.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimPrefix(s, "```")
		s = strings.TrimSuffix(s, "```")
	}
	return strings.TrimSpace(s)
}
