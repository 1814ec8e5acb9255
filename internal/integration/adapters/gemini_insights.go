// Package adapters provides implementations for external service integrations.
package adapters

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/salon-pulse/backend/internal/application/adapter"
)

// maxInsights caps how many insight strings one forecast response carries.
const maxInsights = 4

// GeminiInsightService implements the InsightService using Google Gemini.
type GeminiInsightService struct {
	apiKey    string
	modelName string
}

// NewGeminiInsightService creates a new Gemini insight service instance.
func NewGeminiInsightService(apiKey string) *GeminiInsightService {
	return &GeminiInsightService{
		apiKey:    apiKey,
		modelName: "gemini-2.5-flash-lite",
	}
}

// IsAvailable checks if the Gemini service is available and properly configured.
func (s *GeminiInsightService) IsAvailable() bool {
	return s.apiKey != ""
}

// GenerateInsights produces short executive insight strings from the
// scenario-adjusted forecast summary.
func (s *GeminiInsightService) GenerateInsights(ctx context.Context, request *adapter.InsightRequest) ([]string, error) {
	if !s.IsAvailable() {
		return nil, fmt.Errorf("gemini service is not configured")
	}
	if request == nil || request.Summary == nil {
		return nil, fmt.Errorf("insight request requires a summary")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(s.apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	defer client.Close()

	model := client.GenerativeModel(s.modelName)
	model.SetTemperature(0.3)
	model.ResponseMIMEType = "application/json"

	prompt := s.buildPrompt(request)

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return nil, fmt.Errorf("failed to generate content: %w", err)
	}

	insights, err := s.parseResponse(resp)
	if err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	return insights, nil
}

// buildPrompt creates the prompt for Gemini.
func (s *GeminiInsightService) buildPrompt(request *adapter.InsightRequest) string {
	var sb strings.Builder

	sb.WriteString(`You are a business analyst for a salon chain. Your task is to turn forecast figures into short, plain-language insights an owner can act on.

RULES:
- Each insight is one sentence, under 140 characters.
- Mention concrete figures from the data, not generic advice.
- Never invent numbers that are not in the data.
- No greetings, no preamble, no emoji.

FORECAST DATA:
`)

	summary := request.Summary
	sb.WriteString(fmt.Sprintf("- Horizon: next %d months\n", int(request.Horizon)))
	sb.WriteString(fmt.Sprintf("- Scenario: %s\n", request.Scenario))
	sb.WriteString(fmt.Sprintf("- Projected revenue: %s (range %s to %s)\n",
		summary.Revenue, summary.RevenueLower, summary.RevenueUpper))
	sb.WriteString(fmt.Sprintf("- Projected appointments: %d (range %d to %d)\n",
		summary.Appointments, summary.AppointmentsLower, summary.AppointmentsUpper))
	sb.WriteString(fmt.Sprintf("- Momentum: %s\n", summary.Momentum))
	if summary.MonthOverMonth != nil {
		sb.WriteString(fmt.Sprintf("- Month-over-month change: %s%%\n", summary.MonthOverMonth))
	}
	if summary.YearOverYear != nil {
		sb.WriteString(fmt.Sprintf("- Year-over-year change: %s%%\n", summary.YearOverYear))
	}
	sb.WriteString(fmt.Sprintf("- Months of history available: %d\n", summary.MonthsAvailable))
	if summary.TrendFit != nil {
		sb.WriteString(fmt.Sprintf("- Trend fit (r-squared): %s\n", summary.TrendFit))
	}

	sb.WriteString(fmt.Sprintf(`
Respond with a JSON array of %d strings or fewer.

RESPONSE FORMAT: Return only the JSON array, no additional text.
`, maxInsights))

	return sb.String()
}

// parseResponse parses the Gemini response into insight strings.
func (s *GeminiInsightService) parseResponse(resp *genai.GenerateContentResponse) ([]string, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		return nil, fmt.Errorf("empty response from gemini")
	}

	var textContent string
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			textContent = string(text)
			break
		}
	}

	if textContent == "" {
		return nil, fmt.Errorf("no text content in response")
	}

	// Clean the response (remove markdown code blocks if present)
	textContent = strings.TrimPrefix(textContent, "```json")
	textContent = strings.TrimPrefix(textContent, "```")
	textContent = strings.TrimSuffix(textContent, "```")
	textContent = strings.TrimSpace(textContent)

	var raw []string
	if err := json.Unmarshal([]byte(textContent), &raw); err != nil {
		return nil, fmt.Errorf("failed to parse JSON response: %w, content: %s", err, textContent)
	}

	insights := make([]string, 0, len(raw))
	for _, insight := range raw {
		insight = strings.TrimSpace(insight)
		if insight == "" {
			continue
		}
		insights = append(insights, insight)
		if len(insights) == maxInsights {
			break
		}
	}

	return insights, nil
}
