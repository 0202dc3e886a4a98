package agent

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	genai "github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiProvider implements Provider over a Gemini chat session with the five
// capability tools declared as callable functions.
type GeminiProvider struct {
	model *genai.GenerativeModel
}

// NewGeminiProvider creates the client and configures the tool declarations.
func NewGeminiProvider(ctx context.Context, apiKey, modelName string) (*GeminiProvider, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	model := client.GenerativeModel(modelName)
	model.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(systemPrompt)}}
	model.Tools = []*genai.Tool{planningTool()}
	return &GeminiProvider{model: model}, nil
}

func (p *GeminiProvider) NewTurn(ctx context.Context, in TurnInput) (Turn, error) {
	return &geminiTurn{session: p.model.StartChat(), input: in}, nil
}

type geminiTurn struct {
	session *genai.ChatSession
	input   TurnInput
	started bool
}

func (t *geminiTurn) Step(ctx context.Context, results []ToolResult) (*Decision, error) {
	var parts []genai.Part
	if !t.started {
		t.started = true
		parts = append(parts, genai.Text(renderTurnMessage(t.input)))
	} else {
		for _, res := range results {
			payload, err := functionResponsePayload(res)
			if err != nil {
				return nil, err
			}
			parts = append(parts, genai.FunctionResponse{Name: res.Name, Response: payload})
		}
	}

	resp, err := t.session.SendMessage(ctx, parts...)
	if err != nil {
		return nil, fmt.Errorf("gemini step: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return nil, fmt.Errorf("gemini step: empty response")
	}

	var toolCalls []ToolCall
	var text strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		switch v := part.(type) {
		case genai.FunctionCall:
			args, err := json.Marshal(v.Args)
			if err != nil {
				return nil, fmt.Errorf("encode args for %s: %w", v.Name, err)
			}
			toolCalls = append(toolCalls, ToolCall{Name: v.Name, Args: args})
		case genai.Text:
			text.WriteString(string(v))
		}
	}

	if len(toolCalls) > 0 {
		return &Decision{ToolCalls: toolCalls}, nil
	}
	return &Decision{Output: parseFinalOutput(text.String())}, nil
}

// renderTurnMessage wraps the raw user message with the turn's context.
func renderTurnMessage(in TurnInput) string {
	var b strings.Builder
	b.WriteString(in.UserMessage)
	if in.CurrentPlan != nil {
		if planJSON, err := json.Marshal(in.CurrentPlan); err == nil {
			b.WriteString("\n\n[context] The user's current plan from earlier in this session:\n")
			b.Write(planJSON)
		}
	}
	if !in.AllowBooking {
		b.WriteString("\n\n[context] Booking actions are not allowed in this session.")
	}
	return b.String()
}

// functionResponsePayload converts a tool result into the map the API
// requires. List results are wrapped under a "result" key.
func functionResponsePayload(res ToolResult) (map[string]any, error) {
	raw, err := json.Marshal(res.Value)
	if err != nil {
		return nil, fmt.Errorf("encode result of %s: %w", res.Name, err)
	}
	var decoded any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return nil, fmt.Errorf("decode result of %s: %w", res.Name, err)
	}
	if m, ok := decoded.(map[string]any); ok {
		return m, nil
	}
	return map[string]any{"result": decoded}, nil
}

// parseFinalOutput reads the model's JSON envelope, tolerating markdown
// fences. A reply that is not valid JSON is kept verbatim as the assistant
// message with the booking flag down.
func parseFinalOutput(text string) *FinalOutput {
	cleaned := strings.TrimSpace(text)
	cleaned = strings.TrimPrefix(cleaned, "```json")
	cleaned = strings.TrimPrefix(cleaned, "```")
	cleaned = strings.TrimSuffix(cleaned, "```")
	cleaned = strings.TrimSpace(cleaned)

	var out FinalOutput
	if err := json.Unmarshal([]byte(cleaned), &out); err == nil && out.AssistantMessage != "" {
		return &out
	}
	return &FinalOutput{AssistantMessage: strings.TrimSpace(text)}
}

func dateSchema(desc string) *genai.Schema {
	return &genai.Schema{Type: genai.TypeString, Description: desc + " (YYYY-MM-DD)"}
}

func flightSchema() *genai.Schema {
	return &genai.Schema{
		Type:        genai.TypeObject,
		Description: "A flight option exactly as returned by search_flights.",
		Properties: map[string]*genai.Schema{
			"id":          {Type: genai.TypeString},
			"origin":      {Type: genai.TypeString},
			"destination": {Type: genai.TypeString},
			"departure":   {Type: genai.TypeString},
			"arrival":     {Type: genai.TypeString},
			"airline":     {Type: genai.TypeString},
			"cabin_class": {Type: genai.TypeString},
			"price":       {Type: genai.TypeNumber},
			"currency":    {Type: genai.TypeString},
		},
	}
}

func hotelSchema() *genai.Schema {
	return &genai.Schema{
		Type:        genai.TypeObject,
		Description: "A hotel option exactly as returned by search_hotels.",
		Properties: map[string]*genai.Schema{
			"id":               {Type: genai.TypeString},
			"destination_city": {Type: genai.TypeString},
			"name":             {Type: genai.TypeString},
			"check_in":         dateSchema("check-in day"),
			"check_out":        dateSchema("check-out day"),
			"price_per_night":  {Type: genai.TypeNumber},
			"total_price":      {Type: genai.TypeNumber},
			"currency":         {Type: genai.TypeString},
			"rating":           {Type: genai.TypeNumber},
		},
	}
}

// planningTool declares the five capabilities to the model.
func planningTool() *genai.Tool {
	return &genai.Tool{
		FunctionDeclarations: []*genai.FunctionDeclaration{
			{
				Name:        ToolLoadPreferences,
				Description: "Load the user's travel preferences (home city, currency, budgets, interests).",
			},
			{
				Name:        ToolFreeDateRanges,
				Description: "Find free date ranges on the user's calendar that fit the requested trip length.",
				Parameters: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"trip_duration_days": {Type: genai.TypeInteger, Description: "Requested trip length in days."},
						"window_days":        {Type: genai.TypeInteger, Description: "Look-ahead window in days, default 60."},
					},
					Required: []string{"trip_duration_days"},
				},
			},
			{
				Name:        ToolSearchFlights,
				Description: "Search flights between origin and destination for the chosen dates.",
				Parameters: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"origin":      {Type: genai.TypeString, Description: "Origin city or airport code."},
						"destination": {Type: genai.TypeString, Description: "Destination city or airport code."},
						"start":       dateSchema("first day of the trip"),
						"end":         dateSchema("last day of the trip"),
					},
					Required: []string{"origin", "destination", "start", "end"},
				},
			},
			{
				Name:        ToolSearchHotels,
				Description: "Search hotels in the destination city for the chosen dates.",
				Parameters: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"destination_city": {Type: genai.TypeString},
						"start":            dateSchema("check-in day"),
						"end":              dateSchema("check-out day"),
					},
					Required: []string{"destination_city", "start", "end"},
				},
			},
			{
				Name:        ToolBuildPlan,
				Description: "Assemble the final vacation plan from the chosen dates, flight, and hotel.",
				Parameters: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"destination_city": {Type: genai.TypeString},
						"start":            dateSchema("first day of the trip"),
						"end":              dateSchema("last day of the trip"),
						"flight":           flightSchema(),
						"hotel":            hotelSchema(),
					},
					Required: []string{"destination_city", "start", "end", "flight", "hotel"},
				},
			},
		},
	}
}
