package agent

import (
	"context"
	"encoding/json"

	"voyago/models"
)

// TurnInput is what the caller passes into one turn of the planner.
type TurnInput struct {
	UserMessage  string
	UserID       string
	AllowBooking bool
	// CurrentPlan carries the session's latest plan as context when the user
	// continues a conversation.
	CurrentPlan *models.VacationPlan
}

// TurnOutput is the single structured result of a turn: a reply, optionally
// an updated plan, and whether the planner is asking the user to confirm a
// booking. Nothing here is ever marked as actually booked.
type TurnOutput struct {
	AssistantMessage          string
	UpdatedPlan               *models.VacationPlan
	AskForBookingConfirmation bool
}

// ToolCall is one capability invocation proposed by the model.
type ToolCall struct {
	Name string
	Args json.RawMessage
}

// ToolResult is the outcome of an executed tool call, fed back to the model.
// Empty marks a genuine miss (an empty result list), the only condition under
// which the engine admits a retry of the same step.
type ToolResult struct {
	Name  string
	Value any
	Empty bool
}

// FinalOutput is the model's terminal structured answer for a turn.
type FinalOutput struct {
	AssistantMessage          string `json:"assistant_message"`
	AskForBookingConfirmation bool   `json:"ask_for_booking_confirmation"`
}

// Decision is one step of the model: either a batch of tool calls to execute
// in order, or the final output. Exactly one of the two must be set.
type Decision struct {
	ToolCalls []ToolCall
	Output    *FinalOutput
}

// Provider is the language-model collaborator. The engine does not trust it
// to self-police tool ordering; every proposed call is validated against the
// turn policy before execution.
type Provider interface {
	NewTurn(ctx context.Context, in TurnInput) (Turn, error)
}

// Turn is one model conversation. Step sends the results of the previous
// batch of tool calls (nil on the first call, which delivers the user
// message) and returns the model's next decision.
type Turn interface {
	Step(ctx context.Context, results []ToolResult) (*Decision, error)
}

// Engine runs one complete turn: it drives the provider, verifies and
// executes tool calls, and produces the structured output.
type Engine interface {
	RunTurn(ctx context.Context, in TurnInput) (*TurnOutput, error)
}
