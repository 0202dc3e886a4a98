package agent

import (
	"context"

	"voyago/models"

	"go.uber.org/zap"
)

// Limits bounds one turn: Requests caps provider steps, ToolCalls caps tool
// executions. Hitting either ceiling aborts the turn with no output.
type Limits struct {
	Requests  int
	ToolCalls int
}

// DefaultLimits is generous for a simple plan: five tools plus slack.
func DefaultLimits() Limits {
	return Limits{Requests: 20, ToolCalls: 10}
}

// DefaultEngine drives one turn end to end. It validates every tool call the
// provider proposes against the turn policy instead of trusting the model to
// self-police ordering, executes admitted calls sequentially, and keeps the
// plan built by build_vacation_plan for the structured output.
type DefaultEngine struct {
	Provider Provider
	Tools    *Toolset
	Limits   Limits
	Logger   *zap.Logger
}

// turnState tracks budgets and the verifier's view of the tool sequence.
type turnState struct {
	limits    Limits
	requests  int
	toolCalls int
	maxStage  int
	calls     map[string]int  // invocation count per tool
	lastEmpty map[string]bool // whether the tool's latest result was empty
}

func newTurnState(limits Limits) *turnState {
	return &turnState{
		limits:    limits,
		maxStage:  -1,
		calls:     make(map[string]int),
		lastEmpty: make(map[string]bool),
	}
}

func (st *turnState) chargeRequest() error {
	st.requests++
	if st.requests > st.limits.Requests {
		return NewBudgetExceeded("request limit of %d exceeded", st.limits.Requests)
	}
	return nil
}

// admit verifies a proposed call against the state machine: the tag must be
// in the capability set, the stage may never move backwards, and a step may
// only repeat after a genuinely empty result, once.
func (st *turnState) admit(name string) error {
	stage, ok := toolStages[name]
	if !ok {
		return NewProtocolViolation("call to %q is outside the capability set", name)
	}
	st.toolCalls++
	if st.toolCalls > st.limits.ToolCalls {
		return NewBudgetExceeded("tool call limit of %d exceeded", st.limits.ToolCalls)
	}
	if stage < st.maxStage {
		return NewProtocolViolation("%s called after a later step already ran", name)
	}
	switch st.calls[name] {
	case 0:
		// first invocation
	case 1:
		if !st.lastEmpty[name] {
			return NewProtocolViolation("%s repeated after a productive result", name)
		}
	default:
		return NewProtocolViolation("%s already retried once", name)
	}
	return nil
}

func (st *turnState) record(name string, empty bool) {
	st.calls[name]++
	st.lastEmpty[name] = empty
	if stage := toolStages[name]; stage > st.maxStage {
		st.maxStage = stage
	}
}

// RunTurn executes one turn: a single logical pass from the user message to
// exactly one structured output. On any policy or budget failure the turn
// aborts and no partial output is returned.
func (e *DefaultEngine) RunTurn(ctx context.Context, in TurnInput) (*TurnOutput, error) {
	limits := e.Limits
	if limits.Requests <= 0 || limits.ToolCalls <= 0 {
		limits = DefaultLimits()
	}
	logger := e.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	turn, err := e.Provider.NewTurn(ctx, in)
	if err != nil {
		return nil, err
	}

	state := newTurnState(limits)
	var results []ToolResult
	var capturedPlan *models.VacationPlan

	for {
		if err := state.chargeRequest(); err != nil {
			return nil, err
		}
		decision, err := turn.Step(ctx, results)
		if err != nil {
			return nil, err
		}
		if decision == nil || (decision.Output == nil && len(decision.ToolCalls) == 0) {
			return nil, NewProtocolViolation("provider step produced neither tool calls nor output")
		}

		if decision.Output != nil {
			out := &TurnOutput{
				AssistantMessage:          decision.Output.AssistantMessage,
				UpdatedPlan:               capturedPlan,
				AskForBookingConfirmation: decision.Output.AskForBookingConfirmation,
			}
			// The caller declared booking off-limits for this session.
			if !in.AllowBooking {
				out.AskForBookingConfirmation = false
			}
			logger.Debug("turn complete",
				zap.String("user_id", in.UserID),
				zap.Int("requests", state.requests),
				zap.Int("tool_calls", state.toolCalls),
				zap.Bool("has_plan", capturedPlan != nil))
			return out, nil
		}

		// Tool calls execute strictly in proposed order; parallel execution
		// is never permitted since later steps depend on earlier results.
		results = make([]ToolResult, 0, len(decision.ToolCalls))
		for _, call := range decision.ToolCalls {
			if err := state.admit(call.Name); err != nil {
				logger.Warn("tool call rejected",
					zap.String("tool", call.Name),
					zap.Error(err))
				return nil, err
			}
			value, empty, err := e.Tools.Dispatch(ctx, in.UserID, call)
			if err != nil {
				return nil, err
			}
			state.record(call.Name, empty)
			if plan, ok := value.(*models.VacationPlan); ok {
				capturedPlan = plan
			}
			results = append(results, ToolResult{Name: call.Name, Value: value, Empty: empty})
		}
	}
}
