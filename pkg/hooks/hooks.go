// Package hooks provides a middleware system around issue marker run stages.
package hooks

// HookContext provides context for hook execution.
type HookContext struct {
	Stage      string
	RunID      string
	Parameters map[string]interface{}
	Results    map[string]interface{}
	Error      error
	Metadata   map[string]interface{}
}

// NewHookContext creates a HookContext with initialized maps.
func NewHookContext(stage, runID string, params map[string]interface{}) *HookContext {
	if params == nil {
		params = make(map[string]interface{})
	}
	return &HookContext{
		Stage:      stage,
		RunID:      runID,
		Parameters: params,
		Results:    make(map[string]interface{}),
		Metadata:   make(map[string]interface{}),
	}
}

// Hook defines the interface for all hooks.
type Hook interface {
	Name() string
	Priority() int
}

// PreHook executes before a stage.
type PreHook interface {
	Hook
	PreExecute(ctx *HookContext) error
}

// PostHook executes after a stage succeeded.
type PostHook interface {
	Hook
	PostExecute(ctx *HookContext) error
}

// ErrorHook executes when a stage fails.
type ErrorHook interface {
	Hook
	OnError(ctx *HookContext) error
}
