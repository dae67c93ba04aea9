package hooks

import (
	"github.com/lerenn/issue-marker/pkg/logger"
)

// LoggingHook logs the lifecycle of every stage it is registered on.
type LoggingHook struct {
	logger logger.Logger
}

// NewLoggingHook creates a new LoggingHook instance.
func NewLoggingHook(logger logger.Logger) *LoggingHook {
	return &LoggingHook{
		logger: logger,
	}
}

// Name returns the hook name.
func (h *LoggingHook) Name() string {
	return "logging"
}

// Priority returns the hook priority (lower numbers execute first).
func (h *LoggingHook) Priority() int {
	return 100
}

// PreExecute logs the start of a stage.
func (h *LoggingHook) PreExecute(ctx *HookContext) error {
	h.logger.Logf("[%s] Starting stage: %s with params: %v", ctx.RunID, ctx.Stage, ctx.Parameters)
	return nil
}

// PostExecute logs the completion of a stage.
func (h *LoggingHook) PostExecute(ctx *HookContext) error {
	h.logger.Logf("[%s] Stage completed: %s with results: %v", ctx.RunID, ctx.Stage, ctx.Results)
	return nil
}

// OnError logs when a stage fails.
func (h *LoggingHook) OnError(ctx *HookContext) error {
	h.logger.Logf("[%s] Stage failed: %s, error: %v", ctx.RunID, ctx.Stage, ctx.Error)
	return nil
}

// RegisterForStages registers the hook as pre, post and error hook on stages.
func (h *LoggingHook) RegisterForStages(hm HookManagerInterface, stages ...string) error {
	for _, stage := range stages {
		if err := hm.RegisterPreHook(stage, h); err != nil {
			return err
		}
		if err := hm.RegisterPostHook(stage, h); err != nil {
			return err
		}
		if err := hm.RegisterErrorHook(stage, h); err != nil {
			return err
		}
	}
	return nil
}
