package hooks

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

// ErrNilHook is returned when registering a nil hook.
var ErrNilHook = errors.New("hook cannot be nil")

// HookManager manages hook registration and execution.
type HookManager struct {
	preHooks   map[string][]PreHook
	postHooks  map[string][]PostHook
	errorHooks map[string][]ErrorHook
	mu         sync.RWMutex
}

// HookManagerInterface defines the interface for hook management.
type HookManagerInterface interface {
	// Hook registration.
	RegisterPreHook(stage string, hook PreHook) error
	RegisterPostHook(stage string, hook PostHook) error
	RegisterErrorHook(stage string, hook ErrorHook) error

	// Hook execution.
	ExecutePreHooks(stage string, ctx *HookContext) error
	ExecutePostHooks(stage string, ctx *HookContext) error
	ExecuteErrorHooks(stage string, ctx *HookContext) error
}

// NewHookManager creates a new HookManager instance.
func NewHookManager() HookManagerInterface {
	return &HookManager{
		preHooks:   make(map[string][]PreHook),
		postHooks:  make(map[string][]PostHook),
		errorHooks: make(map[string][]ErrorHook),
	}
}

// RegisterPreHook registers a pre-hook for a specific stage.
func (hm *HookManager) RegisterPreHook(stage string, hook PreHook) error {
	if hook == nil {
		return ErrNilHook
	}

	hm.mu.Lock()
	defer hm.mu.Unlock()

	hm.preHooks[stage] = append(hm.preHooks[stage], hook)
	sortByPriority(hm.preHooks[stage])
	return nil
}

// RegisterPostHook registers a post-hook for a specific stage.
func (hm *HookManager) RegisterPostHook(stage string, hook PostHook) error {
	if hook == nil {
		return ErrNilHook
	}

	hm.mu.Lock()
	defer hm.mu.Unlock()

	hm.postHooks[stage] = append(hm.postHooks[stage], hook)
	sortByPriority(hm.postHooks[stage])
	return nil
}

// RegisterErrorHook registers an error-hook for a specific stage.
func (hm *HookManager) RegisterErrorHook(stage string, hook ErrorHook) error {
	if hook == nil {
		return ErrNilHook
	}

	hm.mu.Lock()
	defer hm.mu.Unlock()

	hm.errorHooks[stage] = append(hm.errorHooks[stage], hook)
	sortByPriority(hm.errorHooks[stage])
	return nil
}

// ExecutePreHooks executes all pre-hooks for a specific stage.
func (hm *HookManager) ExecutePreHooks(stage string, ctx *HookContext) error {
	hm.mu.RLock()
	defer hm.mu.RUnlock()

	for _, hook := range hm.preHooks[stage] {
		if err := hook.PreExecute(ctx); err != nil {
			return fmt.Errorf("pre-hook %s failed: %w", hook.Name(), err)
		}
	}

	return nil
}

// ExecutePostHooks executes all post-hooks for a specific stage.
func (hm *HookManager) ExecutePostHooks(stage string, ctx *HookContext) error {
	hm.mu.RLock()
	defer hm.mu.RUnlock()

	for _, hook := range hm.postHooks[stage] {
		if err := hook.PostExecute(ctx); err != nil {
			return fmt.Errorf("post-hook %s failed: %w", hook.Name(), err)
		}
	}

	return nil
}

// ExecuteErrorHooks executes all error-hooks for a specific stage.
func (hm *HookManager) ExecuteErrorHooks(stage string, ctx *HookContext) error {
	hm.mu.RLock()
	defer hm.mu.RUnlock()

	for _, hook := range hm.errorHooks[stage] {
		if err := hook.OnError(ctx); err != nil {
			return fmt.Errorf("error-hook %s failed: %w", hook.Name(), err)
		}
	}

	return nil
}

// sortByPriority orders hooks so that lower priorities run first.
func sortByPriority[H Hook](hooks []H) {
	sort.SliceStable(hooks, func(i, j int) bool {
		return hooks[i].Priority() < hooks[j].Priority()
	})
}
