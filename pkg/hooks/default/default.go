// Package defaulthooks provides the default hook set of the issue marker.
package defaulthooks

import (
	"github.com/lerenn/issue-marker/pkg/hooks"
	"github.com/lerenn/issue-marker/pkg/issue-marker/consts"
	"github.com/lerenn/issue-marker/pkg/logger"
)

// NewDefaultHooksManager creates a hook manager logging every run stage.
func NewDefaultHooksManager(log logger.Logger) (hooks.HookManagerInterface, error) {
	hm := hooks.NewHookManager()

	if err := hooks.NewLoggingHook(log).RegisterForStages(hm, consts.Stages()...); err != nil {
		return nil, err
	}

	return hm, nil
}
