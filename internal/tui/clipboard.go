package tui

import (
	"github.com/atotto/clipboard"

	"plane-cli/internal/logx"
	"plane-cli/internal/model"
	"plane-cli/internal/planfile"
)

// mirrorToSystemClipboard writes the copied items to the OS clipboard as
// plan-dialect text, so copied tasks paste cleanly into any editor. Best
// effort: headless environments have no clipboard.
func mirrorToSystemClipboard(items []model.Item) {
	if len(items) == 0 {
		return
	}
	if err := clipboard.WriteAll(planfile.Format(items, nil)); err != nil {
		logx.Debug("system clipboard unavailable", "err", err)
	}
}
