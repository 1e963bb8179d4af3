package tool

import (
	"os"
	"path/filepath"
	"strings"
)

// FindDoubleClick looks for a sibling double-click companion of the given
// script: <base>_dcc.mel, then <base>_dcc.py — MEL is checked first. It
// returns ok=false when neither exists; the button's secondary command is
// then left empty.
func FindDoubleClick(scriptPath string) (Tool, bool) {
	base := filepath.Base(scriptPath)
	stem := filepath.Join(filepath.Dir(scriptPath), strings.TrimSuffix(base, filepath.Ext(base)))

	for _, candidate := range []string{stem + doubleClickSuffix + ".mel", stem + doubleClickSuffix + ".py"} {
		if _, err := os.Stat(candidate); err == nil {
			t, ok := FromFile(candidate)
			if ok {
				return t, true
			}
		}
	}

	return Tool{}, false
}
