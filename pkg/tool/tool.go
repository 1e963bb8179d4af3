// Package tool derives shelf tool identity from script files on disk. A Tool
// is a named, language-tagged reference to a Python or MEL script; its
// Command describes how the host scripting context should execute it.
package tool

import (
	"path/filepath"
	"strings"
)

// Language identifies the host scripting engine that runs a tool. The values
// match Maya's sourceType flags.
type Language string

const (
	// Python scripts run in the host's Python interpreter.
	Python Language = "python"
	// MEL scripts run in the host's MEL engine.
	MEL Language = "mel"
)

// doubleClickSuffix marks companion scripts bound to a button's secondary
// (double-click) action. Files carrying it never become tools themselves.
const doubleClickSuffix = "_dcc"

// packageInitName is excluded from popup menu items.
const packageInitName = "__init__.py"

// Tool is a shelf tool backed by a script file.
type Tool struct {
	Path     string
	Name     string // File base name with the extension stripped.
	Language Language
}

// FromFile derives a Tool from a script path. It returns ok=false for paths
// whose extension is neither .py nor .mel; discovery filters those out, so a
// false return indicates a contract violation by the caller and yields a
// zero Tool rather than an error.
func FromFile(path string) (Tool, bool) {
	base := filepath.Base(path)

	var lang Language

	switch {
	case strings.HasSuffix(base, ".py"):
		lang = Python
	case strings.HasSuffix(base, ".mel"):
		lang = MEL
	default:
		return Tool{}, false
	}

	return Tool{
		Path:     path,
		Name:     strings.TrimSuffix(base, filepath.Ext(base)),
		Language: lang,
	}, true
}

// DisplayName returns the visible button label: the tool name with
// underscores replaced by spaces. The underlying path is untouched.
func (t Tool) DisplayName() string {
	return strings.ReplaceAll(t.Name, "_", " ")
}

// Command returns the typed invocation descriptor for the tool.
func (t Tool) Command() Command {
	return Command{Language: t.Language, Path: t.Path}
}

// IsScript reports whether a file name qualifies as a shelf tool: it has a
// recognized script extension and is not a double-click companion.
func IsScript(name string) bool {
	if !strings.HasSuffix(name, ".py") && !strings.HasSuffix(name, ".mel") {
		return false
	}

	return !IsDoubleClick(name)
}

// IsDoubleClick reports whether a file name follows the reserved
// double-click companion convention (<base>_dcc.py / <base>_dcc.mel).
func IsDoubleClick(name string) bool {
	base := strings.TrimSuffix(name, filepath.Ext(name))

	return (strings.HasSuffix(name, ".py") || strings.HasSuffix(name, ".mel")) &&
		strings.HasSuffix(base, doubleClickSuffix)
}

// IsPackageInit reports whether a file name is a Python package initializer.
func IsPackageInit(name string) bool {
	return name == packageInitName
}
