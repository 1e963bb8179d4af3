package tool

import (
	"fmt"
	"strings"
)

// Command describes how the host scripting context executes a script file.
// It is a typed descriptor; the executable source text is rendered only at
// the host boundary via Source.
type Command struct {
	Language Language
	Path     string
}

// IsZero reports whether the command is empty (no script bound).
func (c Command) IsZero() bool {
	return c.Path == ""
}

// Source renders the host-side invocation expression for the command.
// Python scripts are executed in the host's Python interpreter; MEL scripts
// are sourced by the MEL engine. An empty command renders as an empty
// string.
func (c Command) Source() string {
	if c.IsZero() {
		return ""
	}

	path := escapePath(c.Path)

	switch c.Language {
	case Python:
		return fmt.Sprintf(`exec(open("%s").read())`, path)
	case MEL:
		return fmt.Sprintf(`source "%s";`, path)
	default:
		return ""
	}
}

// SourceAs renders the command for execution under a context whose language
// tag is ctx. Same-language commands render via Source; a MEL command under
// a Python context is wrapped in a maya.mel.eval call, and a Python command
// under a MEL context in a python() call. Buttons carry a single language
// tag, so a double-click companion in the other language needs this
// wrapping.
func (c Command) SourceAs(ctx Language) string {
	if c.IsZero() || ctx == c.Language {
		return c.Source()
	}

	switch c.Language {
	case MEL:
		return fmt.Sprintf(`import maya.mel; maya.mel.eval('source "%s"')`, escapePath(c.Path))
	case Python:
		return fmt.Sprintf(`python("%s");`, strings.ReplaceAll(c.Source(), `"`, `\"`))
	default:
		return ""
	}
}

// escapePath escapes backslashes and double quotes so the path survives
// embedding in a quoted Python or MEL string literal.
func escapePath(path string) string {
	path = strings.ReplaceAll(path, `\`, `\\`)

	return strings.ReplaceAll(path, `"`, `\"`)
}
