package shelf

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mayakit/shelf/pkg/ops"
	"github.com/mayakit/shelf/pkg/tool"
)

// Ops exposes the builder's escape hatches and introspection as named
// operations, so the shelf can be driven over MCP by pipeline tooling.
func (b *Builder) Ops() *ops.Set {
	set := ops.NewSet()
	set.Register(
		ops.Op{
			Name:        "shelf_list",
			Description: "List the discovered shelf layout: categories, buttons, popup tools, and menu items.",
			InputSchema: json.RawMessage(`{"type":"object","properties":{}}`),
			Handler:     b.handleList,
		},
		ops.Op{
			Name:        "shelf_rebuild",
			Description: "Re-scan the shelf directory and rebuild the live shelf from scratch.",
			InputSchema: json.RawMessage(`{"type":"object","properties":{}}`),
			Handler:     b.handleRebuild,
		},
		ops.Op{
			Name:        "shelf_add_command",
			Description: "Add a standalone shortcut button to the live shelf, bypassing directory discovery.",
			InputSchema: json.RawMessage(`{"type":"object","properties":{"label":{"type":"string","description":"Button label"},"language":{"type":"string","enum":["python","mel"],"description":"Scripting language of the command (default python)"},"script":{"type":"string","description":"Path to the script file the button runs"},"icon":{"type":"string","description":"Optional icon reference"},"dcc_script":{"type":"string","description":"Optional double-click script path"}},"required":["label","script"]}`),
			Handler:     b.handleAddCommand,
		},
		ops.Op{
			Name:        "shelf_add_menu_item",
			Description: "Append a menu item to the popup menu of an existing popup button.",
			InputSchema: json.RawMessage(`{"type":"object","properties":{"button":{"type":"string","description":"Popup button name (folder name)"},"label":{"type":"string","description":"Menu item label"},"script":{"type":"string","description":"Path to the script file the item runs"}},"required":["button","label","script"]}`),
			Handler:     b.handleAddMenuItem,
		},
	)

	return set
}

func (b *Builder) handleList(_ context.Context, _ json.RawMessage) (string, error) {
	var sb strings.Builder

	for _, cat := range b.cats {
		fmt.Fprintf(&sb, "%s:\n", cat.Name)

		for _, t := range cat.Tools {
			fmt.Fprintf(&sb, "  %s (%s)\n", t.DisplayName(), t.Language)
		}

		for _, p := range cat.Popups {
			fmt.Fprintf(&sb, "  %s [popup, %d items]\n", p.Name, len(p.Items))
		}
	}

	if sb.Len() == 0 {
		return "shelf is empty", nil
	}

	return sb.String(), nil
}

func (b *Builder) handleRebuild(_ context.Context, _ json.RawMessage) (string, error) {
	if err := b.Refresh(); err != nil {
		return "", err
	}

	if err := b.Rebuild(); err != nil {
		return "", err
	}

	return fmt.Sprintf("rebuilt shelf %q with %d categories", b.spec.Name, len(b.cats)), nil
}

type addCommandInput struct {
	Label     string `json:"label"`
	Language  string `json:"language"`
	Script    string `json:"script"`
	Icon      string `json:"icon"`
	DCCScript string `json:"dcc_script"`
}

func (b *Builder) handleAddCommand(_ context.Context, input json.RawMessage) (string, error) {
	var in addCommandInput
	if err := json.Unmarshal(input, &in); err != nil {
		return "", fmt.Errorf("shelf_add_command: invalid input: %w", err)
	}

	if in.Label == "" || in.Script == "" {
		return "", fmt.Errorf("shelf_add_command: label and script are required")
	}

	lang, err := parseLanguage(in.Language)
	if err != nil {
		return "", fmt.Errorf("shelf_add_command: %w", err)
	}

	var dcc tool.Command
	if in.DCCScript != "" {
		t, ok := tool.FromFile(in.DCCScript)
		if !ok {
			return "", fmt.Errorf("shelf_add_command: dcc_script %q is not a script file", in.DCCScript)
		}

		dcc = t.Command()
	}

	handle, err := b.AddCommand(in.Label, tool.Command{Language: lang, Path: in.Script}, dcc, in.Icon)
	if err != nil {
		return "", err
	}

	return handle, nil
}

type addMenuItemInput struct {
	Button string `json:"button"`
	Label  string `json:"label"`
	Script string `json:"script"`
}

func (b *Builder) handleAddMenuItem(_ context.Context, input json.RawMessage) (string, error) {
	var in addMenuItemInput
	if err := json.Unmarshal(input, &in); err != nil {
		return "", fmt.Errorf("shelf_add_menu_item: invalid input: %w", err)
	}

	if in.Button == "" || in.Label == "" || in.Script == "" {
		return "", fmt.Errorf("shelf_add_menu_item: button, label, and script are required")
	}

	t, ok := tool.FromFile(in.Script)
	if !ok {
		return "", fmt.Errorf("shelf_add_menu_item: script %q is not a script file", in.Script)
	}

	handle, err := b.AddMenuItem(in.Button, in.Label, t.Command())
	if err != nil {
		return "", err
	}

	return handle, nil
}

// parseLanguage maps an op input language tag to a tool.Language. Empty
// defaults to Python.
func parseLanguage(s string) (tool.Language, error) {
	switch s {
	case "", string(tool.Python):
		return tool.Python, nil
	case string(tool.MEL):
		return tool.MEL, nil
	default:
		return "", fmt.Errorf("unknown language %q", s)
	}
}
