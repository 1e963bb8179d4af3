package shelf

import (
	"context"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpsRegistered(t *testing.T) {
	b, _ := newTestBuilder(t, scenarioRoot(t))

	set := b.Ops()

	names := make([]string, 0)
	for _, op := range set.Ops() {
		names = append(names, op.Name)
	}
	assert.Equal(t, []string{"shelf_add_command", "shelf_add_menu_item", "shelf_list", "shelf_rebuild"}, names)
}

func TestOpList(t *testing.T) {
	b, _ := newTestBuilder(t, scenarioRoot(t))

	out, err := b.Ops().Call(context.Background(), "shelf_list", json.RawMessage(`{}`))

	require.NoError(t, err)
	assert.Contains(t, out, "rigging:")
	assert.Contains(t, out, "snap (python)")
	assert.Contains(t, out, "align [popup, 1 items]")
}

func TestOpListEmptyShelf(t *testing.T) {
	b, _ := newTestBuilder(t, filepath.Join(t.TempDir(), "missing"))

	out, err := b.Ops().Call(context.Background(), "shelf_list", json.RawMessage(`{}`))

	require.NoError(t, err)
	assert.Equal(t, "shelf is empty", out)
}

func TestOpRebuildRescans(t *testing.T) {
	root := t.TempDir()
	writeScript(t, filepath.Join(root, "anim"), "walk.py")
	b, rec := newTestBuilder(t, root)
	require.NoError(t, b.Build())

	writeScript(t, filepath.Join(root, "anim"), "run.py")

	out, err := b.Ops().Call(context.Background(), "shelf_rebuild", json.RawMessage(`{}`))

	require.NoError(t, err)
	assert.Contains(t, out, "rebuilt shelf")
	assert.Len(t, rec.Shelf("Anim").Widgets, 3) // two buttons + separator
}

func TestOpAddCommand(t *testing.T) {
	b, rec := newTestBuilder(t, scenarioRoot(t))
	require.NoError(t, b.Build())

	input := json.RawMessage(`{"label":"reset","language":"mel","script":"/tools/reset.mel","icon":"reset.png"}`)
	_, err := b.Ops().Call(context.Background(), "shelf_add_command", input)

	require.NoError(t, err)
	widgets := rec.Shelf("Anim").Widgets
	assert.Equal(t, "reset", widgets[len(widgets)-1].Spec.Label)
}

func TestOpAddCommandValidation(t *testing.T) {
	b, _ := newTestBuilder(t, scenarioRoot(t))
	require.NoError(t, b.Build())

	_, err := b.Ops().Call(context.Background(), "shelf_add_command", json.RawMessage(`{"label":"x"}`))
	require.Error(t, err)

	_, err = b.Ops().Call(context.Background(), "shelf_add_command",
		json.RawMessage(`{"label":"x","script":"/t/x.py","language":"lua"}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown language")
}

func TestOpAddMenuItem(t *testing.T) {
	b, rec := newTestBuilder(t, scenarioRoot(t))
	require.NoError(t, b.Build())

	input := json.RawMessage(`{"button":"align","label":"extra","script":"/tools/extra.py"}`)
	_, err := b.Ops().Call(context.Background(), "shelf_add_menu_item", input)

	require.NoError(t, err)
	items := rec.Shelf("Anim").Widgets[1].Items
	assert.Equal(t, "extra", items[len(items)-1].Label)
}

func TestOpAddMenuItemUnknownButton(t *testing.T) {
	b, _ := newTestBuilder(t, scenarioRoot(t))
	require.NoError(t, b.Build())

	input := json.RawMessage(`{"button":"nope","label":"x","script":"/tools/x.py"}`)
	_, err := b.Ops().Call(context.Background(), "shelf_add_menu_item", input)

	require.Error(t, err)
}

func TestOpUnknownName(t *testing.T) {
	b, _ := newTestBuilder(t, scenarioRoot(t))

	_, err := b.Ops().Call(context.Background(), "shelf_destroy", nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown operation")
}
