package uihost

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mayakit/shelf/pkg/tool"
)

func TestRecorderShelfLifecycle(t *testing.T) {
	r := NewRecorder()

	handle, err := r.CreateShelf("Anim", "ShelfLayout")
	require.NoError(t, err)
	assert.Equal(t, "Anim", handle)
	assert.True(t, r.Exists("Anim"))

	_, err = r.CreateShelf("Anim", "ShelfLayout")
	require.Error(t, err)

	require.NoError(t, r.Destroy("Anim"))
	assert.False(t, r.Exists("Anim"))
	require.Error(t, r.Destroy("Anim"))
}

func TestRecorderButtonsAndMenus(t *testing.T) {
	r := NewRecorder()
	_, err := r.CreateShelf("Anim", "ShelfLayout")
	require.NoError(t, err)

	btn, err := r.CreateButton("Anim", ButtonSpec{
		Label:   "snap",
		Command: tool.Command{Language: tool.Python, Path: "/s/snap.py"},
	})
	require.NoError(t, err)

	menu, err := r.PopupMenu(btn)
	require.NoError(t, err)

	_, err = r.AddMenuItem(menu, ItemSpec{Label: "snap helper"})
	require.NoError(t, err)

	_, err = r.CreateSeparator("Anim")
	require.NoError(t, err)

	s := r.Shelf("Anim")
	require.NotNil(t, s)
	require.Len(t, s.Widgets, 2)
	assert.Equal(t, KindButton, s.Widgets[0].Kind)
	assert.Equal(t, "snap", s.Widgets[0].Spec.Label)
	require.Len(t, s.Widgets[0].Items, 1)
	assert.Equal(t, "snap helper", s.Widgets[0].Items[0].Label)
	assert.Equal(t, KindSeparator, s.Widgets[1].Kind)
}

func TestRecorderOrphanCalls(t *testing.T) {
	r := NewRecorder()

	_, err := r.CreateButton("nope", ButtonSpec{})
	require.Error(t, err)

	_, err = r.CreateSeparator("nope")
	require.Error(t, err)

	_, err = r.PopupMenu("nope|button1")
	require.Error(t, err)

	_, err = r.AddMenuItem("nope|menu", ItemSpec{})
	require.Error(t, err)
}

func TestRecorderDestroyErr(t *testing.T) {
	r := NewRecorder()
	_, err := r.CreateShelf("Anim", "ShelfLayout")
	require.NoError(t, err)

	r.DestroyErr = errors.New("host busy")

	assert.Error(t, r.Destroy("Anim"))
	assert.True(t, r.Exists("Anim"))
}
