package cli

import (
	"context"
	"testing"

	"github.com/alexanderramin/rolemix/internal/teatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEditorDriver(t *testing.T, app *App) *teatest.Driver {
	t.Helper()
	d := teatest.New(t, newEditorModel(app), teatest.WithSize(120, 80))
	d.DrainInit()
	return d
}

func editorState(d *teatest.Driver) editorModel {
	return d.Model.(editorModel)
}

func TestEditor_InitialView(t *testing.T) {
	d := newEditorDriver(t, testApp(t))

	assert.True(t, d.ViewContains("MY ROLE MIX  (1/1)", "Total: ", "To Hack Structure", "INSIGHTS"), d.PlainView())
	assert.Equal(t, 0, editorState(d).cursor)
}

func TestEditor_AdjustWeights(t *testing.T) {
	app := testApp(t)
	d := newEditorDriver(t, app)
	start := weightOf(t, app, "1")

	d.PressRight()
	assert.Equal(t, start+1, weightOf(t, app, "1"))

	d.PressKey('L')
	assert.Equal(t, start+6, weightOf(t, app, "1"))

	d.PressKey('H')
	d.PressLeft()
	assert.Equal(t, start, weightOf(t, app, "1"))
	assert.Equal(t, start, editorState(d).profile.Roles[0].Weight, "snapshot reloads after each change")
}

func TestEditor_QueuedStepsBothApply(t *testing.T) {
	app := testApp(t)
	d := newEditorDriver(t, app)
	start := weightOf(t, app, "1")
	m := editorState(d)

	// Both commands come from the same snapshot, as when keys arrive before
	// the reload lands.
	first, second := m.adjust(1), m.adjust(1)
	require.NotNil(t, first)
	require.NotNil(t, second)
	first()
	second()

	assert.Equal(t, start+2, weightOf(t, app, "1"))
}

func TestEditor_CursorSelectsRole(t *testing.T) {
	app := testApp(t)
	d := newEditorDriver(t, app)
	first := weightOf(t, app, "1")
	second := weightOf(t, app, "2")

	d.PressDown()
	d.PressKey('l')

	assert.Equal(t, first, weightOf(t, app, "1"))
	assert.Equal(t, second+1, weightOf(t, app, "2"))

	d.PressUp()
	d.PressUp()
	assert.Equal(t, 0, editorState(d).cursor, "cursor stops at the top")
}

func TestEditor_CreateAndClampAtZero(t *testing.T) {
	app := testApp(t)
	d := newEditorDriver(t, app)

	d.PressKey('c')
	require.True(t, d.ViewContains("NEW PROFILE  (2/2)", "New profile created"), d.PlainView())

	d.PressLeft()
	assert.Equal(t, 0, weightOf(t, app, "1"))

	d.PressKey('n')
	assert.True(t, d.ViewContains("nothing to normalize"))
	assert.Equal(t, 0, app.Store.Active().TotalWeight())
}

func TestEditor_Normalize(t *testing.T) {
	app := testApp(t)
	d := newEditorDriver(t, app)

	d.PressKey('n')

	assert.True(t, d.ViewContains("Weights normalized"))
	assert.InDelta(t, 100, app.Store.Active().TotalWeight(), 15)
}

func TestEditor_SuggestBalance(t *testing.T) {
	app := testApp(t)
	d := newEditorDriver(t, app)

	d.PressKey('b')

	assert.True(t, d.ViewContains("Suggested a more balanced mix"))
	for _, r := range app.Store.Active().Roles {
		assert.LessOrEqual(t, r.Weight, 10)
	}
}

func TestEditor_TabCyclesProfiles(t *testing.T) {
	app := testApp(t)
	d := newEditorDriver(t, app)
	d.PressKey('c')
	require.Equal(t, "prof-2", app.Store.ActiveID())

	d.PressTab()
	assert.Equal(t, "prof-1", app.Store.ActiveID())
	assert.True(t, d.ViewContains("Switched to My Role Mix", "(1/2)"), d.PlainView())

	d.PressTab()
	assert.Equal(t, "prof-2", app.Store.ActiveID())
}

func TestEditor_Duplicate(t *testing.T) {
	app := testApp(t)
	d := newEditorDriver(t, app)

	d.PressKey('D')

	assert.True(t, d.ViewContains("MY ROLE MIX (COPY)  (2/2)"), d.PlainView())
	assert.Len(t, app.Store.Profiles(), 2)
}

func TestEditor_ToggleInsightsAndHelp(t *testing.T) {
	d := newEditorDriver(t, testApp(t))

	d.PressKey('i')
	assert.False(t, d.ViewContains("INSIGHTS"))
	d.PressKey('i')
	assert.True(t, d.ViewContains("INSIGHTS"))

	assert.False(t, d.ViewContains("next profile"))
	d.PressKey('?')
	assert.True(t, d.ViewContains("next profile"))
}

func TestEditor_NoActiveProfile(t *testing.T) {
	app := testApp(t)
	require.NoError(t, app.Store.Delete(context.Background(), "prof-1"))
	d := newEditorDriver(t, app)

	assert.True(t, d.ViewContains("No active profile"))
	d.PressRight()
	d.PressKey('n')
	assert.True(t, d.ViewContains("No active profile"))

	d.PressKey('c')
	assert.True(t, d.ViewContains("NEW PROFILE  (1/1)"), d.PlainView())
}

func TestEditor_Quit(t *testing.T) {
	d := newEditorDriver(t, testApp(t))

	d.PressKey('q')
	assert.True(t, d.Quitting)
}
