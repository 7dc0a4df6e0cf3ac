package preferences

import (
	"testing"
	"time"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lapwatch/internal/core/model"
)

func TestWindow_SaveAppliesEdits(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	var saved []Settings
	prefs := New(app, DefaultSettings(), func(settings Settings) {
		saved = append(saved, settings)
	})

	assert.Equal(t, "dark", prefs.theme.Selected)
	assert.Equal(t, "10", prefs.sample.Text)

	prefs.theme.SetSelected("light")
	prefs.sample.SetText("25")
	prefs.logLevel.SetSelected("debug")
	prefs.handleSave()

	require.Len(t, saved, 1)
	assert.Equal(t, model.ThemeLight, saved[0].Theme)
	assert.Equal(t, 25*time.Millisecond, saved[0].SampleInterval)
	assert.Equal(t, "debug", saved[0].LogLevel)
}

func TestWindow_InvalidIntervalKeepsPrevious(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	var saved Settings
	prefs := New(app, DefaultSettings(), func(settings Settings) {
		saved = settings
	})

	prefs.sample.SetText("0")
	prefs.handleSave()
	assert.Equal(t, model.DefaultSampleInterval, saved.SampleInterval)

	prefs.sample.SetText("fast")
	prefs.handleSave()
	assert.Equal(t, model.DefaultSampleInterval, saved.SampleInterval)
}

func TestParseIntInRange(t *testing.T) {
	value, ok := parseIntInRange("1000", 1, 1000)
	assert.True(t, ok)
	assert.Equal(t, 1000, value)

	_, ok = parseIntInRange("1001", 1, 1000)
	assert.False(t, ok)
}
