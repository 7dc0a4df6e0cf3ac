package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lapwatch/internal/core/model"
)

func TestTheme_Toggle(t *testing.T) {
	assert.Equal(t, model.ThemeLight, model.ThemeDark.Toggle())
	assert.Equal(t, model.ThemeDark, model.ThemeLight.Toggle())
	assert.Equal(t, model.ThemeDark, model.Theme("").Toggle())
}

func TestParseTheme(t *testing.T) {
	theme, err := model.ParseTheme(" Dark ")
	require.NoError(t, err)
	assert.Equal(t, model.ThemeDark, theme)

	theme, err = model.ParseTheme("light")
	require.NoError(t, err)
	assert.Equal(t, model.ThemeLight, theme)

	_, err = model.ParseTheme("solarized")
	require.ErrorIs(t, err, model.ErrUnknownTheme)
}
