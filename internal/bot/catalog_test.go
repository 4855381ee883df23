package bot

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestDefaultCatalog(t *testing.T) {
	c, err := DefaultCatalog()
	require.NoError(t, err)

	assert.Equal(t, "Оставить заявку", c.StartButton)
	assert.Equal(t, "Не указан", c.NotProvided)

	assert.True(t, c.Allows(StepRegion, "Центр"))
	assert.False(t, c.Allows(StepRegion, "центр"))
	assert.True(t, c.Allows(StepPeriod, "2 недели"))
	assert.True(t, c.Allows(StepLevel, "Свободно"))
	assert.True(t, c.Allows(StepVisa, "Нет"))
	assert.False(t, c.Allows(StepVisa, "Может быть"))

	kb := c.Keyboard(StepVisa)
	require.NotNil(t, kb)
	assert.Equal(t, [][]string{{"Да", "Нет"}}, kb.Rows)
	assert.True(t, kb.OneTime)

	assert.Equal(t, &Keyboard{Remove: true}, c.Keyboard(StepStartDates))
	assert.Equal(t, &Keyboard{Remove: true}, c.Keyboard(StepBudget))
	assert.Nil(t, c.Keyboard(StepName))
	assert.Nil(t, c.Keyboard(StepMessage))

	assert.Equal(t, &Keyboard{Rows: [][]string{{"Оставить заявку"}}}, c.StartKeyboard())
}

func TestParseCatalogValidation(t *testing.T) {
	t.Run("invalid yaml", func(t *testing.T) {
		_, err := ParseCatalog([]byte("steps: [unclosed"))
		assert.Error(t, err)
	})

	t.Run("missing global text", func(t *testing.T) {
		c, err := DefaultCatalog()
		require.NoError(t, err)

		c.Thanks = ""
		assert.ErrorContains(t, c.Validate(), "thanks")
	})

	t.Run("choice step without options", func(t *testing.T) {
		c, err := DefaultCatalog()
		require.NoError(t, err)

		c.Steps[FieldLevel].Options = nil
		assert.ErrorContains(t, c.Validate(), "level")
	})

	t.Run("missing step", func(t *testing.T) {
		c, err := DefaultCatalog()
		require.NoError(t, err)

		delete(c.Steps, FieldBudget)
		assert.ErrorContains(t, c.Validate(), "budget")
	})
}

func TestLoadCatalog(t *testing.T) {
	c, err := LoadCatalog("")
	require.NoError(t, err)
	assert.NotEmpty(t, c.Welcome)

	c.Welcome = "Hello"
	custom, err := yaml.Marshal(c)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, custom, 0o600))

	c, err = LoadCatalog(path)
	require.NoError(t, err)
	assert.Equal(t, "Hello", c.Welcome)

	_, err = LoadCatalog(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
