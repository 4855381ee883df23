package bot

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var defaultCatalog []byte

// Prompt is the outgoing text of one step and its reply options.
type Prompt struct {
	Text           string     `yaml:"text"`
	Error          string     `yaml:"error"`
	Options        [][]string `yaml:"options"`
	RemoveKeyboard bool       `yaml:"remove_keyboard"`
}

// Catalog holds every text the bot sends.
type Catalog struct {
	Welcome      string            `yaml:"welcome"`
	StartButton  string            `yaml:"start_button"`
	NoSession    string            `yaml:"no_session"`
	Restart      string            `yaml:"restart"`
	Thanks       string            `yaml:"thanks"`
	SubmitFailed string            `yaml:"submit_failed"`
	DeclineWord  string            `yaml:"decline_word"`
	NotProvided  string            `yaml:"not_provided"`
	Steps        map[Field]*Prompt `yaml:"steps"`
}

func DefaultCatalog() (*Catalog, error) {
	return ParseCatalog(defaultCatalog)
}

// LoadCatalog reads a catalog from path, or returns the embedded one when path is empty.
func LoadCatalog(path string) (*Catalog, error) {
	if path == "" {
		return DefaultCatalog()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("LoadCatalog: %w", err)
	}

	return ParseCatalog(data)
}

func ParseCatalog(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("ParseCatalog: %w", err)
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}

	return &c, nil
}

func (c *Catalog) Validate() error {
	required := map[string]string{
		"welcome":       c.Welcome,
		"start_button":  c.StartButton,
		"no_session":    c.NoSession,
		"restart":       c.Restart,
		"thanks":        c.Thanks,
		"submit_failed": c.SubmitFailed,
		"decline_word":  c.DeclineWord,
		"not_provided":  c.NotProvided,
	}
	for key, value := range required {
		if value == "" {
			return fmt.Errorf("Catalog.Validate: %s is required", key)
		}
	}

	for _, step := range FormSteps {
		p, ok := c.Steps[step.Field()]
		if !ok || p == nil {
			return fmt.Errorf("Catalog.Validate: step %s is missing", step.Field())
		}

		if p.Text == "" || p.Error == "" {
			return fmt.Errorf("Catalog.Validate: step %s needs text and error", step.Field())
		}

		if isChoiceStep(step) && len(p.Options) == 0 {
			return fmt.Errorf("Catalog.Validate: step %s needs options", step.Field())
		}
	}

	return nil
}

// Prompt returns the prompt for step. The catalog must be valid.
func (c *Catalog) Prompt(step Step) *Prompt {
	return c.Steps[step.Field()]
}

// Allows reports whether text is one of step's options.
func (c *Catalog) Allows(step Step, text string) bool {
	for _, row := range c.Prompt(step).Options {
		for _, option := range row {
			if option == text {
				return true
			}
		}
	}

	return false
}

// Keyboard returns the keyboard sent with the prompt of step.
func (c *Catalog) Keyboard(step Step) *Keyboard {
	p := c.Prompt(step)

	switch {
	case len(p.Options) > 0:
		return &Keyboard{Rows: p.Options, OneTime: true}
	case p.RemoveKeyboard:
		return &Keyboard{Remove: true}
	}

	return nil
}

func (c *Catalog) StartKeyboard() *Keyboard {
	return &Keyboard{Rows: [][]string{{c.StartButton}}}
}

func isChoiceStep(step Step) bool {
	switch step {
	case StepRegion, StepPeriod, StepLevel, StepVisa:
		return true
	}

	return false
}
