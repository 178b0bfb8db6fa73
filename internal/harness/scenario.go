package harness

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/tinybeachthor/bear-witness/auth"
	"github.com/tinybeachthor/bear-witness/i18n"
)

// Scenario defines a conformance scenario over the classification
// witnesses. Each step classifies one runtime input and records the case
// and rendered output, so golden files pin the full classify-then-dispatch
// behavior.
type Scenario struct {
	// Name uniquely identifies this scenario and names its golden file.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description"`

	// Steps lists the classifications to run, in order.
	Steps []Step `yaml:"steps"`
}

// Step is a single classification. Exactly one of the kinds is set.
type Step struct {
	// Auth classifies a session and looks up the admin page.
	Auth *AuthStep `yaml:"auth,omitempty"`

	// Greet classifies a language tag and renders the greeting.
	Greet *GreetStep `yaml:"greet,omitempty"`
}

// AuthStep classifies a session by user id.
// Sessions are built without tokens so runs are deterministic.
type AuthStep struct {
	UserID uint32 `yaml:"user_id"`
}

// GreetStep classifies a BCP 47 tag and renders a greeting for Who.
type GreetStep struct {
	Lang string `yaml:"lang"`
	Who  string `yaml:"who"`
}

// Outcome records one step's result. Case is empty when classification
// itself failed (unsupported language); a classified case with a missing
// translation keeps its Case and carries the Error. Output and Error are
// mutually exclusive.
type Outcome struct {
	Kind   string `json:"kind"`
	Case   string `json:"case,omitempty"`
	Output string `json:"output,omitempty"`
	Error  string `json:"error,omitempty"`
}

// Result captures all outcomes of a scenario run.
type Result struct {
	ScenarioName string    `json:"scenario_name"`
	Outcomes     []Outcome `json:"outcomes"`
}

// LoadScenario reads and validates a scenario YAML file.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}

	var scenario Scenario
	if err := yaml.Unmarshal(data, &scenario); err != nil {
		return nil, fmt.Errorf("failed to parse scenario YAML: %w", err)
	}

	if err := scenario.Validate(); err != nil {
		return nil, err
	}
	return &scenario, nil
}

// Validate checks the scenario's structural rules.
func (s *Scenario) Validate() error {
	if s.Name == "" {
		return fmt.Errorf("scenario name is required")
	}
	if len(s.Steps) == 0 {
		return fmt.Errorf("scenario %q has no steps", s.Name)
	}
	for i, step := range s.Steps {
		kinds := 0
		if step.Auth != nil {
			kinds++
		}
		if step.Greet != nil {
			kinds++
		}
		if kinds != 1 {
			return fmt.Errorf("scenario %q steps[%d]: exactly one of auth or greet is required", s.Name, i)
		}
	}
	return nil
}

// Run executes every step of the scenario.
//
// Run itself never fails on domain errors; those are recorded as outcomes,
// because a 404 or an unsupported language is expected behavior a golden
// file should pin.
func (s *Scenario) Run() *Result {
	outcomes := make([]Outcome, 0, len(s.Steps))
	for _, step := range s.Steps {
		switch {
		case step.Auth != nil:
			outcomes = append(outcomes, runAuthStep(step.Auth))
		case step.Greet != nil:
			outcomes = append(outcomes, runGreetStep(step.Greet))
		}
	}
	return &Result{
		ScenarioName: s.Name,
		Outcomes:     outcomes,
	}
}

func runAuthStep(step *AuthStep) Outcome {
	classified := auth.Authenticate(auth.Session{UserID: step.UserID})

	outcome := Outcome{
		Kind: "auth",
		Case: auth.CaseName(classified),
	}
	page, err := auth.AdminPage(classified)
	if err != nil {
		outcome.Error = err.Error()
		return outcome
	}
	outcome.Output = page
	return outcome
}

func runGreetStep(step *GreetStep) Outcome {
	outcome := Outcome{Kind: "greet"}

	lang, err := i18n.ParseLang(step.Lang)
	if err != nil {
		outcome.Error = err.Error()
		return outcome
	}
	outcome.Case = i18n.LangName(lang)

	localized, err := i18n.LocalizeContext(i18n.Context{Who: step.Who}, lang)
	if err != nil {
		outcome.Error = err.Error()
		return outcome
	}
	outcome.Output = i18n.Greeting(localized)
	return outcome
}
