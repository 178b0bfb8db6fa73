package harness

import (
	"encoding/json"
	"testing"

	"github.com/sebdah/goldie/v2"
)

// RunWithGolden executes a scenario and compares the outcomes against a
// golden file. The golden file is stored in testdata/golden/{Name}.golden.
//
// To regenerate golden files, run:
//
//	go test ./internal/harness -update
//
// Golden files serve as the source of truth for expected classification and
// dispatch behavior across the example domains.
func RunWithGolden(t *testing.T, scenario *Scenario) error {
	t.Helper()

	result := scenario.Run()

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return err
	}

	// Compare with golden file using goldie
	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, scenario.Name, data)

	return nil
}
