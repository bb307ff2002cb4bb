package assert

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Assert is a wrapper around assert.Assertions and testing.T
type Assert struct {
	*assert.Assertions
	T *testing.T
}

// New creates a new Assert object
func New(t *testing.T) *Assert {
	return &Assert{
		Assertions: assert.New(t),
		T:          t,
	}
}

// FixturePath returns fixtures/<test name>_<fixtureName>.json. Subtest
// separators in the test name become underscores.
func (a *Assert) FixturePath(fixtureName string) string {
	testName := strings.ReplaceAll(a.T.Name(), "/", "_")
	return filepath.Join("fixtures", testName+"_"+fixtureName+".json")
}

// EqualToJSONFixture marshals result to indented JSON and compares it with
// the fixture at FixturePath(fixtureName). Comparison is semantic, so
// whitespace differences in hand-edited fixtures don't matter.
//
// With GEN_FIXTURE=true the fixture is (re)written instead and the
// assertion passes.
func (a *Assert) EqualToJSONFixture(fixtureName string, result any) {
	a.T.Helper()

	resultJSON, err := json.MarshalIndent(result, "", "  ")
	if !a.NoError(err, "Failed to marshal result to JSON") {
		return
	}

	fixturePath := a.FixturePath(fixtureName)

	if os.Getenv("GEN_FIXTURE") == "true" {
		err := os.MkdirAll(filepath.Dir(fixturePath), 0755)
		a.NoError(err, "Failed to create fixture directory")
		err = os.WriteFile(fixturePath, append(resultJSON, '\n'), 0644)
		a.NoError(err, "Failed to write fixture file")
		return
	}

	expected, err := os.ReadFile(fixturePath)
	if !a.NoError(err, "Failed to read fixture file %s", fixturePath) {
		return
	}

	a.JSONEq(string(expected), string(resultJSON), "Result does not match fixture %s", fixturePath)
}
