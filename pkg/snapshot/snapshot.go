// Package snapshot compares values against golden JSON files under testdata/
package snapshot

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

// UpdateEnv forces snapshots to be rewritten when set to a non-empty value
const UpdateEnv = "UPDATE_SNAPSHOTS"

var (
	mu        sync.Mutex
	callCount = make(map[string]int)
)

// Filename returns the golden file used for the call-th snapshot of the named test
func Filename(testName string, call int) string {
	name := strings.NewReplacer("/", "_", " ", "_").Replace(testName)
	return filepath.Join("testdata", fmt.Sprintf("%s-%d.json", name, call))
}

// ValidateSnapshot performs snapshot testing.
// A missing golden file is created from obj.
func ValidateSnapshot(t *testing.T, obj interface{}, msgAndArgs ...interface{}) bool {
	t.Helper()

	mu.Lock()
	call := callCount[t.Name()]
	callCount[t.Name()] = call + 1
	mu.Unlock()

	filename := Filename(t.Name(), call)

	objJSON, err := json.MarshalIndent(obj, "", "  ")
	if err != nil {
		t.Fatalf("could not marshal snapshot: %v", err)
	}

	expects, err := os.ReadFile(filename)
	if err != nil || os.Getenv(UpdateEnv) != "" {
		if err != nil && !os.IsNotExist(err) {
			t.Fatalf("could not read snapshot: %v", err)
		}

		create(t, filename, objJSON)
		return true
	}

	if !assert.Equal(t, strings.Trim(string(expects), "\n"), strings.Trim(string(objJSON), "\n"), msgAndArgs...) {
		t.Logf("snapshot %s", filename)
		return false
	}

	return true
}

func create(t *testing.T, filename string, objJSON []byte) {
	logrus.WithField("filename", filename).Info("writing snapshot file")

	if err := os.MkdirAll(filepath.Dir(filename), 0755); err != nil {
		t.Fatalf("could not create snapshot directory: %v", err)
	}

	if err := os.WriteFile(filename, append(objJSON, '\n'), 0644); err != nil { // nolint:gosec
		t.Fatalf("could not write snapshot: %v", err)
	}
}
