// Package fstest provides a conformance test suite for validating filesystem
// provider implementations against the core.FS interface contracts.
//
// Providers import the suite from their own tests:
//
//	func TestMyProvider(t *testing.T) {
//	    fstest.TestSuite(t, func() core.FS {
//	        return myprovider.New()
//	    })
//	}
package fstest

import (
	"slices"
	"testing"

	"github.com/jmgilman/fileops/fs/core"
)

// FSTestConfig configures the test suite to match filesystem behavior characteristics.
type FSTestConfig struct {
	// PreservesModes indicates Chmod changes are visible through Stat.
	// Memory filesystems usually keep the mode they were created with.
	PreservesModes bool

	// SkipTests lists specific test names to skip.
	// Format: "TestGroup" or "TestGroup/SubTest" (e.g., "ChrootFS/PathTraversal").
	SkipTests []string
}

// LocalTestConfig returns configuration for disk-backed filesystems.
func LocalTestConfig() FSTestConfig {
	return FSTestConfig{PreservesModes: true}
}

// MemoryTestConfig returns configuration for in-memory filesystems.
func MemoryTestConfig() FSTestConfig {
	return FSTestConfig{}
}

func (c FSTestConfig) skip(t *testing.T, name string) bool {
	t.Helper()
	if slices.Contains(c.SkipTests, name) {
		t.Skip("Skipped by provider configuration")
		return true
	}
	return false
}

// TestSuite runs all applicable conformance tests against a filesystem.
// The newFS function should return a fresh, empty filesystem for each test.
// Uses MemoryTestConfig() by default.
func TestSuite(t *testing.T, newFS func() core.FS) {
	TestSuiteWithConfig(t, newFS, MemoryTestConfig())
}

// TestSuiteWithConfig runs conformance tests with behavior configuration.
func TestSuiteWithConfig(t *testing.T, newFS func() core.FS, config FSTestConfig) {
	groups := []struct {
		name string
		run  func(*testing.T, core.FS, FSTestConfig)
	}{
		{"ReadFS", TestReadFSWithConfig},
		{"WriteFS", TestWriteFSWithConfig},
		{"ManageFS", TestManageFSWithConfig},
		{"ChrootFS", TestChrootFSWithConfig},
		{"MetadataFS", TestMetadataFSWithConfig},
		{"TimesFS", TestTimesFSWithConfig},
	}

	for _, g := range groups {
		t.Run(g.name, func(t *testing.T) {
			if config.skip(t, g.name) {
				return
			}
			g.run(t, newFS(), config)
		})
	}
}

// run executes one subtest of group unless the configuration skips it.
func run(t *testing.T, config FSTestConfig, group, name string, fn func(t *testing.T)) {
	t.Run(name, func(t *testing.T) {
		if config.skip(t, group+"/"+name) {
			return
		}
		fn(t)
	})
}
