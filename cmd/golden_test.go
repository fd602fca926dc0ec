package cmd

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/maps"
)

var expectedOutputPattern = regexp.MustCompile(`// expect: ?(.*)`)
var expectedErrorPattern = regexp.MustCompile(`// (\[line \d+\] Error.*)`)
var argsPattern = regexp.MustCompile(`// args: (.+)`)
var nonTestPattern = regexp.MustCompile(`// nontest`)

type goldenTest struct {
	path             string
	args             []string
	expectedOutput   []string
	expectedErrors   map[string]struct{}
	expectedExitCode int
}

// TestGolden runs every testdata/*.lox script and compares stdout and stderr
// with the "// expect: " and "// [line N] Error" annotations in the script.
func TestGolden(t *testing.T) {
	dir, err := filepath.Abs("testdata")
	require.NoError(t, err)
	chdir(t, t.TempDir())

	files, err := filepath.Glob(filepath.Join(dir, "*.lox"))
	require.NoError(t, err)
	require.NotEmpty(t, files)

	for _, file := range files {
		test, ok := parseGoldenTest(t, file)
		if !ok {
			continue
		}

		t.Run(filepath.Base(file), func(t *testing.T) {
			app, stdout, stderr := newTestApp()
			code := app.Main(append(test.args, test.path))

			assert.Equal(t, test.expectedExitCode, code, "stderr: %s", stderr.String())
			assert.Equal(t, test.expectedOutput, splitLines(stdout.String()))

			assert.ElementsMatch(t, maps.Keys(test.expectedErrors), splitLines(stderr.String()))
		})
	}
}

func parseGoldenTest(t *testing.T, path string) (*goldenTest, bool) {
	t.Helper()

	content, err := os.ReadFile(path)
	require.NoError(t, err)

	test := &goldenTest{path: path, expectedErrors: map[string]struct{}{}}
	for _, line := range strings.Split(string(content), "\n") {
		if nonTestPattern.MatchString(line) {
			return nil, false
		}

		if match := argsPattern.FindStringSubmatch(line); match != nil {
			test.args = append(test.args, strings.Fields(match[1])...)
			continue
		}

		if match := expectedOutputPattern.FindStringSubmatch(line); match != nil {
			test.expectedOutput = append(test.expectedOutput, match[1])
			continue
		}

		if match := expectedErrorPattern.FindStringSubmatch(line); match != nil {
			test.expectedErrors[match[1]] = struct{}{}
			test.expectedExitCode = ExitDataErr
		}
	}

	return test, true
}

func splitLines(s string) []string {
	lines := strings.Split(s, "\n")
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	if len(lines) == 0 {
		return nil
	}
	return lines
}
