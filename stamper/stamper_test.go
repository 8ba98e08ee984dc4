package stamper_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/byte4ever/cfngen/stamper"
)

// writeTemp creates a file with content in dir and returns its
// path.
func writeTemp(
	tb testing.TB,
	dir string,
	name string,
	content string,
) string {
	tb.Helper()

	pa := filepath.Join(dir, name)
	require.NoError(
		tb,
		os.WriteFile(pa, []byte(content), 0o600),
	)

	return pa
}

func TestLoad_parses_status_lines(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	sf := writeTemp(
		t, dir, "status.txt",
		"BUILD_USER alice\nGIT_SHA deadbeef\nmalformed\n",
	)

	st, err := stamper.Load([]string{sf})
	require.NoError(t, err)
	assert.Equal(
		t,
		stamper.Stamps{
			"BUILD_USER": "alice",
			"GIT_SHA":    "deadbeef",
		},
		st,
	)
}

func TestLoad_later_files_override(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	sf1 := writeTemp(t, dir, "s1.txt", "VERSION 1.0\n")
	sf2 := writeTemp(t, dir, "s2.txt", "VERSION 2.0\n")

	st, err := stamper.Load([]string{sf1, sf2})
	require.NoError(t, err)
	assert.Equal(t, "2.0", st["VERSION"])
}

func TestLoad_missing_file(t *testing.T) {
	t.Parallel()

	_, err := stamper.Load(
		[]string{"/nonexistent/status.txt"},
	)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loading stamps")
}

func TestLoad_no_files_yields_empty_map(t *testing.T) {
	t.Parallel()

	st, err := stamper.Load(nil)
	require.NoError(t, err)
	assert.Empty(t, st)
}

func TestExpand_substitutes_variables(t *testing.T) {
	t.Parallel()

	st := stamper.Stamps{
		"BUILD_USER": "alice",
		"GIT_SHA":    "deadbeef",
	}

	got := st.Expand(
		"built by {BUILD_USER} at {GIT_SHA}",
	)
	assert.Equal(t, "built by alice at deadbeef", got)
}

func TestExpand_unknown_variable_preserved(t *testing.T) {
	t.Parallel()

	st := stamper.Stamps{"KNOWN": "yes"}

	got := st.Expand("{KNOWN} and {UNKNOWN}")
	assert.Equal(t, "yes and {UNKNOWN}", got)
}
