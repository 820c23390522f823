package commands

import (
	"os"
	"testing"

	"github.com/pterm/pterm"
	"github.com/stretchr/testify/require"
)

// captureStdout runs f with stdout and the pterm table writer pointed at a
// temp file and returns what was written, without colour codes
func captureStdout(t *testing.T, f func()) string {
	t.Helper()

	out, err := os.CreateTemp(t.TempDir(), "stdout")
	require.NoError(t, err)
	defer out.Close()

	stdout, tableWriter, printColor := os.Stdout, pterm.DefaultTable.Writer, pterm.PrintColor
	os.Stdout = out
	pterm.DefaultTable.Writer = out
	pterm.PrintColor = false
	defer func() {
		os.Stdout = stdout
		pterm.DefaultTable.Writer = tableWriter
		pterm.PrintColor = printColor
	}()

	f()

	data, err := os.ReadFile(out.Name())
	require.NoError(t, err)
	return pterm.RemoveColorFromString(string(data))
}
