package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kpumuk/quickplt/internal/config"
	"github.com/kpumuk/quickplt/internal/matrix"
	"github.com/kpumuk/quickplt/internal/timeaxis"
)

type env struct {
	dir    string
	config string
}

// newEnv points REFL_CODE at a temporary directory and writes a config file
// that keeps test images small.
func newEnv(t *testing.T) env {
	t.Helper()

	dir := t.TempDir()
	t.Setenv(config.BaseDirEnv, dir)

	cfgPath := filepath.Join(dir, "quickplt.hcl")
	require.NoError(t, os.WriteFile(cfgPath, []byte("dpi = 20\n"), 0o600))
	return env{dir: dir, config: cfgPath}
}

func (e env) write(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(e.dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	root := newRootCmd()
	var stdout, stderr bytes.Buffer
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(normalizeArgs(root.Flags(), args))
	err := root.Execute()
	return stdout.String(), err
}

func tenRows() string {
	var b strings.Builder
	b.WriteString("% mjd rh\n")
	for i := range 10 {
		b.WriteString("5884")
		b.WriteByte(byte('0' + i))
		b.WriteString(".5 2.")
		b.WriteByte(byte('0' + i))
		b.WriteString("\n")
	}
	return b.String()
}

func TestRootSavesPlot(t *testing.T) {
	e := newEnv(t)
	data := e.write(t, "data.txt", tenRows())

	out, err := execute(t, data, "1", "2", "-mjd", "T", "-outfile", "result.png", "-config", e.config)
	require.NoError(t, err)

	want := filepath.Join(e.dir, "Files", "result.png")
	require.Contains(t, out, "Plotfile saved to: "+want)
	info, err := os.Stat(want)
	require.NoError(t, err)
	require.Positive(t, info.Size())
}

func TestRootDefaultOutput(t *testing.T) {
	e := newEnv(t)
	data := e.write(t, "data.txt", tenRows())

	out, err := execute(t, data, "1", "2", "-config", e.config)
	require.NoError(t, err)
	require.Contains(t, out, filepath.Join(e.dir, "Files", "temp.png"))
}

func TestRootRejectsOutputSuffix(t *testing.T) {
	e := newEnv(t)
	data := e.write(t, "data.txt", tenRows())

	out, err := execute(t, data, "1", "2", "-outfile", "result.jpg", "-config", e.config)
	require.NoError(t, err)
	require.Contains(t, out, "Output filename must end in png.")
	require.NotContains(t, out, "Plotfile saved to")

	_, err = os.Stat(filepath.Join(e.dir, "Files", "result.jpg"))
	require.True(t, os.IsNotExist(err))
}

func TestRootLimits(t *testing.T) {
	e := newEnv(t)
	data := e.write(t, "data.txt", tenRows())

	out, err := execute(t, data, "1", "2", "-mjd", "T", "-ylimits", "3", "1", "-xlimits", "58840", "58850", "-config", e.config)
	require.NoError(t, err)
	require.Contains(t, out, "found y-axis limits\nfound x-axis limits\n")
	require.Contains(t, out, "Plotfile saved to:")

	_, err = execute(t, data, "1", "2", "-ylimits", "3", "-config", e.config)
	require.ErrorIs(t, err, timeaxis.ErrLimitArity)
}

func TestRootMissingSecondFile(t *testing.T) {
	e := newEnv(t)
	data := e.write(t, "data.txt", tenRows())

	out, err := execute(t, data, "1", "2", "-filename2", filepath.Join(e.dir, "nope.txt"), "-config", e.config)
	require.NoError(t, err)
	require.Contains(t, out, "second filename does not exist")
	require.Contains(t, out, "Plotfile saved to:")
}

func TestRootSecondFile(t *testing.T) {
	e := newEnv(t)
	data := e.write(t, "data.txt", tenRows())
	data2 := e.write(t, "data2.txt", "58845 2.5\n")

	out, err := execute(t, data, "1", "2", "-filename2", data2, "-config", e.config)
	require.NoError(t, err)
	require.NotContains(t, out, "second filename does not exist")
	require.Contains(t, out, "Plotfile saved to:")
}

func TestRootEmptyInputs(t *testing.T) {
	e := newEnv(t)
	data := e.write(t, "data.txt", tenRows())
	empty := e.write(t, "empty.txt", "% nothing here\n\n")

	out, err := execute(t, empty, "1", "2", "-config", e.config)
	require.NoError(t, err)
	require.Equal(t, "empty input file number 1\n", out)

	out, err = execute(t, data, "1", "2", "-filename2", empty, "-config", e.config)
	require.NoError(t, err)
	require.Equal(t, "empty input for filenumber 2\n", out)

	_, err = os.Stat(filepath.Join(e.dir, "Files"))
	require.True(t, os.IsNotExist(err), "nothing may be written for empty input")
}

func TestRootErrors(t *testing.T) {
	e := newEnv(t)
	data := e.write(t, "data.txt", tenRows())
	ragged := e.write(t, "ragged.txt", "1 2\n3\n")

	_, err := execute(t, filepath.Join(e.dir, "missing.txt"), "1", "2", "-config", e.config)
	require.ErrorIs(t, err, ErrInputMissing)

	_, err = execute(t, data, "1", "2", "-mjd", "T", "-ydoy", "True", "-config", e.config)
	require.ErrorIs(t, err, timeaxis.ErrConflictingModes)

	_, err = execute(t, data, "1", "5", "-config", e.config)
	require.ErrorIs(t, err, timeaxis.ErrColumnOutOfRange)

	_, err = execute(t, data, "0", "2", "-config", e.config)
	require.ErrorIs(t, err, ErrColumn)

	_, err = execute(t, ragged, "1", "2", "-config", e.config)
	require.ErrorIs(t, err, matrix.ErrRagged)

	_, err = execute(t, data, "1", "2", "-symbol", "zz", "-config", e.config)
	require.Error(t, err)

	_, err = execute(t, data, "1", "2")
	require.NoError(t, err, "config file is optional")
}

func TestRootMissingBaseDir(t *testing.T) {
	e := newEnv(t)
	data := e.write(t, "data.txt", tenRows())
	t.Setenv(config.BaseDirEnv, "")

	_, err := execute(t, data, "1", "2")
	require.ErrorIs(t, err, config.ErrNoBaseDir)
}

func TestRootInputChecksPrecedeBaseDir(t *testing.T) {
	e := newEnv(t)
	empty := e.write(t, "empty.txt", "% nothing here\n")
	t.Setenv(config.BaseDirEnv, "")

	out, err := execute(t, empty, "1", "2")
	require.NoError(t, err)
	require.Equal(t, "empty input file number 1\n", out)

	_, err = execute(t, filepath.Join(e.dir, "missing.txt"), "1", "2")
	require.ErrorIs(t, err, ErrInputMissing)
	require.NotErrorIs(t, err, config.ErrNoBaseDir)
}

func TestBuildVersion(t *testing.T) {
	t.Parallel()

	got := buildVersion("1.2.3", "abc123", "2024-01-01", "ci")
	require.True(t, strings.HasPrefix(got, "1.2.3\ncommit: abc123\nbuilt at: 2024-01-01\nbuilt by: ci\n"))
	require.Contains(t, got, "goos: ")
}
