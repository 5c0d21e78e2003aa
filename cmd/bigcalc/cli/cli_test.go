package cli

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/govalues/bignum"
	"github.com/govalues/bignum/internal/rpn"
)

func run(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	defer slog.SetDefault(slog.Default())

	var out, errOut bytes.Buffer
	cmd := Main()
	cmd.SetArgs(args)
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	err = cmd.ExecuteContext(context.Background())
	return out.String(), errOut.String(), err
}

func TestEval(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"eval", "1.23", "4.56", "+"}, "5.79"},
		{[]string{"eval", "1.23 4.56 + 10 *"}, "57.9"},
		{[]string{"eval", "5", "7", "-"}, "-2"},
		{[]string{"eval", "10 3 /"}, "3.3333333333"},
		{[]string{"eval", "--scale", "2", "2 3 /"}, "0.66"},
		{[]string{"eval", "--scale", "2", "--round", "2 3 /"}, "0.67"},
		{[]string{"--mode", "int", "eval", "2 100 ^"}, "1267650600228229401496703205376"},
		{[]string{"eval", "--mode=int", "7 -2 %"}, "1"},
		{[]string{"eval", "--", "-7", "2", "%"}, "-1"},
	}
	for _, tt := range tests {
		t.Run(strings.Join(tt.args, " "), func(t *testing.T) {
			out, _, err := run(t, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want+"\n", out)
		})
	}
}

func TestEval_Errors(t *testing.T) {
	_, _, err := run(t, "eval", "1 0 /")
	require.Error(t, err)
	assert.True(t, rpn.Error.Has(err), "%v", err)

	_, _, err = run(t, "eval", "--mode", "float", "1 2 +")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid mode "float"`)

	_, _, err = run(t, "eval")
	require.Error(t, err)

	_, _, err = run(t, "eval", "--scale", "-1", "1 2 /")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "negative scale")
}

func TestFact(t *testing.T) {
	tests := map[string]string{
		"0":  "1",
		"1":  "1",
		"5":  "120",
		"20": "2432902008176640000",
		"30": "265252859812191058636308480000000",
	}
	for n, want := range tests {
		out, _, err := run(t, "fact", n)
		require.NoError(t, err, n)
		assert.Equal(t, want+"\n", out, n)
	}

	_, _, err := run(t, "fact", "--", "-1")
	require.Error(t, err)
	assert.True(t, bignum.RangeError.Has(err), "%v", err)

	_, _, err = run(t, "fact", "x")
	require.Error(t, err)
	assert.True(t, bignum.ParseError.Has(err), "%v", err)

	_, _, err = run(t, "fact", "99999999999999999999")
	require.Error(t, err)
	assert.True(t, bignum.RangeError.Has(err), "%v", err)
}

func TestConfig_Env(t *testing.T) {
	t.Setenv("BIGCALC_SCALE", "3")
	t.Setenv("BIGCALC_ROUND", "true")

	out, _, err := run(t, "eval", "2 3 /")
	require.NoError(t, err)
	assert.Equal(t, "0.667\n", out)

	// Flags take precedence over the environment.
	out, _, err = run(t, "eval", "--scale", "1", "2 3 /")
	require.NoError(t, err)
	assert.Equal(t, "0.7\n", out)
}

func TestConfig_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bigcalc.yaml")
	require.NoError(t, os.WriteFile(path, []byte("mode: int\nscale: 4\n"), 0o600))

	out, _, err := run(t, "--config", path, "eval", "7 2 /")
	require.NoError(t, err)
	assert.Equal(t, "3\n", out)

	// The environment takes precedence over the config file.
	t.Setenv("BIGCALC_MODE", "decimal")
	out, _, err = run(t, "-c", path, "eval", "2 3 /")
	require.NoError(t, err)
	assert.Equal(t, "0.6666\n", out)

	_, _, err = run(t, "--config", filepath.Join(t.TempDir(), "missing.yaml"), "eval", "1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading config")
}

func TestLogging(t *testing.T) {
	out, stderr, err := run(t, "--log-fmt", "json", "--log-level", "debug", "eval", "1 2 +")
	require.NoError(t, err)
	assert.Equal(t, "3\n", out)
	assert.Contains(t, stderr, `"msg":"evaluating"`)
	assert.Contains(t, stderr, `"msg":"applied operator"`)
	assert.Contains(t, stderr, `"result":"3"`)

	_, stderr, err = run(t, "--log-level", "info", "eval", "1 2 +")
	require.NoError(t, err)
	assert.Contains(t, stderr, "evaluating")
	assert.NotContains(t, stderr, "\x1b[", "text output to a buffer is not colored")

	_, stderr, err = run(t, "eval", "1 2 +")
	require.NoError(t, err)
	assert.Empty(t, stderr)

	_, _, err = run(t, "--log-level", "trace", "eval", "1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid log-level "trace"`)

	_, _, err = run(t, "--log-fmt", "xml", "eval", "1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid log-fmt "xml"`)
}

func TestSlogLevel(t *testing.T) {
	for s, want := range map[string]slog.Level{
		"debug":  slog.LevelDebug,
		" INFO ": slog.LevelInfo,
		"warn":   slog.LevelWarn,
		"Error":  slog.LevelError,
	} {
		got, err := slogLevel(s)
		require.NoError(t, err, s)
		assert.Equal(t, want, got, s)
	}
}
