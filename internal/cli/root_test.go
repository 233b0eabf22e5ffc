package cli

import (
	"bytes"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nmxmxh/navcaps/config"
	"github.com/nmxmxh/navcaps/utils"
)

// execute runs the root command with args and returns stdout and stderr.
func execute(t *testing.T, cfg config.Config, args ...string) (string, string, error) {
	t.Helper()

	prev := utils.GlobalLogger()
	t.Cleanup(func() { utils.SetGlobalLogger(prev) })

	var stdout, stderr bytes.Buffer
	cmd := NewRootCommand(cfg)
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func assertGolden(t *testing.T, name string, got string) {
	t.Helper()
	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, name, []byte(got))
}

func TestRootCommand(t *testing.T) {
	cmd := NewRootCommand(config.Defaults())
	require.NotNil(t, cmd)
	assert.Equal(t, "navcaps", cmd.Use)

	for _, name := range []string{"detect", "rules"} {
		t.Run(name, func(t *testing.T) {
			sub, _, err := cmd.Find([]string{name})
			require.NoError(t, err)
			assert.Equal(t, name, sub.Name())
		})
	}
}

func TestGlobalFlags_DefaultFromConfig(t *testing.T) {
	cfg := config.Defaults()
	cfg.Format = "json"
	cmd := NewRootCommand(cfg)

	format := cmd.PersistentFlags().Lookup("format")
	require.NotNil(t, format)
	assert.Equal(t, "json", format.DefValue)

	level := cmd.PersistentFlags().Lookup("log-level")
	require.NotNil(t, level)
	assert.Equal(t, "warn", level.DefValue)
}

func TestRootCommand_InvalidFormat(t *testing.T) {
	_, _, err := execute(t, config.Defaults(), "rules", "--format", "xml")
	assert.ErrorContains(t, err, `invalid format "xml"`)
}

func TestRootCommand_InvalidLogLevel(t *testing.T) {
	_, _, err := execute(t, config.Defaults(), "rules", "--log-level", "loud")
	assert.ErrorContains(t, err, `unknown log level "loud"`)
}

func TestRulesCommand_Golden(t *testing.T) {
	out, _, err := execute(t, config.Defaults(), "rules", "--format", "json")
	require.NoError(t, err)
	assertGolden(t, "rules", out)
}

func TestRulesCommand_ProtoJSONUnsupported(t *testing.T) {
	_, _, err := execute(t, config.Defaults(), "rules", "--format", "protojson")
	assert.ErrorContains(t, err, "not supported by rules")
}
