package config

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg := NewConfig()
		assert.Equal(t, ErrorPolicyLast, cfg.GetString("choice.error_policy"))
		assert.Equal(t, 10000, cfg.GetInt("eval.max_depth"))
		assert.False(t, cfg.GetBool("parser.trace"))
		assert.False(t, cfg.GetBool("eval.trace"))
	})

	t.Run("getting the wrong type panics", func(t *testing.T) {
		cfg := NewConfig()
		assert.PanicsWithValue(t, "Can't retrieve `int` from `string` variable", func() {
			cfg.GetInt("choice.error_policy")
		})
		assert.PanicsWithValue(t, "bool setting `nope` does not exist", func() {
			cfg.GetBool("nope")
		})
	})

	t.Run("setters keep the type and the accepted values", func(t *testing.T) {
		cfg := NewConfig()
		cfg.SetString("choice.error_policy", ErrorPolicyFurthest)
		assert.Equal(t, ErrorPolicyFurthest, cfg.GetString("choice.error_policy"))

		assert.PanicsWithValue(t, "config: `choice.error_policy` must be one of last, furthest, got first", func() {
			cfg.SetString("choice.error_policy", "first")
		})
		assert.PanicsWithValue(t, "config: `eval.max_depth` expects int, got bool", func() {
			cfg.SetBool("eval.max_depth", true)
		})

		cfg.SetString("calculator.name", "calc")
		assert.Equal(t, "calc", cfg.GetString("calculator.name"))
	})

	t.Run("clone does not share values", func(t *testing.T) {
		cfg := NewConfig()
		cp := cfg.Clone()
		cp.SetInt("eval.max_depth", 5)
		assert.Equal(t, 10000, cfg.GetInt("eval.max_depth"))
		assert.Equal(t, 5, cp.GetInt("eval.max_depth"))
	})

	t.Run("dump is sorted and aligned", func(t *testing.T) {
		var s strings.Builder
		NewConfig().Dump(&s)
		assert.Equal(t, `choice.error_policy : last (string)
eval.max_depth      : 10000 (int)
eval.trace          : false (bool)
parser.trace        : false (bool)
`, s.String())
	})
}

func TestFromYAML(t *testing.T) {
	t.Run("nested and dotted keys", func(t *testing.T) {
		cfg, err := FromYAML([]byte(`
choice:
  error_policy: furthest
eval.max_depth: 12
parser:
  trace: true
`))
		require.NoError(t, err)
		assert.Equal(t, ErrorPolicyFurthest, cfg.GetString("choice.error_policy"))
		assert.Equal(t, 12, cfg.GetInt("eval.max_depth"))
		assert.True(t, cfg.GetBool("parser.trace"))
		assert.False(t, cfg.GetBool("eval.trace"))
	})

	t.Run("type mismatch", func(t *testing.T) {
		_, err := FromYAML([]byte("eval:\n  max_depth: lots\n"))
		require.Error(t, err)
		assert.Equal(t, "config: `eval.max_depth` expects int, got string", err.Error())
	})

	t.Run("unsupported values", func(t *testing.T) {
		_, err := FromYAML([]byte("eval:\n  max_depth: [1, 2]\n"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unsupported value")
	})

	t.Run("malformed documents", func(t *testing.T) {
		_, err := FromYAML([]byte("eval: [\n"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "can't decode yaml")
	})

	t.Run("unknown settings", func(t *testing.T) {
		_, err := FromYAML([]byte("choice:\n  error_polcy: furthest\n"))
		require.Error(t, err)
		assert.Equal(t, "config: unknown setting `choice.error_polcy`", err.Error())

		_, err = FromYAML([]byte("eval.max_depth:\n  limit: 3\n"))
		require.Error(t, err)
		assert.Equal(t, "config: unknown setting `eval.max_depth.limit`", err.Error())
	})

	t.Run("error policy must be known", func(t *testing.T) {
		_, err := FromYAML([]byte("choice:\n  error_policy: bogus\n"))
		require.Error(t, err)
		assert.Equal(t, "config: `choice.error_policy` must be one of last, furthest, got bogus", err.Error())
	})
}

func TestFromTOML(t *testing.T) {
	t.Run("tables", func(t *testing.T) {
		cfg, err := FromTOML([]byte(`
[choice]
error_policy = "furthest"

[eval]
max_depth = 3
trace = true
`))
		require.NoError(t, err)
		assert.Equal(t, ErrorPolicyFurthest, cfg.GetString("choice.error_policy"))
		assert.Equal(t, 3, cfg.GetInt("eval.max_depth"))
		assert.True(t, cfg.GetBool("eval.trace"))
	})

	t.Run("unknown settings", func(t *testing.T) {
		_, err := FromTOML([]byte("[calculator]\nname = \"calc\"\n"))
		require.Error(t, err)
		assert.Equal(t, "config: unknown setting `calculator.name`", err.Error())
	})

	t.Run("error policy must be known", func(t *testing.T) {
		_, err := FromTOML([]byte("[choice]\nerror_policy = \"Furthest\"\n"))
		require.Error(t, err)
		assert.Equal(t, "config: `choice.error_policy` must be one of last, furthest, got Furthest", err.Error())
	})

	t.Run("type mismatch", func(t *testing.T) {
		_, err := FromTOML([]byte("[parser]\ntrace = 1\n"))
		require.Error(t, err)
		assert.Equal(t, "config: `parser.trace` expects bool, got int", err.Error())
	})
}

func TestOverlay(t *testing.T) {
	cfg := NewConfig()
	err := cfg.Overlay(map[string]any{
		"eval":   map[string]any{"max_depth": 3},
		"parser": map[string]any{"tracing": true},
	})
	require.Error(t, err)
	assert.Equal(t, "config: unknown setting `parser.tracing`", err.Error())
	assert.Equal(t, 10000, cfg.GetInt("eval.max_depth"))

	require.NoError(t, cfg.Overlay(map[string]any{"eval.max_depth": int64(3)}))
	assert.Equal(t, 3, cfg.GetInt("eval.max_depth"))
}
