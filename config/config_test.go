package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

const baseYAML = `
home_assistant:
  url: http://ha.local:8123
  token: tok
llm:
  providers:
    - name: gemini
      enabled: true
      priority: 2
      api_key: g-key
      model: gemini-2.5-flash
    - name: deepseek
      enabled: true
      priority: 1
      api_key: ${DEEPSEEK_API_KEY}
      model: deepseek-chat
      timeout: 20s
`

func TestLoadFile_Defaults(t *testing.T) {
	t.Setenv("DEEPSEEK_API_KEY", "ds-key")

	cfg, err := LoadFile(writeConfig(t, baseYAML))
	require.NoError(t, err)

	assert.Equal(t, 8099, cfg.HTTPServer.Port)
	assert.Equal(t, "http://ha.local:8123", cfg.HomeAssistant.URL)
	assert.Equal(t, 30*time.Second, cfg.HomeAssistant.CacheMaxAge)
	assert.Equal(t, 10*time.Second, cfg.HomeAssistant.RequestTimeout)
	assert.Equal(t, 10, cfg.Assistant.HistoryWindow)
	assert.Equal(t, 10*time.Second, cfg.Assistant.ActionTimeout)
	assert.Equal(t, 2, cfg.LLM.RetryAttempts)
	assert.Equal(t, 500*time.Millisecond, cfg.LLM.RetryDelay)
	assert.True(t, cfg.Features.Automations)
	assert.True(t, cfg.Features.ImageRecognition)
	assert.False(t, cfg.MQTT.Enabled)

	require.Len(t, cfg.LLM.Providers, 2)
	assert.Equal(t, "deepseek", cfg.LLM.Providers[0].Name, "sorted by priority")
	assert.Equal(t, "ds-key", cfg.LLM.Providers[0].APIKey)
	assert.Equal(t, 20*time.Second, cfg.LLM.Providers[0].Timeout)
}

func TestLoadFile_AddonEnvOverrides(t *testing.T) {
	t.Setenv("HA_URL", "http://supervisor/core")
	t.Setenv("HA_TOKEN", "")
	t.Setenv("SUPERVISOR_TOKEN", "sup-token")
	t.Setenv("MANUS_API_KEY", "m-key")
	t.Setenv("ENABLE_IMAGE_RECOGNITION", "false")
	t.Setenv("ENABLE_AUTOMATIONS", "TRUE")
	t.Setenv("LOG_LEVEL", "DEBUG")

	cfg, err := LoadFile(writeConfig(t, "environment:\n  name: addon\n"))
	require.NoError(t, err)

	assert.Equal(t, "http://supervisor/core", cfg.HomeAssistant.URL)
	assert.Equal(t, "sup-token", cfg.HomeAssistant.Token)
	assert.Equal(t, "debug", cfg.Logger.Level)
	assert.False(t, cfg.Features.ImageRecognition)
	assert.True(t, cfg.Features.Automations)

	require.Len(t, cfg.LLM.Providers, 1)
	assert.Equal(t, "gemini", cfg.LLM.Providers[0].Name)
	assert.Equal(t, "m-key", cfg.LLM.Providers[0].APIKey)
}

func TestLoadFile_Invalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{
			name: "no providers",
			yaml: "home_assistant:\n  url: http://ha\n",
		},
		{
			name: "bad duration",
			yaml: baseYAML + "assistant:\n  action_timeout: soon\n",
		},
		{
			name: "duplicate priority",
			yaml: `
llm:
  providers:
    - {name: a, enabled: true, priority: 1, api_key: x, model: m}
    - {name: b, enabled: true, priority: 1, api_key: y, model: m}
`,
		},
		{
			name: "all disabled",
			yaml: `
llm:
  providers:
    - {name: a, enabled: false, priority: 1, api_key: x, model: m}
`,
		},
		{
			name: "mqtt without host",
			yaml: baseYAML + "mqtt:\n  enabled: true\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("MANUS_API_KEY", "")
			_, err := LoadFile(writeConfig(t, tt.yaml))
			assert.Error(t, err)
		})
	}
}
