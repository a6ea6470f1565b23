package config

import (
	"bytes"
	"testing"

	domainErrors "cl-interface/internal/domain/errors"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvironmentConfigLoader_Load(t *testing.T) {
	tests := []struct {
		name      string
		envVars   map[string]string
		wantError bool
		validate  func(*testing.T, *Config)
	}{
		{
			name:    "기본 설정값 사용",
			envVars: map[string]string{},
			validate: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "info", cfg.Log.Level)
				assert.Equal(t, "json", cfg.Log.Format)
				assert.Equal(t, "json", cfg.Output.Format)
				assert.Equal(t, "", cfg.Metrics.TextfilePath)
			},
		},
		{
			name: "환경 변수로 설정 오버라이드",
			envVars: map[string]string{
				"LOG_LEVEL":        "debug",
				"LOG_FORMAT":       "text",
				"OUTPUT_FORMAT":    "yaml",
				"METRICS_TEXTFILE": "/var/lib/node_exporter/cl_interface.prom",
			},
			validate: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "debug", cfg.Log.Level)
				assert.Equal(t, "text", cfg.Log.Format)
				assert.Equal(t, "yaml", cfg.Output.Format)
				assert.Equal(t, "/var/lib/node_exporter/cl_interface.prom", cfg.Metrics.TextfilePath)
			},
		},
		{
			name:    "알 수 없는 로그 레벨은 검증을 통과",
			envVars: map[string]string{"LOG_LEVEL": "verbose"},
			validate: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "verbose", cfg.Log.Level)
			},
		},
		{
			name:      "잘못된 출력 형식",
			envVars:   map[string]string{"OUTPUT_FORMAT": "xml"},
			wantError: true,
		},
		{
			name:      "잘못된 로그 형식",
			envVars:   map[string]string{"LOG_FORMAT": "logfmt"},
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, key := range []string{"LOG_LEVEL", "LOG_FORMAT", "OUTPUT_FORMAT", "METRICS_TEXTFILE"} {
				t.Setenv(key, "")
			}
			for key, value := range tt.envVars {
				t.Setenv(key, value)
			}

			loader := NewEnvironmentConfigLoader()
			config, err := loader.Load()

			if tt.wantError {
				assert.Error(t, err)
				assert.True(t, domainErrors.IsValidationError(err))
				assert.Nil(t, config)
				return
			}
			assert.NoError(t, err)
			require.NotNil(t, config)
			tt.validate(t, config)
		})
	}
}

func TestConfig_NewLogger(t *testing.T) {
	cfg := &Config{Log: LogConfig{Level: "warn", Format: "text"}}

	var buf bytes.Buffer

	logger := cfg.NewLogger(&buf)

	assert.Equal(t, logrus.WarnLevel, logger.GetLevel())
	assert.IsType(t, &logrus.TextFormatter{}, logger.Formatter)
	assert.Empty(t, buf.String())
}

func TestConfig_NewLogger_UnknownLevelFallsBackToInfo(t *testing.T) {
	cfg := &Config{Log: LogConfig{Level: "verbose", Format: "json"}}
	var buf bytes.Buffer

	logger := cfg.NewLogger(&buf)

	assert.Equal(t, logrus.InfoLevel, logger.GetLevel())
	assert.IsType(t, &logrus.JSONFormatter{}, logger.Formatter)
	assert.Contains(t, buf.String(), "Unknown LOG_LEVEL value: verbose")
	assert.NoError(t, Validate(cfg))
}
