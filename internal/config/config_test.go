package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGetenv(t *testing.T) {
	tests := []struct {
		name     string
		key      string
		val      string
		def      string
		expected string
	}{
		{
			name:     "returns existing env",
			key:      "TEST_ENV_EXIST",
			val:      "value",
			def:      "default",
			expected: "value",
		},
		{
			name:     "returns default when env missing",
			key:      "TEST_ENV_MISSING",
			val:      "",
			def:      "default",
			expected: "default",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.val != "" {
				t.Setenv(tt.key, tt.val)
			} else {
				os.Unsetenv(tt.key)
			}
			assert.Equal(t, tt.expected, getenv(tt.key, tt.def))
		})
	}
}

func TestGetenvBool(t *testing.T) {
	tests := []struct {
		name     string
		key      string
		val      string
		def      bool
		expected bool
	}{
		{
			name:     "returns true when env is true",
			key:      "TEST_BOOL_TRUE",
			val:      "true",
			def:      false,
			expected: true,
		},
		{
			name:     "returns false when env is false",
			key:      "TEST_BOOL_FALSE",
			val:      "false",
			def:      true,
			expected: false,
		},
		{
			name:     "returns default when env missing",
			key:      "TEST_BOOL_MISSING",
			val:      "",
			def:      true,
			expected: true,
		},
		{
			name:     "returns false when env is not true",
			key:      "TEST_BOOL_INVALID",
			val:      "yes",
			def:      true,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.val != "" {
				t.Setenv(tt.key, tt.val)
			} else {
				os.Unsetenv(tt.key)
			}
			assert.Equal(t, tt.expected, getenvBool(tt.key, tt.def))
		})
	}
}

func TestGetenvInt(t *testing.T) {
	tests := []struct {
		name      string
		val       string
		def       int
		expected  int
		expectErr bool
	}{
		{name: "returns default when missing", val: "", def: 7, expected: 7},
		{name: "parses value", val: "42", def: 7, expected: 42},
		{name: "rejects garbage", val: "many", def: 7, expectErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.val != "" {
				t.Setenv("TEST_INT", tt.val)
			} else {
				os.Unsetenv("TEST_INT")
			}
			n, err := getenvInt("TEST_INT", tt.def)
			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, n)
		})
	}
}

func TestGetenvDuration(t *testing.T) {
	tests := []struct {
		name      string
		val       string
		def       time.Duration
		expected  time.Duration
		expectErr bool
	}{
		{name: "returns default when missing", val: "", def: time.Second, expected: time.Second},
		{name: "parses value", val: "250ms", def: time.Second, expected: 250 * time.Millisecond},
		{name: "zero disables", val: "0", def: time.Second, expected: 0},
		{name: "rejects garbage", val: "soon", def: time.Second, expectErr: true},
		{name: "rejects negative", val: "-1s", def: time.Second, expectErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.val != "" {
				t.Setenv("TEST_DURATION", tt.val)
			} else {
				os.Unsetenv("TEST_DURATION")
			}
			d, err := getenvDuration("TEST_DURATION", tt.def)
			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, d)
		})
	}
}

func TestParseBufferSize(t *testing.T) {
	tests := []struct {
		name   string
		val    string
		expect int
	}{
		{"valid size", "8192", 8192},
		{"default size", "", 1024},
		{"too small", "16", 1024},
		{"too large", "2000000", 1024},
		{"invalid format", "abc", 1024},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.val != "" {
				t.Setenv("BUFFER_SIZE", tt.val)
			} else {
				os.Unsetenv("BUFFER_SIZE")
			}
			size := parseBufferSize()
			assert.Equal(t, tt.expect, size)
		})
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name      string
		envs      map[string]string
		expectErr bool
	}{
		{
			name:      "defaults",
			envs:      map[string]string{},
			expectErr: false,
		},
		{
			name: "custom files dir",
			envs: map[string]string{
				"FILES_DIR": "/srv/files",
			},
			expectErr: false,
		},
		{
			name: "invalid max request size",
			envs: map[string]string{
				"MAX_REQUEST_SIZE": "big",
			},
			expectErr: true,
		},
		{
			name: "max request size below buffer size",
			envs: map[string]string{
				"BUFFER_SIZE":      "4096",
				"MAX_REQUEST_SIZE": "1024",
			},
			expectErr: true,
		},
		{
			name: "negative max connections",
			envs: map[string]string{
				"MAX_CONNECTIONS": "-1",
			},
			expectErr: true,
		},
		{
			name: "invalid read timeout",
			envs: map[string]string{
				"READ_TIMEOUT": "5",
			},
			expectErr: true,
		},
		{
			name: "invalid write timeout",
			envs: map[string]string{
				"WRITE_TIMEOUT": "fast",
			},
			expectErr: true,
		},
		{
			name: "invalid shutdown timeout",
			envs: map[string]string{
				"SHUTDOWN_TIMEOUT": "-2s",
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Clearenv()
			for k, v := range tt.envs {
				t.Setenv(k, v)
			}
			cfg, err := parse()
			if tt.expectErr {
				assert.Error(t, err)
				assert.Nil(t, cfg)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, cfg)
			}
		})
	}
}

func TestDefaults(t *testing.T) {
	os.Clearenv()

	cfg, err := parse()
	assert.NoError(t, err)

	assert.Equal(t, "127.0.0.1", cfg.HTTPAddress())
	assert.Equal(t, "4221", cfg.HTTPPort())
	assert.Equal(t, os.TempDir(), cfg.FilesDir())
	assert.Equal(t, 1024, cfg.BufferSize())
	assert.Equal(t, 1<<20, cfg.MaxRequestSize())
	assert.Equal(t, 0, cfg.MaxConnections())
	assert.Equal(t, time.Duration(0), cfg.ReadTimeout())
	assert.Equal(t, time.Duration(0), cfg.WriteTimeout())
	assert.Equal(t, 5*time.Second, cfg.ShutdownTimeout())
	assert.Equal(t, false, cfg.PprofEnabled())
	assert.Equal(t, "6060", cfg.PprofPort())
}

func TestGetters(t *testing.T) {
	envs := map[string]string{
		"HTTP_ADDRESS":     "0.0.0.0",
		"HTTP_PORT":        "8080",
		"FILES_DIR":        "/srv/files",
		"BUFFER_SIZE":      "4096",
		"MAX_REQUEST_SIZE": "65536",
		"MAX_CONNECTIONS":  "128",
		"READ_TIMEOUT":     "30s",
		"WRITE_TIMEOUT":    "10s",
		"SHUTDOWN_TIMEOUT": "1m",
		"PPROF_ENABLED":    "true",
		"PPROF_PORT":       "7070",
	}

	os.Clearenv()
	for k, v := range envs {
		t.Setenv(k, v)
	}

	cfg, err := parse()
	assert.NoError(t, err)

	assert.Equal(t, "0.0.0.0", cfg.HTTPAddress())
	assert.Equal(t, "8080", cfg.HTTPPort())
	assert.Equal(t, "/srv/files", cfg.FilesDir())
	assert.Equal(t, 4096, cfg.BufferSize())
	assert.Equal(t, 65536, cfg.MaxRequestSize())
	assert.Equal(t, 128, cfg.MaxConnections())
	assert.Equal(t, 30*time.Second, cfg.ReadTimeout())
	assert.Equal(t, 10*time.Second, cfg.WriteTimeout())
	assert.Equal(t, time.Minute, cfg.ShutdownTimeout())
	assert.Equal(t, true, cfg.PprofEnabled())
	assert.Equal(t, "7070", cfg.PprofPort())
}

func TestMustLoad(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		os.Clearenv()
		t.Setenv("HTTP_PORT", "4221")
		cfg, err := MustLoad()
		assert.NoError(t, err)
		assert.NotNil(t, cfg)
	})

	t.Run("loadEnvFile error", func(t *testing.T) {
		err := os.Mkdir(".env", 0755)
		assert.NoError(t, err)
		defer os.Remove(".env")

		cfg, err := MustLoad()
		assert.Error(t, err)
		assert.Nil(t, cfg)
	})

	t.Run("parse error", func(t *testing.T) {
		os.Clearenv()
		t.Setenv("MAX_CONNECTIONS", "lots")
		cfg, err := MustLoad()
		assert.Error(t, err)
		assert.Nil(t, cfg)
	})
}

func TestLoadEnvFile(t *testing.T) {
	t.Run("file exists", func(t *testing.T) {
		err := os.WriteFile(".env", []byte("TEST_ENV_FILE=true"), 0644)
		assert.NoError(t, err)
		defer os.Remove(".env")

		err = loadEnvFile()
		assert.NoError(t, err)
		assert.Equal(t, "true", os.Getenv("TEST_ENV_FILE"))
	})

	t.Run("file missing", func(t *testing.T) {
		_ = os.Remove(".env")
		err := loadEnvFile()
		assert.NoError(t, err)
	})
}
