package config

import "time"

type Config interface {
	HTTPAddress() string
	HTTPPort() string

	FilesDir() string

	BufferSize() int
	MaxRequestSize() int
	MaxConnections() int

	ReadTimeout() time.Duration
	WriteTimeout() time.Duration
	ShutdownTimeout() time.Duration

	PprofEnabled() bool
	PprofPort() string
}

func MustLoad() (Config, error) {
	if err := loadEnvFile(); err != nil {
		return nil, err
	}

	cfg, err := parse()
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *config) HTTPAddress() string            { return c.httpAddress }
func (c *config) HTTPPort() string               { return c.httpPort }
func (c *config) FilesDir() string               { return c.filesDir }
func (c *config) BufferSize() int                { return c.bufferSize }
func (c *config) MaxRequestSize() int            { return c.maxRequestSize }
func (c *config) MaxConnections() int            { return c.maxConnections }
func (c *config) ReadTimeout() time.Duration     { return c.readTimeout }
func (c *config) WriteTimeout() time.Duration    { return c.writeTimeout }
func (c *config) ShutdownTimeout() time.Duration { return c.shutdownTimeout }
func (c *config) PprofEnabled() bool             { return c.pprofEnabled }
func (c *config) PprofPort() string              { return c.pprofPort }
