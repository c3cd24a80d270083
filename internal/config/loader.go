package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type config struct {
	httpAddress string
	httpPort    string

	filesDir string

	bufferSize     int
	maxRequestSize int
	maxConnections int

	readTimeout     time.Duration
	writeTimeout    time.Duration
	shutdownTimeout time.Duration

	pprofEnabled bool
	pprofPort    string
}

func parse() (*config, error) {
	httpAddress := getenv("HTTP_ADDRESS", "127.0.0.1")
	httpPort := getenv("HTTP_PORT", "4221")

	filesDir := getenv("FILES_DIR", os.TempDir())

	bufferSize := parseBufferSize()

	maxRequestSize, err := getenvInt("MAX_REQUEST_SIZE", 1<<20)
	if err != nil {
		return nil, err
	}
	if maxRequestSize < bufferSize {
		return nil, fmt.Errorf("MAX_REQUEST_SIZE must be at least BUFFER_SIZE (%d)", bufferSize)
	}

	maxConnections, err := getenvInt("MAX_CONNECTIONS", 0)
	if err != nil {
		return nil, err
	}
	if maxConnections < 0 {
		return nil, fmt.Errorf("MAX_CONNECTIONS cannot be negative")
	}

	readTimeout, err := getenvDuration("READ_TIMEOUT", 0)
	if err != nil {
		return nil, err
	}
	writeTimeout, err := getenvDuration("WRITE_TIMEOUT", 0)
	if err != nil {
		return nil, err
	}
	shutdownTimeout, err := getenvDuration("SHUTDOWN_TIMEOUT", 5*time.Second)
	if err != nil {
		return nil, err
	}

	pprofEnabled := getenvBool("PPROF_ENABLED", false)
	pprofPort := getenv("PPROF_PORT", "6060")

	return &config{
		httpAddress:     httpAddress,
		httpPort:        httpPort,
		filesDir:        filesDir,
		bufferSize:      bufferSize,
		maxRequestSize:  maxRequestSize,
		maxConnections:  maxConnections,
		readTimeout:     readTimeout,
		writeTimeout:    writeTimeout,
		shutdownTimeout: shutdownTimeout,
		pprofEnabled:    pprofEnabled,
		pprofPort:       pprofPort,
	}, nil
}

func loadEnvFile() error {
	if _, err := os.Stat(".env"); err == nil {
		return godotenv.Load(".env")
	}
	return nil
}

func parseBufferSize() int {
	raw := getenv("BUFFER_SIZE", "1024")
	size, err := strconv.Atoi(raw)
	if err != nil || size < 256 || size > 1048576 {
		log.Println("Invalid BUFFER_SIZE, falling back to 1024")
		return 1024
	}
	return size
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvBool(key string, def bool) bool {
	val := os.Getenv(key)
	if val == "" {
		return def
	}
	return val == "true"
}

func getenvInt(key string, def int) (int, error) {
	val := os.Getenv(key)
	if val == "" {
		return def, nil
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}

func getenvDuration(key string, def time.Duration) (time.Duration, error) {
	val := os.Getenv(key)
	if val == "" {
		return def, nil
	}
	d, err := time.ParseDuration(val)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("%s cannot be negative", key)
	}
	return d, nil
}
