package constants

import (
	"os"
	"strconv"
)

const (
	AppName    = "modeviz"
	AppVersion = "0.1.0"
)

func getEnv(name string, fallback string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(name string, fallback int) int {
	v := os.Getenv(name)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

// GetStatePort is the bridge HTTP port on 127.0.0.1.
func GetStatePort() int {
	return getEnvInt("MCP_STATE_PORT", 7420)
}

func GetDefaultOctave() int {
	return getEnvInt("MCP_DEFAULT_OCTAVE", 3)
}

func GetStateFile() string {
	return getEnv("MCP_STATE_FILE", "mcp-state.json")
}

// GetStateBackend is "file" or "dynamodb".
func GetStateBackend() string {
	return getEnv("STATE_BACKEND", "file")
}

func GetDynamoEndpoint() string {
	return getEnv("DYNAMODB_ENDPOINT", "http://localhost:8000")
}

func GetDynamoTable() string {
	return getEnv("DYNAMODB_TABLE", "modeviz-state")
}

func GetAWSRegion() string {
	return getEnv("AWS_REGION", "localhost")
}

func GetServeAddr() string {
	return getEnv("SERVE_ADDR", ":8080")
}

func GetLogFile() string {
	return getEnv("LOG_FILE", "")
}

func IsProduction() bool {
	return getEnv("ENVIRONMENT", "development") == "production"
}
