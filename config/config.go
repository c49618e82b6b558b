package config

import (
	_ "embed"
	"fmt"
	"os"
	"strconv"
	"strings"
)

//go:embed version
var version string

//go:embed name
var name string

type LogLevel string

const (
	Debug  LogLevel = "debug"
	Info   LogLevel = "info"
	Notice LogLevel = "notice"
	Warn   LogLevel = "warn"
	Error  LogLevel = "error"
)

func GetVersion() string {
	return strings.TrimSpace(version)
}

func GetName() string {
	return strings.TrimSpace(name)
}

func GetLogLevel() LogLevel {
	if IsDebug() {
		return Debug
	}
	logLevel := os.Getenv("GOTODO_LOG_LEVEL")
	if logLevel == "" {
		return Info
	}
	return LogLevel(logLevel)
}

// IsDebug reports whether the development mode toggle is set. Debug mode
// enables gin's debug engine and SQL statement logging.
func IsDebug() bool {
	return os.Getenv("GOTODO_DEBUG") == "true"
}

func GetDBFolderPath() string {
	dbFolderPath := os.Getenv("GOTODO_DB_FOLDER")
	if dbFolderPath == "" {
		dbFolderPath = "db"
	}
	return dbFolderPath
}

func GetDBPath() string {
	return fmt.Sprintf("%s/%s.db", GetDBFolderPath(), GetName())
}

func GetLogFolder() string {
	logFolderPath := os.Getenv("GOTODO_LOG_FOLDER")
	if logFolderPath == "" {
		logFolderPath = "log"
	}
	return logFolderPath
}

func GetListen() string {
	return os.Getenv("GOTODO_LISTEN")
}

func GetPort() int {
	port, err := strconv.Atoi(os.Getenv("GOTODO_PORT"))
	if err != nil || port <= 0 {
		return 8080
	}
	return port
}

// GetSessionSecret returns the cookie signing secret. Empty when unset,
// in which case the web server generates a random one at startup.
func GetSessionSecret() string {
	return os.Getenv("GOTODO_SESSION_SECRET")
}
