package logger

import (
	"os"
	"path/filepath"
	"testing"
)

func TestInit(t *testing.T) {
	tempDir := t.TempDir()
	configDir := filepath.Join(tempDir, "config")

	err := Init(Config{
		Debug:     false,
		ConfigDir: configDir,
	})
	if err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	if Logger == nil {
		t.Fatal("Expected Logger to be initialized")
	}

	logDir := filepath.Join(configDir, "logs")
	if _, err := os.Stat(logDir); os.IsNotExist(err) {
		t.Error("Expected log directory to be created")
	}
}

func TestLogFunctionsWithNilLogger(t *testing.T) {
	saved := Logger
	Logger = nil
	defer func() { Logger = saved }()

	// Must not panic when logging before Init.
	Debug("debug message")
	Info("info message")
	Warn("warn message")
	Error("error message")
}

func TestInitDebugMode(t *testing.T) {
	tempDir := t.TempDir()

	err := Init(Config{
		Debug:     true,
		ConfigDir: tempDir,
	})
	if err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	Debug("visible in debug mode")
	Info("visible in debug mode")
}
