package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type TranscribeConfig struct {
	PollInterval time.Duration
	MaxPolls     int
}

func GetTranscribeConfig() (*TranscribeConfig, error) {
	pollSeconds := 5
	if raw := os.Getenv("TRANSCRIBE_POLL_INTERVAL"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			return nil, fmt.Errorf("Failed to parse TRANSCRIBE_POLL_INTERVAL: %q", raw)
		}
		pollSeconds = parsed
	}

	maxPolls := 120
	if raw := os.Getenv("TRANSCRIBE_MAX_POLLS"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			return nil, fmt.Errorf("Failed to parse TRANSCRIBE_MAX_POLLS: %q", raw)
		}
		maxPolls = parsed
	}

	return &TranscribeConfig{
		PollInterval: time.Duration(pollSeconds) * time.Second,
		MaxPolls:     maxPolls,
	}, nil
}
