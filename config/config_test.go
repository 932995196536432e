package config

import (
	"testing"
	"time"
)

func TestGetS3Config(t *testing.T) {
	t.Setenv("BUCKET_NAME", "dub-bucket")
	t.Setenv("REGION", "eu-west-1")

	cfg, err := GetS3Config()
	if err != nil {
		t.Fatal("GetS3Config failed:", err)
	}
	if cfg.BucketName != "dub-bucket" || cfg.Region != "eu-west-1" {
		t.Errorf("Unexpected config: %+v", cfg)
	}
}

func TestGetS3ConfigMissingBucket(t *testing.T) {
	t.Setenv("BUCKET_NAME", "")
	t.Setenv("REGION", "eu-west-1")

	if _, err := GetS3Config(); err == nil {
		t.Fatal("Expected an error when BUCKET_NAME is unset")
	}
}

func TestGetPipelineConfigDefaultsSourceLanguage(t *testing.T) {
	t.Setenv("VIDEO_PATH", "/tmp/intro.mp4")
	t.Setenv("VIDEO_KEY", "clips/intro.mp4")
	t.Setenv("TARGET_LANGUAGE", "es")
	t.Setenv("SOURCE_LANGUAGE", "")

	cfg, err := GetPipelineConfig()
	if err != nil {
		t.Fatal("GetPipelineConfig failed:", err)
	}
	if cfg.SourceLanguage != "en-US" {
		t.Errorf("Expected the en-US default, got %q", cfg.SourceLanguage)
	}
}

func TestGetTranscribeConfig(t *testing.T) {
	t.Setenv("TRANSCRIBE_POLL_INTERVAL", "2")
	t.Setenv("TRANSCRIBE_MAX_POLLS", "30")

	cfg, err := GetTranscribeConfig()
	if err != nil {
		t.Fatal("GetTranscribeConfig failed:", err)
	}
	if cfg.PollInterval != 2*time.Second || cfg.MaxPolls != 30 {
		t.Errorf("Unexpected config: %+v", cfg)
	}
}

func TestGetTranscribeConfigDefaults(t *testing.T) {
	t.Setenv("TRANSCRIBE_POLL_INTERVAL", "")
	t.Setenv("TRANSCRIBE_MAX_POLLS", "")

	cfg, err := GetTranscribeConfig()
	if err != nil {
		t.Fatal("GetTranscribeConfig failed:", err)
	}
	if cfg.PollInterval != 5*time.Second || cfg.MaxPolls != 120 {
		t.Errorf("Unexpected defaults: %+v", cfg)
	}
}

func TestGetTranscribeConfigRejectsGarbage(t *testing.T) {
	t.Setenv("TRANSCRIBE_POLL_INTERVAL", "soon")

	if _, err := GetTranscribeConfig(); err == nil {
		t.Fatal("Expected an error for a non-numeric interval")
	}
}
