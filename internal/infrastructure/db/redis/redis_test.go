package redis

import (
	"testing"
	"time"
)

func TestConfig_WithDefaults(t *testing.T) {
	got := Config{Addr: "localhost:6379"}.withDefaults()
	if got.Timeout != defaultTimeout {
		t.Fatalf("expected default timeout %v, got %v", defaultTimeout, got.Timeout)
	}
}

func TestConfig_WithDefaults_KeepsExplicitTimeout(t *testing.T) {
	cfg := Config{Addr: "cache:6379", DB: 2, Timeout: time.Second}
	got := cfg.withDefaults()
	if got != cfg {
		t.Fatalf("explicit values must be kept: %+v", got)
	}
}
