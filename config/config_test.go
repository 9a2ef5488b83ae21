package config

import (
	"os"
	"path/filepath"
	"testing"

	"orthoroute/core"
)

func TestDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Listen != ":8791" {
		t.Errorf("listen = %q, want :8791", cfg.Listen)
	}
	if cfg.Routing.Style != "orthogonalEdgeStyle" {
		t.Errorf("style = %q", cfg.Routing.Style)
	}
}

func TestLoadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "orthoroute.yaml")
	data := []byte("listen: \":9000\"\nlog:\n  level: debug\nrouting:\n  jettySize: auto\n  segment: 40\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Listen != ":9000" {
		t.Errorf("listen = %q, want :9000", cfg.Listen)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("log level = %q, want debug", cfg.Log.Level)
	}
	if cfg.Routing.JettySize != "auto" {
		t.Errorf("jettySize = %q, want auto", cfg.Routing.JettySize)
	}
	if cfg.Routing.Segment != 40 {
		t.Errorf("segment = %v, want 40", cfg.Routing.Segment)
	}
	// Values the file does not mention keep their defaults.
	if cfg.Routing.Style != "orthogonalEdgeStyle" {
		t.Errorf("style = %q", cfg.Routing.Style)
	}
}

func TestEnvironmentOverrides(t *testing.T) {
	t.Setenv("ORTHOROUTE_LISTEN", ":7000")
	t.Setenv("ORTHOROUTE_LOG_LEVEL", "error")
	t.Setenv("ORTHOROUTE_ROUTING_JETTY_SIZE", "25")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Listen != ":7000" {
		t.Errorf("listen = %q, want :7000", cfg.Listen)
	}
	if cfg.Log.Level != "error" {
		t.Errorf("log level = %q, want error", cfg.Log.Level)
	}
	if cfg.Routing.JettySize != "25" {
		t.Errorf("jettySize = %q, want 25", cfg.Routing.JettySize)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("expected an error for a missing file")
	}
}

func TestEdgeStyle(t *testing.T) {
	r := Routing{Style: "segmentEdgeStyle", JettySize: "auto", Segment: 40, Elbow: "vertical"}
	style := r.EdgeStyle()

	want := core.Style{
		core.KeyEdgeStyle: "segmentEdgeStyle",
		core.KeyJettySize: "auto",
		core.KeySegment:   "40",
		core.KeyElbow:     "vertical",
	}
	if len(style) != len(want) {
		t.Fatalf("got %d keys, want %d: %v", len(style), len(want), style)
	}
	for k, v := range want {
		if style[k] != v {
			t.Errorf("%s = %q, want %q", k, style[k], v)
		}
	}

	empty := Routing{}.EdgeStyle()
	if len(empty) != 0 {
		t.Errorf("empty routing produced keys: %v", empty)
	}
}
