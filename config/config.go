// Package config loads tool configuration from an optional YAML file with
// ORTHOROUTE_* environment variable overrides applied on top.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"

	"orthoroute/core"
	"orthoroute/log"
)

type Config struct {
	// Listen is the worker's HTTP listen address.
	Listen  string      `yaml:"listen" envconfig:"LISTEN"`
	Log     log.Options `yaml:"log"`
	Routing Routing     `yaml:"routing"`
}

// Routing holds the defaults folded into every edge style the tool routes.
type Routing struct {
	// Style names the default connector from the route registry.
	Style string `yaml:"style" envconfig:"STYLE"`
	// JettySize is a number or "auto".
	JettySize string `yaml:"jettySize" envconfig:"JETTY_SIZE"`
	// Segment is the stub length for the entity-relation and loop
	// connectors. Zero keeps the connector defaults.
	Segment float64 `yaml:"segment" envconfig:"SEGMENT"`
	// Elbow forces the elbow connector's orientation, "horizontal" or
	// "vertical".
	Elbow string `yaml:"elbow" envconfig:"ELBOW"`
}

func Default() Config {
	return Config{
		Listen: ":8791",
		Log:    log.Options{Level: "info", Format: "console"},
		Routing: Routing{
			Style: "orthogonalEdgeStyle",
		},
	}
}

// Load reads path (if non-empty) over the defaults and then applies
// environment overrides.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := envconfig.Process("orthoroute", &cfg); err != nil {
		return cfg, fmt.Errorf("apply environment: %w", err)
	}
	return cfg, nil
}

// EdgeStyle expands the routing defaults into an edge style bag.
func (r Routing) EdgeStyle() core.Style {
	style := core.Style{}
	if r.Style != "" {
		style[core.KeyEdgeStyle] = r.Style
	}
	if r.JettySize != "" {
		style[core.KeyJettySize] = r.JettySize
	}
	if r.Segment > 0 {
		style[core.KeySegment] = strconv.FormatFloat(r.Segment, 'f', -1, 64)
	}
	if r.Elbow != "" {
		style[core.KeyElbow] = r.Elbow
	}
	return style
}
