// Package config loads the shelternet YAML configuration: logging, engine
// tuning, the metrics listener, the road topology, stations, shelters and an
// optional seed list of requests.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/shelternet/engine"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid configuration")

// Config mirrors the YAML document.
type Config struct {
	Log      LogConfig       `yaml:"log"`
	Engine   EngineConfig    `yaml:"engine"`
	Metrics  MetricsConfig   `yaml:"metrics"`
	Topology TopologyConfig  `yaml:"topology"`
	Stations []StationConfig `yaml:"stations"`
	Shelters []ShelterConfig `yaml:"shelters"`
	Requests []RequestConfig `yaml:"requests"`
}

// LogConfig selects the zap logger flavour and level.
type LogConfig struct {
	Level       string `yaml:"level"`
	Development bool   `yaml:"development"`
}

// EngineConfig tunes the allocation engine.
type EngineConfig struct {
	EmergencyThreshold int `yaml:"emergency_threshold"`
	DistanceCacheSize  int `yaml:"distance_cache_size"`
}

// MetricsConfig enables the Prometheus listener when Addr is non-empty.
type MetricsConfig struct {
	Addr string `yaml:"addr"`
}

// TopologyConfig describes the road graph.
type TopologyConfig struct {
	Nodes int          `yaml:"nodes"`
	Edges []EdgeConfig `yaml:"edges"`
}

// EdgeConfig is one road. Bidirectional roads expand into two directed edges.
type EdgeConfig struct {
	From          int   `yaml:"from"`
	To            int   `yaml:"to"`
	Weight        int64 `yaml:"weight"`
	Bidirectional bool  `yaml:"bidirectional"`
}

// StationConfig is a named reference node.
type StationConfig struct {
	ID   int    `yaml:"id"`
	Name string `yaml:"name"`
	Node int    `yaml:"node"`
}

// ShelterConfig describes one shelter.
type ShelterConfig struct {
	ID       int    `yaml:"id"`
	Name     string `yaml:"name"`
	Node     int    `yaml:"node"`
	Capacity int    `yaml:"capacity"`
	Contact  string `yaml:"contact"`
}

// RequestConfig is a seed request registered at startup.
type RequestConfig struct {
	ID          int    `yaml:"id"`
	Name        string `yaml:"name"`
	Age         int    `yaml:"age"`
	Gender      string `yaml:"gender"`
	Node        int    `yaml:"node"`
	MedicalNeed bool   `yaml:"medical_need"`
	Complaint   string `yaml:"complaint"`
}

// Default returns a Config with every tunable at its default.
func Default() *Config {
	return &Config{
		Log: LogConfig{Level: "info"},
		Engine: EngineConfig{
			EmergencyThreshold: engine.DefaultEmergencyThreshold,
			DistanceCacheSize:  engine.DefaultDistanceCacheSize,
		},
	}
}

// Load reads and parses the YAML file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	return Parse(data)
}

// Parse decodes YAML over the defaults. Unknown keys are rejected.
// The result is not validated; call Validate.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("config: parse: %w", err)
	}

	return cfg, nil
}
