package band

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

const (
	envConfigFile     = "BANDCHECK_CONFIG"
	defaultConfigFile = ".bandcheck.yml"
)

type Config struct {
	Rules []Rule
}

type ruleConfig struct {
	Name string   `yaml:"name"`
	Path string   `yaml:"path"`
	Min  *float64 `yaml:"min"`
	Max  *float64 `yaml:"max"`
}

type fileConfig struct {
	Rules []ruleConfig `yaml:"rules"`
}

// ConfigPath picks the configuration file to load: the given flag value, then
// $BANDCHECK_CONFIG, then .bandcheck.yml in the working directory.
// It returns "" when there is none.
func ConfigPath(flag string) string {
	if flag != "" {
		return flag
	}
	if env := os.Getenv(envConfigFile); env != "" {
		return env
	}
	if _, err := os.Stat(defaultConfigFile); err == nil {
		return defaultConfigFile
	}
	return ""
}

// LoadConfig reads the rules in the YAML file at path.
// An empty path yields a nil Config.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg, err := ParseConfig(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	log.Debugf("loaded %d rules from %s", len(cfg.Rules), path)
	return cfg, nil
}

func ParseConfig(data []byte) (*Config, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var fc fileConfig
	if err := dec.Decode(&fc); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}

	cfg := &Config{}
	for i, rc := range fc.Rules {
		if rc.Min == nil || rc.Max == nil {
			return nil, fmt.Errorf("rule %d (%s): min and max are required", i, rc.Name)
		}
		rule, err := NewRule(rc.Name, rc.Path, *rc.Min, *rc.Max)
		if err != nil {
			return nil, fmt.Errorf("rule %d: %w", i, err)
		}
		cfg.Rules = append(cfg.Rules, rule)
	}

	return cfg, nil
}
