// Copyright 2020-2021 Dolthub, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package config loads the ambient settings governing how a Builder
// logs and traces, the way the teacher loads its server configuration:
// a small YAML document unmarshaled with gopkg.in/yaml.v2, the
// teacher's own dependency for structured configuration.
package config

import (
	"io/ioutil"

	"github.com/sirupsen/logrus"
	yaml "gopkg.in/yaml.v2"
)

// PlannerConfig controls the binder/planner's ambient behavior. It
// carries no domain settings (the core has no execution knobs to
// configure, spec §1's Out-of-scope) — only the logging level and
// whether tracing spans are emitted around Bind/CreatePlan.
type PlannerConfig struct {
	LogLevel     string `yaml:"log_level"`
	TraceEnabled bool   `yaml:"trace_enabled"`
}

// DefaultConfig returns the configuration a Builder uses when none is
// loaded explicitly.
func DefaultConfig() *PlannerConfig {
	return &PlannerConfig{LogLevel: "info", TraceEnabled: false}
}

// Load reads and parses a PlannerConfig from a YAML file at path.
func Load(path string) (*PlannerConfig, error) {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ApplyLogLevel parses cfg.LogLevel and sets it as logrus's global
// level, matching the teacher's own startup-time log configuration.
func ApplyLogLevel(cfg *PlannerConfig) error {
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	logrus.SetLevel(level)
	return nil
}
