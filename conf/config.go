/*
 * Copyright 2019 The CovenantSQL Authors.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package conf

import (
	"io/ioutil"

	"github.com/pkg/errors"
	yaml "gopkg.in/yaml.v2"

	"github.com/CovenantSQL/curvebind/crypto/hash"
	"github.com/CovenantSQL/curvebind/engine"
	"github.com/CovenantSQL/curvebind/utils/log"
)

// DefaultMetricsNamespace prefixes the binding metric names when none is configured.
const DefaultMetricsNamespace = "curvebind"

// Config holds the binding settings.
type Config struct {
	// Engine selects the curve engine: btcec, dcrd or geth.
	Engine string `yaml:"Engine"`
	// Digest selects the message hash suite: sha256, sha256d, thash or keccak256.
	Digest string `yaml:"Digest"`
	// LogLevel is a logrus level name, empty keeps the current level.
	LogLevel         string `yaml:"LogLevel"`
	MetricsNamespace string `yaml:"MetricsNamespace"`
}

// DefaultConfig returns the settings of the package-level binding.
func DefaultConfig() *Config {
	return &Config{
		Engine:           engine.BTCEC,
		Digest:           hash.SHA256,
		MetricsNamespace: DefaultMetricsNamespace,
	}
}

// LoadConfig loads config from configPath. Absent keys keep their default values.
func LoadConfig(configPath string) (config *Config, err error) {
	configBytes, err := ioutil.ReadFile(configPath)
	if err != nil {
		log.WithError(err).WithField("path", configPath).Error("read config file failed")
		return nil, errors.Wrap(err, "read config file failed")
	}
	config = DefaultConfig()
	err = yaml.Unmarshal(configBytes, config)
	if err != nil {
		log.WithError(err).WithField("path", configPath).Error("unmarshal config file failed")
		return nil, errors.Wrap(err, "unmarshal config file failed")
	}
	if err = config.Validate(); err != nil {
		log.WithError(err).WithField("path", configPath).Error("invalid config")
		return nil, err
	}
	return
}

// Validate checks the engine, digest and log level names.
func (c *Config) Validate() (err error) {
	if _, err = hash.SuiteByName(c.Digest); err != nil {
		return errors.Wrap(err, "invalid Digest")
	}
	if _, err = engine.New(c.Engine, hash.DefaultSuite()); err != nil {
		return errors.Wrap(err, "invalid Engine")
	}
	if c.LogLevel != "" {
		if _, err = log.ParseLevel(c.LogLevel); err != nil {
			return errors.Wrap(err, "invalid LogLevel")
		}
	}
	return nil
}
