/*
Copyright © 2024 - 2026 Vortex Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package config

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/sste9512/Vortex/pkg/config"
	"github.com/sste9512/Vortex/pkg/constants"
	"github.com/sste9512/Vortex/pkg/prompt"
	"github.com/sste9512/Vortex/pkg/types"
)

// ReadConfigRun assembles the layer configuration for a CLI invocation:
// env-file defaults, then an optional yaml config file, then VORTEX_*
// environment variables, all decoded on top of the built-in defaults.
func ReadConfigRun(configDir string) (*types.Config, error) {
	logger := types.NewLogger()

	// optional machine-wide defaults
	_ = godotenv.Load(constants.EnvFile)

	if viper.GetBool("debug") {
		logger.SetLevel(logrus.DebugLevel)
	}
	if viper.GetBool("quiet") {
		logger.SetOutput(os.Stderr)
		logger.SetLevel(logrus.ErrorLevel)
	}
	if logfile := viper.GetString("logfile"); logfile != "" {
		f, err := os.OpenFile(logfile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err != nil {
			logger.Errorf("Could not open logfile %s: %s", logfile, err.Error())
		} else {
			logger.SetOutput(f)
		}
	}

	if configDir != "" {
		viper.AddConfigPath(configDir)
		viper.SetConfigType("yaml")
		viper.SetConfigName("fsops")
		// If a config file is found, read it in.
		_ = viper.ReadInConfig()
	}
	viper.SetEnvPrefix("VORTEX")
	viper.AutomaticEnv()

	opts := []config.GenericOptions{config.WithLogger(logger)}
	if !viper.GetBool("non-interactive") {
		opts = append(opts, config.WithPrompter(prompt.NewConsole(os.Stdin, os.Stdout, logger)))
	}
	cfg := config.NewConfig(opts...)

	// unmarshal all the vars into the config object
	err := viper.Unmarshal(cfg, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
		),
	))
	if err != nil {
		return nil, err
	}
	return cfg, nil
}
