// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] in the shape accepted by
// the JSON configuration file.
type StructuredJSONConfig struct {
	Profiles struct {
		DefaultsPath string `json:"defaults_path"`
		DefaultsURL  string `json:"defaults_url"`
		ProfilesPath string `json:"profiles_path"`
	} `json:"profiles,omitempty"`

	Server struct {
		HTTPAddress    string    `json:"http_address"`
		RequestTimeout *Duration `json:"request_timeout"`
		RateLimit      *int      `json:"rate_limit"`
	} `json:"server,omitempty"`

	Adapter struct {
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"adapter,omitempty"`

	Log struct {
		Level string `json:"level"`
	} `json:"log,omitempty"`

	Output struct {
		Format string `json:"format"`
	} `json:"output,omitempty"`

	Strict bool `json:"strict"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		Profiles: Profiles{
			DefaultsPath: jsonCfg.Profiles.DefaultsPath,
			DefaultsURL:  jsonCfg.Profiles.DefaultsURL,
			ProfilesPath: jsonCfg.Profiles.ProfilesPath,
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: (*time.Duration)(jsonCfg.Server.RequestTimeout),
			RateLimit:      jsonCfg.Server.RateLimit,
		},
		Adapter: Adapter{
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
		},
		Log: Log{
			Level: jsonCfg.Log.Level,
		},
		Output: Output{
			Format: jsonCfg.Output.Format,
		},
		Strict: jsonCfg.Strict,
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling
// from strings like "1h", "30s" as well as from integer nanoseconds.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration: %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
