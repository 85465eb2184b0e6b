// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] in its on-disk JSON form.
type StructuredJSONConfig struct {
	App struct {
		PageSize int    `json:"page_size"`
		Version  string `json:"version"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress       string   `json:"http_address"`
		RequestTimeout    Duration `json:"request_timeout"`
		PublicURL         string   `json:"public_url"`
		ClientCallbackURL string   `json:"client_callback_url"`
		DryRun            bool     `json:"dry_run"`
	} `json:"server,omitempty"`

	Pocket struct {
		ConsumerKey    string   `json:"consumer_key"`
		BaseURL        string   `json:"base_url"`
		RequestTimeout Duration `json:"request_timeout"`
		RateLimit      Duration `json:"rate_limit"`
	} `json:"pocket,omitempty"`

	Adapter struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"adapter,omitempty"`

	Auth struct {
		CallbackAddress string `json:"callback_address"`
	} `json:"auth,omitempty"`

	Workers struct {
		RetryInterval Duration `json:"retry_interval"`
	} `json:"workers,omitempty"`
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
		App: App{
			PageSize: jsonCfg.App.PageSize,
			Version:  jsonCfg.App.Version,
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
		},
		Server: Server{
			HTTPAddress:       jsonCfg.Server.HTTPAddress,
			RequestTimeout:    time.Duration(jsonCfg.Server.RequestTimeout),
			PublicURL:         jsonCfg.Server.PublicURL,
			ClientCallbackURL: jsonCfg.Server.ClientCallbackURL,
			DryRun:            jsonCfg.Server.DryRun,
		},
		Pocket: Pocket{
			ConsumerKey:    jsonCfg.Pocket.ConsumerKey,
			BaseURL:        jsonCfg.Pocket.BaseURL,
			RequestTimeout: time.Duration(jsonCfg.Pocket.RequestTimeout),
			RateLimit:      time.Duration(jsonCfg.Pocket.RateLimit),
		},
		Adapter: Adapter{
			HTTPAddress:    jsonCfg.Adapter.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
		},
		Auth: Auth{
			CallbackAddress: jsonCfg.Auth.CallbackAddress,
		},
		Workers: Workers{
			RetryInterval: time.Duration(jsonCfg.Workers.RetryInterval),
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
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
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
