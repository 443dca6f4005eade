package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

type StructuredJSONConfig struct {
	App struct {
		Cipher  string   `json:"cipher"`
		Timeout Duration `json:"timeout"`
		Version string   `json:"version"`
	} `json:"app,omitempty"`

	Storage struct {
		Local struct {
			Driver string `json:"driver"`
			DSN    string `json:"dsn"`
		} `json:"local,omitempty"`

		Shared struct {
			Driver string `json:"driver"`
			DSN    string `json:"dsn"`
		} `json:"shared,omitempty"`

		Extension struct {
			Path string `json:"path"`
		} `json:"extension,omitempty"`
	} `json:"storage,omitempty"`

	Sync struct {
		MirrorBlob bool `json:"mirror_blob"`
	} `json:"sync,omitempty"`

	Log struct {
		Level string `json:"level"`
		File  string `json:"file"`
	} `json:"log,omitempty"`
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
			Cipher:  jsonCfg.App.Cipher,
			Timeout: time.Duration(jsonCfg.App.Timeout),
			Version: jsonCfg.App.Version,
		},
		Storage: Storage{
			Local: KeyValue{
				Driver: jsonCfg.Storage.Local.Driver,
				DSN:    jsonCfg.Storage.Local.DSN,
			},
			Shared: KeyValue{
				Driver: jsonCfg.Storage.Shared.Driver,
				DSN:    jsonCfg.Storage.Shared.DSN,
			},
			Extension: Extension{
				Path: jsonCfg.Storage.Extension.Path,
			},
		},
		Sync: Sync{
			MirrorBlob: jsonCfg.Sync.MirrorBlob,
		},
		Log: Log{
			Level: jsonCfg.Log.Level,
			File:  jsonCfg.Log.File,
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
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
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
