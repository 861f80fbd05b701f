package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] in the JSON file layout.
type StructuredJSONConfig struct {
	API struct {
		BaseURL     string   `json:"base_url"`
		Timeout     Duration `json:"timeout"`
		ContentType string   `json:"content_type"`
	} `json:"api,omitempty"`

	Session struct {
		FilePath string `json:"file"`
	} `json:"session,omitempty"`

	DevServer struct {
		Address      string `json:"address"`
		StaticDir    string `json:"static_dir"`
		ProxyPrefix  string `json:"proxy_prefix"`
		ProxyTarget  string `json:"proxy_target"`
		PreserveHost bool   `json:"preserve_host"`
	} `json:"dev_server,omitempty"`

	Log struct {
		Level string `json:"level"`
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
		API: API{
			BaseURL:     jsonCfg.API.BaseURL,
			Timeout:     time.Duration(jsonCfg.API.Timeout),
			ContentType: jsonCfg.API.ContentType,
		},
		Session: Session{
			FilePath: jsonCfg.Session.FilePath,
		},
		DevServer: DevServer{
			Address:      jsonCfg.DevServer.Address,
			StaticDir:    jsonCfg.DevServer.StaticDir,
			ProxyPrefix:  jsonCfg.DevServer.ProxyPrefix,
			ProxyTarget:  jsonCfg.DevServer.ProxyTarget,
			PreserveHost: jsonCfg.DevServer.PreserveHost,
		},
		Log: Log{
			Level: jsonCfg.Log.Level,
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
