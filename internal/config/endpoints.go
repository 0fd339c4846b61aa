package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// EndpointsFileName is looked up in the user config directory. The file is
// optional; when present its non-empty values override the stored endpoint
// preferences at startup.
const EndpointsFileName = "screencraft.yaml"

// EndpointsFile carries deployment-specific service locations
type EndpointsFile struct {
	ScriptAPI  string `yaml:"script_api"`
	EmotionAPI string `yaml:"emotion_api"`
}

// LoadEndpointsFile reads an endpoints override file from the given path
func LoadEndpointsFile(path string) (*EndpointsFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read endpoints file: %w", err)
	}

	endpoints := &EndpointsFile{}
	if err := yaml.Unmarshal(data, endpoints); err != nil {
		return nil, fmt.Errorf("failed to parse endpoints file: %w", err)
	}

	return endpoints, nil
}

// ApplyEndpointsFile loads the optional override file and writes its values
// into the settings. A missing file is not an error; a malformed file is
// logged and ignored so the app still starts with stored defaults.
func ApplyEndpointsFile(settings *Settings) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		log.Printf("Cannot resolve user config dir: %v", err)
		return
	}

	path := filepath.Join(configDir, "screencraft", EndpointsFileName)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return
	}

	endpoints, err := LoadEndpointsFile(path)
	if err != nil {
		log.Printf("Ignoring endpoints file %s: %v", path, err)
		return
	}

	if endpoints.ScriptAPI != "" {
		settings.SetScriptAPIBase(endpoints.ScriptAPI)
	}
	if endpoints.EmotionAPI != "" {
		settings.SetEmotionAPIBase(endpoints.EmotionAPI)
	}

	log.Printf("Applied endpoints override from %s", path)
}
