package app

import (
	"errors"
	"net/http"
	"os"

	"gopkg.in/yaml.v2"
)

// Config holds runtime wiring options for building the app.
type Config struct {
	// ServerURL is the conversion server base URL, e.g. http://127.0.0.1:8000.
	ServerURL string `yaml:"server_url"`
	// ClientID identifies this client to the server; a fresh UUID is used
	// when empty.
	ClientID string `yaml:"client_id"`

	// HTTP is optional; defaults to http.DefaultClient.
	HTTP *http.Client `yaml:"-"`
}

// LoadConfig reads a YAML config file into cfg. A missing file leaves cfg
// untouched so flags alone are enough to run.
func LoadConfig(path string, cfg *Config) error {
	b, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}
	return yaml.Unmarshal(b, cfg)
}
