// Package config loads the tide clock configuration from YAML files or a
// SQLite database behind a common provider interface.
package config

// ConfigProvider defines the interface for configuration data sources
type ConfigProvider interface {
	// Load complete configuration
	LoadConfig() (*ConfigData, error)

	// Get specific configuration sections
	GetStation() (*StationData, error)
	GetSource() (*SourceData, error)
	GetDisplays() ([]DisplayData, error)
	GetControllers() ([]ControllerData, error)

	IsReadOnly() bool
	Close() error
}

// ConfigData represents the complete configuration structure
type ConfigData struct {
	Station     StationData      `json:"station"`
	Source      SourceData       `json:"source"`
	Displays    []DisplayData    `json:"displays"`
	Controllers []ControllerData `json:"controllers,omitempty"`
}

// StationData identifies the tide station the clock tracks. Lat, Lon and
// Step stay strings because they pass through to the API query verbatim.
type StationData struct {
	Name  string `json:"name,omitempty"`
	Lat   string `json:"lat"`
	Lon   string `json:"lon"`
	Datum string `json:"datum"`
	Step  string `json:"step"`
}

// SourceData holds the tide data provider settings.
type SourceData struct {
	APIKey    string `json:"api_key"`
	BaseURL   string `json:"base_url,omitempty"`
	CacheFile string `json:"cache_file"`
}

// DisplayData configures one render device. Type is "ssd1305" or "image".
type DisplayData struct {
	Type string `json:"type"`

	// image writer
	Path string `json:"path,omitempty"`

	// ssd1305 over SPI
	SPIPort string `json:"spi_port,omitempty"`
	DCPin   string `json:"dc_pin,omitempty"`
	RSTPin  string `json:"rst_pin,omitempty"`
}

// ControllerData configures an optional controller backend. Type is
// currently only "status".
type ControllerData struct {
	Type       string `json:"type"`
	ListenAddr string `json:"listen_addr,omitempty"`
}
