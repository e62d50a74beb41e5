package config

import (
	"os"

	"gopkg.in/yaml.v2"
)

// YAMLProvider implements ConfigProvider for YAML configuration files
type YAMLProvider struct {
	filename string
	config   *ConfigData
}

// NewYAMLProvider creates a new YAML configuration provider
func NewYAMLProvider(filename string) *YAMLProvider {
	return &YAMLProvider{
		filename: filename,
	}
}

// LoadConfig loads the complete configuration from YAML file
func (y *YAMLProvider) LoadConfig() (*ConfigData, error) {
	cfgFile, err := os.ReadFile(y.filename)
	if err != nil {
		return nil, err
	}

	// Load into temporary struct with YAML tags
	var yamlConfig struct {
		Station     stationYAML      `yaml:"station"`
		Source      sourceYAML       `yaml:"source"`
		Displays    []displayYAML    `yaml:"displays"`
		Controllers []controllerYAML `yaml:"controllers,omitempty"`
	}

	err = yaml.Unmarshal(cfgFile, &yamlConfig)
	if err != nil {
		return nil, err
	}

	// Convert to our internal format
	config := &ConfigData{
		Station: StationData{
			Name:  yamlConfig.Station.Name,
			Lat:   yamlConfig.Station.Lat,
			Lon:   yamlConfig.Station.Lon,
			Datum: yamlConfig.Station.Datum,
			Step:  yamlConfig.Station.Step,
		},
		Source: SourceData{
			APIKey:    yamlConfig.Source.APIKey,
			BaseURL:   yamlConfig.Source.BaseURL,
			CacheFile: yamlConfig.Source.CacheFile,
		},
		Displays:    make([]DisplayData, len(yamlConfig.Displays)),
		Controllers: make([]ControllerData, len(yamlConfig.Controllers)),
	}

	for i, d := range yamlConfig.Displays {
		config.Displays[i] = DisplayData{
			Type:    d.Type,
			Path:    d.Path,
			SPIPort: d.SPIPort,
			DCPin:   d.DCPin,
			RSTPin:  d.RSTPin,
		}
	}

	for i, c := range yamlConfig.Controllers {
		config.Controllers[i] = ControllerData{
			Type:       c.Type,
			ListenAddr: c.ListenAddr,
		}
	}

	y.config = config
	return config, nil
}

// GetStation returns the station section
func (y *YAMLProvider) GetStation() (*StationData, error) {
	if err := y.ensureLoaded(); err != nil {
		return nil, err
	}
	return &y.config.Station, nil
}

// GetSource returns the data source section
func (y *YAMLProvider) GetSource() (*SourceData, error) {
	if err := y.ensureLoaded(); err != nil {
		return nil, err
	}
	return &y.config.Source, nil
}

// GetDisplays returns the configured render devices
func (y *YAMLProvider) GetDisplays() ([]DisplayData, error) {
	if err := y.ensureLoaded(); err != nil {
		return nil, err
	}
	return y.config.Displays, nil
}

// GetControllers returns the configured controller backends
func (y *YAMLProvider) GetControllers() ([]ControllerData, error) {
	if err := y.ensureLoaded(); err != nil {
		return nil, err
	}
	return y.config.Controllers, nil
}

// IsReadOnly returns true: YAML configs are never written back
func (y *YAMLProvider) IsReadOnly() bool {
	return true
}

// Close is a no-op for YAML providers
func (y *YAMLProvider) Close() error {
	return nil
}

func (y *YAMLProvider) ensureLoaded() error {
	if y.config != nil {
		return nil
	}
	_, err := y.LoadConfig()
	return err
}

// YAML-tagged intermediate structs
type stationYAML struct {
	Name  string `yaml:"name,omitempty"`
	Lat   string `yaml:"lat"`
	Lon   string `yaml:"lon"`
	Datum string `yaml:"datum"`
	Step  string `yaml:"step"`
}

type sourceYAML struct {
	APIKey    string `yaml:"api_key"`
	BaseURL   string `yaml:"base_url,omitempty"`
	CacheFile string `yaml:"cache_file"`
}

type displayYAML struct {
	Type    string `yaml:"type"`
	Path    string `yaml:"path,omitempty"`
	SPIPort string `yaml:"spi_port,omitempty"`
	DCPin   string `yaml:"dc_pin,omitempty"`
	RSTPin  string `yaml:"rst_pin,omitempty"`
}

type controllerYAML struct {
	Type       string `yaml:"type"`
	ListenAddr string `yaml:"listen_addr,omitempty"`
}
