package config

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// SQLiteProvider implements ConfigProvider for SQLite database configuration
type SQLiteProvider struct {
	db     *sql.DB
	dbPath string
}

// NewSQLiteProvider creates a new SQLite configuration provider
func NewSQLiteProvider(dbPath string) (*SQLiteProvider, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open SQLite database: %w", err)
	}

	// Test the connection
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping SQLite database: %w", err)
	}

	return &SQLiteProvider{
		db:     db,
		dbPath: dbPath,
	}, nil
}

// LoadConfig loads the complete configuration from SQLite database
func (s *SQLiteProvider) LoadConfig() (*ConfigData, error) {
	config := &ConfigData{}

	station, err := s.GetStation()
	if err != nil {
		return nil, fmt.Errorf("failed to load station config: %w", err)
	}
	config.Station = *station

	source, err := s.GetSource()
	if err != nil {
		return nil, fmt.Errorf("failed to load source config: %w", err)
	}
	config.Source = *source

	displays, err := s.GetDisplays()
	if err != nil {
		return nil, fmt.Errorf("failed to load displays: %w", err)
	}
	config.Displays = displays

	controllers, err := s.GetControllers()
	if err != nil {
		return nil, fmt.Errorf("failed to load controllers: %w", err)
	}
	config.Controllers = controllers

	return config, nil
}

// GetStation returns the station configuration from the database
func (s *SQLiteProvider) GetStation() (*StationData, error) {
	row := s.db.QueryRow(`SELECT name, lat, lon, datum, step FROM station LIMIT 1`)

	var station StationData
	var name sql.NullString
	if err := row.Scan(&name, &station.Lat, &station.Lon, &station.Datum, &station.Step); err != nil {
		if err == sql.ErrNoRows {
			return &StationData{}, nil
		}
		return nil, fmt.Errorf("failed to query station: %w", err)
	}
	station.Name = name.String

	return &station, nil
}

// GetSource returns the data source configuration from the database
func (s *SQLiteProvider) GetSource() (*SourceData, error) {
	row := s.db.QueryRow(`SELECT api_key, base_url, cache_file FROM source LIMIT 1`)

	var source SourceData
	var baseURL sql.NullString
	if err := row.Scan(&source.APIKey, &baseURL, &source.CacheFile); err != nil {
		if err == sql.ErrNoRows {
			return &SourceData{}, nil
		}
		return nil, fmt.Errorf("failed to query source: %w", err)
	}
	source.BaseURL = baseURL.String

	return &source, nil
}

// GetDisplays returns the render device configurations from the database
func (s *SQLiteProvider) GetDisplays() ([]DisplayData, error) {
	rows, err := s.db.Query(`
		SELECT type, path, spi_port, dc_pin, rst_pin
		FROM displays
		ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query displays: %w", err)
	}
	defer rows.Close()

	var displays []DisplayData
	for rows.Next() {
		var d DisplayData
		var path, spiPort, dcPin, rstPin sql.NullString
		if err := rows.Scan(&d.Type, &path, &spiPort, &dcPin, &rstPin); err != nil {
			return nil, fmt.Errorf("failed to scan display row: %w", err)
		}
		d.Path = path.String
		d.SPIPort = spiPort.String
		d.DCPin = dcPin.String
		d.RSTPin = rstPin.String
		displays = append(displays, d)
	}

	return displays, rows.Err()
}

// GetControllers returns the controller configurations from the database
func (s *SQLiteProvider) GetControllers() ([]ControllerData, error) {
	rows, err := s.db.Query(`SELECT type, listen_addr FROM controllers ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query controllers: %w", err)
	}
	defer rows.Close()

	var controllers []ControllerData
	for rows.Next() {
		var c ControllerData
		var listenAddr sql.NullString
		if err := rows.Scan(&c.Type, &listenAddr); err != nil {
			return nil, fmt.Errorf("failed to scan controller row: %w", err)
		}
		c.ListenAddr = listenAddr.String
		controllers = append(controllers, c)
	}

	return controllers, rows.Err()
}

// IsReadOnly returns false: the SQLite backend supports reconfiguration
func (s *SQLiteProvider) IsReadOnly() bool {
	return false
}

// Close closes the underlying database handle
func (s *SQLiteProvider) Close() error {
	return s.db.Close()
}
