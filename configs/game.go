package configs

type GameConfig struct {
	// CatalogPath points at the YAML document describing every puzzle stage.
	CatalogPath string `yaml:"catalog_path"`
	// SessionDurationHours is the lifetime of a session from first contact.
	SessionDurationHours int `yaml:"session_duration_hours"`
}
