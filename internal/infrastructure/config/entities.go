package config

// EntitiesConfig is the root config for entities.json
type EntitiesConfig struct {
	Player   MarkerConfig `json:"player"`
	Obstacle MarkerConfig `json:"obstacle"`
}

// MarkerConfig describes how a placeholder entity is drawn
type MarkerConfig struct {
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Color  string `json:"color"` // RRGGBB hex
}
