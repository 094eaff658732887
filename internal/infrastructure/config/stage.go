package config

// StageConfig is the root config for stage JSON files
type StageConfig struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Number      int              `json:"number"`
	PlayerSpawn PositionConfig   `json:"playerSpawn"`
	Obstacles   []PositionConfig `json:"obstacles"`
}

type PositionConfig struct {
	X int `json:"x"`
	Y int `json:"y"`
}
