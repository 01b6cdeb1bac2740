package config

// LevelConfig is the root config for level files (YAML, or built from TMX)
type LevelConfig struct {
	ID       string             `yaml:"id"`
	Name     string             `yaml:"name"`
	TileSize int                `yaml:"tileSize"`
	Start    PositionConfig     `yaml:"start"`
	Rows     []string           `yaml:"rows"`
	Legend   map[string]string  `yaml:"legend,omitempty"`
	Enemies  []EnemySpawnConfig `yaml:"enemies"`
}

type PositionConfig struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// EnemySpawnConfig places one enemy and its patrol range in pixels
type EnemySpawnConfig struct {
	X     float64 `yaml:"x"`
	Y     float64 `yaml:"y"`
	Left  float64 `yaml:"left"`
	Right float64 `yaml:"right"`
}

// Tile kinds used by legends and the TMX "kind" property
const (
	KindEmpty      = "empty"
	KindSolid      = "solid"
	KindLadder     = "ladder"
	KindSpike      = "spike"
	KindCheckpoint = "checkpoint"
	KindGoal       = "goal"
	KindPickup     = "pickup"
)

// DefaultLegend maps row characters to tile kinds
var DefaultLegend = map[string]string{
	".": KindEmpty,
	" ": KindEmpty,
	"#": KindSolid,
	"H": KindLadder,
	"^": KindSpike,
	"C": KindCheckpoint,
	"G": KindGoal,
	"*": KindPickup,
}

// kindGlyph is the row character written for each kind
var kindGlyph = map[string]rune{
	KindEmpty:      '.',
	KindSolid:      '#',
	KindLadder:     'H',
	KindSpike:      '^',
	KindCheckpoint: 'C',
	KindGoal:       'G',
	KindPickup:     '*',
}

// ResolveLegend returns the level legend merged over the default one
func (c *LevelConfig) ResolveLegend() map[string]string {
	legend := make(map[string]string, len(DefaultLegend)+len(c.Legend))
	for k, v := range DefaultLegend {
		legend[k] = v
	}
	for k, v := range c.Legend {
		legend[k] = v
	}
	return legend
}
