package config

import (
	"fmt"
	"path"
	"strings"

	"github.com/lafriks/go-tiled"
)

// TMX layout names read by LoadTMXLevel
const (
	TMXTileLayer   = "tiles"
	TMXSpawnGroup  = "spawns"
	TMXPlayerSpawn = "player"
	TMXEnemySpawn  = "enemy"
)

// LoadTMXLevel parses a Tiled map into a LevelConfig.
// Each non-empty cell of the "tiles" layer takes its kind from the tileset
// tile property "kind" (solid when unset). Objects in the "spawns" group
// named "player" and "enemy" place the start and the patrollers; enemies
// carry their patrol range in the leftBound/rightBound int properties.
func (l *Loader) LoadTMXLevel(p string) (*LevelConfig, error) {
	levelMap, err := tiled.LoadFile(p, tiled.WithFileSystem(l.fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", p, err)
	}

	var layer *tiled.Layer
	for _, candidate := range levelMap.Layers {
		if candidate.Name == TMXTileLayer {
			layer = candidate
			break
		}
	}
	if layer == nil {
		return nil, fmt.Errorf("load TMX %s: missing %q layer", p, TMXTileLayer)
	}

	rows := make([]string, levelMap.Height)
	for y := 0; y < levelMap.Height; y++ {
		var sb strings.Builder
		for x := 0; x < levelMap.Width; x++ {
			tile := layer.Tiles[y*levelMap.Width+x]
			if tile.IsNil() {
				sb.WriteRune(kindGlyph[KindEmpty])
				continue
			}

			kind := KindSolid
			if tilesetTile, err := tile.Tileset.GetTilesetTile(tile.ID); err == nil {
				if k := tilesetTile.Properties.GetString("kind"); k != "" {
					kind = k
				}
			}
			glyph, ok := kindGlyph[kind]
			if !ok {
				return nil, fmt.Errorf("load TMX %s: unknown tile kind %q at (%d,%d)", p, kind, x, y)
			}
			sb.WriteRune(glyph)
		}
		rows[y] = sb.String()
	}

	cfg := &LevelConfig{
		ID:       trimExt(path.Base(p)),
		TileSize: levelMap.TileWidth,
		Rows:     rows,
	}
	if levelMap.Properties != nil {
		cfg.Name = levelMap.Properties.GetString("name")
	}

	for _, og := range levelMap.ObjectGroups {
		if og.Name != TMXSpawnGroup {
			continue
		}
		for _, o := range og.Objects {
			switch o.Name {
			case TMXPlayerSpawn:
				cfg.Start = PositionConfig{X: o.X, Y: o.Y}
			case TMXEnemySpawn:
				cfg.Enemies = append(cfg.Enemies, EnemySpawnConfig{
					X:     o.X,
					Y:     o.Y,
					Left:  float64(o.Properties.GetInt("leftBound")),
					Right: float64(o.Properties.GetInt("rightBound")),
				})
			}
		}
	}

	if cfg.Name == "" {
		cfg.Name = cfg.ID
	}

	return cfg, nil
}
