package config

import (
	"errors"
	"fmt"
)

// ErrInvalidTuning is returned when tuning.json holds unusable values
var ErrInvalidTuning = errors.New("invalid tuning")

// Tuning is the root config for tuning.json.
// Speeds and accelerations are in pixels per frame; timers are in frames.
type Tuning struct {
	Display    DisplayConfig    `json:"display"`
	World      WorldConfig      `json:"world"`
	Player     PlayerConfig     `json:"player"`
	Enemy      EnemyConfig      `json:"enemy"`
	Projectile ProjectileConfig `json:"projectile"`
}

type DisplayConfig struct {
	ScreenWidth  int `json:"screenWidth"`
	ScreenHeight int `json:"screenHeight"`
	Scale        int `json:"scale"`
	Framerate    int `json:"framerate"`
}

type WorldConfig struct {
	TileSize int     `json:"tileSize"`
	Gravity  float64 `json:"gravity"`
}

type PlayerConfig struct {
	Width        float64 `json:"width"`
	Height       float64 `json:"height"`
	Acceleration float64 `json:"acceleration"`
	MaxSpeed     float64 `json:"maxSpeed"`
	Friction     float64 `json:"friction"` // velocity multiplier with no horizontal input
	JumpForce    float64 `json:"jumpForce"`
	ClimbSpeed   float64 `json:"climbSpeed"`

	MaxHealth           int `json:"maxHealth"`
	InvincibilityFrames int `json:"invincibilityFrames"`
	FlickerFrames       int `json:"flickerFrames"`
	ShootCooldown       int `json:"shootCooldown"`

	Knockback KnockbackConfig `json:"knockback"`
	Animation AnimationConfig `json:"animation"`
}

type KnockbackConfig struct {
	Force   float64 `json:"force"`
	UpForce float64 `json:"upForce"`
}

// AnimationConfig sets how many frames each sprite frame is held
type AnimationConfig struct {
	RunTicks   int `json:"runTicks"`
	OtherTicks int `json:"otherTicks"`
}

type EnemyConfig struct {
	Width     float64 `json:"width"`
	Height    float64 `json:"height"`
	Speed     float64 `json:"speed"`
	HitPoints int     `json:"hitPoints"`
	AnimTicks int     `json:"animTicks"`
}

type ProjectileConfig struct {
	Speed    float64 `json:"speed"`
	Lifetime int     `json:"lifetime"`
	Width    float64 `json:"width"`
	Height   float64 `json:"height"`
}

// DefaultTuning returns the stock game feel
func DefaultTuning() *Tuning {
	return &Tuning{
		Display: DisplayConfig{
			ScreenWidth:  480,
			ScreenHeight: 270,
			Scale:        2,
			Framerate:    60,
		},
		World: WorldConfig{
			TileSize: 16,
			Gravity:  0.6,
		},
		Player: PlayerConfig{
			Width:               24,
			Height:              32,
			Acceleration:        0.6,
			MaxSpeed:            3,
			Friction:            0.7,
			JumpForce:           11,
			ClimbSpeed:          2,
			MaxHealth:           3,
			InvincibilityFrames: 60,
			FlickerFrames:       4,
			ShootCooldown:       15,
			Knockback: KnockbackConfig{
				Force:   4,
				UpForce: 4,
			},
			Animation: AnimationConfig{
				RunTicks:   4,
				OtherTicks: 6,
			},
		},
		Enemy: EnemyConfig{
			Width:     16,
			Height:    16,
			Speed:     1,
			HitPoints: 2,
			AnimTicks: 8,
		},
		Projectile: ProjectileConfig{
			Speed:    6,
			Lifetime: 60,
			Width:    4,
			Height:   2,
		},
	}
}

// Validate rejects values the simulation cannot run with
func (t *Tuning) Validate() error {
	switch {
	case t.World.TileSize <= 0:
		return fmt.Errorf("%w: tileSize must be positive", ErrInvalidTuning)
	case t.Player.Width <= 0 || t.Player.Height <= 0:
		return fmt.Errorf("%w: player size must be positive", ErrInvalidTuning)
	case t.Enemy.Width <= 0 || t.Enemy.Height <= 0:
		return fmt.Errorf("%w: enemy size must be positive", ErrInvalidTuning)
	case t.Player.MaxHealth <= 0:
		return fmt.Errorf("%w: player maxHealth must be positive", ErrInvalidTuning)
	case t.Enemy.HitPoints <= 0:
		return fmt.Errorf("%w: enemy hitPoints must be positive", ErrInvalidTuning)
	case t.Projectile.Lifetime <= 0:
		return fmt.Errorf("%w: projectile lifetime must be positive", ErrInvalidTuning)
	case t.Player.Friction < 0 || t.Player.Friction > 1:
		return fmt.Errorf("%w: friction must be within [0, 1]", ErrInvalidTuning)
	case t.Display.Framerate <= 0:
		return fmt.Errorf("%w: framerate must be positive", ErrInvalidTuning)
	}
	return nil
}
