package system

import (
	"github.com/younwookim/nukem/internal/domain/entity"
	"github.com/younwookim/nukem/internal/infrastructure/config"
)

// ProjectilePool owns the live projectiles. Removal keeps spawn order.
type ProjectilePool struct {
	config *config.ProjectileConfig
	live   []entity.Projectile
}

// NewProjectilePool creates an empty pool
func NewProjectilePool(cfg *config.ProjectileConfig) *ProjectilePool {
	return &ProjectilePool{
		config: cfg,
		live:   make([]entity.Projectile, 0, 16),
	}
}

// Spawn adds a projectile at (x, y) heading in dir (±1)
func (p *ProjectilePool) Spawn(x, y float64, dir int) {
	p.live = append(p.live, *entity.NewProjectile(x, y, dir,
		p.config.Speed, p.config.Lifetime, p.config.Width, p.config.Height))
}

// Len returns the number of live projectiles
func (p *ProjectilePool) Len() int {
	return len(p.live)
}

// Each calls fn for every live projectile
func (p *ProjectilePool) Each(fn func(*entity.Projectile)) {
	for i := range p.live {
		fn(&p.live[i])
	}
}

// Clear drops every projectile
func (p *ProjectilePool) Clear() {
	p.live = p.live[:0]
}

// Update advances projectiles, expires them, and resolves enemy hits.
// Each surviving projectile damages at most the first overlapping enemy
// in set order.
func (p *ProjectilePool) Update(grid *entity.Grid, enemies []*entity.Enemy, index *EnemyIndex) []Event {
	var events []Event
	levelW := grid.PixelWidth()

	n := 0
	for i := range p.live {
		pr := &p.live[i]
		pr.X += pr.VX
		pr.Life--

		if pr.Life <= 0 || grid.IsSolid(pr.LeadingX(), pr.Y) || pr.X < 0 || pr.X > levelW {
			pr.Deactivate()
			continue
		}

		if target := index.FirstOverlap(pr.Rect(), enemies); target != nil {
			killed := target.Hit()
			events = append(events, EnemyHit{ID: target.ID, HitPoints: target.HitPoints, Killed: killed})
			pr.Deactivate()
			continue
		}

		p.live[n] = *pr
		n++
	}
	p.live = p.live[:n]

	return events
}
