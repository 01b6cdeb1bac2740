package system

import (
	"github.com/solarlune/resolv"
	"github.com/younwookim/nukem/internal/domain/entity"
)

const (
	tagEnemy = "enemy"
	tagProbe = "probe"
)

// EnemyIndex is a spatial hash over live enemies.
// It narrows overlap checks to nearby enemies; the exact box test and the
// set order tie-break stay with the caller's enemy slice.
type EnemyIndex struct {
	space   *resolv.Space
	objects map[*entity.Enemy]*resolv.Object
	probe   *resolv.Object
}

// NewEnemyIndex creates an index covering a level of the given pixel size
func NewEnemyIndex(width, height float64, cellSize int) *EnemyIndex {
	space := resolv.NewSpace(int(width), int(height), cellSize, cellSize)
	probe := resolv.NewObject(0, 0, 1, 1, tagProbe)
	space.Add(probe)

	return &EnemyIndex{
		space:   space,
		objects: make(map[*entity.Enemy]*resolv.Object),
		probe:   probe,
	}
}

// Rebuild replaces the indexed set with enemies
func (ix *EnemyIndex) Rebuild(enemies []*entity.Enemy) {
	for e, obj := range ix.objects {
		ix.space.Remove(obj)
		delete(ix.objects, e)
	}
	for _, e := range enemies {
		obj := resolv.NewObject(e.X, e.Y, e.W, e.H, tagEnemy)
		obj.Data = e
		ix.space.Add(obj)
		ix.objects[e] = obj
	}
}

// Sync moves index objects to their enemies and drops the dead ones
func (ix *EnemyIndex) Sync() {
	for e, obj := range ix.objects {
		if !e.IsAlive() {
			ix.space.Remove(obj)
			delete(ix.objects, e)
			continue
		}
		obj.X, obj.Y = e.X, e.Y
		obj.Update()
	}
}

// Len returns the number of indexed enemies
func (ix *EnemyIndex) Len() int {
	return len(ix.objects)
}

// candidates returns the enemies sharing a cell with r
func (ix *EnemyIndex) candidates(r entity.Rect) map[*entity.Enemy]bool {
	// One pixel of slack so sub-pixel overlaps across a cell border still match
	ix.probe.X, ix.probe.Y = r.X-1, r.Y-1
	ix.probe.W, ix.probe.H = r.W+2, r.H+2
	ix.probe.Update()

	check := ix.probe.Check(0, 0, tagEnemy)
	if check == nil {
		return nil
	}
	found := make(map[*entity.Enemy]bool, len(check.Objects))
	for _, obj := range check.Objects {
		if e, ok := obj.Data.(*entity.Enemy); ok {
			found[e] = true
		}
	}
	return found
}

// FirstOverlap returns the first live enemy in set order whose box overlaps r
func (ix *EnemyIndex) FirstOverlap(r entity.Rect, enemies []*entity.Enemy) *entity.Enemy {
	near := ix.candidates(r)
	if len(near) == 0 {
		return nil
	}
	for _, e := range enemies {
		if near[e] && e.IsAlive() && e.Rect().Overlaps(r) {
			return e
		}
	}
	return nil
}

// Overlaps returns every live enemy overlapping r, in set order
func (ix *EnemyIndex) Overlaps(r entity.Rect, enemies []*entity.Enemy) []*entity.Enemy {
	near := ix.candidates(r)
	if len(near) == 0 {
		return nil
	}
	var hits []*entity.Enemy
	for _, e := range enemies {
		if near[e] && e.IsAlive() && e.Rect().Overlaps(r) {
			hits = append(hits, e)
		}
	}
	return hits
}
