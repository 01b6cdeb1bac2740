package main

import (
	"fmt"

	"github.com/younwookim/nukem/internal/application/replay"
	"github.com/younwookim/nukem/internal/application/session"
	"github.com/younwookim/nukem/internal/application/system"
)

// replaySummary is what a headless replay reports
type replaySummary struct {
	Frames  int
	Shots   int
	Pickups int
	Hits    int
	Kills   int
	Hurts   int
	Clears  int
	Defeats int
	BestRun int
	Score   int
	PlayerX float64
	PlayerY float64
}

func (r replaySummary) String() string {
	return fmt.Sprintf("%d frames, %d shots, %d hits (%d kills), %d pickups, %d hurts, %d clears, %d defeats, best clear %d, player at (%.1f, %.1f)",
		r.Frames, r.Shots, r.Hits, r.Kills, r.Pickups, r.Hurts, r.Clears, r.Defeats, r.BestRun, r.PlayerX, r.PlayerY)
}

// runHeadless plays data into s without a window
func runHeadless(s *session.Session, data *replay.ReplayData) replaySummary {
	r := replay.NewReplayer(*data)
	sum := tally(replay.Run(s, r))
	sum.Frames = r.CurrentFrame()
	sum.Score = s.Score()
	sum.PlayerX, sum.PlayerY = s.Player().X, s.Player().Y
	return sum
}

func tally(events []system.Event) replaySummary {
	var sum replaySummary
	for _, e := range events {
		switch ev := e.(type) {
		case system.ShotFired:
			sum.Shots++
		case system.PickupCollected:
			sum.Pickups++
		case system.EnemyHit:
			sum.Hits++
			if ev.Killed {
				sum.Kills++
			}
		case system.PlayerHurt:
			sum.Hurts++
		case system.LevelCleared:
			sum.Clears++
			if ev.Score > sum.BestRun {
				sum.BestRun = ev.Score
			}
		case system.PlayerDefeated:
			sum.Defeats++
		}
	}
	return sum
}
