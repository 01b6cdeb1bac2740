package main

import (
	"flag"
	"io/fs"
	"log"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/nukem/internal/application/game"
	"github.com/younwookim/nukem/internal/application/replay"
	"github.com/younwookim/nukem/internal/application/scene/playing"
	"github.com/younwookim/nukem/internal/application/session"
	"github.com/younwookim/nukem/internal/application/system"
	"github.com/younwookim/nukem/internal/infrastructure/config"
)

func main() {
	// Parse command line flags
	levelFlag := flag.String("level", "hollywood", "Level name or file under levels/ (e.g., -level hollywood.tmx)")
	configsFlag := flag.String("configs", "", "Load tuning and levels from this directory instead of the built-in ones")
	recordFlag := flag.String("record", "", "Record input to file (e.g., -record replay.json)")
	replayFlag := flag.String("replay", "", "Play back a recorded input file")
	headlessFlag := flag.Bool("headless", false, "With -replay, run without a window and print a summary")
	watchFlag := flag.Bool("watch", false, "Reload the level when its file changes (requires -configs)")
	assetsFlag := flag.String("assets", "assets", "Directory with optional sprite sheets")
	termFlag := flag.Bool("term", false, "Play in the terminal instead of a window")
	muteFlag := flag.Bool("mute", false, "With -term, disable sound cues")
	flag.Parse()

	loader, err := newLoader(*configsFlag)
	if err != nil {
		log.Fatalf("Failed to open configs: %v", err)
	}
	cfg, err := loader.LoadAll(*levelFlag)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	level, err := system.BuildLevel(cfg.Level, cfg.Tuning)
	if err != nil {
		log.Fatalf("Failed to build level: %v", err)
	}
	log.Printf("Loaded level %q (%dx%d tiles, %d enemies)", level.Name, level.Grid.Cols, level.Grid.Rows, len(level.Enemies))

	s := session.New(level, cfg.Tuning)

	if *termFlag {
		if err := runTerminal(s, *recordFlag, *muteFlag); err != nil {
			log.Fatalf("Terminal client failed: %v", err)
		}
		return
	}

	opts := playing.Options{RecordPath: *recordFlag}
	if *replayFlag != "" {
		data, err := replay.LoadReplay(*replayFlag)
		if err != nil {
			log.Fatalf("Failed to load replay: %v", err)
		}
		if data.Level != "" && data.Level != level.ID {
			log.Printf("Replay was recorded on %q, playing it on %q", data.Level, level.ID)
		}
		if *headlessFlag {
			log.Printf("Replay result: %s", runHeadless(s, data))
			return
		}
		opts.Input = playing.NewReplayInput(replay.NewReplayer(*data))
	}

	sheets, err := playing.LoadSheets(os.DirFS(*assetsFlag))
	if err != nil {
		log.Printf("Sprite sheets unavailable, drawing flat shapes: %v", err)
	}
	opts.Sheets = sheets

	display := cfg.Tuning.Display
	g := game.New(playing.New(s, opts), display.ScreenWidth, display.ScreenHeight)

	if *watchFlag {
		if *configsFlag == "" {
			log.Fatalf("-watch requires -configs")
		}
		w, err := config.NewLevelWatcher(filepath.Join(*configsFlag, "levels"))
		if err != nil {
			log.Fatalf("Failed to watch levels: %v", err)
		}
		defer func() { _ = w.Close() }()

		// Hot reloads never carry the recorder over
		reloadOpts := opts
		reloadOpts.RecordPath = ""
		go watchLevels(w, loader, cfg.Tuning, *levelFlag, func(s *session.Session) {
			g.Replace(playing.New(s, reloadOpts))
		})
		log.Printf("Watching %s for level edits", filepath.Join(*configsFlag, "levels"))
	}

	// Set up ebiten
	ebiten.SetWindowSize(display.ScreenWidth*display.Scale, display.ScreenHeight*display.Scale)
	ebiten.SetWindowTitle("Nukem Squirrel - " + level.Name)
	ebiten.SetTPS(display.Framerate)

	// Run game
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}

// newLoader reads from dir, or from the embedded configs when dir is empty
func newLoader(dir string) (*config.Loader, error) {
	if dir != "" {
		return config.NewLoader(dir), nil
	}
	fsys, err := fs.Sub(configFS, "configs")
	if err != nil {
		return nil, err
	}
	return config.NewFSLoader(fsys, "configs"), nil
}
