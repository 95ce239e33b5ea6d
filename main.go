package main

import (
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"gopkg.in/natefinch/lumberjack.v2"

	"stet.codes/styleguide/content"
	"stet.codes/styleguide/pages"
	"stet.codes/styleguide/progress"
)

const guideTitle = "Effective Dart Style"

func main() {
	cfg, err := LoadConfig()
	if err != nil {
		log.Fatal(err)
	}

	fileLogger := log.New(&lumberjack.Logger{
		Filename:   cfg.LogPath,
		MaxSize:    5,  // Megabytes before it rotates
		MaxBackups: 3,  // Keep only the 3 most recent old log files
		MaxAge:     28, // Days to keep logs
		Compress:   true,
	}, "APP: ", log.LstdFlags)

	pageCfg := pages.Config{
		Title: guideTitle,
		Theme: pages.ThemeBlue,
	}
	store := content.NewStore(content.EffectiveDart())

	// The guide works without a position store; persistence is best effort.
	var positions pages.PositionStore
	if !cfg.NoBookmark {
		db, err := progress.Open(cfg.DataPath, fileLogger)
		if err != nil {
			fileLogger.Printf("reading positions disabled: %v", err)
		} else {
			defer db.Close()
			positions = db
		}
	}

	fileLogger.Printf("starting %q (theme %s, %d sections)", pageCfg.Title, pageCfg.Theme, store.Document().Len())

	page := pages.NewGuidePage(pageCfg, store.Document(), positions)

	// Alt-screen makes this a true full-window TUI (no scrollback spam).
	p := tea.NewProgram(NewAppModel(page), tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		fileLogger.Printf("program exited with error: %v", err)
		fmt.Println("Error running program:", err)
		os.Exit(1)
	}
}
