package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/ayusman/mudra/internal/app"
	"github.com/ayusman/mudra/internal/config"
	"github.com/ayusman/mudra/internal/store"
)

func main() {
	configPath := flag.String("config", "", "path to TOML config file")
	flag.Parse()

	fmt.Println("Mudra - Hand Squeeze Tracker")

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	var st *store.Store
	if cfg.Recording.Enabled {
		path := cfg.Recording.Path
		if path == "" {
			path, err = defaultRecordingPath()
			if err != nil {
				log.Fatalf("Failed to resolve recording path: %v", err)
			}
		}

		st, err = store.New(path)
		if err != nil {
			log.Fatalf("Failed to open session store: %v", err)
		}
		defer st.Close()
		log.Printf("Recording sessions to %s", path)
	}

	a := app.New(cfg, st)
	if err := a.Run(); err != nil {
		log.Fatalf("Tracker failed: %v", err)
	}

	log.Println("Tracker stopped")
}

// defaultRecordingPath returns ~/.mudra/sessions.db, creating the data
// directory if needed.
func defaultRecordingPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	dataDir := filepath.Join(homeDir, ".mudra")
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return "", err
	}

	return filepath.Join(dataDir, "sessions.db"), nil
}
