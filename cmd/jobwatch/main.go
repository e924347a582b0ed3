package main

import (
	"context"
	"log"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	"jobwatch/internal/config"
	"jobwatch/internal/notify"
	"jobwatch/internal/scrape"
	"jobwatch/internal/scrape/linkedin"
	"jobwatch/internal/scrape/util"
	"jobwatch/internal/store"
)

func main() {
	// Credentials may come from a local .env; missing file is fine.
	_ = godotenv.Load()

	// Data dir: env wins (CI can pass one), else config, else local folder.
	dataDir := os.Getenv("JOBWATCH_DATA_DIR")
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		log.Fatal(err)
	}

	defaultCfgPath := filepath.Join("config", "config.yml")
	userCfgPath, err := config.EnsureUserConfig(dataDir, defaultCfgPath)
	if err != nil {
		log.Fatalf("config bootstrap failed: %v", err)
	}

	cfg, err := config.Load(userCfgPath)
	if err != nil {
		log.Fatalf("config load failed (%s): %v", userCfgPath, err)
	}
	if err := config.Validate(cfg); err != nil {
		log.Fatal(err)
	}
	if os.Getenv("JOBWATCH_DATA_DIR") == "" && cfg.App.DataDir != "" {
		dataDir = cfg.App.DataDir
	}

	st, err := store.Open(dataDir)
	if err != nil {
		log.Fatalf("state open failed: %v", err)
	}
	defer st.Close()

	limiter := util.NewHostLimiter(cfg.Scrape.RequestsPerSecond, 1)
	src := linkedin.New(linkedin.Config{
		Region:        cfg.Scrape.Region,
		WindowSeconds: cfg.Scrape.WindowSeconds,
		MaxPages:      cfg.Scrape.MaxPages,
		PageSize:      cfg.Scrape.PageSize,
	}, limiter)
	notif := notify.NewTelegram(cfg.Telegram.Token, cfg.Telegram.ChatID)

	scrape.NewRunner(cfg, src, st, notif).RunOnce(context.Background())

	// One pass, then exit. Partial company failures are logged, not fatal;
	// a completed pass is a success by policy.
}
