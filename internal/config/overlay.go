package config

import "os"

// OverlayEnv pulls the notification credentials out of the process
// environment. Either one missing leaves notification disabled.
func OverlayEnv(cfg *Config) {
	if v := os.Getenv("TELEGRAM_TOKEN"); v != "" {
		cfg.Telegram.Token = v
	}
	if v := os.Getenv("TELEGRAM_CHAT_ID"); v != "" {
		cfg.Telegram.ChatID = v
	}
}
