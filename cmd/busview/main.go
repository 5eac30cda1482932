package main

import (
	"fmt"
	"os"

	"busview/internal/config"
	"busview/internal/game"
)

func main() {
	path := "busview.yml"
	if p := os.Getenv("BUSVIEW_CONFIG"); p != "" {
		path = p
	}
	cfg, err := config.Load(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(2)
	}
	log := game.InitLogging(cfg.LogLevel)

	if err := game.RunDesktop(cfg, log); err != nil {
		log.Error("startup failed", "err", err)
		os.Exit(1)
	}
}
