// Command progress recomputes the learning progress snapshot and prints it
// to stdout as JSON.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/joho/godotenv"

	"github.com/heartmarshall/wordbook/internal/app"
	"github.com/heartmarshall/wordbook/internal/config"
)

type snapshot struct {
	TotalWords        int            `json:"totalWords"`
	MasteredWords     int            `json:"masteredWords"`
	LearningWords     int            `json:"learningWords"`
	StreakDays        int            `json:"streakDays"`
	TotalStudyMinutes int            `json:"totalStudyMinutes"`
	LastActivityAt    *time.Time     `json:"lastActivityAt"`
	Heatmap           map[string]int `json:"heatmap"`
	UpdatedAt         time.Time      `json:"updatedAt"`
}

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Fatalf("load .env: %v", err)
	}
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	c, err := app.NewContainer(ctx, cfg, logger, clockwork.NewRealClock())
	if err != nil {
		logger.Error("init", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer c.Close()

	p, err := c.Progress.Refresh(ctx)
	if err != nil {
		logger.Error("refresh progress", slog.String("error", err.Error()))
		os.Exit(1)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(snapshot(*p)); err != nil {
		logger.Error("write snapshot", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
