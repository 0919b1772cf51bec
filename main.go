package main

import (
	"bufio"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/sadopc/toolbox/internal/command"
	"github.com/sadopc/toolbox/internal/config"
	"github.com/sadopc/toolbox/internal/store"
)

// request is one line on stdin from the application shell.
type request struct {
	Cmd     string          `json:"cmd"`
	Payload json.RawMessage `json:"payload"`
}

func main() {
	var configPath string
	flag.StringVar(&configPath, "config", "", "optional configuration file")
	flag.Parse()

	cfg := config.MustLoad(configPath)
	log := mustMakeLogger(cfg.LogLevel)

	if err := run(cfg, log); err != nil {
		log.Error("backend failed", "error", err)
		os.Exit(1)
	}
}

func run(cfg config.Config, log *slog.Logger) error {
	dbPath := cfg.DBPath
	if dbPath == "" {
		p, err := store.DefaultDBPath()
		if err != nil {
			return fmt.Errorf("resolve db path: %w", err)
		}
		dbPath = p
	}

	s, err := store.New(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer s.Close()

	log.Info("store ready", "path", dbPath)

	d := command.NewDispatcher(log, s)
	return serve(context.Background(), d, os.Stdin, os.Stdout)
}

// serve reads one JSON request per line and writes one JSON response per
// line. Requests execute strictly in admission order.
func serve(ctx context.Context, d *command.Dispatcher, in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	enc := json.NewEncoder(out)

	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var req request
		if err := json.Unmarshal(line, &req); err != nil {
			if err := enc.Encode(command.Response{Error: fmt.Sprintf("bad request: %v", err)}); err != nil {
				return err
			}
			continue
		}

		resp := d.Invoke(ctx, req.Cmd, req.Payload)
		if err := enc.Encode(resp); err != nil {
			return err
		}
	}
	return scanner.Err()
}

func mustMakeLogger(levelStr string) *slog.Logger {
	var level slog.Level
	switch levelStr {
	case "DEBUG":
		level = slog.LevelDebug
	case "INFO":
		level = slog.LevelInfo
	case "ERROR":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	return slog.New(handler)
}
