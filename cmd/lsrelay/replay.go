package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/dmitrymomot/lsrelay/pkg/async"
	"github.com/dmitrymomot/lsrelay/pkg/logger"
	"github.com/dmitrymomot/lsrelay/pkg/relay"
)

var errReplayFailed = errors.New("one or more orders were not relayed")

// replayLine is printed for every replayed file, in argument order.
type replayLine struct {
	File    string `json:"file"`
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func replay(ctx context.Context, app appConfig, relayCfg relay.Config, log *slog.Logger, files []string, out io.Writer) error {
	if len(files) == 0 {
		return fmt.Errorf("%w: replay needs at least one file", errUsage)
	}

	rel, err := relay.New(relayCfg, relay.WithLogger(log))
	if err != nil {
		return err
	}

	return replayFiles(ctx, rel, log, app.ReplayConcurrency, files, out)
}

func replayFiles(ctx context.Context, rel *relay.Relay, log *slog.Logger, concurrency int, files []string, out io.Writer) error {
	futures := async.Map(ctx, concurrency, files, func(ctx context.Context, file string) (relay.Result, error) {
		payload, err := os.ReadFile(file)
		if err != nil {
			return relay.Result{}, err
		}
		return rel.CreateOrder(ctx, payload), nil
	})

	results, waitErr := async.WaitAll(futures...)

	enc := json.NewEncoder(out)
	failed := waitErr != nil
	for i, res := range results {
		line := replayLine{File: files[i], Success: res.Success, Message: res.Message}
		if _, err := futures[i].Await(); err != nil {
			log.WarnContext(ctx, "replay file unreadable", slog.String("file", files[i]), logger.Error(err))
			line.Message = err.Error()
		}
		failed = failed || !line.Success
		if err := enc.Encode(line); err != nil {
			return err
		}
	}

	if failed {
		return errors.Join(errReplayFailed, waitErr)
	}
	return nil
}
