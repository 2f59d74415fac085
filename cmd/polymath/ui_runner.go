package main

import (
	"context"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"polymath/internal/driver"
	"polymath/internal/ui"
)

type batchOutcome struct {
	results []driver.FileResult
	err     error
}

func runBatchWithUI(ctx context.Context, title string, files []string, opts driver.BatchOptions) ([]driver.FileResult, error) {
	events := make(chan driver.Event, 256)
	outcomeCh := make(chan batchOutcome, 1)

	go func() {
		opts.Progress = driver.ChannelSink{Ch: events}
		res, err := driver.ConvertFiles(ctx, files, opts)
		outcomeCh <- batchOutcome{results: res, err: err}
		close(events)
	}()

	model := ui.NewProgressModel(title, files, events)
	program := tea.NewProgram(model, tea.WithOutput(os.Stderr))
	_, uiErr := program.Run()
	outcome := <-outcomeCh
	if uiErr != nil {
		return outcome.results, uiErr
	}
	return outcome.results, outcome.err
}
