package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/featurepulse/featurepulse-go/internal/api"
	"github.com/featurepulse/featurepulse-go/internal/models"
)

func (a *App) refresh(ctx context.Context, isRefresh bool) {
	if err := a.store.LoadFeatureRequests(ctx, isRefresh); err != nil {
		fmt.Println("Loading feature requests failed:", err)
		if api.IsRetryable(err) {
			fmt.Println("Check your connection and try 'refresh'.")
		}
		return
	}
	if isRefresh {
		fmt.Printf("Loaded %d feature requests.\n", len(a.store.Requests()))
	}
}

func (a *App) list(ctx context.Context) {
	items := a.store.Requests()
	if len(items) == 0 {
		fmt.Println("No feature requests loaded. Try 'refresh'.")
		return
	}

	settings := a.store.Settings()
	for i, fr := range items {
		fmt.Println(renderLine(i+1, fr, a.store.HasVoted(fr.ID), settings))
	}
}

func (a *App) show(ctx context.Context, args []string) {
	fr, err := a.requestAt(args)
	if err != nil {
		fmt.Println(err)
		return
	}

	settings := a.store.Settings()
	fmt.Println(fr.Title)
	if settings.ShowStatus {
		fmt.Println("Status:", statusLabel(fr.Status, settings.StatusConfig))
	}
	fmt.Printf("Votes: %d", fr.VoteCount)
	if a.store.HasVoted(fr.ID) {
		fmt.Print(" (including yours)")
	}
	fmt.Println()
	fmt.Println()
	fmt.Println(fr.Description)
}

// requestAt resolves a 1-based list position from args.
func (a *App) requestAt(args []string) (models.FeatureRequest, error) {
	if len(args) == 0 {
		return models.FeatureRequest{}, errors.New("usage: <command> <n>, where n is a list position")
	}
	n, err := strconv.Atoi(args[0])
	if err != nil {
		return models.FeatureRequest{}, fmt.Errorf("not a list position: %q", args[0])
	}
	items := a.store.Requests()
	if n < 1 || n > len(items) {
		return models.FeatureRequest{}, fmt.Errorf("no feature request at position %d", n)
	}
	return items[n-1], nil
}

func renderLine(n int, fr models.FeatureRequest, voted bool, settings models.Settings) string {
	mark := " "
	if voted {
		mark = "*"
	}
	line := fmt.Sprintf("%3d. [%s] %-50s %4d votes", n, mark, fr.Title, fr.VoteCount)
	if settings.ShowStatus {
		line += "  " + statusLabel(fr.Status, settings.StatusConfig)
	}
	return line
}

func statusLabel(status models.Status, cfg models.StatusConfig) string {
	if ap, ok := cfg[string(status)]; ok && ap.Icon != "" {
		return "[" + ap.Icon + " " + string(status) + "]"
	}
	return "[" + string(status) + "]"
}
