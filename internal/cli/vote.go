package cli

import (
	"context"
	"fmt"

	"github.com/featurepulse/featurepulse-go/internal/api"
)

func (a *App) vote(ctx context.Context, args []string) {
	fr, err := a.requestAt(args)
	if err != nil {
		fmt.Println(err)
		return
	}

	voted, err := a.store.ToggleVote(ctx, fr.ID)
	if err != nil {
		fmt.Println("Vote failed:", err)
		if api.IsRetryable(err) {
			fmt.Println("Check your connection and try again.")
		}
		return
	}

	if voted {
		fmt.Println("Voted for:", fr.Title)
	} else {
		fmt.Println("Vote removed from:", fr.Title)
	}
}
