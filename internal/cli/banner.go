package cli

import (
	"context"
	"fmt"
	"strconv"
)

// defaultBannerSessions is the session threshold used when the banner
// command is given no argument.
const defaultBannerSessions = 3

func (a *App) banner(ctx context.Context, args []string) {
	minSessions := int64(defaultBannerSessions)
	if len(args) > 0 {
		n, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			fmt.Printf("Not a session count: %q\n", args[0])
			return
		}
		minSessions = n
	}

	eligible, err := a.tracker.BannerEligible(ctx, minSessions)
	if err != nil {
		fmt.Println("Checking banner eligibility failed:", err)
		return
	}
	if eligible {
		fmt.Printf("Banner would show (threshold: %d sessions).\n", minSessions)
	} else {
		fmt.Printf("Banner would not show (threshold: %d sessions).\n", minSessions)
	}
}

func (a *App) dismissBanner(ctx context.Context) {
	if err := a.tracker.DismissBanner(ctx); err != nil {
		fmt.Println("Dismissing banner failed:", err)
		return
	}
	fmt.Println("Banner dismissed for this device.")
}
