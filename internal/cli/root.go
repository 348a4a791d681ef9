package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
)

func (a *App) getStatus() string {
	s := a.user.CustomID
	if s == "" {
		s = shortID(a.user.DeviceID)
	}
	if s != "" {
		s = fmt.Sprintf("(%s)", s)
	}
	return s
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func (a *App) Root(ctx context.Context) {

	fmt.Println("Welcome to FeaturePulse CLI (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)

	a.refresh(ctx, false)

	for {
		fmt.Printf("fp %s> ", a.getStatus())
		if !scanner.Scan() {
			break
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			fmt.Println("Available commands: (l)ist, show <n>, vote <n>, submit, refresh, user, payment, whoami, banner, dismiss, exit")

		case "l", "list":
			a.list(ctx)
		case "show":
			a.show(ctx, args)
		case "vote":
			a.vote(ctx, args)
		case "submit":
			a.submit(ctx)
		case "refresh", "sync":
			a.refresh(ctx, true)
		case "user":
			a.setUser(ctx, args)
		case "payment":
			a.setPayment(ctx, args)
		case "whoami":
			a.whoami(ctx)
		case "banner":
			a.banner(ctx, args)
		case "dismiss":
			a.dismissBanner(ctx)
		case "exit", "quit":
			fmt.Println("Bye!")
			return
		default:
			fmt.Println("Unknown command:", cmd)
		}
	}

}
