package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/featurepulse/featurepulse-go/internal/api"
	"github.com/featurepulse/featurepulse-go/internal/store"
)

func (a *App) submit(ctx context.Context) {
	if !a.store.Settings().Permissions.CanCreateFeatureRequest {
		fmt.Println("Creating feature requests is disabled for this project.")
		return
	}

	title, err := GetSimpleText(a.reader, fmt.Sprintf("Feature title (%d-%d characters)", store.TitleMinLen, store.TitleMaxLen), os.Stdout)
	if err != nil {
		return
	}
	description, err := GetMultiline(a.reader, fmt.Sprintf("Describe the feature (%d-%d characters)", store.DescriptionMinLen, store.DescriptionMaxLen), os.Stdout)
	if err != nil {
		return
	}

	email := ""
	if a.store.Settings().ShowSdkEmailField {
		email, err = GetSimpleText(a.reader, "Contact email (optional, leave empty to skip)", os.Stdout)
		if err != nil {
			return
		}
	}

	if err := a.store.SubmitFeatureRequest(ctx, title, description, email); err != nil {
		switch {
		case isValidationError(err):
			fmt.Println(err)
		case errors.Is(err, api.ErrPermissionDenied):
			fmt.Println("Creating feature requests is disabled for this project.")
		default:
			fmt.Println("Submission failed:", err)
			if api.IsRetryable(err) {
				fmt.Println("Check your connection and try again.")
			}
		}
		return
	}

	fmt.Println("Thanks! Your feature request was submitted.")
	a.refresh(ctx, true)
}

func isValidationError(err error) bool {
	return errors.Is(err, store.ErrTitleTooShort) ||
		errors.Is(err, store.ErrTitleTooLong) ||
		errors.Is(err, store.ErrDescriptionTooShort) ||
		errors.Is(err, store.ErrDescriptionTooLong)
}
