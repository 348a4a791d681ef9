package session

import "context"

const keyCTADismissed = "cta_dismissed"

// BannerEligible reports whether the call-to-action banner should show:
// the device has reached minSessions sessions and has not dismissed it.
func (t *Tracker) BannerEligible(ctx context.Context, minSessions int64) (bool, error) {
	dismissed, ok, err := t.meta.GetBool(ctx, keyCTADismissed)
	if err != nil {
		return false, err
	}
	if ok && dismissed {
		return false, nil
	}

	count, _, err := t.meta.GetInt64(ctx, keySessionCount)
	if err != nil {
		return false, err
	}
	return count >= minSessions, nil
}

// DismissBanner records the dismissal permanently for this device.
func (t *Tracker) DismissBanner(ctx context.Context) error {
	return t.meta.SetBool(ctx, keyCTADismissed, true)
}
