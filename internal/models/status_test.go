package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseStatus_KnownValues(t *testing.T) {
	for _, s := range AllStatuses {
		assert.Equal(t, s, ParseStatus(string(s)))
	}
}

func TestParseStatus_UnknownFallsBackToPending(t *testing.T) {
	assert.Equal(t, StatusPending, ParseStatus("on_hold"))
	assert.Equal(t, StatusPending, ParseStatus(""))
}

func TestWithVote_IncrementsAndDecrements(t *testing.T) {
	fr := FeatureRequest{ID: "a", VoteCount: 3}

	voted := fr.WithVote(true)
	assert.Equal(t, 4, voted.VoteCount)
	assert.True(t, voted.HasVoted)

	unvoted := voted.WithVote(false)
	assert.Equal(t, 3, unvoted.VoteCount)
	assert.False(t, unvoted.HasVoted)
}

func TestWithVote_CountFlooredAtZero(t *testing.T) {
	fr := FeatureRequest{ID: "a", VoteCount: 0, HasVoted: true}
	assert.Equal(t, 0, fr.WithVote(false).VoteCount)
}

func TestSettings_ApplyOverlaysOnlyPresentFields(t *testing.T) {
	s := DefaultSettings()
	show := true
	perms := Permissions{CanCreateFeatureRequest: false}

	next := s.Apply(SettingsPatch{ShowStatus: &show, Permissions: &perms})

	assert.True(t, next.ShowStatus)
	assert.False(t, next.Permissions.CanCreateFeatureRequest)
	// untouched fields keep their previous values
	assert.True(t, next.ShowTranslation)
	assert.False(t, next.ShowSdkEmailField)
}

func TestSettings_ApplyEmptyPatchIsNoop(t *testing.T) {
	s := DefaultSettings()
	assert.Equal(t, s, s.Apply(SettingsPatch{}))
}
