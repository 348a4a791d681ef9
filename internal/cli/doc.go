// Package cli implements the interactive FeaturePulse command-line client.
// It wires the local storage, the API client, the feature-request store and
// the session tracker together and drives them from a small REPL.
package cli
