package classifier

import (
	"strings"

	"github.com/feral-file/ff-artbot/internal/directory"
	"github.com/feral-file/ff-artbot/internal/domain"
)

// Verticals recognizes collection and vertical names
type Verticals interface {
	IsVerticalName(key string) bool
}

// Classify decides the intent of a command from its key and the text that follows it.
// The checks run in a fixed order because keys can collide across categories.
func Classify(snapshot *directory.Snapshot, verticals Verticals, key, remainder string) domain.Intent {
	switch {
	case key == domain.RandomKey:
		return domain.IntentRandom
	case key == domain.OpenKey:
		return domain.IntentOpen
	case verticals.IsVerticalName(key):
		return domain.IntentCollection
	case snapshot.HasTag(key):
		return domain.IntentTag
	case snapshot.HasArtist(key):
		return domain.IntentArtist
	case !snapshot.HasProject(key) && domain.IsWallet(FirstToken(remainder)):
		return domain.IntentWallet
	case snapshot.HasProject(key):
		return domain.IntentProject
	default:
		return domain.IntentUnknown
	}
}

// FirstToken returns the first whitespace-delimited token of s with a leading "#" removed
func FirstToken(s string) string {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return ""
	}
	return strings.TrimPrefix(fields[0], "#")
}
