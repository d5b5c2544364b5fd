package domain

// Intent is the classified meaning of a command
type Intent int

const (
	IntentUnknown Intent = iota
	IntentRandom
	IntentOpen
	IntentCollection
	IntentTag
	IntentArtist
	IntentWallet
	IntentProject
)

// String returns the lowercase name of the intent
func (i Intent) String() string {
	switch i {
	case IntentRandom:
		return "random"
	case IntentOpen:
		return "open"
	case IntentCollection:
		return "collection"
	case IntentTag:
		return "tag"
	case IntentArtist:
		return "artist"
	case IntentWallet:
		return "wallet"
	case IntentProject:
		return "project"
	default:
		return "unknown"
	}
}
