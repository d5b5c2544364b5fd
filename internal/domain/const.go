package domain

const (
	// TokenIDMultiplier is the per-project token id namespace: tokenID = projectNumber * 1000000 + invocation
	TokenIDMultiplier = 1000000

	// ENSSuffix marks a wallet reference that must be resolved through ENS
	ENSSuffix = ".eth"

	// CollectionsCategory is the catalog category whose projects are grouped by vertical name instead
	CollectionsCategory = "collections"

	// RandomKey is the command key for a random piece from any project
	RandomKey = "#?"

	// OpenKey is the command key for a random piece from a currently minting project
	OpenKey = "open"

	// ZeroAddress is reported as the owner of burned or unminted tokens
	ZeroAddress = "0x0000000000000000000000000000000000000000"
)
