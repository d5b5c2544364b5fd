package domain

import "errors"

var (
	// ErrInvalidFormat is returned when a command is too short to carry a piece number
	ErrInvalidFormat = errors.New("invalid command format")

	// ErrInvalidNumber is returned when the piece number cannot be parsed
	ErrInvalidNumber = errors.New("invalid piece number")

	// ErrNoFloorListing is returned when no token of a project is listed for sale
	ErrNoFloorListing = errors.New("no floor listing")

	// ErrENSUnresolved is returned when an ENS name does not resolve to an address
	ErrENSUnresolved = errors.New("ens name not resolved")

	// ErrEmptyWallet is returned when a wallet owns no catalog tokens
	ErrEmptyWallet = errors.New("wallet has no tokens")

	// ErrNoMatchingTokens is returned when no wallet token matches the requested scope
	ErrNoMatchingTokens = errors.New("no matching tokens")

	// ErrProjectNotFound is returned when a project key is not in the current directory snapshot
	ErrProjectNotFound = errors.New("project not found")

	// ErrUnknownCommand is returned when a command cannot be classified
	ErrUnknownCommand = errors.New("unknown command")

	// ErrRateLimited is returned when the metadata API answers 429 or no
	// client-side rate limit token frees up in time
	ErrRateLimited = errors.New("rate limited")

	// ErrAliasCycle is returned when alias resolution loops back onto itself
	ErrAliasCycle = errors.New("alias cycle")

	// ErrDirectoryNotReady is returned when no directory snapshot has been published yet
	ErrDirectoryNotReady = errors.New("directory not ready")
)
