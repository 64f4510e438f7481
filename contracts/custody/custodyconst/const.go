// Package custodyconst contains Custody contract constants shared with
// off-chain code.
package custodyconst

// Error messages the Custody contract aborts with. Each one is a stable
// prefix of the VM fault exception, so callers can discriminate causes by
// substring.
const (
	ErrUninitialized               = "ledger is not initialized"
	ErrAlreadyInitialized          = "ledger is already initialized"
	ErrPermissionDenied            = "permission denied"
	ErrNotWhitelisted              = "client is not whitelisted"
	ErrAlreadyWhitelisted          = "client is already whitelisted"
	ErrInsufficientBalance         = "insufficient balance"
	ErrInsufficientExternalBalance = "insufficient external balance"
	ErrInvalidAmount               = "invalid amount"
	ErrInvalidAddress              = "invalid address"
	ErrReentrantCall               = "reentrant call"
	ErrUnexpectedPayment           = "unexpected payment"
	ErrTransferFailed              = "asset transfer failed"
	ErrNothingToClaim              = "nothing to claim"
)

// Names of the notifications produced by the Custody contract.
const (
	EventWhitelisted          = "Whitelisted"
	EventRemovedFromWhitelist = "RemovedFromWhitelist"
	EventDeposited            = "Deposited"
	EventWithdrawn            = "Withdrawn"
	EventReleased             = "Released"
)

// Positions of the deployment data elements. Deployment data is an array
// where the owner comes first and the settlement asset second. Empty asset
// selects native GAS.
const (
	DeployArgOwner = iota
	DeployArgAsset

	DeployArgsNum
)
