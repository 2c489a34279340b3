// Package errors provides structured error handling shared by services.
package errors

import "google.golang.org/grpc/codes"

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"

	// Amount errors
	CodeAmountInvalid Code = "AMOUNT_INVALID"
	CodeAmountZero    Code = "AMOUNT_ZERO"
	CodeAccountEmpty  Code = "ACCOUNT_EMPTY"

	// Vault errors
	CodeVaultContractUnbound      Code = "VAULT_TOKEN_CONTRACT_UNBOUND"
	CodeVaultContractAlreadyBound Code = "VAULT_TOKEN_CONTRACT_ALREADY_BOUND"
	CodeVaultContractInvalid      Code = "VAULT_TOKEN_CONTRACT_INVALID"
	CodeVaultOwnerGrantInvalid    Code = "VAULT_OWNER_GRANT_INVALID"
	CodeVaultOwnerGrantExpired    Code = "VAULT_OWNER_GRANT_EXPIRED"
	CodeVaultOwnerMismatch        Code = "VAULT_OWNER_MISMATCH"
	CodeVaultDenomMismatch        Code = "VAULT_DENOM_MISMATCH"
	CodeVaultDepositEmpty         Code = "VAULT_DEPOSIT_EMPTY"
	CodeVaultAllowanceExceeded    Code = "VAULT_ALLOWANCE_EXCEEDED"
	CodeVaultEscrowUnderflow      Code = "VAULT_ESCROW_UNDERFLOW"
	CodeVaultHookSignatureInvalid Code = "VAULT_HOOK_SIGNATURE_INVALID"
	CodeVaultHookSenderMismatch   Code = "VAULT_HOOK_SENDER_MISMATCH"

	// Token errors
	CodeTokenMinterMismatch        Code = "TOKEN_MINTER_MISMATCH"
	CodeTokenInsufficientBalance   Code = "TOKEN_INSUFFICIENT_BALANCE"
	CodeTokenInsufficientAllowance Code = "TOKEN_INSUFFICIENT_ALLOWANCE"
	CodeTokenHookTargetUnset       Code = "TOKEN_HOOK_TARGET_UNSET"

	// Storage errors
	CodeNotFound Code = "NOT_FOUND"
)

// GRPCCode maps a domain error code to its gRPC status code.
func (c Code) GRPCCode() codes.Code {
	switch c {
	// InvalidArgument - malformed or rejected input
	case CodeAmountInvalid,
		CodeAmountZero,
		CodeAccountEmpty,
		CodeVaultContractInvalid,
		CodeVaultDenomMismatch,
		CodeVaultDepositEmpty:
		return codes.InvalidArgument

	// FailedPrecondition - state doesn't allow operation
	case CodeVaultContractUnbound,
		CodeVaultOwnerGrantExpired,
		CodeVaultAllowanceExceeded,
		CodeTokenInsufficientBalance,
		CodeTokenInsufficientAllowance,
		CodeTokenHookTargetUnset:
		return codes.FailedPrecondition

	// PermissionDenied - caller identity is not allowed
	case CodeVaultContractAlreadyBound,
		CodeVaultOwnerGrantInvalid,
		CodeVaultOwnerMismatch,
		CodeVaultHookSignatureInvalid,
		CodeVaultHookSenderMismatch,
		CodeTokenMinterMismatch:
		return codes.PermissionDenied

	// NotFound - resource doesn't exist
	case CodeNotFound:
		return codes.NotFound

	default:
		return codes.Internal
	}
}
