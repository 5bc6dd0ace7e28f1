// Package kernel provides the shared value objects of the configurator domain.
//
// The package includes:
//   - UUID: identifier of wizard drafts and the submission key that makes order
//     confirmation idempotent
//   - IdentityNumber: a national identity number (RUT) whose check character is
//     verified with the modulo-11 checksum
//
// Values are immutable once constructed and safe for concurrent use.
package kernel
