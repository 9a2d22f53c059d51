// SPDX-License-Identifier: GPL-3.0-or-later
package domain

import "errors"

// Error kinds shared across the operation surface. Operations wrap these
// with fmt.Errorf("%w: ...") so callers can branch with errors.Is while the
// message stays descriptive.
var (
	// ErrConnection indicates the backend session is unreachable or broken.
	ErrConnection = errors.New("mail store unavailable")

	// ErrFolderNotFound is reported after the full folder resolution chain,
	// including create-on-miss, has been exhausted.
	ErrFolderNotFound = errors.New("folder not found")

	// ErrHandleNotFound means the handle was never part of the current cache
	// generation.
	ErrHandleNotFound = errors.New("email number not found")

	// ErrItemGone means a handle resolved, but the underlying item has been
	// moved or deleted since it was listed.
	ErrItemGone = errors.New("email no longer available")

	// ErrItemAccess marks a per-item failure during a folder scan; scans
	// skip such items and continue.
	ErrItemAccess = errors.New("item access failed")

	// ErrValidation marks input rejected before any backend call.
	ErrValidation = errors.New("invalid input")

	// ErrUnsupported is returned by backends that do not implement an
	// optional capability (rules, meetings, importance flags, ...).
	ErrUnsupported = errors.New("not supported by this backend")
)
