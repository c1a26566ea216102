package postgres

import (
	"context"

	domainerrors "accounts/internal/domain/errors"
	"accounts/internal/errors"

	"gorm.io/gorm"
)

// isUniqueConstraintViolation reports whether err is the storage-layer
// uniqueness backstop firing. GORM translates the driver's duplicate-key
// error when TranslateError is enabled on the session.
func isUniqueConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

// isStoreUnavailable reports whether err is a caller timeout/cancellation or
// a closed connection rather than a query-level failure.
func isStoreUnavailable(err error) bool {
	return errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled)
}

// translateStoreError maps low-level store failures onto the domain error
// taxonomy. Query-specific conditions (not-found, unique violation) are
// handled at the call sites; everything else lands here.
func translateStoreError(err error, details string) error {
	if isStoreUnavailable(err) {
		return domainerrors.ErrStoreUnavailable.WrapMessage(details)
	}

	return domainerrors.NewDatabaseExecuteError(err, details)
}
