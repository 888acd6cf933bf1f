package impl

import (
	"bizdir/internal/domain/authz"
	domainerrors "bizdir/internal/domain/errors"
	"bizdir/internal/errors"
)

// guardErr translates a denied authorization decision into the application
// error surfaced to the caller. Allowed decisions translate to nil.
func guardErr(decision authz.Decision) error {
	if decision.Allowed {
		return nil
	}

	if decision.Reason == authz.ReasonLoginRequired {
		return domainerrors.ErrLoginRequired
	}

	return domainerrors.ErrNotOwner.WithDetails(decision.Reason)
}

// storeErr classifies a failed store call. Errors that already carry an
// application error (not found, conflict, denied) pass through untouched;
// anything else is a backing-store failure and gets reported as one.
func storeErr(err error, details string) error {
	if err == nil {
		return nil
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return err
	}

	return domainerrors.NewStoreExecuteError(err, details)
}
