//go:build !linux && !darwin

package mount

import (
	"errors"

	apperrors "phosync/internal/errors"
)

func Check(dest string) error {
	return apperrors.Wrap(apperrors.Internal, "mount check", dest,
		errors.New("mount detection is not supported on this platform"))
}
