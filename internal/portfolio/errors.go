package portfolio

import (
	"errors"
	"fmt"
)

// ErrInvalid is wrapped by every validation error of the progress rules.
var ErrInvalid = errors.New("invalid input")

var (
	ErrInvalidStatus             = fmt.Errorf("%w: unknown status", ErrInvalid)
	ErrNegativeUnits             = fmt.Errorf("%w: unit counts cannot be negative", ErrInvalid)
	ErrCompletedUnitsExceedTotal = fmt.Errorf("%w: completed units cannot exceed total units", ErrInvalid)
	ErrCompletedRequiresFull     = fmt.Errorf("%w: a completed item must have progress 100", ErrInvalid)
	ErrFullRequiresCompleted     = fmt.Errorf("%w: progress 100 requires status completed", ErrInvalid)
	ErrTooManyImages             = fmt.Errorf("%w: too many images", ErrInvalid)
	ErrInvalidUnitType           = fmt.Errorf("%w: unknown unit type", ErrInvalid)
	ErrInvalidSubType            = fmt.Errorf("%w: unknown infrastructure sub type", ErrInvalid)
	ErrSubTypeRequiresInfra      = fmt.Errorf("%w: sub type is only allowed for infrastructure units", ErrInvalid)
	ErrBedroomsOnInfra           = fmt.Errorf("%w: infrastructure units have no bedrooms", ErrInvalid)
	ErrInvalidActivity           = fmt.Errorf("%w: unknown activity status", ErrInvalid)
	ErrMissingProjectReference   = fmt.Errorf("%w: unit must belong to a project", ErrInvalid)
)
