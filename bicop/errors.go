package bicop

import (
	"errors"

	"vinecop/internal/vineerr"
)

var (
	errUnknownFamily    = errors.New("bicop: unknown family")
	errUnknownCriterion = errors.New("bicop: unknown criterion")
	errUnknownMethod    = errors.New("bicop: unknown fit method")
	errNoTauInverse     = errors.New("bicop: family has no tau-to-parameters inverse")
)

// ErrNotFitted is the state error for a Bicop constructed directly
// rather than fit to data. The Bicop diagnostics do not return it:
// LogLik and Nobs return zero for such a Bicop, and AIC and BIC
// evaluate the data passed to them.
var ErrNotFitted = vineerr.State("Bicop", "object was never fit to data")
