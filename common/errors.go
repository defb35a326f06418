package common

import "errors"

var (
	ErrorInvalidValue    = errors.New("invalid value")
	ErrorNoSamples       = errors.New("no samples for parameter")
	ErrorUnevenSamples   = errors.New("sample arrays have unequal length")
	ErrorNoTransform     = errors.New("no transform available for parameter")
	ErrorMissingGroup    = errors.New("group not found in injection source")
	ErrorNoInjections    = errors.New("result file has no injection source")
	ErrorUnknownColorMap = errors.New("unknown color map")
)
