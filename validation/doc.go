// Package validation checks rxkit configuration values before they are used.
//
// Struct tag validation (backed by go-playground/validator) guards operator
// stage descriptors and observer adapters, so that a chain assembled with a
// nil function or a negative delay is rejected by Subscribe before the source
// runs. Programmatic validation collects field errors for hand-written checks
// such as the demo configuration.
//
// # Struct Tag Validation
//
//	type DelayStage struct {
//	    Duration time.Duration `validate:"gte=0"`
//	}
//	err := validation.ValidateAs(stage, errors.ErrCodeInvalidStage)
//
// # Programmatic Validation
//
//	err := validation.New().
//	    NonNegative("duration", stage.Duration).
//	    Present("scheduler", stage.Scheduler).
//	    ValidateAs(errors.ErrCodeInvalidStage)
package validation
