package types

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Config holds backend selection and parameters for opening a store.
type Config struct {
	Backend  string `json:"backend" yaml:"backend" mapstructure:"backend" validate:"required,oneof=json sqlite"`
	DataDir  string `json:"data_dir" yaml:"data_dir" mapstructure:"data_dir"`
	LogLevel string `json:"log_level" yaml:"log_level" mapstructure:"log_level" validate:"omitempty,oneof=debug info warn error"`
}

// Supported backend names.
const (
	BackendJSON   = "json"
	BackendSQLite = "sqlite"
)

// Config validation errors.
var (
	ErrBackendEmpty    = errors.New("backend must not be empty")
	ErrBackendUnknown  = errors.New("unknown backend")
	ErrLogLevelInvalid = errors.New("log level must be one of debug, info, warn, error")
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks that the Config is well-formed. It returns a sentinel error
// from this package on failure.
func (c Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	// Report the first failing field, mapped onto this package's sentinels.
	fe := verrs[0]
	switch fe.Field() {
	case "Backend":
		if fe.Tag() == "required" {
			return ErrBackendEmpty
		}
		return fmt.Errorf("%w %q", ErrBackendUnknown, c.Backend)
	case "LogLevel":
		return fmt.Errorf("%w, got %q", ErrLogLevelInvalid, c.LogLevel)
	default:
		return fmt.Errorf("invalid config field %s: %w", fe.Field(), err)
	}
}
