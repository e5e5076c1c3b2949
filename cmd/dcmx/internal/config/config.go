// Package config holds the global CLI flags shared by every dcmx
// subcommand, validated with go-playground/validator the way the teacher's
// fhir/validation package validates its own structs.
package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// GlobalConfig holds flags every dcmx subcommand inherits.
type GlobalConfig struct {
	Debug    bool   `name:"debug" help:"Enable debug logging." validate:"-"`
	LogLevel string `name:"log-level" default:"info" enum:"trace,debug,info,warn,error,fatal" help:"Minimum log level." validate:"oneof=trace debug info warn error fatal"`
	Pretty   bool   `name:"pretty" default:"true" negatable:"" help:"Pretty-print logs; otherwise emit JSON lines." validate:"-"`
	Format   string `name:"format" default:"table" enum:"table,json" help:"Rendering format for dump output." validate:"oneof=table json"`
}

var validate = validator.New()

// Validate checks GlobalConfig's struct tags, returning a single combined
// error describing every violated field.
func (c *GlobalConfig) Validate() error {
	if err := validate.Struct(c); err != nil {
		verrs, ok := err.(validator.ValidationErrors)
		if !ok {
			return err
		}
		msg := "invalid configuration:"
		for _, fe := range verrs {
			msg += fmt.Sprintf(" %s=%v fails %q;", fe.Field(), fe.Value(), fe.Tag())
		}
		return fmt.Errorf("%s", msg)
	}
	return nil
}
