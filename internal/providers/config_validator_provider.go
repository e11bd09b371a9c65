package providers

import (
	"strings"

	"github.com/gookit/validate"

	"msd/internal/structures"
)

func init() {
	// unixPath rejects Windows-style separators; relative paths are fine.
	validate.AddValidator("unixPath", func(val string) bool {
		return val != "" && !strings.Contains(val, "\\")
	})
}

type CnfValidator struct {
	conf *structures.Config
}

func NewCnfValidator(conf *structures.Config) *CnfValidator {
	return &CnfValidator{conf: conf}
}

func (cv *CnfValidator) Validate() error {
	v := validate.Struct(cv.conf)
	if !v.Validate() {
		return v.Errors.OneError()
	}
	return nil
}
