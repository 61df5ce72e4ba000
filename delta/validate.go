package delta

import (
	"fmt"
	"math"

	"github.com/go-playground/validator/v10"
)

// paramsValidate checks the struct tags on Params.
var paramsValidate = validator.New()

// Validate reports ErrInvalidParams when a field is out of range or the grid
// area overflows int32.
func (p Params) Validate() error {
	if err := paramsValidate.Struct(p); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidParams, err)
	}
	if int64(p.Width)*int64(p.Height) > math.MaxInt32 {
		return fmt.Errorf("%w: area %dx%d overflows int32", ErrInvalidParams, p.Width, p.Height)
	}

	return nil
}
