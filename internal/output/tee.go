package output

import (
	"errors"

	"github.com/vovakirdan/led-arcade/internal/core"
)

// Tee returns a driver that writes every frame to all of drivers.
// A failing driver does not stop the others; their errors are joined.
func Tee(drivers ...Driver) Driver {
	return DriverFunc(func(pixels []core.RGB) error {
		var errs []error
		for _, d := range drivers {
			if err := d.Write(pixels); err != nil {
				errs = append(errs, err)
			}
		}
		return errors.Join(errs...)
	})
}
