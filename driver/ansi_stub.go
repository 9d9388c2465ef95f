//go:build !unix

package driver

import "fmt"

func newANSIDriver(Options) (Driver, error) {
	return nil, fmt.Errorf("%w: ansi driver requires a unix tty", ErrUnknownDriver)
}
