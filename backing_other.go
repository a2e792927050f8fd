//go:build !unix

package arena

import "errors"

func osMapAnon(size int) ([]byte, func([]byte) error, error) {
	return nil, nil, errors.ErrUnsupported
}
