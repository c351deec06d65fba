package eq

import "github.com/pkg/errors"

func isErr(err, target error) bool {
	return errors.Is(err, target)
}
