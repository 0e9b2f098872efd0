package health

import (
	"context"
	"errors"
)

// Check runs every dependency check against ctx and returns all failures
// joined into a single error. It returns nil when every check passes or no
// checks are given. Each failure remains matchable with errors.Is through
// the joined error.
func Check(ctx context.Context, checks ...func(context.Context) error) error {
	var errs []error
	for _, check := range checks {
		if err := check(ctx); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
