// Package services contains server-side business logic sitting between the
// HTTP handlers and the repositories: ordering of listings, transactional
// writes and admin authentication.
package services

import (
	"errors"
	"fmt"

	"github.com/dmitrijs2005/artfolio/internal/common"
)

// wrap keeps sentinel errors matchable with errors.Is while adding context.
func wrap(op string, err error) error {
	if errors.Is(err, common.ErrorNotFound) {
		return err
	}
	return fmt.Errorf("%s: %w", op, err)
}
