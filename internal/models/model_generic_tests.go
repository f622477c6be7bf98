// This package contains tests intended to be used by the implementations of the
// Completer and Runner interfaces
package models

import (
	"context"
	"testing"
	"time"

	"github.com/baalimago/go_away_boilerplate/pkg/testboil"
	pub_models "github.com/baalimago/tooloop/pkg/text/models"
)

// These tests are used in other places of code, an attempt at generic testing
// to ensure implementation standards are kept
func Runner_Context_Test(t *testing.T, r Runner) {
	testboil.ReturnsOnContextCancel(t, func(ctx context.Context) {
		r.Run(ctx)
	}, time.Second)
}

func Completer_Context_Test(t *testing.T, c Completer) {
	testboil.ReturnsOnContextCancel(t, func(ctx context.Context) {
		c.Complete(ctx, "", pub_models.Chat{})
	}, time.Second)
}
