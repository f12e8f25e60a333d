package output

import (
	"context"

	"github.com/adiwarna/sieve/internal/model"
)

// Output defines the interface for review-queue destinations. Write is
// called once per queue item, in priority order.
type Output interface {
	Write(ctx context.Context, item model.QueueItem) error
	Close() error
}
