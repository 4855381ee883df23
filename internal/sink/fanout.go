// Package sink combines the spreadsheet with optional mirrors of each submission.
package sink

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/gratefultolord/study_request_bot/internal/bot"
	"github.com/gratefultolord/study_request_bot/internal/models"
)

// Named labels a sink in logs.
type Named struct {
	Name string
	Sink bot.Sink
}

// Fanout writes to the primary sink and then, only if that succeeded, to every
// mirror. Mirror failures are logged and never returned.
type Fanout struct {
	primary Named
	mirrors []Named
}

func NewFanout(primary Named, mirrors ...Named) *Fanout {
	return &Fanout{
		primary: primary,
		mirrors: mirrors,
	}
}

func (f *Fanout) Append(ctx context.Context, sub models.Submission) error {
	if err := f.primary.Sink.Append(ctx, sub); err != nil {
		return fmt.Errorf("Fanout.Append: %s: %w", f.primary.Name, err)
	}

	for _, m := range f.mirrors {
		if err := m.Sink.Append(ctx, sub); err != nil {
			logrus.WithError(err).WithFields(logrus.Fields{
				"sink":    m.Name,
				"user_id": sub.UserID,
			}).Warn("mirror sink failed")
		}
	}

	return nil
}
