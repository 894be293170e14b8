package main

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"roster/internal/delivery"
	domainerrors "roster/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"
)

type recordingDelivery struct {
	served atomic.Bool
}

func (d *recordingDelivery) Serve(context.Context) error {
	d.served.Store(true)

	return nil
}

// store stands in for the postgres constructor: its OnStart hook is appended while
// the deliveries are being built, ahead of startServer's own hook.
type store struct{}

func newDeliveryApp(t *testing.T, startErr error, d *recordingDelivery) *fxtest.App {
	return fxtest.New(t,
		fx.Provide(
			context.Background,
			func(lc fx.Lifecycle) *store {
				lc.Append(fx.Hook{
					OnStart: func(context.Context) error { return startErr },
				})

				return &store{}
			},
			fx.Annotate(
				func(*store) delivery.Delivery { return d },
				fx.ResultTags(`group:"deliveries"`),
			),
		),
		fx.Invoke(startServer),
	)
}

func TestStartServer_StoreUnavailableNeverServes(t *testing.T) {
	d := &recordingDelivery{}
	app := newDeliveryApp(t, domainerrors.ErrStoreUnavailable, d)

	err := app.Start(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrStoreUnavailable)
	assert.False(t, d.served.Load())
}

func TestStartServer_ServesAfterStoreStarts(t *testing.T) {
	d := &recordingDelivery{}
	app := newDeliveryApp(t, nil, d)

	assert.False(t, d.served.Load(), "deliveries must not start during construction")

	app.RequireStart()
	defer app.RequireStop()

	assert.Eventually(t, d.served.Load, time.Second, 10*time.Millisecond)
}
