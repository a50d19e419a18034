package console

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rusted-os/ramfat/checkpoint"
	"github.com/rusted-os/ramfat/hw"
)

// Run boots the controller and processes scancodes from kbd until a reboot
// is requested, a fault happens or ctx is done.
//
// A panic while handling a scancode is a fatal fault: the fault banner is
// drawn and ErrHalted returned.
func (c *Controller) Run(ctx context.Context, kbd hw.Keyboard) (err error) {
	defer func() {
		if r := recover(); r != nil {
			c.log.Error("fatal fault", slog.Any("panic", r))
			Fault(c.display)
			err = checkpoint.Wrap(ErrHalted, fmt.Errorf("%v", r))
		}
	}()

	c.Boot()

	for {
		sc, ok := kbd.PollScancode()
		if !ok {
			if err := kbd.Wait(ctx); err != nil {
				return err
			}
			continue
		}

		if c.Step(sc) == ActionReboot {
			c.log.Info("reboot requested")
			return checkpoint.From(ErrReboot)
		}
	}
}

// Fault draws the fatal fault banner.
func Fault(d hw.Display) {
	hw.Print(d, 0, 0, 0x4F, "ER25")
	hw.Flush(d)
}
