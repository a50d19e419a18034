package console

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/rusted-os/ramfat"
	"github.com/rusted-os/ramfat/hw"
)

func testingController(t *testing.T, store FileStore, opts ...Option) (*Controller, *hw.Framebuffer) {
	t.Helper()
	fb := hw.NewFramebuffer()
	c := New(store, fb, opts...)
	c.Boot()
	return c, fb
}

// press sends the make and the break code of every key.
func press(c *Controller, keys ...hw.Scancode) {
	for _, sc := range keys {
		c.Step(sc)
		c.Step(sc.Break())
	}
}

func typeKeys(t *testing.T, c *Controller, text string) {
	t.Helper()
	for i := 0; i < len(text); i++ {
		sc, ok := hw.ScancodeOf(text[i])
		if !ok {
			t.Fatalf("no key for %q", text[i])
		}
		press(c, sc)
	}
}

func TestController_Boot(t *testing.T) {
	c, fb := testingController(t, ramfat.New())

	if c.State().Mode != ModeMain {
		t.Errorf("Mode = %v, want main", c.State().Mode)
	}
	if got := fb.Text(0); !strings.HasPrefix(got, "Rusted") {
		t.Errorf("row 0 = %q", got)
	}
	if got := fb.Text(1); !strings.HasPrefix(got, "Click Key 1 - Mode1") {
		t.Errorf("row 1 = %q", got)
	}
}

func TestController_breakCodesNeverAct(t *testing.T) {
	modes := []Mode{ModeMain, ModeMath, ModeUnicode, ModeCommander, ModeCapture, ModeEditor}
	for _, mode := range modes {
		t.Run(mode.String(), func(t *testing.T) {
			mockCtrl := gomock.NewController(t)
			defer mockCtrl.Finish()

			// Neither mock expects a call.
			display := hw.NewMockDisplay(mockCtrl)
			store := NewMockFileStore(mockCtrl)

			c := New(store, display)
			c.state.Mode = mode
			for sc := hw.Scancode(0x80); ; sc++ {
				c.state.LastScancode = 0x42
				if got := c.Step(sc); got != ActionNone {
					t.Errorf("Step(%#x) = %v", sc, got)
				}
				if c.state.LastScancode != 0 {
					t.Errorf("Step(%#x) did not reset the latch", sc)
				}
				if c.state.Mode != mode {
					t.Errorf("Step(%#x) changed the mode to %v", sc, c.state.Mode)
				}
				if sc == 0xFF {
					break
				}
			}
		})
	}
}

func TestController_edgeDetection(t *testing.T) {
	c, _ := testingController(t, ramfat.New(), WithSeed(7))
	press(c, hw.KeyM)

	c.Step(hw.Key9)
	afterFirst := c.rng.state

	c.Step(hw.Key9)
	if c.rng.state != afterFirst {
		t.Error("a held key was handled twice")
	}

	c.Step(hw.Key9.Break())
	c.Step(hw.Key9)
	if c.rng.state == afterFirst {
		t.Error("a key pressed again after its release was ignored")
	}
}

func TestController_altLatch(t *testing.T) {
	c, _ := testingController(t, ramfat.New())

	c.Step(hw.KeyAlt)
	if !c.State().Alt {
		t.Fatal("ALT make code did not set the latch")
	}
	press(c, hw.KeyA)
	if !c.State().Alt {
		t.Fatal("another key cleared the ALT latch")
	}
	c.Step(hw.KeyAlt.Break())
	if c.State().Alt {
		t.Fatal("ALT break code did not clear the latch")
	}
}

func TestController_mainMenu(t *testing.T) {
	tests := []struct {
		name     string
		key      hw.Scancode
		wantMode Mode
		row      int
		want     string
	}{
		{name: "banner 1", key: hw.Key1, wantMode: ModeMain, row: 0, want: "Rusted M1"},
		{name: "banner 2", key: hw.Key2, wantMode: ModeMain, row: 0, want: "Rusted M2"},
		{name: "banner 3", key: hw.Key3, wantMode: ModeMain, row: 0, want: "Rusted M3"},
		{name: "math", key: hw.KeyM, wantMode: ModeMath, row: 0, want: "MATH MENU"},
		{name: "input", key: hw.KeyI, wantMode: ModeCapture, row: 24, want: " INPUT > "},
		{name: "files", key: hw.KeyHome, wantMode: ModeCommander, row: 1, want: " FAT16 MINI-COMMANDER "},
		{name: "clear", key: hw.KeyEsc, wantMode: ModeMain, row: 0, want: strings.Repeat(" ", hw.Cols)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, fb := testingController(t, ramfat.New())
			press(c, tt.key)

			if c.State().Mode != tt.wantMode {
				t.Errorf("Mode = %v, want %v", c.State().Mode, tt.wantMode)
			}
			if got := fb.Text(tt.row); !strings.Contains(got, tt.want) {
				t.Errorf("row %d = %q, want %q", tt.row, got, tt.want)
			}
		})
	}
}

func TestController_line(t *testing.T) {
	c, fb := testingController(t, ramfat.New())
	press(c, hw.Key4)

	for col := 0; col < hw.Cols; col++ {
		if cell := fb.Cell(col, 12); cell.Ch != hw.FullBlock || cell.Attr.Fg() != hw.Green {
			t.Fatalf("Cell(%d, 12) = %+v", col, cell)
		}
	}
}

func TestController_mathMenu(t *testing.T) {
	tests := []struct {
		key  hw.Scancode
		want string
	}{
		{key: hw.Key1, want: "2 + 2 = 4 "},
		{key: hw.Key2, want: "5 - 3 = 2 "},
		{key: hw.Key3, want: "3 * 4 = 12 "},
		{key: hw.Key4, want: "8 / 2 = 4 "},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			c, fb := testingController(t, ramfat.New())
			press(c, hw.KeyM, tt.key)

			if got := fb.Text(11); !strings.HasPrefix(got, tt.want) {
				t.Errorf("row 11 = %q, want %q", got, tt.want)
			}
		})
	}

	t.Run("random", func(t *testing.T) {
		c, fb := testingController(t, ramfat.New(), WithSeed(42))
		press(c, hw.KeyM, hw.Key9)

		r := lcg{state: 42}
		n := r.next() % 100
		if n >= 100 {
			t.Fatal("random number out of range")
		}
		want := fmt.Sprintf("Random Number: %d ", n)
		if got := fb.Text(10); !strings.HasPrefix(got, want) {
			t.Errorf("row 10 = %q, want %q", got, want)
		}
	})

	t.Run("back", func(t *testing.T) {
		c, fb := testingController(t, ramfat.New())
		press(c, hw.KeyM, hw.Key0)

		if c.State().Mode != ModeMain || !strings.HasPrefix(fb.Text(0), "Rusted") {
			t.Errorf("Mode = %v, row 0 = %q", c.State().Mode, fb.Text(0))
		}
	})
}

type glyphDisplay struct {
	*hw.Framebuffer
	loaded int
}

func (g *glyphDisplay) LoadPolishGlyphs() {
	g.loaded++
}

func TestController_unicodeMenu(t *testing.T) {
	tests := []struct {
		name string
		key  hw.Scancode
	}{
		{name: "F8", key: hw.KeyF8},
		{name: "alias 0x07", key: 0x07},
		{name: "alias 0x09", key: 0x09},
		{name: "alias 0x64", key: hw.KeyF13},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			display := &glyphDisplay{Framebuffer: hw.NewFramebuffer()}
			c := New(ramfat.New(), display)
			c.Boot()
			press(c, tt.key)

			if c.State().Mode != ModeUnicode {
				t.Fatalf("Mode = %v, want unicode", c.State().Mode)
			}
			if display.loaded != 1 {
				t.Errorf("glyphs loaded %d times", display.loaded)
			}
			if got := display.Text(0); !strings.HasPrefix(got, "POLISH MODE") {
				t.Errorf("row 0 = %q", got)
			}

			press(c, hw.Key1)
			if c.State().Mode != ModeUnicode {
				t.Errorf("decorative key changed the mode to %v", c.State().Mode)
			}

			press(c, hw.Key0)
			if c.State().Mode != ModeMain {
				t.Errorf("Mode = %v, want main", c.State().Mode)
			}
		})
	}
}

func TestController_reboot(t *testing.T) {
	store := ramfat.New()
	if err := store.Save(ramfat.ParseName("DOC"), []byte("hi")); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name  string
		setup []hw.Scancode
	}{
		{name: "main", setup: nil},
		{name: "math", setup: []hw.Scancode{hw.KeyM}},
		{name: "capture", setup: []hw.Scancode{hw.KeyI}},
		{name: "commander", setup: []hw.Scancode{hw.KeyHome}},
		{name: "editor", setup: []hw.Scancode{hw.KeyHome, hw.KeyEnter}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := testingController(t, store)
			press(c, tt.setup...)

			if got := c.Step(hw.KeyF5); got != ActionReboot {
				t.Errorf("Step(F5) = %v, want ActionReboot", got)
			}
		})
	}
}

func TestMode_String(t *testing.T) {
	if got := ModeCommander.String(); got != "commander" {
		t.Errorf("String() = %q", got)
	}
	if got := Mode(42).String(); got != "unknown" {
		t.Errorf("String() = %q", got)
	}
}

func TestController_showScancodes(t *testing.T) {
	c, fb := testingController(t, ramfat.New(), WithShowScancodes(true))
	c.Step(hw.KeyM)

	if got := fb.Text(0)[74:79]; got != "SC 32" {
		t.Errorf("readout = %q", got)
	}
	c.Step(hw.KeyM.Break())
	if got := fb.Text(0)[74:79]; got != "SC B2" {
		t.Errorf("readout = %q", got)
	}
}

func TestController_Run(t *testing.T) {
	t.Run("reboot", func(t *testing.T) {
		mockCtrl := gomock.NewController(t)
		defer mockCtrl.Finish()

		kbd := hw.NewMockKeyboard(mockCtrl)
		gomock.InOrder(
			kbd.EXPECT().PollScancode().Return(hw.KeyM, true),
			kbd.EXPECT().PollScancode().Return(hw.Scancode(0), false),
			kbd.EXPECT().Wait(gomock.Any()).Return(nil),
			kbd.EXPECT().PollScancode().Return(hw.KeyF5, true),
		)

		c := New(ramfat.New(), hw.NewFramebuffer())
		err := c.Run(context.Background(), kbd)
		if !errors.Is(err, ErrReboot) {
			t.Errorf("Run() error = %v, want ErrReboot", err)
		}
		if c.State().Mode != ModeMath {
			t.Errorf("Mode = %v, want math", c.State().Mode)
		}
	})

	t.Run("canceled", func(t *testing.T) {
		mockCtrl := gomock.NewController(t)
		defer mockCtrl.Finish()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		kbd := hw.NewMockKeyboard(mockCtrl)
		kbd.EXPECT().PollScancode().Return(hw.Scancode(0), false)
		kbd.EXPECT().Wait(ctx).Return(ctx.Err())

		c := New(ramfat.New(), hw.NewFramebuffer())
		if err := c.Run(ctx, kbd); !errors.Is(err, context.Canceled) {
			t.Errorf("Run() error = %v, want context.Canceled", err)
		}
	})

	t.Run("fault", func(t *testing.T) {
		mockCtrl := gomock.NewController(t)
		defer mockCtrl.Finish()

		store := NewMockFileStore(mockCtrl)
		store.EXPECT().List(commanderRows).DoAndReturn(func(int) []ramfat.DirEntry {
			panic("directory unreadable")
		})

		kbd := hw.NewMockKeyboard(mockCtrl)
		kbd.EXPECT().PollScancode().Return(hw.KeyHome, true)

		fb := hw.NewFramebuffer()
		c := New(store, fb)
		err := c.Run(context.Background(), kbd)
		if !errors.Is(err, ErrHalted) {
			t.Fatalf("Run() error = %v, want ErrHalted", err)
		}
		if !strings.Contains(err.Error(), "directory unreadable") {
			t.Errorf("Run() error = %v, want the panic value", err)
		}
		if got := fb.Text(0)[:4]; got != "ER25" {
			t.Errorf("banner = %q", got)
		}
		if got := fb.Cell(0, 0).Attr; got != 0x4F {
			t.Errorf("banner attr = %#x", got)
		}
	})
}
