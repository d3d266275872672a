package cartridge

import (
	"fmt"
	"reflect"
	"slices"
	"strings"
	"testing"

	"github.com/vovakirdan/bear-adventure/internal/assets"
	"github.com/vovakirdan/bear-adventure/internal/config"
	"github.com/vovakirdan/bear-adventure/internal/core"
	"github.com/vovakirdan/bear-adventure/internal/games/bear"
	"github.com/vovakirdan/bear-adventure/internal/host"
	"github.com/vovakirdan/bear-adventure/internal/stage"
)

func makeStage(t *testing.T, tiles string, enemies ...float64) *stage.Stage {
	t.Helper()
	var b strings.Builder
	fmt.Fprintf(&b, "name: test\ntiles: [%q]\n", tiles)
	if len(tiles) > 3 && tiles[3] == '3' {
		b.WriteString("stairs:\n  3: 16\n")
	}
	b.WriteString("enemies: [")
	for i, x := range enemies {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%g", x)
	}
	b.WriteString("]\n")

	s, err := stage.Parse([]byte(b.String()), "test.yaml")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	return s
}

func press(buttons ...core.Button) core.InputFrame {
	return core.NextInputFrame(0, core.NewButtonSet(buttons...))
}

func hold(buttons ...core.Button) core.InputFrame {
	return core.InputFrame{Held: core.NewButtonSet(buttons...)}
}

// spyLabel remembers the last palette set on a label.
type spyLabel struct {
	host.Label
	pal host.Palette
}

func (l *spyLabel) SetPalette(p host.Palette) {
	l.pal = p
	l.Label.SetPalette(p)
}

type spyDisplay struct {
	*host.Canvas
}

func (d spyDisplay) AddText(text string, pal host.Palette, x, y float64) host.Label {
	return &spyLabel{Label: d.Canvas.AddText(text, pal, x, y), pal: pal}
}

type rig struct {
	cart    *Cartridge
	canvas  *host.Canvas
	speaker *host.Recorder
}

func newRig(t *testing.T, stages ...*stage.Stage) *rig {
	t.Helper()
	cfg := config.DefaultBearConfig()
	canvas := host.NewCanvas(host.ViewBox{W: float64(cfg.Screen.Width), H: float64(cfg.Screen.Height)})
	speaker := &host.Recorder{}
	world := bear.NewWorld(cfg, stages, 1)
	return &rig{
		cart:    New(world, assets.MustLoad(), spyDisplay{canvas}, speaker, nil),
		canvas:  canvas,
		speaker: speaker,
	}
}

// run feeds in until the world leaves StatePlaying or limit frames pass.
func (r *rig) run(in core.InputFrame, limit int) bear.TickResult {
	var res bear.TickResult
	for i := 0; i < limit; i++ {
		res = r.cart.OnFrame(in)
		if res.State != bear.StatePlaying {
			break
		}
	}
	return res
}

const flat = "1111111111111111"

func TestTitleScreen(t *testing.T) {
	r := newRig(t, makeStage(t, flat+"4"))

	want := []string{"BEAR", "ADVENTURE", "PRESS Z"}
	if got := r.canvas.Texts(); !reflect.DeepEqual(got, want) {
		t.Errorf("Texts() = %v, expected %v", got, want)
	}
	if r.canvas.Live() != 4 {
		t.Errorf("Live() = %d, expected 4", r.canvas.Live())
	}

	var hidden, shown int
	for i := 0; i < 80; i++ {
		r.cart.OnFrame(core.InputFrame{})
		if slices.Contains(r.canvas.Texts(), "PRESS Z") {
			shown++
		} else {
			hidden++
		}
	}
	if hidden != 20 || shown != 60 {
		t.Errorf("blink shown=%d hidden=%d, expected 60/20", shown, hidden)
	}
}

func TestBuildStage(t *testing.T) {
	tests := []struct {
		name  string
		tiles string
		live  int
	}{
		// sky + 17 ground + castle + player + 2 labels
		{"flat", flat + "4", 22},
		// sky + 9 ground + 2 stair blocks + castle + player + 2 labels
		{"stair", "111311114", 16},
		// sky + 2 ground + player + 2 labels
		{"no goal", "1122", 6},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newRig(t, makeStage(t, tt.tiles))
			r.cart.OnFrame(press(core.ButtonConfirm))

			if got := r.canvas.Live(); got != tt.live {
				t.Errorf("Live() = %d, expected %d", got, tt.live)
			}
			want := []string{"STAGE 1", "HP:5"}
			if got := r.canvas.Texts(); !reflect.DeepEqual(got, want) {
				t.Errorf("Texts() = %v, expected %v", got, want)
			}
		})
	}
}

func TestNoHandlesLeakAcrossRuns(t *testing.T) {
	r := newRig(t, makeStage(t, "1122222222", 40))

	r.cart.OnFrame(press(core.ButtonConfirm))
	first := r.canvas.Live()

	res := r.run(core.InputFrame{}, 200)
	if res.State != bear.StateGameOver {
		t.Fatalf("expected game over from the hole, got %v", res.State)
	}
	texts := r.canvas.Texts()
	if !slices.Contains(texts, "GAME OVER") || !slices.Contains(texts, "X:TITLE") {
		t.Errorf("game over texts = %v", texts)
	}

	r.cart.OnFrame(press(core.ButtonSecondary))
	if r.canvas.Live() != 4 {
		t.Errorf("title Live() = %d, expected 4", r.canvas.Live())
	}

	r.cart.OnFrame(press(core.ButtonConfirm))
	if got := r.canvas.Live(); got != first {
		t.Errorf("second run Live() = %d, expected %d", got, first)
	}
}

func TestCueStopsBeforePlay(t *testing.T) {
	r := newRig(t, makeStage(t, flat+"4"))
	r.cart.OnFrame(press(core.ButtonConfirm))
	if r.speaker.Plays() != 0 {
		t.Fatalf("starting a stage should be silent, got %d plays", r.speaker.Plays())
	}

	r.cart.OnFrame(press(core.ButtonConfirm))
	if r.speaker.Plays() != 1 || r.speaker.Stops() != 1 {
		t.Fatalf("plays=%d stops=%d, expected 1/1", r.speaker.Plays(), r.speaker.Stops())
	}
	want := assets.MustLoad().Cue(assets.CueJump)
	if !reflect.DeepEqual(r.speaker.Last(), want) {
		t.Errorf("Last() = %v, expected the jump cue %v", r.speaker.Last(), want)
	}
}

func TestHPLabelTurnsRed(t *testing.T) {
	// The mushroom spawns on top of the player and chases it.
	r := newRig(t, makeStage(t, flat+"4", 18))
	r.cart.OnFrame(press(core.ButtonConfirm))

	label := r.cart.hpLabel.(*spyLabel)
	if label.pal.Color(1) != core.ColorWhite {
		t.Fatalf("full hp label colour = %v, expected white", label.pal.Color(1))
	}

	low := config.DefaultBearConfig().Player.LowHP
	for i := 0; i < 2000 && r.cart.World().Player().HP > low; i++ {
		r.cart.OnFrame(core.InputFrame{})
	}
	hp := r.cart.World().Player().HP
	if hp != low {
		t.Fatalf("hp = %d, expected to reach %d", hp, low)
	}
	if !slices.Contains(r.canvas.Texts(), fmt.Sprintf("HP:%d", hp)) {
		t.Errorf("Texts() = %v, missing HP:%d", r.canvas.Texts(), hp)
	}
	if label.pal.Color(1) != core.ColorRed {
		t.Errorf("low hp label colour = %v, expected red", label.pal.Color(1))
	}
	if r.speaker.Last() == nil {
		t.Error("damage should play a cue")
	}
}

func TestClearMessages(t *testing.T) {
	r := newRig(t, makeStage(t, flat+"4"), makeStage(t, flat+"4"))
	r.cart.OnFrame(press(core.ButtonConfirm))

	res := r.run(hold(core.ButtonRight), 500)
	if res.State != bear.StateClear {
		t.Fatalf("expected stage clear, got %v", res.State)
	}
	texts := r.canvas.Texts()
	for _, want := range []string{"STAGE CLEAR!", "X:NEXT STAGE"} {
		if !slices.Contains(texts, want) {
			t.Errorf("Texts() = %v, missing %q", texts, want)
		}
	}

	r.cart.OnFrame(press(core.ButtonConfirm))
	want := []string{"STAGE 2", "HP:5"}
	if got := r.canvas.Texts(); !reflect.DeepEqual(got, want) {
		t.Errorf("Texts() = %v, expected %v", got, want)
	}
	if v := r.canvas.ViewBox(); v.X != 0 {
		t.Errorf("view x = %g after restart, expected 0", v.X)
	}

	res = r.run(hold(core.ButtonRight), 500)
	if res.State != bear.StateAllClear {
		t.Fatalf("expected all clear, got %v", res.State)
	}
	texts = r.canvas.Texts()
	for _, want := range []string{"ALL CLEAR!", "X:TITLE"} {
		if !slices.Contains(texts, want) {
			t.Errorf("Texts() = %v, missing %q", texts, want)
		}
	}
}

// The display keeps exactly one sprite per live enemy while the player
// jumps around them.
func TestEnemyViewsFollowWorld(t *testing.T) {
	r := newRig(t, makeStage(t, flat+flat+"4", 40, 60, 90, 120, 180))
	r.cart.OnFrame(press(core.ButtonConfirm))
	static := r.canvas.Live() - len(r.cart.World().Enemies())

	prev := core.ButtonSet(0)
	for i := 0; i < 3000; i++ {
		held := core.NewButtonSet(core.ButtonRight)
		if i%25 < 2 {
			held = held.With(core.ButtonConfirm)
		}
		res := r.cart.OnFrame(core.NextInputFrame(prev, held))
		prev = held
		if res.State != bear.StatePlaying {
			break
		}

		enemies := r.cart.World().Enemies()
		if len(r.cart.enemies) != len(enemies) {
			t.Fatalf("frame %d: %d enemy views for %d enemies", i, len(r.cart.enemies), len(enemies))
		}
		if got := r.canvas.Live(); got != static+len(enemies) {
			t.Fatalf("frame %d: Live() = %d, expected %d", i, got, static+len(enemies))
		}
		for _, e := range enemies {
			if r.cart.enemies[e.ID].kind != e.Kind {
				t.Fatalf("frame %d: enemy %d view kind %v, world kind %v", i, e.ID, r.cart.enemies[e.ID].kind, e.Kind)
			}
		}
	}
}

func TestViewFollowsCamera(t *testing.T) {
	r := newRig(t, makeStage(t, flat+flat+flat+"4"))
	r.cart.OnFrame(press(core.ButtonConfirm))
	for i := 0; i < 150; i++ {
		r.cart.OnFrame(hold(core.ButtonRight))
	}

	cam := r.cart.World().CameraX()
	if cam <= 0 {
		t.Fatalf("camera did not scroll, x=%g", cam)
	}
	if v := r.canvas.ViewBox(); v.X != cam {
		t.Errorf("view x = %g, expected camera %g", v.X, cam)
	}
}
