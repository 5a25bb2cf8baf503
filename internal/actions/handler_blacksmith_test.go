package actions

import (
	"strings"
	"testing"

	"github.com/pixil98/go-adventure/internal/game"
	"github.com/pixil98/go-testutil"
)

func newBlacksmithGame(t *testing.T) (*Handler, *game.GameState, *game.BlacksmithState) {
	t.Helper()
	state, blacksmith := game.NewGameState("Arthur")
	state.CurrentLocation = game.LocationBlacksmith
	return NewHandler(), state, blacksmith
}

func TestRequestSword(t *testing.T) {
	tests := map[string]struct {
		setup        func(*game.GameState, *game.BlacksmithState)
		expRequested bool
		expHeat      int
		expMsgPart   string
	}{
		"first request": {
			setup:        func(*game.GameState, *game.BlacksmithState) {},
			expRequested: true,
			expMsgPart:   "agrees to forge you a sword",
		},
		"already has sword": {
			setup: func(s *game.GameState, _ *game.BlacksmithState) {
				s.HasSword = true
				s.SwordType = game.SwordRegular
			},
			expRequested: false,
			expMsgPart:   "already have a sword",
		},
		"retry resets the forge": {
			setup: func(s *game.GameState, b *game.BlacksmithState) {
				s.FailedSwordAttempts = 1
				b.Heat = 30
				b.IsHeatingForge = true
			},
			expRequested: true,
			expHeat:      0,
			expMsgPart:   "be more careful this time",
		},
		"too many failures": {
			setup: func(s *game.GameState, _ *game.BlacksmithState) {
				s.FailedSwordAttempts = 3
			},
			expRequested: false,
			expMsgPart:   "wasted too much of his time",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			h, state, blacksmith := newBlacksmithGame(t)
			tt.setup(state, blacksmith)

			msg, err := h.Apply(state, blacksmith, ActionRequestSword)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			testutil.AssertEqual(t, "sword requested", blacksmith.SwordRequested, tt.expRequested)
			testutil.AssertEqual(t, "heat", blacksmith.Heat, tt.expHeat)
			if !strings.Contains(msg, tt.expMsgPart) {
				t.Errorf("message %q missing %q", msg, tt.expMsgPart)
			}
		})
	}
}

func TestHeatForge(t *testing.T) {
	h, state, blacksmith := newBlacksmithGame(t)

	msg, err := h.Apply(state, blacksmith, ActionHeatForge)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutil.AssertEqual(t, "heat", blacksmith.Heat, 5)
	testutil.AssertEqual(t, "heating", blacksmith.IsHeatingForge, true)
	if !strings.Contains(msg, "begins heating up") {
		t.Errorf("unexpected message: %q", msg)
	}
}

func TestHeatForge_SynchronousBurnDown(t *testing.T) {
	h, state, blacksmith := newBlacksmithGame(t)
	blacksmith.Heat = 45
	blacksmith.IsHeatingForge = true

	msg, err := h.Apply(state, blacksmith, ActionHeatForge)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Same rule as the background scheduler: never left at >= 50.
	testutil.AssertEqual(t, "burned down", state.BlacksmithBurnedDown, true)
	testutil.AssertEqual(t, "heating", blacksmith.IsHeatingForge, false)
	testutil.AssertEqual(t, "heat", blacksmith.Heat, 0)
	if !strings.Contains(msg, "burns down") {
		t.Errorf("unexpected message: %q", msg)
	}
}

func TestCoolForge(t *testing.T) {
	h, state, blacksmith := newBlacksmithGame(t)
	blacksmith.Heat = 30
	blacksmith.IsHeatingForge = true

	_, err := h.Apply(state, blacksmith, ActionCoolForge)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutil.AssertEqual(t, "heat", blacksmith.Heat, 0)
	testutil.AssertEqual(t, "heating", blacksmith.IsHeatingForge, false)
}

func TestCheckSword(t *testing.T) {
	tests := map[string]struct {
		heat        int
		expSword    bool
		expType     game.SwordType
		expFailed   int
		expReqAfter bool
	}{
		"temper exactly right": {heat: 10, expSword: true, expType: game.SwordRegular, expFailed: 0, expReqAfter: false},
		"too hot melts":        {heat: 15, expSword: false, expType: game.SwordNone, expFailed: 1, expReqAfter: false},
		"way too hot melts":    {heat: 40, expSword: false, expType: game.SwordNone, expFailed: 1, expReqAfter: false},
		"too cold waits":       {heat: 5, expSword: false, expType: game.SwordNone, expFailed: 0, expReqAfter: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			h, state, blacksmith := newBlacksmithGame(t)
			blacksmith.SwordRequested = true
			blacksmith.Heat = tt.heat

			_, err := h.Apply(state, blacksmith, ActionCheckSword)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			testutil.AssertEqual(t, "has sword", state.HasSword, tt.expSword)
			testutil.AssertEqual(t, "sword type", state.SwordType, tt.expType)
			testutil.AssertEqual(t, "failed attempts", state.FailedSwordAttempts, tt.expFailed)
			testutil.AssertEqual(t, "still requested", blacksmith.SwordRequested, tt.expReqAfter)
		})
	}
}
