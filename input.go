package main

import (
	"log"

	"github.com/atotto/clipboard"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"backrooms/session"
)

// keys that do not count as "any key" on the start and end screens
var reservedKeys = map[ebiten.Key]bool{
	ebiten.KeyEscape: true,
	ebiten.KeyM:      true,
	ebiten.KeyF2:     true,
}

func anyPressed(keys ...ebiten.Key) bool {
	for _, k := range keys {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}

// padPressed reports whether any connected standard gamepad holds b.
func padPressed(b ebiten.StandardGamepadButton) bool {
	for _, id := range ebiten.AppendGamepadIDs(nil) {
		if ebiten.IsStandardGamepadButtonPressed(id, b) {
			return true
		}
	}
	return false
}

// padStarted reports a fresh press of A or Start on any standard gamepad.
func padStarted() bool {
	for _, id := range ebiten.AppendGamepadIDs(nil) {
		if inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonRightBottom) ||
			inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonCenterRight) {
			return true
		}
	}
	return false
}

// readInput maps this tick's keyboard, mouse and gamepad state to a session input.
// The second result asks for a debug snapshot on the clipboard.
func (g *Game) readInput() (session.Input, bool) {
	in := session.Input{
		Forward:     anyPressed(ebiten.KeyW, ebiten.KeyArrowUp) || padPressed(ebiten.StandardGamepadButtonLeftTop),
		Backward:    anyPressed(ebiten.KeyS, ebiten.KeyArrowDown) || padPressed(ebiten.StandardGamepadButtonLeftBottom),
		RotateLeft:  anyPressed(ebiten.KeyA, ebiten.KeyArrowLeft) || padPressed(ebiten.StandardGamepadButtonLeftLeft),
		RotateRight: anyPressed(ebiten.KeyD, ebiten.KeyArrowRight) || padPressed(ebiten.StandardGamepadButtonLeftRight),
		StrafeLeft:  ebiten.IsKeyPressed(ebiten.KeyQ),
		StrafeRight: ebiten.IsKeyPressed(ebiten.KeyE),
		TopDown:     inpututil.IsKeyJustPressed(ebiten.KeyM),
	}

	g.keys = inpututil.AppendJustPressedKeys(g.keys[:0])
	for _, k := range g.keys {
		if !reservedKeys[k] {
			in.AnyKey = true
			break
		}
	}
	if padStarted() {
		in.AnyKey = true
	}

	// the first sample after capture only establishes the baseline
	x, _ := ebiten.CursorPosition()
	if g.mouseReady {
		in.Turn = float64(x-g.mouseX) * g.cfg.Player.MouseSensitivity
	}
	g.mouseX, g.mouseReady = x, true

	return in, inpututil.IsKeyJustPressed(ebiten.KeyF2)
}

func (g *Game) copySnapshot() {
	snap := g.session.Snapshot()
	if err := clipboard.WriteAll(snap); err != nil {
		log.Printf("[clipboard] %v", err)
		return
	}
	log.Printf("[clipboard] copied %q", snap)
}
