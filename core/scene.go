// Copyright (c) 2025, Weft Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import (
	"time"

	"github.com/weftui/weft/events"
	"github.com/weftui/weft/inputs"
	"github.com/weftui/weft/math32"
)

// Scene owns one node tree and everything needed to run it: the tree
// context, the event queue, and the standard focus, hover, action, and
// overlay services. The scene and its tree belong to a single logical
// main thread; only [Scene.Events] may be fed from other goroutines.
type Scene struct {

	// Viewport is the size of the root coordinate space.
	Viewport math32.Vector2

	// Context is the tree context carried through traversal.
	Context *TreeContext

	// Events is the inbound device event queue, drained at the start
	// of each frame.
	Events events.Deque

	// Canvas is the rendering back-end, published as [CanvasCap].
	Canvas CanvasIO

	// Hover is the pointer hover service, published as [HoverCap].
	Hover *HoverState

	// Dispatcher is the action dispatch service, published as [ActionCap].
	Dispatcher *ActionDispatcher

	// Time is the clock service, published as [TimeCap].
	// It defaults to the real clock.
	Time TimeIO

	// File is the file service, published as [FileCap] when set.
	File FileIO

	// Clipboard is the clipboard service, published as [ClipboardCap].
	// It defaults to an in-process value.
	Clipboard ClipboardIO

	// Prefs is the preference service, published as [PreferenceCap].
	Prefs PreferenceIO

	// Debug is the test signal sink, published as [DebugSignalCap].
	// It defaults to discarding.
	Debug DebugSignalIO

	chain       *OverlayChain
	focusSpaces []*FocusSpace

	pendingActions []*queuedAction
	framePipes     []*Pipe
}

// NewScene returns a new scene running the given root node in a
// viewport of the given size, rendering through the given canvas.
func NewScene(root Node, size math32.Vector2, canvas CanvasIO) *Scene {
	sc := &Scene{
		Viewport:  size,
		Canvas:    canvas,
		Time:      RealTime{},
		Clipboard: &MemoryClipboard{},
		Prefs:     DefaultPreferences{},
		Debug:     DiscardSignals{},
	}
	sc.Context = newTreeContext(sc)
	sc.Hover = newHoverState(sc)
	sc.Dispatcher = newActionDispatcher(sc)
	sc.chain = newOverlayChain(sc, root)
	sc.focusSpaces = []*FocusSpace{newFocusSpace(sc, sc.chain)}
	return sc
}

// Root returns the primary root node the scene was created with.
func (sc *Scene) Root() Node {
	return sc.chain.Primary()
}

// Overlays returns the scene's overlay chain.
func (sc *Scene) Overlays() *OverlayChain {
	return sc.chain
}

// rootNode returns the full drawn tree root, including popups.
func (sc *Scene) rootNode() Node {
	return sc.chain
}

// ViewportBox returns the viewport as a box at the origin.
func (sc *Scene) ViewportBox() math32.Box2 {
	return math32.B2FromPosSize(math32.Vector2{}, sc.Viewport)
}

// SetSize resizes the viewport, dirtying the tree.
func (sc *Scene) SetSize(size math32.Vector2) {
	sc.Viewport = size
	sc.chain.UpdateSize()
}

// CurrentFocusSpace returns the innermost focus space: the base space,
// or the space of the top popup.
func (sc *Scene) CurrentFocusSpace() *FocusSpace {
	return sc.focusSpaces[len(sc.focusSpaces)-1]
}

// pushFocusSpace opens a nested focus space scoped to the given
// subtree, capturing focus on its first focusable node.
func (sc *Scene) pushFocusSpace(scopeRoot Node) *FocusSpace {
	fs := newFocusSpace(sc, scopeRoot)
	fs.restore = sc.CurrentFocusSpace().CurrentFocus()
	sc.focusSpaces = append(sc.focusSpaces, fs)
	fs.FocusNext()
	return fs
}

// popFocusSpace closes the given focus space and any nested above it,
// restoring the focus that was active when it opened.
func (sc *Scene) popFocusSpace(fs *FocusSpace) {
	for i, s := range sc.focusSpaces {
		if s == fs && i > 0 {
			sc.focusSpaces = sc.focusSpaces[:i]
			cur := sc.CurrentFocusSpace()
			if fs.restore != nil {
				cur.Focus(fs.restore)
			}
			return
		}
	}
}

// notifyPress forwards presses to popup outside-press dismissal.
func (sc *Scene) notifyPress(p *Pointer) {
	sc.chain.notifyPress(p)
}

// unhandledAction gives the scene a chance at actions no node
// consumed: an unconsumed cancel dismisses the top popup, and the
// focus navigation actions drive the current focus space.
func (sc *Scene) unhandledAction(id inputs.ActionID) {
	fsp := sc.CurrentFocusSpace()
	switch id {
	case inputs.Cancel:
		sc.chain.DismissTop()
	case inputs.FocusNext:
		fsp.FocusNext()
	case inputs.FocusPrevious:
		fsp.FocusPrevious()
	case inputs.FocusUp:
		if f := fsp.CurrentFocus(); f != nil {
			fsp.FocusAbove(f)
		}
	case inputs.FocusDown:
		if f := fsp.CurrentFocus(); f != nil {
			fsp.FocusBelow(f)
		}
	case inputs.FocusLeft:
		if f := fsp.CurrentFocus(); f != nil {
			fsp.FocusLeft(f)
		}
	case inputs.FocusRight:
		if f := fsp.CurrentFocus(); f != nil {
			fsp.FocusRight(f)
		}
	}
}

// NextFrame returns a pipe resolved with the frame counter after the
// next draw completes. Continuations run between frames.
func (sc *Scene) NextFrame() *Pipe {
	p := NewPipe()
	sc.framePipes = append(sc.framePipes, p)
	return p
}

// Draw runs one frame: drain events, resize the dirty branch, run the
// tree-action and draw traversal, then evaluate input into action
// callbacks. It returns a [CapabilityMissingError] (or other resize
// error) when the frame could not be laid out; such errors are fatal
// and the host must fix the missing service before drawing again.
func (sc *Scene) Draw() error {
	ctx := sc.Context
	ctx.frame++

	for _, fs := range sc.focusSpaces {
		fs.clearText()
	}

	// drain inbound device events
	for {
		ev, ok := sc.Events.PollEvent()
		if !ok {
			break
		}
		switch {
		case ev.Typ == events.TextInput:
			sc.CurrentFocusSpace().TypeText(ev.Text)
		case ev.HasPos():
			sc.Hover.processEvent(ev)
			if ev.Typ.IsMouse() {
				sc.Dispatcher.processEvent(ev)
			}
		default:
			sc.Dispatcher.processEvent(ev)
		}
	}

	// the scene's services are published for the whole frame, so both
	// resize and draw can require them; subtrees may shadow any of them
	releases := []func(){
		ctx.Publish(CanvasCap, sc.Canvas),
		ctx.Publish(FocusCap, FocusIO(sc.CurrentFocusSpace())),
		ctx.Publish(HoverCap, HoverIO(sc.Hover)),
		ctx.Publish(ActionCap, ActionIO(sc.Dispatcher)),
		ctx.Publish(TimeCap, sc.Time),
		ctx.Publish(ClipboardCap, sc.Clipboard),
		ctx.Publish(PreferenceCap, sc.Prefs),
		ctx.Publish(DebugSignalCap, sc.Debug),
	}
	if sc.File != nil {
		releases = append(releases, ctx.Publish(FileCap, sc.File))
	}
	defer func() {
		for i := len(releases) - 1; i >= 0; i-- {
			releases[i]()
		}
	}()

	// pull queued tree actions
	ctx.pruneStopped()
	for _, qa := range sc.pendingActions {
		ctx.actions = append(ctx.actions, qa)
	}
	sc.pendingActions = nil
	for _, qa := range ctx.actions {
		if !qa.started {
			qa.started = true
			qa.action.Started()
		}
	}
	viewport := sc.ViewportBox()
	for _, qa := range ctx.actions {
		qa.action.BeforeTree(sc.chain, viewport)
	}

	// resize only the dirty branch
	if sc.chain.Dirty() {
		if _, err := ctx.ResizeChild(sc.chain, sc.Viewport); err != nil {
			return err
		}
	}

	// draw
	ctx.DrawChild(sc.chain, viewport)

	ctx.pruneStopped()
	for _, qa := range ctx.actions {
		qa.action.AfterTree()
	}

	// evaluate input collected this frame
	sc.Hover.resolve()
	keyboardHandled := sc.Dispatcher.dispatch()
	sc.Hover.routeScrolls()

	ctx.pruneStopped()
	for _, qa := range ctx.actions {
		qa.action.AfterInput(keyboardHandled)
	}
	ctx.pruneStopped()

	sc.chain.checkFocus()

	sc.Hover.finishFrame()
	sc.Dispatcher.endFrame()
	if sc.Canvas != nil {
		sc.Canvas.EndFrame()
	}

	// frame pipes resolve between frames
	if len(sc.framePipes) > 0 {
		pending := sc.framePipes
		sc.framePipes = nil
		for _, p := range pending {
			p.Resolve(ctx.frame)
			p.advanceChain()
		}
	}
	return nil
}

// RealTime is the default [TimeIO], backed by the standard clock.
type RealTime struct{}

func (RealTime) Now() time.Time { return time.Now() }

func (RealTime) TimeSince(instant time.Time) time.Duration { return time.Since(instant) }

// MemoryClipboard is the default [ClipboardIO]: a single in-process
// selection with no OS persistence.
type MemoryClipboard struct {
	value string
}

func (cb *MemoryClipboard) Value() string { return cb.value }

func (cb *MemoryClipboard) SetValue(text string) { cb.value = text }

// DefaultPreferences is the default [PreferenceIO].
type DefaultPreferences struct{}

func (DefaultPreferences) DoubleClickInterval() time.Duration { return 500 * time.Millisecond }

// DiscardSignals is the default [DebugSignalIO], dropping all signals.
type DiscardSignals struct{}

func (DiscardSignals) EmitSignal(name string) {}
