// Copyright (c) 2025, Weft Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import (
	"fmt"
	"image/color"
	"sync"

	"github.com/weftui/weft/colors"
	"github.com/weftui/weft/math32"
)

// Capability identifies a kind of service that ancestors publish into
// the tree context and descendants look up. The built-in IO contracts
// have predeclared capabilities; additional kinds are created with
// [RegisterCapability].
type Capability int32

var (
	capMu    sync.Mutex
	capNames = []string{"none"}
)

// RegisterCapability assigns and returns a new process-wide [Capability]
// for the given kind name. Like action ids, capabilities are expected
// to be registered at startup.
func RegisterCapability(name string) Capability {
	capMu.Lock()
	defer capMu.Unlock()
	c := Capability(len(capNames))
	capNames = append(capNames, name)
	return c
}

func (c Capability) String() string {
	capMu.Lock()
	defer capMu.Unlock()
	if c < 0 || int(c) >= len(capNames) {
		return fmt.Sprintf("Capability(%d)", int32(c))
	}
	return capNames[c]
}

// Built-in capability kinds for the standard IO contracts.
var (
	CanvasCap      = RegisterCapability("canvas")
	FocusCap       = RegisterCapability("focus")
	HoverCap       = RegisterCapability("hover")
	ActionCap      = RegisterCapability("action")
	ClipboardCap   = RegisterCapability("clipboard")
	FileCap        = RegisterCapability("file")
	TimeCap        = RegisterCapability("time")
	PreferenceCap  = RegisterCapability("preference")
	DebugSignalCap = RegisterCapability("debugSignal")
	OverlayCap     = RegisterCapability("overlay")
)

// CapabilityMissingError is returned from a resize when a required
// capability has no published instance. It is fatal to the frame: the
// host must install the missing service.
type CapabilityMissingError struct {
	Kind Capability
}

func (e *CapabilityMissingError) Error() string {
	return fmt.Sprintf("core: required capability %q not available", e.Kind)
}

// TreeContext is the per-tree mutable state carried through a frame's
// traversal: current depth, crop and tint stacks, disabled-branch state,
// breadcrumbs, the capability table, and the queued tree actions.
// One context belongs to one [Scene] and is only touched on the
// main thread.
type TreeContext struct {

	// Scene is the scene this context belongs to.
	Scene *Scene

	// Depth is the current traversal depth; the root draws at 0.
	Depth int

	// caps holds, per capability kind, the stack of published service
	// instances; the last element is the innermost active one.
	caps map[Capability][]any

	crop   []math32.Box2
	tint   []color.NRGBA
	crumbs []string

	disabledDepth int // >0 while inside a disabled branch

	actions []*queuedAction
	frame   int64
}

func newTreeContext(sc *Scene) *TreeContext {
	return &TreeContext{
		Scene: sc,
		caps:  map[Capability][]any{},
	}
}

// Frame returns the current frame counter.
func (ctx *TreeContext) Frame() int64 {
	return ctx.frame
}

// Publish pushes a service instance for the given capability kind,
// making it visible to the publishing node's subtree, and returns the
// release function. The publisher must guarantee release on all exit
// paths of its draw:
//
//	defer ctx.Publish(core.ClipboardCap, cb)()
func (ctx *TreeContext) Publish(kind Capability, v any) func() {
	ctx.caps[kind] = append(ctx.caps[kind], v)
	return func() {
		st := ctx.caps[kind]
		ctx.caps[kind] = st[:len(st)-1]
	}
}

// Use returns the innermost active service of the given kind, or nil
// and false when none is published.
func (ctx *TreeContext) Use(kind Capability) (any, bool) {
	if st := ctx.caps[kind]; len(st) > 0 {
		return st[len(st)-1], true
	}
	return nil, false
}

// Require returns the innermost active service of the given kind, or a
// [CapabilityMissingError] when none is published. Nodes are expected
// to require collaborators in resize, not in draw, so that a missing
// service fails the frame loudly.
func (ctx *TreeContext) Require(kind Capability) (any, error) {
	if v, ok := ctx.Use(kind); ok {
		return v, nil
	}
	return nil, &CapabilityMissingError{Kind: kind}
}

// RequireAs is a typed [TreeContext.Require].
func RequireAs[T any](ctx *TreeContext, kind Capability) (T, error) {
	v, err := ctx.Require(kind)
	if err != nil {
		var zv T
		return zv, err
	}
	t, ok := v.(T)
	if !ok {
		var zv T
		return zv, fmt.Errorf("core: capability %q has type %T, not %T", kind, v, zv)
	}
	return t, nil
}

// UseAs is a typed [TreeContext.Use], returning the zero value when the
// capability is absent or of another type.
func UseAs[T any](ctx *TreeContext, kind Capability) (T, bool) {
	v, ok := ctx.Use(kind)
	if !ok {
		var zv T
		return zv, false
	}
	t, ok := v.(T)
	return t, ok
}

// Canvas returns the published canvas service.
func (ctx *TreeContext) Canvas() (CanvasIO, error) {
	return RequireAs[CanvasIO](ctx, CanvasCap)
}

// Focus returns the published focus service.
func (ctx *TreeContext) Focus() (FocusIO, error) {
	return RequireAs[FocusIO](ctx, FocusCap)
}

// Hover returns the published hover service.
func (ctx *TreeContext) Hover() (HoverIO, error) {
	return RequireAs[HoverIO](ctx, HoverCap)
}

// Actions returns the published action-dispatch service.
func (ctx *TreeContext) Actions() (ActionIO, error) {
	return RequireAs[ActionIO](ctx, ActionCap)
}

// Overlays returns the published overlay service.
func (ctx *TreeContext) Overlays() (OverlayIO, error) {
	return RequireAs[OverlayIO](ctx, OverlayCap)
}

// Crop returns the current crop rectangle.
func (ctx *TreeContext) Crop() math32.Box2 {
	if len(ctx.crop) == 0 {
		return ctx.Scene.ViewportBox()
	}
	return ctx.crop[len(ctx.crop)-1]
}

// PushCrop intersects the current crop with the given rectangle,
// applies it to the canvas, and returns the release function.
func (ctx *TreeContext) PushCrop(r math32.Box2) func() {
	nc := ctx.Crop().Intersect(r)
	ctx.crop = append(ctx.crop, nc)
	var prev math32.Box2
	cv, ok := UseAs[CanvasIO](ctx, CanvasCap)
	if ok {
		prev = cv.CropTo(nc)
	}
	return func() {
		ctx.crop = ctx.crop[:len(ctx.crop)-1]
		if ok {
			cv.RestoreCrop(prev)
		}
	}
}

// Tint returns the current multiplicative tint product.
func (ctx *TreeContext) Tint() color.NRGBA {
	if len(ctx.tint) == 0 {
		return colors.White
	}
	return ctx.tint[len(ctx.tint)-1]
}

// PushTint multiplies the given tint onto the tint stack, applies the
// product to the canvas, and returns the release function.
func (ctx *TreeContext) PushTint(c color.NRGBA) func() {
	nt := colors.Multiply(ctx.Tint(), c)
	ctx.tint = append(ctx.tint, nt)
	cv, ok := UseAs[CanvasIO](ctx, CanvasCap)
	if ok {
		cv.SetTint(nt)
	}
	return func() {
		ctx.tint = ctx.tint[:len(ctx.tint)-1]
		if ok {
			cv.SetTint(ctx.Tint())
		}
	}
}

// Crumbs returns the breadcrumb tokens accumulated along the current
// draw path, innermost last. The returned slice must not be retained.
func (ctx *TreeContext) Crumbs() []string {
	return ctx.crumbs
}

// InDisabledBranch returns whether the traversal is currently inside a
// disabled node's subtree.
func (ctx *TreeContext) InDisabledBranch() bool {
	return ctx.disabledDepth > 0
}

// ResizeChild resizes the given child within the suggested space if it
// is dirty, recording and returning its minimum size. Clean children
// return their recorded minimum size without resizing. Hidden children
// contribute no size.
func (ctx *TreeContext) ResizeChild(child Node, space math32.Vector2) (math32.Vector2, error) {
	cb := child.AsNode()
	if cb.Hidden {
		return math32.Vector2{}, nil
	}
	if !cb.dirty {
		return cb.minSize, nil
	}
	if cb.this == nil {
		cb.InitNode(child)
	}
	ctx.pruneStopped()
	for _, qa := range ctx.actions {
		qa.beforeResize(child, space)
	}
	ms, err := child.Resize(ctx, space)
	if err != nil {
		return math32.Vector2{}, err
	}
	cb.minSize = ms
	cb.dirty = false
	return ms, nil
}

// DrawChild draws the given child into the given box, firing tree
// action hooks, recording the draw for hit testing, and propagating
// branch state. The box includes the child's padding; the child's inner
// box is inset by [NodeBase.Pad].
func (ctx *TreeContext) DrawChild(child Node, box math32.Box2) {
	cb := child.AsNode()
	if cb.Hidden {
		return
	}
	if cb.this == nil {
		cb.InitNode(child)
	}
	outer := box
	inner := cb.Pad.InsetBox(box)

	cb.lastOuter = outer
	cb.lastInner = inner
	cb.drawnFrame = ctx.frame

	parentDisabled := ctx.InDisabledBranch()
	cb.inheritDisabled = parentDisabled
	if cb.Disabled || parentDisabled {
		ctx.disabledDepth++
		defer func() { ctx.disabledDepth-- }()
	}

	if cb.Crumb != "" {
		ctx.crumbs = append(ctx.crumbs, cb.Crumb)
		defer func() { ctx.crumbs = ctx.crumbs[:len(ctx.crumbs)-1] }()
	}

	ctx.Depth++
	ctx.pruneStopped()

	for _, qa := range ctx.actions {
		qa.beforeDraw(child, outer, inner)
	}

	child.Draw(ctx, outer, inner)

	// branch actions stop when their owner's draw returns
	for _, qa := range ctx.actions {
		if qa.branchOwner == child {
			qa.action.Stop()
		}
	}

	for _, qa := range ctx.actions {
		qa.afterDraw(child, outer, inner)
	}
	ctx.Depth--
}
