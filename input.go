package wtree

import (
	"log"

	"9fans.net/go/draw"
)

// Mouse delivers a mouse event. While buttons are held, events go to the
// element that received the button press. Returns whether it was consumed.
func (d *DUI) Mouse(m draw.Mouse) bool {
	if d.Config.LogInputs {
		log.Printf("wtree: mouse %v, %b\n", m, m.Buttons)
	}
	prev := d.mouse
	if prev.Buttons == 0 {
		d.origMouse = m
	}
	d.mouse = m
	if d.Top == nil {
		return false
	}

	var r Result
	if d.grab != nil && (m.Buttons != 0 || prev.Buttons != 0) {
		r = d.mouseElement(d.grab, m, d.origMouse)
	} else if m.Point.In(d.Top.R) && d.Top.Visibility == Visible {
		r = d.mouseElement(d.Top, m, d.origMouse)
	}

	if prev.Buttons == 0 && m.Buttons != 0 {
		d.grab = r.Hit
		if r.Hit != nil && m.Buttons&Button1 != 0 {
			if f := focusTarget(r.Hit); f != nil {
				d.Focus(f)
			}
		}
	}
	if m.Buttons == 0 {
		d.grab = nil
	}
	d.setHover(r.Hit)
	return r.Consumed
}

// mouseElement delivers m to e, and handles clicks for Clicker and Checkable UIs
// that did not consume the event themselves.
func (d *DUI) mouseElement(e *Element, m draw.Mouse, origM draw.Mouse) Result {
	r := e.UI.Mouse(d, e, m, origM)
	if r.Hit == nil {
		r.Hit = e
	}
	if r.Consumed || r.Hit != e || e.Flags&Clickable == 0 {
		return r
	}
	released := origM.Buttons&Button1 != 0 && m.Buttons&Button1 == 0
	if released && m.Point.In(e.R) && origM.Point.In(e.R) {
		propagateEvent(e, &r, d.activate(e))
	}
	return r
}

// activate clicks or toggles e.
func (d *DUI) activate(e *Element) Event {
	switch ui := e.UI.(type) {
	case Checkable:
		return ui.SetChecked(d, e, !ui.Checked())
	case Clicker:
		return ui.Click(d, e)
	}
	return Event{}
}

func (d *DUI) setHover(e *Element) {
	if e == d.hover {
		return
	}
	for _, x := range []*Element{d.hover, e} {
		for ; x != nil; x = x.Parent {
			if x.Flags&Hoverable != 0 {
				x.MarkDraw()
				break
			}
		}
	}
	d.hover = e
}

// Hovered returns whether the mouse is over e or one of its descendants.
func (d *DUI) Hovered(e *Element) bool {
	for x := d.hover; x != nil; x = x.Parent {
		if x == e {
			return true
		}
	}
	return false
}

// Pressed returns whether button 1 is held on e.
func (d *DUI) Pressed(e *Element) bool {
	return d.grab == e && d.mouse.Buttons&Button1 != 0
}

// MouseState returns the last mouse event.
func (d *DUI) MouseState() draw.Mouse {
	return d.mouse
}

func focusTarget(e *Element) *Element {
	for ; e != nil; e = e.Parent {
		if e.Flags&Focusable != 0 && e.Visibility == Visible {
			return e
		}
	}
	return nil
}

// Key delivers a key to the focused element, then to its ancestors until it is consumed.
// Unconsumed tabs move the focus to the next focusable element.
// Returns whether it was consumed.
func (d *DUI) Key(k rune) bool {
	if d.Config.LogInputs {
		log.Printf("wtree: key %c, %x\n", k, k)
	}
	if d.Top == nil {
		return false
	}
	for e := d.focus; e != nil; e = e.Parent {
		r := e.UI.Key(d, e, k)
		if !r.Consumed && e == d.focus && (k == ' ' || k == '\n') && e.Flags&Clickable != 0 {
			propagateEvent(e, &r, d.activate(e))
		}
		if r.Consumed {
			return true
		}
	}
	switch k {
	case '\t':
		d.FocusNext(true)
		return true
	case draw.KeyCmd + '\t':
		d.FocusNext(false)
		return true
	}
	return false
}

// Focused returns the element with keyboard focus, or nil.
func (d *DUI) Focused() *Element {
	return d.focus
}

// Focus gives keyboard focus to e, which may be nil.
func (d *DUI) Focus(e *Element) {
	if e == d.focus {
		return
	}
	if d.focus != nil {
		if f, ok := d.focus.UI.(FocusWatcher); ok {
			f.FocusChanged(d, d.focus, false)
		}
		d.focus.MarkDraw()
	}
	d.focus = e
	if e != nil {
		if f, ok := e.UI.(FocusWatcher); ok {
			f.FocusChanged(d, e, true)
		}
		e.MarkDraw()
	}
}

// FocusNext moves focus to the next (or previous) visible focusable element, in tree order, wrapping around.
func (d *DUI) FocusNext(forward bool) {
	if d.Top == nil {
		return
	}
	var l []*Element
	d.Top.Walk(func(e *Element) bool {
		if e.Visibility != Visible {
			return false
		}
		if e.Flags&Focusable != 0 {
			l = append(l, e)
		}
		return true
	})
	if len(l) == 0 {
		return
	}
	i := -1
	for j, e := range l {
		if e == d.focus {
			i = j
		}
	}
	if forward {
		i = (i + 1) % len(l)
	} else if i <= 0 {
		i = len(l) - 1
	} else {
		i--
	}
	d.Focus(l[i])
}
