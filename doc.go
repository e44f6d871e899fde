/*
Package wtree is the core of a retained-mode UI toolkit: a persistent tree of elements, rebuilt from lightweight widget descriptions, laid out with size negotiation, drawn incrementally, and fed mouse and keyboard input.

Start with NewDUI to create a DUI: the element tree of a window and all its UI state. Describe the UI as a tree of Widgets, made with W or helpers like NewLabel, NewVBox and NewScroll, and pass it to Build. Build reconciles the description against the existing elements: elements with the same key (or, without key, the same position) and the same Kind are reused and updated, the rest is created or destroyed. Call Build again with a fresh description whenever the application state changes.

Each element holds a UI, the behaviour of its kind. Layout happens in two passes. Measure asks each element for its Boundaries: minimum, natural and maximum size. Arrange then hands out boxes top-down. UIs whose height depends on their width, like wrapped text, implement HeightForWidther. Results are cached per element, and only elements marked with MarkLayout, MarkArrange or MarkDraw are redone.

Drawing goes through a Painter. Recorder is a Painter that records the operations, useful for tests and debugging.

You are in charge of the event loop: pass mouse events to DUI.Mouse, keys to DUI.Key, call DUI.Tick for timers, and DUI.Render after handling events. While buttons are held, mouse events go to the element that got the press. Tab moves keyboard focus.

Styles come from a StyleResolver, typically a Sheet of rules shared between windows through a Context. When rules change, elements are invalidated according to what changed: colors need a draw, alignment a new arrangement, fonts and spacing a new measurement.

Scrolling

Scroll shows a scrollbar when its content does not fit. Button 1 on the track pages toward the mouse, repeating while held. Button 1 on the thumb drags it. Button 2 jumps to the place clicked. Button 4 and 5 are wheel up and wheel down.

Settings

User changes to split gutters and dock bands are persisted in the Settings file of the DUI, for elements that have a key.
*/
package wtree
