// Package combo is the tag input's state machine.
//
// A Session owns the text buffer, the open/closed flags for the suggestion
// list and the emoji picker, and routes every event from the view layer to
// either the selection store or the emoji picker, never both for one event.
//
// Allowed here:
// - event routing and key precedence
// - visibility flags and snapshot construction
// - scheduling of post-render host updates
//
// Not allowed here:
// - rendering, styling, terminal or mouse specifics
package combo
