// Package keyboard implements the credential delivery channel: typing a
// plaintext string into the host through an emulated keyboard.
//
// Two transports compete. The wireless transport is preferred when
// enabled: the channel re-announces presence, waits a bounded few hundred
// milliseconds for a link, and streams the string one unit at a time,
// re-checking link liveness after every unit. A link that never forms is
// "not sent", not an error; a link that drops mid-stream stops delivery at
// that exact unit and the partial result is reported, never auto-retried.
// Whenever wireless delivery did not complete, the wired transport is the
// unconditional fallback and needs no handshake.
//
// Nothing in this package persists anything; the only observable effect
// is the sequence of keystroke units written to a transport.
package keyboard
