// Package storage provides the storage-medium adapter the vault lifecycle
// reads and writes through.
//
// Paths are slash-separated and rooted at the medium's mount point ("/" is
// the medium root), mirroring how the device addresses its SD card. The
// file-backed implementation maps them onto a host directory.
//
// Directory listings are cached; callers that write new content must
// invalidate the containing directory explicitly so a subsequent browse
// reflects the change. Writes are atomic: data goes to a temp file that is
// renamed over the target, so a crash mid-write never leaves a truncated
// vault behind.
package storage
