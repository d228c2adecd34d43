// Package settings provides the persistent key-value settings store, the
// host-side analogue of the device's NVS partition.
//
// Settings keys are a closed enumeration rather than free-form strings, so
// a new setting cannot be introduced by a typo at a call site. Values are
// stored as strings in a single BBolt bucket; BBolt gives the store ACID
// updates and corruption detection for free.
package settings
