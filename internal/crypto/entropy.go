package crypto

import "crypto/rand"

// EntropySource supplies cryptographically suitable randomness. On the
// device the hardware RNG is a scarce resource that must be primed before
// use and released afterwards; Enable and Disable express that discipline.
type EntropySource interface {
	Enable()
	Disable()
	Fill(b []byte) error
}

type systemEntropy struct{}

// SystemEntropy returns the host entropy source backed by crypto/rand.
// Enable and Disable are no-ops there.
func SystemEntropy() EntropySource {
	return systemEntropy{}
}

func (systemEntropy) Enable()  {}
func (systemEntropy) Disable() {}

func (systemEntropy) Fill(b []byte) error {
	_, err := rand.Read(b)
	return err
}
