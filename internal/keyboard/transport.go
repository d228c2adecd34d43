package keyboard

// Transport is the emulated-keyboard capability the platform provides.
// The HID report format behind WriteUnit is the transport's business.
type Transport interface {
	SetLayout(layout string)
	SetName(name string)
	Start() error
	Stop()
	IsLinked() bool
	WriteUnit(b byte) error
}

// Advertiser is implemented by wireless transports that can actively
// re-announce presence after losing a receiver.
type Advertiser interface {
	Advertise()
}

// KeyReleaser is implemented by transports that can release stuck
// modifier or key state before a fresh stream begins.
type KeyReleaser interface {
	ReleaseKeys()
}
