package keyboard

import "time"

const (
	// DefaultLinkWait bounds the wireless connection wait. Kept short so a
	// missing receiver degrades to the wired path quickly.
	DefaultLinkWait = 500 * time.Millisecond

	// DefaultChunkSize and DefaultChunkDelay pace long strings so slow
	// receivers do not drop keystrokes.
	DefaultChunkSize  = 64
	DefaultChunkDelay = 100 * time.Millisecond

	linkPollInterval = 10 * time.Millisecond
)

// Config holds the channel settings, typically sourced from the settings
// store with config-file defaults.
type Config struct {
	WirelessEnabled bool
	Layout          string
	DeviceName      string
	LinkWait        time.Duration
	ChunkSize       int
	ChunkDelay      time.Duration
}

func (c Config) withDefaults() Config {
	if c.LinkWait <= 0 {
		c.LinkWait = DefaultLinkWait
	}
	if c.ChunkSize <= 0 {
		c.ChunkSize = DefaultChunkSize
	}
	if c.ChunkDelay <= 0 {
		c.ChunkDelay = DefaultChunkDelay
	}
	return c
}

// Result describes one delivery attempt.
type Result struct {
	Transport string // "wireless", "wired", or "" when nothing was written
	Units     int    // units actually written
	Total     int    // units requested
}

// Complete reports whether the whole string was delivered. A zero-length
// string is vacuously complete.
func (r Result) Complete() bool { return r.Units == r.Total }

// Channel delivers plaintext strings as keystrokes, wireless first with a
// wired fallback.
type Channel struct {
	cfg      Config
	wireless Transport
	wired    Transport

	sleep func(time.Duration)
}

// NewChannel creates a delivery channel. Either transport may be nil when
// the platform lacks it.
func NewChannel(cfg Config, wireless, wired Transport) *Channel {
	return &Channel{
		cfg:      cfg.withDefaults(),
		wireless: wireless,
		wired:    wired,
		sleep:    time.Sleep,
	}
}

// Send types s through the preferred transport. An incomplete wireless
// attempt (disabled, no link, or mid-stream drop) falls through to the
// wired transport, which is expected to always be ready.
func (c *Channel) Send(s string) Result {
	var wireless Result
	if c.cfg.WirelessEnabled && c.wireless != nil {
		wireless = c.sendWireless(s)
		if wireless.Complete() {
			return wireless
		}
	}

	wired := c.sendWired(s)
	if wired.Transport == "" && wireless.Units > 0 {
		// No wired path available; report the partial wireless delivery.
		return wireless
	}
	return wired
}

// SendChunked splits s into fixed-size pieces and delivers each through
// Send, pausing between chunks to respect the receiver's typing rate. It
// stops at the first chunk that does not go out in full.
func (c *Channel) SendChunked(s string) Result {
	total := len(s)
	sent := 0
	transport := ""

	for sent < total {
		end := sent + c.cfg.ChunkSize
		if end > total {
			end = total
		}

		r := c.Send(s[sent:end])
		sent += r.Units
		transport = r.Transport
		if !r.Complete() {
			break
		}
		if sent < total {
			c.sleep(c.cfg.ChunkDelay)
		}
	}

	return Result{Transport: transport, Units: sent, Total: total}
}

func (c *Channel) sendWireless(s string) Result {
	t := c.wireless
	t.SetLayout(c.cfg.Layout)
	t.SetName(c.cfg.DeviceName)
	if err := t.Start(); err != nil {
		return Result{Total: len(s)}
	}

	if !t.IsLinked() {
		// Re-announce presence in case the receiver forgot us, then give
		// the link a bounded moment to form.
		if adv, ok := t.(Advertiser); ok {
			adv.Advertise()
		}
		for waited := time.Duration(0); waited < c.cfg.LinkWait && !t.IsLinked(); waited += linkPollInterval {
			c.sleep(linkPollInterval)
		}
	}
	if !t.IsLinked() {
		// No link within the window: not sent, not an error.
		return Result{Total: len(s)}
	}

	if rel, ok := t.(KeyReleaser); ok {
		rel.ReleaseKeys()
	}
	units := c.stream(t, s, true)
	return Result{Transport: "wireless", Units: units, Total: len(s)}
}

func (c *Channel) sendWired(s string) Result {
	if c.wired == nil {
		return Result{Total: len(s)}
	}
	t := c.wired
	t.SetLayout(c.cfg.Layout)
	if err := t.Start(); err != nil {
		return Result{Total: len(s)}
	}
	units := c.stream(t, s, false)
	return Result{Transport: "wired", Units: units, Total: len(s)}
}

// stream writes s one unit at a time. With liveness checking on, the link
// state is re-read after every unit and a drop stops the stream at that
// exact point.
func (c *Channel) stream(t Transport, s string, checkLink bool) int {
	units := 0
	for i := 0; i < len(s); i++ {
		if err := t.WriteUnit(s[i]); err != nil {
			break
		}
		units++
		if checkLink && !t.IsLinked() {
			break
		}
	}
	return units
}
