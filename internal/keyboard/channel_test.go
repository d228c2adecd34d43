package keyboard

import (
	"bytes"
	"testing"
	"time"
)

type fakeTransport struct {
	linked     bool
	dropAfter  int // drop the link after this many units; -1 means never
	written    []byte
	advertised int
	released   int
	layout     string
	name       string
	started    bool
}

func newFakeTransport(linked bool) *fakeTransport {
	return &fakeTransport{linked: linked, dropAfter: -1}
}

func (t *fakeTransport) SetLayout(layout string) { t.layout = layout }
func (t *fakeTransport) SetName(name string)     { t.name = name }
func (t *fakeTransport) Start() error            { t.started = true; return nil }
func (t *fakeTransport) Stop()                   { t.started = false }
func (t *fakeTransport) IsLinked() bool          { return t.linked }
func (t *fakeTransport) Advertise()              { t.advertised++ }
func (t *fakeTransport) ReleaseKeys()            { t.released++ }

func (t *fakeTransport) WriteUnit(b byte) error {
	t.written = append(t.written, b)
	if t.dropAfter >= 0 && len(t.written) >= t.dropAfter {
		t.linked = false
	}
	return nil
}

func newTestChannel(cfg Config, wireless, wired Transport) *Channel {
	ch := NewChannel(cfg, wireless, wired)
	ch.sleep = func(time.Duration) {}
	return ch
}

func TestSendWirelessComplete(t *testing.T) {
	wireless := newFakeTransport(true)
	wired := newFakeTransport(true)
	ch := newTestChannel(Config{WirelessEnabled: true, Layout: "en_US", DeviceName: "Vault"}, wireless, wired)

	r := ch.Send("secret")
	if !r.Complete() || r.Transport != "wireless" {
		t.Fatalf("Expected complete wireless delivery, got %+v", r)
	}
	if !bytes.Equal(wireless.written, []byte("secret")) {
		t.Errorf("Wireless got %q", wireless.written)
	}
	if len(wired.written) != 0 {
		t.Errorf("Wired should be untouched, got %q", wired.written)
	}
	if wireless.released == 0 {
		t.Error("Stuck key state should be released before streaming")
	}
	if wireless.layout != "en_US" || wireless.name != "Vault" {
		t.Errorf("Layout/name not applied: %q/%q", wireless.layout, wireless.name)
	}
}

func TestSendFallsBackWhenNoLink(t *testing.T) {
	wireless := newFakeTransport(false)
	wired := newFakeTransport(true)
	ch := newTestChannel(Config{WirelessEnabled: true}, wireless, wired)

	r := ch.Send("secret")
	if !r.Complete() || r.Transport != "wired" {
		t.Fatalf("Expected complete wired delivery, got %+v", r)
	}
	if len(wireless.written) != 0 {
		t.Errorf("No keystrokes should hit the wireless transport, got %q", wireless.written)
	}
	if wireless.advertised == 0 {
		t.Error("Channel should re-announce presence before giving up")
	}
	if !bytes.Equal(wired.written, []byte("secret")) {
		t.Errorf("Wired got %q", wired.written)
	}
}

func TestSendWirelessDisabled(t *testing.T) {
	wireless := newFakeTransport(true)
	wired := newFakeTransport(true)
	ch := newTestChannel(Config{WirelessEnabled: false}, wireless, wired)

	r := ch.Send("pw")
	if r.Transport != "wired" {
		t.Fatalf("Expected wired delivery, got %+v", r)
	}
	if len(wireless.written) != 0 {
		t.Error("Disabled wireless transport should never be written")
	}
}

func TestSendStopsAtLinkDrop(t *testing.T) {
	wireless := newFakeTransport(true)
	wireless.dropAfter = 3
	ch := newTestChannel(Config{WirelessEnabled: true}, wireless, nil)

	r := ch.Send("longpassword")
	if r.Complete() {
		t.Fatal("Delivery should be incomplete after link drop")
	}
	// Units 1..3 written, nothing beyond the drop point.
	if len(wireless.written) != 3 {
		t.Errorf("Expected exactly 3 units on wireless, got %d", len(wireless.written))
	}
}

func TestSendLinkDropFallsBackToWired(t *testing.T) {
	wireless := newFakeTransport(true)
	wireless.dropAfter = 2
	wired := newFakeTransport(true)
	ch := newTestChannel(Config{WirelessEnabled: true}, wireless, wired)

	r := ch.Send("abcdef")
	if !r.Complete() || r.Transport != "wired" {
		t.Fatalf("Expected wired to complete delivery, got %+v", r)
	}
	if !bytes.Equal(wired.written, []byte("abcdef")) {
		t.Errorf("Wired should carry the full string, got %q", wired.written)
	}
}

func TestSendLinkFormsDuringWait(t *testing.T) {
	wireless := newFakeTransport(false)
	ch := NewChannel(Config{WirelessEnabled: true}, wireless, nil)

	// Link comes up after a few polls.
	polls := 0
	ch.sleep = func(time.Duration) {
		polls++
		if polls == 3 {
			wireless.linked = true
		}
	}

	r := ch.Send("ok")
	if !r.Complete() || r.Transport != "wireless" {
		t.Fatalf("Expected wireless delivery after link wait, got %+v", r)
	}
}

func TestSendChunked(t *testing.T) {
	wired := newFakeTransport(true)
	ch := newTestChannel(Config{ChunkSize: 4, ChunkDelay: time.Millisecond}, nil, wired)

	delays := 0
	ch.sleep = func(time.Duration) { delays++ }

	r := ch.SendChunked("0123456789")
	if !r.Complete() {
		t.Fatalf("Expected complete chunked delivery, got %+v", r)
	}
	if !bytes.Equal(wired.written, []byte("0123456789")) {
		t.Errorf("Wired got %q", wired.written)
	}
	// Three chunks, delays only between them.
	if delays != 2 {
		t.Errorf("Expected 2 inter-chunk delays, got %d", delays)
	}
}

func TestSendChunkedZeroConfigStillPaces(t *testing.T) {
	wired := newFakeTransport(true)
	ch := NewChannel(Config{ChunkSize: 4}, nil, wired)

	var delays []time.Duration
	ch.sleep = func(d time.Duration) { delays = append(delays, d) }

	r := ch.SendChunked("0123456789")
	if !r.Complete() {
		t.Fatalf("Expected complete chunked delivery, got %+v", r)
	}
	if len(delays) != 2 {
		t.Fatalf("Expected 2 inter-chunk delays, got %d", len(delays))
	}
	// An unset delay means the default pacing, not no pacing.
	for _, d := range delays {
		if d != DefaultChunkDelay {
			t.Errorf("Expected default chunk delay, got %v", d)
		}
	}
}

func TestSendEmptyStringIsComplete(t *testing.T) {
	wired := newFakeTransport(true)
	ch := newTestChannel(Config{}, nil, wired)

	if r := ch.Send(""); !r.Complete() {
		t.Errorf("Empty send should be complete, got %+v", r)
	}
	if r := ch.SendChunked(""); !r.Complete() {
		t.Errorf("Empty chunked send should be complete, got %+v", r)
	}
	if len(wired.written) != 0 {
		t.Errorf("Nothing should be written for an empty string, got %q", wired.written)
	}
}

func TestSendChunkedStopsAtFailedChunk(t *testing.T) {
	wireless := newFakeTransport(true)
	wireless.dropAfter = 5
	ch := newTestChannel(Config{WirelessEnabled: true, ChunkSize: 4}, wireless, nil)

	r := ch.SendChunked("0123456789")
	if r.Complete() {
		t.Fatal("Chunked delivery should stop at the failed chunk")
	}
	// First chunk (4 units) complete, second chunk stops at the drop.
	if r.Units != 5 {
		t.Errorf("Expected 5 units before stopping, got %d", r.Units)
	}
}

func TestWriterTransport(t *testing.T) {
	var buf bytes.Buffer
	tr := NewWriterTransport(&buf)

	if err := tr.WriteUnit('x'); err == nil {
		t.Error("WriteUnit before Start should fail")
	}

	if err := tr.Start(); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	if !tr.IsLinked() {
		t.Error("Started wired transport should report linked")
	}
	for _, b := range []byte("pw") {
		if err := tr.WriteUnit(b); err != nil {
			t.Fatalf("WriteUnit failed: %v", err)
		}
	}
	if buf.String() != "pw" {
		t.Errorf("Writer got %q", buf.String())
	}
}
