// Package probe checks that an emulated port pair actually carries data by
// opening both ends with go.bug.st/serial and echoing a payload across.
package probe

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"time"

	"go.bug.st/serial"

	"github.com/sa6mwa/com0com"
)

var (
	ErrTimeout  = errors.New("probe: timed out waiting for data")
	ErrMismatch = errors.New("probe: received data differs from sent")
)

// pollInterval bounds a single Read so the deadline and ctx are checked
// regularly.
const pollInterval = 50 * time.Millisecond

// Port is the subset of serial.Port the probe uses.
type Port interface {
	io.ReadWriteCloser
	ResetInputBuffer() error
	SetReadTimeout(t time.Duration) error
}

type Opener interface {
	Open(name string, baudRate int) (Port, error)
}

type OpenerFunc func(name string, baudRate int) (Port, error)

func (f OpenerFunc) Open(name string, baudRate int) (Port, error) {
	return f(name, baudRate)
}

// Serial opens real ports at 8N1.
var Serial Opener = OpenerFunc(openSerial)

func openSerial(name string, baudRate int) (Port, error) {
	mode := &serial.Mode{
		BaudRate: baudRate,
		DataBits: 8,
		Parity:   serial.NoParity,
		StopBits: serial.OneStopBit,
	}
	p, err := serial.Open(name, mode)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", name, err)
	}
	return p, nil
}

type Config struct {
	BaudRate int
	// Timeout is how long each direction may take.
	Timeout time.Duration
	Payload []byte
}

// Transfer is the outcome of sending the payload one way.
type Transfer struct {
	From     string        `json:"from" yaml:"from"`
	To       string        `json:"to" yaml:"to"`
	Sent     int           `json:"sent" yaml:"sent"`
	Received int           `json:"received" yaml:"received"`
	Elapsed  time.Duration `json:"elapsed" yaml:"elapsed"`
	Error    string        `json:"error,omitempty" yaml:"error,omitempty"`
}

func (t Transfer) OK() bool {
	return t.Error == ""
}

// Loopback opens a and b, sends cfg.Payload from a to b and then from b to
// a. Both directions are always attempted; the returned error joins the
// failures.
func Loopback(ctx context.Context, opener Opener, a, b string, cfg Config) ([]Transfer, error) {
	if len(cfg.Payload) == 0 {
		return nil, errors.New("probe: empty payload")
	}
	if cfg.Timeout <= 0 {
		return nil, fmt.Errorf("probe: invalid timeout %s", cfg.Timeout)
	}

	pa, err := opener.Open(a, cfg.BaudRate)
	if err != nil {
		return nil, err
	}
	defer pa.Close()
	pb, err := opener.Open(b, cfg.BaudRate)
	if err != nil {
		return nil, err
	}
	defer pb.Close()

	for _, p := range []Port{pa, pb} {
		if err := p.SetReadTimeout(min(pollInterval, cfg.Timeout)); err != nil {
			return nil, fmt.Errorf("probe: set read timeout: %w", err)
		}
		if err := p.ResetInputBuffer(); err != nil {
			return nil, fmt.Errorf("probe: reset input buffer: %w", err)
		}
	}

	var errs []error
	transfers := make([]Transfer, 0, 2)
	for _, leg := range []struct {
		from, to string
		src, dst Port
	}{
		{a, b, pa, pb},
		{b, a, pb, pa},
	} {
		t, err := transfer(ctx, leg.src, leg.dst, cfg)
		t.From, t.To = leg.from, leg.to
		if err != nil {
			t.Error = err.Error()
			errs = append(errs, fmt.Errorf("%s -> %s: %w", leg.from, leg.to, err))
		}
		transfers = append(transfers, t)
	}
	return transfers, errors.Join(errs...)
}

func transfer(ctx context.Context, src, dst Port, cfg Config) (t Transfer, err error) {
	start := time.Now()
	defer func() { t.Elapsed = time.Since(start) }()

	n, err := src.Write(cfg.Payload)
	t.Sent = n
	if err != nil {
		return t, err
	}

	deadline := start.Add(cfg.Timeout)
	got := make([]byte, 0, len(cfg.Payload))
	buf := make([]byte, len(cfg.Payload))
	for len(got) < len(cfg.Payload) {
		if err := ctx.Err(); err != nil {
			t.Received = len(got)
			return t, err
		}
		if time.Now().After(deadline) {
			t.Received = len(got)
			return t, fmt.Errorf("%w: %d of %d bytes", ErrTimeout, len(got), len(cfg.Payload))
		}
		n, err := dst.Read(buf[:len(cfg.Payload)-len(got)])
		got = append(got, buf[:n]...)
		if err != nil {
			t.Received = len(got)
			return t, err
		}
	}
	t.Received = len(got)
	if !bytes.Equal(got, cfg.Payload) {
		return t, ErrMismatch
	}
	return t, nil
}

// PortPath returns the name to open for port id: its PortName when one is
// set, otherwise the com0com device name itself. "COM#" asks com0com to pick
// a free COM name at install time and is not a usable name.
func PortPath(id string, params com0com.Params) string {
	if name, ok := params.Get(com0com.ParamPortName); ok && name != "" && name != "COM#" {
		return name
	}
	return id
}

var listPorts = serial.GetPortsList

// Visible returns the serial ports the operating system enumerates, sorted.
func Visible() ([]string, error) {
	names, err := listPorts()
	if err != nil {
		return nil, err
	}
	sort.Strings(names)
	return names, nil
}
