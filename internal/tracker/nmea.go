package tracker

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"go.bug.st/serial.v1"
)

// uere approximates the receiver's user equivalent range error in meters;
// HDOP times UERE gives a horizontal accuracy estimate.
const uere = 5.0

// NMEASource reads NMEA 0183 sentences ($xxGGA and $xxRMC) from a GPS
// receiver.
type NMEASource struct {
	open func() (io.ReadCloser, error)
	now  func() time.Time
}

func NewNMEASource(r io.Reader) *NMEASource {
	return &NMEASource{
		open: func() (io.ReadCloser, error) { return io.NopCloser(r), nil },
		now:  time.Now,
	}
}

// NewSerialSource opens portName (e.g. /dev/ttyUSB0) when Watch is called.
func NewSerialSource(portName string, baudRate int) *NMEASource {
	return &NMEASource{
		open: func() (io.ReadCloser, error) {
			return serial.Open(portName, &serial.Mode{
				BaudRate: baudRate,
				DataBits: 8,
				Parity:   serial.NoParity,
				StopBits: serial.OneStopBit,
			})
		},
		now: time.Now,
	}
}

func (s *NMEASource) Watch(ctx context.Context, opts WatchOptions) (<-chan Fix, <-chan error) {
	fixes := make(chan Fix)
	errs := make(chan error, 1)
	go s.run(ctx, opts, fixes, errs)
	return fixes, errs
}

func (s *NMEASource) run(ctx context.Context, opts WatchOptions, fixes chan<- Fix, errs chan<- error) {
	defer close(errs)
	defer close(fixes)

	report := func(err error) {
		select {
		case errs <- err:
		case <-ctx.Done():
		}
	}

	rc, err := s.open()
	if err != nil {
		report(classifyOpenError(err))
		return
	}
	defer rc.Close()

	lines := make(chan string)
	readErr := make(chan error, 1)
	go func() {
		defer close(lines)
		sc := bufio.NewScanner(rc)
		for sc.Scan() {
			select {
			case lines <- sc.Text():
			case <-ctx.Done():
				return
			}
		}
		readErr <- sc.Err()
	}()

	var timeout <-chan time.Time
	var timer *time.Timer
	if opts.Timeout > 0 {
		timer = time.NewTimer(opts.Timeout)
		defer timer.Stop()
		timeout = timer.C
	}

	p := &nmeaParser{now: s.now}
	var (
		pending   *nmeaFix
		lastEpoch string
	)

	emit := func(f nmeaFix) bool {
		lastEpoch = f.epoch
		if opts.MaximumAge > 0 && s.now().Sub(f.Timestamp) > opts.MaximumAge {
			return true
		}
		select {
		case fixes <- f.Fix:
		case <-ctx.Done():
			return false
		}
		if timer != nil {
			timer.Reset(opts.Timeout)
		}
		return true
	}

	for {
		select {
		case <-ctx.Done():
			return

		case line, ok := <-lines:
			if !ok {
				var cause error
				select {
				case cause = <-readErr:
				default:
				}
				if ctx.Err() != nil {
					return
				}
				if pending != nil && !emit(*pending) {
					return
				}
				if cause == nil {
					cause = io.EOF
				}
				report(fmt.Errorf("%w: %v", ErrPositionUnavailable, cause))
				return
			}

			cur, ok := p.parse(line)
			if !ok || cur.epoch == lastEpoch {
				continue
			}

			// GGA and RMC of one epoch are held until both arrived or the
			// next epoch starts, so the fix gets RMC's date and GGA's HDOP.
			if pending != nil && pending.epoch == cur.epoch {
				if pending.kind == cur.kind {
					continue
				}
				merged := mergeEpoch(*pending, cur)
				pending = nil
				if !emit(merged) {
					return
				}
				continue
			}
			if pending != nil && !emit(*pending) {
				return
			}
			pending = &cur

		case <-timeout:
			select {
			case errs <- ErrTimeout:
			default:
			}
			timer.Reset(opts.Timeout)
		}
	}
}

func classifyOpenError(err error) error {
	var portErr *serial.PortError
	if errors.As(err, &portErr) && portErr.Code() == serial.PermissionDenied {
		return fmt.Errorf("%w: %v", ErrPermissionDenied, err)
	}
	if errors.Is(err, os.ErrPermission) {
		return fmt.Errorf("%w: %v", ErrPermissionDenied, err)
	}
	return fmt.Errorf("%w: %v", ErrPositionUnavailable, err)
}

// nmeaFix is a fix decoded from a single sentence. epoch is the raw UTC
// time field shared by every sentence of one receiver cycle.
type nmeaFix struct {
	Fix
	epoch string
	kind  string
}

// mergeEpoch combines a GGA and an RMC fix of the same epoch.
func mergeEpoch(a, b nmeaFix) nmeaFix {
	gga, rmc := a, b
	if a.kind == "RMC" {
		gga, rmc = b, a
	}
	merged := gga
	merged.Timestamp = rmc.Timestamp
	return merged
}

type nmeaParser struct {
	now func() time.Time
}

// parse returns a fix for valid GGA or RMC sentences and false for anything
// else, including sentences reporting no satellite fix.
func (p *nmeaParser) parse(line string) (nmeaFix, bool) {
	body, ok := checkSentence(strings.TrimSpace(line))
	if !ok {
		return nmeaFix{}, false
	}

	fields := strings.Split(body, ",")
	if len(fields[0]) != 5 {
		return nmeaFix{}, false
	}

	var (
		fix  Fix
		kind = fields[0][2:]
	)
	switch kind {
	case "GGA":
		fix, ok = p.parseGGA(fields)
	case "RMC":
		fix, ok = p.parseRMC(fields)
	default:
		return nmeaFix{}, false
	}
	if !ok {
		return nmeaFix{}, false
	}
	return nmeaFix{Fix: fix, epoch: fields[1], kind: kind}, true
}

// $GPGGA,time,lat,N,lon,E,quality,sats,hdop,alt,M,...
func (p *nmeaParser) parseGGA(f []string) (Fix, bool) {
	if len(f) < 9 || f[6] == "" || f[6] == "0" {
		return Fix{}, false
	}

	lat, ok := parseCoordinate(f[2], f[3])
	if !ok {
		return Fix{}, false
	}
	lng, ok := parseCoordinate(f[4], f[5])
	if !ok {
		return Fix{}, false
	}

	now := p.now().UTC()
	ts, ok := parseClock(f[1], now)
	if !ok {
		return Fix{}, false
	}
	// GGA carries no date; a time ahead of the clock belongs to yesterday.
	if ts.After(now.Add(12 * time.Hour)) {
		ts = ts.AddDate(0, 0, -1)
	}

	fix := Fix{Latitude: lat, Longitude: lng, Timestamp: ts}
	if hdop, err := strconv.ParseFloat(f[8], 64); err == nil && hdop > 0 {
		fix.Accuracy = hdop * uere
	}
	return fix, true
}

// $GPRMC,time,status,lat,N,lon,E,speed,course,ddmmyy,...
func (p *nmeaParser) parseRMC(f []string) (Fix, bool) {
	if len(f) < 10 || f[2] != "A" {
		return Fix{}, false
	}

	lat, ok := parseCoordinate(f[3], f[4])
	if !ok {
		return Fix{}, false
	}
	lng, ok := parseCoordinate(f[5], f[6])
	if !ok {
		return Fix{}, false
	}

	date, err := time.Parse("020106", f[9])
	if err != nil {
		return Fix{}, false
	}
	ts, ok := parseClock(f[1], date)
	if !ok {
		return Fix{}, false
	}

	// RMC carries no precision figure.
	return Fix{Latitude: lat, Longitude: lng, Timestamp: ts}, true
}

// checkSentence strips the leading '$' and verifies the optional checksum.
func checkSentence(s string) (string, bool) {
	if !strings.HasPrefix(s, "$") {
		return "", false
	}
	s = s[1:]

	star := strings.LastIndexByte(s, '*')
	if star < 0 {
		return s, true
	}

	body, sum := s[:star], s[star+1:]
	want, err := strconv.ParseUint(sum, 16, 8)
	if err != nil {
		return "", false
	}

	var got byte
	for i := 0; i < len(body); i++ {
		got ^= body[i]
	}
	return body, got == byte(want)
}

// parseCoordinate converts ddmm.mmmm / dddmm.mmmm plus hemisphere to degrees.
func parseCoordinate(value, hemisphere string) (float64, bool) {
	if value == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, false
	}

	deg := math.Floor(v / 100)
	deg += (v - deg*100) / 60

	switch hemisphere {
	case "N", "E":
	case "S", "W":
		deg = -deg
	default:
		return 0, false
	}
	return deg, true
}

// parseClock applies hhmmss(.sss) to the date of day.
func parseClock(value string, day time.Time) (time.Time, bool) {
	if len(value) < 6 {
		return time.Time{}, false
	}
	hh, err1 := strconv.Atoi(value[0:2])
	mm, err2 := strconv.Atoi(value[2:4])
	secs, err3 := strconv.ParseFloat(value[4:], 64)
	if err1 != nil || err2 != nil || err3 != nil {
		return time.Time{}, false
	}

	whole := math.Floor(secs)
	nanos := int(math.Round((secs - whole) * 1e9))
	y, m, d := day.Date()
	return time.Date(y, m, d, hh, mm, int(whole), nanos, time.UTC), true
}
