package tracker

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	sampleGGA = "$GPGGA,123519,4807.038,N,01131.000,E,1,08,0.9,545.4,M,46.9,M,,*47"
	sampleRMC = "$GPRMC,123519,A,4807.038,N,01131.000,E,022.4,084.4,230394,003.1,W*6A"
)

func fixedClock(ts string) func() time.Time {
	t, err := time.Parse(time.RFC3339, ts)
	if err != nil {
		panic(err)
	}
	return func() time.Time { return t }
}

func TestNMEAParser_GGA(t *testing.T) {
	p := &nmeaParser{now: fixedClock("1994-03-23T12:35:30Z")}

	fix, ok := p.parse(sampleGGA)
	require.True(t, ok)
	assert.InDelta(t, 48.1173, fix.Latitude, 1e-4)
	assert.InDelta(t, 11.516667, fix.Longitude, 1e-4)
	assert.InDelta(t, 4.5, fix.Accuracy, 1e-9)
	assert.Equal(t, time.Date(1994, 3, 23, 12, 35, 19, 0, time.UTC), fix.Timestamp)
}

func TestNMEAParser_RMCUsesSentenceDate(t *testing.T) {
	p := &nmeaParser{now: fixedClock("2030-01-01T00:00:00Z")}

	fix, ok := p.parse(sampleRMC)
	require.True(t, ok)
	assert.InDelta(t, 48.1173, fix.Latitude, 1e-4)
	assert.Equal(t, time.Date(1994, 3, 23, 12, 35, 19, 0, time.UTC), fix.Timestamp)
	assert.Zero(t, fix.Accuracy)
}

func TestNMEAParser_GGAJustBeforeMidnight(t *testing.T) {
	p := &nmeaParser{now: fixedClock("1994-03-24T00:00:05Z")}

	fix, ok := p.parse("$GPGGA,235959,4807.038,S,01131.000,W,1,08,0.9,545.4,M,46.9,M,,")
	require.True(t, ok)
	assert.Equal(t, time.Date(1994, 3, 23, 23, 59, 59, 0, time.UTC), fix.Timestamp)
	assert.Less(t, fix.Latitude, 0.0)
	assert.Less(t, fix.Longitude, 0.0)
}

func TestNMEAParser_Rejects(t *testing.T) {
	p := &nmeaParser{now: time.Now}

	cases := map[string]string{
		"bad checksum":  strings.Replace(sampleGGA, "*47", "*48", 1),
		"no fix":        "$GPGGA,123519,4807.038,N,01131.000,E,0,00,,,M,,M,,",
		"void rmc":      "$GPRMC,123519,V,4807.038,N,01131.000,E,022.4,084.4,230394,003.1,W",
		"other type":    "$GPGSV,2,1,08,01,40,083,46,02,17,308,41,12,07,344,39,14,22,228,45",
		"no dollar":     "GPGGA,123519,4807.038,N,01131.000,E,1,08,0.9,545.4,M,46.9,M,,",
		"bad hemi":      "$GPGGA,123519,4807.038,X,01131.000,E,1,08,0.9,545.4,M,46.9,M,,",
		"empty":         "",
		"missing coord": "$GPGGA,123519,,N,01131.000,E,1,08,0.9,545.4,M,46.9,M,,",
	}
	for name, line := range cases {
		t.Run(name, func(t *testing.T) {
			_, ok := p.parse(line)
			assert.False(t, ok)
		})
	}
}

func drain(t *testing.T, fixes <-chan Fix, errs <-chan error) ([]Fix, []error) {
	t.Helper()
	var gotFixes []Fix
	var gotErrs []error
	deadline := time.After(2 * time.Second)
	for fixes != nil || errs != nil {
		select {
		case f, ok := <-fixes:
			if !ok {
				fixes = nil
				continue
			}
			gotFixes = append(gotFixes, f)
		case err, ok := <-errs:
			if !ok {
				errs = nil
				continue
			}
			gotErrs = append(gotErrs, err)
		case <-deadline:
			t.Fatal("watch did not finish")
		}
	}
	return gotFixes, gotErrs
}

func TestNMEASource_WatchMergesEpochAndEndsOnEOF(t *testing.T) {
	src := NewNMEASource(strings.NewReader(sampleGGA + "\r\n" + sampleRMC + "\r\n"))
	src.now = fixedClock("1994-03-23T12:35:25Z")

	fixes, errs := src.Watch(context.Background(), DefaultWatchOptions())
	gotFixes, gotErrs := drain(t, fixes, errs)

	require.Len(t, gotFixes, 1)
	assert.InDelta(t, 4.5, gotFixes[0].Accuracy, 1e-9)
	require.Len(t, gotErrs, 1)
	assert.True(t, errors.Is(gotErrs[0], ErrPositionUnavailable))
}

func TestNMEASource_MergesRMCBeforeGGA(t *testing.T) {
	src := NewNMEASource(strings.NewReader(sampleRMC + "\r\n" + sampleGGA + "\r\n"))
	src.now = fixedClock("1994-03-23T12:35:25Z")

	fixes, errs := src.Watch(context.Background(), DefaultWatchOptions())
	gotFixes, _ := drain(t, fixes, errs)

	require.Len(t, gotFixes, 1)
	assert.InDelta(t, 4.5, gotFixes[0].Accuracy, 1e-9)
	assert.Equal(t, time.Date(1994, 3, 23, 12, 35, 19, 0, time.UTC), gotFixes[0].Timestamp)
}

func TestNMEASource_EpochsDoNotShareHDOP(t *testing.T) {
	ggaFirst := "$GPGGA,123519,4807.038,N,01131.000,E,1,08,0.9,545.4,M,46.9,M,,"
	rmcSecond := "$GPRMC,123520,A,4807.038,N,01131.000,E,022.4,084.4,230394,003.1,W"
	src := NewNMEASource(strings.NewReader(ggaFirst + "\n" + rmcSecond + "\n"))
	src.now = fixedClock("1994-03-23T12:35:25Z")

	fixes, errs := src.Watch(context.Background(), DefaultWatchOptions())
	gotFixes, _ := drain(t, fixes, errs)

	require.Len(t, gotFixes, 2)
	assert.InDelta(t, 4.5, gotFixes[0].Accuracy, 1e-9)
	assert.Zero(t, gotFixes[1].Accuracy)
	assert.Equal(t, time.Date(1994, 3, 23, 12, 35, 20, 0, time.UTC), gotFixes[1].Timestamp)
}

func TestFix_InputOmitsUnknownAccuracy(t *testing.T) {
	in := Fix{Latitude: 1, Longitude: 2, Timestamp: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}.Input()
	assert.Nil(t, in.Accuracy)
	require.NotNil(t, in.CapturedAt)

	in = Fix{Latitude: 1, Longitude: 2, Accuracy: 4.5}.Input()
	require.NotNil(t, in.Accuracy)
	assert.Equal(t, 4.5, *in.Accuracy)
	assert.Nil(t, in.CapturedAt)
}

func TestNMEASource_DropsStaleFixes(t *testing.T) {
	src := NewNMEASource(strings.NewReader(sampleGGA + "\n"))
	src.now = fixedClock("1994-03-23T12:40:00Z")

	fixes, errs := src.Watch(context.Background(), DefaultWatchOptions())
	gotFixes, _ := drain(t, fixes, errs)

	assert.Empty(t, gotFixes)
}

func TestNMEASource_ReportsTimeout(t *testing.T) {
	r, w := io.Pipe()
	defer w.Close()

	src := NewNMEASource(r)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	_, errs := src.Watch(ctx, WatchOptions{Timeout: 20 * time.Millisecond})

	select {
	case err := <-errs:
		assert.ErrorIs(t, err, ErrTimeout)
	case <-time.After(2 * time.Second):
		t.Fatal("expected timeout error")
	}
}

func TestNMEASource_OpenFailure(t *testing.T) {
	src := &NMEASource{
		open: func() (io.ReadCloser, error) { return nil, errors.New("no such device") },
		now:  time.Now,
	}

	fixes, errs := src.Watch(context.Background(), DefaultWatchOptions())
	gotFixes, gotErrs := drain(t, fixes, errs)

	assert.Empty(t, gotFixes)
	require.Len(t, gotErrs, 1)
	assert.ErrorIs(t, gotErrs[0], ErrPositionUnavailable)
}

func TestErrorMessage(t *testing.T) {
	assert.Equal(t, "", ErrorMessage(nil))
	assert.Contains(t, ErrorMessage(ErrPermissionDenied), "permission denied")
	assert.Contains(t, ErrorMessage(ErrPositionUnavailable), "unavailable")
	assert.Contains(t, ErrorMessage(ErrTimeout), "GPS signal weak")
	assert.Equal(t, "Failed to get location updates", ErrorMessage(errors.New("x")))
}
