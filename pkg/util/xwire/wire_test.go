package xwire

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omeyang/ipkit/pkg/util/xaddr"
	"github.com/omeyang/ipkit/pkg/util/xcollect"
)

func TestWireRangeFrom(t *testing.T) {
	from := xaddr.MustParseAddress("2001:db8::1", xaddr.V6)
	to := xaddr.MustParseAddress("2001:db8::ff", xaddr.V6)
	r, err := xaddr.NewRange(from, to)
	require.NoError(t, err)

	w, err := WireRangeFrom(r)
	require.NoError(t, err)
	assert.Equal(t, WireRange{Start: "2001:db8::1", End: "2001:db8::ff"}, w)
}

func TestWireRangeFromZero(t *testing.T) {
	_, err := WireRangeFrom(xaddr.Range{})
	assert.ErrorIs(t, err, ErrInvalidRange)
}

func TestWireRangeToRange(t *testing.T) {
	tests := []struct {
		name    string
		in      WireRange
		ver     xaddr.Version
		want    string
		wantErr error
	}{
		{
			name: "v4",
			in:   WireRange{Start: "10.0.0.1", End: "10.0.0.9"},
			ver:  xaddr.V0,
			want: "10.0.0.1-10.0.0.9",
		},
		{
			name: "v6",
			in:   WireRange{Start: "2001:db8::", End: "2001:db8::ffff"},
			ver:  xaddr.V6,
			want: "2001:db8::-2001:db8::ffff",
		},
		{
			name: "single_address",
			in:   WireRange{Start: "192.168.1.1", End: "192.168.1.1"},
			ver:  xaddr.V4,
			want: "192.168.1.1-192.168.1.1",
		},
		{
			name:    "bad_start",
			in:      WireRange{Start: "300.0.0.1", End: "10.0.0.9"},
			ver:     xaddr.V0,
			wantErr: ErrInvalidAddress,
		},
		{
			name:    "bad_end",
			in:      WireRange{Start: "10.0.0.1", End: "nope"},
			ver:     xaddr.V0,
			wantErr: ErrInvalidAddress,
		},
		{
			name:    "forced_version_mismatch",
			in:      WireRange{Start: "10.0.0.1", End: "10.0.0.9"},
			ver:     xaddr.V6,
			wantErr: ErrInvalidAddress,
		},
		{
			name:    "inverted",
			in:      WireRange{Start: "10.0.0.9", End: "10.0.0.1"},
			ver:     xaddr.V4,
			wantErr: ErrInvalidRange,
		},
		{
			name:    "mixed_family",
			in:      WireRange{Start: "10.0.0.1", End: "2001:db8::1"},
			ver:     xaddr.V0,
			wantErr: ErrInvalidRange,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.in.ToRange(tt.ver)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestWireRangeJSONRoundTrip(t *testing.T) {
	w := WireRange{Start: "10.0.0.0", End: "10.0.0.255"}
	data, err := json.Marshal(w)
	require.NoError(t, err)
	assert.JSONEq(t, `{"start":"10.0.0.0","end":"10.0.0.255"}`, string(data))

	var back WireRange
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, w, back)
}

func TestWireRangesOf(t *testing.T) {
	c, err := xcollect.New(xaddr.V4)
	require.NoError(t, err)
	c.IngestText("10.0.0.1 10.0.0.2 192.168.1.0/24")

	got := WireRangesOf(c)
	assert.Equal(t, []WireRange{
		{Start: "10.0.0.1", End: "10.0.0.2"},
		{Start: "192.168.1.0", End: "192.168.1.255"},
	}, got)
}

func TestWireRangesOfEmpty(t *testing.T) {
	c, err := xcollect.New(xaddr.V6)
	require.NoError(t, err)
	assert.Nil(t, WireRangesOf(c))
}
