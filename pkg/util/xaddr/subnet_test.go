package xaddr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSubnetCanonicalizes(t *testing.T) {
	// 同一网络中不同主机地址构造出相等的规范子网
	s1, err := NewSubnet(mustRaw(t, "192.168.1.1", V4), 24)
	require.NoError(t, err)
	s2, err := NewSubnet(mustRaw(t, "192.168.1.200", V4), 24)
	require.NoError(t, err)

	assert.Equal(t, *s1, *s2)
	assert.Equal(t, "192.168.1.0/24", s1.String())
	assert.Equal(t, "192.168.1.0", s1.Prefix().String())
	assert.Equal(t, "192.168.1.255", s1.Highest().String())
	assert.Equal(t, 24, s1.Bits())
	assert.Equal(t, V4, s1.Version())
}

func TestNewSubnetErrors(t *testing.T) {
	_, err := NewSubnet(Raw{}, 8)
	assert.ErrorIs(t, err, ErrVersion)

	_, err = NewSubnet(mustRaw(t, "10.0.0.1", V4), -1)
	assert.ErrorIs(t, err, ErrRange)
	_, err = NewSubnet(mustRaw(t, "10.0.0.1", V4), 33)
	assert.ErrorIs(t, err, ErrRange)
	_, err = NewSubnet(mustRaw(t, "::1", V6), 129)
	assert.ErrorIs(t, err, ErrRange)
}

func TestNewSubnetCanonicalGuard(t *testing.T) {
	// 内部构造路径拒绝主机位非零的前缀；公开 API 不会触达
	_, err := newSubnetCanonical(mustRaw(t, "192.168.1.1", V4), 24)
	assert.ErrorIs(t, err, ErrNotCanonical)
}

func TestSubnetContains(t *testing.T) {
	s, err := NewSubnet(mustRaw(t, "10.1.0.0", V4), 16)
	require.NoError(t, err)

	assert.True(t, s.Contains(s.Prefix()))
	assert.True(t, s.Contains(s.Highest()))
	assert.True(t, s.Contains(MustParseAddress("10.1.200.3", V4)))
	assert.False(t, s.Contains(s.Prefix().Prev()))
	assert.False(t, s.Contains(s.Highest().Next()))
	// 版本不同恒为 false
	assert.False(t, s.Contains(MustParseAddress("::1", V6)))
}

func TestSubnetContainsV6(t *testing.T) {
	s, err := NewSubnet(mustRaw(t, "2001:db8::", V6), 32)
	require.NoError(t, err)

	assert.True(t, s.Contains(MustParseAddress("2001:db8:ffff::1", V6)))
	assert.False(t, s.Contains(MustParseAddress("2001:db9::", V6)))
	assert.False(t, s.Contains(MustParseAddress("10.0.0.1", V4)))
}

func TestSubnetOverlaps(t *testing.T) {
	s16, err := NewSubnet(mustRaw(t, "10.1.0.0", V4), 16)
	require.NoError(t, err)
	s24, err := NewSubnet(mustRaw(t, "10.1.5.0", V4), 24)
	require.NoError(t, err)
	other, err := NewSubnet(mustRaw(t, "10.2.0.0", V4), 16)
	require.NoError(t, err)
	v6, err := NewSubnet(mustRaw(t, "2001:db8::", V6), 32)
	require.NoError(t, err)

	assert.True(t, s16.Overlaps(s24), "nested subnets overlap")
	assert.True(t, s24.Overlaps(s16))
	assert.True(t, s16.Overlaps(s16))
	assert.False(t, s16.Overlaps(other), "disjoint subnets do not overlap")
	assert.False(t, s16.Overlaps(v6), "different versions never overlap")
	assert.False(t, s16.Overlaps(nil))
}

func TestSubnetAll(t *testing.T) {
	s, err := NewSubnet(mustRaw(t, "10.0.0.0", V4), 30)
	require.NoError(t, err)

	var got []string
	for a := range s.All() {
		got = append(got, a.String())
	}
	assert.Equal(t, []string{"10.0.0.0", "10.0.0.1", "10.0.0.2", "10.0.0.3"}, got)

	// 序列可重复迭代，每次从头开始
	var again []string
	for a := range s.All() {
		again = append(again, a.String())
	}
	assert.Equal(t, got, again)

	// 提前终止不影响后续迭代
	for a := range s.All() {
		if a.String() == "10.0.0.1" {
			break
		}
	}
}

func TestSubnetAllSingle(t *testing.T) {
	s, err := NewSubnet(mustRaw(t, "::1", V6), 128)
	require.NoError(t, err)

	var count int
	for range s.All() {
		count++
	}
	assert.Equal(t, 1, count)
}

func TestSubnetText(t *testing.T) {
	s, err := NewSubnet(mustRaw(t, "2001:db8:ab::", V6), 48)
	require.NoError(t, err)
	assert.Equal(t, "2001:db8:ab::/48", s.Text(false))
	assert.Equal(t, "2001:DB8:AB::/48", s.Text(true))
}
