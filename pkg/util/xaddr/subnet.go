package xaddr

import (
	"fmt"
	"iter"
	"strconv"
)

// Subnet 是 (规范网络前缀, 前缀位长) 对。
// 不变量：prefix 的主机位恒为零，由构造函数保证；
// 前缀地址与区间最高地址在构造时一次性物化，此后不再计算。
// 应通过 [NewSubnet] 或 [Address.Subnet] 构造，零值不可用。
type Subnet struct {
	prefix  Raw
	bits    int
	highest Raw
}

// NewSubnet 以 raw 所在网络为前缀构造子网。
// raw 的主机位会先被清零（规范化），因此同一网络中的任意地址
// 构造出的子网相等。raw 无效返回 ErrVersion；
// bits 超出 [0, 版本位宽] 返回 ErrRange。
func NewSubnet(raw Raw, bits int) (*Subnet, error) {
	if !raw.Valid() {
		return nil, fmt.Errorf("%w: zero Raw", ErrVersion)
	}
	if bits < 0 || bits > raw.Version().Bits() {
		return nil, fmt.Errorf("%w: prefix length %d for %s", ErrRange, bits, raw.Version())
	}
	return newSubnetCanonical(raw.Mask(bits), bits)
}

// newSubnetCanonical 是内部构造路径，要求 prefix 已经是规范网络地址。
// 主机位非零时返回 ErrNotCanonical；公开 API 先行规范化，不会触达。
func newSubnetCanonical(prefix Raw, bits int) (*Subnet, error) {
	if prefix != prefix.Mask(bits) {
		return nil, fmt.Errorf("%w: %s/%d", ErrNotCanonical, prefix, bits)
	}
	return &Subnet{
		prefix:  prefix,
		bits:    bits,
		highest: prefix.HighestHost(bits),
	}, nil
}

// Version 返回子网的地址版本。
func (s *Subnet) Version() Version {
	return s.prefix.Version()
}

// Prefix 返回规范网络地址（区间最低地址）。
func (s *Subnet) Prefix() Address {
	return Address{raw: s.prefix}
}

// Highest 返回区间最高地址（主机位全一）。
func (s *Subnet) Highest() Address {
	return Address{raw: s.highest}
}

// Bits 返回前缀位长。
func (s *Subnet) Bits() int {
	return s.bits
}

// Contains 报告 addr 是否落在子网区间内。
// 版本不同恒为 false。
func (s *Subnet) Contains(addr Address) bool {
	if addr.Version() != s.prefix.Version() {
		return false
	}
	raw := addr.Raw()
	return s.prefix.Compare(raw) <= 0 && raw.Compare(s.highest) <= 0
}

// Overlaps 报告两个子网的闭区间 [prefix, highest] 是否相交。
// 版本不同恒为 false。
func (s *Subnet) Overlaps(other *Subnet) bool {
	if other == nil || other.Version() != s.Version() {
		return false
	}
	return s.prefix.Compare(other.highest) <= 0 && other.prefix.Compare(s.highest) <= 0
}

// All 返回从 Prefix 到 Highest（含两端）的惰性有限地址序列。
// 序列可重复迭代，每次从头开始。
//
// 注意：大子网（如 IPv6 /8）的序列长度是天文数字，
// 消费上界由调用方自行控制。
func (s *Subnet) All() iter.Seq[Address] {
	return func(yield func(Address) bool) {
		cur := s.prefix
		for {
			if !yield(Address{raw: cur}) {
				return
			}
			if cur == s.highest {
				return
			}
			cur = cur.Next()
		}
	}
}

// Text 返回规范 CIDR 字符串 "prefix/bits"，upper 控制十六进制大小写。
func (s *Subnet) Text(upper bool) string {
	return s.prefix.Text(upper) + "/" + strconv.Itoa(s.bits)
}

// String 返回小写的规范 CIDR 字符串。
func (s *Subnet) String() string {
	return s.Text(false)
}
