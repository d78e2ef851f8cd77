package xwire

import (
	"fmt"
	"net/netip"

	"go4.org/netipx"

	"github.com/omeyang/ipkit/pkg/util/xaddr"
	"github.com/omeyang/ipkit/pkg/util/xcollect"
)

// ToNetip 将地址转换为 [netip.Addr]。
// 无效地址返回零值（与 netip.Addr 自身的无效语义一致）。
func ToNetip(a xaddr.Address) netip.Addr {
	raw := a.Raw()
	if b, ok := raw.As4(); ok {
		return netip.AddrFrom4(b)
	}
	if b, ok := raw.As16(); ok {
		return netip.AddrFrom16(b)
	}
	return netip.Addr{}
}

// FromNetip 将 [netip.Addr] 转换为地址。
// 拒绝无效地址和带 zone ID 的地址。
//
// IPv4-mapped IPv6 地址按其 16 字节表示作为纯 IPv6 处理，
// 不做 Unmap：本库不支持嵌入式地址形式，转换保持字面值。
func FromNetip(addr netip.Addr) (xaddr.Address, error) {
	if !addr.IsValid() {
		return xaddr.Address{}, fmt.Errorf("%w: zero netip.Addr", ErrInvalidAddress)
	}
	if addr.Zone() != "" {
		return xaddr.Address{}, fmt.Errorf("%w: zone ID is not supported: %s", ErrInvalidAddress, addr)
	}
	if addr.Is4() {
		return xaddr.AddressFrom(xaddr.RawFrom4(addr.As4()))
	}
	return xaddr.AddressFrom(xaddr.RawFrom16(addr.As16()))
}

// ToPrefix 将子网转换为 [netip.Prefix]。
func ToPrefix(s *xaddr.Subnet) netip.Prefix {
	return netip.PrefixFrom(ToNetip(s.Prefix()), s.Bits())
}

// FromPrefix 将 [netip.Prefix] 转换为规范子网（主机位清零）。
func FromPrefix(p netip.Prefix) (*xaddr.Subnet, error) {
	if !p.IsValid() {
		return nil, fmt.Errorf("%w: invalid prefix", ErrInvalidRange)
	}
	addr, err := FromNetip(p.Addr())
	if err != nil {
		return nil, err
	}
	return xaddr.NewSubnet(addr.Raw(), p.Bits())
}

// ToIPRange 将区间转换为 [netipx.IPRange]。
func ToIPRange(r xaddr.Range) netipx.IPRange {
	return netipx.IPRangeFrom(ToNetip(r.From()), ToNetip(r.To()))
}

// FromIPRange 将 [netipx.IPRange] 转换为区间。
// 无效范围（From > To、混合地址族或零值）返回 ErrInvalidRange。
func FromIPRange(r netipx.IPRange) (xaddr.Range, error) {
	if !r.IsValid() {
		return xaddr.Range{}, fmt.Errorf("%w: %s-%s", ErrInvalidRange, r.From(), r.To())
	}
	from, err := FromNetip(r.From())
	if err != nil {
		return xaddr.Range{}, err
	}
	to, err := FromNetip(r.To())
	if err != nil {
		return xaddr.Range{}, err
	}
	return xaddr.NewRange(from, to)
}

// IPSetOf 把集合的合并覆盖导出为 [*netipx.IPSet]，
// 供需要 O(log n) 查询的调用方使用。
func IPSetOf(c *xcollect.Collection) (*netipx.IPSet, error) {
	var b netipx.IPSetBuilder
	for _, r := range c.Ranges() {
		b.AddRange(ToIPRange(r))
	}
	set, err := b.IPSet()
	if err != nil {
		return nil, fmt.Errorf("build IPSet: %w", err)
	}
	return set, nil
}
