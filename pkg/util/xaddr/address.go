package xaddr

import "fmt"

// Address 是经过校验的用户层地址，独占包装一个 [Raw]。
// 可比较的不可变值类型，可直接作为 map key。
// 零值无效，应通过 [AddressFrom] 或 [ParseAddress] 构造。
type Address struct {
	raw Raw
}

// AddressFrom 从 Raw 构造 Address。
// raw 无效时返回 ErrVersion。
func AddressFrom(raw Raw) (Address, error) {
	if !raw.Valid() {
		return Address{}, fmt.Errorf("%w: zero Raw", ErrVersion)
	}
	return Address{raw: raw}, nil
}

// ParseAddress 将 s 按指定版本解析为 Address。
// 解析规则与 [ParseRaw] 一致。
func ParseAddress(s string, ver Version) (Address, error) {
	raw, err := ParseRaw(s, ver)
	if err != nil {
		return Address{}, err
	}
	return Address{raw: raw}, nil
}

// MustParseAddress 与 [ParseAddress] 相同，但失败时 panic。
// 仅用于测试和常量初始化。
func MustParseAddress(s string, ver Version) Address {
	a, err := ParseAddress(s, ver)
	if err != nil {
		panic(err)
	}
	return a
}

// Raw 返回底层的字表示。
func (a Address) Raw() Raw {
	return a.raw
}

// Version 返回地址版本。
func (a Address) Version() Version {
	return a.raw.Version()
}

// Is4 报告 a 是否为 IPv4 地址。
func (a Address) Is4() bool {
	return a.raw.Version() == V4
}

// Is6 报告 a 是否为 IPv6 地址。
func (a Address) Is6() bool {
	return a.raw.Version() == V6
}

// Valid 报告 a 是否为合法构造的地址。
func (a Address) Valid() bool {
	return a.raw.Valid()
}

// Next 返回环上的后继地址（全一地址的后继是全零地址）。
func (a Address) Next() Address {
	return Address{raw: a.raw.Next()}
}

// Prev 返回环上的前驱地址（全零地址的前驱是全一地址）。
func (a Address) Prev() Address {
	return Address{raw: a.raw.Prev()}
}

// Compare 返回全序比较结果（-1/0/+1），语义见 [Raw.Compare]。
func (a Address) Compare(other Address) int {
	return a.raw.Compare(other.raw)
}

// Subnet 返回以 a 所在网络为前缀、位长为 bits 的子网。
// a 的主机位会被规范化清零，因此同一网络中的任意地址派生出相等的子网。
// bits 超出 [0, 版本位宽] 时返回 ErrRange。
func (a Address) Subnet(bits int) (*Subnet, error) {
	return NewSubnet(a.raw, bits)
}

// Text 返回规范字符串表示，upper 控制 IPv6 十六进制的大小写。
func (a Address) Text(upper bool) string {
	return a.raw.Text(upper)
}

// Expanded 返回完整展开表示（IPv6 全 8 段、无 "::" 压缩）。
func (a Address) Expanded(upper bool) string {
	return a.raw.Expanded(upper)
}

// String 返回小写的规范字符串表示。
func (a Address) String() string {
	return a.raw.String()
}
