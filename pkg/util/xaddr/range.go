package xaddr

import "fmt"

// Range 是闭合的连续地址区间 [From, To]，两端同版本且 From ≤ To。
// 可比较的不可变值类型，应通过 [NewRange] 构造。
type Range struct {
	from Address
	to   Address
}

// NewRange 构造闭区间 [from, to]。
// 两端版本不同返回 ErrVersion，from > to 返回 ErrRange。
func NewRange(from, to Address) (Range, error) {
	if !from.Valid() || !to.Valid() {
		return Range{}, fmt.Errorf("%w: zero Address", ErrVersion)
	}
	if from.Version() != to.Version() {
		return Range{}, fmt.Errorf("%w: mixed versions %s and %s", ErrVersion, from.Version(), to.Version())
	}
	if from.Compare(to) > 0 {
		return Range{}, fmt.Errorf("%w: from %s > to %s", ErrRange, from, to)
	}
	return Range{from: from, to: to}, nil
}

// RangeOf 构造单地址区间 [addr, addr]。
func RangeOf(addr Address) Range {
	return Range{from: addr, to: addr}
}

// From 返回区间最低地址。
func (r Range) From() Address {
	return r.from
}

// To 返回区间最高地址。
func (r Range) To() Address {
	return r.to
}

// Version 返回区间的地址版本。
func (r Range) Version() Version {
	return r.from.Version()
}

// Contains 报告 addr 是否落在区间内。
// 版本不同恒为 false。
func (r Range) Contains(addr Address) bool {
	if addr.Version() != r.from.Version() {
		return false
	}
	return r.from.Compare(addr) <= 0 && addr.Compare(r.to) <= 0
}

// Overlaps 报告两个闭区间是否相交。
func (r Range) Overlaps(other Range) bool {
	if other.Version() != r.Version() {
		return false
	}
	return r.from.Compare(other.to) <= 0 && other.from.Compare(r.to) <= 0
}

// String 返回 "from-to" 形式的字符串表示。
func (r Range) String() string {
	return r.from.String() + "-" + r.to.String()
}
