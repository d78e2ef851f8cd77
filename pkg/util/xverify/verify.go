package xverify

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/omeyang/ipkit/pkg/util/xaddr"
)

// Result 是一次校验的结果。
// 合法性与规范性相互独立：主机位非零的 CIDR 是合法但非规范的字面量，
// 此时 Valid 为 true 且 Corrected 携带规范形式。
type Result struct {
	// Valid 报告输入是否为策略允许的合法地址/CIDR 字面量。
	Valid bool

	// Corrected 是规范化渲染，空字符串表示无（输入已规范且未请求渲染）。
	Corrected string
}

// Verify 按策略校验 s 并按需返回规范化形式。
// 默认先按 IPv4、再按 IPv6 解析，不返回规范化渲染；
// 行为通过 [WithVersion]、[WithCorrection]、[WithUppercase] 调整。
//
// 校验失败（语法错误、数值越界、策略不符）一律返回 Result{false, ""}，
// 调用方使用布尔值而非错误来分支。
func Verify(s string, policy CIDRPolicy, opts ...Option) Result {
	var o Options
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return VerifyWith(s, policy, o)
}

// VerifyWith 与 [Verify] 相同，参数以 [Options] 值传入。
func VerifyWith(s string, policy CIDRPolicy, o Options) Result {
	addrPart, bitsPart, hasMask, ok := splitCIDR(s)
	if !ok {
		return Result{}
	}
	if hasMask && policy == CIDRReject {
		return Result{}
	}
	if !hasMask && policy == CIDRRequire {
		return Result{}
	}

	raw, err := parseAuto(addrPart, o.Version)
	if err != nil {
		return Result{}
	}

	if !hasMask {
		return Result{Valid: true, Corrected: renderPlain(raw, o)}
	}

	bits, err := strconv.Atoi(bitsPart)
	if err != nil || bits > raw.Version().Bits() {
		return Result{}
	}

	// 逐字计算网络掩码并与原字序列比对：任何字被改写即为非规范输入
	canon := raw.Mask(bits)
	changed := canon != raw
	if !changed && o.Correction == CorrectOff {
		return Result{Valid: true}
	}
	return Result{
		Valid:     true,
		Corrected: renderCIDR(canon, bits, o),
	}
}

// ParseAddress 将 s 解析为地址值。
// ver 为 V0 时先试 IPv4 再试 IPv6。带 "/" 后缀的输入返回 ErrInvalidAddress。
func ParseAddress(s string, ver xaddr.Version) (xaddr.Address, error) {
	if strings.Contains(s, "/") {
		return xaddr.Address{}, fmt.Errorf("%w: unexpected mask in %q", ErrInvalidAddress, s)
	}
	raw, err := parseAuto(s, ver)
	if err != nil {
		return xaddr.Address{}, fmt.Errorf("%w: %q", ErrInvalidAddress, s)
	}
	return xaddr.AddressFrom(raw)
}

// ParseSubnet 将 s 解析为规范子网，是子网的唯一公开构造途径：
// 先解析地址部分，再按位长做规范化（主机位清零），
// 因此 "192.168.1.77/24" 与 "192.168.1.0/24" 构造出相等的子网。
// ver 为 V0 时先试 IPv4 再试 IPv6。
func ParseSubnet(s string, ver xaddr.Version) (*xaddr.Subnet, error) {
	addrPart, bitsPart, hasMask, ok := splitCIDR(s)
	if !ok || !hasMask {
		return nil, fmt.Errorf("%w: %q", ErrInvalidCIDR, s)
	}
	raw, err := parseAuto(addrPart, ver)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidCIDR, s)
	}
	bits, err := strconv.Atoi(bitsPart)
	if err != nil || bits > raw.Version().Bits() {
		return nil, fmt.Errorf("%w: prefix length %q for %s", ErrInvalidCIDR, bitsPart, raw.Version())
	}
	return xaddr.NewSubnet(raw, bits)
}

// splitCIDR 拆分单个尾部 "/digits" 后缀。
// 位长必须是 1 到 3 位十进制数字，除字面量 "0" 外不允许前导零；
// 出现第二个 "/" 或空的位长视为非法输入。
func splitCIDR(s string) (addrPart, bitsPart string, hasMask, ok bool) {
	idx := strings.Index(s, "/")
	if idx < 0 {
		return s, "", false, true
	}
	addrPart, bitsPart = s[:idx], s[idx+1:]
	if strings.Contains(bitsPart, "/") {
		return "", "", false, false
	}
	if bitsPart == "" || len(bitsPart) > 3 {
		return "", "", false, false
	}
	for i := 0; i < len(bitsPart); i++ {
		if bitsPart[i] < '0' || bitsPart[i] > '9' {
			return "", "", false, false
		}
	}
	if len(bitsPart) > 1 && bitsPart[0] == '0' {
		return "", "", false, false
	}
	return addrPart, bitsPart, true, true
}

// parseAuto 按指定版本解析，ver 为 V0 时先试 IPv4 再试 IPv6。
func parseAuto(s string, ver xaddr.Version) (xaddr.Raw, error) {
	if ver != xaddr.V0 {
		return xaddr.ParseRaw(s, ver)
	}
	if raw, err := xaddr.ParseRaw(s, xaddr.V4); err == nil {
		return raw, nil
	}
	return xaddr.ParseRaw(s, xaddr.V6)
}

func renderPlain(raw xaddr.Raw, o Options) string {
	switch o.Correction {
	case CorrectPretty:
		return raw.Text(o.Uppercase)
	case CorrectFull:
		return raw.Expanded(o.Uppercase)
	default:
		return ""
	}
}

func renderCIDR(canon xaddr.Raw, bits int, o Options) string {
	var addr string
	if o.Correction == CorrectFull {
		addr = canon.Expanded(o.Uppercase)
	} else {
		addr = canon.Text(o.Uppercase)
	}
	return addr + "/" + strconv.Itoa(bits)
}
