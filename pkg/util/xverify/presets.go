package xverify

import (
	"fmt"

	"github.com/omeyang/ipkit/pkg/util/xaddr"
)

// 以下便捷入口都是 [VerifyWith] 的薄策略预设，
// 完整保留其语义（包括未强制版本时先试 IPv4 再试 IPv6）。

// IsIP 报告 s 是否为合法 IP 地址；allowCIDR 为 true 时接受可选的 "/位长" 后缀。
// 第二个返回值是规范化形式，空字符串表示输入已规范。
func IsIP(s string, allowCIDR bool) (bool, string) {
	r := VerifyWith(s, plainPolicy(allowCIDR), Options{})
	return r.Valid, r.Corrected
}

// IsIPv4 与 [IsIP] 相同，但只按 IPv4 解析。
func IsIPv4(s string, allowCIDR bool) (bool, string) {
	r := VerifyWith(s, plainPolicy(allowCIDR), Options{Version: xaddr.V4})
	return r.Valid, r.Corrected
}

// IsIPv6 与 [IsIP] 相同，但只按 IPv6 解析。
func IsIPv6(s string, allowCIDR bool) (bool, string) {
	r := VerifyWith(s, plainPolicy(allowCIDR), Options{Version: xaddr.V6})
	return r.Valid, r.Corrected
}

// IsCIDR 报告 s 是否为合法 CIDR 字面量（"/位长" 后缀必需）。
// 第二个返回值是规范网络地址形式，空字符串表示输入已规范。
func IsCIDR(s string) (bool, string) {
	r := VerifyWith(s, CIDRRequire, Options{})
	return r.Valid, r.Corrected
}

// IsIPv4CIDR 与 [IsCIDR] 相同，但只按 IPv4 解析。
func IsIPv4CIDR(s string) (bool, string) {
	r := VerifyWith(s, CIDRRequire, Options{Version: xaddr.V4})
	return r.Valid, r.Corrected
}

// IsIPv6CIDR 与 [IsCIDR] 相同，但只按 IPv6 解析。
func IsIPv6CIDR(s string) (bool, string) {
	r := VerifyWith(s, CIDRRequire, Options{Version: xaddr.V6})
	return r.Valid, r.Corrected
}

// Prettify 返回 s 的压缩规范形式（IPv6 含 "::" 压缩），
// upper 为 true 时十六进制使用大写。接受可选 CIDR 后缀。
// 输入非法返回 ErrInvalidAddress。
func Prettify(s string, upper bool) (string, error) {
	r := VerifyWith(s, CIDRAllow, Options{Correction: CorrectPretty, Uppercase: upper})
	if !r.Valid {
		return "", fmt.Errorf("%w: %q", ErrInvalidAddress, s)
	}
	return r.Corrected, nil
}

// Sanitize 返回 s 的完整展开形式（IPv6 全 8 段、无 "::" 压缩），
// upper 为 true 时十六进制使用大写。接受可选 CIDR 后缀。
// 输入非法返回 ErrInvalidAddress。
func Sanitize(s string, upper bool) (string, error) {
	r := VerifyWith(s, CIDRAllow, Options{Correction: CorrectFull, Uppercase: upper})
	if !r.Valid {
		return "", fmt.Errorf("%w: %q", ErrInvalidAddress, s)
	}
	return r.Corrected, nil
}

func plainPolicy(allowCIDR bool) CIDRPolicy {
	if allowCIDR {
		return CIDRAllow
	}
	return CIDRReject
}
