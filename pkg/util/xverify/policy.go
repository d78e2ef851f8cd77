package xverify

import "github.com/omeyang/ipkit/pkg/util/xaddr"

// CIDRPolicy 控制 "/位长" 后缀的处理方式。
type CIDRPolicy uint8

const (
	// CIDRReject 拒绝带 "/" 后缀的输入（硬性校验失败）。
	CIDRReject CIDRPolicy = iota
	// CIDRAllow 接受可选的 "/" 后缀。
	CIDRAllow
	// CIDRRequire 要求输入必须带 "/" 后缀。
	CIDRRequire
)

// String 返回策略的字符串表示。
func (p CIDRPolicy) String() string {
	switch p {
	case CIDRReject:
		return "reject"
	case CIDRAllow:
		return "allow"
	case CIDRRequire:
		return "require"
	default:
		return "unknown"
	}
}

// Correction 控制校验成功时是否返回规范化渲染。
type Correction uint8

const (
	// CorrectOff 仅当 CIDR 的主机位非零（非规范）时返回规范形式。
	CorrectOff Correction = iota
	// CorrectPretty 总是返回压缩规范形式（IPv6 含 "::" 压缩）。
	CorrectPretty
	// CorrectFull 总是返回完整展开形式（IPv6 全 8 段）。
	CorrectFull
)

// Options 是 [VerifyWith] 的完整参数集。
// 可比较的值类型，便于上层（如 xvcache）作为缓存键的一部分。
type Options struct {
	// Version 强制只按指定版本解析；V0 表示先试 IPv4 再试 IPv6。
	Version xaddr.Version

	// Correction 规范化渲染模式。
	Correction Correction

	// Uppercase 渲染 IPv6 时使用大写十六进制。
	Uppercase bool
}

// Option 定义 [Verify] 的可选配置函数类型。
type Option func(*Options)

// WithVersion 强制只按指定版本解析。
func WithVersion(ver xaddr.Version) Option {
	return func(o *Options) {
		o.Version = ver
	}
}

// WithCorrection 设置规范化渲染模式。
func WithCorrection(mode Correction) Option {
	return func(o *Options) {
		o.Correction = mode
	}
}

// WithUppercase 渲染时使用大写十六进制。
func WithUppercase() Option {
	return func(o *Options) {
		o.Uppercase = true
	}
}
