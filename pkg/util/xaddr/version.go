package xaddr

// Version 表示 IP 协议版本。
type Version uint8

const (
	// V0 表示无效或未知的 IP 版本。
	V0 Version = 0
	// V4 表示 IPv4。
	V4 Version = 4
	// V6 表示 IPv6。
	V6 Version = 6
)

// String 返回版本的字符串表示。
func (v Version) String() string {
	switch v {
	case V4:
		return "IPv4"
	case V6:
		return "IPv6"
	default:
		return "unknown"
	}
}

// Bits 返回该版本地址的位宽（IPv4 为 32，IPv6 为 128）。
// 无效版本返回 0。
func (v Version) Bits() int {
	switch v {
	case V4:
		return 32
	case V6:
		return 128
	default:
		return 0
	}
}

// Words 返回该版本地址的 16 位字数量（IPv4 为 2，IPv6 为 8）。
// 无效版本返回 0。
func (v Version) Words() int {
	switch v {
	case V4:
		return 2
	case V6:
		return 8
	default:
		return 0
	}
}
