package xaddr

import "errors"

var (
	// ErrParse 表示输入字符串不是目标版本的合法地址字面量。
	ErrParse = errors.New("xaddr: cannot parse address literal")

	// ErrRange 表示结构上合法的数值超出了允许范围
	// （如八位段 > 255、掩码位长超出版本位宽）。
	ErrRange = errors.New("xaddr: value out of range")

	// ErrVersion 表示无效的 IP 版本或版本不匹配。
	ErrVersion = errors.New("xaddr: invalid IP version")

	// ErrNotCanonical 表示内部构造路径收到了主机位非零的前缀。
	// 公开 API 永远不会触达该错误，仅作为不变量防御检查存在。
	ErrNotCanonical = errors.New("xaddr: subnet prefix is not canonical")
)
