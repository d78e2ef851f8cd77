package xwire

import "errors"

var (
	// ErrInvalidAddress 表示无效地址或不支持的地址形式（如带 zone ID）。
	ErrInvalidAddress = errors.New("xwire: invalid address")

	// ErrInvalidRange 表示无效的 IP 范围。
	ErrInvalidRange = errors.New("xwire: invalid IP range")
)
