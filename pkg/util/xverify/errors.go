package xverify

import "errors"

var (
	// ErrInvalidAddress 表示输入不是合法的 IP 地址字符串。
	ErrInvalidAddress = errors.New("xverify: invalid IP address")

	// ErrInvalidCIDR 表示输入不是合法的 CIDR 字面量。
	ErrInvalidCIDR = errors.New("xverify: invalid CIDR literal")
)
