package xcollect

import "errors"

var (
	// ErrVersion 表示无效的 IP 版本。
	ErrVersion = errors.New("xcollect: invalid IP version")

	// ErrVersionMismatch 表示成员版本与集合版本不一致。
	ErrVersionMismatch = errors.New("xcollect: member version does not match collection")
)
