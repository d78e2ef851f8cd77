package xaddr

import (
	"fmt"
	"strconv"
	"strings"
)

// Raw 是地址的定宽字表示：按版本标签选用定长 16 位字数组的前 2 个
// （IPv4，每字打包两个八位段）或全部 8 个（IPv6，每字一个十六位段）。
// Raw 是可比较的值类型，构造后不可变；所有变换都返回新值。
// 零值无效（版本为 V0）。
type Raw struct {
	version Version
	words   [8]uint16
}

// RawFromWords 从版本标签和字序列构造 Raw。
// words 长度必须等于 ver.Words()（IPv4 为 2，IPv6 为 8），否则返回 ErrVersion。
func RawFromWords(ver Version, words ...uint16) (Raw, error) {
	if ver.Words() == 0 || len(words) != ver.Words() {
		return Raw{}, fmt.Errorf("%w: need %d words for %s, got %d", ErrVersion, ver.Words(), ver, len(words))
	}
	r := Raw{version: ver}
	copy(r.words[:], words)
	return r, nil
}

// RawFrom4 从 4 字节（网络字节序）构造 IPv4 Raw。
func RawFrom4(b [4]byte) Raw {
	return Raw{
		version: V4,
		words: [8]uint16{
			uint16(b[0])<<8 | uint16(b[1]),
			uint16(b[2])<<8 | uint16(b[3]),
		},
	}
}

// RawFrom16 从 16 字节（网络字节序）构造 IPv6 Raw。
func RawFrom16(b [16]byte) Raw {
	r := Raw{version: V6}
	for i := 0; i < 8; i++ {
		r.words[i] = uint16(b[2*i])<<8 | uint16(b[2*i+1])
	}
	return r
}

// ParseRaw 将 s 按指定版本解析为 Raw。
// IPv4 为点分十进制（拒绝冗余前导零，如 "01"）；
// IPv6 为冒分十六进制，至多一个 "::" 零段省略，展开后必须恰好 8 段。
// 语法错误返回 ErrParse，数值越界返回 ErrRange，版本非法返回 ErrVersion。
func ParseRaw(s string, ver Version) (Raw, error) {
	switch ver {
	case V4:
		return parseV4(s)
	case V6:
		return parseV6(s)
	default:
		return Raw{}, fmt.Errorf("%w: %d", ErrVersion, ver)
	}
}

func parseV4(s string) (Raw, error) {
	parts := strings.Split(s, ".")
	if len(parts) != 4 {
		return Raw{}, fmt.Errorf("%w: %q is not a dotted quad", ErrParse, s)
	}
	var oct [4]uint16
	for i, p := range parts {
		if p == "" || len(p) > 3 {
			return Raw{}, fmt.Errorf("%w: invalid octet %q", ErrParse, p)
		}
		// 拒绝 "00"、"01" 等带冗余前导零的八位段，避免与八进制写法混淆。
		if len(p) > 1 && p[0] == '0' {
			return Raw{}, fmt.Errorf("%w: octet %q has a leading zero", ErrParse, p)
		}
		for _, c := range p {
			if c < '0' || c > '9' {
				return Raw{}, fmt.Errorf("%w: invalid octet %q", ErrParse, p)
			}
		}
		n, err := strconv.ParseUint(p, 10, 16)
		if err != nil || n > 255 {
			return Raw{}, fmt.Errorf("%w: octet %q exceeds 255", ErrRange, p)
		}
		oct[i] = uint16(n)
	}
	return Raw{
		version: V4,
		words:   [8]uint16{oct[0]<<8 | oct[1], oct[2]<<8 | oct[3]},
	}, nil
}

func parseV6(s string) (Raw, error) {
	if s == "" {
		return Raw{}, fmt.Errorf("%w: empty IPv6 literal", ErrParse)
	}
	head, tail := s, ""
	elided := false
	if idx := strings.Index(s, "::"); idx >= 0 {
		if strings.Contains(s[idx+2:], "::") {
			return Raw{}, fmt.Errorf("%w: %q has more than one \"::\"", ErrParse, s)
		}
		head, tail = s[:idx], s[idx+2:]
		elided = true
	}
	hg := splitHextets(head)
	tg := splitHextets(tail)
	if elided {
		// "::" 必须至少省略一个零段，展开后总数恰为 8。
		if len(hg)+len(tg) >= 8 {
			return Raw{}, fmt.Errorf("%w: %q expands to more than 8 hextets", ErrParse, s)
		}
	} else if len(hg) != 8 {
		return Raw{}, fmt.Errorf("%w: %q has %d hextets, want 8", ErrParse, s, len(hg))
	}

	r := Raw{version: V6}
	pos := 0
	for _, g := range hg {
		w, err := parseHextet(g)
		if err != nil {
			return Raw{}, err
		}
		r.words[pos] = w
		pos++
	}
	pos = 8 - len(tg)
	for _, g := range tg {
		w, err := parseHextet(g)
		if err != nil {
			return Raw{}, err
		}
		r.words[pos] = w
		pos++
	}
	return r, nil
}

// splitHextets 按 ":" 拆分十六位段，空字符串返回 nil。
func splitHextets(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, ":")
}

func parseHextet(g string) (uint16, error) {
	if g == "" {
		return 0, fmt.Errorf("%w: empty hextet", ErrParse)
	}
	for _, c := range g {
		switch {
		case c >= '0' && c <= '9', c >= 'a' && c <= 'f', c >= 'A' && c <= 'F':
		default:
			return 0, fmt.Errorf("%w: invalid hextet %q", ErrParse, g)
		}
	}
	if len(g) > 4 {
		return 0, fmt.Errorf("%w: hextet %q exceeds ffff", ErrRange, g)
	}
	n, err := strconv.ParseUint(g, 16, 16)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid hextet %q", ErrParse, g)
	}
	return uint16(n), nil
}

// Valid 报告 r 是否为合法构造的地址（版本为 V4 或 V6）。
func (r Raw) Valid() bool {
	return r.version == V4 || r.version == V6
}

// Version 返回地址版本。
func (r Raw) Version() Version {
	return r.version
}

// Words 返回活跃的字序列副本（IPv4 为 2 个，IPv6 为 8 个）。
func (r Raw) Words() []uint16 {
	n := r.version.Words()
	out := make([]uint16, n)
	copy(out, r.words[:n])
	return out
}

// As4 返回 IPv4 地址的 4 字节表示（网络字节序）。
// 非 IPv4 返回 (零值, false)。
func (r Raw) As4() ([4]byte, bool) {
	if r.version != V4 {
		return [4]byte{}, false
	}
	return [4]byte{
		byte(r.words[0] >> 8), byte(r.words[0]),
		byte(r.words[1] >> 8), byte(r.words[1]),
	}, true
}

// As16 返回 IPv6 地址的 16 字节表示（网络字节序）。
// 非 IPv6 返回 (零值, false)。
func (r Raw) As16() ([16]byte, bool) {
	if r.version != V6 {
		return [16]byte{}, false
	}
	var b [16]byte
	for i := 0; i < 8; i++ {
		b[2*i] = byte(r.words[i] >> 8)
		b[2*i+1] = byte(r.words[i])
	}
	return b, true
}

// Next 返回环上的后继地址：全一地址的后继是全零地址。
func (r Raw) Next() Raw {
	out := r
	for i := r.version.Words() - 1; i >= 0; i-- {
		out.words[i]++
		if out.words[i] != 0 {
			break
		}
		// 本字进位溢出，继续向高位进位
	}
	return out
}

// Prev 返回环上的前驱地址：全零地址的前驱是全一地址。
func (r Raw) Prev() Raw {
	out := r
	for i := r.version.Words() - 1; i >= 0; i-- {
		out.words[i]--
		if out.words[i] != 0xffff {
			break
		}
	}
	return out
}

// Mask 将前 bits 位之外的所有位清零，返回该前缀长度下的规范网络地址。
// bits 会被钳制到 [0, 版本位宽]。
func (r Raw) Mask(bits int) Raw {
	out := r
	for i := 0; i < r.version.Words(); i++ {
		out.words[i] &= wordMask(bits, i)
	}
	return out
}

// HighestHost 保留前 bits 个网络位，将其余主机位全部置一，
// 返回该前缀长度下的最高地址。
func (r Raw) HighestHost(bits int) Raw {
	out := r
	for i := 0; i < r.version.Words(); i++ {
		out.words[i] |= ^wordMask(bits, i)
	}
	return out
}

// wordMask 返回第 i 个 16 位字的网络位掩码：
// 前缀长度 bits 中落入该字的位为 1，其余为 0。
func wordMask(bits, i int) uint16 {
	take := bits - 16*i
	switch {
	case take <= 0:
		return 0
	case take >= 16:
		return 0xffff
	default:
		return ^uint16(0) << (16 - take)
	}
}

// Compare 返回全序比较结果（-1/0/+1）。
// 版本标签优先：IPv4 恒小于 IPv6；同版本按字典序比较字序列。
func (r Raw) Compare(other Raw) int {
	if r.version != other.version {
		if r.version < other.version {
			return -1
		}
		return 1
	}
	for i := 0; i < r.version.Words(); i++ {
		switch {
		case r.words[i] < other.words[i]:
			return -1
		case r.words[i] > other.words[i]:
			return 1
		}
	}
	return 0
}

// Text 返回规范字符串表示。
// IPv4 为四段点分十进制；IPv6 为小写（upper 为 true 时大写）十六进制，
// 最长的连续零段（长度 ≥ 2，相同长度取最左）压缩为 "::"，全零地址渲染为 "::"。
func (r Raw) Text(upper bool) string {
	switch r.version {
	case V4:
		return r.textV4()
	case V6:
		return r.textV6(upper)
	default:
		return ""
	}
}

// Expanded 返回完整展开表示：IPv6 输出全部 8 个十六位段、不做 "::" 压缩，
// IPv4 与 Text 相同。
func (r Raw) Expanded(upper bool) string {
	if r.version != V6 {
		return r.Text(upper)
	}
	groups := make([]string, 8)
	for i := 0; i < 8; i++ {
		groups[i] = formatHextet(r.words[i], upper)
	}
	return strings.Join(groups, ":")
}

// String 返回小写的规范字符串表示。
func (r Raw) String() string {
	return r.Text(false)
}

func (r Raw) textV4() string {
	b, _ := r.As4()
	var sb strings.Builder
	sb.Grow(15)
	for i, o := range b {
		if i > 0 {
			sb.WriteByte('.')
		}
		sb.WriteString(strconv.Itoa(int(o)))
	}
	return sb.String()
}

func (r Raw) textV6(upper bool) string {
	runStart, runLen := r.longestZeroRun()
	if runLen == 8 {
		return "::"
	}

	var sb strings.Builder
	for i := 0; i < 8; {
		if i == runStart {
			sb.WriteString("::")
			i += runLen
			continue
		}
		// 紧跟在 "::" 之后的段不再需要分隔符
		if i > 0 && i != runStart+runLen {
			sb.WriteByte(':')
		}
		sb.WriteString(formatHextet(r.words[i], upper))
		i++
	}
	return sb.String()
}

// longestZeroRun 返回最长连续零段的起点和长度（最左优先）。
// 不存在长度 ≥ 2 的零段时返回 (-1, 0)。
func (r Raw) longestZeroRun() (start, length int) {
	start, length = -1, 0
	curStart, curLen := -1, 0
	for i := 0; i < 8; i++ {
		if r.words[i] == 0 {
			if curLen == 0 {
				curStart = i
			}
			curLen++
			if curLen > length {
				start, length = curStart, curLen
			}
		} else {
			curLen = 0
		}
	}
	if length < 2 {
		return -1, 0
	}
	return start, length
}

func formatHextet(w uint16, upper bool) string {
	s := strconv.FormatUint(uint64(w), 16)
	if upper {
		return strings.ToUpper(s)
	}
	return s
}
