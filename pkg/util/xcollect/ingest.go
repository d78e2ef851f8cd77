package xcollect

import (
	"strings"
	"unicode"

	"github.com/omeyang/ipkit/pkg/util/xaddr"
	"github.com/omeyang/ipkit/pkg/util/xverify"
)

// IngestText 在自由文本中扫描与集合版本匹配的地址/子网形 token。
//
// 分词是保守的按分隔符切分：空白和所有不可能出现在合法字面量中的
// 标点都切分 token，字母和数字不切分（因此 "10.0.0.1/33x" 是一个
// 完整 token 并会整体进入拒绝桶）。只有包含版本特征分隔符
// （IPv4 的 '.'，IPv6 的 ':'）的 token 才被视为候选。
//
// 对 IPv6：位于行首且校验失败、以冒号开头的候选 token 会剥除全部
// 前导冒号后重试一次（容忍用冒号做缩进的文本），仅此一次、不递归。
//
// 候选按是否含 "/" 分流：子网走掩码必需的校验路径，地址走禁止掩码
// 的校验路径。成功进入对应桶；失败将原文 token 原样放入拒绝桶。
func (c *Collection) IngestText(text string) {
	for _, line := range strings.Split(text, "\n") {
		c.ingestLine(line)
	}
}

func (c *Collection) ingestLine(line string) {
	start := -1
	for i, r := range line {
		if c.isTokenRune(r) {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			c.ingestToken(line[start:i], start == 0)
			start = -1
		}
	}
	if start >= 0 {
		c.ingestToken(line[start:], start == 0)
	}
}

// isTokenRune 报告 r 是否可以留在 token 内：
// 字母、数字以及该版本合法字面量允许的标点。
func (c *Collection) isTokenRune(r rune) bool {
	if unicode.IsLetter(r) || unicode.IsDigit(r) {
		return true
	}
	switch r {
	case '/':
		return true
	case '.':
		return c.version == xaddr.V4
	case ':':
		return c.version == xaddr.V6
	default:
		return false
	}
}

// marker 返回候选 token 必须包含的版本特征分隔符。
func (c *Collection) marker() byte {
	if c.version == xaddr.V4 {
		return '.'
	}
	return ':'
}

func (c *Collection) ingestToken(token string, atLineStart bool) {
	if !strings.Contains(token, string(c.marker())) {
		return
	}
	if c.tryAccept(token) {
		return
	}
	// 行首冒号缩进容错：剥除前导冒号重试一次
	if c.version == xaddr.V6 && atLineStart && strings.HasPrefix(token, ":") {
		if retry := strings.TrimLeft(token, ":"); retry != "" && c.tryAccept(retry) {
			return
		}
	}
	c.rejected = append(c.rejected, token)
}

// tryAccept 尝试把 token 解析进对应的桶，成功返回 true。
func (c *Collection) tryAccept(token string) bool {
	if strings.Contains(token, "/") {
		sub, err := xverify.ParseSubnet(token, c.version)
		if err != nil {
			return false
		}
		c.subnets = append(c.subnets, sub)
		return true
	}
	addr, err := xverify.ParseAddress(token, c.version)
	if err != nil {
		return false
	}
	c.addrs = append(c.addrs, addr)
	return true
}
