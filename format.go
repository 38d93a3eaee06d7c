package xmac

// Notation 定义 MAC 地址的文本表示法。
type Notation uint8

const (
	// Canonical IEEE 802 规范表示法，短线分隔，小写：xx-xx-xx-xx-xx-xx
	Canonical Notation = iota
	// HexString 冒号分隔表示法（Unix 风格），小写：xx:xx:xx:xx:xx:xx
	HexString
	// DotNotation 点分隔表示法（Cisco 风格），小写：xxxx.xxxx.xxxx
	DotNotation
	// Hexadecimal 0x 前缀十六进制表示法，小写：0xxxxxxxxxxxxx
	Hexadecimal
)

// hexLower 十六进制字符表。输出统一小写。
const hexLower = "0123456789abcdef"

// String 返回表示法的名称。
func (n Notation) String() string {
	switch n {
	case Canonical:
		return "canonical"
	case HexString:
		return "hex-string"
	case DotNotation:
		return "dot-notation"
	case Hexadecimal:
		return "hexadecimal"
	default:
		return "unknown"
	}
}

// String 返回规范表示法（[Canonical]，小写短线分隔）的字符串表示。
// 全零地址输出 "00-00-00-00-00-00"。
func (a Addr) String() string {
	return a.FormatString(Canonical)
}

// FormatString 按指定表示法返回 MAC 地址字符串。
// 输出统一小写。未知的表示法值按 [Canonical] 处理。
func (a Addr) FormatString(n Notation) string {
	switch n {
	case HexString:
		return formatWithSep(a.bytes, ':')
	case DotNotation:
		return formatDot(a.bytes)
	case Hexadecimal:
		return formatHex(a.bytes)
	default:
		return formatWithSep(a.bytes, '-')
	}
}

// formatWithSep 使用指定分隔符格式化（xx-xx-xx-xx-xx-xx 或 xx:xx:xx:xx:xx:xx）。
// 预分配精确大小，零额外分配。
func formatWithSep(b [6]byte, sep byte) string {
	// 6*2 + 5 = 17 字节
	var buf [17]byte
	buf[0] = hexLower[b[0]>>4]
	buf[1] = hexLower[b[0]&0x0f]
	buf[2] = sep
	buf[3] = hexLower[b[1]>>4]
	buf[4] = hexLower[b[1]&0x0f]
	buf[5] = sep
	buf[6] = hexLower[b[2]>>4]
	buf[7] = hexLower[b[2]&0x0f]
	buf[8] = sep
	buf[9] = hexLower[b[3]>>4]
	buf[10] = hexLower[b[3]&0x0f]
	buf[11] = sep
	buf[12] = hexLower[b[4]>>4]
	buf[13] = hexLower[b[4]&0x0f]
	buf[14] = sep
	buf[15] = hexLower[b[5]>>4]
	buf[16] = hexLower[b[5]&0x0f]
	return string(buf[:])
}

// formatDot 格式化为点分隔格式（xxxx.xxxx.xxxx）。
func formatDot(b [6]byte) string {
	// 4+1+4+1+4 = 14 字节
	var buf [14]byte
	buf[0] = hexLower[b[0]>>4]
	buf[1] = hexLower[b[0]&0x0f]
	buf[2] = hexLower[b[1]>>4]
	buf[3] = hexLower[b[1]&0x0f]
	buf[4] = '.'
	buf[5] = hexLower[b[2]>>4]
	buf[6] = hexLower[b[2]&0x0f]
	buf[7] = hexLower[b[3]>>4]
	buf[8] = hexLower[b[3]&0x0f]
	buf[9] = '.'
	buf[10] = hexLower[b[4]>>4]
	buf[11] = hexLower[b[4]&0x0f]
	buf[12] = hexLower[b[5]>>4]
	buf[13] = hexLower[b[5]&0x0f]
	return string(buf[:])
}

// formatHex 格式化为 0x 前缀十六进制格式（0xxxxxxxxxxxxx）。
func formatHex(b [6]byte) string {
	// 2 + 6*2 = 14 字节
	var buf [14]byte
	buf[0] = '0'
	buf[1] = 'x'
	buf[2] = hexLower[b[0]>>4]
	buf[3] = hexLower[b[0]&0x0f]
	buf[4] = hexLower[b[1]>>4]
	buf[5] = hexLower[b[1]&0x0f]
	buf[6] = hexLower[b[2]>>4]
	buf[7] = hexLower[b[2]&0x0f]
	buf[8] = hexLower[b[3]>>4]
	buf[9] = hexLower[b[3]&0x0f]
	buf[10] = hexLower[b[4]>>4]
	buf[11] = hexLower[b[4]&0x0f]
	buf[12] = hexLower[b[5]>>4]
	buf[13] = hexLower[b[5]&0x0f]
	return string(buf[:])
}
