package xmac

import "fmt"

// Parse 解析 MAC 地址字符串。
//
// 接受四种表示法（大小写不敏感）：
//   - 短线分隔（[Canonical]）：aa-bb-cc-dd-ee-ff（17 字符）
//   - 冒号分隔（[HexString]）：aa:bb:cc:dd:ee:ff（17 字符）
//   - 点分隔（[DotNotation]）：aabb.ccdd.eeff（14 字符）
//   - 0x 前缀（[Hexadecimal]）：0xaabbccddeeff（14 字符）
//
// 解析是单遍扫描：分隔符 '-'、':'、'.' 在任意位置都被忽略（允许混用），
// 只要总长度为 14 或 17 且恰好含 12 个十六进制数字即可成功。
// 'x'/'X' 仅允许出现在偏移量 1 处（0x 前缀），此时重置扫描状态并丢弃
// 已暂存的半个字节；不要求偏移量 0 处是 '0'。
//
// 失败返回两类错误之一：
//   - [InvalidLengthError]：长度不是 14 或 17，或数字个数不是 12
//   - [InvalidCharacterError]：遇到首个非法字符，立即短路返回
func Parse(s string) (Addr, error) {
	if len(s) != 14 && len(s) != 17 {
		return Addr{}, &InvalidLengthError{Length: len(s)}
	}

	var eui [6]byte
	offset := 0         // 已写满的字节数，即下一个数字的目标下标
	highNibble := false // 当前字节的高半字节已暂存

	for i, r := range s {
		if v := hexValue(r); v >= 0 {
			if offset == 6 {
				// 第 13 个数字，超出 6 字节容量
				return Addr{}, &InvalidLengthError{Length: len(s)}
			}
			if !highNibble {
				// 赋值而非按位或：覆盖 0x 重置前可能残留的半字节
				eui[offset] = byte(v) << 4
				highNibble = true
			} else {
				eui[offset] |= byte(v)
				offset++
				highNibble = false
			}
			continue
		}
		switch r {
		case '-', ':', '.':
			// 分隔符，任意位置均忽略
		case 'x', 'X':
			if i != 1 {
				return Addr{}, &InvalidCharacterError{Char: r, Offset: i}
			}
			// 0x 前缀：重置扫描状态
			offset, highNibble = 0, false
		default:
			return Addr{}, &InvalidCharacterError{Char: r, Offset: i}
		}
	}

	if offset != 6 {
		return Addr{}, &InvalidLengthError{Length: len(s)}
	}
	return Addr{bytes: eui}, nil
}

// MustParse 类似 [Parse]，但解析失败时 panic。
// 仅用于包级常量初始化或测试。
func MustParse(s string) Addr {
	addr, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("xmac.MustParse(%q): %v", s, err))
	}
	return addr
}

// hexValue 返回十六进制字符的数值，非十六进制字符返回 -1。
func hexValue(r rune) int {
	switch {
	case '0' <= r && r <= '9':
		return int(r - '0')
	case 'a' <= r && r <= 'f':
		return int(r - 'a' + 10)
	case 'A' <= r && r <= 'F':
		return int(r - 'A' + 10)
	default:
		return -1
	}
}
