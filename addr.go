package xmac

import (
	"fmt"
	"net"
)

// Addr 表示 48 位 MAC 地址（EUI-48/MAC-48）。
//
// Addr 是不可变值类型：
//   - 可直接比较（==）和用作 map key
//   - 并发安全，无需加锁
//   - 零值等于 [Nil]，即全零地址 00-00-00-00-00-00，本身是合法地址值
//
// 使用 [Parse]、[MustParse] 或 [AddrFrom6] 创建：
//
//	addr, err := xmac.Parse("aa-bb-cc-dd-ee-ff")
//	addr := xmac.AddrFrom6([6]byte{0xaa, 0xbb, 0xcc, 0xdd, 0xee, 0xff})
type Addr struct {
	// 传输序（MSB 在前）存储的 6 字节。
	bytes [6]byte
}

// AddrFrom6 从 6 字节数组创建 MAC 地址。
// 字节按传输序（MSB 在前）解释。任意字节组合都是合法地址。
func AddrFrom6(b [6]byte) Addr {
	return Addr{bytes: b}
}

// AddrFromBytes 从字节切片创建 MAC 地址。
// 切片长度必须为 6，否则返回包装 [ErrInvalidLength] 的错误。
func AddrFromBytes(b []byte) (Addr, error) {
	if len(b) != 6 {
		return Addr{}, fmt.Errorf("%w: expected 6 bytes, got %d", ErrInvalidLength, len(b))
	}
	var addr Addr
	copy(addr.bytes[:], b)
	return addr, nil
}

// FromHardwareAddr 从 [net.HardwareAddr] 创建 MAC 地址。
// 长度必须为 6 字节（仅支持 EUI-48，不支持 EUI-64）。
func FromHardwareAddr(hw net.HardwareAddr) (Addr, error) {
	return AddrFromBytes([]byte(hw))
}

// Nil 返回全零地址 00-00-00-00-00-00。
// 与零值 Addr{} 相同，常用于表示"尚未分配"。
func Nil() Addr { return Addr{} }

// Broadcast 返回广播地址 ff-ff-ff-ff-ff-ff。
// 用于向局域网内所有设备发送数据。
func Broadcast() Addr { return broadcastAddr() }

// broadcastAddr 返回内部使用的广播地址。
func broadcastAddr() Addr { return Addr{bytes: [6]byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff}} }

// Bytes 返回 MAC 地址的字节表示（长度始终为 6，传输序）。
// 返回副本，修改不影响原值。
func (a Addr) Bytes() [6]byte {
	return a.bytes
}

// HardwareAddr 返回 [net.HardwareAddr] 表示。
// 返回副本，修改不影响原值。
func (a Addr) HardwareAddr() net.HardwareAddr {
	hw := make(net.HardwareAddr, 6)
	copy(hw, a.bytes[:])
	return hw
}

// Compare 比较两个 MAC 地址的字节顺序。
// 返回值：-1 (a < b), 0 (a == b), 1 (a > b)。
// 按传输序（大端）比较。
func (a Addr) Compare(b Addr) int {
	for i := range 6 {
		if a.bytes[i] < b.bytes[i] {
			return -1
		}
		if a.bytes[i] > b.bytes[i] {
			return 1
		}
	}
	return 0
}
