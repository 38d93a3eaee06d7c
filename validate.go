package xmac

// IsNil 报告 a 是否为全零地址（00-00-00-00-00-00）。
// 全零地址与零值 Addr{} 相同。
func (a Addr) IsNil() bool {
	return a == Addr{}
}

// IsBroadcast 报告 a 是否为广播地址（ff-ff-ff-ff-ff-ff）。
func (a Addr) IsBroadcast() bool {
	return a == broadcastAddr()
}

// IsUnicast 报告 a 是否为单播地址。
// 单播地址的第一字节最低位（bit 0）为 0。
// 与 [Addr.IsMulticast] 互斥互补：任意地址恰好满足其一。
func (a Addr) IsUnicast() bool {
	return (a.bytes[0] & 0x01) == 0
}

// IsMulticast 报告 a 是否为多播地址。
// 多播地址的第一字节最低位（bit 0）为 1。
// 广播地址也是一种特殊的多播地址。
func (a Addr) IsMulticast() bool {
	return (a.bytes[0] & 0x01) == 1
}

// IsUniversal 报告 a 是否为全球管理地址（universally administered）。
// 全球管理地址的第一字节次低位（bit 1）为 0，
// 通常是物理网卡出厂时由 IEEE 注册分配的地址。
// 与 [Addr.IsLocal] 互斥互补：任意地址恰好满足其一。
func (a Addr) IsUniversal() bool {
	return (a.bytes[0] & 0x02) == 0
}

// IsLocal 报告 a 是否为本地管理地址（locally administered）。
// 本地管理地址的第一字节次低位（bit 1）为 1，
// 虚拟机、容器等通常使用此类地址。
func (a Addr) IsLocal() bool {
	return (a.bytes[0] & 0x02) == 0x02
}
