// Package xmac 提供 EUI-48（MAC-48）地址的值类型与文本编解码。
//
// xmac 围绕一个不可变的 6 字节值类型 [Addr] 构建：
//
//   - 四种表示法解析与输出（短线、冒号、点分、0x 前缀）
//   - 严格的单遍扫描解析器，错误携带精确位置信息
//   - 地址属性判断（单播/多播、全球/本地管理、全零、广播）
//   - JSON/Text/Binary/SQL 序列化支持
//
// # 快速示例
//
// 解析和格式化：
//
//	addr, err := xmac.Parse("12:34:56:AB:CD:EF")
//	fmt.Println(addr.String())                        // 12-34-56-ab-cd-ef
//	fmt.Println(addr.FormatString(xmac.DotNotation))  // 1234.56ab.cdef
//
// 判断地址类型：
//
//	if addr.IsMulticast() {
//	    // 多播地址
//	}
//	if addr.IsLocal() {
//	    // 本地管理地址（虚拟机、容器常见）
//	}
//
// JSON 序列化：
//
//	type Asset struct {
//	    MAC xmac.Addr `json:"mac"`
//	}
//	json.Marshal(Asset{MAC: addr})  // {"mac":"12-34-56-ab-cd-ef"}
//
// # 表示法
//
// [Notation] 枚举四种文本表示法，输出统一小写：
//
//	Canonical    xx-xx-xx-xx-xx-xx   17 字符，IEEE 802 规范形式，默认输出
//	HexString    xx:xx:xx:xx:xx:xx   17 字符，Unix 工具常用
//	DotNotation  xxxx.xxxx.xxxx      14 字符，Cisco 设备常用
//	Hexadecimal  0xxxxxxxxxxxxx      14 字符，0x 前缀裸十六进制
//
// [Parse] 接受全部四种表示法，大小写不敏感。合法输入长度只有 14 和 17，
// 其余长度在扫描前即被拒绝。
//
// # 零值语义
//
// 零值 Addr{} 等于 [Nil]，即全零地址 00-00-00-00-00-00。全零地址是
// 合法地址值：正常格式化、正常序列化、可参与一切判断。xmac 没有
// "无效地址"状态，所有操作对任意 Addr 值都有定义。
//
//	var a xmac.Addr
//	a.String()     // "00-00-00-00-00-00"
//	a.IsNil()      // true
//	a.IsUnicast()  // true，bit 0 为 0
//
// # 错误处理
//
// [Parse] 只返回两类错误，预定义错误变量支持 errors.Is 判断：
//
//	addr, err := xmac.Parse(input)
//	if errors.Is(err, xmac.ErrInvalidLength) {
//	    // 长度不是 14 或 17，或数字个数不足/超出
//	}
//	var charErr *xmac.InvalidCharacterError
//	if errors.As(err, &charErr) {
//	    // charErr.Char 和 charErr.Offset 定位首个非法字符
//	}
//
// # 序列化
//
// [Addr] 实现 [encoding.TextMarshaler]、[encoding.TextUnmarshaler]、
// [json.Marshaler]、[json.Unmarshaler]、[encoding.BinaryMarshaler]、
// [encoding.BinaryUnmarshaler]、[database/sql/driver.Valuer] 和
// [database/sql.Scanner]。文本形式均为规范表示法，二进制形式为
// 传输序原始 6 字节。
package xmac
