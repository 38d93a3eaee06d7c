package xmac

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// MarshalText 实现 [encoding.TextMarshaler]。
// 输出规范表示法（aa-bb-cc-dd-ee-ff）。
func (a Addr) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText 实现 [encoding.TextUnmarshaler]。
// 接受所有 [Parse] 支持的表示法。
// 空输入按长度 0 处理，返回 [InvalidLengthError]；
// Addr 的文本输出永远非空，空串不参与往返。
// 对 nil 接收者返回 [ErrNilReceiver]。
func (a *Addr) UnmarshalText(text []byte) error {
	if a == nil {
		return ErrNilReceiver
	}
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// MarshalJSON 实现 [json.Marshaler]。
// 输出带引号的规范表示法字符串（"aa-bb-cc-dd-ee-ff"）。
//
// MAC 地址字符串仅包含 [0-9a-f-] 字符，无需 JSON 转义，
// 因此直接构造带引号的字节切片，避免 [json.Marshal] 的反射开销。
func (a Addr) MarshalJSON() ([]byte, error) {
	s := a.String()
	// len(`"`) + 17 + len(`"`) = 19
	buf := make([]byte, 0, len(s)+2)
	buf = append(buf, '"')
	buf = append(buf, s...)
	buf = append(buf, '"')
	return buf, nil
}

// UnmarshalJSON 实现 [json.Unmarshaler]。
// 接受所有 [Parse] 支持的表示法。
// null 不修改接收者，与 Go 标准库 [time.Time.UnmarshalJSON] 的行为一致。
// 对 nil 接收者返回 [ErrNilReceiver]。
//
// 此方法应通过 [json.Unmarshal] 间接调用，不建议直接调用。
// 直接调用时 null 匹配为精确字节比较（不去除空白）。
func (a *Addr) UnmarshalJSON(data []byte) error {
	if a == nil {
		return ErrNilReceiver
	}
	// 处理 null
	if string(data) == "null" {
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("xmac: unmarshal json: %w", err)
	}
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// MarshalBinary 实现 [encoding.BinaryMarshaler]。
// 输出传输序的原始 6 字节。
func (a Addr) MarshalBinary() ([]byte, error) {
	b := make([]byte, 6)
	copy(b, a.bytes[:])
	return b, nil
}

// UnmarshalBinary 实现 [encoding.BinaryUnmarshaler]。
// 输入必须为 6 字节，否则返回包装 [ErrInvalidLength] 的错误。
// 对 nil 接收者返回 [ErrNilReceiver]。
func (a *Addr) UnmarshalBinary(data []byte) error {
	if a == nil {
		return ErrNilReceiver
	}
	parsed, err := AddrFromBytes(data)
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// Value 实现 [database/sql/driver.Valuer]。
// 用于 SQL 数据库写入，输出规范表示法字符串。
func (a Addr) Value() (driver.Value, error) {
	return a.String(), nil
}

// Scan 实现 [database/sql.Scanner]。
// 用于 SQL 数据库读取。
// 支持 string、[]byte（文本或 6 字节二进制）、nil 输入。
// nil 输入设置为全零地址 [Nil]。
// 对 nil 接收者返回 [ErrNilReceiver]。
func (a *Addr) Scan(src any) error {
	if a == nil {
		return ErrNilReceiver
	}
	switch v := src.(type) {
	case nil:
		*a = Addr{}
		return nil
	case string:
		parsed, err := Parse(v)
		if err != nil {
			return err
		}
		*a = parsed
		return nil
	case []byte:
		// 6 字节视为二进制格式，适用于 BINARY(6) 列存储的原始 MAC 字节。
		// 文本表示法长度为 14 或 17 字符，不会与 6 字节二进制冲突。
		if len(v) == 6 {
			copy(a.bytes[:], v)
			return nil
		}
		parsed, err := Parse(string(v))
		if err != nil {
			return err
		}
		*a = parsed
		return nil
	default:
		return fmt.Errorf("xmac: unsupported scan type %T", src)
	}
}
