package xmac

import (
	"errors"
	"fmt"
)

// 预定义错误变量，支持 errors.Is 判断。
var (
	// ErrInvalidLength 表示输入长度不合法（合法长度为 14 或 17 字符），
	// 或数字个数与 6 字节地址不匹配。
	ErrInvalidLength = errors.New("xmac: invalid length")

	// ErrInvalidCharacter 表示输入包含非法字符。
	ErrInvalidCharacter = errors.New("xmac: invalid character")

	// ErrNilReceiver 表示在 nil 接收者上调用了反序列化方法。
	ErrNilReceiver = errors.New("xmac: nil receiver")
)

// InvalidLengthError 长度错误
//
// 记录实际观察到的输入长度（字节数）。合法长度只有 14（点分、0x 前缀）
// 和 17（短线、冒号分隔）；长度合法但十六进制数字个数不是 12 时同样
// 返回此错误。
// 实现了 error 接口和 errors.Is 支持。
type InvalidLengthError struct {
	// Length 实际输入长度
	Length int
}

// Error 实现 error 接口
func (e *InvalidLengthError) Error() string {
	return fmt.Sprintf("xmac: invalid length; expecting 14 or 17 chars, found %d", e.Length)
}

// Is 支持 errors.Is 检查
func (e *InvalidLengthError) Is(target error) bool {
	return target == ErrInvalidLength
}

// Unwrap 返回底层错误
func (e *InvalidLengthError) Unwrap() error {
	return ErrInvalidLength
}

// InvalidCharacterError 非法字符错误
//
// 记录扫描遇到的首个非法字符及其字节偏移量（从 0 开始）。
// 解析在首个非法字符处短路，不再继续扫描。
// 实现了 error 接口和 errors.Is 支持。
type InvalidCharacterError struct {
	// Char 非法字符
	Char rune
	// Offset 字符起始位置的字节偏移量
	Offset int
}

// Error 实现 error 接口
func (e *InvalidCharacterError) Error() string {
	return fmt.Sprintf("xmac: invalid character %q at offset %d", e.Char, e.Offset)
}

// Is 支持 errors.Is 检查
func (e *InvalidCharacterError) Is(target error) bool {
	return target == ErrInvalidCharacter
}

// Unwrap 返回底层错误
func (e *InvalidCharacterError) Unwrap() error {
	return ErrInvalidCharacter
}
