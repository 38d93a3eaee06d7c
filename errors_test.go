package xmac

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInvalidLengthError(t *testing.T) {
	err := &InvalidLengthError{Length: 5}

	assert.Equal(t, "xmac: invalid length; expecting 14 or 17 chars, found 5", err.Error())
	assert.ErrorIs(t, err, ErrInvalidLength)
	assert.NotErrorIs(t, err, ErrInvalidCharacter)
	assert.Equal(t, ErrInvalidLength, err.Unwrap())
}

func TestInvalidCharacterError(t *testing.T) {
	err := &InvalidCharacterError{Char: '!', Offset: 0}

	assert.Equal(t, "xmac: invalid character '!' at offset 0", err.Error())
	assert.ErrorIs(t, err, ErrInvalidCharacter)
	assert.NotErrorIs(t, err, ErrInvalidLength)
	assert.Equal(t, ErrInvalidCharacter, err.Unwrap())
}

func TestErrorsAsRecoversPayload(t *testing.T) {
	_, err := Parse("0x0x0x0x0x0x0x")
	require.Error(t, err)

	var charErr *InvalidCharacterError
	require.ErrorAs(t, err, &charErr)
	assert.Equal(t, 'x', charErr.Char)
	assert.Equal(t, 3, charErr.Offset)

	_, err = Parse("123456ABCDEF")
	require.Error(t, err)

	var lenErr *InvalidLengthError
	require.ErrorAs(t, err, &lenErr)
	assert.Equal(t, 12, lenErr.Length)
}

func TestParseErrorsAreDisjoint(t *testing.T) {
	// 每个解析错误恰好属于两类之一
	inputs := []string{
		"",
		"123456ABCDEF",
		"12:34:56:ab:cd",
		"!0x00000000000",
		"0x0x0x0x0x0x0x",
		"12:34:56:ab:cd:eg",
	}

	for _, input := range inputs {
		_, err := Parse(input)
		require.Error(t, err, "input %q", input)

		isLen := errors.Is(err, ErrInvalidLength)
		isChar := errors.Is(err, ErrInvalidCharacter)
		assert.NotEqual(t, isLen, isChar, "input %q: exactly one error kind expected, got length=%v character=%v",
			input, isLen, isChar)
	}
}

func TestWrappedErrorMessages(t *testing.T) {
	// fmt.Errorf("%w") 包装后 errors.Is 仍然成立
	_, err := Parse("")
	wrapped := fmt.Errorf("load config: %w", err)
	assert.ErrorIs(t, wrapped, ErrInvalidLength)

	var lenErr *InvalidLengthError
	require.ErrorAs(t, wrapped, &lenErr)
	assert.Equal(t, 0, lenErr.Length)
}

func TestAddrFromBytesError(t *testing.T) {
	_, err := AddrFromBytes([]byte{0x12, 0x34})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidLength)
	assert.Contains(t, err.Error(), "expected 6 bytes, got 2")

	// 字节长度错误不携带字符串长度载荷
	var lenErr *InvalidLengthError
	assert.False(t, errors.As(err, &lenErr))
}
