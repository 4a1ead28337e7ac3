package util

import (
	"fmt"
	"strings"
	"unicode"
)

const minPasswordLength = 8

// 常见弱口令，注册时直接拒绝
var commonPasswords = map[string]bool{
	"password":  true,
	"password1": true,
	"12345678":  true,
	"123456789": true,
	"qwerty123": true,
	"abc12345":  true,
	"11111111":  true,
	"iloveyou":  true,
}

// ValidatePassword 注册/改密时的口令强度校验
// 最少8位，不能是纯数字，必须同时包含字母和数字
func ValidatePassword(password string) error {
	if len(password) < minPasswordLength {
		return fmt.Errorf("%w: 密码长度至少为8位", ErrValidation)
	}

	if commonPasswords[strings.ToLower(password)] {
		return fmt.Errorf("%w: 密码过于常见", ErrValidation)
	}

	hasLetter := false
	hasDigit := false
	for _, r := range password {
		switch {
		case unicode.IsLetter(r):
			hasLetter = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}

	if !hasLetter {
		return fmt.Errorf("%w: 密码不能是纯数字", ErrValidation)
	}
	if !hasDigit {
		return fmt.Errorf("%w: 密码必须包含数字", ErrValidation)
	}

	return nil
}
