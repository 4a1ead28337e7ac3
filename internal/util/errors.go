package util

import "errors"

var (
	// ErrValidation 所有请求体校验失败的根错误 控制器据此映射为400
	ErrValidation = errors.New("validation failed")

	ErrNotFound         = errors.New("resource not found")
	ErrNotOwner         = errors.New("not the owner of this resource")
	ErrEmailRegistered  = errors.New("该邮箱已被注册")
	ErrUsernameTaken    = errors.New("该用户名已被使用")
	ErrUserNotFound     = errors.New("用户不存在")
	ErrPermissionDenied = errors.New("permission denied")
	ErrChoiceMismatch   = errors.New("chosen answer does not belong to the question")
)
