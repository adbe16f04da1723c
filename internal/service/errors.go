package service

import (
	"errors"
)

const (
	BadRequest          = 400
	Unauthorized        = 401
	Forbidden           = 403
	NotFound            = 404
	InternalServerError = 500
)

var (
	ErrParamInvalid      = errors.New("参数错误")
	ErrUserNotFound      = errors.New("用户不存在")
	ErrUserUsernameExist = errors.New("用户名已存在")
	ErrPasswordIncorrect = errors.New("密码错误")
	ErrGroupNotFound     = errors.New("小组不存在")
	ErrGroupSlugExist    = errors.New("小组标识已存在")
	ErrPostNotFound      = errors.New("帖子不存在")
	ErrNotPostAuthor     = errors.New("只有作者才能编辑帖子")
	ErrUserFollowSelf    = errors.New("用户不能关注自己")
	ErrFileNotSupported  = errors.New("不支持的文件类型")
	ErrFileNotExist      = errors.New("文件不存在")
	UnauthorizedError    = errors.New("权限不足")
	UnExpectedError      = errors.New("系统异常，请稍后重试")
)

var ErrorMap = map[error]int{
	ErrParamInvalid:      BadRequest,
	ErrUserNotFound:      NotFound,
	ErrUserUsernameExist: BadRequest,
	ErrPasswordIncorrect: Unauthorized,
	ErrGroupNotFound:     NotFound,
	ErrGroupSlugExist:    BadRequest,
	ErrPostNotFound:      NotFound,
	ErrNotPostAuthor:     Forbidden,
	ErrUserFollowSelf:    BadRequest,
	ErrFileNotSupported:  BadRequest,
	ErrFileNotExist:      NotFound,
	UnauthorizedError:    Unauthorized,
	UnExpectedError:      InternalServerError,
}
