package consts

import (
	"errors"
	"fmt"
	"strings"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type Errno struct {
	err  error
	code codes.Code
}

// GRPCStatus 实现 GRPCStatus 方法
func (en *Errno) GRPCStatus() *status.Status {
	return status.New(en.code, en.err.Error())
}

// 实现 Error 方法
func (en *Errno) Error() string {
	return en.err.Error()
}

// NewErrno 创建自定义错误
func NewErrno(code codes.Code, err error) *Errno {
	return &Errno{
		err:  err,
		code: code,
	}
}

// 定义常量错误
var (
	ErrForbidden         = NewErrno(codes.PermissionDenied, errors.New("forbidden"))
	ErrNotAuthentication = NewErrno(codes.Code(1000), errors.New("not authentication"))
	ErrSignUp            = NewErrno(codes.Code(1001), errors.New("sign up failed, please retry"))
	ErrSignIn            = NewErrno(codes.Code(1002), errors.New("sign in failed, check your credentials"))
	ErrRepeatedSignUp    = NewErrno(codes.Code(1003), errors.New("username or email already registered"))
	ErrUserBlocked       = NewErrno(codes.Code(1004), errors.New("account is blocked"))
	ErrSendCode          = NewErrno(codes.Code(1005), errors.New("failed to send verification code, please retry"))
	ErrVerifyCode        = NewErrno(codes.Code(1006), errors.New("invalid verification code"))
	ErrCreateHomework    = NewErrno(codes.Code(1010), errors.New("failed to create homework"))
	ErrUpdateHomework    = NewErrno(codes.Code(1011), errors.New("failed to update homework"))
	ErrDeleteHomework    = NewErrno(codes.Code(1012), errors.New("failed to delete homework"))
	ErrListHomeworks     = NewErrno(codes.Code(1013), errors.New("failed to list homeworks"))
	ErrUpload            = NewErrno(codes.Code(1020), errors.New("upload failed"))
	ErrPresign           = NewErrno(codes.Code(1021), errors.New("presign failed"))
	ErrDeleteFiles       = NewErrno(codes.Code(1022), errors.New("failed to delete files"))
	ErrNoMedia           = NewErrno(codes.Code(1030), errors.New("at least one of images, videos or urls must be provided"))
)

// ErrInvalidParams 调用时错误
var (
	ErrInvalidParams = NewErrno(codes.InvalidArgument, errors.New("invalid params"))
)

// 数据库相关错误
var (
	ErrNotFound        = NewErrno(codes.NotFound, errors.New("not found"))
	ErrInvalidObjectId = NewErrno(codes.InvalidArgument, errors.New("invalid id"))
	ErrUpdate          = NewErrno(codes.Code(2001), errors.New("update failed"))
	ErrStorageWrite    = NewErrno(codes.Internal, errors.New("storage write failed"))
)

// NewMissingFieldsErrno 把所有缺失字段合并进一个校验错误
func NewMissingFieldsErrno(missing []string) *Errno {
	return NewErrno(codes.InvalidArgument,
		fmt.Errorf("missing required fields: %s", strings.Join(missing, ", ")))
}

// NewInvalidSchoolErrno 校验机构名失败，与缺字段错误区分开
func NewInvalidSchoolErrno(allowed []string) *Errno {
	return NewErrno(codes.InvalidArgument,
		fmt.Errorf("invalid school_name, allowed schools: %s", strings.Join(allowed, ", ")))
}
