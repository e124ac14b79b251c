package service

import (
	"context"
	"errors"
	"homework-show/biz/adaptor"
	"homework-show/biz/application/dto/basic"
	dto "homework-show/biz/application/dto/user"
	"homework-show/biz/infrastructure/consts"
	"homework-show/biz/infrastructure/repository/user"
	"homework-show/biz/infrastructure/util"
	"homework-show/biz/infrastructure/util/log"
	"time"

	"github.com/google/wire"
	"golang.org/x/crypto/bcrypt"
)

type IUserService interface {
	SignUp(ctx context.Context, req *dto.SignUpReq) (*dto.SignInResp, error)
	SignIn(ctx context.Context, req *dto.SignInReq) (*dto.SignInResp, error)
}

type UserService struct {
	UserMapper          *user.MongoMapper
	VerificationService IVerificationService
}

var UserServiceSet = wire.NewSet(
	wire.Struct(new(UserService), "*"),
	wire.Bind(new(IUserService), new(*UserService)),
)

// SignUp 注册。邮箱验证码通过后才创建账号
func (s *UserService) SignUp(ctx context.Context, req *dto.SignUpReq) (*dto.SignInResp, error) {
	if req.Username == "" || req.Password == "" || req.Email == "" {
		return nil, consts.ErrInvalidParams
	}

	// 查重
	if _, err := s.UserMapper.FindOneByUsername(ctx, req.Username); err == nil {
		return nil, consts.ErrRepeatedSignUp
	} else if !errors.Is(err, consts.ErrNotFound) {
		return nil, consts.ErrSignUp
	}
	if _, err := s.UserMapper.FindOneByEmail(ctx, req.Email); err == nil {
		return nil, consts.ErrRepeatedSignUp
	} else if !errors.Is(err, consts.ErrNotFound) {
		return nil, consts.ErrSignUp
	}

	// 校验邮箱验证码
	if err := s.VerificationService.CheckCode(ctx, req.Email, req.VerifyCode); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		log.CtxError(ctx, "hash password failed: %v", err)
		return nil, consts.ErrSignUp
	}

	displayName := req.DisplayName
	if displayName == "" {
		displayName = req.Username
	}
	u := &user.User{
		Username:     req.Username,
		DisplayName:  displayName,
		Email:        req.Email,
		PasswordHash: string(hash),
		Role:         consts.RoleUser,
	}
	if err := s.UserMapper.Insert(ctx, u); err != nil {
		log.CtxError(ctx, "insert user failed: %v", err)
		return nil, consts.ErrSignUp
	}

	return s.issueToken(u)
}

// SignIn 登录
func (s *UserService) SignIn(ctx context.Context, req *dto.SignInReq) (*dto.SignInResp, error) {
	u, err := s.UserMapper.FindOneByUsername(ctx, req.Username)
	if err != nil {
		return nil, consts.ErrSignIn
	}
	if u.Blocked {
		return nil, consts.ErrUserBlocked
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		return nil, consts.ErrSignIn
	}

	u.LastLogin = time.Now()
	if err := s.UserMapper.Update(ctx, u); err != nil {
		log.CtxError(ctx, "update last_login failed: %v", err)
	}

	return s.issueToken(u)
}

func (s *UserService) issueToken(u *user.User) (*dto.SignInResp, error) {
	token, expireAt, err := adaptor.GenerateJwtToken(&basic.UserMeta{
		UserId:       u.ID.Hex(),
		Role:         u.Role,
		TokenVersion: u.TokenVersion,
	})
	if err != nil {
		log.Error("generate token failed for %s: %v", util.JSONF(u.Username), err)
		return nil, consts.ErrSignIn
	}
	return &dto.SignInResp{
		Token:    token,
		ExpireAt: expireAt,
		User:     u,
	}, nil
}
