package service

import (
	"context"
	"fmt"
	"homework-show/biz/application/dto/basic"
	dto "homework-show/biz/application/dto/user"
	"homework-show/biz/infrastructure/config"
	"homework-show/biz/infrastructure/consts"
	"homework-show/biz/infrastructure/redis"
	"homework-show/biz/infrastructure/util"
	"homework-show/biz/infrastructure/util/log"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/ses"
	"github.com/bytedance/gopkg/lang/fastrand"
	"github.com/google/wire"
)

const verifyCodePrefix = "verify"

type IVerificationService interface {
	SendCode(ctx context.Context, req *dto.SendCodeReq) (*basic.Response, error)
	VerifyCode(ctx context.Context, req *dto.VerifyCodeReq) (*basic.Response, error)
	CheckCode(ctx context.Context, email, code string) error
}

type VerificationService struct {
	Config *config.Config
}

var VerificationServiceSet = wire.NewSet(
	wire.Struct(new(VerificationService), "*"),
	wire.Bind(new(IVerificationService), new(*VerificationService)),
)

// SendCode 生成6位验证码，写入redis并通过SES发送邮件
func (s *VerificationService) SendCode(ctx context.Context, req *dto.SendCodeReq) (*basic.Response, error) {
	if req.Email == "" {
		return nil, consts.ErrInvalidParams
	}
	code := fmt.Sprintf("%06d", 100000+fastrand.Intn(900000))

	rds := redis.GetRedis(s.Config)
	if err := rds.SetexCtx(ctx, s.codeKey(req.Email), code, consts.VerifyCodeTTL); err != nil {
		log.CtxError(ctx, "store verify code failed: %v", err)
		return nil, consts.ErrSendCode
	}
	if err := s.sendMail(req.Email, code); err != nil {
		log.CtxError(ctx, "send verify mail failed: %v", err)
		return nil, consts.ErrSendCode
	}
	return util.Succeed("verification code sent")
}

// VerifyCode 校验并消费验证码
func (s *VerificationService) VerifyCode(ctx context.Context, req *dto.VerifyCodeReq) (*basic.Response, error) {
	if err := s.CheckCode(ctx, req.Email, req.Code); err != nil {
		return nil, err
	}
	return util.Succeed("ok")
}

func (s *VerificationService) CheckCode(ctx context.Context, email, code string) error {
	if email == "" || code == "" {
		return consts.ErrInvalidParams
	}
	rds := redis.GetRedis(s.Config)
	stored, err := rds.GetCtx(ctx, s.codeKey(email))
	if err != nil || stored == "" || stored != code {
		return consts.ErrVerifyCode
	}
	// 验证通过即删除，验证码只能用一次
	if _, err := rds.DelCtx(ctx, s.codeKey(email)); err != nil {
		log.CtxError(ctx, "delete verify code failed: %v", err)
	}
	return nil
}

func (s *VerificationService) codeKey(email string) string {
	return fmt.Sprintf("%s:%s", verifyCodePrefix, email)
}

func (s *VerificationService) sendMail(email, code string) error {
	sess := session.Must(session.NewSession(&aws.Config{
		Region: aws.String(s.Config.AWS.Region),
	}))
	svc := ses.New(sess)
	_, err := svc.SendEmail(&ses.SendEmailInput{
		Source: aws.String(s.Config.AWS.SESSender),
		Destination: &ses.Destination{
			ToAddresses: []*string{aws.String(email)},
		},
		Message: &ses.Message{
			Subject: &ses.Content{
				Data: aws.String("Your verification code"),
			},
			Body: &ses.Body{
				Text: &ses.Content{
					Data: aws.String(fmt.Sprintf("Your verification code is %s. It expires in 5 minutes.", code)),
				},
			},
		},
	})
	return err
}
