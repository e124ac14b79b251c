package controller

import (
	"context"
	"homework-show/biz/adaptor"
	dto "homework-show/biz/application/dto/user"
	"homework-show/provider"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

func SignUp(ctx context.Context, c *app.RequestContext) {
	var req dto.SignUpReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}
	ctx = adaptor.InjectContext(ctx, c)
	p := provider.Get()
	resp, err := p.UserService.SignUp(ctx, &req)
	adaptor.PostProcess(ctx, c, resp, err)
}

func SignIn(ctx context.Context, c *app.RequestContext) {
	var req dto.SignInReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}
	ctx = adaptor.InjectContext(ctx, c)
	p := provider.Get()
	resp, err := p.UserService.SignIn(ctx, &req)
	adaptor.PostProcess(ctx, c, resp, err)
}

func SendVerifyCode(ctx context.Context, c *app.RequestContext) {
	var req dto.SendCodeReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}
	ctx = adaptor.InjectContext(ctx, c)
	p := provider.Get()
	resp, err := p.VerificationService.SendCode(ctx, &req)
	adaptor.PostProcess(ctx, c, resp, err)
}

func VerifyCode(ctx context.Context, c *app.RequestContext) {
	var req dto.VerifyCodeReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}
	ctx = adaptor.InjectContext(ctx, c)
	p := provider.Get()
	resp, err := p.VerificationService.VerifyCode(ctx, &req)
	adaptor.PostProcess(ctx, c, resp, err)
}
