package controller

import (
	"context"
	"homework-show/biz/adaptor"
	dto "homework-show/biz/application/dto/homework"
	"homework-show/provider"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

// CreateHomework 创建完整作业(要求媒体)
func CreateHomework(ctx context.Context, c *app.RequestContext) {
	var req dto.CreateHomeworkReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}
	ctx = adaptor.InjectContext(ctx, c)
	p := provider.Get()
	resp, err := p.HomeworkService.CreateHomework(ctx, &req)
	adaptor.PostProcess(ctx, c, resp, err)
}

// CreateHomeworkDraft 创建草稿(媒体可后补)
func CreateHomeworkDraft(ctx context.Context, c *app.RequestContext) {
	var req dto.CreateHomeworkReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}
	ctx = adaptor.InjectContext(ctx, c)
	p := provider.Get()
	resp, err := p.HomeworkService.CreateHomeworkDraft(ctx, &req)
	adaptor.PostProcess(ctx, c, resp, err)
}

func GetHomework(ctx context.Context, c *app.RequestContext) {
	var req dto.GetHomeworkReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}
	ctx = adaptor.InjectContext(ctx, c)
	p := provider.Get()
	resp, err := p.HomeworkService.GetHomework(ctx, &req)
	adaptor.PostProcess(ctx, c, resp, err)
}

func ListHomeworks(ctx context.Context, c *app.RequestContext) {
	var req dto.ListHomeworksReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}
	ctx = adaptor.InjectContext(ctx, c)
	p := provider.Get()
	resp, err := p.HomeworkService.ListHomeworks(ctx, &req)
	adaptor.PostProcess(ctx, c, resp, err)
}

func ListByPerson(ctx context.Context, c *app.RequestContext) {
	var req dto.ListByKeyReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}
	ctx = adaptor.InjectContext(ctx, c)
	p := provider.Get()
	resp, err := p.HomeworkService.ListByPerson(ctx, &req)
	adaptor.PostProcess(ctx, c, resp, err)
}

func ListByGroup(ctx context.Context, c *app.RequestContext) {
	var req dto.ListByKeyReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}
	ctx = adaptor.InjectContext(ctx, c)
	p := provider.Get()
	resp, err := p.HomeworkService.ListByGroup(ctx, &req)
	adaptor.PostProcess(ctx, c, resp, err)
}

func ListBySchool(ctx context.Context, c *app.RequestContext) {
	var req dto.ListByKeyReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}
	ctx = adaptor.InjectContext(ctx, c)
	p := provider.Get()
	resp, err := p.HomeworkService.ListBySchool(ctx, &req)
	adaptor.PostProcess(ctx, c, resp, err)
}

func ListWithImages(ctx context.Context, c *app.RequestContext) {
	var req dto.ListHomeworksReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}
	ctx = adaptor.InjectContext(ctx, c)
	p := provider.Get()
	resp, err := p.HomeworkService.ListWithImages(ctx, &req)
	adaptor.PostProcess(ctx, c, resp, err)
}

func ListWithVideos(ctx context.Context, c *app.RequestContext) {
	var req dto.ListHomeworksReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}
	ctx = adaptor.InjectContext(ctx, c)
	p := provider.Get()
	resp, err := p.HomeworkService.ListWithVideos(ctx, &req)
	adaptor.PostProcess(ctx, c, resp, err)
}

func ListWithUrls(ctx context.Context, c *app.RequestContext) {
	var req dto.ListHomeworksReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}
	ctx = adaptor.InjectContext(ctx, c)
	p := provider.Get()
	resp, err := p.HomeworkService.ListWithUrls(ctx, &req)
	adaptor.PostProcess(ctx, c, resp, err)
}

func UpdateHomework(ctx context.Context, c *app.RequestContext) {
	var req dto.UpdateHomeworkReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}
	ctx = adaptor.InjectContext(ctx, c)
	p := provider.Get()
	resp, err := p.HomeworkService.UpdateHomework(ctx, &req)
	adaptor.PostProcess(ctx, c, resp, err)
}

func DeleteHomework(ctx context.Context, c *app.RequestContext) {
	var req dto.DeleteHomeworkReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}
	ctx = adaptor.InjectContext(ctx, c)
	p := provider.Get()
	err := p.HomeworkService.DeleteHomework(ctx, &req)
	if err == nil {
		c.Status(consts.StatusNoContent)
		return
	}
	adaptor.PostProcess(ctx, c, nil, err)
}
