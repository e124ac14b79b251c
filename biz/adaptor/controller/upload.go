package controller

import (
	"context"
	"homework-show/biz/adaptor"
	"homework-show/biz/application/service"
	dto "homework-show/biz/application/dto/upload"
	"homework-show/provider"
	"io"
	"mime/multipart"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

// Presign 客户端直传加签
func Presign(ctx context.Context, c *app.RequestContext) {
	var req dto.PresignReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}
	ctx = adaptor.InjectContext(ctx, c)
	p := provider.Get()
	resp, err := p.UploadService.Presign(ctx, &req)
	adaptor.PostProcess(ctx, c, resp, err)
}

// Upload 单文件服务端上传，上传前在服务端完成压缩/转码
func Upload(ctx context.Context, c *app.RequestContext) {
	fh, err := c.FormFile("file")
	if err != nil {
		c.String(consts.StatusBadRequest, "file required")
		return
	}
	payload, err := readFile(fh)
	if err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}
	req := presignMetaFromForm(c)

	ctx = adaptor.InjectContext(ctx, c)
	p := provider.Get()
	resp, err := p.UploadService.UploadFiles(ctx, req, []*service.FilePayload{payload})
	adaptor.PostProcess(ctx, c, resp, err)
}

// UploadMulti 多文件上传，逐个顺序处理以限制峰值内存
func UploadMulti(ctx context.Context, c *app.RequestContext) {
	form, err := c.MultipartForm()
	if err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}
	fhs := form.File["files"]
	if len(fhs) == 0 {
		c.String(consts.StatusBadRequest, "files required")
		return
	}
	files := make([]*service.FilePayload, 0, len(fhs))
	for _, fh := range fhs {
		payload, err := readFile(fh)
		if err != nil {
			c.String(consts.StatusBadRequest, err.Error())
			return
		}
		files = append(files, payload)
	}
	req := presignMetaFromForm(c)

	ctx = adaptor.InjectContext(ctx, c)
	p := provider.Get()
	resp, err := p.UploadService.UploadFiles(ctx, req, files)
	adaptor.PostProcess(ctx, c, resp, err)
}

// CreateDraftAndPresign 建草稿并为直传签名
func CreateDraftAndPresign(ctx context.Context, c *app.RequestContext) {
	var req dto.CreateDraftAndPresignReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}
	ctx = adaptor.InjectContext(ctx, c)
	p := provider.Get()
	resp, err := p.UploadService.CreateDraftAndPresign(ctx, &req)
	adaptor.PostProcess(ctx, c, resp, err)
}

// DeleteFiles 按URL删除对象
func DeleteFiles(ctx context.Context, c *app.RequestContext) {
	var req dto.DeleteFilesReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}
	ctx = adaptor.InjectContext(ctx, c)
	p := provider.Get()
	err := p.UploadService.DeleteFiles(ctx, &req)
	if err == nil {
		c.Status(consts.StatusNoContent)
		return
	}
	adaptor.PostProcess(ctx, c, nil, err)
}

func readFile(fh *multipart.FileHeader) (*service.FilePayload, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return nil, err
	}
	return &service.FilePayload{
		Name:        fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Data:        data,
	}, nil
}

func presignMetaFromForm(c *app.RequestContext) *dto.PresignReq {
	return &dto.PresignReq{
		HomeworkId: c.PostForm("homeworkId"),
		SchoolName: c.PostForm("schoolName"),
		GroupName:  c.PostForm("groupName"),
	}
}
