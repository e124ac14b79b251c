package service

import (
	"context"
	"homework-show/biz/adaptor"
	dtohw "homework-show/biz/application/dto/homework"
	dto "homework-show/biz/application/dto/upload"
	"homework-show/biz/infrastructure/config"
	"homework-show/biz/infrastructure/consts"
	"homework-show/biz/infrastructure/media"
	"homework-show/biz/infrastructure/storage"
	"homework-show/biz/infrastructure/util/log"
	"path"
	"strings"
	"time"

	"github.com/google/wire"
	"github.com/jinzhu/copier"
	"github.com/samber/lo"
)

// FilePayload 控制器从multipart表单解出的单个文件
type FilePayload struct {
	Name        string
	ContentType string
	Data        []byte
}

type IUploadService interface {
	Presign(ctx context.Context, req *dto.PresignReq) (*dto.PresignResp, error)
	UploadFiles(ctx context.Context, req *dto.PresignReq, files []*FilePayload) (*dto.UploadResp, error)
	CreateDraftAndPresign(ctx context.Context, req *dto.CreateDraftAndPresignReq) (*dto.CreateDraftAndPresignResp, error)
	DeleteFiles(ctx context.Context, req *dto.DeleteFilesReq) error
}

type UploadService struct {
	Config          *config.Config
	Transcoder      *media.Transcoder
	S3              *storage.S3Client
	HomeworkService IHomeworkService
}

var UploadServiceSet = wire.NewSet(
	wire.Struct(new(UploadService), "*"),
	wire.Bind(new(IUploadService), new(*UploadService)),
)

// Presign 生成客户端直传的加签URL
func (s *UploadService) Presign(ctx context.Context, req *dto.PresignReq) (*dto.PresignResp, error) {
	if err := s.checkUploader(ctx); err != nil {
		return nil, err
	}
	if req.HomeworkId == "" || req.Filename == "" {
		return nil, consts.ErrInvalidParams
	}

	contentType := req.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	key := media.MakeKey(req.SchoolName, req.GroupName, req.HomeworkId, req.Filename)
	uploadURL, err := s.S3.SignedPutURL(key, contentType, consts.PresignExpireSec*time.Second)
	if err != nil {
		log.CtxError(ctx, "presign failed: %v", err)
		return nil, consts.ErrPresign
	}
	return &dto.PresignResp{
		UploadUrl: uploadURL,
		FileUrl:   s.S3.ObjectURL(key),
		Key:       key,
		ExpiresIn: consts.PresignExpireSec,
	}, nil
}

// UploadFiles 服务端上传。文件逐个顺序处理：
// 先经转码器压缩/转码，再写入对象存储；视频转码产出的封面帧一并上传。
// 转码降级(原样透传)不视为失败
func (s *UploadService) UploadFiles(ctx context.Context, req *dto.PresignReq, files []*FilePayload) (*dto.UploadResp, error) {
	if err := s.checkUploader(ctx); err != nil {
		return nil, err
	}
	if req.HomeworkId == "" || len(files) == 0 {
		return nil, consts.ErrInvalidParams
	}
	if len(files) > s.Config.Upload.MaxFiles {
		return nil, consts.ErrInvalidParams
	}
	total := lo.SumBy(files, func(f *FilePayload) int64 { return int64(len(f.Data)) })
	if total > s.Config.Upload.MaxTotalBytes {
		return nil, consts.ErrInvalidParams
	}

	uploaded := make([]*dto.UploadedFile, 0, len(files))
	for _, f := range files {
		result := s.Transcoder.Process(ctx, f.Data, f.ContentType)

		name := f.Name
		if result.Compressed {
			name = replaceExt(name, extForContentType(result.ContentType))
		}
		key := media.MakeKey(req.SchoolName, req.GroupName, req.HomeworkId, name)
		fileURL, err := s.S3.PutObject(ctx, key, result.Data, result.ContentType)
		if err != nil {
			log.CtxError(ctx, "upload %s failed: %v", f.Name, err)
			return nil, consts.ErrUpload
		}

		file := &dto.UploadedFile{
			Url:         fileURL,
			Key:         key,
			ContentType: result.ContentType,
			Compressed:  result.Compressed,
		}
		if result.Poster != nil {
			posterKey := media.PosterKey(key)
			if posterURL, err := s.S3.PutObject(ctx, posterKey, result.Poster, "image/png"); err != nil {
				// 封面上传失败不影响视频本体
				log.CtxError(ctx, "upload poster for %s failed: %v", f.Name, err)
			} else {
				file.PosterUrl = posterURL
			}
		}
		uploaded = append(uploaded, file)
	}
	return &dto.UploadResp{Files: uploaded}, nil
}

// CreateDraftAndPresign 先建草稿记录再为后续直传签名
func (s *UploadService) CreateDraftAndPresign(ctx context.Context, req *dto.CreateDraftAndPresignReq) (*dto.CreateDraftAndPresignResp, error) {
	if err := s.checkUploader(ctx); err != nil {
		return nil, err
	}

	createReq := new(dtohw.CreateHomeworkReq)
	if err := copier.Copy(createReq, req); err != nil {
		log.CtxError(ctx, "copy draft request failed: %v", err)
		return nil, consts.ErrCreateHomework
	}
	created, err := s.HomeworkService.CreateHomeworkDraft(ctx, createReq)
	if err != nil {
		return nil, err
	}

	h := created.Homework
	presigns := make([]*dto.PresignResp, 0, len(req.Filenames))
	for _, filename := range req.Filenames {
		p, err := s.Presign(ctx, &dto.PresignReq{
			HomeworkId: h.ID,
			Filename:   filename,
			SchoolName: h.SchoolName,
			GroupName:  h.GroupName,
		})
		if err != nil {
			return nil, err
		}
		presigns = append(presigns, p)
	}
	return &dto.CreateDraftAndPresignResp{
		HomeworkId: h.ID,
		Presigns:   presigns,
	}, nil
}

// DeleteFiles 按URL删除对象，尽力而为
func (s *UploadService) DeleteFiles(ctx context.Context, req *dto.DeleteFilesReq) error {
	if err := s.checkUploader(ctx); err != nil {
		return err
	}
	keys := lo.Uniq(lo.FilterMap(req.Urls, func(u string, _ int) (string, bool) {
		k := s.S3.ExtractKey(u)
		return k, k != ""
	}))
	if len(keys) == 0 {
		return consts.ErrInvalidParams
	}
	s.S3.DeleteObjects(ctx, keys)
	return nil
}

func (s *UploadService) checkUploader(ctx context.Context) error {
	userMeta := adaptor.ExtractUserMeta(ctx)
	if userMeta.GetUserId() == "" {
		return consts.ErrNotAuthentication
	}
	if userMeta.GetRole() == consts.RoleStudentPublic {
		return consts.ErrForbidden
	}
	return nil
}

func extForContentType(contentType string) string {
	switch contentType {
	case "image/jpeg":
		return ".jpg"
	case "image/png":
		return ".png"
	case "image/webp":
		return ".webp"
	case "video/mp4":
		return ".mp4"
	default:
		return ""
	}
}

func replaceExt(filename, ext string) string {
	if ext == "" {
		return filename
	}
	old := path.Ext(filename)
	return strings.TrimSuffix(filename, old) + ext
}
