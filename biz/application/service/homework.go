package service

import (
	"context"
	"homework-show/biz/adaptor"
	dto "homework-show/biz/application/dto/homework"
	"homework-show/biz/infrastructure/consts"
	"homework-show/biz/infrastructure/media"
	"homework-show/biz/infrastructure/repository/homework"
	"homework-show/biz/infrastructure/storage"
	"homework-show/biz/infrastructure/util/log"
	"time"

	"github.com/google/uuid"
	"github.com/google/wire"
	"github.com/jinzhu/copier"
	"github.com/samber/lo"
)

type IHomeworkService interface {
	CreateHomework(ctx context.Context, req *dto.CreateHomeworkReq) (*dto.CreateHomeworkResp, error)
	CreateHomeworkDraft(ctx context.Context, req *dto.CreateHomeworkReq) (*dto.CreateHomeworkResp, error)
	GetHomework(ctx context.Context, req *dto.GetHomeworkReq) (*homework.Homework, error)
	ListHomeworks(ctx context.Context, req *dto.ListHomeworksReq) (*dto.ListHomeworksResp, error)
	ListByPerson(ctx context.Context, req *dto.ListByKeyReq) (*dto.ListHomeworksResp, error)
	ListByGroup(ctx context.Context, req *dto.ListByKeyReq) (*dto.ListHomeworksResp, error)
	ListBySchool(ctx context.Context, req *dto.ListByKeyReq) (*dto.ListHomeworksResp, error)
	ListWithImages(ctx context.Context, req *dto.ListHomeworksReq) (*dto.ListHomeworksResp, error)
	ListWithVideos(ctx context.Context, req *dto.ListHomeworksReq) (*dto.ListHomeworksResp, error)
	ListWithUrls(ctx context.Context, req *dto.ListHomeworksReq) (*dto.ListHomeworksResp, error)
	UpdateHomework(ctx context.Context, req *dto.UpdateHomeworkReq) (*dto.UpdateHomeworkResp, error)
	DeleteHomework(ctx context.Context, req *dto.DeleteHomeworkReq) error
}

type HomeworkService struct {
	HomeworkMapper *homework.DynamoMapper
	S3             *storage.S3Client
	PosterCache    *media.PosterCache
}

var HomeworkServiceSet = wire.NewSet(
	wire.Struct(new(HomeworkService), "*"),
	wire.Bind(new(IHomeworkService), new(*HomeworkService)),
)

// CreateHomework 创建完整作业，要求至少带一项媒体
func (s *HomeworkService) CreateHomework(ctx context.Context, req *dto.CreateHomeworkReq) (*dto.CreateHomeworkResp, error) {
	return s.create(ctx, req, true)
}

// CreateHomeworkDraft 创建草稿，允许先建记录后补媒体
func (s *HomeworkService) CreateHomeworkDraft(ctx context.Context, req *dto.CreateHomeworkReq) (*dto.CreateHomeworkResp, error) {
	return s.create(ctx, req, false)
}

func (s *HomeworkService) create(ctx context.Context, req *dto.CreateHomeworkReq, requireMedia bool) (*dto.CreateHomeworkResp, error) {
	userMeta := adaptor.ExtractUserMeta(ctx)
	if userMeta.GetUserId() == "" {
		return nil, consts.ErrNotAuthentication
	}

	h := new(homework.Homework)
	if err := copier.Copy(h, req); err != nil {
		log.CtxError(ctx, "copy create request failed: %v", err)
		return nil, consts.ErrCreateHomework
	}

	isTeam := homework.InferIsTeam(req.IsTeam, req.PersonName, req.Members)
	h.IsTeam = &isTeam
	if isTeam {
		h.PersonName = ""
	} else {
		h.GroupName = ""
		h.Members = nil
	}
	h.ID = uuid.New().String()
	h.CreatedAt = time.Now().UTC().Format(time.RFC3339)

	if err := homework.Validate(h, requireMedia); err != nil {
		return nil, err
	}
	h.Normalize()

	if err := s.HomeworkMapper.Put(ctx, h); err != nil {
		log.CtxError(ctx, "create homework failed: %v", err)
		return nil, consts.ErrCreateHomework
	}

	s.ensurePosters(ctx, h)
	return &dto.CreateHomeworkResp{Homework: h}, nil
}

func (s *HomeworkService) GetHomework(ctx context.Context, req *dto.GetHomeworkReq) (*homework.Homework, error) {
	return s.HomeworkMapper.FindOne(ctx, req.Id)
}

func (s *HomeworkService) ListHomeworks(ctx context.Context, req *dto.ListHomeworksReq) (*dto.ListHomeworksResp, error) {
	return s.list(ctx, func(limit int64) ([]*homework.Homework, error) {
		return s.HomeworkMapper.ListAll(ctx, limit)
	}, req.Limit)
}

func (s *HomeworkService) ListByPerson(ctx context.Context, req *dto.ListByKeyReq) (*dto.ListHomeworksResp, error) {
	return s.list(ctx, func(limit int64) ([]*homework.Homework, error) {
		return s.HomeworkMapper.ListByPerson(ctx, req.Key, limit)
	}, req.Limit)
}

func (s *HomeworkService) ListByGroup(ctx context.Context, req *dto.ListByKeyReq) (*dto.ListHomeworksResp, error) {
	return s.list(ctx, func(limit int64) ([]*homework.Homework, error) {
		return s.HomeworkMapper.ListByGroup(ctx, req.Key, limit)
	}, req.Limit)
}

func (s *HomeworkService) ListBySchool(ctx context.Context, req *dto.ListByKeyReq) (*dto.ListHomeworksResp, error) {
	return s.list(ctx, func(limit int64) ([]*homework.Homework, error) {
		return s.HomeworkMapper.ListBySchool(ctx, req.Key, limit)
	}, req.Limit)
}

func (s *HomeworkService) ListWithImages(ctx context.Context, req *dto.ListHomeworksReq) (*dto.ListHomeworksResp, error) {
	return s.list(ctx, func(limit int64) ([]*homework.Homework, error) {
		return s.HomeworkMapper.ListWithImages(ctx, limit)
	}, req.Limit)
}

func (s *HomeworkService) ListWithVideos(ctx context.Context, req *dto.ListHomeworksReq) (*dto.ListHomeworksResp, error) {
	return s.list(ctx, func(limit int64) ([]*homework.Homework, error) {
		return s.HomeworkMapper.ListWithVideos(ctx, limit)
	}, req.Limit)
}

func (s *HomeworkService) ListWithUrls(ctx context.Context, req *dto.ListHomeworksReq) (*dto.ListHomeworksResp, error) {
	return s.list(ctx, func(limit int64) ([]*homework.Homework, error) {
		return s.HomeworkMapper.ListWithUrls(ctx, limit)
	}, req.Limit)
}

func (s *HomeworkService) list(ctx context.Context, query func(int64) ([]*homework.Homework, error), limit *int64) (*dto.ListHomeworksResp, error) {
	n := int64(consts.DefaultListLimit)
	if limit != nil && *limit > 0 {
		n = *limit
	}
	homeworks, err := query(n)
	if err != nil {
		log.CtxError(ctx, "list homeworks failed: %v", err)
		return nil, consts.ErrListHomeworks
	}
	return &dto.ListHomeworksResp{Homeworks: homeworks}, nil
}

// UpdateHomework 读取-合并-整体重校验-整条写回。
// 并发更新同一条记录是last-write-wins，后写覆盖先写，这里不做版本检查
func (s *HomeworkService) UpdateHomework(ctx context.Context, req *dto.UpdateHomeworkReq) (*dto.UpdateHomeworkResp, error) {
	userMeta := adaptor.ExtractUserMeta(ctx)
	if userMeta.GetUserId() == "" {
		return nil, consts.ErrNotAuthentication
	}

	existing, err := s.HomeworkMapper.FindOne(ctx, req.Id)
	if err != nil {
		return nil, err
	}

	patch := new(homework.Patch)
	if err := copier.Copy(patch, req); err != nil {
		log.CtxError(ctx, "copy patch failed: %v", err)
		return nil, consts.ErrUpdateHomework
	}

	merged := homework.ApplyPatch(existing, patch)
	if err := homework.Validate(merged, true); err != nil {
		return nil, err
	}
	merged.Normalize()

	if err := s.HomeworkMapper.Put(ctx, merged); err != nil {
		log.CtxError(ctx, "update homework failed: %v", err)
		return nil, consts.ErrUpdateHomework
	}

	s.ensurePosters(ctx, merged)
	return &dto.UpdateHomeworkResp{Homework: merged}, nil
}

// DeleteHomework 先尽力清理对象存储里的资产(含派生封面)，再删元数据。
// 资产删除失败不阻塞记录删除，残留对象是可接受的降级
func (s *HomeworkService) DeleteHomework(ctx context.Context, req *dto.DeleteHomeworkReq) error {
	userMeta := adaptor.ExtractUserMeta(ctx)
	if userMeta.GetUserId() == "" {
		return consts.ErrNotAuthentication
	}

	existing, err := s.HomeworkMapper.FindOne(ctx, req.Id)
	if err != nil {
		return err
	}

	var urls []string
	urls = append(urls, existing.Images...)
	urls = append(urls, existing.Videos...)
	urls = append(urls, existing.Urls...)
	urls = append(urls, existing.VideoPosters...)
	keys := lo.Uniq(lo.FilterMap(urls, func(u string, _ int) (string, bool) {
		k := s.S3.ExtractKey(u)
		return k, k != ""
	}))
	s.S3.DeleteObjects(ctx, keys)

	if err := s.HomeworkMapper.Delete(ctx, existing); err != nil {
		log.CtxError(ctx, "delete homework record failed: %v", err)
		return consts.ErrDeleteHomework
	}
	return nil
}

// ensurePosters 为视频补齐封面并回写记录。
// 失败只记日志，不影响本次请求的结果
func (s *HomeworkService) ensurePosters(ctx context.Context, h *homework.Homework) {
	if len(h.Videos) == 0 {
		return
	}
	posters := s.PosterCache.EnsurePosters(ctx, h.Videos, h.VideoPosters)
	if len(posters) == len(h.VideoPosters) {
		return
	}
	h.VideoPosters = posters
	if err := s.HomeworkMapper.Put(ctx, h); err != nil {
		log.CtxError(ctx, "write back video posters failed: %v", err)
	}
}
