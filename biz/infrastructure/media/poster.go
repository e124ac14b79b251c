package media

import (
	"context"
	"homework-show/biz/infrastructure/util/log"
	"os"
	"path/filepath"
	"strings"

	"github.com/samber/lo"
)

// ObjectStore 封面生成依赖的对象存储能力，窄接口便于测试替换
type ObjectStore interface {
	Head(ctx context.Context, bucket, key string) (bool, error)
	Download(ctx context.Context, bucket, key, destPath string) error
	Upload(ctx context.Context, bucket, key string, data []byte, contentType string) error
}

// PosterCache 为视频列表补齐封面图。
// 以记录上已有的封面URL集合做幂等判断：推导出的封面URL已存在就不再生成。
type PosterCache struct {
	store  ObjectStore
	ffmpeg *FFmpeg
}

func NewPosterCache(store ObjectStore, ffmpeg *FFmpeg) *PosterCache {
	return &PosterCache{store: store, ffmpeg: ffmpeg}
}

// EnsurePosters 返回完整的封面URL集合(existing的超集)。
// 单个视频任何一步失败都只跳过该视频，不中断整批。
func (p *PosterCache) EnsurePosters(ctx context.Context, videoURLs, existing []string) []string {
	posters := lo.Uniq(existing)
	known := make(map[string]struct{}, len(posters))
	for _, u := range posters {
		known[u] = struct{}{}
	}

	videos := lo.Uniq(lo.FilterMap(videoURLs, func(u string, _ int) (string, bool) {
		trimmed := strings.TrimSpace(u)
		return trimmed, trimmed != ""
	}))

	for _, videoURL := range videos {
		posterURL := PosterURL(videoURL)
		if _, ok := known[posterURL]; ok {
			continue
		}
		if p.ensureOne(ctx, videoURL) {
			posters = append(posters, posterURL)
			known[posterURL] = struct{}{}
		}
	}
	return posters
}

func (p *PosterCache) ensureOne(ctx context.Context, videoURL string) bool {
	bucket, key, ok := ParseS3URL(videoURL)
	if !ok {
		return false
	}
	posterKey := PosterKey(key)

	exists, err := p.store.Head(ctx, bucket, posterKey)
	if err != nil {
		// 非明确NotFound的探测失败按硬失败处理，跳过该视频
		log.CtxError(ctx, "poster head failed, skip video %s: %v", videoURL, err)
		return false
	}
	if exists {
		return true
	}

	if !p.ffmpeg.Available() {
		log.CtxInfo(ctx, "ffmpeg unavailable, skip poster generation for %s", videoURL)
		return false
	}

	base := scratchBase()
	videoPath := filepath.Join(os.TempDir(), base+".source")
	posterPath := filepath.Join(os.TempDir(), base+".png")
	defer func() {
		_ = os.Remove(videoPath)
		_ = os.Remove(posterPath)
	}()

	if err := p.store.Download(ctx, bucket, key, videoPath); err != nil {
		log.CtxError(ctx, "poster source download failed, skip video %s: %v", videoURL, err)
		return false
	}
	if err := p.ffmpeg.ExtractPoster(ctx, videoPath, posterPath); err != nil {
		log.CtxError(ctx, "poster extraction failed, skip video %s: %v", videoURL, err)
		return false
	}
	data, err := os.ReadFile(posterPath)
	if err != nil {
		log.CtxError(ctx, "read poster frame failed, skip video %s: %v", videoURL, err)
		return false
	}
	if err := p.store.Upload(ctx, bucket, posterKey, data, "image/png"); err != nil {
		log.CtxError(ctx, "poster upload failed, skip video %s: %v", videoURL, err)
		return false
	}
	return true
}
