package media

import (
	"context"
	"fmt"
	"homework-show/biz/infrastructure/config"
	"homework-show/biz/infrastructure/util/log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/bytedance/gopkg/lang/fastrand"
)

// Result 媒体处理结果。处理失败不报错，降级为原样透传，
// Compressed=false 表示未做任何转换。
type Result struct {
	Data        []byte
	ContentType string
	Compressed  bool
	// Poster 视频转码时抽取的封面帧(PNG)，图片和透传场景为nil
	Poster []byte
}

type Transcoder struct {
	ffmpeg        *FFmpeg
	maxImageWidth int
}

func NewTranscoder(cfg *config.Config, ffmpeg *FFmpeg) *Transcoder {
	maxImageWidth := cfg.Media.MaxImageWidth
	if maxImageWidth <= 0 {
		maxImageWidth = 1920
	}
	return &Transcoder{
		ffmpeg:        ffmpeg,
		maxImageWidth: maxImageWidth,
	}
}

// Process 按MIME前缀分流处理。图片压缩和视频转码都是尽力而为，
// 任何失败都返回原始数据，由调用方决定是否接受降级结果。
func (t *Transcoder) Process(ctx context.Context, data []byte, contentType string) *Result {
	switch {
	case strings.HasPrefix(contentType, "image/"):
		return t.processImage(data, contentType)
	case strings.HasPrefix(contentType, "video/"):
		return t.processVideo(ctx, data, contentType)
	default:
		return &Result{Data: data, ContentType: contentType}
	}
}

func (t *Transcoder) processImage(data []byte, contentType string) *Result {
	out, outType, err := compressImage(data, contentType, t.maxImageWidth)
	if err != nil {
		log.Error("image compress failed, pass through: %v", err)
		return &Result{Data: data, ContentType: contentType}
	}
	return &Result{Data: out, ContentType: outType, Compressed: true}
}

func (t *Transcoder) processVideo(ctx context.Context, data []byte, contentType string) *Result {
	if !t.ffmpeg.Available() {
		return &Result{Data: data, ContentType: contentType}
	}

	base := scratchBase()
	inputPath := filepath.Join(os.TempDir(), base+".source")
	outputPath := filepath.Join(os.TempDir(), base+".mp4")
	posterPath := filepath.Join(os.TempDir(), base+".png")
	defer func() {
		_ = os.Remove(inputPath)
		_ = os.Remove(outputPath)
		_ = os.Remove(posterPath)
	}()

	if err := os.WriteFile(inputPath, data, 0o600); err != nil {
		log.Error("write scratch video failed, pass through: %v", err)
		return &Result{Data: data, ContentType: contentType}
	}

	result := &Result{Data: data, ContentType: contentType}
	posterSource := inputPath
	if err := t.ffmpeg.Transcode(ctx, inputPath, outputPath); err != nil {
		log.Error("video transcode failed, pass through: %v", err)
	} else if out, err := os.ReadFile(outputPath); err != nil {
		log.Error("read transcoded video failed, pass through: %v", err)
	} else {
		result.Data = out
		result.ContentType = "video/mp4"
		result.Compressed = true
		posterSource = outputPath
	}

	// 封面抽取与转码相互独立，单边失败不影响另一边
	if err := t.ffmpeg.ExtractPoster(ctx, posterSource, posterPath); err != nil {
		log.Error("poster extraction failed: %v", err)
		return result
	}
	poster, err := os.ReadFile(posterPath)
	if err != nil {
		log.Error("read poster frame failed: %v", err)
		return result
	}
	result.Poster = poster
	return result
}

func scratchBase() string {
	return fmt.Sprintf("media-%d-%08x", time.Now().UnixMilli(), fastrand.Uint32())
}
