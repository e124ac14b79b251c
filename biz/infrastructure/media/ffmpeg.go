package media

import (
	"context"
	"homework-show/biz/infrastructure/config"
	"homework-show/biz/infrastructure/util/log"
	"os/exec"
	"time"
)

// FFmpeg 封装外部编码器。可用性在构造时探测一次，
// 之后作为依赖显式传入，不用进程级单例。
type FFmpeg struct {
	bin              string
	available        bool
	transcodeTimeout time.Duration
	posterTimeout    time.Duration
}

func NewFFmpeg(cfg *config.Config) *FFmpeg {
	bin := cfg.Media.FFmpegBin
	if bin == "" {
		bin = "ffmpeg"
	}
	f := &FFmpeg{
		bin:              bin,
		transcodeTimeout: time.Duration(cfg.Media.TranscodeTimeoutS) * time.Second,
		posterTimeout:    time.Duration(cfg.Media.PosterTimeoutS) * time.Second,
	}
	f.available = exec.Command(bin, "-version").Run() == nil
	if !f.available {
		log.Info("ffmpeg not available (bin=%s), video transcoding disabled", bin)
	}
	return f
}

func (f *FFmpeg) Available() bool {
	return f.available
}

// Transcode 转码为 H.264/AAC MP4，固定质量目标，faststart
func (f *FFmpeg) Transcode(ctx context.Context, inputPath, outputPath string) error {
	ctx, cancel := context.WithTimeout(ctx, f.transcodeTimeout)
	defer cancel()
	cmd := exec.CommandContext(ctx, f.bin,
		"-y",
		"-i", inputPath,
		"-c:v", "libx264",
		"-crf", "28",
		"-preset", "fast",
		"-c:a", "aac",
		"-b:a", "128k",
		"-movflags", "+faststart",
		outputPath,
	)
	return cmd.Run()
}

// ExtractPoster 在0.5秒处取一帧输出PNG
func (f *FFmpeg) ExtractPoster(ctx context.Context, inputPath, outputPath string) error {
	ctx, cancel := context.WithTimeout(ctx, f.posterTimeout)
	defer cancel()
	cmd := exec.CommandContext(ctx, f.bin,
		"-y",
		"-ss", "0.5",
		"-i", inputPath,
		"-frames:v", "1",
		outputPath,
	)
	return cmd.Run()
}
