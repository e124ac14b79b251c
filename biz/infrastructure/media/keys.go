package media

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
	"time"
)

var nonAlnum = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify 把自由文本转成key安全的小写短横线token
func Slugify(input string) string {
	s := strings.ToLower(strings.TrimSpace(input))
	s = nonAlnum.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")
	if len(s) > 80 {
		s = s[:80]
	}
	if s == "" {
		return "unknown"
	}
	return s
}

// MakeKey 构造上传对象的存储key
// 模板: school/{schoolSlug}/{YYYY}/{MM}/{ms}/{groupSlug}/{homeworkId}/{ms}-{slugifiedFilename}
// 两处 {ms} 必须来自同一次取时间
func MakeKey(schoolName, groupName, homeworkID, filename string) string {
	school := Slugify(schoolName)
	group := Slugify(groupName)
	now := time.Now()
	ms := now.UnixMilli()
	safeName := Slugify(filename)
	return fmt.Sprintf("school/%s/%d/%02d/%d/%s/%s/%d-%s",
		school, now.Year(), int(now.Month()), ms, group, homeworkID, ms, safeName)
}

// PosterKey 把视频key的扩展名替换为.png；没有扩展名则直接追加
func PosterKey(videoKey string) string {
	dot := strings.LastIndex(videoKey, ".")
	if dot == -1 {
		return videoKey + ".png"
	}
	return videoKey[:dot] + ".png"
}

// PosterURL 对URL的path部分做与PosterKey一致的变换，query原样保留
func PosterURL(videoURL string) string {
	base := videoURL
	suffix := ""
	if q := strings.Index(videoURL, "?"); q >= 0 {
		base = videoURL[:q]
		suffix = videoURL[q:]
	}
	return PosterKey(base) + suffix
}

// ParseS3URL 解析virtual-hosted-style的S3 URL，返回bucket和key
func ParseS3URL(rawURL string) (bucket string, key string, ok bool) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", "", false
	}
	hostParts := strings.Split(u.Hostname(), ".")
	s3Index := -1
	for i, p := range hostParts {
		if p == "s3" || strings.HasPrefix(p, "s3-") {
			s3Index = i
			break
		}
	}
	if s3Index <= 0 {
		return "", "", false
	}
	bucket = strings.Join(hostParts[:s3Index], ".")
	key = strings.TrimLeft(u.Path, "/")
	if bucket == "" || key == "" {
		return "", "", false
	}
	return bucket, key, true
}
