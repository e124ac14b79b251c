package storage

import (
	"bytes"
	"context"
	"fmt"
	"homework-show/biz/infrastructure/config"
	"homework-show/biz/infrastructure/util/log"
	"io"
	"os"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/samber/lo"
)

const urlMarker = ".amazonaws.com/"

// S3Client S3对象存储适配器
type S3Client struct {
	svc    *s3.S3
	bucket string
	region string
}

func NewS3Client(cfg *config.Config) *S3Client {
	sess := session.Must(session.NewSession(&aws.Config{
		Region: aws.String(cfg.AWS.Region),
	}))
	return &S3Client{
		svc:    s3.New(sess),
		bucket: cfg.AWS.Bucket,
		region: cfg.AWS.Region,
	}
}

func (c *S3Client) Bucket() string {
	return c.bucket
}

// ObjectURL 对象的公开访问URL
func (c *S3Client) ObjectURL(key string) string {
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", c.bucket, c.region, key)
}

// PutObject 上传到默认bucket，返回公开URL
func (c *S3Client) PutObject(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	if err := c.Upload(ctx, c.bucket, key, data, contentType); err != nil {
		return "", err
	}
	return c.ObjectURL(key), nil
}

// Upload 实现 media.ObjectStore
func (c *S3Client) Upload(ctx context.Context, bucket, key string, data []byte, contentType string) error {
	_, err := c.svc.PutObjectWithContext(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	return err
}

// Head 探测对象是否存在。明确的NotFound返回(false, nil)，
// 其他错误按不确定处理交给调用方
func (c *S3Client) Head(ctx context.Context, bucket, key string) (bool, error) {
	_, err := c.svc.HeadObjectWithContext(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err == nil {
		return true, nil
	}
	if aerr, ok := err.(awserr.Error); ok {
		switch aerr.Code() {
		case "NotFound", "404", s3.ErrCodeNoSuchKey:
			return false, nil
		}
	}
	return false, err
}

// Download 把对象流式写入本地文件
func (c *S3Client) Download(ctx context.Context, bucket, key, destPath string) error {
	out, err := c.svc.GetObjectWithContext(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return err
	}
	defer out.Body.Close()

	f, err := os.Create(destPath)
	if err != nil {
		return err
	}
	defer f.Close()
	_, err = io.Copy(f, out.Body)
	return err
}

// SignedPutURL 生成15分钟有效的上传加签URL
func (c *S3Client) SignedPutURL(key, contentType string, expire time.Duration) (string, error) {
	req, _ := c.svc.PutObjectRequest(&s3.PutObjectInput{
		Bucket:      aws.String(c.bucket),
		Key:         aws.String(key),
		ContentType: aws.String(contentType),
	})
	return req.Presign(expire)
}

// DeleteObjects 批量删除，报错的key逐个重试一次。
// 删除失败只记日志，资产残留是可接受的降级结果
func (c *S3Client) DeleteObjects(ctx context.Context, keys []string) {
	if len(keys) == 0 {
		return
	}
	objects := lo.Map(keys, func(k string, _ int) *s3.ObjectIdentifier {
		return &s3.ObjectIdentifier{Key: aws.String(k)}
	})
	out, err := c.svc.DeleteObjectsWithContext(ctx, &s3.DeleteObjectsInput{
		Bucket: aws.String(c.bucket),
		Delete: &s3.Delete{Objects: objects},
	})
	if err != nil {
		log.CtxError(ctx, "bulk s3 delete failed, attempting singles: %v", err)
		for _, k := range keys {
			c.deleteOne(ctx, k)
		}
		return
	}
	for _, e := range out.Errors {
		log.CtxError(ctx, "s3 deleteObjects reported error for %s: %s", aws.StringValue(e.Key), aws.StringValue(e.Message))
		c.deleteOne(ctx, aws.StringValue(e.Key))
	}
}

func (c *S3Client) deleteOne(ctx context.Context, key string) {
	_, err := c.svc.DeleteObjectWithContext(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(c.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		log.CtxError(ctx, "failed to delete s3 object %s: %v", key, err)
	}
}

// ExtractKey 从URL里提取本bucket的对象key，不属于本bucket时返回空串。
// 传入的已经是key(无协议头)时原样返回
func (c *S3Client) ExtractKey(possibleURL string) string {
	if possibleURL == "" {
		return ""
	}
	if !strings.HasPrefix(possibleURL, "http") {
		return possibleURL
	}
	if idx := strings.Index(possibleURL, urlMarker); idx >= 0 {
		return possibleURL[idx+len(urlMarker):]
	}
	if c.bucket != "" && strings.Contains(possibleURL, c.bucket) {
		i := strings.Index(possibleURL, c.bucket)
		after := possibleURL[i+len(c.bucket):]
		return strings.TrimLeft(after, "/")
	}
	return ""
}
