package dependencies

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/Xushengqwer/go-common/core"
	"github.com/tencentyun/cos-go-sdk-v5"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"

	"github.com/Xushengqwer/house_service/config"
)

// COSClientInterface 房源图片存储所需的对象存储操作
type COSClientInterface interface {
	// UploadFile 从 io.Reader 上传文件，返回公开访问 URL；objectKey 由调用方生成
	UploadFile(ctx context.Context, objectKey string, reader io.Reader, size int64, contentType string) (string, error)
	// DeleteObject 删除对象，对象不存在时 COS 同样返回成功
	DeleteObject(ctx context.Context, objectKey string) error
}

type cosClient struct {
	client              *cos.Client
	publicAccessURLBase *url.URL // 拼接对象公开 URL 的基础部分
	logger              *zap.Logger
}

// InitCOS 初始化腾讯云 COS 客户端。
// 出站请求经过 otelhttp.Transport，追踪开启时 COS 调用会作为子 span 出现在请求链路中。
func InitCOS(cfg *config.COSConfig, logger *core.ZapLogger) (COSClientInterface, error) {
	if cfg == nil {
		return nil, fmt.Errorf("COS 配置不能为nil")
	}
	if cfg.SecretID == "" || cfg.SecretKey == "" || cfg.BucketName == "" || cfg.AppID == "" || cfg.Region == "" {
		logger.Error("COS 配置不完整",
			zap.String("bucket", cfg.BucketName), zap.String("appId", cfg.AppID), zap.String("region", cfg.Region))
		return nil, fmt.Errorf("COS 配置不完整，缺少关键字段 (SecretID, SecretKey, BucketName, AppID, Region)")
	}

	bucketURLStr := fmt.Sprintf("https://%s-%s.cos.%s.myqcloud.com", cfg.BucketName, cfg.AppID, cfg.Region)
	bucketURL, err := url.Parse(bucketURLStr)
	if err != nil {
		return nil, fmt.Errorf("解析 COS 存储桶 URL '%s' 失败: %w", bucketURLStr, err)
	}

	// 未配置 BaseURL（CDN / 自定义域名）时，公有读存储桶的访问 URL 与 SDK 操作 URL 相同
	publicBase := bucketURL
	if cfg.BaseURL != "" {
		if publicBase, err = url.Parse(cfg.BaseURL); err != nil {
			return nil, fmt.Errorf("解析 COS 公共访问 BaseURL '%s' 失败: %w", cfg.BaseURL, err)
		}
	}

	client := cos.NewClient(&cos.BaseURL{BucketURL: bucketURL}, &http.Client{
		Transport: otelhttp.NewTransport(&cos.AuthorizationTransport{
			SecretID:  cfg.SecretID,
			SecretKey: cfg.SecretKey,
		}),
	})

	logger.Info("房源图片存储已就绪",
		zap.String("bucket", cfg.BucketName),
		zap.String("region", cfg.Region),
		zap.String("publicBase", publicBase.String()))
	return &cosClient{client: client, publicAccessURLBase: publicBase, logger: logger.Logger()}, nil
}

// PublicObjectURL 拼接对象的公共访问 URL
func PublicObjectURL(base *url.URL, objectKey string) string {
	basePath := base.Path
	if !strings.HasSuffix(basePath, "/") {
		basePath += "/"
	}
	finalURL := *base
	finalURL.Path = basePath + strings.TrimPrefix(objectKey, "/")
	return finalURL.String()
}

// checkCOSResponse 读取非预期状态码的响应体，用于错误信息
func checkCOSResponse(resp *cos.Response, op, objectKey string, okCodes ...int) error {
	for _, code := range okCodes {
		if resp.StatusCode == code {
			return nil
		}
	}
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
	return fmt.Errorf("COS %s %s 返回状态码 %d: %s", op, objectKey, resp.StatusCode, body)
}

func (c *cosClient) UploadFile(ctx context.Context, objectKey string, reader io.Reader, size int64, contentType string) (string, error) {
	resp, err := c.client.Object.Put(ctx, objectKey, reader, &cos.ObjectPutOptions{
		ObjectPutHeaderOptions: &cos.ObjectPutHeaderOptions{
			ContentType:   contentType,
			ContentLength: size,
		},
	})
	if err != nil {
		return "", fmt.Errorf("上传房源图片 %s 失败: %w", objectKey, err)
	}
	defer resp.Body.Close()
	if err := checkCOSResponse(resp, "上传", objectKey, http.StatusOK); err != nil {
		return "", err
	}

	publicURL := PublicObjectURL(c.publicAccessURLBase, objectKey)
	c.logger.Info("房源图片已上传",
		zap.String("objectKey", objectKey),
		zap.Int64("size", size),
		zap.String("url", publicURL))
	return publicURL, nil
}

func (c *cosClient) DeleteObject(ctx context.Context, objectKey string) error {
	resp, err := c.client.Object.Delete(ctx, objectKey)
	if err != nil {
		return fmt.Errorf("删除房源图片 %s 失败: %w", objectKey, err)
	}
	defer resp.Body.Close()
	if err := checkCOSResponse(resp, "删除", objectKey, http.StatusOK, http.StatusNoContent); err != nil {
		return err
	}
	c.logger.Info("房源图片已删除", zap.String("objectKey", objectKey))
	return nil
}
