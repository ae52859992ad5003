package service

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Xushengqwer/house_service/constant"
	"github.com/Xushengqwer/house_service/dependencies"
	"github.com/Xushengqwer/house_service/models/dto"
	"github.com/Xushengqwer/house_service/models/vo"
	"github.com/Xushengqwer/house_service/myErrors"
)

// ImageService 房源图库 / 户型图上传。上传成功返回公开 URL，由表单写入 gallery / layout 字段。
type ImageService interface {
	UploadImage(ctx context.Context, kind dto.ImageKind, fileName string, reader io.Reader, size int64, contentType string) (*vo.UploadImageVO, error)
	DeleteImage(ctx context.Context, objectKey string) error
}

type imageService struct {
	cos    dependencies.COSClientInterface
	logger *zap.Logger
	now    func() time.Time
}

func NewImageService(cos dependencies.COSClientInterface, logger *zap.Logger) ImageService {
	return &imageService{cos: cos, logger: logger, now: time.Now}
}

// UploadImage 对象键格式: houses/images/{kind}/{yyyyMMdd}/{uuid}{ext}
func (s *imageService) UploadImage(ctx context.Context, kind dto.ImageKind, fileName string, reader io.Reader, size int64, contentType string) (*vo.UploadImageVO, error) {
	if !kind.IsValid() {
		return nil, myErrors.ErrInvalidImageKind
	}
	if !strings.HasPrefix(contentType, "image/") {
		return nil, fmt.Errorf("%w: 不支持的文件类型 %s", myErrors.ErrInvalidImageFile, contentType)
	}
	if size <= 0 || size > constant.MaxImageUploadBytes {
		return nil, fmt.Errorf("%w: 文件大小 %d 超出限制 (最大 %d 字节)", myErrors.ErrInvalidImageFile, size, constant.MaxImageUploadBytes)
	}

	objectKey := fmt.Sprintf("%s%s/%s/%s%s",
		constant.COSObjectKeyPrefixHouseImages,
		kind,
		s.now().Format("20060102"),
		uuid.New().String(),
		strings.ToLower(path.Ext(fileName)),
	)

	url, err := s.cos.UploadFile(ctx, objectKey, reader, size, contentType)
	if err != nil {
		s.logger.Error("上传房源图片失败", zap.String("objectKey", objectKey), zap.Error(err))
		return nil, err
	}
	return &vo.UploadImageVO{URL: url, ObjectKey: objectKey}, nil
}

// DeleteImage 只允许删除房源图片目录下的对象
func (s *imageService) DeleteImage(ctx context.Context, objectKey string) error {
	objectKey = strings.TrimPrefix(strings.TrimSpace(objectKey), "/")
	if !strings.HasPrefix(objectKey, constant.COSObjectKeyPrefixHouseImages) {
		return myErrors.ErrInvalidObjectKey
	}
	return s.cos.DeleteObject(ctx, objectKey)
}
