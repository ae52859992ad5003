package dto

// ImageKind 上传图片的用途，决定对象键的子目录
type ImageKind string

const (
	ImageKindGallery ImageKind = "gallery"
	ImageKindLayout  ImageKind = "layout"
)

func (k ImageKind) IsValid() bool {
	return k == ImageKindGallery || k == ImageKindLayout
}
