package myErrors

import "errors"

// ErrCacheMiss 表示在缓存层未找到对应的键值
var ErrCacheMiss = errors.New("cache: key not found (miss)")

// ErrMissingID 更新/删除请求缺少标识符，在访问存储之前返回
var ErrMissingID = errors.New("Идентификатор отсутствует")

// ErrInvalidEnumValue 可选枚举字段（facingMaterial / insulation）的取值不在允许集合内
var ErrInvalidEnumValue = errors.New("недопустимое значение перечисления")

// ErrInvalidImageKind 上传图片时 kind 既不是 gallery 也不是 layout
var ErrInvalidImageKind = errors.New("недопустимый тип изображения")

// ErrInvalidImageFile 上传的文件不是图片或大小超限
var ErrInvalidImageFile = errors.New("недопустимый файл изображения")

// ErrInvalidObjectKey 删除的对象不在房源图片目录下
var ErrInvalidObjectKey = errors.New("недопустимый ключ объекта")

// FieldError 是表单校验失败的结果：只携带第一个不合格的字段。
type FieldError struct {
	FieldName string
	Message   string
}

func (e *FieldError) Error() string {
	return e.Message
}

// NewFieldError 构造一个字段校验错误
func NewFieldError(field, message string) *FieldError {
	return &FieldError{FieldName: field, Message: message}
}

// AsFieldError 判断 err 链上是否有 *FieldError
func AsFieldError(err error) (*FieldError, bool) {
	var fe *FieldError
	if errors.As(err, &fe) {
		return fe, true
	}
	return nil, false
}
