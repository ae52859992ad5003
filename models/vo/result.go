package vo

// ActionResultVO 写操作的统一结果：成功时 Success 为 true；
// 失败时 Error 为可直接展示的消息，校验失败时 FieldName 指出第一个不合格的字段。
type ActionResultVO struct {
	Success   bool   `json:"success"`
	Error     string `json:"error,omitempty"`
	FieldName string `json:"fieldName,omitempty"`
}

// UploadImageVO 图片上传结果
type UploadImageVO struct {
	URL       string `json:"url"`
	ObjectKey string `json:"objectKey"`
}
