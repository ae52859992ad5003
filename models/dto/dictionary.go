package dto

import "time"

// 字典数据的请求体。ID 只在更新时使用，由路径参数写入。

type DistrictRequest struct {
	ID          uint64     `json:"id,omitempty"`
	Title       string     `json:"title" example:"Центральный"`
	Description *string    `json:"description,omitempty"`
	SortOrder   *time.Time `json:"sortOrder,omitempty"` // 为空时排在最后
}

type DeveloperRequest struct {
	ID    uint64  `json:"id,omitempty"`
	Title string  `json:"title" example:"СтройИнвест"`
	Link  *string `json:"link,omitempty"`
}

type PhoneRequest struct {
	ID        uint64 `json:"id,omitempty"`
	Phone     string `json:"phone" example:"+7 900 000-00-00"`
	Label     string `json:"label" example:"Отдел продаж"`
	IsDefault bool   `json:"isDefault"`
}

type MessengerRequest struct {
	ID        uint64 `json:"id,omitempty"`
	Link      string `json:"link" example:"https://t.me/example"`
	Label     string `json:"label" example:"Telegram"`
	IsDefault bool   `json:"isDefault"`
}

type RegionRequest struct {
	ID          uint64  `json:"id,omitempty"`
	Title       string  `json:"title" example:"Башкортостан"`
	Description *string `json:"description,omitempty"`
}
