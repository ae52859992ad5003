package vo

// 以下包装器只用于 swag 文档生成，对应 response.APIResponse[T] 的具体形态。

// ActionResultResponseWrapper 对应 response.APIResponse[vo.ActionResultVO]
type ActionResultResponseWrapper struct {
	Code    int            `json:"code" example:"0"`
	Message string         `json:"message,omitempty" example:"success"`
	Data    ActionResultVO `json:"data"`
}

// HouseResponseWrapper 对应 response.APIResponse[vo.HouseVO]，查询失败时 data 为 null
type HouseResponseWrapper struct {
	Code    int      `json:"code" example:"0"`
	Message string   `json:"message,omitempty" example:"success"`
	Data    *HouseVO `json:"data"`
}

// HouseListResponseWrapper 对应 response.APIResponse[[]*vo.HouseVO]
type HouseListResponseWrapper struct {
	Code    int        `json:"code" example:"0"`
	Message string     `json:"message,omitempty" example:"success"`
	Data    []*HouseVO `json:"data"`
}

// PublicListingResponseWrapper 对应 response.APIResponse[vo.PublicListingVO]
type PublicListingResponseWrapper struct {
	Code    int              `json:"code" example:"0"`
	Message string           `json:"message,omitempty" example:"success"`
	Data    *PublicListingVO `json:"data"`
}

// DefaultSelectionResponseWrapper 对应 response.APIResponse[vo.DefaultSelectionVO]
type DefaultSelectionResponseWrapper struct {
	Code    int                 `json:"code" example:"0"`
	Message string              `json:"message,omitempty" example:"success"`
	Data    *DefaultSelectionVO `json:"data"`
}

// HousePhoneListResponseWrapper 对应 response.APIResponse[[]*vo.HousePhoneVO]
type HousePhoneListResponseWrapper struct {
	Code    int             `json:"code" example:"0"`
	Message string          `json:"message,omitempty" example:"success"`
	Data    []*HousePhoneVO `json:"data"`
}

type DistrictListResponseWrapper struct {
	Code    int           `json:"code" example:"0"`
	Message string        `json:"message,omitempty" example:"success"`
	Data    []*DistrictVO `json:"data"`
}

type DeveloperListResponseWrapper struct {
	Code    int            `json:"code" example:"0"`
	Message string         `json:"message,omitempty" example:"success"`
	Data    []*DeveloperVO `json:"data"`
}

type PhoneListResponseWrapper struct {
	Code    int        `json:"code" example:"0"`
	Message string     `json:"message,omitempty" example:"success"`
	Data    []*PhoneVO `json:"data"`
}

type MessengerListResponseWrapper struct {
	Code    int            `json:"code" example:"0"`
	Message string         `json:"message,omitempty" example:"success"`
	Data    []*MessengerVO `json:"data"`
}

type RegionListResponseWrapper struct {
	Code    int         `json:"code" example:"0"`
	Message string      `json:"message,omitempty" example:"success"`
	Data    []*RegionVO `json:"data"`
}

// UploadImageResponseWrapper 对应 response.APIResponse[vo.UploadImageVO]
type UploadImageResponseWrapper struct {
	Code    int           `json:"code" example:"0"`
	Message string        `json:"message,omitempty" example:"success"`
	Data    UploadImageVO `json:"data"`
}

// BaseResponseWrapper 只包含 Code 和 Message 的响应，用于鉴权失败等没有 data 的场景。
type BaseResponseWrapper struct {
	Code    int    `json:"code" example:"0"`
	Message string `json:"message" example:"success"`
}
