package constant

import "time"

const (
	ServiceName    = "house_service"
	ServiceVersion = "1.0.0"
)

// HouseCounterName 是为房源生成 humanCode 的计数器行名
const HouseCounterName = "house"

// DistrictSortOrderLast 新建区域未指定排序值时使用的远期时间，保证排在最后
var DistrictSortOrderLast = time.Date(9999, time.December, 31, 0, 0, 0, 0, time.UTC)

// ListingWarmCronSpec 公共目录缓存预热的默认 cron 表达式
const ListingWarmCronSpec = "@every 10m"

// 图片上传
const (
	COSObjectKeyPrefixHouseImages = "houses/images/"
	MaxImageUploadBytes           = 10 << 20
)
