package constant

import "time"

// Redis Key 相关常量
const (
	// ListingCacheKeyPrefix 是列表页缓存的 Key 前缀，后接列表路径。
	// 示例 Key: "house_listing:/admin/houses"
	// Redis 类型: String (JSON 序列化的列表数据)
	ListingCacheKeyPrefix = "house_listing:"

	// DefaultListingCacheTTL 未配置 TTL 时使用的兜底过期时间
	DefaultListingCacheTTL = 10 * time.Minute

	// ListingSecondDeleteDelay 写后失效的第二次删除延迟。
	// 写提交前已开始的读可能在第一次删除之后回填旧数据，第二次删除将其清掉。
	ListingSecondDeleteDelay = 500 * time.Millisecond
)

// 列表路径。写操作成功后按路径失效缓存，读操作按路径做 cache-aside。
const (
	AdminHousesPath     = "/admin/houses"
	AdminHouseLinksPath = "/admin/houses?withLinks=true"
	AdminDistrictsPath  = "/admin/dict/districts"
	AdminDevelopersPath = "/admin/dict/developers"
	AdminPhonesPath     = "/admin/dict/phones"
	AdminMessengersPath = "/admin/dict/messengers"
	AdminRegionsPath    = "/admin/dict/regions"
	PublicHousesPath    = "/houses"
)

// HouseListingPaths 房源写操作影响的全部列表路径
var HouseListingPaths = []string{AdminHousesPath, AdminHouseLinksPath, PublicHousesPath}
