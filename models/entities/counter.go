package entities

// Counter 命名计数器。name = "house" 的行为房源生成 humanCode，
// 只能在创建房源的事务内自增。
type Counter struct {
	Name  string `gorm:"type:varchar(64);primaryKey"`
	Value int64  `gorm:"not null;default:0"`
}
