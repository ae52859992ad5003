package entities

import "time"

// BaseModel 房源服务的公共字段。
// 与 go-common 的 BaseModel 不同，这里没有 DeletedAt：房源与字典数据都是物理删除，
// 关联表依赖外键级联清理，软删除会让唯一索引和级联失效。
type BaseModel struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt time.Time `gorm:"not null" json:"createdAt"`
	UpdatedAt time.Time `gorm:"not null" json:"updatedAt"`
}
