package entities

import "time"

// 字典（参考数据）实体：相互独立的扁平表，单行增删改，不做引用检查。

// District 区域，按 SortOrder 升序展示
type District struct {
	BaseModel
	Title       string    `gorm:"type:varchar(255);not null"`
	Description *string   `gorm:"type:text"`
	SortOrder   time.Time `gorm:"not null;index"`
}

// Developer 开发商
type Developer struct {
	BaseModel
	Title string  `gorm:"type:varchar(255);not null"`
	Link  *string `gorm:"type:varchar(512)"`
}

// Phone 联系电话。IsDefault 的记录在新建房源时被预选。
type Phone struct {
	BaseModel
	Phone     string `gorm:"type:varchar(32);not null"`
	Label     string `gorm:"type:varchar(255);not null"`
	IsDefault bool   `gorm:"not null;default:false"`
}

// Messenger 即时通讯链接
type Messenger struct {
	BaseModel
	Link      string `gorm:"type:varchar(512);not null"`
	Label     string `gorm:"type:varchar(255);not null"`
	IsDefault bool   `gorm:"not null;default:false"`
}

// Region 地区
type Region struct {
	BaseModel
	Title       string  `gorm:"type:varchar(255);not null"`
	Description *string `gorm:"type:text"`
}
