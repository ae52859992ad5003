package entities

import (
	"gorm.io/datatypes"

	"github.com/Xushengqwer/house_service/models/enums"
)

// House 房源实体
// - 表名: houses
// - humanCode 在创建时由计数器分配，之后不再修改
// - 删除为物理删除，house_phones / house_messengers 通过外键 ON DELETE CASCADE 一并删除
type House struct {
	BaseModel

	// 面向人的顺序编号，数字字符串，例如 "17"
	// - 普通索引，不加唯一约束：并发创建的串行化由事务内的计数器自增保证
	HumanCode string `gorm:"type:varchar(32);not null;index"`

	Name string `gorm:"type:varchar(255);not null"`

	// 富文本编辑器输出的文档，原样以 JSON 存储
	Description datatypes.JSON `gorm:"type:json"`

	DistrictID  uint64 `gorm:"not null;index"`
	DeveloperID uint64 `gorm:"not null;index"`

	Type         enums.HouseType     `gorm:"type:varchar(32);not null"`
	LandCategory enums.LandCategory  `gorm:"type:varchar(32);not null"`
	Finishing    enums.Finishing     `gorm:"type:varchar(32);not null"`
	Heating      enums.Heating       `gorm:"type:varchar(32);not null"`
	Floor        enums.FloorCount    `gorm:"type:varchar(16);not null"`
	Bedroom      enums.BedroomCount  `gorm:"type:varchar(16);not null"`
	Bathroom     enums.BathroomCount `gorm:"type:varchar(16);not null"`
	WallMaterial enums.WallMaterial  `gorm:"type:varchar(32);not null"`
	HouseStatus  enums.HouseStatus   `gorm:"type:varchar(32);not null"`
	SaleStatus   enums.SaleStatus    `gorm:"type:varchar(32);not null"`

	// 可选枚举，nil 表示未填写
	FacingMaterial *enums.FacingMaterial `gorm:"type:varchar(32)"`
	Insulation     *enums.Insulation     `gorm:"type:varchar(32)"`

	Price     float64 `gorm:"type:decimal(14,2);not null"`
	HouseArea float64 `gorm:"type:decimal(10,2);not null"`
	PlotArea  float64 `gorm:"type:decimal(10,2);not null"`
	Latitude  float64 `gorm:"type:decimal(10,7);not null"`
	Longitude float64 `gorm:"type:decimal(10,7);not null"`

	CadastralNumber *string `gorm:"type:varchar(64)"`
	YandexDiskLink  *string `gorm:"type:varchar(512)"`

	// 图库图片 URL，保持上传顺序
	Gallery datatypes.JSONSlice[string] `gorm:"type:json"`
	// 户型图 URL
	Layout *string `gorm:"type:varchar(512)"`

	IsActive               bool `gorm:"not null;default:false;index"`
	IsArchive              bool `gorm:"not null;default:false"` // 目前没有任何流程读写该标记
	AsphaltToHouse         bool `gorm:"not null;default:false"`
	ClosedComplex          bool `gorm:"not null;default:false"`
	SeparatedKitchenLiving bool `gorm:"not null;default:false"`
	HasMinimumDownPayment  bool `gorm:"not null;default:false"`

	District  *District  `gorm:"foreignKey:DistrictID"`
	Developer *Developer `gorm:"foreignKey:DeveloperID"`

	Phones     []HousePhone     `gorm:"foreignKey:HouseID;constraint:OnDelete:CASCADE"`
	Messengers []HouseMessenger `gorm:"foreignKey:HouseID;constraint:OnDelete:CASCADE"`
}
