package dto

import (
	"encoding/json"

	"github.com/Xushengqwer/house_service/models/enums"
)

// HouseRequest 创建/更新房源的请求体。
// - 字段不带 binding 标签：必填校验由 service.ValidateHouse 按固定顺序执行，只返回第一个错误。
// - Phones / Messengers 是选中的字典 ID，写入时整体替换关联行。
type HouseRequest struct {
	ID *uint64 `json:"id,omitempty"` // 更新时由路径参数覆盖

	Name        string          `json:"name" example:"Дом у озера"`
	Description json.RawMessage `json:"description,omitempty" swaggertype:"object"`
	DistrictID  *uint64         `json:"districtId"`
	DeveloperID *uint64         `json:"developerId"`

	Type         *enums.HouseType     `json:"type" swaggertype:"string" example:"LandPlot"`
	Price        NumericString        `json:"price" swaggertype:"string" example:"1500000"`
	HouseArea    NumericString        `json:"houseArea" swaggertype:"string" example:"120"`
	PlotArea     NumericString        `json:"plotArea" swaggertype:"string" example:"600"`
	LandCategory *enums.LandCategory  `json:"landCategory" swaggertype:"string" example:"IZHS"`
	Finishing    *enums.Finishing     `json:"finishing" swaggertype:"string" example:"CleanFinish"`
	Heating      *enums.Heating       `json:"heating" swaggertype:"string" example:"Gas"`
	Floor        *enums.FloorCount    `json:"floor" swaggertype:"string" example:"One"`
	Bedroom      *enums.BedroomCount  `json:"bedroom" swaggertype:"string" example:"Two"`
	Bathroom     *enums.BathroomCount `json:"bathroom" swaggertype:"string" example:"One"`
	WallMaterial *enums.WallMaterial  `json:"wallMaterial" swaggertype:"string" example:"Wood"`
	HouseStatus  *enums.HouseStatus   `json:"houseStatus" swaggertype:"string" example:"BuiltHouse"`
	SaleStatus   *enums.SaleStatus    `json:"saleStatus" swaggertype:"string" example:"Available"`
	Latitude     NumericString        `json:"latitude" swaggertype:"string" example:"54.7"`
	Longitude    NumericString        `json:"longitude" swaggertype:"string" example:"55.9"`

	FacingMaterial  *enums.FacingMaterial `json:"facingMaterial,omitempty" swaggertype:"string"`
	Insulation      *enums.Insulation     `json:"insulation,omitempty" swaggertype:"string"`
	CadastralNumber *string               `json:"cadastralNumber,omitempty"`
	YandexDiskLink  *string               `json:"yandexDiskLink,omitempty"`
	Gallery         []string              `json:"gallery,omitempty"`
	Layout          *string               `json:"layout,omitempty"`

	IsActive               bool `json:"isActive"`
	IsArchive              bool `json:"isArchive"`
	AsphaltToHouse         bool `json:"asphaltToHouse"`
	ClosedComplex          bool `json:"closedComplex"`
	SeparatedKitchenLiving bool `json:"separatedKitchenLiving"`
	HasMinimumDownPayment  bool `json:"hasMinimumDownPayment"`

	Phones     []uint64 `json:"phones"`
	Messengers []uint64 `json:"messengers"`
}

// CreateHousePhoneRequest 单独创建一条房源-电话关联
type CreateHousePhoneRequest struct {
	HouseID uint64 `json:"houseId"`
	PhoneID uint64 `json:"phoneId"`
}
