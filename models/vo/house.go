package vo

import (
	"encoding/json"
	"time"

	"github.com/Xushengqwer/house_service/models/entities"
	"github.com/Xushengqwer/house_service/models/enums"
)

// HouseVO 房源响应结构。Phones / Messengers 只在请求包含关联详情时填充。
type HouseVO struct {
	ID          uint64          `json:"id"`
	HumanCode   string          `json:"humanCode"`
	Name        string          `json:"name"`
	Description json.RawMessage `json:"description,omitempty" swaggertype:"object"`
	DistrictID  uint64          `json:"districtId"`
	DeveloperID uint64          `json:"developerId"`

	Type           enums.HouseType       `json:"type" swaggertype:"string"`
	LandCategory   enums.LandCategory    `json:"landCategory" swaggertype:"string"`
	Finishing      enums.Finishing       `json:"finishing" swaggertype:"string"`
	Heating        enums.Heating         `json:"heating" swaggertype:"string"`
	Floor          enums.FloorCount      `json:"floor" swaggertype:"string"`
	Bedroom        enums.BedroomCount    `json:"bedroom" swaggertype:"string"`
	Bathroom       enums.BathroomCount   `json:"bathroom" swaggertype:"string"`
	WallMaterial   enums.WallMaterial    `json:"wallMaterial" swaggertype:"string"`
	HouseStatus    enums.HouseStatus     `json:"houseStatus" swaggertype:"string"`
	SaleStatus     enums.SaleStatus      `json:"saleStatus" swaggertype:"string"`
	FacingMaterial *enums.FacingMaterial `json:"facingMaterial" swaggertype:"string"`
	Insulation     *enums.Insulation     `json:"insulation" swaggertype:"string"`

	Price     float64 `json:"price"`
	HouseArea float64 `json:"houseArea"`
	PlotArea  float64 `json:"plotArea"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`

	CadastralNumber *string  `json:"cadastralNumber"`
	YandexDiskLink  *string  `json:"yandexDiskLink"`
	Gallery         []string `json:"gallery"`
	Layout          *string  `json:"layout"`

	IsActive               bool `json:"isActive"`
	IsArchive              bool `json:"isArchive"`
	AsphaltToHouse         bool `json:"asphaltToHouse"`
	ClosedComplex          bool `json:"closedComplex"`
	SeparatedKitchenLiving bool `json:"separatedKitchenLiving"`
	HasMinimumDownPayment  bool `json:"hasMinimumDownPayment"`

	Phones     []PhoneVO     `json:"phones,omitempty"`
	Messengers []MessengerVO `json:"messengers,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// PublicListingVO 公共目录页：上架房源 + 区域筛选项
type PublicListingVO struct {
	Houses    []*HouseVO    `json:"houses"`
	Districts []*DistrictVO `json:"districts"`
}

// DefaultSelectionVO 新建房源时预选的电话和即时通讯 ID
type DefaultSelectionVO struct {
	Phones     []uint64 `json:"phones"`
	Messengers []uint64 `json:"messengers"`
}

// HousePhoneVO 房源-电话关联行
type HousePhoneVO struct {
	ID        uint64    `json:"id"`
	HouseID   uint64    `json:"houseId"`
	PhoneID   uint64    `json:"phoneId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NewHouseVO 将实体转换为响应结构；已预加载的关联会一并展开。
func NewHouseVO(h *entities.House) *HouseVO {
	if h == nil {
		return nil
	}
	out := &HouseVO{
		ID:                     h.ID,
		HumanCode:              h.HumanCode,
		Name:                   h.Name,
		DistrictID:             h.DistrictID,
		DeveloperID:            h.DeveloperID,
		Type:                   h.Type,
		LandCategory:           h.LandCategory,
		Finishing:              h.Finishing,
		Heating:                h.Heating,
		Floor:                  h.Floor,
		Bedroom:                h.Bedroom,
		Bathroom:               h.Bathroom,
		WallMaterial:           h.WallMaterial,
		HouseStatus:            h.HouseStatus,
		SaleStatus:             h.SaleStatus,
		FacingMaterial:         h.FacingMaterial,
		Insulation:             h.Insulation,
		Price:                  h.Price,
		HouseArea:              h.HouseArea,
		PlotArea:               h.PlotArea,
		Latitude:               h.Latitude,
		Longitude:              h.Longitude,
		CadastralNumber:        h.CadastralNumber,
		YandexDiskLink:         h.YandexDiskLink,
		Gallery:                []string(h.Gallery),
		Layout:                 h.Layout,
		IsActive:               h.IsActive,
		IsArchive:              h.IsArchive,
		AsphaltToHouse:         h.AsphaltToHouse,
		ClosedComplex:          h.ClosedComplex,
		SeparatedKitchenLiving: h.SeparatedKitchenLiving,
		HasMinimumDownPayment:  h.HasMinimumDownPayment,
		CreatedAt:              h.CreatedAt,
		UpdatedAt:              h.UpdatedAt,
	}
	if len(h.Description) > 0 {
		out.Description = json.RawMessage(h.Description)
	}
	for _, link := range h.Phones {
		if link.Phone != nil {
			out.Phones = append(out.Phones, *NewPhoneVO(link.Phone))
		}
	}
	for _, link := range h.Messengers {
		if link.Messenger != nil {
			out.Messengers = append(out.Messengers, *NewMessengerVO(link.Messenger))
		}
	}
	return out
}

// NewHouseVOs 批量转换
func NewHouseVOs(houses []*entities.House) []*HouseVO {
	out := make([]*HouseVO, 0, len(houses))
	for _, h := range houses {
		out = append(out, NewHouseVO(h))
	}
	return out
}

func NewHousePhoneVO(link *entities.HousePhone) *HousePhoneVO {
	return &HousePhoneVO{
		ID:        link.ID,
		HouseID:   link.HouseID,
		PhoneID:   link.PhoneID,
		CreatedAt: link.CreatedAt,
		UpdatedAt: link.UpdatedAt,
	}
}
