package service

import (
	"fmt"
	"strconv"
	"strings"

	"gorm.io/datatypes"

	"github.com/Xushengqwer/house_service/models/dto"
	"github.com/Xushengqwer/house_service/models/entities"
	"github.com/Xushengqwer/house_service/myErrors"
)

// houseCheck 单个必填字段的检查：ok 返回 false 时以 message 报告 field。
type houseCheck struct {
	field   string
	message string
	ok      func(req *dto.HouseRequest) bool
}

// houseChecks 的顺序即报告顺序，第一个失败即返回。
// facingMaterial / insulation / cadastralNumber / yandexDiskLink / gallery / layout
// 以及各布尔标记不参与校验。
var houseChecks = []houseCheck{
	{"name", "Название обязательно", func(r *dto.HouseRequest) bool { return strings.TrimSpace(r.Name) != "" }},
	{"districtId", "Район обязателен", func(r *dto.HouseRequest) bool { return r.DistrictID != nil && *r.DistrictID != 0 }},
	{"developerId", "Застройщик обязателен", func(r *dto.HouseRequest) bool { return r.DeveloperID != nil && *r.DeveloperID != 0 }},
	{"type", "Вид объекта обязателен", func(r *dto.HouseRequest) bool { return r.Type != nil && r.Type.IsValid() }},
	{"price", "Цена обязательна", func(r *dto.HouseRequest) bool { return !r.Price.IsBlank() }},
	{"houseArea", "Площадь дома обязательна", func(r *dto.HouseRequest) bool { return !r.HouseArea.IsBlank() }},
	{"plotArea", "Площадь участка обязательна", func(r *dto.HouseRequest) bool { return !r.PlotArea.IsBlank() }},
	{"landCategory", "Категория земли обязательна", func(r *dto.HouseRequest) bool { return r.LandCategory != nil && r.LandCategory.IsValid() }},
	{"finishing", "Отделка обязательна", func(r *dto.HouseRequest) bool { return r.Finishing != nil && r.Finishing.IsValid() }},
	{"heating", "Отопление обязательно", func(r *dto.HouseRequest) bool { return r.Heating != nil && r.Heating.IsValid() }},
	{"floor", "Количество этажей обязательно", func(r *dto.HouseRequest) bool { return r.Floor != nil && r.Floor.IsValid() }},
	{"bedroom", "Количество спален обязательно", func(r *dto.HouseRequest) bool { return r.Bedroom != nil && r.Bedroom.IsValid() }},
	{"bathroom", "Количество сан. узлов обязательно", func(r *dto.HouseRequest) bool { return r.Bathroom != nil && r.Bathroom.IsValid() }},
	{"wallMaterial", "Материал стен обязателен", func(r *dto.HouseRequest) bool { return r.WallMaterial != nil && r.WallMaterial.IsValid() }},
	{"houseStatus", "Статус дома обязателен", func(r *dto.HouseRequest) bool { return r.HouseStatus != nil && r.HouseStatus.IsValid() }},
	{"saleStatus", "Статус продажи обязателен", func(r *dto.HouseRequest) bool { return r.SaleStatus != nil && r.SaleStatus.IsValid() }},
	{"latitude", "Широта обязательна", func(r *dto.HouseRequest) bool { return !r.Latitude.IsBlank() }},
	{"longitude", "Долгота обязательна", func(r *dto.HouseRequest) bool { return !r.Longitude.IsBlank() }},
}

// 数值字段无法解析时的提示
const notANumberMessage = "Значение должно быть числом"

// ValidateHouse 按固定顺序检查房源必填字段，返回第一个不合格的字段；全部通过返回 nil。
func ValidateHouse(req *dto.HouseRequest) *myErrors.FieldError {
	for _, check := range houseChecks {
		if !check.ok(req) {
			return myErrors.NewFieldError(check.field, check.message)
		}
	}
	return nil
}

// buildHouseEntity 剥离 id / phones / messengers，校验后转换为待写入的房源行。
// 返回的实体 ID 与 HumanCode 为空，由调用方按创建或更新分别填充。
func buildHouseEntity(req *dto.HouseRequest) (*entities.House, error) {
	if fieldErr := ValidateHouse(req); fieldErr != nil {
		return nil, fieldErr
	}

	facing, err := optionalEnum("facingMaterial", req.FacingMaterial)
	if err != nil {
		return nil, err
	}
	insulation, err := optionalEnum("insulation", req.Insulation)
	if err != nil {
		return nil, err
	}

	numbers := make(map[string]float64, 5)
	for _, f := range []struct {
		name  string
		value dto.NumericString
	}{
		{"price", req.Price},
		{"houseArea", req.HouseArea},
		{"plotArea", req.PlotArea},
		{"latitude", req.Latitude},
		{"longitude", req.Longitude},
	} {
		v, err := parseNumeric(f.value)
		if err != nil {
			return nil, myErrors.NewFieldError(f.name, notANumberMessage)
		}
		numbers[f.name] = v
	}

	house := &entities.House{
		Name:                   strings.TrimSpace(req.Name),
		DistrictID:             *req.DistrictID,
		DeveloperID:            *req.DeveloperID,
		Type:                   *req.Type,
		LandCategory:           *req.LandCategory,
		Finishing:              *req.Finishing,
		Heating:                *req.Heating,
		Floor:                  *req.Floor,
		Bedroom:                *req.Bedroom,
		Bathroom:               *req.Bathroom,
		WallMaterial:           *req.WallMaterial,
		HouseStatus:            *req.HouseStatus,
		SaleStatus:             *req.SaleStatus,
		FacingMaterial:         facing,
		Insulation:             insulation,
		Price:                  numbers["price"],
		HouseArea:              numbers["houseArea"],
		PlotArea:               numbers["plotArea"],
		Latitude:               numbers["latitude"],
		Longitude:              numbers["longitude"],
		CadastralNumber:        req.CadastralNumber,
		YandexDiskLink:         req.YandexDiskLink,
		Gallery:                datatypes.JSONSlice[string](req.Gallery),
		Layout:                 req.Layout,
		IsActive:               req.IsActive,
		IsArchive:              req.IsArchive,
		AsphaltToHouse:         req.AsphaltToHouse,
		ClosedComplex:          req.ClosedComplex,
		SeparatedKitchenLiving: req.SeparatedKitchenLiving,
		HasMinimumDownPayment:  req.HasMinimumDownPayment,
	}
	if len(req.Description) > 0 && string(req.Description) != "null" {
		house.Description = datatypes.JSON(req.Description)
	}
	if house.Gallery == nil {
		house.Gallery = datatypes.JSONSlice[string]{}
	}
	return house, nil
}

type closedEnum interface {
	~string
	IsValid() bool
}

// optionalEnum 可选枚举不参与必填校验：空值视为未填写，
// 非空但不在允许集合内时返回 ErrInvalidEnumValue，不写入数据库。
func optionalEnum[E closedEnum](field string, v *E) (*E, error) {
	if v == nil || *v == "" {
		return nil, nil
	}
	if !(*v).IsValid() {
		return nil, fmt.Errorf("%w: %s=%q", myErrors.ErrInvalidEnumValue, field, string(*v))
	}
	return v, nil
}

// parseNumeric 接受 "1500000"、" 54.7 " 以及逗号小数 "54,7"
func parseNumeric(v dto.NumericString) (float64, error) {
	s := strings.ReplaceAll(strings.TrimSpace(string(v)), ",", ".")
	return strconv.ParseFloat(s, 64)
}

// uniqueIDs 去重并去掉 0，保持首次出现的顺序
func uniqueIDs(ids []uint64) []uint64 {
	if len(ids) == 0 {
		return nil
	}
	seen := make(map[uint64]struct{}, len(ids))
	out := make([]uint64, 0, len(ids))
	for _, id := range ids {
		if id == 0 {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
