package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/Xushengqwer/house_service/models/dto"
	"github.com/Xushengqwer/house_service/models/entities"
	"github.com/Xushengqwer/house_service/models/enums"
	"github.com/Xushengqwer/house_service/repo/mysql"
	redisrepo "github.com/Xushengqwer/house_service/repo/redis"
	"github.com/Xushengqwer/house_service/testhelpers"
)

type houseFixture struct {
	db         *gorm.DB
	svc        HouseService
	catalog    CatalogService
	district   *entities.District
	developer  *entities.Developer
	phones     []*entities.Phone
	messengers []*entities.Messenger
}

// newHouseFixture 建库并写入一个区域、一个开发商、两个电话和两个即时通讯。
// cache 可为 nil。
func newHouseFixture(t *testing.T, cache redisrepo.ListingCache) *houseFixture {
	t.Helper()
	db := testhelpers.NewTestDB(t)
	logger := testhelpers.NopLogger()

	f := &houseFixture{
		db:        db,
		district:  &entities.District{Title: "Центральный", SortOrder: mustDate(t, "2024-01-01")},
		developer: &entities.Developer{Title: "СтройИнвест"},
		phones: []*entities.Phone{
			{Phone: "+7 900 000-00-01", Label: "Офис", IsDefault: true},
			{Phone: "+7 900 000-00-02", Label: "Менеджер"},
		},
		messengers: []*entities.Messenger{
			{Link: "https://t.me/a", Label: "Telegram", IsDefault: true},
			{Link: "https://wa.me/1", Label: "WhatsApp"},
		},
	}
	require.NoError(t, db.Create(f.district).Error)
	require.NoError(t, db.Create(f.developer).Error)
	require.NoError(t, db.Create(&f.phones).Error)
	require.NoError(t, db.Create(&f.messengers).Error)

	houseRepo := mysql.NewHouseRepository(db, logger)
	phoneRepo := mysql.NewPhoneRepository(db, logger)
	messengerRepo := mysql.NewMessengerRepository(db, logger)
	f.svc = NewHouseService(db, houseRepo, mysql.NewHouseLinkRepository(db, logger), mysql.NewCounterRepository(),
		phoneRepo, messengerRepo, cache, nil, logger)
	f.catalog = NewCatalogService(houseRepo, mysql.NewDistrictRepository(db, logger), cache, logger)
	return f
}

func ptr[T any](v T) *T { return &v }

// validHouseRequest 所有必填字段均已填写
func (f *houseFixture) validHouseRequest() *dto.HouseRequest {
	return &dto.HouseRequest{
		Name:         "Дом у озера",
		Description:  []byte(`{"blocks":[{"type":"paragraph","text":"Уютный дом"}]}`),
		DistrictID:   ptr(f.district.ID),
		DeveloperID:  ptr(f.developer.ID),
		Type:         ptr(enums.HouseTypeLandPlot),
		Price:        "1500000",
		HouseArea:    "120",
		PlotArea:     "600",
		LandCategory: ptr(enums.LandCategoryIZHS),
		Finishing:    ptr(enums.FinishingClean),
		Heating:      ptr(enums.HeatingGas),
		Floor:        ptr(enums.FloorOne),
		Bedroom:      ptr(enums.BedroomTwo),
		Bathroom:     ptr(enums.BathroomOne),
		WallMaterial: ptr(enums.WallWood),
		HouseStatus:  ptr(enums.HouseStatusBuilt),
		SaleStatus:   ptr(enums.SaleStatusAvailable),
		Latitude:     "54.7",
		Longitude:    "55.9",
		Gallery:      []string{"https://cdn.example.com/1.jpg"},
		IsActive:     true,
	}
}

func (f *houseFixture) countRows(t *testing.T, model interface{}) int64 {
	t.Helper()
	var n int64
	require.NoError(t, f.db.Model(model).Count(&n).Error)
	return n
}

// onlyHouse 取出库中唯一的房源
func (f *houseFixture) onlyHouse(t *testing.T) *entities.House {
	t.Helper()
	var houses []*entities.House
	require.NoError(t, f.db.Preload("Phones").Preload("Messengers").Find(&houses).Error)
	require.Len(t, houses, 1)
	return houses[0]
}

var bg = context.Background()

func mustDate(t *testing.T, value string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", value)
	require.NoError(t, err)
	return d
}
