package service

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/Xushengqwer/go-common/commonerrors"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	"github.com/Xushengqwer/house_service/constant"
	"github.com/Xushengqwer/house_service/models/dto"
	"github.com/Xushengqwer/house_service/models/entities"
	"github.com/Xushengqwer/house_service/models/enums"
	"github.com/Xushengqwer/house_service/myErrors"
	redisrepo "github.com/Xushengqwer/house_service/repo/redis"
	"github.com/Xushengqwer/house_service/testhelpers"
)

func TestCreateHouse_FromJSONPayload(t *testing.T) {
	f := newHouseFixture(t, nil)

	payload := []byte(`{
		"name": "Дом у озера", "districtId": ` + jsonID(f.district.ID) + `, "developerId": ` + jsonID(f.developer.ID) + `,
		"type": "LandPlot", "price": "1500000", "houseArea": "120", "plotArea": "600",
		"landCategory": "IZHS", "finishing": "CleanFinish", "heating": "Gas", "floor": "One",
		"bedroom": "Two", "bathroom": "One", "wallMaterial": "Wood", "houseStatus": "BuiltHouse",
		"saleStatus": "Available", "latitude": "54.7", "longitude": "55.9",
		"phones": [` + jsonID(f.phones[0].ID) + `], "messengers": []
	}`)
	var req dto.HouseRequest
	require.NoError(t, json.Unmarshal(payload, &req))

	require.NoError(t, f.svc.CreateHouse(bg, &req))

	house := f.onlyHouse(t)
	require.Equal(t, "1", house.HumanCode)
	require.Equal(t, "Дом у озера", house.Name)
	require.InDelta(t, 1500000.0, house.Price, 1e-6)
	require.Len(t, house.Phones, 1)
	require.Equal(t, f.phones[0].ID, house.Phones[0].PhoneID)
	require.Empty(t, house.Messengers)
}

func TestCreateHouse_MissingPriceCreatesNothing(t *testing.T) {
	f := newHouseFixture(t, nil)

	req := f.validHouseRequest()
	req.Price = ""
	req.Phones = []uint64{f.phones[0].ID}

	err := f.svc.CreateHouse(bg, req)
	fieldErr, ok := myErrors.AsFieldError(err)
	require.True(t, ok)
	require.Equal(t, "price", fieldErr.FieldName)
	require.Equal(t, "Цена обязательна", fieldErr.Message)

	require.Zero(t, f.countRows(t, &entities.House{}))
	require.Zero(t, f.countRows(t, &entities.HousePhone{}))
	require.Zero(t, f.countRows(t, &entities.Counter{}))
}

func TestCreateHouse_HumanCodeIsSequential(t *testing.T) {
	f := newHouseFixture(t, nil)

	for i := 0; i < 3; i++ {
		require.NoError(t, f.svc.CreateHouse(bg, f.validHouseRequest()))
	}

	var codes []string
	require.NoError(t, f.db.Model(&entities.House{}).Order("id ASC").Pluck("human_code", &codes).Error)
	require.Equal(t, []string{"1", "2", "3"}, codes)

	var counter entities.Counter
	require.NoError(t, f.db.Where("name = ?", constant.HouseCounterName).First(&counter).Error)
	require.EqualValues(t, 3, counter.Value)
}

func TestCreateHouse_DuplicateLinksAreIgnored(t *testing.T) {
	f := newHouseFixture(t, nil)

	req := f.validHouseRequest()
	req.Phones = []uint64{f.phones[0].ID, f.phones[0].ID, 0}
	req.Messengers = []uint64{f.messengers[1].ID}
	require.NoError(t, f.svc.CreateHouse(bg, req))

	require.EqualValues(t, 1, f.countRows(t, &entities.HousePhone{}))
	require.EqualValues(t, 1, f.countRows(t, &entities.HouseMessenger{}))
}

func TestCreateHouse_UnknownPhoneRollsBack(t *testing.T) {
	f := newHouseFixture(t, nil)

	req := f.validHouseRequest()
	req.Phones = []uint64{999}

	err := f.svc.CreateHouse(bg, req)
	require.Error(t, err)
	_, isField := myErrors.AsFieldError(err)
	require.False(t, isField)
	// 驱动错误原样返回，不附加前缀
	require.Equal(t, "FOREIGN KEY constraint failed", err.Error())

	require.Zero(t, f.countRows(t, &entities.House{}))
	require.Zero(t, f.countRows(t, &entities.Counter{}))
}

func TestUpdateHouse(t *testing.T) {
	f := newHouseFixture(t, nil)

	create := f.validHouseRequest()
	create.Phones = []uint64{f.phones[0].ID}
	create.Messengers = []uint64{f.messengers[0].ID}
	require.NoError(t, f.svc.CreateHouse(bg, create))
	created := f.onlyHouse(t)

	t.Run("缺少 ID", func(t *testing.T) {
		req := f.validHouseRequest()
		require.ErrorIs(t, f.svc.UpdateHouse(bg, req), myErrors.ErrMissingID)

		// ID 检查先于字段校验
		req.Name = ""
		require.ErrorIs(t, f.svc.UpdateHouse(bg, req), myErrors.ErrMissingID)
	})

	t.Run("校验失败", func(t *testing.T) {
		req := f.validHouseRequest()
		req.ID = ptr(created.ID)
		req.Name = "Другое имя"
		req.Phones = []uint64{f.phones[1].ID}
		req.Longitude = ""
		fieldErr, ok := myErrors.AsFieldError(f.svc.UpdateHouse(bg, req))
		require.True(t, ok)
		require.Equal(t, "longitude", fieldErr.FieldName)

		// 行与关联均未改动
		after := f.onlyHouse(t)
		require.Equal(t, created.Name, after.Name)
		require.True(t, created.UpdatedAt.Equal(after.UpdatedAt))
		require.Len(t, after.Phones, 1)
		require.Equal(t, f.phones[0].ID, after.Phones[0].PhoneID)
	})

	t.Run("不存在", func(t *testing.T) {
		req := f.validHouseRequest()
		req.ID = ptr(uint64(4242))
		require.ErrorIs(t, f.svc.UpdateHouse(bg, req), commonerrors.ErrRepoNotFound)
	})

	t.Run("替换标量与关联", func(t *testing.T) {
		req := f.validHouseRequest()
		req.ID = ptr(created.ID)
		req.Name = "Дом у леса"
		req.SaleStatus = ptr(enums.SaleStatusSold)
		req.IsActive = false
		req.Phones = []uint64{f.phones[1].ID}
		req.Messengers = nil
		require.NoError(t, f.svc.UpdateHouse(bg, req))

		updated := f.onlyHouse(t)
		require.Equal(t, "Дом у леса", updated.Name)
		require.Equal(t, enums.SaleStatusSold, updated.SaleStatus)
		require.False(t, updated.IsActive)
		require.Equal(t, created.HumanCode, updated.HumanCode)
		require.Len(t, updated.Phones, 1)
		require.Equal(t, f.phones[1].ID, updated.Phones[0].PhoneID)
		require.Empty(t, updated.Messengers)
	})
}

func TestDeleteHouse(t *testing.T) {
	f := newHouseFixture(t, nil)

	req := f.validHouseRequest()
	req.Phones = []uint64{f.phones[0].ID, f.phones[1].ID}
	req.Messengers = []uint64{f.messengers[0].ID}
	require.NoError(t, f.svc.CreateHouse(bg, req))
	house := f.onlyHouse(t)

	require.ErrorIs(t, f.svc.DeleteHouse(bg, 0), myErrors.ErrMissingID)
	require.EqualValues(t, 1, f.countRows(t, &entities.House{}))

	require.NoError(t, f.svc.DeleteHouse(bg, house.ID))
	require.Zero(t, f.countRows(t, &entities.House{}))
	require.Zero(t, f.countRows(t, &entities.HousePhone{}))
	require.Zero(t, f.countRows(t, &entities.HouseMessenger{}))
	// 字典行不受影响
	require.EqualValues(t, 2, f.countRows(t, &entities.Phone{}))

	require.True(t, errors.Is(f.svc.DeleteHouse(bg, house.ID), commonerrors.ErrRepoNotFound))
}

func TestGetHouses(t *testing.T) {
	f := newHouseFixture(t, nil)

	req := f.validHouseRequest()
	req.Phones = []uint64{f.phones[0].ID}
	require.NoError(t, f.svc.CreateHouse(bg, req))

	plain := f.svc.GetHouses(bg, false)
	require.Len(t, plain, 1)
	require.Empty(t, plain[0].Phones)

	withLinks := f.svc.GetHouses(bg, true)
	require.Len(t, withLinks, 1)
	require.Len(t, withLinks[0].Phones, 1)
	require.Equal(t, f.phones[0].Phone, withLinks[0].Phones[0].Phone)

	detail := f.svc.GetHouse(bg, plain[0].ID)
	require.NotNil(t, detail)
	require.Equal(t, "1", detail.HumanCode)
	require.Nil(t, f.svc.GetHouse(bg, 777))
}

func TestGetDefaultSelection(t *testing.T) {
	f := newHouseFixture(t, nil)

	defaults := f.svc.GetDefaultSelection(bg)
	require.NotNil(t, defaults)
	require.Equal(t, []uint64{f.phones[0].ID}, defaults.Phones)
	require.Equal(t, []uint64{f.messengers[0].ID}, defaults.Messengers)
}

func TestCreateHousePhone(t *testing.T) {
	f := newHouseFixture(t, nil)
	require.NoError(t, f.svc.CreateHouse(bg, f.validHouseRequest()))
	house := f.onlyHouse(t)

	fieldErr, ok := myErrors.AsFieldError(f.svc.CreateHousePhone(bg, &dto.CreateHousePhoneRequest{PhoneID: f.phones[0].ID}))
	require.True(t, ok)
	require.Equal(t, "houseId", fieldErr.FieldName)

	fieldErr, ok = myErrors.AsFieldError(f.svc.CreateHousePhone(bg, &dto.CreateHousePhoneRequest{HouseID: house.ID}))
	require.True(t, ok)
	require.Equal(t, "phoneId", fieldErr.FieldName)

	require.NoError(t, f.svc.CreateHousePhone(bg, &dto.CreateHousePhoneRequest{HouseID: house.ID, PhoneID: f.phones[1].ID}))
	links := f.svc.GetHousePhones(bg)
	require.Len(t, links, 1)
	require.Equal(t, house.ID, links[0].HouseID)
	require.Equal(t, f.phones[1].ID, links[0].PhoneID)
}

func TestHouseWritesInvalidateListingCache(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	cache := redisrepo.NewListingCache(client, time.Minute, testhelpers.NopLogger())

	f := newHouseFixture(t, cache)
	require.NoError(t, f.svc.CreateHouse(bg, f.validHouseRequest()))

	require.Len(t, f.svc.GetHouses(bg, false), 1)
	require.Len(t, f.catalog.GetPublicListing(bg).Houses, 1)
	require.True(t, mr.Exists(constant.ListingCacheKeyPrefix+constant.AdminHousesPath))
	require.True(t, mr.Exists(constant.ListingCacheKeyPrefix+constant.PublicHousesPath))

	require.NoError(t, f.svc.CreateHouse(bg, f.validHouseRequest()))
	require.False(t, mr.Exists(constant.ListingCacheKeyPrefix+constant.AdminHousesPath))
	require.False(t, mr.Exists(constant.ListingCacheKeyPrefix+constant.PublicHousesPath))

	// 回源后看到新房源
	require.Len(t, f.svc.GetHouses(bg, false), 2)
}

func TestCreateHouse_OptionalEnums(t *testing.T) {
	f := newHouseFixture(t, nil)

	bad := f.validHouseRequest()
	bad.FacingMaterial = ptr(enums.FacingMaterial("Plywood"))
	err := f.svc.CreateHouse(bg, bad)
	require.ErrorIs(t, err, myErrors.ErrInvalidEnumValue)
	require.Contains(t, err.Error(), "facingMaterial")
	_, isField := myErrors.AsFieldError(err)
	require.False(t, isField)

	bad = f.validHouseRequest()
	bad.Insulation = ptr(enums.Insulation("Straw"))
	require.ErrorIs(t, f.svc.CreateHouse(bg, bad), myErrors.ErrInvalidEnumValue)
	require.Zero(t, f.countRows(t, &entities.House{}))
	require.Zero(t, f.countRows(t, &entities.Counter{}))

	// 空字符串视为未填写
	empty := f.validHouseRequest()
	empty.FacingMaterial = ptr(enums.FacingMaterial(""))
	empty.Insulation = ptr(enums.InsulationMineralWool)
	require.NoError(t, f.svc.CreateHouse(bg, empty))
	house := f.onlyHouse(t)
	require.Nil(t, house.FacingMaterial)
	require.NotNil(t, house.Insulation)
	require.Equal(t, enums.InsulationMineralWool, *house.Insulation)
}

func jsonID(id uint64) string {
	b, _ := json.Marshal(id)
	return string(b)
}
