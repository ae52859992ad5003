package service

import (
	"testing"

	"github.com/Xushengqwer/go-common/commonerrors"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	"github.com/Xushengqwer/house_service/constant"
	"github.com/Xushengqwer/house_service/models/dto"
	"github.com/Xushengqwer/house_service/models/entities"
	"github.com/Xushengqwer/house_service/myErrors"
	"github.com/Xushengqwer/house_service/repo/mysql"
	redisrepo "github.com/Xushengqwer/house_service/repo/redis"
	"github.com/Xushengqwer/house_service/testhelpers"
)

func requireFieldError(t *testing.T, err error, field, message string) {
	t.Helper()
	fieldErr, ok := myErrors.AsFieldError(err)
	require.True(t, ok, "期望字段错误，实际: %v", err)
	require.Equal(t, field, fieldErr.FieldName)
	require.Equal(t, message, fieldErr.Message)
}

func TestDistrictService(t *testing.T) {
	db := testhelpers.NewTestDB(t)
	svc := NewDistrictService(mysql.NewDistrictRepository(db, testhelpers.NopLogger()), nil, testhelpers.NopLogger())

	requireFieldError(t, svc.CreateDistrict(bg, &dto.DistrictRequest{Title: "  "}), "title", titleRequiredMessage)

	early := mustDate(t, "2020-05-01")
	require.NoError(t, svc.CreateDistrict(bg, &dto.DistrictRequest{Title: "Без порядка"}))
	require.NoError(t, svc.CreateDistrict(bg, &dto.DistrictRequest{Title: "Первый", SortOrder: &early}))
	// 标题不要求唯一
	require.NoError(t, svc.CreateDistrict(bg, &dto.DistrictRequest{Title: "Первый"}))

	list := svc.ListDistricts(bg)
	require.Len(t, list, 3)
	require.Equal(t, "Первый", list[0].Title)
	require.True(t, list[0].SortOrder.Equal(early))
	require.True(t, list[1].SortOrder.Equal(constant.DistrictSortOrderLast))

	t.Run("更新", func(t *testing.T) {
		require.ErrorIs(t, svc.UpdateDistrict(bg, &dto.DistrictRequest{Title: "x"}), myErrors.ErrMissingID)
		requireFieldError(t, svc.UpdateDistrict(bg, &dto.DistrictRequest{ID: list[1].ID}), "title", titleRequiredMessage)
		require.ErrorIs(t, svc.UpdateDistrict(bg, &dto.DistrictRequest{ID: 9999, Title: "x"}), commonerrors.ErrRepoNotFound)

		require.NoError(t, svc.UpdateDistrict(bg, &dto.DistrictRequest{ID: list[1].ID, Title: "Переименован"}))
		var row entities.District
		require.NoError(t, db.First(&row, list[1].ID).Error)
		require.Equal(t, "Переименован", row.Title)
		require.True(t, row.SortOrder.Equal(constant.DistrictSortOrderLast))
	})

	t.Run("删除", func(t *testing.T) {
		require.ErrorIs(t, svc.DeleteDistrict(bg, 0), myErrors.ErrMissingID)
		require.NoError(t, svc.DeleteDistrict(bg, list[2].ID))
		require.Len(t, svc.ListDistricts(bg), 2)
		require.ErrorIs(t, svc.DeleteDistrict(bg, list[2].ID), commonerrors.ErrRepoNotFound)
	})
}

func TestDistrictDeleteBlockedByHouse(t *testing.T) {
	f := newHouseFixture(t, nil)
	require.NoError(t, f.svc.CreateHouse(bg, f.validHouseRequest()))

	svc := NewDistrictService(mysql.NewDistrictRepository(f.db, testhelpers.NopLogger()), nil, testhelpers.NopLogger())
	err := svc.DeleteDistrict(bg, f.district.ID)
	require.Error(t, err)
	_, isField := myErrors.AsFieldError(err)
	require.False(t, isField)
	require.EqualValues(t, 1, f.countRows(t, &entities.District{}))
}

func TestPhoneService(t *testing.T) {
	db := testhelpers.NewTestDB(t)
	svc := NewPhoneService(mysql.NewPhoneRepository(db, testhelpers.NopLogger()), nil, testhelpers.NopLogger())

	requireFieldError(t, svc.CreatePhone(bg, &dto.PhoneRequest{Label: "Офис"}), "phone", phoneRequiredMessage)
	requireFieldError(t, svc.CreatePhone(bg, &dto.PhoneRequest{}), "phone", phoneRequiredMessage)
	requireFieldError(t, svc.CreatePhone(bg, &dto.PhoneRequest{Phone: "+7 900"}), "label", labelRequiredMessage)

	require.NoError(t, svc.CreatePhone(bg, &dto.PhoneRequest{Phone: "+7 900", Label: "Офис", IsDefault: true}))
	require.NoError(t, svc.CreatePhone(bg, &dto.PhoneRequest{Phone: "+7 900", Label: "Офис"}))

	phones := svc.ListPhones(bg)
	require.Len(t, phones, 2)
	require.True(t, phones[0].IsDefault)

	require.ErrorIs(t, svc.UpdatePhone(bg, &dto.PhoneRequest{Phone: "1", Label: "2"}), myErrors.ErrMissingID)
	require.NoError(t, svc.UpdatePhone(bg, &dto.PhoneRequest{ID: phones[0].ID, Phone: "+7 901", Label: "Склад"}))

	var row entities.Phone
	require.NoError(t, db.First(&row, phones[0].ID).Error)
	require.Equal(t, "+7 901", row.Phone)
	require.False(t, row.IsDefault)
}

func TestPhoneDeleteCascadesToHouseLinks(t *testing.T) {
	f := newHouseFixture(t, nil)
	req := f.validHouseRequest()
	req.Phones = []uint64{f.phones[0].ID, f.phones[1].ID}
	require.NoError(t, f.svc.CreateHouse(bg, req))

	svc := NewPhoneService(mysql.NewPhoneRepository(f.db, testhelpers.NopLogger()), nil, testhelpers.NopLogger())
	require.NoError(t, svc.DeletePhone(bg, f.phones[0].ID))

	house := f.onlyHouse(t)
	require.Len(t, house.Phones, 1)
	require.Equal(t, f.phones[1].ID, house.Phones[0].PhoneID)
}

func TestMessengerService(t *testing.T) {
	db := testhelpers.NewTestDB(t)
	svc := NewMessengerService(mysql.NewMessengerRepository(db, testhelpers.NopLogger()), nil, testhelpers.NopLogger())

	requireFieldError(t, svc.CreateMessenger(bg, &dto.MessengerRequest{Label: "Telegram"}), "link", linkRequiredMessage)
	requireFieldError(t, svc.CreateMessenger(bg, &dto.MessengerRequest{Link: "https://t.me/a"}), "label", labelRequiredMessage)
	require.NoError(t, svc.CreateMessenger(bg, &dto.MessengerRequest{Link: "https://t.me/a", Label: "Telegram"}))

	list := svc.ListMessengers(bg)
	require.Len(t, list, 1)
	require.ErrorIs(t, svc.UpdateMessenger(bg, &dto.MessengerRequest{Link: "a", Label: "b"}), myErrors.ErrMissingID)
	require.NoError(t, svc.DeleteMessenger(bg, list[0].ID))
	require.Empty(t, svc.ListMessengers(bg))
}

func TestDeveloperAndRegionServices(t *testing.T) {
	db := testhelpers.NewTestDB(t)
	logger := testhelpers.NopLogger()
	developers := NewDeveloperService(mysql.NewDeveloperRepository(db, logger), nil, logger)
	regions := NewRegionService(mysql.NewRegionRepository(db, logger), nil, logger)

	requireFieldError(t, developers.CreateDeveloper(bg, &dto.DeveloperRequest{}), "title", titleRequiredMessage)
	requireFieldError(t, regions.CreateRegion(bg, &dto.RegionRequest{}), "title", titleRequiredMessage)

	link := "https://builder.example.com"
	require.NoError(t, developers.CreateDeveloper(bg, &dto.DeveloperRequest{Title: "СтройИнвест", Link: &link}))
	require.NoError(t, developers.CreateDeveloper(bg, &dto.DeveloperRequest{Title: "СтройИнвест"}))
	require.NoError(t, regions.CreateRegion(bg, &dto.RegionRequest{Title: "Башкортостан"}))

	devs := developers.ListDevelopers(bg)
	require.Len(t, devs, 2)
	require.NotNil(t, devs[0].Link)
	require.Nil(t, devs[1].Link)

	rs := regions.ListRegions(bg)
	require.Len(t, rs, 1)
	require.NoError(t, regions.UpdateRegion(bg, &dto.RegionRequest{ID: rs[0].ID, Title: "Татарстан"}))
	require.Equal(t, "Татарстан", regions.ListRegions(bg)[0].Title)
	require.ErrorIs(t, regions.DeleteRegion(bg, 0), myErrors.ErrMissingID)
}

func TestDictionaryListIsCached(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	logger := testhelpers.NopLogger()
	cache := redisrepo.NewListingCache(client, 0, logger)

	db := testhelpers.NewTestDB(t)
	svc := NewDistrictService(mysql.NewDistrictRepository(db, logger), cache, logger)
	require.NoError(t, svc.CreateDistrict(bg, &dto.DistrictRequest{Title: "Центральный"}))

	require.Len(t, svc.ListDistricts(bg), 1)
	require.True(t, mr.Exists(constant.ListingCacheKeyPrefix+constant.AdminDistrictsPath))

	// 绕过服务直接写库：缓存未失效前仍返回旧数据
	require.NoError(t, db.Create(&entities.District{Title: "Северный", SortOrder: constant.DistrictSortOrderLast}).Error)
	require.Len(t, svc.ListDistricts(bg), 1)

	// 通过服务写入会失效区域列表和公共目录
	mr.Set(constant.ListingCacheKeyPrefix+constant.PublicHousesPath, "{}")
	require.NoError(t, svc.CreateDistrict(bg, &dto.DistrictRequest{Title: "Южный"}))
	require.False(t, mr.Exists(constant.ListingCacheKeyPrefix+constant.AdminDistrictsPath))
	require.False(t, mr.Exists(constant.ListingCacheKeyPrefix+constant.PublicHousesPath))
	require.Len(t, svc.ListDistricts(bg), 3)
}
