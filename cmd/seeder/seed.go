package main

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"sync"

	"github.com/brianvoe/gofakeit/v6"
	"go.uber.org/zap"

	"github.com/Xushengqwer/house_service/models/dto"
	"github.com/Xushengqwer/house_service/models/enums"
	"github.com/Xushengqwer/house_service/service"
)

type seedServices struct {
	districts  service.DistrictService
	developers service.DeveloperService
	phones     service.PhoneService
	messengers service.MessengerService
	houses     service.HouseService
}

// 房源并发写入数，同时覆盖 humanCode 计数器的并发路径
const seedConcurrency = 8

// Seed 先写入字典，再通过服务层并发创建房源
func Seed(ctx context.Context, svc seedServices, logger *zap.Logger, numHouses int) error {
	if err := seedDictionaries(ctx, svc); err != nil {
		return err
	}

	districts := svc.districts.ListDistricts(ctx)
	developers := svc.developers.ListDevelopers(ctx)
	if len(districts) == 0 || len(developers) == 0 {
		return fmt.Errorf("字典数据为空，无法生成房源")
	}
	defaults := svc.houses.GetDefaultSelection(ctx)
	if defaults == nil {
		return fmt.Errorf("读取默认联系方式失败")
	}

	var wg sync.WaitGroup
	semaphore := make(chan struct{}, seedConcurrency)
	for i := 0; i < numHouses; i++ {
		wg.Add(1)
		semaphore <- struct{}{}
		go func(itemIndex int) {
			defer wg.Done()
			defer func() { <-semaphore }()

			req := fakeHouse(districts[gofakeit.Number(0, len(districts)-1)].ID, developers[gofakeit.Number(0, len(developers)-1)].ID)
			req.Phones = defaults.Phones
			req.Messengers = defaults.Messengers

			if err := svc.houses.CreateHouse(ctx, req); err != nil {
				logger.Error(fmt.Sprintf("创建房源 %d/%d 失败", itemIndex+1, numHouses), zap.Error(err), zap.String("name", req.Name))
				return
			}
			logger.Info(fmt.Sprintf("成功创建房源 %d/%d", itemIndex+1, numHouses), zap.String("name", req.Name))
		}(i)
	}
	wg.Wait()
	return nil
}

func seedDictionaries(ctx context.Context, svc seedServices) error {
	for i := 0; i < 4; i++ {
		desc := gofakeit.Sentence(6)
		if err := svc.districts.CreateDistrict(ctx, &dto.DistrictRequest{Title: gofakeit.City(), Description: &desc}); err != nil {
			return fmt.Errorf("创建区域失败: %w", err)
		}
	}
	for i := 0; i < 3; i++ {
		link := gofakeit.URL()
		if err := svc.developers.CreateDeveloper(ctx, &dto.DeveloperRequest{Title: gofakeit.Company(), Link: &link}); err != nil {
			return fmt.Errorf("创建开发商失败: %w", err)
		}
	}
	for i := 0; i < 2; i++ {
		if err := svc.phones.CreatePhone(ctx, &dto.PhoneRequest{Phone: gofakeit.Phone(), Label: gofakeit.JobTitle(), IsDefault: i == 0}); err != nil {
			return fmt.Errorf("创建电话失败: %w", err)
		}
	}
	if err := svc.messengers.CreateMessenger(ctx, &dto.MessengerRequest{Link: "https://t.me/" + gofakeit.Username(), Label: "Telegram", IsDefault: true}); err != nil {
		return fmt.Errorf("创建即时通讯失败: %w", err)
	}
	return nil
}

func pick[T any](values ...T) *T {
	v := values[gofakeit.Number(0, len(values)-1)]
	return &v
}

func number(min, max float64) dto.NumericString {
	return dto.NumericString(strconv.FormatFloat(gofakeit.Float64Range(min, max), 'f', 2, 64))
}

func fakeHouse(districtID, developerID uint64) *dto.HouseRequest {
	description, _ := json.Marshal(map[string]interface{}{
		"blocks": []map[string]string{{"type": "paragraph", "text": gofakeit.Paragraph(2, 3, 12, " ")}},
	})
	cadastral := fmt.Sprintf("02:%02d:%06d:%d", gofakeit.Number(1, 99), gofakeit.Number(1, 999999), gofakeit.Number(1, 9999))

	return &dto.HouseRequest{
		Name:         gofakeit.Street(),
		Description:  description,
		DistrictID:   &districtID,
		DeveloperID:  &developerID,
		Type:         pick(enums.HouseTypeLandPlot, enums.HouseTypeDeveloper, enums.HouseTypeSecondary, enums.HouseTypeCommercial),
		Price:        number(1_500_000, 25_000_000),
		HouseArea:    number(60, 400),
		PlotArea:     number(300, 2500),
		LandCategory: pick(enums.LandCategoryIZHS, enums.LandCategorySNT, enums.LandCategoryDNT),
		Finishing:    pick(enums.FinishingClean, enums.FinishingPreClean, enums.FinishingRough),
		Heating:      pick(enums.HeatingGas, enums.HeatingElectricity, enums.HeatingOther),
		Floor:        pick(enums.FloorOne, enums.FloorTwo, enums.FloorThree),
		Bedroom:      pick(enums.BedroomOne, enums.BedroomTwo, enums.BedroomThree, enums.BedroomFour),
		Bathroom:     pick(enums.BathroomOne, enums.BathroomTwo, enums.BathroomMore),
		WallMaterial: pick(enums.WallWood, enums.WallBrick, enums.WallAeratedConcrete),
		HouseStatus:  pick(enums.HouseStatusBuilt, enums.HouseStatusUnderConstruction),
		SaleStatus:   pick(enums.SaleStatusAvailable, enums.SaleStatusReserved),
		Latitude:     number(54.6, 54.9),
		Longitude:    number(55.8, 56.2),

		FacingMaterial:  pick(enums.FacingBrick, enums.FacingSiding),
		Insulation:      pick(enums.InsulationMineralWool, enums.InsulationFoamPlastic),
		CadastralNumber: &cadastral,
		Gallery:         []string{gofakeit.ImageURL(800, 600), gofakeit.ImageURL(800, 600)},

		IsActive:       gofakeit.Bool(),
		AsphaltToHouse: gofakeit.Bool(),
		ClosedComplex:  gofakeit.Bool(),
	}
}
