package controller

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/Xushengqwer/house_service/models/entities"
	"github.com/Xushengqwer/house_service/repo/mysql"
	"github.com/Xushengqwer/house_service/service"
	"github.com/Xushengqwer/house_service/testhelpers"
)

type testAPI struct {
	db        *gorm.DB
	engine    *gin.Engine
	district  entities.District
	developer entities.Developer
	phone     entities.Phone
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()
	gin.SetMode(gin.TestMode)
	db := testhelpers.NewTestDB(t)
	logger := testhelpers.NopLogger()

	api := &testAPI{
		db:        db,
		district:  entities.District{Title: "Центральный"},
		developer: entities.Developer{Title: "СтройИнвест"},
		phone:     entities.Phone{Phone: "+7 900", Label: "Офис"},
	}
	require.NoError(t, db.Create(&api.district).Error)
	require.NoError(t, db.Create(&api.developer).Error)
	require.NoError(t, db.Create(&api.phone).Error)

	houseRepo := mysql.NewHouseRepository(db, logger)
	districtRepo := mysql.NewDistrictRepository(db, logger)
	phoneRepo := mysql.NewPhoneRepository(db, logger)
	messengerRepo := mysql.NewMessengerRepository(db, logger)

	houseSvc := service.NewHouseService(db, houseRepo, mysql.NewHouseLinkRepository(db, logger), mysql.NewCounterRepository(),
		phoneRepo, messengerRepo, nil, nil, logger)
	catalogSvc := service.NewCatalogService(houseRepo, districtRepo, nil, logger)
	dictCtrl := NewDictionaryController(
		service.NewDistrictService(districtRepo, nil, logger),
		service.NewDeveloperService(mysql.NewDeveloperRepository(db, logger), nil, logger),
		service.NewPhoneService(phoneRepo, nil, logger),
		service.NewMessengerService(messengerRepo, nil, logger),
		service.NewRegionService(mysql.NewRegionRepository(db, logger), nil, logger),
	)

	engine := gin.New()
	v1 := engine.Group("/api/v1/estate")
	NewCatalogController(catalogSvc).RegisterRoutes(v1)
	admin := v1.Group("/admin")
	NewHouseController(houseSvc).RegisterRoutes(admin)
	dictCtrl.RegisterRoutes(admin)
	api.engine = engine
	return api
}

func (api *testAPI) do(t *testing.T, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	api.engine.ServeHTTP(w, req)
	return w
}

func (api *testAPI) housePayload() map[string]interface{} {
	return map[string]interface{}{
		"name": "Дом у озера", "districtId": api.district.ID, "developerId": api.developer.ID,
		"type": "LandPlot", "price": "1500000", "houseArea": "120", "plotArea": "600",
		"landCategory": "IZHS", "finishing": "CleanFinish", "heating": "Gas", "floor": "One",
		"bedroom": "Two", "bathroom": "One", "wallMaterial": "Wood", "houseStatus": "BuiltHouse",
		"saleStatus": "Available", "latitude": "54.7", "longitude": "55.9",
		"phones": []uint64{api.phone.ID}, "messengers": []uint64{},
		"isActive": true,
	}
}

type envelope struct {
	Data json.RawMessage `json:"data"`
}

func decodeData(t *testing.T, w *httptest.ResponseRecorder, dest interface{}) {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	require.NoError(t, json.Unmarshal(env.Data, dest))
}

func TestHouseAPI_CreateAndRead(t *testing.T) {
	api := newTestAPI(t)

	w := api.do(t, http.MethodPost, "/api/v1/estate/admin/houses", api.housePayload())
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	require.Contains(t, w.Body.String(), `"success":true`)

	w = api.do(t, http.MethodGet, "/api/v1/estate/admin/houses?withLinks=true", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var houses []struct {
		ID        uint64            `json:"id"`
		HumanCode string            `json:"humanCode"`
		Phones    []json.RawMessage `json:"phones"`
	}
	decodeData(t, w, &houses)
	require.Len(t, houses, 1)
	require.Equal(t, "1", houses[0].HumanCode)
	require.Len(t, houses[0].Phones, 1)

	w = api.do(t, http.MethodGet, fmt.Sprintf("/api/v1/estate/houses/%d", houses[0].ID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"humanCode":"1"`)

	w = api.do(t, http.MethodGet, "/api/v1/estate/houses", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"districts"`)
}

func TestHouseAPI_ValidationError(t *testing.T) {
	api := newTestAPI(t)

	payload := api.housePayload()
	delete(payload, "price")
	w := api.do(t, http.MethodPost, "/api/v1/estate/admin/houses", payload)

	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), `"fieldName":"price"`)
	require.Contains(t, w.Body.String(), "Цена обязательна")

	var n int64
	require.NoError(t, api.db.Model(&entities.House{}).Count(&n).Error)
	require.Zero(t, n)
}

func TestHouseAPI_UpdateAndDelete(t *testing.T) {
	api := newTestAPI(t)
	require.Equal(t, http.StatusOK, api.do(t, http.MethodPost, "/api/v1/estate/admin/houses", api.housePayload()).Code)

	var house entities.House
	require.NoError(t, api.db.First(&house).Error)

	payload := api.housePayload()
	payload["name"] = "Дом у леса"
	payload["phones"] = []uint64{}
	w := api.do(t, http.MethodPut, fmt.Sprintf("/api/v1/estate/admin/houses/%d", house.ID), payload)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = api.do(t, http.MethodPut, "/api/v1/estate/admin/houses/9999", payload)
	require.Equal(t, http.StatusNotFound, w.Code)

	w = api.do(t, http.MethodPut, "/api/v1/estate/admin/houses/abc", payload)
	require.Equal(t, http.StatusBadRequest, w.Code)

	w = api.do(t, http.MethodDelete, fmt.Sprintf("/api/v1/estate/admin/houses/%d", house.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = api.do(t, http.MethodGet, fmt.Sprintf("/api/v1/estate/admin/houses/%d", house.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	require.True(t, len(env.Data) == 0 || string(env.Data) == "null", string(env.Data))
}

type actionResult struct {
	Success   bool   `json:"success"`
	Error     string `json:"error"`
	FieldName string `json:"fieldName"`
}

func TestHouseAPI_FailuresCarryActionResult(t *testing.T) {
	api := newTestAPI(t)

	payload := api.housePayload()
	payload["phones"] = []uint64{999}
	w := api.do(t, http.MethodPost, "/api/v1/estate/admin/houses", payload)
	require.Equal(t, http.StatusInternalServerError, w.Code, w.Body.String())
	var result actionResult
	decodeData(t, w, &result)
	require.False(t, result.Success)
	require.Equal(t, "FOREIGN KEY constraint failed", result.Error)
	require.Empty(t, result.FieldName)

	w = api.do(t, http.MethodDelete, "/api/v1/estate/admin/houses/0", nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
	result = actionResult{}
	decodeData(t, w, &result)
	require.Equal(t, "Идентификатор отсутствует", result.Error)

	w = api.do(t, http.MethodDelete, "/api/v1/estate/admin/houses/4242", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	result = actionResult{}
	decodeData(t, w, &result)
	require.NotEmpty(t, result.Error)

	payload = api.housePayload()
	payload["facingMaterial"] = "Plywood"
	w = api.do(t, http.MethodPost, "/api/v1/estate/admin/houses", payload)
	require.Equal(t, http.StatusBadRequest, w.Code)
	result = actionResult{}
	decodeData(t, w, &result)
	require.Contains(t, result.Error, "facingMaterial")
	require.Empty(t, result.FieldName)
}

func TestHouseAPI_BadJSON(t *testing.T) {
	api := newTestAPI(t)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/estate/admin/houses", bytes.NewBufferString("{"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	api.engine.ServeHTTP(w, req)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDictionaryAPI(t *testing.T) {
	api := newTestAPI(t)

	w := api.do(t, http.MethodPost, "/api/v1/estate/admin/dict/messengers", map[string]string{"label": "Telegram"})
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), `"fieldName":"link"`)

	w = api.do(t, http.MethodPost, "/api/v1/estate/admin/dict/regions", map[string]string{"title": "Башкортостан"})
	require.Equal(t, http.StatusOK, w.Code)

	w = api.do(t, http.MethodGet, "/api/v1/estate/admin/dict/regions", nil)
	var regions []struct {
		ID    uint64 `json:"id"`
		Title string `json:"title"`
	}
	decodeData(t, w, &regions)
	require.Len(t, regions, 1)

	w = api.do(t, http.MethodDelete, "/api/v1/estate/admin/dict/regions/0", nil)
	require.Equal(t, http.StatusBadRequest, w.Code)

	// 仍被房源引用的区域无法删除，驱动错误以 500 返回
	require.Equal(t, http.StatusOK, api.do(t, http.MethodPost, "/api/v1/estate/admin/houses", api.housePayload()).Code)
	w = api.do(t, http.MethodDelete, fmt.Sprintf("/api/v1/estate/admin/dict/districts/%d", api.district.ID), nil)
	require.Equal(t, http.StatusInternalServerError, w.Code)
	var result actionResult
	decodeData(t, w, &result)
	require.Equal(t, "FOREIGN KEY constraint failed", result.Error)
}
