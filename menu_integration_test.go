package main

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/voiceorder/menu-api/config"
	"github.com/voiceorder/menu-api/database"
	"github.com/voiceorder/menu-api/kds"
	"github.com/voiceorder/menu-api/models"
	"github.com/voiceorder/menu-api/router"
	"github.com/voiceorder/menu-api/utils"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	utils.InitLogger()
	utils.SetLogOutput(io.Discard)
	os.Exit(m.Run())
}

// TestEndToEndIntegration runs the kiosk flow:
// 1. browse categories and a category menu
// 2. open an item and read its options
// 3. place an order while a kitchen display is connected
// 4. read the order back
func TestEndToEndIntegration(t *testing.T) {
	db := setupTestDB(t)
	hub := kds.NewHub()
	defer hub.Close()

	srv := httptest.NewServer(router.SetupRouter(db, hub, &config.Config{CORSAllowOrigin: "*"}))
	defer srv.Close()

	categoryID := browseCategoriesTest(t, srv, "돈카츠,카레")
	itemID, optionIDs := pickMenuItemTest(t, srv, categoryID, "프리미엄 로스카츠(등심)", "밥많이", "레몬추가")

	display := connectKDSTest(t, srv, hub)
	defer display.Close()

	summary := placeOrderTest(t, srv, itemID, optionIDs)
	assert.Equal(t, 12400, summary.TotalAmount)
	assert.Equal(t, models.OrderStatusPending, summary.Status)

	display.SetReadDeadline(time.Now().Add(2 * time.Second))
	var event struct {
		Event string              `json:"event"`
		Data  models.OrderSummary `json:"data"`
	}
	require.NoError(t, display.ReadJSON(&event))
	assert.Equal(t, kds.EventOrderPlaced, event.Event)
	assert.Equal(t, summary.OrderNumber, event.Data.OrderNumber)

	checkOrderTest(t, srv, summary)
}

func TestErrorStatusCodes(t *testing.T) {
	db := setupTestDB(t)
	srv := httptest.NewServer(router.SetupRouter(db, nil, &config.Config{CORSAllowOrigin: "*"}))
	defer srv.Close()

	tests := []struct {
		path string
		code int
	}{
		{"/categories/999/menu", http.StatusNotFound},
		{"/options/invalid_type", http.StatusBadRequest},
		{"/menu/999", http.StatusNotFound},
		{"/orders/999", http.StatusNotFound},
		{"/kds/ws", http.StatusNotFound},
		{"/ping", http.StatusOK},
		{"/", http.StatusOK},
	}
	for _, tt := range tests {
		resp, err := http.Get(srv.URL + tt.path)
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, tt.code, resp.StatusCode, tt.path)
	}
}

func TestMetricsEndpoint(t *testing.T) {
	db := setupTestDB(t)
	srv := httptest.NewServer(router.SetupRouter(db, nil, &config.Config{CORSAllowOrigin: "*"}))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/categories")
	require.NoError(t, err)
	resp.Body.Close()

	resp, err = http.Get(srv.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), `http_requests_total{method="GET",path="/categories",status="200"}`)
}

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := config.InitDB(&config.Config{DBDriver: "sqlite", DBDSN: "file::memory:"})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, database.Migrate(db))
	require.NoError(t, database.SeedCatalog(db))
	return db
}

func getJSON(t *testing.T, url string, v interface{}) {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode, url)
	require.NoError(t, json.NewDecoder(resp.Body).Decode(v))
}

func browseCategoriesTest(t *testing.T, srv *httptest.Server, displayName string) uint {
	var categories []models.Category
	getJSON(t, srv.URL+"/categories", &categories)
	require.Len(t, categories, 4)

	var categoryID uint
	for _, c := range categories {
		if c.DisplayName == displayName {
			categoryID = c.ID
		}
	}
	require.NotZero(t, categoryID, "category %s not listed", displayName)

	var items []models.MenuItem
	getJSON(t, srv.URL+"/categories/"+strconv.Itoa(int(categoryID))+"/menu", &items)
	require.Len(t, items, 9)
	return categoryID
}

func pickMenuItemTest(t *testing.T, srv *httptest.Server, categoryID uint, itemName string, optionNames ...string) (uint, []uint) {
	var items []models.MenuItem
	getJSON(t, srv.URL+"/categories/"+strconv.Itoa(int(categoryID))+"/menu", &items)

	var itemID uint
	for _, item := range items {
		if item.Name == itemName {
			itemID = item.ID
		}
	}
	require.NotZero(t, itemID)

	var detail struct {
		Name             string          `json:"name"`
		CategoryName     string          `json:"category_name"`
		AvailableOptions []models.Option `json:"available_options"`
	}
	getJSON(t, srv.URL+"/menu/"+strconv.Itoa(int(itemID)), &detail)
	assert.Equal(t, itemName, detail.Name)

	optionIDs := make([]uint, 0, len(optionNames))
	for _, name := range optionNames {
		for _, o := range detail.AvailableOptions {
			if o.Name == name {
				optionIDs = append(optionIDs, o.ID)
			}
		}
	}
	require.Len(t, optionIDs, len(optionNames))
	return itemID, optionIDs
}

func connectKDSTest(t *testing.T, srv *httptest.Server, hub *kds.Hub) *websocket.Conn {
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/kds/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	require.Eventually(t, func() bool { return hub.ClientCount() == 1 }, 2*time.Second, 10*time.Millisecond)
	return conn
}

func placeOrderTest(t *testing.T, srv *httptest.Server, itemID uint, optionIDs []uint) models.OrderSummary {
	options := make([]map[string]interface{}, 0, len(optionIDs))
	for _, id := range optionIDs {
		options = append(options, map[string]interface{}{"option_id": id, "quantity": 1})
	}
	payload, err := json.Marshal(map[string]interface{}{
		"items": []map[string]interface{}{
			{"menu_item_id": itemID, "quantity": 1, "options": options},
		},
	})
	require.NoError(t, err)

	resp, err := http.Post(srv.URL+"/orders", "application/json", bytes.NewReader(payload))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var summary models.OrderSummary
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&summary))
	return summary
}

func checkOrderTest(t *testing.T, srv *httptest.Server, summary models.OrderSummary) {
	var order models.Order
	getJSON(t, srv.URL+"/orders/"+strconv.Itoa(int(summary.ID)), &order)

	assert.Equal(t, summary.OrderNumber, order.OrderNumber)
	assert.Equal(t, 12400, order.TotalAmount)
	require.Len(t, order.Items, 1)
	assert.Equal(t, 1, order.Items[0].Quantity)
	assert.Equal(t, 12400, order.Items[0].TotalPrice)
	assert.Len(t, order.Items[0].Options, 2)
}
