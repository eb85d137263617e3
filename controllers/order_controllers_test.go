package controllers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voiceorder/menu-api/models"
)

func TestCreateAndGetOrder(t *testing.T) {
	db := setupTestDB(t)
	router := setupRouter(db)

	roskatsu := menuItemByName(t, db, "프리미엄 로스카츠(등심)")
	rice := optionByName(t, db, models.OptionTypeDonkatsu, "밥많이")
	lemon := optionByName(t, db, models.OptionTypeDonkatsu, "레몬추가")

	payload := map[string]interface{}{
		"items": []map[string]interface{}{
			{
				"menu_item_id": roskatsu.ID,
				"quantity":     1,
				"options": []map[string]interface{}{
					{"option_id": rice.ID, "quantity": 1},
					{"option_id": lemon.ID, "quantity": 1},
				},
			},
		},
	}

	w := doRequest(t, router, "POST", "/orders", payload)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var created map[string]interface{}
	decode(t, w, &created)
	assert.Equal(t, float64(12400), created["total_amount"])
	assert.Equal(t, "pending", created["status"])
	assert.Regexp(t, `^ORD-\d{14}-[0-9a-f]{8}$`, created["order_number"])
	assert.Contains(t, created, "created_at")
	orderID := int(created["id"].(float64))

	w = doRequest(t, router, "GET", fmt.Sprintf("/orders/%d", orderID), nil)
	assert.Equal(t, http.StatusOK, w.Code)
	var order models.Order
	decode(t, w, &order)
	assert.Equal(t, created["order_number"], order.OrderNumber)
	require.Len(t, order.Items, 1)
	assert.Equal(t, 11900, order.Items[0].ItemPrice)
	assert.Len(t, order.Items[0].Options, 2)
}

func TestCreateOrderDefaultsQuantities(t *testing.T) {
	db := setupTestDB(t)
	router := setupRouter(db)

	setMeal := menuItemByName(t, db, "정식D(쌀국수S+치즈)")
	sizeUp := optionByName(t, db, models.OptionTypeSetMeal, "쌀국수사이즈업")

	body := fmt.Sprintf(`{"items":[{"menu_item_id":%d,"options":[{"option_id":%d}]}]}`, setMeal.ID, sizeUp.ID)
	w := doRequest(t, router, "POST", "/orders", body)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var created map[string]interface{}
	decode(t, w, &created)
	assert.Equal(t, float64(12900+3000), created["total_amount"])
}

func TestCreateOrderErrors(t *testing.T) {
	db := setupTestDB(t)
	router := setupRouter(db)

	roskatsu := menuItemByName(t, db, "프리미엄 로스카츠(등심)")
	setMealRice := optionByName(t, db, models.OptionTypeSetMeal, "밥추가")

	tests := []struct {
		name string
		body string
		code int
	}{
		{"malformed json", `{"items": [`, http.StatusBadRequest},
		{"empty cart", `{"items": []}`, http.StatusBadRequest},
		{"missing items", `{}`, http.StatusBadRequest},
		{"zero quantity", fmt.Sprintf(`{"items":[{"menu_item_id":%d,"quantity":0}]}`, roskatsu.ID), http.StatusBadRequest},
		{"unknown menu item", `{"items":[{"menu_item_id":9999,"quantity":1}]}`, http.StatusNotFound},
		{"zero menu item id", `{"items":[{"menu_item_id":0,"quantity":1}]}`, http.StatusNotFound},
		{"missing menu item id", `{"items":[{"quantity":1}]}`, http.StatusNotFound},
		{"zero option id", fmt.Sprintf(`{"items":[{"menu_item_id":%d,"options":[{"option_id":0}]}]}`, roskatsu.ID), http.StatusNotFound},
		{"line quantity above max", fmt.Sprintf(`{"items":[{"menu_item_id":%d,"quantity":1000}]}`, roskatsu.ID), http.StatusBadRequest},
		{"overflowing line quantity", fmt.Sprintf(`{"items":[{"menu_item_id":%d,"quantity":1000000000000000}]}`, roskatsu.ID), http.StatusBadRequest},
		{"option quantity above max", fmt.Sprintf(`{"items":[{"menu_item_id":%d,"options":[{"option_id":%d,"quantity":1000000000000000}]}]}`, roskatsu.ID, setMealRice.ID), http.StatusBadRequest},
		{"unknown option", fmt.Sprintf(`{"items":[{"menu_item_id":%d,"options":[{"option_id":9999}]}]}`, roskatsu.ID), http.StatusNotFound},
		{"option of another type", fmt.Sprintf(`{"items":[{"menu_item_id":%d,"options":[{"option_id":%d}]}]}`, roskatsu.ID, setMealRice.ID), http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(t, router, "POST", "/orders", tt.body)
			assert.Equal(t, tt.code, w.Code, w.Body.String())
		})
	}

	var count int64
	require.NoError(t, db.Model(&models.Order{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestGetOrderNotFound(t *testing.T) {
	db := setupTestDB(t)
	router := setupRouter(db)

	w := doRequest(t, router, "GET", "/orders/77", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateOrderMaxQuantity(t *testing.T) {
	db := setupTestDB(t)
	router := setupRouter(db)

	roskatsu := menuItemByName(t, db, "프리미엄 로스카츠(등심)")
	extraRice := optionByName(t, db, models.OptionTypeDonkatsu, "공깃밥 추가")

	body := fmt.Sprintf(`{"items":[{"menu_item_id":%d,"quantity":999,"options":[{"option_id":%d,"quantity":999}]}]}`, roskatsu.ID, extraRice.ID)
	w := doRequest(t, router, "POST", "/orders", body)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var created map[string]interface{}
	decode(t, w, &created)
	assert.Equal(t, float64(11900*999+1000*999), created["total_amount"])
}
