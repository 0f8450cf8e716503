package api

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func incomeRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "amount", "reason", "date", "created_by", "created_at", "updated_at", "deleted_at"})
}

func TestIncomeHandler_Create(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `incomes`").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(setUserIDMiddleware(1))
	router.POST("/incomes", NewIncomeHandler().Create)

	body := `{"amount":1500.50,"reason":"卖出手机一部","date":"2024-01-15"}`
	req := httptest.NewRequest("POST", "/incomes", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "创建成功", resp["message"])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestIncomeHandler_Create_InvalidAmount(t *testing.T) {
	_, cleanup := setupMockDB(t)
	defer cleanup()

	router := gin.New()
	router.Use(setUserIDMiddleware(1))
	router.POST("/incomes", NewIncomeHandler().Create)

	body := `{"amount":-5,"reason":"负数金额","date":"2024-01-15"}`
	req := httptest.NewRequest("POST", "/incomes", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 400, w.Code)
}

func TestIncomeHandler_Create_EmptyReason(t *testing.T) {
	_, cleanup := setupMockDB(t)
	defer cleanup()

	router := gin.New()
	router.Use(setUserIDMiddleware(1))
	router.POST("/incomes", NewIncomeHandler().Create)

	body := `{"amount":100,"reason":"   ","date":"2024-01-15"}`
	req := httptest.NewRequest("POST", "/incomes", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 400, w.Code)
}

func TestIncomeHandler_List(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT count").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))
	mock.ExpectQuery("SELECT .* FROM `incomes`").
		WillReturnRows(incomeRows().
			AddRow(2, 200.0, "配件", time.Now(), 1, time.Now(), time.Now(), nil).
			AddRow(1, 1500.5, "手机", time.Now(), 1, time.Now(), time.Now(), nil))

	router := gin.New()
	router.Use(setUserIDMiddleware(1))
	router.GET("/incomes", NewIncomeHandler().List)

	req := httptest.NewRequest("GET", "/incomes?page=1&page_size=20", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, float64(2), data["total"])
	assert.Len(t, data["list"], 2)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestIncomeHandler_List_InvalidMonth(t *testing.T) {
	_, cleanup := setupMockDB(t)
	defer cleanup()

	router := gin.New()
	router.Use(setUserIDMiddleware(1))
	router.GET("/incomes", NewIncomeHandler().List)

	req := httptest.NewRequest("GET", "/incomes?month=13&year=2024", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 400, w.Code)
}

func TestIncomeHandler_Update_NotFound(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT .* FROM `incomes`").
		WillReturnRows(incomeRows())

	router := gin.New()
	router.Use(setUserIDMiddleware(1))
	router.PUT("/incomes/:id", NewIncomeHandler().Update)

	body := `{"amount":300}`
	req := httptest.NewRequest("PUT", "/incomes/99", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 404, w.Code)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestIncomeHandler_Delete(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT .* FROM `incomes`").
		WillReturnRows(incomeRows().
			AddRow(1, 1500.5, "手机", time.Now(), 1, time.Now(), time.Now(), nil))

	// 软删除
	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `incomes`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	router := gin.New()
	router.Use(setUserIDMiddleware(1))
	router.DELETE("/incomes/:id", NewIncomeHandler().Delete)

	req := httptest.NewRequest("DELETE", "/incomes/1", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	require.NoError(t, mock.ExpectationsWereMet())
}
