package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStockHandler_Create(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	// 库存写入
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `stock`").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	// 镜像支出写入
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `expenses`").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(setUserIDMiddleware(1))
	router.POST("/stock", NewStockHandler().Create)

	body := `{"item_name":"充电器","quantity":3,"purchase_price":1000,"purchase_date":"2024-01-10","status":"In Stock"}`
	req := httptest.NewRequest("POST", "/stock", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "创建成功", resp["message"])
	// 两条都写入成功时没有警告
	_, hasWarning := resp["warning"]
	assert.False(t, hasWarning)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestStockHandler_Create_ExpenseFails(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	// 库存写入成功
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `stock`").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	// 镜像支出写入失败，库存不回滚
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `expenses`").
		WillReturnError(errors.New("expenses insert failed"))
	mock.ExpectRollback()

	router := gin.New()
	router.Use(setUserIDMiddleware(1))
	router.POST("/stock", NewStockHandler().Create)

	body := `{"item_name":"充电器","quantity":3,"purchase_price":1000,"purchase_date":"2024-01-10","status":"In Stock"}`
	req := httptest.NewRequest("POST", "/stock", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	// 半提交仍返回 200，但带警告
	assert.Equal(t, 200, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "创建成功", resp["message"])
	assert.NotEmpty(t, resp["warning"])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestStockHandler_Create_StockFails(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	// 库存写入失败，整个操作失败，不写支出
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `stock`").
		WillReturnError(errors.New("stock insert failed"))
	mock.ExpectRollback()

	router := gin.New()
	router.Use(setUserIDMiddleware(1))
	router.POST("/stock", NewStockHandler().Create)

	body := `{"item_name":"充电器","quantity":3,"purchase_price":1000,"purchase_date":"2024-01-10","status":"In Stock"}`
	req := httptest.NewRequest("POST", "/stock", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 500, w.Code)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestStockHandler_Create_InvalidStatus(t *testing.T) {
	_, cleanup := setupMockDB(t)
	defer cleanup()

	router := gin.New()
	router.Use(setUserIDMiddleware(1))
	router.POST("/stock", NewStockHandler().Create)

	body := `{"item_name":"充电器","quantity":3,"purchase_price":1000,"purchase_date":"2024-01-10","status":"Broken"}`
	req := httptest.NewRequest("POST", "/stock", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 400, w.Code)
}

func TestStockHandler_Create_ZeroQuantity(t *testing.T) {
	_, cleanup := setupMockDB(t)
	defer cleanup()

	router := gin.New()
	router.Use(setUserIDMiddleware(1))
	router.POST("/stock", NewStockHandler().Create)

	body := `{"item_name":"充电器","quantity":0,"purchase_price":1000,"purchase_date":"2024-01-10","status":"In Stock"}`
	req := httptest.NewRequest("POST", "/stock", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 400, w.Code)
}
