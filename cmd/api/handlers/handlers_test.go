package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"news-cms/cmd/api/services"
)

func TestWriteErrorStatusMapping(t *testing.T) {
	gin.SetMode(gin.TestMode)

	testCases := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "validation", err: fmt.Errorf("%w: title is required", services.ErrValidation), wantStatus: http.StatusBadRequest},
		{name: "invalid id", err: fmt.Errorf("%w: nope", services.ErrInvalidID), wantStatus: http.StatusBadRequest},
		{name: "conflict", err: fmt.Errorf("%w: slug taken", services.ErrConflict), wantStatus: http.StatusBadRequest},
		{name: "not found", err: services.ErrNotFound, wantStatus: http.StatusNotFound},
		{name: "bad credentials", err: services.ErrInvalidCredentials, wantStatus: http.StatusUnauthorized},
		{name: "unclassified", err: errors.New("mongo blew up"), wantStatus: http.StatusInternalServerError},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			recorder := httptest.NewRecorder()
			ginCtx, _ := gin.CreateTestContext(recorder)
			ginCtx.Request = httptest.NewRequest(http.MethodGet, "/", nil)

			writeError(ginCtx, testCase.err)

			if recorder.Code != testCase.wantStatus {
				t.Fatalf("expected status %d, got %d", testCase.wantStatus, recorder.Code)
			}

			var body struct {
				Success bool   `json:"success"`
				Error   string `json:"error"`
			}
			if err := json.Unmarshal(recorder.Body.Bytes(), &body); err != nil {
				t.Fatalf("failed to decode response body: %v", err)
			}
			if body.Success {
				t.Fatalf("expected success=false envelope")
			}
			if body.Error == "" {
				t.Fatalf("expected a non-empty error message")
			}
		})
	}
}

func TestPageQueryDefaults(t *testing.T) {
	gin.SetMode(gin.TestMode)

	testCases := []struct {
		name         string
		query        string
		wantPage     int
		wantPageSize int
	}{
		{name: "defaults", query: "", wantPage: 1, wantPageSize: 20},
		{name: "explicit", query: "page=3&page_size=50", wantPage: 3, wantPageSize: 50},
		{name: "garbage falls back", query: "page=x&page_size=y", wantPage: 1, wantPageSize: 20},
		{name: "non positive clamps", query: "page=0&page_size=-5", wantPage: 1, wantPageSize: 20},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			ginCtx, _ := gin.CreateTestContext(httptest.NewRecorder())
			ginCtx.Request = httptest.NewRequest(http.MethodGet, "/?"+testCase.query, nil)

			page, pageSize := pageQuery(ginCtx)
			if page != testCase.wantPage {
				t.Fatalf("expected page %d, got %d", testCase.wantPage, page)
			}
			if pageSize != testCase.wantPageSize {
				t.Fatalf("expected page size %d, got %d", testCase.wantPageSize, pageSize)
			}
		})
	}
}

func TestBoolQuery(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ginCtx, _ := gin.CreateTestContext(httptest.NewRecorder())
	ginCtx.Request = httptest.NewRequest(http.MethodGet, "/?is_hot=true&is_critical=nope", nil)

	if v := boolQuery(ginCtx, "is_hot"); v == nil || !*v {
		t.Fatalf("expected is_hot=true")
	}
	if v := boolQuery(ginCtx, "is_important"); v != nil {
		t.Fatalf("expected absent parameter to be nil")
	}
	if v := boolQuery(ginCtx, "is_critical"); v != nil {
		t.Fatalf("expected unparseable parameter to be nil")
	}
}
