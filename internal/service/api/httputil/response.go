// Package httputil은 HTTP 요청/응답 처리와 관련된 유틸리티를 제공합니다.
package httputil

import (
	"net/http"

	"github.com/darkkaiser/catalog-server/internal/service/api/model/response"
	"github.com/labstack/echo/v4"
)

// NewBadRequestError 400 Bad Request 에러 객체를 생성하여 반환한다.
func NewBadRequestError(message string) *echo.HTTPError {
	return echo.NewHTTPError(http.StatusBadRequest, response.NewErrorResponse(message))
}

// NewNotFoundError 404 Not Found 에러 객체를 생성하여 반환한다.
func NewNotFoundError(message string) *echo.HTTPError {
	return echo.NewHTTPError(http.StatusNotFound, response.NewErrorResponse(message))
}

// NewTooManyRequestsError 429 Too Many Requests 에러 객체를 생성하여 반환한다.
func NewTooManyRequestsError(message string) *echo.HTTPError {
	return echo.NewHTTPError(http.StatusTooManyRequests, response.NewErrorResponse(message))
}

// NewInternalServerError 500 Internal Server Error 에러 객체를 생성하여 반환한다.
func NewInternalServerError(message string) *echo.HTTPError {
	return echo.NewHTTPError(http.StatusInternalServerError, response.NewErrorResponse(message))
}

// NewServiceUnavailableError 503 Service Unavailable 에러 객체를 생성하여 반환한다.
func NewServiceUnavailableError(message string) *echo.HTTPError {
	return echo.NewHTTPError(http.StatusServiceUnavailable, response.NewErrorResponse(message))
}
