// File: internal/middleware/request_logger.go
package middleware

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/labstack/echo/v4"

	"rest-boilerplate/internal/dto"
	"rest-boilerplate/internal/logging"
)

const internalErrorMessage = "An internal server error occurred."

// RequestLogger 包裹每一次請求：
// 緩衝請求本文後原樣重注給下游、攔截 panic 轉為固定 500 信封、
// 依狀態碼分級，且不論結果每請求恰好輸出一筆結構化紀錄
// 狀態碼 >= 400 時附上請求本文（password 欄位會先遮蔽）
func RequestLogger(log logging.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			req := c.Request()

			var body []byte
			if req.Body != nil {
				var readErr error
				body, readErr = io.ReadAll(req.Body)
				req.Body.Close()
				if readErr != nil {
					// 殘缺的本文不可交給下游，直接以 400 結束
					log.Warn(req.Context(), "HTTP client error",
						"method", req.Method,
						"path", req.URL.Path,
						"query", req.URL.RawQuery,
						"status_code", http.StatusBadRequest,
						"duration_ms", durationMs(start),
						"client_ip", c.RealIP(),
						"error", readErr.Error(),
					)
					return c.JSON(http.StatusBadRequest,
						dto.NewResponse(http.StatusBadRequest, "failed to read request body"))
				}
				req.Body = io.NopCloser(bytes.NewReader(body))
			}

			var panicked any
			var stack []byte
			err := func() (err error) {
				defer func() {
					if r := recover(); r != nil {
						panicked = r
						stack = debug.Stack()
					}
				}()
				return next(c)
			}()

			ctx := req.Context()

			if panicked != nil {
				log.Error(ctx, "Unhandled server error",
					"method", req.Method,
					"path", req.URL.Path,
					"duration_ms", durationMs(start),
					"client_ip", c.RealIP(),
					"panic", fmt.Sprint(panicked),
					"stack", string(stack),
				)
				return c.JSON(http.StatusInternalServerError,
					dto.NewResponse(http.StatusInternalServerError, internalErrorMessage))
			}

			// handler 以錯誤回傳時在此統一轉為信封，不交給 echo 預設處理
			if err != nil {
				he, ok := err.(*echo.HTTPError)
				if !ok {
					he = echo.NewHTTPError(http.StatusInternalServerError, internalErrorMessage)
				}
				if !c.Response().Committed {
					_ = c.JSON(he.Code, dto.NewResponse(he.Code, fmt.Sprint(he.Message)))
				}
			}

			status := c.Response().Status
			args := []any{
				"method", req.Method,
				"path", req.URL.Path,
				"query", req.URL.RawQuery,
				"status_code", status,
				"duration_ms", durationMs(start),
				"client_ip", c.RealIP(),
			}
			if err != nil {
				args = append(args, "error", err.Error())
			}
			if status >= http.StatusBadRequest {
				args = append(args, "request_body", loggableBody(body))
			}

			switch {
			case status >= http.StatusInternalServerError:
				log.Error(ctx, "HTTP server error", args...)
			case status >= http.StatusBadRequest:
				log.Warn(ctx, "HTTP client error", args...)
			default:
				log.Info(ctx, "HTTP request", args...)
			}

			return nil
		}
	}
}

// loggableBody 盡量以結構化形式記錄本文，無法解析時退回原始文字
// JSON 物件中的 password 欄位一律遮蔽，避免明文密碼進入日誌
func loggableBody(body []byte) any {
	var parsed map[string]any
	if err := json.Unmarshal(body, &parsed); err == nil {
		if _, ok := parsed["password"]; ok {
			parsed["password"] = "[REDACTED]"
		}
		return parsed
	}
	return string(body)
}

func durationMs(start time.Time) float64 {
	return math.Round(float64(time.Since(start).Nanoseconds())/1e6*100) / 100
}
