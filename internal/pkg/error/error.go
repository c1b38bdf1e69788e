package error

import "net/http"

type Error struct {
	httpCode  int
	errorCode int
	errorMsg  string
	errorDesc string
}

func New(httpCode, errorCode int, errorMsg string, errorDesc string) *Error {
	return &Error{
		httpCode:  httpCode,
		errorCode: errorCode,
		errorMsg:  errorMsg,
		errorDesc: errorDesc,
	}

}
func From(err error) *Error {
	if appErr, ok := err.(*Error); ok {
		return appErr
	}
	return InternalServer(err.Error())
}

// ✅ 用戶端錯誤 (400 系列)
func ValidateErr(errorDesc string) *Error {
	errCode := BAD_REQUEST_BODY
	return New(http.StatusBadRequest, errCode, "bad-request/body", errorDesc)
}
func ValidatePathParamsErr(errorDesc string) *Error {
	return New(http.StatusBadRequest, BAD_REQUEST_PARAMS, "bad-request/params", errorDesc)
}

func BadRequest(errorDesc string, errorCode ...int) *Error {
	errCode := BAD_REQUEST_BODY
	if len(errorCode) > 0 {
		errCode = errorCode[0]
	}
	return New(http.StatusBadRequest, errCode, "bad-request", errorDesc)
}
func BadRequestBody(errorDesc string) *Error {
	return New(http.StatusBadRequest, BAD_REQUEST_BODY, "bad-request-body", errorDesc)
}

func BadRequestParams(errorDesc string) *Error {
	return New(http.StatusBadRequest, BAD_REQUEST_PARAMS, "bad-request-params", errorDesc)
}

// 排程狀態機不允許的轉移
func ScheduleStatusError(errorDesc string) *Error {
	return New(http.StatusBadRequest, SCHEDULE_STATUS_ERROR, "schedule-status-error", errorDesc)
}

// CSV 檔案無法解析
func CSVParseError(errorDesc string) *Error {
	return New(http.StatusBadRequest, CSV_PARSE_ERROR, "csv-parse-error", errorDesc)
}

// CSV 欄位驗證失敗（全有全無：任一列錯誤即整批拒絕）
func CSVValidationError(errorDesc string) *Error {
	return New(http.StatusBadRequest, CSV_VALIDATION_ERROR, "csv-validation-error", errorDesc)
}

// ✅ 資源衝突 (409)
func Conflict(errorDesc string) *Error {
	return New(http.StatusConflict, DUPLICATE_RESOURCE, "duplicate-resource", errorDesc)
}

// ✅ 伺服器內部錯誤 (500 系列)
func InternalServer(errorDesc string) *Error {
	return New(http.StatusInternalServerError, INTERNAL_ERROR, "internal-server-error", errorDesc)
}

func DatabaseError(errorDesc string) *Error {
	return New(http.StatusInternalServerError, DATABASE_ERROR, "database-error", errorDesc)
}

func ServiceUnavailable(errorDesc string) *Error {
	return New(http.StatusServiceUnavailable, SERVICE_UNAVAILABLE, "service-unavailable", errorDesc)
}

// ✅ 權限錯誤 (401, 403)
func Unauthorized(errorDesc string, errorCode ...int) *Error {
	errCode := UNAUTHORIZED
	if len(errorCode) > 0 {
		errCode = errorCode[0]
	}
	return New(http.StatusUnauthorized, errCode, "unauthorized", errorDesc)
}

func InvalidSession(errorDesc string) *Error {
	return New(http.StatusUnauthorized, INVALID_SESSION, "invalid-session", errorDesc)
}

func InvalidCredentials(errorDesc string) *Error {
	return New(http.StatusUnauthorized, INVALID_CREDENTIALS, "invalid-credentials", errorDesc)
}

func AccountDeactivated(errorDesc string) *Error {
	return New(http.StatusForbidden, ACCOUNT_DEACTIVATED, "account-deactivated", errorDesc)
}

func RateLimitExceeded(errorDesc string) *Error {
	return New(http.StatusTooManyRequests, RATE_LIMIT_EXCEEDED, "rate-limit-exceeded", errorDesc)
}

func Forbidden(errorDesc string, errorCode ...int) *Error {
	errCode := FORBIDDEN
	if len(errorCode) > 0 {
		errCode = errorCode[0]
	}
	return New(http.StatusForbidden, errCode, "forbidden", errorDesc)
}

// ✅ 資源找不到 (404)
func NotFound(errorDesc string, errorCode ...int) *Error {
	errCode := NOT_FOUND
	if len(errorCode) > 0 {
		errCode = errorCode[0]
	}
	return New(http.StatusNotFound, errCode, "not-found", errorDesc)
}
func (e *Error) HttpCode() int {
	return e.httpCode
}

func (e *Error) ErrorCode() int {
	return e.errorCode
}
func (e *Error) ErrorDesc() string {
	return e.errorDesc
}
func (e *Error) Error() string {
	return e.errorMsg
}
func MapHttpStatusToError(status int, desc string) *Error {
	switch status {
	case http.StatusBadRequest:
		return BadRequest(desc)
	case http.StatusUnauthorized:
		return Unauthorized(desc)
	case http.StatusForbidden:
		return Forbidden(desc)
	case http.StatusNotFound:
		return NotFound(desc)
	case http.StatusConflict:
		return Conflict(desc)
	case http.StatusInternalServerError:
		return InternalServer(desc)
	case http.StatusServiceUnavailable:
		return ServiceUnavailable(desc)
	default:
		return InternalServer(desc)
	}
}
