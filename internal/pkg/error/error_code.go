package error

const (
	// 0 ~ 999: 成功類別
	SUCCESS = 0 // 200 OK

	// 40000 ~ 49999: 用戶請求錯誤 (400 系列)
	BAD_REQUEST_BODY      = 40000 // 400 - 無效的請求體
	BAD_REQUEST_PARAMS    = 40001 // 400 - 無效的請求參數
	BAD_REQUEST_HEADERS   = 40002 // 400 - 無效的請求標頭
	SCHEDULE_STATUS_ERROR = 40003 // 400 - 排程狀態轉移錯誤
	CSV_PARSE_ERROR       = 40004 // 400 - CSV 檔案解析失敗
	CSV_VALIDATION_ERROR  = 40005 // 400 - CSV 欄位驗證失敗

	// 40100 ~ 40399: 驗證與權限錯誤 (401 403 系列)
	UNAUTHORIZED        = 40100 // 401 - 未授權
	INVALID_SESSION     = 40101 // 401 - 會話失效
	INVALID_CREDENTIALS = 40102 // 401 - 帳號或密碼錯誤
	FORBIDDEN           = 40301 // 403 - 禁止訪問
	ACCOUNT_DEACTIVATED = 40302 // 403 - 帳號已停用

	// 40400 ~ 40499: 資源錯誤 (404 系列)
	NOT_FOUND = 40400 // 404 - 資源未找到

	// 40900 ~ 40999: 資源衝突 (409 系列)
	DUPLICATE_RESOURCE = 40900 // 409 - 同組織內 email/名稱重複

	// 42900 ~ 42999: 流量限制錯誤 (429 系列)
	RATE_LIMIT_EXCEEDED = 42900 // 429 - 速率限制超過

	// 50000 ~ 50199: 伺服器內部錯誤 (500 系列)
	INTERNAL_ERROR      = 50000 // 500 - 內部錯誤
	DATABASE_ERROR      = 50001 // 500 - 資料庫錯誤
	SERVICE_UNAVAILABLE = 50002 // 503 - 服務暫停 (維護模式)
)
