package service

import (
	"strings"

	"github.com/google/wire"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Wire 依賴提供
var ProviderSet = wire.NewSet(
	NewAuthService,
	NewOrganizationService,
	NewEmployeeService,
	NewJobFunctionService,
	NewQuestionService,
	NewScheduleService,
	NewActivityService,
	NewImporterService,
	NewDashboardService,
	NewHealthService,
)

// normalizeEmail 所有寫入路徑統一小寫，避免大小寫變體繞過唯一索引與去重預查
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// hexToObjectIDs 轉換 hex 字串清單，任一格式錯誤即整批拒絕
func hexToObjectIDs(hexIDs []string) ([]primitive.ObjectID, error) {
	ids := make([]primitive.ObjectID, 0, len(hexIDs))
	for _, hexID := range hexIDs {
		id, err := primitive.ObjectIDFromHex(hexID)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func objectIDsToHex(ids []primitive.ObjectID) []string {
	hexIDs := make([]string, len(ids))
	for i, id := range ids {
		hexIDs[i] = id.Hex()
	}
	return hexIDs
}
