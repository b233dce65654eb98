package services

import (
	"encoding/json"
	"log"
	"time"

	"hms/constants"
	"hms/dto"

	"github.com/olahol/melody"
)

// activityHub giữ kết nối websocket của các dashboard đang mở
var activityHub *melody.Melody

// SetActivityHub gắn melody instance dùng để phát hoạt động realtime
func SetActivityHub(m *melody.Melody) {
	activityHub = m
}

// BroadcastActivity đẩy một dòng hoạt động tới các dashboard.
// Best-effort: lỗi broadcast không được làm hỏng request.
func BroadcastActivity(activityType, text string) {
	if activityHub == nil {
		return
	}

	entry := dto.ActivityEntry{
		Type: activityType,
		Text: text,
		Time: time.Now().Format(constants.DateTimeFormat),
	}
	payload, err := json.Marshal(entry)
	if err != nil {
		log.Printf("activity broadcast marshal failed: %v", err)
		return
	}
	if err := activityHub.Broadcast(payload); err != nil {
		log.Printf("activity broadcast failed: %v", err)
	}
}
