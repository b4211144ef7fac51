package parse_voice_booking

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/salon-booking/pkg/types"
)

// MaxTextLength максимальная длина распознаваемого текста
const MaxTextLength = 500

// Request модель запроса на разбор продиктованного текста
type Request struct {
	Text string
}

// Response черновик записи. Нераспознанные поля пустые.
type Response struct {
	Transcript  string
	Name        string
	Phone       string
	Date        *time.Time
	Time        *types.TimeString
	ServiceID   *uuid.UUID
	ServiceName string
}
