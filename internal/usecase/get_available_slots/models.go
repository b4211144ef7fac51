package get_available_slots

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/salon-booking/pkg/types"
)

// Config параметры сетки слотов
type Config struct {
	StepMinutes             int  // шаг сетки
	FallbackDurationMinutes int  // длительность записи, если её услуга удалена
	PendingBlocksSlots      bool // занимают ли время записи в статусе pending
}

// Request модель запроса на получение доступных слотов
type Request struct {
	ServiceID uuid.UUID // ID услуги
	Date      time.Time // Дата для получения слотов (без времени)
}

// Response модель ответа со списком слотов
type Response struct {
	Date            time.Time // Дата, на которую запрашивались слоты
	ServiceID       uuid.UUID // ID услуги
	DurationMinutes int       // Длительность услуги (0, если услуга не найдена)
	Slots           []Slot    // Слоты в хронологическом порядке
}

// Slot модель временного слота
type Slot struct {
	StartTime types.TimeString // Время начала слота (например, "10:00")
	Available bool             // Свободен ли слот
}
