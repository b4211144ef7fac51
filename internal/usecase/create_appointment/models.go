package create_appointment

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/salon-booking/pkg/types"
)

// Config параметры записи
type Config struct {
	StepMinutes             int  // шаг сетки слотов
	FallbackDurationMinutes int  // длительность записи, если её услуга удалена
	PendingBlocksSlots      bool // занимают ли время записи в статусе pending
	PhoneDigits             int  // число цифр телефона
}

// Request модель запроса на создание записи
type Request struct {
	ServiceID uuid.UUID // ID услуги
	Name      string    // Имя клиента
	Phone     string    // Телефон в любом формате (пробелы и дефисы отбрасываются)
	Date      time.Time // Дата записи (без времени)
	Time      string    // Время начала "HH:MM"
	Status    *string   // Статус (только для администратора)
	ByAdmin   bool      // Запись создает администратор
}

// Response модель ответа с созданной записью
type Response struct {
	ID              uuid.UUID        // ID записи
	ServiceID       uuid.UUID        // ID услуги
	ServiceName     string           // Название услуги
	DurationMinutes int              // Длительность услуги
	ServicePrice    *float64         // Цена услуги
	Name            string           // Имя клиента
	Phone           string           // Телефон (только цифры)
	Date            time.Time        // Дата записи
	Time            types.TimeString // Время начала
	Status          string           // Статус записи
	CreatedAt       time.Time        // Время создания
}
