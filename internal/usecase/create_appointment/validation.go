package create_appointment

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/m04kA/salon-booking/internal/domain"
	"github.com/m04kA/salon-booking/pkg/types"
)

// validatedRequest нормализованные поля запроса
type validatedRequest struct {
	name   string
	phone  string
	time   types.TimeString
	status domain.AppointmentStatus
}

// validateRequest валидирует и нормализует входные данные запроса
func validateRequest(req *Request, phoneDigits int) (*validatedRequest, error) {
	if req.ServiceID == uuid.Nil {
		return nil, fmt.Errorf("%w: serviceId is required", ErrInvalidInput)
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if utf8.RuneCountInString(name) > domain.MaxCustomerNameLength {
		return nil, fmt.Errorf("%w: name must be at most %d characters", ErrInvalidInput, domain.MaxCustomerNameLength)
	}

	// Телефон: ровно phoneDigits цифр после удаления пробелов и дефисов
	phone := strings.NewReplacer(" ", "", "-", "").Replace(strings.TrimSpace(req.Phone))
	if len(phone) != phoneDigits || domain.PhoneDigits(phone) != phone {
		return nil, fmt.Errorf("%w: phone must have exactly %d digits", ErrInvalidInput, phoneDigits)
	}

	// Проверяем, что дата не является нулевой
	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	startTime, err := types.NewTimeStringFromString(req.Time)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid time format: %v", ErrInvalidInput, err)
	}

	status, err := resolveStatus(req)
	if err != nil {
		return nil, err
	}

	return &validatedRequest{
		name:   name,
		phone:  phone,
		time:   startTime,
		status: status,
	}, nil
}

// resolveStatus клиентская запись всегда pending.
// Администратор по умолчанию создает принятую запись, может указать pending.
func resolveStatus(req *Request) (domain.AppointmentStatus, error) {
	if !req.ByAdmin {
		return domain.DefaultAppointmentStatus, nil
	}
	if req.Status == nil || *req.Status == "" {
		return domain.DefaultAdminAppointmentStat, nil
	}

	status := domain.AppointmentStatus(*req.Status)
	if status != domain.StatusAccepted && status != domain.StatusPending {
		return "", fmt.Errorf("%w: status must be accepted or pending", ErrInvalidInput)
	}
	return status, nil
}
