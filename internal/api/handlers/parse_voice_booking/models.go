package parse_voice_booking

import (
	"github.com/m04kA/salon-booking/internal/domain"
	parseVoiceBooking "github.com/m04kA/salon-booking/internal/usecase/parse_voice_booking"
)

// ParseVoiceRequest HTTP request model
type ParseVoiceRequest struct {
	Text string `json:"text"`
}

// DraftResponse черновик записи; нераспознанные поля равны null
type DraftResponse struct {
	Transcript  string  `json:"transcript"`
	Name        *string `json:"name"`
	Phone       *string `json:"phone"`
	Date        *string `json:"date"`
	Time        *string `json:"time"`
	ServiceID   *string `json:"serviceId"`
	ServiceName *string `json:"serviceName"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *parseVoiceBooking.Response) *DraftResponse {
	out := &DraftResponse{
		Transcript:  resp.Transcript,
		Name:        optional(resp.Name),
		Phone:       optional(resp.Phone),
		ServiceName: optional(resp.ServiceName),
	}
	if resp.Date != nil {
		date := resp.Date.Format(domain.DateFormat)
		out.Date = &date
	}
	if resp.Time != nil {
		t := resp.Time.String()
		out.Time = &t
	}
	if resp.ServiceID != nil {
		id := resp.ServiceID.String()
		out.ServiceID = &id
	}
	return out
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
