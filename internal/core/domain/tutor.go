package domain

type Category struct {
	ID   string `json:"id" validate:"required"`
	Name string `json:"name" validate:"required"`
}

type Tutor struct {
	ID           string             `json:"id" validate:"required"`
	UserID       string             `json:"userId" validate:"required"`
	Name         string             `json:"name"`
	HourlyRate   float64            `json:"hourlyRate" validate:"gte=0"`
	Categories   []Category         `json:"categories" validate:"dive"`
	Availability []AvailabilitySlot `json:"availability" validate:"dive"`
}

func (t *Tutor) Slot(id string) (AvailabilitySlot, bool) {
	for _, s := range t.Availability {
		if s.ID == id {
			return s, true
		}
	}
	return AvailabilitySlot{}, false
}

func (t *Tutor) HasCategory(id string) bool {
	for _, c := range t.Categories {
		if c.ID == id {
			return true
		}
	}
	return false
}
