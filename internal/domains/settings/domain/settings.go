package domain

// StoreSettings is the operator-managed configuration document.
type StoreSettings struct {
	DeliveryEnabled bool
	Hours           []WeekdayHours
	LogoURL         string
	Address         string
}

// NewStoreSettings builds a settings document with a validated calendar.
func NewStoreSettings(deliveryEnabled bool, hours []WeekdayHours) (*StoreSettings, error) {
	if len(hours) == 0 {
		hours = DefaultWeek()
	}
	if err := ValidateWeek(hours); err != nil {
		return nil, err
	}
	return &StoreSettings{
		DeliveryEnabled: deliveryEnabled,
		Hours:           hours,
	}, nil
}

// ReplaceHours swaps the operating calendar after validating it.
func (s *StoreSettings) ReplaceHours(hours []WeekdayHours) error {
	if err := ValidateWeek(hours); err != nil {
		return err
	}
	s.Hours = append([]WeekdayHours{}, hours...)
	return nil
}

// Validate re-applies invariants for persistence.
func (s *StoreSettings) Validate() error {
	return ValidateWeek(s.Hours)
}
