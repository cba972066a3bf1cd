package entity

// DayRecord holds the weather fields of one city for one day, as read from the RBB XML.
// Values stay strings because the upstream mixes encodings, e.g. temp is "max;min" on forecast days.
type DayRecord map[string]string

// Clone returns an independent copy of the record.
func (r DayRecord) Clone() DayRecord {
	if r == nil {
		return nil
	}

	clone := make(DayRecord, len(r))
	for key, value := range r {
		clone[key] = value
	}
	return clone
}

// ForecastSet is ordered by day offset: index 0 holds the current conditions, 1..7 the forecast days.
type ForecastSet []DayRecord

// Clone returns a deep copy of the set.
func (s ForecastSet) Clone() ForecastSet {
	if s == nil {
		return nil
	}

	clone := make(ForecastSet, len(s))
	for i, record := range s {
		clone[i] = record.Clone()
	}
	return clone
}

// Current returns the record of day 0, nil when the set is empty.
func (s ForecastSet) Current() DayRecord {
	if len(s) == 0 {
		return nil
	}
	return s[0]
}
