package league

import "time"

// UnknownAge is returned when no birth date is known.
const UnknownAge = -1

func AgeAt(birth *time.Time, now time.Time) int {
	if birth == nil || birth.IsZero() {
		return UnknownAge
	}
	age := now.Year() - birth.Year()
	if now.Month() < birth.Month() || (now.Month() == birth.Month() && now.Day() < birth.Day()) {
		age--
	}
	return age
}

// AgeFromString parses an upstream date_of_birth. Missing or unparseable
// values yield nil.
func AgeFromString(dob *string, now time.Time) *int {
	if dob == nil {
		return nil
	}
	birth, ok := ParseDate(*dob)
	if !ok {
		return nil
	}
	birth = birth.UTC()
	age := AgeAt(&birth, now)
	return &age
}
