package identity

import (
	"fmt"
	"regexp"

	"identikit/internal/identity/models"
)

var (
	emailRe     = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	hasDigitRe  = regexp.MustCompile(`\d`)
	birthDateRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

	cnNationalIDRe = regexp.MustCompile(`^\d{17}[\dXx]$`)
	usSSNRe        = regexp.MustCompile(`^\d{3}-\d{2}-\d{4}$`)
	jpNationalIDRe = regexp.MustCompile(`^\d{12}$`)
)

// Validate checks a record produced outside the local synthesizer. It rejects
// records with missing required fields, malformed email, phone, or birth date,
// incomplete credit card data, or a national ID that does not match the
// country's format where one is enforced (CN, US, JP).
func Validate(rec models.IdentityRecord, country string) error {
	required := []struct {
		name  string
		value string
	}{
		{"fullName", rec.FullName},
		{"gender", rec.Gender},
		{"birthDate", rec.BirthDate},
		{"address", rec.Address},
		{"phone", rec.Phone},
		{"email", rec.Email},
		{"occupation", rec.Occupation},
		{"nationalId", rec.NationalID},
		{"passportNumber", rec.PassportNumber},
	}
	for _, field := range required {
		if field.value == "" {
			return fmt.Errorf("missing required field %s", field.name)
		}
	}

	if !emailRe.MatchString(rec.Email) {
		return fmt.Errorf("malformed email %q", rec.Email)
	}
	if !hasDigitRe.MatchString(rec.Phone) {
		return fmt.Errorf("phone %q contains no digits", rec.Phone)
	}
	if !birthDateRe.MatchString(rec.BirthDate) {
		return fmt.Errorf("birth date %q is not YYYY-MM-DD", rec.BirthDate)
	}
	if rec.CreditCard.Number == "" || rec.CreditCard.Expiry == "" || rec.CreditCard.CVV == "" {
		return fmt.Errorf("incomplete credit card data")
	}

	switch country {
	case "CN":
		if !cnNationalIDRe.MatchString(rec.NationalID) {
			return fmt.Errorf("national ID %q is not a valid Chinese resident ID", rec.NationalID)
		}
	case "US":
		if !usSSNRe.MatchString(rec.NationalID) {
			return fmt.Errorf("national ID %q is not a valid SSN", rec.NationalID)
		}
	case "JP":
		if !jpNationalIDRe.MatchString(rec.NationalID) {
			return fmt.Errorf("national ID %q is not a valid My Number", rec.NationalID)
		}
	}
	return nil
}
