package models

// CreditCard is the payment sub-object of an identity record. The number is
// format-plausible only; no checksum is applied.
type CreditCard struct {
	Number string `json:"number"`
	Expiry string `json:"expiry"`
	CVV    string `json:"cvv"`
	Type   string `json:"type"`
}

// IdentityRecord is one fabricated person. Field order matters: the provenance
// hash is computed over the JSON serialization, and json.Marshal emits struct
// fields in declaration order.
type IdentityRecord struct {
	FullName         string     `json:"fullName"`
	Gender           string     `json:"gender"`
	BirthDate        string     `json:"birthDate"`
	Address          string     `json:"address"`
	Street           string     `json:"street,omitempty"`
	City             string     `json:"city,omitempty"`
	State            string     `json:"state,omitempty"`
	StateFullName    string     `json:"stateFullName,omitempty"`
	ZipCode          string     `json:"zipCode,omitempty"`
	County           string     `json:"county,omitempty"`
	Phone            string     `json:"phone"`
	Email            string     `json:"email"`
	Occupation       string     `json:"occupation"`
	CompanyName      string     `json:"companyName"`
	CompanySize      string     `json:"companySize"`
	EmploymentStatus string     `json:"employmentStatus"`
	MonthlySalary    string     `json:"monthlySalary"`
	NationalID       string     `json:"nationalId"`
	PassportNumber   string     `json:"passportNumber"`
	CreditCard       CreditCard `json:"creditCard"`
	BankAccount      string     `json:"bankAccount"`
	HairColor        string     `json:"hairColor"`
	Height           string     `json:"height"`
	Weight           string     `json:"weight"`
	BloodType        string     `json:"bloodType"`
	Username         string     `json:"username"`
	Password         string     `json:"password"`
	OperatingSystem  string     `json:"operatingSystem"`
	GUID             string     `json:"guid"`
	UserAgent        string     `json:"userAgent"`
	Education        string     `json:"education"`
	PersonalWebsite  string     `json:"personalWebsite"`
	SecurityQuestion string     `json:"securityQuestion"`
	SecurityAnswer   string     `json:"securityAnswer"`

	AvatarURL         string `json:"avatarUrl,omitempty"`
	FallbackAvatarURL string `json:"fallbackAvatarUrl,omitempty"`
}

// Gender values used across the synthesizer and validation.
const (
	GenderMale   = "Male"
	GenderFemale = "Female"
)
