package synth

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"identikit/internal/identity/models"
)

type nameParts struct {
	given  string
	family string
	full   string
}

type addressParts struct {
	address   string
	street    string
	city      string
	state     string
	stateFull string
	zip       string
}

// profile holds everything country-specific: draw pools plus the format
// closures for fields whose shape varies per country. Zero-valued fields are
// backfilled from the fallback profile, so locale tables only state what
// differs.
type profile struct {
	MaleNames   []string
	FemaleNames []string
	Surnames    []string

	ComposeName    func(d *draw, gender string) nameParts
	Address        func(d *draw, language string) addressParts
	Phone          func(d *draw) string
	NationalID     func(d *draw, birth time.Time) string
	Passport       func(d *draw) string
	BankAccount    func(d *draw) string
	EmailLocal     func(d *draw, n nameParts) string
	Username       func(d *draw, n nameParts) string
	SecurityAnswer func(d *draw, n nameParts, nationalID string) string

	EmailDomains       []string
	Occupations        []string
	Education          []string
	Companies          []string
	CompanySizes       []string
	EmploymentStatuses []string
	SecurityQuestions  []string
	HairColors         []string
	BloodTypes         []string
	CardTypes          []string

	CardPrefix   string
	Currency     string
	SalaryBase   int
	SalarySpread int

	// Imperial renders height and weight feet/pounds first. Everyone else
	// leads with centimeters and kilograms.
	Imperial bool
}

func (p profile) composeName(d *draw, gender string) nameParts {
	if p.ComposeName != nil {
		return p.ComposeName(d, gender)
	}
	given := d.pick(p.MaleNames)
	if gender == models.GenderFemale {
		given = d.pick(p.FemaleNames)
	}
	family := d.pick(p.Surnames)
	return nameParts{given: given, family: family, full: given + " " + family}
}

func (p profile) emailLocal(d *draw, n nameParts) string {
	if p.EmailLocal != nil {
		return p.EmailLocal(d, n)
	}
	return strings.ToLower(n.given) + "." + strings.ToLower(n.family)
}

func (p profile) username(d *draw, n nameParts) string {
	if p.Username != nil {
		return p.Username(d, n)
	}
	return strings.ToLower(n.given) + "." + strings.ToLower(n.family) + strconv.Itoa(d.intn(1000))
}

func (p profile) securityQuestion(d *draw) string {
	return d.pick(p.SecurityQuestions)
}

func (p profile) securityAnswer(d *draw, n nameParts, nationalID string) string {
	if p.SecurityAnswer != nil {
		return p.SecurityAnswer(d, n, nationalID)
	}
	return n.family
}

// registry maps upper-case ISO country codes to their profiles. Codes not
// present here resolve to fallbackProfile.
var registry = map[string]profile{
	"CN": profileCN,
	"US": profileUS,
	"JP": profileJP,
	"GB": profileGB,
	"DE": profileDE,
	"FR": profileFR,
	"ES": profileES,
	"IT": profileIT,
	"NL": profileNL,
	"PL": profilePL,
	"RU": profileRU,
	"TR": profileTR,
	"BR": profileBR,
	"IN": profileIN,
	"TH": profileTH,
	"VN": profileVN,
	"AR": profileAR,
}

func profileFor(country string) profile {
	p, ok := registry[strings.ToUpper(strings.TrimSpace(country))]
	if !ok {
		return fallbackProfile
	}
	return p.withDefaults()
}

// withDefaults backfills unset fields from fallbackProfile so partial locale
// tables stay short.
func (p profile) withDefaults() profile {
	f := fallbackProfile
	if p.MaleNames == nil {
		p.MaleNames = f.MaleNames
	}
	if p.FemaleNames == nil {
		p.FemaleNames = f.FemaleNames
	}
	if p.Surnames == nil {
		p.Surnames = f.Surnames
	}
	if p.Address == nil {
		p.Address = f.Address
	}
	if p.Phone == nil {
		p.Phone = f.Phone
	}
	if p.NationalID == nil {
		p.NationalID = f.NationalID
	}
	if p.Passport == nil {
		p.Passport = f.Passport
	}
	if p.BankAccount == nil {
		p.BankAccount = f.BankAccount
	}
	if p.EmailDomains == nil {
		p.EmailDomains = f.EmailDomains
	}
	if p.Occupations == nil {
		p.Occupations = f.Occupations
	}
	if p.Education == nil {
		p.Education = f.Education
	}
	if p.Companies == nil {
		p.Companies = f.Companies
	}
	if p.CompanySizes == nil {
		p.CompanySizes = f.CompanySizes
	}
	if p.EmploymentStatuses == nil {
		p.EmploymentStatuses = f.EmploymentStatuses
	}
	if p.SecurityQuestions == nil {
		p.SecurityQuestions = f.SecurityQuestions
	}
	if p.HairColors == nil {
		p.HairColors = f.HairColors
	}
	if p.BloodTypes == nil {
		p.BloodTypes = f.BloodTypes
	}
	if p.CardTypes == nil {
		p.CardTypes = f.CardTypes
	}
	if p.CardPrefix == "" {
		p.CardPrefix = f.CardPrefix
	}
	if p.Currency == "" {
		p.Currency = f.Currency
	}
	if p.SalaryBase == 0 {
		p.SalaryBase = f.SalaryBase
	}
	if p.SalarySpread == 0 {
		p.SalarySpread = f.SalarySpread
	}
	return p
}

var defaultCities = []string{"London", "Paris", "Berlin", "Madrid", "Rome", "Tokyo", "Sydney", "Toronto", "Moscow", "Cairo"}

var defaultStreets = []string{"Main St", "Oak Ave", "Maple Dr", "Cedar Ln", "Pine Rd", "Elm St", "Walnut Ave", "Chestnut Dr", "Birch Ln", "Spruce Rd"}

// fallbackProfile serves every country code without a dedicated table. English
// pools, generic international phone shape, plain zero-padded numeric IDs.
var fallbackProfile = profile{
	MaleNames:   []string{"James", "John", "Robert", "Michael", "William", "David", "Richard", "Joseph", "Thomas", "Charles"},
	FemaleNames: []string{"Mary", "Patricia", "Jennifer", "Linda", "Elizabeth", "Barbara", "Susan", "Jessica", "Sarah", "Karen"},
	Surnames:    []string{"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia", "Miller", "Davis", "Rodriguez", "Martinez"},
	Address: func(d *draw, _ string) addressParts {
		street := d.pick(defaultStreets)
		city := d.pick(defaultCities)
		return addressParts{
			address: fmt.Sprintf("%d %s, %s, Country", 1+d.intn(999), street, city),
			street:  street,
			city:    city,
		}
	},
	Phone: func(d *draw) string {
		return fmt.Sprintf("+%d%d %s", 1+d.intn(9), d.intn(10), d.digits(9))
	},
	NationalID: func(d *draw, _ time.Time) string {
		return d.digits(9)
	},
	Passport: func(d *draw) string {
		return d.digits(7)
	},
	BankAccount: func(d *draw) string {
		return d.digits(16)
	},
	EmailDomains:       []string{"gmail.com", "yahoo.com", "hotmail.com", "outlook.com", "example.com"},
	Occupations:        []string{"Engineer", "Teacher", "Doctor", "Lawyer", "Designer", "Programmer", "Salesperson", "Manager", "Accountant", "Nurse"},
	Education:          []string{"High School", "Bachelor's Degree", "Master's Degree", "PhD", "Professional Degree"},
	Companies:          []string{"Tech Corp", "Global Industries", "Innovative Solutions", "Future Technologies", "United Enterprises"},
	CompanySizes:       []string{"1-10 employees", "11-50 employees", "51-200 employees", "201-500 employees", "500+ employees"},
	EmploymentStatuses: []string{"Full-time", "Part-time", "Contract", "Freelance", "Self-employed"},
	SecurityQuestions:  []string{"What is your mother's maiden name?", "What is your birth city?", "What was your first pet's name?", "What is your elementary school name?", "What is your favorite color?"},
	HairColors:         []string{"Black", "Brown", "Blonde", "Red", "Gray"},
	BloodTypes:         []string{"A+", "B+", "O+", "AB+", "A-", "B-", "O-", "AB-"},
	CardTypes:          []string{"Visa", "MasterCard", "American Express", "Discover"},
	CardPrefix:         "4",
	Currency:           "$",
	SalaryBase:         3000,
	SalarySpread:       5000,
}
