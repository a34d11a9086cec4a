// Package synth fabricates locale-plausible identity records without any
// external dependency. Country rules live in profile tables; the synthesizer
// itself only orchestrates draws and unit conversions.
package synth

import (
	"fmt"
	"math"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"identikit/internal/identity/models"
)

// Synthesizer produces identity records from an injectable uniform random
// source. Safe for concurrent use; all draws serialize on the internal mutex.
type Synthesizer struct {
	mu  sync.Mutex
	rng *rand.Rand
	now func() time.Time
}

// New returns a randomly seeded synthesizer.
func New() *Synthesizer {
	return NewSeeded(time.Now().UnixNano())
}

// NewSeeded returns a synthesizer with reproducible output for a fixed seed.
// Used by tests that need exact replay; production callers use New.
func NewSeeded(seed int64) *Synthesizer {
	return &Synthesizer{
		rng: rand.New(rand.NewSource(seed)),
		now: time.Now,
	}
}

// Synthesize returns one complete identity record for the given country code.
// Total over all string inputs: unknown codes resolve through the fallback
// profile and never fail. The language only selects auxiliary localization
// variants (currently the city naming table for China); it never changes the
// record's shape.
func (s *Synthesizer) Synthesize(country, language string) models.IdentityRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	d := &draw{r: s.rng}
	p := profileFor(country)

	gender := models.GenderMale
	if d.intn(2) == 1 {
		gender = models.GenderFemale
	}

	name := p.composeName(d, gender)
	birth := d.birthDate()
	addr := p.Address(d, language)

	nationalID := p.NationalID(d, birth)
	localPart := p.emailLocal(d, name)
	email := fmt.Sprintf("%s%d@%s", localPart, d.intn(1000), d.pick(p.EmailDomains))
	username := p.username(d, name)

	rec := models.IdentityRecord{
		FullName:         name.full,
		Gender:           gender,
		BirthDate:        birth.Format("2006-01-02"),
		Address:          addr.address,
		Street:           addr.street,
		City:             addr.city,
		State:            addr.state,
		StateFullName:    addr.stateFull,
		ZipCode:          addr.zip,
		Phone:            p.Phone(d),
		Email:            email,
		Occupation:       d.pick(p.Occupations),
		CompanyName:      d.pick(p.Companies),
		CompanySize:      d.pick(p.CompanySizes),
		EmploymentStatus: d.pick(p.EmploymentStatuses),
		MonthlySalary:    fmt.Sprintf("%s%d", p.Currency, p.SalaryBase+d.intn(p.SalarySpread)),
		NationalID:       nationalID,
		PassportNumber:   p.Passport(d),
		CreditCard:       s.creditCard(d, p),
		BankAccount:      p.BankAccount(d),
		HairColor:        d.pick(p.HairColors),
		Height:           s.height(d, p),
		Weight:           s.weight(d, p),
		BloodType:        d.pick(p.BloodTypes),
		Username:         username,
		Password:         d.alphanum(10),
		GUID:             d.guid(),
		Education:        d.pick(p.Education),
		PersonalWebsite:  username + ".com",
		SecurityQuestion: p.securityQuestion(d),
		SecurityAnswer:   p.securityAnswer(d, name, nationalID),
	}

	rec.UserAgent, rec.OperatingSystem = userAgentAndOS(d)
	return rec
}

// creditCard builds a format-plausible card. The number is never Luhn-valid;
// the prefix encodes the country's primary network family.
func (s *Synthesizer) creditCard(d *draw, p profile) models.CreditCard {
	year := s.now().Year() + 1 + d.intn(5)
	return models.CreditCard{
		Number: p.CardPrefix + d.digits(16-len(p.CardPrefix)),
		Expiry: fmt.Sprintf("%02d/%02d", 1+d.intn(12), year%100),
		CVV:    d.digits(3),
		Type:   d.pick(p.CardTypes),
	}
}

// height draws total inches and renders both unit systems so the paired
// values always agree through the 2.54 cm/inch constant.
func (s *Synthesizer) height(d *draw, p profile) string {
	var totalInches int
	if p.Imperial {
		totalInches = (5+d.intn(3))*12 + d.intn(12)
	} else {
		totalInches = 59 + d.intn(13) // roughly 150-180cm
	}
	cm := int(math.Round(float64(totalInches) * 2.54))
	feet, inches := totalInches/12, totalInches%12
	if p.Imperial {
		return fmt.Sprintf("%d' %d\" (%dcm)", feet, inches, cm)
	}
	return fmt.Sprintf("%dcm (%d' %d\")", cm, feet, inches)
}

func (s *Synthesizer) weight(d *draw, p profile) string {
	var lbs int
	if p.Imperial {
		lbs = 100 + d.intn(100)
	} else {
		lbs = 110 + d.intn(111) // roughly 50-100kg
	}
	kg := int(math.Round(float64(lbs) * 0.453592))
	if p.Imperial {
		return fmt.Sprintf("%dlbs (%dkg)", lbs, kg)
	}
	return fmt.Sprintf("%dkg (%dlbs)", kg, lbs)
}

// draw wraps the random source with the small vocabulary of draws the
// profile tables need.
type draw struct {
	r *rand.Rand
}

func (d *draw) intn(n int) int {
	return d.r.Intn(n)
}

func (d *draw) pick(ss []string) string {
	return ss[d.r.Intn(len(ss))]
}

// digits returns n uniformly random decimal digits.
func (d *draw) digits(n int) string {
	var b strings.Builder
	b.Grow(n)
	for i := 0; i < n; i++ {
		b.WriteByte(byte('0' + d.r.Intn(10)))
	}
	return b.String()
}

func (d *draw) letter() byte {
	return byte('A' + d.r.Intn(26))
}

func (d *draw) alphanum(n int) string {
	const alphabet = "abcdefghijklmnopqrstuvwxyz0123456789"
	var b strings.Builder
	b.Grow(n)
	for i := 0; i < n; i++ {
		b.WriteByte(alphabet[d.r.Intn(len(alphabet))])
	}
	return b.String()
}

// birthDate draws year in [1970,2000], month in [1,12], day in [1,28].
// Day 29-31 is deliberately never produced; no month-length modeling.
func (d *draw) birthDate() time.Time {
	year := 1970 + d.intn(31)
	month := time.Month(1 + d.intn(12))
	day := 1 + d.intn(28)
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// guid produces a canonical 8-4-4-4-12 identifier from the injected source so
// seeded synthesizers replay exactly.
func (d *draw) guid() string {
	id, err := uuid.NewRandomFromReader(d.r)
	if err != nil {
		// rand.Rand.Read never fails; keep the fallback anyway.
		return uuid.NewString()
	}
	return id.String()
}
