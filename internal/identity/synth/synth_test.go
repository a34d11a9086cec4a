package synth

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"identikit/internal/identity/models"
)

var (
	birthDateRe   = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	emailRe       = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	emailDomainRe = regexp.MustCompile(`@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	digitRe       = regexp.MustCompile(`\d`)

	imperialHeightRe = regexp.MustCompile(`^(\d)' (\d{1,2})" \((\d{2,3})cm\)$`)
	metricHeightRe   = regexp.MustCompile(`^(\d{2,3})cm \((\d)' (\d{1,2})"\)$`)
	imperialWeightRe = regexp.MustCompile(`^(\d{2,3})lbs \((\d{2,3})kg\)$`)
	metricWeightRe   = regexp.MustCompile(`^(\d{2,3})kg \((\d{2,3})lbs\)$`)
)

// Locales whose name pools are plain Latin, or transliterated into Latin for
// the email local part. The rest pass native-script names through unchanged.
var asciiEmailCountries = map[string]bool{
	"CN": true, "JP": true,
	"US": true, "GB": true, "IT": true, "IN": true, "AR": true,
	"ZZ": true, "KR": true, "": true,
}

func allCountryCodes() []string {
	codes := make([]string, 0, len(registry)+3)
	for code := range registry {
		codes = append(codes, code)
	}
	return append(codes, "ZZ", "KR", "")
}

func TestSynthesizeTotality(t *testing.T) {
	s := NewSeeded(1)
	for _, country := range allCountryCodes() {
		t.Run("country_"+country, func(t *testing.T) {
			for i := 0; i < 25; i++ {
				rec := s.Synthesize(country, "en")

				require.NotEmpty(t, rec.FullName)
				require.Contains(t, []string{models.GenderMale, models.GenderFemale}, rec.Gender)
				require.Regexp(t, birthDateRe, rec.BirthDate)
				require.NotEmpty(t, rec.Address)
				require.NotEmpty(t, rec.City)
				if asciiEmailCountries[country] {
					require.Regexp(t, emailRe, rec.Email)
				} else {
					require.Regexp(t, emailDomainRe, rec.Email)
				}
				require.Regexp(t, digitRe, rec.Phone)
				require.NotEmpty(t, rec.Occupation)
				require.NotEmpty(t, rec.NationalID)
				require.NotEmpty(t, rec.PassportNumber)
				require.NotEmpty(t, rec.CreditCard.Number)
				require.Regexp(t, `^\d{2}/\d{2}$`, rec.CreditCard.Expiry)
				require.Regexp(t, `^\d{3}$`, rec.CreditCard.CVV)
				require.NotEmpty(t, rec.BankAccount)
				require.NotEmpty(t, rec.MonthlySalary)
				require.NotEmpty(t, rec.SecurityQuestion)
				require.NotEmpty(t, rec.SecurityAnswer)
				require.Len(t, rec.Password, 10)
			}
		})
	}
}

// Locales without a transliteration table keep the native-script name in the
// email local part.
func TestSynthesizeEmailPassThrough(t *testing.T) {
	s := NewSeeded(37)
	for i := 0; i < 25; i++ {
		rec := s.Synthesize("RU", "ru")
		local := strings.Split(rec.Email, "@")[0]
		require.NotRegexp(t, `^[a-zA-Z0-9._%+-]+$`, local)
		require.Regexp(t, emailDomainRe, rec.Email)
	}
}

func TestSynthesizeDeterministic(t *testing.T) {
	a := NewSeeded(42)
	b := NewSeeded(42)
	for _, country := range []string{"CN", "US", "JP", "DE", "ZZ"} {
		recA := a.Synthesize(country, "en")
		recB := b.Synthesize(country, "en")
		assert.Equal(t, recA, recB, "seeded synthesizers must replay for %s", country)
	}
}

func TestSynthesizeDistinctAcrossCalls(t *testing.T) {
	s := NewSeeded(7)
	first := s.Synthesize("US", "en")
	second := s.Synthesize("US", "en")
	assert.NotEqual(t, first.GUID, second.GUID)
}

func TestHeightWeightUnitAgreement(t *testing.T) {
	s := NewSeeded(3)
	for _, country := range allCountryCodes() {
		for i := 0; i < 20; i++ {
			rec := s.Synthesize(country, "en")

			var feet, inches, cm int
			if m := imperialHeightRe.FindStringSubmatch(rec.Height); m != nil {
				feet, _ = strconv.Atoi(m[1])
				inches, _ = strconv.Atoi(m[2])
				cm, _ = strconv.Atoi(m[3])
			} else if m := metricHeightRe.FindStringSubmatch(rec.Height); m != nil {
				cm, _ = strconv.Atoi(m[1])
				feet, _ = strconv.Atoi(m[2])
				inches, _ = strconv.Atoi(m[3])
			} else {
				t.Fatalf("unexpected height format %q for %s", rec.Height, country)
			}
			want := int(math.Round(float64(feet*12+inches) * 2.54))
			require.Equal(t, want, cm, "height %q for %s", rec.Height, country)

			var lbs, kg int
			if m := imperialWeightRe.FindStringSubmatch(rec.Weight); m != nil {
				lbs, _ = strconv.Atoi(m[1])
				kg, _ = strconv.Atoi(m[2])
			} else if m := metricWeightRe.FindStringSubmatch(rec.Weight); m != nil {
				kg, _ = strconv.Atoi(m[1])
				lbs, _ = strconv.Atoi(m[2])
			} else {
				t.Fatalf("unexpected weight format %q for %s", rec.Weight, country)
			}
			require.Equal(t, int(math.Round(float64(lbs)*0.453592)), kg, "weight %q for %s", rec.Weight, country)
		}
	}
}

func TestSynthesizeUS(t *testing.T) {
	s := NewSeeded(11)
	for i := 0; i < 50; i++ {
		rec := s.Synthesize("US", "en")

		require.Regexp(t, `^\d{3}-\d{2}-\d{4}$`, rec.NationalID)
		require.Regexp(t, `^\(\d{3}\) \d{3}-\d{4}$`, rec.Phone)
		require.Regexp(t, `^\d{5}$`, rec.ZipCode)
		require.Regexp(t, `^\d{8}$`, rec.PassportNumber)
		assert.Contains(t, usStates, rec.State)
		assert.Equal(t, rec.State, rec.StateFullName)
		assert.True(t, strings.HasPrefix(rec.MonthlySalary, "$"))
		assert.True(t, strings.HasPrefix(rec.CreditCard.Number, "4"))
		assert.Len(t, rec.CreditCard.Number, 16)

		// The security answer is the SSN serial.
		parts := strings.Split(rec.NationalID, "-")
		assert.Equal(t, parts[2], rec.SecurityAnswer)
		assert.Regexp(t, imperialHeightRe, rec.Height)
		assert.Regexp(t, imperialWeightRe, rec.Weight)
	}
}

func TestSynthesizeCN(t *testing.T) {
	s := NewSeeded(13)
	for i := 0; i < 50; i++ {
		rec := s.Synthesize("CN", "zh")

		require.Regexp(t, `^\d{17}[\dX]$`, rec.NationalID)
		// Digits 7-14 of the resident ID carry the birth date.
		assert.Equal(t, strings.ReplaceAll(rec.BirthDate, "-", ""), rec.NationalID[6:14])
		require.Regexp(t, `^1[3-9]\d{8}$`, rec.Phone)
		require.Regexp(t, `^E\d{7}$`, rec.PassportNumber)
		assert.True(t, strings.HasPrefix(rec.CreditCard.Number, "6225"))
		assert.True(t, strings.HasPrefix(rec.BankAccount, "622202"))
		assert.True(t, strings.HasPrefix(rec.MonthlySalary, "¥"))

		// Email must be ASCII even though the name is not.
		local := strings.Split(rec.Email, "@")[0]
		require.Regexp(t, `^[a-z]+\d+$`, local)
	}
}

func TestSynthesizeCNCityLanguage(t *testing.T) {
	s := NewSeeded(17)
	for i := 0; i < 30; i++ {
		rec := s.Synthesize("CN", "en")
		require.Regexp(t, `^[A-Za-z ]+$`, rec.City, "English content must render an English city name")
	}
}

func TestSynthesizeJP(t *testing.T) {
	s := NewSeeded(19)
	for i := 0; i < 50; i++ {
		rec := s.Synthesize("JP", "ja")

		require.Regexp(t, `^\d{12}$`, rec.NationalID)
		require.Regexp(t, `^0[35-9]\d{7}$`, rec.Phone)
		require.Regexp(t, `^E\d{7}$`, rec.PassportNumber)
		assert.True(t, strings.HasPrefix(rec.MonthlySalary, "¥"))

		local := strings.Split(rec.Email, "@")[0]
		require.Regexp(t, `^[a-z]+\d+$`, local)
	}
}

func TestSynthesizeFallback(t *testing.T) {
	s := NewSeeded(23)
	for i := 0; i < 30; i++ {
		rec := s.Synthesize("ZZ", "en")

		require.Regexp(t, `^\+\d{2} \d{9}$`, rec.Phone)
		require.Regexp(t, `^\d{9}$`, rec.NationalID)
		require.Regexp(t, `^\d{7}$`, rec.PassportNumber)
		assert.Contains(t, rec.Address, "Country")
		assert.Empty(t, rec.State)
		assert.Empty(t, rec.ZipCode)
	}
}

func TestOperatingSystemMatchesUserAgent(t *testing.T) {
	s := NewSeeded(29)
	for i := 0; i < 40; i++ {
		rec := s.Synthesize("US", "en")
		switch {
		case strings.Contains(rec.UserAgent, "Windows NT"):
			assert.True(t, strings.HasPrefix(rec.OperatingSystem, "Windows"), rec.UserAgent)
		case strings.Contains(rec.UserAgent, "Mac OS X"):
			assert.Equal(t, "macOS", rec.OperatingSystem, rec.UserAgent)
		default:
			assert.Equal(t, "Linux", rec.OperatingSystem, rec.UserAgent)
		}
	}
}

func TestGUIDCanonical(t *testing.T) {
	s := NewSeeded(31)
	for i := 0; i < 20; i++ {
		rec := s.Synthesize("US", "en")
		_, err := uuid.Parse(rec.GUID)
		require.NoError(t, err)
	}
}

func FuzzSynthesize(f *testing.F) {
	f.Add("CN", "zh")
	f.Add("US", "en")
	f.Add("", "")
	f.Add("zz", "xx")
	f.Add("日本", "ja")

	s := New()
	f.Fuzz(func(t *testing.T, country, language string) {
		rec := s.Synthesize(country, language)
		if rec.FullName == "" || rec.NationalID == "" || rec.CreditCard.Number == "" {
			t.Fatalf("incomplete record for country=%q language=%q", country, language)
		}
	})
}
