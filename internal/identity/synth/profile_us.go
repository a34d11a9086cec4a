package synth

import (
	"fmt"
	"strings"
	"time"
)

var usStates = []string{"California", "Texas", "Florida", "New York", "Pennsylvania", "Illinois", "Ohio", "Georgia", "North Carolina", "Michigan"}

var usStateCities = map[string][]string{
	"California":     {"Los Angeles", "San Francisco", "San Diego", "San Jose", "Sacramento"},
	"Texas":          {"Houston", "Dallas", "Austin", "San Antonio", "Fort Worth"},
	"Florida":        {"Miami", "Orlando", "Tampa", "Jacksonville", "St. Petersburg"},
	"New York":       {"New York City", "Buffalo", "Rochester", "Syracuse", "Albany"},
	"Pennsylvania":   {"Philadelphia", "Pittsburgh", "Allentown", "Erie", "Reading"},
	"Illinois":       {"Chicago", "Aurora", "Rockford", "Naperville", "Joliet"},
	"Ohio":           {"Columbus", "Cleveland", "Cincinnati", "Toledo", "Akron"},
	"Georgia":        {"Atlanta", "Augusta", "Columbus", "Savannah", "Athens"},
	"North Carolina": {"Charlotte", "Raleigh", "Greensboro", "Durham", "Winston-Salem"},
	"Michigan":       {"Detroit", "Grand Rapids", "Warren", "Sterling Heights", "Lansing"},
}

var usStreets = []string{"Main St", "Oak Ave", "Maple Dr", "Cedar Ln", "Pine Rd", "Elm St", "Walnut Ave", "Chestnut Dr", "Birch Ln", "Spruce Rd"}

var usAreaCodes = []string{"212", "310", "415", "202", "305", "713", "312", "213", "702", "404"}

var profileUS = profile{
	MaleNames:   []string{"James", "John", "Robert", "Michael", "William", "David", "Richard", "Joseph", "Thomas", "Charles"},
	FemaleNames: []string{"Mary", "Patricia", "Jennifer", "Linda", "Elizabeth", "Barbara", "Susan", "Jessica", "Sarah", "Karen"},
	Surnames:    []string{"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia", "Miller", "Davis", "Rodriguez", "Martinez"},
	Address: func(d *draw, _ string) addressParts {
		state := d.pick(usStates)
		city := d.pick(usStateCities[state])
		street := d.pick(usStreets)
		zip := fmt.Sprintf("%d", 10000+d.intn(90000))
		return addressParts{
			address:   fmt.Sprintf("%d %s, %s, %s %s", d.intn(1000), street, city, state, zip),
			street:    fmt.Sprintf("%d %s", d.intn(1000), d.pick(usStreets)),
			city:      city,
			state:     state,
			stateFull: state,
			zip:       zip,
		}
	},
	Phone: func(d *draw) string {
		return fmt.Sprintf("(%s) %s-%s", d.pick(usAreaCodes), d.digits(3), d.digits(4))
	},
	NationalID: func(d *draw, _ time.Time) string {
		return d.digits(3) + "-" + d.digits(2) + "-" + d.digits(4)
	},
	Passport: func(d *draw) string {
		return d.digits(8)
	},
	SecurityAnswer: func(_ *draw, _ nameParts, nationalID string) string {
		parts := strings.Split(nationalID, "-")
		return parts[len(parts)-1]
	},
	EmailDomains:       []string{"gmail.com", "yahoo.com", "hotmail.com", "outlook.com", "aol.com"},
	Occupations:        []string{"Engineer", "Teacher", "Doctor", "Lawyer", "Designer", "Programmer", "Salesperson", "Manager", "Accountant", "Nurse"},
	Education:          []string{"High School", "Bachelor's Degree", "Master's Degree", "PhD", "Professional Degree"},
	Companies:          []string{"Tech Corp", "Global Industries", "Innovative Solutions", "Future Technologies", "United Enterprises"},
	EmploymentStatuses: []string{"Full-time", "Part-time", "Contract", "Freelance", "Self-employed", "Leave of absence"},
	SecurityQuestions:  []string{"What is the last 4 of your SSN?"},
	BloodTypes:         []string{"A+", "B+", "O+", "AB+", "A-", "B-", "O-", "AB-"},
	CardTypes:          []string{"Visa", "MasterCard", "American Express", "Discover"},
	CardPrefix:         "4",
	Currency:           "$",
	SalaryBase:         3000,
	SalarySpread:       5000,
	Imperial:           true,
}
