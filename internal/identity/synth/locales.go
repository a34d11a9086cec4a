package synth

import (
	"fmt"
	"strconv"
	"time"

	"identikit/internal/identity/models"
)

// Partial locale tables. Only fields that differ from fallbackProfile are
// present; profileFor backfills the rest.

// intlPhone builds "+CC area subscriber" phone formatters.
func intlPhone(prefix string, areaCodes []string, subscriberDigits int) func(*draw) string {
	return func(d *draw) string {
		return fmt.Sprintf("%s %s %s", prefix, d.pick(areaCodes), d.digits(subscriberDigits))
	}
}

// euroAddress renders "<n> <street>, <postcode> <city>, <country>".
func euroAddress(cities, streets []string, country string, postcode func(*draw) string) func(*draw, string) addressParts {
	return func(d *draw, _ string) addressParts {
		city := d.pick(cities)
		street := d.pick(streets)
		return addressParts{
			address: fmt.Sprintf("%d %s, %s %s, %s", d.intn(100), street, postcode(d), city, country),
			street:  street,
			city:    city,
		}
	}
}

// plainAddress renders "<n> <street>, <city>, <country>" with no postcode.
func plainAddress(cities, streets []string, country string) func(*draw, string) addressParts {
	return func(d *draw, _ string) addressParts {
		city := d.pick(cities)
		street := d.pick(streets)
		return addressParts{
			address: fmt.Sprintf("%d %s, %s, %s", d.intn(100), street, city, country),
			street:  street,
			city:    city,
		}
	}
}

func digitsInRange(lo, span int) func(*draw) string {
	return func(d *draw) string {
		return strconv.Itoa(lo + d.intn(span))
	}
}

var profileGB = profile{
	MaleNames:   []string{"James", "Oliver", "George", "William", "Harry", "Charlie", "Thomas", "Joseph", "Jacob", "Alfie"},
	FemaleNames: []string{"Olivia", "Amelia", "Isabella", "Sophia", "Ava", "Emily", "Lily", "Ella", "Freya", "Mia"},
	Surnames:    []string{"Smith", "Jones", "Taylor", "Brown", "Wilson", "Davies", "Evans", "Johnson", "Thomas", "Robinson"},
	Address: func(d *draw, _ string) addressParts {
		cities := []string{"London", "Birmingham", "Manchester", "Liverpool", "Leeds", "Glasgow", "Edinburgh", "Bristol", "Belfast", "Cardiff"}
		streets := []string{"High Street", "Station Road", "Main Street", "Church Road", "Park Road", "Church Street", "London Road", "Station Street", "New Road", "King Street"}
		city := d.pick(cities)
		street := d.pick(streets)
		postcode := fmt.Sprintf("%c%c %d%d %c%c", d.letter(), d.letter(), d.intn(10), d.intn(10), d.letter(), d.letter())
		return addressParts{
			address: fmt.Sprintf("%d %s, %s, %s", d.intn(100), street, city, postcode),
			street:  street,
			city:    city,
		}
	},
	Phone: intlPhone("+44", []string{"20", "121", "161", "113", "141", "191", "28", "131", "1733", "1224"}, 7),
	// National Insurance number: two letters, six digits, one letter.
	NationalID: func(d *draw, _ time.Time) string {
		return fmt.Sprintf("%c%c %s %c", d.letter(), d.letter(), d.digits(6), d.letter())
	},
	Currency: "£",
}

var profileDE = profile{
	MaleNames:   []string{"Max", "Lukas", "Leon", "Felix", "Noah", "Paul", "Jonas", "Elias", "Robin", "Ben"},
	FemaleNames: []string{"Mia", "Emma", "Hannah", "Sophia", "Lena", "Lea", "Luna", "Anna", "Marie", "Emily"},
	Surnames:    []string{"Müller", "Schmidt", "Schneider", "Fischer", "Weber", "Meyer", "Wagner", "Becker", "Schulz", "Hoffmann"},
	Address: euroAddress(
		[]string{"Berlin", "Munich", "Hamburg", "Cologne", "Frankfurt", "Stuttgart", "Düsseldorf", "Dortmund", "Essen", "Leipzig"},
		[]string{"Hauptstraße", "Bahnhofstraße", "Münchener Straße", "Berliner Straße", "Schulstraße", "Marktplatz", "Rathausplatz", "Kurfürstenstraße", "Friedrichstraße", "Königstraße"},
		"Germany", digitsInRange(1000, 9000)),
	Phone: intlPhone("+49", []string{"30", "40", "69", "89", "211", "221", "49", "611", "341", "511"}, 7),
	NationalID: func(d *draw, _ time.Time) string {
		return d.digits(10)
	},
	Occupations:        []string{"Ingenieur", "Lehrer", "Arzt", "Anwalt", "Designer", "Programmierer", "Verkäufer", "Manager", "Buchhalter", "Krankenschwester"},
	Education:          []string{"Hauptschule", "Realschule", "Gymnasium", "Bachelor", "Master", "Doktor"},
	Companies:          []string{"Technik GmbH", "Global Industrie", "Innovative Lösungen", "Zukunftstechnologie", "United Unternehme"},
	CompanySizes:       []string{"1-10 Mitarbeiter", "11-50 Mitarbeiter", "51-200 Mitarbeiter", "201-500 Mitarbeiter", "500+ Mitarbeiter"},
	EmploymentStatuses: []string{"Vollzeit", "Teilzeit", "Vertrag", "Freiberufler", "Selbstständig"},
	SecurityQuestions:  []string{"Was ist Ihr Geburtsort?", "Wie heißt Ihre Mutter?", "Was ist Ihr erstes Haustier gewesen?", "Wie heißt Ihre erste Schule?", "Was ist Ihre Lieblingsfarbe?"},
	Currency:           "€",
}

var profileFR = profile{
	MaleNames:   []string{"Gabriel", "Lucas", "Hugo", "Louis", "Arthur", "Jules", "Adam", "Nathan", "Leo", "Ethan"},
	FemaleNames: []string{"Emma", "Alice", "Chloé", "Lina", "Léa", "Mila", "Lola", "Camille", "Zoe", "Julia"},
	Surnames:    []string{"Martin", "Bernard", "Dubois", "Thomas", "Robert", "Richard", "Durand", "Petit", "Simon", "Laurent"},
	Address: euroAddress(
		[]string{"Paris", "Marseille", "Lyon", "Toulouse", "Nice", "Nantes", "Strasbourg", "Montpellier", "Bordeaux", "Lille"},
		[]string{"Rue de la République", "Rue de Paris", "Avenue de la Liberté", "Rue du Commerce", "Rue de la Gare", "Rue Principale", "Avenue Jean Jaurès", "Rue Victor Hugo", "Rue des Ecoles", "Rue de la Mairie"},
		"France", digitsInRange(10000, 90000)),
	Phone: intlPhone("+33", []string{"1", "2", "3", "4", "5", "6", "7", "8", "9"}, 7),
	NationalID: func(d *draw, _ time.Time) string {
		return d.digits(13)
	},
	Occupations:        []string{"Ingénieur", "Enseignant", "Médecin", "Avocat", "Designer", "Programmeur", "Vendeur", "Manager", "Comptable", "Infirmière"},
	Education:          []string{"Collège", "Lycée", "Licence", "Master", "Doctorat"},
	Companies:          []string{"Tech Société", "Industries Globales", "Solutions Innovantes", "Technologies Futures", "Entreprises Unies"},
	CompanySizes:       []string{"1-10 employés", "11-50 employés", "51-200 employés", "201-500 employés", "500+ employés"},
	EmploymentStatuses: []string{"À temps plein", "À temps partiel", "Contrat", "Indépendant", "Entrepreneur"},
	SecurityQuestions:  []string{"Quelle est votre ville de naissance?", "Comment s'appelle votre mère?", "Quel était votre premier animal de compagnie?", "Comment s'appelle votre première école?", "Quelle est votre couleur préférée?"},
	Currency:           "€",
}

var profileES = profile{
	MaleNames:   []string{"Lucas", "Hugo", "Martín", "Daniel", "Pablo", "Álvaro", "Mateo", "Leo", "Alejandro", "Enzo"},
	FemaleNames: []string{"Lucía", "Sofía", "María", "Martina", "Julia", "Paula", "Valeria", "Daniela", "Carmen", "Alba"},
	Surnames:    []string{"García", "Rodríguez", "González", "Fernández", "López", "Martínez", "Sanchez", "Pérez", "Gómez", "Martín"},
	Address: euroAddress(
		[]string{"Madrid", "Barcelona", "Valencia", "Seville", "Zaragoza", "Malaga", "Murcia", "Palma", "Las Palmas", "Bilbao"},
		[]string{"Calle Gran Vía", "Calle Mayor", "Calle de la Princesa", "Calle de Alcalá", "Calle de Serrano", "Paseo de la Castellana", "Calle de Fuencarral", "Calle de la Cruz", "Calle de la Montera", "Calle de Carretas"},
		"Spain", digitsInRange(1000, 52000)),
	Phone: intlPhone("+34", []string{"91", "93", "95", "92", "94", "96", "971", "98", "972", "952"}, 7),
	// DNI: eight digits plus the mod-23 control letter.
	NationalID: func(d *draw, _ time.Time) string {
		const control = "TRWAGMYFPDXBNJZSQVHLCKE"
		digits := d.digits(8)
		n, _ := strconv.Atoi(digits)
		return digits + string(control[n%23])
	},
	Occupations:        []string{"Ingeniero", "Profesor", "Médico", "Abogado", "Diseñador", "Programador", "Vendedor", "Gerente", "Contador", "Enfermera"},
	Education:          []string{"Educación Secundaria", "Bachillerato", "Grado", "Master", "Doctorado"},
	Companies:          []string{"Tech Corporación", "Industrias Globales", "Soluciones Innovadoras", "Tecnologías del Futuro", "Empresas Unidas"},
	CompanySizes:       []string{"1-10 empleados", "11-50 empleados", "51-200 empleados", "201-500 empleados", "500+ empleados"},
	EmploymentStatuses: []string{"Tiempo completo", "Tiempo parcial", "Contrato", "Freelance", "Autónomo"},
	SecurityQuestions:  []string{"¿Cuál es su lugar de nacimiento?", "¿Cómo se llama su madre?", "¿Cuál fue su primera mascota?", "¿Cómo se llama su primera escuela?", "¿Cuál es su color favorito?"},
	Currency:           "€",
}

var profileIT = profile{
	MaleNames:   []string{"Luca", "Matteo", "Leonardo", "Alessandro", "Tommaso", "Francesco", "Davide", "Riccardo", "Edoardo", "Gabriele"},
	FemaleNames: []string{"Sofia", "Aurora", "Giulia", "Ginevra", "Alice", "Emma", "Chiara", "Francesca", "Beatrice", "Matilde"},
	Surnames:    []string{"Rossi", "Russo", "Ferrari", "Esposito", "Bianchi", "Romano", "Colombo", "Ricci", "Marino", "Greco"},
	Address: euroAddress(
		[]string{"Rome", "Milan", "Naples", "Turin", "Palermo", "Genoa", "Bologna", "Florence", "Bari", "Catania"},
		[]string{"Via Roma", "Via Nazionale", "Via Garibaldi", "Via Vittorio Emanuele", "Via Dante", "Via XX Settembre", "Via dei Condotti", "Via Montenapoleone", "Via della Libertà", "Via Cola di Rienzo"},
		"Italy", digitsInRange(10000, 90000)),
	Phone: intlPhone("+39", []string{"02", "06", "011", "040", "0444", "051", "055", "081", "091", "071"}, 7),
	// Codice fiscale shape only: 16 random alphanumerics.
	NationalID: func(d *draw, _ time.Time) string {
		const digits = "0123456789"
		b := make([]byte, 16)
		for i := range b {
			if d.intn(2) == 0 {
				b[i] = d.letter()
			} else {
				b[i] = digits[d.intn(10)]
			}
		}
		return string(b)
	},
	Occupations:        []string{"Ingegnere", "Insegnante", "Medico", "Avvocato", "Designer", "Programmatore", "Venditore", "Manager", "Commercialista", "Infermiera"},
	Education:          []string{"Scuola Media", "Liceo", "Laurea", "Master", "Dottorato"},
	Companies:          []string{"Tech S.p.A.", "Industrie Globali", "Soluzioni Innovative", "Tecnologie del Futuro", "Imprese Unite"},
	CompanySizes:       []string{"1-10 dipendenti", "11-50 dipendenti", "51-200 dipendenti", "201-500 dipendenti", "500+ dipendenti"},
	EmploymentStatuses: []string{"Tempo pieno", "Tempo parziale", "Contratto", "Freelance", "Autonomo"},
	SecurityQuestions:  []string{"Qual è il tuo luogo di nascita?", "Come si chiama tua madre?", "Qual è stato il tuo primo animale domestico?", "Come si chiama la tua prima scuola?", "Qual è il tuo colore preferito?"},
	Currency:           "€",
}

var profileNL = profile{
	MaleNames:   []string{"Daan", "Liam", "Lucas", "Noah", "Jesse", "Sem", "Finn", "Milan", "Levi", "Julian"},
	FemaleNames: []string{"Julia", "Emma", "Mila", "Sophie", "Zoë", "Luna", "Lisa", "Fenna", "Eva", "Sofia"},
	Surnames:    []string{"Jansen", "de Jong", "de Vries", "van den Berg", "van Dijk", "Bakker", "Janssen", "Visser", "Smit", "Meijer"},
	Address: func(d *draw, _ string) addressParts {
		cities := []string{"Amsterdam", "Rotterdam", "The Hague", "Utrecht", "Eindhoven", "Tilburg", "Groningen", "Almere", "Breda", "Nijmegen"}
		streets := []string{"Damrak", "Kalverstraat", "Leidsestraat", "Prinsengracht", "Keizersgracht", "Herengracht", "Weteringschans", "Stadhouderskade", "Overtoom", "Zuidas"}
		city := d.pick(cities)
		street := d.pick(streets)
		postcode := fmt.Sprintf("%d %c%c", 1000+d.intn(9000), d.letter(), d.letter())
		return addressParts{
			address: fmt.Sprintf("%d %s, %s %s, Netherlands", d.intn(100), street, postcode, city),
			street:  street,
			city:    city,
		}
	},
	Phone: intlPhone("+31", []string{"20", "70", "30", "40", "50", "71", "10", "23", "24", "26"}, 7),
	NationalID: func(d *draw, _ time.Time) string {
		return d.digits(9)
	},
	Occupations:        []string{"Ingenieur", "Leraar", "Arts", "Advocaat", "Ontwerper", "Programmeur", "Verkoopmedewerker", "Manager", "Accountant", "Verpleegkundige"},
	Education:          []string{"VMBO", "HAVO", "VWO", "Bachelor", "Master", "Doctoraat"},
	Companies:          []string{"Tech B.V.", "Global Industrie", "Innovatieve Oplossingen", "Toekomsttechnologie", "Verenigde Ondernemingen"},
	CompanySizes:       []string{"1-10 werknemers", "11-50 werknemers", "51-200 werknemers", "201-500 werknemers", "500+ werknemers"},
	EmploymentStatuses: []string{"Volledige tijd", "Deeltijd", "Contract", "Freelance", "Zelfstandig"},
	SecurityQuestions:  []string{"Wat is uw geboorteplaats?", "Hoe heet uw moeder?", "Wat was uw eerste huisdier?", "Hoe heet uw eerste school?", "Wat is uw favoriete kleur?"},
	Currency:           "€",
}

var profilePL = profile{
	MaleNames:   []string{"Jan", "Piotr", "Krzysztof", "Tomasz", "Andrzej", "Paweł", "Marcin", "Michał", "Łukasz", "Adam"},
	FemaleNames: []string{"Anna", "Maria", "Katarzyna", "Małgorzata", "Agnieszka", "Barbara", "Ewa", "Elżbieta", "Dorota", "Joanna"},
	Surnames:    []string{"Nowak", "Kowalski", "Wiśniewski", "Wójcik", "Kowalczyk", "Kamiński", "Lewandowski", "Zieliński", "Szymański", "Woźniak"},
	Address: euroAddress(
		[]string{"Warsaw", "Krakow", "Łódź", "Wrocław", "Poznań", "Gdańsk", "Szczecin", "Bydgoszcz", "Lublin", "Białystok"},
		[]string{"ul. Marszałkowska", "ul. Świętokrzyska", "ul. Nowy Świat", "ul. Krakowskie Przedmieście", "ul. Żelazna", "ul. Grzybowska", "ul. Jasna", "ul. Emilii Plater", "ul. Chłodna", "ul. Zgoda"},
		"Poland", digitsInRange(10000, 90000)),
	Phone: intlPhone("+48", []string{"22", "61", "12", "42", "48", "32", "58", "71", "91", "81"}, 7),
	// PESEL shape only, 11 digits.
	NationalID: func(d *draw, _ time.Time) string {
		return d.digits(11)
	},
	Occupations:        []string{"Inżynier", "Nauczyciel", "Lekarz", "Adwokat", "Designer", "Programista", "Sprzedawca", "Manager", "Księgowy", "Pielegniarka"},
	Education:          []string{"Szkoła Podstawowa", "Gimnazjum", "Liceum", "Licencjat", "Magister", "Doktor"},
	Companies:          []string{"Tech Sp. z o.o.", "Globalne Przemysł", "Innowacyjne Rozwiązania", "Technologie Przyszłości", "Zjednoczone Przedsiębiorstwa"},
	CompanySizes:       []string{"1-10 pracowników", "11-50 pracowników", "51-200 pracowników", "201-500 pracowników", "500+ pracowników"},
	EmploymentStatuses: []string{"Pełny etat", "Częściowy etat", "Kontrakt", "Freelance", "Samozatrudniony"},
	SecurityQuestions:  []string{"Jaki jest Twój miejscowość urodzenia?", "Jak się nazywa Twoja matka?", "Jakie było Twoje pierwsze zwierzę domowe?", "Jak się nazywała Twoja pierwsza szkoła?", "Jaki jest Twój ulubiony kolor?"},
	Currency:           "zł",
}

var (
	ruFirstNamesMale   = []string{"Александр", "Дмитрий", "Максим", "Иван", "Андрей", "Сергей", "Артем", "Кирилл", "Никита", "Михаил"}
	ruFirstNamesFemale = []string{"Анна", "Мария", "Елена", "Ольга", "Татьяна", "Екатерина", "Светлана", "Наталья", "Евгения", "Марина"}
	ruLastNames        = []string{"Иванов", "Петров", "Сидоров", "Козлов", "Смирнов", "Новиков", "Федоров", "Михайлов", "Волков", "Алексеев"}
)

var profileRU = profile{
	MaleNames:   ruFirstNamesMale,
	FemaleNames: ruFirstNamesFemale,
	Surnames:    ruLastNames,
	// Russian names read surname first.
	ComposeName: func(d *draw, gender string) nameParts {
		given := d.pick(ruFirstNamesMale)
		if gender == models.GenderFemale {
			given = d.pick(ruFirstNamesFemale)
		}
		family := d.pick(ruLastNames)
		return nameParts{given: given, family: family, full: family + " " + given}
	},
	Address: plainAddress(
		[]string{"Moscow", "Saint Petersburg", "Novosibirsk", "Yekaterinburg", "Kazan", "Nizhny Novgorod", "Chelyabinsk", "Samara", "Omsk", "Rostov-on-Don"},
		[]string{"Тверская улица", "Ленинский проспект", "Арбат", "Красная площадь", "Невский проспект", "Пушкинская улица", "Кировский проспект", "Советский проспект", "Московский проспект", "Гагаринский проспект"},
		"Russia"),
	Phone: intlPhone("+7", []string{"495", "499", "812", "4012", "843", "381", "423", "491", "863", "485"}, 7),
	NationalID: func(d *draw, _ time.Time) string {
		return d.digits(10)
	},
	Occupations:        []string{"Инженер", "Учитель", "Врач", "Адвокат", "Дизайнер", "Программист", "Продавец", "Менеджер", "Бухгалтер", "Медсестра"},
	Education:          []string{"Начальная школа", "Средняя школа", "Бакалавр", "Магистр", "Доктор"},
	Companies:          []string{"Тех Корпорация", "Глобальная Индустрия", "Инновационные Решения", "Будущие Технологии", "Объединенные Предприятия"},
	CompanySizes:       []string{"1-10 сотрудников", "11-50 сотрудников", "51-200 сотрудников", "201-500 сотрудников", "500+ сотрудников"},
	EmploymentStatuses: []string{"Полный рабочий день", "Частичная занятость", "Контракт", "Фрилансер", "Самозанятый"},
	SecurityQuestions:  []string{"Какой ваш город рождения?", "Как зовут вашу мать?", "Какое было ваше первое животное?", "Как зовут вашу первую школу?", "Какой ваш любимый цвет?"},
	Currency:           "₽",
}

var profileTR = profile{
	MaleNames:   []string{"Mehmet", "Ahmet", "Mustafa", "Ali", "Hasan", "İsmail", "Osman", "Ayhan", "Metin", "Yusuf"},
	FemaleNames: []string{"Ayşe", "Fatma", "Emine", "Zeynep", "Hatice", "Meryem", "Gülşah", "Şebnem", "Elif", "Melis"},
	Surnames:    []string{"Yılmaz", "Kaya", "Demir", "Şahin", "Çelik", "Öztürk", "Kara", "Aydın", "Koç", "Arslan"},
	Address: euroAddress(
		[]string{"Istanbul", "Ankara", "Izmir", "Bursa", "Adana", "Gaziantep", "Konya", "Antalya", "Kayseri", "Mersin"},
		[]string{"İstiklal Caddesi", "Bağdat Caddesi", "Atatürk Caddesi", "Cumhuriyet Caddesi", "Şişli Meşrutiyet Caddesi", "Kadıköy Bahariye Caddesi", "Bebek Bosphorus Caddesi", "Nişantaşı Bağdat Caddesi", "Kızılay Caddesi", "Bornova Caddesi"},
		"Turkey", digitsInRange(1000, 90000)),
	Phone: intlPhone("+90", []string{"212", "216", "312", "232", "242", "412", "322", "222", "252", "286"}, 7),
	NationalID: func(d *draw, _ time.Time) string {
		return d.digits(11)
	},
	Occupations:        []string{"Mühendis", "Öğretmen", "Doktor", "Avukat", "Tasarımcı", "Programcı", "Satış Danışmanı", "Yönetici", "Muhasebeci", "Hemşire"},
	Education:          []string{"İlkokul", "Ortaokul", "Lise", "Lisans", "Yüksek Lisans", "Doktora"},
	Companies:          []string{"Teknoloji A.Ş.", "Küresel Endüstri", "İnovasyon Çözümleri", "Gelecek Teknolojileri", "Birleşik İşletmeler"},
	CompanySizes:       []string{"1-10 çalışan", "11-50 çalışan", "51-200 çalışan", "201-500 çalışan", "500+ çalışan"},
	EmploymentStatuses: []string{"Tam zamanlı", "Yarı zamanlı", "Sözleşme", "Serbest çalışan", "Kendi işi"},
	SecurityQuestions:  []string{"Doğum yeriniz neresi?", "Annenizin adı nedir?", "İlk evcil hayvanınız neydi?", "İlk okulunuzun adı nedir?", "En sevdiğiniz renk nedir?"},
	Currency:           "₺",
}

var profileBR = profile{
	MaleNames:   []string{"João", "Pedro", "Lucas", "Mateus", "Gabriel", "Enzo", "Rafael", "Gustavo", "Felipe", "Henrique"},
	FemaleNames: []string{"Maria", "Ana", "Julia", "Isabella", "Sophia", "Manuela", "Luiza", "Helena", "Laura", "Mariana"},
	Surnames:    []string{"Silva", "Santos", "Oliveira", "Pereira", "Souza", "Rodrigues", "Ferreira", "Almeida", "Costa", "Gomes"},
	Address: func(d *draw, _ string) addressParts {
		cities := []string{"São Paulo", "Rio de Janeiro", "Brasília", "Salvador", "Fortaleza", "Belo Horizonte", "Manaus", "Curitiba", "Recife", "Porto Alegre"}
		streets := []string{"Avenida Paulista", "Rua Augusta", "Avenida Faria Lima", "Rua Oscar Freire", "Avenida Presidente Vargas", "Rua 25 de Março", "Avenida Atlântica", "Rua Barão de Capanema", "Avenida Brasil", "Rua das Flores"}
		city := d.pick(cities)
		street := d.pick(streets)
		return addressParts{
			address: fmt.Sprintf("%d %s, %s, %d, Brazil", d.intn(1000), street, city, 10000000+d.intn(90000000)),
			street:  street,
			city:    city,
		}
	},
	Phone: intlPhone("+55", []string{"11", "12", "13", "14", "15", "16", "17", "18", "19", "21"}, 8),
	// CPF rendered 000.000.000-00 without check digit math.
	NationalID: func(d *draw, _ time.Time) string {
		digits := d.digits(11)
		return fmt.Sprintf("%s.%s.%s-%s", digits[0:3], digits[3:6], digits[6:9], digits[9:11])
	},
	Occupations:        []string{"Engenheiro", "Professor", "Médico", "Advogado", "Designer", "Programador", "Vendedor", "Gerente", "Contador", "Enfermeira"},
	Education:          []string{"Ensino Fundamental", "Ensino Médio", "Graduação", "Pós-graduação", "Doutorado"},
	Companies:          []string{"Tech Corporação", "Indústrias Globais", "Soluções Inovadoras", "Tecnologias do Futuro", "Empresas Unidas"},
	CompanySizes:       []string{"1-10 funcionários", "11-50 funcionários", "51-200 funcionários", "201-500 funcionários", "500+ funcionários"},
	EmploymentStatuses: []string{"Tempo integral", "Meio período", "Contrato", "Freelance", "Autônomo"},
	SecurityQuestions:  []string{"Qual é seu local de nascimento?", "Como se chama sua mãe?", "Qual foi seu primeiro animal de estimação?", "Como se chama sua primeira escola?", "Qual é sua cor favorita?"},
	Currency:           "R$",
}

var profileIN = profile{
	MaleNames:   []string{"Aarav", "Aditya", "Arjun", "Vivaan", "Rohan", "Aryan", "Shaurya", "Krishna", "Ishaan", "Dhruv"},
	FemaleNames: []string{"Diya", "Aadhya", "Anaya", "Saanvi", "Isha", "Aaradhya", "Aanya", "Riya", "Naina", "Myra"},
	Surnames:    []string{"Sharma", "Verma", "Singh", "Gupta", "Kumar", "Patel", "Jain", "Mehta", "Chaudhary", "Yadav"},
	Address: plainAddress(
		[]string{"Mumbai", "Delhi", "Bangalore", "Hyderabad", "Chennai", "Kolkata", "Ahmedabad", "Pune", "Surat", "Jaipur"},
		[]string{"MG Road", "Station Road", "Main Street", "Church Road", "Park Street", "Nehru Road", "Gandhi Road", "Railway Road", "Market Road", "College Road"},
		"India"),
	Phone: intlPhone("+91", []string{"11", "22", "33", "44", "55", "66", "77", "88", "99", "20"}, 8),
	// Aadhaar shape only, 12 digits.
	NationalID: func(d *draw, _ time.Time) string {
		return d.digits(12)
	},
}

var profileTH = profile{
	MaleNames:   []string{"ชัย", "วิชัย", "วัชร", "สมชาย", "สุรชัย", "วินัย", "ประชัย", "สมศักดิ์", "วิรัช", "ธนารัตน์"},
	FemaleNames: []string{"สุภัสสรา", "วรวรณี", "กนกวรรณ", "พิมพ์พร", "นิภาดา", "สุมาลี", "อรุณา", "มารีย์", "ปนัดดา", "จันทร์"},
	Surnames:    []string{"สุขุม", "เจริญ", "กิตติ", "ทองคำ", "ประเสริฐ", "ศรี", "สมบูรณ์", "สวัสดิ์", "สมชาย", "ดี"},
	Address: plainAddress(
		[]string{"Bangkok", "Chiang Mai", "Phuket", "Pattaya", "Hua Hin", "Krabi", "Surat Thani", "Chiang Rai", "Ayutthaya", "Nakhon Ratchasima"},
		[]string{"ถนนพระราม", "ถนนสุทธิสาร", "ถนนสีลม", "ถนนพระจันทร์", "ถนนสาทร", "ถนนพญาไท", "ถนนราชดำริ", "ถนนเพชรบุรี", "ถนนสุขุมวิท", "ถนนอโศก"},
		"Thailand"),
	Phone: intlPhone("+66", []string{"2", "32", "33", "34", "35", "36", "37", "38", "42", "43"}, 7),
	NationalID: func(d *draw, _ time.Time) string {
		return d.digits(13)
	},
	Occupations:        []string{"วิศวกร", "ครู", "แพทย์", "ทนายความ", "นักออกแบบ", "โปรแกรมเมอร์", "พนักงานขาย", "ผู้จัดการ", "นักบัญชี", "พยาบาล"},
	Education:          []string{"โรงเรียนประถม", "โรงเรียนมัธยม", "ปริญญาตรี", "ปริญญาโท", "ปริญญาเอก"},
	Companies:          []string{"เทคคอร์ปอเรชั่น", "อุตสาหกรรมโลก", "โซลูชันนวัตกรรม", "เทคโนโลยีแห่งอนาคต", "ธุรกิจร่วม"},
	CompanySizes:       []string{"1-10 พนักงาน", "11-50 พนักงาน", "51-200 พนักงาน", "201-500 พนักงาน", "500+ พนักงาน"},
	EmploymentStatuses: []string{"เวลาเต็ม", "เวลาเพียงบางส่วน", "สัญญา", "ฟรีแลนซ์", "รับจ้างเอง"},
	SecurityQuestions:  []string{"ที่เกิดของคุณคืออะไร?", "แม่ของคุณชื่ออะไร?", "สัตว์เลี้ยงตัวแรกของคุณคืออะไร?", "โรงเรียนแรกของคุณชื่ออะไร?", "สีโปรดของคุณคืออะไร?"},
	Currency:           "฿",
}

var (
	vnFamilyNames = []string{"Nguyễn", "Trần", "Lê", "Phạm", "Hoàng", "Phan", "Vũ", "Đặng", "Bùi", "Đỗ"}
	vnMiddleNames = []string{"Văn", "Thị", "Đức", "Thanh", "Hữu", "Minh", "Ngọc", "Quốc", "Thảo", "Hải"}
	vnGivenNames  = []string{"Anh", "Hùng", "Long", "Mai", "Lan", "Hoa", "Tuấn", "Nguyên", "Trung", "Dũng"}
)

var profileVN = profile{
	MaleNames:   vnGivenNames,
	FemaleNames: vnGivenNames,
	Surnames:    vnFamilyNames,
	// Vietnamese names read family, middle, given.
	ComposeName: func(d *draw, _ string) nameParts {
		family := d.pick(vnFamilyNames)
		middle := d.pick(vnMiddleNames)
		given := d.pick(vnGivenNames)
		return nameParts{given: given, family: family, full: family + " " + middle + " " + given}
	},
	Address: plainAddress(
		[]string{"Ho Chi Minh City", "Hanoi", "Da Nang", "Can Tho", "Hai Phong", "Bien Hoa", "Vung Tau", "Nha Trang", "Huế", "Da Lat"},
		[]string{"Đường Lê Lợi", "Đường Nguyễn Huệ", "Đường Trần Hưng Đạo", "Đường Võ Văn Tần", "Đường Nguyễn Văn Cừ", "Đường Tôn Đức Thắng", "Đường Hùng Vương", "Đường Trần Quang Khải", "Đường Phạm Ngũ Lão", "Đường Trương Định"},
		"Vietnam"),
	Phone: intlPhone("+84", []string{"24", "28", "234", "236", "25", "26", "27", "29", "31", "32"}, 7),
	NationalID: func(d *draw, _ time.Time) string {
		return d.digits(9 + d.intn(4))
	},
	Occupations:        []string{"Kỹ sư", "Giáo viên", "Bác sĩ", "Luật sư", "Thiết kế", "Lập trình viên", "Nhân viên bán hàng", "Quản lý", "Kế toán", "Y tá"},
	Education:          []string{"Trung học cơ sở", "Trung học phổ thông", "Cao đẳng", "Đại học", "Thạc sĩ", "Tiến sĩ"},
	Companies:          []string{"Công ty Tech", "Công nghiệp Toàn cầu", "Giải pháp Đổi mới", "Công nghệ Tương lai", "Doanh nghiệp Liên hiệp"},
	CompanySizes:       []string{"1-10 nhân viên", "11-50 nhân viên", "51-200 nhân viên", "201-500 nhân viên", "500+ nhân viên"},
	EmploymentStatuses: []string{"Toàn thời gian", "Bán thời gian", "Hợp đồng", "Tự do", "Tự kinh doanh"},
	SecurityQuestions:  []string{"Bạn sinh ra ở đâu?", "Mẹ của bạn tên gì?", "Thú cưng đầu tiên của bạn là gì?", "Trường tiểu học đầu tiên của bạn tên gì?", "Màu yêu thích của bạn là gì?"},
	Currency:           "₫",
}

var profileAR = profile{
	MaleNames:   []string{"Mohammed", "Ahmed", "Omar", "Ali", "Hassan", "Abdullah", "Khalid", "Said", "Yousef", "Ibrahim"},
	FemaleNames: []string{"Fatima", "Aisha", "Maryam", "Amina", "Sarah", "Noor", "Hala", "Layla", "Zainab", "Noura"},
	Surnames:    []string{"Al-Sayed", "El-Hassan", "Abdullah", "Mohammed", "Ali", "Omar", "Hassan", "Ibrahim", "Ahmed", "Khalid"},
	Address: plainAddress(
		[]string{"Cairo", "Alexandria", "Giza", "Shubra El Kheima", "Port Said", "Suez", "Luxor", "Asyut", "Fayyum", "Minya"},
		[]string{"شارع المصريين", "شارع الجمال", "شارع السادات", "شارع الكرامة", "شارع القاهرة", "شارع العز", "شارع التحرير", "شارع المعز", "شارع محمد علي", "شارع النيل"},
		"Egypt"),
	Phone: intlPhone("+20", []string{"20", "21", "22", "23", "24", "25", "26", "27", "28", "29"}, 7),
	NationalID: func(d *draw, _ time.Time) string {
		return d.digits(14)
	},
	Occupations:        []string{"مهندس", "معلم", "طبيب", "محامي", "مصمم", "مبرمج", "بائع", "مدير", "محاسب", "ممرضة"},
	Education:          []string{"مدرسة ابتدائية", "مدرسة متوسطة", "مدرسة ثانوية", "درجة البكالوريوس", "درجة الماجستير", "درجة الدكتوراة"},
	Companies:          []string{"تك كوربوريشن", "صناعة عالمية", "حلول مبتكرة", "تكنولوجيا المستقبل", "شركات متحدة"},
	CompanySizes:       []string{"1-10 موظف", "11-50 موظف", "51-200 موظف", "201-500 موظف", "500+ موظف"},
	EmploymentStatuses: []string{"وقت كامل", "وقت جزئي", "عقد", "فريلانسر", "عامل مستقل"},
	SecurityQuestions:  []string{"ما هو مكان ميلادك؟", "كيف تُدعى أمك؟", "ما كان حيوانك الأليف الأول؟", "كيف تُدعى مدرستك الأولى؟", "ما هو لونك المفضل؟"},
	Currency:           "EGP",
}
