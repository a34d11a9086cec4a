package llm

import "fmt"

// localeGuidance is the per-country block injected into the prompt. Each entry
// carries formatting rules plus a worked example so the model stays on format.
type localeGuidance struct {
	rules   string
	example string
}

var localeGuidances = map[string]localeGuidance{
	"CN": {
		rules: `- Full name: Use Chinese characters, format: Surname + Given name (e.g., 张三, 李四)
- Address: Use Chinese format: Province + City + District + Street + Building + Room (e.g., 北京市朝阳区建国路88号)
- Phone number: Format: 1[3-9]xxxxxxxx (11 digits)
- National ID: 18 digits, last digit can be X
- Email: Use pinyin for Chinese names, no Chinese characters
- Occupation: Use Chinese terms (e.g., 工程师, 教师)
- Company name: Use Chinese company names (e.g., 科技有限公司, 教育机构)`,
		example: `{
  "fullName": "王强",
  "gender": "Male",
  "birthDate": "1985-06-15",
  "address": "上海市浦东新区张江高科技园区博云路2号",
  "street": "博云路",
  "city": "上海市",
  "state": "Shanghai",
  "stateFullName": "上海市",
  "zipCode": "201203",
  "phone": "13812345678",
  "email": "wangqiang123@gmail.com",
  "occupation": "软件工程师",
  "nationalId": "310101198506151234",
  "companyName": "上海科技有限公司"
}`,
	},
	"US": {
		rules: `- Full name: First name + Last name (e.g., John Smith, Jane Doe)
- Address: Format: Street number + Street name, City, State Abbreviation, Zip code
- Phone number: Format: (XXX) XXX-XXXX
- National ID: SSN format: XXX-XX-XXXX
- Email: First name + last name or initials
- Occupation: Use English terms (e.g., Engineer, Teacher)
- Company name: Use American company names (e.g., Tech Corp, Global Industries)`,
		example: `{
  "fullName": "John Smith",
  "gender": "Male",
  "birthDate": "1982-03-20",
  "address": "123 Main St, New York, NY 10001",
  "street": "123 Main St",
  "city": "New York",
  "state": "NY",
  "stateFullName": "New York",
  "zipCode": "10001",
  "phone": "(212) 555-1234",
  "email": "john.smith@example.com",
  "occupation": "Software Engineer",
  "nationalId": "123-45-6789",
  "companyName": "Tech Innovations Inc."
}`,
	},
	"JP": {
		rules: `- Full name: Use Japanese characters, format: Surname + Given name (e.g., 佐藤太郎, 鈴木花子)
- Address: Use Japanese format: Prefecture + City + Ward + Street + Building + Room (e.g., 東京都渋谷区神南1-10-10)
- Phone number: Format: 0[3-9]xxxx-xxxx
- National ID: 12 digits
- Email: Use romaji for Japanese names, no Japanese characters
- Occupation: Use Japanese terms (e.g., エンジニア, 教師)
- Company name: Use Japanese company names (e.g., 株式会社テクノロジー, 教育法人)`,
		example: `{
  "fullName": "佐藤大辅",
  "gender": "Male",
  "birthDate": "1987-08-05",
  "address": "東京都渋谷区神南1-10-10 ビル101号室",
  "street": "神南1-10-10",
  "city": "東京都",
  "state": "Tokyo",
  "stateFullName": "東京都",
  "zipCode": "150-0041",
  "phone": "03-1234-5678",
  "email": "satodaisuke@example.com",
  "occupation": "ソフトウェアエンジニア",
  "nationalId": "123456789012",
  "companyName": "株式会社テクノ"
}`,
	},
	"GB": {
		rules: `- Full name: First name + Last name (e.g., James Wilson, Emma Taylor)
- Address: Format: House number + Street name, City, Postcode (e.g., 123 High Street, London, SW1A 1AA)
- Phone number: Format: +44 XX XXXX XXXX
- National ID: UK National Insurance number format: XX XX XX XX
- Email: First name + last name or initials
- Occupation: Use British English terms (e.g., Engineer, Teacher)
- Company name: Use British company names (e.g., Tech Ltd, Global Industries PLC)`,
		example: `{
  "fullName": "James Wilson",
  "gender": "Male",
  "birthDate": "1984-11-10",
  "address": "123 High Street, London, SW1A 1AA",
  "street": "123 High Street",
  "city": "London",
  "state": "England",
  "stateFullName": "England",
  "zipCode": "SW1A 1AA",
  "phone": "+44 20 1234 5678",
  "email": "james.wilson@example.com",
  "occupation": "Software Engineer",
  "nationalId": "AB 12 34 56",
  "companyName": "Tech Solutions Ltd"
}`,
	},
	"DE": {
		rules: `- Full name: First name + Last name (e.g., Max Müller, Anna Schmidt)
- Address: Format: House number + Street name, Postcode City, Germany (e.g., 123 Hauptstraße, 10115 Berlin, Germany)
- Phone number: Format: +49 XX XXXX XXXX
- National ID: German ID card number format: XX.XXX.XXX.X
- Email: First name + last name or initials
- Occupation: Use German terms (e.g., Ingenieur, Lehrer)
- Company name: Use German company names (e.g., Technik GmbH, Global Industrie GmbH)`,
		example: `{
  "fullName": "Max Müller",
  "gender": "Male",
  "birthDate": "1986-02-18",
  "address": "123 Hauptstraße, 10115 Berlin, Germany",
  "street": "123 Hauptstraße",
  "city": "Berlin",
  "state": "Berlin",
  "stateFullName": "Berlin",
  "zipCode": "10115",
  "phone": "+49 30 1234 5678",
  "email": "max.mueller@example.com",
  "occupation": "Ingenieur",
  "nationalId": "AB.123.456.7",
  "companyName": "Technik GmbH"
}`,
	},
	"FR": {
		rules: `- Full name: First name + Last name (e.g., Jean Dupont, Marie Martin)
- Address: Format: House number + Street name, Postcode City, France (e.g., 123 Rue de la République, 75001 Paris, France)
- Phone number: Format: +33 X XX XX XX XX
- National ID: French ID card number format: XX XXX XXX XX
- Email: First name + last name or initials
- Occupation: Use French terms (e.g., Ingénieur, Enseignant)
- Company name: Use French company names (e.g., Tech Société, Industries Globales)`,
		example: `{
  "fullName": "Jean Dupont",
  "gender": "Male",
  "birthDate": "1983-07-22",
  "address": "123 Rue de la République, 75001 Paris, France",
  "street": "123 Rue de la République",
  "city": "Paris",
  "state": "Île-de-France",
  "stateFullName": "Île-de-France",
  "zipCode": "75001",
  "phone": "+33 1 23 45 67 89",
  "email": "jean.dupont@example.com",
  "occupation": "Ingénieur",
  "nationalId": "AB 123 456 78",
  "companyName": "Tech Société"
}`,
	},
}

var defaultGuidance = localeGuidance{
	rules: `- Full name: Culturally appropriate for the country
- Address: Format specific to the country
- Phone number: Format specific to the country
- National ID: Format specific to the country
- Email: No non-English characters
- Occupation: Use terms appropriate for the country
- Company name: Use company names appropriate for the country`,
}

const fieldList = `1. Full name (culturally appropriate for the country)
2. Gender (randomly male or female)
3. Birth date (between 1970 and 2000)
4. Address (specific to the country)
5. Street address
6. City
7. State (if applicable)
8. State full name (if applicable)
9. Zip code (if applicable)
10. County (if applicable)
11. Phone number (in the country's format)
12. Email address (no non-English characters)
13. Occupation (culturally appropriate for the country)
14. Company name (culturally appropriate for the country)
15. Company size
16. Employment status
17. Monthly salary (in local currency)
18. National ID (in the country's format)
19. Passport number (following ICAO standards)
20. Credit card details (valid format, including type)
21. Bank account number (valid format)
22. Hair color
23. Height (in both feet/inches and centimeters)
24. Weight (in both pounds and kilograms)
25. Blood type
26. Username
27. Password
28. Operating system
29. GUID
30. Browser user agent
31. Education background
32. Personal website
33. Security question
34. Security answer`

const responseSkeleton = `{
  "fullName": "",
  "gender": "",
  "birthDate": "",
  "address": "",
  "street": "",
  "city": "",
  "state": "",
  "stateFullName": "",
  "zipCode": "",
  "county": "",
  "phone": "",
  "email": "",
  "occupation": "",
  "companyName": "",
  "companySize": "",
  "employmentStatus": "",
  "monthlySalary": "",
  "nationalId": "",
  "passportNumber": "",
  "creditCard": {
    "number": "",
    "expiry": "",
    "cvv": "",
    "type": ""
  },
  "bankAccount": "",
  "hairColor": "",
  "height": "",
  "weight": "",
  "bloodType": "",
  "username": "",
  "password": "",
  "operatingSystem": "",
  "guid": "",
  "userAgent": "",
  "education": "",
  "personalWebsite": "",
  "securityQuestion": "",
  "securityAnswer": ""
}`

func buildPrompt(country string) string {
	subject := "person from " + country
	switch country {
	case "CN":
		subject = "Chinese " + country
	case "US":
		subject = "American " + country
	}

	guidance, ok := localeGuidances[country]
	if !ok {
		guidance = defaultGuidance
	}

	prompt := fmt.Sprintf("Generate realistic identity details for a %s. Include the following fields:\n%s\n\n%s\n", subject, fieldList, guidance.rules)
	if guidance.example != "" {
		prompt += "\nExample:\n" + guidance.example + "\n"
	}
	prompt += "\nReturn the data as a JSON object with the following structure:\n" + responseSkeleton
	return prompt
}
