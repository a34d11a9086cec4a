package synth

import (
	"fmt"
	"time"

	"identikit/internal/identity/models"
)

var (
	jpSurnames    = []string{"佐藤", "鈴木", "高橋", "田中", "伊藤", "渡辺", "山本", "中村", "小林", "加藤"}
	jpMaleNames   = []string{"大輔", "健太", "翔太", "拓也", "直樹", "隆", "陽太", "悠太", "大介", "裕太"}
	jpFemaleNames = []string{"美咲", "花子", "麻衣", "優香", "結衣", "梨香", "薫", "楓", "渚", "茜"}
)

var jpPrefectures = []string{"東京都", "大阪府", "神奈川県", "埼玉県", "千葉県", "愛知県", "兵庫県", "北海道", "福岡県", "静岡県"}

var jpCities = []string{"東京", "大阪", "横浜", "名古屋", "札幌", "神戸", "福岡", "川崎", "横須賀", "京都"}

var jpStreets = []string{"中央通り", "栄通り", "新宿通り", "銀座通り", "渋谷通り", "池袋通り", "上野通り", "浅草通り", "六本木通り", "原宿通り"}

var profileJP = profile{
	MaleNames:   jpMaleNames,
	FemaleNames: jpFemaleNames,
	Surnames:    jpSurnames,
	ComposeName: func(d *draw, gender string) nameParts {
		given := d.pick(jpMaleNames)
		if gender == models.GenderFemale {
			given = d.pick(jpFemaleNames)
		}
		family := d.pick(jpSurnames)
		return nameParts{given: given, family: family, full: family + given}
	},
	Address: func(d *draw, _ string) addressParts {
		prefecture := d.pick(jpPrefectures)
		city := d.pick(jpCities)
		street := d.pick(jpStreets)
		return addressParts{
			address: fmt.Sprintf("%s%s%s%d号館%d号室", prefecture, city, street, 1+d.intn(20), 1+d.intn(1000)),
			street:  fmt.Sprintf("%d %s", d.intn(1000), d.pick(jpStreets)),
			city:    city,
			zip:     fmt.Sprintf("%d", 100000+d.intn(900000)),
		}
	},
	Phone: func(d *draw) string {
		second := []string{"3", "5", "6", "7", "8", "9"}
		return "0" + d.pick(second) + d.digits(7)
	},
	// My Number, 12 digits. No check digit modeling.
	NationalID: func(d *draw, _ time.Time) string {
		return d.digits(12)
	},
	Passport: func(d *draw) string {
		return "E" + d.digits(7)
	},
	EmailLocal: func(_ *draw, n nameParts) string {
		return translit(romaji, n.family) + translit(romaji, n.given)
	},
	Username: func(d *draw, n nameParts) string {
		return translit(romaji, n.family) + translit(romaji, n.given) + d.digits(3)
	},
	SecurityAnswer: func(d *draw, _ nameParts, _ string) string {
		return d.pick(jpSurnames)
	},
	EmailDomains:       []string{"gmail.com", "yahoo.co.jp", "hotmail.co.jp", "outlook.jp", "icloud.com"},
	Occupations:        []string{"エンジニア", "教師", "医師", "弁護士", "デザイナー", "プログラマー", "営業", "マネージャー", "会計", "看護師"},
	Education:          []string{"高校", "学士", "修士", "博士", "博士課程後"},
	Companies:          []string{"テクノロジー会社", "教育機関", "医療機関", "金融会社", "製造企業", "インターネット会社", "コンサルティング会社", "不動産会社"},
	CompanySizes:       []string{"1-10人", "11-50人", "51-200人", "201-500人", "500人以上"},
	EmploymentStatuses: []string{"正社員", "パートタイム", "契約社員", "フリーランス", "自営業"},
	SecurityQuestions:  []string{"あなたの母親の名字は何ですか？", "あなたの出身都市の名前は？", "あなたの最初のペットの名前は？", "あなたの小学校の名前は？", "あなたの幸運な数字は？"},
	HairColors:         []string{"黒", "茶色", "金色", "銀色", "灰色"},
	BloodTypes:         []string{"A型", "B型", "O型", "AB型"},
	CardTypes:          []string{"Visa", "MasterCard", "JCB"},
	CardPrefix:         "4",
	Currency:           "¥",
	SalaryBase:         200000,
	SalarySpread:       300000,
}
