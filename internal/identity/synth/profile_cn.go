package synth

import (
	"fmt"
	"time"

	"identikit/internal/identity/models"
)

var cnProvinces = []string{"北京市", "上海市", "广州市", "深圳市", "杭州市", "南京市", "武汉市", "成都市", "重庆市", "天津市", "苏州市", "西安市", "长沙市", "青岛市", "大连市"}

var cnDistricts = []string{"朝阳区", "海淀区", "东城区", "西城区", "丰台区", "石景山区", "门头沟区", "房山区", "通州区", "顺义区", "昌平区", "大兴区", "怀柔区", "平谷区", "密云区"}

var cnStreets = []string{"建国路", "长安街", "王府井", "西单", "中关村", "CBD", "金融街", "三里屯", "国贸", "望京", "朝阳公园", "工体北路", "东直门", "西直门", "德胜门"}

// cnCityNames localizes the standalone city field for the major provinces.
// Keys are the Chinese province names; unknown provinces map to the
// language's catch-all entry under "".
var cnCityNames = map[string]map[string]string{
	"zh": {
		"北京市": "北京市", "上海市": "上海市", "广州市": "广州市",
		"深圳市": "深圳市", "杭州市": "杭州市", "": "其他城市",
	},
	"en": {
		"北京市": "Beijing", "上海市": "Shanghai", "广州市": "Guangzhou",
		"深圳市": "Shenzhen", "杭州市": "Hangzhou", "": "Other City",
	},
	"ja": {
		"北京市": "北京市", "上海市": "上海市", "广州市": "広州市",
		"深圳市": "深セン市", "杭州市": "杭州市", "": "その他の都市",
	},
}

func cnCityName(province, language string) string {
	names, ok := cnCityNames[language]
	if !ok {
		names = cnCityNames["zh"]
	}
	if city, ok := names[province]; ok {
		return city
	}
	return names[""]
}

// Resident ID area codes for the major municipalities.
var cnAreaCodes = []string{"110101", "110102", "110105", "310101", "310104", "310105", "440103", "440104", "440106", "510104"}

var cnIDCheckChars = []string{"1", "0", "X", "9", "8", "7", "6", "5", "4", "3", "2"}

var (
	cnSurnames    = []string{"王", "李", "张", "刘", "陈", "杨", "赵", "黄", "周", "吴", "徐", "孙", "马", "朱", "胡"}
	cnMaleNames   = []string{"伟", "强", "军", "勇", "杰", "涛", "磊", "超", "明", "刚", "辉", "斌", "宇", "浩", "阳"}
	cnFemaleNames = []string{"芳", "娜", "静", "丽", "敏", "燕", "玲", "萍", "红", "艳", "婷", "慧", "娟", "霞", "兰"}
)

var profileCN = profile{
	MaleNames:   cnMaleNames,
	FemaleNames: cnFemaleNames,
	Surnames:    cnSurnames,
	ComposeName: func(d *draw, gender string) nameParts {
		given := d.pick(cnMaleNames)
		if gender == models.GenderFemale {
			given = d.pick(cnFemaleNames)
		}
		family := d.pick(cnSurnames)
		return nameParts{given: given, family: family, full: family + given}
	},
	Address: func(d *draw, language string) addressParts {
		province := d.pick(cnProvinces)
		district := d.pick(cnDistricts)
		street := d.pick(cnStreets)
		return addressParts{
			address: fmt.Sprintf("%s%s%s%d号楼%d室", province, district, street, 1+d.intn(20), 1+d.intn(1000)),
			street:  fmt.Sprintf("%d %s", d.intn(1000), d.pick(cnStreets)),
			city:    cnCityName(province, language),
			zip:     fmt.Sprintf("%d", 100000+d.intn(900000)),
		}
	},
	Phone: func(d *draw) string {
		second := []string{"3", "4", "5", "6", "7", "8", "9"}
		return "1" + d.pick(second) + d.digits(8)
	},
	// Resident ID: 6-digit area code, YYYYMMDD birth date, 3-digit sequence,
	// 1 check character. The check character is drawn, not computed.
	NationalID: func(d *draw, birth time.Time) string {
		return d.pick(cnAreaCodes) + birth.Format("20060102") + d.digits(3) + d.pick(cnIDCheckChars)
	},
	Passport: func(d *draw) string {
		return "E" + d.digits(7)
	},
	BankAccount: func(d *draw) string {
		return "622202" + d.digits(14)
	},
	EmailLocal: func(d *draw, n nameParts) string {
		return translit(pinyin, n.family) + translit(pinyin, n.given)
	},
	Username: func(d *draw, n nameParts) string {
		return translit(pinyin, n.family) + translit(pinyin, n.given) + d.digits(3)
	},
	SecurityAnswer: func(d *draw, _ nameParts, _ string) string {
		return d.pick(cnSurnames)
	},
	EmailDomains:       []string{"gmail.com", "163.com", "qq.com", "sina.com", "126.com"},
	Occupations:        []string{"工程师", "教师", "医生", "律师", "设计师", "程序员", "销售", "经理", "会计", "护士", "建筑师", "咨询师", "研究员", "记者", "编辑"},
	Education:          []string{"高中", "学士", "硕士", "博士", "博士后"},
	Companies:          []string{"科技公司", "教育机构", "医疗机构", "金融公司", "制造企业", "互联网公司", "咨询公司", "房地产公司"},
	CompanySizes:       []string{"1-10人", "11-50人", "51-200人", "201-500人", "500人以上"},
	EmploymentStatuses: []string{"全职", "兼职", "合同", "自由职业", "自主创业"},
	SecurityQuestions:  []string{"您母亲的姓氏是什么？", "您出生城市的名称？", "您第一只宠物的名字？", "您小学的名称？", "您的幸运数字？"},
	HairColors:         []string{"黑色", "棕色", "深棕色", "金色", "银色"},
	BloodTypes:         []string{"A型", "B型", "O型", "AB型"},
	CardTypes:          []string{"Visa", "MasterCard", "UnionPay"},
	CardPrefix:         "6225",
	Currency:           "¥",
	SalaryBase:         5000,
	SalarySpread:       10000,
}
