package synth

// Transliteration tables cover exactly the characters the name pools draw
// from. Anything outside the table passes through unchanged, so records from
// external sources keep their original script.

var pinyin = map[string]string{
	"王": "wang", "李": "li", "张": "zhang", "刘": "liu", "陈": "chen",
	"杨": "yang", "赵": "zhao", "黄": "huang", "周": "zhou", "吴": "wu",
	"徐": "xu", "孙": "sun", "马": "ma", "朱": "zhu", "胡": "hu",
	"伟": "wei", "强": "qiang", "军": "jun", "勇": "yong", "杰": "jie",
	"涛": "tao", "磊": "lei", "超": "chao", "明": "ming", "刚": "gang",
	"辉": "hui", "斌": "bin", "宇": "yu", "浩": "hao", "阳": "yang",
	"芳": "fang", "娜": "na", "静": "jing", "丽": "li", "敏": "min",
	"燕": "yan", "玲": "ling", "萍": "ping", "红": "hong", "艳": "yan",
	"婷": "ting", "慧": "hui", "娟": "juan", "霞": "xia", "兰": "lan",
}

var romaji = map[string]string{
	"佐藤": "sato", "鈴木": "suzuki", "高橋": "takahashi", "田中": "tanaka",
	"伊藤": "ito", "渡辺": "watanabe", "山本": "yamamoto", "中村": "nakamura",
	"小林": "kobayashi", "加藤": "kato",
	"大輔": "daisuke", "健太": "kenta", "翔太": "shota", "拓也": "takuya",
	"直樹": "naoki", "隆": "takashi", "陽太": "yota", "悠太": "yuta",
	"大介": "daisuke", "裕太": "yuta",
	"美咲": "misaki", "花子": "hanako", "麻衣": "mai", "優香": "yuka",
	"結衣": "yui", "梨香": "rika", "薫": "kaoru", "楓": "kaede",
	"渚": "nagisa", "茜": "akane",
}

func translit(table map[string]string, s string) string {
	if t, ok := table[s]; ok {
		return t
	}
	return s
}
