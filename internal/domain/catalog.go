package domain

import "fmt"

// StemCount is the length of the day-stem cycle.
const StemCount = 10

var catalog = [StemCount]Archetype{
	{
		Index:   0,
		Name:    "甲",
		Reading: "Kinoe",
		Title:   "大樹のゾウ",
		Emblem:  "🐘",
		Tagline: "大器晩成の実業家",
		Style:   "どっしり構えて時間をかけ、巨万の富を築く",
		Tip:     "長期視点で投資の勉強を始める",
	},
	{
		Index:   1,
		Name:    "乙",
		Reading: "Kinoto",
		Title:   "蔦のウサギ",
		Emblem:  "🐰",
		Tagline: "愛され人脈富豪",
		Style:   "人との縁とネットワークが富を運んでくる",
		Tip:     "交流会やコミュニティに参加する",
	},
	{
		Index:   2,
		Name:    "丙",
		Reading: "Hinoe",
		Title:   "太陽のライオン",
		Emblem:  "🦁",
		Tagline: "カリスマ主役",
		Style:   "圧倒的な存在感と人気で注目を集めて稼ぐ",
		Tip:     "SNSで自分の想いを発信する",
	},
	{
		Index:   3,
		Name:    "丁",
		Reading: "Hinoto",
		Title:   "灯火のフクロウ",
		Emblem:  "🦉",
		Tagline: "知的戦略家",
		Style:   "鋭い洞察力と専門スキルで賢く稼ぐ",
		Tip:     "資格取得や専門知識を深める",
	},
	{
		Index:   4,
		Name:    "戊",
		Reading: "Tsuchinoe",
		Title:   "岩山のクマ",
		Emblem:  "🐻",
		Tagline: "不動産王",
		Style:   "信頼と実績を積み上げ、動かない資産を得る",
		Tip:     "貯蓄と不動産情報の収集",
	},
	{
		Index:   5,
		Name:    "己",
		Reading: "Tsuchinoto",
		Title:   "畑のワンちゃん",
		Emblem:  "🐕",
		Tagline: "育成のマエストロ",
		Style:   "人を育て、育むことで感謝対価を得る",
		Tip:     "後輩や部下の育成に力を入れる",
	},
	{
		Index:   6,
		Name:    "庚",
		Reading: "Kanoe",
		Title:   "鋼のチーター",
		Emblem:  "🐆",
		Tagline: "一攫千金ハンター",
		Style:   "スピードと決断力で短期的に大きく当てる",
		Tip:     "直感を信じて即断即決する",
	},
	{
		Index:   7,
		Name:    "辛",
		Reading: "Kanoto",
		Title:   "宝石のクジャク",
		Emblem:  "🦚",
		Tagline: "高貴なブランド人",
		Style:   "自身の美学とセンスを高単価で提供する",
		Tip:     "身の回りの品を上質なものにする",
	},
	{
		Index:   8,
		Name:    "壬",
		Reading: "Mizunoe",
		Title:   "大海のクジラ",
		Emblem:  "🐋",
		Tagline: "グローバル冒険家",
		Style:   "時代の波に乗り、大きな流通や海外で稼ぐ",
		Tip:     "海外情報やトレンドをチェックする",
	},
	{
		Index:   9,
		Name:    "癸",
		Reading: "Mizunoto",
		Title:   "癒やしのイルカ",
		Emblem:  "🐬",
		Tagline: "奉仕の参謀",
		Style:   "悩み解決と深い優しさで感謝される",
		Tip:     "寄付やボランティア活動を行う",
	},
}

// Lookup returns the archetype at index. An index outside [0, StemCount) is
// a bug in the caller and panics.
func Lookup(index int) Archetype {
	if index < 0 || index >= StemCount {
		panic(fmt.Errorf("%w: %d", ErrStemOutOfRange, index))
	}
	return catalog[index]
}

// Catalog returns a copy of all archetypes in index order.
func Catalog() []Archetype {
	out := make([]Archetype, StemCount)
	copy(out, catalog[:])
	return out
}
