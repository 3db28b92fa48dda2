package seed

import "github.com/abecedary/abecedary/internal/entities"

type alphabetSpec struct {
	Type         entities.AlphabetType
	Name         string
	Description  string
	TotalLetters int
	Letters      []letterSpec
}

type letterSpec struct {
	Glyph         string
	Name          string
	Pronunciation string
	Guide         string
}

// defaultAlphabets declares every supported alphabet. TotalLetters is
// the declared size of the writing system; the letter datasets below
// may be smaller for alphabets whose letters have not been entered yet.
var defaultAlphabets = []alphabetSpec{
	{
		Type:         entities.AlphabetTypeFrench,
		Name:         "French Alphabet",
		Description:  "The standard French alphabet with 26 letters",
		TotalLetters: 26,
		Letters:      frenchLetters,
	},
	{
		Type:         entities.AlphabetTypePolish,
		Name:         "Polish Alphabet",
		Description:  "The Polish alphabet with 32 letters including diacritics",
		TotalLetters: 32,
	},
	{
		Type:         entities.AlphabetTypePortuguese,
		Name:         "Portuguese Alphabet",
		Description:  "The Portuguese alphabet with 26 letters",
		TotalLetters: 26,
	},
	{
		Type:         entities.AlphabetTypeGerman,
		Name:         "German Alphabet",
		Description:  "German alphabet including umlauts and ß",
		TotalLetters: 30,
		Letters:      germanLetters,
	},
	{
		Type:         entities.AlphabetTypeBelarusian,
		Name:         "Belarusian Alphabet",
		Description:  "The Belarusian Cyrillic alphabet with 32 letters",
		TotalLetters: 32,
	},
	{
		Type:         entities.AlphabetTypeGeorgian,
		Name:         "Georgian Alphabet",
		Description:  "The Georgian Mkhedruli script with 33 letters",
		TotalLetters: 33,
	},
	{
		Type:         entities.AlphabetTypeHebrew,
		Name:         "Hebrew Alphabet",
		Description:  "The Hebrew alphabet with 22 letters",
		TotalLetters: 22,
		Letters:      hebrewLetters,
	},
}

var frenchLetters = []letterSpec{
	{"A", "a", "/a/", `Like "ah"`},
	{"B", "bé", "/be/", `Like "bay"`},
	{"C", "cé", "/se/", `Like "say"`},
	{"D", "dé", "/de/", ""},
	{"E", "e", "/ə/", `A neutral "uh" sound`},
	{"F", "effe", "/ɛf/", ""},
	{"G", "gé", "/ʒe/", `Soft "zh" as in "measure"`},
	{"H", "ache", "/aʃ/", "Always silent in words"},
	{"I", "i", "/i/", `Like "ee"`},
	{"J", "ji", "/ʒi/", ""},
	{"K", "ka", "/ka/", ""},
	{"L", "elle", "/ɛl/", ""},
	{"M", "emme", "/ɛm/", ""},
	{"N", "enne", "/ɛn/", ""},
	{"O", "o", "/o/", ""},
	{"P", "pé", "/pe/", ""},
	{"Q", "ku", "/ky/", ""},
	{"R", "erre", "/ɛʁ/", "Guttural, from the back of the throat"},
	{"S", "esse", "/ɛs/", ""},
	{"T", "té", "/te/", ""},
	{"U", "u", "/y/", `Say "ee" with rounded lips`},
	{"V", "vé", "/ve/", ""},
	{"W", "double vé", "/dublə ve/", ""},
	{"X", "ixe", "/iks/", ""},
	{"Y", "i grec", "/i ɡʁɛk/", ""},
	{"Z", "zède", "/zɛd/", ""},
}

var germanLetters = []letterSpec{
	{"A", "A", "/aː/", `Long "ah"`},
	{"B", "Be", "/beː/", `Like "bay"`},
	{"C", "Ce", "/tseː/", ""},
	{"D", "De", "/deː/", ""},
	{"E", "E", "/eː/", ""},
	{"F", "Ef", "/ɛf/", ""},
	{"G", "Ge", "/ɡeː/", `Hard "g" as in "go"`},
	{"H", "Ha", "/haː/", ""},
	{"I", "I", "/iː/", ""},
	{"J", "Jot", "/jɔt/", `Sounds like English "y"`},
	{"K", "Ka", "/kaː/", ""},
	{"L", "El", "/ɛl/", ""},
	{"M", "Em", "/ɛm/", ""},
	{"N", "En", "/ɛn/", ""},
	{"O", "O", "/oː/", ""},
	{"P", "Pe", "/peː/", ""},
	{"Q", "Ku", "/kuː/", ""},
	{"R", "Er", "/ɛʁ/", ""},
	{"S", "Es", "/ɛs/", `"z" sound before vowels`},
	{"T", "Te", "/teː/", ""},
	{"U", "U", "/uː/", ""},
	{"V", "Vau", "/faʊ/", `Usually an "f" sound`},
	{"W", "We", "/veː/", `Sounds like English "v"`},
	{"X", "Ix", "/ɪks/", ""},
	{"Y", "Ypsilon", "/ˈʏpsilɔn/", ""},
	{"Z", "Zett", "/tsɛt/", `"ts" as in "cats"`},
	{"Ä", "Ä", "/ɛː/", `Like "air"`},
	{"Ö", "Ö", "/øː/", `Say "ay" with rounded lips`},
	{"Ü", "Ü", "/yː/", `Say "ee" with rounded lips`},
	{"ß", "Eszett", "/ɛsˈtsɛt/", `Sharp "s", never starts a word`},
}

var hebrewLetters = []letterSpec{
	{"א", "Aleph", "silent", "Silent letter, carries vowels"},
	{"ב", "Bet", "/b/ or /v/", "B with dagesh, V without"},
	{"ג", "Gimel", "/ɡ/", ""},
	{"ד", "Dalet", "/d/", ""},
	{"ה", "He", "/h/", ""},
	{"ו", "Vav", "/v/", "Also marks the vowels o and u"},
	{"ז", "Zayin", "/z/", ""},
	{"ח", "Het", "/χ/", `Guttural "ch" as in "Bach"`},
	{"ט", "Tet", "/t/", ""},
	{"י", "Yod", "/j/", ""},
	{"כ", "Kaf", "/k/ or /χ/", "K with dagesh, KH without"},
	{"ל", "Lamed", "/l/", ""},
	{"מ", "Mem", "/m/", ""},
	{"נ", "Nun", "/n/", ""},
	{"ס", "Samekh", "/s/", ""},
	{"ע", "Ayin", "silent", "Silent in modern Hebrew"},
	{"פ", "Pe", "/p/ or /f/", "P with dagesh, F without"},
	{"צ", "Tsadi", "/ts/", ""},
	{"ק", "Qof", "/k/", ""},
	{"ר", "Resh", "/ʁ/", ""},
	{"ש", "Shin", "/ʃ/ or /s/", "SH or S depending on the dot"},
	{"ת", "Tav", "/t/", ""},
}
